package morph

import (
	"strconv"
	"strings"
)

// parseIndexList parses a tag-index range string from modeles.la into a
// slice of ints. Format: comma-separated items, each a single int or a
// range "a-b".
func parseIndexList(s string) []int {
	var result []int
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if idx := strings.Index(part, "-"); idx > 0 {
			start, _ := strconv.Atoi(part[:idx])
			end, _ := strconv.Atoi(part[idx+1:])
			for i := start; i <= end; i++ {
				result = append(result, i)
			}
		} else {
			n, _ := strconv.Atoi(part)
			result = append(result, n)
		}
	}
	return result
}

// Ending is a single inflectional ending belonging to a paradigm.
type Ending struct {
	// Marked is the ending with vowel-quantity marks.
	Marked string
	// Bare is the ending without diacritics (StripMarks(Marked)).
	Bare string
	// TagIdx is the 1-based morphological tag index.
	TagIdx int
	// StemNum is the stem number this ending attaches to.
	StemNum int
	// Paradigm owns this ending; analysis only pairs an ending with stems
	// of the same paradigm.
	Paradigm *Paradigm
}

// Paradigm is an inflection paradigm parsed from modeles.la.
type Paradigm struct {
	// Name is the paradigm name (e.g. "lupus", "amo").
	Name string
	// parent is the inherited-from paradigm (nil for root paradigms).
	parent *Paradigm
	// StemRules maps stem-number → rule string. Rule "K" means use the
	// canonical form as-is; otherwise "n,suffix" means remove n chars from
	// the end and append suffix.
	StemRules map[int]string
	// Missing lists tag indices this paradigm does not inflect.
	Missing []int
	// Endings maps tag index → endings.
	Endings map[int][]*Ending
	// pos is the part-of-speech character from a "pos:" directive.
	pos rune
}

func newParadigm(name string) *Paradigm {
	return &Paradigm{
		Name:      name,
		StemRules: make(map[int]string),
		Endings:   make(map[int][]*Ending),
	}
}

// hasEnding reports whether the paradigm has any ending for tag index t.
func (p *Paradigm) hasEnding(tagIdx int) bool {
	_, ok := p.Endings[tagIdx]
	return ok
}

// isMissing reports whether tag index t is absent from this paradigm.
func (p *Paradigm) isMissing(t int) bool {
	for _, v := range p.Missing {
		if v == t {
			return true
		}
	}
	return false
}

// EndingsAt returns all endings for the given tag index.
func (p *Paradigm) EndingsAt(tagIdx int) []*Ending {
	return p.Endings[tagIdx]
}

// AllEndings returns every ending of this paradigm.
func (p *Paradigm) AllEndings() []*Ending {
	var result []*Ending
	for _, list := range p.Endings {
		result = append(result, list...)
	}
	return result
}

// Parent returns the parent paradigm.
func (p *Paradigm) Parent() *Paradigm {
	return p.parent
}

// isA reports whether this paradigm or any ancestor has the given name.
func (p *Paradigm) isA(name string) bool {
	if p.Name == name {
		return true
	}
	if p.parent != nil {
		return p.parent.isA(name)
	}
	return false
}

// POS returns the part of speech for this paradigm. An explicit pos
// directive wins; otherwise it is inferred from the paradigm ancestry.
func (p *Paradigm) POS() PartOfSpeech {
	if p.pos != 0 {
		return PartOfSpeech(p.pos)
	}
	if p.isA("uita") || p.isA("lupus") || p.isA("miles") ||
		p.isA("manus") || p.isA("res") {
		return POSNoun
	}
	if p.isA("doctus") || p.isA("fortis") {
		return POSAdjective
	}
	if p.isA("amo") || p.isA("imitor") {
		return POSVerb
	}
	return POSUnknown
}

// cloneEnding copies e, reparenting it under p.
func cloneEnding(e *Ending, p *Paradigm) *Ending {
	return &Ending{
		Marked:   e.Marked,
		Bare:     e.Bare,
		TagIdx:   e.TagIdx,
		StemNum:  e.StemNum,
		Paradigm: p,
	}
}
