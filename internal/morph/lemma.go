package morph

import (
	"regexp"
	"strconv"
	"strings"
	"unicode"
)

// Stem is an inflection stem of a lemma.
type Stem struct {
	// Marked is the stem with vowel-quantity marks.
	Marked string
	// Bare is the stem without diacritics.
	Bare string
	// Num is the stem number (1-based).
	Num int
	// Lemma is the lemma this stem belongs to.
	Lemma *Lemma
}

// Irregular is an irregular inflected form attached to a lemma.
type Irregular struct {
	// Marked is the form with vowel-quantity marks.
	Marked string
	// Bare is the form without diacritics.
	Bare string
	// Exclusive means the form replaces the regular inflection for its
	// tags rather than supplementing it.
	Exclusive bool
	// Lemma is the owning lemma.
	Lemma *Lemma
	// Tags lists the tag indices this form covers.
	Tags []int
}

// Lemma is a dictionary headword with its inflectional data.
type Lemma struct {
	// Key is the canonical lookup key (CanonicalKey of the lexicon entry).
	Key string
	// Marked is the canonical form with vowel-quantity marks.
	Marked string
	// Bare is the canonical form without diacritics.
	Bare string
	// paradigmName names the inflection paradigm; paradigm is the
	// resolved pointer.
	paradigmName string
	paradigm     *Paradigm
	// Note is the raw grammatical note from lemmes.la ("s. f.", "v. tr.", …).
	Note string
	// POS is the part of speech.
	POS PartOfSpeech
	// Homonym is the homonym number (0 or 1 = primary, 2+ = secondary).
	Homonym int
	// crossRef is a cross-reference key when Note contains "cf. xxx".
	crossRef string

	// altMarked holds additional canonical forms (comma-separated
	// alternatives after the first form in the lemmes.la entry).
	altMarked []string

	// stems maps stem-number → stems.
	stems map[int][]*Stem
	// irregulars lists the irregular forms of this lemma.
	irregulars []*Irregular
	// exclusiveTags lists tag indices covered by exclusive irregulars.
	exclusiveTags []int
	// Count is the corpus occurrence count from lemmes.la (field 6).
	Count int
	// glosses maps language code → translation.
	glosses map[string]string
}

// crossRefRe matches "cf. <word>" at the end of a grammatical note.
var crossRefRe = regexp.MustCompile(`cf\.\s+(\w+)$`)

// newLemma parses one lemmes.la line.
// Line format: key=marked|paradigm|stem1|stem2|note[|count]
// where the key= part is optional (the marked form doubles as key).
func newLemma(line string) *Lemma {
	parts := strings.Split(line, "|")
	if len(parts) < 5 {
		return nil
	}

	l := &Lemma{
		stems:   make(map[int][]*Stem),
		glosses: make(map[string]string),
	}

	keyMarked := strings.SplitN(parts[0], "=", 2)
	rawKey := keyMarked[0]

	l.Key = CanonicalKey(rawKey)
	rawMarked := rawKey
	if len(keyMarked) > 1 {
		rawMarked = keyMarked[1]
	}
	// The marked field may carry comma-separated alternative canonical
	// forms (e.g. "tēmpto,tēnto"). The first is the primary form; the rest
	// only contribute stems.
	markedForms := strings.Split(rawMarked, ",")
	l.Marked, l.Homonym = splitHomonym(markedForms[0])
	l.Bare = StripMarks(l.Marked)
	for _, alt := range markedForms[1:] {
		alt = strings.TrimSpace(alt)
		if alt != "" {
			l.altMarked = append(l.altMarked, alt)
		}
	}

	l.paradigmName = parts[1]

	// Explicit stems from fields 2 and 3 (stem numbers 1 and 2).
	for i := 2; i < 4; i++ {
		if i >= len(parts) || parts[i] == "" {
			continue
		}
		stemNum := i - 1
		for _, stemStr := range strings.Split(parts[i], ",") {
			if stemStr == "" {
				continue
			}
			st := &Stem{
				Marked: MarkCommon(stemStr),
				Bare:   StripMarks(stemStr),
				Num:    stemNum,
				Lemma:  l,
			}
			l.stems[stemNum] = append(l.stems[stemNum], st)
		}
	}

	l.Note = parts[4]
	l.POS = noteToPOS(l.Note)

	if len(parts) >= 6 && parts[5] != "" {
		l.Count, _ = strconv.Atoi(parts[5])
	}

	if m := crossRefRe.FindStringSubmatch(l.Note); m != nil {
		l.crossRef = m[1]
	}

	return l
}

// splitHomonym strips a trailing homonym digit from g and returns the
// stripped form and the homonym number.
func splitHomonym(g string) (string, int) {
	if g == "" {
		return g, 0
	}
	runes := []rune(g)
	last := runes[len(runes)-1]
	if unicode.IsDigit(last) {
		n, _ := strconv.Atoi(string(last))
		if n > 0 {
			return string(runes[:len(runes)-1]), n
		}
	}
	return g, 0
}

// noteToPOS infers the part of speech from the lemmes.la grammatical note.
// The notes are French dictionary abbreviations.
func noteToPOS(note string) PartOfSpeech {
	switch {
	case strings.Contains(note, "adj."):
		return POSAdjective
	case strings.Contains(note, "conj"):
		return POSConjunction
	case strings.Contains(note, "excl"):
		return POSExclamation
	case strings.Contains(note, "interj"):
		return POSInterjection
	case strings.Contains(note, "num."):
		return POSNumeral
	case strings.Contains(note, "pron."):
		return POSPronoun
	case strings.Contains(note, "prép"):
		return POSPreposition
	case strings.Contains(note, "adv"):
		return POSAdverb
	case strings.Contains(note, " nom ") || strings.Contains(note, "npr."):
		return POSNoun
	default:
		return POSUnknown
	}
}

// Paradigm returns the resolved inflection paradigm.
func (l *Lemma) Paradigm() *Paradigm {
	return l.paradigm
}

// Gloss returns the translation for language lang, falling back to French
// (the language the Collatinus lexicon was authored in).
func (l *Lemma) Gloss(lang string) string {
	if g, ok := l.glosses[lang]; ok {
		return g
	}
	return l.glosses["fr"]
}

// addGloss records a translation for the given language code.
func (l *Lemma) addGloss(lang, text string) {
	l.glosses[lang] = text
}

// addIrregular attaches an irregular form to this lemma.
func (l *Lemma) addIrregular(irr *Irregular) {
	l.irregulars = append(l.irregulars, irr)
	if irr.Exclusive {
		l.exclusiveTags = append(l.exclusiveTags, irr.Tags...)
	}
}

// isExclusiveTag reports whether tag index t is covered by an exclusive
// irregular form.
func (l *Lemma) isExclusiveTag(t int) bool {
	for _, v := range l.exclusiveTags {
		if v == t {
			return true
		}
	}
	return false
}

// irregularAt returns the irregular form for tag index t and whether it is
// exclusive.
func (l *Lemma) irregularAt(t int) (string, bool) {
	for _, ir := range l.irregulars {
		for _, m := range ir.Tags {
			if m == t {
				return ir.Marked, ir.Exclusive
			}
		}
	}
	return "", false
}

// StemsAt returns all stems with stem number n.
func (l *Lemma) StemsAt(n int) []*Stem {
	return l.stems[n]
}
