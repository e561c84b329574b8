package morph

import (
	"regexp"
	"strings"
	"unicode"
)

// wordRe matches a single Latin/Unicode word token.
var wordRe = regexp.MustCompile(`[a-zA-ZÀ-ÿ\x{0100}-\x{024F}\x{0300}-\x{036F}]+`)

// enclitics are suffixes stripped when a form cannot be analyzed as-is:
// -ne, -que, -ue, -ve and the contracted -st (est).
var enclitics = []string{"ne", "que", "ue", "ve", "st"}

// assimilate rewrites a prefix to its assimilated spelling (adf- → aff-).
func (e *Engine) assimilate(a string) string {
	for prefix, assimilated := range e.assimilations {
		if strings.HasPrefix(a, prefix) {
			return assimilated + a[len(prefix):]
		}
	}
	return a
}

// deassimilate rewrites an assimilated prefix back (aff- → adf-).
func (e *Engine) deassimilate(a string) string {
	for plain, assimilated := range e.assimilations {
		if strings.HasPrefix(a, assimilated) {
			return plain + a[len(assimilated):]
		}
	}
	return a
}

// expandContraction expands a contracted ending (amarunt → amauerunt).
func (e *Engine) expandContraction(d string) string {
	for suffix, expanded := range e.contractions {
		if strings.HasSuffix(d, suffix) {
			return d[:len(d)-len(suffix)] + expanded
		}
	}
	return d
}

// analyzeRaw is the core analysis step. The form is normalized to classical
// orthography, then matched against irregular forms and every stem+ending
// split.
func (e *Engine) analyzeRaw(form string) map[*Lemma][]Reading {
	// Vowel counts are taken from the original spelling, before
	// normalization, and checked against the quantified candidates below.
	lower := strings.ToLower(form)
	cntV := strings.Count(lower, "v")
	cntAe := strings.Count(lower, "æ")
	cntOe := strings.Count(lower, "œ")
	// a trailing æ does not count
	if strings.HasSuffix(lower, "æ") {
		cntAe--
	}

	form = ToClassical(form)
	result := make(map[*Lemma][]Reading)

	// 1. Irregular forms.
	if irrs, ok := e.irregulars[form]; ok {
		for _, irr := range irrs {
			for _, t := range irr.Tags {
				r := Reading{
					Marked: irr.Marked,
					Tag:    e.Tag(t),
					TagIdx: t,
				}
				result[irr.Lemma] = append(result[irr.Lemma], r)
			}
		}
	}

	// 2. Split at each rune boundary: form[:i] = stem, form[i:] = ending.
	runes := []rune(form)
	for i := 0; i <= len(runes); i++ {
		st := string(runes[:i])
		en := string(runes[i:])

		stems, hasStem := e.stems[st]
		if !hasStem {
			continue
		}

		// ii/ī ambiguity: classical texts often write a single i where the
		// paradigm produces i+i. Try inserting an extra 'i' when:
		// 1. the ending is empty and the stem ends in 'i'
		// 2. the ending starts with 'i' (not "ii") and the stem does not end in 'i'
		// 3. the stem ends in 'i' (not "ii") and the ending does not start with 'i'
		stEndsI := len(st) > 0 && st[len(st)-1] == 'i'
		stEndsII := strings.HasSuffix(st, "ii")
		enStartsI := len(en) > 0 && en[0] == 'i'
		enStartsII := strings.HasPrefix(en, "ii")

		doubleI := (len(en) == 0 && stEndsI) ||
			(enStartsI && !enStartsII && !stEndsI) ||
			(stEndsI && !stEndsII && !enStartsI)

		if doubleI {
			nf := st + "i" + en
			nm := e.analyzeRaw(nf)
			// Remove the inserted 'i' from each returned marked form.
			stLen := len([]rune(st))
			for nl, rs := range nm {
				for k := range rs {
					marked := []rune(rs[k].Marked)
					if stLen > 0 && stLen-1 < len(marked) {
						rs[k].Marked = string(marked[:stLen-1]) + string(marked[stLen:])
					}
				}
				result[nl] = append(result[nl], rs...)
			}
		}

		ends, hasEnd := e.endings[en]
		if !hasEnd {
			continue
		}

		for _, stem := range stems {
			lemma := stem.Lemma
			for _, end := range ends {
				if end.Paradigm != lemma.paradigm {
					continue
				}
				if end.StemNum != stem.Num {
					continue
				}
				if lemma.isExclusiveTag(end.TagIdx) {
					continue
				}
				if end.TagIdx < 1 || end.TagIdx >= len(e.tags) {
					continue
				}

				// Consonantal u (written v) and the ligatures must appear in
				// the same places in the quantified candidate as in the
				// original spelling.
				stemMarked := strings.ToLower(stem.Marked)
				endMarked := strings.ToLower(end.Marked)
				ok := (cntV == 0) || (cntV == strings.Count(stemMarked, "v")+strings.Count(endMarked, "v"))
				ok = ok && ((cntOe == 0) || (cntOe == strings.Count(stemMarked, "ōe")))
				ok = ok && ((cntAe == 0) || (cntAe == strings.Count(stemMarked, "āe")+strings.Count(stemMarked, "prăe")))
				if !ok {
					continue
				}

				r := Reading{
					Marked: stem.Marked + end.Marked,
					Tag:    e.Tag(end.TagIdx),
					TagIdx: end.TagIdx,
				}
				result[lemma] = append(result[lemma], r)
			}
		}
	}

	return result
}

// analyzeStaged runs the analysis with orthographic fallbacks. Stage 0 is
// the entry point; each stage first recurses into the plainer stages, then
// applies one class of transformation:
//
//	stage 3 — contraction expansion (always merged in)
//	stage 2 — prefix (de)assimilation (always merged in)
//	stage 1 — enclitic stripping (only when nothing matched)
//	stage 0 — capitalization for proper-noun fallback (only when nothing matched)
func (e *Engine) analyzeStaged(form string, sentenceStart bool, stage int) map[*Lemma][]Reading {
	if form == "" {
		return nil
	}

	// Terminal: raw analysis plus the sentence-start lowercase fallback.
	if stage > 3 {
		mm := e.analyzeRaw(form)
		if sentenceStart && len(form) > 0 && unicode.IsUpper([]rune(form)[0]) {
			nf := strings.ToLower(form)
			for nl, rs := range e.analyzeStaged(nf, false, 4) {
				if mm == nil {
					mm = make(map[*Lemma][]Reading)
				}
				mm[nl] = append(mm[nl], rs...)
			}
		}
		return mm
	}

	mm := e.analyzeStaged(form, sentenceStart, stage+1)

	switch stage {
	case 3:
		fd := e.expandContraction(form)
		if fd != form {
			for nl, rs := range e.analyzeStaged(fd, sentenceStart, 4) {
				if mm == nil {
					mm = make(map[*Lemma][]Reading)
				}
				mm[nl] = append(mm[nl], rs...)
			}
		}

	case 2:
		fa := e.assimilate(form)
		if fa != form {
			for nl, rs := range e.analyzeStaged(fa, sentenceStart, 3) {
				if mm == nil {
					mm = make(map[*Lemma][]Reading)
				}
				mm[nl] = append(mm[nl], rs...)
			}
			return mm
		}
		fd := e.deassimilate(form)
		if fd != form {
			for nl, rs := range e.analyzeStaged(fd, sentenceStart, 3) {
				if mm == nil {
					mm = make(map[*Lemma][]Reading)
				}
				mm[nl] = append(mm[nl], rs...)
			}
			return mm
		}

	case 1:
		if len(mm) == 0 {
			for _, suf := range enclitics {
				if len(mm) > 0 {
					break
				}
				if strings.HasSuffix(form, suf) {
					sf := form[:len(form)-len(suf)]
					// -st stands for contracted "est"; the host form keeps
					// its final s.
					if suf == "st" {
						mm = e.analyzeStaged(sf+"s", sentenceStart, 1)
					} else {
						mm = e.analyzeStaged(sf, sentenceStart, 1)
					}
				}
			}
		}

	case 0:
		if len(mm) == 0 && len(form) > 0 && unicode.IsLower([]rune(form)[0]) {
			runes := []rune(form)
			runes[0] = unicode.ToUpper(runes[0])
			return e.analyzeStaged(string(runes), false, 1)
		}
	}

	return mm
}

// analyzeText tokenizes text and analyzes each word token.
func (e *Engine) analyzeText(text string) []TokenReadings {
	var results []TokenReadings
	punctRe := regexp.MustCompile(`[.!?;:]`)
	tokens := wordRe.FindAllString(text, -1)
	positions := wordRe.FindAllStringIndex(text, -1)

	for ti, token := range tokens {
		atStart := ti == 0
		if !atStart && positions[ti][0] > 0 {
			before := text[:positions[ti][0]]
			atStart = punctRe.MatchString(before[max(0, len(before)-5):])
		}
		readings := e.analyzeStaged(token, atStart, 0)
		results = append(results, TokenReadings{
			Token:    token,
			Readings: readings,
		})
	}
	return results
}
