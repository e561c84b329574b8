package morph

// inflect computes the full inflection table for a lemma.
func (e *Engine) inflect(lemma *Lemma) *Table {
	if lemma == nil {
		return nil
	}
	p := lemma.paradigm
	if p == nil {
		return nil
	}

	table := &Table{
		Lemma: lemma,
		Cells: make(map[int][]string),
	}

	for t := range p.Endings {
		forms := e.inflectedForms(lemma, t)
		if len(forms) > 0 {
			table.Cells[t] = forms
		}
	}

	return table
}

// inflectedForms returns the inflected forms of lemma at tag index t.
// An exclusive irregular replaces the regular forms; a non-exclusive one is
// listed first.
func (e *Engine) inflectedForms(lemma *Lemma, tagIdx int) []string {
	if lemma == nil {
		return nil
	}
	p := lemma.paradigm
	if p == nil {
		return nil
	}

	var forms []string

	irrMarked, exclusive := lemma.irregularAt(tagIdx)
	if exclusive {
		if irrMarked != "" {
			return []string{irrMarked}
		}
		return nil
	}
	if irrMarked != "" {
		forms = append(forms, irrMarked)
	}

	for _, end := range p.EndingsAt(tagIdx) {
		for _, stem := range lemma.StemsAt(end.StemNum) {
			forms = append(forms, stem.Marked+end.Marked)
		}
	}

	return dedupe(forms)
}

// dedupe removes duplicates preserving order.
func dedupe(ss []string) []string {
	seen := make(map[string]bool)
	var out []string
	for _, s := range ss {
		if !seen[s] {
			seen[s] = true
			out = append(out, s)
		}
	}
	return out
}
