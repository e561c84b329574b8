package morph

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// loadTags reads morphos.fr (falling back to morphos.la) into e.tags,
// 1-based. Format: "n:description"; reading stops at the "! --- "
// separator.
func (e *Engine) loadTags(dataDir string) error {
	f, err := os.Open(filepath.Join(dataDir, "morphos.fr"))
	if err != nil {
		f2, err2 := os.Open(filepath.Join(dataDir, "morphos.la"))
		if err2 != nil {
			return fmt.Errorf("open morphos.fr: %w", err)
		}
		f = f2
	}
	defer f.Close()

	sc := bufio.NewScanner(f)
	for sc.Scan() {
		line := sc.Text()
		if strings.HasPrefix(line, "! --- ") {
			break
		}
		if strings.HasPrefix(line, "!") {
			continue
		}
		idx := strings.Index(line, ":")
		if idx < 0 {
			continue
		}
		e.tags = append(e.tags, line[idx+1:])
	}
	return sc.Err()
}

// loadParadigms reads modeles.la block by block and populates e.paradigms,
// registering every ending in the global endings index as it goes.
func (e *Engine) loadParadigms(dataDir string) error {
	f, err := os.Open(filepath.Join(dataDir, "modeles.la"))
	if err != nil {
		return fmt.Errorf("open modeles.la: %w", err)
	}
	defer f.Close()

	var block []string
	sc := bufio.NewScanner(f)
	atEOF := false

	flushBlock := func() {
		if len(block) == 0 {
			return
		}
		p := e.parseParadigm(block)
		if p != nil {
			e.paradigms[p.Name] = p
		}
		block = block[:0]
	}

	for !atEOF {
		var line string
		if sc.Scan() {
			line = strings.TrimSpace(sc.Text())
		} else {
			atEOF = true
		}

		if line == "" && !atEOF {
			continue
		}
		if strings.HasPrefix(line, "!") {
			continue
		}

		// Variables: $name=value
		if strings.HasPrefix(line, "$") {
			idx := strings.Index(line, "=")
			if idx > 0 {
				e.vars[line[:idx]] = line[idx+1:]
			}
			continue
		}

		// A new "modele:" line (or EOF) terminates the accumulated block.
		parts := strings.SplitN(line, ":", 2)
		if (parts[0] == "modele" || atEOF) && len(block) > 0 {
			flushBlock()
		}

		if !atEOF {
			block = append(block, line)
		}
	}
	return sc.Err()
}

// parseParadigm builds a Paradigm from one modeles.la block.
func (e *Engine) parseParadigm(lines []string) *Paradigm {
	p := newParadigm("")

	type sufEntry struct {
		suf    string
		tagIdx int
	}
	var sufEntries []sufEntry

	for _, line := range lines {
		line = e.substituteVars(line)

		fields := strings.Split(strings.TrimSpace(line), ":")

		switch fields[0] {
		case "modele":
			if len(fields) > 1 {
				p.Name = fields[1]
			}
		case "pere":
			if len(fields) > 1 {
				p.parent = e.paradigms[fields[1]]
			}
		case "des", "des+":
			if len(fields) < 4 {
				continue
			}
			tagIdxs := parseIndexList(fields[1])
			stemNum, _ := strconv.Atoi(fields[2])
			endStrs := strings.Split(fields[3], ";")

			for i, t := range tagIdxs {
				var endStr string
				if i < len(endStrs) {
					endStr = endStrs[i]
				} else if len(endStrs) > 0 {
					endStr = endStrs[len(endStrs)-1]
				}
				// Comma-separated alternatives share the same tag.
				for _, g := range strings.Split(endStr, ",") {
					marked := g
					if marked == "-" {
						marked = ""
					}
					d := &Ending{
						Marked:   marked,
						Bare:     StripMarks(marked),
						TagIdx:   t,
						StemNum:  stemNum,
						Paradigm: p,
					}
					p.Endings[t] = append(p.Endings[t], d)
					e.addEnding(d)
				}
			}

			// des+: also inherit the parent's endings for the listed tags.
			if fields[0] == "des+" && p.parent != nil {
				for _, t := range tagIdxs {
					for _, dp := range p.parent.Endings[t] {
						dc := cloneEnding(dp, p)
						p.Endings[t] = append(p.Endings[t], dc)
						e.addEnding(dc)
					}
				}
			}

		case "R":
			if len(fields) < 3 {
				continue
			}
			n, _ := strconv.Atoi(fields[1])
			p.StemRules[n] = fields[2]

		case "abs":
			if len(fields) > 1 {
				p.Missing = parseIndexList(fields[1])
			}

		case "abs+":
			if len(fields) > 1 {
				p.Missing = append(p.Missing, parseIndexList(fields[1])...)
			}

		case "pos":
			if len(fields) > 1 && len(fields[1]) > 0 {
				p.pos = rune(fields[1][0])
			}

		case "suf":
			// suf:<interval>:<suffix>
			if len(fields) < 3 {
				continue
			}
			suf := fields[2]
			for _, t := range parseIndexList(fields[1]) {
				sufEntries = append(sufEntries, sufEntry{suf, t})
			}

		case "sufd":
			// sufd:<suffix> — suffix every parent ending
			if p.parent == nil || len(fields) < 2 {
				continue
			}
			suf := fields[1]
			for _, dp := range p.parent.AllEndings() {
				if p.isMissing(dp.TagIdx) {
					continue
				}
				marked := dp.Marked + suf
				d := &Ending{
					Marked:   marked,
					Bare:     StripMarks(marked),
					TagIdx:   dp.TagIdx,
					StemNum:  dp.StemNum,
					Paradigm: p,
				}
				p.Endings[dp.TagIdx] = append(p.Endings[dp.TagIdx], d)
				e.addEnding(d)
			}
		}
	}

	// Inherit pos from parent if the child did not set one.
	if p.pos == 0 && p.parent != nil {
		p.pos = p.parent.pos
	}

	// Inherit parent endings for tag indices the child neither defines nor
	// declares missing.
	if p.parent != nil {
		for t, parentEnds := range p.parent.Endings {
			if p.hasEnding(t) {
				continue
			}
			for _, dp := range parentEnds {
				if p.isMissing(dp.TagIdx) {
					continue
				}
				dc := cloneEnding(dp, p)
				p.Endings[t] = append(p.Endings[t], dc)
				e.addEnding(dc)
			}
		}

		// Inherit stem rules.
		for _, d := range p.AllEndings() {
			if _, ok := p.StemRules[d.StemNum]; !ok {
				if rule, ok := p.parent.StemRules[d.StemNum]; ok {
					p.StemRules[d.StemNum] = rule
				}
			}
		}

		// Inherit the missing set.
		p.Missing = p.parent.Missing
	}

	// Apply suffixes collected from "suf" directives.
	var suffixed []*Ending
	for _, se := range sufEntries {
		for _, d := range p.Endings[se.tagIdx] {
			marked := d.Marked + se.suf
			ds := &Ending{
				Marked:   marked,
				Bare:     StripMarks(marked),
				TagIdx:   d.TagIdx,
				StemNum:  d.StemNum,
				Paradigm: p,
			}
			suffixed = append(suffixed, ds)
		}
	}
	for _, d := range suffixed {
		p.Endings[d.TagIdx] = append(p.Endings[d.TagIdx], d)
		e.addEnding(d)
	}

	if p.Name == "" {
		return nil
	}
	return p
}

// substituteVars expands $variable references with values collected from
// modeles.la.
func (e *Engine) substituteVars(line string) string {
	for strings.Contains(line, "$") {
		d := strings.Index(line, "$")
		f := strings.Index(line[d:], ";")
		var name string
		if f < 0 {
			name = line[d:]
		} else {
			name = line[d : d+f]
		}
		val, ok := e.vars[name]
		if !ok {
			break // unknown variable, avoid an infinite loop
		}
		line = strings.Replace(line, name, val, 1)
	}
	return line
}

// loadLexicon reads lemmes.la and builds e.lemmas and the global stems
// index.
func (e *Engine) loadLexicon(dataDir string) error {
	f, err := os.Open(filepath.Join(dataDir, "lemmes.la"))
	if err != nil {
		return fmt.Errorf("open lemmes.la: %w", err)
	}
	defer f.Close()

	sc := bufio.NewScanner(f)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "!") {
			continue
		}

		lemma := newLemma(line)
		if lemma == nil {
			continue
		}

		lemma.paradigm = e.paradigms[lemma.paradigmName]
		if lemma.paradigm != nil && lemma.POS == POSUnknown {
			lemma.POS = lemma.paradigm.POS()
		}

		e.lemmas[lemma.Key] = lemma

		e.buildStems(lemma)
	}
	return sc.Err()
}

// stemFromMarked derives a stem from a canonical marked form and a stem
// rule ("K", "n", or "n,suffix").
func stemFromMarked(marked, rule string) string {
	marked = strings.TrimSuffix(marked, "̆") // trailing combining breve
	if rule == "K" {
		return marked
	}
	ruleParts := strings.SplitN(rule, ",", 2)
	drop, _ := strconv.Atoi(ruleParts[0])
	runes := []rune(marked)
	if drop > len(runes) {
		drop = len(runes)
	}
	stem := string(runes[:len(runes)-drop])
	if len(ruleParts) > 1 && ruleParts[1] != "0" {
		stem += ruleParts[1]
	}
	return stem
}

// buildStems computes all stems of a lemma from its paradigm's stem rules
// and registers them in the global stems index.
func (e *Engine) buildStems(lemma *Lemma) {
	p := lemma.paradigm
	if p == nil {
		return
	}

	// Explicit stems parsed from lemmes.la go in first.
	for _, stems := range lemma.stems {
		for _, s := range stems {
			e.addStem(s)
		}
	}

	// Derive the rest from the paradigm rules, skipping numbers that were
	// explicit. Alternative canonical forms contribute stems too.
	for n, rule := range p.StemRules {
		if _, exists := lemma.stems[n]; exists {
			continue
		}

		for _, markedForm := range append([]string{lemma.Marked}, lemma.altMarked...) {
			stem := stemFromMarked(markedForm, rule)
			s := &Stem{
				Marked: MarkCommon(stem),
				Bare:   StripMarks(stem),
				Num:    n,
				Lemma:  lemma,
			}
			lemma.stems[n] = append(lemma.stems[n], s)
			e.addStem(s)
		}
	}
}

// loadGlosses reads every lemmes.XX translation file in dataDir.
func (e *Engine) loadGlosses(dataDir string) error {
	matches, err := filepath.Glob(filepath.Join(dataDir, "lemmes.*"))
	if err != nil {
		return err
	}
	for _, path := range matches {
		ext := filepath.Ext(path)
		if ext == ".la" || ext == "" {
			continue
		}
		lang := ext[1:]
		if err := e.loadGlossFile(path, lang); err != nil {
			// Non-fatal: skip missing or malformed files.
			continue
		}
	}
	return nil
}

// loadGlossFile reads a single lemmes.XX file. The first non-comment,
// non-empty line is the language name; the rest are "key:translation"
// entries.
func (e *Engine) loadGlossFile(path, lang string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	sc := bufio.NewScanner(f)
	langNameSet := false

	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "!") {
			continue
		}
		if !langNameSet {
			if !strings.Contains(line, ":") {
				e.languages[lang] = line
				langNameSet = true
				continue
			}
			// Old-format file without a name line.
			e.languages[lang] = lang
			langNameSet = true
		}
		idx := strings.Index(line, ":")
		if idx < 0 {
			continue
		}
		key := ToClassical(line[:idx])
		gloss := line[idx+1:]
		if lemma := e.lemmas[key]; lemma != nil {
			lemma.addGloss(lang, gloss)
		}
	}
	return sc.Err()
}

// loadIrregulars reads irregs.la. Line format: marked[*]:lemmaKey:tags
// where a trailing * marks the form exclusive.
func (e *Engine) loadIrregulars(dataDir string) error {
	f, err := os.Open(filepath.Join(dataDir, "irregs.la"))
	if err != nil {
		return fmt.Errorf("open irregs.la: %w", err)
	}
	defer f.Close()

	sc := bufio.NewScanner(f)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "!") {
			continue
		}

		parts := strings.Split(line, ":")
		if len(parts) < 3 {
			continue
		}

		marked := parts[0]
		exclusive := strings.HasSuffix(marked, "*")
		if exclusive {
			marked = marked[:len(marked)-1]
		}
		bare := StripMarks(marked)

		lemmaKey := ToClassical(parts[1])
		lemma := e.lemmas[lemmaKey]
		if lemma == nil {
			continue
		}

		irr := &Irregular{
			Marked:    marked,
			Bare:      bare,
			Exclusive: exclusive,
			Lemma:     lemma,
			Tags:      parseIndexList(parts[2]),
		}

		key := ToClassical(bare)
		e.irregulars[key] = append(e.irregulars[key], irr)
		lemma.addIrregular(irr)
	}
	return sc.Err()
}

// loadAssimilations reads assimilations.la ("key:value", stored without
// quantity marks).
func (e *Engine) loadAssimilations(dataDir string) error {
	f, err := os.Open(filepath.Join(dataDir, "assimilations.la"))
	if err != nil {
		return fmt.Errorf("open assimilations.la: %w", err)
	}
	defer f.Close()

	sc := bufio.NewScanner(f)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "!") {
			continue
		}
		idx := strings.Index(line, ":")
		if idx < 0 {
			continue
		}
		key := StripMarks(line[:idx])
		val := StripMarks(line[idx+1:])
		e.assimilations[key] = val
	}
	return sc.Err()
}

// loadContractions reads contractions.la ("key:value", no quantity marks).
func (e *Engine) loadContractions(dataDir string) error {
	f, err := os.Open(filepath.Join(dataDir, "contractions.la"))
	if err != nil {
		return fmt.Errorf("open contractions.la: %w", err)
	}
	defer f.Close()

	sc := bufio.NewScanner(f)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "!") {
			continue
		}
		idx := strings.Index(line, ":")
		if idx < 0 {
			continue
		}
		e.contractions[line[:idx]] = line[idx+1:]
	}
	return sc.Err()
}
