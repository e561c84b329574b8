// Package morph provides Latin morphological analysis and lemmatization on
// top of the lexical data files distributed with Collatinus (lemmes.la,
// modeles.la, morphos.fr, …). The engine is loaded once from a data
// directory and is immutable afterwards, so it is safe for concurrent use.
package morph

// Engine holds all loaded lexical data and provides the analysis API.
type Engine struct {
	// tags stores morphological tag descriptions indexed 1-based.
	// Index 0 is unused; tags[1] = "nominatif singulier", etc.
	tags []string

	// paradigms maps paradigm name → *Paradigm.
	paradigms map[string]*Paradigm

	// lemmas maps CanonicalKey(entry) → *Lemma.
	lemmas map[string]*Lemma

	// endings maps ToClassical(StripMarks(ending)) → []*Ending.
	endings map[string][]*Ending

	// stems maps ToClassical(StripMarks(stem)) → []*Stem.
	stems map[string][]*Stem

	// irregulars maps ToClassical(StripMarks(form)) → []*Irregular.
	irregulars map[string][]*Irregular

	// vars stores $name=value substitutions used in modeles.la.
	vars map[string]string

	// languages maps language code (e.g. "fr") → language name.
	languages map[string]string

	// assimilations maps non-assimilated prefix → assimilated prefix.
	assimilations map[string]string

	// contractions maps contracted ending → expanded ending.
	contractions map[string]string
}

// Load reads all lexical data from dataDir and returns a ready Engine.
func Load(dataDir string) (*Engine, error) {
	e := &Engine{
		tags:          []string{""}, // index 0 unused; 1-based
		paradigms:     make(map[string]*Paradigm),
		lemmas:        make(map[string]*Lemma),
		endings:       make(map[string][]*Ending),
		stems:         make(map[string][]*Stem),
		irregulars:    make(map[string][]*Irregular),
		vars:          make(map[string]string),
		languages:     make(map[string]string),
		assimilations: make(map[string]string),
		contractions:  make(map[string]string),
	}

	if err := e.loadAssimilations(dataDir); err != nil {
		return nil, err
	}
	if err := e.loadContractions(dataDir); err != nil {
		return nil, err
	}
	if err := e.loadTags(dataDir); err != nil {
		return nil, err
	}
	if err := e.loadParadigms(dataDir); err != nil {
		return nil, err
	}
	if err := e.loadLexicon(dataDir); err != nil {
		return nil, err
	}
	if err := e.loadGlosses(dataDir); err != nil {
		return nil, err
	}
	if err := e.loadIrregulars(dataDir); err != nil {
		return nil, err
	}
	return e, nil
}

// Tag returns the morphological tag description for 1-based index t.
func (e *Engine) Tag(t int) string {
	if t < 1 || t >= len(e.tags) {
		return ""
	}
	return e.tags[t]
}

// Lemma looks up a lemma by headword, normalizing it first.
func (e *Engine) Lemma(key string) *Lemma {
	return e.lemmas[CanonicalKey(key)]
}

// LemmaByKey looks up a lemma by its already-canonical key.
func (e *Engine) LemmaByKey(key string) *Lemma {
	return e.lemmas[key]
}

// Languages returns a map of language-code → language-name for all loaded
// gloss files.
func (e *Engine) Languages() map[string]string {
	out := make(map[string]string, len(e.languages))
	for k, v := range e.languages {
		out[k] = v
	}
	return out
}

// Analyze returns every morphological reading of a single Latin word form.
// If sentenceStart is true the form may be capitalized merely because it
// opens a sentence, not because it is a proper noun.
func (e *Engine) Analyze(form string, sentenceStart bool) map[*Lemma][]Reading {
	return e.analyzeStaged(form, sentenceStart, 0)
}

// AnalyzeText splits text into word tokens and analyzes each one.
func (e *Engine) AnalyzeText(text string) []TokenReadings {
	return e.analyzeText(text)
}

// Inflect computes the full inflection table for a lemma.
func (e *Engine) Inflect(lemma *Lemma) *Table {
	return e.inflect(lemma)
}

// addEnding registers an ending in the global endings index.
func (e *Engine) addEnding(d *Ending) {
	key := ToClassical(d.Bare)
	e.endings[key] = append(e.endings[key], d)
}

// addStem registers a stem in the global stems index.
func (e *Engine) addStem(s *Stem) {
	key := ToClassical(s.Bare)
	e.stems[key] = append(e.stems[key], s)
}
