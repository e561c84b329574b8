// Package analyzer adapts the morph engine into the word-record shape the
// HTTP API serves: one record per token with lemma, part of speech and
// structured morphological features, every field optional when the engine
// has no reading for the form.
package analyzer

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"

	"go.uber.org/zap"

	"github.com/cours-de-latin/latin-analyzer/internal/morph"
)

// ErrUnknownLemma is returned by Inflect for a headword the lexicon does
// not contain.
var ErrUnknownLemma = errors.New("unknown lemma")

// ErrNoInflection is returned by Inflect for a headword whose paradigm is
// missing from the data, so no table can be built.
var ErrNoInflection = errors.New("no inflection data")

// ErrNotReady wraps lexical-data load failures so callers can map them to
// a service-unavailable response.
var ErrNotReady = errors.New("analyzer is not ready")

// Options control what Analyze extracts per word.
type Options struct {
	// IncludeMorphology populates the Morphology field of each record.
	IncludeMorphology bool
	// IncludeDependencies requests dependency info. The embedded engine
	// has no dependency model, so the field stays null; the flag is
	// accepted for schema compatibility.
	IncludeDependencies bool
}

// Dependency is a dependency-parse attachment. Emitted as null by the
// current engine.
type Dependency struct {
	Relation string `json:"relation"`
	Governor int    `json:"governor"`
}

// WordAnalysis is the analysis record for a single word of running text.
type WordAnalysis struct {
	// Form is the word exactly as it appeared in the text.
	Form string `json:"form"`
	// Lemma is the dictionary headword, absent for unknown forms.
	Lemma string `json:"lemma,omitempty"`
	// POS is the Universal Dependencies part-of-speech tag.
	POS string `json:"pos,omitempty"`
	// Morphology holds structured features when requested and available.
	Morphology *Morphology `json:"morphology,omitempty"`
	// Dependency is always null with the embedded engine.
	Dependency *Dependency `json:"dependency,omitempty"`
	// Index is the 0-based token position in the text.
	Index int `json:"index"`
}

// Service wraps the engine behind a lazy-initialization guard: the lexical
// data is loaded on first use, not at construction, and a failed load is
// retried on the next call. The engine pointer itself is atomic so Ready
// and already-loaded calls never wait on an in-flight load.
type Service struct {
	dataDir string
	log     *zap.Logger
	load    func(dir string) (*morph.Engine, error)

	mu  sync.Mutex // serializes loads
	eng atomic.Pointer[morph.Engine]
}

// New returns a Service for the given data directory. No data is loaded
// until the first analysis call.
func New(dataDir string, log *zap.Logger) *Service {
	if log == nil {
		log = zap.NewNop()
	}
	return &Service{dataDir: dataDir, log: log, load: morph.Load}
}

// Ready reports whether the engine is loaded. It never triggers loading
// and never blocks, even while a load is in flight.
func (s *Service) Ready() bool {
	return s.eng.Load() != nil
}

// Invalidate drops the loaded engine so the next call reloads the data.
// It waits for any in-flight load so the dropped engine cannot reappear.
func (s *Service) Invalidate() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.eng.Store(nil)
}

// engine returns the loaded engine, loading it first if needed. Concurrent
// first calls serialize on the mutex; only one of them loads.
func (s *Service) engine() (*morph.Engine, error) {
	if eng := s.eng.Load(); eng != nil {
		return eng, nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if eng := s.eng.Load(); eng != nil {
		return eng, nil
	}
	s.log.Info("loading lexical data", zap.String("dir", s.dataDir))
	eng, err := s.load(s.dataDir)
	if err != nil {
		s.log.Error("lexical data load failed", zap.Error(err))
		return nil, fmt.Errorf("%w: %v", ErrNotReady, err)
	}
	s.log.Info("lexical data loaded")
	s.eng.Store(eng)
	return eng, nil
}

// Analyze tokenizes text and produces one WordAnalysis per word token.
// Unknown forms yield a record with only Form and Index set.
func (s *Service) Analyze(ctx context.Context, text string, opts Options) ([]WordAnalysis, error) {
	eng, err := s.engine()
	if err != nil {
		return nil, err
	}

	tokens := eng.AnalyzeText(text)
	words := make([]WordAnalysis, 0, len(tokens))
	for i, tok := range tokens {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		w := WordAnalysis{Form: tok.Token, Index: i}
		if lemma, reading := pickBest(tok.Readings); lemma != nil {
			w.Lemma = lemma.Bare
			w.POS = UPOS(lemma.POS)
			if opts.IncludeMorphology && reading != nil {
				w.Morphology = MorphologyFromTag(reading.Tag)
			}
		}
		words = append(words, w)
	}
	return words, nil
}

// Lemmatize returns every reading of a single word form.
func (s *Service) Lemmatize(form string, sentenceStart bool) (map[*morph.Lemma][]morph.Reading, error) {
	eng, err := s.engine()
	if err != nil {
		return nil, err
	}
	return eng.Analyze(form, sentenceStart), nil
}

// Inflect returns the full inflection table for a headword.
func (s *Service) Inflect(key string) (*morph.Table, error) {
	eng, err := s.engine()
	if err != nil {
		return nil, err
	}
	lemma := eng.Lemma(key)
	if lemma == nil {
		return nil, fmt.Errorf("%w: %s", ErrUnknownLemma, key)
	}
	table := eng.Inflect(lemma)
	if table == nil {
		return nil, fmt.Errorf("%w: %s", ErrNoInflection, key)
	}
	return table, nil
}

// Languages returns the loaded gloss languages.
func (s *Service) Languages() (map[string]string, error) {
	eng, err := s.engine()
	if err != nil {
		return nil, err
	}
	return eng.Languages(), nil
}

// pickBest deterministically disambiguates a set of readings: the lemma
// with the highest corpus occurrence count wins, ties broken by
// lexicographic key; among its readings the lowest tag index wins.
func pickBest(readings map[*morph.Lemma][]morph.Reading) (*morph.Lemma, *morph.Reading) {
	var best *morph.Lemma
	for lemma := range readings {
		if len(readings[lemma]) == 0 {
			continue
		}
		if best == nil ||
			lemma.Count > best.Count ||
			(lemma.Count == best.Count && lemma.Key < best.Key) {
			best = lemma
		}
	}
	if best == nil {
		return nil, nil
	}
	reading := readings[best][0]
	for _, r := range readings[best][1:] {
		if r.TagIdx < reading.TagIdx {
			reading = r
		}
	}
	return best, &reading
}
