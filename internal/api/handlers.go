package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"sort"
	"strconv"

	"go.uber.org/zap"

	"github.com/cours-de-latin/latin-analyzer/internal/analyzer"
	"github.com/cours-de-latin/latin-analyzer/internal/morph"
)

// ---- JSON request/response types -----------------------------------------

type analyzeRequest struct {
	Text string `json:"text"`
	// IncludeMorphology defaults to true when omitted.
	IncludeMorphology   *bool `json:"include_morphology"`
	IncludeDependencies bool  `json:"include_dependencies"`
}

type analyzeResponse struct {
	Success bool                    `json:"success"`
	Words   []analyzer.WordAnalysis `json:"words"`
	RawText string                  `json:"raw_text"`
	Error   string                  `json:"error,omitempty"`
}

type healthResponse struct {
	Status        string `json:"status"`
	AnalyzerReady bool   `json:"analyzer_ready"`
	Version       string `json:"version"`
}

type rootResponse struct {
	Service   string            `json:"service"`
	Version   string            `json:"version"`
	Status    string            `json:"status"`
	Endpoints map[string]string `json:"endpoints"`
}

type lemmaJSON struct {
	Key     string `json:"key"`
	Form    string `json:"form"`
	POS     string `json:"pos"`
	Note    string `json:"note"`
	Gloss   string `json:"gloss,omitempty"`
	Homonym int    `json:"homonym,omitempty"`
}

type readingJSON struct {
	FormWithMarks string `json:"form_with_marks"`
	Tag           string `json:"tag"`
	TagIndex      int    `json:"tag_index"`
}

type analysisJSON struct {
	Lemma    lemmaJSON     `json:"lemma"`
	Readings []readingJSON `json:"readings"`
}

type lemmatizeResponse struct {
	Form     string         `json:"form"`
	Analyses []analysisJSON `json:"analyses"`
}

type inflectionResponse struct {
	Lemma lemmaJSON           `json:"lemma"`
	Cells map[string][]string `json:"cells"`
}

type languagesResponse struct {
	Languages map[string]string `json:"languages"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// ---- helpers --------------------------------------------------------------

func toLemmaJSON(l *morph.Lemma) lemmaJSON {
	return lemmaJSON{
		Key:     l.Key,
		Form:    l.Bare,
		POS:     analyzer.UPOS(l.POS),
		Note:    l.Note,
		Gloss:   l.Gloss("fr"),
		Homonym: l.Homonym,
	}
}

func toAnalysesJSON(readings map[*morph.Lemma][]morph.Reading) []analysisJSON {
	out := make([]analysisJSON, 0, len(readings))
	for lemma, rs := range readings {
		rj := make([]readingJSON, 0, len(rs))
		for _, r := range rs {
			rj = append(rj, readingJSON{
				FormWithMarks: r.Marked,
				Tag:           r.Tag,
				TagIndex:      r.TagIdx,
			})
		}
		// sort readings by tag index for deterministic output
		sort.Slice(rj, func(i, j int) bool {
			return rj[i].TagIndex < rj[j].TagIndex
		})
		out = append(out, analysisJSON{Lemma: toLemmaJSON(lemma), Readings: rj})
	}
	// sort by lemma key for deterministic output
	sort.Slice(out, func(i, j int) bool {
		return out[i].Lemma.Key < out[j].Lemma.Key
	})
	return out
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.log.Error("encode response", zap.Error(err))
	}
}

func (s *Server) writeError(w http.ResponseWriter, status int, msg string) {
	s.writeJSON(w, status, errorResponse{Error: msg})
}

// ---- handlers ---------------------------------------------------------------

func (s *Server) handleRoot(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		s.writeError(w, http.StatusNotFound, "not found")
		return
	}
	if r.Method != http.MethodGet {
		s.writeError(w, http.StatusMethodNotAllowed, "GET required")
		return
	}
	s.writeJSON(w, http.StatusOK, rootResponse{
		Service: "Latin Analyzer API",
		Version: Version,
		Status:  "running",
		Endpoints: map[string]string{
			"health":     "/health",
			"analyze":    "/analyze (POST)",
			"lemmatize":  "/lemmatize?form=<word>",
			"inflection": "/inflection?lemma=<key>",
			"languages":  "/languages",
		},
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		s.writeError(w, http.StatusMethodNotAllowed, "GET required")
		return
	}
	s.writeJSON(w, http.StatusOK, healthResponse{
		Status:        "healthy",
		AnalyzerReady: s.svc.Ready(),
		Version:       Version,
	})
}

func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		s.writeError(w, http.StatusMethodNotAllowed, "POST required")
		return
	}
	var req analyzeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Text == "" {
		s.writeError(w, http.StatusBadRequest, "body must be JSON with a non-empty 'text' field")
		return
	}

	opts := analyzer.Options{
		IncludeMorphology:   req.IncludeMorphology == nil || *req.IncludeMorphology,
		IncludeDependencies: req.IncludeDependencies,
	}

	words, err := s.svc.Analyze(r.Context(), req.Text, opts)
	if err != nil {
		if errors.Is(err, analyzer.ErrNotReady) {
			s.writeError(w, http.StatusServiceUnavailable,
				"analyzer is not ready, please try again later")
			return
		}
		// Analysis failures are forwarded in the response body.
		s.log.Error("analysis failed", zap.Error(err))
		s.writeJSON(w, http.StatusOK, analyzeResponse{
			Success: false,
			Words:   []analyzer.WordAnalysis{},
			RawText: req.Text,
			Error:   err.Error(),
		})
		return
	}

	s.writeJSON(w, http.StatusOK, analyzeResponse{
		Success: true,
		Words:   words,
		RawText: req.Text,
	})
}

func (s *Server) handleLemmatize(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		s.writeError(w, http.StatusMethodNotAllowed, "GET required")
		return
	}
	form := r.URL.Query().Get("form")
	if form == "" {
		s.writeError(w, http.StatusBadRequest, "missing 'form' query parameter")
		return
	}
	sentenceStart, _ := strconv.ParseBool(r.URL.Query().Get("sentence_start"))

	readings, err := s.svc.Lemmatize(form, sentenceStart)
	if err != nil {
		s.writeError(w, http.StatusServiceUnavailable, err.Error())
		return
	}
	status := http.StatusOK
	if len(readings) == 0 {
		status = http.StatusNotFound
	}
	s.writeJSON(w, status, lemmatizeResponse{
		Form:     form,
		Analyses: toAnalysesJSON(readings),
	})
}

func (s *Server) handleInflection(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		s.writeError(w, http.StatusMethodNotAllowed, "GET required")
		return
	}
	key := r.URL.Query().Get("lemma")
	if key == "" {
		s.writeError(w, http.StatusBadRequest, "missing 'lemma' query parameter")
		return
	}

	table, err := s.svc.Inflect(key)
	if err != nil {
		switch {
		case errors.Is(err, analyzer.ErrUnknownLemma):
			s.writeError(w, http.StatusNotFound, fmt.Sprintf("lemma %q not found", key))
		case errors.Is(err, analyzer.ErrNoInflection):
			s.writeError(w, http.StatusNotFound, fmt.Sprintf("no inflection data for lemma %q", key))
		default:
			s.writeError(w, http.StatusServiceUnavailable, err.Error())
		}
		return
	}

	cells := make(map[string][]string, len(table.Cells))
	for idx, forms := range table.Cells {
		cells[strconv.Itoa(idx)] = forms
	}
	s.writeJSON(w, http.StatusOK, inflectionResponse{
		Lemma: toLemmaJSON(table.Lemma),
		Cells: cells,
	})
}

func (s *Server) handleLanguages(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		s.writeError(w, http.StatusMethodNotAllowed, "GET required")
		return
	}
	langs, err := s.svc.Languages()
	if err != nil {
		s.writeError(w, http.StatusServiceUnavailable, err.Error())
		return
	}
	s.writeJSON(w, http.StatusOK, languagesResponse{Languages: langs})
}
