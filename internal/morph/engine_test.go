package morph

import (
	"strings"
	"testing"
)

const dataDir = "testdata"

func mustLoad(t *testing.T) *Engine {
	t.Helper()
	e, err := Load(dataDir)
	if err != nil {
		t.Fatalf("Load(%q): %v", dataDir, err)
	}
	return e
}

func TestLoad(t *testing.T) {
	e := mustLoad(t)
	if len(e.tags)-1 != 19 {
		t.Errorf("loaded %d tags, want 19", len(e.tags)-1)
	}
	if len(e.paradigms) != 4 {
		t.Errorf("loaded %d paradigms, want 4", len(e.paradigms))
	}
	if len(e.lemmas) != 8 {
		t.Errorf("loaded %d lemmas, want 8", len(e.lemmas))
	}
}

func TestLoadMissingDir(t *testing.T) {
	if _, err := Load("testdata/nonexistent"); err == nil {
		t.Fatal("Load of a missing directory succeeded")
	}
}

func TestTag(t *testing.T) {
	e := mustLoad(t)
	if got := e.Tag(1); got != "nominatif singulier" {
		t.Errorf("Tag(1) = %q, want %q", got, "nominatif singulier")
	}
	if got := e.Tag(0); got != "" {
		t.Errorf("Tag(0) = %q, want empty", got)
	}
	if got := e.Tag(100); got != "" {
		t.Errorf("Tag(100) = %q, want empty", got)
	}
}

func TestLemmaGloss(t *testing.T) {
	e := mustLoad(t)
	lemma := e.Lemma("puella")
	if lemma == nil {
		t.Fatal("Lemma('puella') is nil")
	}
	if got := lemma.Gloss("fr"); got != "jeune fille" {
		t.Errorf("Gloss('fr') = %q, want %q", got, "jeune fille")
	}
	// Unknown language falls back to French.
	if got := lemma.Gloss("de"); got != "jeune fille" {
		t.Errorf("Gloss('de') = %q, want French fallback", got)
	}
}

func TestLanguages(t *testing.T) {
	e := mustLoad(t)
	langs := e.Languages()
	if langs["fr"] != "Français" {
		t.Errorf("Languages()[fr] = %q, want %q", langs["fr"], "Français")
	}
}

func TestAnalyzePuellae(t *testing.T) {
	e := mustLoad(t)
	result := e.Analyze("puellae", false)
	if len(result) == 0 {
		t.Fatal("Analyze('puellae') returned no readings")
	}

	var found *Lemma
	for lemma := range result {
		if lemma.Key == "puella" {
			found = lemma
			break
		}
	}
	if found == nil {
		t.Fatalf("Analyze('puellae') did not find lemma 'puella'; got %d lemmas", len(result))
	}

	// genitive/dative singular + nominative/vocative plural
	if got := len(result[found]); got != 4 {
		t.Errorf("expected 4 readings for puellae, got %d: %v", got, result[found])
	}
}

func TestAnalyzeAmat(t *testing.T) {
	e := mustLoad(t)
	result := e.Analyze("amat", false)

	var found *Lemma
	for lemma := range result {
		if lemma.Key == "amo" {
			found = lemma
			break
		}
	}
	if found == nil {
		t.Fatal("Analyze('amat') did not find lemma 'amo'")
	}
	readings := result[found]
	if len(readings) != 1 {
		t.Fatalf("expected 1 reading for amat, got %d", len(readings))
	}
	if readings[0].Marked != "ămăt" {
		t.Errorf("Marked = %q, want %q", readings[0].Marked, "ămăt")
	}
	if !strings.Contains(readings[0].Tag, "3ème singulier") {
		t.Errorf("Tag = %q, want a 3rd person singular tag", readings[0].Tag)
	}
}

func TestAnalyzeRamistSpelling(t *testing.T) {
	e := mustLoad(t)
	// "vita" is the Ramist spelling of "uita"; both must resolve, and the
	// classical spelling must not be blocked by the v-count check.
	for _, form := range []string{"vita", "uita"} {
		result := e.Analyze(form, false)
		found := false
		for lemma := range result {
			if lemma.Key == "uita" {
				found = true
			}
		}
		if !found {
			t.Errorf("Analyze(%q) did not find lemma 'uita'", form)
		}
	}
}

func TestAnalyzeIrregular(t *testing.T) {
	e := mustLoad(t)
	result := e.Analyze("est", false)

	var found *Lemma
	for lemma := range result {
		if lemma.Key == "sum" {
			found = lemma
			break
		}
	}
	if found == nil {
		t.Fatal("Analyze('est') did not find lemma 'sum'")
	}
	readings := result[found]
	if len(readings) != 1 {
		t.Fatalf("expected 1 reading for est, got %d", len(readings))
	}
	if readings[0].TagIdx != 15 {
		t.Errorf("TagIdx = %d, want 15", readings[0].TagIdx)
	}
}

func TestAnalyzeEncliticStripping(t *testing.T) {
	e := mustLoad(t)
	result := e.Analyze("populusque", false)
	if len(result) == 0 {
		t.Fatal("Analyze('populusque') returned no readings")
	}

	found := false
	for lemma := range result {
		if lemma.Bare == "populus" {
			found = true
			break
		}
	}
	if !found {
		t.Error("Analyze('populusque') did not find lemma 'populus'")
	}
}

func TestAnalyzeSentenceStart(t *testing.T) {
	e := mustLoad(t)
	// Capitalized only because it opens a sentence.
	result := e.Analyze("Puella", true)
	found := false
	for lemma := range result {
		if lemma.Key == "puella" {
			found = true
		}
	}
	if !found {
		t.Error("Analyze('Puella', sentenceStart) did not find lemma 'puella'")
	}

	// Without the sentence-start hint the capitalized form stays unknown.
	if result := e.Analyze("Puella", false); len(result) != 0 {
		t.Errorf("Analyze('Puella', false) = %d lemmas, want 0", len(result))
	}
}

func TestAnalyzeHomonyms(t *testing.T) {
	e := mustLoad(t)
	result := e.Analyze("populi", false)
	if len(result) != 2 {
		t.Fatalf("Analyze('populi') = %d lemmas, want 2 (populus m. and f.)", len(result))
	}
	for lemma := range result {
		if lemma.Key == "populus2" && lemma.Homonym != 2 {
			t.Errorf("populus2 Homonym = %d, want 2", lemma.Homonym)
		}
	}
}

func TestAnalyzeUnknown(t *testing.T) {
	e := mustLoad(t)
	if result := e.Analyze("xyzzy", false); len(result) != 0 {
		t.Errorf("Analyze('xyzzy') = %d lemmas, want 0", len(result))
	}
}

func TestAnalyzeText(t *testing.T) {
	e := mustLoad(t)
	results := e.AnalyzeText("Puella lupum amat.")
	if len(results) != 3 {
		t.Fatalf("AnalyzeText returned %d tokens, want 3", len(results))
	}
	if results[0].Token != "Puella" {
		t.Errorf("token[0] = %q, want %q", results[0].Token, "Puella")
	}
	// First token gets the sentence-start treatment.
	if len(results[0].Readings) == 0 {
		t.Error("no readings for sentence-initial 'Puella'")
	}
	if len(results[1].Readings) == 0 {
		t.Error("no readings for 'lupum'")
	}
	if len(results[2].Readings) == 0 {
		t.Error("no readings for 'amat'")
	}
}

func TestInflectLupus(t *testing.T) {
	e := mustLoad(t)
	lemma := e.Lemma("lupus")
	if lemma == nil {
		t.Fatal("Lemma('lupus') is nil")
	}
	table := e.Inflect(lemma)
	if table == nil {
		t.Fatal("Inflect returned nil")
	}
	for i := 1; i <= 12; i++ {
		if forms, ok := table.Cells[i]; !ok || len(forms) == 0 {
			t.Errorf("lupus inflection table missing cell %d", i)
		}
	}
	if got := table.Cells[1][0]; got != "lŭpŭs" {
		t.Errorf("nominative singular = %q, want %q", got, "lŭpŭs")
	}
}

func TestInflectIrregular(t *testing.T) {
	e := mustLoad(t)
	lemma := e.Lemma("sum")
	if lemma == nil {
		t.Fatal("Lemma('sum') is nil")
	}
	table := e.Inflect(lemma)
	if table == nil {
		t.Fatal("Inflect returned nil")
	}
	// Exclusive irregulars replace the paradigm's regular forms.
	if got := table.Cells[13]; len(got) != 1 || got[0] != "sŭm" {
		t.Errorf("cell 13 = %v, want [sŭm]", got)
	}
	if got := table.Cells[19]; len(got) != 1 || got[0] != "ĕssĕ" {
		t.Errorf("cell 19 = %v, want [ĕssĕ]", got)
	}
}

func TestInflectNil(t *testing.T) {
	e := mustLoad(t)
	if table := e.Inflect(nil); table != nil {
		t.Errorf("Inflect(nil) = %v, want nil", table)
	}
}

func TestAssimilation(t *testing.T) {
	e := mustLoad(t)
	if got := e.assimilate("adfero"); got != "affero" {
		t.Errorf("assimilate('adfero') = %q, want %q", got, "affero")
	}
	if got := e.deassimilate("affero"); got != "adfero" {
		t.Errorf("deassimilate('affero') = %q, want %q", got, "adfero")
	}
}

func TestExpandContraction(t *testing.T) {
	e := mustLoad(t)
	if got := e.expandContraction("amarunt"); got != "amauerunt" {
		t.Errorf("expandContraction('amarunt') = %q, want %q", got, "amauerunt")
	}
	if got := e.expandContraction("amat"); got != "amat" {
		t.Errorf("expandContraction('amat') = %q, want unchanged", got)
	}
}
