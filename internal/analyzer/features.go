package analyzer

import (
	"strings"

	"github.com/cours-de-latin/latin-analyzer/internal/morph"
)

// Morphology holds the structured morphological features of one reading.
// Values follow the Universal Dependencies inventory for Latin.
type Morphology struct {
	Case   string `json:"case,omitempty"`
	Number string `json:"number,omitempty"`
	Gender string `json:"gender,omitempty"`
	Tense  string `json:"tense,omitempty"`
	Voice  string `json:"voice,omitempty"`
	Mood   string `json:"mood,omitempty"`
	Person string `json:"person,omitempty"`
	Degree string `json:"degree,omitempty"`
}

// MorphologyFromTag parses an engine tag description — a space-separated
// French phrase such as "3ème singulier présent indicatif actif" — into
// structured features. Returns nil when no feature is recognized.
func MorphologyFromTag(tag string) *Morphology {
	var m Morphology
	found := false
	set := func(dst *string, v string) {
		if *dst == "" {
			*dst = v
			found = true
		}
	}

	for _, word := range strings.Fields(tag) {
		switch word {
		// case
		case "nominatif":
			set(&m.Case, "Nom")
		case "vocatif":
			set(&m.Case, "Voc")
		case "accusatif":
			set(&m.Case, "Acc")
		case "génitif":
			set(&m.Case, "Gen")
		case "datif":
			set(&m.Case, "Dat")
		case "ablatif":
			set(&m.Case, "Abl")
		case "locatif":
			set(&m.Case, "Loc")
		// number
		case "singulier":
			set(&m.Number, "Sing")
		case "pluriel":
			set(&m.Number, "Plur")
		// gender
		case "masculin":
			set(&m.Gender, "Masc")
		case "féminin":
			set(&m.Gender, "Fem")
		case "neutre":
			set(&m.Gender, "Neut")
		// tense
		case "présent":
			set(&m.Tense, "Pres")
		case "imparfait":
			set(&m.Tense, "Imp")
		case "futur":
			set(&m.Tense, "Fut")
		case "parfait":
			set(&m.Tense, "Perf")
		case "plus-que-parfait":
			set(&m.Tense, "Pqp")
		case "antérieur":
			// "futur antérieur"
			if m.Tense == "Fut" {
				m.Tense = "FutPerf"
			}
		// voice
		case "actif":
			set(&m.Voice, "Act")
		case "passif":
			set(&m.Voice, "Pass")
		// mood
		case "indicatif":
			set(&m.Mood, "Ind")
		case "subjonctif":
			set(&m.Mood, "Sub")
		case "impératif":
			set(&m.Mood, "Imp")
		case "infinitif":
			set(&m.Mood, "Inf")
		case "participe":
			set(&m.Mood, "Part")
		case "gérondif":
			set(&m.Mood, "Ger")
		case "supin":
			set(&m.Mood, "Sup")
		// person
		case "1ère":
			set(&m.Person, "1")
		case "2ème":
			set(&m.Person, "2")
		case "3ème":
			set(&m.Person, "3")
		// degree
		case "positif":
			set(&m.Degree, "Pos")
		case "comparatif":
			set(&m.Degree, "Cmp")
		case "superlatif":
			set(&m.Degree, "Sup")
		}
	}

	if !found {
		return nil
	}
	return &m
}

// UPOS maps the engine's part-of-speech codes to Universal Dependencies
// POS tags.
func UPOS(p morph.PartOfSpeech) string {
	switch p {
	case morph.POSNoun:
		return "NOUN"
	case morph.POSVerb:
		return "VERB"
	case morph.POSAdjective:
		return "ADJ"
	case morph.POSPronoun:
		return "PRON"
	case morph.POSAdverb:
		return "ADV"
	case morph.POSConjunction:
		return "CCONJ"
	case morph.POSPreposition:
		return "ADP"
	case morph.POSInterjection, morph.POSExclamation:
		return "INTJ"
	case morph.POSNumeral:
		return "NUM"
	default:
		return "X"
	}
}
