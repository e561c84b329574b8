package analyzer

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/cours-de-latin/latin-analyzer/internal/morph"
)

func TestMorphologyFromTag(t *testing.T) {
	tests := []struct {
		name string
		tag  string
		want *Morphology
	}{
		{
			name: "noun case and number",
			tag:  "nominatif singulier",
			want: &Morphology{Case: "Nom", Number: "Sing"},
		},
		{
			name: "genitive plural",
			tag:  "génitif pluriel",
			want: &Morphology{Case: "Gen", Number: "Plur"},
		},
		{
			name: "finite verb",
			tag:  "3ème singulier présent indicatif actif",
			want: &Morphology{Number: "Sing", Tense: "Pres", Voice: "Act", Mood: "Ind", Person: "3"},
		},
		{
			name: "infinitive",
			tag:  "infinitif présent actif",
			want: &Morphology{Tense: "Pres", Voice: "Act", Mood: "Inf"},
		},
		{
			name: "future perfect",
			tag:  "2ème pluriel futur antérieur indicatif actif",
			want: &Morphology{Number: "Plur", Tense: "FutPerf", Voice: "Act", Mood: "Ind", Person: "2"},
		},
		{
			name: "participle with gender and degree",
			tag:  "participe parfait passif masculin nominatif singulier positif",
			want: &Morphology{Case: "Nom", Number: "Sing", Gender: "Masc", Tense: "Perf", Voice: "Pass", Mood: "Part", Degree: "Pos"},
		},
		{
			name: "pluperfect subjunctive",
			tag:  "1ère singulier plus-que-parfait subjonctif passif",
			want: &Morphology{Number: "Sing", Tense: "Pqp", Voice: "Pass", Mood: "Sub", Person: "1"},
		},
		{
			name: "unrecognized",
			tag:  "invariable",
			want: nil,
		},
		{
			name: "empty",
			tag:  "",
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, MorphologyFromTag(tt.tag))
		})
	}
}

func TestUPOS(t *testing.T) {
	tests := []struct {
		pos  morph.PartOfSpeech
		want string
	}{
		{morph.POSNoun, "NOUN"},
		{morph.POSVerb, "VERB"},
		{morph.POSAdjective, "ADJ"},
		{morph.POSPronoun, "PRON"},
		{morph.POSAdverb, "ADV"},
		{morph.POSConjunction, "CCONJ"},
		{morph.POSPreposition, "ADP"},
		{morph.POSInterjection, "INTJ"},
		{morph.POSNumeral, "NUM"},
		{morph.POSUnknown, "X"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, UPOS(tt.pos), "pos %c", tt.pos)
	}
}
