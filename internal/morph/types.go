package morph

// PartOfSpeech is the grammatical category of a lemma.
type PartOfSpeech rune

const (
	POSNoun         PartOfSpeech = 'n'
	POSVerb         PartOfSpeech = 'v'
	POSAdjective    PartOfSpeech = 'a'
	POSPronoun      PartOfSpeech = 'p'
	POSAdverb       PartOfSpeech = 'd'
	POSConjunction  PartOfSpeech = 'c'
	POSExclamation  PartOfSpeech = 'e'
	POSInterjection PartOfSpeech = 'i'
	POSNumeral      PartOfSpeech = 'm'
	POSPreposition  PartOfSpeech = 'r'
	POSUnknown      PartOfSpeech = '-'
)

// Reading is one morphological reading of a word form.
type Reading struct {
	// Marked is the form with vowel quantity marks (stem + ending).
	Marked string
	// Tag is the human-readable morphological tag, e.g.
	// "nominatif singulier".
	Tag string
	// TagIdx is the 1-based index into the engine's tag list.
	TagIdx int
}

// TokenReadings holds the readings of a single token of running text.
type TokenReadings struct {
	// Token is the word form as it appeared in the text.
	Token string
	// Readings maps each candidate lemma to its readings.
	Readings map[*Lemma][]Reading
}

// Table is the full inflection table of a lemma.
type Table struct {
	// Lemma is the lemma the table was computed for.
	Lemma *Lemma
	// Cells maps tag index (1-based) to the inflected forms.
	Cells map[int][]string
}
