package morph

import (
	"regexp"
	"strings"
	"unicode"
)

// markStripper removes vowel quantity marks (macrons and breves) from
// lowercase and uppercase letters.
var markStripper = strings.NewReplacer(
	// lowercase macrons and breves
	"ā", "a", // ā → a
	"ă", "a", // ă → a
	"ē", "e", // ē → e
	"ĕ", "e", // ĕ → e
	"ī", "i", // ī → i
	"ĭ", "i", // ĭ → i
	"ō", "o", // ō → o
	"ŏ", "o", // ŏ → o
	"ū", "u", // ū → u
	"ŭ", "u", // ŭ → u
	"ȳ", "y", // ȳ → y
	"ў", "y", // ў → y
	// uppercase macrons and breves
	"Ā", "A", // Ā → A
	"Ă", "A", // Ă → A
	"Ē", "E", // Ē → E
	"Ĕ", "E", // Ĕ → E
	"Ī", "I", // Ī → I
	"Ĭ", "I", // Ĭ → I
	"Ō", "O", // Ō → O
	"Ŏ", "O", // Ŏ → O
	"Ū", "U", // Ū → U
	"Ŭ", "U", // Ŭ → U
	"Ȳ", "Y", // Ȳ → Y
	"Ў", "Y", // Ў → Y
)

// StripMarks removes all vowel-quantity diacritics from s, including the
// combining breve used to mark common quantity.
func StripMarks(s string) string {
	s = markStripper.Replace(s)
	return strings.ReplaceAll(s, "̆", "")
}

// classicalReplacer converts Ramist spelling (j/v) to classical (i/u) and
// expands the æ/œ ligatures, the convention the Collatinus data files use
// for lookup keys.
var classicalReplacer = strings.NewReplacer(
	"J", "I",
	"j", "i",
	"v", "u",
	"V", "U",
	"æ", "ae", // æ → ae
	"Æ", "Ae", // Æ → Ae
	"œ", "oe", // œ → oe
	"Œ", "Oe", // Œ → Oe
	"ụ", "u", // ụ (silent u in suavis, suadeo, …) → u
)

// ToClassical rewrites s in classical orthography: j→i, v→u and ligature
// expansion.
func ToClassical(s string) string {
	return classicalReplacer.Replace(s)
}

// commonMarkRules mark bare vowels as common quantity (macron + combining
// breve). Patterns use literal Unicode characters since Go regexp has no
// \uXXXX escapes.
var commonMarkRules = []struct {
	re  *regexp.Regexp
	rep string
}{
	// a → ā̆ (always)
	{regexp.MustCompile("a"), "ā̆"},
	// e → ē̆ (not after ā U+0101, ă U+0103, ō U+014d — diphthong ae/oe)
	{regexp.MustCompile("([^āăō])e"), "${1}ē̆"},
	{regexp.MustCompile("^e"), "ē̆"},
	// i → ī̆ (always)
	{regexp.MustCompile("i"), "ī̆"},
	// o → ō̆ (always)
	{regexp.MustCompile("o"), "ō̆"},
	// u → ū̆ (not after ā U+0101, ē U+0113, q)
	{regexp.MustCompile("([^āēq])u"), "${1}ū̆"},
	{regexp.MustCompile("^u"), "ū̆"},
	// y → ȳ̆ (not after ā U+0101)
	{regexp.MustCompile("([^ā])y"), "${1}ȳ̆"},
	{regexp.MustCompile("^y"), "ȳ̆"},
}

// MarkCommon marks every unquantified vowel in g as common quantity, for
// display of stems whose data carries no explicit marks.
func MarkCommon(g string) string {
	if g == "" {
		return g
	}
	upper := unicode.IsUpper([]rune(g)[0])
	lower := strings.ToLower(g)
	for _, r := range commonMarkRules {
		lower = r.re.ReplaceAllString(lower, r.rep)
	}
	if upper && len([]rune(lower)) > 0 {
		runes := []rune(lower)
		runes[0] = unicode.ToUpper(runes[0])
		lower = string(runes)
	}
	return lower
}

// CanonicalKey returns the canonical lookup key for a lexicon entry:
// quantity marks stripped, classical orthography. The two operations act on
// disjoint character sets, so their order does not matter.
func CanonicalKey(s string) string {
	return StripMarks(ToClassical(s))
}
