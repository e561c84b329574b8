package morph

import "testing"

func TestNormalize(t *testing.T) {
	tests := []struct {
		fn   string
		in   string
		want string
	}{
		{"ToClassical", "julius", "iulius"},
		{"ToClassical", "Julius", "Iulius"},
		{"ToClassical", "veni", "ueni"},
		{"ToClassical", "Venus", "Uenus"},
		{"ToClassical", "æquus", "aequus"},
		{"StripMarks", "ā", "a"},
		{"StripMarks", "ē", "e"},
		{"StripMarks", "ī", "i"},
		{"StripMarks", "ō", "o"},
		{"StripMarks", "ū", "u"},
		{"StripMarks", "ȳ", "y"},
		{"StripMarks", "Ā", "A"},
		{"StripMarks", "ā̆blŭo", "abluo"},
		{"CanonicalKey", "puella", "puella"},
		{"CanonicalKey", "pūella", "puella"},
		{"CanonicalKey", "vīta", "uita"},
	}
	for _, tt := range tests {
		var got string
		switch tt.fn {
		case "ToClassical":
			got = ToClassical(tt.in)
		case "StripMarks":
			got = StripMarks(tt.in)
		case "CanonicalKey":
			got = CanonicalKey(tt.in)
		}
		if got != tt.want {
			t.Errorf("%s(%q) = %q, want %q", tt.fn, tt.in, got, tt.want)
		}
	}
}

func TestMarkCommon(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"", ""},
		{"lup", "lū̆p"},
		{"qu", "qu"}, // u after q is not a vowel
	}
	for _, tt := range tests {
		if got := MarkCommon(tt.in); got != tt.want {
			t.Errorf("MarkCommon(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestParseIndexList(t *testing.T) {
	tests := []struct {
		in   string
		want []int
	}{
		{"1-6", []int{1, 2, 3, 4, 5, 6}},
		{"1,3,5", []int{1, 3, 5}},
		{"1-3,5,7-9", []int{1, 2, 3, 5, 7, 8, 9}},
		{"10", []int{10}},
	}
	for _, tt := range tests {
		got := parseIndexList(tt.in)
		if len(got) != len(tt.want) {
			t.Errorf("parseIndexList(%q) = %v, want %v", tt.in, got, tt.want)
			continue
		}
		for i := range got {
			if got[i] != tt.want[i] {
				t.Errorf("parseIndexList(%q)[%d] = %d, want %d", tt.in, i, got[i], tt.want[i])
			}
		}
	}
}

func TestSplitHomonym(t *testing.T) {
	tests := []struct {
		in      string
		want    string
		wantNum int
	}{
		{"populus", "populus", 0},
		{"populus2", "populus", 2},
		{"", "", 0},
	}
	for _, tt := range tests {
		got, num := splitHomonym(tt.in)
		if got != tt.want || num != tt.wantNum {
			t.Errorf("splitHomonym(%q) = (%q, %d), want (%q, %d)", tt.in, got, num, tt.want, tt.wantNum)
		}
	}
}
