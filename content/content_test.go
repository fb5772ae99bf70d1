package content

import (
	"math/rand"
	"os"
	"path/filepath"
	"slices"
	"testing"
)

func TestLoadPhrases(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name    string
		content *string
		want    []string
	}{
		{"missing file", nil, []string{DefaultPhrase}},
		{"empty file", ptr("\n  \n"), []string{DefaultPhrase}},
		{"skips blanks and trims", ptr("Recicle!\n\n  Rio limpo  \r\nMenos plástico\n"), []string{"Recicle!", "Rio limpo", "Menos plástico"}},
	}
	for i, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(dir, "phrases"+string(rune('a'+i))+".txt")
			if tt.content != nil {
				if err := os.WriteFile(path, []byte(*tt.content), 0644); err != nil {
					t.Fatal(err)
				}
			}
			got := LoadPhrases(path)
			if !slices.Equal(got, tt.want) {
				t.Errorf("LoadPhrases() = %q, want %q", got, tt.want)
			}
		})
	}
}

func ptr(s string) *string { return &s }

func TestPick(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	if got := Pick(nil, rng); got != DefaultPhrase {
		t.Errorf("Pick(nil) = %q, want default", got)
	}
	phrases := []string{"a", "b", "c"}
	for i := 0; i < 50; i++ {
		if got := Pick(phrases, rng); !slices.Contains(phrases, got) {
			t.Fatalf("Pick() = %q, not in list", got)
		}
	}
}

func TestWrap(t *testing.T) {
	// One unit per character
	width := func(s string) float64 { return float64(len(s)) }

	tests := []struct {
		name string
		text string
		max  float64
		want []string
	}{
		{"fits", "Rio limpo", 20, []string{"Rio limpo"}},
		{"empty", "   ", 20, nil},
		{"greedy", "preserve a natureza do rio", 12, []string{"preserve a", "natureza do", "rio"}},
		{"long word alone", "a extraordinariamente b", 8, []string{"a", "extraordinariamente", "b"}},
		{"collapses spaces", "a   b", 20, []string{"a b"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Wrap(tt.text, tt.max, width)
			if !slices.Equal(got, tt.want) {
				t.Errorf("Wrap(%q, %v) = %q, want %q", tt.text, tt.max, got, tt.want)
			}
		})
	}
}

func TestCategoryColor(t *testing.T) {
	if c := CategoryColor("plastic"); c.R != 255 || c.G != 0 {
		t.Errorf("plastic = %v, want red", c)
	}
	if c := CategoryColor("nope"); c.R != 255 || c.G != 255 || c.B != 255 {
		t.Errorf("unknown = %v, want white", c)
	}
}
