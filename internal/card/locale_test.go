package card

import (
	"encoding/json"
	"math"
	"testing"

	"golang.org/x/text/language"
)

func TestResolveLanguageInRange(t *testing.T) {
	want := []Locale{
		{Now: "Jetzt", Forecast: "Vorhersage", Pressure: "Druck", Rain: "Regen", In3h: "in 3 Std.", Unavailable: "Nicht verfügbar"},
		{Now: "Now", Forecast: "Forecast", Pressure: "Pressure", Rain: "Rain", In3h: "in 3h", Unavailable: "Unavailable"},
		{Now: "Τώρα", Forecast: "Πρόγνωση", Pressure: "Πίεση", Rain: "Βροχή", In3h: "σε 3 ώρες", Unavailable: "Μη διαθέσιμο"},
		{Now: "Adesso", Forecast: "Previsioni", Pressure: "Pressione", Rain: "Pioggia", In3h: "nelle prossime 3h", Unavailable: "Non disponibile"},
		{Now: "Maintenant", Forecast: "Prévisions", Pressure: "Pression", Rain: "Pluie", In3h: "en 3h", Unavailable: "Indisponible"},
	}

	for i, w := range want {
		if got := ResolveLanguage(i); got != i {
			t.Fatalf("ResolveLanguage(%d) = %d, want %d", i, got, i)
		}
		got := Labels(i)
		got.Tag = language.Tag{}
		if got != w {
			t.Fatalf("Labels(%d) = %+v, want %+v", i, got, w)
		}
	}
}

func TestResolveLanguageClampsIntegers(t *testing.T) {
	tests := []struct {
		in   any
		want int
	}{
		{-5, 0},
		{99, 4},
		{int64(-1), 0},
		{uint8(7), 4},
		{float64(3), 3},
		{float64(99), 4},
		{json.Number("2"), 2},
	}
	for _, tt := range tests {
		if got := ResolveLanguage(tt.in); got != tt.want {
			t.Fatalf("ResolveLanguage(%#v) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestResolveLanguageNonIntegerDefaultsToEnglish(t *testing.T) {
	for _, in := range []any{nil, "de", "2", 2.5, -0.5, true, math.NaN(), math.Inf(1), []any{1}, map[string]any{}} {
		if got := ResolveLanguage(in); got != DefaultLanguage {
			t.Fatalf("ResolveLanguage(%#v) = %d, want %d", in, got, DefaultLanguage)
		}
	}
	if got := Labels(nil).Now; got != "Now" {
		t.Fatalf("Labels(nil).Now = %q, want %q", got, "Now")
	}
}

func TestLanguageIndex(t *testing.T) {
	tests := []struct {
		tag  string
		want int
	}{
		{"de", 0},
		{"de-AT", 0},
		{"en-US", 1},
		{"el", 2},
		{"it-CH", 3},
		{"fr-CA", 4},
		{"ja", DefaultLanguage},
	}
	for _, tt := range tests {
		if got := LanguageIndex(language.MustParse(tt.tag)); got != tt.want {
			t.Fatalf("LanguageIndex(%s) = %d, want %d", tt.tag, got, tt.want)
		}
	}
}
