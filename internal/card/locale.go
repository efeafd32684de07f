package card

import (
	"encoding/json"
	"math"

	"golang.org/x/text/language"
)

// DefaultLanguage is the index used whenever the integration does not
// report an integer language (English).
const DefaultLanguage = 1

// Locale holds the display strings for one language.
type Locale struct {
	Tag         language.Tag `json:"-"`
	Now         string       `json:"now"`
	Forecast    string       `json:"forecast"`
	Pressure    string       `json:"pressure"`
	Rain        string       `json:"rain"`
	In3h        string       `json:"in3h"`
	Unavailable string       `json:"unavailable"`
}

// Index order is fixed by the integration: 0=de, 1=en, 2=el, 3=it, 4=fr.
var locales = [...]Locale{
	{Tag: language.German, Now: "Jetzt", Forecast: "Vorhersage", Pressure: "Druck", Rain: "Regen", In3h: "in 3 Std.", Unavailable: "Nicht verfügbar"},
	{Tag: language.English, Now: "Now", Forecast: "Forecast", Pressure: "Pressure", Rain: "Rain", In3h: "in 3h", Unavailable: "Unavailable"},
	{Tag: language.Greek, Now: "Τώρα", Forecast: "Πρόγνωση", Pressure: "Πίεση", Rain: "Βροχή", In3h: "σε 3 ώρες", Unavailable: "Μη διαθέσιμο"},
	{Tag: language.Italian, Now: "Adesso", Forecast: "Previsioni", Pressure: "Pressione", Rain: "Pioggia", In3h: "nelle prossime 3h", Unavailable: "Non disponibile"},
	{Tag: language.French, Now: "Maintenant", Forecast: "Prévisions", Pressure: "Pression", Rain: "Pluie", In3h: "en 3h", Unavailable: "Indisponible"},
}

var tagMatcher = language.NewMatcher(Tags())

// Tags returns the supported language tags in index order.
func Tags() []language.Tag {
	tags := make([]language.Tag, len(locales))
	for i, l := range locales {
		tags[i] = l.Tag
	}
	return tags
}

// ResolveLanguage maps any value to a table index. Integers are clamped to
// the table bounds; everything else, nil included, yields DefaultLanguage.
func ResolveLanguage(v any) int {
	n, ok := integerValue(v)
	if !ok {
		return DefaultLanguage
	}
	switch {
	case n < 0:
		return 0
	case n > float64(len(locales)-1):
		return len(locales) - 1
	}
	return int(n)
}

// Labels returns the locale record for the resolved index of v.
func Labels(v any) Locale {
	return locales[ResolveLanguage(v)]
}

// LanguageIndex returns the integration index closest to tag, or
// DefaultLanguage when none of the five languages matches.
func LanguageIndex(tag language.Tag) int {
	_, idx, conf := tagMatcher.Match(tag)
	if conf == language.No {
		return DefaultLanguage
	}
	return idx
}

func integerValue(v any) (float64, bool) {
	var f float64
	switch n := v.(type) {
	case int:
		return float64(n), true
	case int8:
		return float64(n), true
	case int16:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint8:
		return float64(n), true
	case uint16:
		return float64(n), true
	case uint32:
		return float64(n), true
	case uint64:
		return float64(n), true
	case float32:
		f = float64(n)
	case float64:
		f = n
	case json.Number:
		parsed, err := n.Float64()
		if err != nil {
			return 0, false
		}
		f = parsed
	default:
		return 0, false
	}
	if math.IsNaN(f) || math.IsInf(f, 0) || f != math.Trunc(f) {
		return 0, false
	}
	return f, true
}
