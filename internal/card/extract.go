package card

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
)

const (
	dash        = "-"
	unavailable = "unavailable"
)

// Fallback sequences used when an attribute is missing or not a list.
var (
	fallbackRain  = []any{0, 0}
	fallbackIcons = []any{"mdi:weather-cloudy", "mdi:weather-cloudy"}
	fallbackTime  = []any{"--:--", 0}
)

// safeArray returns v as a sequence, or fallback when v is not one.
func safeArray(v any, fallback []any) []any {
	switch s := v.(type) {
	case []any:
		return s
	case []string:
		out := make([]any, len(s))
		for i, x := range s {
			out[i] = x
		}
		return out
	case []float64:
		out := make([]any, len(s))
		for i, x := range s {
			out[i] = x
		}
		return out
	case []int:
		out := make([]any, len(s))
		for i, x := range s {
			out[i] = x
		}
		return out
	}
	return fallback
}

// at returns seq[i], or fallback when the element is missing or nil.
func at(seq []any, i int, fallback any) any {
	if i < 0 || i >= len(seq) || seq[i] == nil {
		return fallback
	}
	return seq[i]
}

// toNumber coerces v the way the integration's numeric attributes are
// meant to be read: numbers as-is, bools as 0/1, numeric strings parsed
// (blank strings count as 0). Non-finite results are not numbers.
func toNumber(v any) (float64, bool) {
	var f float64
	switch n := v.(type) {
	case nil:
		return 0, false
	case bool:
		if n {
			return 1, true
		}
		return 0, true
	case string:
		s := strings.TrimSpace(n)
		if s == "" {
			return 0, true
		}
		parsed, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return 0, false
		}
		f = parsed
	case json.Number:
		parsed, err := n.Float64()
		if err != nil {
			return 0, false
		}
		f = parsed
	case float64:
		f = n
	case float32:
		f = float64(n)
	default:
		// remaining integer kinds
		return integerValue(v)
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}

// formatTemp renders a temperature with one decimal and a Celsius suffix.
// Missing, "unavailable" and non-numeric values render as a dash.
func formatTemp(v any) string {
	if v == nil {
		return dash
	}
	if s, ok := v.(string); ok && s == unavailable {
		return dash
	}
	n, ok := toNumber(v)
	if !ok {
		return dash
	}
	return strconv.FormatFloat(n, 'f', 1, 64) + "°C"
}

// slotTemps routes the next temperature to the slot named by its index.
// Any index other than 0 or 1 leaves both slots dashed.
func slotTemps(series []any) [2]string {
	out := [2]string{dash, dash}
	idx, ok := toNumber(at(series, 1, nil))
	if !ok {
		return out
	}
	switch idx {
	case 0:
		out[0] = formatTemp(at(series, 0, nil))
	case 1:
		out[1] = formatTemp(at(series, 0, nil))
	}
	return out
}

// displayText turns a scalar attribute into the text shown on the card.
func displayText(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return x
	case bool:
		return strconv.FormatBool(x)
	case float64:
		return formatNumber(x)
	case float32:
		return formatNumber(float64(x))
	case json.Number:
		return x.String()
	case []any:
		parts := make([]string, len(x))
		for i, e := range x {
			parts[i] = displayText(e)
		}
		return strings.Join(parts, ",")
	}
	return fmt.Sprint(v)
}

func formatNumber(f float64) string {
	if math.Abs(f) >= 1e21 {
		return strconv.FormatFloat(f, 'g', -1, 64)
	}
	return strconv.FormatFloat(f, 'f', -1, 64)
}
