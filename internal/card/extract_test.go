package card

import (
	"math"
	"testing"
)

func TestFormatTemp(t *testing.T) {
	tests := []struct {
		in   any
		want string
	}{
		{nil, "-"},
		{"unavailable", "-"},
		{"abc", "-"},
		{21, "21.0°C"},
		{21.7, "21.7°C"},
		{"21.7", "21.7°C"},
		{" -3.26 ", "-3.3°C"},
		{float32(5), "5.0°C"},
		{math.NaN(), "-"},
		{math.Inf(-1), "-"},
		{[]any{1}, "-"},
	}
	for _, tt := range tests {
		if got := formatTemp(tt.in); got != tt.want {
			t.Fatalf("formatTemp(%#v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestSafeArray(t *testing.T) {
	fallback := []any{"--:--", 0}
	if got := safeArray("12:00", fallback); len(got) != 2 || got[0] != "--:--" {
		t.Fatalf("safeArray(string) = %#v, want fallback", got)
	}
	if got := safeArray(nil, nil); got != nil {
		t.Fatalf("safeArray(nil) = %#v, want nil", got)
	}
	if got := safeArray([]string{"a", "b"}, nil); len(got) != 2 || got[1] != "b" {
		t.Fatalf("safeArray([]string) = %#v", got)
	}
	if got := safeArray([]any{}, fallback); len(got) != 0 {
		t.Fatalf("safeArray(empty) = %#v, want empty", got)
	}
}

func TestAtFallsBackOnMissingOrNil(t *testing.T) {
	seq := []any{nil, "x"}
	if got := at(seq, 0, "fb"); got != "fb" {
		t.Fatalf("at(nil elem) = %v, want fb", got)
	}
	if got := at(seq, 1, "fb"); got != "x" {
		t.Fatalf("at(1) = %v, want x", got)
	}
	if got := at(seq, 5, "fb"); got != "fb" {
		t.Fatalf("at(out of range) = %v, want fb", got)
	}
}

func TestSlotTemps(t *testing.T) {
	tests := []struct {
		name   string
		series []any
		want   [2]string
	}{
		{"second slot", []any{18.5, 1.0}, [2]string{"-", "18.5°C"}},
		{"first slot", []any{"12", 0.0}, [2]string{"12.0°C", "-"}},
		{"string index", []any{7.3, "1"}, [2]string{"-", "7.3°C"}},
		{"unknown index", []any{18.5, 2.0}, [2]string{"-", "-"}},
		{"fractional index", []any{18.5, 0.5}, [2]string{"-", "-"}},
		{"null index", []any{18.5, nil}, [2]string{"-", "-"}},
		{"missing index", []any{18.5}, [2]string{"-", "-"}},
		{"unavailable temp", []any{"unavailable", 0.0}, [2]string{"-", "-"}},
		{"empty", nil, [2]string{"-", "-"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := slotTemps(tt.series); got != tt.want {
				t.Fatalf("slotTemps(%#v) = %q, want %q", tt.series, got, tt.want)
			}
		})
	}
}

func TestDisplayText(t *testing.T) {
	tests := []struct {
		in   any
		want string
	}{
		{"Fine", "Fine"},
		{0, "0"},
		{35.0, "35"},
		{-1.2, "-1.2"},
		{true, "true"},
		{[]any{"a", 1.0}, "a,1"},
	}
	for _, tt := range tests {
		if got := displayText(tt.in); got != tt.want {
			t.Fatalf("displayText(%#v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
