package astro

import (
	"math"
	"strings"
	"testing"

	"github.com/soniakeys/unit"
)

func TestFormatDeg(t *testing.T) {
	got := FormatDeg(unit.AngleFromDeg(314.209398858))
	if !strings.HasPrefix(got, "314.20940") {
		t.Errorf("FormatDeg() = %q, want prefix 314.20940", got)
	}
}

func TestFormatRA(t *testing.T) {
	got := FormatRA(unit.RAFromRad(math.Pi / 2))
	if got == "" {
		t.Error("FormatRA() returned empty string")
	}
	if !strings.Contains(got, "6") {
		t.Errorf("FormatRA(90°) = %q, want the 6-hour mark in it", got)
	}
}

func TestFormatDec(t *testing.T) {
	got := FormatDec(unit.AngleFromDeg(-17.5))
	if got == "" {
		t.Error("FormatDec() returned empty string")
	}
	if !strings.Contains(got, "-") {
		t.Errorf("FormatDec(-17.5°) = %q, want a sign", got)
	}
}
