package utils

import (
	"reflect"
	"testing"
)

func TestSplitSeatList(t *testing.T) {
	cases := map[string][]string{
		"1a,2b,3c":  {"1A", "2B", "3C"},
		" 1a , 2B ": {"1A", "2B"},
		"1a,,2b":    {"1A", "2B"},
		"1a, ,2b":   {"1A", "", "2B"},
		"":          {},
	}
	for in, want := range cases {
		if got := SplitSeatList(in); !reflect.DeepEqual(got, want) {
			t.Fatalf("SplitSeatList(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestIsYes(t *testing.T) {
	for _, s := range []string{"yes", "YES", " Yes "} {
		if !IsYes(s) {
			t.Fatalf("IsYes(%q) = false", s)
		}
	}
	for _, s := range []string{"y", "no", "", "yess"} {
		if IsYes(s) {
			t.Fatalf("IsYes(%q) = true", s)
		}
	}
}

func TestFormatTaka(t *testing.T) {
	if got := FormatTaka(3600); got != "3600 Taka" {
		t.Fatalf("FormatTaka = %q", got)
	}
	if got := FormatTakaGrouped(1234567); got != "1,234,567 Taka" {
		t.Fatalf("FormatTakaGrouped = %q", got)
	}
}
