package domain

import "testing"

func TestParseSeatCode(t *testing.T) {
	cases := []struct {
		token string
		want  SeatCode
		ok    bool
	}{
		{"1A", SeatCode{Row: 0, Column: 0}, true},
		{"1a", SeatCode{Row: 0, Column: 0}, true},
		{"9D", SeatCode{Row: 8, Column: 3}, true},
		{"3c", SeatCode{Row: 2, Column: 2}, true},
		{"0A", SeatCode{}, false},
		{"11A", SeatCode{}, false},
		{"10A", SeatCode{}, false},
		{"1E", SeatCode{}, false},
		{"A1", SeatCode{}, false},
		{"1", SeatCode{}, false},
		{"", SeatCode{}, false},
		{"1-", SeatCode{}, false},
	}
	for _, tc := range cases {
		got, err := ParseSeatCode(tc.token)
		if tc.ok {
			if err != nil {
				t.Fatalf("ParseSeatCode(%q) unexpected error: %v", tc.token, err)
			}
			if got != tc.want {
				t.Fatalf("ParseSeatCode(%q) = %+v, want %+v", tc.token, got, tc.want)
			}
			continue
		}
		if err == nil {
			t.Fatalf("ParseSeatCode(%q) expected error, got %+v", tc.token, got)
		}
		if !IsValidation(err) {
			t.Fatalf("ParseSeatCode(%q) error should be a validation error, got %T", tc.token, err)
		}
	}
}

func TestSeatCodeString(t *testing.T) {
	if got := (SeatCode{Row: 2, Column: 1}).String(); got != "3B" {
		t.Fatalf("String() = %q, want 3B", got)
	}
}
