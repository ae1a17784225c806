package utils

import "testing"

func TestComputeFare(t *testing.T) {
	if got := ComputeFare(1, false); got != 1200 {
		t.Fatalf("route 1 = %d", got)
	}
	if got := ComputeFare(1, true); got != 1560 {
		t.Fatalf("route 1 AC = %d", got)
	}
	if got := ComputeFare(2, false); got != 800 {
		t.Fatalf("route 2 = %d", got)
	}
	if got := ComputeFare(9, true); got != 0 {
		t.Fatalf("unknown route AC = %d", got)
	}
}

func TestRouteName(t *testing.T) {
	if got := RouteName(3); got != "DHAKA-RANGPUR" {
		t.Fatalf("RouteName(3) = %q", got)
	}
	if got := RouteName(0); got != "-" {
		t.Fatalf("RouteName(0) = %q", got)
	}
	if len(Routes()) != 3 {
		t.Fatalf("expected 3 routes")
	}
}
