package components

import "testing"

func TestColumnHeights(t *testing.T) {
	full := column(100, 100, 4)
	for i, r := range full {
		if r != '█' {
			t.Fatalf("full column row %d = %q, want full block", i, r)
		}
	}

	empty := column(0, 100, 4)
	for i, r := range empty {
		if r != ' ' {
			t.Fatalf("empty column row %d = %q, want blank", i, r)
		}
	}

	// tiny values still draw at least one eighth at the bottom
	tiny := column(0.1, 100, 4)
	if tiny[3] == ' ' {
		t.Fatal("tiny value drew nothing")
	}
	for i := 0; i < 3; i++ {
		if tiny[i] != ' ' {
			t.Fatalf("tiny value filled row %d", i)
		}
	}

	half := column(50, 100, 4)
	if half[3] != '█' || half[2] != '█' {
		t.Fatalf("half column bottom rows = %q %q, want full blocks", half[3], half[2])
	}
	if half[0] != ' ' || half[1] != ' ' {
		t.Fatalf("half column top rows = %q %q, want blank", half[0], half[1])
	}
}

func TestTruncate(t *testing.T) {
	if got := truncate("short", 10); got != "short" {
		t.Fatalf("truncate(short) = %q", got)
	}
	if got := truncate("a very long title", 8); got != "a very …" {
		t.Fatalf("truncate = %q", got)
	}
}
