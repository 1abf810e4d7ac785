package theme

import "testing"

func TestByName(t *testing.T) {
	for _, name := range Names() {
		th, ok := ByName(name)
		if !ok {
			t.Fatalf("ByName(%q) not found", name)
		}
		if th.Name != name {
			t.Fatalf("ByName(%q) returned theme %q", name, th.Name)
		}
	}

	if _, ok := ByName("nope"); ok {
		t.Fatal("ByName accepted an unknown theme")
	}
}

func TestSetActiveIgnoresUnknown(t *testing.T) {
	prev := Active
	defer func() { Active = prev }()

	SetActive("catppuccin-mocha")
	if Active.Name != "catppuccin-mocha" {
		t.Fatalf("Active = %q, want catppuccin-mocha", Active.Name)
	}

	SetActive("does-not-exist")
	if Active.Name != "catppuccin-mocha" {
		t.Fatalf("unknown name changed Active to %q", Active.Name)
	}
}
