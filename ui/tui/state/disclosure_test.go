package state

import "testing"

func TestDisclosureSingleMode(t *testing.T) {
	d := NewDisclosure(ModeSingle)

	d.Open(int64(1))
	if !d.IsOpen(int64(1)) {
		t.Fatal("expected card 1 open")
	}

	d.Open(int64(2))
	if d.IsOpen(int64(1)) {
		t.Error("single mode should close card 1 when card 2 opens")
	}
	if !d.IsOpen(int64(2)) {
		t.Error("expected card 2 open")
	}
	if d.OpenCount() != 1 {
		t.Errorf("expected 1 open card, got %d", d.OpenCount())
	}
}

func TestDisclosureMultiMode(t *testing.T) {
	d := NewDisclosure(ModeMulti)

	d.Open(int64(1))
	d.Open(int64(2))
	if d.OpenCount() != 2 {
		t.Fatalf("expected 2 open cards, got %d", d.OpenCount())
	}

	d.Toggle(int64(1))
	if d.IsOpen(int64(1)) {
		t.Error("toggle should close an open card")
	}
	if !d.IsOpen(int64(2)) {
		t.Error("closing card 1 must not affect card 2")
	}

	d.CloseAll()
	if d.OpenCount() != 0 {
		t.Errorf("expected everything closed, got %d", d.OpenCount())
	}
}

func TestDisclosureKeysByStringRepresentation(t *testing.T) {
	d := NewDisclosure(ModeMulti)

	d.Open(42)
	if !d.IsOpen("42") {
		t.Error("numeric and string ids that print alike should match")
	}
	d.Close("42")
	if d.IsOpen(42) {
		t.Error("expected card closed via string key")
	}
}

func TestDisclosureOpenAll(t *testing.T) {
	d := NewDisclosure(ModeMulti)
	d.OpenAll([]any{int64(1), int64(2), int64(3)})
	if d.OpenCount() != 3 {
		t.Errorf("expected 3 open cards, got %d", d.OpenCount())
	}

	s := NewDisclosure(ModeSingle)
	s.OpenAll([]any{int64(1), int64(2), int64(3)})
	if s.OpenCount() != 1 || !s.IsOpen(int64(3)) {
		t.Errorf("single mode OpenAll should keep only the last id, got %d open", s.OpenCount())
	}
}
