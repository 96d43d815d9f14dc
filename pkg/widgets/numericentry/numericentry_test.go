package numericentry

import (
	"testing"

	"fyne.io/fyne/v2/test"
)

func TestTypedRune(t *testing.T) {
	test.NewApp()
	e := New()
	for _, r := range "1a2,5-" {
		e.TypedRune(r)
	}
	if e.Text != "12,5" {
		t.Fatalf("Text = %q, want %q", e.Text, "12,5")
	}
	v, err := e.Float()
	if err != nil {
		t.Fatalf("Float() failed: %v", err)
	}
	if v != 12.5 {
		t.Errorf("Float() = %v, want 12.5", v)
	}
}

func TestSetFloat(t *testing.T) {
	test.NewApp()
	e := New()
	e.SetFloat(180)
	if e.Text != "180" {
		t.Errorf("Text = %q, want 180", e.Text)
	}
	e.SetText("abc")
	if _, err := e.Float(); err == nil {
		t.Error("Float() succeeded unexpectedly")
	}
}
