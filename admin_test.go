package userpanel_test

import (
	"errors"
	"testing"

	"github.com/tinywasm/userpanel"
)

func TestConditionalField(t *testing.T) {
	el := newElement("passcode")
	f, err := userpanel.NewConditionalField(el)
	if err != nil {
		t.Fatalf("NewConditionalField: %v", err)
	}
	if f.Visible() || el.display != userpanel.DisplayNone {
		t.Fatalf("expected hidden initially, got %q", el.display)
	}

	steps := []struct {
		checked bool
		want    userpanel.DisplayMode
	}{
		{true, userpanel.DisplayBlock},
		{true, userpanel.DisplayBlock},
		{false, userpanel.DisplayNone},
		{false, userpanel.DisplayNone},
		{true, userpanel.DisplayBlock},
		{false, userpanel.DisplayNone},
	}
	for i, s := range steps {
		f.Set(s.checked)
		if el.display != s.want || f.Visible() != s.checked {
			t.Errorf("step %d: Set(%v) display=%q visible=%v", i, s.checked, el.display, f.Visible())
		}
	}
}

func TestConditionalFieldMissing(t *testing.T) {
	if _, err := userpanel.NewConditionalField(nil); !errors.Is(err, userpanel.ErrMissingElement) {
		t.Errorf("expected ErrMissingElement, got %v", err)
	}
}
