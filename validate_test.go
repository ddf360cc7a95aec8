package userpanel_test

import (
	"errors"
	"testing"

	"github.com/tinywasm/userpanel"
)

func TestCheckProfileEdit(t *testing.T) {
	tests := []struct {
		name  string
		in    userpanel.ProfileEdit
		field string
	}{
		{"match", userpanel.ProfileEdit{Email: "a@x.com", ConfirmEmail: "a@x.com", Nickname: "bob", ConfirmNickname: "bob"}, ""},
		{"email differs", userpanel.ProfileEdit{Email: "a@x.com", ConfirmEmail: "b@x.com", Nickname: "bob", ConfirmNickname: "bob"}, userpanel.FieldEmail},
		{"email checked first", userpanel.ProfileEdit{Email: "a@x.com", ConfirmEmail: "b@x.com", Nickname: "bob", ConfirmNickname: "al"}, userpanel.FieldEmail},
		{"nickname differs", userpanel.ProfileEdit{Email: "a@x.com", ConfirmEmail: "a@x.com", Nickname: "bob", ConfirmNickname: "rob"}, userpanel.FieldNickname},
		{"case sensitive", userpanel.ProfileEdit{Email: "A@x.com", ConfirmEmail: "a@x.com", Nickname: "bob", ConfirmNickname: "bob"}, userpanel.FieldEmail},
		{"no trimming", userpanel.ProfileEdit{Email: "a@x.com", ConfirmEmail: "a@x.com", Nickname: "bob", ConfirmNickname: "bob "}, userpanel.FieldNickname},
		{"empty pairs match", userpanel.ProfileEdit{}, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := userpanel.CheckProfileEdit(tt.in)
			if tt.field == "" {
				if err != nil {
					t.Fatalf("expected nil, got %v", err)
				}
				return
			}
			var fm *userpanel.FieldMismatch
			if !errors.As(err, &fm) {
				t.Fatalf("expected *FieldMismatch, got %v", err)
			}
			if fm.Field != tt.field {
				t.Errorf("expected field %q, got %q", tt.field, fm.Field)
			}
			if !errors.Is(err, userpanel.ErrFieldMismatch) {
				t.Error("expected errors.Is ErrFieldMismatch")
			}
		})
	}
}

func TestFieldMismatchMessage(t *testing.T) {
	if got := (&userpanel.FieldMismatch{Field: userpanel.FieldEmail}).Error(); got != "Emails do not match!" {
		t.Errorf("unexpected message %q", got)
	}
	if got := (&userpanel.FieldMismatch{Field: userpanel.FieldNickname}).Error(); got != "Nicknames do not match!" {
		t.Errorf("unexpected message %q", got)
	}
}

func TestProfileModuleValidateData(t *testing.T) {
	if userpanel.ProfileModule.HandlerName() != "profile" {
		t.Errorf("expected handler name profile, got %s", userpanel.ProfileModule.HandlerName())
	}
	bad := &userpanel.ProfileEdit{Email: "a@x.com", ConfirmEmail: "a@x.com", Nickname: "bob", ConfirmNickname: "bo"}
	if err := userpanel.ProfileModule.ValidateData('u', bad); !errors.Is(err, userpanel.ErrFieldMismatch) {
		t.Errorf("expected mismatch, got %v", err)
	}
	if err := userpanel.ProfileModule.ValidateData('u'); err != nil {
		t.Errorf("expected nil without data, got %v", err)
	}
}
