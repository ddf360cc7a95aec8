package userpanel_test

import (
	"testing"

	"github.com/tinywasm/userpanel"
)

func TestFormModules(t *testing.T) {
	tests := []struct {
		handler, title string
		gotHandler     string
		gotTitle       string
	}{
		{"login", "Login", userpanel.LoginModule.HandlerName(), userpanel.LoginModule.ModuleTitle()},
		{"register", "Register", userpanel.RegisterModule.HandlerName(), userpanel.RegisterModule.ModuleTitle()},
		{"forgot", "Forgot Password", userpanel.ForgotModule.HandlerName(), userpanel.ForgotModule.ModuleTitle()},
		{"profile", "Profile", userpanel.ProfileModule.HandlerName(), userpanel.ProfileModule.ModuleTitle()},
	}
	for _, tt := range tests {
		if tt.gotHandler != tt.handler || tt.gotTitle != tt.title {
			t.Errorf("got %q/%q, want %q/%q", tt.gotHandler, tt.gotTitle, tt.handler, tt.title)
		}
	}
}

func TestFormModuleValidateData(t *testing.T) {
	t.Run("Valid", func(t *testing.T) {
		err := userpanel.LoginModule.ValidateData('c', &userpanel.LoginData{Email: "jane@example.com", Password: "secret1"})
		if err != nil {
			t.Errorf("expected valid login, got %v", err)
		}
	})

	t.Run("ShortPassword", func(t *testing.T) {
		err := userpanel.RegisterModule.ValidateData('c', &userpanel.RegisterData{Nickname: "jane", Email: "jane@example.com", Password: "abc"})
		if err == nil {
			t.Error("expected error for a short password")
		}
	})

	t.Run("WrongPayload", func(t *testing.T) {
		if err := userpanel.ForgotModule.ValidateData('c', "jane@example.com"); err == nil {
			t.Error("expected error for a payload that is not form data")
		}
	})

	t.Run("NoPayload", func(t *testing.T) {
		if err := userpanel.ForgotModule.ValidateData('c'); err != nil {
			t.Errorf("expected nil, got %v", err)
		}
	})
}
