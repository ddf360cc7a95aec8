package userpanel

import "github.com/tinywasm/fmt"

// LoginData is validated by LoginModule on both frontend and backend.
type LoginData struct {
	Email    string
	Password string
}

func (d *LoginData) FormName() string { return "login" }

func (d *LoginData) Schema() []fmt.Field {
	return []fmt.Field{
		{Name: "Email", Type: fmt.FieldText, NotNull: true, JSON: "email"},
		{Name: "Password", Type: fmt.FieldText, NotNull: true, JSON: "password"},
	}
}

func (d *LoginData) Pointers() []any { return []any{&d.Email, &d.Password} }

// RegisterData is validated by RegisterModule. The nickname is the same
// handle the profile page edits.
type RegisterData struct {
	Nickname string
	Email    string
	Password string
}

func (d *RegisterData) FormName() string { return "register" }

func (d *RegisterData) Schema() []fmt.Field {
	return []fmt.Field{
		{Name: "Nickname", Type: fmt.FieldText, NotNull: true, Input: "text", JSON: "nickname"},
		{Name: "Email", Type: fmt.FieldText, NotNull: true, JSON: "email"},
		{Name: "Password", Type: fmt.FieldText, NotNull: true, JSON: "password"},
	}
}

func (d *RegisterData) Pointers() []any { return []any{&d.Nickname, &d.Email, &d.Password} }

// ForgotData is the forgot-password sub-form.
type ForgotData struct {
	Email string
}

func (d *ForgotData) FormName() string { return "forgot" }

func (d *ForgotData) Schema() []fmt.Field {
	return []fmt.Field{{Name: "Email", Type: fmt.FieldText, NotNull: true, JSON: "email"}}
}

func (d *ForgotData) Pointers() []any { return []any{&d.Email} }
