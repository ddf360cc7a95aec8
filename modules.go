package userpanel

import (
	"github.com/tinywasm/fmt"
	_ "github.com/tinywasm/fmt/dictionary"
	"github.com/tinywasm/form"
)

var (
	LoginModule    *loginModule
	RegisterModule *registerModule
	ForgotModule   *forgotModule
	ProfileModule  *profileModule
)

func init() {
	LoginModule = &loginModule{formModule{"login", "Login", mustForm("login", &LoginData{})}}
	RegisterModule = &registerModule{formModule{"register", "Register", mustForm("register", &RegisterData{})}}
	ForgotModule = &forgotModule{formModule{"forgot", "Forgot Password", mustForm("forgot", &ForgotData{})}}
	ProfileModule = &profileModule{}
}

func mustForm(parentID string, data fmt.Fielder) *form.Form {
	f, err := form.New(parentID, data)
	if err != nil {
		panic("userpanel: mustForm: " + err.Error())
	}
	return f
}
