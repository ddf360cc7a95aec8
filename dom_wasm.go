//go:build wasm

package userpanel

import "syscall/js"

type jsElement struct {
	v js.Value
}

func (e *jsElement) SetDisplay(mode DisplayMode) {
	e.v.Get("style").Set("display", string(mode))
}

func (e *jsElement) SetText(text string) {
	e.v.Set("textContent", text)
}

func (e *jsElement) SetClass(name string, on bool) {
	if on {
		e.v.Get("classList").Call("add", name)
		return
	}
	e.v.Get("classList").Call("remove", name)
}

type jsEvent struct {
	v js.Value
}

func (e jsEvent) PreventDefault() { e.v.Call("preventDefault") }

func (e jsEvent) TargetIs(el Element) bool {
	j, ok := el.(*jsElement)
	if !ok {
		return false
	}
	return e.v.Get("target").Equal(j.v)
}

type binder struct {
	doc js.Value
	// funcs live as long as the page; they are never released.
	funcs []js.Func
}

func (b *binder) byID(id string) Element {
	v := b.doc.Call("getElementById", id)
	if v.IsNull() || v.IsUndefined() {
		return nil
	}
	return &jsElement{v: v}
}

func (b *binder) exists(id string) bool {
	return b.byID(id) != nil
}

func (b *binder) listen(target js.Value, event string, fn func(ev js.Value)) {
	f := js.FuncOf(func(this js.Value, args []js.Value) any {
		fn(args[0])
		return nil
	})
	b.funcs = append(b.funcs, f)
	target.Call("addEventListener", event, f)
}

// onClick binds fn to id; a missing control is logged, not fatal.
func (b *binder) onClick(id string, log func(...any), fn func(ev jsEvent)) {
	v := b.doc.Call("getElementById", id)
	if v.IsNull() || v.IsUndefined() {
		log("userpanel:", id+":", ErrMissingElement)
		return
	}
	b.listen(v, "click", func(ev js.Value) { fn(jsEvent{v: ev}) })
}

func consoleLog(message ...any) {
	js.Global().Get("console").Call("log", message...)
}

func alert(message string) {
	js.Global().Call("alert", message)
}

// Mount binds a Controller to the page currently loaded in the browser.
// Only the parts whose elements are present are bound.
func Mount() (*Controller, error) {
	b := &binder{doc: js.Global().Get("document")}
	cfg := Config{
		Notifier: NotifierFunc(alert),
		Logger:   consoleLog,
		Updater: UpdaterFunc(func(ProfileEdit) error {
			alert("Profile updated successfully!")
			return nil
		}),
		Deleter: DeleterFunc(func() error {
			alert("Profile deleted.")
			return nil
		}),
	}

	profile := b.exists(PanelEditProfile) || b.exists(PanelDeleteProfile)
	if profile {
		cfg.Panels = append(cfg.Panels,
			PanelConfig{ID: PanelEditProfile, Backdrop: b.byID(PanelEditProfile), Display: DisplayFlex, Dismissible: true},
			PanelConfig{ID: PanelDeleteProfile, Backdrop: b.byID(PanelDeleteProfile), Display: DisplayFlex, Dismissible: true},
		)
	}

	authPage := b.exists(PanelAuth)
	if authPage {
		container := b.byID(PanelAuth)
		cfg.Panels = append(cfg.Panels,
			PanelConfig{ID: PanelForgot, Backdrop: b.byID(PanelForgot), Display: DisplayBlock},
		)
		cfg.Auth = &AuthElements{
			Container:      container,
			RegisterToggle: b.byID(IDRegisterToggle),
			LoginToggle:    b.byID(IDLoginToggle),
			Welcome:        b.byID(IDWelcomeText),
		}
		cfg.BackPolicy = ParseBackPolicy(container.(*jsElement).v.Call("getAttribute", BackPolicyAttr).String())
		cfg.AdminPasscode = b.byID(IDAdminPasscode)
	}

	c, err := New(cfg)
	log := c.log

	if profile {
		open := func(id string) func(jsEvent) { return func(jsEvent) { c.OpenPanel(id) } }
		closer := func(id string) func(jsEvent) { return func(jsEvent) { c.ClosePanel(id) } }
		b.onClick(IDEditOpen, log, open(PanelEditProfile))
		b.onClick(IDEditClose, log, closer(PanelEditProfile))
		b.onClick(IDEditCancel, log, closer(PanelEditProfile))
		b.onClick(IDDeleteOpen, log, open(PanelDeleteProfile))
		b.onClick(IDDeleteClose, log, closer(PanelDeleteProfile))
		b.onClick(IDDeleteCancel, log, closer(PanelDeleteProfile))
		b.onClick(IDDeleteConfirm, log, func(ev jsEvent) { c.ConfirmDelete(ev) })

		if form := b.doc.Call("getElementById", IDEditForm); !form.IsNull() {
			b.listen(form, "submit", func(ev js.Value) {
				c.SubmitProfile(jsEvent{v: ev}, readProfileEdit(form))
			})
		}

		b.listen(js.Global(), "click", func(ev js.Value) { c.HandleClick(jsEvent{v: ev}) })
		b.listen(b.doc, "keydown", func(ev js.Value) { c.HandleKey(ev.Get("key").String()) })
	}

	if authPage {
		b.onClick(IDRegisterToggle, log, func(jsEvent) { c.ShowRegister() })
		b.onClick(IDLoginToggle, log, func(jsEvent) { c.ShowLogin() })
		b.onClick(IDForgotLink, log, func(ev jsEvent) { c.ShowForgot(ev) })
		b.onClick(IDForgotBack, log, func(jsEvent) { c.Back() })
		if box := b.doc.Call("getElementById", IDAdminToggle); !box.IsNull() {
			b.listen(box, "change", func(ev js.Value) {
				c.SetAdminMode(ev.Get("target").Get("checked").Bool())
			})
		}
	}
	return c, err
}

func readProfileEdit(form js.Value) ProfileEdit {
	elements := form.Get("elements")
	value := func(name string) string {
		f := elements.Get(name)
		if f.IsUndefined() || f.IsNull() {
			return ""
		}
		return f.Get("value").String()
	}
	return ProfileEdit{
		Email:           value(FieldEmail),
		ConfirmEmail:    value(FieldConfirmEmail),
		Nickname:        value(FieldNickname),
		ConfirmNickname: value(FieldConfirmNickname),
	}
}
