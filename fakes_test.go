package userpanel_test

import "github.com/tinywasm/userpanel"

type fakeElement struct {
	name    string
	display userpanel.DisplayMode
	text    string
	classes map[string]bool
}

func newElement(name string) *fakeElement {
	return &fakeElement{name: name, classes: map[string]bool{}}
}

func (e *fakeElement) SetDisplay(mode userpanel.DisplayMode) { e.display = mode }
func (e *fakeElement) SetText(text string)                   { e.text = text }
func (e *fakeElement) SetClass(name string, on bool)         { e.classes[name] = on }

type fakeEvent struct {
	target    userpanel.Element
	prevented int
}

func clickOn(target userpanel.Element) *fakeEvent { return &fakeEvent{target: target} }

func (e *fakeEvent) PreventDefault()                    { e.prevented++ }
func (e *fakeEvent) TargetIs(el userpanel.Element) bool { return e.target == el }

type recorder struct {
	updates  []userpanel.ProfileEdit
	deletes  int
	notified []string
	logged   [][]any
	fail     error
}

func (r *recorder) UpdateProfile(p userpanel.ProfileEdit) error {
	r.updates = append(r.updates, p)
	return r.fail
}

func (r *recorder) DeleteProfile() error {
	r.deletes++
	return r.fail
}

func (r *recorder) Notify(message string) { r.notified = append(r.notified, message) }

func (r *recorder) Log(message ...any) { r.logged = append(r.logged, message) }

type profilePage struct {
	edit, del *fakeElement
	rec       *recorder
	c         *userpanel.Controller
}

func newProfilePage() *profilePage {
	p := &profilePage{edit: newElement("edit"), del: newElement("delete"), rec: &recorder{}}
	c, err := userpanel.New(userpanel.Config{
		Panels: []userpanel.PanelConfig{
			{ID: userpanel.PanelEditProfile, Backdrop: p.edit, Display: userpanel.DisplayFlex, Dismissible: true},
			{ID: userpanel.PanelDeleteProfile, Backdrop: p.del, Display: userpanel.DisplayFlex, Dismissible: true},
		},
		Updater:  p.rec,
		Deleter:  p.rec,
		Notifier: p.rec,
		Logger:   p.rec.Log,
	})
	if err != nil {
		panic(err)
	}
	p.c = c
	return p
}
