package userpanel

import "errors"

// Config wires a Controller to one page view. Only Panels is required;
// Auth and AdminPasscode are set on the auth page.
type Config struct {
	Panels        []PanelConfig
	Auth          *AuthElements
	AdminPasscode Element
	BackPolicy    BackPolicy

	Updater  ProfileUpdater // default: accepts every edit
	Deleter  ProfileDeleter // default: accepts
	Notifier Notifier       // default: Logger
	Logger   func(message ...any)
}

// Controller is the UI panel controller of a page view. Every handler runs
// to completion on the host event loop.
type Controller struct {
	panels   *Registry
	auth     *AuthSwitcher
	admin    *ConditionalField
	updater  ProfileUpdater
	deleter  ProfileDeleter
	notifier Notifier
	log      func(message ...any)
}

// New builds the controller. A returned error lists configuration problems
// (missing elements, bad ids); the controller is still returned and serves
// every part that was configured correctly.
func New(cfg Config) (*Controller, error) {
	c := &Controller{
		updater:  cfg.Updater,
		deleter:  cfg.Deleter,
		notifier: cfg.Notifier,
		log:      cfg.Logger,
	}
	if c.log == nil {
		c.log = func(...any) {}
	}
	if c.updater == nil {
		c.updater = UpdaterFunc(func(ProfileEdit) error { return nil })
	}
	if c.deleter == nil {
		c.deleter = DeleterFunc(func() error { return nil })
	}
	if c.notifier == nil {
		c.notifier = NotifierFunc(func(msg string) { c.log("notify:", msg) })
	}

	var errs []error
	panels, err := NewRegistry(cfg.Panels...)
	c.panels = panels
	if err != nil {
		errs = append(errs, err)
	}
	if cfg.Auth != nil {
		if c.auth, err = NewAuthSwitcher(*cfg.Auth, cfg.BackPolicy, panels); err != nil {
			errs = append(errs, err)
		} else if err = c.registerAuthPanel(*cfg.Auth); err != nil {
			errs = append(errs, err)
		}
	}
	if cfg.AdminPasscode != nil {
		if c.admin, err = NewConditionalField(cfg.AdminPasscode); err != nil {
			errs = append(errs, err)
		}
	}
	err = errors.Join(errs...)
	if err != nil {
		c.log("userpanel config:", err)
	}
	return c, err
}

// registerAuthPanel makes the auth container a shown, non-dismissible
// panel so OpenPanel, ClosePanel and IsOpen accept PanelAuth.
func (c *Controller) registerAuthPanel(el AuthElements) error {
	if c.panels.Has(PanelAuth) {
		return nil
	}
	err := c.panels.Register(PanelConfig{ID: PanelAuth, Backdrop: el.Container, Display: el.Display})
	if err != nil {
		return err
	}
	return c.panels.Open(PanelAuth)
}

func (c *Controller) Panels() *Registry { return c.panels }

// Auth returns the switcher, nil when the page has none.
func (c *Controller) Auth() *AuthSwitcher { return c.auth }

func (c *Controller) OpenPanel(id string) error {
	return c.report(c.panels.Open(id))
}

func (c *Controller) ClosePanel(id string) error {
	return c.report(c.panels.Close(id))
}

// IsOpen reports visibility; an unknown id is logged and reads as closed.
func (c *Controller) IsOpen(id string) bool {
	open, err := c.panels.IsOpen(id)
	c.report(err)
	return open
}

// HandleClick is the window-level click listener.
func (c *Controller) HandleClick(ev Event) {
	for _, id := range c.panels.DismissOutside(ev) {
		c.log("dismissed", id)
	}
}

// HandleKey is the document-level keydown listener.
func (c *Controller) HandleKey(key string) {
	if key != "Escape" {
		return
	}
	for _, id := range c.panels.DismissEscape() {
		c.log("dismissed", id)
	}
}

func (c *Controller) ShowRegister() {
	if c.requireAuth() {
		c.auth.Register()
	}
}

func (c *Controller) ShowLogin() {
	if c.requireAuth() {
		c.auth.Login()
	}
}

func (c *Controller) ShowForgot(ev Event) {
	if c.auth == nil && ev != nil {
		ev.PreventDefault()
	}
	if c.requireAuth() {
		c.auth.Forgot(ev)
	}
}

func (c *Controller) Back() {
	if c.requireAuth() {
		c.auth.Back()
	}
}

// SetAdminMode follows the admin checkbox.
func (c *Controller) SetAdminMode(checked bool) {
	if c.admin == nil {
		c.report(&PanelError{ID: IDAdminPasscode, Err: ErrMissingElement})
		return
	}
	c.admin.Set(checked)
}

// SubmitProfile handles the edit-profile submit. The default action is
// always suppressed. The updater runs only when both confirmation pairs
// match, and the modal closes only when it succeeds.
func (c *Controller) SubmitProfile(ev Event, p ProfileEdit) error {
	if ev != nil {
		ev.PreventDefault()
	}
	if err := CheckProfileEdit(p); err != nil {
		c.notifier.Notify(err.Error())
		return err
	}
	if err := c.updater.UpdateProfile(p); err != nil {
		c.notifier.Notify(err.Error())
		return err
	}
	return c.ClosePanel(PanelEditProfile)
}

// ConfirmDelete handles the delete modal's confirm control.
func (c *Controller) ConfirmDelete(ev Event) error {
	if ev != nil {
		ev.PreventDefault()
	}
	if err := c.deleter.DeleteProfile(); err != nil {
		c.notifier.Notify(err.Error())
		return err
	}
	return c.ClosePanel(PanelDeleteProfile)
}

func (c *Controller) requireAuth() bool {
	if c.auth == nil {
		c.report(&PanelError{ID: PanelAuth, Err: ErrUnknownPanel})
		return false
	}
	return true
}

func (c *Controller) report(err error) error {
	if err != nil {
		c.log("userpanel:", err)
	}
	return err
}
