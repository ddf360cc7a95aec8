package userpanel

// AuthState is the active pane of the auth switcher.
type AuthState uint8

const (
	AuthLogin AuthState = iota
	AuthRegister
	AuthForgot
)

func (s AuthState) String() string {
	switch s {
	case AuthLogin:
		return "login"
	case AuthRegister:
		return "register"
	case AuthForgot:
		return "forgot"
	}
	return "unknown"
}

// BackPolicy selects where "back" leads from the forgot pane.
type BackPolicy uint8

const (
	// BackToLogin always returns to the login pane.
	BackToLogin BackPolicy = iota
	// BackToPrevious returns to the pane that was active before forgot.
	BackToPrevious
)

// ParseBackPolicy accepts "login" and "previous"; anything else is BackToLogin.
func ParseBackPolicy(s string) BackPolicy {
	if s == "previous" {
		return BackToPrevious
	}
	return BackToLogin
}

func (p BackPolicy) String() string {
	if p == BackToPrevious {
		return "previous"
	}
	return "login"
}

const (
	WelcomeLogin    = "Don't have an account yet?"
	WelcomeRegister = "Already have an account?"
)

// AuthElements are the host elements the switcher drives. Welcome is optional.
type AuthElements struct {
	Container      Element
	RegisterToggle Element
	LoginToggle    Element
	Welcome        Element
	// Display is applied to Container while PanelAuth is open; zero value
	// means DisplayBlock.
	Display DisplayMode
}

type AuthSwitcher struct {
	el       AuthElements
	policy   BackPolicy
	panels   *Registry
	state    AuthState
	previous AuthState
}

// NewAuthSwitcher renders the login pane. panels may be nil; when it holds
// PanelForgot that panel follows the forgot state.
func NewAuthSwitcher(el AuthElements, policy BackPolicy, panels *Registry) (*AuthSwitcher, error) {
	if el.Container == nil || el.RegisterToggle == nil || el.LoginToggle == nil {
		return nil, &PanelError{ID: PanelAuth, Err: ErrMissingElement}
	}
	s := &AuthSwitcher{el: el, policy: policy, panels: panels}
	s.renderPane(AuthLogin)
	s.el.Container.SetClass(ClassForgotActive, false)
	return s, nil
}

func (s *AuthSwitcher) State() AuthState { return s.state }

// Register moves LOGIN to REGISTER. From FORGOT it applies only when the
// register toggle is the visible one, and clears the forgot pane.
func (s *AuthSwitcher) Register() {
	if !s.toggleFrom(AuthLogin) {
		return
	}
	s.renderPane(AuthRegister)
}

// Login moves REGISTER to LOGIN, and from FORGOT when the login toggle is visible.
func (s *AuthSwitcher) Login() {
	if !s.toggleFrom(AuthRegister) {
		return
	}
	s.renderPane(AuthLogin)
}

// toggleFrom reports whether the toggle shown in pane from may fire now,
// leaving the forgot pane first when needed.
func (s *AuthSwitcher) toggleFrom(from AuthState) bool {
	switch {
	case s.state == from:
		return true
	case s.state == AuthForgot && s.previous == from:
		s.el.Container.SetClass(ClassForgotActive, false)
		s.setForgotPanel(false)
		return true
	}
	return false
}

// Forgot suppresses the trigger's default action and, from LOGIN or
// REGISTER, shows the forgot pane without touching the toggles.
func (s *AuthSwitcher) Forgot(ev Event) {
	if ev != nil {
		ev.PreventDefault()
	}
	if s.state == AuthForgot {
		return
	}
	s.previous = s.state
	s.state = AuthForgot
	s.el.Container.SetClass(ClassForgotActive, true)
	s.setForgotPanel(true)
}

// Back leaves the forgot pane according to the back policy.
func (s *AuthSwitcher) Back() {
	if s.state != AuthForgot {
		return
	}
	s.el.Container.SetClass(ClassForgotActive, false)
	s.setForgotPanel(false)
	next := AuthLogin
	if s.policy == BackToPrevious {
		next = s.previous
	}
	s.renderPane(next)
}

func (s *AuthSwitcher) renderPane(st AuthState) {
	s.state = st
	register := st == AuthRegister
	s.el.Container.SetClass(ClassRegisterActive, register)
	if register {
		s.el.RegisterToggle.SetDisplay(DisplayNone)
		s.el.LoginToggle.SetDisplay(DisplayInlineBlock)
		s.setWelcome(WelcomeRegister)
		return
	}
	s.el.LoginToggle.SetDisplay(DisplayNone)
	s.el.RegisterToggle.SetDisplay(DisplayInlineBlock)
	s.setWelcome(WelcomeLogin)
}

func (s *AuthSwitcher) setWelcome(text string) {
	if s.el.Welcome != nil {
		s.el.Welcome.SetText(text)
	}
}

func (s *AuthSwitcher) setForgotPanel(on bool) {
	if s.panels == nil || !s.panels.Has(PanelForgot) {
		return
	}
	if on {
		s.panels.Open(PanelForgot)
		return
	}
	s.panels.Close(PanelForgot)
}
