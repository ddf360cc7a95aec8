package userpanel

type profileModule struct{}

func (m *profileModule) HandlerName() string { return "profile" }
func (m *profileModule) ModuleTitle() string { return "Profile" }

// ValidateData checks the confirmation pairs of a *ProfileEdit; other
// payloads pass through.
func (m *profileModule) ValidateData(action byte, data ...any) error {
	if len(data) == 0 {
		return nil
	}
	if p, ok := data[0].(*ProfileEdit); ok {
		return CheckProfileEdit(*p)
	}
	return nil
}
