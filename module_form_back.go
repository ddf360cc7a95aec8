//go:build !wasm

package userpanel

// RenderHTML renders the bare form. Register and forgot wrap it.
func (m *formModule) RenderHTML() string {
	m.form.SetSSR(true)
	return m.form.RenderHTML()
}
