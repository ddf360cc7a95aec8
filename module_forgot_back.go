//go:build !wasm

package userpanel

import (
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

// RenderHTML wraps the form in the hidden forgot panel with its back button.
func (m *forgotModule) RenderHTML() string {
	return renderString(h.Div(h.ID(PanelForgot), h.Class("form-box forgot"), hidden(),
		h.H2(g.Text(m.ModuleTitle())),
		g.Raw(m.formModule.RenderHTML()),
		h.Button(h.ID(IDForgotBack), h.Class("back-btn"), h.Type("button"), g.Text("Back")),
	))
}
