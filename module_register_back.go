//go:build !wasm

package userpanel

import (
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

// RenderHTML adds the admin checkbox and its hidden passcode field after the form.
func (m *registerModule) RenderHTML() string {
	return m.formModule.RenderHTML() + renderString(h.Div(h.Class("admin"),
		g.El("label",
			h.Input(h.Type("checkbox"), h.ID(IDAdminToggle), h.Name("admin")),
			g.Text(" Register as admin"),
		),
		h.Div(h.ID(IDAdminPasscode), hidden(),
			g.El("label", g.Attr("for", "adminPasscode"), g.Text("Admin passcode")),
			h.Input(h.Type("password"), h.ID("adminPasscode"), h.Name("adminPasscode")),
		),
	))
}
