//go:build !wasm

package userpanel

import (
	"io"
	"strings"

	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

// ProfileView is what the profile page shows about the current user.
type ProfileView struct {
	Name     string
	Email    string
	Nickname string
}

// PageOptions controls the shared page shell.
type PageOptions struct {
	Title string
	// WasmURL is the compiled browser client; empty renders a page without it.
	WasmURL string
	// WasmExecURL is Go's wasm_exec.js loader.
	WasmExecURL string
}

func layout(opt PageOptions, body ...g.Node) g.Node {
	head := []g.Node{
		h.Meta(h.Charset("utf-8")),
		h.Meta(h.Name("viewport"), g.Attr("content", "width=device-width, initial-scale=1")),
		g.El("title", g.Text(opt.Title)),
	}
	if opt.WasmURL != "" && opt.WasmExecURL != "" {
		head = append(head,
			h.Script(h.Src(opt.WasmExecURL)),
			h.Script(g.Raw(`const go = new Go();
WebAssembly.instantiateStreaming(fetch("`+opt.WasmURL+`"), go.importObject).then((r) => go.run(r.instance));`)),
		)
	}
	return h.Doctype(
		g.El("html", g.Attr("lang", "en"),
			g.El("head", head...),
			g.El("body", append([]g.Node{nav()}, body...)...),
		),
	)
}

func nav() g.Node {
	return g.El("nav",
		h.A(h.Href("/"), g.Text("Profile")),
		h.A(h.Href("/contacts"), g.Text("Contacts")),
		h.A(h.Href("/search"), g.Text("Search")),
		h.A(h.Href("/auth"), g.Text("Sign in")),
	)
}

func hidden() g.Node { return g.Attr("style", "display:none") }

func modal(id, closeID, title string, content ...g.Node) g.Node {
	inner := append([]g.Node{
		h.Class("modal-content"),
		h.Span(h.ID(closeID), h.Class("close-btn"), g.Text("×")),
		h.H2(g.Text(title)),
	}, content...)
	return h.Div(h.ID(id), h.Class("modal"), hidden(), h.Div(inner...))
}

func field(label, typ, name, value string) g.Node {
	return h.Div(h.Class("field"),
		g.El("label", g.Attr("for", name), g.Text(label)),
		h.Input(h.Type(typ), h.ID(name), h.Name(name), h.Value(value), g.Attr("required")),
	)
}

// ProfilePage renders the profile view with its edit and delete modals.
func ProfilePage(opt PageOptions, v ProfileView) g.Node {
	if opt.Title == "" {
		opt.Title = "Profile"
	}
	return layout(opt,
		g.El("main", h.Class("profile"),
			h.H1(g.Text(v.Name)),
			h.P(h.Class("email"), g.Text(v.Email)),
			h.P(h.Class("nickname"), g.Text(v.Nickname)),
			h.Button(h.ID(IDEditOpen), h.Class("edit-btn"), h.Type("button"), g.Text("Edit Profile")),
			h.Button(h.ID(IDDeleteOpen), h.Class("delete-btn"), h.Type("button"), g.Text("Delete Profile")),
		),
		g.Raw(ProfileModule.RenderHTML(v)),
	)
}

// AuthPage renders the login/register switcher with its forgot pane.
func AuthPage(opt PageOptions, policy BackPolicy) g.Node {
	if opt.Title == "" {
		opt.Title = "Sign in"
	}
	return layout(opt,
		h.Div(h.ID(PanelAuth), h.Class("container"), g.Attr(BackPolicyAttr, policy.String()),
			h.Div(h.Class("form-box login"),
				h.H2(g.Text(LoginModule.ModuleTitle())),
				g.Raw(LoginModule.RenderHTML()),
				h.Div(h.Class("forgot-link"),
					h.A(h.ID(IDForgotLink), h.Href("#"), g.Text("Forgot password?")),
				),
			),
			h.Div(h.Class("form-box register"),
				h.H2(g.Text(RegisterModule.ModuleTitle())),
				g.Raw(RegisterModule.RenderHTML()),
			),
			g.Raw(ForgotModule.RenderHTML()),
			h.Div(h.Class("toggle-box"),
				h.P(h.ID(IDWelcomeText), g.Text(WelcomeLogin)),
				h.Button(h.ID(IDRegisterToggle), h.Class("register-btn"), h.Type("button"), g.Text("Register")),
				h.Button(h.ID(IDLoginToggle), h.Class("login-btn"), h.Type("button"), hidden(), g.Text("Login")),
			),
		),
	)
}

// PlainPage renders a page with a heading and a paragraph.
func PlainPage(opt PageOptions, heading, text string) g.Node {
	return layout(opt, g.El("main", h.H1(g.Text(heading)), h.P(g.Text(text))))
}

// WritePage renders n to w.
func WritePage(w io.Writer, n g.Node) error {
	return n.Render(w)
}

func renderString(n g.Node) string {
	var b strings.Builder
	n.Render(&b)
	return b.String()
}
