//go:build !wasm

package userpanel

import (
	"sync"

	v10 "github.com/go-playground/validator/v10"
	"github.com/tinywasm/unixid"
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

// Ack is the placeholder acknowledgment returned instead of persisting.
// RequestID echoes the caller's id so a response can be matched to its request.
type Ack struct {
	ID        string `json:"id"`
	RequestID string `json:"request_id,omitempty"`
	Action    string `json:"action"`
	Message   string `json:"message"`
}

var (
	validateOnce sync.Once
	validate     *v10.Validate
)

func validator() *v10.Validate {
	validateOnce.Do(func() {
		validate = v10.New()
	})
	return validate
}

// FieldErrors validates the format rules of p and returns them keyed by
// form field name. It does not check the confirmation pairs.
func FieldErrors(p ProfileEdit) map[string]string {
	err := validator().Struct(p)
	if err == nil {
		return nil
	}
	ve, ok := err.(v10.ValidationErrors)
	if !ok {
		return map[string]string{"_": err.Error()}
	}
	fields := make(map[string]string, len(ve))
	for _, fe := range ve {
		fields[formName(fe.Field())] = msgForTag(fe)
	}
	return fields
}

func formName(structField string) string {
	switch structField {
	case "Email":
		return FieldEmail
	case "Nickname":
		return FieldNickname
	}
	return structField
}

func msgForTag(fe v10.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "field is required"
	case "email":
		return "must be a valid email"
	case "min":
		return "too short"
	case "max":
		return "too long"
	default:
		return fe.Error()
	}
}

func (m *profileModule) RenderHTML(v ProfileView) string {
	edit := modal(PanelEditProfile, IDEditClose, "Edit Profile",
		g.El("form", h.ID(IDEditForm), g.Attr("method", "post"), g.Attr("action", "/profile"),
			field("Email", "email", FieldEmail, v.Email),
			field("Confirm email", "email", FieldConfirmEmail, ""),
			field("Nickname", "text", FieldNickname, v.Nickname),
			field("Confirm nickname", "text", FieldConfirmNickname, ""),
			h.Div(h.Class("actions"),
				h.Button(h.Type("submit"), h.Class("save-btn"), g.Text("Save")),
				h.Button(h.ID(IDEditCancel), h.Type("button"), h.Class("cancel-btn"), g.Text("Cancel")),
			),
		),
	)
	del := modal(PanelDeleteProfile, IDDeleteClose, "Delete Profile",
		h.P(g.Text("This will permanently delete your profile.")),
		g.El("form", g.Attr("method", "post"), g.Attr("action", "/profile/delete"),
			h.Div(h.Class("actions"),
				h.Button(h.ID(IDDeleteConfirm), h.Type("submit"), h.Class("confirm-delete"), g.Text("Delete")),
				h.Button(h.ID(IDDeleteCancel), h.Type("button"), h.Class("cancel-delete"), g.Text("Cancel")),
			),
		),
	)
	return renderString(edit) + renderString(del)
}

// Update validates an edit and acknowledges it. Nothing is stored.
func (m *profileModule) Update(id string, data ...any) (Ack, error) {
	if len(data) == 0 {
		return Ack{}, ErrFieldMismatch
	}
	p, ok := data[0].(*ProfileEdit)
	if !ok {
		return Ack{}, ErrFieldMismatch
	}
	if err := m.ValidateData('u', p); err != nil {
		return Ack{}, err
	}
	return newAck(id, "update", "Profile updated")
}

// Delete acknowledges a delete request. Nothing is removed.
func (m *profileModule) Delete(id string) (Ack, error) {
	return newAck(id, "delete", "Profile deleted")
}

func newAck(requestID, action, msg string) (Ack, error) {
	u, err := unixid.NewUnixID()
	if err != nil {
		return Ack{}, err
	}
	return Ack{ID: u.GetNewID(), RequestID: requestID, Action: action, Message: msg}, nil
}
