package userpanel

import "github.com/tinywasm/fmt"

var (
	ErrUnknownPanel   = fmt.Err("panel", "not", "found")   // EN: Panel Not Found    / ES: Panel No Encontrado
	ErrInvalidPanelID = fmt.Err("panel", "invalid")        // EN: Panel Invalid      / ES: Panel Inválido
	ErrMissingElement = fmt.Err("element", "not", "found") // EN: Element Not Found  / ES: Elemento No Encontrado
	ErrFieldMismatch  = fmt.Err("fields", "not", "match")  // EN: Fields Not Match   / ES: Campos No Coinciden
)

// FieldMismatch reports which confirmation pair differed.
type FieldMismatch struct {
	Field string
}

func (e *FieldMismatch) Error() string {
	switch e.Field {
	case FieldEmail:
		return "Emails do not match!"
	case FieldNickname:
		return "Nicknames do not match!"
	}
	return e.Field + ": " + ErrFieldMismatch.Error()
}

func (e *FieldMismatch) Unwrap() error { return ErrFieldMismatch }

// PanelError ties a registry failure to the offending panel id.
type PanelError struct {
	ID  string
	Err error
}

func (e *PanelError) Error() string { return e.ID + ": " + e.Err.Error() }

func (e *PanelError) Unwrap() error { return e.Err }
