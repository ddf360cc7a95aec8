package userpanel

// ConditionalField shows a dependent container only while its control is checked.
type ConditionalField struct {
	container Element
	visible   bool
}

func NewConditionalField(container Element) (*ConditionalField, error) {
	if container == nil {
		return nil, &PanelError{ID: IDAdminPasscode, Err: ErrMissingElement}
	}
	f := &ConditionalField{container: container}
	f.Set(false)
	return f, nil
}

func (f *ConditionalField) Set(checked bool) {
	f.visible = checked
	if checked {
		f.container.SetDisplay(DisplayBlock)
		return
	}
	f.container.SetDisplay(DisplayNone)
}

func (f *ConditionalField) Visible() bool { return f.visible }
