package userpanel

import (
	"github.com/tinywasm/fmt"
	"github.com/tinywasm/form"
)

// formModule is an auth pane backed by a single form.
type formModule struct {
	handler string
	title   string
	form    *form.Form
}

func (m *formModule) HandlerName() string { return m.handler }
func (m *formModule) ModuleTitle() string { return m.title }

// ValidateData runs the form's field rules on the first payload, which must
// be the module's own data type.
func (m *formModule) ValidateData(action byte, data ...any) error {
	if len(data) == 0 {
		return nil
	}
	d, ok := data[0].(fmt.Fielder)
	if !ok {
		return fmt.Err(m.handler, "data", "not supported")
	}
	return m.form.ValidateData(action, d)
}

type loginModule struct{ formModule }

type registerModule struct{ formModule }

type forgotModule struct{ formModule }
