package userpanel

import "errors"

// DisplayMode is the CSS display value applied to a host element.
type DisplayMode string

const (
	DisplayNone        DisplayMode = "none"
	DisplayBlock       DisplayMode = "block"
	DisplayFlex        DisplayMode = "flex"
	DisplayInlineBlock DisplayMode = "inline-block"
)

// Element is the host page element a panel or affordance is bound to.
type Element interface {
	SetDisplay(mode DisplayMode)
	SetText(text string)
	SetClass(name string, on bool)
}

// Event is a UI event dispatched by the host page.
type Event interface {
	PreventDefault()
	// TargetIs reports whether the event target is exactly el.
	TargetIs(el Element) bool
}

// PanelConfig describes one panel at registration time.
type PanelConfig struct {
	ID       string
	Backdrop Element
	// Display is applied on open; zero value means DisplayBlock.
	Display DisplayMode
	// Dismissible panels close on a click on their backdrop or on Escape.
	Dismissible bool
}

// Panel is a registered visibility-toggled region.
type Panel struct {
	ID          string
	Display     DisplayMode
	Dismissible bool
	backdrop    Element
	shown       bool
}

func (p *Panel) show() {
	p.shown = true
	p.backdrop.SetDisplay(p.Display)
}

func (p *Panel) hide() {
	p.shown = false
	p.backdrop.SetDisplay(DisplayNone)
}

// Registry owns every panel of a page view. It is driven from a single
// event loop and holds no lock.
type Registry struct {
	panels map[string]*Panel
	order  []string
}

// NewRegistry registers every config it can. Configs that fail are
// skipped and reported in the joined error; the registry is always
// usable for the rest.
func NewRegistry(configs ...PanelConfig) (*Registry, error) {
	r := &Registry{panels: make(map[string]*Panel)}
	var errs []error
	for _, c := range configs {
		if err := r.Register(c); err != nil {
			errs = append(errs, err)
		}
	}
	return r, errors.Join(errs...)
}

// Register adds a panel and hides its element.
func (r *Registry) Register(c PanelConfig) error {
	if c.ID == "" {
		return &PanelError{ID: c.ID, Err: ErrInvalidPanelID}
	}
	if _, dup := r.panels[c.ID]; dup {
		return &PanelError{ID: c.ID, Err: ErrInvalidPanelID}
	}
	if c.Backdrop == nil {
		return &PanelError{ID: c.ID, Err: ErrMissingElement}
	}
	if c.Display == "" {
		c.Display = DisplayBlock
	}
	p := &Panel{
		ID:          c.ID,
		Display:     c.Display,
		Dismissible: c.Dismissible,
		backdrop:    c.Backdrop,
	}
	p.hide()
	r.panels[c.ID] = p
	r.order = append(r.order, c.ID)
	return nil
}

func (r *Registry) Has(id string) bool {
	_, ok := r.panels[id]
	return ok
}

func (r *Registry) lookup(id string) (*Panel, error) {
	p, ok := r.panels[id]
	if !ok {
		return nil, &PanelError{ID: id, Err: ErrUnknownPanel}
	}
	return p, nil
}

func (r *Registry) Open(id string) error {
	p, err := r.lookup(id)
	if err != nil {
		return err
	}
	p.show()
	return nil
}

// Close hides the panel. Closing a hidden panel is a no-op.
func (r *Registry) Close(id string) error {
	p, err := r.lookup(id)
	if err != nil {
		return err
	}
	if p.shown {
		p.hide()
	}
	return nil
}

func (r *Registry) IsOpen(id string) (bool, error) {
	p, err := r.lookup(id)
	if err != nil {
		return false, err
	}
	return p.shown, nil
}

// Opened returns the ids of the shown panels in registration order.
func (r *Registry) Opened() []string {
	var ids []string
	for _, id := range r.order {
		if r.panels[id].shown {
			ids = append(ids, id)
		}
	}
	return ids
}

// DismissOutside closes each open dismissible panel whose backdrop is the
// exact target of ev, and returns the ids it closed.
func (r *Registry) DismissOutside(ev Event) []string {
	if ev == nil {
		return nil
	}
	var closed []string
	for _, id := range r.order {
		p := r.panels[id]
		if p.shown && p.Dismissible && ev.TargetIs(p.backdrop) {
			p.hide()
			closed = append(closed, id)
		}
	}
	return closed
}

// DismissEscape closes every open dismissible panel.
func (r *Registry) DismissEscape() []string {
	var closed []string
	for _, id := range r.order {
		p := r.panels[id]
		if p.shown && p.Dismissible {
			p.hide()
			closed = append(closed, id)
		}
	}
	return closed
}
