package registry

import (
	"github.com/arthur-debert/dotapt/pkg/errors"
	"github.com/arthur-debert/dotapt/pkg/types"
)

// Directives is the host-owned set of directive plugins for one run
type Directives struct {
	reg Registry[types.Directive]
}

// NewDirectives creates an empty directive registry
func NewDirectives() *Directives {
	return &Directives{reg: New[types.Directive]()}
}

// Add registers d under its own name
func (d *Directives) Add(directive types.Directive) error {
	if directive == nil {
		return errors.New(errors.ErrInvalidInput, "directive cannot be nil")
	}
	return d.reg.Register(directive.Name(), directive)
}

// Lookup returns the first registered directive whose CanHandle accepts name
func (d *Directives) Lookup(name string) (types.Directive, error) {
	for _, n := range d.reg.List() {
		directive, err := d.reg.Get(n)
		if err != nil {
			// removed concurrently
			continue
		}
		if directive.CanHandle(name) {
			return directive, nil
		}
	}
	return nil, errors.Newf(errors.ErrDirectiveUnknown, "no directive handles %s", name).
		WithDetail("directive", name)
}

// Names lists registered directive names in registration order
func (d *Directives) Names() []string {
	return d.reg.List()
}
