package dashboard

import (
	"context"
	"fmt"
	"strings"

	"cancerdash/internal/errors"
)

// Property names one property of a page element, e.g. my-graph.figure.
type Property struct {
	ID       string `json:"id"`
	Property string `json:"property"`
}

// Key returns "id.property".
func (p Property) Key() string {
	return p.ID + "." + p.Property
}

// ParseProperty splits "id.property" at the last dot.
func ParseProperty(key string) (Property, error) {
	i := strings.LastIndex(key, ".")
	if i <= 0 || i == len(key)-1 {
		return Property{}, errors.InvalidInput(fmt.Sprintf("malformed property %q, want id.property", key))
	}
	return Property{ID: key[:i], Property: key[i+1:]}, nil
}

// Handler computes an output value from input values given in the order
// the callback declares its inputs.
type Handler func(ctx context.Context, args []string) (interface{}, error)

// Callback binds a handler to one output and its inputs.
type Callback struct {
	Output  Property
	Inputs  []Property
	Handler Handler
}

// Registry holds callbacks by output key. Callbacks are registered during
// startup; afterwards the registry is only read.
type Registry struct {
	callbacks map[string]Callback
	order     []string
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{callbacks: make(map[string]Callback)}
}

// Register adds a callback. Each output may be bound once.
func (r *Registry) Register(cb Callback) error {
	key := cb.Output.Key()
	if cb.Handler == nil {
		return errors.InvalidInput(fmt.Sprintf("callback for %s has no handler", key))
	}
	if len(cb.Inputs) == 0 {
		return errors.InvalidInput(fmt.Sprintf("callback for %s has no inputs", key))
	}
	if _, exists := r.callbacks[key]; exists {
		return errors.InvalidInput(fmt.Sprintf("output %s already has a callback", key))
	}
	r.callbacks[key] = cb
	r.order = append(r.order, key)
	return nil
}

// Callbacks returns the registered callbacks in registration order.
func (r *Registry) Callbacks() []Callback {
	out := make([]Callback, 0, len(r.order))
	for _, k := range r.order {
		out = append(out, r.callbacks[k])
	}
	return out
}

// Dispatch runs the callback bound to output. values is keyed by
// "id.property"; every declared input must be present.
func (r *Registry) Dispatch(ctx context.Context, output string, values map[string]string) (interface{}, error) {
	cb, ok := r.callbacks[output]
	if !ok {
		return nil, errors.NotFound(fmt.Sprintf("callback for output %s", output))
	}

	args := make([]string, len(cb.Inputs))
	for i, in := range cb.Inputs {
		v, ok := values[in.Key()]
		if !ok {
			return nil, errors.InvalidInput(fmt.Sprintf("missing input %s", in.Key()))
		}
		args[i] = v
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return cb.Handler(ctx, args)
}

// GraphCallback binds FilterAndRender to the graph figure, driven by the
// region and cancer-type dropdown values.
func GraphCallback(s *State) Callback {
	return Callback{
		Output: Property{ID: GraphID, Property: "figure"},
		Inputs: []Property{
			{ID: RegionDropdownID, Property: "value"},
			{ID: CancerDropdownID, Property: "value"},
		},
		Handler: func(ctx context.Context, args []string) (interface{}, error) {
			return s.FilterAndRender(args[0], args[1])
		},
	}
}
