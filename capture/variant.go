package capture

import (
	"fmt"
	"io"
)

// Variant is a named loop construct.
type Variant struct {
	Name        string
	Description string
	Build       Builder
}

var variants = []Variant{
	{
		Name:        "shared",
		Description: "one loop variable reused across iterations, captured by reference",
		Build:       Shared,
	},
	{
		Name:        "rebind",
		Description: "iterator callback, one binding per element, captured by value",
		Build:       PerIteration,
	},
	{
		Name:        "range",
		Description: "range loop variable captured directly (per-iteration since go1.22)",
		Build:       Range,
	},
}

// Variants returns the registered variants in a stable order.
func Variants() []Variant {
	out := make([]Variant, len(variants))
	copy(out, variants)
	return out
}

// Lookup finds a variant by name.
func Lookup(name string) (Variant, bool) {
	for _, v := range variants {
		if v.Name == name {
			return v, true
		}
	}
	return Variant{}, false
}

// Run builds the closures for values with v, invokes them in creation order
// and writes one integer per line to w.
func Run(w io.Writer, v Variant, values []int) error {
	for _, n := range Invoke(v.Build(values)) {
		if _, err := fmt.Fprintln(w, n); err != nil {
			return fmt.Errorf("capture: write %s output: %w", v.Name, err)
		}
	}
	return nil
}
