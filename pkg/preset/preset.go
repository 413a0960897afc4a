// Package preset writes a list of named parameter values to a camera.
package preset

import (
	"fmt"
	"strconv"

	"github.com/kevmo314/go-pvcam"
	"github.com/kevmo314/go-pvcam/pkg/config"
)

// Target is the part of *pvcam.Camera a preset needs.
type Target interface {
	Get(p pvcam.Parameter) (pvcam.ParameterValue, error)
	Set(p pvcam.Parameter, v pvcam.ParameterValue) error
}

// Apply writes each preset in order and stops at the first failure.
func Apply(t Target, presets []config.Preset) error {
	for i, p := range presets {
		param, err := pvcam.ParseParameter(p.Parameter)
		if err != nil {
			return fmt.Errorf("preset %d: %w", i, err)
		}
		if err := ApplyOne(t, param, p.Value.Raw); err != nil {
			return fmt.Errorf("preset %d: %w", i, err)
		}
	}
	return nil
}

// ApplyOne converts raw to the parameter's current kind and writes it. An
// enumeration accepts either an option name or an option value.
func ApplyOne(t Target, p pvcam.Parameter, raw string) error {
	current, err := t.Get(p)
	if err != nil {
		return fmt.Errorf("read %s: %w", p.Name(), err)
	}
	v, err := Parse(current, raw)
	if err != nil {
		return fmt.Errorf("%s: %w", p.Name(), err)
	}
	if err := t.Set(p, v); err != nil {
		return fmt.Errorf("write %s: %w", p.Name(), err)
	}
	return nil
}

// Parse builds a value of the same kind as current from raw.
func Parse(current pvcam.ParameterValue, raw string) (pvcam.ParameterValue, error) {
	switch cur := current.(type) {
	case pvcam.Enum:
		if o, ok := cur.Lookup(raw); ok {
			return pvcam.Enum{Index: o.Index, Options: cur.Options}, nil
		}
		n, err := strconv.ParseInt(raw, 0, 32)
		if err != nil {
			return nil, fmt.Errorf("%q is not an option", raw)
		}
		for _, o := range cur.Options {
			if int64(o.Value) == n {
				return pvcam.Enum{Index: o.Index, Options: cur.Options}, nil
			}
		}
		return nil, fmt.Errorf("no option has value %d", n)
	case pvcam.Int:
		n, err := strconv.ParseInt(raw, 0, 64)
		if err != nil {
			return nil, fmt.Errorf("%q is not an integer: %w", raw, err)
		}
		return pvcam.Int(n), nil
	case pvcam.Text:
		return pvcam.Text(raw), nil
	default:
		return nil, fmt.Errorf("unsupported value %T", current)
	}
}
