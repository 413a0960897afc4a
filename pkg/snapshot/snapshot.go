// Package snapshot records the values of a set of parameters at one point
// in time and encodes them as CBOR or YAML.
package snapshot

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/kevmo314/go-pvcam"
)

// Source is the part of *pvcam.Camera a snapshot reads from.
type Source interface {
	Name() string
	Session() uuid.UUID
	Get(p pvcam.Parameter) (pvcam.ParameterValue, error)
}

type Snapshot struct {
	Camera  string    `yaml:"camera" cbor:"1,keyasint"`
	Session string    `yaml:"session" cbor:"2,keyasint"`
	Taken   time.Time `yaml:"taken" cbor:"3,keyasint"`
	Entries []Entry   `yaml:"entries" cbor:"4,keyasint"`
}

// Entry holds one parameter. Exactly one of Int, Text or Enum is set when
// Available is true.
type Entry struct {
	Parameter string `yaml:"parameter" cbor:"1,keyasint"`
	ID        uint32 `yaml:"id" cbor:"2,keyasint"`
	Available bool   `yaml:"available" cbor:"3,keyasint"`

	Int  *int64     `yaml:"int,omitempty" cbor:"4,keyasint,omitempty"`
	Text *string    `yaml:"text,omitempty" cbor:"5,keyasint,omitempty"`
	Enum *EnumEntry `yaml:"enum,omitempty" cbor:"6,keyasint,omitempty"`
}

type EnumEntry struct {
	Index   uint32             `yaml:"index" cbor:"1,keyasint"`
	Options []pvcam.EnumOption `yaml:"options" cbor:"2,keyasint"`
}

// Take reads every parameter in ps. Parameters the camera does not have are
// recorded as unavailable; any other error aborts.
func Take(src Source, ps []pvcam.Parameter) (*Snapshot, error) {
	s := &Snapshot{
		Camera:  src.Name(),
		Session: src.Session().String(),
		Taken:   time.Now().UTC(),
		Entries: make([]Entry, 0, len(ps)),
	}
	for _, p := range ps {
		e := Entry{Parameter: p.Name(), ID: uint32(p.ID())}
		v, err := src.Get(p)
		var unknown *pvcam.ParameterUnknownError
		switch {
		case errors.As(err, &unknown):
			s.Entries = append(s.Entries, e)
			continue
		case err != nil:
			return nil, fmt.Errorf("snapshot %s: %w", p.Name(), err)
		}
		e.Available = true
		switch v := v.(type) {
		case pvcam.Int:
			n := int64(v)
			e.Int = &n
		case pvcam.Text:
			t := string(v)
			e.Text = &t
		case pvcam.Enum:
			e.Enum = &EnumEntry{Index: v.Index, Options: v.Options}
		}
		s.Entries = append(s.Entries, e)
	}
	return s, nil
}

// Value converts e back into a parameter value. It returns nil for an
// unavailable entry.
func (e Entry) Value() pvcam.ParameterValue {
	switch {
	case e.Int != nil:
		return pvcam.Int(*e.Int)
	case e.Text != nil:
		return pvcam.Text(*e.Text)
	case e.Enum != nil:
		return pvcam.Enum{Index: e.Enum.Index, Options: e.Enum.Options}
	}
	return nil
}
