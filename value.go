package pvcam

import (
	"fmt"
	"slices"
)

// ParameterValue is what Get returns and Set accepts: one of Enum, Int or
// Text. Values never point into device memory.
type ParameterValue interface {
	Kind() string
	fmt.Stringer
	isParameterValue()
}

// Enum is an enumeration value: the selected position within Options.
type Enum struct {
	Index   uint32
	Options []EnumOption
}

// Int carries every integer width the device stores.
type Int int64

// Text is a string parameter.
type Text string

func (Enum) isParameterValue() {}
func (Int) isParameterValue()  {}
func (Text) isParameterValue() {}

func (Enum) Kind() string { return "enum" }
func (Int) Kind() string  { return "int" }
func (Text) Kind() string { return "text" }

// Selected returns the option at Index.
func (e Enum) Selected() (EnumOption, bool) {
	if int(e.Index) >= len(e.Options) {
		return EnumOption{}, false
	}
	return e.Options[e.Index], true
}

// Lookup finds the option whose display name matches name, ignoring case.
func (e Enum) Lookup(name string) (EnumOption, bool) {
	i := slices.IndexFunc(e.Options, func(o EnumOption) bool {
		return equalFoldTrim(o.Name, name)
	})
	if i < 0 {
		return EnumOption{}, false
	}
	return e.Options[i], true
}

func (e Enum) String() string {
	if o, ok := e.Selected(); ok {
		return o.Name
	}
	return fmt.Sprintf("#%d", e.Index)
}

func (i Int) String() string {
	return fmt.Sprintf("%d", int64(i))
}

func (t Text) String() string {
	return string(t)
}
