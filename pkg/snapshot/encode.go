package snapshot

import (
	"fmt"
	"io"
	"os"

	"github.com/fxamacker/cbor/v2"
	"gopkg.in/yaml.v3"
)

var (
	encMode cbor.EncMode
	decMode cbor.DecMode
)

func init() {
	var err error

	encOpts := cbor.EncOptions{
		Sort:          cbor.SortCanonical,
		IndefLength:   cbor.IndefLengthForbidden,
		NilContainers: cbor.NilContainerAsNull,
		Time:          cbor.TimeRFC3339Nano,
	}
	encMode, err = encOpts.EncMode()
	if err != nil {
		panic(fmt.Sprintf("failed to create snapshot CBOR encoder mode: %v", err))
	}

	decOpts := cbor.DecOptions{
		DupMapKey:   cbor.DupMapKeyEnforcedAPF,
		IndefLength: cbor.IndefLengthAllowed,
	}
	decMode, err = decOpts.DecMode()
	if err != nil {
		panic(fmt.Sprintf("failed to create snapshot CBOR decoder mode: %v", err))
	}
}

const (
	FormatCBOR = "cbor"
	FormatYAML = "yaml"
)

// Encode writes s to w in the given format.
func Encode(w io.Writer, format string, s *Snapshot) error {
	switch format {
	case FormatCBOR:
		return encMode.NewEncoder(w).Encode(s)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(s); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("unknown snapshot format %q", format)
	}
}

// Decode reads one snapshot from r.
func Decode(r io.Reader, format string) (*Snapshot, error) {
	var s Snapshot
	switch format {
	case FormatCBOR:
		if err := decMode.NewDecoder(r).Decode(&s); err != nil {
			return nil, err
		}
	case FormatYAML:
		if err := yaml.NewDecoder(r).Decode(&s); err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("unknown snapshot format %q", format)
	}
	return &s, nil
}

// WriteFile encodes s to path, replacing any existing file.
func WriteFile(path, format string, s *Snapshot) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := Encode(f, format, s); err != nil {
		f.Close()
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return f.Close()
}

func ReadFile(path, format string) (*Snapshot, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Decode(f, format)
}
