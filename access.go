package pvcam

import "github.com/kevmo314/go-pvcam/pkg/params"

// Access is what the device allows callers to do with a parameter.
type Access int

const (
	ReadOnly Access = iota + 1
	ReadWrite
	CheckOnly
	WriteOnly
)

var accessCodes = map[params.AccessCode]Access{
	params.AccReadOnly:       ReadOnly,
	params.AccReadWrite:      ReadWrite,
	params.AccExistCheckOnly: CheckOnly,
	params.AccWriteOnly:      WriteOnly,
}

func (a Access) Writable() bool {
	return a == ReadWrite || a == WriteOnly
}

func (a Access) Readable() bool {
	return a == ReadOnly || a == ReadWrite
}

func (a Access) String() string {
	switch a {
	case ReadOnly:
		return "read-only"
	case ReadWrite:
		return "read-write"
	case CheckOnly:
		return "check-only"
	case WriteOnly:
		return "write-only"
	default:
		return "unknown"
	}
}
