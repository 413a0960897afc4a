package params

// Status is the rs_bool every PVCAM call returns.
type Status uint16

const (
	StatusFail Status = 0
	StatusOK   Status = 1
)

// Attribute selects which facet of a parameter pl_get_param reports.
type Attribute int16

const (
	AttrCurrent   Attribute = 0
	AttrCount     Attribute = 1
	AttrType      Attribute = 2
	AttrMin       Attribute = 3
	AttrMax       Attribute = 4
	AttrDefault   Attribute = 5
	AttrIncrement Attribute = 6
	AttrAccess    Attribute = 7
	AttrAvailable Attribute = 8
)

func (a Attribute) String() string {
	switch a {
	case AttrCurrent:
		return "current"
	case AttrCount:
		return "count"
	case AttrType:
		return "type"
	case AttrMin:
		return "min"
	case AttrMax:
		return "max"
	case AttrDefault:
		return "default"
	case AttrIncrement:
		return "increment"
	case AttrAccess:
		return "access"
	case AttrAvailable:
		return "available"
	default:
		return "unknown"
	}
}

// TypeCode is the value reported for AttrType.
type TypeCode uint32

const (
	TypeInt16     TypeCode = 1
	TypeInt32     TypeCode = 2
	TypeFlt64     TypeCode = 4
	TypeUns8      TypeCode = 5
	TypeUns16     TypeCode = 6
	TypeUns32     TypeCode = 7
	TypeUns64     TypeCode = 8
	TypeEnum      TypeCode = 9
	TypeBoolean   TypeCode = 11
	TypeInt8      TypeCode = 12
	TypeCharPtr   TypeCode = 13
	TypeVoidPtr   TypeCode = 14
	TypeVoidPtrPP TypeCode = 15
	TypeInt64     TypeCode = 16
	TypeFlt32     TypeCode = 19
)

// AccessCode is the value reported for AttrAccess.
type AccessCode uint16

const (
	AccReadOnly       AccessCode = 1
	AccReadWrite      AccessCode = 2
	AccExistCheckOnly AccessCode = 3
	AccWriteOnly      AccessCode = 4
)

// OpenMode is passed to pl_cam_open.
type OpenMode int16

const OpenExclusive OpenMode = 0

// Buffer capacities from pvcam.h. Every string the device writes into a
// fixed buffer fits in these, including the terminator.
const (
	ErrorMsgLen  = 255
	CamNameLen   = 32
	MaxPPNameLen = 32
)

// Parameter classes used to build ids.
const (
	class2 = 2
	class3 = 3
)

// ID is a PVCAM parameter id: class in bits 16-23, storage type in bits
// 24-31, ordinal in the low 16 bits.
type ID uint32

// DeclaredType is the storage type baked into the id by the SDK headers. It
// is informational only; the device's AttrType answer is authoritative.
func (id ID) DeclaredType() TypeCode {
	return TypeCode(uint32(id) >> 24)
}

const (
	ChipName            ID = class2<<16 | ID(TypeCharPtr)<<24 | 129
	SensorParallelSize  ID = class2<<16 | ID(TypeUns16)<<24 | 57
	SensorSerialSize    ID = class2<<16 | ID(TypeUns16)<<24 | 58
	ClearCycles         ID = class2<<16 | ID(TypeUns16)<<24 | 97
	ReadoutPort         ID = class2<<16 | ID(TypeEnum)<<24 | 247
	BitDepth            ID = class2<<16 | ID(TypeInt16)<<24 | 511
	GainIndex           ID = class2<<16 | ID(TypeInt16)<<24 | 512
	SpeedTableIndex     ID = class2<<16 | ID(TypeInt16)<<24 | 513
	ClearMode           ID = class2<<16 | ID(TypeEnum)<<24 | 523
	TemperatureSetpoint ID = class2<<16 | ID(TypeInt16)<<24 | 524
	Temperature         ID = class2<<16 | ID(TypeInt16)<<24 | 525
	HeadSerNumAlpha     ID = class2<<16 | ID(TypeCharPtr)<<24 | 533
	ExposureMode        ID = class3<<16 | ID(TypeEnum)<<24 | 535
	ExposeOutMode       ID = class3<<16 | ID(TypeEnum)<<24 | 560
)
