package model

// Dtype describes the element type of an ArrayLeaf.
type Dtype int

const (
	// DtypeUnknown indicates the element type is unknown or unspecified.
	DtypeUnknown Dtype = iota
	// DtypeUint8 indicates unsigned 8-bit integer elements.
	DtypeUint8
)

// String returns a string representation of the Dtype.
func (d Dtype) String() string {
	switch d {
	case DtypeUint8:
		return "uint8"
	default:
		return "unknown"
	}
}

// Size returns the element size in bytes, or 0 for DtypeUnknown.
func (d Dtype) Size() int {
	switch d {
	case DtypeUint8:
		return 1
	default:
		return 0
	}
}
