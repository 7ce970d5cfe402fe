// Package tensor provides the core tensor types used by the gpucheck smoke tests.
package tensor

// DataType represents runtime type information for tensors.
type DataType int

// Supported data types.
//
// Float16 is a storage-only type: tensors can be allocated with it, but no
// arithmetic kernels operate on half-precision data.
const (
	Float32 DataType = iota
	Float16
	Int32
)

// Size returns the byte size of one element of the data type.
func (dt DataType) Size() int {
	switch dt {
	case Float32, Int32:
		return 4
	case Float16:
		return 2
	default:
		panic("unknown data type")
	}
}

// String returns a human-readable name for the data type.
func (dt DataType) String() string {
	switch dt {
	case Float32:
		return "float32"
	case Float16:
		return "float16"
	case Int32:
		return "int32"
	default:
		return "unknown"
	}
}
