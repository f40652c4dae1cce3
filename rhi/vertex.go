package rhi

import (
	"fmt"

	"github.com/gogpu/gputypes"
)

// VertexFieldFormat is the encoding of one vertex input attribute.
type VertexFieldFormat int

const (
	// VertexFormatInvalid marks a vertex field whose reflected type has no
	// supported encoding. Callers should treat it as a data-quality
	// warning about the shader, not silently drop the field.
	VertexFormatInvalid VertexFieldFormat = iota

	// VertexFormatUint is a single 32-bit unsigned integer.
	VertexFormatUint

	// VertexFormatFloat2 is a two-component 32-bit float vector.
	VertexFormatFloat2

	// VertexFormatFloat3 is a three-component 32-bit float vector.
	VertexFormatFloat3

	// VertexFormatFloat4 is a four-component 32-bit float vector.
	VertexFormatFloat4
)

// String returns the string representation of the format.
func (f VertexFieldFormat) String() string {
	switch f {
	case VertexFormatInvalid:
		return "Invalid"
	case VertexFormatUint:
		return "Uint"
	case VertexFormatFloat2:
		return "Float2"
	case VertexFormatFloat3:
		return "Float3"
	case VertexFormatFloat4:
		return "Float4"
	default:
		return fmt.Sprintf("Unknown(%d)", int(f))
	}
}

// GPUType returns the gputypes vertex format backends feed to pipeline
// descriptors. Invalid fields map to VertexFormat zero value.
func (f VertexFieldFormat) GPUType() gputypes.VertexFormat {
	switch f {
	case VertexFormatUint:
		return gputypes.VertexFormatUint32
	case VertexFormatFloat2:
		return gputypes.VertexFormatFloat32x2
	case VertexFormatFloat3:
		return gputypes.VertexFormatFloat32x3
	case VertexFormatFloat4:
		return gputypes.VertexFormatFloat32x4
	default:
		return gputypes.VertexFormat(0)
	}
}

// Size returns the byte size of one attribute of this format.
// Invalid fields have size 0.
func (f VertexFieldFormat) Size() uint64 {
	switch f {
	case VertexFormatUint:
		return 4
	case VertexFormatFloat2:
		return 8
	case VertexFormatFloat3:
		return 12
	case VertexFormatFloat4:
		return 16
	default:
		return 0
	}
}

// VertexField is one vertex input attribute, derived from the vertex
// shader's stage-input reflection. Field order follows the shader's
// declaration order.
type VertexField struct {
	// Name is the attribute name as declared in the vertex shader.
	Name string

	// Format is the attribute encoding.
	Format VertexFieldFormat
}
