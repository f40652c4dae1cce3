package shader

import (
	"fmt"

	"github.com/natesway/nova-renderer/rhi"
)

// BaseType is the scalar or opaque base type of a reflected shader value.
type BaseType int

const (
	// BaseUnknown is a type the reflector could not classify.
	BaseUnknown BaseType = iota

	// BaseBool is a boolean.
	BaseBool

	// BaseInt is a 32-bit signed integer.
	BaseInt

	// BaseInt64 is a 64-bit signed integer.
	BaseInt64

	// BaseUint is a 32-bit unsigned integer.
	BaseUint

	// BaseUint64 is a 64-bit unsigned integer.
	BaseUint64

	// BaseHalf is a 16-bit float.
	BaseHalf

	// BaseFloat is a 32-bit float.
	BaseFloat

	// BaseDouble is a 64-bit float.
	BaseDouble

	// BaseStruct is a structure.
	BaseStruct

	// BaseImage is a texture/image handle.
	BaseImage

	// BaseSampler is a sampler handle.
	BaseSampler
)

// String returns the string representation of the base type.
func (b BaseType) String() string {
	switch b {
	case BaseUnknown:
		return "Unknown"
	case BaseBool:
		return "Bool"
	case BaseInt:
		return "Int"
	case BaseInt64:
		return "Int64"
	case BaseUint:
		return "Uint"
	case BaseUint64:
		return "Uint64"
	case BaseHalf:
		return "Half"
	case BaseFloat:
		return "Float"
	case BaseDouble:
		return "Double"
	case BaseStruct:
		return "Struct"
	case BaseImage:
		return "Image"
	case BaseSampler:
		return "Sampler"
	default:
		return fmt.Sprintf("Unknown(%d)", int(b))
	}
}

// TypeInfo is the reflected shape of a shader value's type.
type TypeInfo struct {
	// Base is the scalar or opaque base type.
	Base BaseType

	// VectorWidth is the number of vector components, 1 for scalars.
	VectorWidth uint32

	// ArrayDims holds the array dimensions, outermost first.
	// A dimension of 0 means runtime-sized. Empty for non-arrays.
	ArrayDims []uint32
}

// Resource is one bound resource discovered by reflection.
type Resource struct {
	// Name is the resource's declared name.
	Name string

	// Set is the descriptor set index (WGSL @group).
	Set uint32

	// Binding is the binding index within the set (WGSL @binding).
	Binding uint32

	// Type is the resource's reflected type shape.
	Type TypeInfo
}

// StageInput is one stage input of a shader entry point, in declaration
// order.
type StageInput struct {
	// Name is the input's declared name.
	Name string

	// Base is the input's scalar base type.
	Base BaseType

	// VectorWidth is the number of vector components, 1 for scalars.
	VectorWidth uint32
}

// Reflection is the reflected view of one compiled shader stage. The
// builder enumerates each descriptor category in the fixed order of
// rhi.DescriptorTypes and, for the vertex stage, the stage inputs.
type Reflection interface {
	// Resources returns the resources of one descriptor category, in
	// declaration order. Categories with no resources return nil.
	Resources(kind rhi.DescriptorType) []Resource

	// StageInputs returns the entry point's inputs in declaration order.
	StageInputs() []StageInput
}

// Reflector produces a Reflection for one shader stage. The naga-backed
// implementation is Reflect; tests substitute fakes.
type Reflector interface {
	// Reflect reflects the source's entry point for the given stage.
	Reflect(src *Source, stage rhi.ShaderStage) (Reflection, error)
}
