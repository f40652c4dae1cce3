package rhi

import (
	"fmt"
	"strings"
)

// ShaderStage is a bitmask of the graphics pipeline stages that use a
// resource. Stages combine with bitwise OR.
type ShaderStage uint32

const (
	// StageVertex is the vertex shader stage.
	StageVertex ShaderStage = 1 << iota

	// StageTessellationControl is the tessellation control shader stage.
	StageTessellationControl

	// StageTessellationEvaluation is the tessellation evaluation shader stage.
	StageTessellationEvaluation

	// StageGeometry is the geometry shader stage.
	StageGeometry

	// StageFragment is the fragment shader stage.
	StageFragment
)

// AllGraphicsStages is the union of every graphics stage.
const AllGraphicsStages = StageVertex | StageTessellationControl |
	StageTessellationEvaluation | StageGeometry | StageFragment

// stageNames lists stages in pipeline order. Binding accumulation walks
// stages in exactly this order.
var stageNames = []struct {
	stage ShaderStage
	name  string
}{
	{StageVertex, "vertex"},
	{StageTessellationControl, "tessellation_control"},
	{StageTessellationEvaluation, "tessellation_evaluation"},
	{StageGeometry, "geometry"},
	{StageFragment, "fragment"},
}

// String returns a pipe-separated list of the stages in the mask.
func (s ShaderStage) String() string {
	if s == 0 {
		return "none"
	}
	var parts []string
	for _, sn := range stageNames {
		if s&sn.stage != 0 {
			parts = append(parts, sn.name)
		}
	}
	if parts == nil {
		return fmt.Sprintf("Unknown(0x%x)", uint32(s))
	}
	return strings.Join(parts, "|")
}

// DescriptorType identifies the kind of GPU resource a binding addresses.
// The set of kinds is fixed by the device capability model.
type DescriptorType int

const (
	// DescriptorTexture is a separately bound (non-sampled) image.
	DescriptorTexture DescriptorType = iota

	// DescriptorSampler is a separately bound sampler.
	DescriptorSampler

	// DescriptorCombinedImageSampler is an image bound together with its
	// sampler.
	DescriptorCombinedImageSampler

	// DescriptorUniformBuffer is a read-only uniform buffer.
	DescriptorUniformBuffer

	// DescriptorStorageBuffer is a read-write storage buffer.
	DescriptorStorageBuffer
)

// DescriptorTypes lists every descriptor type in reflection enumeration
// order: images, samplers, combined image-samplers, uniform buffers,
// storage buffers.
var DescriptorTypes = []DescriptorType{
	DescriptorTexture,
	DescriptorSampler,
	DescriptorCombinedImageSampler,
	DescriptorUniformBuffer,
	DescriptorStorageBuffer,
}

// String returns the string representation of the descriptor type.
func (d DescriptorType) String() string {
	switch d {
	case DescriptorTexture:
		return "Texture"
	case DescriptorSampler:
		return "Sampler"
	case DescriptorCombinedImageSampler:
		return "CombinedImageSampler"
	case DescriptorUniformBuffer:
		return "UniformBuffer"
	case DescriptorStorageBuffer:
		return "StorageBuffer"
	default:
		return fmt.Sprintf("Unknown(%d)", int(d))
	}
}
