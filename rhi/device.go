package rhi

import "github.com/gogpu/gputypes"

// PipelineInterface is the resource-binding and attachment layout contract
// a pipeline exposes to the device, independent of the specific pipeline
// object. Interfaces are created and owned by a Device; pipelines
// reference them without owning them.
type PipelineInterface interface {
	// Bindings returns the merged resource bindings, keyed by resource name.
	Bindings() map[string]ResourceBindingDescription

	// ColorAttachments returns the color attachment layout copied from the
	// target render pass.
	ColorAttachments() []TextureAttachmentInfo

	// DepthAttachment returns the depth attachment, or nil if the render
	// pass has none.
	DepthAttachment() *TextureAttachmentInfo

	// VertexFields returns the vertex input attributes in vertex-shader
	// declaration order.
	VertexFields() []VertexField

	// SetVertexFields attaches the derived vertex input attributes.
	// Called once by the interface builder after reflection.
	SetVertexFields(fields []VertexField)

	// Destroy releases device resources backing the interface.
	Destroy()
}

// Pipeline is a device-ready GPU pipeline object together with a reference
// to the interface it was created from.
type Pipeline interface {
	// Name returns the pipeline's debug name.
	Name() string

	// Interface returns the pipeline's interface. The interface is owned
	// by the device, not the pipeline.
	Interface() PipelineInterface

	// Destroy releases the device pipeline object. It does not destroy
	// the interface.
	Destroy()
}

// BlendComponent describes a blend component (color or alpha).
type BlendComponent struct {
	// SrcFactor is the source blend factor.
	SrcFactor gputypes.BlendFactor

	// DstFactor is the destination blend factor.
	DstFactor gputypes.BlendFactor

	// Operation is the blend operation.
	Operation gputypes.BlendOperation
}

// BlendState describes the color blending configuration.
type BlendState struct {
	// Color is the color blending configuration.
	Color BlendComponent

	// Alpha is the alpha blending configuration.
	Alpha BlendComponent
}

// ScissorMode controls how a pipeline sources its scissor rectangle.
type ScissorMode int

const (
	// ScissorOff disables scissor testing.
	ScissorOff ScissorMode = iota

	// ScissorDynamic takes the scissor rectangle from the render pass at
	// draw time.
	ScissorDynamic
)

// PipelineState is the fixed-function state of a pipeline. The builder
// passes it through to the device untouched.
type PipelineState struct {
	// Topology is the primitive type (triangles, lines, points).
	Topology gputypes.PrimitiveTopology

	// FrontFace defines which face is considered front-facing.
	FrontFace gputypes.FrontFace

	// CullMode defines which faces to cull.
	CullMode gputypes.CullMode

	// DepthWriteEnabled enables depth buffer writes.
	DepthWriteEnabled bool

	// DepthCompare is the depth comparison function.
	DepthCompare gputypes.CompareFunction

	// Blend is the color blending configuration (optional).
	// Nil means no blending (source replaces destination).
	Blend *BlendState

	// Scissor controls scissor testing. The native backend applies the
	// rectangle at draw recording time, as WebGPU requires.
	Scissor ScissorMode

	// SampleCount is the number of samples per pixel (1 for non-MSAA).
	// 0 defaults to 1.
	SampleCount uint32
}

// PipelineDescription is the device-level description of a pipeline:
// the compiled code of every populated stage plus fixed-function state.
type PipelineDescription struct {
	// Name is the pipeline's debug name.
	Name string

	// Stages holds the compiled SPIR-V of each populated stage, keyed by
	// the single stage bit.
	Stages map[ShaderStage][]uint32

	// State is the fixed-function state.
	State PipelineState
}

// Device allocates GPU pipeline objects. backend/native implements it
// over gogpu/wgpu HAL; tests substitute fakes.
type Device interface {
	// CreatePipelineInterface allocates the device-level layout objects
	// for the merged bindings and the render pass's attachments.
	CreatePipelineInterface(
		bindings map[string]ResourceBindingDescription,
		colorAttachments []TextureAttachmentInfo,
		depthAttachment *TextureAttachmentInfo,
	) (PipelineInterface, error)

	// CreatePipeline allocates the GPU pipeline object for an interface.
	// This is the only operation expected to have non-trivial latency
	// (driver-side compilation and allocation).
	CreatePipeline(iface PipelineInterface, desc *PipelineDescription) (Pipeline, error)
}
