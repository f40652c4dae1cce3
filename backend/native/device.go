package native

import (
	"fmt"
	"log/slog"

	"github.com/cockroachdb/errors"
	"github.com/gogpu/gpucontext"
	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"

	nova "github.com/natesway/nova-renderer"
	"github.com/natesway/nova-renderer/rhi"
)

// Device implements rhi.Device over a gogpu/wgpu HAL device.
//
// Device is NOT safe for concurrent use; it belongs to whichever thread
// owns pipeline preparation.
type Device struct {
	hal hal.Device
	log *slog.Logger
}

var _ rhi.Device = (*Device)(nil)

// NewDevice wraps a HAL device. A nil logger defaults to the package
// logger.
func NewDevice(device hal.Device, log *slog.Logger) (*Device, error) {
	if device == nil {
		return nil, ErrNilHALDevice
	}
	if log == nil {
		log = nova.Logger()
	}
	return &Device{hal: device, log: log}, nil
}

// NewDeviceFromProvider wraps the HAL device exposed by a gpucontext
// device provider, such as a running render context. The provider must
// additionally expose a HalDevice() accessor returning a hal.Device.
func NewDeviceFromProvider(provider gpucontext.DeviceProvider, log *slog.Logger) (*Device, error) {
	if provider == nil {
		return nil, ErrNoHALDevice
	}
	hp, ok := provider.(interface {
		HalDevice() any
	})
	if !ok {
		return nil, ErrNoHALDevice
	}
	device, ok := hp.HalDevice().(hal.Device)
	if !ok || device == nil {
		return nil, ErrNoHALDevice
	}
	return NewDevice(device, log)
}

// CreatePipelineInterface builds one bind group layout per descriptor
// set referenced by the bindings, plus the pipeline layout over them.
// Sets must be contiguous from zero; a gap would shift every later
// set's group index, so gaps are rejected.
func (d *Device) CreatePipelineInterface(
	bindings map[string]rhi.ResourceBindingDescription,
	colorAttachments []rhi.TextureAttachmentInfo,
	depthAttachment *rhi.TextureAttachmentInfo,
) (rhi.PipelineInterface, error) {
	sets, entries, err := layoutEntriesBySet(bindings)
	if err != nil {
		return nil, err
	}
	for i, set := range sets {
		if set != uint32(i) {
			return nil, errors.Newf("native: descriptor sets must be contiguous from 0, got set %d at position %d", set, i)
		}
	}

	iface := &pipelineInterface{
		device:   d,
		bindings: bindings,
		colors:   colorAttachments,
		depth:    depthAttachment,
	}
	for _, set := range sets {
		layout, err := d.hal.CreateBindGroupLayout(&hal.BindGroupLayoutDescriptor{
			Label:   fmt.Sprintf("set%d_layout", set),
			Entries: entries[set],
		})
		if err != nil {
			iface.Destroy()
			return nil, errors.Wrapf(err, "create bind group layout for set %d", set)
		}
		iface.groupLayouts = append(iface.groupLayouts, layout)
	}

	layout, err := d.hal.CreatePipelineLayout(&hal.PipelineLayoutDescriptor{
		Label:            "pipeline_layout",
		BindGroupLayouts: iface.groupLayouts,
	})
	if err != nil {
		iface.Destroy()
		return nil, errors.Wrap(err, "create pipeline layout")
	}
	iface.layout = layout

	d.log.Debug("created pipeline interface",
		"sets", len(sets), "bindings", len(bindings))
	return iface, nil
}

// CreatePipeline builds the HAL render pipeline for an interface. The
// vertex and fragment stages come from the description's compiled
// SPIR-V; entry points follow the WGSL convention vs_main and fs_main.
func (d *Device) CreatePipeline(iface rhi.PipelineInterface, desc *rhi.PipelineDescription) (rhi.Pipeline, error) {
	pi, ok := iface.(*pipelineInterface)
	if !ok {
		return nil, ErrForeignInterface
	}
	if err := validateStages(desc); err != nil {
		return nil, err
	}

	p := &pipeline{device: d, name: desc.Name, iface: pi}

	vertModule, err := d.createShaderModule(desc.Name+"_vs", desc.Stages[rhi.StageVertex])
	if err != nil {
		return nil, errors.Wrap(err, "create vertex shader module")
	}
	p.modules = append(p.modules, vertModule)

	vertex := hal.VertexState{
		Module:     vertModule,
		EntryPoint: "vs_main",
		Buffers:    vertexBufferLayouts(pi.fields),
	}

	var fragment *hal.FragmentState
	if spirv, ok := desc.Stages[rhi.StageFragment]; ok {
		fragModule, err := d.createShaderModule(desc.Name+"_fs", spirv)
		if err != nil {
			p.destroyModules()
			return nil, errors.Wrap(err, "create fragment shader module")
		}
		p.modules = append(p.modules, fragModule)
		fragment = &hal.FragmentState{
			Module:     fragModule,
			EntryPoint: "fs_main",
			Targets:    colorTargets(pi.colors, desc.State.Blend),
		}
	}

	halPipeline, err := d.hal.CreateRenderPipeline(&hal.RenderPipelineDescriptor{
		Label:        desc.Name,
		Layout:       pi.layout,
		Vertex:       vertex,
		Fragment:     fragment,
		DepthStencil: depthStencilState(pi.depth, desc.State),
		Primitive: gputypes.PrimitiveState{
			Topology:  desc.State.Topology,
			FrontFace: desc.State.FrontFace,
			CullMode:  desc.State.CullMode,
		},
		Multisample: gputypes.MultisampleState{
			Count: sampleCount(desc.State.SampleCount),
			Mask:  0xFFFFFFFF,
		},
	})
	if err != nil {
		p.destroyModules()
		return nil, errors.Wrapf(err, "create render pipeline %s", desc.Name)
	}
	p.halPipeline = halPipeline

	return p, nil
}

// validateStages rejects descriptions the WebGPU model cannot run:
// tessellation and geometry stages have no equivalent, and the vertex
// stage is mandatory.
func validateStages(desc *rhi.PipelineDescription) error {
	if _, ok := desc.Stages[rhi.StageVertex]; !ok {
		return errors.Wrapf(ErrMissingVertexStage, "pipeline %s", desc.Name)
	}
	for stage := range desc.Stages {
		switch stage {
		case rhi.StageVertex, rhi.StageFragment:
		default:
			return errors.Wrapf(ErrUnsupportedStage, "pipeline %s: stage %s", desc.Name, stage)
		}
	}
	return nil
}

func (d *Device) createShaderModule(label string, spirv []uint32) (hal.ShaderModule, error) {
	return d.hal.CreateShaderModule(&hal.ShaderModuleDescriptor{
		Label:  label,
		Source: hal.ShaderSource{SPIRV: spirv},
	})
}

// vertexBufferLayouts packs every vertex field into a single interleaved
// buffer, locations assigned in field order.
func vertexBufferLayouts(fields []rhi.VertexField) []gputypes.VertexBufferLayout {
	if len(fields) == 0 {
		return nil
	}
	attrs := make([]gputypes.VertexAttribute, 0, len(fields))
	var offset uint64
	for i, f := range fields {
		attrs = append(attrs, gputypes.VertexAttribute{
			Format:         f.Format.GPUType(),
			Offset:         offset,
			ShaderLocation: uint32(i),
		})
		offset += f.Format.Size()
	}
	return []gputypes.VertexBufferLayout{{
		ArrayStride: offset,
		StepMode:    gputypes.VertexStepModeVertex,
		Attributes:  attrs,
	}}
}

// colorTargets maps the render pass attachments to color target states.
// One blend state applies to all targets; nil blend means replace.
func colorTargets(colors []rhi.TextureAttachmentInfo, blend *rhi.BlendState) []gputypes.ColorTargetState {
	targets := make([]gputypes.ColorTargetState, 0, len(colors))
	for _, att := range colors {
		targets = append(targets, gputypes.ColorTargetState{
			Format:    att.Format,
			Blend:     blendState(blend),
			WriteMask: gputypes.ColorWriteMaskAll,
		})
	}
	return targets
}

func blendState(b *rhi.BlendState) *gputypes.BlendState {
	if b == nil {
		return nil
	}
	return &gputypes.BlendState{
		Color: gputypes.BlendComponent{
			SrcFactor: b.Color.SrcFactor,
			DstFactor: b.Color.DstFactor,
			Operation: b.Color.Operation,
		},
		Alpha: gputypes.BlendComponent{
			SrcFactor: b.Alpha.SrcFactor,
			DstFactor: b.Alpha.DstFactor,
			Operation: b.Alpha.Operation,
		},
	}
}

// depthStencilState derives the depth state from the pass's depth
// attachment and the pipeline's fixed-function state. No attachment, no
// depth state. Stencil is pass-through.
func depthStencilState(depth *rhi.TextureAttachmentInfo, state rhi.PipelineState) *hal.DepthStencilState {
	if depth == nil {
		return nil
	}
	compare := state.DepthCompare
	if compare == 0 {
		compare = gputypes.CompareFunctionAlways
	}
	passThrough := hal.StencilFaceState{
		Compare:     gputypes.CompareFunctionAlways,
		FailOp:      hal.StencilOperationKeep,
		DepthFailOp: hal.StencilOperationKeep,
		PassOp:      hal.StencilOperationKeep,
	}
	return &hal.DepthStencilState{
		Format:            depth.Format,
		DepthWriteEnabled: state.DepthWriteEnabled,
		DepthCompare:      compare,
		StencilFront:      passThrough,
		StencilBack:       passThrough,
	}
}

func sampleCount(n uint32) uint32 {
	if n == 0 {
		return 1
	}
	return n
}
