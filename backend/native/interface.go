package native

import (
	"sort"

	"github.com/cockroachdb/errors"
	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"

	"github.com/natesway/nova-renderer/rhi"
)

// pipelineInterface is the HAL realization of rhi.PipelineInterface: one
// bind group layout per descriptor set plus the pipeline layout tying
// them together.
type pipelineInterface struct {
	device *Device

	bindings map[string]rhi.ResourceBindingDescription
	colors   []rhi.TextureAttachmentInfo
	depth    *rhi.TextureAttachmentInfo
	fields   []rhi.VertexField

	groupLayouts []hal.BindGroupLayout
	layout       hal.PipelineLayout
}

var _ rhi.PipelineInterface = (*pipelineInterface)(nil)

func (p *pipelineInterface) Bindings() map[string]rhi.ResourceBindingDescription {
	return p.bindings
}

func (p *pipelineInterface) ColorAttachments() []rhi.TextureAttachmentInfo {
	return p.colors
}

func (p *pipelineInterface) DepthAttachment() *rhi.TextureAttachmentInfo {
	return p.depth
}

func (p *pipelineInterface) VertexFields() []rhi.VertexField {
	return p.fields
}

func (p *pipelineInterface) SetVertexFields(fields []rhi.VertexField) {
	p.fields = fields
}

// Destroy releases the pipeline layout and bind group layouts in reverse
// creation order. Safe to call more than once.
func (p *pipelineInterface) Destroy() {
	if p.layout != nil {
		p.device.hal.DestroyPipelineLayout(p.layout)
		p.layout = nil
	}
	for i := len(p.groupLayouts) - 1; i >= 0; i-- {
		if p.groupLayouts[i] != nil {
			p.device.hal.DestroyBindGroupLayout(p.groupLayouts[i])
			p.groupLayouts[i] = nil
		}
	}
	p.groupLayouts = nil
}

// layoutEntriesBySet splits the merged bindings into per-set entry lists.
// Sets come out in ascending order; entries within a set in ascending
// binding order, so layout creation is deterministic regardless of map
// iteration.
func layoutEntriesBySet(bindings map[string]rhi.ResourceBindingDescription) ([]uint32, map[uint32][]gputypes.BindGroupLayoutEntry, error) {
	entries := make(map[uint32][]gputypes.BindGroupLayoutEntry)
	for name, b := range bindings {
		entry, err := layoutEntry(name, b)
		if err != nil {
			return nil, nil, err
		}
		entries[b.Set] = append(entries[b.Set], entry)
	}

	sets := make([]uint32, 0, len(entries))
	for set := range entries {
		sets = append(sets, set)
	}
	sort.Slice(sets, func(i, j int) bool { return sets[i] < sets[j] })
	for _, set := range sets {
		es := entries[set]
		sort.Slice(es, func(i, j int) bool { return es[i].Binding < es[j].Binding })
	}
	return sets, entries, nil
}

// layoutEntry maps one merged binding to a WebGPU layout entry.
func layoutEntry(name string, b rhi.ResourceBindingDescription) (gputypes.BindGroupLayoutEntry, error) {
	if b.Unbounded || b.Count > 1 {
		return gputypes.BindGroupLayoutEntry{},
			errors.Wrapf(ErrBindingArray, "binding %s", name)
	}

	entry := gputypes.BindGroupLayoutEntry{
		Binding:    b.Binding,
		Visibility: stageVisibility(b.Stages),
	}
	switch b.Type {
	case rhi.DescriptorUniformBuffer:
		entry.Buffer = &gputypes.BufferBindingLayout{Type: gputypes.BufferBindingTypeUniform}
	case rhi.DescriptorStorageBuffer:
		entry.Buffer = &gputypes.BufferBindingLayout{Type: gputypes.BufferBindingTypeStorage}
	case rhi.DescriptorTexture:
		entry.Texture = &gputypes.TextureBindingLayout{
			SampleType:    gputypes.TextureSampleTypeFloat,
			ViewDimension: gputypes.TextureViewDimension2D,
		}
	case rhi.DescriptorSampler:
		entry.Sampler = &gputypes.SamplerBindingLayout{Type: gputypes.SamplerBindingTypeFiltering}
	case rhi.DescriptorCombinedImageSampler:
		return gputypes.BindGroupLayoutEntry{},
			errors.Wrapf(ErrCombinedImageSampler, "binding %s", name)
	default:
		return gputypes.BindGroupLayoutEntry{},
			errors.Newf("native: binding %s has unknown descriptor type %v", name, b.Type)
	}
	return entry, nil
}

// stageVisibility converts a stage mask to WebGPU shader stage flags.
// Stages WebGPU has no equivalent for contribute nothing; their absence
// is caught earlier, when the pipeline description is validated.
func stageVisibility(stages rhi.ShaderStage) gputypes.ShaderStage {
	var v gputypes.ShaderStage
	if stages&rhi.StageVertex != 0 {
		v |= gputypes.ShaderStageVertex
	}
	if stages&rhi.StageFragment != 0 {
		v |= gputypes.ShaderStageFragment
	}
	return v
}
