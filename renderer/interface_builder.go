package renderer

import (
	"github.com/cockroachdb/errors"

	"github.com/natesway/nova-renderer/rhi"
	"github.com/natesway/nova-renderer/shader"
)

// createPipelineInterface reflects every populated stage, merges the
// discovered bindings into one layout, and asks the device for the
// interface object. On success the interface carries the vertex fields
// derived from the vertex stage.
//
// Binding conflicts between stages are diagnostics, not errors; only a
// reflection failure or a device rejection fails the build.
func (s *PipelineStorage) createPipelineInterface(
	info *PipelineCreateInfo,
	colorAttachments []rhi.TextureAttachmentInfo,
	depthAttachment *rhi.TextureAttachmentInfo,
) (rhi.PipelineInterface, error) {
	bindings := make(map[string]rhi.ResourceBindingDescription)

	for _, st := range info.stages() {
		if err := s.shaderModuleDescriptors(st.source, st.stage, bindings); err != nil {
			return nil, err
		}
	}

	iface, err := s.device.CreatePipelineInterface(bindings, colorAttachments, depthAttachment)
	if err != nil {
		return nil, errors.Mark(
			errors.Wrapf(err, "pipeline %s has an invalid interface", info.Name),
			ErrInvalidPipelineInterface)
	}

	fields, err := s.vertexFields(info.VertexShader)
	if err != nil {
		iface.Destroy()
		return nil, err
	}
	iface.SetVertexFields(fields)

	return iface, nil
}

// shaderModuleDescriptors reflects one stage and accumulates each
// discovered resource into the shared binding map, category by category
// in fixed enumeration order.
func (s *PipelineStorage) shaderModuleDescriptors(
	src *shader.Source,
	stage rhi.ShaderStage,
	bindings map[string]rhi.ResourceBindingDescription,
) error {
	refl, err := s.reflector.Reflect(src, stage)
	if err != nil {
		return errors.Wrapf(err, "reflect %s stage", stage)
	}

	for _, kind := range rhi.DescriptorTypes {
		for _, res := range refl.Resources(kind) {
			s.log.Debug("found shader resource",
				"name", res.Name,
				"type", kind.String(),
				"stage", stage.String())
			s.addResourceToBindings(bindings, stage, res, kind)
		}
	}
	return nil
}

// addResourceToBindings merges one reflected resource into the binding
// map. The first declaration of a name wins: a structurally identical
// redeclaration from another stage unions the stage masks, a structurally
// different one is reported and ignored.
func (s *PipelineStorage) addResourceToBindings(
	bindings map[string]rhi.ResourceBindingDescription,
	stage rhi.ShaderStage,
	res shader.Resource,
	kind rhi.DescriptorType,
) {
	newBinding := rhi.ResourceBindingDescription{
		Set:     res.Set,
		Binding: res.Binding,
		Type:    kind,
		Count:   1,
		Stages:  stage,
	}
	if len(res.Type.ArrayDims) > 0 {
		if dim := res.Type.ArrayDims[0]; dim > 0 {
			newBinding.Count = dim
		}
		// There is no reliable way to distinguish bounded from unbounded
		// arrays at this level, so every array resource is unbounded.
		newBinding.Unbounded = true
	}

	existing, ok := bindings[res.Name]
	if !ok {
		bindings[res.Name] = newBinding
		return
	}

	if !existing.StructurallyEqual(newBinding) {
		s.log.Error("two different bindings share one name across shader stages; use unique names",
			"resource", res.Name,
			"existing_stages", existing.Stages.String(),
			"conflicting_stage", stage.String())
		return
	}

	// Same binding declared by another stage.
	existing.Stages |= stage
	bindings[res.Name] = existing
}

// vertexFields derives the vertex input attributes from the vertex
// stage's reflected inputs, preserving declaration order.
func (s *PipelineStorage) vertexFields(src *shader.Source) ([]rhi.VertexField, error) {
	refl, err := s.reflector.Reflect(src, rhi.StageVertex)
	if err != nil {
		return nil, errors.Wrap(err, "reflect vertex inputs")
	}

	inputs := refl.StageInputs()
	fields := make([]rhi.VertexField, 0, len(inputs))
	for _, in := range inputs {
		fields = append(fields, rhi.VertexField{
			Name:   in.Name,
			Format: vertexFieldFormat(s.log, in.Base, in.VectorWidth),
		})
	}
	return fields, nil
}
