package renderer

import (
	"github.com/natesway/nova-renderer/rhi"
	"github.com/natesway/nova-renderer/shader"
)

// PipelineCreateInfo is the immutable description of one graphics
// pipeline: a unique name, the render pass it targets, the shader source
// of every populated stage, and fixed-function state the device consumes
// opaquely.
//
// The vertex shader is always required; the remaining stages are optional.
type PipelineCreateInfo struct {
	// Name is the pipeline's unique cache key.
	Name string

	// Pass is the name of the render pass the pipeline renders into.
	Pass string

	// VertexShader is the vertex stage source. Required.
	VertexShader *shader.Source

	// TessellationControlShader is the tessellation control stage source.
	TessellationControlShader *shader.Source

	// TessellationEvaluationShader is the tessellation evaluation stage
	// source.
	TessellationEvaluationShader *shader.Source

	// GeometryShader is the geometry stage source.
	GeometryShader *shader.Source

	// FragmentShader is the fragment stage source.
	FragmentShader *shader.Source

	// State is the fixed-function state, passed to the device untouched.
	State rhi.PipelineState
}

// stageSource pairs one populated stage with its source.
type stageSource struct {
	stage  rhi.ShaderStage
	source *shader.Source
}

// stages returns the populated stages in fixed pipeline order: vertex,
// tessellation control, tessellation evaluation, geometry, fragment.
// Binding accumulation and descriptor merge follow this order, so the
// vertex stage's declarations win conflicts.
func (ci *PipelineCreateInfo) stages() []stageSource {
	out := []stageSource{{rhi.StageVertex, ci.VertexShader}}
	if ci.TessellationControlShader != nil {
		out = append(out, stageSource{rhi.StageTessellationControl, ci.TessellationControlShader})
	}
	if ci.TessellationEvaluationShader != nil {
		out = append(out, stageSource{rhi.StageTessellationEvaluation, ci.TessellationEvaluationShader})
	}
	if ci.GeometryShader != nil {
		out = append(out, stageSource{rhi.StageGeometry, ci.GeometryShader})
	}
	if ci.FragmentShader != nil {
		out = append(out, stageSource{rhi.StageFragment, ci.FragmentShader})
	}
	return out
}
