// Package nova provides the pipeline interface builder and cache of the
// nova renderer.
//
// # Overview
//
// nova takes a declarative description of a graphics pipeline (shader
// sources per stage, target render pass and fixed-function state),
// reflects each stage to discover the resources it binds, merges the
// per-stage discoveries into one unified resource-binding layout, derives
// the vertex input layout from the vertex stage, and delegates GPU object
// allocation to a device abstraction. Built pipelines are cached by name
// for later lookup.
//
// # Quick Start
//
//	vert := shader.NewSource("gbuffer.vert.wgsl", vertWGSL)
//	frag := shader.NewSource("gbuffer.frag.wgsl", fragWGSL)
//
//	passes := renderer.NewRenderPassRegistry()
//	passes.Register("forward", renderer.RenderPassMetadata{ /* attachments */ })
//
//	storage := renderer.NewPipelineStorage(device, passes, nil, nova.Logger())
//	err := storage.CreatePipeline(&renderer.PipelineCreateInfo{
//	    Name:           "gbuffer",
//	    Pass:           "forward",
//	    VertexShader:   vert,
//	    FragmentShader: frag,
//	})
//
// # Architecture
//
// The library is organized into:
//   - rhi: device-facing types (bindings, vertex fields, attachments) and
//     the Device / PipelineInterface / Pipeline interfaces
//   - shader: WGSL sources, naga-backed compilation and reflection
//   - renderer: binding merge, interface building, the pipeline cache
//   - backend/native: rhi.Device implemented over gogpu/wgpu HAL
package nova
