// Package renderer builds pipeline interfaces and caches pipelines.
//
// PipelineStorage is the entry point: given a PipelineCreateInfo it
// resolves the target render pass's attachment metadata, reflects every
// populated shader stage, merges the per-stage resource bindings into one
// layout (detecting incompatible redeclarations), derives the vertex input
// layout from the vertex stage, asks the rhi.Device for the device
// objects, and caches the result under the pipeline's name.
//
// PipelineStorage is NOT safe for concurrent use; it is intended to be
// driven from one rendering/resource-preparation thread.
package renderer
