package renderer

import "github.com/natesway/nova-renderer/rhi"

// RenderPassMetadata is the attachment layout of one render pass: the
// color targets and the optional depth target a pipeline renders into.
type RenderPassMetadata struct {
	// ColorAttachments are the pass's color targets.
	ColorAttachments []rhi.TextureAttachmentInfo

	// DepthAttachment is the pass's depth target, nil if the pass has none.
	DepthAttachment *rhi.TextureAttachmentInfo
}

// RenderPassMetadataProvider resolves render pass names to their
// attachment metadata. The render graph implements this; tests and
// standalone users can use RenderPassRegistry.
type RenderPassMetadataProvider interface {
	// RenderPassMetadata returns the metadata registered for a pass, and
	// whether the pass is known.
	RenderPassMetadata(pass string) (RenderPassMetadata, bool)
}

// RenderPassRegistry is a name-keyed collection of render pass metadata.
//
// RenderPassRegistry is NOT safe for concurrent use; like PipelineStorage
// it belongs to the resource-preparation thread.
type RenderPassRegistry struct {
	passes map[string]RenderPassMetadata
}

// NewRenderPassRegistry creates an empty registry.
func NewRenderPassRegistry() *RenderPassRegistry {
	return &RenderPassRegistry{passes: make(map[string]RenderPassMetadata)}
}

// Register stores metadata under a pass name, replacing any prior entry.
func (r *RenderPassRegistry) Register(pass string, md RenderPassMetadata) {
	r.passes[pass] = md
}

// RenderPassMetadata implements RenderPassMetadataProvider.
func (r *RenderPassRegistry) RenderPassMetadata(pass string) (RenderPassMetadata, bool) {
	md, ok := r.passes[pass]
	return md, ok
}
