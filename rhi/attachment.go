package rhi

import "github.com/gogpu/gputypes"

// TextureAttachmentInfo describes one render target of a render pass:
// a color attachment or the depth attachment a pipeline renders into.
type TextureAttachmentInfo struct {
	// Name is the attachment's name in the render graph.
	Name string

	// Format is the attachment's pixel format.
	Format gputypes.TextureFormat

	// Clear indicates the attachment is cleared before rendering.
	Clear bool
}
