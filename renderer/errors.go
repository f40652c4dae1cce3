package renderer

import "github.com/cockroachdb/errors"

// Pipeline creation failure kinds. CreatePipeline returns errors marked
// with one of these sentinels; distinguish them with errors.Is.
var (
	// ErrMissingRenderPassMetadata is returned when a pipeline's target
	// render pass has no registered metadata.
	ErrMissingRenderPassMetadata = errors.New("renderer: no metadata for render pass")

	// ErrInvalidPipelineInterface is returned when the device rejects the
	// merged binding layout.
	ErrInvalidPipelineInterface = errors.New("renderer: invalid pipeline interface")

	// ErrPipelineCreationFailed is returned when the device fails to
	// allocate the pipeline object.
	ErrPipelineCreationFailed = errors.New("renderer: pipeline creation failed")
)
