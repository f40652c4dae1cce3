package native

import "github.com/cockroachdb/errors"

// Backend errors.
var (
	// ErrNilHALDevice is returned when constructing a device without a
	// HAL device.
	ErrNilHALDevice = errors.New("native: HAL device is nil")

	// ErrNoHALDevice is returned when a device provider does not expose a
	// HAL device.
	ErrNoHALDevice = errors.New("native: provider exposes no HAL device")

	// ErrCombinedImageSampler is returned for combined image-sampler
	// bindings, which WebGPU cannot express.
	ErrCombinedImageSampler = errors.New("native: combined image-samplers are not supported; bind the image and sampler separately")

	// ErrBindingArray is returned for array bindings, which WebGPU core
	// cannot express.
	ErrBindingArray = errors.New("native: binding arrays are not supported")

	// ErrMissingVertexStage is returned when a pipeline description has
	// no vertex stage.
	ErrMissingVertexStage = errors.New("native: pipeline has no vertex stage")

	// ErrUnsupportedStage is returned when a pipeline description carries
	// a stage the backend cannot execute.
	ErrUnsupportedStage = errors.New("native: shader stage not supported by this backend")

	// ErrForeignInterface is returned when CreatePipeline is given an
	// interface that was not created by this backend.
	ErrForeignInterface = errors.New("native: pipeline interface was not created by this backend")
)
