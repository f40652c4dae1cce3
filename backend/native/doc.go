// Package native implements the rhi.Device abstraction over gogpu/wgpu
// HAL. Pipeline interfaces become bind group layouts plus a pipeline
// layout; pipelines become HAL render pipelines.
//
// The backend targets the WebGPU capability model. Combined
// image-samplers and binding arrays are not expressible there and are
// rejected at interface creation time; split the image and sampler into
// separate bindings instead.
package native
