// Package rhi defines the render hardware interface: the device-facing
// types a pipeline exposes (resource bindings, vertex fields, attachment
// layouts) and the Device abstraction that allocates GPU objects from them.
//
// The types in this package are backend-neutral. A concrete backend
// (backend/native implements one over gogpu/wgpu HAL) consumes the merged
// binding layout and attachment descriptions to produce device objects.
package rhi
