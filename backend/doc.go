// Package backend hosts the device backends and their registry.
//
// A backend turns a platform GPU handle into an rhi.Device. Backends
// register themselves via Register(), typically from an init() function
// in their own package, and are selected by name via Get() or by
// priority via Default().
package backend
