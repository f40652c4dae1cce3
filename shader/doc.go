// Package shader provides shader sources and the reflection capability the
// pipeline builder consumes.
//
// Sources are WGSL, compiled to SPIR-V with gogpu/naga. Reflection walks
// the parsed naga IR module to enumerate the resources a stage binds
// (textures, samplers, uniform and storage buffers) with their descriptor
// set and binding slots, and the vertex stage's inputs.
//
// The Reflection and Reflector interfaces keep the builder independent of
// naga: tests and alternative frontends substitute their own
// implementations.
package shader
