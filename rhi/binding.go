package rhi

// ResourceBindingDescription describes one GPU-visible resource binding:
// where it lives (descriptor set and binding slot), what kind of resource
// it is, how many array elements it has, and which shader stages use it.
//
// Bindings are identified by the resource's declared name, not by the
// set/binding pair: the same logical name may appear in multiple stages
// and must resolve to a single description.
type ResourceBindingDescription struct {
	// Set is the descriptor set index (WGSL @group).
	Set uint32

	// Binding is the binding index within the set (WGSL @binding).
	Binding uint32

	// Type is the resource kind.
	Type DescriptorType

	// Count is the number of array elements, 1 for non-array resources.
	Count uint32

	// Unbounded marks a resource array with no fixed upper bound,
	// requiring the device to allocate variable-sized descriptor storage.
	Unbounded bool

	// Stages is the set of shader stages that declare this binding.
	Stages ShaderStage
}

// StructurallyEqual reports whether two bindings describe the same
// resource layout. The stage mask is deliberately excluded: two stages
// declaring an otherwise identical binding are merged by unioning their
// stage masks, while a structural mismatch under one name is a conflict.
func (b ResourceBindingDescription) StructurallyEqual(other ResourceBindingDescription) bool {
	return b.Set == other.Set &&
		b.Binding == other.Binding &&
		b.Type == other.Type &&
		b.Count == other.Count &&
		b.Unbounded == other.Unbounded
}
