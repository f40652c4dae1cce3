package shader

import (
	"testing"

	"github.com/gogpu/naga/ir"

	"github.com/natesway/nova-renderer/rhi"
)

// baseTypes returns a module type table with the scalars and vectors the
// reflection tests need.
//
// Type indices:
//
//	0: f32
//	1: u32
//	2: vec3<f32>
//	3: vec4<f32>
//	4: Globals struct
func baseTypes() []ir.Type {
	f32 := ir.ScalarType{Kind: ir.ScalarFloat, Width: 4}
	u32 := ir.ScalarType{Kind: ir.ScalarUint, Width: 4}

	return []ir.Type{
		{Name: "", Inner: f32},
		{Name: "", Inner: u32},
		{Name: "", Inner: ir.VectorType{Size: ir.Vec3, Scalar: f32}},
		{Name: "", Inner: ir.VectorType{Size: ir.Vec4, Scalar: f32}},
		{Name: "Globals", Inner: ir.StructType{
			Members: []ir.StructMember{
				{Name: "view_proj", Type: 3, Offset: 0},
			},
			Span: 16,
		}},
	}
}

func locBinding(loc uint32) *ir.Binding {
	b := ir.Binding(ir.LocationBinding{Location: loc})
	return &b
}

func builtinPosition() *ir.Binding {
	b := ir.Binding(ir.BuiltinBinding{Builtin: ir.BuiltinPosition})
	return &b
}

func TestReflectModuleUniformBuffers(t *testing.T) {
	module := &ir.Module{
		Types: baseTypes(),
		GlobalVariables: []ir.GlobalVariable{
			{Name: "globals", Space: ir.SpaceUniform, Binding: &ir.ResourceBinding{Group: 0, Binding: 0}, Type: 4},
			{Name: "material", Space: ir.SpaceUniform, Binding: &ir.ResourceBinding{Group: 1, Binding: 2}, Type: 4},
		},
	}

	refl := reflectModule(module, rhi.StageVertex)

	ubos := refl.Resources(rhi.DescriptorUniformBuffer)
	if len(ubos) != 2 {
		t.Fatalf("got %d uniform buffers, want 2", len(ubos))
	}
	if ubos[0].Name != "globals" || ubos[0].Set != 0 || ubos[0].Binding != 0 {
		t.Errorf("ubos[0] = %+v, want globals at set 0 binding 0", ubos[0])
	}
	if ubos[1].Name != "material" || ubos[1].Set != 1 || ubos[1].Binding != 2 {
		t.Errorf("ubos[1] = %+v, want material at set 1 binding 2", ubos[1])
	}
	if ubos[0].Type.Base != BaseStruct {
		t.Errorf("ubos[0].Type.Base = %v, want Struct", ubos[0].Type.Base)
	}

	// No other categories should be populated.
	for _, kind := range []rhi.DescriptorType{
		rhi.DescriptorTexture, rhi.DescriptorSampler,
		rhi.DescriptorCombinedImageSampler, rhi.DescriptorStorageBuffer,
	} {
		if got := refl.Resources(kind); got != nil {
			t.Errorf("Resources(%v) = %v, want nil", kind, got)
		}
	}
}

func TestReflectModuleStorageBuffer(t *testing.T) {
	module := &ir.Module{
		Types: baseTypes(),
		GlobalVariables: []ir.GlobalVariable{
			{Name: "particles", Space: ir.SpaceStorage, Binding: &ir.ResourceBinding{Group: 0, Binding: 3}, Type: 4},
		},
	}

	refl := reflectModule(module, rhi.StageVertex)

	ssbos := refl.Resources(rhi.DescriptorStorageBuffer)
	if len(ssbos) != 1 {
		t.Fatalf("got %d storage buffers, want 1", len(ssbos))
	}
	if ssbos[0].Name != "particles" || ssbos[0].Binding != 3 {
		t.Errorf("ssbos[0] = %+v, want particles at binding 3", ssbos[0])
	}
}

func TestReflectModuleSkipsUnboundGlobals(t *testing.T) {
	module := &ir.Module{
		Types: baseTypes(),
		GlobalVariables: []ir.GlobalVariable{
			{Name: "scratch", Space: ir.SpacePrivate, Binding: nil, Type: 0},
		},
	}

	refl := reflectModule(module, rhi.StageVertex)
	for _, kind := range rhi.DescriptorTypes {
		if got := refl.Resources(kind); got != nil {
			t.Errorf("Resources(%v) = %v, want nil for unbound global", kind, got)
		}
	}
}

func TestStageInputsDirectArgs(t *testing.T) {
	module := &ir.Module{
		Types: baseTypes(),
		EntryPoints: []ir.EntryPoint{
			{Name: "vs_main", Stage: ir.StageVertex, Function: ir.Function{
				Name: "vs_main",
				Arguments: []ir.FunctionArgument{
					{Name: "position", Type: 2, Binding: locBinding(0)},
					{Name: "boneIndex", Type: 1, Binding: locBinding(1)},
					{Name: "vid", Type: 1, Binding: func() *ir.Binding {
						b := ir.Binding(ir.BuiltinBinding{Builtin: ir.BuiltinVertexIndex})
						return &b
					}()},
				},
			}},
		},
	}

	inputs := stageInputsOf(module, rhi.StageVertex)
	want := []StageInput{
		{Name: "position", Base: BaseFloat, VectorWidth: 3},
		{Name: "boneIndex", Base: BaseUint, VectorWidth: 1},
	}
	if len(inputs) != len(want) {
		t.Fatalf("got %d inputs, want %d: %+v", len(inputs), len(want), inputs)
	}
	for i, w := range want {
		if inputs[i] != w {
			t.Errorf("inputs[%d] = %+v, want %+v", i, inputs[i], w)
		}
	}
}

func TestStageInputsStructFlattening(t *testing.T) {
	types := baseTypes()
	types = append(types, ir.Type{Name: "VertexInput", Inner: ir.StructType{
		Members: []ir.StructMember{
			{Name: "position", Type: 2, Binding: locBinding(0), Offset: 0},
			{Name: "clip", Type: 3, Binding: builtinPosition(), Offset: 12},
			{Name: "uv_scale", Type: 0, Binding: locBinding(1), Offset: 28},
		},
		Span: 32,
	}})

	module := &ir.Module{
		Types: types,
		EntryPoints: []ir.EntryPoint{
			{Name: "vs_main", Stage: ir.StageVertex, Function: ir.Function{
				Name: "vs_main",
				Arguments: []ir.FunctionArgument{
					{Name: "in", Type: 5, Binding: nil},
				},
			}},
		},
	}

	inputs := stageInputsOf(module, rhi.StageVertex)
	want := []StageInput{
		{Name: "position", Base: BaseFloat, VectorWidth: 3},
		{Name: "uv_scale", Base: BaseFloat, VectorWidth: 1},
	}
	if len(inputs) != len(want) {
		t.Fatalf("got %d inputs, want %d: %+v", len(inputs), len(want), inputs)
	}
	for i, w := range want {
		if inputs[i] != w {
			t.Errorf("inputs[%d] = %+v, want %+v", i, inputs[i], w)
		}
	}
}

func TestStageInputsNoMatchingEntryPoint(t *testing.T) {
	module := &ir.Module{
		Types: baseTypes(),
		EntryPoints: []ir.EntryPoint{
			{Name: "vs_main", Stage: ir.StageVertex, Function: ir.Function{Name: "vs_main"}},
		},
	}

	if got := stageInputsOf(module, rhi.StageFragment); got != nil {
		t.Errorf("fragment inputs = %v, want nil (no fragment entry point)", got)
	}
	// Stages WGSL cannot express never match.
	if got := stageInputsOf(module, rhi.StageGeometry); got != nil {
		t.Errorf("geometry inputs = %v, want nil", got)
	}
}

func TestScalarBase(t *testing.T) {
	tests := []struct {
		scalar ir.ScalarType
		want   BaseType
	}{
		{ir.ScalarType{Kind: ir.ScalarFloat, Width: 4}, BaseFloat},
		{ir.ScalarType{Kind: ir.ScalarFloat, Width: 2}, BaseHalf},
		{ir.ScalarType{Kind: ir.ScalarFloat, Width: 8}, BaseDouble},
		{ir.ScalarType{Kind: ir.ScalarUint, Width: 4}, BaseUint},
		{ir.ScalarType{Kind: ir.ScalarUint, Width: 8}, BaseUint64},
		{ir.ScalarType{Kind: ir.ScalarSint, Width: 4}, BaseInt},
		{ir.ScalarType{Kind: ir.ScalarSint, Width: 8}, BaseInt64},
		{ir.ScalarType{Kind: ir.ScalarBool, Width: 1}, BaseBool},
	}
	for _, tt := range tests {
		if got := scalarBase(tt.scalar); got != tt.want {
			t.Errorf("scalarBase(%+v) = %v, want %v", tt.scalar, got, tt.want)
		}
	}
}
