package native

import (
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/gogpu/gpucontext"
	"github.com/gogpu/gputypes"

	"github.com/natesway/nova-renderer/rhi"
)

func TestNewDeviceNilHAL(t *testing.T) {
	if _, err := NewDevice(nil, nil); !errors.Is(err, ErrNilHALDevice) {
		t.Errorf("NewDevice(nil) error = %v, want ErrNilHALDevice", err)
	}
}

// mockProvider implements gpucontext.DeviceProvider without HAL access.
type mockProvider struct{}

func (mockProvider) Device() gpucontext.Device             { return nil }
func (mockProvider) Queue() gpucontext.Queue               { return nil }
func (mockProvider) Adapter() gpucontext.Adapter           { return nil }
func (mockProvider) SurfaceFormat() gputypes.TextureFormat { return gputypes.TextureFormatUndefined }
func (mockProvider) AdapterInfo() gpucontext.AdapterInfo   { return gpucontext.AdapterInfo{} }

// nilHALProvider additionally exposes HalDevice but has no device.
type nilHALProvider struct{ mockProvider }

func (nilHALProvider) HalDevice() any { return nil }

func TestNewDeviceFromProviderNoHALAccess(t *testing.T) {
	if _, err := NewDeviceFromProvider(mockProvider{}, nil); !errors.Is(err, ErrNoHALDevice) {
		t.Errorf("NewDeviceFromProvider error = %v, want ErrNoHALDevice", err)
	}
}

func TestNewDeviceFromProviderNilHAL(t *testing.T) {
	if _, err := NewDeviceFromProvider(nilHALProvider{}, nil); !errors.Is(err, ErrNoHALDevice) {
		t.Errorf("NewDeviceFromProvider error = %v, want ErrNoHALDevice", err)
	}
}

func TestNewFromHandleRejectsForeign(t *testing.T) {
	if _, err := newFromHandle(struct{}{}, nil); !errors.Is(err, ErrNoHALDevice) {
		t.Errorf("newFromHandle error = %v, want ErrNoHALDevice", err)
	}
}

func TestValidateStages(t *testing.T) {
	tests := []struct {
		name    string
		stages  map[rhi.ShaderStage][]uint32
		wantErr error
	}{
		{
			name:    "vertex only",
			stages:  map[rhi.ShaderStage][]uint32{rhi.StageVertex: {1}},
			wantErr: nil,
		},
		{
			name: "vertex and fragment",
			stages: map[rhi.ShaderStage][]uint32{
				rhi.StageVertex:   {1},
				rhi.StageFragment: {2},
			},
			wantErr: nil,
		},
		{
			name:    "missing vertex",
			stages:  map[rhi.ShaderStage][]uint32{rhi.StageFragment: {2}},
			wantErr: ErrMissingVertexStage,
		},
		{
			name: "geometry stage",
			stages: map[rhi.ShaderStage][]uint32{
				rhi.StageVertex:   {1},
				rhi.StageGeometry: {3},
			},
			wantErr: ErrUnsupportedStage,
		},
		{
			name: "tessellation stage",
			stages: map[rhi.ShaderStage][]uint32{
				rhi.StageVertex:              {1},
				rhi.StageTessellationControl: {3},
			},
			wantErr: ErrUnsupportedStage,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateStages(&rhi.PipelineDescription{Name: "p", Stages: tt.stages})
			if tt.wantErr == nil {
				if err != nil {
					t.Errorf("validateStages() error = %v", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("validateStages() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestVertexBufferLayouts(t *testing.T) {
	fields := []rhi.VertexField{
		{Name: "position", Format: rhi.VertexFormatFloat3},
		{Name: "uv", Format: rhi.VertexFormatFloat2},
		{Name: "boneIndex", Format: rhi.VertexFormatUint},
	}

	layouts := vertexBufferLayouts(fields)
	if len(layouts) != 1 {
		t.Fatalf("vertexBufferLayouts() returned %d buffers, want 1", len(layouts))
	}
	layout := layouts[0]
	if layout.ArrayStride != 12+8+4 {
		t.Errorf("ArrayStride = %d, want 24", layout.ArrayStride)
	}
	if layout.StepMode != gputypes.VertexStepModeVertex {
		t.Errorf("StepMode = %v, want per-vertex", layout.StepMode)
	}

	want := []gputypes.VertexAttribute{
		{Format: gputypes.VertexFormatFloat32x3, Offset: 0, ShaderLocation: 0},
		{Format: gputypes.VertexFormatFloat32x2, Offset: 12, ShaderLocation: 1},
		{Format: gputypes.VertexFormatUint32, Offset: 20, ShaderLocation: 2},
	}
	if len(layout.Attributes) != len(want) {
		t.Fatalf("got %d attributes, want %d", len(layout.Attributes), len(want))
	}
	for i, attr := range layout.Attributes {
		if attr != want[i] {
			t.Errorf("attribute %d = %+v, want %+v", i, attr, want[i])
		}
	}
}

func TestVertexBufferLayoutsEmpty(t *testing.T) {
	if got := vertexBufferLayouts(nil); got != nil {
		t.Errorf("vertexBufferLayouts(nil) = %+v, want nil", got)
	}
}

func TestColorTargets(t *testing.T) {
	colors := []rhi.TextureAttachmentInfo{
		{Name: "albedo", Format: gputypes.TextureFormatRGBA8Unorm},
		{Name: "normal", Format: gputypes.TextureFormatRGBA8Unorm},
	}
	blend := &rhi.BlendState{
		Color: rhi.BlendComponent{
			SrcFactor: gputypes.BlendFactorSrcAlpha,
			DstFactor: gputypes.BlendFactorOneMinusSrcAlpha,
			Operation: gputypes.BlendOperationAdd,
		},
	}

	targets := colorTargets(colors, blend)
	if len(targets) != 2 {
		t.Fatalf("colorTargets() returned %d targets, want 2", len(targets))
	}
	for i, target := range targets {
		if target.Format != colors[i].Format {
			t.Errorf("target %d format = %v, want %v", i, target.Format, colors[i].Format)
		}
		if target.WriteMask != gputypes.ColorWriteMaskAll {
			t.Errorf("target %d write mask = %v", i, target.WriteMask)
		}
		if target.Blend == nil || target.Blend.Color.SrcFactor != gputypes.BlendFactorSrcAlpha {
			t.Errorf("target %d blend not carried over: %+v", i, target.Blend)
		}
	}

	// Nil blend means replace.
	plain := colorTargets(colors, nil)
	if plain[0].Blend != nil {
		t.Errorf("nil blend should produce nil target blend, got %+v", plain[0].Blend)
	}
}

func TestDepthStencilState(t *testing.T) {
	if got := depthStencilState(nil, rhi.PipelineState{}); got != nil {
		t.Errorf("no depth attachment should produce nil state, got %+v", got)
	}

	depth := &rhi.TextureAttachmentInfo{
		Name:   "depth",
		Format: gputypes.TextureFormatDepth24PlusStencil8,
	}
	state := depthStencilState(depth, rhi.PipelineState{
		DepthWriteEnabled: true,
		DepthCompare:      gputypes.CompareFunctionLess,
	})
	if state == nil {
		t.Fatal("expected depth state")
	}
	if state.Format != depth.Format {
		t.Errorf("format = %v, want %v", state.Format, depth.Format)
	}
	if !state.DepthWriteEnabled || state.DepthCompare != gputypes.CompareFunctionLess {
		t.Errorf("depth config = %+v", state)
	}

	// Zero compare defaults to always-pass.
	state = depthStencilState(depth, rhi.PipelineState{})
	if state.DepthCompare != gputypes.CompareFunctionAlways {
		t.Errorf("zero DepthCompare should default to always, got %v", state.DepthCompare)
	}
}

func TestSampleCountDefault(t *testing.T) {
	if got := sampleCount(0); got != 1 {
		t.Errorf("sampleCount(0) = %d, want 1", got)
	}
	if got := sampleCount(4); got != 4 {
		t.Errorf("sampleCount(4) = %d, want 4", got)
	}
}
