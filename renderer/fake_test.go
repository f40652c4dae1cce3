package renderer

import (
	"bytes"
	"log/slog"

	"github.com/cockroachdb/errors"

	"github.com/natesway/nova-renderer/rhi"
	"github.com/natesway/nova-renderer/shader"
)

// fakeReflection is a canned shader.Reflection.
type fakeReflection struct {
	resources map[rhi.DescriptorType][]shader.Resource
	inputs    []shader.StageInput
}

func (r *fakeReflection) Resources(kind rhi.DescriptorType) []shader.Resource {
	return r.resources[kind]
}

func (r *fakeReflection) StageInputs() []shader.StageInput {
	return r.inputs
}

// fakeReflector serves canned reflections keyed by source pointer.
type fakeReflector struct {
	reflections map[*shader.Source]*fakeReflection
	err         error
}

func (f *fakeReflector) Reflect(src *shader.Source, _ rhi.ShaderStage) (shader.Reflection, error) {
	if f.err != nil {
		return nil, f.err
	}
	if refl, ok := f.reflections[src]; ok {
		return refl, nil
	}
	return &fakeReflection{}, nil
}

// fakeInterface implements rhi.PipelineInterface with destroy tracking.
type fakeInterface struct {
	bindings  map[string]rhi.ResourceBindingDescription
	colors    []rhi.TextureAttachmentInfo
	depth     *rhi.TextureAttachmentInfo
	fields    []rhi.VertexField
	destroyed bool
}

func (f *fakeInterface) Bindings() map[string]rhi.ResourceBindingDescription { return f.bindings }
func (f *fakeInterface) ColorAttachments() []rhi.TextureAttachmentInfo       { return f.colors }
func (f *fakeInterface) DepthAttachment() *rhi.TextureAttachmentInfo         { return f.depth }
func (f *fakeInterface) VertexFields() []rhi.VertexField                     { return f.fields }
func (f *fakeInterface) SetVertexFields(fields []rhi.VertexField)            { f.fields = fields }
func (f *fakeInterface) Destroy()                                            { f.destroyed = true }

// fakePipeline implements rhi.Pipeline with destroy tracking.
type fakePipeline struct {
	name      string
	iface     rhi.PipelineInterface
	destroyed bool
}

func (f *fakePipeline) Name() string                     { return f.name }
func (f *fakePipeline) Interface() rhi.PipelineInterface { return f.iface }
func (f *fakePipeline) Destroy()                         { f.destroyed = true }

// fakeDevice implements rhi.Device. Interfaces and pipelines it creates
// are retained for destroy assertions.
type fakeDevice struct {
	failInterface bool
	failPipeline  bool

	interfaces []*fakeInterface
	pipelines  []*fakePipeline
}

func (d *fakeDevice) CreatePipelineInterface(
	bindings map[string]rhi.ResourceBindingDescription,
	colorAttachments []rhi.TextureAttachmentInfo,
	depthAttachment *rhi.TextureAttachmentInfo,
) (rhi.PipelineInterface, error) {
	if d.failInterface {
		return nil, errors.New("fake device: interface rejected")
	}
	iface := &fakeInterface{
		bindings: bindings,
		colors:   colorAttachments,
		depth:    depthAttachment,
	}
	d.interfaces = append(d.interfaces, iface)
	return iface, nil
}

func (d *fakeDevice) CreatePipeline(iface rhi.PipelineInterface, desc *rhi.PipelineDescription) (rhi.Pipeline, error) {
	if d.failPipeline {
		return nil, errors.New("fake device: out of pipeline memory")
	}
	p := &fakePipeline{name: desc.Name, iface: iface}
	d.pipelines = append(d.pipelines, p)
	return p, nil
}

// testLogger returns a debug-level logger writing to the returned buffer,
// so tests can assert on emitted diagnostics.
func testLogger() (*slog.Logger, *bytes.Buffer) {
	var buf bytes.Buffer
	log := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	return log, &buf
}

// uniformResource is a shorthand for a non-array uniform buffer resource.
func uniformResource(name string, set, binding uint32) shader.Resource {
	return shader.Resource{
		Name:    name,
		Set:     set,
		Binding: binding,
		Type:    shader.TypeInfo{Base: shader.BaseStruct, VectorWidth: 1},
	}
}
