package renderer

import (
	"log/slog"

	"github.com/cockroachdb/errors"
	"github.com/loov/hrtime"

	nova "github.com/natesway/nova-renderer"
	"github.com/natesway/nova-renderer/rhi"
	"github.com/natesway/nova-renderer/shader"
)

// Pipeline is one cached pipeline: the device pipeline object and a
// reference to the interface it was created from. The interface is owned
// by the device, not the cache entry.
type Pipeline struct {
	// Pipeline is the device pipeline object.
	Pipeline rhi.Pipeline

	// Interface is the pipeline's binding and attachment contract.
	Interface rhi.PipelineInterface
}

// PipelineMetadata retains the create info a pipeline was built from, for
// introspection and potential rebuild.
type PipelineMetadata struct {
	// Data is the original create info.
	Data PipelineCreateInfo
}

// PipelineStorage builds pipelines and caches them by name.
//
// PipelineStorage is NOT safe for concurrent use. Serialize CreatePipeline
// and GetPipeline calls when driving it from multiple goroutines.
type PipelineStorage struct {
	device    rhi.Device
	passes    RenderPassMetadataProvider
	reflector shader.Reflector
	log       *slog.Logger

	// modules dedupes shader compilation across pipelines.
	modules *shader.ModuleCache

	pipelines map[string]Pipeline
	metadata  map[string]PipelineMetadata
}

// NewPipelineStorage creates a pipeline storage over a device and a
// render pass metadata provider. A nil reflector defaults to the
// naga-backed one; a nil logger defaults to the package logger.
func NewPipelineStorage(
	device rhi.Device,
	passes RenderPassMetadataProvider,
	reflector shader.Reflector,
	log *slog.Logger,
) *PipelineStorage {
	if reflector == nil {
		reflector = shader.NagaReflector{}
	}
	if log == nil {
		log = nova.Logger()
	}
	return &PipelineStorage{
		device:    device,
		passes:    passes,
		reflector: reflector,
		log:       log,
		modules:   shader.NewModuleCache(0),
		pipelines: make(map[string]Pipeline),
		metadata:  make(map[string]PipelineMetadata),
	}
}

// GetPipeline returns the cached pipeline with the given name.
// Pure lookup, no side effects.
func (s *PipelineStorage) GetPipeline(name string) (Pipeline, bool) {
	p, ok := s.pipelines[name]
	return p, ok
}

// GetMetadata returns the metadata retained for a cached pipeline.
func (s *PipelineStorage) GetMetadata(name string) (PipelineMetadata, bool) {
	md, ok := s.metadata[name]
	return md, ok
}

// CreatePipeline builds the described pipeline and inserts it into the
// cache under info.Name, replacing (and destroying) any prior entry of
// the same name. The cache is mutated only on full success; every failure
// leaves it unchanged.
//
// Failures are logged and returned marked with one of
// ErrMissingRenderPassMetadata, ErrInvalidPipelineInterface or
// ErrPipelineCreationFailed; check them with errors.Is.
func (s *PipelineStorage) CreatePipeline(info *PipelineCreateInfo) error {
	rp, ok := s.passes.RenderPassMetadata(info.Pass)
	if !ok {
		err := errors.Mark(
			errors.Newf("pipeline %s wants to be rendered by renderpass %s, but that renderpass has no metadata",
				info.Name, info.Pass),
			ErrMissingRenderPassMetadata)
		s.log.Error("missing render pass metadata",
			"pipeline", info.Name, "pass", info.Pass)
		return err
	}

	iface, err := s.createPipelineInterface(info, rp.ColorAttachments, rp.DepthAttachment)
	if err != nil {
		s.log.Error("invalid pipeline interface",
			"pipeline", info.Name, "err", err)
		return err
	}

	start := hrtime.Now()
	pipeline, metadata, err := s.createGraphicsPipeline(iface, info)
	if err != nil {
		iface.Destroy()
		s.log.Error("could not create pipeline",
			"pipeline", info.Name, "err", err)
		return err
	}
	s.log.Debug("created pipeline",
		"pipeline", info.Name, "duration", hrtime.Since(start))

	// Replacement under the same name releases the prior device objects
	// before the new entry takes the slot.
	if prev, exists := s.pipelines[info.Name]; exists {
		prev.Pipeline.Destroy()
		prev.Interface.Destroy()
	}
	s.pipelines[info.Name] = pipeline
	s.metadata[info.Name] = metadata

	return nil
}

// createGraphicsPipeline compiles any remaining stage sources and asks
// the device for the pipeline object.
func (s *PipelineStorage) createGraphicsPipeline(
	iface rhi.PipelineInterface,
	info *PipelineCreateInfo,
) (Pipeline, PipelineMetadata, error) {
	desc := &rhi.PipelineDescription{
		Name:   info.Name,
		Stages: make(map[rhi.ShaderStage][]uint32),
		State:  info.State,
	}
	for _, st := range info.stages() {
		if err := s.modules.Compile(st.source); err != nil {
			return Pipeline{}, PipelineMetadata{}, errors.Mark(
				errors.Wrapf(err, "could not create pipeline %s", info.Name),
				ErrPipelineCreationFailed)
		}
		desc.Stages[st.stage] = st.source.SPIRV()
	}

	p, err := s.device.CreatePipeline(iface, desc)
	if err != nil {
		return Pipeline{}, PipelineMetadata{}, errors.Mark(
			errors.Wrapf(err, "could not create pipeline %s", info.Name),
			ErrPipelineCreationFailed)
	}

	return Pipeline{Pipeline: p, Interface: iface},
		PipelineMetadata{Data: *info},
		nil
}

// DestroyAll destroys every cached pipeline and its interface and clears
// the cache. The storage is empty and reusable afterwards.
func (s *PipelineStorage) DestroyAll() {
	for _, p := range s.pipelines {
		p.Pipeline.Destroy()
		p.Interface.Destroy()
	}
	s.pipelines = make(map[string]Pipeline)
	s.metadata = make(map[string]PipelineMetadata)
}
