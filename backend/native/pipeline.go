package native

import (
	"github.com/gogpu/wgpu/hal"

	"github.com/natesway/nova-renderer/rhi"
)

// pipeline is a HAL render pipeline plus the shader modules it was built
// from. Modules stay alive for the pipeline's lifetime and are released
// with it.
type pipeline struct {
	device *Device
	name   string
	iface  *pipelineInterface

	halPipeline hal.RenderPipeline
	modules     []hal.ShaderModule
}

var _ rhi.Pipeline = (*pipeline)(nil)

func (p *pipeline) Name() string { return p.name }

func (p *pipeline) Interface() rhi.PipelineInterface { return p.iface }

// Raw returns the underlying HAL pipeline for render pass recording.
func (p *pipeline) Raw() hal.RenderPipeline { return p.halPipeline }

// Destroy releases the HAL pipeline and its shader modules. The
// interface is owned by the device and is not touched. Safe to call
// more than once.
func (p *pipeline) Destroy() {
	if p.halPipeline != nil {
		p.device.hal.DestroyRenderPipeline(p.halPipeline)
		p.halPipeline = nil
	}
	p.destroyModules()
}

func (p *pipeline) destroyModules() {
	for i, m := range p.modules {
		if m != nil {
			p.device.hal.DestroyShaderModule(m)
			p.modules[i] = nil
		}
	}
	p.modules = nil
}
