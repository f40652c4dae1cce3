package native

import (
	"log/slog"

	"github.com/gogpu/gpucontext"
	"github.com/gogpu/wgpu/hal"

	"github.com/natesway/nova-renderer/backend"
	"github.com/natesway/nova-renderer/rhi"
)

func init() {
	backend.Register(backend.BackendNative, newFromHandle)
}

// newFromHandle accepts either a hal.Device directly or a gpucontext
// device provider.
func newFromHandle(handle any, log *slog.Logger) (rhi.Device, error) {
	if device, ok := handle.(hal.Device); ok {
		return NewDevice(device, log)
	}
	if provider, ok := handle.(gpucontext.DeviceProvider); ok {
		return NewDeviceFromProvider(provider, log)
	}
	return nil, ErrNoHALDevice
}
