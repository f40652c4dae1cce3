package renderer

import (
	"log/slog"

	"github.com/natesway/nova-renderer/rhi"
	"github.com/natesway/nova-renderer/shader"
)

// vertexFieldFormat maps a reflected element type to a vertex field
// encoding. Unsigned 32-bit integers map to Uint regardless of vector
// width; 32-bit floats map by width. Everything else is Invalid with a
// diagnostic naming the unsupported shape.
//
// This is a total function: it never fails the pipeline build, but an
// Invalid field means the shader declares an input the renderer cannot
// feed.
func vertexFieldFormat(log *slog.Logger, base shader.BaseType, vectorWidth uint32) rhi.VertexFieldFormat {
	switch base {
	case shader.BaseUint:
		return rhi.VertexFormatUint

	case shader.BaseFloat:
		switch vectorWidth {
		case 2:
			return rhi.VertexFormatFloat2
		case 3:
			return rhi.VertexFormatFloat3
		case 4:
			return rhi.VertexFormatFloat4
		default:
			log.Error("unsupported float vertex field width",
				"vector_width", vectorWidth)
			return rhi.VertexFormatInvalid
		}

	default:
		log.Error("unsupported vertex field type",
			"base_type", base.String())
		return rhi.VertexFormatInvalid
	}
}
