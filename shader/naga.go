package shader

import (
	"github.com/gogpu/naga/ir"

	"github.com/natesway/nova-renderer/rhi"
)

// NagaReflector reflects WGSL sources through their parsed naga IR module.
// It is stateless; the zero value is ready to use.
type NagaReflector struct{}

// Reflect parses the source (cached after first use) and reflects its
// globals and the entry point matching the given stage.
//
// WGSL has no tessellation or geometry stages and no combined
// image-samplers; reflecting those stages yields no stage inputs, and the
// combined image-sampler category is always empty. Module globals are
// reported for every stage of the module, whether or not the entry point
// references them.
func (NagaReflector) Reflect(src *Source, stage rhi.ShaderStage) (Reflection, error) {
	module, err := src.Parse()
	if err != nil {
		return nil, err
	}
	return reflectModule(module, stage), nil
}

// moduleReflection adapts a parsed naga IR module to the Reflection
// interface.
type moduleReflection struct {
	resources map[rhi.DescriptorType][]Resource
	inputs    []StageInput
}

func (r *moduleReflection) Resources(kind rhi.DescriptorType) []Resource {
	return r.resources[kind]
}

func (r *moduleReflection) StageInputs() []StageInput {
	return r.inputs
}

// reflectModule enumerates the module's bound globals by descriptor
// category and collects the stage inputs of the matching entry point.
func reflectModule(module *ir.Module, stage rhi.ShaderStage) *moduleReflection {
	refl := &moduleReflection{
		resources: make(map[rhi.DescriptorType][]Resource),
	}

	for _, global := range module.GlobalVariables {
		if global.Binding == nil {
			// Private and workgroup variables carry no binding.
			continue
		}
		info := typeInfoOf(module, global.Type)
		kind, ok := descriptorKind(global.Space, info.Base)
		if !ok {
			continue
		}
		refl.resources[kind] = append(refl.resources[kind], Resource{
			Name:    global.Name,
			Set:     global.Binding.Group,
			Binding: global.Binding.Binding,
			Type:    info,
		})
	}

	refl.inputs = stageInputsOf(module, stage)
	return refl
}

// descriptorKind classifies a bound global by its address space and,
// for handle-space globals, its base type.
func descriptorKind(space ir.AddressSpace, base BaseType) (rhi.DescriptorType, bool) {
	switch space {
	case ir.SpaceUniform:
		return rhi.DescriptorUniformBuffer, true
	case ir.SpaceStorage:
		return rhi.DescriptorStorageBuffer, true
	case ir.SpaceHandle:
		switch base {
		case BaseImage:
			return rhi.DescriptorTexture, true
		case BaseSampler:
			return rhi.DescriptorSampler, true
		}
	}
	return 0, false
}

// typeInfoOf resolves a type handle to its reflected shape, descending
// through array layers to the element type.
func typeInfoOf(module *ir.Module, handle ir.TypeHandle) TypeInfo {
	var info TypeInfo
	info.VectorWidth = 1

	for {
		if int(handle) >= len(module.Types) {
			info.Base = BaseUnknown
			return info
		}
		inner := module.Types[handle].Inner

		switch t := inner.(type) {
		case ir.ScalarType:
			info.Base = scalarBase(t)
			return info
		case ir.VectorType:
			info.Base = scalarBase(t.Scalar)
			info.VectorWidth = vectorWidth(t.Size)
			return info
		case ir.MatrixType:
			info.Base = scalarBase(t.Scalar)
			return info
		case ir.StructType:
			info.Base = BaseStruct
			return info
		case ir.ImageType:
			info.Base = BaseImage
			return info
		case ir.SamplerType:
			info.Base = BaseSampler
			return info
		case ir.ArrayType:
			// Fixed arrays carry their element count; runtime-sized
			// arrays report 0.
			if t.Size.Constant != nil {
				info.ArrayDims = append(info.ArrayDims, uint32(*t.Size.Constant))
			} else {
				info.ArrayDims = append(info.ArrayDims, 0)
			}
			handle = t.Base
		default:
			info.Base = BaseUnknown
			return info
		}
	}
}

// scalarBase maps a naga scalar (kind + byte width) to a BaseType.
func scalarBase(s ir.ScalarType) BaseType {
	switch s.Kind {
	case ir.ScalarBool:
		return BaseBool
	case ir.ScalarSint:
		if s.Width == 8 {
			return BaseInt64
		}
		return BaseInt
	case ir.ScalarUint:
		if s.Width == 8 {
			return BaseUint64
		}
		return BaseUint
	case ir.ScalarFloat:
		switch s.Width {
		case 2:
			return BaseHalf
		case 8:
			return BaseDouble
		default:
			return BaseFloat
		}
	default:
		return BaseUnknown
	}
}

// vectorWidth converts a naga vector size to a component count.
func vectorWidth(size ir.VectorSize) uint32 {
	switch size {
	case ir.Vec2:
		return 2
	case ir.Vec3:
		return 3
	case ir.Vec4:
		return 4
	default:
		return 1
	}
}

// irStage maps a pipeline stage to the naga entry point stage. Stages
// WGSL cannot express map to false.
func irStage(stage rhi.ShaderStage) (ir.ShaderStage, bool) {
	switch stage {
	case rhi.StageVertex:
		return ir.StageVertex, true
	case rhi.StageFragment:
		return ir.StageFragment, true
	default:
		return 0, false
	}
}

// stageInputsOf collects the location-bound inputs of the entry point
// matching the stage, flattening struct arguments into their members the
// same way the WGSL pipeline does. Builtin inputs are skipped.
func stageInputsOf(module *ir.Module, stage rhi.ShaderStage) []StageInput {
	target, ok := irStage(stage)
	if !ok {
		return nil
	}

	for _, ep := range module.EntryPoints {
		if ep.Stage != target {
			continue
		}
		fn := &ep.Function

		var inputs []StageInput
		for _, arg := range fn.Arguments {
			if arg.Binding != nil {
				if isLocationBinding(*arg.Binding) {
					inputs = append(inputs, inputOf(module, arg.Name, arg.Type))
				}
				continue
			}
			// Struct argument with per-member bindings.
			if int(arg.Type) >= len(module.Types) {
				continue
			}
			st, ok := module.Types[arg.Type].Inner.(ir.StructType)
			if !ok {
				continue
			}
			for _, member := range st.Members {
				if member.Binding != nil && isLocationBinding(*member.Binding) {
					inputs = append(inputs, inputOf(module, member.Name, member.Type))
				}
			}
		}
		return inputs
	}
	return nil
}

// isLocationBinding reports whether a binding is @location rather than a
// builtin.
func isLocationBinding(b ir.Binding) bool {
	_, ok := b.(ir.LocationBinding)
	return ok
}

// inputOf builds one StageInput from a named, typed input.
func inputOf(module *ir.Module, name string, handle ir.TypeHandle) StageInput {
	info := typeInfoOf(module, handle)
	return StageInput{
		Name:        name,
		Base:        info.Base,
		VectorWidth: info.VectorWidth,
	}
}
