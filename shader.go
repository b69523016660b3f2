package pipesig

import (
	"github.com/gogpu/gputypes"
	"github.com/gogpu/naga/ir"
)

// ResourcesFromShader derives the resource list of a signature from a
// compiled shader module's IR.
//
// Every IR global variable that carries a @group/@binding annotation
// and is used by at least one entry point becomes a ResourceDesc:
// uniform buffers map to ConstantBuffer, storage buffers to BufferUAV,
// sampled and depth textures to TextureSRV, storage textures to
// TextureUAV, and samplers to Sampler. Binding arrays keep their
// element count; runtime-sized binding arrays get
// ResourceFlagRuntimeArray. Stage masks are the union of the entry
// point stages whose functions reference the variable directly.
//
// The result preserves the module's global declaration order, so
// structurally identical shaders produce Compatible resource lists.
// Callers assemble the SignatureDesc and validate it as usual; unused
// or unannotated globals are skipped.
func ResourcesFromShader(module *ir.Module) []ResourceDesc {
	if module == nil {
		return nil
	}

	used := make([]gputypes.ShaderStage, len(module.GlobalVariables))
	for i := range module.EntryPoints {
		ep := &module.EntryPoints[i]
		stage := entryPointStage(ep.Stage)
		for _, expr := range ep.Function.Expressions {
			gvExpr, ok := expr.Kind.(ir.ExprGlobalVariable)
			if !ok {
				continue
			}
			if int(gvExpr.Variable) < len(used) {
				used[gvExpr.Variable] |= stage
			}
		}
	}

	var resources []ResourceDesc
	for i := range module.GlobalVariables {
		gv := &module.GlobalVariables[i]
		if gv.Binding == nil || gv.Name == "" || used[i] == 0 {
			continue
		}
		res, ok := resourceFromGlobal(module, gv)
		if !ok {
			continue
		}
		res.Stages = used[i]
		resources = append(resources, res)
	}
	return resources
}

// resourceFromGlobal maps one annotated global variable to a resource
// description. Returns false for globals that are not shader resources
// (e.g. push constants or workgroup storage).
func resourceFromGlobal(module *ir.Module, gv *ir.GlobalVariable) (ResourceDesc, bool) {
	res := ResourceDesc{
		Name:      gv.Name,
		ArraySize: 1,
		VarType:   VarTypeStatic,
	}

	inner := typeInner(module, gv.Type)

	// Binding arrays: unwrap to the element type.
	if arr, ok := inner.(ir.ArrayType); ok && gv.Space == ir.SpaceHandle {
		if arr.Size.Constant != nil {
			res.ArraySize = *arr.Size.Constant
		} else {
			res.Flags |= ResourceFlagRuntimeArray
		}
		inner = typeInner(module, arr.Base)
	}

	switch gv.Space {
	case ir.SpaceUniform:
		res.Type = ResourceTypeConstantBuffer

	case ir.SpaceStorage:
		res.Type = ResourceTypeBufferUAV

	case ir.SpaceHandle:
		switch t := inner.(type) {
		case ir.SamplerType:
			res.Type = ResourceTypeSampler
		case ir.ImageType:
			if t.Class == ir.ImageClassStorage {
				res.Type = ResourceTypeTextureUAV
			} else {
				res.Type = ResourceTypeTextureSRV
			}
		default:
			return ResourceDesc{}, false
		}

	default:
		return ResourceDesc{}, false
	}

	return res, true
}

// typeInner resolves a type handle to its inner kind, or nil when the
// handle is out of range.
func typeInner(module *ir.Module, handle ir.TypeHandle) ir.TypeInner {
	if int(handle) >= len(module.Types) {
		return nil
	}
	return module.Types[handle].Inner
}

// entryPointStage converts an IR entry point stage to a stage mask bit.
func entryPointStage(s ir.ShaderStage) gputypes.ShaderStage {
	switch s {
	case ir.StageVertex:
		return gputypes.ShaderStageVertex
	case ir.StageFragment:
		return gputypes.ShaderStageFragment
	case ir.StageCompute:
		return gputypes.ShaderStageCompute
	default:
		return 0
	}
}
