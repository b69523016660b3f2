package pipesig

import "github.com/gogpu/gputypes"

// FindImmutableSampler returns the index of the first immutable sampler
// assigned to the named resource, or -1 if none is.
//
// An entry matches when its stages intersect stages and its
// SamplerOrTextureName equals resourceName, or resourceName+suffix when
// suffix is non-empty. Comparison is byte-for-byte; no case folding.
//
// A matching entry is expected to cover every requested stage. A
// resource present in multiple stages cannot use different immutable
// samplers per stage, so a partial overlap indicates an inconsistent
// declaration on the caller's side. That condition is reported through
// the package logger (and panics under the debugchecks build tag) but
// does not affect the result.
//
// Not finding a sampler is not an error: the resource simply has no
// immutable sampler assigned.
func FindImmutableSampler(samplers []ImmutableSamplerDesc, stages gputypes.ShaderStage, resourceName, suffix string) int {
	for i := range samplers {
		sam := &samplers[i]
		if sam.Stages&stages == 0 {
			continue
		}
		if !suffixedNameEqual(sam.SamplerOrTextureName, resourceName, suffix) {
			continue
		}
		if sam.Stages&stages != stages {
			devCheckSamplerStages(resourceName, sam.SamplerOrTextureName, stages, sam.Stages)
		}
		return i
	}
	return -1
}

// suffixedNameEqual reports whether name equals base or base+suffix,
// without allocating the concatenation.
func suffixedNameEqual(name, base, suffix string) bool {
	if name == base {
		return true
	}
	if suffix == "" || len(name) != len(base)+len(suffix) {
		return false
	}
	return name[:len(base)] == base && name[len(base):] == suffix
}
