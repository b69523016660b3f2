package pipesig

// resourceCompatible reports whether two resources are structurally
// interchangeable. Names are ignored.
func resourceCompatible(a, b *ResourceDesc) bool {
	return a.Stages == b.Stages &&
		a.ArraySize == b.ArraySize &&
		a.Type == b.Type &&
		a.VarType == b.VarType &&
		a.Flags == b.Flags
}

// Compatible reports whether two signatures can share one pipeline
// layout object.
//
// The comparison is positional: resources and immutable samplers are
// compared index by index on their structural fields. Names and labels
// are ignored, so signatures that differ only in naming compare equal.
// Callers that want structurally identical signatures to be recognized
// must declare their resources in a consistent order; Compatible does
// not sort.
//
// Compatible never fails; call it only on validated descriptors.
func Compatible(a, b *SignatureDesc) bool {
	if a == b {
		return true
	}
	if a == nil || b == nil {
		return false
	}

	if a.BindingIndex != b.BindingIndex {
		return false
	}

	if len(a.Resources) != len(b.Resources) {
		return false
	}
	for i := range a.Resources {
		if !resourceCompatible(&a.Resources[i], &b.Resources[i]) {
			return false
		}
	}

	if len(a.ImmutableSamplers) != len(b.ImmutableSamplers) {
		return false
	}
	for i := range a.ImmutableSamplers {
		sa, sb := &a.ImmutableSamplers[i], &b.ImmutableSamplers[i]
		if sa.Stages != sb.Stages || sa.Sampler != sb.Sampler {
			return false
		}
	}

	return true
}
