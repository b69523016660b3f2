package pipesig

import (
	"fmt"

	"github.com/gogpu/gputypes"
)

// Validator checks signature descriptors against the structural
// invariants a pipeline layout requires.
//
// A Validator is immutable after construction and safe for concurrent
// use; Validate is a pure function of its input.
type Validator struct {
	limits        Limits
	runtimeArrays bool
}

// ValidatorOption configures a Validator during creation.
type ValidatorOption func(*Validator)

// WithLimits sets the structural limits to validate against.
// Defaults to DefaultLimits.
func WithLimits(l Limits) ValidatorOption {
	return func(v *Validator) {
		v.limits = l
	}
}

// WithRuntimeArrays declares whether the device supports runtime-sized
// resource arrays. When false (the default), any resource carrying
// ResourceFlagRuntimeArray fails validation.
func WithRuntimeArrays(supported bool) ValidatorOption {
	return func(v *Validator) {
		v.runtimeArrays = supported
	}
}

// NewValidator creates a Validator.
func NewValidator(opts ...ValidatorOption) *Validator {
	v := &Validator{limits: DefaultLimits()}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// Validate checks desc for structural validity.
//
// Checks run in a fixed order and stop at the first violation: limits,
// then per-resource fields (including name/stage uniqueness and flag
// legality) in a single pass over Resources, then combined-sampler
// pairing, then the immutable sampler list. The returned error wraps
// one of the package's sentinel errors and names the signature and the
// offending entry; a nil return means every invariant holds.
//
// Validate never mutates or retains desc and has no side effects on
// failure.
func (v *Validator) Validate(desc *SignatureDesc) error {
	if desc == nil {
		return ErrNilDescriptor
	}

	if uint32(desc.BindingIndex) >= v.limits.MaxSignatures {
		return fmt.Errorf("signature %q: BindingIndex (%d) exceeds the maximum allowed value (%d): %w",
			desc.Label, desc.BindingIndex, v.limits.MaxSignatures-1, ErrLimitExceeded)
	}

	if uint32(len(desc.Resources)) > v.limits.MaxResources {
		return fmt.Errorf("signature %q: %d resources exceed the maximum allowed count (%d): %w",
			desc.Label, len(desc.Resources), v.limits.MaxResources, ErrLimitExceeded)
	}

	if desc.UseCombinedSamplers && desc.CombinedSamplerSuffix == "" {
		return fmt.Errorf("signature %q: UseCombinedSamplers is set but CombinedSamplerSuffix is empty: %w",
			desc.Label, ErrNullOrEmptyField)
	}

	// Single pass over the resources: field checks, name/stage
	// uniqueness and flag legality. byName doubles as the lookup
	// index for combined-sampler pairing below.
	usedStages := make(map[string]gputypes.ShaderStage, len(desc.Resources))
	byName := make(map[string][]int, len(desc.Resources))

	for i := range desc.Resources {
		res := &desc.Resources[i]

		if res.Name == "" {
			return fmt.Errorf("signature %q: Resources[%d].Name must not be empty: %w",
				desc.Label, i, ErrNullOrEmptyField)
		}

		if res.Stages == 0 {
			return fmt.Errorf("signature %q: resource %q: Stages must not be empty: %w",
				desc.Label, res.Name, ErrNullOrEmptyField)
		}

		if res.ArraySize == 0 {
			return fmt.Errorf("signature %q: resource %q: ArraySize must not be zero: %w",
				desc.Label, res.Name, ErrNullOrEmptyField)
		}

		// Duplicate names are allowed only for disjoint stage sets.
		if usedStages[res.Name]&res.Stages != 0 {
			return fmt.Errorf("signature %q: multiple resources named %q use overlapping shader stages: %w",
				desc.Label, res.Name, ErrDuplicateName)
		}
		usedStages[res.Name] |= res.Stages

		if allowed := ValidResourceFlags(res.Type); res.Flags&^allowed != 0 {
			return fmt.Errorf("signature %q: resource %q: flags %s are not valid for a %s (allowed: %s): %w",
				desc.Label, res.Name, res.Flags, res.Type, allowed, ErrInvalidFlags)
		}

		if res.Flags&ResourceFlagRuntimeArray != 0 && !v.runtimeArrays {
			return fmt.Errorf("signature %q: resource %q: RuntimeArray requires runtime-array device support: %w",
				desc.Label, res.Name, ErrInvalidFlags)
		}

		byName[res.Name] = append(byName[res.Name], i)
	}

	if desc.UseCombinedSamplers {
		if err := v.resolveCombinedSamplers(desc, byName); err != nil {
			return err
		}
	}

	samplerStages := make(map[string]gputypes.ShaderStage, len(desc.ImmutableSamplers))
	for i := range desc.ImmutableSamplers {
		sam := &desc.ImmutableSamplers[i]

		if sam.SamplerOrTextureName == "" {
			return fmt.Errorf("signature %q: ImmutableSamplers[%d].SamplerOrTextureName must not be empty: %w",
				desc.Label, i, ErrNullOrEmptyField)
		}

		if sam.Stages == 0 {
			return fmt.Errorf("signature %q: immutable sampler %q: Stages must not be empty: %w",
				desc.Label, sam.SamplerOrTextureName, ErrNullOrEmptyField)
		}

		if samplerStages[sam.SamplerOrTextureName]&sam.Stages != 0 {
			return fmt.Errorf("signature %q: multiple immutable samplers named %q use overlapping shader stages: %w",
				desc.Label, sam.SamplerOrTextureName, ErrDuplicateImmutableSampler)
		}
		samplerStages[sam.SamplerOrTextureName] |= sam.Stages
	}

	return nil
}

// resolveCombinedSamplers pairs every TextureSRV resource with the
// sampler resource named texture name + suffix, then checks that no
// sampler resource is left unclaimed.
//
// Claimed samplers are tracked in a positional marker array rather than
// removed from the name index, so the claim outcome does not depend on
// map iteration order.
func (v *Validator) resolveCombinedSamplers(desc *SignatureDesc, byName map[string][]int) error {
	claimed := make([]bool, len(desc.Resources))
	nameMatched := make([]int, len(desc.Resources))
	for i := range nameMatched {
		nameMatched[i] = -1
	}

	for i := range desc.Resources {
		res := &desc.Resources[i]
		if res.Type != ResourceTypeTextureSRV {
			continue
		}

		assignedName := res.Name + desc.CombinedSamplerSuffix
		for _, j := range byName[assignedName] {
			if claimed[j] {
				continue
			}
			sam := &desc.Resources[j]

			// Same-name entries have disjoint stage masks, so at
			// most one candidate can overlap the texture's stages.
			// A texture with no overlapping candidate simply has no
			// assigned sampler; that is not an error for the
			// texture, but the candidate is remembered: if it ends
			// up unclaimed, the stage disagreement is the cause.
			if sam.Stages&res.Stages == 0 {
				nameMatched[j] = i
				continue
			}

			if sam.Type != ResourceTypeSampler {
				return fmt.Errorf("signature %q: resource %q combined with texture %q is not a sampler: %w",
					desc.Label, sam.Name, res.Name, ErrCombinedSamplerMismatch)
			}

			// Exact stage match, not mere overlap: a sampler must
			// not service stages its texture does not use.
			if sam.Stages != res.Stages {
				return fmt.Errorf("signature %q: texture %q (stages %s) and its assigned sampler %q (stages %s) use different shader stages: %w",
					desc.Label, res.Name, shaderStageString(res.Stages), sam.Name, shaderStageString(sam.Stages), ErrCombinedSamplerMismatch)
			}

			if sam.VarType != res.VarType {
				return fmt.Errorf("signature %q: texture %q (%s) and its assigned sampler %q (%s) use different variable types: %w",
					desc.Label, res.Name, res.VarType, sam.Name, sam.VarType, ErrCombinedSamplerMismatch)
			}

			claimed[j] = true
			break
		}
	}

	for i := range desc.Resources {
		res := &desc.Resources[i]
		if res.Type != ResourceTypeSampler || claimed[i] {
			continue
		}
		if t := nameMatched[i]; t >= 0 {
			tex := &desc.Resources[t]
			return fmt.Errorf("signature %q: texture %q (stages %s) and its assigned sampler %q (stages %s) use different shader stages: %w",
				desc.Label, tex.Name, shaderStageString(tex.Stages), res.Name, shaderStageString(res.Stages), ErrCombinedSamplerMismatch)
		}
		return fmt.Errorf("signature %q: sampler %q is not assigned to any texture; all samplers must be assigned when combined texture samplers are used: %w",
			desc.Label, res.Name, ErrUnassignedSampler)
	}

	return nil
}
