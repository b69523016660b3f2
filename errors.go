package pipesig

import "errors"

// Validation errors. Validate wraps these sentinels with a message that
// names the signature and the offending resource; test with errors.Is.
var (
	// ErrNilDescriptor is returned when validating a nil descriptor.
	ErrNilDescriptor = errors.New("pipesig: signature descriptor is nil")

	// ErrLimitExceeded is returned when BindingIndex or the resource
	// count exceeds the configured limits.
	ErrLimitExceeded = errors.New("pipesig: limit exceeded")

	// ErrNullOrEmptyField is returned when a required name, suffix,
	// stage mask or array size is missing.
	ErrNullOrEmptyField = errors.New("pipesig: required field is missing or empty")

	// ErrDuplicateName is returned when two resources share a name and
	// their shader stages overlap.
	ErrDuplicateName = errors.New("pipesig: duplicate resource name with overlapping shader stages")

	// ErrInvalidFlags is returned when a resource carries flags that
	// are not legal for its type, or a capability-gated flag is used
	// without the capability.
	ErrInvalidFlags = errors.New("pipesig: invalid flags for resource type")

	// ErrCombinedSamplerMismatch is returned when the resource a
	// texture's suffix pairs it with is not a sampler, or disagrees
	// with the texture on shader stages or variable type.
	ErrCombinedSamplerMismatch = errors.New("pipesig: combined sampler mismatch")

	// ErrUnassignedSampler is returned when combined texture samplers
	// are in use and a sampler resource is not claimed by any texture.
	ErrUnassignedSampler = errors.New("pipesig: sampler not assigned to any texture")

	// ErrDuplicateImmutableSampler is returned when two immutable
	// samplers share a name and their shader stages overlap.
	ErrDuplicateImmutableSampler = errors.New("pipesig: duplicate immutable sampler with overlapping shader stages")
)
