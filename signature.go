package pipesig

import (
	"strings"

	"github.com/gogpu/gputypes"
)

// ResourceType classifies a shader resource declared in a signature.
type ResourceType uint8

const (
	// ResourceTypeUnknown marks an uninitialized resource type.
	ResourceTypeUnknown ResourceType = iota

	// ResourceTypeConstantBuffer is a uniform/constant buffer.
	ResourceTypeConstantBuffer

	// ResourceTypeBufferSRV is a read-only formatted or structured buffer.
	ResourceTypeBufferSRV

	// ResourceTypeBufferUAV is a read-write buffer.
	ResourceTypeBufferUAV

	// ResourceTypeTextureSRV is a sampled texture.
	ResourceTypeTextureSRV

	// ResourceTypeTextureUAV is a storage texture.
	ResourceTypeTextureUAV

	// ResourceTypeSampler is a sampler object.
	ResourceTypeSampler

	// ResourceTypeInputAttachment is a render-pass input attachment.
	ResourceTypeInputAttachment

	// ResourceTypeAccelStruct is a ray-tracing acceleration structure.
	ResourceTypeAccelStruct
)

// String returns the resource type name.
func (t ResourceType) String() string {
	switch t {
	case ResourceTypeConstantBuffer:
		return "ConstantBuffer"
	case ResourceTypeBufferSRV:
		return "BufferSRV"
	case ResourceTypeBufferUAV:
		return "BufferUAV"
	case ResourceTypeTextureSRV:
		return "TextureSRV"
	case ResourceTypeTextureUAV:
		return "TextureUAV"
	case ResourceTypeSampler:
		return "Sampler"
	case ResourceTypeInputAttachment:
		return "InputAttachment"
	case ResourceTypeAccelStruct:
		return "AccelStruct"
	default:
		return "Unknown"
	}
}

// VarType classifies how often a binding's value may change without
// invalidating the layout.
type VarType uint8

const (
	// VarTypeStatic bindings are set once and never change.
	VarTypeStatic VarType = iota

	// VarTypeMutable bindings change rarely (between passes).
	VarTypeMutable

	// VarTypeDynamic bindings may change every draw.
	VarTypeDynamic
)

// String returns the variable type name.
func (t VarType) String() string {
	switch t {
	case VarTypeStatic:
		return "Static"
	case VarTypeMutable:
		return "Mutable"
	case VarTypeDynamic:
		return "Dynamic"
	default:
		return "Unknown"
	}
}

// ResourceFlags is a bitset of per-resource options. Which flags are
// legal depends on the resource type; see ValidResourceFlags.
type ResourceFlags uint8

const (
	// ResourceFlagNone means no flags are set.
	ResourceFlagNone ResourceFlags = 0

	// ResourceFlagNoDynamicBuffers forbids binding dynamic buffers to
	// this resource.
	ResourceFlagNoDynamicBuffers ResourceFlags = 1 << 0

	// ResourceFlagCombinedSampler marks a texture that uses a
	// name-suffix paired sampler.
	ResourceFlagCombinedSampler ResourceFlags = 1 << 1

	// ResourceFlagFormattedBuffer marks a buffer accessed through a
	// format conversion (typed buffer view).
	ResourceFlagFormattedBuffer ResourceFlags = 1 << 2

	// ResourceFlagRuntimeArray marks an unbounded array resource.
	// Requires runtime-array device support; see WithRuntimeArrays.
	ResourceFlagRuntimeArray ResourceFlags = 1 << 3
)

// String returns a "|"-separated list of flag names, or "None".
func (f ResourceFlags) String() string {
	if f == ResourceFlagNone {
		return "None"
	}
	var names []string
	if f&ResourceFlagNoDynamicBuffers != 0 {
		names = append(names, "NoDynamicBuffers")
	}
	if f&ResourceFlagCombinedSampler != 0 {
		names = append(names, "CombinedSampler")
	}
	if f&ResourceFlagFormattedBuffer != 0 {
		names = append(names, "FormattedBuffer")
	}
	if f&ResourceFlagRuntimeArray != 0 {
		names = append(names, "RuntimeArray")
	}
	if f&^(ResourceFlagNoDynamicBuffers|ResourceFlagCombinedSampler|ResourceFlagFormattedBuffer|ResourceFlagRuntimeArray) != 0 {
		names = append(names, "Unknown")
	}
	return strings.Join(names, "|")
}

// ValidResourceFlags returns the set of flags that may be used with the
// given resource type.
func ValidResourceFlags(t ResourceType) ResourceFlags {
	switch t {
	case ResourceTypeConstantBuffer:
		return ResourceFlagNoDynamicBuffers
	case ResourceTypeBufferSRV, ResourceTypeBufferUAV:
		return ResourceFlagNoDynamicBuffers | ResourceFlagFormattedBuffer | ResourceFlagRuntimeArray
	case ResourceTypeTextureSRV:
		return ResourceFlagCombinedSampler | ResourceFlagRuntimeArray
	case ResourceTypeTextureUAV:
		return ResourceFlagRuntimeArray
	case ResourceTypeSampler:
		return ResourceFlagRuntimeArray
	case ResourceTypeAccelStruct:
		return ResourceFlagRuntimeArray
	default:
		// InputAttachment and unknown types accept no flags.
		return ResourceFlagNone
	}
}

// ResourceDesc describes one shader resource exposed by a signature.
type ResourceDesc struct {
	// Name is the shader variable name. Must not be empty. The same
	// name may appear in multiple entries as long as their shader
	// stages do not overlap.
	Name string

	// Stages is the set of shader stages that use this resource.
	// Must not be empty.
	Stages gputypes.ShaderStage

	// ArraySize is the number of array elements (1 for non-arrays).
	// Must not be zero.
	ArraySize uint32

	// Type is the resource classification.
	Type ResourceType

	// VarType is the binding-frequency class.
	VarType VarType

	// Flags are per-resource options; legality depends on Type.
	Flags ResourceFlags
}

// SamplerDesc describes a fixed sampler state. It is a plain comparable
// value: two states are the same sampler iff all fields are equal.
type SamplerDesc struct {
	// AddressModeU/V/W control texture coordinate wrapping.
	AddressModeU gputypes.AddressMode
	AddressModeV gputypes.AddressMode
	AddressModeW gputypes.AddressMode

	// MagFilter, MinFilter and MipmapFilter select filtering modes.
	MagFilter    gputypes.FilterMode
	MinFilter    gputypes.FilterMode
	MipmapFilter gputypes.FilterMode

	// LodMinClamp and LodMaxClamp bound the mip LOD range.
	LodMinClamp float32
	LodMaxClamp float32

	// Compare enables comparison sampling when non-zero.
	Compare gputypes.CompareFunction

	// MaxAnisotropy is the anisotropic filtering limit (0 or 1 = off).
	MaxAnisotropy uint16
}

// ImmutableSamplerDesc describes a sampler state baked into the
// pipeline layout at creation time.
type ImmutableSamplerDesc struct {
	// SamplerOrTextureName matches a resource by name: either the
	// sampler resource's own name, or — when combined texture samplers
	// are in use — the texture name that the suffix is appended to.
	// Must not be empty.
	SamplerOrTextureName string

	// Stages is the set of shader stages the sampler is visible to.
	// Must not be empty.
	Stages gputypes.ShaderStage

	// Sampler is the fixed sampler state.
	Sampler SamplerDesc
}

// SignatureDesc describes a pipeline resource signature: the named
// resource bindings and immutable sampler states a pipeline exposes to
// its shader stages.
//
// The order of Resources and ImmutableSamplers is significant:
// Compatible and Hash treat the lists positionally.
//
// A SignatureDesc is caller-owned. Validate, Compatible and Hash treat
// it as read-only and never retain it.
type SignatureDesc struct {
	// Label is an optional debug name used in diagnostics. It is not
	// part of the signature's structural identity.
	Label string

	// BindingIndex is the slot this signature occupies. Must be below
	// Limits.MaxSignatures.
	BindingIndex uint8

	// Resources lists the shader resources, in binding order.
	Resources []ResourceDesc

	// ImmutableSamplers lists the fixed sampler states, in order.
	ImmutableSamplers []ImmutableSamplerDesc

	// UseCombinedSamplers enables name-suffix pairing of textures with
	// sampler resources. When set, CombinedSamplerSuffix must not be
	// empty and every Sampler-type resource must be claimed by a
	// texture.
	UseCombinedSamplers bool

	// CombinedSamplerSuffix is appended to a texture name to form the
	// name of its assigned sampler.
	CombinedSamplerSuffix string
}

// clone returns a deep copy of the descriptor. Used by LayoutCache so
// cached descriptors cannot be mutated by the caller afterwards.
func (d *SignatureDesc) clone() *SignatureDesc {
	c := *d
	c.Resources = append([]ResourceDesc(nil), d.Resources...)
	c.ImmutableSamplers = append([]ImmutableSamplerDesc(nil), d.ImmutableSamplers...)
	return &c
}

// shaderStageString formats a stage mask for diagnostics.
func shaderStageString(s gputypes.ShaderStage) string {
	if s == 0 {
		return "None"
	}
	var names []string
	if s&gputypes.ShaderStageVertex != 0 {
		names = append(names, "Vertex")
	}
	if s&gputypes.ShaderStageFragment != 0 {
		names = append(names, "Fragment")
	}
	if s&gputypes.ShaderStageCompute != 0 {
		names = append(names, "Compute")
	}
	if s&^(gputypes.ShaderStageVertex|gputypes.ShaderStageFragment|gputypes.ShaderStageCompute) != 0 {
		names = append(names, "Unknown")
	}
	return strings.Join(names, "|")
}
