// Package pipesig validates, compares and hashes pipeline resource
// signature descriptions for the GoGPU ecosystem.
//
// # Overview
//
// A pipeline resource signature is the set of named resource bindings
// (buffers, textures, samplers) and immutable sampler states that a
// rendering pipeline exposes to its shader stages. Before a backend
// builds pipeline-layout objects from a signature, the description must
// satisfy a number of cross-field invariants: names must be unique per
// shader-stage set, flags must be legal for each resource type, and —
// when combined texture samplers are in use — every sampler resource
// must pair with a texture by name suffix. pipesig enforces those
// invariants and supplies the structural equality and hashing that a
// pipeline cache needs to share one layout between signatures that
// differ only in naming.
//
// # Quick Start
//
//	import "github.com/gogpu/pipesig"
//
//	desc := &pipesig.SignatureDesc{
//	    Label: "scene",
//	    Resources: []pipesig.ResourceDesc{
//	        {Name: "g_Frame", Stages: gputypes.ShaderStageVertex | gputypes.ShaderStageFragment,
//	            ArraySize: 1, Type: pipesig.ResourceTypeConstantBuffer},
//	        {Name: "g_Tex", Stages: gputypes.ShaderStageFragment,
//	            ArraySize: 1, Type: pipesig.ResourceTypeTextureSRV},
//	    },
//	}
//
//	v := pipesig.NewValidator()
//	if err := v.Validate(desc); err != nil {
//	    // refuse to build the pipeline layout
//	}
//
//	key := pipesig.Hash(desc) // cache key; name-independent
//
// # Architecture
//
// The package is a single cohesive core of pure functions:
//   - Validator: fail-fast structural validation, including
//     combined-sampler pairing and immutable-sampler uniqueness
//   - Compatible / Hash: positional, name-blind layout identity
//   - FindImmutableSampler: name/suffix lookup for layout construction
//   - LayoutCache: hash-keyed, compatibility-verified layout dedup
//   - ResourcesFromShader: resource lists from naga shader IR
//
// Constructing backend layout objects, compiling shaders and binding
// resources to hardware slots are jobs for the consuming backend, not
// this package.
//
// # Concurrency
//
// Validate, Compatible, Hash and FindImmutableSampler are pure
// functions over caller-owned, read-only descriptors and need no
// synchronization. LayoutCache is safe for concurrent use.
package pipesig
