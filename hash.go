package pipesig

import (
	"encoding/binary"
	"hash"
	"hash/fnv"
	"math"
)

// Hash computes a canonical FNV-1a structural hash of a signature for
// use as a pipeline cache key.
//
// The hash folds in, in declaration order, every field that Compatible
// compares — and nothing else. Resource and sampler names are never
// hashed, so signatures that are Compatible hash identically. An empty
// signature (no resources, no immutable samplers) hashes to 0.
//
// The value is stable within one version of this package only; do not
// persist it across process or version boundaries.
//
// Hash never fails; call it only on validated descriptors.
func Hash(desc *SignatureDesc) uint64 {
	if len(desc.Resources) == 0 && len(desc.ImmutableSamplers) == 0 {
		return 0
	}

	h := fnv.New64a()

	//nolint:gosec // G115: resource counts are bounded by Limits (<= 256)
	hashWriteUint32(h, uint32(len(desc.Resources)))
	//nolint:gosec // G115: sampler count is bounded by the resource limit
	hashWriteUint32(h, uint32(len(desc.ImmutableSamplers)))
	hashWriteUint32(h, uint32(desc.BindingIndex))

	for i := range desc.Resources {
		res := &desc.Resources[i]
		hashWriteUint32(h, uint32(res.Stages))
		hashWriteUint32(h, res.ArraySize)
		hashWriteUint32(h, uint32(res.Type))
		hashWriteUint32(h, uint32(res.VarType))
		hashWriteUint32(h, uint32(res.Flags))
	}

	for i := range desc.ImmutableSamplers {
		sam := &desc.ImmutableSamplers[i]
		hashWriteUint32(h, uint32(sam.Stages))
		hashWriteSampler(h, &sam.Sampler)
	}

	return h.Sum64()
}

// hashWriteSampler folds a sampler state into the hash by full value:
// every field that participates in SamplerDesc equality.
func hashWriteSampler(h hash.Hash64, s *SamplerDesc) {
	hashWriteUint32(h, uint32(s.AddressModeU))
	hashWriteUint32(h, uint32(s.AddressModeV))
	hashWriteUint32(h, uint32(s.AddressModeW))
	hashWriteUint32(h, uint32(s.MagFilter))
	hashWriteUint32(h, uint32(s.MinFilter))
	hashWriteUint32(h, uint32(s.MipmapFilter))
	hashWriteUint32(h, math.Float32bits(s.LodMinClamp))
	hashWriteUint32(h, math.Float32bits(s.LodMaxClamp))
	hashWriteUint32(h, uint32(s.Compare))
	hashWriteUint32(h, uint32(s.MaxAnisotropy))
}

// hashWriteUint32 writes a uint32 to the hash.
func hashWriteUint32(h hash.Hash64, v uint32) {
	var buf [4]byte
	binary.LittleEndian.PutUint32(buf[:], v)
	_, _ = h.Write(buf[:])
}
