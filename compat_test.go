package pipesig

import (
	"testing"

	"github.com/gogpu/gputypes"
)

// twoResourceDesc builds a signature with two structurally different
// resources for order-sensitivity tests.
func twoResourceDesc(names [2]string) *SignatureDesc {
	return &SignatureDesc{
		Label:        "compat",
		BindingIndex: 1,
		Resources: []ResourceDesc{
			{Name: names[0], Stages: gputypes.ShaderStageVertex, ArraySize: 1,
				Type: ResourceTypeConstantBuffer, VarType: VarTypeStatic},
			{Name: names[1], Stages: gputypes.ShaderStageFragment, ArraySize: 4,
				Type: ResourceTypeTextureSRV, VarType: VarTypeMutable},
		},
		ImmutableSamplers: []ImmutableSamplerDesc{
			{SamplerOrTextureName: names[1], Stages: gputypes.ShaderStageFragment,
				Sampler: SamplerDesc{MagFilter: gputypes.FilterModeLinear}},
		},
	}
}

func TestCompatibleIgnoresNames(t *testing.T) {
	a := twoResourceDesc([2]string{"g_Frame", "g_Albedo"})
	b := twoResourceDesc([2]string{"cbuf0", "tex0"})
	b.Label = "something else"

	if !Compatible(a, b) {
		t.Error("Compatible() = false for signatures differing only in names")
	}
	if !Compatible(b, a) {
		t.Error("Compatible() is not symmetric")
	}
}

func TestCompatibleOrderSensitive(t *testing.T) {
	a := twoResourceDesc([2]string{"a", "b"})
	swapped := twoResourceDesc([2]string{"a", "b"})
	swapped.Resources[0], swapped.Resources[1] = swapped.Resources[1], swapped.Resources[0]

	if Compatible(a, swapped) {
		t.Error("Compatible() = true after swapping structurally different resources")
	}
}

func TestCompatibleStructuralFields(t *testing.T) {
	base := func() *SignatureDesc { return twoResourceDesc([2]string{"a", "b"}) }

	tests := []struct {
		name   string
		mutate func(*SignatureDesc)
	}{
		{"binding index", func(d *SignatureDesc) { d.BindingIndex++ }},
		{"resource count", func(d *SignatureDesc) { d.Resources = d.Resources[:1] }},
		{"stage mask", func(d *SignatureDesc) { d.Resources[0].Stages = gputypes.ShaderStageCompute }},
		{"array size", func(d *SignatureDesc) { d.Resources[1].ArraySize = 2 }},
		{"resource type", func(d *SignatureDesc) { d.Resources[0].Type = ResourceTypeBufferSRV }},
		{"variable type", func(d *SignatureDesc) { d.Resources[0].VarType = VarTypeDynamic }},
		{"flags", func(d *SignatureDesc) { d.Resources[0].Flags = ResourceFlagNoDynamicBuffers }},
		{"sampler count", func(d *SignatureDesc) { d.ImmutableSamplers = nil }},
		{"sampler stages", func(d *SignatureDesc) { d.ImmutableSamplers[0].Stages = gputypes.ShaderStageVertex }},
		{"sampler state", func(d *SignatureDesc) { d.ImmutableSamplers[0].Sampler.MaxAnisotropy = 16 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, b := base(), base()
			tt.mutate(b)
			if Compatible(a, b) {
				t.Errorf("Compatible() = true after changing %s", tt.name)
			}
		})
	}
}

func TestCompatibleNil(t *testing.T) {
	a := twoResourceDesc([2]string{"a", "b"})
	if !Compatible(nil, nil) {
		t.Error("Compatible(nil, nil) = false, want true")
	}
	if Compatible(a, nil) || Compatible(nil, a) {
		t.Error("Compatible with one nil = true, want false")
	}
}
