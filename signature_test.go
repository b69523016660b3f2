package pipesig

import (
	"testing"

	"github.com/gogpu/gputypes"
)

func TestResourceTypeString(t *testing.T) {
	tests := []struct {
		typ  ResourceType
		want string
	}{
		{ResourceTypeConstantBuffer, "ConstantBuffer"},
		{ResourceTypeBufferSRV, "BufferSRV"},
		{ResourceTypeBufferUAV, "BufferUAV"},
		{ResourceTypeTextureSRV, "TextureSRV"},
		{ResourceTypeTextureUAV, "TextureUAV"},
		{ResourceTypeSampler, "Sampler"},
		{ResourceTypeInputAttachment, "InputAttachment"},
		{ResourceTypeAccelStruct, "AccelStruct"},
		{ResourceTypeUnknown, "Unknown"},
		{ResourceType(99), "Unknown"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := tt.typ.String(); got != tt.want {
				t.Errorf("ResourceType(%d).String() = %q, want %q", tt.typ, got, tt.want)
			}
		})
	}
}

func TestVarTypeString(t *testing.T) {
	tests := []struct {
		typ  VarType
		want string
	}{
		{VarTypeStatic, "Static"},
		{VarTypeMutable, "Mutable"},
		{VarTypeDynamic, "Dynamic"},
		{VarType(99), "Unknown"},
	}
	for _, tt := range tests {
		if got := tt.typ.String(); got != tt.want {
			t.Errorf("VarType(%d).String() = %q, want %q", tt.typ, got, tt.want)
		}
	}
}

func TestResourceFlagsString(t *testing.T) {
	tests := []struct {
		flags ResourceFlags
		want  string
	}{
		{ResourceFlagNone, "None"},
		{ResourceFlagRuntimeArray, "RuntimeArray"},
		{ResourceFlagNoDynamicBuffers | ResourceFlagFormattedBuffer, "NoDynamicBuffers|FormattedBuffer"},
		{ResourceFlagCombinedSampler | ResourceFlagRuntimeArray, "CombinedSampler|RuntimeArray"},
	}
	for _, tt := range tests {
		if got := tt.flags.String(); got != tt.want {
			t.Errorf("ResourceFlags(%d).String() = %q, want %q", tt.flags, got, tt.want)
		}
	}
}

func TestShaderStageString(t *testing.T) {
	tests := []struct {
		stages gputypes.ShaderStage
		want   string
	}{
		{0, "None"},
		{gputypes.ShaderStageVertex, "Vertex"},
		{gputypes.ShaderStageVertex | gputypes.ShaderStageFragment, "Vertex|Fragment"},
		{gputypes.ShaderStageCompute, "Compute"},
	}
	for _, tt := range tests {
		if got := shaderStageString(tt.stages); got != tt.want {
			t.Errorf("shaderStageString(%d) = %q, want %q", tt.stages, got, tt.want)
		}
	}
}

func TestSignatureDescClone(t *testing.T) {
	orig := twoResourceDesc([2]string{"a", "b"})
	c := orig.clone()

	if !Compatible(orig, c) {
		t.Fatal("clone is not Compatible with the original")
	}

	c.Resources[0].Stages = gputypes.ShaderStageCompute
	c.ImmutableSamplers[0].Stages = gputypes.ShaderStageVertex
	if orig.Resources[0].Stages == gputypes.ShaderStageCompute {
		t.Error("mutating the clone's resources changed the original")
	}
	if orig.ImmutableSamplers[0].Stages == gputypes.ShaderStageVertex {
		t.Error("mutating the clone's samplers changed the original")
	}
}
