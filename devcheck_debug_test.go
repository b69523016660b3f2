//go:build debugchecks

package pipesig

import (
	"testing"

	"github.com/gogpu/gputypes"
)

func TestPartialStageCoveragePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected a panic on partial immutable-sampler stage coverage")
		}
	}()

	samplers := []ImmutableSamplerDesc{
		{SamplerOrTextureName: "g_Tex", Stages: gputypes.ShaderStageFragment},
	}
	FindImmutableSampler(samplers,
		gputypes.ShaderStageVertex|gputypes.ShaderStageFragment, "g_Tex", "")
}
