//go:build debugchecks

package pipesig

import (
	"fmt"

	"github.com/gogpu/gputypes"
)

// devCheckSamplerStages panics on a partial stage overlap between a
// resource and its immutable sampler. Active only under the
// debugchecks build tag; release builds log a warning instead.
func devCheckSamplerStages(resourceName, samplerName string, requested, covered gputypes.ShaderStage) {
	panic(fmt.Sprintf("pipesig: resource %q is declared for stages %s, but immutable sampler %q covers only %s; "+
		"use separate resources per stage, or declare the sampler for all stages the resource uses",
		resourceName, shaderStageString(requested), samplerName, shaderStageString(covered)))
}
