//go:build !debugchecks

package pipesig

import "github.com/gogpu/gputypes"

// devCheckSamplerStages reports an immutable sampler that covers only
// part of the stages its resource is declared for. In normal builds
// this is a logged consistency warning, not an error; build with
// -tags debugchecks to turn it into a panic during development.
func devCheckSamplerStages(resourceName, samplerName string, requested, covered gputypes.ShaderStage) {
	Logger().Warn("immutable sampler covers only some of the resource's shader stages; "+
		"use separate resources per stage, or declare the sampler for all stages the resource uses",
		"resource", resourceName,
		"resourceStages", shaderStageString(requested),
		"sampler", samplerName,
		"samplerStages", shaderStageString(covered))
}
