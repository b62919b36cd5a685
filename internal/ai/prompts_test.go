package ai

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildIntelPromptDefaults(t *testing.T) {
	prompt, modelKey := BuildIntelPrompt(IntelRequest{Market: "handmade candles"})

	assert.Equal(t, "professional", modelKey)
	assert.Contains(t, prompt, intelPrompts["professional"])
	assert.Contains(t, prompt, `Market: "handmade candles"`)
	assert.Contains(t, prompt, "Global market")
	assert.Contains(t, prompt, "General business")
	assert.Contains(t, prompt, "brief analysis")
	assert.Contains(t, prompt, "current focus")
	// The exact target shape and the leading-brace instruction must
	// always be present for the extractor to have a chance.
	assert.Contains(t, prompt, intelJSONShape)
	assert.Contains(t, prompt, "Start directly with {")
}

func TestBuildIntelPromptUnknownModelFallsBack(t *testing.T) {
	_, modelKey := BuildIntelPrompt(IntelRequest{Market: "x", Model: "does-not-exist"})
	assert.Equal(t, "professional", modelKey)
}

func TestBuildIntelPromptSelectors(t *testing.T) {
	prompt, modelKey := BuildIntelPrompt(IntelRequest{
		Market:       "street food",
		Model:        "market",
		Region:       "custom",
		CustomRegion: "Metro Manila",
		Industry:     "local",
		Depth:        "detailed",
		TimeFocus:    "12months",
	})

	assert.Equal(t, "market", modelKey)
	assert.Contains(t, prompt, "Metro Manila")
	assert.Contains(t, prompt, "Local business")
	assert.Contains(t, prompt, "detailed analysis")
	assert.Contains(t, prompt, "next 12 months")
}

func TestBuildRefinePromptDefaults(t *testing.T) {
	prompt, modelKey := BuildRefinePrompt(RefineRequest{Content: "  our product is good  "})

	assert.Equal(t, "professional", modelKey)
	assert.Contains(t, prompt, refinePrompts["professional"])
	assert.Contains(t, prompt, ToneInstructions["formal"])
	assert.Contains(t, prompt, lengthInstructions["medium"])
	assert.Contains(t, prompt, "our product is good")
	assert.Contains(t, prompt, "STRICT OUTPUT RULES")
	// Subject is trimmed before embedding.
	assert.NotContains(t, prompt, "  our product is good  ")
}

func TestBuildRefinePromptCustomTone(t *testing.T) {
	prompt, _ := BuildRefinePrompt(RefineRequest{
		Content:    "text",
		Tone:       "custom",
		CustomTone: "Write like a pirate captain",
		Length:     "long",
	})

	assert.Contains(t, prompt, "Write like a pirate captain")
	assert.Contains(t, prompt, lengthInstructions["long"])
}

func TestBuildBriefPromptDefaults(t *testing.T) {
	prompt, modelKey := BuildBriefPrompt(BriefRequest{Objective: "launch a bakery"})

	assert.Equal(t, "creative", modelKey)
	assert.Contains(t, prompt, briefPrompts["creative"])
	assert.Contains(t, prompt, `Business Objective: "launch a bakery"`)
	assert.Contains(t, prompt, "## Executive Summary")
	assert.NotContains(t, prompt, "Context file/image provided")
}

func TestBuildBriefPromptWithAttachment(t *testing.T) {
	prompt, _ := BuildBriefPrompt(BriefRequest{
		Objective: "launch a bakery",
		Model:     "quick",
		Tone:      "formal",
		ImageURL:  "https://example.com/logo.png",
	})

	assert.Contains(t, prompt, briefPrompts["quick"])
	assert.Contains(t, prompt, ToneInstructions["formal"])
	assert.Contains(t, prompt, "Context file/image provided. Incorporate relevant insights.")
}

func TestPromptNegativeConstraints(t *testing.T) {
	// Every kind carries the no-greeting/no-meta block.
	intel, _ := BuildIntelPrompt(IntelRequest{Market: "m"})
	refine, _ := BuildRefinePrompt(RefineRequest{Content: "c"})
	brief, _ := BuildBriefPrompt(BriefRequest{Objective: "o"})

	for _, prompt := range []string{intel, refine, brief} {
		assert.Contains(t, prompt, "STRICT OUTPUT RULES")
		assert.True(t, strings.Contains(prompt, `"Sure!"`))
	}
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "intel", KindIntel.String())
	assert.Equal(t, "refine", KindRefine.String())
	assert.Equal(t, "brief", KindBrief.String())
}
