package ai

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// Anchored patterns for conversational filler the model emits despite
// the STRICT OUTPUT RULES block. Each match is removed together with
// its trailing newline(s). Order matters: more specific openers first.
var preamblePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)^(Sure!|Certainly!|Absolutely!|Great!|Of course!|Here'?s?|I'?ll|Let me|I will|I'd be happy to)[^\n]*\n+`),
	regexp.MustCompile(`(?i)^(Here is|Here are|Below is|Below are)[^\n]*\n+`),
	regexp.MustCompile(`(?i)^(I've created|I've generated|I've prepared|I've analyzed|I've put together|I've refined)[^\n]*\n+`),
	regexp.MustCompile(`(?i)^(This is|Here's an?|Here's the)[^\n]*(upgraded|enhanced|improved|better|sarcastic|engaging|analysis|refined)[^\n]*\n+`),
	regexp.MustCompile(`(?i)^[^\n]*take on your request[^\n]*\n+`),
	regexp.MustCompile(`(?i)^[^\n]*(version|take|response):[^\n]*\n+`),
	regexp.MustCompile(`(?i)^(Market Analysis|Analysis Summary|Refined version|Here's the refined|The refined)[^\n]*\n+`),
}

var (
	leadingRule = regexp.MustCompile(`^---+\n+`)
	leadingBold = regexp.MustCompile(`^\*\*+\n+`)
)

// CleanResponse strips conversational preamble, leading markdown noise
// and wrapping quotes from a generation payload. The pass runs once per
// call and is idempotent: applying it to already-clean text returns the
// text unchanged.
func CleanResponse(response string) string {
	cleaned := strings.TrimSpace(response)

	for _, pattern := range preamblePatterns {
		cleaned = pattern.ReplaceAllString(cleaned, "")
	}

	cleaned = leadingRule.ReplaceAllString(cleaned, "")
	cleaned = leadingBold.ReplaceAllString(cleaned, "")

	// At most one wrapping quote character on either end.
	if len(cleaned) > 0 && (cleaned[0] == '"' || cleaned[0] == '\'') {
		cleaned = cleaned[1:]
	}
	if n := len(cleaned); n > 0 && (cleaned[n-1] == '"' || cleaned[n-1] == '\'') {
		cleaned = cleaned[:n-1]
	}

	return strings.TrimSpace(cleaned)
}

// CalculateTokens computes the deterministic token cost charged for a
// generation: ceil(len(input)/4) + ceil(len(output)/4), counted in
// characters. A coarse proxy for real model usage, chosen for
// reproducibility.
func CalculateTokens(input, output string) int {
	in := utf8.RuneCountInString(input)
	out := utf8.RuneCountInString(output)
	return (in+3)/4 + (out+3)/4
}
