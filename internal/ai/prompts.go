package ai

import (
	"fmt"
	"strings"
)

// Kind identifies which generation feature a request belongs to.
// Every per-kind lookup in this package switches over it, so adding
// a new feature forces a pass over all of them.
type Kind int

const (
	KindIntel Kind = iota // market analysis (structured JSON result)
	KindRefine            // content refinement (text result)
	KindBrief             // strategic brief (text result)
)

// String returns the activity/database tag for the kind.
func (k Kind) String() string {
	switch k {
	case KindIntel:
		return "intel"
	case KindRefine:
		return "refine"
	case KindBrief:
		return "brief"
	}
	return "unknown"
}

// DefaultTokensLimit is the ceiling applied to accounts that have no
// subscription row (treated as an implicit trial).
const DefaultTokensLimit = 5000

// intelJSONShape is the exact structure the model is told to emit.
// It must stay in sync with the extraction logic in intel.go.
const intelJSONShape = `{"marketOverview":{"marketSize":"description","customerBehavior":"description","buyingMotivations":"description"},"targetAudience":{"demographics":"description","painPoints":"description","buyingTriggers":"description"},"competitorSnapshot":{"typicalCompetitors":"description","strengths":"description","weaknesses":"description"},"trendsOpportunities":{"emergingTrends":"description","marketGaps":"description","underservedNeeds":"description"},"recommendations":["action 1","action 2","action 3","action 4","action 5"]}`

// System prompt fragments per (kind, model key). Unknown keys fall back
// to the kind's default entry -- never an error.
var intelPrompts = map[string]string{
	"professional": "You are a professional market research analyst. CRITICAL: Do NOT include any preamble, meta-commentary, or phrases like \"Sure!\", \"Here is\", \"I will\". Output ONLY the requested JSON format. Never be sarcastic.",
	"market":       "You are an expert market intelligence analyst. CRITICAL: Do NOT include any preamble, meta-commentary, or phrases like \"Sure!\", \"Here is\", \"I will\". Output ONLY the requested JSON format. Never be sarcastic.",
}

var refinePrompts = map[string]string{
	"creative":     "You are a creative content editor. Refine content with flair and engaging language. CRITICAL: Do NOT include any preamble, meta-commentary, or phrases like \"Sure!\", \"Here is\", \"I will\", \"Let me\". Output ONLY the refined content. Never be sarcastic.",
	"professional": "You are a professional content editor. Refine content with clarity, precision, and business-appropriate language. CRITICAL: Do NOT include any preamble, meta-commentary, or phrases like \"Sure!\", \"Here is\", \"I will\", \"Let me\". Output ONLY the refined content. Never be sarcastic.",
	"local":        "You are a Filipino content editor. Refine content and optionally translate or mix with Tagalog/Filipino when appropriate. CRITICAL: Do NOT include any preamble, meta-commentary, or phrases like \"Sure!\", \"Here is\", \"I will\", \"Let me\". Output ONLY the refined content. Never be sarcastic.",
}

var briefPrompts = map[string]string{
	"creative":     "You are a creative strategist. Generate innovative and creative business strategies. CRITICAL: Do NOT include any preamble, meta-commentary, or phrases like \"Sure!\", \"Here is\", \"I will\", \"Let me\". Start directly with the content. Never be sarcastic. Output only the strategic content.",
	"professional": "You are a professional business consultant. Generate formal, structured, and data-driven business strategies. CRITICAL: Do NOT include any preamble, meta-commentary, or phrases like \"Sure!\", \"Here is\", \"I will\", \"Let me\". Start directly with the content. Never be sarcastic. Output only the strategic content.",
	"local":        "You are a concise strategy assistant. Provide brief, direct, and practical business recommendations. CRITICAL: Do NOT include any preamble, meta-commentary, or phrases like \"Sure!\", \"Here is\", \"I will\", \"Let me\". Start directly with the content. Never be sarcastic. Output only the strategic content.",
	"quick":        "You are a rapid strategy generator. Provide quick, bullet-pointed strategic insights and action items. CRITICAL: Do NOT include any preamble, meta-commentary, or phrases like \"Sure!\", \"Here is\", \"I will\", \"Let me\". Start directly with the content. Never be sarcastic. Output only the strategic content.",
}

var regionContext = map[string]string{
	"global":      "Global market",
	"philippines": "Philippine market",
	"custom":      "",
}

var industryContext = map[string]string{
	"ecommerce": "E-commerce industry",
	"services":  "Service-based business",
	"saas":      "SaaS/Software industry",
	"local":     "Local business",
}

// ToneInstructions maps tone keys to the instruction text appended to
// prompts. Exported so handlers can validate/echo the resolved tone.
var ToneInstructions = map[string]string{
	"friendly":     "Use a warm, approachable, and conversational tone. Be helpful and personable. Never be sarcastic or use humor that undermines the content.",
	"formal":       "Use a formal, professional tone. Maintain proper grammar and business etiquette. Never be sarcastic or playful.",
	"persuasive":   "Use persuasive language that motivates action. Highlight benefits and create urgency. Never be sarcastic or dismissive.",
	"professional": "Write in a formal, business-appropriate tone. Use corporate language, avoid contractions, maintain objectivity. Structure content with clear headings and bullet points. Sound authoritative and data-driven. Never be sarcastic or playful.",
	"casual":       "Write in a friendly, conversational tone. Use everyday language and a relaxed style. Be approachable and easy to understand. Never be sarcastic or include jokes.",
	"informative":  "Write in an educational, informative tone. Focus on clarity, provide detailed explanations, use examples. Be thorough and instructive. Never be sarcastic or condescending.",
	"creative":     "Write in an imaginative, creative tone. Use vivid metaphors and storytelling elements. Be bold with ideas. Never be sarcastic, ironic, or use humor that undermines professionalism.",
	"custom":       "",
}

var lengthInstructions = map[string]string{
	"short":  "Keep the output concise and brief. Remove unnecessary words. Aim for 50% of original length.",
	"medium": "Maintain similar length to the original. Focus on improving quality without changing length significantly.",
	"long":   "Expand the content with more details, examples, and elaboration. Aim for 150-200% of original length.",
}

// IntelRequest is the input for market-analysis generation.
type IntelRequest struct {
	Market       string `json:"market" binding:"required"`
	Model        string `json:"model"`
	Region       string `json:"region"`
	CustomRegion string `json:"customRegion"`
	Industry     string `json:"industry"`
	Depth        string `json:"depth"`
	TimeFocus    string `json:"timeFocus"`
}

// RefineRequest is the input for content refinement.
type RefineRequest struct {
	Content    string `json:"content" binding:"required,max=10000"`
	Model      string `json:"model"`
	Tone       string `json:"tone"`
	CustomTone string `json:"customTone"`
	Length     string `json:"length"`
}

// BriefRequest is the input for strategic-brief generation.
type BriefRequest struct {
	Objective string `json:"objective" binding:"required,max=2000"`
	Model     string `json:"model"`
	Tone      string `json:"tone"`
	ImageURL  string `json:"imageUrl"`
}

// resolveModelKey returns the style key actually used for a request,
// falling back to the kind's default when the key is unknown or empty.
func resolveModelKey(kind Kind, key string) string {
	switch kind {
	case KindIntel:
		if _, ok := intelPrompts[key]; ok {
			return key
		}
		return "professional"
	case KindRefine:
		if _, ok := refinePrompts[key]; ok {
			return key
		}
		return "professional"
	case KindBrief:
		if _, ok := briefPrompts[key]; ok {
			return key
		}
		return "creative"
	}
	return key
}

// BuildIntelPrompt compiles the full instruction text for a market
// analysis request. Pure function; unknown selector keys fall back to
// safe defaults and never fail.
func BuildIntelPrompt(req IntelRequest) (prompt string, modelKey string) {
	modelKey = resolveModelKey(KindIntel, req.Model)
	systemPrompt := intelPrompts[modelKey]

	regionText := regionContext[req.Region]
	if req.Region == "custom" && req.CustomRegion != "" {
		regionText = req.CustomRegion
	}
	if regionText == "" {
		regionText = "Global market"
	}

	industryText := industryContext[req.Industry]
	if industryText == "" {
		industryText = "General business"
	}

	depthText := "brief"
	if req.Depth == "detailed" {
		depthText = "detailed"
	}

	timeText := "current"
	switch req.TimeFocus {
	case "12months":
		timeText = "next 12 months"
	case "6months":
		timeText = "next 6 months"
	}

	prompt = fmt.Sprintf(`%s

STRICT OUTPUT RULES:
- Do NOT start with greetings or phrases like "Sure!", "Certainly!", "Here's", "I'll", "Let me"
- Do NOT add meta-commentary or explanations
- Do NOT be sarcastic, ironic, or use humor
- Do NOT include phrases like "Market Analysis Summary:" or similar headers before JSON
- Output ONLY valid JSON, nothing else

Market: "%s"
Context: %s, %s, %s analysis, %s focus.

Return this EXACT JSON structure only:

%s

Start directly with { - no text before or after the JSON.`,
		systemPrompt, strings.TrimSpace(req.Market), regionText, industryText, depthText, timeText, intelJSONShape)
	return prompt, modelKey
}

// BuildRefinePrompt compiles the full instruction text for a content
// refinement request and reports the resolved model key.
func BuildRefinePrompt(req RefineRequest) (prompt string, modelKey string) {
	modelKey = resolveModelKey(KindRefine, req.Model)
	systemPrompt := refinePrompts[modelKey]

	toneInstruction := ToneInstructions[req.Tone]
	if req.Tone == "custom" && req.CustomTone != "" {
		toneInstruction = req.CustomTone
	}
	if toneInstruction == "" {
		toneInstruction = ToneInstructions["formal"]
	}

	lengthInstruction := lengthInstructions[req.Length]
	if lengthInstruction == "" {
		lengthInstruction = lengthInstructions["medium"]
	}

	prompt = fmt.Sprintf(`%s

STRICT OUTPUT RULES:
- Do NOT start with greetings, acknowledgments, or phrases like "Sure!", "Certainly!", "Here's", "I'll", "Let me", "Great!"
- Do NOT add meta-commentary about what you're doing
- Do NOT be sarcastic, ironic, or use humor
- Do NOT include phrases like "upgraded version", "enhanced take", "here's the refined version"
- Output ONLY the refined content directly
- No explanations before or after the content

TONE: %s

LENGTH: %s

Refine this content:

"""
%s
"""

Output the refined content only, starting immediately with the refined text.`,
		systemPrompt, toneInstruction, lengthInstruction, strings.TrimSpace(req.Content))
	return prompt, modelKey
}

// BuildBriefPrompt compiles the full instruction text for a strategic
// brief. When an attachment is present the prompt notes it so the model
// incorporates the referenced file.
func BuildBriefPrompt(req BriefRequest) (prompt string, modelKey string) {
	modelKey = resolveModelKey(KindBrief, req.Model)
	systemPrompt := briefPrompts[modelKey]

	tonePart := ""
	if t := ToneInstructions[req.Tone]; t != "" {
		tonePart = t + "\n\n"
	}

	attachmentNote := ""
	if req.ImageURL != "" {
		attachmentNote = "Context file/image provided. Incorporate relevant insights."
	}

	prompt = fmt.Sprintf(`%s

%sSTRICT OUTPUT RULES:
- Do NOT start with greetings, acknowledgments, or phrases like "Sure!", "Certainly!", "Here's", "I'll", "Let me", "Great!", "Absolutely!"
- Do NOT add meta-commentary about what you're doing or going to do
- Do NOT be sarcastic, ironic, or use humor
- Do NOT include phrases like "upgraded version", "enhanced take", "here's a better version"
- Start IMMEDIATELY with the first section heading
- Output ONLY the strategic content in a clean, professional format

Business Objective: "%s"

Generate a strategic brief with these sections:

1. Executive Summary
2. Key Objectives
3. Target Audience Analysis
4. Strategic Recommendations
5. Action Items
6. Success Metrics

%s

Start directly with "## Executive Summary" - no preamble.`,
		systemPrompt, tonePart, strings.TrimSpace(req.Objective), attachmentNote)
	return prompt, modelKey
}
