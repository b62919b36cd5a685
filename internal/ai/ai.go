package ai

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/launchpilot/launchpilot-golang/internal/models"
	"github.com/sirupsen/logrus"
)

// Sentinel errors surfaced verbatim to clients. Everything else the
// pipeline can hit (malformed output, envelope oddities) degrades to a
// usable result instead of failing.
var (
	ErrQuotaExceeded      = errors.New("Token limit reached. Please upgrade your plan.")
	ErrServiceUnavailable = errors.New("AI service unavailable")
)

// AIService runs the generation pipeline: prompt compilation, one
// gateway call, envelope unwrapping, cleanup, optional structured
// extraction, and token metering around the whole operation.
type AIService struct {
	DB      *sql.DB
	Gateway *Gateway
	Log     *logrus.Logger
}

// NewAIService wires the service with its database pool and gateway.
func NewAIService(db *sql.DB, gateway *Gateway, log *logrus.Logger) *AIService {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &AIService{DB: db, Gateway: gateway, Log: log}
}

// IntelResult is the response payload for market-analysis generation.
type IntelResult struct {
	Result     map[string]interface{} `json:"result"`
	Structured bool                   `json:"structured"`
	Degraded   bool                   `json:"degraded"`
	Model      string                 `json:"model"`
	TokensUsed int                    `json:"tokensUsed"`
}

// RefineResult is the response payload for content refinement.
type RefineResult struct {
	Result     string `json:"result"`
	Model      string `json:"model"`
	Tone       string `json:"tone"`
	Length     string `json:"length"`
	TokensUsed int    `json:"tokensUsed"`
}

// BriefResult is the response payload for strategic-brief generation.
type BriefResult struct {
	Result     string  `json:"result"`
	Model      string  `json:"model"`
	Tone       *string `json:"tone"`
	TokensUsed int     `json:"tokensUsed"`
}

// GenerateIntel runs the market-analysis pipeline. The returned result
// is always a full object: extraction failures produce the fixed
// degraded placeholder (Degraded=true) rather than an error.
func (s *AIService) GenerateIntel(ctx context.Context, userID int64, req IntelRequest) (*IntelResult, error) {
	sub, err := s.currentSubscription(userID)
	if err != nil {
		return nil, err
	}
	if err := checkTokenLimit(sub); err != nil {
		return nil, err
	}

	prompt, modelKey := BuildIntelPrompt(req)

	raw, err := s.Gateway.Generate(ctx, prompt, "")
	if err != nil {
		return nil, err
	}

	payload := UnwrapEnvelope(raw)
	if !payload.IsObject() {
		payload.Text = CleanResponse(payload.Text)
	}

	structured, degraded := ExtractIntel(payload)

	serialized, err := json.Marshal(structured)
	if err != nil {
		// Maps of JSON-decoded values always marshal; treat anything
		// else as a broken payload and degrade.
		structured, degraded = degradedIntel(), true
		serialized, _ = json.Marshal(structured)
	}
	cost := CalculateTokens(req.Market, string(serialized))

	s.chargeTokens(sub, cost)
	s.recordActivity(userID, KindIntel, "Market Intel Generated", req.Market, cost)

	return &IntelResult{
		Result:     structured,
		Structured: true,
		Degraded:   degraded,
		Model:      modelKey,
		TokensUsed: cost,
	}, nil
}

// RefineContent runs the content-refinement pipeline and returns the
// normalized text.
func (s *AIService) RefineContent(ctx context.Context, userID int64, req RefineRequest) (*RefineResult, error) {
	sub, err := s.currentSubscription(userID)
	if err != nil {
		return nil, err
	}
	if err := checkTokenLimit(sub); err != nil {
		return nil, err
	}

	prompt, modelKey := BuildRefinePrompt(req)

	raw, err := s.Gateway.Generate(ctx, prompt, "")
	if err != nil {
		return nil, err
	}

	result := textPayload(raw)
	cost := CalculateTokens(req.Content, result)

	s.chargeTokens(sub, cost)
	s.recordActivity(userID, KindRefine, "Content Refined", req.Content, cost)

	return &RefineResult{
		Result:     result,
		Model:      modelKey,
		Tone:       req.Tone,
		Length:     req.Length,
		TokensUsed: cost,
	}, nil
}

// GenerateBrief runs the strategic-brief pipeline. The finished brief
// is additionally persisted as an artifact; that write is best-effort
// and never fails the request.
func (s *AIService) GenerateBrief(ctx context.Context, userID int64, req BriefRequest) (*BriefResult, error) {
	sub, err := s.currentSubscription(userID)
	if err != nil {
		return nil, err
	}
	if err := checkTokenLimit(sub); err != nil {
		return nil, err
	}

	prompt, modelKey := BuildBriefPrompt(req)

	raw, err := s.Gateway.Generate(ctx, prompt, req.ImageURL)
	if err != nil {
		return nil, err
	}

	result := textPayload(raw)
	cost := CalculateTokens(req.Objective, result)

	s.chargeTokens(sub, cost)
	s.saveBrief(userID, req, modelKey, result, cost)
	s.recordActivity(userID, KindBrief, "Strategic Brief Generated", req.Objective, cost)

	var tone *string
	if req.Tone != "" {
		tone = &req.Tone
	}
	return &BriefResult{
		Result:     result,
		Model:      modelKey,
		Tone:       tone,
		TokensUsed: cost,
	}, nil
}

// textPayload unwraps and normalizes a raw endpoint response for the
// text-producing feature kinds. Object payloads have no textual form
// here, so they fall back to the raw body before cleanup.
func textPayload(raw string) string {
	payload := UnwrapEnvelope(raw)
	if payload.IsObject() {
		return CleanResponse(raw)
	}
	return CleanResponse(payload.Text)
}

//
// --- Entitlement guard & token meter ---
//

// currentSubscription loads the newest subscription row for a user.
// A nil result (no row) means an implicit trial: generation proceeds
// under the default limit and is never charged.
func (s *AIService) currentSubscription(userID int64) (*models.Subscription, error) {
	query := `
		SELECT id, user_id, plan, status, tokens_used, tokens_limit
		FROM subscriptions
		WHERE user_id = ?
		ORDER BY created_at DESC
		LIMIT 1`

	sub := &models.Subscription{}
	err := s.DB.QueryRow(query, userID).Scan(
		&sub.ID, &sub.UserID, &sub.Plan, &sub.Status, &sub.TokensUsed, &sub.TokensLimit,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to load subscription: %w", err)
	}
	return sub, nil
}

// checkTokenLimit enforces the plan ceiling before any generation call
// is made. The pro plan is exempt; accounts without a subscription row
// run against the default limit starting from zero usage.
func checkTokenLimit(sub *models.Subscription) error {
	plan := "trial"
	used := 0
	limit := DefaultTokensLimit
	if sub != nil {
		plan = sub.Plan
		used = sub.TokensUsed
		if sub.TokensLimit > 0 {
			limit = sub.TokensLimit
		}
	}

	if plan != "pro" && used >= limit {
		return ErrQuotaExceeded
	}
	return nil
}

// chargeTokens adds the computed cost to the subscription's usage
// counter. The increment runs in SQL rather than read-modify-write so
// concurrent requests cannot lose updates; two racing requests can
// still both pass the pre-check, which is an accepted gap. A failed
// charge is logged but never fails an already-delivered generation.
func (s *AIService) chargeTokens(sub *models.Subscription, cost int) {
	if sub == nil {
		return
	}
	_, err := s.DB.Exec("UPDATE subscriptions SET tokens_used = tokens_used + ? WHERE id = ?", cost, sub.ID)
	if err != nil {
		s.Log.WithError(err).WithField("subscription_id", sub.ID).Error("failed to update token usage")
	}
}

//
// --- Activity recorder & brief artifacts ---
//

// descriptionCap is the per-kind character cap for the activity
// description derived from the request subject.
func descriptionCap(kind Kind) int {
	if kind == KindIntel {
		return 100
	}
	return 80
}

// recordActivity appends one audit entry for a successful generation.
// Best-effort: a failed insert is logged and swallowed.
func (s *AIService) recordActivity(userID int64, kind Kind, title, subject string, tokens int) {
	description := truncate(strings.TrimSpace(subject), descriptionCap(kind))

	query := `
		INSERT INTO activities (user_id, type, title, description, tokens_used)
		VALUES (?, ?, ?, ?, ?)`
	_, err := s.DB.Exec(query, userID, kind.String(), title, description, tokens)
	if err != nil {
		s.Log.WithError(err).WithField("user_id", userID).Warn("failed to record activity")
	}
}

// saveBrief persists the finished brief as a stored artifact.
// Best-effort, same as activity recording.
func (s *AIService) saveBrief(userID int64, req BriefRequest, modelKey, result string, tokens int) {
	var tone *string
	if req.Tone != "" {
		tone = &req.Tone
	}

	query := `
		INSERT INTO briefs (user_id, title, objective, model, tone, result, tokens_used)
		VALUES (?, ?, ?, ?, ?, ?, ?)`
	_, err := s.DB.Exec(query, userID, truncate(req.Objective, 100), req.Objective, modelKey, tone, result, tokens)
	if err != nil {
		s.Log.WithError(err).WithField("user_id", userID).Warn("failed to save brief artifact")
	}
}

// truncate caps s at max characters, appending an ellipsis when
// anything was cut.
func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max]) + "..."
}
