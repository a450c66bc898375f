package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/pageza/calorie-counter/backend/internal/models"
)

// KeyMode records which credential served an estimation request
type KeyMode string

const (
	KeyModeSimulate KeyMode = "simulate"
	KeyModeProvided KeyMode = "provided"
	KeyModeEmergent KeyMode = "emergent"
)

const defaultUserText = "Estimate calories for the attached food image(s)."

const estimateSchema = `{
  "total_calories": number,
  "items": [ { "name": string, "quantity_units": string, "calories": number, "confidence": number } ],
  "confidence": number,
  "notes": string
}`

var systemPrompt = "You are a careful nutrition assistant. Given food images and an optional user note, " +
	"estimate calories conservatively. Return ONLY strict JSON in this exact schema, no extra text: " +
	estimateSchema + ". Use metric units where possible. Confidence must be 0-1."

var strictSystemPrompt = "You are a nutrition assistant. Return ONLY strict JSON, no markdown, no code fences " +
	"and no commentary before or after the object. The JSON must match this schema exactly: " +
	estimateSchema + ". total_calories must be greater than 0 or items must list at least one food. " +
	"Confidence values must be between 0 and 1."

// EngineInfo tags an estimate with the credential source and model that produced it
type EngineInfo struct {
	KeyMode KeyMode `json:"key_mode"`
	Model   string  `json:"model"`
}

// Estimate is the structured result of a calorie estimation
type Estimate struct {
	TotalCalories float64           `json:"total_calories"`
	Items         []models.MealItem `json:"items"`
	Confidence    float64           `json:"confidence"`
	Notes         string            `json:"notes"`
	EngineInfo    EngineInfo        `json:"engine_info"`
	EstimateID    string            `json:"estimate_id,omitempty"`
}

// EstimateInput is one estimation request after transport validation
type EstimateInput struct {
	Message  string
	Images   []ChatImage
	APIKey   string
	Simulate bool
}

// DraftStore keeps recent estimates so a client can fetch them again by id
type DraftStore interface {
	Save(ctx context.Context, est *Estimate) (string, error)
	Get(ctx context.Context, id string) (*Estimate, error)
}

// EstimateService runs the estimate, validate, retry, fallback pipeline
type EstimateService struct {
	chat       ChatClient
	defaultKey string
	drafts     DraftStore
}

// NewEstimateService creates the pipeline. drafts may be nil.
func NewEstimateService(chat ChatClient, defaultKey string, drafts DraftStore) *EstimateService {
	return &EstimateService{
		chat:       chat,
		defaultKey: defaultKey,
		drafts:     drafts,
	}
}

// HasDefaultKey reports whether a server-side key is configured
func (s *EstimateService) HasDefaultKey() bool {
	return s.defaultKey != ""
}

func (s *EstimateService) Model() string {
	return s.chat.Model()
}

// DraftsEnabled reports whether estimates are kept for later retrieval
func (s *EstimateService) DraftsEnabled() bool {
	return s.drafts != nil
}

// Estimate resolves a key, queries the model at most twice, and always returns a structured
// estimate unless a key cannot be resolved or the remote call itself fails.
func (s *EstimateService) Estimate(ctx context.Context, in EstimateInput) (*Estimate, error) {
	if in.Simulate {
		est := simulatedEstimate()
		est.EngineInfo = EngineInfo{KeyMode: KeyModeSimulate, Model: s.Model()}
		return s.remember(ctx, est), nil
	}

	key, mode, err := s.resolveKey(in.APIKey)
	if err != nil {
		return nil, err
	}

	userText := strings.TrimSpace(in.Message)
	if userText == "" {
		userText = defaultUserText
	}
	req := ChatRequest{
		APIKey:       key,
		SystemPrompt: systemPrompt,
		UserText:     userText,
		Images:       in.Images,
	}

	est, err := s.attempt(ctx, req, mode)
	if err != nil {
		return nil, err
	}
	if est == nil {
		log.Printf("[EstimateService] model output failed validation, retrying with strict prompt")
		req.SystemPrompt = strictSystemPrompt
		if est, err = s.attempt(ctx, req, mode); err != nil {
			return nil, err
		}
	}
	if est == nil {
		log.Printf("[EstimateService] model output failed validation twice, using fallback estimate")
		est = fallbackEstimate()
	}

	est.EngineInfo = EngineInfo{KeyMode: mode, Model: s.Model()}
	return s.remember(ctx, est), nil
}

// GetDraft returns a previously stored estimate
func (s *EstimateService) GetDraft(ctx context.Context, id string) (*Estimate, error) {
	if s.drafts == nil {
		return nil, ErrDraftNotFound
	}
	return s.drafts.Get(ctx, id)
}

func (s *EstimateService) resolveKey(provided string) (string, KeyMode, error) {
	if provided = strings.TrimSpace(provided); provided != "" {
		return provided, KeyModeProvided, nil
	}
	if s.defaultKey != "" {
		return s.defaultKey, KeyModeEmergent, nil
	}
	return "", "", ErrNoKeyAvailable
}

// attempt returns (nil, nil) when the reply did not contain a usable estimate.
func (s *EstimateService) attempt(ctx context.Context, req ChatRequest, mode KeyMode) (*Estimate, error) {
	raw, err := s.chat.Complete(ctx, req)
	if err != nil {
		log.Printf("[EstimateService] LLM call failed (key_mode=%s): %v", mode, err)
		return nil, classifyChatError(err, mode)
	}

	parsed, _ := ExtractJSONObject(raw)
	if !isValidEstimate(parsed) {
		return nil, nil
	}

	return estimateFromParsed(parsed), nil
}

func (s *EstimateService) remember(ctx context.Context, est *Estimate) *Estimate {
	if s.drafts == nil {
		return est
	}
	id, err := s.drafts.Save(ctx, est)
	if err != nil {
		log.Printf("[EstimateService] failed to store estimate draft: %v", err)
		return est
	}
	est.EstimateID = id
	return est
}

var authFailureMarkers = []string{"401", "unauthorized", "invalid", "auth"}

func classifyChatError(err error, mode KeyMode) error {
	if mode == KeyModeProvided && looksLikeAuthFailure(err) {
		return fmt.Errorf("%w: %v", ErrInvalidAPIKey, err)
	}
	return fmt.Errorf("%w: %v", ErrEstimationFailed, err)
}

func looksLikeAuthFailure(err error) bool {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}
	text := strings.ToLower(err.Error())
	for _, marker := range authFailureMarkers {
		if strings.Contains(text, marker) {
			return true
		}
	}
	return false
}

func simulatedEstimate() *Estimate {
	return &Estimate{
		TotalCalories: 420,
		Items: []models.MealItem{
			{Name: "Grilled chicken", QuantityUnits: "150g", Calories: 250, Confidence: 0.78},
			{Name: "Mixed salad", QuantityUnits: "1 bowl", Calories: 80, Confidence: 0.7},
			{Name: "Olive oil", QuantityUnits: "1 tbsp", Calories: 90, Confidence: 0.65},
		},
		Confidence: 0.74,
		Notes:      "Simulated estimate (no API key provided)",
	}
}

func fallbackEstimate() *Estimate {
	return &Estimate{
		TotalCalories: 400,
		Items: []models.MealItem{
			{Name: "Mixed meal", QuantityUnits: "1 serving", Calories: 400, Confidence: 0.3},
		},
		Confidence: 0.3,
		Notes:      "The model did not return a usable estimate; showing a generic default. Adjust the items manually.",
	}
}
