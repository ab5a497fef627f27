package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"
	"time"

	"tripwise/internal/models/request_models"
	"tripwise/internal/models/response_models"
	"tripwise/pkg/utils"
)

// enrichmentTimeout bounds every outbound LLM call; the remote service is
// untrusted and an unbounded wait is unacceptable for a request-scoped plan.
const enrichmentTimeout = 30 * time.Second

const llmSystemInstruction = "You are a meticulous, budget-aware Indian travel concierge. " +
	"Always be concrete, local, safe, and bias toward verified logistics. " +
	"Keep sentences tight and useful."

// EnrichmentServiceInterface is the adapter around the external LLM
// capability. Every method swallows all remote failures and resolves to its
// documented fallback; nothing past this boundary ever sees an AI error.
type EnrichmentServiceInterface interface {
	// RerankActivities asks the model for a priority-ordered shortlist and
	// rebuilds the activity list in that order, keeping original metadata.
	// Disabled AI, empty results, and any call/parse failure all return the
	// input unchanged.
	RerankActivities(ctx context.Context, req *request_models.TripRequest, acts []response_models.Activity) []response_models.Activity

	// GenerateAdvice returns structured trip guidance, or nil when AI is
	// disabled or the call fails. Never a partially filled object.
	GenerateAdvice(ctx context.Context, req *request_models.TripRequest, summary string) *response_models.AIAdvice

	// GenerateNarrative returns an overview plus one tip per day, or nil
	// under the same degrade conditions as GenerateAdvice.
	GenerateNarrative(ctx context.Context, req *request_models.TripRequest, dayByDay []response_models.DayPlan) *response_models.AINarrative
}

type EnrichmentService struct {
	llm utils.LLMClientInterface
}

func NewEnrichmentService(llm utils.LLMClientInterface) EnrichmentServiceInterface {
	return &EnrichmentService{llm: llm}
}

func (s *EnrichmentService) generate(ctx context.Context, req *request_models.TripRequest, userPrompt string) (string, error) {
	callCtx, cancel := context.WithTimeout(ctx, enrichmentTimeout)
	defer cancel()
	return s.llm.GenerateJSON(callCtx, llmSystemInstruction, userPrompt, req.AI.Model, req.AI.Temperature)
}

func (s *EnrichmentService) RerankActivities(ctx context.Context, req *request_models.TripRequest, acts []response_models.Activity) []response_models.Activity {
	if !req.AIEnabled() || len(acts) == 0 {
		return acts
	}

	shortlist := len(acts)
	if shortlist > 6 {
		shortlist = 6
	}
	preferences := "(none)"
	if len(req.Preferences) > 0 {
		preferences = strings.Join(req.Preferences, ", ")
	}
	candidates, err := json.Marshal(acts)
	if err != nil {
		return acts
	}

	prompt := fmt.Sprintf(
		"You receive a destination's candidate activities. Re-rank them for a %s traveler profile "+
			"with preferences: %s. Shortlist up to %d that best match the profile and ensure variety. "+
			"Return a JSON object with an \"activities\" array of activity names in order of priority.\n"+
			"Activities:\n%s",
		req.BudgetLevel, preferences, shortlist, candidates)

	content, err := s.generate(ctx, req, prompt)
	if err != nil {
		log.Printf("AI rerank degraded: %v", err)
		return acts
	}

	var parsed struct {
		Activities []string `json:"activities"`
	}
	if err := json.Unmarshal([]byte(content), &parsed); err != nil {
		log.Printf("AI rerank degraded: %v", err)
		return acts
	}

	byName := make(map[string]response_models.Activity, len(acts))
	for _, a := range acts {
		byName[a.Name] = a
	}

	// Names the model invented are dropped; only a fully empty result falls
	// back to the original order.
	reordered := make([]response_models.Activity, 0, len(parsed.Activities))
	for _, name := range parsed.Activities {
		if a, ok := byName[strings.TrimSpace(name)]; ok {
			reordered = append(reordered, a)
		}
	}
	if len(reordered) == 0 {
		return acts
	}
	return reordered
}

func (s *EnrichmentService) GenerateAdvice(ctx context.Context, req *request_models.TripRequest, summary string) *response_models.AIAdvice {
	if !req.AIEnabled() {
		return nil
	}

	userCtx := map[string]interface{}{
		"source":       req.Source,
		"destination":  req.Destination,
		"dates":        []string{req.DepartDate, req.ReturnDate},
		"days":         req.InferDays(),
		"travelers":    req.Travelers,
		"budget_level": req.BudgetLevel,
		"preferences":  req.Preferences,
		"summary":      summary,
	}
	ctxJSON, err := json.Marshal(userCtx)
	if err != nil {
		return nil
	}

	prompt := fmt.Sprintf(
		"Given this India trip context, produce concise, practical guidance. "+
			"Return strict JSON with keys: rationale (1 paragraph), must_do (5 bullets), local_foods (5), "+
			"safety_tips (5), packing_tips (5).\nCTX=%s", ctxJSON)

	content, err := s.generate(ctx, req, prompt)
	if err != nil {
		log.Printf("AI advice degraded: %v", err)
		return nil
	}

	var advice response_models.AIAdvice
	if err := json.Unmarshal([]byte(content), &advice); err != nil {
		log.Printf("AI advice degraded: %v", err)
		return nil
	}
	// All-or-nothing: a response missing any section is a schema violation.
	if advice.Rationale == "" || len(advice.MustDo) == 0 || len(advice.LocalFoods) == 0 ||
		len(advice.SafetyTips) == 0 || len(advice.PackingTips) == 0 {
		log.Printf("AI advice degraded: incomplete response")
		return nil
	}
	return &advice
}

func (s *EnrichmentService) GenerateNarrative(ctx context.Context, req *request_models.TripRequest, dayByDay []response_models.DayPlan) *response_models.AINarrative {
	if !req.AIEnabled() {
		return nil
	}

	daysJSON, err := json.Marshal(dayByDay)
	if err != nil {
		return nil
	}

	prompt := fmt.Sprintf(
		"Write a short motivating overview (4-6 sentences) and a list of 1 tip per day (<=25 words each). "+
			"Return JSON with keys: overview, day_tips (array).\nDAYS=%s", daysJSON)

	content, err := s.generate(ctx, req, prompt)
	if err != nil {
		log.Printf("AI narrative degraded: %v", err)
		return nil
	}

	var narrative response_models.AINarrative
	if err := json.Unmarshal([]byte(content), &narrative); err != nil {
		log.Printf("AI narrative degraded: %v", err)
		return nil
	}
	if narrative.Overview == "" {
		log.Printf("AI narrative degraded: incomplete response")
		return nil
	}
	return &narrative
}
