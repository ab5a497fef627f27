package services

import (
	"context"
	"errors"
	"testing"

	"tripwise/internal/models/request_models"
	"tripwise/internal/models/response_models"
)

type fakeLLMClient struct {
	response string
	err      error
	calls    int
}

func (f *fakeLLMClient) GenerateJSON(ctx context.Context, systemPrompt, userPrompt, model string, temperature float64) (string, error) {
	f.calls++
	return f.response, f.err
}

func enrichmentRequest(aiEnabled bool) *request_models.TripRequest {
	req := &request_models.TripRequest{
		Source:      "Kolkata",
		Destination: "Delhi",
		DepartDate:  "2026-11-20",
		ReturnDate:  "2026-11-24",
		Preferences: []string{"food", "history"},
		AI:          &request_models.AIConfig{Enabled: aiEnabled},
	}
	req.Normalize()
	return req
}

func sampleActivities() []response_models.Activity {
	return []response_models.Activity{
		{Name: "Alpha", Theme: []string{"food"}, EstCostINR: 100},
		{Name: "Beta", Theme: []string{"history"}, EstCostINR: 200},
		{Name: "Gamma", Theme: []string{"nature"}, EstCostINR: 300},
	}
}

func TestRerankActivitiesDisabled(t *testing.T) {
	llm := &fakeLLMClient{response: `{"activities":["Beta"]}`}
	svc := NewEnrichmentService(llm)

	acts := sampleActivities()
	got := svc.RerankActivities(context.Background(), enrichmentRequest(false), acts)

	if llm.calls != 0 {
		t.Errorf("LLM called %d times with AI disabled, want 0", llm.calls)
	}
	if len(got) != 3 || got[0].Name != "Alpha" {
		t.Errorf("disabled rerank changed order: %+v", got)
	}
}

func TestRerankActivitiesReorders(t *testing.T) {
	llm := &fakeLLMClient{response: `{"activities":["Gamma", " Alpha ", "Invented Place"]}`}
	svc := NewEnrichmentService(llm)

	got := svc.RerankActivities(context.Background(), enrichmentRequest(true), sampleActivities())

	if llm.calls != 1 {
		t.Fatalf("LLM called %d times, want 1", llm.calls)
	}
	if len(got) != 2 {
		t.Fatalf("got %d activities, want 2 (unknown names dropped)", len(got))
	}
	if got[0].Name != "Gamma" || got[1].Name != "Alpha" {
		t.Errorf("reranked order = [%s, %s], want [Gamma, Alpha]", got[0].Name, got[1].Name)
	}
	if got[0].EstCostINR != 300 {
		t.Errorf("rerank lost original metadata: cost = %d, want 300", got[0].EstCostINR)
	}
}

func TestRerankActivitiesFallsBack(t *testing.T) {
	tests := []struct {
		name string
		llm  *fakeLLMClient
	}{
		{"call error", &fakeLLMClient{err: errors.New("boom")}},
		{"invalid json", &fakeLLMClient{response: "not json"}},
		{"empty list", &fakeLLMClient{response: `{"activities":[]}`}},
		{"only invented names", &fakeLLMClient{response: `{"activities":["Nowhere"]}`}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewEnrichmentService(tt.llm)
			acts := sampleActivities()
			got := svc.RerankActivities(context.Background(), enrichmentRequest(true), acts)
			if len(got) != len(acts) {
				t.Fatalf("got %d activities, want original %d", len(got), len(acts))
			}
			for i := range acts {
				if got[i].Name != acts[i].Name {
					t.Errorf("got[%d] = %q, want original order %q", i, got[i].Name, acts[i].Name)
				}
			}
		})
	}
}

func TestGenerateAdvice(t *testing.T) {
	full := `{"rationale":"Balanced plan.","must_do":["a"],"local_foods":["b"],"safety_tips":["c"],"packing_tips":["d"]}`

	t.Run("disabled", func(t *testing.T) {
		llm := &fakeLLMClient{response: full}
		svc := NewEnrichmentService(llm)
		if got := svc.GenerateAdvice(context.Background(), enrichmentRequest(false), "summary"); got != nil {
			t.Errorf("advice = %+v, want nil when disabled", got)
		}
		if llm.calls != 0 {
			t.Errorf("LLM called %d times with AI disabled, want 0", llm.calls)
		}
	})

	t.Run("complete response", func(t *testing.T) {
		svc := NewEnrichmentService(&fakeLLMClient{response: full})
		got := svc.GenerateAdvice(context.Background(), enrichmentRequest(true), "summary")
		if got == nil {
			t.Fatal("expected advice")
		}
		if got.Rationale != "Balanced plan." || len(got.MustDo) != 1 {
			t.Errorf("advice = %+v", got)
		}
	})

	t.Run("missing section degrades to nil", func(t *testing.T) {
		partial := `{"rationale":"ok","must_do":["a"],"local_foods":["b"],"safety_tips":["c"]}`
		svc := NewEnrichmentService(&fakeLLMClient{response: partial})
		if got := svc.GenerateAdvice(context.Background(), enrichmentRequest(true), "summary"); got != nil {
			t.Errorf("advice = %+v, want nil for incomplete response", got)
		}
	})

	t.Run("call failure degrades to nil", func(t *testing.T) {
		svc := NewEnrichmentService(&fakeLLMClient{err: errors.New("boom")})
		if got := svc.GenerateAdvice(context.Background(), enrichmentRequest(true), "summary"); got != nil {
			t.Errorf("advice = %+v, want nil on call failure", got)
		}
	})
}

func TestGenerateNarrative(t *testing.T) {
	days := []response_models.DayPlan{{Day: 1}, {Day: 2}}

	t.Run("complete response", func(t *testing.T) {
		svc := NewEnrichmentService(&fakeLLMClient{response: `{"overview":"Great trip.","day_tips":["t1","t2"]}`})
		got := svc.GenerateNarrative(context.Background(), enrichmentRequest(true), days)
		if got == nil {
			t.Fatal("expected narrative")
		}
		if got.Overview != "Great trip." || len(got.DayTips) != 2 {
			t.Errorf("narrative = %+v", got)
		}
	})

	t.Run("missing overview degrades to nil", func(t *testing.T) {
		svc := NewEnrichmentService(&fakeLLMClient{response: `{"day_tips":["t1"]}`})
		if got := svc.GenerateNarrative(context.Background(), enrichmentRequest(true), days); got != nil {
			t.Errorf("narrative = %+v, want nil for incomplete response", got)
		}
	})

	t.Run("disabled", func(t *testing.T) {
		llm := &fakeLLMClient{response: `{"overview":"x"}`}
		svc := NewEnrichmentService(llm)
		if got := svc.GenerateNarrative(context.Background(), enrichmentRequest(false), days); got != nil {
			t.Errorf("narrative = %+v, want nil when disabled", got)
		}
		if llm.calls != 0 {
			t.Errorf("LLM called %d times with AI disabled, want 0", llm.calls)
		}
	})
}
