package ai_fx

import (
	"log"
	"os"
	"strings"

	"go.uber.org/fx"

	"tripwise/internal/api/controllers"
	"tripwise/pkg/utils"
)

var Module = fx.Provide(
	ProvideLLMClient,
	ProvideAIStatus,
)

type llmConfig struct {
	Provider string
	APIKey   string
	Model    string
}

func getLLMConfig() llmConfig {
	provider := getEnvWithDefault("AI_PROVIDER", "openai")

	var apiKey, model string
	switch strings.ToLower(provider) {
	case "openai":
		apiKey = os.Getenv("OPENAI_API_KEY")
		model = getEnvWithDefault("OPENAI_MODEL", "gpt-4o-mini")
	case "gemini":
		apiKey = os.Getenv("GEMINI_API_KEY")
		model = getEnvWithDefault("GEMINI_MODEL", "gemini-2.0-flash")
	}

	return llmConfig{Provider: provider, APIKey: apiKey, Model: model}
}

// ProvideLLMClient builds the LLM client from environment configuration.
// A missing credential does not block startup: the heuristic pipeline keeps
// working and enrichment calls degrade to their fallbacks.
func ProvideLLMClient() (utils.LLMClientInterface, error) {
	cfg := getLLMConfig()

	if cfg.APIKey == "" {
		log.Printf("No API key configured for provider %s; AI enrichment will degrade to fallbacks", cfg.Provider)
		return &utils.UnavailableLLMClient{Reason: "no API key configured for provider " + cfg.Provider}, nil
	}

	log.Printf("Initializing %s LLM client with model: %s", cfg.Provider, cfg.Model)
	return utils.NewLLMClient(cfg.Provider, cfg.APIKey, cfg.Model)
}

func ProvideAIStatus() controllers.AIStatus {
	cfg := getLLMConfig()
	return controllers.AIStatus{
		Provider:      cfg.Provider,
		DefaultModel:  cfg.Model,
		HasCredential: cfg.APIKey != "",
	}
}

func getEnvWithDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
