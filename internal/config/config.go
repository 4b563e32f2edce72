package config

import (
	"log"

	"github.com/caarlos0/env/v6"
)

type LLMProvider string

const (
	ProviderOpenAI LLMProvider = "openai"
	ProviderYandex LLMProvider = "yandex"
)

type Config struct {
	// Assistant server
	AssistantPort int    `env:"ASSISTANT_PORT" envDefault:"8080"`
	CompletionURL string `env:"COMPLETION_URL" envDefault:"http://localhost:8081/api/chat"`
	TurnLogPath   string `env:"TURN_LOG_PATH"`

	// Explanation server
	ExplanationPort  int         `env:"EXPLANATION_PORT" envDefault:"8081"`
	LLMProvider      LLMProvider `env:"LLM_PROVIDER" envDefault:"openai"`
	OpenAIAPIKey     string      `env:"OPENAI_API_KEY"`
	OpenAIBaseURL    string      `env:"OPENAI_BASE_URL"`
	OpenAIModel      string      `env:"OPENAI_MODEL" envDefault:"gpt-4o-mini"`
	MaxTokens        int         `env:"MAX_TOKENS" envDefault:"150"`
	Temperature      float32     `env:"TEMPERATURE" envDefault:"0.7"`
	YandexOAuthToken string      `env:"YANDEX_OAUTH_TOKEN"`
	YandexFolderID   string      `env:"YANDEX_FOLDER_ID"`

	// Prompts
	SystemPromptPath string `env:"SYSTEM_PROMPT_PATH"`
}

func New() *Config {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}
	return cfg
}
