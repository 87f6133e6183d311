package config

import (
	"errors"
	"os"
	"strconv"
	"strings"
)

type Config struct {
	DatabaseURL          string
	RedisURL             string
	LogLevel             string
	Debug                bool
	ServiceName          string
	Environment          string
	Hostname             string
	ServerPort           string
	WorkerCount          int
	AllowedOrigins       []string
	OpenAIAPIKey         string
	OpenAIBaseURL        string
	OpenAIModel          string
	GeminiAPIKeys        []string
	GeminiFallbackModels []string
	DefaultProvider      string
	MaxConcurrency       int
	ProviderTimeoutSecs  int
}

func LoadConfig() (*Config, error) {
	databaseURL := os.Getenv("DATABASE_URL")
	if databaseURL == "" {
		return nil, errors.New("DATABASE_URL is required")
	}

	redisURL := os.Getenv("REDIS_URL")
	if redisURL == "" {
		return nil, errors.New("REDIS_URL is required")
	}

	openAIAPIKey := os.Getenv("OPENAI_API_KEY")
	if openAIAPIKey == "" {
		return nil, errors.New("OPENAI_API_KEY is required")
	}

	geminiAPIKeys := splitAndTrim(os.Getenv("GEMINI_API_KEYS"))
	if len(geminiAPIKeys) == 0 {
		return nil, errors.New("GEMINI_API_KEYS is required (comma-separated)")
	}

	openAIBaseURL := os.Getenv("OPENAI_BASE_URL")
	if openAIBaseURL == "" {
		openAIBaseURL = "https://api.openai.com/v1"
	}

	openAIModel := os.Getenv("OPENAI_MODEL")
	if openAIModel == "" {
		openAIModel = "gpt-4o"
	}

	geminiFallbackModels := splitAndTrim(os.Getenv("GEMINI_FALLBACK_MODELS"))
	if len(geminiFallbackModels) == 0 {
		geminiFallbackModels = []string{"gemini-2.0-flash", "gemini-1.5-pro", "gemini-1.5-flash"}
	}

	defaultProvider := os.Getenv("DEFAULT_PROVIDER")
	if defaultProvider == "" {
		defaultProvider = "gemini"
	}

	allowedOrigins := []string{"*"}
	if ao := splitAndTrim(os.Getenv("ALLOWED_ORIGINS")); len(ao) > 0 {
		allowedOrigins = ao
	}

	logLevel := os.Getenv("LOG_LEVEL")
	if logLevel == "" {
		logLevel = "info"
	}

	debug := os.Getenv("DEBUG")
	if debug == "" {
		debug = "false"
	}

	serviceName := os.Getenv("SERVICE_NAME")
	if serviceName == "" {
		serviceName = "episodic"
	}

	hostname := os.Getenv("HOSTNAME")
	if hostname == "" {
		hostname = "episodic"
	}

	environment := os.Getenv("ENVIRONMENT")
	if environment == "" {
		environment = "development"
	}

	serverPort := os.Getenv("SERVER_PORT")
	if serverPort == "" {
		serverPort = "8080"
	}

	workerCount := 10 // default value
	if wc := os.Getenv("WORKER_COUNT"); wc != "" {
		if parsed, err := strconv.Atoi(wc); err == nil {
			workerCount = parsed
		}
	}

	maxConcurrency := 8 // default value
	if mc := os.Getenv("MAX_CONCURRENCY"); mc != "" {
		if parsed, err := strconv.Atoi(mc); err == nil && parsed > 0 {
			maxConcurrency = parsed
		}
	}

	providerTimeoutSecs := 60 // default value
	if pt := os.Getenv("PROVIDER_TIMEOUT_SECONDS"); pt != "" {
		if parsed, err := strconv.Atoi(pt); err == nil && parsed > 0 {
			providerTimeoutSecs = parsed
		}
	}

	return &Config{
		DatabaseURL:          databaseURL,
		RedisURL:             redisURL,
		LogLevel:             logLevel,
		Debug:                debug == "true",
		ServiceName:          serviceName,
		Environment:          environment,
		Hostname:             hostname,
		ServerPort:           serverPort,
		WorkerCount:          workerCount,
		AllowedOrigins:       allowedOrigins,
		OpenAIAPIKey:         openAIAPIKey,
		OpenAIBaseURL:        openAIBaseURL,
		OpenAIModel:          openAIModel,
		GeminiAPIKeys:        geminiAPIKeys,
		GeminiFallbackModels: geminiFallbackModels,
		DefaultProvider:      defaultProvider,
		MaxConcurrency:       maxConcurrency,
		ProviderTimeoutSecs:  providerTimeoutSecs,
	}, nil
}

// splitAndTrim splits a comma-separated env value into non-empty trimmed parts.
func splitAndTrim(value string) []string {
	if value == "" {
		return nil
	}
	var parts []string
	for _, p := range strings.Split(value, ",") {
		p = strings.TrimSpace(p)
		if p != "" {
			parts = append(parts, p)
		}
	}
	return parts
}
