package config

import (
	"os"
	"strconv"
	"strings"
)

// Store and blob backend names
const (
	StoreFirestore = "firestore"
	StorePostgres  = "postgres"
	StoreMemory    = "memory"

	BlobGCS    = "gcs"
	BlobMemory = "memory"
)

// Config holds all configuration for the application
type Config struct {
	// Google Cloud
	ProjectID string
	Location  string

	// LLM providers
	GeminiAPIKey   string
	GeminiModel    string
	GeminiBaseURL  string
	EmbeddingModel string
	GroqAPIKey     string
	GroqModel      string
	GroqBaseURL    string
	ProviderOrder  []string

	// Public API
	APISecret string
	AppURL    string

	// Server
	Port               string
	Debug              bool
	HTTPTimeoutSeconds int
	MaxUploadMB        int

	// Persistence
	StoreBackend         string
	DatabaseURL          string
	CandidatesCollection string
	BlobBackend          string
	ResumeBucket         string
	AvatarBucket         string
	RedisURL             string

	// Logging
	LogLevel      string
	LogFormat     string
	LogFile       string
	LogMaxSize    int
	LogMaxBackups int
	LogMaxAge     int
}

// Load loads configuration from environment variables
func Load() *Config {
	cfg := &Config{
		// Google Cloud
		ProjectID: getEnv("PROJECT_ID", ""),
		Location:  getEnv("LOCATION", "us-central1"),

		// LLM providers
		GeminiAPIKey:   getEnv("GEMINI_API_KEY", ""),
		GeminiModel:    getEnv("GEMINI_MODEL", "gemini-2.0-flash"),
		GeminiBaseURL:  getEnv("GEMINI_BASE_URL", "https://generativelanguage.googleapis.com/v1beta"),
		EmbeddingModel: getEnv("EMBEDDING_MODEL", "text-embedding-004"),
		GroqAPIKey:     getEnv("GROQ_API_KEY", ""),
		GroqModel:      getEnv("GROQ_MODEL", "llama-3.3-70b-versatile"),
		GroqBaseURL:    getEnv("GROQ_BASE_URL", "https://api.groq.com/openai/v1"),
		ProviderOrder:  getEnvList("PROVIDER_ORDER", []string{"gemini", "groq"}),

		// Public API
		APISecret: getEnv("API_SECRET", ""),
		AppURL:    getEnv("NEXT_PUBLIC_APP_URL", getEnv("APP_URL", "http://localhost:3000")),

		// Server
		Port:               getEnv("PORT", "8080"),
		Debug:              getEnvBool("DEBUG", false),
		HTTPTimeoutSeconds: getEnvInt("HTTP_TIMEOUT_SECONDS", 60),
		MaxUploadMB:        getEnvInt("MAX_UPLOAD_MB", 10),

		// Persistence
		StoreBackend:         strings.ToLower(getEnv("STORE_BACKEND", StoreMemory)),
		DatabaseURL:          getEnv("DATABASE_URL", ""),
		CandidatesCollection: getEnv("CANDIDATES_COLLECTION", "candidates"),
		BlobBackend:          strings.ToLower(getEnv("BLOB_BACKEND", BlobMemory)),
		ResumeBucket:         getEnv("RESUME_BUCKET", "resumes"),
		AvatarBucket:         getEnv("AVATAR_BUCKET", "avatars"),
		RedisURL:             getEnv("REDIS_URL", ""),

		// Logging
		LogLevel:      getEnv("LOG_LEVEL", ""),
		LogFormat:     getEnv("LOG_FORMAT", ""),
		LogFile:       getEnv("LOG_FILE", ""),
		LogMaxSize:    getEnvInt("LOG_MAX_SIZE", 100),
		LogMaxBackups: getEnvInt("LOG_MAX_BACKUPS", 7),
		LogMaxAge:     getEnvInt("LOG_MAX_AGE", 7),
	}

	return cfg
}

// Validate checks if required configuration is present
func (c *Config) Validate() error {
	switch c.StoreBackend {
	case StoreFirestore:
		if c.ProjectID == "" {
			return &ConfigError{Field: "PROJECT_ID", Message: "PROJECT_ID is required for the firestore store backend"}
		}
	case StorePostgres:
		if c.DatabaseURL == "" {
			return &ConfigError{Field: "DATABASE_URL", Message: "DATABASE_URL is required for the postgres store backend"}
		}
	case StoreMemory:
	default:
		return &ConfigError{Field: "STORE_BACKEND", Message: "STORE_BACKEND must be one of firestore, postgres, memory"}
	}

	switch c.BlobBackend {
	case BlobGCS:
		if c.ResumeBucket == "" || c.AvatarBucket == "" {
			return &ConfigError{Field: "RESUME_BUCKET", Message: "RESUME_BUCKET and AVATAR_BUCKET are required for the gcs blob backend"}
		}
	case BlobMemory:
	default:
		return &ConfigError{Field: "BLOB_BACKEND", Message: "BLOB_BACKEND must be one of gcs, memory"}
	}

	if c.MaxUploadMB <= 0 {
		return &ConfigError{Field: "MAX_UPLOAD_MB", Message: "MAX_UPLOAD_MB must be positive"}
	}

	return nil
}

// Gemini backends
const (
	GeminiVertex = "vertex"
	GeminiAPI    = "api"
)

// GeminiMode picks the Gemini backend: Vertex AI when a project is set,
// the Generative Language API when only GEMINI_API_KEY is set, else "".
// An API key cannot authenticate against a Vertex resource path.
func (c *Config) GeminiMode() string {
	switch {
	case c.ProjectID != "":
		return GeminiVertex
	case c.GeminiAPIKey != "":
		return GeminiAPI
	default:
		return ""
	}
}

// GeminiEnabled reports whether the Gemini provider can be constructed
func (c *Config) GeminiEnabled() bool {
	return c.GeminiMode() != ""
}

// GroqEnabled reports whether the Groq provider can be constructed
func (c *Config) GroqEnabled() bool {
	return c.GroqAPIKey != ""
}

// ConfigError represents a configuration error
type ConfigError struct {
	Field   string
	Message string
}

func (e *ConfigError) Error() string {
	return e.Message
}

// Helper functions

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.ParseBool(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.Atoi(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}

func getEnvList(key string, defaultValue []string) []string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	var items []string
	for _, item := range strings.Split(value, ",") {
		if item = strings.ToLower(strings.TrimSpace(item)); item != "" {
			items = append(items, item)
		}
	}
	if len(items) == 0 {
		return defaultValue
	}
	return items
}
