package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

type Config struct {
	DatabaseURL string `validate:"required"`
	Port        string `validate:"required,numeric"`

	// Resume storage: "local" keeps files under UploadsDir, "s3" uses the bucket.
	BlobBackend string `validate:"oneof=local s3"`
	UploadsDir  string `validate:"required_if=BlobBackend local"`
	S3Bucket    string `validate:"required_if=BlobBackend s3"`
	S3Endpoint  string `validate:"omitempty,url"`
	S3Region    string
	S3AccessKey string
	S3SecretKey string

	// LLM Configuration (person-name recognition)
	LLMProvider string `validate:"oneof=none openai groq ollama gemini"`
	LLMModel    string
	LLMAPIKey   string `validate:"required_if=LLMProvider openai,required_if=LLMProvider groq,required_if=LLMProvider gemini"`
	OllamaURL   string `validate:"omitempty,url"`
	LLMRPM      int    `validate:"gte=0"`

	OCREnabled bool
	OCRTimeout time.Duration `validate:"gt=0"`
	OCRDPI     int           `validate:"gte=72,lte=1200"`

	PhonePattern string

	// Optional AMQP feed of re-parse requests.
	RabbitMQURL string `validate:"omitempty,url"`
	ParseQueue  string `validate:"required"`

	LogLevel  string `validate:"omitempty,oneof=debug info warn error DEBUG INFO WARN ERROR"`
	LogFormat string `validate:"omitempty,oneof=text json"`
}

var defaultModels = map[string]string{
	"openai": "gpt-4o-mini",
	"groq":   "llama-3.3-70b-versatile",
	"ollama": "llama3.1",
	"gemini": "gemini-1.5-flash",
}

// LoadEnv loads .env from the working directory, falling back to the
// repository root when run from cmd/<name>.
func LoadEnv() {
	if err := godotenv.Load(); err != nil {
		if err := godotenv.Load("../../.env"); err != nil {
			slog.Debug("no .env file found, using environment variables")
		}
	}
}

// LoadConfig reads the environment (after LoadEnv) and validates it.
func LoadConfig() (*Config, error) {
	LoadEnv()
	return FromEnv(os.Getenv)
}

// FromEnv builds a Config from a lookup function.
func FromEnv(getenv func(string) string) (*Config, error) {
	get := func(key, def string) string {
		if v := strings.TrimSpace(getenv(key)); v != "" {
			return v
		}
		return def
	}

	provider := strings.ToLower(get("LLM_PROVIDER", "none"))
	apiKey := ""
	switch provider {
	case "openai":
		apiKey = get("OPENAI_API_KEY", "")
	case "groq":
		apiKey = get("GROQ_API_KEY", "")
	case "gemini":
		apiKey = get("GEMINI_API_KEY", "")
	}

	llmRPM, err := strconv.Atoi(get("LLM_RPM", "60"))
	if err != nil {
		return nil, fmt.Errorf("LLM_RPM: %w", err)
	}

	ocrTimeout, err := time.ParseDuration(get("OCR_TIMEOUT", "2m"))
	if err != nil {
		return nil, fmt.Errorf("OCR_TIMEOUT: %w", err)
	}
	ocrDPI, err := strconv.Atoi(get("OCR_DPI", "300"))
	if err != nil {
		return nil, fmt.Errorf("OCR_DPI: %w", err)
	}
	ocrEnabled, err := strconv.ParseBool(get("OCR_ENABLED", "true"))
	if err != nil {
		return nil, fmt.Errorf("OCR_ENABLED: %w", err)
	}

	cfg := &Config{
		DatabaseURL:  get("DATABASE_URL", "sqlite://cv-intake.db"),
		Port:         get("PORT", "8080"),
		BlobBackend:  strings.ToLower(get("BLOB_BACKEND", "local")),
		UploadsDir:   get("UPLOADS_DIR", "uploads"),
		S3Bucket:     get("S3_BUCKET", ""),
		S3Endpoint:   get("S3_ENDPOINT", ""),
		S3Region:     get("S3_REGION", "auto"),
		S3AccessKey:  get("S3_ACCESS_KEY", ""),
		S3SecretKey:  get("S3_SECRET_KEY", ""),
		LLMProvider:  provider,
		LLMModel:     get("LLM_MODEL", defaultModels[provider]),
		LLMAPIKey:    apiKey,
		OllamaURL:    get("OLLAMA_URL", "http://localhost:11434"),
		LLMRPM:       llmRPM,
		OCREnabled:   ocrEnabled,
		OCRTimeout:   ocrTimeout,
		OCRDPI:       ocrDPI,
		PhonePattern: get("PHONE_PATTERN", ""),
		RabbitMQURL:  get("RABBITMQ_URL", ""),
		ParseQueue:   get("PARSE_QUEUE", "resume_parse"),
		LogLevel:     get("LOG_LEVEL", "info"),
		LogFormat:    strings.ToLower(get("LOG_FORMAT", "text")),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// ValidationError lists every invalid setting.
type ValidationError struct {
	Fields []string
}

func (e *ValidationError) Error() string {
	return "invalid configuration: " + strings.Join(e.Fields, "; ")
}

var validate = validator.New()

func (c *Config) Validate() error {
	err := validate.Struct(c)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	out := &ValidationError{}
	for _, fe := range verrs {
		out.Fields = append(out.Fields, fmt.Sprintf("%s failed %q", fe.Field(), fe.Tag()))
	}
	return out
}
