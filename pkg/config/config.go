package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

const (
	StudentSourceFile     = "file"
	StudentSourcePostgres = "postgres"
)

type Config struct {
	Server      ServerConfig
	Database    DatabaseConfig
	Knowledge   KnowledgeConfig
	Students    StudentsConfig
	Recognition RecognitionConfig
	Logger      LoggerConfig
}

type LoggerConfig struct {
	Level string `validate:"oneof=debug info warn error dpanic panic fatal"`
	// FilePath enables a rotating log file next to stdout output.
	FilePath   string
	MaxSizeMB  int `validate:"gte=1"`
	MaxBackups int `validate:"gte=0"`
}

type ServerConfig struct {
	Port         string `validate:"required,numeric"`
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	AllowOrigins string `validate:"required"`
	// StaticDir serves a web front end when set.
	StaticDir string
}

type DatabaseConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
	SSLMode  string

	MaxConns int32 `validate:"gte=1"`
	MinConns int32 `validate:"gte=0,ltefield=MaxConns"`
	// ConnectTimeout bounds dialing and the startup ping.
	ConnectTimeout time.Duration `validate:"gt=0"`
}

type KnowledgeConfig struct {
	Path string `validate:"required"`
}

type StudentsConfig struct {
	Source string `validate:"oneof=file postgres"`
	Path   string `validate:"required_if=Source file"`
}

type RecognitionConfig struct {
	Latency time.Duration `validate:"gte=0"`
	// Timeout bounds a whole recognition request and must exceed Latency.
	Timeout time.Duration `validate:"gtfield=Latency"`
	Seed    int64
}

func Load() (*Config, error) {
	// .env is optional; plain environment variables work too (Docker/K8s)
	envFiles := []string{".env", "../.env", "../../.env"}
	for _, envFile := range envFiles {
		if err := godotenv.Load(envFile); err == nil {
			break
		}
	}

	cfg := &Config{
		Server: ServerConfig{
			Port:         getEnv("SERVER_PORT", "5000"),
			ReadTimeout:  time.Duration(getEnvAsInt("SERVER_READ_TIMEOUT", 30)) * time.Second,
			WriteTimeout: time.Duration(getEnvAsInt("SERVER_WRITE_TIMEOUT", 30)) * time.Second,
			AllowOrigins: getEnv("CORS_ALLOW_ORIGINS", "*"),
			StaticDir:    getEnv("WEB_STATIC_DIR", ""),
		},
		Database: DatabaseConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnv("DB_PORT", "5432"),
			User:     getEnv("DB_USER", "postgres"),
			Password: getEnv("DB_PASSWORD", "postgres"),
			DBName:   getEnv("DB_NAME", "campusbot"),
			SSLMode:  getEnv("DB_SSLMODE", "disable"),

			MaxConns:       int32(getEnvAsInt("DB_MAX_CONNS", 10)),
			MinConns:       int32(getEnvAsInt("DB_MIN_CONNS", 0)),
			ConnectTimeout: time.Duration(getEnvAsInt("DB_CONNECT_TIMEOUT_SEC", 5)) * time.Second,
		},
		Knowledge: KnowledgeConfig{
			Path: getEnv("KNOWLEDGE_BASE_PATH", "data/knowledge.json"),
		},
		Students: StudentsConfig{
			Source: getEnv("STUDENT_SOURCE", StudentSourceFile),
			Path:   getEnv("STUDENT_DATA_PATH", "data/students.json"),
		},
		Recognition: RecognitionConfig{
			Latency: time.Duration(getEnvAsInt("RECOGNITION_LATENCY_MS", 1000)) * time.Millisecond,
			Timeout: time.Duration(getEnvAsInt("RECOGNITION_TIMEOUT_MS", 5000)) * time.Millisecond,
			Seed:    int64(getEnvAsInt("RANDOM_SEED", 0)),
		},
		Logger: LoggerConfig{
			Level:      getEnv("LOG_LEVEL", "info"),
			FilePath:   getEnv("LOG_FILE_PATH", ""),
			MaxSizeMB:  getEnvAsInt("LOG_MAX_SIZE_MB", 50),
			MaxBackups: getEnvAsInt("LOG_MAX_BACKUPS", 3),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks struct constraints and returns the first violation.
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	value, err := strconv.Atoi(getEnv(key, ""))
	if err != nil {
		return defaultValue
	}
	return value
}
