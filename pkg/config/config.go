package config

import (
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

type Config struct {
	App     AppConfig
	Server  ServerConfig
	Model   ModelConfig
	AWS     AWSConfig
	Storage StorageConfig
}

type AppConfig struct {
	Name        string
	Environment string
}

type ServerConfig struct {
	Port string
}

type ModelConfig struct {
	// Variant selects the schema: "laptop" or "credit".
	Variant      string `validate:"required,oneof=laptop credit"`
	ArtifactPath string `validate:"required"`
	MetadataPath string `validate:"required"`
}

type AWSConfig struct {
	Region string `validate:"required"`
}

type StorageConfig struct {
	Bucket string `validate:"required"`
	Prefix string
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		App: AppConfig{
			Name:        getEnv("APP_NAME", "Prediction Serving API"),
			Environment: getEnv("APP_ENV", "development"),
		},
		Server: ServerConfig{
			Port: getEnv("PORT", "8080"),
		},
		Model: ModelConfig{
			Variant:      getEnv("MODEL_VARIANT", "laptop"),
			ArtifactPath: getEnv("MODEL_PATH", "model/model.json"),
			MetadataPath: getEnv("MODEL_METADATA_PATH", "model/model_metadata.json"),
		},
		AWS: AWSConfig{
			Region: getEnv("AWS_REGION", "us-east-1"),
		},
		Storage: StorageConfig{
			Bucket: getEnv("LOG_BUCKET", ""),
			Prefix: getEnv("LOG_PREFIX", "quantum-finance-real-data"),
		},
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}

	return defaultVal
}
