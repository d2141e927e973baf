package common

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds all application configuration
type Config struct {
	Batch BatchConfig
	OCR   OCRConfig
	Store StoreConfig
}

// BatchConfig holds orchestrator-related configuration
type BatchConfig struct {
	Workers     int
	TaskTimeout time.Duration // 0 = no per-file timeout
}

// OCRConfig holds OCR-related configuration
type OCRConfig struct {
	Languages   []string
	PageSegMode int
	TessdataDir string
	ScaleFactor float64
}

// StoreConfig holds persistence-related configuration
type StoreConfig struct {
	TextsDir    string
	RecordsDir  string
	JournalPath string
}

// LoadConfig loads configuration from environment variables
func LoadConfig() *Config {
	return &Config{
		Batch: BatchConfig{
			Workers:     getEnvAsInt("BATCH_WORKERS", 8),
			TaskTimeout: getEnvAsDuration("BATCH_TASK_TIMEOUT", 0),
		},
		OCR: OCRConfig{
			Languages:   getEnvAsList("OCR_LANGUAGES", []string{"rus", "eng"}),
			PageSegMode: getEnvAsInt("OCR_PSM", 6),
			TessdataDir: getEnv("TESSDATA_PREFIX", ""),
			ScaleFactor: getEnvAsFloat("OCR_SCALE_FACTOR", 2.0),
		},
		Store: StoreConfig{
			TextsDir:    getEnv("TEXTS_DIR", "extracted_texts"),
			RecordsDir:  getEnv("RECORDS_DIR", "data/candidates"),
			JournalPath: getEnv("JOURNAL_PATH", ""),
		},
	}
}

// Helper functions for environment variable parsing
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvAsFloat(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatVal, err := strconv.ParseFloat(value, 64); err == nil {
			return floatVal
		}
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

func getEnvAsList(key string, defaultValue []string) []string {
	if value := os.Getenv(key); value != "" {
		parts := strings.Split(value, ",")
		out := make([]string, 0, len(parts))
		for _, p := range parts {
			if p = strings.TrimSpace(p); p != "" {
				out = append(out, p)
			}
		}
		if len(out) > 0 {
			return out
		}
	}
	return defaultValue
}

// Validate validates the loaded configuration
func (c *Config) Validate() error {
	if c.Batch.Workers <= 0 {
		return NewAppError("CONFIG_ERROR", "BATCH_WORKERS must be positive", ErrInvalidInput)
	}
	if len(c.OCR.Languages) == 0 {
		return NewAppError("CONFIG_ERROR", "OCR_LANGUAGES must not be empty", ErrInvalidInput)
	}
	if c.OCR.ScaleFactor <= 0 {
		return NewAppError("CONFIG_ERROR", "OCR_SCALE_FACTOR must be positive", ErrInvalidInput)
	}
	if c.Store.TextsDir == "" || c.Store.RecordsDir == "" {
		return NewAppError("CONFIG_ERROR", "TEXTS_DIR and RECORDS_DIR are required", ErrInvalidInput)
	}
	return nil
}
