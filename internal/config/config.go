// internal/config/config.go

package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds all application configuration
type Config struct {
	Environment string
	Server      ServerConfig
	NATS        NATSConfig
	Synth       SynthConfig
	Analysis    AnalysisConfig
	Snapshot    SnapshotConfig
}

// ServerConfig holds the read-only API server configuration
type ServerConfig struct {
	Enabled         bool
	Host            string
	Port            int
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	ShutdownTimeout time.Duration
	CorsOrigins     []string
}

// NATSConfig holds event bus configuration. An empty URL disables
// publishing entirely.
type NATSConfig struct {
	URL            string
	MaxReconnects  int
	ReconnectWait  time.Duration
	ConnectTimeout time.Duration
	EventsTopic    string
}

// SynthConfig holds corpus synthesis configuration. When ImportPath is set
// the pipeline ingests an externally collected record snapshot instead of
// synthesizing one.
type SynthConfig struct {
	Seed       int64
	ImportPath string
}

// AnalysisConfig holds the comparison periods and rule thresholds
type AnalysisConfig struct {
	EarlierPeriod             string
	LaterPeriod               string
	HotspotSentimentThreshold float64
	SentimentDeltaThreshold   float64
}

// SnapshotConfig holds flat snapshot export configuration
type SnapshotConfig struct {
	Dir string
}

// Load loads configuration from environment variables
func Load() (Config, error) {
	config := Config{
		Environment: getEnv("APP_ENV", "development"),
		Server: ServerConfig{
			Enabled:         getEnvAsBool("SERVER_ENABLED", false),
			Host:            getEnv("SERVER_HOST", "0.0.0.0"),
			Port:            getEnvAsInt("SERVER_PORT", 8080),
			ReadTimeout:     getEnvAsDuration("SERVER_READ_TIMEOUT", 10*time.Second),
			WriteTimeout:    getEnvAsDuration("SERVER_WRITE_TIMEOUT", 10*time.Second),
			ShutdownTimeout: getEnvAsDuration("SERVER_SHUTDOWN_TIMEOUT", 10*time.Second),
			CorsOrigins:     getEnvAsSlice("SERVER_CORS_ORIGINS", []string{"*"}),
		},
		NATS: NATSConfig{
			URL:            getEnv("NATS_URL", ""),
			MaxReconnects:  getEnvAsInt("NATS_MAX_RECONNECTS", 10),
			ReconnectWait:  getEnvAsDuration("NATS_RECONNECT_WAIT", 1*time.Second),
			ConnectTimeout: getEnvAsDuration("NATS_CONNECT_TIMEOUT", 2*time.Second),
			EventsTopic:    getEnv("NATS_EVENTS_TOPIC", "analysis.run"),
		},
		Synth: SynthConfig{
			Seed:       getEnvAsInt64("SYNTH_SEED", 1),
			ImportPath: getEnv("SYNTH_IMPORT_PATH", ""),
		},
		Analysis: AnalysisConfig{
			EarlierPeriod:             getEnv("ANALYSIS_EARLIER_PERIOD", "2024"),
			LaterPeriod:               getEnv("ANALYSIS_LATER_PERIOD", "2025"),
			HotspotSentimentThreshold: getEnvAsFloat("ANALYSIS_HOTSPOT_THRESHOLD", -0.5),
			SentimentDeltaThreshold:   getEnvAsFloat("ANALYSIS_DELTA_THRESHOLD", -0.1),
		},
		Snapshot: SnapshotConfig{
			Dir: getEnv("SNAPSHOT_DIR", "data/comparative"),
		},
	}

	return config, validate(config)
}

// validate checks if config is valid. Threshold misconfiguration surfaces
// immediately instead of defaulting silently.
func validate(config Config) error {
	if config.Analysis.EarlierPeriod == "" || config.Analysis.LaterPeriod == "" {
		return fmt.Errorf("both comparison periods must be set")
	}
	if config.Analysis.EarlierPeriod == config.Analysis.LaterPeriod {
		return fmt.Errorf("comparison periods must be distinct")
	}
	if config.Analysis.HotspotSentimentThreshold >= 0 {
		return fmt.Errorf("hotspot sentiment threshold must be negative, got %f", config.Analysis.HotspotSentimentThreshold)
	}
	if config.Analysis.SentimentDeltaThreshold >= 0 {
		return fmt.Errorf("sentiment delta threshold must be negative, got %f", config.Analysis.SentimentDeltaThreshold)
	}
	if config.Snapshot.Dir == "" {
		return fmt.Errorf("snapshot directory must be set")
	}

	return nil
}

// Helper functions

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := getEnv(key, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsInt64(key string, defaultValue int64) int64 {
	valueStr := getEnv(key, "")
	if value, err := strconv.ParseInt(valueStr, 10, 64); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsFloat(key string, defaultValue float64) float64 {
	valueStr := getEnv(key, "")
	if value, err := strconv.ParseFloat(valueStr, 64); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	valueStr := getEnv(key, "")
	if value, err := strconv.ParseBool(valueStr); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	valueStr := getEnv(key, "")
	if value, err := time.ParseDuration(valueStr); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsSlice(key string, defaultValue []string) []string {
	valueStr := getEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}
	return strings.Split(valueStr, ",")
}
