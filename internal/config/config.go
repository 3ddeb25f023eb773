// Package config loads the application configuration from YAML with
// environment overrides.
package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"

	"monreview/internal/monitor"
)

const defaultAPITimeout = 30 * time.Second
const defaultAPITimeoutSeconds = int(defaultAPITimeout / time.Second)

type Config struct {
	APIBaseURL        string `yaml:"api_base_url"`
	APITimeoutSeconds int    `yaml:"api_timeout_seconds"`

	DefaultSite string `yaml:"default_site"`

	// Reference backend settings (monitor-server).
	ListenAddr string `yaml:"listen_addr"`
	DBPath     string `yaml:"db_path"`
	DBThreads  int    `yaml:"db_threads"`
	DBMemoryGB int    `yaml:"db_memory_gb"`
}

// Load reads config.yaml (or $MONREVIEW_CONFIG), applies environment
// overrides, fills defaults and validates. Invalid configuration is fatal.
func Load() Config {
	var cfg Config

	configPath := "config.yaml"
	if envPath := os.Getenv("MONREVIEW_CONFIG"); envPath != "" {
		configPath = envPath
	}
	if data, err := os.ReadFile(configPath); err == nil {
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			log.Fatalf("Error parsing %s: %v", configPath, err)
		}
		log.Printf("Loaded config from %s", configPath)
	}

	envOverride(&cfg.APIBaseURL, "MONREVIEW_API_BASE_URL")
	envOverrideInt(&cfg.APITimeoutSeconds, "MONREVIEW_API_TIMEOUT_SECONDS")
	envOverride(&cfg.DefaultSite, "MONREVIEW_DEFAULT_SITE")
	envOverride(&cfg.ListenAddr, "MONREVIEW_LISTEN_ADDR")
	envOverride(&cfg.DBPath, "MONREVIEW_DB_PATH")
	envOverrideInt(&cfg.DBThreads, "MONREVIEW_DB_THREADS")
	envOverrideInt(&cfg.DBMemoryGB, "MONREVIEW_DB_MEMORY_GB")

	if cfg.APIBaseURL == "" {
		cfg.APIBaseURL = "http://localhost:8787"
	}
	if cfg.APITimeoutSeconds == 0 {
		cfg.APITimeoutSeconds = defaultAPITimeoutSeconds
	}
	if cfg.ListenAddr == "" {
		cfg.ListenAddr = ":8787"
	}
	if cfg.DBPath == "" {
		cfg.DBPath = "./monreview.db"
	}

	if cfg.APITimeoutSeconds < 1 {
		log.Fatalf("invalid api_timeout_seconds '%d': must be >= 1", cfg.APITimeoutSeconds)
	}
	if cfg.DefaultSite != "" && !monitor.Site(cfg.DefaultSite).Valid() {
		log.Fatalf("invalid default_site '%s': must be one of veeam, site24, sophos", cfg.DefaultSite)
	}
	if cfg.DBThreads < 0 {
		log.Fatalf("invalid db_threads '%d': must be >= 0", cfg.DBThreads)
	}
	if cfg.DBMemoryGB < 0 {
		log.Fatalf("invalid db_memory_gb '%d': must be >= 0", cfg.DBMemoryGB)
	}

	return cfg
}

// APITimeout returns the configured timeout as a duration.
func (c Config) APITimeout() time.Duration {
	return time.Duration(c.APITimeoutSeconds) * time.Second
}

func envOverride(field *string, envKey string) {
	if val := os.Getenv(envKey); val != "" {
		*field = val
	}
}

func envOverrideInt(field *int, envKey string) {
	if val := os.Getenv(envKey); val != "" {
		parsed, err := strconv.Atoi(val)
		if err != nil {
			log.Fatalf("invalid %s '%s': %v", envKey, val, err)
		}
		*field = parsed
	}
}
