package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	STORE_BACKEND_MEMORY  = "memory"
	STORE_BACKEND_ELASTIC = "elastic"

	ERROR_MODE_COMPAT = "compat"
	ERROR_MODE_STATUS = "status"
)

type Config struct {
	Host         string `yaml:"host"`
	Port         string `yaml:"port"`
	StoreBackend string `yaml:"storeBackend"`
	ElasticUrl   string `yaml:"elasticUrl"`
	ElasticIndex string `yaml:"elasticIndex"`
	RedisUrl     string `yaml:"redisUrl"`
	ActivitySize int    `yaml:"activitySize"`
	ErrorMode    string `yaml:"errorMode"`
	LogLevel     string `yaml:"logLevel"`
	GinMode      string `yaml:"ginMode"`
	PublicDir    string `yaml:"publicDir"`
}

func Default() Config {
	return Config{
		Port:         "3000",
		StoreBackend: STORE_BACKEND_MEMORY,
		ElasticUrl:   "http://127.0.0.1:9200",
		ElasticIndex: "books",
		ActivitySize: 3,
		ErrorMode:    ERROR_MODE_COMPAT,
		LogLevel:     "info",
	}
}

// Load reads the optional YAML file at path and then applies environment overrides.
// An empty path skips the file.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return cfg, fmt.Errorf("read config: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("parse config: %w", err)
		}
	}

	if err := applyEnv(&cfg); err != nil {
		return cfg, err
	}

	return cfg, cfg.Validate()
}

func applyEnv(cfg *Config) error {
	overrides := map[string]*string{
		"HOST":          &cfg.Host,
		"PORT":          &cfg.Port,
		"STORE_BACKEND": &cfg.StoreBackend,
		"ELASTIC_URL":   &cfg.ElasticUrl,
		"ELASTIC_INDEX": &cfg.ElasticIndex,
		"REDIS_URL":     &cfg.RedisUrl,
		"ERROR_MODE":    &cfg.ErrorMode,
		"LOG_LEVEL":     &cfg.LogLevel,
		"GIN_MODE":      &cfg.GinMode,
		"PUBLIC_DIR":    &cfg.PublicDir,
	}
	for key, field := range overrides {
		if v := strings.TrimSpace(os.Getenv(key)); v != "" {
			*field = v
		}
	}

	if v := strings.TrimSpace(os.Getenv("ACTIVITY_SIZE")); v != "" {
		size, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("parse ACTIVITY_SIZE: %w", err)
		}
		cfg.ActivitySize = size
	}

	return nil
}

func (cfg Config) Validate() error {
	switch cfg.StoreBackend {
	case STORE_BACKEND_MEMORY, STORE_BACKEND_ELASTIC:
	default:
		return fmt.Errorf("unknown store backend: %q (supported: memory, elastic)", cfg.StoreBackend)
	}

	switch cfg.ErrorMode {
	case ERROR_MODE_COMPAT, ERROR_MODE_STATUS:
	default:
		return fmt.Errorf("unknown error mode: %q (supported: compat, status)", cfg.ErrorMode)
	}

	if cfg.ActivitySize <= 0 {
		return errors.New("activity size must be positive")
	}

	if cfg.Port == "" {
		return errors.New("port is required")
	}

	return nil
}

func (cfg Config) Addr() string {
	return cfg.Host + ":" + cfg.Port
}
