package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/tailscale/hujson"
	"gopkg.in/yaml.v3"
)

var envTemplateRe = regexp.MustCompile(`\$\{\{\s*\.Env\.(\w+)\s*\}\}`)

// Load читает файл конфигурации, подставляет ${{ .Env.VAR }} и применяет
// значения по умолчанию. Файлы .yaml/.yml разбираются как YAML, остальные
// как JSONC. Отсутствующий файл даёт конфигурацию по умолчанию.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Default(), nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}

	expanded, err := expandEnvTemplates(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	var cfg Config
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(expanded, &cfg); err != nil {
			return nil, fmt.Errorf("unmarshal config: %w", err)
		}
	default:
		std, err := hujson.Standardize(expanded)
		if err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
		if err := json.Unmarshal(std, &cfg); err != nil {
			return nil, fmt.Errorf("unmarshal config: %w", err)
		}
	}

	applyDefaults(&cfg)
	return &cfg, nil
}

// Default возвращает конфигурацию со всеми значениями по умолчанию.
func Default() *Config {
	var cfg Config
	applyDefaults(&cfg)
	return &cfg
}

// expandEnvTemplates подставляет значения переменных окружения.
// Незаданная переменная - ошибка.
func expandEnvTemplates(data []byte) ([]byte, error) {
	var (
		out     []byte
		last    int
		missing []string
	)
	for _, m := range envTemplateRe.FindAllSubmatchIndex(data, -1) {
		name := string(data[m[2]:m[3]])
		value, ok := os.LookupEnv(name)
		if !ok {
			missing = append(missing, name)
		}
		out = append(out, data[last:m[0]]...)
		out = append(out, value...)
		last = m[1]
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("undefined env vars: %s", strings.Join(missing, ", "))
	}
	return append(out, data[last:]...), nil
}

func applyDefaults(cfg *Config) {
	if cfg.Storage.Backend == "" {
		cfg.Storage.Backend = "file"
	}
	if cfg.Storage.Key == "" {
		cfg.Storage.Key = "taskboard-tasks"
	}
	if cfg.Storage.Dir == "" {
		cfg.Storage.Dir = filepath.Join(DataPath(), "data")
	}
	if cfg.Storage.Backend == "sqlite" && cfg.Storage.DSN == "" {
		cfg.Storage.DSN = filepath.Join(DataPath(), "taskboard.db")
	}
	if cfg.Storage.RedisAddr == "" {
		cfg.Storage.RedisAddr = "localhost:6379"
	}
	if cfg.Storage.RedisPrefix == "" {
		cfg.Storage.RedisPrefix = "taskboard:"
	}
	if cfg.Storage.Timeout == 0 {
		cfg.Storage.Timeout = Duration(5 * time.Second)
	}
	if cfg.Board.PageSize <= 0 {
		cfg.Board.PageSize = 6
	}
	if cfg.Errors.DisplayDuration == 0 {
		cfg.Errors.DisplayDuration = Duration(5 * time.Second)
	}
}
