// Package config загружает настройки taskboard из файла JSONC или YAML.
package config

import (
	"time"

	"gopkg.in/yaml.v3"
)

// Config - корневая конфигурация.
type Config struct {
	Storage StorageConfig `json:"storage" yaml:"storage"`
	Board   BoardConfig   `json:"board" yaml:"board"`
	Errors  ErrorsConfig  `json:"errors" yaml:"errors"`
}

// StorageConfig выбирает и настраивает key-value хранилище.
type StorageConfig struct {
	Backend     string   `json:"backend" yaml:"backend"` // "memory", "file", "postgres", "mysql", "sqlite", "redis"
	Key         string   `json:"key" yaml:"key"`
	Dir         string   `json:"dir,omitempty" yaml:"dir,omitempty"`
	DSN         string   `json:"dsn,omitempty" yaml:"dsn,omitempty"`
	RedisAddr   string   `json:"redis_addr,omitempty" yaml:"redis_addr,omitempty"`
	RedisDB     int      `json:"redis_db,omitempty" yaml:"redis_db,omitempty"`
	RedisPrefix string   `json:"redis_prefix,omitempty" yaml:"redis_prefix,omitempty"`
	QuotaBytes  int      `json:"quota_bytes,omitempty" yaml:"quota_bytes,omitempty"`
	Timeout     Duration `json:"timeout,omitempty" yaml:"timeout,omitempty"`
}

// BoardConfig - настройки постраничного списка.
type BoardConfig struct {
	PageSize int `json:"page_size" yaml:"page_size"`
}

// ErrorsConfig - время показа уведомления об ошибке.
type ErrorsConfig struct {
	DisplayDuration Duration `json:"display_duration" yaml:"display_duration"`
}

// Duration - time.Duration, записываемый строкой вида "5s" в JSON и YAML.
type Duration time.Duration

func (d Duration) Duration() time.Duration {
	return time.Duration(d)
}

func (d *Duration) UnmarshalJSON(b []byte) error {
	s := string(b)
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		s = s[1 : len(s)-1]
	}
	dur, err := time.ParseDuration(s)
	if err != nil {
		return err
	}
	*d = Duration(dur)
	return nil
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return []byte(`"` + time.Duration(d).String() + `"`), nil
}

func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	dur, err := time.ParseDuration(s)
	if err != nil {
		return err
	}
	*d = Duration(dur)
	return nil
}
