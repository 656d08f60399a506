package config

import (
	"os"
	"path/filepath"
	"strings"
)

// Переменная окружения с корневым каталогом данных.
const pathEnv = "TASKBOARD_PATH"

// DataPath - корневой каталог данных taskboard: $TASKBOARD_PATH
// (ведущий "~" раскрывается в домашний каталог) или ~/.taskboard.
func DataPath() string {
	if v := os.Getenv(pathEnv); v != "" {
		return expandHome(v)
	}
	return expandHome(filepath.Join("~", ".taskboard"))
}

// ConfigPath - путь к файлу конфигурации по умолчанию.
func ConfigPath() string {
	return filepath.Join(DataPath(), "config.jsonc")
}

func DotenvPath() string {
	return filepath.Join(DataPath(), ".env")
}

func expandHome(p string) string {
	if p != "~" && !strings.HasPrefix(p, "~"+string(filepath.Separator)) {
		return p
	}
	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}
	return filepath.Join(home, strings.TrimPrefix(p, "~"))
}
