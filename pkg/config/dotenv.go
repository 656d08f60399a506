package config

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// LoadDotenv читает .env и выставляет переменные окружения, которых ещё нет.
// Отсутствующий файл не ошибка. Уже заданные переменные не перезаписываются.
func LoadDotenv(path string) error {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("open dotenv: %w", err)
	}
	defer f.Close()

	pairs, err := parseDotenv(f)
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	for _, kv := range pairs {
		if _, exists := os.LookupEnv(kv[0]); !exists {
			if err := os.Setenv(kv[0], kv[1]); err != nil {
				return fmt.Errorf("set %s: %w", kv[0], err)
			}
		}
	}
	return nil
}

// parseDotenv разбирает строки KEY=VALUE в порядке файла.
// Значения без кавычек и в двойных кавычках раскрывают $VAR и ${VAR}
// (сначала по уже прочитанным ключам, затем по окружению), в одинарных
// кавычках берутся как есть. У значений без кавычек отрезается " #комментарий".
func parseDotenv(r io.Reader) ([][2]string, error) {
	var (
		pairs [][2]string
		seen  = map[string]string{}
	)
	lookup := func(name string) string {
		if v, ok := seen[name]; ok {
			return v
		}
		return os.Getenv(name)
	}

	scanner := bufio.NewScanner(r)
	for n := 1; scanner.Scan(); n++ {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		line = strings.TrimPrefix(line, "export ")

		key, raw, ok := strings.Cut(line, "=")
		key = strings.TrimSpace(key)
		if !ok || key == "" || strings.ContainsAny(key, " \t") {
			return nil, fmt.Errorf("line %d: expected KEY=VALUE", n)
		}

		raw = strings.TrimSpace(raw)
		var value string
		switch {
		case len(raw) >= 2 && raw[0] == '\'' && raw[len(raw)-1] == '\'':
			value = raw[1 : len(raw)-1]
		case len(raw) >= 2 && raw[0] == '"' && raw[len(raw)-1] == '"':
			value = os.Expand(raw[1:len(raw)-1], lookup)
		default:
			if i := strings.Index(raw, " #"); i >= 0 {
				raw = strings.TrimSpace(raw[:i])
			}
			value = os.Expand(raw, lookup)
		}

		seen[key] = value
		pairs = append(pairs, [2]string{key, value})
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return pairs, nil
}
