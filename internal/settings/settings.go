package settings

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// Settings - параметры запуска редакторского бэкенда.
// Файл YAML опционален: без него работаем на дефолтах,
// переменные окружения перекрывают и то, и другое.
type Settings struct {
	Port            string `yaml:"port"`
	ContentPath     string `yaml:"content_path"`
	SchemaCachePath string `yaml:"schema_cache_path"`
	// Базовый URL игрового сервера (генератор карт и источник схемы)
	GameServerURL  string `yaml:"game_server_url"`
	FetchTimeoutMS int    `yaml:"fetch_timeout_ms"`
	// Следить ли за документом контента через fsnotify
	WatchContent bool `yaml:"watch_content"`
}

// Default возвращает настройки по умолчанию.
func Default() Settings {
	return Settings{
		Port:            "8081",
		ContentPath:     "game_content.json",
		SchemaCachePath: "schema_cache.json",
		GameServerURL:   "http://localhost:3000",
		FetchTimeoutMS:  2000,
		WatchContent:    true,
	}
}

// Load читает настройки из YAML-файла поверх дефолтов.
// Отсутствующий файл - не ошибка (путь по умолчанию может не существовать).
func Load(path string) (Settings, error) {
	s := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err == nil {
			if err := yaml.Unmarshal(data, &s); err != nil {
				return s, fmt.Errorf("malformed settings file %s: %w", path, err)
			}
		} else if !os.IsNotExist(err) {
			return s, err
		}
	}

	// Переменные окружения перекрывают файл. Нечитаемые числа/булевы
	// игнорируются - остается значение из файла или дефолт.
	if v := os.Getenv("AJD_PORT"); v != "" {
		s.Port = v
	}
	if v := os.Getenv("AJD_CONTENT_PATH"); v != "" {
		s.ContentPath = v
	}
	if v := os.Getenv("AJD_SCHEMA_CACHE_PATH"); v != "" {
		s.SchemaCachePath = v
	}
	if v := os.Getenv("AJD_GAME_SERVER_URL"); v != "" {
		s.GameServerURL = v
	}
	if v := os.Getenv("AJD_FETCH_TIMEOUT_MS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			s.FetchTimeoutMS = n
		}
	}
	if v := os.Getenv("AJD_WATCH_CONTENT"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			s.WatchContent = b
		}
	}

	return s, nil
}

// FetchTimeout возвращает таймаут запросов к игровому серверу.
func (s Settings) FetchTimeout() time.Duration {
	if s.FetchTimeoutMS <= 0 {
		return 2 * time.Second
	}
	return time.Duration(s.FetchTimeoutMS) * time.Millisecond
}

// SchemaURL возвращает полный URL эндпоинта схемы.
func (s Settings) SchemaURL() string {
	return s.GameServerURL + "/api/schema"
}
