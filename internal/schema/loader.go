package schema

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/BuyMeAnIcecream/a-journey-in-the-dark/pkg/logger"
)

// Source - откуда была получена схема
type Source string

const (
	SourceCache   Source = "cache"
	SourceRemote  Source = "remote"
	SourceDefault Source = "default"
)

// Loader загружает схему в три этапа: локальный кеш, затем игровой сервер
// (с коротким таймаутом), затем зашитый дефолт. Первый успех побеждает.
// Удачный ответ сервера записывается в кеш для последующей офлайн-работы.
type Loader struct {
	CachePath string
	RemoteURL string // полный URL эндпоинта схемы, например http://localhost:3000/api/schema
	Client    *http.Client
}

func NewLoader(cachePath, remoteURL string, timeout time.Duration) *Loader {
	return &Loader{
		CachePath: cachePath,
		RemoteURL: remoteURL,
		Client:    &http.Client{Timeout: timeout},
	}
}

// Load никогда не падает: в худшем случае возвращает дефолтную схему
// и помечает процесс как работающий в деградированном режиме.
func (l *Loader) Load(ctx context.Context) (*Schema, Source) {
	if s, err := l.loadCache(); err == nil {
		logger.Log.WithField("path", l.CachePath).Debug("Schema loaded from local cache")
		return s, SourceCache
	}

	s, err := l.fetchRemote(ctx)
	if err == nil {
		l.persistCache(s)
		logger.Log.WithField("url", l.RemoteURL).Info("Schema loaded from game server")
		return s, SourceRemote
	}

	// Деградированный режим: schema unavailable - не фатально
	logger.Log.WithError(err).Warn("Schema unavailable, falling back to built-in default")
	return Default(), SourceDefault
}

func (l *Loader) loadCache() (*Schema, error) {
	if l.CachePath == "" {
		return nil, fmt.Errorf("no cache path configured")
	}
	data, err := os.ReadFile(l.CachePath)
	if err != nil {
		return nil, err
	}
	return parse(data)
}

func (l *Loader) fetchRemote(ctx context.Context) (*Schema, error) {
	if l.RemoteURL == "" {
		return nil, fmt.Errorf("no remote schema URL configured")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, l.RemoteURL, nil)
	if err != nil {
		return nil, err
	}

	resp, err := l.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("schema fetch failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("schema fetch failed: status %d", resp.StatusCode)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	return parse(data)
}

// persistCache пишет схему в кеш. Неудача не мешает работе, только Warn.
func (l *Loader) persistCache(s *Schema) {
	if l.CachePath == "" {
		return
	}
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		logger.Log.WithError(err).Warn("failed to marshal schema cache")
		return
	}
	if err := os.WriteFile(l.CachePath, data, 0644); err != nil {
		logger.Log.WithError(err).Warn("failed to write schema cache")
	}
}

func parse(data []byte) (*Schema, error) {
	var s Schema
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("malformed schema document: %w", err)
	}
	if len(s.Fields) == 0 {
		return nil, fmt.Errorf("schema document has no fields")
	}
	return &s, nil
}
