package server

import (
	"net/http"
)

// DebugHandler предоставляет доступ к внутреннему состоянию сервиса
type DebugHandler struct {
	Service *Service
}

func NewDebugHandler(s *Service) *DebugHandler {
	return &DebugHandler{Service: s}
}

// RegisterRoutes регистрирует debug-эндпоинты
func (h *DebugHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("/debug/store", h.handleStore)
	mux.HandleFunc("/debug/resolver", h.handleResolver)
}

// /debug/store - сводка по стору и подписчикам
func (h *DebugHandler) handleStore(w http.ResponseWriter, r *http.Request) {
	type StoreSummary struct {
		ObjectCount     int    `json:"object_count"`
		LevelCount      int    `json:"level_count"`
		IssueCount      int    `json:"issue_count"`
		SubscriberCount int    `json:"subscriber_count"`
		SchemaSource    string `json:"schema_source"`
	}

	s := h.Service
	s.mu.Lock()
	summary := StoreSummary{
		ObjectCount:     s.Store.Len(),
		LevelCount:      len(s.Store.Levels()),
		IssueCount:      s.issueCount(),
		SubscriberCount: s.Hub.SubscriberCount(),
		SchemaSource:    string(s.SchemaSource),
	}
	s.mu.Unlock()

	writeJSON(w, http.StatusOK, summary)
}

// /debug/resolver - счётчик срабатываний fallback-тайла. Рост после правок
// контента означает дыру в покрытии тайлов.
func (h *DebugHandler) handleResolver(w http.ResponseWriter, r *http.Request) {
	type ResolverStats struct {
		FallbackID    string `json:"fallback_id"`
		FallbackCount int    `json:"fallback_count"`
	}

	s := h.Service
	s.mu.Lock()
	stats := ResolverStats{
		FallbackID:    s.Resolver.FallbackID,
		FallbackCount: s.Resolver.FallbackCount(),
	}
	s.mu.Unlock()

	writeJSON(w, http.StatusOK, stats)
}
