package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/BuyMeAnIcecream/a-journey-in-the-dark/internal/content"
	"github.com/BuyMeAnIcecream/a-journey-in-the-dark/internal/domain"
	"github.com/BuyMeAnIcecream/a-journey-in-the-dark/internal/generator"
	"github.com/BuyMeAnIcecream/a-journey-in-the-dark/internal/version"
	"github.com/BuyMeAnIcecream/a-journey-in-the-dark/pkg/logger"
)

type Server struct {
	Service *Service
	Port    string
}

func New(service *Service, port string) *Server {
	return &Server{
		Service: service,
		Port:    port,
	}
}

// Run запускает HTTP сервер
func (s *Server) Run() error {
	mux := http.NewServeMux()

	// Регистрируем роуты
	mux.HandleFunc("/health", enableCORS(s.handleHealth))
	mux.HandleFunc("/version", enableCORS(s.handleVersion))
	mux.HandleFunc("/api/schema", enableCORS(s.handleSchema))
	mux.HandleFunc("/api/objects", enableCORS(s.handleObjects))
	mux.HandleFunc("/api/levels", enableCORS(s.handleLevels))
	mux.HandleFunc("/api/validate", enableCORS(s.handleValidate))
	mux.HandleFunc("/api/fix", enableCORS(s.handleFix))
	mux.HandleFunc("/api/save", enableCORS(s.handleSave))
	mux.HandleFunc("/api/composite", enableCORS(s.handleComposite))
	mux.HandleFunc("/ws", enableCORS(s.handleWS))

	debugHandler := NewDebugHandler(s.Service)
	debugHandler.RegisterRoutes(mux)

	logger.Log.Infof("🗺️  Content editor backend running on :%s", s.Port)
	return http.ListenAndServe(":"+s.Port, mux)
}

func enableCORS(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		// Разрешаем запросы с фронтенда редактора
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		next(w, r)
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Log.WithError(err).Warn("failed to encode response")
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte("ok")); err != nil {
		logger.Log.WithError(err).Debug("health write failed")
	}
}

func (s *Server) handleVersion(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, version.Info())
}

// handleSchema отдает активную схему полей (для форм редактора)
func (s *Server) handleSchema(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.Service.Schema)
}

func (s *Server) handleObjects(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		writeJSON(w, http.StatusOK, map[string]any{
			"game_objects": s.Service.Objects(),
		})

	case http.MethodPost, http.MethodPut:
		var obj domain.GameObject
		if err := json.NewDecoder(r.Body).Decode(&obj); err != nil {
			writeError(w, http.StatusBadRequest, "malformed object: "+err.Error())
			return
		}
		if obj.ID == "" {
			writeError(w, http.StatusBadRequest, "object id is required")
			return
		}

		var (
			saved *domain.GameObject
			err   error
		)
		if r.Method == http.MethodPost {
			saved, err = s.Service.AddObject(&obj)
		} else {
			saved, err = s.Service.UpdateObject(&obj)
		}
		switch {
		case errors.Is(err, content.ErrDuplicateID):
			writeError(w, http.StatusConflict, err.Error())
		case errors.Is(err, content.ErrUnknownID):
			writeError(w, http.StatusNotFound, err.Error())
		case err != nil:
			writeError(w, http.StatusInternalServerError, err.Error())
		default:
			writeJSON(w, http.StatusOK, saved)
		}

	case http.MethodDelete:
		id := r.URL.Query().Get("id")
		if id == "" {
			writeError(w, http.StatusBadRequest, "id query parameter is required")
			return
		}
		if !s.Service.DeleteObject(id) {
			writeError(w, http.StatusNotFound, "object not found: "+id)
			return
		}
		w.WriteHeader(http.StatusNoContent)

	default:
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
	}
}

func (s *Server) handleLevels(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		writeJSON(w, http.StatusOK, map[string]any{
			"levels": s.Service.Levels(),
		})

	case http.MethodPost, http.MethodPut:
		var lvl domain.Level
		if err := json.NewDecoder(r.Body).Decode(&lvl); err != nil {
			writeError(w, http.StatusBadRequest, "malformed level: "+err.Error())
			return
		}

		var (
			saved *domain.Level
			err   error
		)
		if r.Method == http.MethodPost {
			saved, err = s.Service.AddLevel(&lvl)
		} else {
			saved, err = s.Service.UpdateLevel(&lvl)
		}
		switch {
		case errors.Is(err, content.ErrDuplicateID):
			writeError(w, http.StatusConflict, err.Error())
		case errors.Is(err, content.ErrUnknownID):
			writeError(w, http.StatusNotFound, err.Error())
		case err != nil:
			writeError(w, http.StatusBadRequest, err.Error())
		default:
			writeJSON(w, http.StatusOK, saved)
		}

	case http.MethodDelete:
		number, err := strconv.Atoi(r.URL.Query().Get("number"))
		if err != nil {
			writeError(w, http.StatusBadRequest, "number query parameter is required")
			return
		}
		if !s.Service.DeleteLevel(number) {
			writeError(w, http.StatusNotFound, "level not found")
			return
		}
		w.WriteHeader(http.StatusNoContent)

	default:
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
	}
}

func (s *Server) handleValidate(w http.ResponseWriter, r *http.Request) {
	issues, levelIssues := s.Service.Validate()
	writeJSON(w, http.StatusOK, map[string]any{
		"issues":       issues,
		"level_issues": levelIssues,
	})
}

func (s *Server) handleFix(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	writeJSON(w, http.StatusOK, s.Service.Fix())
}

// handleSave - шлюз сохранения. При открытых проблемах валидации отвечает
// 409 с полным списком, пока клиент не починит контент или не пришлет force.
func (s *Server) handleSave(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	force := r.URL.Query().Get("force") == "1"
	err := s.Service.Save(force)

	var vErr *content.ValidationFailedError
	switch {
	case errors.As(err, &vErr):
		writeJSON(w, http.StatusConflict, map[string]any{
			"error":  vErr.Error(),
			"issues": vErr.Issues,
		})
	case err != nil:
		writeError(w, http.StatusInternalServerError, err.Error())
	default:
		writeJSON(w, http.StatusOK, map[string]string{"status": "saved"})
	}
}

// handleComposite - превью карты: снапшот от игрового сервера, разрешенный
// в конкретный контент и разложенный по слоям.
func (s *Server) handleComposite(w http.ResponseWriter, r *http.Request) {
	level := 1
	if v := r.URL.Query().Get("level"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			writeError(w, http.StatusBadRequest, "invalid level")
			return
		}
		level = n
	}

	zoom := 1.0
	if v := r.URL.Query().Get("zoom"); v != "" {
		z, err := strconv.ParseFloat(v, 64)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid zoom")
			return
		}
		zoom = z
	}

	placements, err := s.Service.ComposeLevel(r.Context(), level, zoom)
	if err != nil {
		if errors.Is(err, generator.ErrSnapshotFetch) {
			logger.Log.WithError(err).Warn("Map snapshot unavailable")
			writeError(w, http.StatusBadGateway, err.Error())
			return
		}
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"placements": placements,
	})
}
