package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BuyMeAnIcecream/a-journey-in-the-dark/internal/domain"
)

// Document - формат персистентного контента: два верхнеуровневых массива.
// Именно этот документ читает игровой сервер.
type Document struct {
	GameObjects []*domain.GameObject `json:"game_objects"`
	Levels      []*domain.Level      `json:"levels"`
}

// ContentService читает и пишет документ контента.
type ContentService struct {
	Path string
}

func NewContentService(path string) *ContentService {
	// Создаем папку если нет
	dir := filepath.Dir(path)
	if dir != "." && dir != "" {
		if _, err := os.Stat(dir); os.IsNotExist(err) {
			_ = os.MkdirAll(dir, 0755)
		}
	}
	return &ContentService{Path: path}
}

// Load читает документ с диска.
func (s *ContentService) Load() (*Document, error) {
	data, err := os.ReadFile(s.Path)
	if err != nil {
		return nil, err
	}

	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("malformed content document %s: %w", s.Path, err)
	}
	return &doc, nil
}

// Save пишет документ атомарно: сначала во временный файл, потом rename.
// Наполовину записанный контент хуже, чем устаревший.
func (s *ContentService) Save(objects []*domain.GameObject, levels []*domain.Level) error {
	doc := Document{GameObjects: objects, Levels: levels}
	if doc.GameObjects == nil {
		doc.GameObjects = []*domain.GameObject{}
	}
	if doc.Levels == nil {
		doc.Levels = []*domain.Level{}
	}

	data, err := json.MarshalIndent(&doc, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal content: %w", err)
	}

	tmp := s.Path + ".tmp"
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", tmp, err)
	}
	if err := os.Rename(tmp, s.Path); err != nil {
		return fmt.Errorf("failed to replace %s: %w", s.Path, err)
	}
	return nil
}
