package api

import "fmt"

// Validator - интерфейс, который реализуют DTO
type Validator interface {
	Validate() error
}

// Validate проверяет, что снапшот полон и согласован по размерам.
// Снапшот с перекошенной сеткой дальше не обрабатывается вовсе.
func (s *MapSnapshot) Validate() error {
	if s.Width <= 0 || s.Height <= 0 {
		return fmt.Errorf("invalid snapshot dimensions %dx%d", s.Width, s.Height)
	}
	if len(s.Map) != s.Height {
		return fmt.Errorf("snapshot grid has %d rows, expected %d", len(s.Map), s.Height)
	}
	for y, row := range s.Map {
		if len(row) != s.Width {
			return fmt.Errorf("snapshot row %d has %d cells, expected %d", y, len(row), s.Width)
		}
	}
	for i, e := range s.Entities {
		if e.ObjectID == "" {
			return fmt.Errorf("snapshot entity %d has empty object_id", i)
		}
	}
	return nil
}
