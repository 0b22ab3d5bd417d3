package content

import (
	"fmt"

	"github.com/BuyMeAnIcecream/a-journey-in-the-dark/internal/domain"
	"github.com/BuyMeAnIcecream/a-journey-in-the-dark/pkg/logger"
)

// Saver - приемник сохраняемого контента (internal/infrastructure/storage).
type Saver interface {
	Save(objects []*domain.GameObject, levels []*domain.Level) error
}

// ValidationFailedError - сохранение отклонено, несет полный список проблем.
type ValidationFailedError struct {
	Issues []Issue
}

func (e *ValidationFailedError) Error() string {
	return fmt.Sprintf("validation failed: %d object(s) with missing fields", len(e.Issues))
}

// Service связывает стор, валидацию и запись на диск.
// Единственная политика, которую он навязывает: контент с проблемами
// валидации не попадает на диск без явного override.
type Service struct {
	Store  *Store
	Engine *Engine
	Saver  Saver
}

func NewService(st *Store, saver Saver) *Service {
	return &Service{
		Store:  st,
		Engine: NewEngine(),
		Saver:  saver,
	}
}

// Save пишет контент на диск. Если валидация нашла проблемы и force=false,
// сохранение отклоняется и файл не трогается вовсе.
// Пара validate+save должна выполняться атомарно относительно мутаций стора -
// это обязанность вызывающего (см. internal/server).
func (s *Service) Save(force bool) error {
	issues := s.Engine.Validate(s.Store)
	if len(issues) > 0 {
		if !force {
			return &ValidationFailedError{Issues: issues}
		}
		logger.Log.WithField("issues", len(issues)).
			Warn("Saving content with unresolved validation issues (forced)")
	}

	// Совещательные проверки уровней не блокируют, только предупреждают
	for _, li := range s.Engine.ValidateLevels(s.Store) {
		logger.Log.WithField("level", li.LevelNumber).
			WithField("bad_monsters", li.BadMonsters).
			Warn("Level references non-monster or unknown objects")
	}

	if err := s.Saver.Save(s.Store.All(), s.Store.Levels()); err != nil {
		return fmt.Errorf("failed to persist content: %w", err)
	}
	return nil
}
