package server

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/BuyMeAnIcecream/a-journey-in-the-dark/internal/compose"
	"github.com/BuyMeAnIcecream/a-journey-in-the-dark/internal/content"
	"github.com/BuyMeAnIcecream/a-journey-in-the-dark/internal/domain"
	"github.com/BuyMeAnIcecream/a-journey-in-the-dark/internal/generator"
	"github.com/BuyMeAnIcecream/a-journey-in-the-dark/internal/infrastructure/storage"
	"github.com/BuyMeAnIcecream/a-journey-in-the-dark/internal/network"
	"github.com/BuyMeAnIcecream/a-journey-in-the-dark/internal/schema"
	"github.com/BuyMeAnIcecream/a-journey-in-the-dark/pkg/api"
	"github.com/BuyMeAnIcecream/a-journey-in-the-dark/pkg/logger"
)

// Service - хост ядра. Само ядро однопоточное и без блокировок, поэтому
// вся сериализация мутаций стора и атомарность validate+save живут здесь,
// за одним мьютексом.
type Service struct {
	mu sync.Mutex

	// UnixNano последнего удачного Save - вотчер по нему отличает
	// собственную запись от внешней правки файла.
	saveStamp atomic.Int64

	Store        *content.Store
	Content      *content.Service
	Schema       *schema.Schema
	SchemaSource schema.Source
	Resolver     *compose.Resolver
	Compositor   *compose.Compositor
	Generator    *generator.Client
	ContentFile  *storage.ContentService
	Hub          *network.Broadcaster
}

func NewService(
	st *content.Store,
	sch *schema.Schema,
	source schema.Source,
	gen *generator.Client,
	contentFile *storage.ContentService,
) *Service {
	resolver := compose.NewResolver()
	return &Service{
		Store:        st,
		Content:      content.NewService(st, contentFile),
		Schema:       sch,
		SchemaSource: source,
		Resolver:     resolver,
		Compositor:   compose.NewCompositor(resolver),
		Generator:    gen,
		ContentFile:  contentFile,
		Hub:          network.NewBroadcaster(),
	}
}

// issueCount считается под уже взятым мьютексом
func (s *Service) issueCount() int {
	return len(s.Content.Engine.Validate(s.Store))
}

// Objects возвращает снимок списка объектов. Копии глубокие: хэндлеры
// сериализуют ответ уже без мьютекса, и живое состояние стора (которое
// Fix мутирует на месте) наружу утекать не должно.
func (s *Service) Objects() []*domain.GameObject {
	s.mu.Lock()
	defer s.mu.Unlock()
	all := s.Store.All()
	out := make([]*domain.GameObject, len(all))
	for i, obj := range all {
		out[i] = obj.Clone()
	}
	return out
}

// AddObject добавляет объект и возвращает его отвязанный снимок
// (с нормализованными sprites) для ответа клиенту.
func (s *Service) AddObject(obj *domain.GameObject) (*domain.GameObject, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.Store.Add(obj); err != nil {
		return nil, err
	}
	s.Hub.Broadcast(api.ContentEvent{
		Type:     api.EventObjectsChanged,
		ObjectID: obj.ID,
		Issues:   s.issueCount(),
	})
	return obj.Clone(), nil
}

func (s *Service) UpdateObject(obj *domain.GameObject) (*domain.GameObject, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.Store.Update(obj); err != nil {
		return nil, err
	}
	s.Hub.Broadcast(api.ContentEvent{
		Type:     api.EventObjectsChanged,
		ObjectID: obj.ID,
		Issues:   s.issueCount(),
	})
	return obj.Clone(), nil
}

func (s *Service) DeleteObject(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.Store.Remove(id) {
		return false
	}
	s.Hub.Broadcast(api.ContentEvent{
		Type:     api.EventObjectsChanged,
		ObjectID: id,
		Issues:   s.issueCount(),
	})
	return true
}

// Levels возвращает снимок уровней, глубокие копии по той же причине,
// что и Objects.
func (s *Service) Levels() []*domain.Level {
	s.mu.Lock()
	defer s.mu.Unlock()
	lvls := s.Store.Levels()
	out := make([]*domain.Level, len(lvls))
	for i, lvl := range lvls {
		out[i] = lvl.Clone()
	}
	return out
}

func (s *Service) AddLevel(lvl *domain.Level) (*domain.Level, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.Store.AddLevel(lvl); err != nil {
		return nil, err
	}
	s.Hub.Broadcast(api.ContentEvent{
		Type:   api.EventLevelsChanged,
		Level:  lvl.LevelNumber,
		Issues: s.issueCount(),
	})
	return lvl.Clone(), nil
}

func (s *Service) UpdateLevel(lvl *domain.Level) (*domain.Level, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.Store.UpdateLevel(lvl); err != nil {
		return nil, err
	}
	s.Hub.Broadcast(api.ContentEvent{
		Type:   api.EventLevelsChanged,
		Level:  lvl.LevelNumber,
		Issues: s.issueCount(),
	})
	return lvl.Clone(), nil
}

func (s *Service) DeleteLevel(number int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.Store.RemoveLevel(number) {
		return false
	}
	s.Hub.Broadcast(api.ContentEvent{
		Type:   api.EventLevelsChanged,
		Level:  number,
		Issues: s.issueCount(),
	})
	return true
}

// Validate возвращает проблемы объектов и совещательные проблемы уровней.
func (s *Service) Validate() ([]content.Issue, []content.LevelIssue) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.Content.Engine.Validate(s.Store), s.Content.Engine.ValidateLevels(s.Store)
}

// Fix запускает авто-ремонт по текущему списку проблем.
func (s *Service) Fix() content.FixResult {
	s.mu.Lock()
	defer s.mu.Unlock()
	issues := s.Content.Engine.Validate(s.Store)
	res := s.Content.Engine.AutoFix(s.Store, issues)
	s.Hub.Broadcast(api.ContentEvent{
		Type:   api.EventObjectsChanged,
		Issues: len(res.RemainingIssues),
	})
	return res
}

// Save - шлюз сохранения. validate и запись выполняются под одним
// мьютексом, чтобы мутация между ними не обесценила проверку.
func (s *Service) Save(force bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.Content.Save(force); err != nil {
		return err
	}
	s.saveStamp.Store(time.Now().UnixNano())
	s.Hub.Broadcast(api.ContentEvent{
		Type:   api.EventSaved,
		Issues: s.issueCount(),
	})
	return nil
}

// RecentlySaved сообщает, был ли удачный Save в последние d.
func (s *Service) RecentlySaved(d time.Duration) bool {
	stamp := s.saveStamp.Load()
	if stamp == 0 {
		return false
	}
	return time.Since(time.Unix(0, stamp)) < d
}

// ComposeLevel запрашивает снапшот у игрового сервера и строит по нему
// послойный список размещений. Снапшот либо целиком валиден, либо ошибка.
func (s *Service) ComposeLevel(ctx context.Context, level int, zoom float64) ([]compose.RenderPlacement, error) {
	snap, err := s.Generator.FetchSnapshot(ctx, level)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	return s.Compositor.Composite(snap, s.Store, zoom), nil
}

// ReloadFromDisk перечитывает документ контента (правка внешним редактором
// или игровым сервером) и заменяет стор целиком.
func (s *Service) ReloadFromDisk() error {
	doc, err := s.ContentFile.Load()
	if err != nil {
		return fmt.Errorf("content reload failed: %w", err)
	}
	st, err := content.FromDocument(doc.GameObjects, doc.Levels)
	if err != nil {
		return fmt.Errorf("content reload failed: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.Store = st
	s.Content.Store = st

	issues := s.issueCount()
	if issues > 0 {
		logger.Log.WithField("issues", issues).Warn("Reloaded content has validation issues")
	}
	s.Hub.Broadcast(api.ContentEvent{
		Type:   api.EventReloaded,
		Issues: issues,
	})
	return nil
}
