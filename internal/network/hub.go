package network

import (
	"sync"

	"github.com/BuyMeAnIcecream/a-journey-in-the-dark/pkg/api"
)

// Broadcaster занимается только рассылкой событий контента подписчикам.
// Подписчики - websocket-клиенты редактора (формы, превью карты).
type Broadcaster struct {
	mu sync.RWMutex
	// Мапа: ID подписчика -> личный канал
	subscribers map[string]chan api.ContentEvent
}

func NewBroadcaster() *Broadcaster {
	return &Broadcaster{
		subscribers: make(map[string]chan api.ContentEvent),
	}
}

// Register создает личный канал для подписчика.
// Повторная регистрация того же ID закрывает старый канал.
func (b *Broadcaster) Register(id string) chan api.ContentEvent {
	b.mu.Lock()
	defer b.mu.Unlock()

	if old, ok := b.subscribers[id]; ok {
		close(old)
	}

	ch := make(chan api.ContentEvent, 16)
	b.subscribers[id] = ch
	return ch
}

// Unregister удаляет подписчика
func (b *Broadcaster) Unregister(id string) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if ch, ok := b.subscribers[id]; ok {
		close(ch)
		delete(b.subscribers, id)
	}
}

// Broadcast отправляет событие всем. Медленные подписчики пропускаются,
// событие - лишь сигнал "перезапроси состояние".
func (b *Broadcaster) Broadcast(ev api.ContentEvent) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	for _, ch := range b.subscribers {
		select {
		case ch <- ev:
		default:
		}
	}
}

// SubscriberCount возвращает количество активных подписчиков.
func (b *Broadcaster) SubscriberCount() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.subscribers)
}
