package client

import (
	"sync"

	"go.uber.org/zap"
)

// Bus - внутренняя шина событий избранного. Экраны подписываются,
// чтобы перечитывать свои данные после сохранения спота на любом
// другом экране. События не буферизуются: поздний подписчик
// прошлых событий не видит.
type Bus struct {
	mu        sync.Mutex
	listeners []*listener
	nextID    int
	logger    *zap.Logger
}

type listener struct {
	id int
	fn func(Event)
}

// NewBus создает шину событий
func NewBus(logger *zap.Logger) *Bus {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Bus{logger: logger}
}

// Subscribe регистрирует слушателя и возвращает функцию отписки.
// Повторный вызов отписки безопасен.
func (b *Bus) Subscribe(fn func(Event)) (unsubscribe func()) {
	b.mu.Lock()
	defer b.mu.Unlock()

	l := &listener{id: b.nextID, fn: fn}
	b.nextID++
	b.listeners = append(b.listeners, l)

	var once sync.Once
	return func() {
		once.Do(func() {
			b.mu.Lock()
			defer b.mu.Unlock()
			for i, cur := range b.listeners {
				if cur.id == l.id {
					b.listeners = append(b.listeners[:i], b.listeners[i+1:]...)
					return
				}
			}
		})
	}
}

// Publish синхронно вызывает слушателей в порядке регистрации.
// Паника одного слушателя не ломает остальных.
func (b *Bus) Publish(event Event) {
	b.mu.Lock()
	snapshot := make([]*listener, len(b.listeners))
	copy(snapshot, b.listeners)
	b.mu.Unlock()

	for _, l := range snapshot {
		b.invoke(l, event)
	}
}

func (b *Bus) invoke(l *listener, event Event) {
	defer func() {
		if r := recover(); r != nil {
			b.logger.Error("Bus listener panicked",
				zap.String("event_kind", event.Kind),
				zap.Any("panic", r))
		}
	}()
	l.fn(event)
}
