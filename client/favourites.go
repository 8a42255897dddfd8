package client

import (
	"context"
	"sync"

	"golang.org/x/sync/errgroup"
)

// FavouritesList - список избранного одного пользователя.
// Перечитывает данные при каждом событии шины и при возврате
// фокуса на экран. Для пустого userID сразу отдаёт пустой список:
// у неавторизованных избранного нет.
type FavouritesList struct {
	client *Client
	bus    *Bus
	userID string

	mu         sync.Mutex
	favourites []Spot
	loading    bool
	err        error

	unsubscribe func()
}

// NewFavouritesList создает вью избранного и подписывает его на шину
func NewFavouritesList(client *Client, bus *Bus, userID string) *FavouritesList {
	l := &FavouritesList{
		client:     client,
		bus:        bus,
		userID:     userID,
		favourites: []Spot{},
	}

	// любое событие added/removed перечитывает список,
	// независимо от того, какой спот затронут
	l.unsubscribe = bus.Subscribe(func(event Event) {
		if event.Kind != EventAdded && event.Kind != EventRemoved {
			return
		}
		_ = l.Refetch(context.Background())
	})

	return l
}

// Refetch перечитывает список с бэкенда
func (l *FavouritesList) Refetch(ctx context.Context) error {
	if l.userID == "" {
		l.mu.Lock()
		l.favourites = []Spot{}
		l.loading = false
		l.err = nil
		l.mu.Unlock()
		return nil
	}

	l.mu.Lock()
	l.loading = true
	l.mu.Unlock()

	spots, err := l.client.Favourites(ctx, l.userID)

	// экран мог быть закрыт пока шёл запрос
	if ctx.Err() != nil {
		return ctx.Err()
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	l.loading = false
	if err != nil {
		l.err = err
		return err
	}

	l.err = nil
	if spots == nil {
		spots = []Spot{}
	}
	l.favourites = spots
	return nil
}

// OnFocus перечитывает список при возврате фокуса на экран
func (l *FavouritesList) OnFocus(ctx context.Context) error {
	return l.Refetch(ctx)
}

// Favourites возвращает текущий снимок списка
func (l *FavouritesList) Favourites() []Spot {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]Spot, len(l.favourites))
	copy(out, l.favourites)
	return out
}

// Loading сообщает, идёт ли запрос
func (l *FavouritesList) Loading() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.loading
}

// Err возвращает ошибку последнего запроса
func (l *FavouritesList) Err() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.err
}

// IsEmpty сообщает, пуст ли список
func (l *FavouritesList) IsEmpty() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.favourites) == 0
}

// Close отписывает вью от шины
func (l *FavouritesList) Close() {
	if l.unsubscribe != nil {
		l.unsubscribe()
	}
}

// FavouriteSpot - состояние кнопки "сохранить" одного спота:
// сохранён ли он текущим пользователем и сколько всего сохранений.
type FavouriteSpot struct {
	client *Client
	bus    *Bus
	userID string
	spotID string

	mu      sync.Mutex
	isSaved bool
	count   int
	loading bool
}

// NewFavouriteSpot создает вью спота. userID пустой для
// неавторизованных - тогда toggleSave не делает ничего.
func NewFavouriteSpot(client *Client, bus *Bus, userID, spotID string) *FavouriteSpot {
	return &FavouriteSpot{
		client: client,
		bus:    bus,
		userID: userID,
		spotID: spotID,
	}
}

// Bootstrap конкурентно загружает счётчик сохранений и признак
// "сохранено мной". Проверка сохранённости пропускается без userID.
func (s *FavouriteSpot) Bootstrap(ctx context.Context) error {
	if s.spotID == "" {
		return nil
	}

	s.mu.Lock()
	s.loading = true
	s.mu.Unlock()

	var (
		count int
		saved bool
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		count, err = s.client.FavouriteCount(gctx, s.spotID)
		return err
	})
	if s.userID != "" {
		g.Go(func() error {
			var err error
			saved, err = s.client.IsFavourite(gctx, s.userID, s.spotID)
			return err
		})
	}

	err := g.Wait()

	if ctx.Err() != nil {
		return ctx.Err()
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.loading = false
	if err != nil {
		return err
	}

	s.count = count
	s.isSaved = saved
	return nil
}

// ToggleSave сохраняет спот в избранное. Без пользователя, без
// спота или для уже сохранённого спота - no-op. Состояние меняется
// оптимистично и откатывается при ошибке сети.
func (s *FavouriteSpot) ToggleSave(ctx context.Context) error {
	s.mu.Lock()
	if s.userID == "" || s.spotID == "" || s.isSaved {
		s.mu.Unlock()
		return nil
	}

	// оптимистичное обновление до ответа бэкенда
	prevCount := s.count
	s.isSaved = true
	s.count = prevCount + 1
	s.mu.Unlock()

	if err := s.client.AddFavourite(ctx, s.userID, s.spotID); err != nil {
		s.mu.Lock()
		s.isSaved = false
		s.count = prevCount
		s.mu.Unlock()
		return err
	}

	s.bus.Publish(Event{Kind: EventAdded, SpotID: s.spotID})
	return nil
}

// IsSaved сообщает, сохранён ли спот текущим пользователем
func (s *FavouriteSpot) IsSaved() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.isSaved
}

// LikesCount возвращает текущий счётчик сохранений
func (s *FavouriteSpot) LikesCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.count
}

// Loading сообщает, идёт ли загрузка
func (s *FavouriteSpot) Loading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loading
}
