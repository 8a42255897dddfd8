package client

import (
	"context"
	"strings"
	"sync"
)

// SpotBrowser - лента спотов с поиском и внешними фильтрами.
// Поиск и фильтры страны/города комбинируются по И: поиск
// применяется поверх последнего внешне отфильтрованного набора,
// а не поверх полной коллекции.
type SpotBrowser struct {
	client *Client

	mu       sync.Mutex
	all      []Spot // полная коллекция с момента Load
	base     []Spot // последний внешне отфильтрованный набор
	filtered []Spot // base, суженный поиском
	search   string
	loading  bool
	err      error
}

// NewSpotBrowser создает ленту спотов
func NewSpotBrowser(client *Client) *SpotBrowser {
	return &SpotBrowser{
		client:   client,
		all:      []Spot{},
		base:     []Spot{},
		filtered: []Spot{},
	}
}

// Load загружает полную коллекцию спотов. При ошибке коллекции
// остаются пустыми, err выставлен, loading снят.
func (b *SpotBrowser) Load(ctx context.Context) error {
	b.mu.Lock()
	b.loading = true
	b.mu.Unlock()

	spots, err := b.client.ListSpots(ctx, "", "")

	if ctx.Err() != nil {
		return ctx.Err()
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	b.loading = false
	if err != nil {
		b.err = err
		b.all = []Spot{}
		b.base = []Spot{}
		b.filtered = []Spot{}
		return err
	}

	if spots == nil {
		spots = []Spot{}
	}
	b.err = nil
	b.all = spots
	b.base = spots
	b.filtered = applySearch(spots, b.search)
	return nil
}

// HandleSearch обновляет поисковый запрос и пересчитывает выдачу.
// Пустой запрос возвращает последний внешне отфильтрованный набор.
func (b *SpotBrowser) HandleSearch(text string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.search = text
	b.filtered = applySearch(b.base, text)
}

// OnFilter принимает набор, уже суженный внешними критериями
// (например ответ бэкенда на запрос с country/city), и применяет
// поверх него сохранённый поиск.
func (b *SpotBrowser) OnFilter(spots []Spot) {
	if spots == nil {
		spots = []Spot{}
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	b.base = spots
	b.filtered = applySearch(spots, b.search)
}

// ResetFilters сбрасывает внешние фильтры, сохраняя поиск
func (b *SpotBrowser) ResetFilters() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.base = b.all
	b.filtered = applySearch(b.all, b.search)
}

// AllSpots возвращает полную коллекцию
func (b *SpotBrowser) AllSpots() []Spot {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := make([]Spot, len(b.all))
	copy(out, b.all)
	return out
}

// FilteredSpots возвращает текущую выдачу
func (b *SpotBrowser) FilteredSpots() []Spot {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := make([]Spot, len(b.filtered))
	copy(out, b.filtered)
	return out
}

// Search возвращает текущий поисковый запрос
func (b *SpotBrowser) Search() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.search
}

// Loading сообщает, идёт ли загрузка
func (b *SpotBrowser) Loading() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.loading
}

// Err возвращает ошибку последней загрузки
func (b *SpotBrowser) Err() error {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.err
}

// applySearch фильтрует споты подстрокой без учёта регистра
// по имени, городу и описанию
func applySearch(spots []Spot, search string) []Spot {
	if search == "" {
		out := make([]Spot, len(spots))
		copy(out, spots)
		return out
	}

	needle := strings.ToLower(search)
	out := make([]Spot, 0, len(spots))
	for _, s := range spots {
		if strings.Contains(strings.ToLower(s.Name), needle) ||
			strings.Contains(strings.ToLower(s.City), needle) ||
			strings.Contains(strings.ToLower(s.Description), needle) {
			out = append(out, s)
		}
	}
	return out
}
