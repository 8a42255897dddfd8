package client

import (
	"context"
	"sync"
	"time"

	gocache "github.com/patrickmn/go-cache"
)

const (
	countriesCacheKey = "countries"
	citiesCachePrefix = "cities:"
	optionsCacheTTL   = 5 * time.Minute
)

// FilterPanel - выбор страны и города. Смена страны сбрасывает
// город в "All": фильтр города не переживает смену страны.
// Каждая смена выбора перезапрашивает споты у бэкенда и отдаёт
// результат в OnFilter браузера.
type FilterPanel struct {
	client  *Client
	browser *SpotBrowser
	memo    *gocache.Cache

	mu      sync.Mutex
	country string
	city    string
}

// NewFilterPanel создает панель фильтров
func NewFilterPanel(client *Client, browser *SpotBrowser) *FilterPanel {
	return &FilterPanel{
		client:  client,
		browser: browser,
		memo:    gocache.New(optionsCacheTTL, 10*time.Minute),
		country: FilterAll,
		city:    FilterAll,
	}
}

// Countries возвращает доступные страны (с "All" первым элементом).
// Ошибка бэкенда деградирует до пустого списка опций.
func (p *FilterPanel) Countries(ctx context.Context) []string {
	if cached, ok := p.memo.Get(countriesCacheKey); ok {
		return cached.([]string)
	}

	countries, err := p.client.Countries(ctx)
	if err != nil {
		return []string{FilterAll}
	}

	options := append([]string{FilterAll}, countries...)
	p.memo.SetDefault(countriesCacheKey, options)
	return options
}

// Cities возвращает города выбранной страны
func (p *FilterPanel) Cities(ctx context.Context) []string {
	p.mu.Lock()
	country := p.country
	p.mu.Unlock()

	if country == FilterAll {
		return []string{FilterAll}
	}

	key := citiesCachePrefix + country
	if cached, ok := p.memo.Get(key); ok {
		return cached.([]string)
	}

	cities, err := p.client.Cities(ctx, country)
	if err != nil {
		return []string{FilterAll}
	}

	options := append([]string{FilterAll}, cities...)
	p.memo.SetDefault(key, options)
	return options
}

// SelectCountry меняет страну, сбрасывает город и перезапрашивает споты
func (p *FilterPanel) SelectCountry(ctx context.Context, country string) error {
	p.mu.Lock()
	p.country = country
	p.city = FilterAll
	p.mu.Unlock()

	return p.apply(ctx)
}

// SelectCity меняет город и перезапрашивает споты
func (p *FilterPanel) SelectCity(ctx context.Context, city string) error {
	p.mu.Lock()
	p.city = city
	p.mu.Unlock()

	return p.apply(ctx)
}

// Reset сбрасывает оба фильтра и возвращает браузер к полной коллекции
func (p *FilterPanel) Reset() {
	p.mu.Lock()
	p.country = FilterAll
	p.city = FilterAll
	p.mu.Unlock()

	p.browser.ResetFilters()
}

// Country возвращает выбранную страну
func (p *FilterPanel) Country() string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.country
}

// City возвращает выбранный город
func (p *FilterPanel) City() string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.city
}

// apply запрашивает суженный набор и отдаёт его браузеру
func (p *FilterPanel) apply(ctx context.Context) error {
	p.mu.Lock()
	country, city := p.country, p.city
	p.mu.Unlock()

	if country == FilterAll && city == FilterAll {
		p.browser.ResetFilters()
		return nil
	}

	spots, err := p.client.ListSpots(ctx, country, city)
	if err != nil {
		return err
	}

	if ctx.Err() != nil {
		return ctx.Err()
	}

	p.browser.OnFilter(spots)
	return nil
}
