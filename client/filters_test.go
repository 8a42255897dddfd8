package client_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spotshot-api/client"
)

// filterBackend - бэкенд для тестов панели фильтров
type filterBackend struct {
	mu        sync.Mutex
	spots     []client.Spot
	countries []string
	cities    map[string][]string
	queries   []string // query string каждого запроса /api/spots
	failLists bool
}

func (b *filterBackend) handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /api/spots/countries", func(w http.ResponseWriter, r *http.Request) {
		if b.failLists {
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(map[string]interface{}{
				"error": map[string]string{"code": "DATABASE_ERROR", "message": "down"},
			})
			return
		}
		json.NewEncoder(w).Encode(map[string]interface{}{"data": b.countries})
	})

	mux.HandleFunc("GET /api/spots/cities", func(w http.ResponseWriter, r *http.Request) {
		if b.failLists {
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(map[string]interface{}{
				"error": map[string]string{"code": "DATABASE_ERROR", "message": "down"},
			})
			return
		}
		json.NewEncoder(w).Encode(map[string]interface{}{
			"data": b.cities[r.URL.Query().Get("country")],
		})
	})

	mux.HandleFunc("GET /api/spots", func(w http.ResponseWriter, r *http.Request) {
		b.mu.Lock()
		b.queries = append(b.queries, r.URL.RawQuery)
		b.mu.Unlock()

		country := r.URL.Query().Get("country")
		city := r.URL.Query().Get("city")

		out := []client.Spot{}
		for _, s := range b.spots {
			if country != "" && s.Country != country {
				continue
			}
			if city != "" && s.City != city {
				continue
			}
			out = append(out, s)
		}
		json.NewEncoder(w).Encode(map[string]interface{}{"data": out})
	})

	return mux
}

func (b *filterBackend) lastQuery() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	if len(b.queries) == 0 {
		return ""
	}
	return b.queries[len(b.queries)-1]
}

func newFilterFixture(t *testing.T) (*filterBackend, *client.SpotBrowser, *client.FilterPanel) {
	t.Helper()

	backend := &filterBackend{
		spots:     sampleSpots,
		countries: []string{"France", "Japan"},
		cities: map[string][]string{
			"France": {"Paris", "Lyon"},
			"Japan":  {"Tokyo", "Kyoto"},
		},
	}

	srv := httptest.NewServer(backend.handler())
	t.Cleanup(srv.Close)

	api := client.New(srv.URL)
	browser := client.NewSpotBrowser(api)
	require.NoError(t, browser.Load(context.Background()))

	return backend, browser, client.NewFilterPanel(api, browser)
}

// TestFilterPanel_CountryResetsCity: смена страны сбрасывает город
func TestFilterPanel_CountryResetsCity(t *testing.T) {
	_, _, panel := newFilterFixture(t)
	ctx := context.Background()

	require.NoError(t, panel.SelectCountry(ctx, "France"))
	require.NoError(t, panel.SelectCity(ctx, "Paris"))
	require.Equal(t, "Paris", panel.City())

	require.NoError(t, panel.SelectCountry(ctx, "Japan"))

	assert.Equal(t, client.FilterAll, panel.City())
	assert.Equal(t, "Japan", panel.Country())
}

// TestFilterPanel_QueryScenario: выбор France/Paris уходит на бэкенд
// запросом country=France&city=Paris и заменяет выдачу, поверх
// которой действует активный поиск
func TestFilterPanel_QueryScenario(t *testing.T) {
	backend, browser, panel := newFilterFixture(t)
	ctx := context.Background()

	assert.Equal(t, []string{client.FilterAll, "France", "Japan"}, panel.Countries(ctx))

	require.NoError(t, panel.SelectCountry(ctx, "France"))
	assert.Equal(t, []string{client.FilterAll, "Paris", "Lyon"}, panel.Cities(ctx))

	require.NoError(t, panel.SelectCity(ctx, "Paris"))

	assert.Equal(t, "city=Paris&country=France", backend.lastQuery())
	assert.Equal(t, []string{"1", "3"}, spotIDs(browser.FilteredSpots()))

	// активный поиск сужает выдачу фильтра
	browser.HandleSearch("mont")
	assert.Equal(t, []string{"3"}, spotIDs(browser.FilteredSpots()))
}

// TestFilterPanel_AllRestoresFullCollection: выбор "All" для обеих
// осей возвращает полную коллекцию без запроса к бэкенду
func TestFilterPanel_AllRestoresFullCollection(t *testing.T) {
	backend, browser, panel := newFilterFixture(t)
	ctx := context.Background()

	require.NoError(t, panel.SelectCountry(ctx, "Japan"))
	require.Len(t, browser.FilteredSpots(), 2)

	queriesBefore := len(backend.queries)
	require.NoError(t, panel.SelectCountry(ctx, client.FilterAll))

	assert.Len(t, browser.FilteredSpots(), 4)
	assert.Equal(t, queriesBefore, len(backend.queries))
}

// TestFilterPanel_LookupFailureDegrades: ошибка справочников
// деградирует до списка из одного "All", не ломая экран
func TestFilterPanel_LookupFailureDegrades(t *testing.T) {
	backend, _, panel := newFilterFixture(t)
	backend.failLists = true
	ctx := context.Background()

	assert.Equal(t, []string{client.FilterAll}, panel.Countries(ctx))

	panel.SelectCountry(ctx, "France")
	assert.Equal(t, []string{client.FilterAll}, panel.Cities(ctx))
}

// TestFilterPanel_CountriesMemoized: страны запрашиваются один раз
func TestFilterPanel_CountriesMemoized(t *testing.T) {
	backend, _, panel := newFilterFixture(t)
	ctx := context.Background()

	first := panel.Countries(ctx)
	backend.countries = []string{"Iceland"}
	second := panel.Countries(ctx)

	assert.Equal(t, first, second)
}

// TestFilterPanel_Reset сбрасывает обе оси
func TestFilterPanel_Reset(t *testing.T) {
	_, browser, panel := newFilterFixture(t)
	ctx := context.Background()

	require.NoError(t, panel.SelectCountry(ctx, "France"))
	require.NoError(t, panel.SelectCity(ctx, "Lyon"))

	panel.Reset()

	assert.Equal(t, client.FilterAll, panel.Country())
	assert.Equal(t, client.FilterAll, panel.City())
	assert.Len(t, browser.FilteredSpots(), 4)
}
