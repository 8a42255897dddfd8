package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

const defaultTimeout = 15 * time.Second

// Client - HTTP клиент SpotShot API. Безопасен для конкурентного
// использования; один экземпляр делится всеми экранами.
type Client struct {
	httpClient *http.Client
	baseURL    string
	authToken  string
	logger     *zap.Logger

	// dedup параллельных toggleSave по ключу userID|spotID
	toggles singleflight.Group
}

// Option настраивает Client
type Option func(*Client)

// WithTimeout задает таймаут HTTP запросов
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		c.httpClient.Timeout = timeout
	}
}

// WithAuthToken задает bearer-токен для запросов записи
func WithAuthToken(token string) Option {
	return func(c *Client) {
		c.authToken = token
	}
}

// WithLogger задает логгер
func WithLogger(logger *zap.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// New создает клиент API
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		httpClient: &http.Client{Timeout: defaultTimeout},
		baseURL:    baseURL,
		logger:     zap.NewNop(),
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// APIError - ошибка, возвращённая бэкендом
type APIError struct {
	StatusCode int    `json:"-"`
	Code       string `json:"code"`
	Message    string `json:"message"`
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error %d (%s): %s", e.StatusCode, e.Code, e.Message)
}

// envelope - обёртка ответов API: {"data": ...} либо {"error": {...}}
type envelope struct {
	Data  json.RawMessage `json:"data"`
	Error *APIError       `json:"error"`
}

// do выполняет запрос и раскрывает конверт ответа в out
func (c *Client) do(ctx context.Context, method, path string, body, out interface{}) error {
	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshal request: %w", err)
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.authToken != "" {
		req.Header.Set("Authorization", "Bearer "+c.authToken)
	}

	c.logger.Debug("API request", zap.String("method", method), zap.String("path", path))

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error("API request failed", zap.String("path", path), zap.Error(err))
		return fmt.Errorf("execute request: %w", err)
	}
	defer resp.Body.Close()

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}

	if resp.StatusCode >= 400 {
		apiErr := env.Error
		if apiErr == nil {
			apiErr = &APIError{Code: "UNKNOWN", Message: http.StatusText(resp.StatusCode)}
		}
		apiErr.StatusCode = resp.StatusCode
		c.logger.Warn("API returned error",
			zap.String("path", path),
			zap.Int("status", resp.StatusCode),
			zap.String("code", apiErr.Code))
		return apiErr
	}

	if out != nil && env.Data != nil {
		if err := json.Unmarshal(env.Data, out); err != nil {
			return fmt.Errorf("decode data: %w", err)
		}
	}

	return nil
}

// ListSpots возвращает видимые споты с опциональными фильтрами.
// FilterAll и пустая строка означают отсутствие фильтра.
func (c *Client) ListSpots(ctx context.Context, country, city string) ([]Spot, error) {
	q := url.Values{}
	if country != "" && country != FilterAll {
		q.Set("country", country)
	}
	if city != "" && city != FilterAll {
		q.Set("city", city)
	}

	path := "/api/spots"
	if len(q) > 0 {
		path += "?" + q.Encode()
	}

	var spots []Spot
	if err := c.do(ctx, http.MethodGet, path, nil, &spots); err != nil {
		return nil, err
	}
	return spots, nil
}

// GetSpot возвращает спот по идентификатору
func (c *Client) GetSpot(ctx context.Context, id string) (*Spot, error) {
	var spot Spot
	if err := c.do(ctx, http.MethodGet, "/api/spots/spot/"+url.PathEscape(id), nil, &spot); err != nil {
		return nil, err
	}
	return &spot, nil
}

// CreateSpot публикует новый спот
func (c *Client) CreateSpot(ctx context.Context, input SpotInput) (*Spot, error) {
	var spot Spot
	if err := c.do(ctx, http.MethodPost, "/api/spots", input, &spot); err != nil {
		return nil, err
	}
	return &spot, nil
}

// UpdateSpot редактирует спот. Отредактированный спот снова
// уходит на модерацию.
func (c *Client) UpdateSpot(ctx context.Context, id string, input SpotInput) (*Spot, error) {
	var spot Spot
	if err := c.do(ctx, http.MethodPut, "/api/spots/"+url.PathEscape(id), input, &spot); err != nil {
		return nil, err
	}
	return &spot, nil
}

// Countries возвращает страны с принятыми спотами
func (c *Client) Countries(ctx context.Context) ([]string, error) {
	var countries []string
	if err := c.do(ctx, http.MethodGet, "/api/spots/countries", nil, &countries); err != nil {
		return nil, err
	}
	return countries, nil
}

// Cities возвращает города страны
func (c *Client) Cities(ctx context.Context, country string) ([]string, error) {
	var cities []string
	path := "/api/spots/cities?country=" + url.QueryEscape(country)
	if err := c.do(ctx, http.MethodGet, path, nil, &cities); err != nil {
		return nil, err
	}
	return cities, nil
}

// UserSpots возвращает споты пользователя, включая непринятые
func (c *Client) UserSpots(ctx context.Context, userID string) ([]Spot, error) {
	var spots []Spot
	if err := c.do(ctx, http.MethodGet, "/api/spots/user/"+url.PathEscape(userID), nil, &spots); err != nil {
		return nil, err
	}
	return spots, nil
}

type countPayload struct {
	Count int `json:"count"`
}

// UserSpotCount возвращает количество спотов пользователя
func (c *Client) UserSpotCount(ctx context.Context, userID string) (int, error) {
	var payload countPayload
	if err := c.do(ctx, http.MethodGet, "/api/spots/count/"+url.PathEscape(userID), nil, &payload); err != nil {
		return 0, err
	}
	return payload.Count, nil
}

type addFavouritePayload struct {
	UserID string `json:"userId"`
	SpotID string `json:"spotId"`
}

// AddFavourite сохраняет спот в избранное. Параллельные вызовы
// для одной пары пользователь-спот схлопываются в один запрос.
func (c *Client) AddFavourite(ctx context.Context, userID, spotID string) error {
	key := userID + "|" + spotID
	_, err, _ := c.toggles.Do(key, func() (interface{}, error) {
		body := addFavouritePayload{UserID: userID, SpotID: spotID}
		return nil, c.do(ctx, http.MethodPost, "/api/favourites", body, nil)
	})
	return err
}

// Favourites возвращает сохранённые споты пользователя
func (c *Client) Favourites(ctx context.Context, userID string) ([]Spot, error) {
	var spots []Spot
	if err := c.do(ctx, http.MethodGet, "/api/favourites/"+url.PathEscape(userID), nil, &spots); err != nil {
		return nil, err
	}
	return spots, nil
}

type checkFavouritePayload struct {
	Favorited bool `json:"favorited"`
}

// IsFavourite проверяет, сохранил ли пользователь спот
func (c *Client) IsFavourite(ctx context.Context, userID, spotID string) (bool, error) {
	var payload checkFavouritePayload
	path := "/api/favourites/check?userId=" + url.QueryEscape(userID) + "&spotId=" + url.QueryEscape(spotID)
	if err := c.do(ctx, http.MethodGet, path, nil, &payload); err != nil {
		return false, err
	}
	return payload.Favorited, nil
}

// FavouriteCount возвращает количество сохранений спота
func (c *Client) FavouriteCount(ctx context.Context, spotID string) (int, error) {
	var payload countPayload
	if err := c.do(ctx, http.MethodGet, "/api/favourites/count/"+url.PathEscape(spotID), nil, &payload); err != nil {
		return 0, err
	}
	return payload.Count, nil
}

// GetProfile возвращает профиль пользователя
func (c *Client) GetProfile(ctx context.Context, id string) (*Profile, error) {
	var profile Profile
	if err := c.do(ctx, http.MethodGet, "/api/users/"+url.PathEscape(id), nil, &profile); err != nil {
		return nil, err
	}
	return &profile, nil
}

type reportPayload struct {
	SpotID     string `json:"spotId"`
	ReporterID string `json:"reporterId"`
	Reason     string `json:"reason"`
}

// ReportSpot отправляет жалобу на спот
func (c *Client) ReportSpot(ctx context.Context, spotID, reporterID, reason string) error {
	body := reportPayload{SpotID: spotID, ReporterID: reporterID, Reason: reason}
	return c.do(ctx, http.MethodPost, "/api/moderation/report", body, nil)
}
