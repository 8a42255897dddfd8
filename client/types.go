package client

import "time"

// Spot - локация для фотосъёмки
type Spot struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	PhotoTips   string    `json:"photo_tips"`
	City        string    `json:"city"`
	Country     string    `json:"country"`
	Image       string    `json:"image"`
	Latitude    float64   `json:"latitude"`
	Longitude   float64   `json:"longitude"`
	AuthorID    string    `json:"author_id"`
	Accepted    bool      `json:"accepted"`
	CreatedAt   time.Time `json:"created_at"`
}

// Profile - публичный профиль пользователя
type Profile struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	AvatarURL *string   `json:"avatar_url"`
	CreatedAt time.Time `json:"created_at"`
}

// SpotInput - поля для создания и редактирования спота
type SpotInput struct {
	ID          string  `json:"id,omitempty"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	PhotoTips   string  `json:"photo_tips"`
	City        string  `json:"city"`
	Country     string  `json:"country"`
	Image       string  `json:"image"`
	Latitude    float64 `json:"latitude"`
	Longitude   float64 `json:"longitude"`
}

// FilterAll - значение "без фильтра" для страны и города
const FilterAll = "All"

// Event kinds
const (
	EventAdded   = "added"
	EventRemoved = "removed"
)

// Event - уведомление об изменении избранного
type Event struct {
	Kind   string
	SpotID string
}
