package domain

import "time"

// Spot представляет пользовательскую фото-локацию
type Spot struct {
	ID          string    `json:"id" db:"id"`
	Name        string    `json:"name" db:"name"`
	Description string    `json:"description" db:"description"`
	PhotoTips   string    `json:"photo_tips" db:"photo_tips"`
	City        string    `json:"city" db:"city"`
	Country     string    `json:"country" db:"country"`
	Image       string    `json:"image" db:"image"`
	Latitude    float64   `json:"latitude" db:"latitude"`
	Longitude   float64   `json:"longitude" db:"longitude"`
	AuthorID    string    `json:"author_id" db:"author_id"`
	Accepted    bool      `json:"accepted" db:"accepted"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
}

// VisibleTo проверяет видимость спота для пользователя.
// Не принятый модерацией спот видит только его автор.
func (s *Spot) VisibleTo(viewerID string) bool {
	if s.Accepted {
		return true
	}
	return viewerID != "" && viewerID == s.AuthorID
}

// SpotFilter - структурные фильтры списка спотов.
// Пустая строка или "All" означает отсутствие фильтра.
type SpotFilter struct {
	Country string
	City    string
}

// FilterAll - значение "фильтр не выбран"
const FilterAll = "All"

// Active проверяет, задан ли фильтр
func (f SpotFilter) Active() bool {
	return f.NormalizedCountry() != "" || f.NormalizedCity() != ""
}

// NormalizedCountry возвращает страну или "" если фильтр не задан
func (f SpotFilter) NormalizedCountry() string {
	if f.Country == FilterAll {
		return ""
	}
	return f.Country
}

// NormalizedCity возвращает город или "" если фильтр не задан
func (f SpotFilter) NormalizedCity() string {
	if f.City == FilterAll {
		return ""
	}
	return f.City
}
