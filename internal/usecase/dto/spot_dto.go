package dto

// ListSpotsRequest - параметры списка спотов
type ListSpotsRequest struct {
	Country string `query:"country"`
	City    string `query:"city"`
}

// CreateSpotRequest - создание спота. ID может прийти от клиента
// (мобильное приложение генерирует uuid само), иначе генерируется сервером.
type CreateSpotRequest struct {
	ID          string  `json:"id" validate:"omitempty,uuid4"`
	Name        string  `json:"name" validate:"required,min=2,max=120"`
	Description string  `json:"description" validate:"max=2000"`
	PhotoTips   string  `json:"photo_tips" validate:"max=2000"`
	City        string  `json:"city" validate:"required"`
	Country     string  `json:"country" validate:"required"`
	Image       string  `json:"image" validate:"required,url"`
	Latitude    float64 `json:"latitude" validate:"latitude"`
	Longitude   float64 `json:"longitude" validate:"longitude"`
}

// UpdateSpotRequest - редактирование спота автором
type UpdateSpotRequest struct {
	Name        string `json:"name" validate:"required,min=2,max=120"`
	Description string `json:"description" validate:"max=2000"`
	PhotoTips   string `json:"photo_tips" validate:"max=2000"`
	City        string `json:"city" validate:"required"`
	Country     string `json:"country" validate:"required"`
	Image       string `json:"image" validate:"required,url"`
}

// CountResponse - ответ счётчиков
type CountResponse struct {
	Count int `json:"count"`
}
