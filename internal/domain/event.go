package domain

// Stream names
const (
	StreamFavouriteEvents = "stream:favourites:events"
)

// Favourite event kinds
const (
	FavouriteAdded   = "added"
	FavouriteRemoved = "removed"
)

// FavouriteEvent - событие изменения избранного.
// Публикуется API после успешной записи, воркер по нему
// инвалидирует кешированные счётчики.
type FavouriteEvent struct {
	Kind   string `json:"kind"`
	UserID string `json:"user_id"`
	SpotID string `json:"spot_id"`
}

// StreamMessage - сообщение из Redis Stream
type StreamMessage struct {
	ID   string
	Data string
}

// Address - результат обратного геокодирования
type Address struct {
	Country string `json:"country"`
	City    string `json:"city"`
}

// UploadedImage - результат загрузки изображения в хостинг
type UploadedImage struct {
	URL      string `json:"url"`
	PublicID string `json:"public_id"`
}
