package domain

import "time"

// Favourite - связь пользователь-спот (сохранённый спот).
// Уникальна по паре (user_id, spot_id).
type Favourite struct {
	ID        string    `json:"id" db:"id"`
	UserID    string    `json:"user_id" db:"user_id"`
	SpotID    string    `json:"spot_id" db:"spot_id"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}
