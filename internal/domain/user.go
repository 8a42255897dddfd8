package domain

import "time"

// Profile - публичный профиль пользователя.
// Аутентификация живёт в Supabase, здесь только зеркало для отображения.
type Profile struct {
	ID        string    `json:"id" db:"id"`
	Username  string    `json:"username" db:"username"`
	AvatarURL *string   `json:"avatar_url,omitempty" db:"avatar_url"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}
