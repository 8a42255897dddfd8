package dto

// AddFavouriteRequest - сохранение спота в избранное
type AddFavouriteRequest struct {
	UserID string `json:"userId" validate:"required"`
	SpotID string `json:"spotId" validate:"required"`
}

// AddFavouriteResponse - подтверждение сохранения.
// AlreadySaved=true при повторном сохранении (операция идемпотентна).
type AddFavouriteResponse struct {
	Success      bool `json:"success"`
	AlreadySaved bool `json:"already_saved"`
}

// CheckFavouriteResponse - проверка "сохранил ли пользователь спот"
type CheckFavouriteResponse struct {
	Favorited bool `json:"favorited"`
}
