package dto

// UploadResponse - результат загрузки изображения
type UploadResponse struct {
	URL      string `json:"url"`
	PublicID string `json:"public_id"`
}
