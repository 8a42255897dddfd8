package dto

// ReverseGeocodeRequest - координаты для обратного геокодирования
type ReverseGeocodeRequest struct {
	Lat float64 `query:"lat" validate:"latitude"`
	Lon float64 `query:"lon" validate:"longitude"`
}
