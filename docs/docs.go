// Package docs SpotShot API.
//
// Бэкенд каталога локаций для фотосъёмки. Предоставляет API для
// публикации спотов, модерации, избранного, загрузки изображений
// и обратного геокодирования.
//
//	Schemes: http, https
//	BasePath: /
//	Version: 1.0.0
//
//	Consumes:
//	- application/json
//	- multipart/form-data
//
//	Produces:
//	- application/json
//
//	Security:
//	- bearer_token:
//
//	SecurityDefinitions:
//	bearer_token:
//	     type: apiKey
//	     name: Authorization
//	     in: header
//
// swagger:meta
package docs
