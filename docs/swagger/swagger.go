// Package swagger NYC Parking API.
//
// REST API для поиска парковки в Нью-Йорке на данных NYC Open Data.
// Предоставляет поиск знаков парковки и паркоматов по координатам,
// а также статистику и поиск нарушений парковки.
//
// Основные возможности:
// - Поиск знаков парковки в радиусе точки
// - Поиск ближайшего паркомата с тарифом
// - Статистика нарушений по боро и годам
// - Поиск нарушений с координатами в радиусе точки
// - Загрузка реальных и синтетических данных
//
//	Schemes: http, https
//	BasePath: /
//	Version: 1.0.0
//
//	Consumes:
//	- application/json
//
//	Produces:
//	- application/json
//
// swagger:meta
package swagger
