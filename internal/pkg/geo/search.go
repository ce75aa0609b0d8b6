package geo

import (
	"sort"
)

// Locatable - запись с координатами, по которой можно искать
type Locatable interface {
	Coordinates() (lat, lon float64)
}

// Match - запись с вычисленным расстоянием до точки запроса
type Match[T Locatable] struct {
	Record         T
	DistanceMeters float64
}

// FindWithinRadius возвращает записи в радиусе radiusMeters от точки (lat, lon),
// отсортированные по возрастанию расстояния. Сортировка стабильная: при равных
// расстояниях сохраняется исходный порядок записей.
func FindWithinRadius[T Locatable](lat, lon, radiusMeters float64, records []T) []Match[T] {
	matches := make([]Match[T], 0)

	for _, rec := range records {
		recLat, recLon := rec.Coordinates()
		distance := HaversineDistance(lat, lon, recLat, recLon)
		if distance <= radiusMeters {
			matches = append(matches, Match[T]{
				Record:         rec,
				DistanceMeters: distance,
			})
		}
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].DistanceMeters < matches[j].DistanceMeters
	})

	return matches
}

// FindNearest возвращает ближайшую к точке (lat, lon) запись без ограничения
// по радиусу. Для пустого набора записей возвращает ok=false.
func FindNearest[T Locatable](lat, lon float64, records []T) (Match[T], bool) {
	var nearest Match[T]
	if len(records) == 0 {
		return nearest, false
	}

	nearest.DistanceMeters = -1
	for _, rec := range records {
		recLat, recLon := rec.Coordinates()
		distance := HaversineDistance(lat, lon, recLat, recLon)
		if nearest.DistanceMeters < 0 || distance < nearest.DistanceMeters {
			nearest = Match[T]{Record: rec, DistanceMeters: distance}
		}
	}

	return nearest, true
}
