package domain

// ParkingSign - знак парковки из датасета NYC Open Data (nfid-uabd).
// Координаты фиксированные, остальные колонки датасета сохраняются
// в Attributes без потери схемы. Запись неизменяема после загрузки.
type ParkingSign struct {
	Latitude        float64           `json:"latitude"`
	Longitude       float64           `json:"longitude"`
	SignID          string            `json:"sign_id"`
	SignDescription string            `json:"sign_description"`
	StreetName      string            `json:"street_name"`
	CrossStreet     string            `json:"cross_street"`
	Borough         string            `json:"borough"`
	Attributes      map[string]string `json:"attributes,omitempty"`
}

// Coordinates реализует geo.Locatable
func (s ParkingSign) Coordinates() (float64, float64) {
	return s.Latitude, s.Longitude
}
