package domain

// MeterZone - паркомат из датасета NYC Open Data (693u-uax6)
type MeterZone struct {
	Latitude    float64           `json:"latitude"`
	Longitude   float64           `json:"longitude"`
	MeterNumber string            `json:"meter_number"`
	OnStreet    string            `json:"on_street"`
	MeterHours  string            `json:"meter_hours"`
	Borough     string            `json:"borough"`
	Status      string            `json:"status"`
	Attributes  map[string]string `json:"attributes,omitempty"`
}

// Coordinates реализует geo.Locatable
func (m MeterZone) Coordinates() (float64, float64) {
	return m.Latitude, m.Longitude
}
