// Package opendata содержит HTTP клиент для датасетов NYC Open Data (Socrata).
package opendata

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"

	"github.com/nyc-parking-api/internal/config"
	"github.com/nyc-parking-api/internal/domain"
	"github.com/nyc-parking-api/internal/domain/repository"
	"github.com/nyc-parking-api/internal/pkg/geo"
	"go.uber.org/zap"
)

// Socrata датасеты отдают 403 без browser-like заголовков на больших $limit
const userAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36"

type client struct {
	httpClient    *http.Client
	signsURL      string
	metersURL     string
	violationsURL string
	appToken      string
	fallbackLimit int
	logger        *zap.Logger
}

// NewClient создает новый клиент NYC Open Data
func NewClient(cfg *config.OpenDataConfig, logger *zap.Logger) repository.OpenDataRepository {
	return &client{
		httpClient: &http.Client{
			Timeout: cfg.RequestTimeout,
		},
		signsURL:      cfg.ParkingSignsURL,
		metersURL:     cfg.MeterZonesURL,
		violationsURL: cfg.ViolationsURL,
		appToken:      cfg.AppToken,
		fallbackLimit: cfg.FallbackLimit,
		logger:        logger,
	}
}

// fetchRows загружает строки датасета с параметром $limit.
// На 403 повторяет запрос один раз с уменьшенным лимитом.
func (c *client) fetchRows(ctx context.Context, baseURL string, limit int) ([]map[string]interface{}, error) {
	rows, status, err := c.doRequest(ctx, baseURL, limit)
	if err != nil {
		return nil, err
	}

	if status == http.StatusForbidden {
		c.logger.Warn("Received 403 Forbidden, retrying with smaller limit",
			zap.String("url", baseURL),
			zap.Int("fallback_limit", c.fallbackLimit))
		rows, status, err = c.doRequest(ctx, baseURL, c.fallbackLimit)
		if err != nil {
			return nil, err
		}
	}

	if status != http.StatusOK {
		return nil, fmt.Errorf("open data request failed: %s returned status %d", baseURL, status)
	}

	return rows, nil
}

func (c *client) doRequest(ctx context.Context, baseURL string, limit int) ([]map[string]interface{}, int, error) {
	reqURL := fmt.Sprintf("%s?%s", baseURL, url.Values{"$limit": {strconv.Itoa(limit)}}.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, 0, fmt.Errorf("build open data request: %w", err)
	}

	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Accept-Language", "en-US,en;q=0.9")
	if c.appToken != "" {
		req.Header.Set("X-App-Token", c.appToken)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, 0, fmt.Errorf("open data request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		io.Copy(io.Discard, resp.Body)
		return nil, resp.StatusCode, nil
	}

	var rows []map[string]interface{}
	if err := json.NewDecoder(resp.Body).Decode(&rows); err != nil {
		return nil, resp.StatusCode, fmt.Errorf("decode open data response: %w", err)
	}

	return rows, resp.StatusCode, nil
}

// FetchParkingSigns загружает знаки парковки. Строки без валидных координат
// внутри bounding box NYC отбрасываются при загрузке.
func (c *client) FetchParkingSigns(ctx context.Context, limit int) ([]domain.ParkingSign, error) {
	rows, err := c.fetchRows(ctx, c.signsURL, limit)
	if err != nil {
		return nil, err
	}

	c.logger.Info("Received parking sign records", zap.Int("count", len(rows)))

	signs := make([]domain.ParkingSign, 0, len(rows))
	for _, row := range rows {
		lat, lon, ok := extractSignCoordinates(row)
		if !ok || !geo.InNYCBounds(lat, lon) {
			continue
		}

		signs = append(signs, domain.ParkingSign{
			Latitude:        lat,
			Longitude:       lon,
			SignID:          stringField(row, "sign_id", "objectid"),
			SignDescription: stringField(row, "sign_description", "signdesc1"),
			StreetName:      stringField(row, "street_name", "on_street"),
			CrossStreet:     stringField(row, "cross_street", "from_street"),
			Borough:         stringField(row, "borough"),
			Attributes: extraAttributes(row,
				"latitude", "longitude", "sign_x_coord", "sign_y_coord",
				"sign_id", "objectid", "sign_description", "signdesc1",
				"street_name", "on_street", "cross_street", "from_street", "borough"),
		})
	}

	c.logger.Info("Loaded parking sign records", zap.Int("count", len(signs)))
	return signs, nil
}

// FetchMeterZones загружает паркоматы. Датасет использует колонки lat/long
// со строковыми значениями.
func (c *client) FetchMeterZones(ctx context.Context, limit int) ([]domain.MeterZone, error) {
	rows, err := c.fetchRows(ctx, c.metersURL, limit)
	if err != nil {
		return nil, err
	}

	meters := make([]domain.MeterZone, 0, len(rows))
	for _, row := range rows {
		lat, okLat := numericField(row, "lat")
		lon, okLon := numericField(row, "long")
		if !okLat || !okLon || !geo.InNYCBounds(lat, lon) {
			continue
		}

		meters = append(meters, domain.MeterZone{
			Latitude:    lat,
			Longitude:   lon,
			MeterNumber: stringField(row, "meter_number"),
			OnStreet:    stringField(row, "on_street"),
			MeterHours:  stringField(row, "meter_hours"),
			Borough:     stringField(row, "borough"),
			Status:      stringField(row, "status"),
			Attributes: extraAttributes(row,
				"lat", "long", "meter_number", "on_street", "meter_hours", "borough", "status"),
		})
	}

	c.logger.Info("Loaded meter zone records", zap.Int("count", len(meters)))
	return meters, nil
}

// FetchViolations загружает сырые записи о нарушениях
func (c *client) FetchViolations(ctx context.Context, limit int) ([]domain.Violation, error) {
	rows, err := c.fetchRows(ctx, c.violationsURL, limit)
	if err != nil {
		return nil, err
	}

	violations := make([]domain.Violation, 0, len(rows))
	for _, row := range rows {
		v := domain.Violation{
			SummonsNumber:      stringField(row, "summons_number"),
			PlateID:            stringField(row, "plate_id"),
			RegistrationState:  stringField(row, "registration_state"),
			PlateType:          stringField(row, "plate_type"),
			IssueDate:          stringField(row, "issue_date"),
			ViolationCode:      stringField(row, "violation_code"),
			VehicleBodyType:    stringField(row, "vehicle_body_type"),
			VehicleMake:        stringField(row, "vehicle_make"),
			IssuingAgency:      stringField(row, "issuing_agency"),
			StreetName:         stringField(row, "street_name"),
			IntersectingStreet: stringField(row, "intersecting_street"),
			ViolationLocation:  stringField(row, "violation_location"),
			ViolationCounty:    stringField(row, "violation_county"),
		}
		if lat, ok := numericField(row, "latitude"); ok {
			if lon, ok := numericField(row, "longitude"); ok && geo.InNYCBounds(lat, lon) {
				v.Latitude = &lat
				v.Longitude = &lon
			}
		}
		violations = append(violations, v)
	}

	c.logger.Info("Loaded violation records", zap.Int("count", len(violations)))
	return violations, nil
}

// Probe делает тестовые запросы с $limit=10 к датасетам знаков и паркоматов
func (c *client) Probe(ctx context.Context) map[string]repository.DatasetProbe {
	results := make(map[string]repository.DatasetProbe, 2)
	results["parking_signs"] = c.probeDataset(ctx, c.signsURL)
	results["meter_zones"] = c.probeDataset(ctx, c.metersURL)
	return results
}

func (c *client) probeDataset(ctx context.Context, baseURL string) repository.DatasetProbe {
	probe := repository.DatasetProbe{
		URL: fmt.Sprintf("%s?$limit=10", baseURL),
	}

	rows, status, err := c.doRequest(ctx, baseURL, 10)
	if err != nil {
		probe.Error = err.Error()
		return probe
	}

	probe.StatusCode = status
	probe.DataLength = len(rows)
	return probe
}
