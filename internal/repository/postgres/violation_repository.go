package postgres

import (
	"context"
	"fmt"
	"strings"

	"github.com/nyc-parking-api/internal/domain"
	"github.com/nyc-parking-api/internal/domain/repository"
	"github.com/nyc-parking-api/internal/pkg/geo"
	"go.uber.org/zap"
)

type violationRepository struct {
	db     *DB
	logger *zap.Logger
}

// NewViolationRepository создает новый экземпляр violation repository
func NewViolationRepository(db *DB, logger *zap.Logger) repository.ViolationRepository {
	return &violationRepository{
		db:     db,
		logger: logger,
	}
}

const violationsSchema = `
CREATE TABLE IF NOT EXISTS violations (
	id BIGSERIAL PRIMARY KEY,
	summons_number TEXT UNIQUE,
	plate_id TEXT DEFAULT '',
	registration_state TEXT DEFAULT '',
	plate_type TEXT DEFAULT '',
	issue_date TEXT DEFAULT '',
	violation_code TEXT DEFAULT '',
	vehicle_body_type TEXT DEFAULT '',
	vehicle_make TEXT DEFAULT '',
	issuing_agency TEXT DEFAULT '',
	street_name TEXT DEFAULT '',
	intersecting_street TEXT DEFAULT '',
	violation_location TEXT DEFAULT '',
	violation_description TEXT DEFAULT '',
	violation_county TEXT DEFAULT '',
	borough TEXT DEFAULT '',
	fine_amount DOUBLE PRECISION DEFAULT 0,
	latitude DOUBLE PRECISION,
	longitude DOUBLE PRECISION
);
CREATE INDEX IF NOT EXISTS idx_violations_borough ON violations (borough);
CREATE INDEX IF NOT EXISTS idx_violations_issue_date ON violations (issue_date);
`

// InitSchema создаёт таблицу violations если её нет
func (r *violationRepository) InitSchema(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, violationsSchema); err != nil {
		return fmt.Errorf("init violations schema: %w", err)
	}

	r.logger.Info("Violations schema initialized")
	return nil
}

// buildTrendsQuery собирает запрос агрегации с опциональными фильтрами
func buildTrendsQuery(borough string, year int) (string, []interface{}) {
	var sb strings.Builder
	sb.WriteString(`
		SELECT
			violation_description AS violation_type,
			COUNT(*) AS violation_count,
			COALESCE(AVG(fine_amount), 0) AS avg_fine
		FROM violations
		WHERE 1=1`)

	args := make([]interface{}, 0, 2)

	if borough != "" {
		args = append(args, borough)
		sb.WriteString(fmt.Sprintf(" AND UPPER(borough) = UPPER($%d)", len(args)))
	}

	if year != 0 {
		args = append(args, fmt.Sprintf("%04d", year))
		sb.WriteString(fmt.Sprintf(" AND substring(issue_date, 1, 4) = $%d", len(args)))
	}

	sb.WriteString(`
		GROUP BY violation_description
		ORDER BY violation_count DESC
		LIMIT 10`)

	return sb.String(), args
}

// GetTrends возвращает топ-10 типов нарушений со средним штрафом
func (r *violationRepository) GetTrends(ctx context.Context, borough string, year int) (*domain.ViolationTrends, error) {
	query, args := buildTrendsQuery(borough, year)

	trends := make([]domain.ViolationTrend, 0)
	if err := r.db.SelectContext(ctx, &trends, query, args...); err != nil {
		return nil, fmt.Errorf("query violation trends: %w", err)
	}

	result := &domain.ViolationTrends{
		Trends:  trends,
		Filters: domain.TrendFilters{},
	}
	if borough != "" {
		result.Filters.Borough = &borough
	}
	if year != 0 {
		result.Filters.Year = &year
	}
	for i := range trends {
		trends[i].AvgFine = roundFine(trends[i].AvgFine)
		result.TotalViolations += trends[i].Count
	}

	return result, nil
}

func roundFine(v float64) float64 {
	return float64(int64(v*100+0.5)) / 100
}

// buildNearbyQuery собирает поиск нарушений в радиусе: haversine в SQL
// (сферическая аппроксимация, R=6371000 м), фильтр по расстоянию,
// сортировка по возрастанию.
func buildNearbyQuery(q domain.ViolationQuery) (string, []interface{}) {
	var sb strings.Builder
	args := []interface{}{q.Lat, q.Lon}

	sb.WriteString(`
		SELECT * FROM (
			SELECT
				summons_number, issue_date, violation_code, violation_description,
				street_name, violation_county, borough, fine_amount,
				latitude, longitude,
				(6371000 * acos(LEAST(1.0,
					cos(radians($1)) * cos(radians(latitude)) *
					cos(radians(longitude) - radians($2)) +
					sin(radians($1)) * sin(radians(latitude))
				))) AS distance_meters
			FROM violations
			WHERE latitude IS NOT NULL
			  AND longitude IS NOT NULL`)

	if q.StartDate != "" {
		args = append(args, q.StartDate)
		sb.WriteString(fmt.Sprintf(" AND issue_date >= $%d", len(args)))
	}
	if q.EndDate != "" {
		args = append(args, q.EndDate)
		sb.WriteString(fmt.Sprintf(" AND issue_date <= $%d", len(args)))
	}

	args = append(args, q.RadiusMeters)
	sb.WriteString(fmt.Sprintf(`
		) sub
		WHERE distance_meters <= $%d`, len(args)))

	args = append(args, q.Limit)
	sb.WriteString(fmt.Sprintf(`
		ORDER BY distance_meters ASC
		LIMIT $%d`, len(args)))

	return sb.String(), args
}

// FindNearby возвращает нарушения в радиусе точки, отсортированные по расстоянию
func (r *violationRepository) FindNearby(ctx context.Context, q domain.ViolationQuery) ([]domain.ViolationWithDistance, error) {
	query, args := buildNearbyQuery(q)

	violations := make([]domain.ViolationWithDistance, 0)
	if err := r.db.SelectContext(ctx, &violations, query, args...); err != nil {
		return nil, fmt.Errorf("query nearby violations: %w", err)
	}

	for i := range violations {
		violations[i].DistanceMeters = geo.RoundDistance(violations[i].DistanceMeters)
	}

	return violations, nil
}

// Count возвращает общее количество нарушений
func (r *violationRepository) Count(ctx context.Context) (int, error) {
	var count int
	if err := r.db.GetContext(ctx, &count, "SELECT COUNT(*) FROM violations"); err != nil {
		return 0, fmt.Errorf("count violations: %w", err)
	}
	return count, nil
}

// DateRange возвращает минимальную и максимальную issue_date
func (r *violationRepository) DateRange(ctx context.Context) (*domain.DateRange, error) {
	var row struct {
		MinDate *string `db:"min_date"`
		MaxDate *string `db:"max_date"`
	}

	query := `
		SELECT MIN(issue_date) AS min_date, MAX(issue_date) AS max_date
		FROM violations
		WHERE issue_date <> ''`

	if err := r.db.GetContext(ctx, &row, query); err != nil {
		return nil, fmt.Errorf("query violations date range: %w", err)
	}

	dr := &domain.DateRange{}
	if row.MinDate != nil {
		dr.Start = *row.MinDate
	}
	if row.MaxDate != nil {
		dr.End = *row.MaxDate
	}

	return dr, nil
}

const insertViolationQuery = `
	INSERT INTO violations (
		summons_number, plate_id, registration_state, plate_type,
		issue_date, violation_code, vehicle_body_type, vehicle_make,
		issuing_agency, street_name, intersecting_street, violation_location,
		violation_description, violation_county, borough, fine_amount,
		latitude, longitude
	) VALUES (
		:summons_number, :plate_id, :registration_state, :plate_type,
		:issue_date, :violation_code, :vehicle_body_type, :vehicle_make,
		:issuing_agency, :street_name, :intersecting_street, :violation_location,
		:violation_description, :violation_county, :borough, :fine_amount,
		:latitude, :longitude
	)
	ON CONFLICT (summons_number) DO UPDATE SET
		issue_date = EXCLUDED.issue_date,
		violation_description = EXCLUDED.violation_description,
		borough = EXCLUDED.borough,
		fine_amount = EXCLUDED.fine_amount,
		latitude = EXCLUDED.latitude,
		longitude = EXCLUDED.longitude`

// InsertBatch вставляет нарушения по одной записи, upsert по summons_number.
// Битые записи пропускаются с warning, остальные загружаются.
func (r *violationRepository) InsertBatch(ctx context.Context, violations []domain.Violation) (int, error) {
	inserted := 0
	for i := range violations {
		if violations[i].SummonsNumber == "" {
			continue
		}
		if _, err := r.db.NamedExecContext(ctx, insertViolationQuery, &violations[i]); err != nil {
			r.logger.Warn("Failed to insert violation",
				zap.String("summons_number", violations[i].SummonsNumber),
				zap.Error(err))
			continue
		}
		inserted++
	}

	return inserted, nil
}
