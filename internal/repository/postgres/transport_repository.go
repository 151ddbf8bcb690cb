package postgres

import (
	"context"
	"database/sql"
	stderrors "errors"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"go.uber.org/zap"

	"github.com/inkatravel-api/internal/domain"
	"github.com/inkatravel-api/internal/domain/repository"
	"github.com/inkatravel-api/internal/pkg/errors"
)

type transportRepository struct {
	db     *sqlx.DB
	logger *zap.Logger
}

func NewTransportRepository(db *DB) repository.TransportRepository {
	return &transportRepository{
		db:     db.DB,
		logger: db.logger,
	}
}

type transportRow struct {
	ID                 string          `db:"id"`
	Slug               string          `db:"slug"`
	Title              []byte          `db:"title"`
	Description        []byte          `db:"description"`
	TermsAndConditions []byte          `db:"terms_and_conditions"`
	ImageURL           sql.NullString  `db:"image_url"`
	GalleryURLs        pq.StringArray  `db:"gallery_urls"`
	Origin             []byte          `db:"origin"`
	Destination        []byte          `db:"destination"`
	IntermediateStops  []byte          `db:"intermediate_stops"`
	AvailableDays      pq.StringArray  `db:"available_days"`
	DepartureTime      string          `db:"departure_time"`
	ArrivalTime        string          `db:"arrival_time"`
	DurationInHours    sql.NullFloat64 `db:"duration_in_hours"`
	Duration           sql.NullString  `db:"duration"`
	Price              float64         `db:"price"`
	ServicePrice       sql.NullFloat64 `db:"service_price"`
	ServiceType        string          `db:"service_type"`
	Rating             float64         `db:"rating"`
	VehicleID          sql.NullString  `db:"vehicle_id"`
	RouteCode          string          `db:"route_code"`
	IsActive           bool            `db:"is_active"`
	IsFeatured         bool            `db:"is_featured"`
	Itinerary          []byte          `db:"itinerary"`
	CreatedAt          time.Time       `db:"created_at"`
	UpdatedAt          time.Time       `db:"updated_at"`
}

const transportColumns = `
	id, slug, title, description, terms_and_conditions, image_url,
	gallery_urls, origin, destination, intermediate_stops, available_days,
	departure_time, arrival_time, duration_in_hours, duration, price,
	service_price, service_type, rating, vehicle_id, route_code, is_active,
	is_featured, itinerary, created_at, updated_at`

func (r *transportRepository) Create(ctx context.Context, transport *domain.TourTransport) error {
	row, err := transportToRow(transport)
	if err != nil {
		r.logger.Error("Failed to encode transport", zap.Error(err))
		return errors.ErrInternalServer
	}

	query := `
		INSERT INTO tour_transports (` + transportColumns + `)
		VALUES (
			:id, :slug, :title, :description, :terms_and_conditions, :image_url,
			:gallery_urls, :origin, :destination, :intermediate_stops, :available_days,
			:departure_time, :arrival_time, :duration_in_hours, :duration, :price,
			:service_price, :service_type, :rating, :vehicle_id, :route_code, :is_active,
			:is_featured, :itinerary, :created_at, :updated_at
		)`

	if _, err := r.db.NamedExecContext(ctx, query, row); err != nil {
		if isUniqueViolation(err) {
			return errors.ErrDuplicateSlug
		}
		r.logger.Error("Failed to insert transport", zap.String("slug", transport.Slug), zap.Error(err))
		return errors.ErrDatabaseError
	}
	return nil
}

func (r *transportRepository) Update(ctx context.Context, transport *domain.TourTransport) error {
	row, err := transportToRow(transport)
	if err != nil {
		r.logger.Error("Failed to encode transport", zap.Error(err))
		return errors.ErrInternalServer
	}

	query := `
		UPDATE tour_transports SET
			slug = :slug, title = :title, description = :description,
			terms_and_conditions = :terms_and_conditions, image_url = :image_url,
			gallery_urls = :gallery_urls, origin = :origin, destination = :destination,
			intermediate_stops = :intermediate_stops, available_days = :available_days,
			departure_time = :departure_time, arrival_time = :arrival_time,
			duration_in_hours = :duration_in_hours, duration = :duration,
			price = :price, service_price = :service_price, service_type = :service_type,
			rating = :rating, vehicle_id = :vehicle_id, route_code = :route_code,
			is_active = :is_active, is_featured = :is_featured, itinerary = :itinerary,
			updated_at = :updated_at
		WHERE id = :id`

	res, err := r.db.NamedExecContext(ctx, query, row)
	if err != nil {
		if isUniqueViolation(err) {
			return errors.ErrDuplicateSlug
		}
		r.logger.Error("Failed to update transport", zap.String("transport_id", transport.ID), zap.Error(err))
		return errors.ErrDatabaseError
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return errors.ErrTransportNotFound
	}
	return nil
}

func (r *transportRepository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM tour_transports WHERE id = $1`, id)
	if err != nil {
		r.logger.Error("Failed to delete transport", zap.String("transport_id", id), zap.Error(err))
		return errors.ErrDatabaseError
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return errors.ErrTransportNotFound
	}
	return nil
}

func (r *transportRepository) GetByID(ctx context.Context, id string) (*domain.TourTransport, error) {
	return r.getOne(ctx, `SELECT `+transportColumns+` FROM tour_transports WHERE id = $1`, id)
}

func (r *transportRepository) GetBySlug(ctx context.Context, slug string) (*domain.TourTransport, error) {
	return r.getOne(ctx, `SELECT `+transportColumns+` FROM tour_transports WHERE slug = $1`, slug)
}

func (r *transportRepository) getOne(ctx context.Context, query string, arg interface{}) (*domain.TourTransport, error) {
	var row transportRow
	if err := r.db.GetContext(ctx, &row, query, arg); err != nil {
		if stderrors.Is(err, sql.ErrNoRows) {
			return nil, errors.ErrTransportNotFound
		}
		r.logger.Error("Failed to get transport", zap.Error(err))
		return nil, errors.ErrDatabaseError
	}
	return transportFromRow(&row)
}

func (r *transportRepository) GetByIDs(ctx context.Context, ids []string) ([]*domain.TourTransport, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	query := `SELECT ` + transportColumns + ` FROM tour_transports WHERE id = ANY($1)`

	var rows []transportRow
	if err := r.db.SelectContext(ctx, &rows, query, pq.StringArray(ids)); err != nil {
		r.logger.Error("Failed to get transports by ids", zap.Error(err))
		return nil, errors.ErrDatabaseError
	}
	return r.convertRows(rows)
}

func (r *transportRepository) List(ctx context.Context, onlyActive bool) ([]*domain.TourTransport, error) {
	query := `SELECT ` + transportColumns + ` FROM tour_transports`
	if onlyActive {
		query += ` WHERE is_active`
	}
	query += ` ORDER BY is_featured DESC, created_at DESC`

	var rows []transportRow
	if err := r.db.SelectContext(ctx, &rows, query); err != nil {
		r.logger.Error("Failed to list transports", zap.Error(err))
		return nil, errors.ErrDatabaseError
	}
	return r.convertRows(rows)
}

func (r *transportRepository) convertRows(rows []transportRow) ([]*domain.TourTransport, error) {
	transports := make([]*domain.TourTransport, 0, len(rows))
	for i := range rows {
		t, err := transportFromRow(&rows[i])
		if err != nil {
			r.logger.Error("Failed to decode transport row",
				zap.String("transport_id", rows[i].ID), zap.Error(err))
			continue
		}
		transports = append(transports, t)
	}
	return transports, nil
}

func (r *transportRepository) SlugExists(ctx context.Context, slug string) (bool, error) {
	var exists bool
	err := r.db.GetContext(ctx, &exists,
		`SELECT EXISTS (SELECT 1 FROM tour_transports WHERE slug = $1)`, slug)
	if err != nil {
		r.logger.Error("Failed to check transport slug", zap.String("slug", slug), zap.Error(err))
		return false, errors.ErrDatabaseError
	}
	return exists, nil
}

func (r *transportRepository) RouteCodeExists(ctx context.Context, routeCode string) (bool, error) {
	var exists bool
	err := r.db.GetContext(ctx, &exists,
		`SELECT EXISTS (SELECT 1 FROM tour_transports WHERE route_code = $1)`, routeCode)
	if err != nil {
		r.logger.Error("Failed to check route code", zap.String("route_code", routeCode), zap.Error(err))
		return false, errors.ErrDatabaseError
	}
	return exists, nil
}

func transportToRow(t *domain.TourTransport) (*transportRow, error) {
	row := &transportRow{
		ID:              t.ID,
		Slug:            t.Slug,
		ImageURL:        sql.NullString{String: t.ImageURL, Valid: t.ImageURL != ""},
		GalleryURLs:     pq.StringArray(t.GalleryURLs),
		AvailableDays:   pq.StringArray(t.AvailableDays),
		DepartureTime:   t.DepartureTime,
		ArrivalTime:     t.ArrivalTime,
		DurationInHours: sql.NullFloat64{Float64: t.DurationInHours, Valid: t.DurationInHours > 0},
		Duration:        sql.NullString{String: t.Duration, Valid: t.Duration != ""},
		Price:           t.Price,
		ServicePrice:    sql.NullFloat64{Float64: t.ServicePrice, Valid: t.ServicePrice > 0},
		ServiceType:     t.ServiceType,
		Rating:          t.Rating,
		VehicleID:       sql.NullString{String: t.VehicleID, Valid: t.VehicleID != ""},
		RouteCode:       t.RouteCode,
		IsActive:        t.IsActive,
		IsFeatured:      t.IsFeatured,
		CreatedAt:       t.CreatedAt,
		UpdatedAt:       t.UpdatedAt,
	}

	var err error
	if row.Title, err = toJSONB(t.Title); err != nil {
		return nil, err
	}
	if row.Description, err = toJSONB(t.Description); err != nil {
		return nil, err
	}
	if row.TermsAndConditions, err = toJSONB(t.TermsAndConditions); err != nil {
		return nil, err
	}
	if row.Origin, err = toJSONB(t.Origin); err != nil {
		return nil, err
	}
	if row.Destination, err = toJSONB(t.Destination); err != nil {
		return nil, err
	}
	if row.IntermediateStops, err = toJSONB(t.IntermediateStops); err != nil {
		return nil, err
	}
	if row.Itinerary, err = toJSONB(t.Itinerary); err != nil {
		return nil, err
	}
	return row, nil
}

func transportFromRow(row *transportRow) (*domain.TourTransport, error) {
	t := &domain.TourTransport{
		ID:              row.ID,
		Slug:            row.Slug,
		ImageURL:        row.ImageURL.String,
		GalleryURLs:     row.GalleryURLs,
		AvailableDays:   row.AvailableDays,
		DepartureTime:   row.DepartureTime,
		ArrivalTime:     row.ArrivalTime,
		DurationInHours: row.DurationInHours.Float64,
		Duration:        row.Duration.String,
		Price:           row.Price,
		ServicePrice:    row.ServicePrice.Float64,
		ServiceType:     row.ServiceType,
		Rating:          row.Rating,
		VehicleID:       row.VehicleID.String,
		RouteCode:       row.RouteCode,
		IsActive:        row.IsActive,
		IsFeatured:      row.IsFeatured,
		CreatedAt:       row.CreatedAt,
		UpdatedAt:       row.UpdatedAt,
	}

	for _, f := range []struct {
		data []byte
		dst  interface{}
	}{
		{row.Title, &t.Title},
		{row.Description, &t.Description},
		{row.TermsAndConditions, &t.TermsAndConditions},
		{row.Origin, &t.Origin},
		{row.Destination, &t.Destination},
		{row.IntermediateStops, &t.IntermediateStops},
		{row.Itinerary, &t.Itinerary},
	} {
		if err := fromJSONB(f.data, f.dst); err != nil {
			return nil, err
		}
	}
	return t, nil
}
