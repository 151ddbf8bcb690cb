package postgres

import (
	"context"
	"database/sql"
	stderrors "errors"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"go.uber.org/zap"

	"github.com/inkatravel-api/internal/domain"
	"github.com/inkatravel-api/internal/domain/repository"
	"github.com/inkatravel-api/internal/pkg/errors"
)

type tourRepository struct {
	db     *sqlx.DB
	logger *zap.Logger
}

func NewTourRepository(db *DB) repository.TourRepository {
	return &tourRepository{
		db:     db.DB,
		logger: db.logger,
	}
}

// tourRow mirrors the tours table. Translated fields and nested
// sub-documents live in JSONB columns, flat lists in text arrays.
type tourRow struct {
	ID                 string          `db:"id"`
	Slug               string          `db:"slug"`
	Title              []byte          `db:"title"`
	Subtitle           []byte          `db:"subtitle"`
	Description        []byte          `db:"description"`
	Duration           []byte          `db:"duration"`
	Location           []byte          `db:"location"`
	Region             sql.NullString  `db:"region"`
	ImageURL           sql.NullString  `db:"image_url"`
	GalleryURLs        pq.StringArray  `db:"gallery_urls"`
	Price              float64         `db:"price"`
	OriginalPrice      sql.NullFloat64 `db:"original_price"`
	Rating             float64         `db:"rating"`
	Reviews            int             `db:"reviews"`
	Category           string          `db:"category"`
	Difficulty         string          `db:"difficulty"`
	PackageType        string          `db:"package_type"`
	Highlights         []byte          `db:"highlights"`
	Itinerary          []byte          `db:"itinerary"`
	Includes           []byte          `db:"includes"`
	NotIncludes        []byte          `db:"not_includes"`
	ToBring            []byte          `db:"to_bring"`
	Conditions         []byte          `db:"conditions"`
	TransportOptionIDs pq.StringArray  `db:"transport_option_ids"`
	IsActive           bool            `db:"is_active"`
	CreatedAt          time.Time       `db:"created_at"`
	UpdatedAt          time.Time       `db:"updated_at"`
}

const tourColumns = `
	id, slug, title, subtitle, description, duration, location, region,
	image_url, gallery_urls, price, original_price, rating, reviews,
	category, difficulty, package_type, highlights, itinerary, includes,
	not_includes, to_bring, conditions, transport_option_ids, is_active,
	created_at, updated_at`

func (r *tourRepository) Create(ctx context.Context, tour *domain.Tour) error {
	row, err := tourToRow(tour)
	if err != nil {
		r.logger.Error("Failed to encode tour", zap.Error(err))
		return errors.ErrInternalServer
	}

	query := `
		INSERT INTO tours (` + tourColumns + `)
		VALUES (
			:id, :slug, :title, :subtitle, :description, :duration, :location, :region,
			:image_url, :gallery_urls, :price, :original_price, :rating, :reviews,
			:category, :difficulty, :package_type, :highlights, :itinerary, :includes,
			:not_includes, :to_bring, :conditions, :transport_option_ids, :is_active,
			:created_at, :updated_at
		)`

	if _, err := r.db.NamedExecContext(ctx, query, row); err != nil {
		if isUniqueViolation(err) {
			return errors.ErrDuplicateSlug
		}
		r.logger.Error("Failed to insert tour", zap.String("slug", tour.Slug), zap.Error(err))
		return errors.ErrDatabaseError
	}
	return nil
}

func (r *tourRepository) Update(ctx context.Context, tour *domain.Tour) error {
	row, err := tourToRow(tour)
	if err != nil {
		r.logger.Error("Failed to encode tour", zap.Error(err))
		return errors.ErrInternalServer
	}

	query := `
		UPDATE tours SET
			slug = :slug, title = :title, subtitle = :subtitle,
			description = :description, duration = :duration, location = :location,
			region = :region, image_url = :image_url, gallery_urls = :gallery_urls,
			price = :price, original_price = :original_price, rating = :rating,
			reviews = :reviews, category = :category, difficulty = :difficulty,
			package_type = :package_type, highlights = :highlights,
			itinerary = :itinerary, includes = :includes,
			not_includes = :not_includes, to_bring = :to_bring,
			conditions = :conditions, transport_option_ids = :transport_option_ids,
			is_active = :is_active, updated_at = :updated_at
		WHERE id = :id`

	res, err := r.db.NamedExecContext(ctx, query, row)
	if err != nil {
		if isUniqueViolation(err) {
			return errors.ErrDuplicateSlug
		}
		r.logger.Error("Failed to update tour", zap.String("tour_id", tour.ID), zap.Error(err))
		return errors.ErrDatabaseError
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return errors.ErrTourNotFound
	}
	return nil
}

func (r *tourRepository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM tours WHERE id = $1`, id)
	if err != nil {
		r.logger.Error("Failed to delete tour", zap.String("tour_id", id), zap.Error(err))
		return errors.ErrDatabaseError
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return errors.ErrTourNotFound
	}
	return nil
}

func (r *tourRepository) GetByID(ctx context.Context, id string) (*domain.Tour, error) {
	return r.getOne(ctx, `SELECT `+tourColumns+` FROM tours WHERE id = $1`, id)
}

func (r *tourRepository) GetBySlug(ctx context.Context, slug string) (*domain.Tour, error) {
	return r.getOne(ctx, `SELECT `+tourColumns+` FROM tours WHERE slug = $1`, slug)
}

func (r *tourRepository) getOne(ctx context.Context, query string, arg interface{}) (*domain.Tour, error) {
	var row tourRow
	if err := r.db.GetContext(ctx, &row, query, arg); err != nil {
		if stderrors.Is(err, sql.ErrNoRows) {
			return nil, errors.ErrTourNotFound
		}
		r.logger.Error("Failed to get tour", zap.Error(err))
		return nil, errors.ErrDatabaseError
	}
	return tourFromRow(&row)
}

func (r *tourRepository) List(ctx context.Context, onlyActive bool) ([]*domain.Tour, error) {
	query := `SELECT ` + tourColumns + ` FROM tours`
	if onlyActive {
		query += ` WHERE is_active`
	}
	query += ` ORDER BY created_at DESC`

	var rows []tourRow
	if err := r.db.SelectContext(ctx, &rows, query); err != nil {
		r.logger.Error("Failed to list tours", zap.Error(err))
		return nil, errors.ErrDatabaseError
	}

	tours := make([]*domain.Tour, 0, len(rows))
	for i := range rows {
		tour, err := tourFromRow(&rows[i])
		if err != nil {
			r.logger.Error("Failed to decode tour row", zap.String("tour_id", rows[i].ID), zap.Error(err))
			continue
		}
		tours = append(tours, tour)
	}
	return tours, nil
}

func (r *tourRepository) SlugExists(ctx context.Context, slug string) (bool, error) {
	var exists bool
	err := r.db.GetContext(ctx, &exists, `SELECT EXISTS (SELECT 1 FROM tours WHERE slug = $1)`, slug)
	if err != nil {
		r.logger.Error("Failed to check tour slug", zap.String("slug", slug), zap.Error(err))
		return false, errors.ErrDatabaseError
	}
	return exists, nil
}

func (r *tourRepository) SetTransportOptions(ctx context.Context, tourID string, transportIDs []string) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE tours SET transport_option_ids = $1, updated_at = NOW() WHERE id = $2`,
		pq.StringArray(transportIDs), tourID)
	if err != nil {
		r.logger.Error("Failed to set transport options", zap.String("tour_id", tourID), zap.Error(err))
		return errors.ErrDatabaseError
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return errors.ErrTourNotFound
	}
	return nil
}

func tourToRow(t *domain.Tour) (*tourRow, error) {
	row := &tourRow{
		ID:                 t.ID,
		Slug:               t.Slug,
		Region:             sql.NullString{String: t.Region, Valid: t.Region != ""},
		ImageURL:           sql.NullString{String: t.ImageURL, Valid: t.ImageURL != ""},
		GalleryURLs:        pq.StringArray(t.GalleryURLs),
		Price:              t.Price,
		OriginalPrice:      sql.NullFloat64{Float64: t.OriginalPrice, Valid: t.OriginalPrice > 0},
		Rating:             t.Rating,
		Reviews:            t.Reviews,
		Category:           t.Category,
		Difficulty:         t.Difficulty,
		PackageType:        t.PackageType,
		TransportOptionIDs: pq.StringArray(t.TransportOptionIDs),
		IsActive:           t.IsActive,
		CreatedAt:          t.CreatedAt,
		UpdatedAt:          t.UpdatedAt,
	}

	var err error
	if row.Title, err = toJSONB(t.Title); err != nil {
		return nil, err
	}
	if row.Subtitle, err = toJSONB(t.Subtitle); err != nil {
		return nil, err
	}
	if row.Description, err = toJSONB(t.Description); err != nil {
		return nil, err
	}
	if row.Duration, err = toJSONB(t.Duration); err != nil {
		return nil, err
	}
	if row.Location, err = toJSONB(t.Location); err != nil {
		return nil, err
	}
	if row.Highlights, err = toJSONB(t.Highlights); err != nil {
		return nil, err
	}
	if row.Itinerary, err = toJSONB(t.Itinerary); err != nil {
		return nil, err
	}
	if row.Includes, err = toJSONB(t.Includes); err != nil {
		return nil, err
	}
	if row.NotIncludes, err = toJSONB(t.NotIncludes); err != nil {
		return nil, err
	}
	if row.ToBring, err = toJSONB(t.ToBring); err != nil {
		return nil, err
	}
	if row.Conditions, err = toJSONB(t.Conditions); err != nil {
		return nil, err
	}
	return row, nil
}

func tourFromRow(row *tourRow) (*domain.Tour, error) {
	t := &domain.Tour{
		ID:                 row.ID,
		Slug:               row.Slug,
		Region:             row.Region.String,
		ImageURL:           row.ImageURL.String,
		GalleryURLs:        row.GalleryURLs,
		Price:              row.Price,
		OriginalPrice:      row.OriginalPrice.Float64,
		Rating:             row.Rating,
		Reviews:            row.Reviews,
		Category:           row.Category,
		Difficulty:         row.Difficulty,
		PackageType:        row.PackageType,
		TransportOptionIDs: row.TransportOptionIDs,
		IsActive:           row.IsActive,
		CreatedAt:          row.CreatedAt,
		UpdatedAt:          row.UpdatedAt,
	}

	for _, f := range []struct {
		data []byte
		dst  interface{}
	}{
		{row.Title, &t.Title},
		{row.Subtitle, &t.Subtitle},
		{row.Description, &t.Description},
		{row.Duration, &t.Duration},
		{row.Location, &t.Location},
		{row.Highlights, &t.Highlights},
		{row.Itinerary, &t.Itinerary},
		{row.Includes, &t.Includes},
		{row.NotIncludes, &t.NotIncludes},
		{row.ToBring, &t.ToBring},
		{row.Conditions, &t.Conditions},
	} {
		if err := fromJSONB(f.data, f.dst); err != nil {
			return nil, err
		}
	}
	return t, nil
}

// isUniqueViolation reports a Postgres 23505 error.
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return stderrors.As(err, &pgErr) && pgErr.Code == "23505"
}
