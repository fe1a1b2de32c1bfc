package postgres

import (
	"context"
	"database/sql"
	"errors"
	"strconv"
	"strings"

	"github.com/nandanugg/apartment-notifier/module/core/domain"
	"github.com/nandanugg/apartment-notifier/module/core/internal/repository/database"
)

var _ database.ListingRepository = (*ListingRepo)(nil)

const listingColumns = `id, name, url, price, location, latitude, longitude, area, area_found, near_bart, bart, bart_dist, created_at`

type ListingRepo struct {
	db *sql.DB
}

func NewListingRepo(db *sql.DB) *ListingRepo {
	return &ListingRepo{db: db}
}

func (r *ListingRepo) Insert(ctx context.Context, l *domain.Listing) error {
	var lat, lon, dist sql.NullFloat64
	if l.Geotag != nil {
		lat = sql.NullFloat64{Float64: l.Geotag.Lat, Valid: true}
		lon = sql.NullFloat64{Float64: l.Geotag.Lon, Valid: true}
	}
	if l.BartDist.Known {
		dist = sql.NullFloat64{Float64: l.BartDist.Km, Valid: true}
	}

	_, err := r.db.ExecContext(ctx,
		`INSERT INTO listings (`+listingColumns+`) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13) ON CONFLICT (id) DO NOTHING`,
		l.ID, l.Name, l.URL, l.Price, l.Where, lat, lon, l.Area, l.AreaFound, l.NearBart, l.Bart, dist, l.CreatedAt,
	)
	return err
}

func (r *ListingRepo) GetByID(ctx context.Context, id string) (*domain.Listing, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+listingColumns+` FROM listings WHERE id = $1`,
		id,
	)

	l, err := scanListing(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrListingNotFound
	}
	if err != nil {
		return nil, err
	}
	return l, nil
}

func (r *ListingRepo) List(ctx context.Context, query *domain.ListingQuery) ([]domain.Listing, error) {
	var (
		where []string
		args  []any
	)
	if query.Area != "" {
		args = append(args, query.Area)
		where = append(where, "area = $1")
	}
	if query.NearBartOnly {
		where = append(where, "near_bart")
	}

	stmt := `SELECT ` + listingColumns + ` FROM listings`
	if len(where) > 0 {
		stmt += ` WHERE ` + strings.Join(where, " AND ")
	}
	args = append(args, query.Limit)
	stmt += ` ORDER BY created_at DESC LIMIT $` + strconv.Itoa(len(args))

	rows, err := r.db.QueryContext(ctx, stmt, args...)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var results []domain.Listing
	for rows.Next() {
		l, err := scanListing(rows)
		if err != nil {
			return nil, err
		}
		results = append(results, *l)
	}
	return results, rows.Err()
}

type scanner interface {
	Scan(dest ...any) error
}

func scanListing(s scanner) (*domain.Listing, error) {
	var (
		l            domain.Listing
		lat, lon, bd sql.NullFloat64
	)
	err := s.Scan(&l.ID, &l.Name, &l.URL, &l.Price, &l.Where, &lat, &lon,
		&l.Area, &l.AreaFound, &l.NearBart, &l.Bart, &bd, &l.CreatedAt)
	if err != nil {
		return nil, err
	}
	if lat.Valid && lon.Valid {
		l.Geotag = &domain.Coordinate{Lat: lat.Float64, Lon: lon.Float64}
	}
	if bd.Valid {
		l.BartDist = domain.KnownDistance(bd.Float64)
	}
	return &l, nil
}
