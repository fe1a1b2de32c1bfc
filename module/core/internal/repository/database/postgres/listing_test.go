package postgres

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nandanugg/apartment-notifier/module/core/domain"
)

var listingRowColumns = []string{
	"id", "name", "url", "price", "location", "latitude", "longitude",
	"area", "area_found", "near_bart", "bart", "bart_dist", "created_at",
}

func TestInsert_Success(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer func() { _ = db.Close() }()

	ts := time.Unix(1715003456, 0)
	mock.ExpectExec(`INSERT INTO listings`).
		WithArgs("123", "Sunny 1br", "https://x/123.html", "$2400", "rockridge",
			37.84, -122.25, "rockridge", true, true, "Rockridge", 0.4, ts).
		WillReturnResult(sqlmock.NewResult(1, 1))

	repo := NewListingRepo(db)
	err = repo.Insert(context.Background(), &domain.Listing{
		ID:        "123",
		Name:      "Sunny 1br",
		URL:       "https://x/123.html",
		Price:     "$2400",
		Where:     "rockridge",
		Geotag:    &domain.Coordinate{Lat: 37.84, Lon: -122.25},
		CreatedAt: ts,
		Annotation: domain.Annotation{
			AreaFound: true,
			Area:      "rockridge",
			NearBart:  true,
			Bart:      "Rockridge",
			BartDist:  domain.KnownDistance(0.4),
		},
	})
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestInsert_UnknownDistanceIsNull(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer func() { _ = db.Close() }()

	mock.ExpectExec(`INSERT INTO listings`).
		WithArgs("9", "", "", "", "", 1.0, 2.0, "", false, false, "", nil, sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 0))

	repo := NewListingRepo(db)
	err = repo.Insert(context.Background(), &domain.Listing{
		ID:     "9",
		Geotag: &domain.Coordinate{Lat: 1, Lon: 2},
	})
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestInsert_Error(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer func() { _ = db.Close() }()

	mock.ExpectExec(`INSERT INTO listings`).WillReturnError(sqlmock.ErrCancelled)

	repo := NewListingRepo(db)
	err = repo.Insert(context.Background(), &domain.Listing{ID: "1"})
	assert.Error(t, err)
}

func TestGetByID_Success(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer func() { _ = db.Close() }()

	ts := time.Unix(1715003456, 0)
	rows := sqlmock.NewRows(listingRowColumns).
		AddRow("123", "Sunny", "u", "$1", "oakland", 37.84, -122.25, "rockridge", true, false, "", 3.2, ts)
	mock.ExpectQuery(`SELECT .+ FROM listings WHERE id = \$1`).
		WithArgs("123").
		WillReturnRows(rows)

	repo := NewListingRepo(db)
	l, err := repo.GetByID(context.Background(), "123")
	require.NoError(t, err)
	assert.Equal(t, "123", l.ID)
	require.NotNil(t, l.Geotag)
	assert.Equal(t, 37.84, l.Geotag.Lat)
	assert.Equal(t, "rockridge", l.Area)
	assert.True(t, l.AreaFound)
	assert.Equal(t, domain.KnownDistance(3.2), l.BartDist)
	assert.True(t, l.CreatedAt.Equal(ts))
}

func TestGetByID_NullDistance(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer func() { _ = db.Close() }()

	rows := sqlmock.NewRows(listingRowColumns).
		AddRow("1", "", "", "", "", nil, nil, "", false, false, "", nil, time.Unix(0, 0))
	mock.ExpectQuery(`SELECT .+ FROM listings`).WithArgs("1").WillReturnRows(rows)

	repo := NewListingRepo(db)
	l, err := repo.GetByID(context.Background(), "1")
	require.NoError(t, err)
	assert.Nil(t, l.Geotag)
	assert.False(t, l.BartDist.Known)
}

func TestGetByID_NotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer func() { _ = db.Close() }()

	mock.ExpectQuery(`SELECT .+ FROM listings`).
		WithArgs("missing").
		WillReturnError(sql.ErrNoRows)

	repo := NewListingRepo(db)
	_, err = repo.GetByID(context.Background(), "missing")
	assert.ErrorIs(t, err, domain.ErrListingNotFound)
}

func TestList_Filters(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer func() { _ = db.Close() }()

	ts := time.Unix(1715003456, 0)
	rows := sqlmock.NewRows(listingRowColumns).
		AddRow("1", "a", "u1", "$1", "", 37.8, -122.2, "rockridge", true, true, "Rockridge", 0.3, ts).
		AddRow("2", "b", "u2", "$2", "", 37.8, -122.2, "rockridge", true, true, "Rockridge", 0.5, ts)
	mock.ExpectQuery(`SELECT .+ FROM listings WHERE area = \$1 AND near_bart ORDER BY created_at DESC LIMIT \$2`).
		WithArgs("rockridge", 10).
		WillReturnRows(rows)

	repo := NewListingRepo(db)
	out, err := repo.List(context.Background(), &domain.ListingQuery{Area: "rockridge", NearBartOnly: true, Limit: 10})
	require.NoError(t, err)
	assert.Len(t, out, 2)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestList_NoFilters(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer func() { _ = db.Close() }()

	mock.ExpectQuery(`SELECT .+ FROM listings ORDER BY created_at DESC LIMIT \$1`).
		WithArgs(5).
		WillReturnRows(sqlmock.NewRows(listingRowColumns))

	repo := NewListingRepo(db)
	out, err := repo.List(context.Background(), &domain.ListingQuery{Limit: 5})
	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestList_QueryError(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer func() { _ = db.Close() }()

	mock.ExpectQuery(`SELECT .+ FROM listings`).WillReturnError(sqlmock.ErrCancelled)

	repo := NewListingRepo(db)
	_, err = repo.List(context.Background(), &domain.ListingQuery{Limit: 5})
	assert.Error(t, err)
}
