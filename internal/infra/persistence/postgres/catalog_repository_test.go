package postgres

import (
	"context"
	"regexp"
	"testing"

	"holodex/internal/domain/entity"
	"holodex/internal/domain/repository"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalogRepository_ListPeople(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewCatalogRepository(db)
	ctx := context.Background()

	rows := sqlmock.NewRows([]string{"id", "name", "height", "mass", "gender"}).
		AddRow(1, "Luke Skywalker", "172", "77", "male").
		AddRow(2, "Leia Organa", "150", "49", "female")
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "people" ORDER BY id`)).
		WillReturnRows(rows)

	people, err := repo.ListPeople(ctx)
	require.NoError(t, err)
	require.Len(t, people, 2)
	assert.Equal(t, "Luke Skywalker", people[0].Name)
	assert.Equal(t, "172", people[0].Height)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCatalogRepository_FindPlanetByID(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewCatalogRepository(db)
	ctx := context.Background()

	rows := sqlmock.NewRows([]string{"id", "name", "diameter", "population", "climate", "terrain"}).
		AddRow(1, "Tatooine", "10465", "200000", "arid", "desert")
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "planets" WHERE id = $1`)).
		WithArgs(1, 1).
		WillReturnRows(rows)

	planet, err := repo.FindPlanetByID(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "Tatooine", planet.Name)
	assert.Equal(t, "desert", planet.Terrain)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCatalogRepository_FindPlanetByID_NotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewCatalogRepository(db)
	ctx := context.Background()

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "planets" WHERE id = $1`)).
		WithArgs(42, 1).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "diameter", "population", "climate", "terrain"}))

	planet, err := repo.FindPlanetByID(ctx, 42)
	require.Error(t, err)
	assert.Nil(t, planet)
	assert.ErrorIs(t, err, repository.ErrPlanetNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCatalogRepository_FindVehicleByID_OptionalFields(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewCatalogRepository(db)
	ctx := context.Background()

	rows := sqlmock.NewRows([]string{"id", "name", "length", "crew", "passengers"}).
		AddRow(4, "Snowspeeder", "4.5", "2", nil)
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "vehicles" WHERE id = $1`)).
		WithArgs(4, 1).
		WillReturnRows(rows)

	vehicle, err := repo.FindVehicleByID(ctx, 4)
	require.NoError(t, err)
	assert.Equal(t, "Snowspeeder", vehicle.Name)
	require.NotNil(t, vehicle.Length)
	assert.Equal(t, "4.5", *vehicle.Length)
	assert.Nil(t, vehicle.Passengers)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCatalogRepository_TargetExists(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewCatalogRepository(db)
	ctx := context.Background()

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT count(*) FROM "planets" WHERE id = $1`)).
		WithArgs(3).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

	exists, err := repo.TargetExists(ctx, entity.FavoriteTarget{Kind: entity.TargetPlanet, ID: 3})
	require.NoError(t, err)
	assert.True(t, exists)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCatalogRepository_TargetExists_Missing(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewCatalogRepository(db)
	ctx := context.Background()

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT count(*) FROM "vehicles" WHERE id = $1`)).
		WithArgs(404).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))

	exists, err := repo.TargetExists(ctx, entity.FavoriteTarget{Kind: entity.TargetVehicle, ID: 404})
	require.NoError(t, err)
	assert.False(t, exists)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCatalogRepository_TargetExists_UnknownKind(t *testing.T) {
	db, _ := newMockDB(t)
	repo := NewCatalogRepository(db)
	ctx := context.Background()

	exists, err := repo.TargetExists(ctx, entity.FavoriteTarget{Kind: "droid", ID: 1})
	require.Error(t, err)
	assert.False(t, exists)
	assert.Contains(t, err.Error(), "unknown target kind")
}
