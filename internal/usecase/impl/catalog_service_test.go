package impl

import (
	"context"
	"testing"

	"holodex/internal/domain/entity"
	domainerrors "holodex/internal/domain/errors"
	"holodex/internal/domain/repository"
	mockRepo "holodex/internal/mocks/repository"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCatalogService(t *testing.T) (*mockRepo.MockCatalogRepository, *mockRepo.MockUserRepository, *catalogService) {
	t.Helper()

	mockCatalogRepo := mockRepo.NewMockCatalogRepository(t)
	mockUserRepo := mockRepo.NewMockUserRepository(t)
	service := NewCatalogService(CatalogServiceParams{
		CatalogRepo: mockCatalogRepo,
		UserRepo:    mockUserRepo,
	})

	return mockCatalogRepo, mockUserRepo, service.(*catalogService)
}

func TestCatalogService_ListPeople(t *testing.T) {
	mockCatalogRepo, _, service := newCatalogService(t)
	ctx := context.Background()

	people := []*entity.Person{
		{ID: 1, Name: "Luke Skywalker", Height: "172", Mass: "77", Gender: "male"},
		{ID: 2, Name: "Leia Organa", Height: "150", Mass: "49", Gender: "female"},
	}

	mockCatalogRepo.EXPECT().
		ListPeople(ctx).
		Return(people, nil)

	got, err := service.ListPeople(ctx)
	require.NoError(t, err)
	assert.Len(t, got, 2)
	assert.Equal(t, "Luke Skywalker", got[0].Name)
}

func TestCatalogService_ListPeople_Empty(t *testing.T) {
	mockCatalogRepo, _, service := newCatalogService(t)
	ctx := context.Background()

	mockCatalogRepo.EXPECT().
		ListPeople(ctx).
		Return([]*entity.Person{}, nil)

	got, err := service.ListPeople(ctx)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestCatalogService_GetPerson(t *testing.T) {
	mockCatalogRepo, _, service := newCatalogService(t)
	ctx := context.Background()

	person := &entity.Person{ID: 3, Name: "Darth Vader", Height: "202", Mass: "136", Gender: "male"}

	mockCatalogRepo.EXPECT().
		FindPersonByID(ctx, uint(3)).
		Return(person, nil)

	got, err := service.GetPerson(ctx, 3)
	require.NoError(t, err)
	assert.Equal(t, person, got)
}

func TestCatalogService_GetPerson_NotFound(t *testing.T) {
	mockCatalogRepo, _, service := newCatalogService(t)
	ctx := context.Background()

	mockCatalogRepo.EXPECT().
		FindPersonByID(ctx, uint(99)).
		Return(nil, repository.ErrPersonNotFound)

	got, err := service.GetPerson(ctx, 99)
	require.Error(t, err)
	assert.Nil(t, got)
	assert.ErrorIs(t, err, domainerrors.ErrPersonNotFound)
}

func TestCatalogService_GetPlanet(t *testing.T) {
	mockCatalogRepo, _, service := newCatalogService(t)
	ctx := context.Background()

	planet := &entity.Planet{ID: 1, Name: "Tatooine", Diameter: "10465", Population: "200000", Climate: "arid", Terrain: "desert"}

	mockCatalogRepo.EXPECT().
		FindPlanetByID(ctx, uint(1)).
		Return(planet, nil)

	got, err := service.GetPlanet(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "Tatooine", got.Name)
}

func TestCatalogService_GetPlanet_NotFound(t *testing.T) {
	mockCatalogRepo, _, service := newCatalogService(t)
	ctx := context.Background()

	mockCatalogRepo.EXPECT().
		FindPlanetByID(ctx, uint(42)).
		Return(nil, repository.ErrPlanetNotFound)

	got, err := service.GetPlanet(ctx, 42)
	require.Error(t, err)
	assert.Nil(t, got)
	assert.ErrorIs(t, err, domainerrors.ErrPlanetNotFound)
}

func TestCatalogService_GetVehicle_NotFound(t *testing.T) {
	mockCatalogRepo, _, service := newCatalogService(t)
	ctx := context.Background()

	mockCatalogRepo.EXPECT().
		FindVehicleByID(ctx, uint(7)).
		Return(nil, repository.ErrVehicleNotFound)

	got, err := service.GetVehicle(ctx, 7)
	require.Error(t, err)
	assert.Nil(t, got)
	assert.ErrorIs(t, err, domainerrors.ErrVehicleNotFound)
}

func TestCatalogService_ListVehicles_RepositoryError(t *testing.T) {
	mockCatalogRepo, _, service := newCatalogService(t)
	ctx := context.Background()

	mockCatalogRepo.EXPECT().
		ListVehicles(ctx).
		Return(nil, errors.New("connection reset"))

	got, err := service.ListVehicles(ctx)
	require.Error(t, err)
	assert.Nil(t, got)
	assert.Contains(t, err.Error(), "failed to list vehicles")
}

func TestCatalogService_ListUsers(t *testing.T) {
	_, mockUserRepo, service := newCatalogService(t)
	ctx := context.Background()

	lastName := "Solo"
	users := []*entity.User{
		{ID: 1, Name: "han", LastName: &lastName, Email: "han@falcon.example"},
	}

	mockUserRepo.EXPECT().
		ListAll(ctx).
		Return(users, nil)

	got, err := service.ListUsers(ctx)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "han", got[0].Name)
}
