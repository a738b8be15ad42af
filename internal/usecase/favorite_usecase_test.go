package usecase

import (
	"encoding/json"
	"testing"

	"holodex/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewFavoriteOutput_OneTargetSet(t *testing.T) {
	tests := []struct {
		name   string
		kind   entity.TargetKind
		wantID func(out *FavoriteOutput) *uint
	}{
		{name: "person", kind: entity.TargetPerson, wantID: func(out *FavoriteOutput) *uint { return out.PersonID }},
		{name: "planet", kind: entity.TargetPlanet, wantID: func(out *FavoriteOutput) *uint { return out.PlanetID }},
		{name: "vehicle", kind: entity.TargetVehicle, wantID: func(out *FavoriteOutput) *uint { return out.VehicleID }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := NewFavoriteOutput(&entity.Favorite{
				ID:     10,
				UserID: 1,
				Target: entity.FavoriteTarget{Kind: tt.kind, ID: 5},
			})

			require.NotNil(t, tt.wantID(out))
			assert.Equal(t, uint(5), *tt.wantID(out))

			set := 0
			for _, id := range []*uint{out.PersonID, out.PlanetID, out.VehicleID} {
				if id != nil {
					set++
				}
			}
			assert.Equal(t, 1, set)
		})
	}
}

// The wire shape always carries all three target keys, nulls included.
func TestFavoriteOutput_SerializesAllTargetKeys(t *testing.T) {
	personID := uint(5)
	out := &FavoriteOutput{ID: 10, UserID: 1, PersonID: &personID}

	data, err := json.Marshal(out)
	require.NoError(t, err)
	assert.JSONEq(t,
		`{"id":10,"user_id":1,"person_id":5,"planet_id":null,"vehicle_id":null}`,
		string(data))
}
