package inventory

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"coworkctl/internal/client"
	"coworkctl/internal/lib/api/apierr"
	"coworkctl/internal/lib/logger/handlers/slogdiscard"
)

// fakeAPI serves two buildings: building 1 with places 5 and 6 on floors 1-2,
// building 2 with place 7 on floor 1.
type fakeAPI struct {
	router        *chi.Mux
	buildingsHits atomic.Int64
	requests      atomic.Int64
}

func newFakeAPI(t *testing.T) (*fakeAPI, *Service) {
	t.Helper()

	f := &fakeAPI{router: chi.NewRouter()}

	f.router.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			f.requests.Add(1)
			next.ServeHTTP(w, r)
		})
	})

	x, y := 10.0, 20.0

	place := func(id, buildingID, floor int, name string) client.PlaceDTO {
		return client.PlaceDTO{
			ID:         id,
			Name:       name,
			Features:   []string{"desk"},
			Floor:      floor,
			X:          &x,
			Y:          &y,
			BuildingID: buildingID,
		}
	}

	schemesByBuilding := map[string]map[string]client.SchemeDTO{
		"1": {
			"2": {Floor: 2, ImageID: "img-2", Places: []client.PlaceDTO{place(6, 1, 2, "Desk 6")}},
			"1": {Floor: 1, ImageID: "img-1", Places: []client.PlaceDTO{place(5, 1, 1, "Desk 5")}},
		},
		"2": {
			"1": {Floor: 1, ImageID: "img-3", Places: []client.PlaceDTO{place(7, 2, 1, "Desk 7")}},
		},
	}

	placesByID := map[string]client.PlaceDTO{
		"5": place(5, 1, 1, "Desk 5"),
		"6": place(6, 1, 2, "Desk 6"),
		"7": place(7, 2, 1, "Desk 7"),
	}

	f.router.Get("/buildings", func(w http.ResponseWriter, r *http.Request) {
		f.buildingsHits.Add(1)
		render.JSON(w, r, []client.BuildingDTO{
			{ID: 1, Name: "Hub One", Address: "Main st 1"},
			{ID: 2, Name: "Hub Two", Address: "Side st 2"},
		})
	})

	f.router.Get("/buildings/{id}", func(w http.ResponseWriter, r *http.Request) {
		openFrom, openTill := 9*3600, 21*3600
		render.JSON(w, r, client.BuildingDTO{
			ID:       1,
			Name:     "Hub One",
			OpenFrom: &openFrom,
			OpenTill: &openTill,
			ImagesID: []string{"a", "b"},
		})
	})

	f.router.Get("/buildings/{id}/schemes", func(w http.ResponseWriter, r *http.Request) {
		schemes, ok := schemesByBuilding[chi.URLParam(r, "id")]
		if !ok {
			render.Status(r, http.StatusNotFound)
			render.JSON(w, r, map[string]any{"message": "building not found"})
			return
		}
		render.JSON(w, r, schemes)
	})

	f.router.Get("/buildings/{id}/schemes/places/{pid}", func(w http.ResponseWriter, r *http.Request) {
		p, ok := placesByID[chi.URLParam(r, "pid")]
		if !ok {
			render.Status(r, http.StatusNotFound)
			render.JSON(w, r, map[string]any{"message": "place not found"})
			return
		}
		render.JSON(w, r, p)
	})

	srv := httptest.NewServer(f.router)
	t.Cleanup(srv.Close)

	api := client.New(srv.URL, 5*time.Second, client.StaticToken("token"), slogdiscard.NewDiscardLogger())

	return f, New(api, slogdiscard.NewDiscardLogger())
}

func TestSpaceByIDUsesIndex(t *testing.T) {
	t.Parallel()

	fake, svc := newFakeAPI(t)
	ctx := context.Background()

	space, err := svc.SpaceByID(ctx, "5")
	require.NoError(t, err)
	assert.Equal(t, "5", space.ID)
	assert.Equal(t, "1", space.CoworkingID)

	// Second lookup, different building: index already built, no rescan.
	space, err = svc.SpaceByID(ctx, "7")
	require.NoError(t, err)
	assert.Equal(t, "2", space.CoworkingID)

	assert.Equal(t, int64(1), fake.buildingsHits.Load())
}

func TestSpaceByIDUnknown(t *testing.T) {
	t.Parallel()

	_, svc := newFakeAPI(t)

	_, err := svc.SpaceByID(context.Background(), "404")
	require.Error(t, err)
	assert.True(t, apierr.IsNotFound(err))
}

func TestSpaceByIDBadID(t *testing.T) {
	t.Parallel()

	_, svc := newFakeAPI(t)

	_, err := svc.SpaceByID(context.Background(), "abc")
	require.Error(t, err)
	assert.True(t, apierr.IsValidation(err))
}

func TestFloorsSortedByLevel(t *testing.T) {
	t.Parallel()

	_, svc := newFakeAPI(t)

	floors, err := svc.Floors(context.Background(), "1")
	require.NoError(t, err)

	require.Len(t, floors, 2)
	assert.Equal(t, 1, floors[0].Level)
	assert.Equal(t, 2, floors[1].Level)
	assert.Equal(t, "floor-1", floors[0].ID)
}

func TestSpacesFlattensFloors(t *testing.T) {
	t.Parallel()

	_, svc := newFakeAPI(t)

	spaces, err := svc.Spaces(context.Background(), "1")
	require.NoError(t, err)

	require.Len(t, spaces, 2)
	assert.Equal(t, "5", spaces[0].ID)
	assert.Equal(t, "6", spaces[1].ID)
	assert.Equal(t, "1", spaces[0].CoworkingID)
}

func TestCoworkingByIDMapsOpenHours(t *testing.T) {
	t.Parallel()

	_, svc := newFakeAPI(t)

	c, err := svc.CoworkingByID(context.Background(), "1")
	require.NoError(t, err)

	require.NotNil(t, c.OpenFrom)
	require.NotNil(t, c.OpenTill)
	assert.Equal(t, 9, *c.OpenFrom)
	assert.Equal(t, 21, *c.OpenTill)
}

func TestCreateFloorRequiresImage(t *testing.T) {
	t.Parallel()

	fake, svc := newFakeAPI(t)

	before := fake.requests.Load()

	err := svc.CreateFloor(context.Background(), "1", FloorParams{Level: 3})
	require.Error(t, err)
	assert.True(t, apierr.IsValidation(err))

	// Validation happens before any network call.
	assert.Equal(t, before, fake.requests.Load())
}

func TestCreateCoworkingRequiresNameAndAddress(t *testing.T) {
	t.Parallel()

	_, svc := newFakeAPI(t)

	_, err := svc.CreateCoworking(context.Background(), CoworkingParams{Description: "no name"})
	require.Error(t, err)
	assert.True(t, apierr.IsValidation(err))
}

func TestUpdateCoworkingMergesImages(t *testing.T) {
	t.Parallel()

	router := chi.NewRouter()

	router.Get("/buildings/{id}", func(w http.ResponseWriter, r *http.Request) {
		render.JSON(w, r, client.BuildingDTO{
			ID:       1,
			Name:     "Hub One",
			Address:  "Main st 1",
			ImagesID: []string{"a", "b"},
		})
	})

	var patched client.CreateBuildingDTO
	router.Patch("/buildings/{id}", func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, render.DecodeJSON(r.Body, &patched))
		render.JSON(w, r, client.BuildingDTO{ID: 1, Name: patched.Name, Address: patched.Address})
	})

	srv := httptest.NewServer(router)
	t.Cleanup(srv.Close)

	api := client.New(srv.URL, 5*time.Second, client.StaticToken("token"), slogdiscard.NewDiscardLogger())
	svc := New(api, slogdiscard.NewDiscardLogger())

	_, err := svc.UpdateCoworking(context.Background(), "1", UpdateCoworkingParams{
		CoworkingParams: CoworkingParams{
			Description: "renovated",
			ImageIDs:    []string{"c"},
		},
		RemoveImageIDs: []string{"a"},
	})
	require.NoError(t, err)

	assert.Equal(t, "Hub One", patched.Name)
	assert.Equal(t, "Main st 1", patched.Address)
	assert.Equal(t, "renovated", patched.Description)
	assert.Equal(t, []string{"b", "c"}, patched.ImagesID)
}
