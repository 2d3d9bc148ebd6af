package mapper

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"coworkctl/internal/client"
	"coworkctl/internal/models"
)

func TestVisitToBooking(t *testing.T) {
	t.Parallel()

	now := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)

	t.Run("nil visit yields sentinel", func(t *testing.T) {
		t.Parallel()

		b := VisitToBooking(nil, "user-1", now)

		assert.Equal(t, SentinelBookingID, b.ID)
		assert.Equal(t, SentinelSpaceID, b.SpaceID)
		assert.Equal(t, "user-1", b.UserID)
		assert.Equal(t, models.BookingPending, b.Status)
		assert.Equal(t, now, b.StartTime)
		assert.Equal(t, now, b.EndTime)
		assert.False(t, b.IsVisited)
	})

	t.Run("nil visit with empty user", func(t *testing.T) {
		t.Parallel()

		b := VisitToBooking(nil, "", now)

		assert.Equal(t, "unknown", b.UserID)
	})

	t.Run("visited visit maps to confirmed", func(t *testing.T) {
		t.Parallel()

		b := VisitToBooking(&client.PlaceVisitDTO{
			ID:        42,
			PlaceID:   5,
			VisitFrom: "2024-01-01T10:00:00Z",
			VisitTill: "2024-01-01T11:00:00Z",
			IsVisited: true,
		}, "user-1", now)

		assert.Equal(t, "42", b.ID)
		assert.Equal(t, "5", b.SpaceID)
		assert.Equal(t, models.BookingConfirmed, b.Status)
		assert.True(t, b.IsVisited)
		assert.Equal(t, time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC), b.StartTime)
		assert.Equal(t, time.Date(2024, 1, 1, 11, 0, 0, 0, time.UTC), b.EndTime)
		assert.True(t, b.StartTime.Before(b.EndTime))
	})

	t.Run("unvisited visit maps to pending", func(t *testing.T) {
		t.Parallel()

		b := VisitToBooking(&client.PlaceVisitDTO{
			ID:        42,
			PlaceID:   5,
			VisitFrom: "2024-01-01T10:00:00Z",
			VisitTill: "2024-01-01T11:00:00Z",
		}, "user-1", now)

		assert.Equal(t, models.BookingPending, b.Status)
	})

	t.Run("created_at is the mapping instant", func(t *testing.T) {
		t.Parallel()

		b := VisitToBooking(&client.PlaceVisitDTO{
			ID:        1,
			PlaceID:   2,
			VisitFrom: "2024-01-01T10:00:00Z",
			VisitTill: "2024-01-01T11:00:00Z",
		}, "user-1", now)

		assert.Equal(t, now, b.CreatedAt)
	})
}

func TestClientVisitToBooking(t *testing.T) {
	t.Parallel()

	now := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)

	t.Run("nil visit yields sentinel", func(t *testing.T) {
		t.Parallel()

		b := ClientVisitToBooking(nil, "user-1", now)

		assert.Equal(t, SentinelBookingID, b.ID)
		assert.Equal(t, SentinelSpaceID, b.SpaceID)
	})

	t.Run("ended visit maps to cancelled", func(t *testing.T) {
		t.Parallel()

		b := ClientVisitToBooking(&client.ClientVisitDTO{
			ID:        7,
			Place:     client.PlaceDTO{ID: 5},
			VisitFrom: "2024-01-01T10:00:00Z",
			VisitTill: "2024-01-01T11:00:00Z",
			IsEnded:   true,
		}, "user-1", now)

		assert.Equal(t, "7", b.ID)
		assert.Equal(t, "5", b.SpaceID)
		assert.Equal(t, models.BookingCancelled, b.Status)
	})

	t.Run("ongoing visit maps to confirmed", func(t *testing.T) {
		t.Parallel()

		b := ClientVisitToBooking(&client.ClientVisitDTO{
			ID:        7,
			Place:     client.PlaceDTO{ID: 5},
			VisitFrom: "2024-01-01T10:00:00Z",
			VisitTill: "2024-01-01T11:00:00Z",
			IsVisited: true,
		}, "user-1", now)

		assert.Equal(t, models.BookingConfirmed, b.Status)
		assert.True(t, b.IsVisited)
	})
}

func TestBuildingToCoworking(t *testing.T) {
	t.Parallel()

	openFrom := 9 * 3600
	openTill := 21 * 3600

	c := BuildingToCoworking(client.BuildingDTO{
		ID:          3,
		Name:        "Hub",
		Description: "desc",
		Address:     "Main st 1",
		X:           37.6,
		Y:           55.7,
		OpenFrom:    &openFrom,
		OpenTill:    &openTill,
		ImageURLs:   []string{"http://files/1"},
	})

	assert.Equal(t, "3", c.ID)
	require.NotNil(t, c.OpenFrom)
	require.NotNil(t, c.OpenTill)
	assert.Equal(t, 9, *c.OpenFrom)
	assert.Equal(t, 21, *c.OpenTill)
	assert.Equal(t, []float64{55.7, 37.6}, c.GeoCoords)
	assert.Equal(t, []string{"http://files/1"}, c.Photos)
}

func TestBuildingToCoworkingNilHours(t *testing.T) {
	t.Parallel()

	c := BuildingToCoworking(client.BuildingDTO{ID: 3})

	assert.Nil(t, c.OpenFrom)
	assert.Nil(t, c.OpenTill)
}

func TestPlaceToFloorPlaceDefaults(t *testing.T) {
	t.Parallel()

	p := PlaceToFloorPlace(client.PlaceDTO{
		ID:       5,
		Name:     "Desk 5",
		Features: []string{"window"},
	})

	assert.Equal(t, "5", p.ID)
	assert.Equal(t, float64(50), p.X)
	assert.Equal(t, float64(50), p.Y)
	assert.Equal(t, float64(1), p.Size)
	assert.Equal(t, float64(0), p.Rotation)
}

func TestPlaceToSpace(t *testing.T) {
	t.Parallel()

	s := PlaceToSpace(client.PlaceDTO{
		ID:         5,
		Name:       "Desk 5",
		Features:   []string{"window", "monitor"},
		Floor:      2,
		BuildingID: 3,
	})

	assert.Equal(t, "5", s.ID)
	assert.Equal(t, "window, monitor", s.Description)
	assert.Equal(t, 2, s.Floor)
	assert.Equal(t, "3", s.CoworkingID)
}

func TestSchemeToFloor(t *testing.T) {
	t.Parallel()

	f := SchemeToFloor(client.SchemeDTO{
		Floor:    2,
		ImageID:  "img-1",
		ImageURL: "http://files/img-1",
		Places:   []client.PlaceDTO{{ID: 5, Name: "Desk 5"}},
	})

	assert.Equal(t, "floor-2", f.ID)
	assert.Equal(t, "Floor 2", f.Name)
	assert.Equal(t, 2, f.Level)
	assert.Equal(t, "http://files/img-1", f.MapImage)
	require.Len(t, f.Places, 1)
	assert.Equal(t, "5", f.Places[0].ID)
}

func TestParseTime(t *testing.T) {
	t.Parallel()

	t.Run("with zone", func(t *testing.T) {
		t.Parallel()

		got, err := ParseTime("2024-01-01T10:00:00Z")
		require.NoError(t, err)
		assert.Equal(t, time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC), got)
	})

	t.Run("without zone", func(t *testing.T) {
		t.Parallel()

		got, err := ParseTime("2024-01-01T10:00:00")
		require.NoError(t, err)
		assert.Equal(t, 10, got.Hour())
	})

	t.Run("garbage", func(t *testing.T) {
		t.Parallel()

		_, err := ParseTime("not-a-time")
		require.Error(t, err)
	})
}
