// Package mapper converts wire DTOs into domain values. All functions are
// pure and total: absent or malformed input yields a safe default instead of
// an error, so read paths can always render something.
package mapper

import (
	"strconv"
	"strings"
	"time"

	"coworkctl/internal/client"
	"coworkctl/internal/models"
)

// SentinelBookingID marks a booking synthesized for a missing visit record.
// Callers must treat SpaceID == SentinelSpaceID as "no real booking".
const (
	SentinelBookingID = "error"
	SentinelSpaceID   = "0"
)

const (
	defaultCoord = 50
	defaultSize  = 1
)

// ParseTime parses the API's ISO-8601 timestamps, with or without a zone.
func ParseTime(s string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339, s)
	if err == nil {
		return t, nil
	}

	return time.Parse("2006-01-02T15:04:05", s)
}

// VisitToBooking maps a created visit record to a booking. A nil record
// yields the sentinel booking. CreatedAt is the mapping instant, not the
// remote creation time; the API does not expose the latter.
func VisitToBooking(v *client.PlaceVisitDTO, userID string, now time.Time) models.Booking {
	if v == nil {
		return sentinelBooking(userID, now)
	}

	start, _ := ParseTime(v.VisitFrom)
	end, _ := ParseTime(v.VisitTill)

	status := models.BookingPending
	if v.IsVisited {
		status = models.BookingConfirmed
	}

	return models.Booking{
		ID:        strconv.Itoa(v.ID),
		SpaceID:   strconv.Itoa(v.PlaceID),
		UserID:    userID,
		StartTime: start,
		EndTime:   end,
		Status:    status,
		CreatedAt: now,
		IsVisited: v.IsVisited,
	}
}

// ClientVisitToBooking maps one record of the user's visit history.
// An ended visit maps to cancelled, anything else to confirmed.
func ClientVisitToBooking(v *client.ClientVisitDTO, userID string, now time.Time) models.Booking {
	if v == nil {
		return sentinelBooking(userID, now)
	}

	start, _ := ParseTime(v.VisitFrom)
	end, _ := ParseTime(v.VisitTill)

	status := models.BookingConfirmed
	if v.IsEnded {
		status = models.BookingCancelled
	}

	return models.Booking{
		ID:        strconv.Itoa(v.ID),
		SpaceID:   strconv.Itoa(v.Place.ID),
		UserID:    userID,
		StartTime: start,
		EndTime:   end,
		Status:    status,
		CreatedAt: now,
		IsVisited: v.IsVisited,
	}
}

func sentinelBooking(userID string, now time.Time) models.Booking {
	if userID == "" {
		userID = "unknown"
	}

	return models.Booking{
		ID:        SentinelBookingID,
		SpaceID:   SentinelSpaceID,
		UserID:    userID,
		StartTime: now,
		EndTime:   now,
		Status:    models.BookingPending,
		CreatedAt: now,
	}
}

// BuildingToCoworking maps a building. Open hours arrive as seconds from
// midnight and become hours of day.
func BuildingToCoworking(b client.BuildingDTO) models.Coworking {
	return models.Coworking{
		ID:          strconv.Itoa(b.ID),
		Name:        b.Name,
		Description: b.Description,
		Address:     b.Address,
		X:           b.X,
		Y:           b.Y,
		GeoCoords:   []float64{b.Y, b.X}, // [lat, lng]
		Photos:      b.ImageURLs,
		OpenFrom:    secondsToHour(b.OpenFrom),
		OpenTill:    secondsToHour(b.OpenTill),
	}
}

func secondsToHour(seconds *int) *int {
	if seconds == nil {
		return nil
	}

	hour := *seconds / 3600

	return &hour
}

// PlaceToFloorPlace maps a place for the floor map view, defaulting the
// layout fields the remote side may omit.
func PlaceToFloorPlace(p client.PlaceDTO) models.Place {
	place := models.Place{
		ID:       strconv.Itoa(p.ID),
		Name:     p.Name,
		X:        defaultCoord,
		Y:        defaultCoord,
		Size:     defaultSize,
		Tags:     p.Features,
		Rotation: 0,
	}

	if p.X != nil {
		place.X = *p.X
	}
	if p.Y != nil {
		place.Y = *p.Y
	}
	if p.Size != nil {
		place.Size = *p.Size
	}
	if p.Rotate != nil {
		place.Rotation = *p.Rotate
	}
	if p.ImageURL != nil {
		place.Photo = *p.ImageURL
	}

	return place
}

// PlaceToSpace maps a place to its listing view.
func PlaceToSpace(p client.PlaceDTO) models.Space {
	space := models.Space{
		ID:          strconv.Itoa(p.ID),
		Name:        p.Name,
		Description: strings.Join(p.Features, ", "),
		Floor:       p.Floor,
		CoworkingID: strconv.Itoa(p.BuildingID),
	}

	if p.ImageURL != nil {
		space.Photo = *p.ImageURL
	}

	return space
}

// SchemeToFloor maps a floor layout together with its places.
func SchemeToFloor(s client.SchemeDTO) models.Floor {
	places := make([]models.Place, 0, len(s.Places))
	for _, p := range s.Places {
		places = append(places, PlaceToFloorPlace(p))
	}

	mapImage := s.ImageURL
	if mapImage == "" {
		mapImage = s.ImageID
	}

	return models.Floor{
		ID:       "floor-" + strconv.Itoa(s.Floor),
		Name:     "Floor " + strconv.Itoa(s.Floor),
		Level:    s.Floor,
		MapImage: mapImage,
		Places:   places,
	}
}
