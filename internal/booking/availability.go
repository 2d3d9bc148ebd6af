package booking

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"coworkctl/internal/lib/logger/sl"
	"coworkctl/internal/mapper"
)

// CheckPlaceAvailability reports whether the place is free for the half-open
// candidate interval [from, till). It fails closed: if the building's visits
// cannot be fetched or parsed, the place is reported unavailable so a create
// never proceeds on unknown state.
func (s *Service) CheckPlaceAvailability(ctx context.Context, buildingID, placeID int, from, till time.Time) (bool, error) {
	const op = "booking.CheckPlaceAvailability"

	log := s.log.With(
		slog.String("op", op),
		slog.Int("building_id", buildingID),
		slog.Int("place_id", placeID),
	)

	visits, err := s.visits.BuildingVisits(ctx, buildingID)
	if err != nil {
		log.Error("failed to fetch building visits", sl.Err(err))
		return false, fmt.Errorf("%s: %w", op, err)
	}

	for _, visit := range visits {
		if visit.PlaceID != placeID {
			continue
		}

		visitFrom, err := mapper.ParseTime(visit.VisitFrom)
		if err != nil {
			return false, fmt.Errorf("%s: parse visit_from: %w", op, err)
		}

		visitTill, err := mapper.ParseTime(visit.VisitTill)
		if err != nil {
			return false, fmt.Errorf("%s: parse visit_till: %w", op, err)
		}

		if overlaps(from, till, visitFrom, visitTill) {
			log.Debug("overlapping visit found", slog.Int("visit_id", visit.ID))
			return false, nil
		}
	}

	return true, nil
}

// overlaps is the standard interval overlap test for half-open intervals:
// the request conflicts if its start falls within [visitFrom, visitTill),
// its end falls within (visitFrom, visitTill], or it fully contains the
// existing interval.
func overlaps(requestStart, requestEnd, visitStart, visitEnd time.Time) bool {
	startInside := !requestStart.Before(visitStart) && requestStart.Before(visitEnd)
	endInside := requestEnd.After(visitStart) && !requestEnd.After(visitEnd)
	contains := !requestStart.After(visitStart) && !requestEnd.Before(visitEnd)

	return startInside || endInside || contains
}
