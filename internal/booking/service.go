// Package booking is the lifecycle manager for bookings: listing the current
// user's active bookings, creating new ones after an availability check, and
// cancelling them. It is the only package that mutates remote state.
package booking

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"

	"coworkctl/internal/client"
	"coworkctl/internal/lib/api/apierr"
	"coworkctl/internal/lib/logger/sl"
	"coworkctl/internal/mapper"
	"coworkctl/internal/models"
)

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=VisitsAPI
type VisitsAPI interface {
	ClientVisits(ctx context.Context) ([]client.ClientVisitDTO, error)
	BuildingVisits(ctx context.Context, buildingID int) ([]client.VisitDTO, error)
	CreateVisit(ctx context.Context, buildingID, placeID int, req client.CreateVisitDTO) (client.PlaceVisitDTO, error)
	DeleteVisit(ctx context.Context, buildingID, placeID, visitID int) error
	MarkVisited(ctx context.Context, buildingID, placeID, visitID int) error
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=SpaceResolver
type SpaceResolver interface {
	SpaceByID(ctx context.Context, id string) (models.Space, error)
}

type Service struct {
	visits VisitsAPI
	spaces SpaceResolver
	log    *slog.Logger
	now    func() time.Time
}

func New(visits VisitsAPI, spaces SpaceResolver, log *slog.Logger) *Service {
	return &Service{
		visits: visits,
		spaces: spaces,
		log:    log,
		now:    time.Now,
	}
}

type CreateParams struct {
	SpaceID   string    `validate:"required"`
	UserID    string    `validate:"required"`
	StartTime time.Time `validate:"required"`
	EndTime   time.Time `validate:"required"`
}

// ListActive returns the user's bookings that have not ended yet. A booking
// ending exactly now is kept.
func (s *Service) ListActive(ctx context.Context) ([]models.Booking, error) {
	const op = "booking.ListActive"

	visits, err := s.visits.ClientVisits(ctx)
	if err != nil {
		s.log.Error("failed to fetch client visits", slog.String("op", op), sl.Err(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	now := s.now()

	bookings := make([]models.Booking, 0, len(visits))
	for i := range visits {
		booking := mapper.ClientVisitToBooking(&visits[i], "current-user", now)
		if booking.IsActive(now) {
			bookings = append(bookings, booking)
		}
	}

	return bookings, nil
}

// Create books a space for the half-open window [StartTime, EndTime).
// The availability pre-check is optimistic: a concurrent create for the same
// window can still race at the server, whose decision is authoritative.
func (s *Service) Create(ctx context.Context, params CreateParams) (models.Booking, error) {
	const op = "booking.Create"

	log := s.log.With(slog.String("op", op), slog.String("space_id", params.SpaceID))

	if err := validator.New().Struct(params); err != nil {
		var validateErr validator.ValidationErrors
		if errors.As(err, &validateErr) {
			return models.Booking{}, fmt.Errorf("%s: %w",
				op, apierr.Wrap(apierr.Validation, "invalid booking parameters", validateErr))
		}

		return models.Booking{}, fmt.Errorf("%s: %w", op, err)
	}

	if !params.StartTime.Before(params.EndTime) {
		return models.Booking{}, fmt.Errorf("%s: %w",
			op, apierr.New(apierr.Validation, "start time must be before end time"))
	}

	space, err := s.spaces.SpaceByID(ctx, params.SpaceID)
	if err != nil {
		log.Error("failed to resolve space", sl.Err(err))
		return models.Booking{}, fmt.Errorf("%s: %w", op, err)
	}

	buildingID, err := strconv.Atoi(space.CoworkingID)
	if err != nil {
		return models.Booking{}, fmt.Errorf("%s: invalid coworking id %q: %w", op, space.CoworkingID, err)
	}

	placeID, err := strconv.Atoi(params.SpaceID)
	if err != nil {
		return models.Booking{}, fmt.Errorf("%s: invalid space id %q: %w", op, params.SpaceID, err)
	}

	available, err := s.CheckPlaceAvailability(ctx, buildingID, placeID, params.StartTime, params.EndTime)
	if err != nil {
		return models.Booking{}, fmt.Errorf("%s: %w", op, err)
	}

	if !available {
		return models.Booking{}, fmt.Errorf("%s: %w",
			op, apierr.New(apierr.Conflict, "space is already booked for the selected time period"))
	}

	visit, err := s.visits.CreateVisit(ctx, buildingID, placeID, client.CreateVisitDTO{
		VisitFrom: params.StartTime.Format(time.RFC3339),
		VisitTill: params.EndTime.Format(time.RFC3339),
	})
	if err != nil {
		log.Error("failed to create visit", sl.Err(err))
		return models.Booking{}, fmt.Errorf("%s: %w", op, err)
	}

	booking := mapper.VisitToBooking(&visit, params.UserID, s.now())

	log.Info("booking created", slog.String("booking_id", booking.ID))

	return booking, nil
}

type LookupOutcome int

const (
	LookupFound LookupOutcome = iota
	LookupNotFound
	LookupFailed
)

// LookupResult makes the "no real data" case explicit instead of the old
// magic sentinel booking with space id "0".
type LookupResult struct {
	Outcome LookupOutcome
	Booking models.Booking
	Err     error // set only for LookupFailed
}

// FetchByID resolves a booking by scanning the user's active bookings.
func (s *Service) FetchByID(ctx context.Context, id string) LookupResult {
	bookings, err := s.ListActive(ctx)
	if err != nil {
		return LookupResult{Outcome: LookupFailed, Err: err}
	}

	for _, b := range bookings {
		if b.ID == id {
			return LookupResult{Outcome: LookupFound, Booking: b}
		}
	}

	return LookupResult{Outcome: LookupNotFound}
}

// Cancel cancels a booking. Cancel is idempotent: an unknown or already
// cancelled booking is a no-op, as is one whose place no longer exists
// remotely (the booking and inventory systems may drift). Any other failure
// propagates.
func (s *Service) Cancel(ctx context.Context, id string) error {
	const op = "booking.Cancel"

	log := s.log.With(slog.String("op", op), slog.String("booking_id", id))

	result := s.FetchByID(ctx, id)
	switch result.Outcome {
	case LookupFailed:
		return fmt.Errorf("%s: %w", op, result.Err)
	case LookupNotFound:
		log.Info("booking not found, nothing to cancel")
		return nil
	}

	booking := result.Booking
	if booking.Status == models.BookingCancelled || booking.SpaceID == mapper.SentinelSpaceID {
		log.Info("booking already cancelled")
		return nil
	}

	space, err := s.spaces.SpaceByID(ctx, booking.SpaceID)
	if err != nil {
		if apierr.IsNotFound(err) {
			log.Warn("space no longer exists, treating booking as cancelled", sl.Err(err))
			return nil
		}

		return fmt.Errorf("%s: %w", op, err)
	}

	buildingID, err := strconv.Atoi(space.CoworkingID)
	if err != nil {
		return fmt.Errorf("%s: invalid coworking id %q: %w", op, space.CoworkingID, err)
	}

	placeID, err := strconv.Atoi(booking.SpaceID)
	if err != nil {
		return fmt.Errorf("%s: invalid space id %q: %w", op, booking.SpaceID, err)
	}

	// Booking ids and remote visit ids share a namespace.
	visitID, err := strconv.Atoi(id)
	if err != nil {
		return fmt.Errorf("%s: invalid booking id %q: %w", op, id, err)
	}

	if err = s.visits.DeleteVisit(ctx, buildingID, placeID, visitID); err != nil {
		log.Error("failed to delete visit", sl.Err(err))
		return fmt.Errorf("%s: %w", op, err)
	}

	log.Info("booking cancelled")

	return nil
}

// MarkVisited records a check-in for a visit (tablet/administrator flow).
func (s *Service) MarkVisited(ctx context.Context, buildingID, placeID, visitID int) error {
	const op = "booking.MarkVisited"

	if err := s.visits.MarkVisited(ctx, buildingID, placeID, visitID); err != nil {
		s.log.Error("failed to mark visit as visited",
			slog.String("op", op), slog.Int("visit_id", visitID), sl.Err(err))
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

type qrPayload struct {
	BuildingID string `json:"buildingId"`
	PlaceID    string `json:"placeId"`
	VisitID    string `json:"visitId"`
}

// QRPayload builds the JSON payload encoded into a check-in QR code.
func QRPayload(buildingID, placeID, visitID string) (string, error) {
	raw, err := json.Marshal(qrPayload{
		BuildingID: buildingID,
		PlaceID:    placeID,
		VisitID:    visitID,
	})
	if err != nil {
		return "", fmt.Errorf("booking.QRPayload: %w", err)
	}

	return string(raw), nil
}
