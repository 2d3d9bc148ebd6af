// Package inventory is the read side of the coworking reference data:
// buildings, floor schemes and bookable spaces. The booking layer never
// mutates any of this, it only resolves spaces to their owning building.
package inventory

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"strconv"
	"sync"

	"coworkctl/internal/client"
	"coworkctl/internal/lib/api/apierr"
	"coworkctl/internal/lib/logger/sl"
	"coworkctl/internal/mapper"
	"coworkctl/internal/models"
)

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=API
type API interface {
	Buildings(ctx context.Context) ([]client.BuildingDTO, error)
	Building(ctx context.Context, buildingID int) (client.BuildingDTO, error)
	CreateBuilding(ctx context.Context, req client.CreateBuildingDTO) (client.BuildingDTO, error)
	UpdateBuilding(ctx context.Context, buildingID int, req client.CreateBuildingDTO) (client.BuildingDTO, error)
	DeleteBuilding(ctx context.Context, buildingID int) error
	Schemes(ctx context.Context, buildingID int) (map[string]client.SchemeDTO, error)
	CreateScheme(ctx context.Context, buildingID int, req client.CreateSchemeDTO) error
	UpdateScheme(ctx context.Context, buildingID, floor int, req client.CreateSchemeDTO) error
	DeleteScheme(ctx context.Context, buildingID, floor int) error
	Place(ctx context.Context, buildingID, placeID int) (client.PlaceDTO, error)
	CreatePlace(ctx context.Context, buildingID, floor int, req client.CreatePlaceDTO) (client.PlaceDTO, error)
	UpdatePlace(ctx context.Context, buildingID, placeID int, req client.UpdatePlaceDTO) (client.PlaceDTO, error)
	DeletePlace(ctx context.Context, buildingID, placeID int) error
}

type Service struct {
	api API
	log *slog.Logger

	// index maps place id to owning building id. Built lazily from one full
	// scan and reused, instead of rescanning every coworking per lookup.
	mu    sync.Mutex
	index map[int]int
}

func New(api API, log *slog.Logger) *Service {
	return &Service{
		api: api,
		log: log,
	}
}

func (s *Service) Coworkings(ctx context.Context) ([]models.Coworking, error) {
	const op = "inventory.Coworkings"

	buildings, err := s.api.Buildings(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	coworkings := make([]models.Coworking, 0, len(buildings))
	for _, b := range buildings {
		coworkings = append(coworkings, mapper.BuildingToCoworking(b))
	}

	return coworkings, nil
}

func (s *Service) CoworkingByID(ctx context.Context, id string) (models.Coworking, error) {
	const op = "inventory.CoworkingByID"

	buildingID, err := parseID(id)
	if err != nil {
		return models.Coworking{}, fmt.Errorf("%s: %w", op, err)
	}

	building, err := s.api.Building(ctx, buildingID)
	if err != nil {
		return models.Coworking{}, fmt.Errorf("%s: %w", op, err)
	}

	return mapper.BuildingToCoworking(building), nil
}

// Floors returns the floor layouts of a coworking, ordered by level.
func (s *Service) Floors(ctx context.Context, coworkingID string) ([]models.Floor, error) {
	const op = "inventory.Floors"

	buildingID, err := parseID(coworkingID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	schemes, err := s.api.Schemes(ctx, buildingID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	floors := make([]models.Floor, 0, len(schemes))
	for _, scheme := range schemes {
		floors = append(floors, mapper.SchemeToFloor(scheme))
	}

	sort.Slice(floors, func(i, j int) bool { return floors[i].Level < floors[j].Level })

	return floors, nil
}

// Spaces returns every bookable space of a coworking across all floors.
func (s *Service) Spaces(ctx context.Context, coworkingID string) ([]models.Space, error) {
	const op = "inventory.Spaces"

	buildingID, err := parseID(coworkingID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	schemes, err := s.api.Schemes(ctx, buildingID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	var spaces []models.Space
	for _, scheme := range schemes {
		for _, place := range scheme.Places {
			spaces = append(spaces, mapper.PlaceToSpace(place))
		}
	}

	sort.Slice(spaces, func(i, j int) bool { return spaces[i].ID < spaces[j].ID })

	return spaces, nil
}

// SpaceByID resolves one space to its listing view, including the owning
// coworking. Resolution goes through the place index; a stale entry is
// dropped so the next lookup rebuilds.
func (s *Service) SpaceByID(ctx context.Context, id string) (models.Space, error) {
	const op = "inventory.SpaceByID"

	log := s.log.With(slog.String("op", op), slog.String("space_id", id))

	placeID, err := parseID(id)
	if err != nil {
		return models.Space{}, fmt.Errorf("%s: %w", op, err)
	}

	buildingID, ok := s.cachedBuilding(placeID)
	if !ok {
		if err = s.rebuildIndex(ctx); err != nil {
			return models.Space{}, fmt.Errorf("%s: %w", op, err)
		}

		buildingID, ok = s.cachedBuilding(placeID)
		if !ok {
			return models.Space{}, fmt.Errorf("%s: %w", op,
				apierr.New(apierr.NotFound, "space "+id+" not found"))
		}
	}

	place, err := s.api.Place(ctx, buildingID, placeID)
	if err != nil {
		if apierr.IsNotFound(err) {
			log.Warn("index entry is stale, dropping", sl.Err(err))
			s.dropFromIndex(placeID)
		}

		return models.Space{}, fmt.Errorf("%s: %w", op, err)
	}

	return mapper.PlaceToSpace(place), nil
}

func (s *Service) cachedBuilding(placeID int) (int, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	buildingID, ok := s.index[placeID]

	return buildingID, ok
}

func (s *Service) dropFromIndex(placeID int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.index, placeID)
}

func (s *Service) rebuildIndex(ctx context.Context) error {
	const op = "inventory.rebuildIndex"

	buildings, err := s.api.Buildings(ctx)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	index := make(map[int]int)

	for _, building := range buildings {
		schemes, err := s.api.Schemes(ctx, building.ID)
		if err != nil {
			return fmt.Errorf("%s: %w", op, err)
		}

		for _, scheme := range schemes {
			for _, place := range scheme.Places {
				index[place.ID] = building.ID
			}
		}
	}

	s.mu.Lock()
	s.index = index
	s.mu.Unlock()

	s.log.Debug("place index rebuilt", slog.Int("places", len(index)))

	return nil
}

func parseID(id string) (int, error) {
	n, err := strconv.Atoi(id)
	if err != nil {
		return 0, apierr.Wrap(apierr.Validation, "invalid id format: "+id, err)
	}

	return n, nil
}
