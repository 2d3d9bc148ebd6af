package inventory

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"

	"coworkctl/internal/client"
	"coworkctl/internal/lib/api/apierr"
	"coworkctl/internal/mapper"
	"coworkctl/internal/models"
)

// Admin write operations against the inventory. Photos are referenced by
// opaque image ids obtained from the files endpoint beforehand.

type CoworkingParams struct {
	Name        string `validate:"required"`
	Description string
	Address     string `validate:"required"`
	X           float64
	Y           float64
	OpenFrom    *int // hour of day (0-23)
	OpenTill    *int // hour of day (0-23)
	ImageIDs    []string
}

type UpdateCoworkingParams struct {
	CoworkingParams
	RemoveImageIDs []string
}

type FloorParams struct {
	Level   int    `validate:"gte=0"`
	ImageID string `validate:"required"` // floor map image is mandatory
}

type PlaceParams struct {
	Name     string `validate:"required"`
	Tags     []string
	Floor    int
	X        float64
	Y        float64
	Size     *float64
	Rotation *float64
	ImageID  string
}

func (s *Service) CreateCoworking(ctx context.Context, params CoworkingParams) (models.Coworking, error) {
	const op = "inventory.CreateCoworking"

	if err := validateParams(params); err != nil {
		return models.Coworking{}, fmt.Errorf("%s: %w", op, err)
	}

	building, err := s.api.CreateBuilding(ctx, client.CreateBuildingDTO{
		Name:        params.Name,
		Description: params.Description,
		Address:     params.Address,
		X:           params.X,
		Y:           params.Y,
		OpenFrom:    hourToSeconds(params.OpenFrom),
		OpenTill:    hourToSeconds(params.OpenTill),
		ImagesID:    params.ImageIDs,
	})
	if err != nil {
		return models.Coworking{}, fmt.Errorf("%s: %w", op, err)
	}

	return mapper.BuildingToCoworking(building), nil
}

// UpdateCoworking merges the given params over the current remote state:
// unset text fields keep their value, new images are appended and removed
// ones filtered out.
func (s *Service) UpdateCoworking(ctx context.Context, id string, params UpdateCoworkingParams) (models.Coworking, error) {
	const op = "inventory.UpdateCoworking"

	buildingID, err := parseID(id)
	if err != nil {
		return models.Coworking{}, fmt.Errorf("%s: %w", op, err)
	}

	current, err := s.api.Building(ctx, buildingID)
	if err != nil {
		return models.Coworking{}, fmt.Errorf("%s: %w", op, err)
	}

	req := client.CreateBuildingDTO{
		Name:        orDefault(params.Name, current.Name),
		Description: orDefault(params.Description, current.Description),
		Address:     orDefault(params.Address, current.Address),
		X:           params.X,
		Y:           params.Y,
		OpenFrom:    hourToSeconds(params.OpenFrom),
		OpenTill:    hourToSeconds(params.OpenTill),
	}
	if req.X == 0 && req.Y == 0 {
		req.X, req.Y = current.X, current.Y
	}

	images := append([]string{}, current.ImagesID...)
	images = append(images, params.ImageIDs...)
	req.ImagesID = filterOut(images, params.RemoveImageIDs)

	building, err := s.api.UpdateBuilding(ctx, buildingID, req)
	if err != nil {
		return models.Coworking{}, fmt.Errorf("%s: %w", op, err)
	}

	return mapper.BuildingToCoworking(building), nil
}

func (s *Service) DeleteCoworking(ctx context.Context, id string) error {
	const op = "inventory.DeleteCoworking"

	buildingID, err := parseID(id)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if err = s.api.DeleteBuilding(ctx, buildingID); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

func (s *Service) CreateFloor(ctx context.Context, coworkingID string, params FloorParams) error {
	const op = "inventory.CreateFloor"

	if err := validateParams(params); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	buildingID, err := parseID(coworkingID)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	err = s.api.CreateScheme(ctx, buildingID, client.CreateSchemeDTO{
		Floor:   params.Level,
		ImageID: params.ImageID,
	})
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

func (s *Service) UpdateFloor(ctx context.Context, coworkingID string, level int, params FloorParams) error {
	const op = "inventory.UpdateFloor"

	if err := validateParams(params); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	buildingID, err := parseID(coworkingID)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	err = s.api.UpdateScheme(ctx, buildingID, level, client.CreateSchemeDTO{
		Floor:   params.Level,
		ImageID: params.ImageID,
	})
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

func (s *Service) DeleteFloor(ctx context.Context, coworkingID string, level int) error {
	const op = "inventory.DeleteFloor"

	buildingID, err := parseID(coworkingID)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if err = s.api.DeleteScheme(ctx, buildingID, level); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

func (s *Service) CreatePlace(ctx context.Context, coworkingID string, params PlaceParams) (models.Place, error) {
	const op = "inventory.CreatePlace"

	if err := validateParams(params); err != nil {
		return models.Place{}, fmt.Errorf("%s: %w", op, err)
	}

	buildingID, err := parseID(coworkingID)
	if err != nil {
		return models.Place{}, fmt.Errorf("%s: %w", op, err)
	}

	tags := params.Tags
	if tags == nil {
		tags = []string{}
	}

	req := client.CreatePlaceDTO{
		Name:     params.Name,
		Features: tags,
		Floor:    &params.Floor,
		X:        &params.X,
		Y:        &params.Y,
		Size:     params.Size,
		Rotate:   params.Rotation,
	}
	if params.ImageID != "" {
		req.ImageID = &params.ImageID
	}

	place, err := s.api.CreatePlace(ctx, buildingID, params.Floor, req)
	if err != nil {
		return models.Place{}, fmt.Errorf("%s: %w", op, err)
	}

	// The new place belongs to a known building, index it right away.
	s.mu.Lock()
	if s.index != nil {
		s.index[place.ID] = buildingID
	}
	s.mu.Unlock()

	return mapper.PlaceToFloorPlace(place), nil
}

func (s *Service) UpdatePlace(ctx context.Context, coworkingID, placeID string, req client.UpdatePlaceDTO) (models.Place, error) {
	const op = "inventory.UpdatePlace"

	buildingID, err := parseID(coworkingID)
	if err != nil {
		return models.Place{}, fmt.Errorf("%s: %w", op, err)
	}

	pid, err := parseID(placeID)
	if err != nil {
		return models.Place{}, fmt.Errorf("%s: %w", op, err)
	}

	place, err := s.api.UpdatePlace(ctx, buildingID, pid, req)
	if err != nil {
		return models.Place{}, fmt.Errorf("%s: %w", op, err)
	}

	return mapper.PlaceToFloorPlace(place), nil
}

func (s *Service) DeletePlace(ctx context.Context, coworkingID, placeID string) error {
	const op = "inventory.DeletePlace"

	buildingID, err := parseID(coworkingID)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	pid, err := parseID(placeID)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if err = s.api.DeletePlace(ctx, buildingID, pid); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	s.dropFromIndex(pid)

	return nil
}

func validateParams(params any) error {
	if err := validator.New().Struct(params); err != nil {
		var validateErr validator.ValidationErrors
		if errors.As(err, &validateErr) {
			return apierr.Wrap(apierr.Validation, "invalid parameters", validateErr)
		}

		return err
	}

	return nil
}

func hourToSeconds(hour *int) *int {
	if hour == nil {
		return nil
	}

	seconds := *hour * 3600

	return &seconds
}

func orDefault(value, fallback string) string {
	if value == "" {
		return fallback
	}

	return value
}

func filterOut(values, remove []string) []string {
	if len(remove) == 0 {
		return values
	}

	removeSet := make(map[string]struct{}, len(remove))
	for _, v := range remove {
		removeSet[v] = struct{}{}
	}

	kept := make([]string, 0, len(values))
	for _, v := range values {
		if _, ok := removeSet[v]; !ok {
			kept = append(kept, v)
		}
	}

	return kept
}
