// Package client is the authenticated HTTP transport for the coworking API.
// It owns the wire contract (paths, DTOs, error envelope) and maps every
// failure to one of the apierr kinds.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"coworkctl/internal/lib/api/apierr"
	"coworkctl/internal/lib/logger/sl"
)

type Client struct {
	httpClient *http.Client
	baseURL    string
	tokens     TokenSource
	log        *slog.Logger
	now        func() time.Time
}

func New(baseURL string, timeout time.Duration, tokens TokenSource, log *slog.Logger) *Client {
	return &Client{
		httpClient: &http.Client{
			Timeout: timeout,
		},
		baseURL: strings.TrimRight(baseURL, "/"),
		tokens:  tokens,
		log:     log,
		now:     time.Now,
	}
}

// do performs one JSON round-trip. in and out may be nil.
func (c *Client) do(ctx context.Context, method, path string, in, out any) error {
	const op = "client.do"

	log := c.log.With(
		slog.String("op", op),
		slog.String("method", method),
		slog.String("path", path),
	)

	token, err := c.tokens.Token()
	if err != nil {
		return apierr.Wrap(apierr.Transport, "failed to load auth token", err)
	}

	if err = checkExpiry(token, c.now()); err != nil {
		return err
	}

	var body io.Reader
	if in != nil {
		raw, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("%s: marshal request: %w", op, err)
		}
		body = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", token)
	}
	req.Header.Set("X-Request-Id", uuid.NewString())

	resp, err := c.httpClient.Do(req)
	if err != nil {
		log.Error("request failed", sl.Err(err))
		return apierr.Wrap(apierr.Transport, "request failed", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		return c.asAPIError(resp)
	}

	if out != nil {
		if err = json.NewDecoder(resp.Body).Decode(out); err != nil {
			log.Error("failed to decode response", sl.Err(err))
			return apierr.Wrap(apierr.Transport, "failed to decode response", err)
		}
	}

	return nil
}

// asAPIError turns a non-2xx response into an apierr of the matching kind,
// preferring the message from the remote error envelope.
func (c *Client) asAPIError(resp *http.Response) error {
	message := resp.Status

	var remote httpError
	if err := json.NewDecoder(resp.Body).Decode(&remote); err == nil && remote.Message != "" {
		message = remote.Message
	}

	return apierr.FromStatus(resp.StatusCode, message)
}

// Buildings and schemes.

func (c *Client) Buildings(ctx context.Context) ([]BuildingDTO, error) {
	var out []BuildingDTO
	if err := c.do(ctx, http.MethodGet, "/buildings", nil, &out); err != nil {
		return nil, err
	}

	return out, nil
}

func (c *Client) Building(ctx context.Context, buildingID int) (BuildingDTO, error) {
	var out BuildingDTO
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/buildings/%d", buildingID), nil, &out); err != nil {
		return BuildingDTO{}, err
	}

	return out, nil
}

func (c *Client) CreateBuilding(ctx context.Context, req CreateBuildingDTO) (BuildingDTO, error) {
	var out BuildingDTO
	if err := c.do(ctx, http.MethodPost, "/buildings", req, &out); err != nil {
		return BuildingDTO{}, err
	}

	return out, nil
}

func (c *Client) UpdateBuilding(ctx context.Context, buildingID int, req CreateBuildingDTO) (BuildingDTO, error) {
	var out BuildingDTO
	if err := c.do(ctx, http.MethodPatch, fmt.Sprintf("/buildings/%d", buildingID), req, &out); err != nil {
		return BuildingDTO{}, err
	}

	return out, nil
}

func (c *Client) DeleteBuilding(ctx context.Context, buildingID int) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/buildings/%d", buildingID), nil, nil)
}

// Schemes returns the floor layouts of a building, keyed by floor number.
func (c *Client) Schemes(ctx context.Context, buildingID int) (map[string]SchemeDTO, error) {
	var out map[string]SchemeDTO
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/buildings/%d/schemes", buildingID), nil, &out); err != nil {
		return nil, err
	}

	return out, nil
}

func (c *Client) CreateScheme(ctx context.Context, buildingID int, req CreateSchemeDTO) error {
	return c.do(ctx, http.MethodPost, fmt.Sprintf("/buildings/%d/schemes", buildingID), req, nil)
}

func (c *Client) UpdateScheme(ctx context.Context, buildingID, floor int, req CreateSchemeDTO) error {
	return c.do(ctx, http.MethodPatch, fmt.Sprintf("/buildings/%d/schemes/%d", buildingID, floor), req, nil)
}

func (c *Client) DeleteScheme(ctx context.Context, buildingID, floor int) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/buildings/%d/schemes/%d", buildingID, floor), nil, nil)
}

// Places.

func (c *Client) Place(ctx context.Context, buildingID, placeID int) (PlaceDTO, error) {
	var out PlaceDTO
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/buildings/%d/schemes/places/%d", buildingID, placeID), nil, &out); err != nil {
		return PlaceDTO{}, err
	}

	return out, nil
}

func (c *Client) CreatePlace(ctx context.Context, buildingID, floor int, req CreatePlaceDTO) (PlaceDTO, error) {
	var out PlaceDTO
	if err := c.do(ctx, http.MethodPost, fmt.Sprintf("/buildings/%d/schemes/%d", buildingID, floor), req, &out); err != nil {
		return PlaceDTO{}, err
	}

	return out, nil
}

func (c *Client) UpdatePlace(ctx context.Context, buildingID, placeID int, req UpdatePlaceDTO) (PlaceDTO, error) {
	var out PlaceDTO
	if err := c.do(ctx, http.MethodPatch, fmt.Sprintf("/buildings/%d/schemes/places/%d", buildingID, placeID), req, &out); err != nil {
		return PlaceDTO{}, err
	}

	return out, nil
}

func (c *Client) DeletePlace(ctx context.Context, buildingID, placeID int) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/buildings/%d/schemes/places/%d", buildingID, placeID), nil, nil)
}

// Visits.

func (c *Client) ClientVisits(ctx context.Context) ([]ClientVisitDTO, error) {
	var out []ClientVisitDTO
	if err := c.do(ctx, http.MethodGet, "/clients/visits", nil, &out); err != nil {
		return nil, err
	}

	return out, nil
}

// BuildingVisits returns every active visit of a building.
func (c *Client) BuildingVisits(ctx context.Context, buildingID int) ([]VisitDTO, error) {
	var out []VisitDTO
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/buildings/%d/schemes/visits", buildingID), nil, &out); err != nil {
		return nil, err
	}

	return out, nil
}

func (c *Client) CreateVisit(ctx context.Context, buildingID, placeID int, req CreateVisitDTO) (PlaceVisitDTO, error) {
	var out PlaceVisitDTO
	if err := c.do(ctx, http.MethodPost, fmt.Sprintf("/buildings/%d/places/%d/visits", buildingID, placeID), req, &out); err != nil {
		return PlaceVisitDTO{}, err
	}

	return out, nil
}

func (c *Client) DeleteVisit(ctx context.Context, buildingID, placeID, visitID int) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/buildings/%d/places/%d/visits/%d", buildingID, placeID, visitID), nil, nil)
}

func (c *Client) MarkVisited(ctx context.Context, buildingID, placeID, visitID int) error {
	return c.do(ctx, http.MethodPost, fmt.Sprintf("/buildings/%d/places/%d/visits/%d/visited", buildingID, placeID, visitID), nil, nil)
}

// UploadFile sends a binary asset and returns its opaque image id.
func (c *Client) UploadFile(ctx context.Context, filename string, file io.Reader) (UploadFileResponse, error) {
	const op = "client.UploadFile"

	token, err := c.tokens.Token()
	if err != nil {
		return UploadFileResponse{}, apierr.Wrap(apierr.Transport, "failed to load auth token", err)
	}

	if err = checkExpiry(token, c.now()); err != nil {
		return UploadFileResponse{}, err
	}

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	part, err := writer.CreateFormFile("file", filename)
	if err != nil {
		return UploadFileResponse{}, fmt.Errorf("%s: %w", op, err)
	}
	if _, err = io.Copy(part, file); err != nil {
		return UploadFileResponse{}, fmt.Errorf("%s: %w", op, err)
	}
	if err = writer.Close(); err != nil {
		return UploadFileResponse{}, fmt.Errorf("%s: %w", op, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/files", &buf)
	if err != nil {
		return UploadFileResponse{}, fmt.Errorf("%s: %w", op, err)
	}

	req.Header.Set("Content-Type", writer.FormDataContentType())
	if token != "" {
		req.Header.Set("Authorization", token)
	}
	req.Header.Set("X-Request-Id", uuid.NewString())

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return UploadFileResponse{}, apierr.Wrap(apierr.Transport, "request failed", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		return UploadFileResponse{}, c.asAPIError(resp)
	}

	var out UploadFileResponse
	if err = json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return UploadFileResponse{}, apierr.Wrap(apierr.Transport, "failed to decode response", err)
	}

	return out, nil
}
