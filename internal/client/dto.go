package client

// Wire types of the coworking API. Field names follow the remote contract
// bit-exact; domain conversion lives in internal/mapper.

type BuildingDTO struct {
	ID          int      `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	OpenFrom    *int     `json:"open_from"` // seconds from midnight
	OpenTill    *int     `json:"open_till"` // seconds from midnight
	Address     string   `json:"address"`
	X           float64  `json:"x"`
	Y           float64  `json:"y"`
	ImagesID    []string `json:"images_id,omitempty"`
	ImageURLs   []string `json:"image_urls,omitempty"`
}

type CreateBuildingDTO struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	OpenFrom    *int     `json:"open_from,omitempty"`
	OpenTill    *int     `json:"open_till,omitempty"`
	Address     string   `json:"address"`
	X           float64  `json:"x"`
	Y           float64  `json:"y"`
	ImagesID    []string `json:"images_id,omitempty"`
}

type PlaceDTO struct {
	ID         int      `json:"id"`
	Name       string   `json:"name"`
	Features   []string `json:"features"`
	Floor      int      `json:"floor"`
	X          *float64 `json:"x"`
	Y          *float64 `json:"y"`
	BuildingID int      `json:"building_id"`
	Size       *float64 `json:"size,omitempty"`
	Rotate     *float64 `json:"rotate,omitempty"`
	ImageID    *string  `json:"image_id,omitempty"`
	ImageURL   *string  `json:"image_url,omitempty"`
}

type CreatePlaceDTO struct {
	Name     string   `json:"name"`
	Features []string `json:"features"`
	Floor    *int     `json:"floor,omitempty"`
	X        *float64 `json:"x"`
	Y        *float64 `json:"y"`
	Size     *float64 `json:"size,omitempty"`
	Rotate   *float64 `json:"rotate,omitempty"`
	ImageID  *string  `json:"image_id,omitempty"`
}

type UpdatePlaceDTO struct {
	Name     *string  `json:"name,omitempty"`
	Features []string `json:"features,omitempty"`
	Size     *float64 `json:"size,omitempty"`
	Rotate   *float64 `json:"rotate,omitempty"`
	X        *float64 `json:"x,omitempty"`
	Y        *float64 `json:"y,omitempty"`
	ImageID  *string  `json:"image_id,omitempty"`
}

// SchemeDTO is one floor layout of a building.
type SchemeDTO struct {
	Floor    int        `json:"floor"`
	ImageID  string     `json:"image_id"`
	ImageURL string     `json:"image_url"`
	Places   []PlaceDTO `json:"places"`
}

type CreateSchemeDTO struct {
	Floor   int    `json:"floor"`
	ImageID string `json:"image_id"`
}

// VisitDTO is the per-building visit record used for availability checks.
type VisitDTO struct {
	ID        int    `json:"id"`
	PlaceID   int    `json:"place_id"`
	VisitFrom string `json:"visit_from"` // ISO-8601
	VisitTill string `json:"visit_till"` // ISO-8601
}

type CreateVisitDTO struct {
	VisitFrom string `json:"visit_from"`
	VisitTill string `json:"visit_till"`
}

// PlaceVisitDTO is the response of a visit creation.
type PlaceVisitDTO struct {
	ID        int    `json:"id"`
	ClientID  int    `json:"client_id"`
	PlaceID   int    `json:"place_id"`
	VisitFrom string `json:"visit_from"`
	VisitTill string `json:"visit_till"`
	IsVisited bool   `json:"is_visited"`
}

// ClientVisitDTO is one record of the current user's visit history.
type ClientVisitDTO struct {
	ID           int      `json:"id"`
	Place        PlaceDTO `json:"place"`
	VisitFrom    string   `json:"visit_from"`
	VisitTill    string   `json:"visit_till"`
	IsEnded      bool     `json:"is_ended"`
	IsVisited    bool     `json:"is_visited"`
	IsFeedbacked bool     `json:"is_feedbacked"`
}

type UploadFileResponse struct {
	ImageID  string `json:"image_id"`
	ImageURL string `json:"image_url"`
}

// httpError is the remote error envelope.
type httpError struct {
	ErrorCode int    `json:"error_code"`
	HTTPCode  int    `json:"http_code"`
	Message   string `json:"message"`
}
