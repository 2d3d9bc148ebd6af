package models

// Coworking is a building with bookable places, organized into floors.
type Coworking struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Address     string    `json:"address"`
	X           float64   `json:"x"`
	Y           float64   `json:"y"`
	GeoCoords   []float64 `json:"geo_coords"` // [lat, lng]
	Photos      []string  `json:"photos"`
	OpenFrom    *int      `json:"open_from"` // opening hour of day (0-23), nil when unknown
	OpenTill    *int      `json:"open_till"` // closing hour of day (0-23), nil when unknown
}

type Floor struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Level    int     `json:"level"`
	MapImage string  `json:"map_image"`
	Places   []Place `json:"places"`
}

// Place is a bookable point on a floor map. Coordinates are percentages
// of the map dimensions.
type Place struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	X        float64  `json:"x"`
	Y        float64  `json:"y"`
	Size     float64  `json:"size"`
	Tags     []string `json:"tags"`
	Photo    string   `json:"photo,omitempty"`
	Rotation float64  `json:"rotation"`
}

// Space is the listing view of a place: what it is and which coworking
// and floor it belongs to.
type Space struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Photo       string `json:"photo,omitempty"`
	Floor       int    `json:"floor"`
	CoworkingID string `json:"coworking_id"`
}
