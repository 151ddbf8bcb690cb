package domain

// Coordinate is a bare lat/lng pair sent to the directions provider.
type Coordinate struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// DrivingRoute is the provider's answer for one origin-to-destination drive
// through the intermediate stops.
type DrivingRoute struct {
	DistanceMeters  float64 `json:"distance_meters"`
	DurationSeconds float64 `json:"duration_seconds"`
	Geometry        string  `json:"geometry"` // encoded polyline
}

// TransportRoute is the map payload for a transport detail page. When the
// directions provider is unconfigured or failing, MapAvailable is false and
// the plain origin/destination labels plus the great-circle distance remain.
type TransportRoute struct {
	RouteCode        string             `json:"routeCode"`
	Origin           GeoLocation        `json:"origin"`
	Destination      GeoLocation        `json:"destination"`
	Waypoints        []IntermediateStop `json:"waypoints,omitempty"`
	ApproxDistanceKm float64            `json:"approxDistanceKm,omitempty"`
	Route            *DrivingRoute      `json:"route,omitempty"`
	MapAvailable     bool               `json:"mapAvailable"`
	Warning          string             `json:"warning,omitempty"`
}
