package dto

import "github.com/inkatravel-api/internal/domain"

// TransportRouteResponse - driving geometry for a transport service's map.
// When the directions provider is unconfigured or failing, MapAvailable is
// false and Waypoints still carry enough to render a static fallback.
type TransportRouteResponse struct {
	RouteCode    string               `json:"routeCode"`
	Origin       domain.GeoLocation   `json:"origin"`
	Destination  domain.GeoLocation   `json:"destination"`
	Waypoints    []domain.IntermediateStop `json:"waypoints,omitempty"`
	Route        *domain.DrivingRoute `json:"route,omitempty"`
	MapAvailable bool                 `json:"mapAvailable"`
	Warning      string               `json:"warning,omitempty"`
}

// NewTransportRouteResponse converts the domain route.
func NewTransportRouteResponse(r *domain.TransportRoute) TransportRouteResponse {
	return TransportRouteResponse{
		RouteCode:    r.RouteCode,
		Origin:       r.Origin,
		Destination:  r.Destination,
		Waypoints:    r.Waypoints,
		Route:        r.Route,
		MapAvailable: r.MapAvailable,
		Warning:      r.Warning,
	}
}
