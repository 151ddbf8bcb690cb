package dto

import (
	"time"

	"github.com/inkatravel-api/internal/domain"
)

// IntermediateStopInput - stop between origin and destination
type IntermediateStopInput struct {
	Name     string  `json:"name" validate:"required"`
	Lat      float64 `json:"lat" validate:"required,min=-90,max=90"`
	Lng      float64 `json:"lng" validate:"required,min=-180,max=180"`
	StopTime string  `json:"stopTime,omitempty"`
}

func (s IntermediateStopInput) ToDomain() domain.IntermediateStop {
	return domain.IntermediateStop{Name: s.Name, Lat: s.Lat, Lng: s.Lng, StopTime: s.StopTime}
}

// TransportRoutePointInput - narrated point of a transport route
type TransportRoutePointInput struct {
	Location    TranslatedTextInput `json:"location" validate:"required"`
	Description TranslatedTextInput `json:"description,omitempty"`
	StopTime    string              `json:"stopTime,omitempty"`
}

func (p TransportRoutePointInput) ToDomain() domain.TransportRoutePoint {
	return domain.TransportRoutePoint{
		Location:    p.Location.ToDomain(),
		Description: p.Description.ToDomain(),
		StopTime:    p.StopTime,
	}
}

// TransportItineraryDayInput - one leg of a multi-day transport service.
// Day numbers are reassigned server-side like tour itineraries.
type TransportItineraryDayInput struct {
	Day         int                        `json:"day"`
	Title       TranslatedTextInput        `json:"title" validate:"required"`
	Description TranslatedTextInput        `json:"description,omitempty"`
	Route       []TransportRoutePointInput `json:"route,omitempty" validate:"omitempty,dive"`
}

func (d TransportItineraryDayInput) ToDomain() domain.TransportItineraryDay {
	day := domain.TransportItineraryDay{
		Day:         d.Day,
		Title:       d.Title.ToDomain(),
		Description: d.Description.ToDomain(),
	}
	for _, p := range d.Route {
		day.Route = append(day.Route, p.ToDomain())
	}
	return day
}

// CreateTransportRequest - admin request to create a transport service
type CreateTransportRequest struct {
	Title              TranslatedTextInput          `json:"title" validate:"required"`
	Description        TranslatedTextInput          `json:"description,omitempty"`
	TermsAndConditions TranslatedTextInput          `json:"termsAndConditions,omitempty"`
	Origin             GeoLocationInput             `json:"origin" validate:"required"`
	Destination        GeoLocationInput             `json:"destination" validate:"required"`
	IntermediateStops  []IntermediateStopInput      `json:"intermediateStops,omitempty" validate:"omitempty,dive"`
	AvailableDays      []string                     `json:"availableDays" validate:"required,min=1,dive,weekday"`
	DepartureTime      string                       `json:"departureTime" validate:"required"`
	ArrivalTime        string                       `json:"arrivalTime" validate:"required"`
	DurationInHours    float64                      `json:"durationInHours,omitempty" validate:"omitempty,gt=0"`
	Duration           string                       `json:"duration,omitempty"`
	Price              float64                      `json:"price" validate:"required,gt=0"`
	ServicePrice       float64                      `json:"servicePrice,omitempty" validate:"omitempty,gt=0"`
	ServiceType        string                       `json:"serviceType" validate:"required,service_type"`
	Rating             float64                      `json:"rating,omitempty" validate:"omitempty,min=0,max=5"`
	VehicleID          string                       `json:"vehicleId,omitempty"`
	ImageURL           string                       `json:"imageUrl,omitempty" validate:"omitempty,url"`
	GalleryURLs        []string                     `json:"galleryUrls,omitempty" validate:"omitempty,dive,url"`
	Itinerary          []TransportItineraryDayInput `json:"itinerary,omitempty" validate:"omitempty,dive"`
	IsActive           *bool                        `json:"isActive,omitempty"`
	IsFeatured         bool                         `json:"isFeatured,omitempty"`
}

// UpdateTransportRequest - partial transport update, same replacement
// semantics as UpdateTourRequest
type UpdateTransportRequest struct {
	Title              TranslatedTextInput           `json:"title,omitempty"`
	Description        TranslatedTextInput           `json:"description,omitempty"`
	TermsAndConditions TranslatedTextInput           `json:"termsAndConditions,omitempty"`
	Origin             *GeoLocationInput             `json:"origin,omitempty"`
	Destination        *GeoLocationInput             `json:"destination,omitempty"`
	IntermediateStops  *[]IntermediateStopInput      `json:"intermediateStops,omitempty" validate:"omitempty,dive"`
	AvailableDays      *[]string                     `json:"availableDays,omitempty" validate:"omitempty,min=1,dive,weekday"`
	DepartureTime      *string                       `json:"departureTime,omitempty"`
	ArrivalTime        *string                       `json:"arrivalTime,omitempty"`
	DurationInHours    *float64                      `json:"durationInHours,omitempty" validate:"omitempty,gt=0"`
	Duration           *string                       `json:"duration,omitempty"`
	Price              *float64                      `json:"price,omitempty" validate:"omitempty,gt=0"`
	ServicePrice       *float64                      `json:"servicePrice,omitempty" validate:"omitempty,gt=0"`
	ServiceType        *string                       `json:"serviceType,omitempty" validate:"omitempty,service_type"`
	Rating             *float64                      `json:"rating,omitempty" validate:"omitempty,min=0,max=5"`
	VehicleID          *string                       `json:"vehicleId,omitempty"`
	ImageURL           *string                       `json:"imageUrl,omitempty" validate:"omitempty,url"`
	GalleryURLs        *[]string                     `json:"galleryUrls,omitempty" validate:"omitempty,dive,url"`
	Itinerary          *[]TransportItineraryDayInput `json:"itinerary,omitempty" validate:"omitempty,dive"`
	IsActive           *bool                         `json:"isActive,omitempty"`
	IsFeatured         *bool                         `json:"isFeatured,omitempty"`
}

// TransportListQuery - search filters for the public transport listing.
// All present filters combine with AND; Query matches free text across
// every stored language.
type TransportListQuery struct {
	Query       string `query:"q"`
	Origin      string `query:"origin"`
	Destination string `query:"destination"`
	Day         string `query:"day" validate:"omitempty,weekday"`
	Featured    bool   `query:"featured"`
	All         bool   `query:"all"` // admin only: include inactive services
}

// TransportCardResponse - localized transport projection for listings
type TransportCardResponse struct {
	ID              string   `json:"_id"`
	Slug            string   `json:"slug"`
	RouteCode       string   `json:"routeCode"`
	Title           string   `json:"title"`
	OriginName      string   `json:"originName"`
	DestinationName string   `json:"destinationName"`
	AvailableDays   []string `json:"availableDays"`
	DepartureTime   string   `json:"departureTime"`
	ArrivalTime     string   `json:"arrivalTime"`
	DurationInHours float64  `json:"durationInHours,omitempty"`
	Duration        string   `json:"duration,omitempty"`
	Rating          float64  `json:"rating"`
	Price           float64  `json:"price"`
	ServicePrice    float64  `json:"servicePrice,omitempty"`
	ServiceType     string   `json:"serviceType"`
	ImageURL        string   `json:"imageUrl,omitempty"`
	IsActive        bool     `json:"isActive"`
	IsFeatured      bool     `json:"isFeatured"`
}

// TransportRoutePointResponse - localized route point
type TransportRoutePointResponse struct {
	Location    string `json:"location"`
	Description string `json:"description,omitempty"`
	StopTime    string `json:"stopTime,omitempty"`
}

// TransportItineraryDayResponse - localized transport itinerary day
type TransportItineraryDayResponse struct {
	Day         int                           `json:"day"`
	Title       string                        `json:"title"`
	Description string                        `json:"description,omitempty"`
	Route       []TransportRoutePointResponse `json:"route,omitempty"`
}

// TransportDetailResponse - localized full transport projection
type TransportDetailResponse struct {
	TransportCardResponse
	Description        string                          `json:"description,omitempty"`
	TermsAndConditions string                          `json:"termsAndConditions,omitempty"`
	Origin             domain.GeoLocation              `json:"origin"`
	Destination        domain.GeoLocation              `json:"destination"`
	IntermediateStops  []domain.IntermediateStop       `json:"intermediateStops,omitempty"`
	VehicleID          string                          `json:"vehicleId,omitempty"`
	GalleryURLs        []string                        `json:"galleryUrls,omitempty"`
	Itinerary          []TransportItineraryDayResponse `json:"itinerary,omitempty"`
	CreatedAt          time.Time                       `json:"createdAt"`
	UpdatedAt          time.Time                       `json:"updatedAt"`
}

// NewTransportCard projects a transport service into the requested language.
func NewTransportCard(t *domain.TourTransport, lang domain.Language) TransportCardResponse {
	return TransportCardResponse{
		ID:              t.ID,
		Slug:            t.Slug,
		RouteCode:       t.RouteCode,
		Title:           t.Title.Resolve(lang),
		OriginName:      t.Origin.Name,
		DestinationName: t.Destination.Name,
		AvailableDays:   t.AvailableDays,
		DepartureTime:   t.DepartureTime,
		ArrivalTime:     t.ArrivalTime,
		DurationInHours: t.DurationInHours,
		Duration:        t.Duration,
		Rating:          t.Rating,
		Price:           t.Price,
		ServicePrice:    t.ServicePrice,
		ServiceType:     string(t.ServiceType),
		ImageURL:        t.ImageURL,
		IsActive:        t.IsActive,
		IsFeatured:      t.IsFeatured,
	}
}

// NewTransportDetail projects a full transport service.
func NewTransportDetail(t *domain.TourTransport, lang domain.Language) TransportDetailResponse {
	resp := TransportDetailResponse{
		TransportCardResponse: NewTransportCard(t, lang),
		Description:           t.Description.Resolve(lang),
		TermsAndConditions:    t.TermsAndConditions.Resolve(lang),
		Origin:                t.Origin,
		Destination:           t.Destination,
		IntermediateStops:     t.IntermediateStops,
		VehicleID:             t.VehicleID,
		GalleryURLs:           t.GalleryURLs,
		CreatedAt:             t.CreatedAt,
		UpdatedAt:             t.UpdatedAt,
	}
	for _, d := range t.Itinerary {
		day := TransportItineraryDayResponse{
			Day:         d.Day,
			Title:       d.Title.Resolve(lang),
			Description: d.Description.Resolve(lang),
		}
		for _, p := range d.Route {
			day.Route = append(day.Route, TransportRoutePointResponse{
				Location:    p.Location.Resolve(lang),
				Description: p.Description.Resolve(lang),
				StopTime:    p.StopTime,
			})
		}
		resp.Itinerary = append(resp.Itinerary, day)
	}
	return resp
}
