package domain

import "time"

// IntermediateStop is a waypoint on a transport route.
type IntermediateStop struct {
	Name     string  `json:"name"`
	Lat      float64 `json:"lat"`
	Lng      float64 `json:"lng"`
	StopTime string  `json:"stopTime,omitempty"`
}

// TransportRoutePoint is a stop in the transport itinerary, described in
// every content language.
type TransportRoutePoint struct {
	ID          string         `json:"id,omitempty"`
	Location    TranslatedText `json:"location"`
	Description TranslatedText `json:"description"`
	StopTime    string         `json:"stopTime,omitempty"`
}

// TransportItineraryDay mirrors ItineraryDay but with multilingual route points.
type TransportItineraryDay struct {
	ID          string                `json:"id,omitempty"`
	Day         int                   `json:"day"`
	Title       TranslatedText        `json:"title"`
	Description TranslatedText        `json:"description"`
	Route       []TransportRoutePoint `json:"route,omitempty"`
}

type TourTransport struct {
	ID                 string         `json:"_id" db:"id"`
	Slug               string         `json:"slug" db:"slug"`
	Title              TranslatedText `json:"title"`
	Description        TranslatedText `json:"description"`
	TermsAndConditions TranslatedText `json:"termsAndConditions"`
	ImageURL           string         `json:"imageUrl" db:"image_url"`
	GalleryURLs        []string       `json:"galleryUrls,omitempty"`

	Origin            GeoLocation        `json:"origin"`
	Destination       GeoLocation        `json:"destination"`
	IntermediateStops []IntermediateStop `json:"intermediateStops,omitempty"`

	AvailableDays   []string `json:"availableDays"`
	DepartureTime   string   `json:"departureTime" db:"departure_time"`
	ArrivalTime     string   `json:"arrivalTime" db:"arrival_time"`
	DurationInHours float64  `json:"durationInHours" db:"duration_in_hours"`
	Duration        string   `json:"duration" db:"duration"`

	Price        float64 `json:"price" db:"price"`
	ServicePrice float64 `json:"servicePrice" db:"service_price"`
	ServiceType  string  `json:"serviceType" db:"service_type"`
	Rating       float64 `json:"rating" db:"rating"`

	VehicleID string `json:"vehicleId,omitempty" db:"vehicle_id"`
	RouteCode string `json:"routeCode" db:"route_code"`

	IsActive   bool `json:"isActive" db:"is_active"`
	IsFeatured bool `json:"isFeatured" db:"is_featured"`

	Itinerary []TransportItineraryDay `json:"itinerary,omitempty"`

	CreatedAt time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt time.Time `json:"updatedAt" db:"updated_at"`
}

// Service type constants
const (
	ServiceTypeBasic          = "basic"
	ServiceTypePrivatePremium = "privatePremium"
)

func ValidServiceTypes() []string {
	return []string{ServiceTypeBasic, ServiceTypePrivatePremium}
}

var weekdays = []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday"}

// ValidWeekdays returns the weekday names accepted in availableDays.
func ValidWeekdays() []string {
	out := make([]string, len(weekdays))
	copy(out, weekdays)
	return out
}

func IsValidWeekday(day string) bool {
	for _, d := range weekdays {
		if d == day {
			return true
		}
	}
	return false
}

// RunsOn reports whether the transport departs on the given weekday.
func (t *TourTransport) RunsOn(weekday string) bool {
	for _, d := range t.AvailableDays {
		if d == weekday {
			return true
		}
	}
	return false
}
