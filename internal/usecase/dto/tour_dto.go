package dto

import (
	"time"

	"github.com/inkatravel-api/internal/domain"
)

// TranslatedTextInput - multilingual text as received from the admin panel
type TranslatedTextInput map[string]string

// ToDomain converts the raw language map, dropping unsupported codes.
func (t TranslatedTextInput) ToDomain() domain.TranslatedText {
	if t == nil {
		return nil
	}
	out := make(domain.TranslatedText, len(t))
	for code, text := range t {
		if domain.IsValidLanguage(code) {
			out[domain.Language(code)] = text
		}
	}
	return out
}

// GeoLocationInput - named coordinate pair
type GeoLocationInput struct {
	Name string  `json:"name" validate:"required"`
	Lat  float64 `json:"lat" validate:"required,min=-90,max=90"`
	Lng  float64 `json:"lng" validate:"required,min=-180,max=180"`
}

func (g GeoLocationInput) ToDomain() domain.GeoLocation {
	return domain.GeoLocation{Name: g.Name, Lat: g.Lat, Lng: g.Lng}
}

// ItineraryDayInput - one day of a tour itinerary; Day numbers are
// reassigned server-side, so the client value is ignored
type ItineraryDayInput struct {
	Day           int                   `json:"day"`
	Title         TranslatedTextInput   `json:"title" validate:"required"`
	Description   TranslatedTextInput   `json:"description,omitempty"`
	Activities    []TranslatedTextInput `json:"activities,omitempty"`
	Meals         []string              `json:"meals,omitempty"`
	Accommodation string                `json:"accommodation,omitempty"`
	ImageURL      string                `json:"imageUrl,omitempty" validate:"omitempty,url"`
	Route         []GeoLocationInput    `json:"route,omitempty" validate:"omitempty,dive"`
}

func (d ItineraryDayInput) ToDomain() domain.ItineraryDay {
	day := domain.ItineraryDay{
		Day:           d.Day,
		Title:         d.Title.ToDomain(),
		Description:   d.Description.ToDomain(),
		Meals:         d.Meals,
		Accommodation: d.Accommodation,
		ImageURL:      d.ImageURL,
	}
	for _, a := range d.Activities {
		day.Activities = append(day.Activities, a.ToDomain())
	}
	for _, p := range d.Route {
		day.Route = append(day.Route, p.ToDomain())
	}
	return day
}

// CreateTourRequest - admin request to create a tour
type CreateTourRequest struct {
	Title              TranslatedTextInput   `json:"title" validate:"required"`
	Subtitle           TranslatedTextInput   `json:"subtitle,omitempty"`
	Description        TranslatedTextInput   `json:"description,omitempty"`
	Category           string                `json:"category" validate:"required,tour_category"`
	Difficulty         string                `json:"difficulty" validate:"required,tour_difficulty"`
	PackageType        string                `json:"packageType" validate:"required,package_type"`
	Price              float64               `json:"price" validate:"required,gt=0"`
	OriginalPrice      float64               `json:"originalPrice,omitempty" validate:"omitempty,gt=0"`
	Rating             float64               `json:"rating,omitempty" validate:"omitempty,min=0,max=5"`
	Reviews            int                   `json:"reviews,omitempty" validate:"omitempty,min=0"`
	Duration           TranslatedTextInput   `json:"duration,omitempty"`
	Location           TranslatedTextInput   `json:"location,omitempty"`
	Region             string                `json:"region,omitempty"`
	ImageURL           string                `json:"imageUrl,omitempty" validate:"omitempty,url"`
	GalleryURLs        []string              `json:"galleryUrls,omitempty" validate:"omitempty,dive,url"`
	Highlights         []TranslatedTextInput `json:"highlights,omitempty"`
	Includes           []TranslatedTextInput `json:"includes,omitempty"`
	NotIncludes        []TranslatedTextInput `json:"notIncludes,omitempty"`
	ToBring            []TranslatedTextInput `json:"toBring,omitempty"`
	Conditions         []TranslatedTextInput `json:"conditions,omitempty"`
	Itinerary          []ItineraryDayInput   `json:"itinerary,omitempty" validate:"omitempty,dive"`
	TransportOptionIDs []string              `json:"transportOptionIds,omitempty" validate:"omitempty,dive,uuid4"`
	IsActive           *bool                 `json:"isActive,omitempty"`
}

// UpdateTourRequest - partial tour update; nil fields are left untouched,
// present arrays and subdocuments replace the stored value wholesale
type UpdateTourRequest struct {
	Title              TranslatedTextInput    `json:"title,omitempty"`
	Subtitle           TranslatedTextInput    `json:"subtitle,omitempty"`
	Description        TranslatedTextInput    `json:"description,omitempty"`
	Category           *string                `json:"category,omitempty" validate:"omitempty,tour_category"`
	Difficulty         *string                `json:"difficulty,omitempty" validate:"omitempty,tour_difficulty"`
	PackageType        *string                `json:"packageType,omitempty" validate:"omitempty,package_type"`
	Price              *float64               `json:"price,omitempty" validate:"omitempty,gt=0"`
	OriginalPrice      *float64               `json:"originalPrice,omitempty" validate:"omitempty,gt=0"`
	Rating             *float64               `json:"rating,omitempty" validate:"omitempty,min=0,max=5"`
	Reviews            *int                   `json:"reviews,omitempty" validate:"omitempty,min=0"`
	Duration           TranslatedTextInput    `json:"duration,omitempty"`
	Location           TranslatedTextInput    `json:"location,omitempty"`
	Region             *string                `json:"region,omitempty"`
	ImageURL           *string                `json:"imageUrl,omitempty" validate:"omitempty,url"`
	GalleryURLs        *[]string              `json:"galleryUrls,omitempty" validate:"omitempty,dive,url"`
	Highlights         *[]TranslatedTextInput `json:"highlights,omitempty"`
	Includes           *[]TranslatedTextInput `json:"includes,omitempty"`
	NotIncludes        *[]TranslatedTextInput `json:"notIncludes,omitempty"`
	ToBring            *[]TranslatedTextInput `json:"toBring,omitempty"`
	Conditions         *[]TranslatedTextInput `json:"conditions,omitempty"`
	Itinerary          *[]ItineraryDayInput   `json:"itinerary,omitempty" validate:"omitempty,dive"`
	TransportOptionIDs *[]string              `json:"transportOptionIds,omitempty" validate:"omitempty,dive,uuid4"`
	IsActive           *bool                  `json:"isActive,omitempty"`
}

// SetTransportOptionsRequest - replaces a tour's linked transport options.
// Items may be plain IDs or embedded objects carrying an _id field.
type SetTransportOptionsRequest struct {
	TransportOptions []TransportOptionRef `json:"transportOptions" validate:"required"`
}

// TransportOptionRef - either a bare UUID string or an object with _id
type TransportOptionRef struct {
	ID string
}

func (r *TransportOptionRef) UnmarshalJSON(data []byte) error {
	return unmarshalIDOrObject(data, &r.ID)
}

// TourListQuery - query params for the public tour listing
type TourListQuery struct {
	Category string `query:"category" validate:"omitempty,tour_category"`
	Region   string `query:"region"`
	All      bool   `query:"all"` // admin only: include inactive tours
}

// TourCardResponse - localized tour projection for listing pages
type TourCardResponse struct {
	ID            string   `json:"_id"`
	Slug          string   `json:"slug"`
	Title         string   `json:"title"`
	Subtitle      string   `json:"subtitle,omitempty"`
	Category      string   `json:"category"`
	Difficulty    string   `json:"difficulty"`
	PackageType   string   `json:"packageType"`
	Price         float64  `json:"price"`
	OriginalPrice float64  `json:"originalPrice,omitempty"`
	Duration      string   `json:"duration,omitempty"`
	Location      string   `json:"location,omitempty"`
	Region        string   `json:"region,omitempty"`
	ImageURL      string   `json:"imageUrl,omitempty"`
	Rating        float64  `json:"rating"`
	Reviews       int      `json:"reviews"`
	Highlights    []string `json:"highlights,omitempty"`
	IsActive      bool     `json:"isActive"`
}

// ItineraryDayResponse - localized itinerary day
type ItineraryDayResponse struct {
	Day           int                  `json:"day"`
	Title         string               `json:"title"`
	Description   string               `json:"description,omitempty"`
	Activities    []string             `json:"activities,omitempty"`
	Meals         []string             `json:"meals,omitempty"`
	Accommodation string               `json:"accommodation,omitempty"`
	ImageURL      string               `json:"imageUrl,omitempty"`
	Route         []domain.GeoLocation `json:"route,omitempty"`
}

// TourDetailResponse - localized full tour projection
type TourDetailResponse struct {
	TourCardResponse
	Description      string                  `json:"description,omitempty"`
	GalleryURLs      []string                `json:"galleryUrls,omitempty"`
	Includes         []string                `json:"includes,omitempty"`
	NotIncludes      []string                `json:"notIncludes,omitempty"`
	ToBring          []string                `json:"toBring,omitempty"`
	Conditions       []string                `json:"conditions,omitempty"`
	Itinerary        []ItineraryDayResponse  `json:"itinerary,omitempty"`
	TransportOptions []TransportCardResponse `json:"transportOptions,omitempty"`
	CreatedAt        time.Time               `json:"createdAt"`
	UpdatedAt        time.Time               `json:"updatedAt"`
}

// NewTourCard projects a tour into the requested language.
func NewTourCard(t *domain.Tour, lang domain.Language) TourCardResponse {
	return TourCardResponse{
		ID:            t.ID,
		Slug:          t.Slug,
		Title:         t.Title.Resolve(lang),
		Subtitle:      t.Subtitle.Resolve(lang),
		Category:      string(t.Category),
		Difficulty:    string(t.Difficulty),
		PackageType:   string(t.PackageType),
		Price:         t.Price,
		OriginalPrice: t.OriginalPrice,
		Duration:      t.Duration.Resolve(lang),
		Location:      t.Location.Resolve(lang),
		Region:        t.Region,
		ImageURL:      t.ImageURL,
		Rating:        t.Rating,
		Reviews:       t.Reviews,
		Highlights:    resolveList(t.Highlights, lang),
		IsActive:      t.IsActive,
	}
}

// NewTourDetail projects a full tour, including its linked transports.
func NewTourDetail(t *domain.Tour, transports []*domain.TourTransport, lang domain.Language) TourDetailResponse {
	resp := TourDetailResponse{
		TourCardResponse: NewTourCard(t, lang),
		Description:      t.Description.Resolve(lang),
		GalleryURLs:      t.GalleryURLs,
		Includes:         resolveList(t.Includes, lang),
		NotIncludes:      resolveList(t.NotIncludes, lang),
		ToBring:          resolveList(t.ToBring, lang),
		Conditions:       resolveList(t.Conditions, lang),
		CreatedAt:        t.CreatedAt,
		UpdatedAt:        t.UpdatedAt,
	}
	for _, d := range t.Itinerary {
		resp.Itinerary = append(resp.Itinerary, ItineraryDayResponse{
			Day:           d.Day,
			Title:         d.Title.Resolve(lang),
			Description:   d.Description.Resolve(lang),
			Activities:    resolveList(d.Activities, lang),
			Meals:         d.Meals,
			Accommodation: d.Accommodation,
			ImageURL:      d.ImageURL,
			Route:         d.Route,
		})
	}
	for _, tr := range transports {
		resp.TransportOptions = append(resp.TransportOptions, NewTransportCard(tr, lang))
	}
	return resp
}

// resolveList drops entries with no usable translation so lists render
// without gaps.
func resolveList(items []domain.TranslatedText, lang domain.Language) []string {
	if len(items) == 0 {
		return nil
	}
	out := make([]string, 0, len(items))
	for _, v := range domain.ResolveAll(items, lang) {
		if v != "" {
			out = append(out, v)
		}
	}
	return out
}
