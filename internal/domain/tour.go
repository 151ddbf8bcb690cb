package domain

import "time"

// GeoLocation is a named point on the map.
type GeoLocation struct {
	Name string  `json:"name" db:"name"`
	Lat  float64 `json:"lat" db:"lat"`
	Lng  float64 `json:"lng" db:"lng"`
}

// ItineraryDay is one day of a multi-day tour. Day numbers are kept
// contiguous from 1; NormalizeItinerary enforces that after edits.
type ItineraryDay struct {
	ID            string           `json:"id,omitempty"`
	Day           int              `json:"day"`
	Title         TranslatedText   `json:"title"`
	Description   TranslatedText   `json:"description"`
	Activities    []TranslatedText `json:"activities,omitempty"`
	Meals         []string         `json:"meals,omitempty"`
	Accommodation string           `json:"accommodation,omitempty"`
	ImageURL      string           `json:"imageUrl,omitempty"`
	Route         []GeoLocation    `json:"route,omitempty"`
}

type Tour struct {
	ID            string           `json:"_id" db:"id"`
	Slug          string           `json:"slug" db:"slug"`
	Title         TranslatedText   `json:"title"`
	Subtitle      TranslatedText   `json:"subtitle"`
	Description   TranslatedText   `json:"description"`
	Duration      TranslatedText   `json:"duration"`
	Location      TranslatedText   `json:"location"`
	Region        string           `json:"region,omitempty" db:"region"`
	ImageURL      string           `json:"imageUrl" db:"image_url"`
	GalleryURLs   []string         `json:"galleryUrls,omitempty"`
	Price         float64          `json:"price" db:"price"`
	OriginalPrice float64          `json:"originalPrice,omitempty" db:"original_price"`
	Rating        float64          `json:"rating" db:"rating"`
	Reviews       int              `json:"reviews" db:"reviews"`
	Category      string           `json:"category" db:"category"`
	Difficulty    string           `json:"difficulty" db:"difficulty"`
	PackageType   string           `json:"packageType" db:"package_type"`
	Highlights    []TranslatedText `json:"highlights,omitempty"`
	Itinerary     []ItineraryDay   `json:"itinerary,omitempty"`
	Includes      []TranslatedText `json:"includes,omitempty"`
	NotIncludes   []TranslatedText `json:"notIncludes,omitempty"`
	ToBring       []TranslatedText `json:"toBring,omitempty"`
	Conditions    []TranslatedText `json:"conditions,omitempty"`

	// Associated point-to-point transports, by reference.
	TransportOptionIDs []string `json:"transportOptionIds,omitempty"`

	IsActive  bool      `json:"isActive" db:"is_active"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt time.Time `json:"updatedAt" db:"updated_at"`
}

// Tour category constants
const (
	TourCategoryAdventure  = "adventure"
	TourCategoryCultural   = "cultural"
	TourCategoryNature     = "nature"
	TourCategoryGastronomy = "gastronomy"
)

// Difficulty constants
const (
	DifficultyEasy        = "easy"
	DifficultyModerate    = "moderate"
	DifficultyChallenging = "challenging"
)

// Package type constants
const (
	PackageTypeBasic   = "basic"
	PackageTypePremium = "premium"
)

func ValidTourCategories() []string {
	return []string{TourCategoryAdventure, TourCategoryCultural, TourCategoryNature, TourCategoryGastronomy}
}

func ValidDifficulties() []string {
	return []string{DifficultyEasy, DifficultyModerate, DifficultyChallenging}
}

func ValidPackageTypes() []string {
	return []string{PackageTypeBasic, PackageTypePremium}
}

// NormalizeItinerary renumbers days contiguously from 1 preserving order and
// strips stale nested sub-document IDs so edits never resend old identifiers.
func NormalizeItinerary(days []ItineraryDay) []ItineraryDay {
	out := make([]ItineraryDay, len(days))
	for i, d := range days {
		d.ID = ""
		d.Day = i + 1
		out[i] = d
	}
	return out
}
