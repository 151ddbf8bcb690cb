package errors

import "net/http"

var (
	ErrTourNotFound = New(
		"TOUR_NOT_FOUND",
		"Tour not found",
		http.StatusNotFound,
	)

	ErrTransportNotFound = New(
		"TRANSPORT_NOT_FOUND",
		"Transport route not found",
		http.StatusNotFound,
	)

	ErrCartNotFound = New(
		"CART_NOT_FOUND",
		"Cart not found",
		http.StatusNotFound,
	)

	ErrCartItemNotFound = New(
		"CART_ITEM_NOT_FOUND",
		"Cart item not found",
		http.StatusNotFound,
	)

	ErrCartEmpty = New(
		"CART_EMPTY",
		"Cart is empty",
		http.StatusBadRequest,
	)

	ErrProductInactive = New(
		"PRODUCT_INACTIVE",
		"Product is not available for booking",
		http.StatusConflict,
	)

	ErrDuplicateSlug = New(
		"DUPLICATE_SLUG",
		"Slug already in use",
		http.StatusConflict,
	)

	ErrInvalidLanguage = New(
		"INVALID_LANGUAGE",
		"Unsupported language code",
		http.StatusBadRequest,
	)

	ErrInvalidCoordinates = New(
		"INVALID_COORDINATES",
		"Invalid coordinates provided",
		http.StatusBadRequest,
	)

	ErrInvalidItinerary = New(
		"INVALID_ITINERARY",
		"Invalid itinerary data",
		http.StatusBadRequest,
	)

	ErrInvalidRequest = New(
		"INVALID_REQUEST",
		"Invalid request parameters",
		http.StatusBadRequest,
	)

	ErrUnauthorized = New(
		"UNAUTHORIZED",
		"Authentication required",
		http.StatusUnauthorized,
	)

	ErrForbidden = New(
		"FORBIDDEN",
		"Not allowed",
		http.StatusForbidden,
	)

	ErrRouteUnavailable = New(
		"ROUTE_UNAVAILABLE",
		"Driving route could not be fetched",
		http.StatusBadGateway,
	)

	ErrDatabaseError = New(
		"DATABASE_ERROR",
		"Database operation failed",
		http.StatusInternalServerError,
	)

	ErrCacheError = New(
		"CACHE_ERROR",
		"Cache operation failed",
		http.StatusInternalServerError,
	)

	ErrInternalServer = New(
		"INTERNAL_SERVER_ERROR",
		"Internal server error",
		http.StatusInternalServerError,
	)
)
