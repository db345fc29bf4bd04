package errors

import "net/http"

var (
	ErrRecResourceNotFound = New(
		"REC_RESOURCE_NOT_FOUND",
		"Recreation resource not found",
		http.StatusNotFound,
	)

	ErrInvalidRecResourceID = New(
		"INVALID_REC_RESOURCE_ID",
		"Invalid recreation resource ID",
		http.StatusBadRequest,
	)

	ErrExcludedActivityCode = New(
		"EXCLUDED_ACTIVITY_CODE",
		"Activity code is not allowed",
		http.StatusBadRequest,
	)

	ErrUnknownActivityCode = New(
		"UNKNOWN_ACTIVITY_CODE",
		"Activity code does not exist",
		http.StatusBadRequest,
	)

	ErrMalformedResource = New(
		"MALFORMED_RESOURCE",
		"Recreation resource record is incomplete",
		http.StatusInternalServerError,
	)

	ErrGeometryUnavailable = New(
		"GEOMETRY_UNAVAILABLE",
		"No spatial geometry for recreation resource",
		http.StatusNotFound,
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

	ErrInvalidRequest = New(
		"INVALID_REQUEST",
		"Invalid request parameters",
		http.StatusBadRequest,
	)

	ErrInternalServer = New(
		"INTERNAL_SERVER_ERROR",
		"Internal server error",
		http.StatusInternalServerError,
	)
)
