// Package docs Inka Travel API.
//
// Booking API for multi-day tours and point-to-point transport services.
// Serves multilingual catalog content (es, en, fr, de, it), a server-side
// shopping cart with a cached summary projection, and driving-route
// geometry for transport maps.
//
//	Schemes: http, https
//	BasePath: /
//	Version: 1.0.0
//
//	Consumes:
//	- application/json
//
//	Produces:
//	- application/json
//
//	SecurityDefinitions:
//	api_key:
//	     type: apiKey
//	     name: Authorization
//	     in: header
//
// swagger:meta
package docs
