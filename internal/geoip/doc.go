// Package geoip provides a small HTTP client for IP-geolocation lookups.
//
// # Overview
//
// The showroom asks one external service, once per gate display, which
// country the visitor's network address belongs to. Only the two-letter
// country code matters; mapping it onto a supported market happens in the
// state package.
//
// # Request Handling
//
// Each lookup:
//   - Issues a single GET to the configured endpoint (ipapi.co by default)
//   - Sets Accept: application/json and User-Agent: showroom/0.1
//   - Carries no credentials and is never retried
//   - Honors the caller's context; the client timeout is optional
//
// # Error Handling
//
// All of the following are returned as wrapped errors:
//
//   - Transport failures (DNS, refused connection, timeout)
//   - HTTP status >= 400
//   - Bodies that are not JSON
//   - Provider error payloads ({"error": true, "reason": "RateLimited"})
//   - Payloads without a country code (ErrNoCountry)
//
// Callers treat every error the same way: detection is unavailable and a
// fallback market is used.
package geoip
