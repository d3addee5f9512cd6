package geoip

import "strings"

// Response mirrors the subset of the ipapi.co JSON payload the showroom reads.
// Other providers with a top-level "country" field decode the same way.
type Response struct {
	IP          string `json:"ip"`
	City        string `json:"city"`
	Region      string `json:"region"`
	Country     string `json:"country"`
	CountryCode string `json:"country_code"`
	CountryName string `json:"country_name"`
	Error       bool   `json:"error"`
	Reason      string `json:"reason"`
}

// ISOCode returns the two-letter country code, preferring "country" and
// falling back to "country_code".
func (r Response) ISOCode() string {
	code := strings.TrimSpace(r.Country)
	if code == "" {
		code = strings.TrimSpace(r.CountryCode)
	}
	return strings.ToUpper(code)
}
