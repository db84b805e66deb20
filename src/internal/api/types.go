package api

import "github.com/maksimkurb/ioc-diff/src/internal/indicators"

// DataResponse wraps successful responses with a "data" field.
type DataResponse struct {
	Data interface{} `json:"data"`
}

// CompareRequest holds two indicator lists to compare.
// RangeStyle, LenientParsing and Summary override the server configuration when set.
type CompareRequest struct {
	List1          []string `json:"ioc_list1" validate:"required"`
	List2          []string `json:"ioc_list2" validate:"required"`
	RangeStyle     string   `json:"range_style,omitempty" validate:"range_style"`
	LenientParsing *bool    `json:"lenient_parsing,omitempty"`
	Summary        *bool    `json:"summary,omitempty"`
}

// ClassifyRequest holds one indicator list to classify.
type ClassifyRequest struct {
	Indicators     []string `json:"indicators" validate:"required"`
	RangeStyle     string   `json:"range_style,omitempty" validate:"range_style"`
	LenientParsing *bool    `json:"lenient_parsing,omitempty"`
}

// ClassifyResponse shows how a list was split.
type ClassifyResponse struct {
	// Addresses is the merged address space, rendered in the requested style.
	Addresses     []string `json:"addresses"`
	AddressRanges int      `json:"address_ranges"`
	AddressCount  uint64   `json:"address_count"`
	// Other lists the non-IP indicators in sorted order.
	Other []OtherIndicator `json:"other"`
}

// OtherIndicator is a non-IP indicator with its detected kind.
type OtherIndicator struct {
	Indicator string          `json:"indicator"`
	Kind      indicators.Kind `json:"kind"`
}

// HealthResponse reports that the server is up.
type HealthResponse struct {
	Status  string      `json:"status"`
	Version VersionInfo `json:"version"`
}

// VersionInfo contains build version information.
type VersionInfo struct {
	Version string `json:"version"`
	Date    string `json:"date"`
	Commit  string `json:"commit"`
}
