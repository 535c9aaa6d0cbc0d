// Gustus - Recipe Analytics and Seasonal Ranking
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/gustus

package models

import (
	"time"
)

// APIResponse represents a standardized API response wrapper used by all HTTP
// endpoints. It provides consistent structure for both successful and error
// responses, with metadata for observability.
//
// Status field values:
//   - "success": Request completed successfully, see Data field
//   - "error": Request failed, see Error field for details
//
// Example successful response:
//
//	{
//	  "status": "success",
//	  "data": {"label": "dessert", "confidence": 74.1},
//	  "metadata": {
//	    "timestamp": "2026-08-31T12:00:00Z",
//	    "query_time_ms": 3
//	  }
//	}
//
// Example error response:
//
//	{
//	  "status": "error",
//	  "error": {
//	    "code": "VALIDATION_ERROR",
//	    "message": "calories must not be negative",
//	    "details": {"field": "nutrition.calories"}
//	  },
//	  "metadata": {"timestamp": "2026-08-31T12:00:00Z"}
//	}
type APIResponse struct {
	Status   string      `json:"status"`
	Data     interface{} `json:"data"`
	Metadata Metadata    `json:"metadata"`
	Error    *APIError   `json:"error,omitempty"`
}

// Metadata contains response metadata for observability and performance
// tracking. QueryTimeMS covers database plus classifier execution time.
type Metadata struct {
	Timestamp   time.Time `json:"timestamp"`
	QueryTimeMS int64     `json:"query_time_ms"`
}

// APIError carries structured error details for failed requests.
//
// Code values:
//   - "VALIDATION_ERROR": Request failed input validation
//   - "NOT_FOUND": Requested resource does not exist
//   - "RATE_LIMITED": Too many requests
//   - "INTERNAL_ERROR": Unexpected server-side failure
type APIError struct {
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
}

// NewSuccessResponse builds a success envelope around data.
func NewSuccessResponse(data interface{}, queryTime time.Duration) APIResponse {
	return APIResponse{
		Status: "success",
		Data:   data,
		Metadata: Metadata{
			Timestamp:   time.Now().UTC(),
			QueryTimeMS: queryTime.Milliseconds(),
		},
	}
}

// NewErrorResponse builds an error envelope.
func NewErrorResponse(code, message string, details map[string]interface{}) APIResponse {
	return APIResponse{
		Status: "error",
		Error: &APIError{
			Code:    code,
			Message: message,
			Details: details,
		},
		Metadata: Metadata{
			Timestamp: time.Now().UTC(),
		},
	}
}
