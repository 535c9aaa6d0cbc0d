// Gustus - Recipe Analytics and Seasonal Ranking
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/gustus

// Package validation provides struct validation using go-playground/validator v10.
//
// This package wraps the go-playground/validator library to provide a
// thread-safe singleton validator instance with custom validators and
// user-friendly error messages. It integrates with the application's API
// error format for consistent error responses.
//
// # Overview
//
// The package provides:
//   - Thread-safe singleton validator (initialized once, cached struct info)
//   - Custom validators for recipe categories and seasons
//   - Error translation to human-readable messages
//   - APIError conversion matching the application's error format
//
// # Quick Start
//
//	type ClassifyRequest struct {
//	    Name string   `validate:"required,max=512"`
//	    Tags []string `validate:"max=128,dive,max=128"`
//	}
//
//	func handler(w http.ResponseWriter, r *http.Request) {
//	    var req ClassifyRequest
//	    if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
//	        // handle decode error
//	    }
//
//	    if verr := validation.ValidateStruct(&req); verr != nil {
//	        apiErr := verr.ToAPIError()
//	        respondError(w, http.StatusBadRequest, apiErr.Code, apiErr.Message, apiErr.Details)
//	        return
//	    }
//
//	    // proceed with valid request
//	}
//
// # Custom Validation Tags
//
//   - recipe_category: one of main_dish, dessert, beverage
//   - season: one of Spring, Summer, Fall, Winter
//
// # Thread Safety
//
// The singleton validator is initialized once and safe for concurrent use.
package validation
