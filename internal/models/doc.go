// Gustus - Recipe Analytics and Seasonal Ranking
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/gustus

/*
Package models defines data structures for the Gustus application.

This package contains the data models shared across the application:
database rows, API request/response structures, and internal data transfer
objects. It serves as the single source of truth for data structure
definitions.

Key Components:

  - Recipe: Core database model for imported recipes
  - Interaction: User review of a recipe (rating plus submission date)
  - Classification: Stored classifier verdict for one recipe
  - RankedRecipe: One entry of a seasonal top-N ranking
  - APIResponse: Standardized API response wrapper

Model Categories:

 1. Database Models:
    Recipe, Interaction, Classification

 2. API Request/Response Models:
    APIResponse, APIError, Metadata, ClassifyRequest

 3. Ranking Models:
    RankedRecipe, SeasonalRanking
*/
package models
