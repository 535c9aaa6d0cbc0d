// Gustus - Recipe Analytics and Seasonal Ranking
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/gustus

// Package supervisor provides Suture-based process supervision.
//
// The tree has two layers under the root: a jobs layer for the periodic
// classification scheduler and an api layer for the HTTP server. A crash in
// the jobs layer restarts only the scheduler; the API keeps serving.
package supervisor
