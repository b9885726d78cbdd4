// NextReel - Video Catalog Recommendation and Play-Next Engine
// Copyright 2026 NextReel Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/nextreel/nextreel

package recommend

import "errors"

// Sentinel errors returned by the service. A not-found error marks an
// explicit lookup failure and is distinct from an empty recommendation
// list, which is a legitimate result.
var (
	ErrMovieNotFound    = errors.New("movie not found")
	ErrSeriesNotFound   = errors.New("series not found")
	ErrEpisodeNotFound  = errors.New("episode not found")
	ErrSeasonNotFound   = errors.New("season not found")
	ErrItemNotFound     = errors.New("item not found")
	ErrInvalidStrategy  = errors.New("invalid strategy")
	ErrRefreshThrottled = errors.New("refresh rate limit exceeded")
)
