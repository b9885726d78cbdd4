// NextReel - Video Catalog Recommendation and Play-Next Engine
// Copyright 2026 NextReel Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/nextreel/nextreel

package catalog

import (
	"sort"
	"sync"
	"time"
)

// Store is an in-memory snapshot of the catalog and interaction data the
// recommendation core reads. It is safe for concurrent use. Every mutation
// bumps the version stamp so derived structures (matrices, vector spaces)
// can detect staleness and rebuild.
type Store struct {
	mu sync.RWMutex

	version int64

	movies   map[int]Movie
	series   map[int]Series
	seasons  map[int]Season
	episodes map[int]Episode

	// movieWatches and episodeWatches hold one row per (user, item);
	// progress updates overwrite in place.
	movieWatches   map[[2]int]MovieWatch   // [userID, movieID]
	episodeWatches map[[2]int]EpisodeWatch // [userID, episodeID]
	movieRatings   map[[2]int]MovieRating  // [userID, movieID]
	seriesRatings  map[[2]int]SeriesRating // [userID, seriesID]
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{
		version:        1,
		movies:         make(map[int]Movie),
		series:         make(map[int]Series),
		seasons:        make(map[int]Season),
		episodes:       make(map[int]Episode),
		movieWatches:   make(map[[2]int]MovieWatch),
		episodeWatches: make(map[[2]int]EpisodeWatch),
		movieRatings:   make(map[[2]int]MovieRating),
		seriesRatings:  make(map[[2]int]SeriesRating),
	}
}

// Version returns the current data version stamp.
func (s *Store) Version() int64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.version
}

func (s *Store) bump() {
	s.version++
}

// ---- catalog mutators ----

// PutMovie inserts or replaces a movie.
func (s *Store) PutMovie(m Movie) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.movies[m.ID] = m
	s.bump()
}

// PutSeries inserts or replaces a series.
func (s *Store) PutSeries(sr Series) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.series[sr.ID] = sr
	s.bump()
}

// PutSeason inserts or replaces a season.
func (s *Store) PutSeason(sn Season) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.seasons[sn.ID] = sn
	s.bump()
}

// PutEpisode inserts or replaces an episode.
func (s *Store) PutEpisode(e Episode) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.episodes[e.ID] = e
	s.bump()
}

// ---- interaction mutators ----

// RecordMovieWatch upserts a movie watch-progress row.
func (s *Store) RecordMovieWatch(w MovieWatch) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if w.WatchedAt.IsZero() {
		w.WatchedAt = time.Now()
	}
	s.movieWatches[[2]int{w.UserID, w.MovieID}] = w
	s.bump()
}

// RecordEpisodeWatch upserts an episode watch-progress row.
func (s *Store) RecordEpisodeWatch(w EpisodeWatch) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if w.WatchedAt.IsZero() {
		w.WatchedAt = time.Now()
	}
	s.episodeWatches[[2]int{w.UserID, w.EpisodeID}] = w
	s.bump()
}

// RateMovie upserts an explicit movie rating.
func (s *Store) RateMovie(r MovieRating) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.movieRatings[[2]int{r.UserID, r.MovieID}] = r
	s.bump()
}

// RateSeries upserts an explicit series rating.
func (s *Store) RateSeries(r SeriesRating) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.seriesRatings[[2]int{r.UserID, r.SeriesID}] = r
	s.bump()
}

// ---- catalog reads ----

// MovieByID returns a movie by ID.
func (s *Store) MovieByID(id int) (Movie, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	m, ok := s.movies[id]
	return m, ok
}

// SeriesByID returns a series by ID.
func (s *Store) SeriesByID(id int) (Series, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	sr, ok := s.series[id]
	return sr, ok
}

// SeasonByID returns a season by ID.
func (s *Store) SeasonByID(id int) (Season, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	sn, ok := s.seasons[id]
	return sn, ok
}

// EpisodeByID returns an episode by ID.
func (s *Store) EpisodeByID(id int) (Episode, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	e, ok := s.episodes[id]
	return e, ok
}

// ReadyMovies returns all movies with status ready, ordered by ID.
func (s *Store) ReadyMovies() []Movie {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Movie, 0, len(s.movies))
	for _, m := range s.movies {
		if m.Status == MovieStatusReady {
			out = append(out, m)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// ActiveSeries returns all series with status active, ordered by ID.
func (s *Store) ActiveSeries() []Series {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Series, 0, len(s.series))
	for _, sr := range s.series {
		if sr.Status == SeriesStatusActive {
			out = append(out, sr)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// SeasonsForSeries returns a series' seasons ordered by season number.
func (s *Store) SeasonsForSeries(seriesID int) []Season {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []Season
	for _, sn := range s.seasons {
		if sn.SeriesID == seriesID {
			out = append(out, sn)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].SeasonNumber < out[j].SeasonNumber })
	return out
}

// EpisodesForSeason returns a season's episodes ordered by episode number.
func (s *Store) EpisodesForSeason(seasonID int) []Episode {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []Episode
	for _, e := range s.episodes {
		if e.SeasonID == seasonID {
			out = append(out, e)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].EpisodeNumber < out[j].EpisodeNumber })
	return out
}

// SeriesIDForEpisode resolves an episode to its series through the season.
func (s *Store) SeriesIDForEpisode(episodeID int) (int, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	e, ok := s.episodes[episodeID]
	if !ok {
		return 0, false
	}
	sn, ok := s.seasons[e.SeasonID]
	if !ok {
		return 0, false
	}
	return sn.SeriesID, true
}

// SeriesCounts returns the season and episode counts for a series.
func (s *Store) SeriesCounts(seriesID int) (seasons, episodes int) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	seasonIDs := make(map[int]struct{})
	for _, sn := range s.seasons {
		if sn.SeriesID == seriesID {
			seasons++
			seasonIDs[sn.ID] = struct{}{}
		}
	}
	for _, e := range s.episodes {
		if _, ok := seasonIDs[e.SeasonID]; ok {
			episodes++
		}
	}
	return seasons, episodes
}

// ---- interaction reads ----

// MovieWatches returns all movie watch rows, ordered by (user, movie).
func (s *Store) MovieWatches() []MovieWatch {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]MovieWatch, 0, len(s.movieWatches))
	for _, w := range s.movieWatches {
		out = append(out, w)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].UserID != out[j].UserID {
			return out[i].UserID < out[j].UserID
		}
		return out[i].MovieID < out[j].MovieID
	})
	return out
}

// EpisodeWatches returns all episode watch rows, ordered by (user, episode).
func (s *Store) EpisodeWatches() []EpisodeWatch {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]EpisodeWatch, 0, len(s.episodeWatches))
	for _, w := range s.episodeWatches {
		out = append(out, w)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].UserID != out[j].UserID {
			return out[i].UserID < out[j].UserID
		}
		return out[i].EpisodeID < out[j].EpisodeID
	})
	return out
}

// MovieRatings returns all explicit movie ratings, ordered by (user, movie).
func (s *Store) MovieRatings() []MovieRating {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]MovieRating, 0, len(s.movieRatings))
	for _, r := range s.movieRatings {
		out = append(out, r)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].UserID != out[j].UserID {
			return out[i].UserID < out[j].UserID
		}
		return out[i].MovieID < out[j].MovieID
	})
	return out
}

// SeriesRatings returns all explicit series ratings, ordered by (user, series).
func (s *Store) SeriesRatings() []SeriesRating {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]SeriesRating, 0, len(s.seriesRatings))
	for _, r := range s.seriesRatings {
		out = append(out, r)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].UserID != out[j].UserID {
			return out[i].UserID < out[j].UserID
		}
		return out[i].SeriesID < out[j].SeriesID
	})
	return out
}

// InteractionCount returns the user's total signal volume: movie watches
// plus episode watches. The hybrid blender uses this for strategy selection.
func (s *Store) InteractionCount(userID int) int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	count := 0
	for key := range s.movieWatches {
		if key[0] == userID {
			count++
		}
	}
	for key := range s.episodeWatches {
		if key[0] == userID {
			count++
		}
	}
	return count
}

// MovieWatchCountsSince counts movie watches newer than the cutoff,
// keyed by movie ID. Used for trending.
func (s *Store) MovieWatchCountsSince(cutoff time.Time) map[int]int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	counts := make(map[int]int)
	for _, w := range s.movieWatches {
		if w.WatchedAt.After(cutoff) {
			counts[w.MovieID]++
		}
	}
	return counts
}
