// NextReel - Video Catalog Recommendation and Play-Next Engine
// Copyright 2026 NextReel Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/nextreel/nextreel

package catalog

import (
	"fmt"
	"strconv"
	"strings"
)

// ItemKind distinguishes the two catalogs sharing one scoring namespace.
type ItemKind int

const (
	// KindMovie identifies movie catalog items.
	KindMovie ItemKind = iota
	// KindSeries identifies series catalog items.
	KindSeries
)

// String returns the wire name of the kind.
func (k ItemKind) String() string {
	switch k {
	case KindMovie:
		return "movie"
	case KindSeries:
		return "series"
	default:
		return "unknown"
	}
}

// ItemKey is a namespaced item identifier carried through the whole
// recommendation pipeline. The string form "movie:123" / "series:45"
// appears only at the API edge; internally the key is a typed value so
// consumers never parse strings.
type ItemKey struct {
	Kind ItemKind
	ID   int
}

// MovieKey returns the item key for a movie.
func MovieKey(id int) ItemKey {
	return ItemKey{Kind: KindMovie, ID: id}
}

// SeriesKey returns the item key for a series.
func SeriesKey(id int) ItemKey {
	return ItemKey{Kind: KindSeries, ID: id}
}

// IsZero reports whether the key is the zero value.
func (k ItemKey) IsZero() bool {
	return k.ID == 0
}

// String returns the namespaced wire form, e.g. "movie:123".
func (k ItemKey) String() string {
	return k.Kind.String() + ":" + strconv.Itoa(k.ID)
}

// Less orders keys deterministically: movies before series, then by ID.
// Used as the tie-break for equal recommendation scores.
func (k ItemKey) Less(other ItemKey) bool {
	if k.Kind != other.Kind {
		return k.Kind < other.Kind
	}
	return k.ID < other.ID
}

// ParseItemKey parses the wire form "movie:123" or "series:45".
func ParseItemKey(s string) (ItemKey, error) {
	kindStr, idStr, ok := strings.Cut(s, ":")
	if !ok {
		return ItemKey{}, fmt.Errorf("invalid item key %q: missing namespace separator", s)
	}

	id, err := strconv.Atoi(idStr)
	if err != nil || id <= 0 {
		return ItemKey{}, fmt.Errorf("invalid item key %q: bad id", s)
	}

	switch kindStr {
	case "movie":
		return MovieKey(id), nil
	case "series":
		return SeriesKey(id), nil
	default:
		return ItemKey{}, fmt.Errorf("invalid item key %q: unknown namespace %q", s, kindStr)
	}
}

// MarshalText implements encoding.TextMarshaler so keys serialize as
// their wire form in JSON.
func (k ItemKey) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (k *ItemKey) UnmarshalText(text []byte) error {
	parsed, err := ParseItemKey(string(text))
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}
