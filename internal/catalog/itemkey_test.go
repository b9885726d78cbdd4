// NextReel - Video Catalog Recommendation and Play-Next Engine
// Copyright 2026 NextReel Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/nextreel/nextreel

package catalog

import "testing"

func TestParseItemKey(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    ItemKey
		wantErr bool
	}{
		{"movie", "movie:123", MovieKey(123), false},
		{"series", "series:45", SeriesKey(45), false},
		{"unknown namespace", "track:7", ItemKey{}, true},
		{"missing separator", "movie123", ItemKey{}, true},
		{"non-numeric id", "movie:abc", ItemKey{}, true},
		{"zero id", "movie:0", ItemKey{}, true},
		{"negative id", "series:-3", ItemKey{}, true},
		{"empty", "", ItemKey{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseItemKey(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseItemKey(%q) error = %v, wantErr = %v", tt.input, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseItemKey(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestItemKeyStringRoundTrip(t *testing.T) {
	for _, key := range []ItemKey{MovieKey(1), MovieKey(999), SeriesKey(42)} {
		parsed, err := ParseItemKey(key.String())
		if err != nil {
			t.Fatalf("ParseItemKey(%q) error = %v", key.String(), err)
		}
		if parsed != key {
			t.Errorf("round trip of %v = %v", key, parsed)
		}
	}
}

func TestItemKeyLess(t *testing.T) {
	tests := []struct {
		name string
		a, b ItemKey
		want bool
	}{
		{"movie before series", MovieKey(999), SeriesKey(1), true},
		{"series after movie", SeriesKey(1), MovieKey(999), false},
		{"same kind by id", MovieKey(1), MovieKey(2), true},
		{"equal keys", SeriesKey(5), SeriesKey(5), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Less(tt.b); got != tt.want {
				t.Errorf("%v.Less(%v) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestItemKeyTextMarshaling(t *testing.T) {
	key := SeriesKey(7)
	text, err := key.MarshalText()
	if err != nil {
		t.Fatalf("MarshalText() error = %v", err)
	}
	if string(text) != "series:7" {
		t.Errorf("MarshalText() = %q, want %q", text, "series:7")
	}

	var decoded ItemKey
	if err := decoded.UnmarshalText(text); err != nil {
		t.Fatalf("UnmarshalText(%q) error = %v", text, err)
	}
	if decoded != key {
		t.Errorf("UnmarshalText(%q) = %v, want %v", text, decoded, key)
	}
}
