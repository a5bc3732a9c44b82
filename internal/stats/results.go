/*
Copyright 2020 Google LLC

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

// Package stats computes listening reports over a library track table.
package stats

import (
	"slices"
	"time"

	"github.com/ademuri/apple-music-stats/internal/library"
)

// TopN is the number of entries kept by every ranking.
const TopN = 3

// Result is the value of a single report. It is one of TrackRanking,
// GroupRanking, TotalDuration or TotalCount.
type Result interface {
	isResult()
}

// TrackStat is one ranked track.
type TrackStat struct {
	Name   string
	Artist string
	Album  string
	Count  int64
}

// TrackRanking ranks individual tracks by a counter.
type TrackRanking struct {
	// Unit names the counter, "plays" or "skips".
	Unit string
	// WithAlbum is set when the album is part of the report.
	WithAlbum bool
	Entries   []TrackStat
}

// GroupStat is one ranked group of tracks.
type GroupStat struct {
	Key   string
	Count int64
}

// GroupRanking ranks groups of tracks sharing a field value.
type GroupRanking struct {
	// Field is the library field the tracks are grouped by.
	Field string
	// Unit is "plays" for summed play counts and "songs" for track counts.
	Unit    string
	Entries []GroupStat
}

// TotalDuration is an accumulated listening time.
type TotalDuration struct {
	Label string
	Value time.Duration
}

// TotalCount is an accumulated counter.
type TotalCount struct {
	Label string
	Value int64
}

func (TrackRanking) isResult()  {}
func (GroupRanking) isResult()  {}
func (TotalDuration) isResult() {}
func (TotalCount) isResult()    {}

// topTracks returns up to n tracks ordered by key descending. Ties keep
// table order.
func topTracks(tracks []library.Track, n int, key func(library.Track) int64, withAlbum bool) []TrackStat {
	sorted := slices.Clone(tracks)
	slices.SortStableFunc(sorted, func(a, b library.Track) int {
		return compareDesc(key(a), key(b))
	})

	stats := make([]TrackStat, 0, min(n, len(sorted)))
	for _, t := range sorted[:min(n, len(sorted))] {
		stat := TrackStat{Name: t.Name, Artist: t.Artist, Count: key(t)}
		if withAlbum {
			stat.Album = t.Album
		}
		stats = append(stats, stat)
	}
	return stats
}

// topGroups groups tracks by group, sums weight per group and returns up to
// n groups ordered by the sum descending. Ties keep the order in which each
// group first appears. Tracks with an empty group key are skipped.
func topGroups(tracks []library.Track, n int, group func(library.Track) string, weight func(library.Track) int64) []GroupStat {
	var groups []GroupStat
	index := make(map[string]int)
	for _, t := range tracks {
		key := group(t)
		if key == "" {
			continue
		}
		i, ok := index[key]
		if !ok {
			i = len(groups)
			index[key] = i
			groups = append(groups, GroupStat{Key: key})
		}
		groups[i].Count += weight(t)
	}

	slices.SortStableFunc(groups, func(a, b GroupStat) int {
		return compareDesc(a.Count, b.Count)
	})
	if len(groups) > n {
		groups = groups[:n]
	}
	if groups == nil {
		groups = []GroupStat{}
	}
	return groups
}

func compareDesc(a, b int64) int {
	switch {
	case a > b:
		return -1
	case a < b:
		return 1
	default:
		return 0
	}
}

func playCount(t library.Track) int64 { return t.PlayCount }
func skipCount(t library.Track) int64 { return t.SkipCount }
func oneRow(library.Track) int64      { return 1 }

func artist(t library.Track) string { return t.Artist }
func album(t library.Track) string  { return t.Album }
func genre(t library.Track) string  { return t.Genre }
