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

package stats

import (
	"fmt"
	"time"

	"github.com/ademuri/apple-music-stats/internal/library"
)

// Definition is a named report over a track table.
type Definition struct {
	// Name is the snake_case report name.
	Name string
	// Requires lists the library fields the report reads.
	Requires []string
	Compute  func(tracks []library.Track) Result
}

// Report is a computed Definition.
type Report struct {
	Name   string
	Result Result
}

var definitions = []Definition{
	{
		Name:     "most_played_tracks",
		Requires: []string{library.FieldName, library.FieldArtist, library.FieldAlbum, library.FieldPlayCount},
		Compute: func(tracks []library.Track) Result {
			return TrackRanking{Unit: "plays", WithAlbum: true, Entries: topTracks(tracks, TopN, playCount, true)}
		},
	},
	{
		Name:     "most_skipped_tracks",
		Requires: []string{library.FieldName, library.FieldArtist, library.FieldSkipCount},
		Compute: func(tracks []library.Track) Result {
			return TrackRanking{Unit: "skips", Entries: topTracks(tracks, TopN, skipCount, false)}
		},
	},
	{
		Name:     "most_played_artists",
		Requires: []string{library.FieldArtist, library.FieldPlayCount},
		Compute: func(tracks []library.Track) Result {
			return GroupRanking{Field: library.FieldArtist, Unit: "plays", Entries: topGroups(tracks, TopN, artist, playCount)}
		},
	},
	{
		Name:     "most_played_albums",
		Requires: []string{library.FieldAlbum, library.FieldPlayCount},
		Compute: func(tracks []library.Track) Result {
			return GroupRanking{Field: library.FieldAlbum, Unit: "plays", Entries: topGroups(tracks, TopN, album, playCount)}
		},
	},
	{
		Name:     "most_played_genres",
		Requires: []string{library.FieldGenre, library.FieldPlayCount},
		Compute: func(tracks []library.Track) Result {
			return GroupRanking{Field: library.FieldGenre, Unit: "plays", Entries: topGroups(tracks, TopN, genre, playCount)}
		},
	},
	{
		Name:     "top_three_genres",
		Requires: []string{library.FieldGenre},
		Compute: func(tracks []library.Track) Result {
			return GroupRanking{Field: library.FieldGenre, Unit: "songs", Entries: topGroups(tracks, TopN, genre, oneRow)}
		},
	},
	{
		Name:     "top_three_artists",
		Requires: []string{library.FieldArtist},
		Compute: func(tracks []library.Track) Result {
			return GroupRanking{Field: library.FieldArtist, Unit: "songs", Entries: topGroups(tracks, TopN, artist, oneRow)}
		},
	},
	{
		Name:     "total_time",
		Requires: []string{library.FieldPlayCount},
		Compute: func(tracks []library.Track) Result {
			return TotalDuration{Label: "Total time", Value: TotalPlayTime(tracks)}
		},
	},
	{
		Name:     "total_play_count",
		Requires: []string{library.FieldPlayCount},
		Compute: func(tracks []library.Track) Result {
			return TotalCount{Label: "Total play count", Value: TotalPlayCount(tracks)}
		},
	},
}

// Definitions returns the report definitions in report order.
func Definitions() []Definition {
	defs := make([]Definition, len(definitions))
	copy(defs, definitions)
	return defs
}

// Compute runs every report definition against table, in order. A
// non-empty table missing a field some report requires is a
// *library.SchemaError.
func Compute(table *library.Table) ([]Report, error) {
	return ComputeDefinitions(table, definitions)
}

// ComputeDefinitions runs the given definitions against table, in order.
func ComputeDefinitions(table *library.Table, defs []Definition) ([]Report, error) {
	if err := Validate(table, defs); err != nil {
		return nil, err
	}

	tracks := table.Tracks()
	reports := make([]Report, 0, len(defs))
	for _, def := range defs {
		reports = append(reports, Report{Name: def.Name, Result: def.Compute(tracks)})
	}
	return reports, nil
}

// Validate checks that table carries every field defs require. An empty
// table is always valid.
func Validate(table *library.Table, defs []Definition) error {
	if table.Len() == 0 {
		return nil
	}
	for _, def := range defs {
		for _, field := range def.Requires {
			if !table.HasField(field) {
				return &library.SchemaError{
					Field:  field,
					Reason: fmt.Sprintf("is absent from every track but required by %s", def.Name),
				}
			}
		}
	}
	return nil
}

// TotalPlayTime sums duration times play count over tracks. Tracks without
// a duration or plays contribute nothing.
func TotalPlayTime(tracks []library.Track) time.Duration {
	var total time.Duration
	for _, t := range tracks {
		total += t.Duration * time.Duration(t.PlayCount)
	}
	return total
}

// TotalPlayCount sums play counts over tracks.
func TotalPlayCount(tracks []library.Track) int64 {
	var total int64
	for _, t := range tracks {
		total += t.PlayCount
	}
	return total
}
