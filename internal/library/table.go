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

package library

import (
	"fmt"
	"slices"
	"time"
)

// Source field names as they appear in an Apple Music library export.
const (
	FieldTrackID   = "Track ID"
	FieldName      = "Name"
	FieldArtist    = "Artist"
	FieldAlbum     = "Album"
	FieldGenre     = "Genre"
	FieldDuration  = "Total Time"
	FieldPlayCount = "Play Count"
	FieldSkipCount = "Skip Count"
	FieldYear      = "Year"
)

// Track is one library entry, reduced to the fields used for reporting.
// Absent text fields are empty strings.
type Track struct {
	ID        int64
	Name      string
	Artist    string
	Album     string
	Genre     string
	Duration  time.Duration
	PlayCount int64
	SkipCount int64
	Year      *int64
}

// Table is an ordered, read-only collection of tracks indexed by ID.
type Table struct {
	tracks []Track
	index  map[int64]int
	fields map[string]bool
}

// NewTable builds a table from tracks in the given order. fields names the
// source fields present in the table; Play Count and Skip Count are always
// included since absent counts are normalized to zero.
func NewTable(tracks []Track, fields ...string) (*Table, error) {
	t := &Table{
		tracks: slices.Clone(tracks),
		index:  make(map[int64]int, len(tracks)),
		fields: map[string]bool{
			FieldPlayCount: true,
			FieldSkipCount: true,
		},
	}
	for i, track := range t.tracks {
		if _, ok := t.index[track.ID]; ok {
			return nil, &SchemaError{Field: FieldTrackID, Reason: fmt.Sprintf("has duplicate value %d", track.ID)}
		}
		if track.PlayCount < 0 {
			return nil, &SchemaError{Field: FieldPlayCount, Reason: fmt.Sprintf("is negative for track %d", track.ID)}
		}
		if track.SkipCount < 0 {
			return nil, &SchemaError{Field: FieldSkipCount, Reason: fmt.Sprintf("is negative for track %d", track.ID)}
		}
		t.index[track.ID] = i
	}
	for _, f := range fields {
		t.fields[f] = true
	}
	return t, nil
}

// Len returns the number of tracks.
func (t *Table) Len() int {
	return len(t.tracks)
}

// Tracks returns a copy of the tracks in table order.
func (t *Table) Tracks() []Track {
	return slices.Clone(t.tracks)
}

// Lookup returns the track with the given ID.
func (t *Table) Lookup(id int64) (Track, bool) {
	i, ok := t.index[id]
	if !ok {
		return Track{}, false
	}
	return t.tracks[i], true
}

// HasField reports whether the source field was present on any track.
func (t *Table) HasField(field string) bool {
	return t.fields[field]
}

// Fields returns the sorted names of the source fields present in the table.
func (t *Table) Fields() []string {
	fields := make([]string, 0, len(t.fields))
	for f := range t.fields {
		fields = append(fields, f)
	}
	slices.Sort(fields)
	return fields
}
