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
	"cmp"
	"fmt"
	"math"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cast"
)

const fieldTracks = "Tracks"

// retainedFields are the source fields kept on each Track. Everything else
// in a track dictionary is discarded.
var retainedFields = []string{
	FieldName,
	FieldArtist,
	FieldAlbum,
	FieldGenre,
	FieldDuration,
	FieldPlayCount,
	FieldSkipCount,
	FieldYear,
}

// Preprocess validates a decoded library document and projects its
// "Tracks" dictionary into a Table ordered by track ID.
func Preprocess(doc Document) (*Table, error) {
	root, ok := doc.(map[string]any)
	if !ok {
		return nil, &SchemaError{Reason: fmt.Sprintf("root is %T, not a dictionary", doc)}
	}
	raw, ok := root[fieldTracks]
	if !ok {
		return nil, &SchemaError{Field: fieldTracks, Reason: "is missing"}
	}
	entries, ok := raw.(map[string]any)
	if !ok {
		return nil, &SchemaError{Field: fieldTracks, Reason: fmt.Sprintf("is %T, not a dictionary", raw)}
	}

	tracks := make([]Track, 0, len(entries))
	present := make(map[string]bool)
	for key, value := range entries {
		attrs, ok := value.(map[string]any)
		if !ok {
			return nil, &SchemaError{Field: fieldTracks, Reason: fmt.Sprintf("entry %q is %T, not a dictionary", key, value)}
		}
		track, err := projectTrack(key, attrs)
		if err != nil {
			return nil, err
		}
		tracks = append(tracks, track)
		for _, f := range retainedFields {
			if v, ok := attrs[f]; ok && v != nil {
				present[f] = true
			}
		}
	}

	// Decoding into a map loses the document order of "Tracks". Exports
	// write tracks in ascending ID order, so sort by ID to restore it.
	slices.SortFunc(tracks, func(a, b Track) int {
		return cmp.Compare(a.ID, b.ID)
	})

	fields := make([]string, 0, len(present))
	for f := range present {
		fields = append(fields, f)
	}
	return NewTable(tracks, fields...)
}

func projectTrack(key string, attrs map[string]any) (track Track, err error) {
	track.ID, err = trackID(key, attrs)
	if err != nil {
		return
	}

	for field, dst := range map[string]*string{
		FieldName:   &track.Name,
		FieldArtist: &track.Artist,
		FieldAlbum:  &track.Album,
		FieldGenre:  &track.Genre,
	} {
		*dst, err = optionalString(attrs, field)
		if err != nil {
			return
		}
	}

	track.Duration, err = duration(attrs)
	if err != nil {
		return
	}

	track.PlayCount, err = count(attrs, FieldPlayCount)
	if err != nil {
		return
	}
	track.SkipCount, err = count(attrs, FieldSkipCount)
	if err != nil {
		return
	}

	year, ok, err := optionalInt(attrs, FieldYear)
	if err != nil {
		return
	}
	if ok {
		track.Year = &year
	}
	return
}

func trackID(key string, attrs map[string]any) (int64, error) {
	id, ok, err := optionalInt(attrs, FieldTrackID)
	if err != nil {
		return 0, err
	}
	if ok {
		return id, nil
	}
	id, err = strconv.ParseInt(key, 10, 64)
	if err != nil {
		return 0, &SchemaError{Field: FieldTrackID, Reason: fmt.Sprintf("is missing for entry %q", key)}
	}
	return id, nil
}

func optionalString(attrs map[string]any, field string) (string, error) {
	v, ok := attrs[field]
	if !ok || v == nil {
		return "", nil
	}
	s, err := cast.ToStringE(v)
	if err != nil {
		return "", &SchemaError{Field: field, Reason: fmt.Sprintf("is %T, not text", v)}
	}
	return s, nil
}

func optionalInt(attrs map[string]any, field string) (int64, bool, error) {
	v, ok := attrs[field]
	if !ok || v == nil {
		return 0, false, nil
	}
	if f, isFloat := v.(float64); isFloat && f != math.Trunc(f) {
		return 0, false, &SchemaError{Field: field, Reason: fmt.Sprintf("has non-integral value %v", f)}
	}
	var n int64
	var err error
	switch x := v.(type) {
	case string:
		n, err = strconv.ParseInt(strings.TrimSpace(x), 10, 64)
	case uint64:
		if x > math.MaxInt64 {
			return 0, false, &SchemaError{Field: field, Reason: fmt.Sprintf("is out of range (%d)", x)}
		}
		n = int64(x)
	default:
		n, err = cast.ToInt64E(v)
	}
	if err != nil {
		return 0, false, &SchemaError{Field: field, Reason: fmt.Sprintf("is %T, not an integer", v)}
	}
	return n, true, nil
}

// count reads a play or skip counter, defaulting to zero.
func count(attrs map[string]any, field string) (int64, error) {
	n, _, err := optionalInt(attrs, field)
	if err != nil {
		return 0, err
	}
	if n < 0 {
		return 0, &SchemaError{Field: field, Reason: fmt.Sprintf("is negative (%d)", n)}
	}
	return n, nil
}

// duration converts the source "Total Time" in milliseconds.
func duration(attrs map[string]any) (time.Duration, error) {
	v, ok := attrs[FieldDuration]
	if !ok || v == nil {
		return 0, nil
	}
	ms, err := cast.ToFloat64E(v)
	if err != nil {
		return 0, &SchemaError{Field: FieldDuration, Reason: fmt.Sprintf("is %T, not a number", v)}
	}
	if ms < 0 {
		return 0, &SchemaError{Field: FieldDuration, Reason: fmt.Sprintf("is negative (%v)", ms)}
	}
	return time.Duration(math.Round(ms * float64(time.Millisecond))), nil
}
