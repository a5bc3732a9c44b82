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

package report

import (
	"bytes"
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/ademuri/apple-music-stats/internal/library"
	"github.com/ademuri/apple-music-stats/internal/stats"
	"github.com/google/go-cmp/cmp"
)

var ansi = regexp.MustCompile(`\x1b\[[0-9;]*m`)

func testReports() []stats.Report {
	return []stats.Report{
		{Name: "most_played_tracks", Result: stats.TrackRanking{Unit: "plays", WithAlbum: true, Entries: []stats.TrackStat{
			{Name: "Come Together", Artist: "The Beatles", Album: "Abbey Road", Count: 10},
			{Name: "So What", Artist: "Miles Davis", Album: "Kind of Blue", Count: 4},
		}}},
		{Name: "most_skipped_tracks", Result: stats.TrackRanking{Unit: "skips", Entries: []stats.TrackStat{
			{Name: "Revolution 9", Artist: "The Beatles", Count: 3},
		}}},
		{Name: "most_played_albums", Result: stats.GroupRanking{Field: library.FieldAlbum, Unit: "plays", Entries: []stats.GroupStat{
			{Key: "Abbey Road", Count: 10},
		}}},
		{Name: "top_three_genres", Result: stats.GroupRanking{Field: library.FieldGenre, Unit: "songs", Entries: []stats.GroupStat{
			{Key: "Rock", Count: 2},
			{Key: "Jazz", Count: 1},
		}}},
		{Name: "most_played_artists", Result: stats.GroupRanking{Field: library.FieldArtist, Unit: "plays"}},
		{Name: "total_time", Result: stats.TotalDuration{Label: "Total time", Value: 26*time.Hour + 3*time.Minute + 12*time.Second}},
		{Name: "total_play_count", Result: stats.TotalCount{Label: "Total play count", Value: 17}},
	}
}

const wantPlain = `Most Played Tracks:
Come Together by The Beatles from Abbey Road - 10 plays
So What by Miles Davis from Kind of Blue - 4 plays

Most Skipped Tracks:
Revolution 9 by The Beatles - 3 skips

Most Played Albums:
Abbey Road - 10 plays

Top Three Genres:
Rock - 2 songs
Jazz - 1 songs

Most Played Artists:

Total Time:
Total time: 1 days 02:03:12

Total Play Count:
Total play count: 17

`

func TestRenderPlain(t *testing.T) {
	var out bytes.Buffer
	if err := New(&out, Options{}).Render(testReports()); err != nil {
		t.Fatalf("Render() error: %v", err)
	}
	if diff := cmp.Diff(wantPlain, out.String()); diff != "" {
		t.Errorf("Render() mismatch (-want +got):\n%s", diff)
	}
	if ansi.MatchString(out.String()) {
		t.Errorf("plain output contains escape sequences: %q", out.String())
	}
}

func TestRenderStyledStripsToPlain(t *testing.T) {
	var out bytes.Buffer
	if err := New(&out, Options{Styled: true}).Render(testReports()); err != nil {
		t.Fatalf("Render() error: %v", err)
	}
	if !ansi.MatchString(out.String()) {
		t.Fatalf("styled output has no escape sequences: %q", out.String())
	}
	if diff := cmp.Diff(wantPlain, ansi.ReplaceAllString(out.String(), "")); diff != "" {
		t.Errorf("stripped styled output mismatch (-want +got):\n%s", diff)
	}
}

func TestRenderTable(t *testing.T) {
	var out bytes.Buffer
	if err := New(&out, Options{Format: FormatTable}).Render(testReports()); err != nil {
		t.Fatalf("Render() error: %v", err)
	}
	got := out.String()

	for _, want := range []string{
		"Most Played Tracks:\n",
		"Come Together", "Abbey Road", "Kind of Blue",
		"Revolution 9",
		"Rock", "Jazz",
		"Total time: 1 days 02:03:12\n",
		"Total play count: 17\n",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("table output missing %q. Got:\n%s", want, got)
		}
	}
	if !strings.Contains(got, "Most Played Artists:\n\n") {
		t.Errorf("empty ranking should render an empty body. Got:\n%s", got)
	}
	if strings.Contains(got, " by ") {
		t.Errorf("table output should not contain list lines. Got:\n%s", got)
	}
}

func TestTitle(t *testing.T) {
	tests := map[string]string{
		"most_played_tracks": "Most Played Tracks",
		"top_three_genres":   "Top Three Genres",
		"total_time":         "Total Time",
		"single":             "Single",
	}
	for in, want := range tests {
		if got := Title(in); got != want {
			t.Errorf("Title(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		in   time.Duration
		want string
	}{
		{0, "0 days 00:00:00"},
		{12 * time.Second, "0 days 00:00:12"},
		{90*time.Minute + 500*time.Millisecond, "0 days 01:30:00"},
		{400 * 24 * time.Hour, "400 days 00:00:00"},
	}
	for _, tt := range tests {
		if got := FormatDuration(tt.in); got != tt.want {
			t.Errorf("FormatDuration(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestParseFormat(t *testing.T) {
	for in, want := range map[string]Format{"": FormatList, "list": FormatList, "TABLE": FormatTable} {
		got, err := ParseFormat(in)
		if err != nil || got != want {
			t.Errorf("ParseFormat(%q) = %q, %v, want %q", in, got, err, want)
		}
	}
	if _, err := ParseFormat("yaml"); err == nil {
		t.Errorf("ParseFormat(\"yaml\") should have errored")
	}
}
