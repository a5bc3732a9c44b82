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

// Package report renders computed stats reports as text.
package report

import (
	"bytes"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/ademuri/apple-music-stats/internal/library"
	"github.com/ademuri/apple-music-stats/internal/stats"
	"github.com/fatih/color"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Format selects how rankings are laid out.
type Format string

const (
	FormatList  Format = "list"
	FormatTable Format = "table"
)

// ParseFormat validates a format name.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(s)); f {
	case FormatList, FormatTable:
		return f, nil
	case "":
		return FormatList, nil
	default:
		return "", fmt.Errorf("unknown format %q, want %q or %q", s, FormatList, FormatTable)
	}
}

// Options configures a Renderer.
type Options struct {
	// Styled adds terminal colors. Removing the escape sequences from styled
	// output gives the plain output.
	Styled bool
	Format Format
}

// Renderer writes stats reports to an output stream.
type Renderer struct {
	out    io.Writer
	format Format

	title  func(a ...any) string
	name   func(a ...any) string
	artist func(a ...any) string
	album  func(a ...any) string
	genre  func(a ...any) string
	count  func(a ...any) string
}

// New returns a Renderer writing to out.
func New(out io.Writer, opts Options) *Renderer {
	style := func(attrs ...color.Attribute) func(a ...any) string {
		if !opts.Styled {
			return fmt.Sprint
		}
		c := color.New(attrs...)
		c.EnableColor()
		return c.SprintFunc()
	}

	format := opts.Format
	if format == "" {
		format = FormatList
	}

	return &Renderer{
		out:    out,
		format: format,
		title:  style(color.Bold),
		name:   style(color.FgBlue, color.Italic),
		artist: style(color.Bold, color.FgGreen),
		album:  style(color.Bold, color.FgCyan),
		genre:  style(color.Bold, color.FgYellow),
		count:  style(color.Bold, color.FgRed),
	}
}

// Title converts a snake_case report name to capitalized words.
func Title(name string) string {
	return cases.Title(language.Und).String(strings.ReplaceAll(name, "_", " "))
}

// Render writes each report as its title, its body and a blank line.
func (r *Renderer) Render(reports []stats.Report) error {
	for _, rep := range reports {
		out := new(bytes.Buffer)
		fmt.Fprintln(out, r.title(Title(rep.Name)+":"))
		if err := r.body(out, rep.Result); err != nil {
			return fmt.Errorf("rendering %s: %w", rep.Name, err)
		}
		fmt.Fprintln(out)

		if _, err := r.out.Write(out.Bytes()); err != nil {
			return fmt.Errorf("writing %s: %w", rep.Name, err)
		}
	}
	return nil
}

func (r *Renderer) body(out *bytes.Buffer, result stats.Result) error {
	switch res := result.(type) {
	case stats.TrackRanking:
		if r.format == FormatTable {
			return trackTable(out, res)
		}
		r.trackList(out, res)
	case stats.GroupRanking:
		if r.format == FormatTable {
			return groupTable(out, res)
		}
		r.groupList(out, res)
	case stats.TotalDuration:
		fmt.Fprintf(out, "%s: %s\n", res.Label, r.count(FormatDuration(res.Value)))
	case stats.TotalCount:
		fmt.Fprintf(out, "%s: %s\n", res.Label, r.count(strconv.FormatInt(res.Value, 10)))
	default:
		return fmt.Errorf("unsupported result %T", result)
	}
	return nil
}

func (r *Renderer) trackList(out *bytes.Buffer, res stats.TrackRanking) {
	for _, e := range res.Entries {
		line := fmt.Sprintf("%s by %s", r.name(e.Name), r.artist(e.Artist))
		if res.WithAlbum {
			line += " from " + r.album(e.Album)
		}
		fmt.Fprintf(out, "%s - %s %s\n", line, r.count(strconv.FormatInt(e.Count, 10)), res.Unit)
	}
}

func (r *Renderer) groupList(out *bytes.Buffer, res stats.GroupRanking) {
	key := r.artist
	switch res.Field {
	case library.FieldAlbum:
		key = r.album
	case library.FieldGenre:
		key = r.genre
	}
	for _, e := range res.Entries {
		fmt.Fprintf(out, "%s - %s %s\n", key(e.Key), r.count(strconv.FormatInt(e.Count, 10)), res.Unit)
	}
}

// FormatDuration formats d as days followed by hh:mm:ss, dropping
// fractions of a second.
func FormatDuration(d time.Duration) string {
	seconds := int64(d / time.Second)
	days := seconds / 86400
	seconds -= days * 86400
	hours := seconds / 3600
	seconds -= hours * 3600
	minutes := seconds / 60
	seconds -= minutes * 60
	return fmt.Sprintf("%d days %02d:%02d:%02d", days, hours, minutes, seconds)
}
