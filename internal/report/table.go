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
	"io"
	"strconv"

	"github.com/ademuri/apple-music-stats/internal/stats"
	"github.com/olekukonko/tablewriter"
)

func trackTable(out io.Writer, res stats.TrackRanking) error {
	if len(res.Entries) == 0 {
		return nil
	}

	rows := make([][]string, 0, len(res.Entries))
	for _, e := range res.Entries {
		row := []string{e.Name, e.Artist}
		if res.WithAlbum {
			row = append(row, e.Album)
		}
		rows = append(rows, append(row, strconv.FormatInt(e.Count, 10)))
	}

	if res.WithAlbum {
		return renderTable(out, []any{"Name", "Artist", "Album", unitHeader(res.Unit)}, rows)
	}
	return renderTable(out, []any{"Name", "Artist", unitHeader(res.Unit)}, rows)
}

func groupTable(out io.Writer, res stats.GroupRanking) error {
	if len(res.Entries) == 0 {
		return nil
	}

	rows := make([][]string, 0, len(res.Entries))
	for _, e := range res.Entries {
		rows = append(rows, []string{e.Key, strconv.FormatInt(e.Count, 10)})
	}
	return renderTable(out, []any{res.Field, unitHeader(res.Unit)}, rows)
}

func renderTable(out io.Writer, header []any, rows [][]string) error {
	table := tablewriter.NewWriter(out)
	table.Header(header...)
	for _, row := range rows {
		if err := table.Append(row); err != nil {
			return err
		}
	}
	return table.Render()
}

func unitHeader(unit string) string {
	if unit == "" {
		return "Count"
	}
	return Title(unit)
}
