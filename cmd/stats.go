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
package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/ademuri/apple-music-stats/internal/library"
	"github.com/ademuri/apple-music-stats/internal/logger"
	"github.com/ademuri/apple-music-stats/internal/report"
	"github.com/ademuri/apple-music-stats/internal/stats"
	"github.com/fatih/color"
	"go.uber.org/zap"
)

func printStats(out io.Writer, config Config) error {
	format, err := report.ParseFormat(config.Format)
	if err != nil {
		return err
	}

	log, err := logger.New(logger.Config{Level: config.LogLevel, File: config.LogFile}, os.Stderr)
	if err != nil {
		return fmt.Errorf("configuring logger: %w", err)
	}
	defer log.Sync()

	doc, err := library.LoadFile(config.LibraryPath, log)
	if err != nil {
		return fmt.Errorf("loading %s: %w", config.LibraryPath, err)
	}

	table, err := library.Preprocess(doc)
	if err != nil {
		return fmt.Errorf("preprocessing %s: %w", config.LibraryPath, err)
	}
	log.Info("preprocessed library",
		zap.Int("tracks", table.Len()),
		zap.Strings("fields", table.Fields()))

	reports, err := stats.Compute(table)
	if err != nil {
		return fmt.Errorf("computing stats: %w", err)
	}

	renderer := report.New(out, report.Options{
		Styled: !config.Plain && !color.NoColor,
		Format: format,
	})
	return renderer.Render(reports)
}
