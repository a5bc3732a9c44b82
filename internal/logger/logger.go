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

// Package logger builds the zap logger used for diagnostics.
package logger

import (
	"fmt"
	"io"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

type Config struct {
	// Level is one of debug, info, warn or error.
	Level string
	// File, if set, also receives JSON logs rotated by size.
	File       string
	MaxSizeMB  int
	MaxBackups int
}

// New builds a logger writing human-readable entries to console and, if
// cfg.File is set, JSON entries to a rotated file.
func New(cfg Config, console io.Writer) (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return nil, fmt.Errorf("parsing log level: %w", err)
	}

	encoderConfig := zap.NewDevelopmentEncoderConfig()
	encoderConfig.EncodeTime = zapcore.RFC3339TimeEncoder

	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(encoderConfig),
		zapcore.AddSync(console),
		level,
	)

	if cfg.File != "" {
		maxSize := cfg.MaxSizeMB
		if maxSize == 0 {
			maxSize = 10
		}
		fileCore := zapcore.NewCore(
			zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig()),
			zapcore.AddSync(&lumberjack.Logger{
				Filename:   cfg.File,
				MaxSize:    maxSize,
				MaxBackups: cfg.MaxBackups,
			}),
			level,
		)
		core = zapcore.NewTee(core, fileCore)
	}

	return zap.New(core), nil
}
