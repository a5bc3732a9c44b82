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
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/dustin/go-humanize"
	"go.uber.org/zap"
	"howett.net/plist"
)

// Document is a decoded property list: nested map[string]any and []any
// values holding strings, integers, reals, booleans, dates and []byte.
type Document = any

// Load reads the whole stream and decodes it as an XML or binary property
// list.
func Load(r io.Reader) (Document, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading library: %w", err)
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, &FormatError{Err: io.ErrUnexpectedEOF}
	}

	var doc any
	format, err := plist.Unmarshal(data, &doc)
	if err != nil {
		return nil, &FormatError{Err: err}
	}
	// The decoder falls back to OpenStep text, which Apple Music never writes.
	if format != plist.XMLFormat && format != plist.BinaryFormat {
		return nil, &FormatError{Err: fmt.Errorf("unsupported %s property list", plist.FormatNames[format])}
	}
	return doc, nil
}

// LoadFile opens the library at path and decodes it.
func LoadFile(path string, log *zap.Logger) (Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening library: %w", err)
	}
	defer f.Close()

	if info, err := f.Stat(); err == nil {
		log.Info("loading library",
			zap.String("path", path),
			zap.String("size", humanize.Bytes(uint64(info.Size()))))
	}

	return Load(f)
}
