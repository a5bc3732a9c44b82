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

import "fmt"

// FormatError reports that the input is not a well-formed property list.
type FormatError struct {
	Err error
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("not a valid property list: %v", e.Err)
}

func (e *FormatError) Unwrap() error {
	return e.Err
}

// SchemaError reports a missing or mis-shaped field in the library document
// or in the track table.
type SchemaError struct {
	Field  string
	Reason string
}

func (e *SchemaError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("invalid library: %s", e.Reason)
	}
	return fmt.Sprintf("invalid library: field %q %s", e.Field, e.Reason)
}
