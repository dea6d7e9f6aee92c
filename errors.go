// Copyright (c) 2025 hitoshi.mukai.b@gmail.com. All rights reserved.
// You are free to use this source code for any purpose. The copyright remains with the author.
// The author accepts no liability for any damages arising from the use of this source code.
//
// Last modified: 2026.10.16
//

package rnxhdr

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidNumber   = errors.New("not a fixed-point number")
	ErrNotBlank        = errors.New("reserved columns are not blank")
	ErrInvalidText     = errors.New("text contains non-printable or non-ASCII characters")
	ErrFieldOverflow   = errors.New("value overflows field width")
	ErrAntennaOverflow = errors.New("antenna maker and model do not fit in 20 columns")
	ErrNoCodeTable     = errors.New("no code table found")
)

// FormatError reports a header line that violates the fixed-width layout of its label.
type FormatError struct {
	LineNum int       // 1-based line number in the header, 0 if unknown
	Line    string    // Offending line (or value, when encoding)
	Label   LabelType // Label of the line
	Field   string    // Sub-field name
	Width   int       // Declared width of the sub-field
	Err     error
}

func (e *FormatError) Error() string {
	s := fmt.Sprintf("%s: field %s (width %d): %s", e.Label, e.Field, e.Width, e.Err.Error())
	if e.LineNum > 0 {
		s = fmt.Sprintf("line %d: %s", e.LineNum, s)
	}
	return fmt.Sprintf("%s: %q", s, e.Line)
}

func (e *FormatError) Unwrap() error {
	return e.Err
}
