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

// Rewrite header lines in place from h.
// Modeled labels are regenerated, PRN / # OF OBS and # OF SATELLITES lines become
// empty strings, and all other lines are left as they are.
// On error the lines are not modified.
func ModifyHeader(header []string, h *Header) error {
	out := make([]string, len(header))
	for i, line := range header {
		l, err := encodeLine(line, h)
		if err != nil {
			var fe *FormatError
			if errors.As(err, &fe) {
				fe.LineNum = i + 1
			}
			return fmt.Errorf("modify header: %w", err)
		}
		out[i] = l
	}
	copy(header, out)
	return nil
}

// Regenerate one header line
func encodeLine(line string, h *Header) (string, error) {
	label := GetHeaderLabel(line)
	if label.Blanked() {
		return "", nil
	}
	c, ok := codecs[label]
	if !ok {
		return line, nil
	}
	v, err := c.encode(h)
	if err != nil {
		return "", err
	}
	return c.pack(label, v)
}
