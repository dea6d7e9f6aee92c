// Copyright (c) 2025 hitoshi.mukai.b@gmail.com. All rights reserved.
// You are free to use this source code for any purpose. The copyright remains with the author.
// The author accepts no liability for any damages arising from the use of this source code.
//
// Last modified: 2026.10.16
//

package rnxhdr

import (
	"fmt"
	"strings"
)

// Align an antenna type to the 20-column IGS code layout.
// The first token is left-justified and the second (radome) token ends at column 20,
// e.g. "TRM41249.00 NONE" -> "TRM41249.00     NONE". Tokens after the second are dropped.
func AntennaCode(antenna string) (string, error) {
	la := strings.Fields(antenna)
	switch len(la) {
	case 0:
		return strings.Repeat(" ", AntWidth), nil
	case 1:
		if len(la[0]) > AntWidth {
			return "", &FormatError{Line: antenna, Label: LabelAntType, Field: "antenna_type", Width: AntWidth, Err: ErrFieldOverflow}
		}
		return fmt.Sprintf("%-*s", AntWidth, la[0]), nil
	}
	if len(la) > 2 {
		PrintD(1, "antenna type %q: dropping tokens %q", antenna, la[2:])
	}
	n := AntWidth - len(la[0]) - len(la[1])
	if n < 1 {
		return "", &FormatError{Line: antenna, Label: LabelAntType, Field: "antenna_type", Width: AntWidth, Err: ErrAntennaOverflow}
	}
	return la[0] + strings.Repeat(" ", n) + la[1], nil
}
