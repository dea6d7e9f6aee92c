// Copyright (c) 2025 hitoshi.mukai.b@gmail.com. All rights reserved.
// You are free to use this source code for any purpose. The copyright remains with the author.
// The author accepts no liability for any damages arising from the use of this source code.
//
// Last modified: 2026.10.16
//

package rnxhdr

import (
	"strings"
	"unicode"
)

// Split the lines of an observation data file into header and body.
// Each line is stripped of trailing whitespace and terminated with exactly one newline.
// If END OF HEADER never appears, all lines are returned as header.
func SplitRinex(lines []string) (header, body []string) {

	// Flag indicating header reading is complete
	headerDone := false

	header = make([]string, 0, len(lines))
	for _, line := range lines {
		line = strings.TrimRightFunc(line, unicode.IsSpace) + "\n"
		if !headerDone {
			header = append(header, line)
			if GetHeaderLabel(line) == LabelEndOfHeader {
				headerDone = true
			}
		} else {
			body = append(body, line)
		}
	}
	if !headerDone {
		PrintD(1, "END OF HEADER not found, %d lines taken as header", len(header))
	}
	return header, body
}
