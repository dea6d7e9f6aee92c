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

// Header line with the data zone padded to 60 columns
func hdrLine(data, label string) string {
	return fmt.Sprintf("%-60s%s\n", data, label)
}

// Header of a typical observation file, already normalized
func sampleHeader() []string {
	return []string{
		hdrLine("     3.04           OBSERVATION DATA    M", "RINEX VERSION / TYPE"),
		hdrLine("sbf2rin-13.4.5      TSK                 20240101 000000 UTC", "PGM / RUN BY / DATE"),
		hdrLine("TSK2", "MARKER NAME"),
		hdrLine("21729M001", "MARKER NUMBER"),
		hdrLine("GEODETIC", "MARKER TYPE"),
		hdrLine("OPERATOR            GSI", "OBSERVER / AGENCY"),
		hdrLine("4532A1234           TRIMBLE NETR9       5.45", "REC # / TYPE / VERS"),
		hdrLine("1441012345          TRM59800.00     SCIS", "ANT # / TYPE"),
		hdrLine(" -3957199.2850  3310199.6440  3737711.7430", "APPROX POSITION XYZ"),
		hdrLine("        0.0000        0.0000        0.0000", "ANTENNA: DELTA H/E/N"),
		hdrLine("G    4 C1C L1C D1C S1C", "SYS / # / OBS TYPES"),
		hdrLine("    30.000", "INTERVAL"),
		hdrLine("", "END OF HEADER"),
	}
}

// Body lines (opaque to the header engine)
func sampleBody() []string {
	return []string{
		"> 2024 01 01 00 00  0.0000000  0  1\n",
		"G01  21219307.844   111505446.06706     -1567.146          48.250\n",
	}
}

// Raw file lines as a reader would return them, with mixed terminators and trailing blanks
func sampleFile() []string {
	lines := []string{}
	for i, l := range append(sampleHeader(), sampleBody()...) {
		l = strings.TrimSuffix(l, "\n")
		switch i % 3 {
		case 0:
			l += "\r\n"
		case 1:
			l += "   "
		}
		lines = append(lines, l)
	}
	return lines
}
