// Copyright (c) 2025 hitoshi.mukai.b@gmail.com. All rights reserved.
// You are free to use this source code for any purpose. The copyright remains with the author.
// The author accepts no liability for any damages arising from the use of this source code.
//
// Last modified: 2026.10.16
//

package rnxhdr

// Type representing a HEADER LABEL of an observation data file
type LabelType int

const (
	LabelUnknown LabelType = iota
	LabelMarkerName
	LabelMarkerType
	LabelRecTypeVers
	LabelAntType
	LabelApproxPos
	LabelPrnNumObs
	LabelNumSatellites
	LabelEndOfHeader
)

// Label text written in columns 61-80
var labelText = [...]string{
	LabelUnknown:       "",
	LabelMarkerName:    "MARKER NAME",
	LabelMarkerType:    "MARKER TYPE",
	LabelRecTypeVers:   "REC # / TYPE / VERS",
	LabelAntType:       "ANT # / TYPE",
	LabelApproxPos:     "APPROX POSITION XYZ",
	LabelPrnNumObs:     "PRN / # OF OBS",
	LabelNumSatellites: "# OF SATELLITES",
	LabelEndOfHeader:   "END OF HEADER",
}

// Label zone of a line as it appears after line terminator normalization
var labelZones = func() map[string]LabelType {
	m := make(map[string]LabelType, len(labelText))
	for i, s := range labelText {
		if s != "" {
			m[s+"\n"] = LabelType(i)
		}
	}
	return m
}()

func (p LabelType) String() string {
	if p < 0 || int(p) >= len(labelText) {
		return ""
	}
	return labelText[p]
}

// Lines carrying these labels are stripped on write-back (their counts go stale)
func (p LabelType) Blanked() bool {
	return p == LabelPrnNumObs || p == LabelNumSatellites
}

// Extract HEADER LABEL from a header line.
// The label zone (column 61 up to and including the newline) must match exactly.
func GetHeaderLabel(l string) LabelType {
	if len(l) <= DataWidth {
		return LabelUnknown
	}
	if t, ok := labelZones[l[DataWidth:]]; ok {
		return t
	}
	return LabelUnknown
}
