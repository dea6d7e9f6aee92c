// Copyright (c) 2025 hitoshi.mukai.b@gmail.com. All rights reserved.
// You are free to use this source code for any purpose. The copyright remains with the author.
// The author accepts no liability for any damages arising from the use of this source code.
//
// Last modified: 2026.10.16
//

package rnxhdr

import (
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/slices"
)

func TestModifyHeader_RoundTrip(t *testing.T) {
	header, _ := SplitRinex(sampleFile())
	orig := slices.Clone(header)

	h, err := ParseHeader(header)
	require.NoError(t, err)
	require.NoError(t, ModifyHeader(header, h))
	assert.Equal(t, orig, header)
}

func TestModifyHeader_RoundTripDefaults(t *testing.T) {
	header := []string{
		hdrLine("", "MARKER NAME"),
		hdrLine("", "MARKER TYPE"),
		hdrLine("", "REC # / TYPE / VERS"),
		hdrLine("", "ANT # / TYPE"),
		hdrLine("        0.0000        0.0000        0.0000", "APPROX POSITION XYZ"),
		hdrLine("", "END OF HEADER"),
	}
	orig := slices.Clone(header)

	h, err := ParseHeader(header)
	require.NoError(t, err)
	assert.Equal(t, &Header{}, h)
	require.NoError(t, ModifyHeader(header, h))
	assert.Equal(t, orig, header)
}

func TestModifyHeader_Edited(t *testing.T) {
	header := sampleHeader()
	h, err := ParseHeader(header)
	require.NoError(t, err)

	h.MarkerName = "TSK3"
	h.ReceiverSN = "5903R40012"
	h.ReceiverType = "SEPT POLARX5"
	h.ReceiverVersion = "5.5.0"
	h.AntennaSN = "99"
	h.AntennaType = "LEIAR25.R4 LEIT"
	h.SetPosition(PosXYZ{X: 1234567.8901, Y: -987654.3210, Z: 0})
	require.NoError(t, ModifyHeader(header, h))

	want := sampleHeader()
	want[2] = "TSK3                                                        MARKER NAME\n"
	want[6] = "5903R40012          SEPT POLARX5        5.5.0               REC # / TYPE / VERS\n"
	want[7] = "99                  LEIAR25.R4      LEIT                    ANT # / TYPE\n"
	want[8] = "  1234567.8901  -987654.3210        0.0000                  APPROX POSITION XYZ\n"
	assert.Equal(t, want, header)

	// The rewritten header reads back as the edited record
	h2, err := ParseHeader(header)
	require.NoError(t, err)
	h.AntennaType = "LEIAR25.R4      LEIT"
	assert.Equal(t, h, h2)
}

func TestModifyHeader_Position(t *testing.T) {
	header := []string{hdrLine("", "APPROX POSITION XYZ")}
	h := &Header{PositionX: 1234567.8901, PositionY: -987654.3210, PositionZ: 0.0}
	require.NoError(t, ModifyHeader(header, h))

	line := header[0]
	require.Len(t, line, 80)
	assert.Equal(t, "  1234567.8901  -987654.3210        0.0000", line[:42])
	assert.Equal(t, "                  ", line[42:60])
	assert.Equal(t, "APPROX POSITION XYZ\n", line[60:])
}

func TestModifyHeader_Blanked(t *testing.T) {
	header := sampleHeader()
	header = slices.Insert(header, 12,
		hdrLine("    12", "# OF SATELLITES"),
		hdrLine("   G01  1234  1234  1234  1234", "PRN / # OF OBS"),
		hdrLine("   G02  1180  1180  1180  1180", "PRN / # OF OBS"),
	)
	n := len(header)

	h, err := ParseHeader(header)
	require.NoError(t, err)
	require.NoError(t, ModifyHeader(header, h))

	require.Len(t, header, n)
	assert.Equal(t, []string{"", "", ""}, header[12:15])
	assert.Equal(t, sampleHeader()[:12], header[:12])
	assert.Equal(t, hdrLine("", "END OF HEADER"), header[15])
}

func TestModifyHeader_Untouched(t *testing.T) {
	// Lines not matching a label exactly are left alone, even when they look like one
	header := []string{
		hdrLine("TSK2", "MARKER NUMBER"),
		hdrLine("  keep   spacing  ", "COMMENT"),
		hdrLine("", "MARKER NAME         "),
		"short\n",
	}
	orig := slices.Clone(header)
	require.NoError(t, ModifyHeader(header, &Header{MarkerName: "XXXX"}))
	assert.Equal(t, orig, header)
}

func TestModifyHeader_ErrorLeavesHeader(t *testing.T) {
	header := sampleHeader()
	orig := slices.Clone(header)

	tests := []struct {
		name string
		h    *Header
		line int
		err  error
	}{
		{"antenna overflow", &Header{AntennaType: "ABCDEFGHIJKLMNOPQR XXXX"}, 8, ErrAntennaOverflow},
		{"marker name overflow", &Header{MarkerName: "0123456789012345678901234567890123456789012345678901234567890"}, 3, ErrFieldOverflow},
		{"receiver overflow", &Header{ReceiverType: "TRIMBLE NETR9 WITH A LONG NAME"}, 7, ErrFieldOverflow},
		{"position overflow", &Header{PositionX: 1e12}, 9, ErrFieldOverflow},
		{"position nan", &Header{PositionX: math.NaN()}, 9, ErrInvalidNumber},
		{"position +inf", &Header{PositionY: math.Inf(1)}, 9, ErrInvalidNumber},
		{"position -inf", &Header{PositionZ: math.Inf(-1)}, 9, ErrInvalidNumber},
		{"newline in marker name", &Header{MarkerName: "A\nB"}, 3, ErrInvalidText},
		{"tab in receiver type", &Header{ReceiverType: "TRIMBLE\tNETR9"}, 7, ErrInvalidText},
		{"carriage return in antenna serial", &Header{AntennaSN: "1441\r012345"}, 8, ErrInvalidText},
		{"non-ascii marker type", &Header{MarkerType: "GEODÄTIC"}, 5, ErrInvalidText},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ModifyHeader(header, tt.h)
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.err)
			var fe *FormatError
			require.ErrorAs(t, err, &fe)
			assert.Equal(t, tt.line, fe.LineNum)
			assert.Equal(t, orig, header)
		})
	}
}

func TestModifyHeader_WrittenLinesParse(t *testing.T) {
	// Every regenerated line must be readable again and keep the label in columns 61-80
	header := sampleHeader()
	h := &Header{
		MarkerName:  "~ printable ASCII !",
		AntennaType: "TRM59800.00\tSCIS",
		PositionX:   -0.00001,
	}
	require.NoError(t, ModifyHeader(header, h))
	for _, line := range header {
		assert.Equal(t, 1, strings.Count(line, "\n"), line)
		_, err := ParseLine(line)
		assert.NoError(t, err, line)
	}
	h2, err := ParseHeader(header)
	require.NoError(t, err)
	assert.Equal(t, "~ printable ASCII !", h2.MarkerName)
	assert.Equal(t, "TRM59800.00     SCIS", h2.AntennaType)
}
