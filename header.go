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

// RINEX 3.04 specification
// https://files.igs.org/pub/data/format/rinex304.pdf
//

// Header fields of an observation data file that can be read and rewritten.
// Labels not modeled here pass through untouched.
type Header struct {
	MarkerName      string  `yaml:"marker_name" mapstructure:"marker_name"`
	MarkerType      string  `yaml:"marker_type" mapstructure:"marker_type"`
	ReceiverSN      string  `yaml:"receiver_sn" mapstructure:"receiver_sn"`
	ReceiverType    string  `yaml:"receiver_type" mapstructure:"receiver_type"`
	ReceiverVersion string  `yaml:"receiver_version" mapstructure:"receiver_version"`
	AntennaSN       string  `yaml:"antenna_sn" mapstructure:"antenna_sn"`
	AntennaType     string  `yaml:"antenna_type" mapstructure:"antenna_type"`
	PositionX       float64 `yaml:"position_x" mapstructure:"position_x"` // ECEF X [m]
	PositionY       float64 `yaml:"position_y" mapstructure:"position_y"` // ECEF Y [m]
	PositionZ       float64 `yaml:"position_z" mapstructure:"position_z"` // ECEF Z [m]
}

// Update applies the fields decoded from one header line
type Update func(h *Header)

// Approximate marker position
func (h *Header) Position() PosXYZ {
	return PosXYZ{X: h.PositionX, Y: h.PositionY, Z: h.PositionZ}
}

func (h *Header) SetPosition(p PosXYZ) {
	h.PositionX = p.X
	h.PositionY = p.Y
	h.PositionZ = p.Z
}

// Decode one header line.
// Returns a nil Update if the label is not one of the modeled fields.
func ParseLine(line string) (Update, error) {
	label := GetHeaderLabel(line)
	c, ok := codecs[label]
	if !ok {
		return nil, nil
	}
	v, err := c.unpack(label, line)
	if err != nil {
		return nil, err
	}
	return c.decode(v), nil
}

// Read the modeled fields from header lines.
// Lines are expected to be normalized by SplitRinex.
func ParseHeader(lines []string) (*Header, error) {
	h := &Header{}
	for i, line := range lines {
		u, err := ParseLine(line)
		if err != nil {
			var fe *FormatError
			if errors.As(err, &fe) {
				fe.LineNum = i + 1
			}
			return nil, fmt.Errorf("parse header: %w", err)
		}
		if u != nil {
			u(h)
			PrintD(3, "header line %d: %s", i+1, GetHeaderLabel(line))
		}
	}
	return h, nil
}
