// Copyright (c) 2025 hitoshi.mukai.b@gmail.com. All rights reserved.
// You are free to use this source code for any purpose. The copyright remains with the author.
// The author accepts no liability for any damages arising from the use of this source code.
//
// Last modified: 2026.10.16
//

package rnxhdr

import (
	"fmt"

	"github.com/spf13/viper"
)

// Contents of a header edits file, e.g.
//
//	marker_name: TSK2
//	antenna_type: TRM59800.00 SCIS
//	position_llh: [36.10568043, 140.08749737, 70.3]
//	shift_enu: [0, 0, 0.125]
type Edits struct {
	Header      `mapstructure:",squash"`
	PositionLLH []float64 `mapstructure:"position_llh"` // Marker position as lat, lon [deg] and height [m]
	ShiftENU    []float64 `mapstructure:"shift_enu"`    // Offset of the marker position [m]
}

// Read a header edits file. The format (yaml, json, toml) follows the file extension.
func LoadEdits(fn string) (*viper.Viper, error) {
	v := viper.New()
	v.SetConfigFile(fn)
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading edits file: %w", err)
	}
	return v, nil
}

// Overwrite the fields of h given in v. Fields absent from v are kept.
func ApplyEdits(v *viper.Viper, h *Header) error {
	e := Edits{Header: *h}
	if err := v.UnmarshalExact(&e); err != nil {
		return fmt.Errorf("invalid edits: %w", err)
	}
	switch len(e.PositionLLH) {
	case 0:
	case 3:
		e.Header.SetPositionLLH(PosLLH{Lat: ToRad(e.PositionLLH[0]), Lon: ToRad(e.PositionLLH[1]), Hei: e.PositionLLH[2]})
	default:
		return fmt.Errorf("invalid edits: position_llh needs 3 values, got %d", len(e.PositionLLH))
	}
	switch len(e.ShiftENU) {
	case 0:
	case 3:
		enu := PosENU{E: e.ShiftENU[0], N: e.ShiftENU[1], U: e.ShiftENU[2]}
		e.Header.ShiftPosition(enu)
	default:
		return fmt.Errorf("invalid edits: shift_enu needs 3 values, got %d", len(e.ShiftENU))
	}
	*h = e.Header
	return nil
}

// Move the approximate position by a local ENU offset
func (h *Header) ShiftPosition(enu PosENU) {
	p0 := h.Position()
	p1 := enu.ToXYZ(p0)
	h.SetPosition(p1)
	PrintD(1, "approx position shifted by %s (%.4f m)", enu.String(), EucDist(&p0, &p1))
}

// Set the approximate position from geodetic coordinates
func (h *Header) SetPositionLLH(llh PosLLH) {
	h.SetPosition(llh.ToXYZ())
	PrintD(1, "approx position set from %s", llh.String())
}
