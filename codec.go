// Copyright (c) 2025 hitoshi.mukai.b@gmail.com. All rights reserved.
// You are free to use this source code for any purpose. The copyright remains with the author.
// The author accepts no liability for any damages arising from the use of this source code.
//
// Last modified: 2026.10.16
//

package rnxhdr

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
	"unicode"
)

// Sub-field of the data zone
type subField struct {
	name  string
	width int
	num   bool // F14.4 number, right-justified
	blank bool // Reserved columns, must hold spaces only
}

// Decoded or to-be-encoded value of a non-blank sub-field
type fieldVal struct {
	Str string
	Num float64
}

// Fixed-width rule for one header label, shared by parse and write
type fieldCodec struct {
	layout []subField
	decode func(v []fieldVal) Update
	encode func(h *Header) ([]fieldVal, error)
}

// Fixed-point number as written by F14.4
var reFixed = regexp.MustCompile(`^[-+]?\d*\.\d+$`)

var codecs = map[LabelType]*fieldCodec{
	LabelRecTypeVers: {
		layout: []subField{
			{name: "receiver_sn", width: 20},
			{name: "receiver_type", width: 20},
			{name: "receiver_version", width: 20},
		},
		decode: func(v []fieldVal) Update {
			return func(h *Header) {
				h.ReceiverSN = v[0].Str
				h.ReceiverType = v[1].Str
				h.ReceiverVersion = v[2].Str
			}
		},
		encode: func(h *Header) ([]fieldVal, error) {
			return []fieldVal{{Str: h.ReceiverSN}, {Str: h.ReceiverType}, {Str: h.ReceiverVersion}}, nil
		},
	},
	LabelAntType: {
		layout: []subField{
			{name: "antenna_sn", width: 20},
			{name: "antenna_type", width: AntWidth},
			{name: "reserved", width: 20, blank: true},
		},
		decode: func(v []fieldVal) Update {
			return func(h *Header) {
				h.AntennaSN = v[0].Str
				h.AntennaType = v[1].Str
			}
		},
		encode: func(h *Header) ([]fieldVal, error) {
			ant, err := AntennaCode(h.AntennaType)
			if err != nil {
				return nil, err
			}
			return []fieldVal{{Str: h.AntennaSN}, {Str: ant}}, nil
		},
	},
	LabelApproxPos: {
		layout: []subField{
			{name: "position_x", width: 14, num: true},
			{name: "position_y", width: 14, num: true},
			{name: "position_z", width: 14, num: true},
			{name: "reserved", width: 18, blank: true},
		},
		decode: func(v []fieldVal) Update {
			return func(h *Header) {
				h.PositionX = v[0].Num
				h.PositionY = v[1].Num
				h.PositionZ = v[2].Num
			}
		},
		encode: func(h *Header) ([]fieldVal, error) {
			return []fieldVal{{Num: h.PositionX}, {Num: h.PositionY}, {Num: h.PositionZ}}, nil
		},
	},
	LabelMarkerName: {
		layout: []subField{{name: "marker_name", width: DataWidth}},
		decode: func(v []fieldVal) Update {
			return func(h *Header) { h.MarkerName = v[0].Str }
		},
		encode: func(h *Header) ([]fieldVal, error) {
			return []fieldVal{{Str: h.MarkerName}}, nil
		},
	},
	LabelMarkerType: {
		layout: []subField{{name: "marker_type", width: DataWidth}},
		decode: func(v []fieldVal) Update {
			return func(h *Header) { h.MarkerType = v[0].Str }
		},
		encode: func(h *Header) ([]fieldVal, error) {
			return []fieldVal{{Str: h.MarkerType}}, nil
		},
	},
}

// Cut the data zone of a line into sub-field values
func (c *fieldCodec) unpack(label LabelType, line string) ([]fieldVal, error) {
	data := line[:DataWidth]
	vals := make([]fieldVal, 0, len(c.layout))
	j := 0
	for _, f := range c.layout {
		s := data[j : j+f.width]
		j += f.width
		switch {
		case f.blank:
			if strings.TrimLeft(s, " ") != "" {
				return nil, &FormatError{Line: line, Label: label, Field: f.name, Width: f.width, Err: ErrNotBlank}
			}
		case f.num:
			t := strings.TrimSpace(s)
			if !reFixed.MatchString(t) {
				return nil, &FormatError{Line: line, Label: label, Field: f.name, Width: f.width, Err: ErrInvalidNumber}
			}
			v, err := strconv.ParseFloat(t, 64)
			if err != nil {
				return nil, &FormatError{Line: line, Label: label, Field: f.name, Width: f.width, Err: fmt.Errorf("%w: %s", ErrInvalidNumber, err.Error())}
			}
			vals = append(vals, fieldVal{Num: v})
		default:
			vals = append(vals, fieldVal{Str: strings.TrimRightFunc(s, unicode.IsSpace)})
		}
	}
	return vals, nil
}

// Build a complete header line from sub-field values
func (c *fieldCodec) pack(label LabelType, vals []fieldVal) (string, error) {
	var sb strings.Builder
	sb.Grow(LineWidth + 1)
	i := 0
	for _, f := range c.layout {
		if f.blank {
			sb.WriteString(strings.Repeat(" ", f.width))
			continue
		}
		v := vals[i]
		i++
		var s string
		if f.num {
			if math.IsNaN(v.Num) || math.IsInf(v.Num, 0) {
				return "", &FormatError{Line: fmt.Sprint(v.Num), Label: label, Field: f.name, Width: f.width, Err: ErrInvalidNumber}
			}
			s = fmt.Sprintf("%*.4f", f.width, v.Num)
		} else {
			if !isPrintable(v.Str) {
				return "", &FormatError{Line: v.Str, Label: label, Field: f.name, Width: f.width, Err: ErrInvalidText}
			}
			s = fmt.Sprintf("%-*s", f.width, v.Str)
		}
		if len(s) > f.width {
			return "", &FormatError{Line: s, Label: label, Field: f.name, Width: f.width, Err: ErrFieldOverflow}
		}
		sb.WriteString(s)
	}
	sb.WriteString(label.String())
	sb.WriteString("\n")
	return sb.String(), nil
}

// Text fields hold printable ASCII only
func isPrintable(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < 0x20 || s[i] > 0x7e {
			return false
		}
	}
	return true
}
