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
	"os"

	"github.com/rs/zerolog"
	"gonum.org/v1/gonum/mat"
)

// ------------------------------------
// Mini functions
// ------------------------------------

func SQ(x float64) float64 {
	return x * x
}

func EucDist(a, b *PosXYZ) float64 {
	return math.Sqrt(SQ(a.X-b.X) + SQ(a.Y-b.Y) + SQ(a.Z-b.Z))
}

func ToDeg(rad float64) float64 {
	return rad / PI * 180.0
}

func ToRad(deg float64) float64 {
	return deg / 180.0 * PI
}

// ------------------------------------
// Debug print function
// ------------------------------------

// Logger for diagnostics. Writes to stderr so that stdout can carry RINEX output.
var Log = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: "15:04:05"}).With().Timestamp().Logger()

// Debug display level
var DBG_ int

func PrintMat(X mat.Matrix) {
	r, c := X.Dims()
	fa := mat.Formatted(X, mat.Prefix(""), mat.Squeeze())
	Log.Debug().Msgf("(%d x %d)\n%v", r, c, fa)
}

// Print to stderr without decoration
func PrintA(format string, a ...any) {
	fmt.Fprintf(os.Stderr, format, a...)
}

// Debug display
func PrintD(v int, format string, a ...any) {
	if DBG_ >= v {
		Log.Debug().Int("lv", v).Msgf(format, a...)
	}
}

func PrintW(format string, a ...any) {
	Log.Warn().Msgf(format, a...)
}

func PrintE(err error) {
	Log.Error().Err(err).Send()
}
