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
	"strconv"
	"strings"

	"gonum.org/v1/gonum/mat"
)

//-------------------------------------------------------------------
// PosLLH
//-------------------------------------------------------------------

// Geodetic position. Lat and Lon in radians, Hei in meters above the ellipsoid
type PosLLH struct {
	Lat float64
	Lon float64
	Hei float64
}

func (llh *PosLLH) ToXYZ() PosXYZ {
	// Ellipsoid parameters
	f := Fe                     // Flattening
	a := Re                     // Semi-major axis
	e := math.Sqrt(f * (2 - f)) // Eccentricity

	// Conversion to Cartesian coordinates
	n := a / math.Sqrt(1-e*e*math.Sin(llh.Lat)*math.Sin(llh.Lat))
	return PosXYZ{
		X: (n + llh.Hei) * math.Cos(llh.Lat) * math.Cos(llh.Lon),
		Y: (n + llh.Hei) * math.Cos(llh.Lat) * math.Sin(llh.Lon),
		Z: (n*(1-e*e) + llh.Hei) * math.Sin(llh.Lat),
	}
}

// Read from string "lat lon hei" (degrees, degrees, meters)
func (llh *PosLLH) Set(s string) error {
	f := strings.Fields(s)
	if len(f) != 3 {
		return fmt.Errorf("geodetic position needs 3 values, got %d (%q)", len(f), s)
	}
	var v [3]float64
	for i := range f {
		var err error
		v[i], err = strconv.ParseFloat(f[i], 64)
		if err != nil {
			return err
		}
	}
	llh.Lat, llh.Lon, llh.Hei = ToRad(v[0]), ToRad(v[1]), v[2]
	return nil
}

// Convert to string (degrees)
func (llh *PosLLH) String() string {
	return fmt.Sprintf("%.8f %.8f %.4f", ToDeg(llh.Lat), ToDeg(llh.Lon), llh.Hei)
}

//-------------------------------------------------------------------
// PosXYZ
//-------------------------------------------------------------------

// ECEF position [m]
type PosXYZ struct {
	X float64
	Y float64
	Z float64
}

func (pos *PosXYZ) ToLLH() PosLLH {
	// In case of origin
	if pos.X == 0 && pos.Y == 0 && pos.Z == 0 {
		return PosLLH{Lat: 0, Lon: 0, Hei: -Re}
	}

	// Ellipsoid parameters
	f := Fe                     // Flattening
	a := Re                     // Semi-major axis
	b := a * (1 - f)            // Semi-minor axis
	e := math.Sqrt(f * (2 - f)) // Eccentricity

	// Parameters for coordinate transformation
	h := a*a - b*b
	p := math.Sqrt(pos.X*pos.X + pos.Y*pos.Y)
	t := math.Atan2(pos.Z*a, p*b)
	sint := math.Sin(t)
	cost := math.Cos(t)

	// Conversion to latitude and longitude
	lat := math.Atan2(pos.Z+h/b*sint*sint*sint, p-h/a*cost*cost*cost)
	lon := math.Atan2(pos.Y, pos.X)
	n := a / math.Sqrt(1-e*e*math.Sin(lat)*math.Sin(lat)) // Radius of curvature in the prime vertical
	hei := p/math.Cos(lat) - n
	return PosLLH{Lat: lat, Lon: lon, Hei: hei}
}

func (pos *PosXYZ) ToENU(base PosXYZ) PosENU {
	// Relative position from the reference location
	d := mat.NewVecDense(3, []float64{pos.X - base.X, pos.Y - base.Y, pos.Z - base.Z})

	// Rotate the relative position to convert to ENU coordinates
	var enu mat.VecDense
	enu.MulVec(enuRotation(base), d)
	return PosENU{E: enu.AtVec(0), N: enu.AtVec(1), U: enu.AtVec(2)}
}

// Rotation matrix from ECEF to local ENU at the reference location
func enuRotation(base PosXYZ) *mat.Dense {
	llh := base.ToLLH()
	s1 := math.Sin(llh.Lon)
	c1 := math.Cos(llh.Lon)
	s2 := math.Sin(llh.Lat)
	c2 := math.Cos(llh.Lat)
	return mat.NewDense(3, 3, []float64{
		-s1, c1, 0,
		-c1 * s2, -s1 * s2, c2,
		c1 * c2, s1 * c2, s2,
	})
}

//-------------------------------------------------------------------
// PosENU
//-------------------------------------------------------------------

// Local East/North/Up offset [m]
type PosENU struct {
	E float64
	N float64
	U float64
}

func (enu *PosENU) ToXYZ(base PosXYZ) PosXYZ {
	// Rotate the ENU coordinates back to a relative position
	var d mat.VecDense
	d.MulVec(enuRotation(base).T(), mat.NewVecDense(3, []float64{enu.E, enu.N, enu.U}))
	if DBG_ >= 3 {
		PrintMat(&d)
	}

	// Add to the reference location
	return PosXYZ{
		X: base.X + d.AtVec(0),
		Y: base.Y + d.AtVec(1),
		Z: base.Z + d.AtVec(2),
	}
}

// Read from string "e n u"
func (enu *PosENU) Set(s string) error {
	f := strings.Fields(s)
	if len(f) != 3 {
		return fmt.Errorf("ENU offset needs 3 values, got %d (%q)", len(f), s)
	}
	var v [3]float64
	for i := range f {
		var err error
		v[i], err = strconv.ParseFloat(f[i], 64)
		if err != nil {
			return err
		}
	}
	enu.E, enu.N, enu.U = v[0], v[1], v[2]
	return nil
}

func (enu *PosENU) String() string {
	return fmt.Sprintf("%.4f %.4f %.4f", enu.E, enu.N, enu.U)
}
