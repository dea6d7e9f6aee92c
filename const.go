// Copyright (c) 2025 hitoshi.mukai.b@gmail.com. All rights reserved.
// You are free to use this source code for any purpose. The copyright remains with the author.
// The author accepts no liability for any damages arising from the use of this source code.
//
// Last modified: 2026.10.16
//

package rnxhdr

const (
	PI = 3.1415926535897932  // Pi
	Re = 6378137.0           // Earth's radius [m]
	Fe = 1.0 / 298.257223563 // Earth's flattening
)

// Header line layout (RINEX 3.04, section 5.1)
const (
	DataWidth  = 60 // Columns 1-60 hold the data zone
	LabelWidth = 20 // Columns 61-80 hold the header label
	LineWidth  = DataWidth + LabelWidth
	AntWidth   = 20 // Width of an IGS antenna code (maker/model + radome)
)
