package models

import "math"

// WindDirection is a 16-point compass direction derived from meteorological
// degrees (the direction the wind blows from, 0 = north, clockwise).
type WindDirection int

const (
	North WindDirection = iota
	NorthNortheast
	Northeast
	EastNortheast
	East
	EastSoutheast
	Southeast
	SouthSoutheast
	South
	SouthSouthwest
	Southwest
	WestSouthwest
	West
	WestNorthwest
	Northwest
	NorthNorthwest
)

const compassPoints = 16

// sectorWidth is the angular size of one compass sector in degrees.
const sectorWidth = 360.0 / compassPoints

var windAbbreviations = [compassPoints]string{
	"N", "NNE", "NE", "ENE", "E", "ESE", "SE", "SSE",
	"S", "SSW", "SW", "WSW", "W", "WNW", "NW", "NNW",
}

var windLabels = [compassPoints]string{
	"north", "north-northeast", "northeast", "east-northeast",
	"east", "east-southeast", "southeast", "south-southeast",
	"south", "south-southwest", "southwest", "west-southwest",
	"west", "west-northwest", "northwest", "north-northwest",
}

// windArrows point where the wind blows to, one glyph per 8-point sector.
var windArrows = [8]string{"↓", "↙", "←", "↖", "↑", "↗", "→", "↘"}

// WindDirectionFromDegrees maps meteorological degrees onto the nearest
// compass sector. Degrees outside [0, 360) are normalized first, so negative
// and overflowing inputs are accepted.
func WindDirectionFromDegrees(degrees float64) WindDirection {
	deg := math.Mod(degrees, 360)
	if deg < 0 {
		deg += 360
	}
	return WindDirection(int(math.Round(deg/sectorWidth)) % compassPoints)
}

// String returns the compass abbreviation, e.g. "NNE".
func (d WindDirection) String() string {
	if d < 0 || int(d) >= compassPoints {
		return "?"
	}
	return windAbbreviations[d]
}

// Label returns the spelled-out direction, e.g. "north-northeast".
func (d WindDirection) Label() string {
	if d < 0 || int(d) >= compassPoints {
		return "unknown"
	}
	return windLabels[d]
}

// Degrees returns the midpoint of the sector in meteorological degrees.
func (d WindDirection) Degrees() float64 {
	return float64(d) * sectorWidth
}

// Arrow returns a display glyph pointing where the wind blows to, snapped to
// the nearest 8-point sector.
func (d WindDirection) Arrow() string {
	if d < 0 || int(d) >= compassPoints {
		return " "
	}
	return windArrows[((int(d)+1)/2)%8]
}
