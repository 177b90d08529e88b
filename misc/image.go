package misc

import "image/color"

// LerpFloat64 blends v1 towards v2. The two weights are applied separately so fraction 0 and 1 return the
// end points exactly.
func LerpFloat64(v1 float64, v2 float64, fraction float64) float64 {
	return v1*(1-fraction) + v2*fraction
}

// LerpUint8 truncates the blended channel.
func LerpUint8(v1 uint8, v2 uint8, fraction float64) uint8 {
	return uint8(LerpFloat64(float64(v1), float64(v2), fraction))
}

func LinearInterpolationRGB(color1 color.RGBA, color2 color.RGBA, fraction float64) color.RGBA {
	return color.RGBA{
		R: LerpUint8(color1.R, color2.R, fraction),
		G: LerpUint8(color1.G, color2.G, fraction),
		B: LerpUint8(color1.B, color2.B, fraction),
		A: 255,
	}
}
