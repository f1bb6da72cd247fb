package render

import "math"

// The PICO-8 palette: 16 base colors plus the 16 "secret" extended ones.
var (
	Black         = Opaque(0, 0, 0)       // 0
	DarkBlue      = Opaque(29, 43, 83)    // 1
	DarkPurple    = Opaque(126, 37, 83)   // 2
	DarkGreen     = Opaque(0, 135, 81)    // 3
	Brown         = Opaque(171, 82, 54)   // 4
	DarkGrey      = Opaque(95, 87, 79)    // 5
	LightGrey     = Opaque(194, 195, 199) // 6
	White         = Opaque(255, 241, 232) // 7
	Red           = Opaque(255, 0, 77)    // 8
	Orange        = Opaque(255, 163, 0)   // 9
	Yellow        = Opaque(255, 236, 39)  // 10
	Green         = Opaque(0, 228, 54)    // 11
	Blue          = Opaque(41, 173, 255)  // 12
	Lavender      = Opaque(131, 118, 156) // 13
	Pink          = Opaque(255, 119, 168) // 14
	LightPeach    = Opaque(255, 204, 170) // 15
	BrownishBlack = Opaque(41, 24, 20)    // 16 (128)
	DarkerBlue    = Opaque(17, 29, 53)    // 17 (129)
	DarkerPurple  = Opaque(66, 33, 54)    // 18 (130)
	BlueGreen     = Opaque(18, 83, 89)    // 19 (131)
	DarkBrown     = Opaque(116, 47, 41)   // 20 (132)
	DarkerGrey    = Opaque(73, 51, 59)    // 21 (133)
	MediumGrey    = Opaque(162, 136, 121) // 22 (134)
	LightYellow   = Opaque(243, 239, 125) // 23 (135)
	DarkRed       = Opaque(190, 18, 80)   // 24 (136)
	DarkOrange    = Opaque(255, 108, 36)  // 25 (137)
	LimeGreen     = Opaque(168, 231, 46)  // 26 (138)
	MediumGreen   = Opaque(0, 181, 67)    // 27 (139)
	TrueBlue      = Opaque(6, 90, 181)    // 28 (140)
	Mauve         = Opaque(117, 70, 101)  // 29 (141)
	DarkPeach     = Opaque(255, 110, 89)  // 30 (142)
	Peach         = Opaque(255, 157, 129) // 31 (143)
)

// Palette is the fixed lookup table in index order
var Palette = [32]RGBA{
	Black, DarkBlue, DarkPurple, DarkGreen, Brown, DarkGrey, LightGrey,
	White, Red, Orange, Yellow, Green, Blue, Lavender,
	Pink, LightPeach, BrownishBlack, DarkerBlue, DarkerPurple, BlueGreen, DarkBrown,
	DarkerGrey, MediumGrey, LightYellow, DarkRed, DarkOrange, LimeGreen, MediumGreen,
	TrueBlue, Mauve, DarkPeach, Peach,
}

// PaletteAt returns the palette entry at index i, wrapping modulo the
// table size. Negative indices count back from the end, so -1 is Peach
// the way the extended palette aliases 143 to -1.
func PaletteAt(i int) RGBA {
	i %= len(Palette)
	if i < 0 {
		i += len(Palette)
	}
	return Palette[i]
}

// NearestPalette returns the palette index whose color is closest to c in
// Lab space
func NearestPalette(c RGBA) int {
	target := c.Colorful()
	best := 0
	bestDist := math.Inf(1)
	for i, entry := range Palette {
		if d := target.DistanceLab(entry.Colorful()); d < bestDist {
			best = i
			bestDist = d
		}
	}
	return best
}
