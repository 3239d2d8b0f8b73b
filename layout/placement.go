package layout

import "image"

// Band identifies one of the three horizontal strips sampled for placement.
type Band int

const (
	BandTop Band = iota
	BandMiddle
	BandBottom
)

// Fractional vertical anchors within the region for each band choice.
const (
	anchorTop    = 0.18
	anchorMiddle = 0.50
	anchorBottom = 0.82
)

// bandWindows gives each band's vertical extent as fractions of the region
// height: top quarter, centered middle quarter, bottom quarter.
var bandWindows = [3][2]float64{
	{0.0, 0.25},
	{0.375, 0.625},
	{0.75, 1.0},
}

// Placement picks the vertical anchor for the text block by sampling three
// disjoint horizontal bands of img cropped to region and choosing the
// darkest, so light text lands on the best-contrast area. Ties resolve in
// band order: top, then middle, then bottom. The returned value is the
// fractional offset of the anchor within the region.
func Placement(region Region, img image.Image) float64 {
	band := DarkestBand(region, img)
	switch band {
	case BandTop:
		return anchorTop
	case BandBottom:
		return anchorBottom
	default:
		return anchorMiddle
	}
}

// DarkestBand returns the band with the lowest mean luminance.
func DarkestBand(region Region, img image.Image) Band {
	best := BandTop
	bestLum := meanLuminance(region, img, bandWindows[BandTop])
	for _, b := range []Band{BandMiddle, BandBottom} {
		if lum := meanLuminance(region, img, bandWindows[b]); lum < bestLum {
			best = b
			bestLum = lum
		}
	}
	return best
}

// meanLuminance averages Rec. 601 luma over region rows [from, to) given as
// fractions of the region height. Rows outside the image bounds contribute
// nothing.
func meanLuminance(region Region, img image.Image, window [2]float64) float64 {
	h := region.Height()
	y0 := region.Y0 + int(float64(h)*window[0])
	y1 := region.Y0 + int(float64(h)*window[1])

	bounds := img.Bounds()
	sum := 0.0
	count := 0
	for y := y0; y < y1; y++ {
		if y < bounds.Min.Y || y >= bounds.Max.Y {
			continue
		}
		for x := region.X0; x < region.X1; x++ {
			if x < bounds.Min.X || x >= bounds.Max.X {
				continue
			}
			r, g, b, _ := img.At(x, y).RGBA()
			sum += 0.299*float64(r>>8) + 0.587*float64(g>>8) + 0.114*float64(b>>8)
			count++
		}
	}
	if count == 0 {
		return 255
	}
	return sum / float64(count)
}
