package render

import "github.com/gdamore/tcell/v2"

// RGB color definitions
var (
	RgbBackground = tcell.NewRGBColor(26, 27, 38)    // Tokyo Night background
	RgbField      = tcell.NewRGBColor(32, 34, 48)    // Play area, a shade lighter
	RgbCenterLine = tcell.NewRGBColor(70, 72, 90)    // Dashed net
	RgbScoreBar   = tcell.NewRGBColor(20, 20, 28)    // Score band along the top
	RgbText       = tcell.NewRGBColor(255, 255, 255) // White
	RgbDim        = tcell.NewRGBColor(150, 150, 160) // Hints and debug lines

	RgbLeftSide  = tcell.NewRGBColor(100, 150, 255) // Blue paddle and score
	RgbRightSide = tcell.NewRGBColor(255, 165, 0)   // Orange paddle and score
	RgbBall      = tcell.NewRGBColor(240, 240, 240) // Near white

	RgbButton      = tcell.NewRGBColor(60, 64, 90) // Button face
	RgbButtonLabel = tcell.NewRGBColor(255, 255, 255)
	RgbPaused      = tcell.NewRGBColor(255, 255, 0) // Bright yellow banner
)

// sideColor returns the color of a paddle side
func sideColor(left bool) tcell.Color {
	if left {
		return RgbLeftSide
	}
	return RgbRightSide
}
