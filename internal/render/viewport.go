package render

// cellWidth is the number of terminal columns per grid cell; emoji occupy two.
const cellWidth = 2

// Viewport places the level grid on the screen. Levels are small, so the
// whole grid is centred instead of following the player.
type Viewport struct {
	OriginX, OriginY int // screen cell of grid (0,0)
	ScreenW, ScreenH int // usable screen area above the HUD
}

// Fit centres a gridW x gridH level inside a screenW x screenH area.
// A level larger than the area is pinned to the top-left corner.
func Fit(gridW, gridH, screenW, screenH int) Viewport {
	return Viewport{
		OriginX: max(0, (screenW-gridW*cellWidth)/2),
		OriginY: max(0, (screenH-gridH)/2),
		ScreenW: screenW,
		ScreenH: screenH,
	}
}

// ToScreen converts grid (gx, gy) to screen (sx, sy).
// visible is false when the cell falls outside the area.
func (v Viewport) ToScreen(gx, gy int) (sx, sy int, visible bool) {
	sx = v.OriginX + gx*cellWidth
	sy = v.OriginY + gy
	visible = sx >= 0 && sx+cellWidth <= v.ScreenW && sy >= 0 && sy < v.ScreenH
	return
}
