package assets

import "box-pusher/internal/component"

// Emoji constants used as entity glyphs.
const (
	GlyphWall  = "🧱"
	GlyphFloor = "🟫"
)

// PlayerFrames is the idle animation of the player.
var PlayerFrames = []string{"😀", "😃", "😄"}

// BoxFrames maps each colour to its two-frame box animation.
var BoxFrames = map[component.BoxColour][]string{
	component.ColourRed:    {"🟥", "🔴"},
	component.ColourBlue:   {"🟦", "🔵"},
	component.ColourGreen:  {"🟩", "🟢"},
	component.ColourYellow: {"🟨", "🟡"},
}

// SpotGlyphs maps each colour to the glyph of its target spot.
var SpotGlyphs = map[component.BoxColour]string{
	component.ColourRed:    "🔺",
	component.ColourBlue:   "🔹",
	component.ColourGreen:  "❇️",
	component.ColourYellow: "🔸",
}
