package assets

// Level is a named built-in puzzle in level-text form.
type Level struct {
	Name string
	Map  string
}

// Levels ships with the binary and backs the default configuration.
var Levels = []Level{
	{
		Name: "classic",
		Map: `
N N W W W W W W
W W W . . . . W
W . . . BB . . W
W . . RB . . . W
W . P . . . . W
W . . . . RS . W
W . . BS . . . W
W . . . . . . W
W W W W W W W W
`,
	},
	{
		Name: "corridor",
		Map: `
W W W W W W W
W P BR . . RS W
W W W W W W W
`,
	},
	{
		Name: "twins",
		Map: `
W W W W W W W
W . . . . . W
W . BB . BY . W
W . . P . . W
W . SB . SY . W
W W W W W W W
`,
	},
}
