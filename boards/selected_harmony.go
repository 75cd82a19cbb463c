//go:build board_harmony

package boards

// Selected is the board chosen by build tag.
var Selected = &Harmony
