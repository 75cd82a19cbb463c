//go:build board_beaver

package boards

// Selected is the board chosen by build tag.
var Selected = &Beaver
