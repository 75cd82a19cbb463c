//go:build !(board_harmony || board_beaver || board_jetson_tk1)

package boards

// Selected is the board chosen by build tag; nil when no board tag is set.
var Selected *Board
