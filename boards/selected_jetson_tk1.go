//go:build board_jetson_tk1

package boards

// Selected is the board chosen by build tag.
var Selected = &JetsonTK1
