package core

// Color is the foreground color of a screen cell.
// The platform maps each value to an ANSI 256-color code.
type Color uint8

// Palette used by the pushout renderer.
const (
	ColorDefault Color = iota
	ColorFloor
	ColorWall
	ColorDozer
	ColorSpecial
	ColorObstacle
	ColorFalling
	ColorSpace
	ColorTitle
	ColorHint
)
