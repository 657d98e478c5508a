// internal/utils/coords.go
package utils

import "math"

// SnapToGrid returns the top-left corner of the grid cell containing (x, y).
func SnapToGrid(x, y, cellSize float64) (float64, float64) {
	return math.Floor(x/cellSize) * cellSize, math.Floor(y/cellSize) * cellSize
}

// CellIndex returns the column and row of the cell containing (x, y).
func CellIndex(x, y, cellSize float64) (col, row int) {
	return int(math.Floor(x / cellSize)), int(math.Floor(y / cellSize))
}
