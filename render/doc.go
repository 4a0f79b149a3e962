// Package render draws an editor status board to a raster image and PNG.
//
// Each cell becomes a CellSize×CellSize square filled with its Palette
// color; rows grow downwards and columns to the right. Optional grey grid
// lines separate cells, and optional "S"/"G" labels mark the endpoints.
//
// The default palette follows the classic A* visualizer colors:
//
//	unvisited white   open blue     closed red     barrier black
//	start     orange  goal purple   path   green   lines   grey
package render
