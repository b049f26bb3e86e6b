package core

// TileOp selects how a tile change is animated.
type TileOp uint8

const (
	// TileGrow fills a tile progressively along Dir.
	TileGrow TileOp = iota
	// TileShrink erases a tile progressively along Dir.
	TileShrink
	// TileFood grows a circle in the tile.
	TileFood
	// TileFill paints the whole tile at once.
	TileFill
)

// TileChange is one tile to repaint.
type TileChange struct {
	At  Coordinate
	Dir Direction
	Op  TileOp
}

// Update is what a model hands to the renderer after each tick.
type Update struct {
	// Setup, when set, (re)allocates and clears the drawing surface.
	Setup *Size
	Tiles []TileChange
	Score int
	// Ate is set on the tick the snake swallowed food.
	Ate bool
	// GameOver is set on the final update of a game.
	GameOver bool
}
