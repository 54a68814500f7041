package tilemap

// Tile is the capability a type needs to appear on a TileMap: it resolves
// itself to the Token displayed for its cell.
//
// Tile must be a pure function of the receiver with no side effects. The
// zero value of the implementing type must itself resolve to a usable token;
// the renderer uses it for every cell that has no stored value. Types with
// pointer receivers whose nil zero value cannot resolve a token are not
// renderable.
type Tile interface {
	Tile() Token
}
