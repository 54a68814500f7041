package tilemap

// Formatting controls the whitespace a TileMap emits around and between
// tiles. All fields are plain repeat counts and must be non-negative; zero
// disables that kind of spacing. No other validation is performed.
type Formatting struct {
	RowSpacing   int // extra newlines before every row
	TileSpacing  int // spaces before every tile
	TopIndent    int // newlines before the whole map
	LeftIndent   int // tabs at the start of every row
	BottomIndent int // newlines after the whole map
}

// DefaultFormatting returns the formatting a TileMap starts with.
func DefaultFormatting() Formatting {
	return Formatting{
		RowSpacing:   1,
		TileSpacing:  1,
		TopIndent:    3,
		LeftIndent:   1,
		BottomIndent: 2,
	}
}
