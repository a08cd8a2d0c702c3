package img2ascii

import (
	"strings"
	"time"
)

// Grid is the result of a conversion: one slice of characters per row of
// tiles, top to bottom.
type Grid struct {
	Rows  [][]rune
	Stats Stats
}

// Stats describes the work done by one conversion.
type Stats struct {
	Tiles     int
	Renders   int
	CacheHits int
	Elapsed   time.Duration
}

// Len returns the number of rows.
func (g *Grid) Len() int {
	return len(g.Rows)
}

// Cols returns the number of characters per row.
func (g *Grid) Cols() int {
	if len(g.Rows) == 0 {
		return 0
	}
	return len(g.Rows[0])
}

// String returns the grid as text, each row followed by a line feed. An
// empty grid is the empty string.
func (g *Grid) String() string {
	var b strings.Builder
	b.Grow(len(g.Rows) * (g.Cols() + 1))
	for _, row := range g.Rows {
		b.WriteString(string(row))
		b.WriteByte('\n')
	}
	return b.String()
}

// Save writes the grid's text to path. See Save.
func (g *Grid) Save(path string) error {
	return Save(path, g.String())
}
