package entity

import "math"

// TileSize is the edge length of a grid cell in pixels
const TileSize = 40

// TileCode is the integer stored in a level grid cell
type TileCode int

const (
	TileEmpty TileCode = iota
	TileNormal
	TileDoor
	TileKey
	TileFakeKey
	TileTeleportA
	TileTeleportB
	TileInvert
	TileKill
)

// PlatformKind is the behavioral kind of a platform derived from a tile
type PlatformKind int

const (
	KindNormal PlatformKind = iota
	KindDoor
	KindKey
	KindFakeKey
	KindTeleportA
	KindTeleportB
	KindInvert
	KindKill
	// KindDisappear is never produced by the tile legend. Horizontal
	// resolution still treats it as solid.
	KindDisappear
)

// String returns the legend name of the kind
func (k PlatformKind) String() string {
	switch k {
	case KindNormal:
		return "normal"
	case KindDoor:
		return "door"
	case KindKey:
		return "key"
	case KindFakeKey:
		return "fakeKey"
	case KindTeleportA:
		return "teleportA"
	case KindTeleportB:
		return "teleportB"
	case KindInvert:
		return "invert"
	case KindKill:
		return "kill"
	case KindDisappear:
		return "disappear"
	default:
		return "unknown"
	}
}

// KindOf maps a tile code to its platform kind.
// ok is false for empty cells. Codes outside the legend become normal platforms.
func KindOf(code TileCode) (kind PlatformKind, ok bool) {
	switch code {
	case TileEmpty:
		return 0, false
	case TileDoor:
		return KindDoor, true
	case TileKey:
		return KindKey, true
	case TileFakeKey:
		return KindFakeKey, true
	case TileTeleportA:
		return KindTeleportA, true
	case TileTeleportB:
		return KindTeleportB, true
	case TileInvert:
		return KindInvert, true
	case TileKill:
		return KindKill, true
	default:
		return KindNormal, true
	}
}

// Rect is an axis-aligned rectangle in pixel space
type Rect struct {
	X, Y, W, H float64
}

// Overlaps reports whether two rectangles intersect.
// Touching edges do not count as overlap.
func (r Rect) Overlaps(o Rect) bool {
	return r.X < o.X+o.W &&
		r.X+r.W > o.X &&
		r.Y < o.Y+o.H &&
		r.Y+r.H > o.Y
}

// Platform is an immutable rectangle with a behavioral kind
type Platform struct {
	Rect
	Kind PlatformKind
}

// Solid reports whether the platform blocks horizontal movement
func (p Platform) Solid() bool {
	return p.Kind == KindNormal || p.Kind == KindDisappear
}

// Grid is a rectangular matrix of tile codes indexed [row][col]
type Grid [][]TileCode

// NewGrid converts raw integer rows into a Grid, copying every row
func NewGrid(rows [][]int) Grid {
	g := make(Grid, len(rows))
	for y, row := range rows {
		g[y] = make([]TileCode, len(row))
		for x, v := range row {
			g[y][x] = TileCode(v)
		}
	}
	return g
}

// Clone returns a deep copy of the grid
func (g Grid) Clone() Grid {
	if g == nil {
		return nil
	}
	c := make(Grid, len(g))
	for y, row := range g {
		c[y] = append([]TileCode(nil), row...)
	}
	return c
}

// Rows returns the number of rows
func (g Grid) Rows() int {
	return len(g)
}

// Cols returns the width of the first row
func (g Grid) Cols() int {
	if len(g) == 0 {
		return 0
	}
	return len(g[0])
}

// At returns the tile at the given cell.
// ok is false when the cell lies outside the grid.
func (g Grid) At(col, row int) (TileCode, bool) {
	if row < 0 || row >= len(g) || col < 0 || col >= len(g[row]) {
		return TileEmpty, false
	}
	return g[row][col], true
}

// Set writes a tile code. Out-of-bounds writes are ignored.
func (g Grid) Set(col, row int, code TileCode) {
	if row < 0 || row >= len(g) || col < 0 || col >= len(g[row]) {
		return
	}
	g[row][col] = code
}

// Find returns the first cell holding code in row-major order
func (g Grid) Find(code TileCode) (col, row int, ok bool) {
	for y, cells := range g {
		for x, c := range cells {
			if c == code {
				return x, y, true
			}
		}
	}
	return 0, 0, false
}

// CellAt converts a pixel position into grid coordinates
func CellAt(px, py float64) (col, row int) {
	return int(math.Floor(px / TileSize)), int(math.Floor(py / TileSize))
}

// PlatformsFromGrid builds one platform per non-empty cell in row-major order
func PlatformsFromGrid(g Grid) []Platform {
	platforms := make([]Platform, 0, len(g)*g.Cols()/2)
	for y, cells := range g {
		for x, c := range cells {
			kind, ok := KindOf(c)
			if !ok {
				continue
			}
			platforms = append(platforms, Platform{
				Rect: Rect{
					X: float64(x * TileSize),
					Y: float64(y * TileSize),
					W: TileSize,
					H: TileSize,
				},
				Kind: kind,
			})
		}
	}
	return platforms
}
