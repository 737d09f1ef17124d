package core

// Point is a cell position in scene coordinates
type Point struct {
	X int `yaml:"x" json:"x"`
	Y int `yaml:"y" json:"y"`
}

// Area represents a rectangular region of cells
type Area struct {
	X      int `yaml:"x" json:"x"` // Top-left corner
	Y      int `yaml:"y" json:"y"`
	Width  int `yaml:"w" json:"w"` // Dimensions (minimum 1x1)
	Height int `yaml:"h" json:"h"`
}

// Contains reports whether p lies inside the area
func (a Area) Contains(p Point) bool {
	return p.X >= a.X && p.X < a.X+a.Width && p.Y >= a.Y && p.Y < a.Y+a.Height
}

// Grow returns the area expanded by n cells on every side
func (a Area) Grow(n int) Area {
	return Area{X: a.X - n, Y: a.Y - n, Width: a.Width + 2*n, Height: a.Height + 2*n}
}

// Empty reports a degenerate area
func (a Area) Empty() bool {
	return a.Width <= 0 || a.Height <= 0
}

// Within reports whether the area fits inside a w by h grid
func (a Area) Within(w, h int) bool {
	return a.X >= 0 && a.Y >= 0 && a.X+a.Width <= w && a.Y+a.Height <= h
}
