package world

// SpatialGrid provides cheap neighbor lookups over the agent snapshot using
// a cell-based uniform grid. The world is bounded, so out-of-range cells are
// clamped rather than wrapped; results are semantically identical to a
// linear distance scan.
type SpatialGrid struct {
	cellSize float64
	cols     int
	rows     int
	cells    [][]Agent
}

// NewSpatialGrid creates a spatial grid covering the given world size.
func NewSpatialGrid(width, height, cellSize float64) *SpatialGrid {
	cols := int(width/cellSize) + 1
	rows := int(height/cellSize) + 1

	cells := make([][]Agent, cols*rows)
	for i := range cells {
		cells[i] = make([]Agent, 0, 8)
	}

	return &SpatialGrid{
		cellSize: cellSize,
		cols:     cols,
		rows:     rows,
		cells:    cells,
	}
}

// Clear removes all agents from the grid.
func (g *SpatialGrid) Clear() {
	for i := range g.cells {
		g.cells[i] = g.cells[i][:0]
	}
}

// Insert adds an agent to the grid at its current position.
func (g *SpatialGrid) Insert(a Agent) {
	p := a.Position()
	idx := g.cellIndex(p.X, p.Y)
	if idx >= 0 && idx < len(g.cells) {
		g.cells[idx] = append(g.cells[idx], a)
	}
}

// QueryRadius returns all agents within radius of the given position,
// excluding the given agent. Iteration order follows insertion order per
// cell, so results are stable within a tick.
func (g *SpatialGrid) QueryRadius(x, y, radius float64, exclude Agent) []Agent {
	cellRadius := int(radius/g.cellSize) + 1

	centerCol := g.clampCol(int(x / g.cellSize))
	centerRow := g.clampRow(int(y / g.cellSize))

	radiusSq := radius * radius

	var result []Agent
	for dr := -cellRadius; dr <= cellRadius; dr++ {
		row := centerRow + dr
		if row < 0 || row >= g.rows {
			continue
		}
		for dc := -cellRadius; dc <= cellRadius; dc++ {
			col := centerCol + dc
			if col < 0 || col >= g.cols {
				continue
			}

			for _, a := range g.cells[row*g.cols+col] {
				if exclude != nil && a.ID() == exclude.ID() {
					continue
				}
				p := a.Position()
				dx := p.X - x
				dy := p.Y - y
				if dx*dx+dy*dy <= radiusSq {
					result = append(result, a)
				}
			}
		}
	}

	return result
}

// cellIndex returns the flat index for a world position.
func (g *SpatialGrid) cellIndex(x, y float64) int {
	col := g.clampCol(int(x / g.cellSize))
	row := g.clampRow(int(y / g.cellSize))
	return row*g.cols + col
}

func (g *SpatialGrid) clampCol(col int) int {
	if col < 0 {
		return 0
	}
	if col >= g.cols {
		return g.cols - 1
	}
	return col
}

func (g *SpatialGrid) clampRow(row int) int {
	if row < 0 {
		return 0
	}
	if row >= g.rows {
		return g.rows - 1
	}
	return row
}
