package config

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Absent marks an empty grid cell
const Absent = -1

// Grid is a CSV integer grid indexed [row][col]
type Grid [][]int

// Cell is a present grid cell
type Cell struct {
	Col, Row int
	Value    int
}

// ParseGrid reads comma separated integers. Rows may differ in length.
func ParseGrid(r io.Reader) (Grid, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true
	cr.Comment = '#'

	records, err := cr.ReadAll()
	if err != nil {
		return nil, err
	}

	g := make(Grid, 0, len(records))
	for row, rec := range records {
		line := make([]int, 0, len(rec))
		for col, field := range rec {
			v, err := strconv.Atoi(strings.TrimSpace(field))
			if err != nil {
				return nil, fmt.Errorf("row %d col %d: %w", row, col, err)
			}
			line = append(line, v)
		}
		g = append(g, line)
	}
	return g, nil
}

// Cells returns every cell other than Absent in row-major order
func (g Grid) Cells() []Cell {
	var out []Cell
	for row, line := range g {
		for col, v := range line {
			if v != Absent {
				out = append(out, Cell{Col: col, Row: row, Value: v})
			}
		}
	}
	return out
}
