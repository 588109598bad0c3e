// Package reorder implements the swap-based ordering protocol shared by every
// content collection: moving one row a position up or down and rebuilding a
// contiguous order after deletions.
//
// Order values are contiguous and ascending (0..n-1), and lists are displayed
// ascending by order value, ties broken by id.
package reorder

import (
	"fmt"
	"sort"
	"strings"
)

// Row is the ordering projection of a stored entity.
type Row struct {
	ID         int64
	OrderIndex int
	Version    int
}

// Direction is the way a row moves in the displayed list.
type Direction string

const (
	Up   Direction = "up"
	Down Direction = "down"
)

// ParseDirection accepts "up" or "down", case-insensitively.
func ParseDirection(s string) (Direction, error) {
	switch d := Direction(strings.ToLower(strings.TrimSpace(s))); d {
	case Up, Down:
		return d, nil
	default:
		return "", fmt.Errorf("invalid direction %q", s)
	}
}

// Result describes a successful move.
type Result struct {
	// Rows is the full list re-sorted after the swap.
	Rows []Row
	// Changed holds the two rows whose order values were swapped, the
	// moved row first.
	Changed [2]Row
}

// Sort orders rows ascending by order value, then by id. The content
// repositories list rows with the same ordering.
func Sort(rows []Row) {
	sort.SliceStable(rows, func(i, j int) bool {
		if rows[i].OrderIndex != rows[j].OrderIndex {
			return rows[i].OrderIndex < rows[j].OrderIndex
		}
		return rows[i].ID < rows[j].ID
	})
}

// Move swaps the order value of row id with its neighbour in the given
// direction. rows must already be in display order. The input slice is not
// modified. It reports false when id is absent or already at the boundary.
func Move(rows []Row, id int64, dir Direction) (Result, bool) {
	current := indexOf(rows, id)
	if current < 0 {
		return Result{}, false
	}
	next := current + 1
	if dir == Up {
		next = current - 1
	}
	if next < 0 || next >= len(rows) {
		return Result{}, false
	}

	out := make([]Row, len(rows))
	copy(out, rows)
	out[current].OrderIndex, out[next].OrderIndex = out[next].OrderIndex, out[current].OrderIndex
	changed := [2]Row{out[current], out[next]}
	Sort(out)
	return Result{Rows: out, Changed: changed}, true
}

// Rebuild returns rows in display order with order values reassigned to
// 0..n-1. Duplicates and gaps in the input collapse deterministically.
func Rebuild(rows []Row) []Row {
	out := make([]Row, len(rows))
	copy(out, rows)
	Sort(out)
	for i := range out {
		out[i].OrderIndex = i
	}
	return out
}

// Next returns the order value for a row appended to the list.
func Next(rows []Row) int {
	if len(rows) == 0 {
		return 0
	}
	max := rows[0].OrderIndex
	for _, r := range rows[1:] {
		if r.OrderIndex > max {
			max = r.OrderIndex
		}
	}
	return max + 1
}

// Contiguous reports whether rows in display order carry 0..n-1.
func Contiguous(rows []Row) bool {
	for i, r := range rows {
		if r.OrderIndex != i {
			return false
		}
	}
	return true
}

func indexOf(rows []Row, id int64) int {
	for i, r := range rows {
		if r.ID == id {
			return i
		}
	}
	return -1
}
