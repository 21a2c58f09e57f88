package core

import "container/heap"

type frontierItem struct {
	cell Cell
	dist int
	seq  int
}

// frontier is a min-heap ordered by distance, then discovery order.
type frontier []frontierItem

func (f frontier) Len() int { return len(f) }

func (f frontier) Less(i, j int) bool {
	if f[i].dist != f[j].dist {
		return f[i].dist < f[j].dist
	}
	return f[i].seq < f[j].seq
}

func (f frontier) Swap(i, j int) { f[i], f[j] = f[j], f[i] }

func (f *frontier) Push(x any) { *f = append(*f, x.(frontierItem)) }

func (f *frontier) Pop() any {
	old := *f
	n := len(old)
	item := old[n-1]
	*f = old[:n-1]
	return item
}

// search runs a unit-weight shortest-path search over passable cells.
// It returns the distance field (-1 for unreachable cells) and the cell with
// the strictly largest distance; ties keep the first one discovered.
func search(g *Grid, from Cell) ([][]int, Cell) {
	dist := make([][]int, g.rows)
	for row := range dist {
		dist[row] = make([]int, g.cols)
		for col := range dist[row] {
			dist[row][col] = -1
		}
	}
	if !g.IsFloor(from) {
		return dist, from
	}

	dist[from.Row][from.Col] = 0
	far, farDist := from, 0
	seq := 0
	pq := &frontier{{cell: from}}

	for pq.Len() > 0 {
		cur := heap.Pop(pq).(frontierItem)
		if cur.dist > dist[cur.cell.Row][cur.cell.Col] {
			continue
		}
		for _, d := range Cardinals {
			next := cur.cell.Step(d, 1)
			if !g.IsFloor(next) || dist[next.Row][next.Col] >= 0 {
				continue
			}
			nd := cur.dist + 1
			dist[next.Row][next.Col] = nd
			if nd > farDist {
				far, farDist = next, nd
			}
			seq++
			heap.Push(pq, frontierItem{cell: next, dist: nd, seq: seq})
		}
	}
	return dist, far
}

// Distances returns the shortest-path step count from a cell to every other
// cell, with -1 marking walls and unreachable cells.
func Distances(g *Grid, from Cell) [][]int {
	dist, _ := search(g, from)
	return dist
}

// Furthest returns the reachable cell furthest from the given cell and its distance.
func Furthest(g *Grid, from Cell) (Cell, int) {
	dist, far := search(g, from)
	if !g.InBounds(far) {
		return far, -1
	}
	return far, dist[far.Row][far.Col]
}
