package engine

import (
	"math"

	"github.com/lixenwraith/brainwave/vmath"
)

// Link is an unordered pair of particles closer than the connection distance, always I < J
type Link struct {
	I, J int
}

// linkGrid buckets particles into square cells of the connection distance
// so each particle is only compared against its own and the eight surrounding cells
type linkGrid struct {
	cellSize float64
	cells    map[[2]int][]int
}

func newLinkGrid(cellSize float64) *linkGrid {
	return &linkGrid{
		cellSize: cellSize,
		cells:    make(map[[2]int][]int),
	}
}

func (g *linkGrid) cellOf(p vmath.Vec2) [2]int {
	return [2]int{int(math.Floor(p.X / g.cellSize)), int(math.Floor(p.Y / g.cellSize))}
}

func (g *linkGrid) reset() {
	for k, v := range g.cells {
		g.cells[k] = v[:0]
	}
}

// collect returns every pair within the cell size, appended to dst[:0]
// Worst case is still O(n²) when all particles share a cell, typical cost is n times neighbour count
func (g *linkGrid) collect(dst []Link, particles []Particle) []Link {
	dst = dst[:0]
	if len(particles) < 2 || g.cellSize <= 0 {
		return dst
	}

	// Drifting particles keep opening new cells, drop stale keys once they dominate
	if len(g.cells) > 4*len(particles) {
		g.cells = make(map[[2]int][]int)
	} else {
		g.reset()
	}

	for i := range particles {
		c := g.cellOf(particles[i].Pos)
		g.cells[c] = append(g.cells[c], i)
	}

	maxSq := g.cellSize * g.cellSize
	for i := range particles {
		pi := particles[i].Pos
		c := g.cellOf(pi)
		for dy := -1; dy <= 1; dy++ {
			for dx := -1; dx <= 1; dx++ {
				for _, j := range g.cells[[2]int{c[0] + dx, c[1] + dy}] {
					if j <= i {
						continue
					}
					if vmath.DistSq(pi, particles[j].Pos) < maxSq {
						dst = append(dst, Link{I: i, J: j})
					}
				}
			}
		}
	}
	return dst
}

// ComputeLinks returns every pair of particles closer than maxDist
func ComputeLinks(particles []Particle, maxDist float64) []Link {
	return newLinkGrid(maxDist).collect(nil, particles)
}

// BruteForceLinks is the all-pairs reference definition of connectivity
func BruteForceLinks(particles []Particle, maxDist float64) []Link {
	var links []Link
	maxSq := maxDist * maxDist
	for i := 0; i < len(particles); i++ {
		for j := i + 1; j < len(particles); j++ {
			if vmath.DistSq(particles[i].Pos, particles[j].Pos) < maxSq {
				links = append(links, Link{I: i, J: j})
			}
		}
	}
	return links
}
