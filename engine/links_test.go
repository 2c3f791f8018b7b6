package engine

import (
	"testing"

	"github.com/lixenwraith/brainwave/outline"
	"github.com/lixenwraith/brainwave/vmath"
)

func randomParticles(n int, seed uint64) []Particle {
	rng := vmath.NewFastRand(seed)
	ps := make([]Particle, n)
	for i := range ps {
		p, _ := SpawnInside(outline.Brain(), rng, 1000)
		p.Pos = p.Target
		ps[i] = p
	}
	return ps
}

// TestComputeLinks_MatchesBruteForce verifies the bucketed grid finds exactly the all-pairs set
func TestComputeLinks_MatchesBruteForce(t *testing.T) {
	for _, seed := range []uint64{1, 2, 3} {
		ps := randomParticles(300, seed)
		// Scatter a few far away and onto cell boundaries
		ps[0].Pos = vmath.V2(-350, 420)
		ps[1].Pos = vmath.V2(35, 35)
		ps[2].Pos = vmath.V2(0, 0)
		ps[3].Pos = vmath.V2(-0.0001, 34.9)

		got := ComputeLinks(ps, 35)
		want := BruteForceLinks(ps, 35)

		gotSet := make(map[Link]bool, len(got))
		for _, l := range got {
			if gotSet[l] {
				t.Fatalf("Duplicate link %v", l)
			}
			gotSet[l] = true
		}
		if len(got) != len(want) {
			t.Fatalf("seed %d: expected %d links, got %d", seed, len(want), len(got))
		}
		for _, l := range want {
			if !gotSet[l] {
				t.Fatalf("seed %d: missing link %v", seed, l)
			}
		}
	}
}

func TestComputeLinks_SymmetricNoSelf(t *testing.T) {
	ps := randomParticles(200, 9)
	links := ComputeLinks(ps, 35)
	connected := map[[2]int]bool{}
	for _, l := range links {
		if l.I == l.J {
			t.Fatalf("Self link %v", l)
		}
		if l.I > l.J {
			t.Fatalf("Link not ordered: %v", l)
		}
		connected[[2]int{l.I, l.J}] = true
	}
	for i := range ps {
		for j := range ps {
			if i == j {
				continue
			}
			a, b := min(i, j), max(i, j)
			near := vmath.Dist(ps[i].Pos, ps[j].Pos) < 35
			if connected[[2]int{a, b}] != near {
				t.Fatalf("Pair (%d,%d) connected=%v but distance check=%v", i, j, connected[[2]int{a, b}], near)
			}
		}
	}
}

func TestComputeLinks_Degenerate(t *testing.T) {
	if len(ComputeLinks(nil, 35)) != 0 {
		t.Error("Expected no links for empty input")
	}
	one := []Particle{{Pos: vmath.V2(1, 1)}}
	if len(ComputeLinks(one, 35)) != 0 {
		t.Error("Expected no links for a single particle")
	}
	two := []Particle{{Pos: vmath.V2(1, 1)}, {Pos: vmath.V2(1, 1)}}
	if len(ComputeLinks(two, 35)) != 1 {
		t.Error("Expected coincident particles to link")
	}
}

func TestLinkGrid_Reuse(t *testing.T) {
	g := newLinkGrid(35)
	ps := randomParticles(100, 4)
	first := len(g.collect(nil, ps))
	// Move everything far away, stale buckets must not leak old indices
	for i := range ps {
		ps[i].Pos = ps[i].Pos.Add(vmath.V2(10000, 0))
	}
	second := g.collect(nil, ps)
	if len(second) != first {
		t.Errorf("Expected translation-invariant link count %d, got %d", first, len(second))
	}
}

func BenchmarkComputeLinks(b *testing.B) {
	ps := randomParticles(800, 1)
	g := newLinkGrid(35)
	var dst []Link
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		dst = g.collect(dst, ps)
	}
}

func BenchmarkBruteForceLinks(b *testing.B) {
	ps := randomParticles(800, 1)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		BruteForceLinks(ps, 35)
	}
}
