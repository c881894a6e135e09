package kmeans

import (
	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/floats"

	"github.com/hupe1980/lloyd/distance"
)

// lane is one worker's slice of the point set plus its private buffers.
type lane struct {
	lo, hi int

	sums   []float64 // k * dim partial sums
	counts []int     // k partial counts
	dists  []float64 // k distances for the point being assigned
}

// state is the mutable working set of a single run. Points are read-only;
// assignments are written only by the lane owning the point; centroids are
// written only after every lane has finished accumulating.
type state struct {
	coords []float64
	n      int
	dim    int
	k      int

	assignments []int
	centroids   []float64

	lanes []lane
}

func newState(coords []float64, dim, k, workers int) *state {
	n := len(coords) / dim

	s := &state{
		coords:      coords,
		n:           n,
		dim:         dim,
		k:           k,
		assignments: make([]int, n),
		centroids:   make([]float64, k*dim),
		lanes:       make([]lane, workers),
	}

	for i := range s.assignments {
		s.assignments[i] = Unassigned
	}

	chunk := (n + workers - 1) / workers
	for w := range s.lanes {
		lo := min(w*chunk, n)
		hi := min(lo+chunk, n)
		s.lanes[w] = lane{
			lo:     lo,
			hi:     hi,
			sums:   make([]float64, k*dim),
			counts: make([]int, k),
			dists:  make([]float64, k),
		}
	}

	return s
}

func (s *state) point(i int) []float64 {
	return s.coords[i*s.dim : (i+1)*s.dim]
}

func (s *state) centroid(c int) []float64 {
	return s.centroids[c*s.dim : (c+1)*s.dim]
}

// seed copies the seed points into the centroids and stamps each seed point
// with its cluster id. All other points stay Unassigned.
func (s *state) seed(indices []int) {
	for c, idx := range indices {
		copy(s.centroid(c), s.point(idx))
		s.assignments[idx] = c
	}
}

// forEachLane runs fn once per lane and waits for all of them.
func (s *state) forEachLane(fn func(w int, l *lane)) {
	if len(s.lanes) == 1 {
		fn(0, &s.lanes[0])
		return
	}

	var g errgroup.Group
	for w := range s.lanes {
		l := &s.lanes[w]
		g.Go(func() error {
			fn(w, l)
			return nil
		})
	}
	_ = g.Wait()
}

// assign moves every point to its nearest centroid and returns how many
// points changed cluster.
func (s *state) assign() int {
	changed := make([]int, len(s.lanes))

	s.forEachLane(func(w int, l *lane) {
		changed[w] = s.assignRange(l)
	})

	total := 0
	for _, c := range changed {
		total += c
	}
	return total
}

func (s *state) assignRange(l *lane) int {
	changed := 0
	for i := l.lo; i < l.hi; i++ {
		distance.SquaredL2Batch(s.point(i), s.centroids, s.dim, l.dists)
		nearest := distance.ArgMin(l.dists)

		if s.assignments[i] != nearest {
			s.assignments[i] = nearest
			changed++
		}
	}
	return changed
}

// update recomputes every non-empty centroid as the mean of its points.
// Empty clusters keep their previous coordinates.
func (s *state) update() {
	s.forEachLane(func(_ int, l *lane) {
		s.accumulate(l)
	})

	// Merge in lane order so a given lane count always rounds the same way.
	sums, counts := s.lanes[0].sums, s.lanes[0].counts
	for w := 1; w < len(s.lanes); w++ {
		floats.Add(sums, s.lanes[w].sums)
		for c, cnt := range s.lanes[w].counts {
			counts[c] += cnt
		}
	}

	for c := 0; c < s.k; c++ {
		if counts[c] == 0 {
			continue
		}
		dst := s.centroid(c)
		src := sums[c*s.dim : (c+1)*s.dim]
		n := float64(counts[c])
		for j := range dst {
			dst[j] = src[j] / n
		}
	}
}

func (s *state) accumulate(l *lane) {
	clear(l.sums)
	clear(l.counts)

	for i := l.lo; i < l.hi; i++ {
		c := s.assignments[i]
		if c < 0 || c >= s.k {
			continue
		}
		floats.Add(l.sums[c*s.dim:(c+1)*s.dim], s.point(i))
		l.counts[c]++
	}
}

// inertia returns the sum of squared distances of assigned points to their
// centroid.
func (s *state) inertia() float64 {
	partial := make([]float64, len(s.lanes))

	s.forEachLane(func(w int, l *lane) {
		var sum float64
		for i := l.lo; i < l.hi; i++ {
			c := s.assignments[i]
			if c < 0 {
				continue
			}
			sum += distance.SquaredL2(s.point(i), s.centroid(c))
		}
		partial[w] = sum
	})

	return floats.Sum(partial)
}
