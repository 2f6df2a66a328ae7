package trail

import (
	"strconv"
	"sync"

	"github.com/maisem/hoofit/aoc"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"tailscale.com/util/deephash"
)

// Process returns the sum of the scores of every trailhead in input.
func Process(input string) (string, error) {
	return new(Solver).Process(input)
}

// ProcessRatings returns the sum of the ratings of every trailhead in input.
func ProcessRatings(input string) (string, error) {
	return new(Solver).ProcessRatings(input)
}

// Solver sums trailhead scores and ratings. The zero value is ready to use.
// A Solver must not be copied after first use.
type Solver struct {
	// Workers bounds how many trailheads are evaluated at once.
	// Zero means GOMAXPROCS; one evaluates them in order on the caller's
	// goroutine.
	Workers int
	// Logger, if non-nil, receives debug logs.
	Logger *zap.Logger

	mu     sync.Mutex
	graphs map[deephash.Sum]*aoc.Graph[aoc.Pt] // by HeightMap.Hash
}

// Process returns the sum of the scores of every trailhead in input.
func (s *Solver) Process(input string) (string, error) {
	return s.sum(input, "score", scoreOn)
}

// ProcessRatings returns the sum of the ratings of every trailhead in input.
func (s *Solver) ProcessRatings(input string) (string, error) {
	return s.sum(input, "rating", ratingOn)
}

func (s *Solver) logger() *zap.Logger {
	if s.Logger == nil {
		return zap.NewNop()
	}
	return s.Logger
}

func (s *Solver) sum(input, metric string, f func(HeightMap, *aoc.Graph[aoc.Pt], aoc.Pt) int) (string, error) {
	m, err := Parse(input)
	if err != nil {
		return "", errors.Wrap(err, "parse height map")
	}
	heads := m.Trailheads()
	g := s.graph(m)
	s.logger().Debug("summing trailheads",
		zap.String("metric", metric),
		zap.Int("cells", len(m)),
		zap.Int("trailheads", len(heads)),
		zap.Int("workers", s.Workers),
	)
	counts := aoc.Parallel(heads, s.Workers, func(p aoc.Pt) int {
		return f(m, g, p)
	})
	return strconv.Itoa(aoc.Sum(counts...)), nil
}

// graph returns the ascending graph of m, building it on first use.
func (s *Solver) graph(m HeightMap) *aoc.Graph[aoc.Pt] {
	h := m.Hash()
	s.mu.Lock()
	defer s.mu.Unlock()
	if g, ok := s.graphs[h]; ok {
		s.logger().Debug("reusing ascending graph", zap.Int("nodes", len(g.Nodes)))
		return g
	}
	g := m.Graph()
	aoc.InitMap(&s.graphs)
	s.graphs[h] = g
	return g
}
