package bbsearch

// MaxGraph is the membership bitmap's capacity: the largest instance this
// search can handle. Graphs larger than MaxGraph fail with
// ErrGraphTooLarge at SearchContext construction.
const MaxGraph = 32

// FirstNode is the designated starting node: always present at Path
// position 0, never removed by Pop.
const FirstNode = 0

// DistanceOracle is the read-only symmetric integer distance function the
// core consumes. tsplib.Instance is the concrete implementation used by
// the CLI driver; tests use small in-memory oracles.
type DistanceOracle interface {
	// Size returns the number of nodes.
	Size() int

	// Distance returns the symmetric, non-negative cost between a and b.
	// Distance(i, i) == 0.
	Distance(a, b int) int
}
