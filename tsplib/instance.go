package tsplib

// Instance is an in-memory TSPLIB coordinate set with precomputed integer
// Euclidean distances. It implements bbsearch.DistanceOracle without
// importing bbsearch, keeping tsplib a leaf package.
type Instance struct {
	name string
	xs   []float64
	ys   []float64
	dist [][]int
}

// Size returns the number of nodes.
func (in *Instance) Size() int { return len(in.xs) }

// Distance returns the precomputed Euclidean distance between a and b,
// rounded to the nearest integer at load time.
func (in *Instance) Distance(a, b int) int { return in.dist[a][b] }

// Name returns the instance's NAME field, or the empty string if absent.
func (in *Instance) Name() string { return in.name }

// Truncate returns a new Instance restricted to the first n cities, for
// the CLI's num_cities argument: if n is > 0 and < the file's dimension,
// the graph is truncated to the first n cities. For any other n it
// returns the receiver unchanged.
func (in *Instance) Truncate(n int) *Instance {
	if n <= 0 || n >= in.Size() {
		return in
	}
	out := &Instance{
		name: in.name,
		xs:   append([]float64(nil), in.xs[:n]...),
		ys:   append([]float64(nil), in.ys[:n]...),
		dist: make([][]int, n),
	}
	for i := 0; i < n; i++ {
		out.dist[i] = append([]int(nil), in.dist[i][:n]...)
	}
	return out
}
