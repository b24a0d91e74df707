// Package tsplib loads TSPLIB-format symmetric Euclidean TSP instances
// into a bbsearch.DistanceOracle.
//
// What:
//
//   - Load parses a `.tsp` file: a `DIMENSION:` header, a
//     `NODE_COORD_SECTION` of `<index> <x> <y>` lines, terminated by
//     `EOF`. Only `EDGE_WEIGHT_TYPE: EUC_2D` is supported.
//   - Instance implements Size/Distance directly against the parsed
//     coordinates, with distances Euclidean-rounded to the nearest
//     integer at load time (computed once, not on every Distance call).
//   - Instance.Truncate returns a new Instance restricted to the first n
//     cities, for the CLI's `num_cities` argument.
//
// This package sits outside the core search engine: the engine only ever
// depends on bbsearch.DistanceOracle, never on tsplib directly.
package tsplib
