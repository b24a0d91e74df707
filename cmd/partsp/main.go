// Command partsp runs the parallel branch-and-bound TSP solver against a
// TSPLIB instance file.
package main

import "os"

func main() {
	os.Exit(run(os.Args[1:]))
}
