package tsplib

import (
	"bufio"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// Load parses a TSPLIB `.tsp` file at path into an Instance. Only
// NODE_COORD_SECTION / EUC_2D instances are supported; see doc.go.
//
// Contract:
//   - path must name a readable file.
//   - The file must declare DIMENSION and contain a NODE_COORD_SECTION
//     with exactly that many `<index> <x> <y>` lines, terminated by EOF.
//   - EDGE_WEIGHT_TYPE, if present, must be EUC_2D.
//
// Blank lines and COMMENT/NAME/TYPE preamble lines are tolerated anywhere
// before NODE_COORD_SECTION.
func Load(path string) (*Instance, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(ErrFileNotFound, "open %s: %v", path, err)
	}
	defer f.Close()

	return parse(f, path)
}

func parse(f *os.File, path string) (*Instance, error) {
	scanner := bufio.NewScanner(f)

	var (
		name      string
		dimension = -1
		inCoords  = false
		sawEOF    = false
		xs, ys    []float64
		seen      map[int]bool
	)

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if line == "EOF" {
			sawEOF = true
			break
		}

		if inCoords {
			fields := strings.Fields(line)
			if len(fields) != 3 {
				return nil, errors.Wrapf(ErrMalformedFile, "%s: bad coordinate line %q", path, line)
			}
			idx, err := strconv.Atoi(fields[0])
			if err != nil || idx < 1 || idx > dimension {
				return nil, errors.Wrapf(ErrMalformedFile, "%s: node index out of range in %q", path, line)
			}
			x, errX := strconv.ParseFloat(fields[1], 64)
			y, errY := strconv.ParseFloat(fields[2], 64)
			if errX != nil || errY != nil {
				return nil, errors.Wrapf(ErrMalformedFile, "%s: bad coordinates in %q", path, line)
			}
			xs[idx-1] = x
			ys[idx-1] = y
			seen[idx] = true
			continue
		}

		key, value, ok := splitHeaderLine(line)
		if !ok {
			continue
		}
		switch key {
		case "NAME":
			name = value
		case "DIMENSION":
			d, err := strconv.Atoi(value)
			if err != nil || d <= 0 {
				return nil, errors.Wrapf(ErrMalformedFile, "%s: bad DIMENSION %q", path, value)
			}
			dimension = d
		case "EDGE_WEIGHT_TYPE":
			if value != "EUC_2D" {
				return nil, errors.Wrapf(ErrUnsupportedWeightType, "%s: %q", path, value)
			}
		case "NODE_COORD_SECTION":
			if dimension <= 0 {
				return nil, errors.Wrapf(ErrMissingSection, "%s: NODE_COORD_SECTION before DIMENSION", path)
			}
			xs = make([]float64, dimension)
			ys = make([]float64, dimension)
			seen = make(map[int]bool, dimension)
			inCoords = true
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrapf(ErrMalformedFile, "%s: %v", path, err)
	}
	if dimension <= 0 {
		return nil, errors.Wrapf(ErrMissingSection, "%s: missing DIMENSION", path)
	}
	if !inCoords {
		return nil, errors.Wrapf(ErrMissingSection, "%s: missing NODE_COORD_SECTION", path)
	}
	if !sawEOF {
		return nil, errors.Wrapf(ErrMissingSection, "%s: NODE_COORD_SECTION not terminated by EOF", path)
	}
	if len(seen) != dimension {
		return nil, errors.Wrapf(ErrMalformedFile, "%s: expected %d coordinate lines, got %d", path, dimension, len(seen))
	}

	return buildInstance(name, xs, ys), nil
}

// splitHeaderLine splits a "KEY: value" or bare "SECTION_NAME" preamble
// line. NODE_COORD_SECTION has no colon; other keys do.
func splitHeaderLine(line string) (key, value string, ok bool) {
	if line == "NODE_COORD_SECTION" {
		return line, "", true
	}
	idx := strings.Index(line, ":")
	if idx < 0 {
		return "", "", false
	}
	key = strings.TrimSpace(line[:idx])
	value = strings.TrimSpace(line[idx+1:])
	return key, value, true
}

// buildInstance precomputes the full symmetric distance matrix once at
// load time, so bbsearch's hot-path Distance calls are a plain slice
// index rather than a sqrt on every call.
func buildInstance(name string, xs, ys []float64) *Instance {
	n := len(xs)
	dist := make([][]int, n)
	for i := range dist {
		dist[i] = make([]int, n)
	}
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			dx := xs[i] - xs[j]
			dy := ys[i] - ys[j]
			d := int(math.Round(math.Sqrt(dx*dx + dy*dy)))
			dist[i][j] = d
			dist[j][i] = d
		}
	}
	return &Instance{name: name, xs: xs, ys: ys, dist: dist}
}
