package forces

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Coefficient is one (n, m, C_nm, S_nm) row of a gravity-field harmonics
// table, always in fully normalized form: HarmonicsTable.Get divides by
// the normalization factor N_nm on the way out for tables loaded from an
// unnormalized source, so every caller of Get sees the same convention
// regardless of how the body's coefficients were published.
type Coefficient struct {
	N, M int
	Cnm, Snm float64
}

// HarmonicsTable is a sparse n,m -> coefficient lookup for the oblateness
// model. The zero value is an empty table (degree 0), with which Oblateness
// uses only its closed-form J2 term.
type HarmonicsTable struct {
	rows       map[[2]int]Coefficient
	degree     int
	normalized bool
}

// Degree returns the highest n present in the table.
func (t *HarmonicsTable) Degree() int {
	if t == nil {
		return 0
	}
	return t.degree
}

// Get returns the (n, m) coefficient, converted to fully normalized form
// if the table was loaded unnormalized (e.g. Mars's published
// coefficients, which carry C_nm = -J_n style unnormalized values), or a
// zero Coefficient if absent.
func (t *HarmonicsTable) Get(n, m int) Coefficient {
	if t == nil || t.rows == nil {
		return Coefficient{N: n, M: m}
	}
	c := t.rows[[2]int{n, m}]
	if !t.normalized {
		nnm := normalizationFactor(n, m)
		if nnm != 0 {
			c.Cnm /= nnm
			c.Snm /= nnm
		}
	}
	return c
}

// LoadHarmonicsTable reads a CSV-like stream of "n,m,Cnm,Snm" rows (one
// header line, skipped). Lines that are blank or start with '#' are
// ignored, matching the loose format the source's coefficient files use.
// normalized reports whether the source already publishes fully
// normalized coefficients (e.g. EGM-style Earth tables); when false (e.g.
// Mars's unnormalized J_n-style table), Get divides by N_nm before
// returning a row.
func LoadHarmonicsTable(r io.Reader, normalized bool) (*HarmonicsTable, error) {
	t := &HarmonicsTable{rows: make(map[[2]int]Coefficient), normalized: normalized}
	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Split(line, ",")
		if len(fields) < 4 {
			continue
		}
		n, err := strconv.Atoi(strings.TrimSpace(fields[0]))
		if err != nil {
			// Header line ("n,m,Cnm,Snm"); skip rather than fail the whole load.
			continue
		}
		m, err := strconv.Atoi(strings.TrimSpace(fields[1]))
		if err != nil {
			return nil, fmt.Errorf("forces: line %d: bad m: %w", lineNo, err)
		}
		cnm, err := strconv.ParseFloat(strings.TrimSpace(fields[2]), 64)
		if err != nil {
			return nil, fmt.Errorf("forces: line %d: bad Cnm: %w", lineNo, err)
		}
		snm, err := strconv.ParseFloat(strings.TrimSpace(fields[3]), 64)
		if err != nil {
			return nil, fmt.Errorf("forces: line %d: bad Snm: %w", lineNo, err)
		}
		t.rows[[2]int{n, m}] = Coefficient{N: n, M: m, Cnm: cnm, Snm: snm}
		if n > t.degree {
			t.degree = n
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return t, nil
}
