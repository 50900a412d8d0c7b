package catalogue

import (
	"fmt"
	"sync"
)

// Catalogue is an ordered, read-only set of Algorithm records.
// It is safe for concurrent use: nothing mutates it after New returns.
type Catalogue struct {
	records []Algorithm
	index   map[string]int
}

var (
	defaultOnce sync.Once
	defaultCat  *Catalogue
)

// Default returns the canonical catalogue: breadth-first, depth-first,
// depth-limited and iterative deepening search, in that order.
// The same instance is returned on every call.
func Default() *Catalogue {
	defaultOnce.Do(func() {
		c, err := New(canonical()...)
		if err != nil {
			panic(err) // canonical data is static
		}
		defaultCat = c
	})

	return defaultCat
}

// New builds a catalogue from records, preserving their order.
// Returns ErrEmpty, ErrEmptyName, ErrDuplicateName or ErrBadOptimality
// (wrapped with the offending record name) for invalid input.
func New(records ...Algorithm) (*Catalogue, error) {
	if len(records) == 0 {
		return nil, ErrEmpty
	}
	c := &Catalogue{
		records: make([]Algorithm, 0, len(records)),
		index:   make(map[string]int, len(records)),
	}
	for i, rec := range records {
		if rec.Name == "" {
			return nil, fmt.Errorf("%w (record %d)", ErrEmptyName, i)
		}
		if _, dup := c.index[rec.Name]; dup {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateName, rec.Name)
		}
		if !rec.LengthOptimality.Valid() {
			return nil, fmt.Errorf("%w: %q length optimality %d", ErrBadOptimality, rec.Name, int(rec.LengthOptimality))
		}
		if !rec.CostOptimality.Valid() {
			return nil, fmt.Errorf("%w: %q cost optimality %d", ErrBadOptimality, rec.Name, int(rec.CostOptimality))
		}
		c.index[rec.Name] = len(c.records)
		c.records = append(c.records, rec)
	}

	return c, nil
}

// Len returns the number of records.
func (c *Catalogue) Len() int { return len(c.records) }

// Algorithms returns a copy of all records in declaration order.
func (c *Catalogue) Algorithms() []Algorithm {
	out := make([]Algorithm, len(c.records))
	copy(out, c.records)

	return out
}

// Lookup returns the record named name.
func (c *Catalogue) Lookup(name string) (Algorithm, bool) {
	i, ok := c.index[name]
	if !ok {
		return Algorithm{}, false
	}

	return c.records[i], true
}

// Filter returns the records whose properties satisfy req, in catalogue order.
//
// Filtering is elimination: a record is kept unless one of the exclusion
// clauses (see Evaluate) fires. TUNABLE length optimality and
// ADMISSIBLE_HEURISTIC cost optimality never exclude.
//
// Complexity: O(n) time, O(n) space for the result.
func (c *Catalogue) Filter(req Requirement) Result {
	res := Result{Candidates: make([]Algorithm, 0, len(c.records))}
	for _, rec := range c.records {
		if excluded(rec, req) {
			continue
		}
		res.Candidates = append(res.Candidates, rec)
	}

	return res
}

// Evaluate returns one Verdict per record, in catalogue order, listing every
// exclusion clause that fired. Records with no reasons are exactly those
// returned by Filter.
func (c *Catalogue) Evaluate(req Requirement) []Verdict {
	out := make([]Verdict, 0, len(c.records))
	for _, rec := range c.records {
		out = append(out, Verdict{Algorithm: rec, Reasons: reasons(rec, req)})
	}

	return out
}

func excluded(rec Algorithm, req Requirement) bool {
	return len(reasons(rec, req)) > 0
}

// reasons applies the four exclusion clauses in order.
func reasons(rec Algorithm, req Requirement) []Reason {
	var rs []Reason
	if !req.HeuristicAvailable && rec.HeuristicRequired {
		rs = append(rs, ReasonHeuristicUnavailable)
	}
	if req.LengthOptimal && rec.LengthOptimality == LengthNotGuaranteed {
		rs = append(rs, ReasonNotLengthOptimal)
	}
	if req.InfinitePaths && !rec.HandlesInfinitePaths {
		rs = append(rs, ReasonInfinitePaths)
	}
	if req.CostOptimal && rec.CostOptimality == CostNotGuaranteed {
		rs = append(rs, ReasonNotCostOptimal)
	}

	return rs
}
