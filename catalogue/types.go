// Package catalogue defines the algorithm record, the tri-state optimality
// enums, the per-query Requirement and the sentinel errors used when a
// catalogue is assembled.
package catalogue

import (
	"errors"
	"fmt"
)

// Sentinel errors for catalogue construction.
var (
	// ErrEmpty is returned when New is called without any records.
	ErrEmpty = errors.New("catalogue: no algorithms supplied")

	// ErrEmptyName indicates a record with an empty Name.
	ErrEmptyName = errors.New("catalogue: algorithm name is empty")

	// ErrDuplicateName indicates two records share the same Name.
	ErrDuplicateName = errors.New("catalogue: duplicate algorithm name")

	// ErrBadOptimality indicates an optimality field holds an unknown value
	// (most often the zero value of an uninitialised record).
	ErrBadOptimality = errors.New("catalogue: invalid optimality value")
)

// LengthOptimality states whether an algorithm finds the fewest-step solution.
type LengthOptimality int

const (
	lengthUnset LengthOptimality = iota

	// LengthGuaranteed: the first solution found is always length-optimal.
	LengthGuaranteed
	// LengthNotGuaranteed: solutions may be longer than necessary.
	LengthNotGuaranteed
	// LengthTunable: parameters can be chosen so that solutions are length-optimal.
	LengthTunable
)

var lengthNames = map[LengthOptimality]string{
	LengthGuaranteed:    "guaranteed",
	LengthNotGuaranteed: "not-guaranteed",
	LengthTunable:       "tunable",
}

// Valid reports whether l is one of the declared values.
func (l LengthOptimality) Valid() bool {
	_, ok := lengthNames[l]
	return ok
}

// String returns the kebab-case name, or "unknown".
func (l LengthOptimality) String() string {
	if s, ok := lengthNames[l]; ok {
		return s
	}
	return "unknown"
}

// MarshalText implements encoding.TextMarshaler.
func (l LengthOptimality) MarshalText() ([]byte, error) {
	if !l.Valid() {
		return nil, fmt.Errorf("%w: length %d", ErrBadOptimality, int(l))
	}
	return []byte(l.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (l *LengthOptimality) UnmarshalText(text []byte) error {
	for v, name := range lengthNames {
		if name == string(text) {
			*l = v
			return nil
		}
	}
	return fmt.Errorf("%w: length %q", ErrBadOptimality, text)
}

// CostOptimality states whether an algorithm finds the lowest-cost solution.
type CostOptimality int

const (
	costUnset CostOptimality = iota

	// CostGuaranteed: the solution found is always cost-optimal.
	CostGuaranteed
	// CostNotGuaranteed: solutions may cost more than necessary.
	CostNotGuaranteed
	// CostAdmissibleHeuristic: cost-optimal only when paired with an
	// admissible heuristic.
	CostAdmissibleHeuristic
)

var costNames = map[CostOptimality]string{
	CostGuaranteed:          "guaranteed",
	CostNotGuaranteed:       "not-guaranteed",
	CostAdmissibleHeuristic: "admissible-heuristic",
}

// Valid reports whether c is one of the declared values.
func (c CostOptimality) Valid() bool {
	_, ok := costNames[c]
	return ok
}

// String returns the kebab-case name, or "unknown".
func (c CostOptimality) String() string {
	if s, ok := costNames[c]; ok {
		return s
	}
	return "unknown"
}

// MarshalText implements encoding.TextMarshaler.
func (c CostOptimality) MarshalText() ([]byte, error) {
	if !c.Valid() {
		return nil, fmt.Errorf("%w: cost %d", ErrBadOptimality, int(c))
	}
	return []byte(c.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (c *CostOptimality) UnmarshalText(text []byte) error {
	for v, name := range costNames {
		if name == string(text) {
			*c = v
			return nil
		}
	}
	return fmt.Errorf("%w: cost %q", ErrBadOptimality, text)
}

// Algorithm is one immutable catalogue record.
//
// All records share the same shape; an algorithm is data, not behaviour.
type Algorithm struct {
	// Name identifies the algorithm; unique within a Catalogue.
	Name string `json:"name" yaml:"name"`

	LengthOptimality LengthOptimality `json:"length_optimality" yaml:"length_optimality"`
	CostOptimality   CostOptimality   `json:"cost_optimality" yaml:"cost_optimality"`

	// HeuristicRequired is true when the algorithm cannot run without a
	// heuristic function over the search space.
	HeuristicRequired bool `json:"heuristic_required" yaml:"heuristic_required"`

	// HandlesInfinitePaths is true when the algorithm terminates with a
	// finite solution even if the space contains infinite-length paths.
	HandlesInfinitePaths bool `json:"handles_infinite_paths" yaml:"handles_infinite_paths"`

	Description     string `json:"description" yaml:"description"`
	TimeComplexity  string `json:"time_complexity" yaml:"time_complexity"`
	SpaceComplexity string `json:"space_complexity" yaml:"space_complexity"`
}

// Requirement captures the four yes/no answers describing one problem.
// It lives for a single Filter or Evaluate call.
type Requirement struct {
	// HeuristicAvailable: nodes in the search space have a heuristic function.
	HeuristicAvailable bool `json:"heuristic_available" yaml:"heuristic_available"`
	// InfinitePaths: the search space contains infinite-length paths.
	InfinitePaths bool `json:"infinite_paths" yaml:"infinite_paths"`
	// LengthOptimal: the shortest-length solution must be found.
	LengthOptimal bool `json:"length_optimal" yaml:"length_optimal"`
	// CostOptimal: the lowest-cost solution must be found.
	CostOptimal bool `json:"cost_optimal" yaml:"cost_optimal"`
}

// Reason names one exclusion clause.
type Reason int

const (
	// ReasonHeuristicUnavailable: the algorithm needs a heuristic the problem lacks.
	ReasonHeuristicUnavailable Reason = iota + 1
	// ReasonNotLengthOptimal: length-optimality is required but not guaranteed.
	ReasonNotLengthOptimal
	// ReasonInfinitePaths: infinite paths exist and the algorithm may not terminate.
	ReasonInfinitePaths
	// ReasonNotCostOptimal: cost-optimality is required but not guaranteed.
	ReasonNotCostOptimal
)

var reasonText = map[Reason]string{
	ReasonHeuristicUnavailable: "requires a heuristic function the problem does not provide",
	ReasonNotLengthOptimal:     "does not guarantee a shortest-length solution",
	ReasonInfinitePaths:        "may never terminate when infinite-length paths exist",
	ReasonNotCostOptimal:       "does not guarantee a lowest-cost solution",
}

// String returns a human-readable explanation of r.
func (r Reason) String() string {
	if s, ok := reasonText[r]; ok {
		return s
	}
	return fmt.Sprintf("reason(%d)", int(r))
}

// MarshalText implements encoding.TextMarshaler.
func (r Reason) MarshalText() ([]byte, error) {
	return []byte(r.String()), nil
}

// Verdict pairs a record with the clauses that excluded it.
// An empty Reasons slice means the record was retained.
type Verdict struct {
	Algorithm Algorithm `json:"algorithm" yaml:"algorithm"`
	Reasons   []Reason  `json:"reasons,omitempty" yaml:"reasons,omitempty"`
}

// Retained reports whether no exclusion clause fired.
func (v Verdict) Retained() bool { return len(v.Reasons) == 0 }

// Result is the outcome of Filter: the retained records in catalogue order.
type Result struct {
	Candidates []Algorithm `json:"candidates" yaml:"candidates"`
}

// Empty reports the "no candidate satisfies the requirements" state.
// It is a normal outcome, not an error.
func (r Result) Empty() bool { return len(r.Candidates) == 0 }
