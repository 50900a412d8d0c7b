// Package catalogue is a small decision table of graph-search algorithms and
// the filter that narrows it down for a given problem.
//
// What
//
//   - Algorithm records carry four capability flags: length optimality,
//     cost optimality (both tri-state), whether a heuristic is required, and
//     whether infinite-length paths are handled.
//   - Requirement carries the four yes/no answers describing a problem.
//   - Filter eliminates every record that cannot satisfy the Requirement and
//     returns the survivors in declaration order.
//   - Evaluate reports, per record, which clauses eliminated it.
//
// Exclusion clauses
//
//  1. no heuristic available       && record requires one            → excluded
//  2. length-optimal required      && LengthNotGuaranteed            → excluded
//  3. infinite paths present       && record does not handle them    → excluded
//  4. cost-optimal required        && CostNotGuaranteed              → excluded
//
// LengthTunable and CostAdmissibleHeuristic never exclude: suitable tuning or
// pairing with an admissible heuristic is possible. Clause 1 never fires on
// the canonical records (none requires a heuristic); it applies as soon as an
// informed algorithm such as A* is added.
//
// Canonical catalogue
//
//	name                        length          cost            heuristic  infinite
//	Breadth-first search        guaranteed      not-guaranteed  no         yes
//	Depth-first search          not-guaranteed  not-guaranteed  no         no
//	Depth-limited search        not-guaranteed  not-guaranteed  no         yes
//	Iterative deepening search  tunable         not-guaranteed  no         yes
//
// Determinism
//
//	Filter and Evaluate are pure, total functions of (catalogue, requirement).
//	A Catalogue is never mutated after New, so concurrent readers need no locks.
//
// Usage
//
//	res := catalogue.Default().Filter(catalogue.Requirement{LengthOptimal: true})
//	if res.Empty() {
//	    // no candidate satisfies the requirements
//	}
//	for _, alg := range res.Candidates {
//	    fmt.Println(alg.Name)
//	}
package catalogue
