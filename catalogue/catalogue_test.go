package catalogue_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/searchadvisor/catalogue"
)

// names extracts record names, preserving order.
func names(algs []catalogue.Algorithm) []string {
	out := make([]string, 0, len(algs))
	for _, a := range algs {
		out = append(out, a.Name)
	}

	return out
}

// aStar is an informed record used to exercise the heuristic clause.
func aStar() catalogue.Algorithm {
	return catalogue.Algorithm{
		Name:                 "A* search",
		LengthOptimality:     catalogue.LengthNotGuaranteed,
		CostOptimality:       catalogue.CostAdmissibleHeuristic,
		HeuristicRequired:    true,
		HandlesInfinitePaths: true,
		Description:          "best-first search on g(n) + h(n)",
		TimeComplexity:       "O(b^d)",
		SpaceComplexity:      "O(b^d)",
	}
}

func TestDefault_CanonicalRecords(t *testing.T) {
	cat := catalogue.Default()
	require.Equal(t, 4, cat.Len())
	assert.Equal(t, []string{
		catalogue.BreadthFirst,
		catalogue.DepthFirst,
		catalogue.DepthLimited,
		catalogue.IterativeDeepening,
	}, names(cat.Algorithms()))

	cases := []struct {
		name      string
		length    catalogue.LengthOptimality
		cost      catalogue.CostOptimality
		heuristic bool
		infinite  bool
	}{
		{catalogue.BreadthFirst, catalogue.LengthGuaranteed, catalogue.CostNotGuaranteed, false, true},
		{catalogue.DepthFirst, catalogue.LengthNotGuaranteed, catalogue.CostNotGuaranteed, false, false},
		{catalogue.DepthLimited, catalogue.LengthNotGuaranteed, catalogue.CostNotGuaranteed, false, true},
		{catalogue.IterativeDeepening, catalogue.LengthTunable, catalogue.CostNotGuaranteed, false, true},
	}
	for _, tc := range cases {
		alg, ok := cat.Lookup(tc.name)
		require.True(t, ok, tc.name)
		assert.Equal(t, tc.length, alg.LengthOptimality, tc.name)
		assert.Equal(t, tc.cost, alg.CostOptimality, tc.name)
		assert.Equal(t, tc.heuristic, alg.HeuristicRequired, tc.name)
		assert.Equal(t, tc.infinite, alg.HandlesInfinitePaths, tc.name)
		assert.NotEmpty(t, alg.Description, tc.name)
		assert.Equal(t, "O(|V| + |E|)  (V: Number of search nodes, E: Number of edges)", alg.TimeComplexity)
	}

	bfs, _ := cat.Lookup(catalogue.BreadthFirst)
	assert.Equal(t, "O(b^d)    (b: Branching factor, d: Solution depth )", bfs.SpaceComplexity)
	ids, _ := cat.Lookup(catalogue.IterativeDeepening)
	assert.Equal(t, "O(b * h)    (b: Branching factor, h: Maximum depth explored )", ids.SpaceComplexity)
}

func TestDefault_Singleton(t *testing.T) {
	assert.Same(t, catalogue.Default(), catalogue.Default())
}

func TestFilter_Requirements(t *testing.T) {
	cases := []struct {
		name string
		req  catalogue.Requirement
		want []string
	}{
		{
			name: "no requirements",
			req:  catalogue.Requirement{},
			want: []string{catalogue.BreadthFirst, catalogue.DepthFirst, catalogue.DepthLimited, catalogue.IterativeDeepening},
		},
		{
			name: "length optimal",
			req:  catalogue.Requirement{LengthOptimal: true},
			want: []string{catalogue.BreadthFirst, catalogue.IterativeDeepening},
		},
		{
			name: "infinite paths",
			req:  catalogue.Requirement{InfinitePaths: true},
			want: []string{catalogue.BreadthFirst, catalogue.DepthLimited, catalogue.IterativeDeepening},
		},
		{
			name: "cost optimal",
			req:  catalogue.Requirement{CostOptimal: true},
			want: []string{},
		},
		{
			name: "infinite paths and length optimal",
			req:  catalogue.Requirement{InfinitePaths: true, LengthOptimal: true},
			want: []string{catalogue.BreadthFirst, catalogue.IterativeDeepening},
		},
		{
			name: "heuristic available changes nothing",
			req:  catalogue.Requirement{HeuristicAvailable: true, InfinitePaths: true},
			want: []string{catalogue.BreadthFirst, catalogue.DepthLimited, catalogue.IterativeDeepening},
		},
		{
			name: "everything required",
			req:  catalogue.Requirement{HeuristicAvailable: true, InfinitePaths: true, LengthOptimal: true, CostOptimal: true},
			want: []string{},
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			res := catalogue.Default().Filter(tc.req)
			assert.Equal(t, tc.want, names(res.Candidates))
			assert.Equal(t, len(tc.want) == 0, res.Empty())
		})
	}
}

// TestFilter_AllCombinations checks determinism, order preservation and the
// exclusion clauses over all 16 requirement combinations.
func TestFilter_AllCombinations(t *testing.T) {
	cat := catalogue.Default()
	order := map[string]int{}
	for i, a := range cat.Algorithms() {
		order[a.Name] = i
	}

	for mask := 0; mask < 16; mask++ {
		req := catalogue.Requirement{
			HeuristicAvailable: mask&1 != 0,
			InfinitePaths:      mask&2 != 0,
			LengthOptimal:      mask&4 != 0,
			CostOptimal:        mask&8 != 0,
		}
		first := cat.Filter(req)
		second := cat.Filter(req)
		assert.Equal(t, first, second, "mask %d not deterministic", mask)

		for i := 1; i < len(first.Candidates); i++ {
			assert.Less(t, order[first.Candidates[i-1].Name], order[first.Candidates[i].Name], "mask %d order", mask)
		}
		for _, a := range first.Candidates {
			if req.LengthOptimal {
				assert.NotEqual(t, catalogue.LengthNotGuaranteed, a.LengthOptimality)
			}
			if req.InfinitePaths {
				assert.True(t, a.HandlesInfinitePaths)
			}
			if req.CostOptimal {
				assert.NotEqual(t, catalogue.CostNotGuaranteed, a.CostOptimality)
			}
		}
	}
}

func TestFilter_DoesNotMutateCatalogue(t *testing.T) {
	cat := catalogue.Default()
	before := cat.Algorithms()

	res := cat.Filter(catalogue.Requirement{})
	res.Candidates[0].Name = "mutated"
	got := cat.Algorithms()
	got[1].Description = "mutated"

	assert.Equal(t, before, cat.Algorithms())
}

func TestFilter_HeuristicClause(t *testing.T) {
	recs := append(catalogue.Default().Algorithms(), aStar())
	cat, err := catalogue.New(recs...)
	require.NoError(t, err)

	without := cat.Filter(catalogue.Requirement{})
	assert.NotContains(t, names(without.Candidates), "A* search")
	assert.Len(t, without.Candidates, 4)

	with := cat.Filter(catalogue.Requirement{HeuristicAvailable: true})
	assert.Equal(t, "A* search", with.Candidates[len(with.Candidates)-1].Name)

	// admissible-heuristic cost optimality satisfies a cost requirement
	cost := cat.Filter(catalogue.Requirement{HeuristicAvailable: true, CostOptimal: true})
	assert.Equal(t, []string{"A* search"}, names(cost.Candidates))
}

func TestEvaluate_Reasons(t *testing.T) {
	recs := append(catalogue.Default().Algorithms(), aStar())
	cat, err := catalogue.New(recs...)
	require.NoError(t, err)

	req := catalogue.Requirement{InfinitePaths: true, LengthOptimal: true, CostOptimal: true}
	verdicts := cat.Evaluate(req)
	require.Len(t, verdicts, 5)

	want := map[string][]catalogue.Reason{
		catalogue.BreadthFirst:       {catalogue.ReasonNotCostOptimal},
		catalogue.DepthFirst:         {catalogue.ReasonNotLengthOptimal, catalogue.ReasonInfinitePaths, catalogue.ReasonNotCostOptimal},
		catalogue.DepthLimited:       {catalogue.ReasonNotLengthOptimal, catalogue.ReasonNotCostOptimal},
		catalogue.IterativeDeepening: {catalogue.ReasonNotCostOptimal},
		"A* search":                  {catalogue.ReasonHeuristicUnavailable, catalogue.ReasonNotLengthOptimal},
	}
	for _, v := range verdicts {
		assert.Equal(t, want[v.Algorithm.Name], v.Reasons, v.Algorithm.Name)
		assert.False(t, v.Retained())
	}
}

func TestEvaluate_AgreesWithFilter(t *testing.T) {
	cat := catalogue.Default()
	for mask := 0; mask < 16; mask++ {
		req := catalogue.Requirement{
			HeuristicAvailable: mask&1 != 0,
			InfinitePaths:      mask&2 != 0,
			LengthOptimal:      mask&4 != 0,
			CostOptimal:        mask&8 != 0,
		}
		var retained []catalogue.Algorithm
		for _, v := range cat.Evaluate(req) {
			if v.Retained() {
				retained = append(retained, v.Algorithm)
			}
		}
		assert.Equal(t, names(retained), names(cat.Filter(req).Candidates), "mask %d", mask)
	}
}

func TestNew_Errors(t *testing.T) {
	_, err := catalogue.New()
	assert.ErrorIs(t, err, catalogue.ErrEmpty)

	bad := aStar()
	bad.Name = ""
	_, err = catalogue.New(bad)
	assert.ErrorIs(t, err, catalogue.ErrEmptyName)

	_, err = catalogue.New(aStar(), aStar())
	assert.ErrorIs(t, err, catalogue.ErrDuplicateName)

	bad = aStar()
	bad.LengthOptimality = 0
	_, err = catalogue.New(bad)
	assert.ErrorIs(t, err, catalogue.ErrBadOptimality)

	bad = aStar()
	bad.CostOptimality = 42
	_, err = catalogue.New(bad)
	assert.ErrorIs(t, err, catalogue.ErrBadOptimality)
}

func TestLookup_Missing(t *testing.T) {
	_, ok := catalogue.Default().Lookup("Uniform-cost search")
	assert.False(t, ok)
}

func TestFilter_ConcurrentReaders(t *testing.T) {
	cat := catalogue.Default()
	want := names(cat.Filter(catalogue.Requirement{InfinitePaths: true}).Candidates)

	var wg sync.WaitGroup
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			got := names(cat.Filter(catalogue.Requirement{InfinitePaths: true}).Candidates)
			assert.Equal(t, want, got)
		}()
	}
	wg.Wait()
}
