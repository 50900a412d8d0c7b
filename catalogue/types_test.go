package catalogue_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/searchadvisor/catalogue"
)

func TestOptimality_String(t *testing.T) {
	assert.Equal(t, "guaranteed", catalogue.LengthGuaranteed.String())
	assert.Equal(t, "not-guaranteed", catalogue.LengthNotGuaranteed.String())
	assert.Equal(t, "tunable", catalogue.LengthTunable.String())
	assert.Equal(t, "unknown", catalogue.LengthOptimality(0).String())

	assert.Equal(t, "guaranteed", catalogue.CostGuaranteed.String())
	assert.Equal(t, "not-guaranteed", catalogue.CostNotGuaranteed.String())
	assert.Equal(t, "admissible-heuristic", catalogue.CostAdmissibleHeuristic.String())
	assert.Equal(t, "unknown", catalogue.CostOptimality(9).String())
}

func TestOptimality_TextErrors(t *testing.T) {
	_, err := catalogue.LengthOptimality(0).MarshalText()
	assert.ErrorIs(t, err, catalogue.ErrBadOptimality)

	var l catalogue.LengthOptimality
	assert.ErrorIs(t, l.UnmarshalText([]byte("sometimes")), catalogue.ErrBadOptimality)
	require.NoError(t, l.UnmarshalText([]byte("tunable")))
	assert.Equal(t, catalogue.LengthTunable, l)

	var c catalogue.CostOptimality
	assert.ErrorIs(t, c.UnmarshalText([]byte("")), catalogue.ErrBadOptimality)
	require.NoError(t, c.UnmarshalText([]byte("admissible-heuristic")))
	assert.Equal(t, catalogue.CostAdmissibleHeuristic, c)
}

func TestAlgorithm_Encoding(t *testing.T) {
	ids, ok := catalogue.Default().Lookup(catalogue.IterativeDeepening)
	require.True(t, ok)

	js, err := json.Marshal(ids)
	require.NoError(t, err)
	assert.Contains(t, string(js), `"length_optimality":"tunable"`)
	assert.Contains(t, string(js), `"cost_optimality":"not-guaranteed"`)

	var back catalogue.Algorithm
	require.NoError(t, yaml.Unmarshal(mustYAML(t, ids), &back))
	assert.Equal(t, ids, back)
}

func TestVerdict_ReasonsEncodeAsText(t *testing.T) {
	v := catalogue.Default().Evaluate(catalogue.Requirement{InfinitePaths: true})[1]
	js, err := json.Marshal(v)
	require.NoError(t, err)
	assert.Contains(t, string(js), catalogue.ReasonInfinitePaths.String())
}

func TestReason_String(t *testing.T) {
	assert.Equal(t, "does not guarantee a lowest-cost solution", catalogue.ReasonNotCostOptimal.String())
	assert.Equal(t, "reason(0)", catalogue.Reason(0).String())
}

func mustYAML(t *testing.T, v any) []byte {
	t.Helper()
	out, err := yaml.Marshal(v)
	require.NoError(t, err)

	return out
}
