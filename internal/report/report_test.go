package report_test

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/katalvlaran/colloc/bvp"
	"github.com/katalvlaran/colloc/internal/report"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func solveB(t *testing.T, n int) *bvp.Solution {
	t.Helper()
	sol, err := bvp.Solve(bvp.ProblemB(), n)
	require.NoError(t, err)
	return sol
}

func TestFromSolution(t *testing.T) {
	sol := solveB(t, 6)
	r, err := report.FromSolution(sol)
	require.NoError(t, err)

	assert.Equal(t, "b", r.Name)
	assert.Equal(t, 6, r.Nodes)
	assert.Equal(t, [2]float64{0, 1}, r.Domain)
	assert.Positive(t, r.Residual)
	require.Len(t, r.Points, 6)
	require.NotNil(t, r.Metrics)
	for _, p := range r.Points {
		require.NotNil(t, p.Exact)
		require.NotNil(t, p.AbsErr)
		assert.LessOrEqual(t, *p.AbsErr, r.Metrics.MaxAbs)
	}

	p := bvp.ProblemB()
	p.Exact = nil
	bare, err := bvp.Solve(p, 4)
	require.NoError(t, err)
	r, err = report.FromSolution(bare)
	require.NoError(t, err)
	assert.Nil(t, r.Metrics)
	assert.Nil(t, r.Points[0].Exact)
}

func TestMarshal(t *testing.T) {
	r, err := report.FromSolution(solveB(t, 4))
	require.NoError(t, err)

	out, err := report.Marshal(r, "json")
	require.NoError(t, err)
	var back report.ProblemReport
	require.NoError(t, json.Unmarshal(out, &back))
	assert.Equal(t, r.Name, back.Name)
	assert.Equal(t, r.Nodes, back.Nodes)

	out, err = report.Marshal(r, "yaml")
	require.NoError(t, err)
	var generic map[string]any
	require.NoError(t, yaml.Unmarshal(out, &generic))
	assert.Equal(t, "b", generic["name"])
	assert.Contains(t, string(out), "domain: [0, 1]")
	assert.Contains(t, generic, "midpoint_residual")

	_, err = report.Marshal(r, "xml")
	assert.Error(t, err)
}

func TestTable(t *testing.T) {
	r, err := report.FromSolution(solveB(t, 5))
	require.NoError(t, err)

	out := report.Table(r)
	assert.Contains(t, out, "Problem b: Exponential decay")
	assert.Contains(t, out, "collocation")
	assert.Contains(t, out, "max |error|")
	assert.Contains(t, out, "max |equation residual| between nodes")
	// Header plus one line per node at least.
	assert.GreaterOrEqual(t, strings.Count(out, "\n"), 5+2)
}

func TestStudyTable(t *testing.T) {
	points := []bvp.StudyPoint{
		{N: 4, Metrics: bvp.Metrics{MaxAbs: 0.3}},
		{N: 6, Metrics: bvp.Metrics{MaxAbs: 0.01}},
	}
	s := report.FromStudy("b", points)
	assert.True(t, s.Monotone)

	out := report.StudyTable(s)
	assert.Contains(t, out, "Convergence: problem b")
	assert.Contains(t, out, "3.000e-01")
	assert.Contains(t, out, "strictly decreasing: yes")
}

func TestChart(t *testing.T) {
	out, err := report.Chart(solveB(t, 8), 40, 10)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	assert.GreaterOrEqual(t, len(lines), 10, "one line per plot row at least")
	assert.Contains(t, out, "┤")
	// y(0) = e³ is the largest value on the curve and labels the top row.
	assert.Contains(t, out, "20.09")
	assert.Contains(t, out, "y(t), t in [0, 1]")
	assert.Equal(t, "red: collocation  blue: exact  o boundary: y(0) = 20.09, y(1) = 1", lines[len(lines)-1])

	p := bvp.ProblemB()
	p.Exact = nil
	bare, err := bvp.Solve(p, 4)
	require.NoError(t, err)
	small, err := report.Chart(bare, 1, 1)
	require.NoError(t, err)
	assert.NotContains(t, small, "blue: exact")
	assert.GreaterOrEqual(t, len(strings.Split(strings.TrimRight(small, "\n"), "\n")), 4)
}
