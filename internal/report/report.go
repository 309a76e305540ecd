// Package report renders collocation results for the terminal (lipgloss
// tables and an ASCII chart) and serializes them as YAML or JSON.
package report

import (
	"encoding/json"
	"fmt"
	"math"

	"github.com/katalvlaran/colloc/bvp"
	"gopkg.in/yaml.v3"
)

// Point is one node of a solution.
type Point struct {
	T      float64  `json:"t" yaml:"t"`
	Y      float64  `json:"y" yaml:"y"`
	Exact  *float64 `json:"exact,omitempty" yaml:"exact,omitempty"`
	AbsErr *float64 `json:"abs_err,omitempty" yaml:"abs_err,omitempty"`
}

// ProblemReport is the serializable form of a bvp.Solution.
type ProblemReport struct {
	Name         string       `json:"name" yaml:"name"`
	Title        string       `json:"title,omitempty" yaml:"title,omitempty"`
	Equation     string       `json:"equation,omitempty" yaml:"equation,omitempty"`
	Domain       [2]float64   `json:"domain" yaml:"domain,flow"`
	Boundary     [2]float64   `json:"boundary" yaml:"boundary,flow"`
	Nodes        int          `json:"nodes" yaml:"nodes"`
	Coefficients []float64    `json:"coefficients" yaml:"coefficients,flow"`
	Points       []Point      `json:"points" yaml:"points"`
	Residual     float64      `json:"midpoint_residual" yaml:"midpoint_residual"`
	Metrics      *bvp.Metrics `json:"metrics,omitempty" yaml:"metrics,omitempty"`
}

// StudyReport is the serializable form of a convergence study.
type StudyReport struct {
	Name     string           `json:"name" yaml:"name"`
	Points   []bvp.StudyPoint `json:"points" yaml:"points"`
	Monotone bool             `json:"monotone" yaml:"monotone"`
}

// FromSolution converts sol into a ProblemReport. Exact values and metrics
// are filled only when the problem has a closed-form solution.
func FromSolution(sol *bvp.Solution) (ProblemReport, error) {
	p := sol.Problem
	r := ProblemReport{
		Name:         p.Name,
		Title:        p.Title,
		Equation:     p.Equation,
		Domain:       [2]float64{p.A, p.B},
		Boundary:     [2]float64{p.Ya, p.Yb},
		Nodes:        sol.N(),
		Coefficients: append([]float64(nil), sol.Coefficients...),
		Points:       make([]Point, sol.N()),
	}
	for i, t := range sol.Nodes {
		r.Points[i] = Point{T: t, Y: sol.Values[i]}
	}
	res, err := bvp.MidpointResidual(sol)
	if err != nil {
		return ProblemReport{}, err
	}
	r.Residual = res
	if !p.HasExact() {
		return r, nil
	}

	exact, err := sol.ExactValues()
	if err != nil {
		return ProblemReport{}, err
	}
	for i := range r.Points {
		e := exact[i]
		d := math.Abs(r.Points[i].Y - e)
		r.Points[i].Exact, r.Points[i].AbsErr = &e, &d
	}
	m, err := bvp.Compare(sol)
	if err != nil {
		return ProblemReport{}, err
	}
	r.Metrics = &m

	return r, nil
}

// FromStudy converts convergence points into a StudyReport.
func FromStudy(name string, points []bvp.StudyPoint) StudyReport {
	return StudyReport{Name: name, Points: points, Monotone: bvp.Monotone(points)}
}

// Marshal encodes v as "yaml" or "json".
func Marshal(v any, format string) ([]byte, error) {
	switch format {
	case "yaml":
		return yaml.Marshal(v)
	case "json":
		out, err := json.MarshalIndent(v, "", "  ")
		if err != nil {
			return nil, err
		}
		return append(out, '\n'), nil
	default:
		return nil, fmt.Errorf("report: unsupported format %q", format)
	}
}
