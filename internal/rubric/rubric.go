// Package rubric models the configurable call-grading rubric: weighted
// categories of point-valued criteria, red flags and bonuses. A rubric is an
// explicit document loaded from yaml and passed by value; there is no ambient
// session state to edit.
package rubric

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

type Criterion struct {
	Label  string  `yaml:"label" json:"label"`
	Points float64 `yaml:"points" json:"points"`
}

type Category struct {
	Name     string      `yaml:"name" json:"name"`
	Weight   float64     `yaml:"weight" json:"weight"`
	Criteria []Criterion `yaml:"criteria" json:"criteria"`
}

type RedFlag struct {
	Label   string  `yaml:"label" json:"label"`
	Penalty float64 `yaml:"penalty" json:"penalty"`
}

type Bonus struct {
	Label  string  `yaml:"label" json:"label"`
	Points float64 `yaml:"points" json:"points"`
}

// Rubric is one complete grading rubric document.
type Rubric struct {
	Title      string     `yaml:"title" json:"title"`
	Scale      string     `yaml:"scale,omitempty" json:"scale,omitempty"`
	Categories []Category `yaml:"categories" json:"categories"`
	RedFlags   []RedFlag  `yaml:"red_flags,omitempty" json:"red_flags,omitempty"`
	Bonuses    []Bonus    `yaml:"bonuses,omitempty" json:"bonuses,omitempty"`
}

// Load reads a rubric document from a yaml file.
func Load(path string) (Rubric, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Rubric{}, fmt.Errorf("read rubric: %w", err)
	}
	return Parse(data)
}

// Parse decodes a yaml rubric document.
func Parse(data []byte) (Rubric, error) {
	var r Rubric
	if err := yaml.Unmarshal(data, &r); err != nil {
		return Rubric{}, fmt.Errorf("parse rubric: %w", err)
	}
	return r, nil
}

// MaxPoints is the best achievable score: per-category criterion points scaled
// by the category weight (weight 0 counts as 1), plus all bonuses.
func (r Rubric) MaxPoints() float64 {
	var total float64
	for _, c := range r.Categories {
		w := c.Weight
		if w == 0 {
			w = 1
		}
		var pts float64
		for _, cr := range c.Criteria {
			pts += cr.Points
		}
		total += w * pts
	}
	for _, b := range r.Bonuses {
		total += b.Points
	}
	return total
}

// DisplayTitle is the rubric title with a fixed fallback.
func (r Rubric) DisplayTitle() string {
	if r.Title == "" {
		return "CALL GRADING RUBRIC"
	}
	return r.Title
}

// Render produces the rubric in the same line-oriented style as the formatted
// transcript, so both can sit side by side in the grading prompt.
func (r Rubric) Render() string {
	var lines []string
	lines = append(lines, "=== "+strings.ToUpper(r.DisplayTitle())+" ===")
	if r.Scale != "" {
		lines = append(lines, "Scale: "+r.Scale)
	}
	lines = append(lines, "")
	for _, c := range r.Categories {
		lines = append(lines, fmt.Sprintf("-- %s (weight %s) --", c.Name, FormatPoints(c.Weight)))
		for _, cr := range c.Criteria {
			lines = append(lines, fmt.Sprintf("%s | %s pts", cr.Label, FormatPoints(cr.Points)))
		}
		lines = append(lines, "")
	}
	if len(r.RedFlags) > 0 {
		lines = append(lines, "-- RED FLAGS --")
		for _, f := range r.RedFlags {
			lines = append(lines, fmt.Sprintf("%s | -%s pts", f.Label, FormatPoints(f.Penalty)))
		}
		lines = append(lines, "")
	}
	if len(r.Bonuses) > 0 {
		lines = append(lines, "-- BONUSES --")
		for _, b := range r.Bonuses {
			lines = append(lines, fmt.Sprintf("%s | +%s pts", b.Label, FormatPoints(b.Points)))
		}
		lines = append(lines, "")
	}
	lines = append(lines, fmt.Sprintf("Maximum score: %s pts", FormatPoints(r.MaxPoints())))
	return strings.Join(lines, "\n")
}

// FormatPoints renders a point value without trailing zeros.
func FormatPoints(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
