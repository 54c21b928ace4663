package query

import "logdash/internal/table"

// ProjectionSpec names the columns a chart wants plotted. Color and Size
// are optional; empty means the chart does not use that channel.
type ProjectionSpec struct {
	X     string
	Y     string
	Color string
	Size  string
}

// Projection carries the column values a chart renderer consumes. The
// engine guarantees the requested columns exist; whether the renderer
// treats them as numeric or categorical is its own concern, except Size,
// which must be numeric to scale markers.
type Projection struct {
	Spec  ProjectionSpec
	X     []interface{}
	Y     []interface{}
	Color []interface{}
	Size  []interface{}
}

// Project extracts the requested column projections from a table.
// A missing column yields *MissingColumnError and no projection.
func Project(t *table.Table, spec ProjectionSpec) (*Projection, error) {
	required := []string{spec.X, spec.Y}
	optional := []string{spec.Color, spec.Size}

	for _, col := range required {
		if col == "" || !t.HasColumn(col) {
			return nil, &MissingColumnError{Column: col}
		}
	}
	for _, col := range optional {
		if col != "" && !t.HasColumn(col) {
			return nil, &MissingColumnError{Column: col}
		}
	}

	p := &Projection{
		Spec: spec,
		X:    t.Column(spec.X),
		Y:    t.Column(spec.Y),
	}
	if spec.Color != "" {
		p.Color = t.Column(spec.Color)
	}
	if spec.Size != "" {
		p.Size = t.Column(spec.Size)
	}
	return p, nil
}
