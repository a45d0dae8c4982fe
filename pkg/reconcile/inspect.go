package reconcile

import (
	"context"
	"fmt"

	"github.com/oneconcern/vaultmon/pkg/frontmatter"
	"github.com/oneconcern/vaultmon/pkg/hierarchy"
	"github.com/oneconcern/vaultmon/pkg/reconcile/status"
	"github.com/oneconcern/vaultmon/pkg/storage"
)

// FieldReport compares the value a document declares for a hierarchy field with the resolved one
type FieldReport struct {
	Field       string          `json:"field" yaml:"field"`
	Existing    string          `json:"existing,omitempty" yaml:"existing,omitempty"`
	HasExisting bool            `json:"hasExisting" yaml:"hasExisting"`
	Resolved    hierarchy.Value `json:"resolved" yaml:"resolved"`
}

// Stale is true when reconciliation would rewrite the field
func (f FieldReport) Stale() bool {
	return f.Resolved.Resolved() && (!f.HasExisting || f.Existing != f.Resolved.Value)
}

// Inspection of a document's hierarchy
type Inspection struct {
	Path        string             `json:"path" yaml:"path"`
	Marker      bool               `json:"marker" yaml:"marker"`
	MarkerLevel hierarchy.Level    `json:"markerLevel,omitempty" yaml:"markerLevel,omitempty"`
	Recovered   bool               `json:"recovered" yaml:"recovered"`
	Markers     []hierarchy.Marker `json:"markers,omitempty" yaml:"markers,omitempty"`
	Fields      []FieldReport      `json:"fields" yaml:"fields"`
}

// Inspect a document: its declared and resolved hierarchy, and the markers seen from its location.
// Markers are inspected like any other document.
func (e *Engine) Inspect(ctx context.Context, key string, rctx hierarchy.Context) (Inspection, error) {
	ins := Inspection{Path: key}

	b, err := storage.ReadAll(ctx, e.store, key)
	if err != nil {
		return ins, status.ErrRead.Wrap(err)
	}
	doc := e.codec.Parse(b)
	ins.Recovered = doc.Recovered
	ins.MarkerLevel, ins.Marker = hierarchy.MarkerLevel(doc.Header)

	info, err := e.resolver.Resolve(ctx, key, rctx)
	if err != nil {
		return ins, status.ErrResolve.Wrap(err)
	}
	ins.Markers, err = e.resolver.Markers(ctx, key, rctx)
	if err != nil {
		return ins, status.ErrResolve.Wrap(err)
	}

	for _, l := range hierarchy.Fields {
		ins.Fields = append(ins.Fields, report(doc.Header, l, info.Get(l)))
	}
	return ins, nil
}

func report(h *frontmatter.Header, l hierarchy.Level, resolved hierarchy.Value) FieldReport {
	r := FieldReport{Field: l.Field(), Resolved: resolved}
	v, ok := h.Get(l.Field())
	if !ok {
		return r
	}
	r.HasExisting = true
	if s, isScalar := frontmatter.Scalar(v); isScalar {
		r.Existing = s
	} else {
		r.Existing = fmt.Sprint(v)
	}
	return r
}
