package prediction

import "fmt"

type FieldKind int

const (
	// FieldInt and FieldFloat pass the coerced value straight into the vector.
	FieldInt FieldKind = iota
	FieldFloat
	// FieldEnum coerces to int, checks membership in Permitted, then passes
	// the value through.
	FieldEnum
	// FieldOneHot expands into one 0/1 slot per category, in Categories order.
	FieldOneHot
)

type Field struct {
	Name string
	Kind FieldKind

	// Categories holds the permitted values of a FieldOneHot field, sorted
	// lexicographically so the vector layout is stable across runs.
	Categories []string

	// Permitted holds the allowed integer values of a FieldEnum field.
	Permitted []int
}

// Schema is the full recipe for one model variant: field order, coercion
// rules and category sets. The field order here is the order the model was
// trained on; no field names travel with the vector past encoding.
type Schema struct {
	// Name is the dataset name used in the log object key.
	Name string

	// TargetColumn is the CSV column holding the prediction
	// ("price" for laptop, "prediction" for credit).
	TargetColumn string

	// Namespace is the base metric namespace; "<Namespace> Model" carries the
	// prediction metric and "<Namespace> Features" the per-feature counts.
	Namespace string

	// PredictionMetric names the per-prediction data point, FeatureMetric the
	// per-feature count.
	PredictionMetric string
	FeatureMetric    string

	// PredictionDims are fixed dimensions attached to the prediction metric.
	PredictionDims map[string]string

	Fields []Field
}

// VectorLen returns the encoded vector length: one slot per numeric or enum
// field, one slot per category of each one-hot field.
func (s Schema) VectorLen() int {
	n := 0
	for _, f := range s.Fields {
		if f.Kind == FieldOneHot {
			n += len(f.Categories)
		} else {
			n++
		}
	}
	return n
}

// Columns returns the raw field names in recipe order, used as the leading
// CSV header columns of the request log.
func (s Schema) Columns() []string {
	cols := make([]string, len(s.Fields))
	for i, f := range s.Fields {
		cols[i] = f.Name
	}
	return cols
}

func (s Schema) validate() error {
	if s.Name == "" {
		return fmt.Errorf("schema has no dataset name")
	}
	for _, f := range s.Fields {
		switch f.Kind {
		case FieldOneHot:
			if len(f.Categories) == 0 {
				return fmt.Errorf("one-hot field %q has no categories", f.Name)
			}
		case FieldEnum:
			if len(f.Permitted) == 0 {
				return fmt.Errorf("enum field %q has no permitted values", f.Name)
			}
		}
	}
	return nil
}
