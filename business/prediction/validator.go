package prediction

import (
	"strconv"

	"quantumPredict/domain"
)

// Validate checks the record against the schema before encoding: every field
// must be present, enum fields must hold a permitted integer and one-hot
// fields a known category. It has no observable effect on success.
func (s Schema) Validate(rec domain.Record) error {
	for _, f := range s.Fields {
		raw, ok := rec[f.Name]
		if !ok {
			return &domain.MissingFieldError{Field: f.Name}
		}

		switch f.Kind {
		case FieldEnum:
			v, err := coerceInt(raw)
			if err != nil || !containsInt(f.Permitted, v) {
				return &domain.ValidationError{
					Field:     f.Name,
					Value:     raw,
					Permitted: intStrings(f.Permitted),
				}
			}
		case FieldOneHot:
			if !containsString(f.Categories, stringify(raw)) {
				return &domain.ValidationError{
					Field:     f.Name,
					Value:     raw,
					Permitted: f.Categories,
				}
			}
		}
	}
	return nil
}

func containsInt(set []int, v int) bool {
	for _, s := range set {
		if s == v {
			return true
		}
	}
	return false
}

func containsString(set []string, v string) bool {
	for _, s := range set {
		if s == v {
			return true
		}
	}
	return false
}

func intStrings(set []int) []string {
	out := make([]string, len(set))
	for i, v := range set {
		out[i] = strconv.Itoa(v)
	}
	return out
}
