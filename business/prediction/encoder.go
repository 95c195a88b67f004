package prediction

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"

	"quantumPredict/domain"
)

// Encode maps a validated record to the fixed-order feature vector the model
// was trained on. Numeric and enum fields are coerced in place, one-hot
// fields expand inline into one indicator slot per category. The result has
// length VectorLen() and is deterministic for a given record.
func (s Schema) Encode(rec domain.Record) ([]float64, error) {
	vec := make([]float64, 0, s.VectorLen())

	for _, f := range s.Fields {
		raw, ok := rec[f.Name]
		if !ok {
			return nil, &domain.MissingFieldError{Field: f.Name}
		}

		switch f.Kind {
		case FieldInt, FieldEnum:
			v, err := coerceInt(raw)
			if err != nil {
				return nil, &domain.TypeCoercionError{Field: f.Name, Value: raw, Target: "int"}
			}
			vec = append(vec, float64(v))

		case FieldFloat:
			v, err := coerceFloat(raw)
			if err != nil {
				return nil, &domain.TypeCoercionError{Field: f.Name, Value: raw, Target: "float"}
			}
			vec = append(vec, v)

		case FieldOneHot:
			val := stringify(raw)
			for _, cat := range f.Categories {
				if val == cat {
					vec = append(vec, 1)
				} else {
					vec = append(vec, 0)
				}
			}
		}
	}

	return vec, nil
}

func coerceInt(raw any) (int, error) {
	switch v := raw.(type) {
	case int:
		return v, nil
	case int64:
		return int(v), nil
	case float64:
		if v != math.Trunc(v) {
			return 0, fmt.Errorf("non-integral value %v", v)
		}
		return int(v), nil
	case json.Number:
		n, err := v.Int64()
		return int(n), err
	case string:
		return strconv.Atoi(v)
	default:
		return 0, fmt.Errorf("unsupported type %T", raw)
	}
}

func coerceFloat(raw any) (float64, error) {
	switch v := raw.(type) {
	case float64:
		return v, nil
	case int:
		return float64(v), nil
	case int64:
		return float64(v), nil
	case json.Number:
		return v.Float64()
	case string:
		return strconv.ParseFloat(v, 64)
	default:
		return 0, fmt.Errorf("unsupported type %T", raw)
	}
}

// stringify renders a raw record value the way it is compared against
// category sets and written to the request log.
func stringify(raw any) string {
	switch v := raw.(type) {
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case json.Number:
		return v.String()
	case int:
		return strconv.Itoa(v)
	case int64:
		return strconv.FormatInt(v, 10)
	case bool:
		return strconv.FormatBool(v)
	default:
		return fmt.Sprintf("%v", v)
	}
}
