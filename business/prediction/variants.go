package prediction

import "fmt"

// Laptop is the laptop-pricing schema. Numeric passthrough fields first,
// then the one-hot groups, matching the column order the price model was
// trained on. Category lists are kept sorted.
func Laptop() Schema {
	return Schema{
		Name:             "laptop",
		TargetColumn:     "price",
		Namespace:        "Quantum Finance",
		PredictionMetric: "Price Prediction",
		FeatureMetric:    "Laptop Feature",
		PredictionDims:   map[string]string{"Currency": "BRL"},
		Fields: []Field{
			{Name: "ram_gb", Kind: FieldInt},
			{Name: "ssd", Kind: FieldInt},
			{Name: "hdd", Kind: FieldInt},
			{Name: "graphic_card", Kind: FieldInt},
			{Name: "warranty", Kind: FieldInt},
			{Name: "brand", Kind: FieldOneHot, Categories: []string{"asus", "dell", "hp", "lenovo", "other"}},
			{Name: "processor_brand", Kind: FieldOneHot, Categories: []string{"amd", "intel", "m1"}},
			{Name: "processor_name", Kind: FieldOneHot, Categories: []string{"core i3", "core i5", "core i7", "other", "ryzen 5", "ryzen 7"}},
			{Name: "os", Kind: FieldOneHot, Categories: []string{"other", "windows"}},
			{Name: "weight", Kind: FieldOneHot, Categories: []string{"casual", "gaming", "thinnlight"}},
			{Name: "touchscreen", Kind: FieldOneHot, Categories: []string{"0", "1"}},
			{Name: "ram_type", Kind: FieldOneHot, Categories: []string{"ddr4", "other"}},
			{Name: "os_bit", Kind: FieldOneHot, Categories: []string{"32", "64"}},
		},
	}
}

// CreditRisk is the credit-scoring schema. Enum fields are validated against
// their permitted set and passed through as plain integers, not expanded.
func CreditRisk() Schema {
	return Schema{
		Name:             "credit",
		TargetColumn:     "prediction",
		Namespace:        "Quantum Finance",
		PredictionMetric: "Risk Prediction",
		FeatureMetric:    "Credit Feature",
		PredictionDims:   map[string]string{"Scale": "Score"},
		Fields: []Field{
			{Name: "Age", Kind: FieldInt},
			{Name: "Annual_Income", Kind: FieldFloat},
			{Name: "Monthly_Inhand_Salary", Kind: FieldFloat},
			{Name: "Num_Bank_Accounts", Kind: FieldInt},
			{Name: "Num_Credit_Card", Kind: FieldInt},
			{Name: "Interest_Rate", Kind: FieldInt},
			{Name: "Num_of_Loan", Kind: FieldInt},
			{Name: "Delay_from_due_date", Kind: FieldInt},
			{Name: "Num_of_Delayed_Payment", Kind: FieldInt},
			{Name: "Outstanding_Debt", Kind: FieldFloat},
			{Name: "Credit_Utilization_Ratio", Kind: FieldFloat},
			{Name: "Credit_History_Age", Kind: FieldInt},
			{Name: "Total_EMI_per_month", Kind: FieldFloat},
			{Name: "Occupation", Kind: FieldEnum, Permitted: intRange(1, 14)},
			{Name: "Credit_Mix", Kind: FieldEnum, Permitted: []int{1, 2, 3}},
			{Name: "Payment_of_Min_Amount", Kind: FieldEnum, Permitted: []int{0, 1}},
			{Name: "Payment_Behaviour", Kind: FieldEnum, Permitted: intRange(1, 6)},
		},
	}
}

// ByName resolves the schema selected by the MODEL_VARIANT config value.
func ByName(name string) (Schema, error) {
	switch name {
	case "laptop":
		return Laptop(), nil
	case "credit":
		return CreditRisk(), nil
	default:
		return Schema{}, fmt.Errorf("unknown model variant %q", name)
	}
}

func intRange(lo, hi int) []int {
	out := make([]int, 0, hi-lo+1)
	for v := lo; v <= hi; v++ {
		out = append(out, v)
	}
	return out
}
