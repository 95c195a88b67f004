//go:build !integration

package prediction

import (
	"errors"
	"math/rand"
	"strconv"
	"testing"

	"quantumPredict/domain"
)

func validLaptopRecord() domain.Record {
	return domain.Record{
		"brand":           "dell",
		"processor_brand": "intel",
		"processor_name":  "core i5",
		"os":              "windows",
		"weight":          "casual",
		"warranty":        "2",
		"touchscreen":     "0",
		"ram_gb":          "16",
		"hdd":             "0",
		"ssd":             "256",
		"graphic_card":    "8",
		"ram_type":        "ddr4",
		"os_bit":          "64",
	}
}

func validCreditRecord() domain.Record {
	return domain.Record{
		"Age":                      34,
		"Annual_Income":            84000.5,
		"Monthly_Inhand_Salary":    6400.25,
		"Num_Bank_Accounts":        2,
		"Num_Credit_Card":          3,
		"Interest_Rate":            12,
		"Num_of_Loan":              1,
		"Delay_from_due_date":      4,
		"Num_of_Delayed_Payment":   0,
		"Outstanding_Debt":         1200.75,
		"Credit_Utilization_Ratio": 31.2,
		"Credit_History_Age":       96,
		"Total_EMI_per_month":      230.0,
		"Occupation":               7,
		"Credit_Mix":               2,
		"Payment_of_Min_Amount":    1,
		"Payment_Behaviour":        3,
	}
}

// randomLaptopRecord draws every categorical field from its own category set
// and every numeric field from a plausible range.
func randomLaptopRecord(rng *rand.Rand) domain.Record {
	rec := domain.Record{
		"ram_gb":       strconv.Itoa(4 * (1 + rng.Intn(8))),
		"ssd":          strconv.Itoa(128 * rng.Intn(9)),
		"hdd":          strconv.Itoa(500 * rng.Intn(5)),
		"graphic_card": strconv.Itoa(2 * rng.Intn(5)),
		"warranty":     strconv.Itoa(rng.Intn(4)),
	}
	for _, f := range Laptop().Fields {
		if f.Kind == FieldOneHot {
			rec[f.Name] = f.Categories[rng.Intn(len(f.Categories))]
		}
	}
	return rec
}

func TestVectorLengthConstants(t *testing.T) {
	if got := Laptop().VectorLen(); got != 30 {
		t.Fatalf("laptop vector length = %d, want 30", got)
	}
	if got := CreditRisk().VectorLen(); got != 17 {
		t.Fatalf("credit vector length = %d, want 17", got)
	}
}

func TestEncodeLengthInvariant(t *testing.T) {
	schema := Laptop()
	rng := rand.New(rand.NewSource(42))

	for i := 0; i < 200; i++ {
		rec := randomLaptopRecord(rng)
		vec, err := schema.Encode(rec)
		if err != nil {
			t.Fatalf("encode failed for %v: %v", rec, err)
		}
		if len(vec) != schema.VectorLen() {
			t.Fatalf("vector length = %d, want %d for %v", len(vec), schema.VectorLen(), rec)
		}
	}
}

func TestEncodeDeterministic(t *testing.T) {
	schema := Laptop()
	rec := validLaptopRecord()

	first, err := schema.Encode(rec)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	second, err := schema.Encode(rec)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}

	for i := range first {
		if first[i] != second[i] {
			t.Fatalf("slot %d differs between runs: %v vs %v", i, first[i], second[i])
		}
	}
}

func TestEncodeKnownLayout(t *testing.T) {
	schema := Laptop()
	vec, err := schema.Encode(validLaptopRecord())
	if err != nil {
		t.Fatalf("encode: %v", err)
	}

	wantNumeric := []float64{16, 256, 0, 8, 2}
	for i, want := range wantNumeric {
		if vec[i] != want {
			t.Errorf("numeric slot %d = %v, want %v", i, vec[i], want)
		}
	}

	// brand group starts right after the numeric block; "dell" is the
	// second category of {asus, dell, hp, lenovo, other}.
	wantBrand := []float64{0, 1, 0, 0, 0}
	for i, want := range wantBrand {
		if vec[5+i] != want {
			t.Errorf("brand slot %d = %v, want %v", i, vec[5+i], want)
		}
	}
}

func TestOneHotExclusive(t *testing.T) {
	schema := Laptop()
	rng := rand.New(rand.NewSource(7))

	for i := 0; i < 100; i++ {
		rec := randomLaptopRecord(rng)
		vec, err := schema.Encode(rec)
		if err != nil {
			t.Fatalf("encode failed for %v: %v", rec, err)
		}

		offset := 0
		for _, f := range schema.Fields {
			if f.Kind != FieldOneHot {
				offset++
				continue
			}
			sum := 0.0
			for j := 0; j < len(f.Categories); j++ {
				v := vec[offset+j]
				if v != 0 && v != 1 {
					t.Fatalf("field %q slot %d = %v, want 0 or 1", f.Name, j, v)
				}
				sum += v
			}
			if sum != 1 {
				t.Fatalf("field %q has %v hot slots, want exactly 1 (record %v)", f.Name, sum, rec)
			}
			offset += len(f.Categories)
		}
	}
}

func TestEncodeCreditPassthrough(t *testing.T) {
	schema := CreditRisk()
	vec, err := schema.Encode(validCreditRecord())
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	if len(vec) != 17 {
		t.Fatalf("vector length = %d, want 17", len(vec))
	}
	// Enum fields carry their raw value, no expansion.
	if vec[13] != 7 || vec[14] != 2 || vec[15] != 1 || vec[16] != 3 {
		t.Fatalf("enum tail = %v, want [7 2 1 3]", vec[13:])
	}
}

func TestEncodeCoercionError(t *testing.T) {
	schema := Laptop()
	rec := validLaptopRecord()
	rec["ram_gb"] = "lots"

	_, err := schema.Encode(rec)

	var coercion *domain.TypeCoercionError
	if !errors.As(err, &coercion) {
		t.Fatalf("error = %v, want TypeCoercionError", err)
	}
	if coercion.Field != "ram_gb" {
		t.Fatalf("error names field %q, want ram_gb", coercion.Field)
	}
}
