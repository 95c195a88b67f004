//go:build !integration

package prediction

import (
	"errors"
	"strings"
	"testing"

	"quantumPredict/domain"
)

func TestValidateAcceptsValidRecords(t *testing.T) {
	if err := Laptop().Validate(validLaptopRecord()); err != nil {
		t.Fatalf("laptop record rejected: %v", err)
	}
	if err := CreditRisk().Validate(validCreditRecord()); err != nil {
		t.Fatalf("credit record rejected: %v", err)
	}
}

func TestValidateMissingField(t *testing.T) {
	rec := validLaptopRecord()
	delete(rec, "processor_name")

	err := Laptop().Validate(rec)

	var missing *domain.MissingFieldError
	if !errors.As(err, &missing) {
		t.Fatalf("error = %v, want MissingFieldError", err)
	}
	if missing.Field != "processor_name" {
		t.Fatalf("error names field %q, want processor_name", missing.Field)
	}

	// A missing field is not a validation error; the two must stay
	// distinguishable for callers.
	var invalid *domain.ValidationError
	if errors.As(err, &invalid) {
		t.Fatal("MissingFieldError also matched ValidationError")
	}
}

func TestValidateCategoricalRejections(t *testing.T) {
	tests := []struct {
		name   string
		schema Schema
		field  string
		value  any
	}{
		{"unknown laptop brand", Laptop(), "brand", "apple"},
		{"unknown processor", Laptop(), "processor_name", "core i9"},
		{"credit mix out of set", CreditRisk(), "Credit_Mix", 9},
		{"occupation out of range", CreditRisk(), "Occupation", 15},
		{"occupation not a number", CreditRisk(), "Occupation", "engineer"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var rec domain.Record
			if tt.schema.Name == "laptop" {
				rec = validLaptopRecord()
			} else {
				rec = validCreditRecord()
			}
			rec[tt.field] = tt.value

			err := tt.schema.Validate(rec)

			var invalid *domain.ValidationError
			if !errors.As(err, &invalid) {
				t.Fatalf("error = %v, want ValidationError", err)
			}
			if invalid.Field != tt.field {
				t.Fatalf("error names field %q, want %q", invalid.Field, tt.field)
			}
			if len(invalid.Permitted) == 0 {
				t.Fatal("error carries no permitted set")
			}
			if !strings.Contains(err.Error(), tt.field) {
				t.Fatalf("message %q does not mention field %q", err.Error(), tt.field)
			}
		})
	}
}

func TestValidateIsPure(t *testing.T) {
	rec := validLaptopRecord()
	if err := Laptop().Validate(rec); err != nil {
		t.Fatalf("validate: %v", err)
	}
	if len(rec) != len(validLaptopRecord()) {
		t.Fatal("validate mutated the record")
	}
}
