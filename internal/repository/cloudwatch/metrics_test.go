package cloudwatch

import (
	"context"
	"errors"
	"testing"

	awscw "github.com/aws/aws-sdk-go-v2/service/cloudwatch"

	"quantumPredict/domain"
)

type fakeCloudWatch struct {
	inputs []*awscw.PutMetricDataInput
	err    error
}

func (f *fakeCloudWatch) PutMetricData(ctx context.Context, params *awscw.PutMetricDataInput, optFns ...func(*awscw.Options)) (*awscw.PutMetricDataOutput, error) {
	f.inputs = append(f.inputs, params)
	if f.err != nil {
		return nil, f.err
	}
	return &awscw.PutMetricDataOutput{}, nil
}

func TestPut(t *testing.T) {
	client := &fakeCloudWatch{}
	emitter := NewEmitter(client)

	err := emitter.Put(context.Background(), "Quantum Finance Features", domain.Metric{
		Name:       "Laptop Feature",
		Value:      1,
		Unit:       "Count",
		Dimensions: map[string]string{"brand": "dell"},
	})
	if err != nil {
		t.Fatalf("put: %v", err)
	}

	if len(client.inputs) != 1 {
		t.Fatalf("PutMetricData called %d times, want 1", len(client.inputs))
	}
	in := client.inputs[0]
	if *in.Namespace != "Quantum Finance Features" {
		t.Errorf("namespace = %q", *in.Namespace)
	}
	if len(in.MetricData) != 1 {
		t.Fatalf("metric data has %d entries, want 1", len(in.MetricData))
	}

	datum := in.MetricData[0]
	if *datum.MetricName != "Laptop Feature" || *datum.Value != 1 {
		t.Errorf("datum = %+v", datum)
	}
	if string(datum.Unit) != "Count" {
		t.Errorf("unit = %q", datum.Unit)
	}
	if len(datum.Dimensions) != 1 || *datum.Dimensions[0].Name != "brand" || *datum.Dimensions[0].Value != "dell" {
		t.Errorf("dimensions = %+v", datum.Dimensions)
	}
}

func TestPutOmitsEmptyUnit(t *testing.T) {
	client := &fakeCloudWatch{}
	emitter := NewEmitter(client)

	if err := emitter.Put(context.Background(), "Quantum Finance Model", domain.Metric{
		Name:  "Price Prediction",
		Value: 4000,
	}); err != nil {
		t.Fatalf("put: %v", err)
	}

	if unit := client.inputs[0].MetricData[0].Unit; unit != "" {
		t.Fatalf("unit = %q, want empty", unit)
	}
}

func TestPutWrapsClientError(t *testing.T) {
	client := &fakeCloudWatch{err: errors.New("throttled")}
	emitter := NewEmitter(client)

	err := emitter.Put(context.Background(), "ns", domain.Metric{Name: "m", Value: 1})
	if err == nil {
		t.Fatal("expected error")
	}
	if !errors.Is(err, client.err) {
		t.Fatalf("error %v does not wrap the client error", err)
	}
}
