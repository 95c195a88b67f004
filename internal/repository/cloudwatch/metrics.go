package cloudwatch

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	awscw "github.com/aws/aws-sdk-go-v2/service/cloudwatch"
	"github.com/aws/aws-sdk-go-v2/service/cloudwatch/types"

	"quantumPredict/domain"
)

// API is the slice of the CloudWatch client the emitter uses.
type API interface {
	PutMetricData(ctx context.Context, params *awscw.PutMetricDataInput, optFns ...func(*awscw.Options)) (*awscw.PutMetricDataOutput, error)
}

// Emitter writes prediction and feature telemetry as CloudWatch custom
// metrics, one data point per call.
type Emitter struct {
	client API
}

func NewEmitter(client API) *Emitter {
	return &Emitter{client: client}
}

func (e *Emitter) Put(ctx context.Context, namespace string, m domain.Metric) error {
	datum := types.MetricDatum{
		MetricName: aws.String(m.Name),
		Value:      aws.Float64(m.Value),
	}
	if m.Unit != "" {
		datum.Unit = types.StandardUnit(m.Unit)
	}
	for name, value := range m.Dimensions {
		datum.Dimensions = append(datum.Dimensions, types.Dimension{
			Name:  aws.String(name),
			Value: aws.String(value),
		})
	}

	_, err := e.client.PutMetricData(ctx, &awscw.PutMetricDataInput{
		Namespace:  aws.String(namespace),
		MetricData: []types.MetricDatum{datum},
	})
	if err != nil {
		return fmt.Errorf("putting metric %q in namespace %q: %w", m.Name, namespace, err)
	}
	return nil
}
