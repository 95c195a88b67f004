package main

import (
	"context"
	"encoding/json"
	"log"

	"github.com/aws/aws-lambda-go/lambda"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	awscw "github.com/aws/aws-sdk-go-v2/service/cloudwatch"
	awss3 "github.com/aws/aws-sdk-go-v2/service/s3"

	"quantumPredict/business/prediction"
	"quantumPredict/internal/event"
	"quantumPredict/internal/model"
	cwrepo "quantumPredict/internal/repository/cloudwatch"
	s3repo "quantumPredict/internal/repository/s3"
	"quantumPredict/pkg/config"
	"quantumPredict/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger.Init(cfg.App.Environment)

	artifact, meta, err := model.Load(cfg.Model.ArtifactPath, cfg.Model.MetadataPath)
	if err != nil {
		logger.Fatal("Failed to load model", "error", err)
	}

	schema, err := prediction.ByName(cfg.Model.Variant)
	if err != nil {
		logger.Fatal("Failed to resolve model variant", "error", err)
	}
	if artifact.Dim() != schema.VectorLen() {
		logger.Fatal("Model does not match schema",
			"model_dim", artifact.Dim(), "schema_dim", schema.VectorLen(), "variant", schema.Name)
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(context.Background(),
		awsconfig.WithRegion(cfg.AWS.Region))
	if err != nil {
		logger.Fatal("Failed to load AWS config", "error", err)
	}

	requestLog := s3repo.NewRequestLogRepository(awss3.NewFromConfig(awsCfg), cfg.Storage.Bucket, cfg.Storage.Prefix)
	emitter := cwrepo.NewEmitter(awscw.NewFromConfig(awsCfg))

	svc, err := prediction.NewService(schema, artifact, meta.Version, emitter, requestLog)
	if err != nil {
		logger.Fatal("Failed to build prediction service", "error", err)
	}

	logger.Info("Lambda handler ready", "variant", schema.Name, "model_version", meta.Version)

	lambda.Start(func(ctx context.Context, raw json.RawMessage) (event.Response, error) {
		return event.Handle(ctx, svc, raw), nil
	})
}
