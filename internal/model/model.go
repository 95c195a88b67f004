// Package model loads the pre-trained regression artifact and its metadata
// sidecar from local storage. The registry downloader places both files
// before the process starts; nothing here mutates them afterwards.
package model

import (
	"encoding/json"
	"fmt"
	"os"

	"quantumPredict/domain"
)

// Artifact is a file-backed linear regression: prediction is the intercept
// plus the dot product of coefficients and the feature vector.
type Artifact struct {
	intercept float64
	coef      []float64
}

type artifactFile struct {
	Intercept    float64   `json:"intercept"`
	Coefficients []float64 `json:"coefficients"`
}

// Load reads the artifact and the metadata sidecar. Both are required; a
// missing sidecar means the deployment never ran the downloader.
func Load(artifactPath, metadataPath string) (*Artifact, domain.ModelMetadata, error) {
	var meta domain.ModelMetadata

	art, err := loadArtifact(artifactPath)
	if err != nil {
		return nil, meta, err
	}

	raw, err := os.ReadFile(metadataPath)
	if err != nil {
		return nil, meta, fmt.Errorf("reading model metadata %q: %w", metadataPath, err)
	}
	if err := json.Unmarshal(raw, &meta); err != nil {
		return nil, meta, fmt.Errorf("parsing model metadata %q: %w", metadataPath, err)
	}
	if meta.Version == "" {
		return nil, meta, fmt.Errorf("model metadata %q has no version", metadataPath)
	}

	return art, meta, nil
}

func loadArtifact(path string) (*Artifact, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading model artifact %q: %w", path, err)
	}

	var f artifactFile
	if err := json.Unmarshal(raw, &f); err != nil {
		return nil, fmt.Errorf("parsing model artifact %q: %w", path, err)
	}
	if len(f.Coefficients) == 0 {
		return nil, fmt.Errorf("model artifact %q has no coefficients", path)
	}

	return &Artifact{intercept: f.Intercept, coef: f.Coefficients}, nil
}

// New builds an artifact directly from coefficients, mainly for tests.
func New(intercept float64, coef []float64) *Artifact {
	return &Artifact{intercept: intercept, coef: coef}
}

// Dim returns the feature vector length the artifact expects.
func (a *Artifact) Dim() int { return len(a.coef) }

func (a *Artifact) Predict(features []float64) (float64, error) {
	if len(features) != len(a.coef) {
		return 0, fmt.Errorf("feature vector has %d values, model expects %d", len(features), len(a.coef))
	}

	out := a.intercept
	for i, c := range a.coef {
		out += c * features[i]
	}
	return out, nil
}
