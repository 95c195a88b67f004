package domain

// ModelMetadata is the sidecar written by the registry downloader next to
// the model artifact. Loaded once at process start, immutable afterwards.
type ModelMetadata struct {
	ModelName    string `json:"model_name"`
	Version      string `json:"version"`
	RunID        string `json:"run_id"`
	Source       string `json:"source"`
	DownloadedAt string `json:"downloaded_at"`
}
