package model

// Health is the payload returned by GET /health. The cluster's probes and
// the pipeline's smoke tests key off Status; Timestamp and Version let an
// operator confirm which build is live and that the clock is sane.
type Health struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
	App       string `json:"app"`
	Version   string `json:"version"`
}
