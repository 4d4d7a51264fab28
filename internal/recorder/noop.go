package recorder

// NoopRecorder is a no-op implementation used when SQLite is not configured.
type NoopRecorder struct{}

func NewNoopRecorder() *NoopRecorder { return &NoopRecorder{} }

func (n *NoopRecorder) RecordGain(_ *GainRecord) error   { return nil }
func (n *NoopRecorder) RecordChart(_ *ChartRecord) error { return nil }
func (n *NoopRecorder) Close() error                     { return nil }
