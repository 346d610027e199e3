package reporter

// Reporter defines the interface for reporting extraction progress and
// results.
type Reporter interface {
	ProbeStarted(info ProbeInfo)
	StreamFound(summary StreamSummary)
	Result(summary ResultSummary)
	Warning(message string)
	Error(err ReporterError)
}

// NullReporter is a no-op reporter that discards all updates.
type NullReporter struct{}

func (NullReporter) ProbeStarted(ProbeInfo)    {}
func (NullReporter) StreamFound(StreamSummary) {}
func (NullReporter) Result(ResultSummary)      {}
func (NullReporter) Warning(string)            {}
func (NullReporter) Error(ReporterError)       {}
