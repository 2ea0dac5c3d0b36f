package events

// Topic constants for domain events emitted by the service.
const (
	TopicReportComputed = "report.computed"
	TopicReportFailed   = "report.failed"
)

// DefaultTopics returns the canonical list of emitted topics.
func DefaultTopics() []string {
	return []string{
		TopicReportComputed,
		TopicReportFailed,
	}
}
