package models

// Event operations published to the event stream.
const (
	EventItemCreated     = "item_created"
	EventItemUpdated     = "item_updated"
	EventItemDeleted     = "item_deleted"
	EventMeetingUploaded = "meeting_uploaded"
)

// Event represents a domain event published to Kafka. Consumers such as the
// meeting processing pipeline subscribe to these; publishing is best-effort.
type Event struct {
	EventID    string `json:"event_id"`
	Timestamp  int64  `json:"timestamp"`
	UserID     string `json:"user_id"`
	Operation  string `json:"operation"`
	SubjectID  string `json:"subject_id"`            // Item or meeting id the event is about
	StoredPath string `json:"stored_path,omitempty"` // Set for meeting_uploaded events
}
