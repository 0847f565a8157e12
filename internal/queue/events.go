package queue

import (
	"encoding/json"
	"fmt"
	"time"
)

// Event types for the notification stream
const (
	EventSoundUploaded = "sound_uploaded"
)

// Stream names
const (
	StreamNotifications = "stream:notifications"
)

// Consumer group name for notification workers
const (
	ConsumerGroupNotifications = "notification_workers"
)

// NotificationEvent is an event published to the notification stream. The
// worker fans it out to the uploader's followers.
type NotificationEvent struct {
	Type      string `json:"type"`
	Timestamp int64  `json:"timestamp"` // Unix timestamp when event occurred

	SoundID    int64  `json:"sound_id,omitempty"`
	AuthorID   int64  `json:"author_id,omitempty"`
	SoundTitle string `json:"sound_title,omitempty"`
}

// NewSoundUploadedEvent creates an event for a freshly uploaded sound.
// The worker notifies every follower of the uploader.
func NewSoundUploadedEvent(soundID, authorID int64, title string) NotificationEvent {
	return NotificationEvent{
		Type:       EventSoundUploaded,
		Timestamp:  time.Now().Unix(),
		SoundID:    soundID,
		AuthorID:   authorID,
		SoundTitle: title,
	}
}

// ToMap converts the event to a map for Redis XADD. Streams store field-value
// pairs, so the event is serialized as JSON in a "data" field.
func (e NotificationEvent) ToMap() (map[string]interface{}, error) {
	data, err := json.Marshal(e)
	if err != nil {
		return nil, fmt.Errorf("marshal event: %w", err)
	}
	return map[string]interface{}{
		"type": e.Type,
		"data": string(data),
	}, nil
}

// ParseNotificationEvent parses a NotificationEvent from stream message values.
func ParseNotificationEvent(values map[string]interface{}) (NotificationEvent, error) {
	data, ok := values["data"].(string)
	if !ok {
		return NotificationEvent{}, fmt.Errorf("missing or invalid 'data' field")
	}

	var event NotificationEvent
	if err := json.Unmarshal([]byte(data), &event); err != nil {
		return NotificationEvent{}, fmt.Errorf("unmarshal event: %w", err)
	}
	return event, nil
}
