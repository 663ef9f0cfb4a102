package events

import (
	"encoding/json"
	"time"
)

// Collection names carried on change messages.
const (
	CollectionStudents = "students"
	CollectionPayments = "payments"
)

// Operations carried on change messages.
const (
	OpAdd    = "add"
	OpDelete = "delete"
	OpClear  = "clear"
)

// ChangeMessage announces that a collection was mutated. Consumers re-read
// the collection themselves; the message carries only the key, not the row.
type ChangeMessage struct {
	Collection string    `json:"collection"`
	Op         string    `json:"op"`
	Key        string    `json:"key,omitempty"`
	Timestamp  time.Time `json:"timestamp"`
}

func NewChangeMessage(collection, op, key string) *ChangeMessage {
	return &ChangeMessage{
		Collection: collection,
		Op:         op,
		Key:        key,
		Timestamp:  time.Now(),
	}
}

func (m *ChangeMessage) ToJSON() ([]byte, error) {
	return json.Marshal(m)
}

func ChangeMessageFromJSON(data []byte) (*ChangeMessage, error) {
	var msg ChangeMessage
	if err := json.Unmarshal(data, &msg); err != nil {
		return nil, err
	}
	return &msg, nil
}
