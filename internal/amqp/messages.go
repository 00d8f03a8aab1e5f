package amqp

import (
	"encoding/json"
	"fmt"
	"time"

	"budgetbook/internal/backup"
)

// SnapshotVersion is bumped when the message envelope changes shape.
const SnapshotVersion = 1

// SnapshotMessage carries a full backup off the device. Consumers keep the
// newest one; there is no merging.
type SnapshotMessage struct {
	Version   int             `json:"version"`
	Timestamp time.Time       `json:"timestamp"`
	Device    string          `json:"device,omitempty"`
	Document  backup.Document `json:"document"`
}

func NewSnapshotMessage(doc backup.Document, device string, now time.Time) *SnapshotMessage {
	return &SnapshotMessage{
		Version:   SnapshotVersion,
		Timestamp: now.UTC(),
		Device:    device,
		Document:  doc,
	}
}

// ToJSON converts the message to JSON bytes
func (m *SnapshotMessage) ToJSON() ([]byte, error) {
	return json.Marshal(m)
}

// SnapshotMessageFromJSON decodes a message and rejects unknown versions.
func SnapshotMessageFromJSON(data []byte) (*SnapshotMessage, error) {
	var msg SnapshotMessage
	if err := json.Unmarshal(data, &msg); err != nil {
		return nil, err
	}
	if msg.Version != SnapshotVersion {
		return nil, fmt.Errorf("unsupported snapshot version %d", msg.Version)
	}
	return &msg, nil
}
