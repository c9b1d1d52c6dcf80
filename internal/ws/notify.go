package ws

import (
	"encoding/json"
	"time"
)

type MatchesCreatedEvent struct {
	Type      string `json:"type"`
	JobID     string `json:"job_id"`
	Count     int    `json:"count"`
	Timestamp string `json:"timestamp"`
}

// Notifier pushes matching-run outcomes onto the hub. It satisfies the
// orchestrator's notification contract.
type Notifier struct {
	hub *Hub
}

func NewNotifier(hub *Hub) *Notifier {
	return &Notifier{hub: hub}
}

func (n *Notifier) MatchesCreated(jobID string, count int) {
	if n == nil || n.hub == nil {
		return
	}

	evt := MatchesCreatedEvent{
		Type:      "matches_created",
		JobID:     jobID,
		Count:     count,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}
	b, err := json.Marshal(evt)
	if err != nil {
		return
	}

	n.hub.Broadcast(b)
}
