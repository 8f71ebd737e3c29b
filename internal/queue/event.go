// Package queue defines message payloads exchanged over the message broker.
package queue

// ImportCompletedQueue is the durable queue import events are routed to.
const ImportCompletedQueue = "import.completed"

// ImportCompletedEvent is published after an import call has committed.
// Consumers can audit imports without querying the catalog database.
type ImportCompletedEvent struct {
	BatchID     string `json:"batch_id"`
	Family      string `json:"family"`
	Accepted    int    `json:"accepted"`
	Rejected    int    `json:"rejected"`
	CompletedAt string `json:"completed_at"`
}
