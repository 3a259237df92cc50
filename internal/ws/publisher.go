package ws

import (
	"context"
	"encoding/json"

	"career-guide/internal/usecase"
)

// Publisher adapts the hub to usecase.EventPublisher.
type Publisher struct {
	hub *Hub
}

func NewPublisher(hub *Hub) *Publisher {
	return &Publisher{hub: hub}
}

func (p *Publisher) Publish(_ context.Context, evt usecase.Event) error {
	if p == nil || p.hub == nil {
		return nil
	}
	b, err := json.Marshal(evt)
	if err != nil {
		return err
	}
	p.hub.Broadcast(evt.StudentID, b)
	return nil
}
