package redisdb

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

const dedupTTL = 24 * time.Hour

// EventDeduper marca eventos de webhook já processados. É só um atalho:
// se o Redis cair, a reentrega cai na máquina de estados, que é idempotente.
type EventDeduper struct {
	client *redis.Client
}

func NewEventDeduper(client *redis.Client) *EventDeduper {
	return &EventDeduper{client: client}
}

// MarkProcessed devolve true se o evento já tinha sido visto.
func (d *EventDeduper) MarkProcessed(ctx context.Context, eventID string) (bool, error) {
	if d == nil || d.client == nil || eventID == "" {
		return false, nil
	}

	ok, err := d.client.SetNX(ctx, "webhook:event:"+eventID, 1, dedupTTL).Result()
	if err != nil {
		return false, err
	}

	return !ok, nil
}
