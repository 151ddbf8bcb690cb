//go:build ignore

package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// Publishes a test cart-updated event so the summary worker can be exercised
// locally without going through the API.
//
//	go run scripts/test_publish.go -redis localhost:6379 -user <uuid>

type CartUpdatedEvent struct {
	UserID string    `json:"user_id"`
	Action string    `json:"action"`
	ItemID string    `json:"item_id,omitempty"`
	At     time.Time `json:"at"`
}

func main() {
	redisAddr := flag.String("redis", "localhost:6379", "Redis address for streams")
	userID := flag.String("user", uuid.New().String(), "User ID to publish for")
	action := flag.String("action", "add", "Cart action: add, remove, clear, checkout")
	flag.Parse()

	client := redis.NewClient(&redis.Options{
		Addr: *redisAddr,
	})
	defer client.Close()

	ctx := context.Background()

	if err := client.Ping(ctx).Err(); err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}

	event := CartUpdatedEvent{
		UserID: *userID,
		Action: *action,
		At:     time.Now().UTC(),
	}

	data, err := json.Marshal(event)
	if err != nil {
		log.Fatalf("Failed to marshal event: %v", err)
	}

	id, err := client.XAdd(ctx, &redis.XAddArgs{
		Stream: "stream:cart:updated",
		Values: map[string]interface{}{
			"data": string(data),
		},
	}).Result()
	if err != nil {
		log.Fatalf("Failed to publish event: %v", err)
	}

	fmt.Printf("Published %s event for user %s (message %s)\n", *action, *userID, id)
}
