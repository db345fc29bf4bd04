// +build ignore

package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/recreation-microservice/internal/domain"
)

func main() {
	redisAddr := flag.String("redis", "localhost:6379", "Redis address")
	recID := flag.String("id", "REC203239", "rec_resource_id")
	group := flag.String("group", "rec-resource-cache-workers", "consumer group воркера")
	flag.Parse()

	client := redis.NewClient(&redis.Options{
		Addr: *redisAddr,
	})
	defer client.Close()

	ctx := context.Background()

	// Проверка подключения
	if err := client.Ping(ctx).Err(); err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}

	event := domain.NewResourceUpdatedEvent(*recID, domain.RelationActivity)
	data, err := json.Marshal(event)
	if err != nil {
		log.Fatalf("Failed to marshal event: %v", err)
	}

	result, err := client.XAdd(ctx, &redis.XAddArgs{
		Stream: domain.StreamRecResourceUpdated,
		Values: map[string]interface{}{
			"data": string(data),
		},
	}).Result()
	if err != nil {
		log.Fatalf("Failed to publish event: %v", err)
	}

	fmt.Printf("✅ Event published successfully!\n")
	fmt.Printf("   Stream: %s\n", domain.StreamRecResourceUpdated)
	fmt.Printf("   Message ID: %s\n", result)
	fmt.Printf("   Event ID: %s\n", event.EventID)
	fmt.Printf("   Resource: %s\n", event.RecResourceID)

	fmt.Printf("\n⏳ Waiting for group %s to ack the message...\n", *group)

	timeout := time.After(30 * time.Second)
	ticker := time.NewTicker(1 * time.Second)
	defer ticker.Stop()

	for {
		select {
		case <-timeout:
			fmt.Println("❌ Timeout waiting for worker")
			return
		case <-ticker.C:
			groups, err := client.XInfoGroups(ctx, domain.StreamRecResourceUpdated).Result()
			if err != nil {
				continue
			}

			for _, g := range groups {
				if g.Name != *group {
					continue
				}
				// доставлено и подтверждено
				if g.LastDeliveredID >= result && g.Pending == 0 {
					fmt.Printf("\n✅ Message processed by %s (consumers: %d)\n", g.Name, g.Consumers)
					return
				}
			}
		}
	}
}
