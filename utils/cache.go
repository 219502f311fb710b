package utils

import (
	"context"
	"log"
	"time"

	"nailbar/config"

	"github.com/go-redis/redis/v8"
)

// BookingCacheClient holds short-lived checkout sessions.
var BookingCacheClient *redis.Client

// InitBookingCache initializes the Redis client used for booking sessions.
func InitBookingCache() {
	BookingCacheClient = redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisCacheDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if _, err := BookingCacheClient.Ping(ctx).Result(); err != nil {
		log.Fatalf("Failed to connect to Redis (Booking Cache): %v", err)
	}
}

// GetBookingCacheClient returns the booking session cache client.
func GetBookingCacheClient() *redis.Client {
	if BookingCacheClient == nil {
		InitBookingCache()
	}
	return BookingCacheClient
}
