package redis

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

type IRedis interface {
	PushRecentBreak(ctx context.Context, userID string, breakTitle string, keep int) error
	GetRecentBreaks(ctx context.Context, userID string) ([]string, error)
}

type redisClient struct {
	client *redis.Client
}

// Recent-break rotation entries expire after a week of inactivity so the
// suggestion pool resets for dormant users.
const recentBreakTTL = 7 * 24 * time.Hour

func New() IRedis {
	db, _ := strconv.Atoi(os.Getenv("REDIS_DB"))
	redisAddr := os.Getenv("REDIS_ADDRESS")
	redisPassword := os.Getenv("REDIS_PASSWORD")

	logrus.Info(fmt.Sprintf("Connecting to Redis at %s...", redisAddr))

	client := redis.NewClient(&redis.Options{
		Addr:     redisAddr,
		Password: redisPassword,
		DB:       db,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if _, err := client.Ping(ctx).Result(); err != nil {
		logrus.Error(fmt.Sprintf("Failed to connect to Redis: %v", err))
	} else {
		logrus.Info("Successfully connected to Redis")
	}

	return &redisClient{client: client}
}

func recentBreaksKey(userID string) string {
	return fmt.Sprintf("coaching:recent_breaks:%s", userID)
}

// PushRecentBreak records a suggested break at the head of the user's
// rotation list and trims the list to the newest `keep` entries.
func (r *redisClient) PushRecentBreak(ctx context.Context, userID string, breakTitle string, keep int) error {
	key := recentBreaksKey(userID)

	pipe := r.client.TxPipeline()
	pipe.LPush(ctx, key, breakTitle)
	pipe.LTrim(ctx, key, 0, int64(keep-1))
	pipe.Expire(ctx, key, recentBreakTTL)

	if _, err := pipe.Exec(ctx); err != nil {
		logrus.Error(fmt.Sprintf("Error recording recent break for user %s: %v", userID, err))
		return err
	}

	return nil
}

func (r *redisClient) GetRecentBreaks(ctx context.Context, userID string) ([]string, error) {
	titles, err := r.client.LRange(ctx, recentBreaksKey(userID), 0, -1).Result()
	if err != nil {
		logrus.Error(fmt.Sprintf("Error fetching recent breaks for user %s: %v", userID, err))
		return nil, err
	}

	return titles, nil
}
