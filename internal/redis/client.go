package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
)

var (
	ErrSessionNotFound = errors.New("assistant session not found")
	ErrSummaryNotFound = errors.New("dashboard summary not cached")
)

type Client struct {
	rdb *redis.Client
}

// CartSession is the shopping assistant's in-progress cart. It lives only in
// Redis; submitting it produces a real draft order and deletes the session.
type CartSession struct {
	SessionID     string     `json:"session_id"`
	CustomerPhone string     `json:"customer_phone"`
	CustomerName  string     `json:"customer_name"`
	Items         []CartItem `json:"items"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

type CartItem struct {
	ProductID uint  `json:"product_id"`
	VariantID *uint `json:"variant_id,omitempty"`
	Quantity  int   `json:"quantity"`
}

type DashboardSummary struct {
	OrdersByStatus map[string]int64 `json:"orders_by_status"`
	SoldRevenue    float64          `json:"sold_revenue"`
	GeneratedAt    time.Time        `json:"generated_at"`
}

func Initialize(redisURL string) (*Client, error) {
	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse Redis URL: %w", err)
	}

	rdb := redis.NewClient(opt)

	// Test connection
	ctx := context.Background()
	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &Client{rdb: rdb}, nil
}

func (c *Client) SetCartSession(session *CartSession, ttl time.Duration) error {
	ctx := context.Background()
	jsonData, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("failed to marshal cart session: %w", err)
	}

	return c.rdb.Set(ctx, "assistant:session:"+session.SessionID, jsonData, ttl).Err()
}

func (c *Client) GetCartSession(sessionID string) (*CartSession, error) {
	ctx := context.Background()
	val, err := c.rdb.Get(ctx, "assistant:session:"+sessionID).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, ErrSessionNotFound
		}
		return nil, fmt.Errorf("failed to get cart session: %w", err)
	}

	var session CartSession
	if err := json.Unmarshal([]byte(val), &session); err != nil {
		return nil, fmt.Errorf("failed to unmarshal cart session: %w", err)
	}

	return &session, nil
}

func (c *Client) DeleteCartSession(sessionID string) error {
	ctx := context.Background()
	return c.rdb.Del(ctx, "assistant:session:"+sessionID).Err()
}

func (c *Client) SetDashboardSummary(summary *DashboardSummary, ttl time.Duration) error {
	ctx := context.Background()
	jsonData, err := json.Marshal(summary)
	if err != nil {
		return fmt.Errorf("failed to marshal dashboard summary: %w", err)
	}

	return c.rdb.Set(ctx, "dashboard:summary", jsonData, ttl).Err()
}

func (c *Client) GetDashboardSummary() (*DashboardSummary, error) {
	ctx := context.Background()
	val, err := c.rdb.Get(ctx, "dashboard:summary").Result()
	if err != nil {
		if err == redis.Nil {
			return nil, ErrSummaryNotFound
		}
		return nil, fmt.Errorf("failed to get dashboard summary: %w", err)
	}

	var summary DashboardSummary
	if err := json.Unmarshal([]byte(val), &summary); err != nil {
		return nil, fmt.Errorf("failed to unmarshal dashboard summary: %w", err)
	}

	return &summary, nil
}
