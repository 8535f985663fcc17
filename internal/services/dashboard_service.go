package services

import (
	"time"

	"shop_admin/internal/redis"
	"shop_admin/internal/repository"

	"github.com/sirupsen/logrus"
)

// SummaryCache caches the computed dashboard summary. Implemented by the
// Redis client.
type SummaryCache interface {
	SetDashboardSummary(summary *redis.DashboardSummary, ttl time.Duration) error
	GetDashboardSummary() (*redis.DashboardSummary, error)
}

type DashboardService interface {
	GetSummary() (*redis.DashboardSummary, error)
}

type dashboardService struct {
	orderRepo repository.OrderRepository
	cache     SummaryCache
	cacheTTL  time.Duration
}

func NewDashboardService(orderRepo repository.OrderRepository, cache SummaryCache, cacheTTL time.Duration) DashboardService {
	return &dashboardService{orderRepo: orderRepo, cache: cache, cacheTTL: cacheTTL}
}

func (s *dashboardService) GetSummary() (*redis.DashboardSummary, error) {
	if cached, err := s.cache.GetDashboardSummary(); err == nil {
		return cached, nil
	}

	counts, err := s.orderRepo.CountByStatus()
	if err != nil {
		return nil, err
	}

	revenue, err := s.orderRepo.SoldRevenue()
	if err != nil {
		return nil, err
	}

	byStatus := make(map[string]int64, len(counts))
	for status, count := range counts {
		byStatus[string(status)] = count
	}

	summary := &redis.DashboardSummary{
		OrdersByStatus: byStatus,
		SoldRevenue:    revenue,
		GeneratedAt:    time.Now(),
	}

	// Cache failures only cost the next request a recompute.
	if err := s.cache.SetDashboardSummary(summary, s.cacheTTL); err != nil {
		logrus.WithError(err).Warn("failed to cache dashboard summary")
	}
	return summary, nil
}
