package service

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/v900meme-wq/e-commerce-ui-admin/internal/repository"
)

const (
	statsCacheKey = "dashboard:stats"
	statsCacheTTL = 60 * time.Second
)

type DashboardStats struct {
	TotalProducts int   `json:"totalProducts"`
	TotalOrders   int   `json:"totalOrders"`
	TotalUsers    int   `json:"totalUsers"`
	TotalRevenue  int64 `json:"totalRevenue"`
}

type StatsService struct {
	products *repository.ProductRepository
	orders   *repository.OrderRepository
	users    *repository.UserRepository
	cache    *redis.Client
	log      zerolog.Logger
}

func NewStatsService(
	products *repository.ProductRepository,
	orders *repository.OrderRepository,
	users *repository.UserRepository,
	cache *redis.Client,
	log zerolog.Logger,
) *StatsService {
	return &StatsService{products: products, orders: orders, users: users, cache: cache, log: log}
}

// Dashboard serves the cached stats when fresh, recomputing on miss.
// Cache failures degrade to a direct computation.
func (s *StatsService) Dashboard(ctx context.Context) (DashboardStats, error) {
	if s.cache != nil {
		if raw, err := s.cache.Get(ctx, statsCacheKey).Bytes(); err == nil {
			var stats DashboardStats
			if err := json.Unmarshal(raw, &stats); err == nil {
				return stats, nil
			}
		}
	}
	return s.Refresh(ctx)
}

// Refresh recomputes the stats and rewrites the cache. Also invoked on a
// schedule by the jobs package.
func (s *StatsService) Refresh(ctx context.Context) (DashboardStats, error) {
	totalProducts, err := s.products.CountAll(ctx)
	if err != nil {
		return DashboardStats{}, err
	}
	totalOrders, revenue, err := s.orders.CountAndRevenue(ctx)
	if err != nil {
		return DashboardStats{}, err
	}
	totalUsers, err := s.users.Count(ctx)
	if err != nil {
		return DashboardStats{}, err
	}

	stats := DashboardStats{
		TotalProducts: totalProducts,
		TotalOrders:   totalOrders,
		TotalUsers:    totalUsers,
		TotalRevenue:  revenue,
	}

	if s.cache != nil {
		if raw, err := json.Marshal(stats); err == nil {
			if err := s.cache.Set(ctx, statsCacheKey, raw, statsCacheTTL).Err(); err != nil {
				s.log.Warn().Err(err).Msg("stats cache write failed")
			}
		}
	}
	return stats, nil
}
