package service

import (
	"context"
	"fmt"
	"log"

	"restaurant-backend/internal/domain"
)

type DishService struct {
	repo  DishRepository
	cache CatalogCache
}

func NewDishService(repo DishRepository, cache CatalogCache) *DishService {
	return &DishService{repo: repo, cache: cache}
}

// List serves the catalog from the cache when possible. Cache failures
// are logged and the database answers instead.
func (s *DishService) List(ctx context.Context) ([]domain.Dish, error) {
	if s.cache != nil {
		if dishes, err := s.cache.GetDishes(ctx); err == nil && dishes != nil {
			return dishes, nil
		}
	}

	dishes, err := s.repo.ListDishes(ctx)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.SetDishes(ctx, dishes); err != nil {
			log.Printf("Warning: failed to cache dish catalog: %v", err)
		}
	}
	return dishes, nil
}

func (s *DishService) Add(ctx context.Context, dish *domain.Dish) error {
	if dish.Name == "" {
		return fmt.Errorf("dish name cannot be empty: %w", ErrInvalidInput)
	}
	if dish.Price < 0 {
		return fmt.Errorf("dish price cannot be negative: %w", ErrInvalidInput)
	}

	if err := s.repo.CreateDish(ctx, dish); err != nil {
		return err
	}

	if s.cache != nil {
		if err := s.cache.Invalidate(ctx); err != nil {
			log.Printf("Warning: failed to invalidate dish catalog cache: %v", err)
		}
	}
	return nil
}
