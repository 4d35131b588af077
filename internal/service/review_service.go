package service

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"

	"restaurant-backend/internal/domain"
)

type ReviewService struct {
	reviews ReviewRepository
	users   UserRepository
	dishes  DishRepository
}

func NewReviewService(reviews ReviewRepository, users UserRepository, dishes DishRepository) *ReviewService {
	return &ReviewService{
		reviews: reviews,
		users:   users,
		dishes:  dishes,
	}
}

// AddReview stores the rating as supplied. Range validation is left to
// the boundary layer.
func (s *ReviewService) AddReview(ctx context.Context, reviewerEmail string, dishID uuid.UUID, rating int, comment string) (*domain.ReviewView, error) {
	reviewer, err := s.users.FindUserByEmail(ctx, reviewerEmail)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve reviewer: %w", err)
	}
	if reviewer == nil {
		return nil, fmt.Errorf("reviewer not found with email %s: %w", reviewerEmail, ErrNotFound)
	}

	exists, err := s.dishes.DishExists(ctx, dishID)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve dish: %w", err)
	}
	if !exists {
		return nil, fmt.Errorf("dish not found with id %s: %w", dishID, ErrNotFound)
	}

	review := &domain.Review{
		ID:            uuid.New(),
		Rating:        rating,
		Comment:       comment,
		ReviewDate:    time.Now(),
		ReviewerID:    reviewer.ID,
		ReviewerEmail: reviewer.Email,
		DishID:        dishID,
	}

	if err := s.reviews.CreateReview(ctx, review); err != nil {
		return nil, fmt.Errorf("failed to create review: %w", err)
	}
	log.Printf("Review %s added successfully for dish %s by user %s", review.ID, dishID, reviewer.Email)

	view := review.View()
	return &view, nil
}

// GetReviewsByDishID checks dish existence independently of the review
// query: a real dish with zero reviews yields an empty list, a missing
// dish is an error.
func (s *ReviewService) GetReviewsByDishID(ctx context.Context, dishID uuid.UUID) ([]domain.ReviewView, error) {
	exists, err := s.dishes.DishExists(ctx, dishID)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve dish: %w", err)
	}
	if !exists {
		return nil, fmt.Errorf("dish not found with id %s: %w", dishID, ErrNotFound)
	}
	reviews, err := s.reviews.ListReviewsByDish(ctx, dishID)
	if err != nil {
		return nil, err
	}
	return reviewViews(reviews), nil
}

func (s *ReviewService) GetReviewsByUserEmail(ctx context.Context, email string) ([]domain.ReviewView, error) {
	reviewer, err := s.users.FindUserByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve user: %w", err)
	}
	if reviewer == nil {
		return nil, fmt.Errorf("user not found with email %s: %w", email, ErrNotFound)
	}
	reviews, err := s.reviews.ListReviewsByReviewer(ctx, reviewer.ID)
	if err != nil {
		return nil, err
	}
	return reviewViews(reviews), nil
}

func (s *ReviewService) DeleteReviewIfAllowed(ctx context.Context, reviewID uuid.UUID, actorEmail string, roles []string) error {
	review, err := s.reviews.FindReviewByID(ctx, reviewID)
	if err != nil {
		return fmt.Errorf("failed to fetch review: %w", err)
	}
	if review == nil {
		return fmt.Errorf("review not found with id %s: %w", reviewID, ErrNotFound)
	}

	if !Allowed(actorEmail, roles, review.ReviewerEmail) {
		log.Printf("Authorization failed: user %s cannot delete review %s owned by %s", actorEmail, reviewID, review.ReviewerEmail)
		return fmt.Errorf("you are not authorized to delete this review: %w", ErrForbidden)
	}

	if err := s.reviews.DeleteReview(ctx, reviewID); err != nil {
		return fmt.Errorf("failed to delete review: %w", err)
	}
	log.Printf("Review %s deleted successfully by %s", reviewID, actorEmail)
	return nil
}

// DeleteReview skips the policy check. Callers use it after IsOwner or an
// admin-role check has already authorized the actor.
func (s *ReviewService) DeleteReview(ctx context.Context, reviewID uuid.UUID) error {
	review, err := s.reviews.FindReviewByID(ctx, reviewID)
	if err != nil {
		return fmt.Errorf("failed to fetch review: %w", err)
	}
	if review == nil {
		return fmt.Errorf("review not found with id %s: %w", reviewID, ErrNotFound)
	}
	return s.reviews.DeleteReview(ctx, reviewID)
}

// IsOwner reports whether email authored the review. An absent review is
// false, not an error, so boundary pre-checks don't leak existence.
func (s *ReviewService) IsOwner(ctx context.Context, reviewID uuid.UUID, email string) bool {
	if email == "" {
		return false
	}
	review, err := s.reviews.FindReviewByID(ctx, reviewID)
	if err != nil || review == nil {
		return false
	}
	return review.ReviewerEmail == email
}

func reviewViews(reviews []domain.Review) []domain.ReviewView {
	views := make([]domain.ReviewView, 0, len(reviews))
	for i := range reviews {
		views = append(views, reviews[i].View())
	}
	return views
}
