package service

import (
	"context"

	"github.com/google/uuid"

	"restaurant-backend/internal/domain"
)

// Repository lookups return (nil, nil) when the record is absent so the
// services own the not-found decision.

type UserRepository interface {
	FindUserByEmail(ctx context.Context, email string) (*domain.User, error)
}

type DishRepository interface {
	CreateDish(ctx context.Context, dish *domain.Dish) error
	ListDishes(ctx context.Context) ([]domain.Dish, error)
	FindDishesByIDs(ctx context.Context, ids []uuid.UUID) ([]domain.Dish, error)
	DishExists(ctx context.Context, id uuid.UUID) (bool, error)
}

type OrderRepository interface {
	// CreateOrder persists the order row and its dish associations as a
	// single transaction.
	CreateOrder(ctx context.Context, order *domain.Order) error
	FindOrderByID(ctx context.Context, id uuid.UUID) (*domain.Order, error)
	ListOrders(ctx context.Context) ([]domain.Order, error)
	ListOrdersByClient(ctx context.Context, clientID uuid.UUID) ([]domain.Order, error)
	UpdateOrderStatus(ctx context.Context, id uuid.UUID, status string) error
	SaveQRCode(ctx context.Context, orderID uuid.UUID, qr []byte) error
	GetQRCode(ctx context.Context, orderID uuid.UUID) ([]byte, error)
}

type ReviewRepository interface {
	CreateReview(ctx context.Context, review *domain.Review) error
	FindReviewByID(ctx context.Context, id uuid.UUID) (*domain.Review, error)
	ListReviewsByDish(ctx context.Context, dishID uuid.UUID) ([]domain.Review, error)
	ListReviewsByReviewer(ctx context.Context, reviewerID uuid.UUID) ([]domain.Review, error)
	DeleteReview(ctx context.Context, id uuid.UUID) error
}

type CatalogCache interface {
	GetDishes(ctx context.Context) ([]domain.Dish, error)
	SetDishes(ctx context.Context, dishes []domain.Dish) error
	Invalidate(ctx context.Context) error
}

type ConfirmationPublisher interface {
	PublishConfirmation(ctx context.Context, msg domain.ConfirmationMessage) error
}

type OrderServiceInterface interface {
	PlaceOrder(ctx context.Context, clientEmail string, dishIDs []uuid.UUID) (*domain.OrderView, error)
	// GetOrderByID skips the ownership check. It serves already-authorized
	// internal callers; user-facing reads go through GetOrderForUser.
	GetOrderByID(ctx context.Context, id uuid.UUID) (*domain.OrderView, error)
	GetOrderForUser(ctx context.Context, id uuid.UUID, actorEmail string, roles []string) (*domain.OrderView, error)
	ListOrders(ctx context.Context) ([]domain.OrderView, error)
	ListOrdersByUserEmail(ctx context.Context, email string) ([]domain.OrderView, error)
	UpdateOrderStatus(ctx context.Context, id uuid.UUID, newStatus string) (*domain.OrderView, error)
	GetQRCode(ctx context.Context, id uuid.UUID) ([]byte, error)
}

type ReviewServiceInterface interface {
	AddReview(ctx context.Context, reviewerEmail string, dishID uuid.UUID, rating int, comment string) (*domain.ReviewView, error)
	GetReviewsByDishID(ctx context.Context, dishID uuid.UUID) ([]domain.ReviewView, error)
	GetReviewsByUserEmail(ctx context.Context, email string) ([]domain.ReviewView, error)
	DeleteReviewIfAllowed(ctx context.Context, reviewID uuid.UUID, actorEmail string, roles []string) error
	DeleteReview(ctx context.Context, reviewID uuid.UUID) error
	IsOwner(ctx context.Context, reviewID uuid.UUID, email string) bool
}

type DishServiceInterface interface {
	List(ctx context.Context) ([]domain.Dish, error)
	Add(ctx context.Context, dish *domain.Dish) error
}

var _ OrderServiceInterface = (*OrderService)(nil)
var _ ReviewServiceInterface = (*ReviewService)(nil)
var _ DishServiceInterface = (*DishService)(nil)
