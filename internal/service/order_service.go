package service

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"

	"restaurant-backend/internal/domain"
)

const initialOrderStatus = "PLACED"

type OrderService struct {
	orders    OrderRepository
	users     UserRepository
	dishes    DishRepository
	publisher ConfirmationPublisher
	qrEncoder QRGenerator
}

func NewOrderService(orders OrderRepository, users UserRepository, dishes DishRepository,
	publisher ConfirmationPublisher, qrEncoder QRGenerator) *OrderService {
	return &OrderService{
		orders:    orders,
		users:     users,
		dishes:    dishes,
		publisher: publisher,
		qrEncoder: qrEncoder,
	}
}

func (s *OrderService) PlaceOrder(ctx context.Context, clientEmail string, dishIDs []uuid.UUID) (*domain.OrderView, error) {
	client, err := s.users.FindUserByEmail(ctx, clientEmail)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve client: %w", err)
	}
	if client == nil {
		return nil, fmt.Errorf("client not found with email %s: %w", clientEmail, ErrNotFound)
	}

	if len(dishIDs) == 0 {
		return nil, fmt.Errorf("order must contain at least one dish: %w", ErrInvalidInput)
	}

	// Duplicate dish ids are a valid order line-up; resolution works on
	// the unique set.
	unique := uniqueIDs(dishIDs)
	found, err := s.dishes.FindDishesByIDs(ctx, unique)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve dishes: %w", err)
	}
	if len(found) != len(unique) {
		foundSet := make(map[uuid.UUID]bool, len(found))
		for _, dish := range found {
			foundSet[dish.ID] = true
		}
		var missing []uuid.UUID
		for _, id := range unique {
			if !foundSet[id] {
				missing = append(missing, id)
			}
		}
		return nil, &MissingDishesError{MissingIDs: missing}
	}

	order := &domain.Order{
		ID:          uuid.New(),
		OrderDate:   time.Now(),
		Status:      initialOrderStatus,
		ClientID:    client.ID,
		ClientEmail: client.Email,
		DishIDs:     dishIDs,
	}

	if err := s.orders.CreateOrder(ctx, order); err != nil {
		return nil, fmt.Errorf("failed to create order: %w", err)
	}
	log.Printf("Order %s placed successfully for user %s", order.ID, client.Email)

	// Confirmation dispatch is best-effort and never rolls the order back.
	if s.publisher != nil {
		msg := domain.ConfirmationMessage{
			Type:      "order_confirmation",
			OrderID:   order.ID,
			Recipient: client.Email,
			Subject:   fmt.Sprintf("Your Order Confirmation (ID: %s)", order.ID),
			Body: fmt.Sprintf("Dear %s,\n\nYour order has been placed successfully and is now being processed.\n\n"+
				"Order ID: %s\nStatus: %s\n\nThank you for your order!", client.Username, order.ID, order.Status),
			Timestamp: time.Now(),
		}
		if err := s.publisher.PublishConfirmation(ctx, msg); err != nil {
			log.Printf("Warning: failed to publish order confirmation for %s: %v", client.Email, err)
		}
	}

	if s.qrEncoder != nil {
		if qr, err := s.qrEncoder.Generate(order.ID); err == nil {
			_ = s.orders.SaveQRCode(ctx, order.ID, qr)
		}
	}

	view := order.View()
	return &view, nil
}

// GetOrderByID fetches an order without checking who owns it. The HTTP
// layer never routes here directly; it exists for internal callers that
// have already cleared authorization.
func (s *OrderService) GetOrderByID(ctx context.Context, id uuid.UUID) (*domain.OrderView, error) {
	order, err := s.fetchOrder(ctx, id)
	if err != nil {
		return nil, err
	}
	view := order.View()
	return &view, nil
}

func (s *OrderService) GetOrderForUser(ctx context.Context, id uuid.UUID, actorEmail string, roles []string) (*domain.OrderView, error) {
	order, err := s.fetchOrder(ctx, id)
	if err != nil {
		return nil, err
	}
	if !Allowed(actorEmail, roles, order.ClientEmail) {
		log.Printf("Access denied for user %s attempting to access order %s owned by %s", actorEmail, id, order.ClientEmail)
		return nil, fmt.Errorf("you are not authorized to view this order: %w", ErrForbidden)
	}
	view := order.View()
	return &view, nil
}

func (s *OrderService) ListOrders(ctx context.Context) ([]domain.OrderView, error) {
	orders, err := s.orders.ListOrders(ctx)
	if err != nil {
		return nil, err
	}
	return orderViews(orders), nil
}

func (s *OrderService) ListOrdersByUserEmail(ctx context.Context, email string) ([]domain.OrderView, error) {
	client, err := s.users.FindUserByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve user: %w", err)
	}
	if client == nil {
		return nil, fmt.Errorf("user not found with email %s: %w", email, ErrNotFound)
	}
	orders, err := s.orders.ListOrdersByClient(ctx, client.ID)
	if err != nil {
		return nil, err
	}
	return orderViews(orders), nil
}

// UpdateOrderStatus accepts any non-blank status string. There is no
// transition graph: resubmitting the current value or jumping between
// unrelated states is allowed.
func (s *OrderService) UpdateOrderStatus(ctx context.Context, id uuid.UUID, newStatus string) (*domain.OrderView, error) {
	status := normalizeStatus(newStatus)
	if status == "" {
		return nil, fmt.Errorf("new status cannot be empty: %w", ErrInvalidInput)
	}

	order, err := s.fetchOrder(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.orders.UpdateOrderStatus(ctx, id, status); err != nil {
		return nil, fmt.Errorf("failed to update order status: %w", err)
	}
	log.Printf("Successfully updated status for order %s to %s", id, status)

	order.Status = status
	view := order.View()
	return &view, nil
}

func (s *OrderService) GetQRCode(ctx context.Context, id uuid.UUID) ([]byte, error) {
	if _, err := s.fetchOrder(ctx, id); err != nil {
		return nil, err
	}
	qr, err := s.orders.GetQRCode(ctx, id)
	if err != nil {
		return nil, err
	}
	if len(qr) == 0 && s.qrEncoder != nil {
		if regenerated, err := s.qrEncoder.Generate(id); err == nil {
			_ = s.orders.SaveQRCode(ctx, id, regenerated)
			return regenerated, nil
		}
	}
	return qr, nil
}

func (s *OrderService) fetchOrder(ctx context.Context, id uuid.UUID) (*domain.Order, error) {
	order, err := s.orders.FindOrderByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch order: %w", err)
	}
	if order == nil {
		return nil, fmt.Errorf("order not found with id %s: %w", id, ErrNotFound)
	}
	return order, nil
}

func orderViews(orders []domain.Order) []domain.OrderView {
	views := make([]domain.OrderView, 0, len(orders))
	for i := range orders {
		views = append(views, orders[i].View())
	}
	return views
}

// normalizeStatus strips literal quote characters (clients that PUT a
// JSON-quoted bare string) and surrounding whitespace.
func normalizeStatus(raw string) string {
	return strings.TrimSpace(strings.ReplaceAll(raw, `"`, ""))
}

func uniqueIDs(ids []uuid.UUID) []uuid.UUID {
	seen := make(map[uuid.UUID]bool, len(ids))
	unique := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		if !seen[id] {
			seen[id] = true
			unique = append(unique, id)
		}
	}
	return unique
}
