package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"restaurant-backend/internal/domain"
	"restaurant-backend/internal/service"
)

// PostgresRepository implements the user, dish, order and review
// repositories over one *sql.DB.
type PostgresRepository struct {
	DB *sql.DB
}

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{DB: db}
}

var _ service.UserRepository = (*PostgresRepository)(nil)
var _ service.DishRepository = (*PostgresRepository)(nil)
var _ service.OrderRepository = (*PostgresRepository)(nil)
var _ service.ReviewRepository = (*PostgresRepository)(nil)

func (r *PostgresRepository) FindUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	var user domain.User
	err := r.DB.QueryRowContext(ctx,
		"SELECT id, username, email FROM users WHERE email = $1", email).
		Scan(&user.ID, &user.Username, &user.Email)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *PostgresRepository) CreateDish(ctx context.Context, dish *domain.Dish) error {
	if dish.ID == uuid.Nil {
		dish.ID = uuid.New()
	}
	err := r.DB.QueryRowContext(ctx, `
		INSERT INTO dishes (id, name, description, price)
		VALUES ($1, $2, $3, $4)
		RETURNING created_at
	`, dish.ID, dish.Name, dish.Description, dish.Price).Scan(&dish.CreatedAt)
	return mapConstraintError(err)
}

func (r *PostgresRepository) ListDishes(ctx context.Context) ([]domain.Dish, error) {
	rows, err := r.DB.QueryContext(ctx, `
		SELECT id, name, COALESCE(description, ''), price, created_at
		FROM dishes
		ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var dishes []domain.Dish
	for rows.Next() {
		var dish domain.Dish
		if err := rows.Scan(&dish.ID, &dish.Name, &dish.Description, &dish.Price, &dish.CreatedAt); err != nil {
			continue
		}
		dishes = append(dishes, dish)
	}
	return dishes, rows.Err()
}

func (r *PostgresRepository) FindDishesByIDs(ctx context.Context, ids []uuid.UUID) ([]domain.Dish, error) {
	rows, err := r.DB.QueryContext(ctx, `
		SELECT id, name, COALESCE(description, ''), price, created_at
		FROM dishes
		WHERE id = ANY($1)`, pq.Array(ids))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var dishes []domain.Dish
	for rows.Next() {
		var dish domain.Dish
		if err := rows.Scan(&dish.ID, &dish.Name, &dish.Description, &dish.Price, &dish.CreatedAt); err != nil {
			continue
		}
		dishes = append(dishes, dish)
	}
	return dishes, rows.Err()
}

func (r *PostgresRepository) DishExists(ctx context.Context, id uuid.UUID) (bool, error) {
	var exists bool
	err := r.DB.QueryRowContext(ctx,
		"SELECT EXISTS(SELECT 1 FROM dishes WHERE id = $1)", id).Scan(&exists)
	return exists, err
}

// CreateOrder commits the order row and its dish associations together.
// Duplicate dish ids keep their position in order_dishes.
func (r *PostgresRepository) CreateOrder(ctx context.Context, order *domain.Order) error {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `
		INSERT INTO orders (id, user_id, order_date, status)
		VALUES ($1, $2, $3, $4)
	`, order.ID, order.ClientID, order.OrderDate, order.Status); err != nil {
		return mapConstraintError(err)
	}

	for position, dishID := range order.DishIDs {
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO order_dishes (order_id, dish_id, position)
			VALUES ($1, $2, $3)
		`, order.ID, dishID, position); err != nil {
			return mapConstraintError(err)
		}
	}

	return tx.Commit()
}

func (r *PostgresRepository) FindOrderByID(ctx context.Context, id uuid.UUID) (*domain.Order, error) {
	var order domain.Order
	err := r.DB.QueryRowContext(ctx, `
		SELECT o.id, o.order_date, o.status, o.user_id, u.email
		FROM orders o
		JOIN users u ON o.user_id = u.id
		WHERE o.id = $1
	`, id).Scan(&order.ID, &order.OrderDate, &order.Status, &order.ClientID, &order.ClientEmail)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	dishIDs, err := r.orderDishIDs(ctx, order.ID)
	if err != nil {
		return nil, err
	}
	order.DishIDs = dishIDs
	return &order, nil
}

func (r *PostgresRepository) ListOrders(ctx context.Context) ([]domain.Order, error) {
	return r.listOrders(ctx, `
		SELECT o.id, o.order_date, o.status, o.user_id, u.email
		FROM orders o
		JOIN users u ON o.user_id = u.id
		ORDER BY o.order_date DESC`)
}

func (r *PostgresRepository) ListOrdersByClient(ctx context.Context, clientID uuid.UUID) ([]domain.Order, error) {
	return r.listOrders(ctx, `
		SELECT o.id, o.order_date, o.status, o.user_id, u.email
		FROM orders o
		JOIN users u ON o.user_id = u.id
		WHERE o.user_id = $1
		ORDER BY o.order_date DESC`, clientID)
}

func (r *PostgresRepository) listOrders(ctx context.Context, query string, args ...interface{}) ([]domain.Order, error) {
	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var orders []domain.Order
	for rows.Next() {
		var order domain.Order
		if err := rows.Scan(&order.ID, &order.OrderDate, &order.Status, &order.ClientID, &order.ClientEmail); err != nil {
			continue
		}
		orders = append(orders, order)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range orders {
		dishIDs, err := r.orderDishIDs(ctx, orders[i].ID)
		if err != nil {
			return nil, err
		}
		orders[i].DishIDs = dishIDs
	}
	return orders, nil
}

func (r *PostgresRepository) orderDishIDs(ctx context.Context, orderID uuid.UUID) ([]uuid.UUID, error) {
	rows, err := r.DB.QueryContext(ctx, `
		SELECT dish_id FROM order_dishes
		WHERE order_id = $1
		ORDER BY position`, orderID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ids []uuid.UUID
	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			continue
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

func (r *PostgresRepository) UpdateOrderStatus(ctx context.Context, id uuid.UUID, status string) error {
	_, err := r.DB.ExecContext(ctx,
		"UPDATE orders SET status = $1 WHERE id = $2", status, id)
	return err
}

func (r *PostgresRepository) SaveQRCode(ctx context.Context, orderID uuid.UUID, qr []byte) error {
	_, err := r.DB.ExecContext(ctx,
		"UPDATE orders SET qr_code = $1 WHERE id = $2", qr, orderID)
	return err
}

func (r *PostgresRepository) GetQRCode(ctx context.Context, orderID uuid.UUID) ([]byte, error) {
	var qr []byte
	err := r.DB.QueryRowContext(ctx,
		"SELECT qr_code FROM orders WHERE id = $1", orderID).Scan(&qr)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	return qr, err
}

func (r *PostgresRepository) CreateReview(ctx context.Context, review *domain.Review) error {
	_, err := r.DB.ExecContext(ctx, `
		INSERT INTO reviews (id, user_id, dish_id, rating, comment, review_date)
		VALUES ($1, $2, $3, $4, $5, $6)
	`, review.ID, review.ReviewerID, review.DishID, review.Rating, review.Comment, review.ReviewDate)
	return mapConstraintError(err)
}

func (r *PostgresRepository) FindReviewByID(ctx context.Context, id uuid.UUID) (*domain.Review, error) {
	var review domain.Review
	err := r.DB.QueryRowContext(ctx, `
		SELECT rv.id, rv.rating, COALESCE(rv.comment, ''), rv.review_date, rv.user_id, u.email, rv.dish_id
		FROM reviews rv
		JOIN users u ON rv.user_id = u.id
		WHERE rv.id = $1
	`, id).Scan(&review.ID, &review.Rating, &review.Comment, &review.ReviewDate,
		&review.ReviewerID, &review.ReviewerEmail, &review.DishID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &review, nil
}

func (r *PostgresRepository) ListReviewsByDish(ctx context.Context, dishID uuid.UUID) ([]domain.Review, error) {
	return r.listReviews(ctx, `
		SELECT rv.id, rv.rating, COALESCE(rv.comment, ''), rv.review_date, rv.user_id, u.email, rv.dish_id
		FROM reviews rv
		JOIN users u ON rv.user_id = u.id
		WHERE rv.dish_id = $1
		ORDER BY rv.review_date DESC`, dishID)
}

func (r *PostgresRepository) ListReviewsByReviewer(ctx context.Context, reviewerID uuid.UUID) ([]domain.Review, error) {
	return r.listReviews(ctx, `
		SELECT rv.id, rv.rating, COALESCE(rv.comment, ''), rv.review_date, rv.user_id, u.email, rv.dish_id
		FROM reviews rv
		JOIN users u ON rv.user_id = u.id
		WHERE rv.user_id = $1
		ORDER BY rv.review_date DESC`, reviewerID)
}

func (r *PostgresRepository) listReviews(ctx context.Context, query string, args ...interface{}) ([]domain.Review, error) {
	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var reviews []domain.Review
	for rows.Next() {
		var review domain.Review
		if err := rows.Scan(&review.ID, &review.Rating, &review.Comment, &review.ReviewDate,
			&review.ReviewerID, &review.ReviewerEmail, &review.DishID); err != nil {
			continue
		}
		reviews = append(reviews, review)
	}
	return reviews, rows.Err()
}

func (r *PostgresRepository) DeleteReview(ctx context.Context, id uuid.UUID) error {
	_, err := r.DB.ExecContext(ctx, "DELETE FROM reviews WHERE id = $1", id)
	return err
}

// EnsureSchema creates the tables this service owns.
func (r *PostgresRepository) EnsureSchema(ctx context.Context) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS users (
			id UUID PRIMARY KEY,
			username TEXT NOT NULL,
			email TEXT NOT NULL UNIQUE
		)`,
		`CREATE TABLE IF NOT EXISTS dishes (
			id UUID PRIMARY KEY,
			name TEXT NOT NULL UNIQUE,
			description TEXT,
			price NUMERIC(10,2) NOT NULL CHECK (price >= 0),
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS orders (
			id UUID PRIMARY KEY,
			user_id UUID NOT NULL REFERENCES users(id),
			order_date TIMESTAMPTZ NOT NULL,
			status TEXT NOT NULL,
			qr_code BYTEA
		)`,
		`CREATE TABLE IF NOT EXISTS order_dishes (
			order_id UUID NOT NULL REFERENCES orders(id),
			dish_id UUID NOT NULL REFERENCES dishes(id),
			position INT NOT NULL,
			PRIMARY KEY (order_id, position)
		)`,
		`CREATE TABLE IF NOT EXISTS reviews (
			id UUID PRIMARY KEY,
			user_id UUID NOT NULL REFERENCES users(id),
			dish_id UUID NOT NULL REFERENCES dishes(id),
			rating INT NOT NULL,
			comment TEXT,
			review_date TIMESTAMPTZ NOT NULL
		)`,
	}
	for _, stmt := range statements {
		if _, err := r.DB.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("ensure schema: %w", err)
		}
	}
	return nil
}

// mapConstraintError surfaces Postgres constraint violations as the
// Conflict kind so the boundary can report them as client errors.
func mapConstraintError(err error) error {
	if err == nil {
		return nil
	}
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code.Class() == "23" {
		return fmt.Errorf("constraint violation (%s): %w", pqErr.Code.Name(), service.ErrConflict)
	}
	return err
}
