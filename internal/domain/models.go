package domain

import (
	"time"

	"github.com/google/uuid"
)

type Dish struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Price       float64   `json:"price"`
	CreatedAt   time.Time `json:"created_at"`
}

// User is the identity record resolved by email. Registration and
// credentials live in the external auth service; this backend only reads.
type User struct {
	ID       uuid.UUID `json:"id"`
	Username string    `json:"username"`
	Email    string    `json:"email"`
}

type Order struct {
	ID          uuid.UUID   `json:"id"`
	OrderDate   time.Time   `json:"order_date"`
	Status      string      `json:"status"`
	ClientID    uuid.UUID   `json:"client_id"`
	ClientEmail string      `json:"client_email"`
	DishIDs     []uuid.UUID `json:"dish_ids"`
	QRCode      []byte      `json:"-"`
}

type Review struct {
	ID            uuid.UUID `json:"id"`
	Rating        int       `json:"rating"`
	Comment       string    `json:"comment"`
	ReviewDate    time.Time `json:"review_date"`
	ReviewerID    uuid.UUID `json:"reviewer_id"`
	ReviewerEmail string    `json:"reviewer_email"`
	DishID        uuid.UUID `json:"dish_id"`
}

// OrderView is what the API returns for an order.
type OrderView struct {
	ID          uuid.UUID   `json:"id"`
	OrderDate   time.Time   `json:"orderDate"`
	Status      string      `json:"status"`
	ClientEmail string      `json:"clientEmail"`
	DishIDs     []uuid.UUID `json:"dishIds"`
}

type ReviewView struct {
	ID            uuid.UUID `json:"id"`
	Rating        int       `json:"rating"`
	Comment       string    `json:"comment"`
	ReviewDate    time.Time `json:"reviewDate"`
	ReviewerEmail string    `json:"reviewerEmail"`
	DishID        uuid.UUID `json:"dishId"`
}

// ConfirmationMessage is the payload published to the confirmations topic.
type ConfirmationMessage struct {
	Type      string    `json:"type"`
	OrderID   uuid.UUID `json:"order_id"`
	Recipient string    `json:"recipient"`
	Subject   string    `json:"subject"`
	Body      string    `json:"body"`
	Timestamp time.Time `json:"timestamp"`
}

func (o *Order) View() OrderView {
	dishIDs := o.DishIDs
	if dishIDs == nil {
		dishIDs = []uuid.UUID{}
	}
	return OrderView{
		ID:          o.ID,
		OrderDate:   o.OrderDate,
		Status:      o.Status,
		ClientEmail: o.ClientEmail,
		DishIDs:     dishIDs,
	}
}

func (r *Review) View() ReviewView {
	return ReviewView{
		ID:            r.ID,
		Rating:        r.Rating,
		Comment:       r.Comment,
		ReviewDate:    r.ReviewDate,
		ReviewerEmail: r.ReviewerEmail,
		DishID:        r.DishID,
	}
}
