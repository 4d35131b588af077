package httpapi

import (
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"restaurant-backend/internal/domain"
	"restaurant-backend/internal/service"
)

type Handler struct {
	Orders  service.OrderServiceInterface
	Reviews service.ReviewServiceInterface
	Dishes  service.DishServiceInterface
}

func NewHandler(orders service.OrderServiceInterface, reviews service.ReviewServiceInterface, dishes service.DishServiceInterface) *Handler {
	return &Handler{
		Orders:  orders,
		Reviews: reviews,
		Dishes:  dishes,
	}
}

func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/health", h.healthCheck).Methods("GET")

	r.HandleFunc("/api/v1/orders", requireAuth(h.placeOrder)).Methods("POST")
	r.HandleFunc("/api/v1/orders", requireAdmin(h.getAllOrders)).Methods("GET")
	r.HandleFunc("/api/v1/orders/my-orders", requireAuth(h.getMyOrders)).Methods("GET")
	r.HandleFunc("/api/v1/orders/{id}", requireAuth(h.getOrder)).Methods("GET")
	r.HandleFunc("/api/v1/orders/{id}/status", requireAdmin(h.updateOrderStatus)).Methods("PUT")
	r.HandleFunc("/api/v1/orders/{id}/qrcode", requireAuth(h.getOrderQRCode)).Methods("GET")

	r.HandleFunc("/api/v1/reviews", requireAuth(h.addReview)).Methods("POST")
	r.HandleFunc("/api/v1/reviews/dish/{dishId}", h.getReviewsForDish).Methods("GET")
	r.HandleFunc("/api/v1/reviews/my-reviews", requireAuth(h.getMyReviews)).Methods("GET")
	r.HandleFunc("/api/v1/reviews/{id}", requireAuth(h.deleteReview)).Methods("DELETE")

	r.HandleFunc("/api/v1/dishes", h.getAllDishes).Methods("GET")
	r.HandleFunc("/api/v1/dishes", requireAdmin(h.addDish)).Methods("POST")
}

// errorResponse is the structured error payload for every failure.
type errorResponse struct {
	StatusCode int       `json:"status_code"`
	Message    string    `json:"message"`
	Timestamp  time.Time `json:"timestamp"`
}

func writeError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(errorResponse{
		StatusCode: status,
		Message:    message,
		Timestamp:  time.Now(),
	})
}

// writeServiceError maps an error kind to its response code exactly once.
// Anything unrecognized is reported as an internal error without leaking
// detail.
func writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, service.ErrInvalidInput):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, service.ErrNotFound):
		writeError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, service.ErrForbidden):
		writeError(w, http.StatusForbidden, "Access Denied: You do not have permission to perform this action.")
	case errors.Is(err, service.ErrConflict):
		writeError(w, http.StatusBadRequest, "Failed due to a data constraint. Perhaps you tried to create a duplicate item?")
	default:
		log.Printf("Unexpected error: %v", err)
		writeError(w, http.StatusInternalServerError, "An unexpected internal error occurred.")
	}
}

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}

func pathID(r *http.Request, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(mux.Vars(r)[name])
	return id, err == nil
}

func (h *Handler) healthCheck(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"status":    "healthy",
		"service":   "restaurant-backend",
		"timestamp": time.Now().Format(time.RFC3339),
	})
}

type placeOrderRequest struct {
	DishIDs []uuid.UUID `json:"dishIds"`
}

func (h *Handler) placeOrder(w http.ResponseWriter, r *http.Request) {
	actor := actorFrom(r)
	var req placeOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON format: "+err.Error())
		return
	}

	// The client email always comes from the authenticated identity, never
	// from the payload.
	order, err := h.Orders.PlaceOrder(r.Context(), actor.Email, req.DishIDs)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	log.Printf("Successfully placed order %s for user %s", order.ID, actor.Email)
	writeJSON(w, http.StatusCreated, order)
}

func (h *Handler) getOrder(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		writeError(w, http.StatusBadRequest, "Invalid order id.")
		return
	}
	actor := actorFrom(r)
	order, err := h.Orders.GetOrderForUser(r.Context(), id, actor.Email, actor.Roles)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, order)
}

func (h *Handler) getAllOrders(w http.ResponseWriter, r *http.Request) {
	orders, err := h.Orders.ListOrders(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, orders)
}

func (h *Handler) getMyOrders(w http.ResponseWriter, r *http.Request) {
	orders, err := h.Orders.ListOrdersByUserEmail(r.Context(), actorFrom(r).Email)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, orders)
}

// updateOrderStatus takes the new status as the raw request body; the
// workflow normalizes stray JSON quoting.
func (h *Handler) updateOrderStatus(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		writeError(w, http.StatusBadRequest, "Invalid order id.")
		return
	}
	body, err := io.ReadAll(r.Body)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Failed to read request body.")
		return
	}

	order, err := h.Orders.UpdateOrderStatus(r.Context(), id, string(body))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, order)
}

func (h *Handler) getOrderQRCode(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		writeError(w, http.StatusBadRequest, "Invalid order id.")
		return
	}
	qr, err := h.Orders.GetQRCode(r.Context(), id)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	if len(qr) == 0 {
		writeError(w, http.StatusNotFound, "QR code not found.")
		return
	}
	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Cache-Control", "public, max-age=3600")
	w.WriteHeader(http.StatusOK)
	w.Write(qr)
}

type addReviewRequest struct {
	DishID  uuid.UUID `json:"dishId"`
	Rating  int       `json:"rating"`
	Comment string    `json:"comment"`
}

func (h *Handler) addReview(w http.ResponseWriter, r *http.Request) {
	actor := actorFrom(r)
	var req addReviewRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON format: "+err.Error())
		return
	}

	review, err := h.Reviews.AddReview(r.Context(), actor.Email, req.DishID, req.Rating, req.Comment)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	log.Printf("Successfully added review %s by user %s", review.ID, actor.Email)
	writeJSON(w, http.StatusCreated, review)
}

func (h *Handler) getReviewsForDish(w http.ResponseWriter, r *http.Request) {
	dishID, ok := pathID(r, "dishId")
	if !ok {
		writeError(w, http.StatusBadRequest, "Invalid dish id.")
		return
	}
	reviews, err := h.Reviews.GetReviewsByDishID(r.Context(), dishID)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, reviews)
}

func (h *Handler) getMyReviews(w http.ResponseWriter, r *http.Request) {
	reviews, err := h.Reviews.GetReviewsByUserEmail(r.Context(), actorFrom(r).Email)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, reviews)
}

func (h *Handler) deleteReview(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		writeError(w, http.StatusBadRequest, "Invalid review id.")
		return
	}
	actor := actorFrom(r)
	if err := h.Reviews.DeleteReviewIfAllowed(r.Context(), id, actor.Email, actor.Roles); err != nil {
		writeServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) getAllDishes(w http.ResponseWriter, r *http.Request) {
	dishes, err := h.Dishes.List(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}
	if dishes == nil {
		dishes = []domain.Dish{}
	}
	writeJSON(w, http.StatusOK, dishes)
}

func (h *Handler) addDish(w http.ResponseWriter, r *http.Request) {
	var dish domain.Dish
	if err := json.NewDecoder(r.Body).Decode(&dish); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON format: "+err.Error())
		return
	}
	if err := h.Dishes.Add(r.Context(), &dish); err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, dish)
}
