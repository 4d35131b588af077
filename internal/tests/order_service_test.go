package tests

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"restaurant-backend/internal/domain"
	"restaurant-backend/internal/mocks"
	"restaurant-backend/internal/service"
)

func TestOrderService_PlaceOrder(t *testing.T) {
	ctx := context.Background()

	client := &domain.User{ID: uuid.New(), Username: "alice", Email: "a@x.com"}
	dish1 := domain.Dish{ID: uuid.New(), Name: "Pasta", Price: 12.5}
	dish2 := domain.Dish{ID: uuid.New(), Name: "Pizza", Price: 9.0}
	ghostID := uuid.New()

	t.Run("error_client_not_found", func(t *testing.T) {
		orders := mocks.NewOrderRepository(t)
		users := mocks.NewUserRepository(t)
		dishes := mocks.NewDishRepository(t)
		svc := service.NewOrderService(orders, users, dishes, nil, nil)

		users.On("FindUserByEmail", ctx, "ghost@x.com").Return(nil, nil).Once()

		view, err := svc.PlaceOrder(ctx, "ghost@x.com", []uuid.UUID{dish1.ID})
		assert.Nil(t, view)
		assert.ErrorIs(t, err, service.ErrNotFound)
	})

	t.Run("error_empty_dish_list", func(t *testing.T) {
		orders := mocks.NewOrderRepository(t)
		users := mocks.NewUserRepository(t)
		dishes := mocks.NewDishRepository(t)
		svc := service.NewOrderService(orders, users, dishes, nil, nil)

		users.On("FindUserByEmail", ctx, client.Email).Return(client, nil).Once()

		view, err := svc.PlaceOrder(ctx, client.Email, nil)
		assert.Nil(t, view)
		assert.ErrorIs(t, err, service.ErrInvalidInput)
		orders.AssertNotCalled(t, "CreateOrder", mock.Anything, mock.Anything)
	})

	t.Run("error_missing_dishes_enumerated", func(t *testing.T) {
		orders := mocks.NewOrderRepository(t)
		users := mocks.NewUserRepository(t)
		dishes := mocks.NewDishRepository(t)
		svc := service.NewOrderService(orders, users, dishes, nil, nil)

		users.On("FindUserByEmail", ctx, client.Email).Return(client, nil).Once()
		dishes.On("FindDishesByIDs", ctx, mock.Anything).Return([]domain.Dish{dish1}, nil).Once()

		view, err := svc.PlaceOrder(ctx, client.Email, []uuid.UUID{dish1.ID, ghostID})
		assert.Nil(t, view)
		assert.ErrorIs(t, err, service.ErrNotFound)

		var missingErr *service.MissingDishesError
		assert.ErrorAs(t, err, &missingErr)
		assert.ElementsMatch(t, []uuid.UUID{ghostID}, missingErr.MissingIDs)
		orders.AssertNotCalled(t, "CreateOrder", mock.Anything, mock.Anything)
	})

	t.Run("success_duplicates_preserved", func(t *testing.T) {
		orders := mocks.NewOrderRepository(t)
		users := mocks.NewUserRepository(t)
		dishes := mocks.NewDishRepository(t)
		publisher := mocks.NewConfirmationPublisher(t)
		qr := mocks.NewQRGenerator(t)
		svc := service.NewOrderService(orders, users, dishes, publisher, qr)

		requested := []uuid.UUID{dish1.ID, dish2.ID, dish1.ID}

		users.On("FindUserByEmail", ctx, client.Email).Return(client, nil).Once()
		dishes.On("FindDishesByIDs", ctx, []uuid.UUID{dish1.ID, dish2.ID}).
			Return([]domain.Dish{dish1, dish2}, nil).Once()

		var created *domain.Order
		orders.On("CreateOrder", ctx, mock.Anything).Run(func(args mock.Arguments) {
			created = args.Get(1).(*domain.Order)
		}).Return(nil).Once()

		publisher.On("PublishConfirmation", ctx, mock.MatchedBy(func(msg domain.ConfirmationMessage) bool {
			return msg.Type == "order_confirmation" && msg.Recipient == client.Email
		})).Return(nil).Once()
		qr.On("Generate", mock.Anything).Return([]byte("png"), nil).Once()
		orders.On("SaveQRCode", ctx, mock.Anything, []byte("png")).Return(nil).Once()

		view, err := svc.PlaceOrder(ctx, client.Email, requested)
		assert.NoError(t, err)
		assert.NotNil(t, view)
		assert.Equal(t, "PLACED", view.Status)
		assert.Equal(t, client.Email, view.ClientEmail)
		assert.Equal(t, requested, view.DishIDs)
		assert.Equal(t, requested, created.DishIDs)
		assert.WithinDuration(t, time.Now(), view.OrderDate, 5*time.Second)
	})

	t.Run("success_notification_failure_does_not_fail_order", func(t *testing.T) {
		orders := mocks.NewOrderRepository(t)
		users := mocks.NewUserRepository(t)
		dishes := mocks.NewDishRepository(t)
		publisher := mocks.NewConfirmationPublisher(t)
		svc := service.NewOrderService(orders, users, dishes, publisher, nil)

		users.On("FindUserByEmail", ctx, client.Email).Return(client, nil).Once()
		dishes.On("FindDishesByIDs", ctx, []uuid.UUID{dish1.ID}).
			Return([]domain.Dish{dish1}, nil).Once()
		orders.On("CreateOrder", ctx, mock.Anything).Return(nil).Once()
		publisher.On("PublishConfirmation", ctx, mock.Anything).
			Return(assert.AnError).Once()

		view, err := svc.PlaceOrder(ctx, client.Email, []uuid.UUID{dish1.ID})
		assert.NoError(t, err)
		assert.NotNil(t, view)
		assert.Equal(t, "PLACED", view.Status)
	})
}

func TestOrderService_GetOrderForUser(t *testing.T) {
	ctx := context.Background()
	orderID := uuid.New()
	stored := &domain.Order{
		ID:          orderID,
		OrderDate:   time.Now(),
		Status:      "PLACED",
		ClientEmail: "a@x.com",
		DishIDs:     []uuid.UUID{uuid.New()},
	}

	tests := []struct {
		name          string
		actorEmail    string
		roles         []string
		order         *domain.Order
		expectedError error
	}{
		{name: "owner_without_admin_role", actorEmail: "a@x.com", roles: nil, order: stored},
		{name: "admin_with_other_email", actorEmail: "root@x.com", roles: []string{"ADMIN"}, order: stored},
		{name: "denied_other_user", actorEmail: "b@x.com", roles: []string{"CLIENT"}, order: stored, expectedError: service.ErrForbidden},
		{name: "order_not_found", actorEmail: "a@x.com", roles: nil, order: nil, expectedError: service.ErrNotFound},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			orders := mocks.NewOrderRepository(t)
			users := mocks.NewUserRepository(t)
			dishes := mocks.NewDishRepository(t)
			svc := service.NewOrderService(orders, users, dishes, nil, nil)

			orders.On("FindOrderByID", ctx, orderID).Return(testCase.order, nil).Once()

			view, err := svc.GetOrderForUser(ctx, orderID, testCase.actorEmail, testCase.roles)
			if testCase.expectedError != nil {
				assert.Nil(t, view)
				assert.ErrorIs(t, err, testCase.expectedError)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, orderID, view.ID)
		})
	}
}

func TestOrderService_GetOrderByID(t *testing.T) {
	ctx := context.Background()
	orderID := uuid.New()

	t.Run("found_skips_ownership_check", func(t *testing.T) {
		orders := mocks.NewOrderRepository(t)
		svc := service.NewOrderService(orders, mocks.NewUserRepository(t), mocks.NewDishRepository(t), nil, nil)

		orders.On("FindOrderByID", ctx, orderID).Return(&domain.Order{
			ID:          orderID,
			Status:      "PLACED",
			ClientEmail: "a@x.com",
			DishIDs:     []uuid.UUID{uuid.New()},
		}, nil).Once()

		view, err := svc.GetOrderByID(ctx, orderID)
		assert.NoError(t, err)
		assert.Equal(t, orderID, view.ID)
		assert.Equal(t, "a@x.com", view.ClientEmail)
	})

	t.Run("error_not_found", func(t *testing.T) {
		orders := mocks.NewOrderRepository(t)
		svc := service.NewOrderService(orders, mocks.NewUserRepository(t), mocks.NewDishRepository(t), nil, nil)

		orders.On("FindOrderByID", ctx, orderID).Return(nil, nil).Once()

		view, err := svc.GetOrderByID(ctx, orderID)
		assert.Nil(t, view)
		assert.ErrorIs(t, err, service.ErrNotFound)
	})
}

func TestOrderService_UpdateOrderStatus(t *testing.T) {
	ctx := context.Background()
	orderID := uuid.New()
	stored := &domain.Order{ID: orderID, Status: "PLACED", ClientEmail: "a@x.com"}

	t.Run("error_blank_status", func(t *testing.T) {
		orders := mocks.NewOrderRepository(t)
		svc := service.NewOrderService(orders, mocks.NewUserRepository(t), mocks.NewDishRepository(t), nil, nil)

		view, err := svc.UpdateOrderStatus(ctx, orderID, "   ")
		assert.Nil(t, view)
		assert.ErrorIs(t, err, service.ErrInvalidInput)
		orders.AssertNotCalled(t, "UpdateOrderStatus", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("error_order_not_found", func(t *testing.T) {
		orders := mocks.NewOrderRepository(t)
		svc := service.NewOrderService(orders, mocks.NewUserRepository(t), mocks.NewDishRepository(t), nil, nil)

		orders.On("FindOrderByID", ctx, orderID).Return(nil, nil).Once()

		_, err := svc.UpdateOrderStatus(ctx, orderID, "SHIPPED")
		assert.ErrorIs(t, err, service.ErrNotFound)
	})

	t.Run("success_strips_json_quotes", func(t *testing.T) {
		orders := mocks.NewOrderRepository(t)
		svc := service.NewOrderService(orders, mocks.NewUserRepository(t), mocks.NewDishRepository(t), nil, nil)

		orders.On("FindOrderByID", ctx, orderID).Return(stored, nil).Once()
		orders.On("UpdateOrderStatus", ctx, orderID, "SHIPPED").Return(nil).Once()

		view, err := svc.UpdateOrderStatus(ctx, orderID, "\"SHIPPED\"")
		assert.NoError(t, err)
		assert.Equal(t, "SHIPPED", view.Status)
	})

	t.Run("success_no_transition_graph", func(t *testing.T) {
		orders := mocks.NewOrderRepository(t)
		svc := service.NewOrderService(orders, mocks.NewUserRepository(t), mocks.NewDishRepository(t), nil, nil)

		// Any non-blank value is accepted, including resubmitting the
		// current one or leaving a terminal-looking state.
		for _, status := range []string{"PLACED", "DELIVERED", "PLACED", "whatever-next"} {
			orders.On("FindOrderByID", ctx, orderID).Return(stored, nil).Once()
			orders.On("UpdateOrderStatus", ctx, orderID, status).Return(nil).Once()

			view, err := svc.UpdateOrderStatus(ctx, orderID, status)
			assert.NoError(t, err)
			assert.Equal(t, status, view.Status)
		}
	})
}

func TestOrderService_ListOrdersByUserEmail(t *testing.T) {
	ctx := context.Background()
	client := &domain.User{ID: uuid.New(), Email: "a@x.com"}

	t.Run("error_user_not_found", func(t *testing.T) {
		users := mocks.NewUserRepository(t)
		svc := service.NewOrderService(mocks.NewOrderRepository(t), users, mocks.NewDishRepository(t), nil, nil)

		users.On("FindUserByEmail", ctx, "ghost@x.com").Return(nil, nil).Once()

		_, err := svc.ListOrdersByUserEmail(ctx, "ghost@x.com")
		assert.ErrorIs(t, err, service.ErrNotFound)
	})

	t.Run("success", func(t *testing.T) {
		orders := mocks.NewOrderRepository(t)
		users := mocks.NewUserRepository(t)
		svc := service.NewOrderService(orders, users, mocks.NewDishRepository(t), nil, nil)

		users.On("FindUserByEmail", ctx, client.Email).Return(client, nil).Once()
		orders.On("ListOrdersByClient", ctx, client.ID).Return([]domain.Order{
			{ID: uuid.New(), Status: "PLACED", ClientEmail: client.Email},
			{ID: uuid.New(), Status: "SHIPPED", ClientEmail: client.Email},
		}, nil).Once()

		views, err := svc.ListOrdersByUserEmail(ctx, client.Email)
		assert.NoError(t, err)
		assert.Len(t, views, 2)
	})
}
