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

func TestReviewService_AddReview(t *testing.T) {
	ctx := context.Background()
	reviewer := &domain.User{ID: uuid.New(), Username: "alice", Email: "a@x.com"}
	dishID := uuid.New()

	t.Run("error_reviewer_not_found", func(t *testing.T) {
		reviews := mocks.NewReviewRepository(t)
		users := mocks.NewUserRepository(t)
		dishes := mocks.NewDishRepository(t)
		svc := service.NewReviewService(reviews, users, dishes)

		users.On("FindUserByEmail", ctx, "ghost@x.com").Return(nil, nil).Once()

		view, err := svc.AddReview(ctx, "ghost@x.com", dishID, 5, "great")
		assert.Nil(t, view)
		assert.ErrorIs(t, err, service.ErrNotFound)
	})

	t.Run("error_dish_not_found", func(t *testing.T) {
		reviews := mocks.NewReviewRepository(t)
		users := mocks.NewUserRepository(t)
		dishes := mocks.NewDishRepository(t)
		svc := service.NewReviewService(reviews, users, dishes)

		users.On("FindUserByEmail", ctx, reviewer.Email).Return(reviewer, nil).Once()
		dishes.On("DishExists", ctx, dishID).Return(false, nil).Once()

		view, err := svc.AddReview(ctx, reviewer.Email, dishID, 5, "great")
		assert.Nil(t, view)
		assert.ErrorIs(t, err, service.ErrNotFound)
		reviews.AssertNotCalled(t, "CreateReview", mock.Anything, mock.Anything)
	})

	t.Run("success", func(t *testing.T) {
		reviews := mocks.NewReviewRepository(t)
		users := mocks.NewUserRepository(t)
		dishes := mocks.NewDishRepository(t)
		svc := service.NewReviewService(reviews, users, dishes)

		users.On("FindUserByEmail", ctx, reviewer.Email).Return(reviewer, nil).Once()
		dishes.On("DishExists", ctx, dishID).Return(true, nil).Once()

		var created *domain.Review
		reviews.On("CreateReview", ctx, mock.Anything).Run(func(args mock.Arguments) {
			created = args.Get(1).(*domain.Review)
		}).Return(nil).Once()

		view, err := svc.AddReview(ctx, reviewer.Email, dishID, 4, "pretty good")
		assert.NoError(t, err)
		assert.NotNil(t, view)
		assert.Equal(t, 4, view.Rating)
		assert.Equal(t, "pretty good", view.Comment)
		assert.Equal(t, reviewer.Email, view.ReviewerEmail)
		assert.Equal(t, dishID, view.DishID)
		assert.Equal(t, reviewer.ID, created.ReviewerID)
		assert.WithinDuration(t, time.Now(), view.ReviewDate, 5*time.Second)
	})
}

func TestReviewService_GetReviewsByDishID(t *testing.T) {
	ctx := context.Background()
	dishID := uuid.New()

	t.Run("error_dish_not_found", func(t *testing.T) {
		reviews := mocks.NewReviewRepository(t)
		dishes := mocks.NewDishRepository(t)
		svc := service.NewReviewService(reviews, mocks.NewUserRepository(t), dishes)

		dishes.On("DishExists", ctx, dishID).Return(false, nil).Once()

		views, err := svc.GetReviewsByDishID(ctx, dishID)
		assert.Nil(t, views)
		assert.ErrorIs(t, err, service.ErrNotFound)
		reviews.AssertNotCalled(t, "ListReviewsByDish", mock.Anything, mock.Anything)
	})

	t.Run("success_zero_reviews_is_empty_list", func(t *testing.T) {
		reviews := mocks.NewReviewRepository(t)
		dishes := mocks.NewDishRepository(t)
		svc := service.NewReviewService(reviews, mocks.NewUserRepository(t), dishes)

		dishes.On("DishExists", ctx, dishID).Return(true, nil).Once()
		reviews.On("ListReviewsByDish", ctx, dishID).Return(nil, nil).Once()

		views, err := svc.GetReviewsByDishID(ctx, dishID)
		assert.NoError(t, err)
		assert.NotNil(t, views)
		assert.Len(t, views, 0)
	})

	t.Run("success", func(t *testing.T) {
		reviews := mocks.NewReviewRepository(t)
		dishes := mocks.NewDishRepository(t)
		svc := service.NewReviewService(reviews, mocks.NewUserRepository(t), dishes)

		dishes.On("DishExists", ctx, dishID).Return(true, nil).Once()
		reviews.On("ListReviewsByDish", ctx, dishID).Return([]domain.Review{
			{ID: uuid.New(), Rating: 5, DishID: dishID, ReviewerEmail: "a@x.com"},
			{ID: uuid.New(), Rating: 2, DishID: dishID, ReviewerEmail: "b@x.com"},
		}, nil).Once()

		views, err := svc.GetReviewsByDishID(ctx, dishID)
		assert.NoError(t, err)
		assert.Len(t, views, 2)
	})
}

func TestReviewService_GetReviewsByUserEmail(t *testing.T) {
	ctx := context.Background()
	reviewer := &domain.User{ID: uuid.New(), Username: "alice", Email: "a@x.com"}

	t.Run("error_user_not_found", func(t *testing.T) {
		reviews := mocks.NewReviewRepository(t)
		users := mocks.NewUserRepository(t)
		svc := service.NewReviewService(reviews, users, mocks.NewDishRepository(t))

		users.On("FindUserByEmail", ctx, "ghost@x.com").Return(nil, nil).Once()

		views, err := svc.GetReviewsByUserEmail(ctx, "ghost@x.com")
		assert.Nil(t, views)
		assert.ErrorIs(t, err, service.ErrNotFound)
		reviews.AssertNotCalled(t, "ListReviewsByReviewer", mock.Anything, mock.Anything)
	})

	t.Run("success_lists_authored_reviews", func(t *testing.T) {
		reviews := mocks.NewReviewRepository(t)
		users := mocks.NewUserRepository(t)
		svc := service.NewReviewService(reviews, users, mocks.NewDishRepository(t))

		users.On("FindUserByEmail", ctx, reviewer.Email).Return(reviewer, nil).Once()
		reviews.On("ListReviewsByReviewer", ctx, reviewer.ID).Return([]domain.Review{
			{ID: uuid.New(), Rating: 5, ReviewerID: reviewer.ID, ReviewerEmail: reviewer.Email, DishID: uuid.New()},
			{ID: uuid.New(), Rating: 1, ReviewerID: reviewer.ID, ReviewerEmail: reviewer.Email, DishID: uuid.New()},
		}, nil).Once()

		views, err := svc.GetReviewsByUserEmail(ctx, reviewer.Email)
		assert.NoError(t, err)
		assert.Len(t, views, 2)
		for _, view := range views {
			assert.Equal(t, reviewer.Email, view.ReviewerEmail)
		}
	})

	t.Run("success_no_reviews_is_empty_list", func(t *testing.T) {
		reviews := mocks.NewReviewRepository(t)
		users := mocks.NewUserRepository(t)
		svc := service.NewReviewService(reviews, users, mocks.NewDishRepository(t))

		users.On("FindUserByEmail", ctx, reviewer.Email).Return(reviewer, nil).Once()
		reviews.On("ListReviewsByReviewer", ctx, reviewer.ID).Return(nil, nil).Once()

		views, err := svc.GetReviewsByUserEmail(ctx, reviewer.Email)
		assert.NoError(t, err)
		assert.NotNil(t, views)
		assert.Len(t, views, 0)
	})
}

func TestReviewService_DeleteReviewIfAllowed(t *testing.T) {
	ctx := context.Background()
	reviewID := uuid.New()
	stored := &domain.Review{ID: reviewID, Rating: 3, ReviewerEmail: "owner@x.com", DishID: uuid.New()}

	tests := []struct {
		name          string
		actorEmail    string
		roles         []string
		review        *domain.Review
		expectDelete  bool
		expectedError error
	}{
		{name: "owner_deletes_own_review", actorEmail: "owner@x.com", roles: []string{"CLIENT"}, review: stored, expectDelete: true},
		{name: "admin_deletes_any_review", actorEmail: "root@x.com", roles: []string{"ADMIN"}, review: stored, expectDelete: true},
		{name: "denied_other_user", actorEmail: "other@x.com", roles: []string{"CLIENT"}, review: stored, expectedError: service.ErrForbidden},
		{name: "review_not_found", actorEmail: "owner@x.com", roles: nil, review: nil, expectedError: service.ErrNotFound},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			reviews := mocks.NewReviewRepository(t)
			svc := service.NewReviewService(reviews, mocks.NewUserRepository(t), mocks.NewDishRepository(t))

			reviews.On("FindReviewByID", ctx, reviewID).Return(testCase.review, nil).Once()
			if testCase.expectDelete {
				reviews.On("DeleteReview", ctx, reviewID).Return(nil).Once()
			}

			err := svc.DeleteReviewIfAllowed(ctx, reviewID, testCase.actorEmail, testCase.roles)
			if testCase.expectedError != nil {
				assert.ErrorIs(t, err, testCase.expectedError)
				reviews.AssertNotCalled(t, "DeleteReview", mock.Anything, mock.Anything)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestReviewService_DeleteReview(t *testing.T) {
	ctx := context.Background()
	reviewID := uuid.New()

	t.Run("error_not_found", func(t *testing.T) {
		reviews := mocks.NewReviewRepository(t)
		svc := service.NewReviewService(reviews, mocks.NewUserRepository(t), mocks.NewDishRepository(t))

		reviews.On("FindReviewByID", ctx, reviewID).Return(nil, nil).Once()

		err := svc.DeleteReview(ctx, reviewID)
		assert.ErrorIs(t, err, service.ErrNotFound)
	})

	t.Run("success", func(t *testing.T) {
		reviews := mocks.NewReviewRepository(t)
		svc := service.NewReviewService(reviews, mocks.NewUserRepository(t), mocks.NewDishRepository(t))

		reviews.On("FindReviewByID", ctx, reviewID).
			Return(&domain.Review{ID: reviewID, ReviewerEmail: "a@x.com"}, nil).Once()
		reviews.On("DeleteReview", ctx, reviewID).Return(nil).Once()

		assert.NoError(t, svc.DeleteReview(ctx, reviewID))
	})
}

func TestReviewService_IsOwner(t *testing.T) {
	ctx := context.Background()
	reviewID := uuid.New()
	stored := &domain.Review{ID: reviewID, ReviewerEmail: "owner@x.com"}

	t.Run("false_for_empty_email", func(t *testing.T) {
		reviews := mocks.NewReviewRepository(t)
		svc := service.NewReviewService(reviews, mocks.NewUserRepository(t), mocks.NewDishRepository(t))

		assert.False(t, svc.IsOwner(ctx, reviewID, ""))
		reviews.AssertNotCalled(t, "FindReviewByID", mock.Anything, mock.Anything)
	})

	t.Run("false_for_absent_review", func(t *testing.T) {
		reviews := mocks.NewReviewRepository(t)
		svc := service.NewReviewService(reviews, mocks.NewUserRepository(t), mocks.NewDishRepository(t))

		reviews.On("FindReviewByID", ctx, reviewID).Return(nil, nil).Once()

		assert.False(t, svc.IsOwner(ctx, reviewID, "owner@x.com"))
	})

	t.Run("matches_author_exactly", func(t *testing.T) {
		reviews := mocks.NewReviewRepository(t)
		svc := service.NewReviewService(reviews, mocks.NewUserRepository(t), mocks.NewDishRepository(t))

		reviews.On("FindReviewByID", ctx, reviewID).Return(stored, nil).Twice()

		assert.True(t, svc.IsOwner(ctx, reviewID, "owner@x.com"))
		assert.False(t, svc.IsOwner(ctx, reviewID, "Owner@X.com"))
	})
}
