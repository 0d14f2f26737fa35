package service_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"salon/infras/otel/mocks"
	reviewMocks "salon/internal/domains/review/mocks"
	"salon/internal/domains/review/model"
	"salon/internal/domains/review/model/dto"
	"salon/internal/domains/review/service"
	"salon/shared/failure"
)

func TestReviewService_Submit(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := reviewMocks.NewMockReview(ctrl)
	svc := service.New(mockRepo, mocks.NewOtel())

	tests := []struct {
		name      string
		req       dto.SubmitReviewRequest
		setupMock func()
		wantErr   bool
	}{
		{
			name: "valid review is submitted",
			req: dto.SubmitReviewRequest{
				BookingID: "bk-1",
				Rating:    5,
				Comment:   "Great service",
				Recommend: true,
			},
			setupMock: func() {
				mockRepo.EXPECT().
					Submit(gomock.Any(), gomock.Any()).
					Return(dto.SubmitReviewResponse{Success: true}, nil)
			},
		},
		{
			name: "rating above five is rejected",
			req: dto.SubmitReviewRequest{
				BookingID: "bk-1",
				Rating:    6,
			},
			setupMock: func() {},
			wantErr:   true,
		},
		{
			name: "booking id is required",
			req: dto.SubmitReviewRequest{
				Rating: 4,
			},
			setupMock: func() {},
			wantErr:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			_, err := svc.Submit(context.Background(), tt.req)
			if tt.wantErr {
				assert.Error(t, err)
				assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))

				return
			}

			assert.NoError(t, err)
		})
	}
}

func TestReviewService_List(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := reviewMocks.NewMockReview(ctrl)
	svc := service.New(mockRepo, mocks.NewOtel())

	mockRepo.EXPECT().
		List(gomock.Any()).
		Return([]model.Review{{ID: "rv-1", Rating: 5, Recommend: true}}, nil)

	got, err := svc.List(context.Background())
	assert.NoError(t, err)
	assert.Len(t, got, 1)
}
