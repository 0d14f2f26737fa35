package service_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"salon/infras/otel/mocks"
	bookingMocks "salon/internal/domains/booking/mocks"
	"salon/internal/domains/booking/model"
	"salon/internal/domains/booking/model/dto"
	"salon/internal/domains/booking/service"
	"salon/shared/constant"
	"salon/shared/failure"
	"salon/shared/session"
)

func validIntent() session.BookingIntent {
	return session.BookingIntent{
		Type:      constant.BookingTypeService,
		ServiceID: "svc-1",
		Name:      "Classic Haircut",
		Price:     35,
		Duration:  45,
	}
}

func validInfo() model.CustomerInfo {
	return model.CustomerInfo{
		FirstName: "Jane",
		LastName:  "Doe",
		Email:     "jane@example.com",
		Phone:     "555-0100",
	}
}

func TestBookingService_CheckAvailability(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := bookingMocks.NewMockBooking(ctrl)
	svc := service.New(mockRepo, mocks.NewOtel())

	tests := []struct {
		name      string
		req       dto.AvailabilityRequest
		setupMock func()
		want      dto.AvailabilityResponse
		wantErr   bool
	}{
		{
			name: "available slot",
			req: dto.AvailabilityRequest{
				Date:      "2024-06-10",
				TimeSlot:  "10:00",
				StylistID: "sty-1",
			},
			setupMock: func() {
				mockRepo.EXPECT().
					CheckAvailability(gomock.Any(), gomock.Any()).
					Return(dto.AvailabilityResponse{Available: true}, nil)
			},
			want: dto.AvailabilityResponse{Available: true},
		},
		{
			name: "unavailable slot with reason",
			req: dto.AvailabilityRequest{
				Date:      "2024-06-10",
				TimeSlot:  "10:00",
				StylistID: "sty-1",
			},
			setupMock: func() {
				mockRepo.EXPECT().
					CheckAvailability(gomock.Any(), gomock.Any()).
					Return(dto.AvailabilityResponse{Available: false, Reason: "Stylist is booked"}, nil)
			},
			want: dto.AvailabilityResponse{Available: false, Reason: "Stylist is booked"},
		},
		{
			name: "invalid date format",
			req: dto.AvailabilityRequest{
				Date:      "10-06-2024",
				TimeSlot:  "10:00",
				StylistID: "sty-1",
			},
			setupMock: func() {},
			wantErr:   true,
		},
		{
			name: "invalid time format",
			req: dto.AvailabilityRequest{
				Date:      "2024-06-10",
				TimeSlot:  "10am",
				StylistID: "sty-1",
			},
			setupMock: func() {},
			wantErr:   true,
		},
		{
			name: "repository error",
			req: dto.AvailabilityRequest{
				Date:      "2024-06-10",
				TimeSlot:  "10:00",
				StylistID: "sty-1",
			},
			setupMock: func() {
				mockRepo.EXPECT().
					CheckAvailability(gomock.Any(), gomock.Any()).
					Return(dto.AvailabilityResponse{}, errors.New("connection refused"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			got, err := svc.CheckAvailability(context.Background(), tt.req)
			if tt.wantErr {
				assert.Error(t, err)

				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestBookingService_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := bookingMocks.NewMockBooking(ctrl)
	svc := service.New(mockRepo, mocks.NewOtel())

	t.Run("service intent maps to serviceIds", func(t *testing.T) {
		mockRepo.EXPECT().
			Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, req dto.CreateBookingRequest) (dto.BookingAcknowledgment, error) {
				assert.Equal(t, constant.BookingTypeService, req.BookingType)
				assert.Equal(t, []string{"svc-1"}, req.ServiceIDs)
				assert.Nil(t, req.PackageID)
				assert.Equal(t, []string{"sty-1"}, req.StylistIDs)
				assert.Equal(t, 35.0, req.TotalPrice)

				return dto.BookingAcknowledgment{ID: "bk-1"}, nil
			})

		ack, err := svc.Create(context.Background(), validIntent(), "2024-06-10", "10:00", "sty-1", validInfo())
		assert.NoError(t, err)
		assert.Equal(t, "bk-1", ack.ID)
	})

	t.Run("incomplete customer info is rejected", func(t *testing.T) {
		_, err := svc.Create(context.Background(), validIntent(), "2024-06-10", "10:00", "sty-1", model.CustomerInfo{
			FirstName: "Jane",
		})
		assert.Error(t, err)
		assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
	})

	t.Run("repository error is propagated", func(t *testing.T) {
		mockRepo.EXPECT().
			Create(gomock.Any(), gomock.Any()).
			Return(dto.BookingAcknowledgment{}, errors.New("internal error"))

		_, err := svc.Create(context.Background(), validIntent(), "2024-06-10", "10:00", "sty-1", validInfo())
		assert.Error(t, err)
	})
}

func TestBuildCreateRequest(t *testing.T) {
	info := validInfo()

	t.Run("package intent sets packageId and empty serviceIds", func(t *testing.T) {
		req := dto.BuildCreateRequest(session.BookingIntent{
			Type:      constant.BookingTypePackage,
			PackageID: "pkg-1",
			Name:      "Bridal Package",
			Price:     250,
		}, "2024-06-10", "10:00", "sty-1", info)

		assert.Equal(t, []string{}, req.ServiceIDs)
		if assert.NotNil(t, req.PackageID) {
			assert.Equal(t, "pkg-1", *req.PackageID)
		}
		assert.Equal(t, 250.0, req.TotalPrice)
	})

	t.Run("appointment intent always prices at zero", func(t *testing.T) {
		req := dto.BuildCreateRequest(session.BookingIntent{
			Type:  constant.BookingTypeAppointment,
			Name:  "Walk-in Consultation",
			Price: 99,
		}, "2024-06-10", "10:00", "sty-1", info)

		assert.Equal(t, []string{}, req.ServiceIDs)
		assert.Nil(t, req.PackageID)
		assert.Zero(t, req.TotalPrice)
	})
}
