package service_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"salon/infras/otel/mocks"
	tokenMocks "salon/infras/token/mocks"
	timeslotMocks "salon/internal/domains/timeslot/mocks"
	"salon/internal/domains/timeslot/model"
	"salon/internal/domains/timeslot/model/dto"
	"salon/internal/domains/timeslot/service"
	"salon/shared/constant"
	"salon/shared/failure"
	sessionMocks "salon/shared/session/mocks"
)

func TestTimeSlotService_ForWeekday(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := timeslotMocks.NewMockTimeSlot(ctrl)
	mockSess := sessionMocks.NewMockStore(ctrl)
	mockInspector := tokenMocks.NewMockInspector(ctrl)
	svc := service.New(mockRepo, mockSess, mockInspector, mocks.NewOtel())

	tests := []struct {
		name      string
		weekday   string
		setupMock func()
		wantLen   int
		wantErr   bool
	}{
		{
			name:    "valid weekday returns slots",
			weekday: "Monday",
			setupMock: func() {
				mockRepo.EXPECT().
					ForWeekday(gomock.Any(), "Monday").
					Return([]model.TimeSlot{
						{ID: "ts-1", StartTime: "10:00", EndTime: "10:45", Available: true},
						{ID: "ts-2", StartTime: "11:00", EndTime: "11:45", Available: true},
					}, nil)
			},
			wantLen: 2,
		},
		{
			name:      "abbreviated weekday is rejected",
			weekday:   "Mon",
			setupMock: func() {},
			wantErr:   true,
		},
		{
			name:      "empty weekday is rejected",
			weekday:   "",
			setupMock: func() {},
			wantErr:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			got, err := svc.ForWeekday(context.Background(), tt.weekday)
			if tt.wantErr {
				assert.Error(t, err)

				return
			}

			assert.NoError(t, err)
			assert.Len(t, got, tt.wantLen)
		})
	}
}

func TestTimeSlotService_AdminGate(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := timeslotMocks.NewMockTimeSlot(ctrl)
	mockSess := sessionMocks.NewMockStore(ctrl)
	mockInspector := tokenMocks.NewMockInspector(ctrl)
	svc := service.New(mockRepo, mockSess, mockInspector, mocks.NewOtel())

	t.Run("customer role is forbidden", func(t *testing.T) {
		mockSess.EXPECT().Role().Return(constant.RoleCustomer)

		_, err := svc.List(context.Background())
		assert.Error(t, err)
		assert.Equal(t, http.StatusForbidden, failure.GetCode(err))
	})

	t.Run("missing role falls back to token claims", func(t *testing.T) {
		mockSess.EXPECT().Role().Return("")
		mockSess.EXPECT().Token().Return("raw-token")
		mockInspector.EXPECT().Role("raw-token").Return(constant.RoleAdmin)
		mockRepo.EXPECT().List(gomock.Any()).Return([]model.TimeSlot{{ID: "ts-1", StartTime: "09:00"}}, nil)

		got, err := svc.List(context.Background())
		assert.NoError(t, err)
		assert.Len(t, got, 1)
	})

	t.Run("admin can create valid slot", func(t *testing.T) {
		mockSess.EXPECT().Role().Return(constant.RoleAdmin)

		req := dto.CreateSlotRequest{
			DayOfWeek: "Tuesday",
			StartTime: "09:00",
			EndTime:   "09:45",
			Duration:  45,
		}

		mockRepo.EXPECT().
			Create(gomock.Any(), req).
			Return(model.TimeSlot{ID: "ts-9", DayOfWeek: "Tuesday", StartTime: "09:00"}, nil)

		got, err := svc.Create(context.Background(), req)
		assert.NoError(t, err)
		assert.Equal(t, "ts-9", got.ID)
	})

	t.Run("create rejects out-of-range duration", func(t *testing.T) {
		mockSess.EXPECT().Role().Return(constant.RoleAdmin)

		_, err := svc.Create(context.Background(), dto.CreateSlotRequest{
			DayOfWeek: "Tuesday",
			StartTime: "09:00",
			EndTime:   "09:45",
			Duration:  5,
		})
		assert.Error(t, err)
		assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
	})

	t.Run("toggle requires id", func(t *testing.T) {
		mockSess.EXPECT().Role().Return(constant.RoleAdmin)

		_, err := svc.Toggle(context.Background(), "")
		assert.Error(t, err)
	})

	t.Run("delete forwards to repository", func(t *testing.T) {
		mockSess.EXPECT().Role().Return(constant.RoleAdmin)
		mockRepo.EXPECT().Delete(gomock.Any(), "ts-1").Return(nil)

		assert.NoError(t, svc.Delete(context.Background(), "ts-1"))
	})
}
