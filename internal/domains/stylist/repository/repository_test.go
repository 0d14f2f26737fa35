package repository_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	backendMocks "salon/infras/backend/mocks"
	"salon/infras/otel/mocks"
	"salon/internal/domains/stylist/model"
	"salon/internal/domains/stylist/repository"
	"salon/shared/failure"
)

func TestStylistRepository_GetAll(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockClient := backendMocks.NewMockClient(ctrl)
	repo := repository.New(mockClient, mocks.NewOtel())

	t.Run("decodes stylist list", func(t *testing.T) {
		mockClient.EXPECT().
			Get(gomock.Any(), "stylist", nil, gomock.Any(), true).
			DoAndReturn(func(_ context.Context, _ string, _ any, out any, _ bool) error {
				*out.(*[]model.Stylist) = []model.Stylist{
					{ID: "sty-1", Name: "Alex", Specialty: "Color", Rating: 4.8},
					{ID: "sty-2", Name: "Morgan"},
				}

				return nil
			})

		got, err := repo.GetAll(context.Background())
		assert.NoError(t, err)
		assert.Len(t, got, 2)
		assert.Equal(t, "Alex", got[0].Name)
	})

	t.Run("rejects stylist missing required fields", func(t *testing.T) {
		mockClient.EXPECT().
			Get(gomock.Any(), "stylist", nil, gomock.Any(), true).
			DoAndReturn(func(_ context.Context, _ string, _ any, out any, _ bool) error {
				*out.(*[]model.Stylist) = []model.Stylist{{ID: "sty-1"}}

				return nil
			})

		_, err := repo.GetAll(context.Background())
		assert.Error(t, err)
		assert.True(t, failure.IsMalformedResponse(err))
	})
}
