package repository_test

import (
	"context"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	backendMocks "salon/infras/backend/mocks"
	"salon/infras/otel/mocks"
	"salon/internal/domains/catalog/model"
	"salon/internal/domains/catalog/repository"
	"salon/shared/failure"
)

func TestCatalogRepository_GetServices(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockClient := backendMocks.NewMockClient(ctrl)
	repo := repository.New(mockClient, mocks.NewOtel())

	t.Run("decodes service list", func(t *testing.T) {
		mockClient.EXPECT().
			Get(gomock.Any(), "services", gomock.Nil(), gomock.Any(), false).
			DoAndReturn(func(_ context.Context, _ string, _ url.Values, out any, _ bool) error {
				*out.(*[]model.Service) = []model.Service{
					{ID: "svc-1", Name: "Haircut", Price: 35},
				}

				return nil
			})

		got, err := repo.GetServices(context.Background(), "")
		assert.NoError(t, err)
		assert.Len(t, got, 1)
		assert.Equal(t, "Haircut", got[0].Name)
	})

	t.Run("rejects service missing id", func(t *testing.T) {
		mockClient.EXPECT().
			Get(gomock.Any(), "services", gomock.Nil(), gomock.Any(), false).
			DoAndReturn(func(_ context.Context, _ string, _ url.Values, out any, _ bool) error {
				*out.(*[]model.Service) = []model.Service{{Name: "Haircut"}}

				return nil
			})

		_, err := repo.GetServices(context.Background(), "")
		assert.Error(t, err)
		assert.True(t, failure.IsMalformedResponse(err))
	})
}

func TestCatalogRepository_GetPackages(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockClient := backendMocks.NewMockClient(ctrl)
	repo := repository.New(mockClient, mocks.NewOtel())

	mockClient.EXPECT().
		Get(gomock.Any(), "packages", gomock.Nil(), gomock.Any(), false).
		DoAndReturn(func(_ context.Context, _ string, _ url.Values, out any, _ bool) error {
			*out.(*[]model.Package) = []model.Package{{ID: "pkg-1"}}

			return nil
		})

	_, err := repo.GetPackages(context.Background())
	assert.Error(t, err)
	assert.True(t, failure.IsMalformedResponse(err))
}
