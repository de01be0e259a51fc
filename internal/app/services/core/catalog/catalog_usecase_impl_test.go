package catalog

import (
	"context"
	"errors"
	"shrm-web/internal/pkg/constvars"
	"shrm-web/internal/pkg/dto/responses"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

type MockServiceClient struct {
	mock.Mock
}

func (m *MockServiceClient) GetServices(ctx context.Context) (*responses.ServiceList, error) {
	args := m.Called(ctx)
	result, _ := args.Get(0).(*responses.ServiceList)
	return result, args.Error(1)
}

func TestStaticServicesCoverEveryServiceType(t *testing.T) {
	slugs := make(map[string]bool)
	for _, service := range StaticServices() {
		slugs[service.Slug] = true
	}
	for _, option := range constvars.ServiceTypeOptions {
		assert.True(t, slugs[option.Value], option.Value)
	}
}

func TestMerge(t *testing.T) {
	static := []responses.Service{
		{Slug: "a", Title: "A", Description: "static a", Available: true},
		{Slug: "b", Title: "B", Description: "static b", Available: true},
	}

	t.Run("Remote Fields Win When Set", func(t *testing.T) {
		merged := Merge(static, []responses.Service{
			{Slug: "b", Description: "remote b", Duration: "60 minutes", Available: false},
		})

		assert.Equal(t, []responses.Service{
			{Slug: "a", Title: "A", Description: "static a", Available: true},
			{Slug: "b", Title: "B", Description: "remote b", Duration: "60 minutes", Available: false},
		}, merged)
	})

	t.Run("Unknown Remote Services Are Appended", func(t *testing.T) {
		merged := Merge(static, []responses.Service{
			{Slug: "c", Title: "C", Available: true},
			{Title: "no slug"},
		})

		assert.Len(t, merged, 3)
		assert.Equal(t, "c", merged[2].Slug)
	})

	t.Run("Static Slice Is Not Modified", func(t *testing.T) {
		Merge(static, []responses.Service{{Slug: "a", Title: "changed"}})

		assert.Equal(t, "A", static[0].Title)
	})
}

func TestCatalogUsecase_ListServices(t *testing.T) {
	t.Run("Backend Failure Falls Back To Static Catalog", func(t *testing.T) {
		client := new(MockServiceClient)
		client.On("GetServices", mock.Anything).Return(nil, errors.New("connection refused"))

		services := NewCatalogUsecase(client, zap.NewNop()).ListServices(context.Background())

		assert.Equal(t, StaticServices(), services)
	})

	t.Run("Backend Catalog Is Merged", func(t *testing.T) {
		client := new(MockServiceClient)
		client.On("GetServices", mock.Anything).Return(&responses.ServiceList{
			Services: []responses.Service{
				{Slug: constvars.ServiceGroupTherapy, Available: false},
			},
		}, nil)

		services := NewCatalogUsecase(client, zap.NewNop()).ListServices(context.Background())

		assert.Len(t, services, len(StaticServices()))
		for _, service := range services {
			assert.Equal(t, service.Slug != constvars.ServiceGroupTherapy, service.Available, service.Slug)
		}
	})
}
