package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"pingpong/internal/model"
)

type MockGreetingService struct {
	mock.Mock
}

func (m *MockGreetingService) Greet(ctx context.Context, name string) (*model.Greeting, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Greeting), args.Error(1)
}
