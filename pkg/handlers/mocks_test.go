package handlers_test

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"moviesexplorer/pkg/movie"
	"moviesexplorer/pkg/user"
)

type mockUserService struct {
	mock.Mock
}

func (m *mockUserService) Register(ctx context.Context, name, email, password string) (*user.User, error) {
	args := m.Called(name, email, password)
	return args.Get(0).(*user.User), args.Error(1)
}

func (m *mockUserService) Login(ctx context.Context, email, password string) (*user.User, error) {
	args := m.Called(email, password)
	return args.Get(0).(*user.User), args.Error(1)
}

func (m *mockUserService) GetByID(ctx context.Context, id string) (*user.User, error) {
	args := m.Called(id)
	return args.Get(0).(*user.User), args.Error(1)
}

func (m *mockUserService) Update(ctx context.Context, id, name, email string) (*user.User, error) {
	args := m.Called(id, name, email)
	return args.Get(0).(*user.User), args.Error(1)
}

type mockMovieService struct {
	mock.Mock
}

func (m *mockMovieService) GetAll(ctx context.Context) ([]*movie.Movie, error) {
	args := m.Called()
	return args.Get(0).([]*movie.Movie), args.Error(1)
}

func (m *mockMovieService) Create(ctx context.Context, mv *movie.Movie, ownerID string) error {
	args := m.Called(mv, ownerID)
	if args.Error(0) == nil {
		mv.ID = "507f1f77bcf86cd799439011"
	}
	return args.Error(0)
}

func (m *mockMovieService) Delete(ctx context.Context, movieID, userID string) error {
	return m.Called(movieID, userID).Error(0)
}

type mockIssuer struct {
	mock.Mock
}

func (m *mockIssuer) Issue(userID string) (string, time.Time, error) {
	args := m.Called(userID)
	return args.String(0), args.Get(1).(time.Time), args.Error(2)
}
