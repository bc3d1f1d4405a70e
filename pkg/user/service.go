package user

import (
	"context"
	"errors"
	"fmt"

	"moviesexplorer/pkg/hasher"
)

type ServiceInterface interface {
	Register(ctx context.Context, name, email, password string) (*User, error)
	Login(ctx context.Context, email, password string) (*User, error)
	GetByID(ctx context.Context, id string) (*User, error)
	Update(ctx context.Context, id, name, email string) (*User, error)
}

type Service struct {
	Repo   Repository
	Hasher hasher.Hasher
}

func NewService(repo Repository, h hasher.Hasher) *Service {
	return &Service{Repo: repo, Hasher: h}
}

func (s *Service) Register(ctx context.Context, name, email, password string) (*User, error) {
	user := &User{Name: name, Email: email}
	if err := user.Validate(); err != nil {
		return nil, err
	}

	exist, err := s.Repo.FindByEmail(ctx, email)
	if exist != nil && err == nil {
		return nil, ErrAlreadyExists
	}
	if err != nil && !errors.Is(err, ErrNotFound) {
		return nil, err
	}

	hashedPassword, err := s.Hasher.Hash(password)
	if err != nil {
		return nil, err
	}
	user.Password = hashedPassword

	if err := s.Repo.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *Service) Login(ctx context.Context, email, password string) (*User, error) {
	user, err := s.Repo.FindByEmail(ctx, email)
	if errors.Is(err, ErrNotFound) {
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, fmt.Errorf("login: %w", err)
	}

	if !s.Hasher.Verify(password, user.Password) {
		return nil, ErrInvalidCredentials
	}
	return user, nil
}

func (s *Service) GetByID(ctx context.Context, id string) (*User, error) {
	return s.Repo.FindByID(ctx, id)
}

func (s *Service) Update(ctx context.Context, id, name, email string) (*User, error) {
	if err := (&User{Name: name, Email: email}).Validate(); err != nil {
		return nil, err
	}
	return s.Repo.Update(ctx, id, name, email)
}
