package movie

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type ServiceMovie interface {
	GetAll(ctx context.Context) ([]*Movie, error)
	Create(ctx context.Context, movie *Movie, ownerID string) error
	Delete(ctx context.Context, movieID, userID string) error
}

type MovieService struct {
	Repo Repository
}

func NewService(repo Repository) *MovieService {
	return &MovieService{Repo: repo}
}

func (s *MovieService) GetAll(ctx context.Context) ([]*Movie, error) {
	return s.Repo.GetAll(ctx)
}

// Create stores movie with ownerID as its owner, whatever the caller put
// into the Owner field.
func (s *MovieService) Create(ctx context.Context, movie *Movie, ownerID string) error {
	owner, err := primitive.ObjectIDFromHex(ownerID)
	if err != nil {
		return fmt.Errorf("owner id %q: %w", ownerID, err)
	}
	movie.MongoID = primitive.NilObjectID
	movie.ID = ""
	movie.Owner = owner

	if err := movie.Validate(); err != nil {
		return err
	}
	return s.Repo.Create(ctx, movie)
}

// Delete removes the movie only when userID owns it.
func (s *MovieService) Delete(ctx context.Context, movieID, userID string) error {
	movie, err := s.Repo.FindByID(ctx, movieID)
	if err != nil {
		return err
	}
	if !movie.OwnedBy(userID) {
		return ErrForbidden
	}
	return s.Repo.Delete(ctx, movieID)
}
