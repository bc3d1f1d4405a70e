package movie

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"moviesexplorer/pkg/validation"
)

var (
	ErrNotFound  = errors.New("movie not found")
	ErrInvalidID = errors.New("invalid ID format")
	ErrForbidden = errors.New("movie belongs to another user")
)

type Movie struct {
	MongoID     primitive.ObjectID `bson:"_id,omitempty" json:"-"`
	ID          string             `bson:"-" json:"_id"`
	Country     string             `bson:"country" json:"country"`
	Director    string             `bson:"director" json:"director"`
	Duration    float64            `bson:"duration" json:"duration"`
	Year        string             `bson:"year" json:"year"`
	Description string             `bson:"description" json:"description"`
	Image       string             `bson:"image" json:"image"`
	Trailer     string             `bson:"trailer" json:"trailer"`
	Thumbnail   string             `bson:"thumbnail" json:"thumbnail"`
	MovieID     int                `bson:"movieId" json:"movieId"`
	NameRU      string             `bson:"nameRU" json:"nameRU"`
	NameEN      string             `bson:"nameEN" json:"nameEN"`
	Owner       primitive.ObjectID `bson:"owner" json:"owner"`
}

type Repository interface {
	Create(ctx context.Context, movie *Movie) error
	GetAll(ctx context.Context) ([]*Movie, error)
	FindByID(ctx context.Context, id string) (*Movie, error)
	Delete(ctx context.Context, id string) error
}

// OwnedBy reports whether userID created m.
func (m *Movie) OwnedBy(userID string) bool {
	return !m.Owner.IsZero() && m.Owner.Hex() == userID
}

func (m *Movie) Validate() error {
	var errs validation.Errors

	required := []struct {
		field string
		value string
	}{
		{"country", m.Country},
		{"director", m.Director},
		{"year", m.Year},
		{"description", m.Description},
		{"nameRU", m.NameRU},
		{"nameEN", m.NameEN},
	}
	for _, r := range required {
		if r.value == "" {
			errs.Add(fmt.Sprintf("поле %s обязательно", r.field))
		}
	}

	links := []struct {
		field string
		value string
	}{
		{"image", m.Image},
		{"trailer", m.Trailer},
		{"thumbnail", m.Thumbnail},
	}
	for _, l := range links {
		if !validation.IsURL(l.value) {
			errs.Add(fmt.Sprintf("поле %s должно быть ссылкой", l.field))
		}
	}

	if m.Owner.IsZero() {
		errs.Add("не указан владелец")
	}
	return errs.Err()
}
