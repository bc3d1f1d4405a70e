package user

import (
	"context"
	"errors"
	"unicode/utf8"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"moviesexplorer/pkg/validation"
)

const (
	nameMinLen = 2
	nameMaxLen = 30
)

var (
	ErrNotFound           = errors.New("user not found")
	ErrAlreadyExists      = errors.New("user already exists")
	ErrInvalidID          = errors.New("invalid ID format")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

type User struct {
	MongoID  primitive.ObjectID `bson:"_id,omitempty" json:"-"`
	ID       string             `bson:"-" json:"_id"`
	Name     string             `bson:"name" json:"name"`
	Email    string             `bson:"email" json:"email"`
	Password string             `bson:"password" json:"-"`
}

type Repository interface {
	Create(ctx context.Context, user *User) error
	FindByID(ctx context.Context, id string) (*User, error)
	FindByEmail(ctx context.Context, email string) (*User, error)
	Update(ctx context.Context, id, name, email string) (*User, error)
}

// Validate checks the stored shape of a user, independent of the request
// schema that usually runs first.
func (u *User) Validate() error {
	var errs validation.Errors
	if n := utf8.RuneCountInString(u.Name); u.Name != "" && (n < nameMinLen || n > nameMaxLen) {
		errs.Add("имя должно быть от 2 до 30 символов")
	}
	if !validation.IsEmail(u.Email) {
		errs.Add("некорректный email")
	}
	return errs.Err()
}
