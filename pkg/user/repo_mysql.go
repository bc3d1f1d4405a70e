package user

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/go-sql-driver/mysql"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const mysqlDuplicateEntry = 1062

// MySQLRepo keeps users in a SQL table. Ids are still ObjectID hex strings
// so movie owners stay comparable whichever store holds the users.
type MySQLRepo struct {
	DB *sql.DB
}

func NewMySQLRepo(db *sql.DB) *MySQLRepo {
	return &MySQLRepo{DB: db}
}

func (r *MySQLRepo) Create(ctx context.Context, user *User) error {
	oid := primitive.NewObjectID()

	_, err := r.DB.ExecContext(ctx,
		"INSERT INTO users (id, name, email, password) VALUES (?, ?, ?, ?)",
		oid.Hex(), user.Name, user.Email, user.Password,
	)
	if err != nil {
		var myErr *mysql.MySQLError
		if errors.As(err, &myErr) && myErr.Number == mysqlDuplicateEntry {
			return ErrAlreadyExists
		}
		return fmt.Errorf("failed to insert user: %w", err)
	}

	user.MongoID = oid
	user.ID = oid.Hex()
	return nil
}

func (r *MySQLRepo) FindByID(ctx context.Context, id string) (*User, error) {
	if _, err := primitive.ObjectIDFromHex(id); err != nil {
		return nil, ErrInvalidID
	}
	return r.findOne(ctx, "SELECT id, name, email, password FROM users WHERE id = ?", id)
}

func (r *MySQLRepo) FindByEmail(ctx context.Context, email string) (*User, error) {
	return r.findOne(ctx, "SELECT id, name, email, password FROM users WHERE email = ?", email)
}

func (r *MySQLRepo) Update(ctx context.Context, id, name, email string) (*User, error) {
	if _, err := primitive.ObjectIDFromHex(id); err != nil {
		return nil, ErrInvalidID
	}

	_, err := r.DB.ExecContext(ctx,
		"UPDATE users SET name = ?, email = ? WHERE id = ?",
		name, email, id,
	)
	if err != nil {
		var myErr *mysql.MySQLError
		if errors.As(err, &myErr) && myErr.Number == mysqlDuplicateEntry {
			return nil, ErrAlreadyExists
		}
		return nil, fmt.Errorf("failed to update user: %w", err)
	}

	// affected rows are 0 for an unchanged row too, so re-read instead
	return r.FindByID(ctx, id)
}

func (r *MySQLRepo) findOne(ctx context.Context, query string, arg any) (*User, error) {
	var u User
	err := r.DB.QueryRowContext(ctx, query, arg).Scan(&u.ID, &u.Name, &u.Email, &u.Password)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to fetch user: %w", err)
	}

	oid, err := primitive.ObjectIDFromHex(u.ID)
	if err != nil {
		return nil, fmt.Errorf("stored user id %q: %w", u.ID, err)
	}
	u.MongoID = oid
	return &u, nil
}
