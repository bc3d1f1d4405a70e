package user_test

import (
	"database/sql"
	"testing"

	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"moviesexplorer/pkg/user"
)

func setupTestDB(t *testing.T) *sql.DB {
	db, err := sql.Open("sqlite3", ":memory:")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { db.Close() })

	schema := `
	CREATE TABLE users (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL DEFAULT '',
		email TEXT NOT NULL UNIQUE,
		password TEXT NOT NULL
	);`

	_, err = db.Exec(schema)
	require.NoError(t, err)

	return db
}

func TestMySQLRepo_CreateAndFind(t *testing.T) {
	repo := user.NewMySQLRepo(setupTestDB(t))

	ann := &user.User{Name: "Ann", Email: "a@x.com", Password: "hashed_pass"}
	require.NoError(t, repo.Create(ctx, ann))
	assert.Len(t, ann.ID, 24)
	assert.Equal(t, ann.MongoID.Hex(), ann.ID)

	err := repo.Create(ctx, &user.User{Name: "Ann2", Email: "a@x.com", Password: "hashed_pass"})
	assert.Error(t, err)

	byEmail, err := repo.FindByEmail(ctx, "a@x.com")
	require.NoError(t, err)
	assert.Equal(t, ann.ID, byEmail.ID)
	assert.Equal(t, "hashed_pass", byEmail.Password)

	byID, err := repo.FindByID(ctx, ann.ID)
	require.NoError(t, err)
	assert.Equal(t, "Ann", byID.Name)

	_, err = repo.FindByEmail(ctx, "ghost@x.com")
	assert.ErrorIs(t, err, user.ErrNotFound)

	_, err = repo.FindByID(ctx, "60b6d28f3f1d2f8a2c0d6b5a")
	assert.ErrorIs(t, err, user.ErrNotFound)

	_, err = repo.FindByID(ctx, "not-hex")
	assert.ErrorIs(t, err, user.ErrInvalidID)
}

func TestMySQLRepo_Update(t *testing.T) {
	repo := user.NewMySQLRepo(setupTestDB(t))

	ann := &user.User{Name: "Ann", Email: "a@x.com", Password: "p"}
	require.NoError(t, repo.Create(ctx, ann))
	require.NoError(t, repo.Create(ctx, &user.User{Name: "Bob", Email: "b@x.com", Password: "p"}))

	updated, err := repo.Update(ctx, ann.ID, "Anna", "anna@x.com")
	require.NoError(t, err)
	assert.Equal(t, "Anna", updated.Name)
	assert.Equal(t, "anna@x.com", updated.Email)

	unchanged, err := repo.Update(ctx, ann.ID, "Anna", "anna@x.com")
	require.NoError(t, err)
	assert.Equal(t, ann.ID, unchanged.ID)

	_, err = repo.Update(ctx, ann.ID, "Anna", "b@x.com")
	assert.Error(t, err)

	_, err = repo.Update(ctx, "60b6d28f3f1d2f8a2c0d6b5a", "Ghost", "g@x.com")
	assert.ErrorIs(t, err, user.ErrNotFound)

	_, err = repo.Update(ctx, "nope", "Ghost", "g@x.com")
	assert.ErrorIs(t, err, user.ErrInvalidID)
}

func TestMySQLRepo_BadSchema(t *testing.T) {
	db, err := sql.Open("sqlite3", ":memory:")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	defer db.Close()

	_, err = db.Exec(`CREATE TABLE users (id TEXT PRIMARY KEY, password TEXT NOT NULL);`)
	require.NoError(t, err)

	repo := user.NewMySQLRepo(db)

	_, err = repo.FindByEmail(ctx, "whoever@x.com")
	assert.Error(t, err)
	assert.NotErrorIs(t, err, user.ErrNotFound)
}
