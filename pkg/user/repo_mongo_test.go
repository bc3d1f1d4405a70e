package user_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"

	"moviesexplorer/pkg/user"
)

func TestMongoRepo_Create(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("success", func(mt *mtest.T) {
		repo := user.NewMongoRepo(mt.DB)
		mt.AddMockResponses(mtest.CreateSuccessResponse())

		u := &user.User{Name: "Ann", Email: "a@x.com", Password: "hash"}
		err := repo.Create(ctx, u)

		require.NoError(t, err)
		assert.False(t, u.MongoID.IsZero())
		assert.Equal(t, u.MongoID.Hex(), u.ID)
	})

	mt.Run("duplicate email", func(mt *mtest.T) {
		repo := user.NewMongoRepo(mt.DB)
		mt.AddMockResponses(mtest.CreateWriteErrorsResponse(mtest.WriteError{
			Index:   0,
			Code:    11000,
			Message: "E11000 duplicate key error collection: moviesdb.users index: email_1",
		}))

		err := repo.Create(ctx, &user.User{Email: "a@x.com"})

		assert.ErrorIs(t, err, user.ErrAlreadyExists)
	})

	mt.Run("other error", func(mt *mtest.T) {
		repo := user.NewMongoRepo(mt.DB)
		mt.AddMockResponses(mtest.CreateCommandErrorResponse(mtest.CommandError{
			Code:    91,
			Message: "server is shutting down",
			Name:    "ShutdownInProgress",
		}))

		err := repo.Create(ctx, &user.User{Email: "a@x.com"})

		assert.Error(t, err)
		assert.NotErrorIs(t, err, user.ErrAlreadyExists)
		assert.Contains(t, err.Error(), "failed to insert user")
	})
}

func TestMongoRepo_FindByID(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("invalid id", func(mt *mtest.T) {
		repo := user.NewMongoRepo(mt.DB)

		_, err := repo.FindByID(ctx, "123")

		assert.ErrorIs(t, err, user.ErrInvalidID)
	})

	mt.Run("found", func(mt *mtest.T) {
		repo := user.NewMongoRepo(mt.DB)
		oid := primitive.NewObjectID()
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "moviesdb.users", mtest.FirstBatch, bson.D{
			{Key: "_id", Value: oid},
			{Key: "name", Value: "Ann"},
			{Key: "email", Value: "a@x.com"},
			{Key: "password", Value: "hash"},
		}))

		u, err := repo.FindByID(ctx, oid.Hex())

		require.NoError(t, err)
		assert.Equal(t, oid.Hex(), u.ID)
		assert.Equal(t, "Ann", u.Name)
		assert.Equal(t, "hash", u.Password)
	})

	mt.Run("not found", func(mt *mtest.T) {
		repo := user.NewMongoRepo(mt.DB)
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "moviesdb.users", mtest.FirstBatch))

		_, err := repo.FindByID(ctx, primitive.NewObjectID().Hex())

		assert.ErrorIs(t, err, user.ErrNotFound)
	})
}

func TestMongoRepo_FindByEmail(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("found", func(mt *mtest.T) {
		repo := user.NewMongoRepo(mt.DB)
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "moviesdb.users", mtest.FirstBatch, bson.D{
			{Key: "_id", Value: primitive.NewObjectID()},
			{Key: "email", Value: "a@x.com"},
		}))

		u, err := repo.FindByEmail(ctx, "a@x.com")

		require.NoError(t, err)
		assert.Equal(t, "a@x.com", u.Email)
	})

	mt.Run("driver error", func(mt *mtest.T) {
		repo := user.NewMongoRepo(mt.DB)
		mt.AddMockResponses(mtest.CreateCommandErrorResponse(mtest.CommandError{
			Code:    123,
			Message: "some error",
		}))

		_, err := repo.FindByEmail(ctx, "a@x.com")

		assert.EqualError(t, err, "failed to fetch user: some error")
	})
}

func TestMongoRepo_Update(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("success", func(mt *mtest.T) {
		repo := user.NewMongoRepo(mt.DB)
		oid := primitive.NewObjectID()
		mt.AddMockResponses(bson.D{
			{Key: "ok", Value: 1},
			{Key: "value", Value: bson.D{
				{Key: "_id", Value: oid},
				{Key: "name", Value: "Bob"},
				{Key: "email", Value: "b@x.com"},
			}},
		})

		u, err := repo.Update(ctx, oid.Hex(), "Bob", "b@x.com")

		require.NoError(t, err)
		assert.Equal(t, oid.Hex(), u.ID)
		assert.Equal(t, "Bob", u.Name)
		assert.Equal(t, "b@x.com", u.Email)
	})

	mt.Run("not found", func(mt *mtest.T) {
		repo := user.NewMongoRepo(mt.DB)
		mt.AddMockResponses(bson.D{
			{Key: "ok", Value: 1},
			{Key: "value", Value: nil},
		})

		_, err := repo.Update(ctx, primitive.NewObjectID().Hex(), "Bob", "b@x.com")

		assert.ErrorIs(t, err, user.ErrNotFound)
	})

	mt.Run("duplicate email", func(mt *mtest.T) {
		repo := user.NewMongoRepo(mt.DB)
		mt.AddMockResponses(mtest.CreateCommandErrorResponse(mtest.CommandError{
			Code:    11000,
			Message: "E11000 duplicate key error",
		}))

		_, err := repo.Update(ctx, primitive.NewObjectID().Hex(), "Bob", "taken@x.com")

		assert.ErrorIs(t, err, user.ErrAlreadyExists)
	})

	mt.Run("invalid id", func(mt *mtest.T) {
		repo := user.NewMongoRepo(mt.DB)

		_, err := repo.Update(ctx, "ü¶ß", "Bob", "b@x.com")

		assert.ErrorIs(t, err, user.ErrInvalidID)
	})
}
