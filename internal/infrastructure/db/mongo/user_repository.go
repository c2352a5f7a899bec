package mongo

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/kitenge-atelier/storefront/internal/core/domain"
)

type mongoUser struct {
	ID       primitive.ObjectID `bson:"_id,omitempty"`
	Username string             `bson:"username"`
	Password string             `bson:"password"`
	IsAdmin  string             `bson:"is_admin"`
}

func (mu mongoUser) toDomain() *domain.User {
	return &domain.User{
		ID:       mu.ID.Hex(),
		Username: mu.Username,
		Password: mu.Password,
		IsAdmin:  mu.IsAdmin,
	}
}

func (s *Store) GetUser(ctx context.Context, id string) (*domain.User, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrUserNotFound
	}
	return s.findUser(ctx, bson.M{"_id": oid})
}

// GetUserByUsername returns the earliest inserted match; ObjectIDs ascend
// with insertion time.
func (s *Store) GetUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	return s.findUser(ctx, bson.M{"username": username})
}

func (s *Store) findUser(ctx context.Context, filter bson.M) (*domain.User, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var mu mongoUser
	opts := options.FindOne().SetSort(bson.D{{Key: "_id", Value: 1}})
	if err := s.users.FindOne(ctx, filter, opts).Decode(&mu); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("find user: %w", err)
	}
	return mu.toDomain(), nil
}

func (s *Store) CreateUser(ctx context.Context, in domain.NewUser) (*domain.User, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := mongoUser{
		ID:       primitive.NewObjectID(),
		Username: in.Username,
		Password: in.Password,
		IsAdmin:  domain.DefaultIsAdmin,
	}
	if _, err := s.users.InsertOne(ctx, doc); err != nil {
		return nil, fmt.Errorf("insert user: %w", err)
	}
	return doc.toDomain(), nil
}
