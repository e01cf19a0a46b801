// Package mongostore implements the repository interfaces on MongoDB.
package mongostore

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"theboar/internal/db"
	"theboar/internal/model"
	"theboar/internal/repository"
)

type userRepository struct {
	coll *mongo.Collection
}

// NewUserRepository builds a repository on the Usuarios collection.
func NewUserRepository(database *mongo.Database) repository.UserRepository {
	return &userRepository{coll: database.Collection(db.UsersCollection)}
}

func (r *userRepository) Create(ctx context.Context, user *model.User) error {
	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	now := time.Now().UTC()
	user.CreatedAt, user.UpdatedAt = now, now

	_, err := r.coll.InsertOne(ctx, newUserDocument(user))
	return translateError(err)
}

func (r *userRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	return r.findOne(ctx, bson.M{"email": email})
}

func (r *userRepository) FindByCPF(ctx context.Context, cpf string) (*model.User, error) {
	return r.findOne(ctx, bson.M{"cpf": cpf})
}

func (r *userRepository) findOne(ctx context.Context, filter bson.M) (*model.User, error) {
	var doc userDocument
	if err := r.coll.FindOne(ctx, filter).Decode(&doc); err != nil {
		return nil, translateError(err)
	}
	user, err := doc.toModel()
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) CountByEmail(ctx context.Context, email string) (int64, error) {
	n, err := r.coll.CountDocuments(ctx, bson.M{"email": email})
	return n, translateError(err)
}

func (r *userRepository) List(ctx context.Context) ([]model.User, error) {
	cur, err := r.coll.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "createdAt", Value: 1}}))
	if err != nil {
		return nil, translateError(err)
	}
	var docs []userDocument
	if err := cur.All(ctx, &docs); err != nil {
		return nil, err
	}

	users := make([]model.User, 0, len(docs))
	for _, d := range docs {
		u, err := d.toModel()
		if err != nil {
			return nil, err
		}
		users = append(users, u)
	}
	return users, nil
}

func (r *userRepository) UpdateByEmail(ctx context.Context, email string, upd model.UserUpdate) (int64, error) {
	set := bson.M{
		"nome":      upd.Name,
		"sobrenome": upd.Surname,
		"cpf":       upd.CPF,
		"updatedAt": time.Now().UTC(),
	}
	if upd.Password != nil {
		set["senha"] = *upd.Password
	}

	res, err := r.coll.UpdateOne(ctx, bson.M{"email": email}, bson.M{"$set": set})
	if err != nil {
		return 0, translateError(err)
	}
	return res.MatchedCount, nil
}
