package mongostore

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"theboar/internal/db"
	"theboar/internal/model"
	"theboar/internal/repository"
)

type menuRepository struct {
	coll *mongo.Collection
}

// NewMenuRepository builds a repository on the Cardapio collection.
func NewMenuRepository(database *mongo.Database) repository.MenuRepository {
	return &menuRepository{coll: database.Collection(db.MenuCollection)}
}

func (r *menuRepository) List(ctx context.Context) ([]model.MenuItem, error) {
	cur, err := r.coll.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "_id", Value: 1}}))
	if err != nil {
		return nil, translateError(err)
	}
	var docs []menuDocument
	if err := cur.All(ctx, &docs); err != nil {
		return nil, err
	}

	items := make([]model.MenuItem, 0, len(docs))
	for _, d := range docs {
		it, err := d.toModel()
		if err != nil {
			return nil, err
		}
		items = append(items, it)
	}
	return items, nil
}

func (r *menuRepository) FindByID(ctx context.Context, id int) (*model.MenuItem, error) {
	var doc menuDocument
	if err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&doc); err != nil {
		return nil, translateError(err)
	}
	item, err := doc.toModel()
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *menuRepository) Count(ctx context.Context) (int64, error) {
	n, err := r.coll.CountDocuments(ctx, bson.M{})
	return n, translateError(err)
}

func (r *menuRepository) CreateBatch(ctx context.Context, items []model.MenuItem) error {
	if len(items) == 0 {
		return nil
	}
	docs := make([]interface{}, 0, len(items))
	for _, it := range items {
		d, err := newMenuDocument(it)
		if err != nil {
			return err
		}
		docs = append(docs, d)
	}
	_, err := r.coll.InsertMany(ctx, docs)
	return translateError(err)
}
