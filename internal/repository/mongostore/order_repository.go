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

type orderRepository struct {
	coll *mongo.Collection
}

// NewOrderRepository builds a repository on the Pedidos collection. Items are
// embedded in the order document.
func NewOrderRepository(database *mongo.Database) repository.OrderRepository {
	return &orderRepository{coll: database.Collection(db.OrdersCollection)}
}

func (r *orderRepository) Create(ctx context.Context, order *model.Order) error {
	if order.ID == uuid.Nil {
		order.ID = uuid.New()
	}
	if order.CreatedAt.IsZero() {
		order.CreatedAt = time.Now().UTC()
	}
	for i := range order.Items {
		order.Items[i].OrderID = order.ID
	}

	doc, err := newOrderDocument(order)
	if err != nil {
		return err
	}
	_, err = r.coll.InsertOne(ctx, doc)
	return translateError(err)
}

func (r *orderRepository) ListByOwner(ctx context.Context, ownerEmail string) ([]model.Order, error) {
	cur, err := r.coll.Find(ctx, bson.M{"usuarioEmail": ownerEmail}, options.Find().SetSort(bson.D{{Key: "data", Value: 1}}))
	if err != nil {
		return nil, translateError(err)
	}
	var docs []orderDocument
	if err := cur.All(ctx, &docs); err != nil {
		return nil, err
	}

	orders := make([]model.Order, 0, len(docs))
	for _, d := range docs {
		o, err := d.toModel()
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}
	return orders, nil
}

func (r *orderRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status model.OrderStatus) (int64, error) {
	res, err := r.coll.UpdateOne(ctx,
		bson.M{"_id": id.String()},
		bson.M{"$set": bson.M{"status": string(status)}},
	)
	if err != nil {
		return 0, translateError(err)
	}
	return res.MatchedCount, nil
}
