package mongostore

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"theboar/internal/model"
)

// Stored document shapes. Field names follow the collections the web client
// has always used.

type userDocument struct {
	ID        string    `bson:"_id"`
	Name      string    `bson:"nome"`
	Surname   string    `bson:"sobrenome"`
	Email     string    `bson:"email"`
	CPF       string    `bson:"cpf"`
	Password  string    `bson:"senha"`
	CreatedAt time.Time `bson:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt"`
}

type orderItemDocument struct {
	MenuItemID int                  `bson:"idCardapio"`
	Title      string               `bson:"titulo"`
	Category   string               `bson:"tipo"`
	Quantity   int                  `bson:"quantidade"`
	UnitPrice  primitive.Decimal128 `bson:"valorUnitario"`
	Total      primitive.Decimal128 `bson:"valorTotal"`
}

type orderDocument struct {
	ID          string              `bson:"_id"`
	OwnerEmail  string              `bson:"usuarioEmail"`
	Items       []orderItemDocument `bson:"itens"`
	Observation string              `bson:"observacao"`
	Status      string              `bson:"status"`
	CreatedAt   time.Time           `bson:"data"`
}

type menuDocument struct {
	ID          int                  `bson:"_id"`
	Category    string               `bson:"tipo"`
	Title       string               `bson:"titulo"`
	Description string               `bson:"descricao"`
	UnitPrice   primitive.Decimal128 `bson:"valor"`
}

func toDecimal128(d decimal.Decimal) (primitive.Decimal128, error) {
	out, err := primitive.ParseDecimal128(d.String())
	if err != nil {
		return primitive.Decimal128{}, fmt.Errorf("encode decimal %s: %w", d, err)
	}
	return out, nil
}

func fromDecimal128(d primitive.Decimal128) (decimal.Decimal, error) {
	out, err := decimal.NewFromString(d.String())
	if err != nil {
		return decimal.Zero, fmt.Errorf("decode decimal %s: %w", d, err)
	}
	return out, nil
}

func newUserDocument(u *model.User) userDocument {
	return userDocument{
		ID:        u.ID.String(),
		Name:      u.Name,
		Surname:   u.Surname,
		Email:     u.Email,
		CPF:       u.CPF,
		Password:  u.Password,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

// documentID reads an _id written by this service (uuid string) or by the
// earlier web client (ObjectId, decoded as its hex form). ObjectIds map to a
// stable name-based uuid.
func documentID(raw string) (uuid.UUID, error) {
	if id, err := uuid.Parse(raw); err == nil {
		return id, nil
	}
	if _, err := primitive.ObjectIDFromHex(raw); err == nil {
		return uuid.NewSHA1(uuid.NameSpaceOID, []byte(raw)), nil
	}
	return uuid.Nil, fmt.Errorf("unrecognized document id %q", raw)
}

func (d userDocument) toModel() (model.User, error) {
	id, err := documentID(d.ID)
	if err != nil {
		return model.User{}, fmt.Errorf("decode user id: %w", err)
	}
	return model.User{
		ID:        id,
		Name:      d.Name,
		Surname:   d.Surname,
		Email:     d.Email,
		CPF:       d.CPF,
		Password:  d.Password,
		CreatedAt: d.CreatedAt,
		UpdatedAt: d.UpdatedAt,
	}, nil
}

func newOrderDocument(o *model.Order) (orderDocument, error) {
	items := make([]orderItemDocument, 0, len(o.Items))
	for _, it := range o.Items {
		unit, err := toDecimal128(it.UnitPrice)
		if err != nil {
			return orderDocument{}, err
		}
		total, err := toDecimal128(it.Total)
		if err != nil {
			return orderDocument{}, err
		}
		items = append(items, orderItemDocument{
			MenuItemID: it.MenuItemID,
			Title:      it.Title,
			Category:   string(it.Category),
			Quantity:   it.Quantity,
			UnitPrice:  unit,
			Total:      total,
		})
	}
	return orderDocument{
		ID:          o.ID.String(),
		OwnerEmail:  o.OwnerEmail,
		Items:       items,
		Observation: o.Observation,
		Status:      string(o.Status),
		CreatedAt:   o.CreatedAt,
	}, nil
}

func (d orderDocument) toModel() (model.Order, error) {
	id, err := documentID(d.ID)
	if err != nil {
		return model.Order{}, fmt.Errorf("decode order id: %w", err)
	}
	items := make([]model.OrderItem, 0, len(d.Items))
	for _, it := range d.Items {
		unit, err := fromDecimal128(it.UnitPrice)
		if err != nil {
			return model.Order{}, err
		}
		total, err := fromDecimal128(it.Total)
		if err != nil {
			return model.Order{}, err
		}
		items = append(items, model.OrderItem{
			OrderID:    id,
			MenuItemID: it.MenuItemID,
			Title:      it.Title,
			Category:   model.MenuCategory(it.Category),
			Quantity:   it.Quantity,
			UnitPrice:  unit,
			Total:      total,
		})
	}
	return model.Order{
		ID:          id,
		OwnerEmail:  d.OwnerEmail,
		Items:       items,
		Observation: d.Observation,
		Status:      model.OrderStatus(d.Status),
		CreatedAt:   d.CreatedAt,
		UpdatedAt:   d.CreatedAt,
	}, nil
}

func newMenuDocument(m model.MenuItem) (menuDocument, error) {
	price, err := toDecimal128(m.UnitPrice)
	if err != nil {
		return menuDocument{}, err
	}
	return menuDocument{
		ID:          m.ID,
		Category:    string(m.Category),
		Title:       m.Title,
		Description: m.Description,
		UnitPrice:   price,
	}, nil
}

func (d menuDocument) toModel() (model.MenuItem, error) {
	price, err := fromDecimal128(d.UnitPrice)
	if err != nil {
		return model.MenuItem{}, err
	}
	return model.MenuItem{
		ID:          d.ID,
		Category:    model.MenuCategory(d.Category),
		Title:       d.Title,
		Description: d.Description,
		UnitPrice:   price,
	}, nil
}
