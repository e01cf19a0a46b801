package mongostore

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"

	apperrors "theboar/internal/errors"
	"theboar/internal/model"
)

func dec128(t *testing.T, s string) primitive.Decimal128 {
	t.Helper()
	d, err := primitive.ParseDecimal128(s)
	require.NoError(t, err)
	return d
}

func TestUserRepository(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))
	ctx := context.Background()

	mt.Run("create", func(mt *mtest.T) {
		repo := NewUserRepository(mt.DB)
		mt.AddMockResponses(mtest.CreateSuccessResponse())

		user := &model.User{Name: "Ana", Email: "ana@x.com", CPF: "52998224725"}
		require.NoError(mt, repo.Create(ctx, user))
		assert.NotEqual(mt, uuid.Nil, user.ID)
		assert.False(mt, user.CreatedAt.IsZero())
	})

	mt.Run("create duplicate", func(mt *mtest.T) {
		repo := NewUserRepository(mt.DB)
		mt.AddMockResponses(mtest.CreateWriteErrorsResponse(mtest.WriteError{
			Index: 0, Code: 11000, Message: "E11000 duplicate key error",
		}))

		err := repo.Create(ctx, &model.User{Email: "ana@x.com"})
		assert.ErrorIs(mt, err, apperrors.ErrDuplicateKey)
	})

	mt.Run("find by email", func(mt *mtest.T) {
		repo := NewUserRepository(mt.DB)
		id := uuid.New()
		ns := mt.Coll.Database().Name() + ".Usuarios"
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns, mtest.FirstBatch, bson.D{
			{Key: "_id", Value: id.String()},
			{Key: "nome", Value: "Ana"},
			{Key: "sobrenome", Value: "Souza"},
			{Key: "email", Value: "ana@x.com"},
			{Key: "cpf", Value: "52998224725"},
			{Key: "senha", Value: "secret"},
		}))

		user, err := repo.FindByEmail(ctx, "ana@x.com")
		require.NoError(mt, err)
		assert.Equal(mt, id, user.ID)
		assert.Equal(mt, "Souza", user.Surname)
		assert.Equal(mt, "secret", user.Password)
	})

	mt.Run("find by email with an ObjectId record", func(mt *mtest.T) {
		repo := NewUserRepository(mt.DB)
		oid := primitive.NewObjectID()
		ns := mt.Coll.Database().Name() + ".Usuarios"
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns, mtest.FirstBatch, bson.D{
			{Key: "_id", Value: oid},
			{Key: "nome", Value: "Administrador"},
			{Key: "email", Value: "admin@admin.com"},
			{Key: "cpf", Value: "00000000000"},
			{Key: "senha", Value: "123admin"},
		}))

		user, err := repo.FindByEmail(ctx, "admin@admin.com")
		require.NoError(mt, err)
		assert.Equal(mt, uuid.NewSHA1(uuid.NameSpaceOID, []byte(oid.Hex())), user.ID)
		assert.Equal(mt, "123admin", user.Password)
	})

	mt.Run("find by cpf not found", func(mt *mtest.T) {
		repo := NewUserRepository(mt.DB)
		ns := mt.Coll.Database().Name() + ".Usuarios"
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns, mtest.FirstBatch))

		_, err := repo.FindByCPF(ctx, "52998224725")
		assert.ErrorIs(mt, err, apperrors.ErrNotFound)
	})

	mt.Run("update reports matched count", func(mt *mtest.T) {
		repo := NewUserRepository(mt.DB)
		mt.AddMockResponses(mtest.CreateSuccessResponse(
			bson.E{Key: "n", Value: 1},
			bson.E{Key: "nModified", Value: 0},
		))

		n, err := repo.UpdateByEmail(ctx, "ana@x.com", model.UserUpdate{Name: "Ana", Surname: "Souza", CPF: "52998224725"})
		require.NoError(mt, err)
		assert.Equal(mt, int64(1), n)
	})

	mt.Run("update no match", func(mt *mtest.T) {
		repo := NewUserRepository(mt.DB)
		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 0}))

		n, err := repo.UpdateByEmail(ctx, "ghost@x.com", model.UserUpdate{})
		require.NoError(mt, err)
		assert.Zero(mt, n)
	})
}

func TestOrderRepository(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))
	ctx := context.Background()

	mt.Run("create", func(mt *mtest.T) {
		repo := NewOrderRepository(mt.DB)
		mt.AddMockResponses(mtest.CreateSuccessResponse())

		order := &model.Order{
			OwnerEmail: "ana@x.com",
			Status:     model.OrderStatusConfirmed,
			Items: []model.OrderItem{{
				MenuItemID: 1, Title: "Bife", Category: model.CategoryMainCourse, Quantity: 2,
				UnitPrice: decimal.RequireFromString("25.50"), Total: decimal.RequireFromString("51.00"),
			}},
		}
		require.NoError(mt, repo.Create(ctx, order))
		assert.NotEqual(mt, uuid.Nil, order.ID)
		assert.Equal(mt, order.ID, order.Items[0].OrderID)
	})

	mt.Run("list by owner", func(mt *mtest.T) {
		repo := NewOrderRepository(mt.DB)
		id := uuid.New()
		placed := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
		ns := mt.Coll.Database().Name() + ".Pedidos"
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns, mtest.FirstBatch, bson.D{
			{Key: "_id", Value: id.String()},
			{Key: "usuarioEmail", Value: "ana@x.com"},
			{Key: "itens", Value: bson.A{bson.D{
				{Key: "idCardapio", Value: 8},
				{Key: "titulo", Value: "Pudim"},
				{Key: "tipo", Value: "Sobremesa"},
				{Key: "quantidade", Value: 3},
				{Key: "valorUnitario", Value: dec128(t, "12.00")},
				{Key: "valorTotal", Value: dec128(t, "36.00")},
			}}},
			{Key: "observacao", Value: ""},
			{Key: "status", Value: "Entregue"},
			{Key: "data", Value: placed},
		}))

		orders, err := repo.ListByOwner(ctx, "ana@x.com")
		require.NoError(mt, err)
		require.Len(mt, orders, 1)
		assert.Equal(mt, id, orders[0].ID)
		assert.Equal(mt, model.OrderStatusDelivered, orders[0].Status)
		assert.True(mt, placed.Equal(orders[0].CreatedAt))
		require.Len(mt, orders[0].Items, 1)
		assert.True(mt, decimal.RequireFromString("36").Equal(orders[0].Total()))
	})

	mt.Run("update status", func(mt *mtest.T) {
		repo := NewOrderRepository(mt.DB)
		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 1}, bson.E{Key: "nModified", Value: 1}))

		n, err := repo.UpdateStatus(ctx, uuid.New(), model.OrderStatusPreparing)
		require.NoError(mt, err)
		assert.Equal(mt, int64(1), n)
	})
}

func TestMenuRepository(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))
	ctx := context.Background()

	mt.Run("create batch", func(mt *mtest.T) {
		repo := NewMenuRepository(mt.DB)
		mt.AddMockResponses(mtest.CreateSuccessResponse())

		require.NoError(mt, repo.CreateBatch(ctx, model.DefaultMenu()))
	})

	mt.Run("list", func(mt *mtest.T) {
		repo := NewMenuRepository(mt.DB)
		ns := mt.Coll.Database().Name() + ".Cardapio"
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns, mtest.FirstBatch,
			bson.D{
				{Key: "_id", Value: 1},
				{Key: "tipo", Value: "Prato Principal"},
				{Key: "titulo", Value: "Bife Acebolado Completo"},
				{Key: "descricao", Value: "Arroz branco"},
				{Key: "valor", Value: dec128(t, "25.50")},
			},
			bson.D{
				{Key: "_id", Value: 12},
				{Key: "tipo", Value: "Bebida"},
				{Key: "titulo", Value: "Suco"},
				{Key: "descricao", Value: ""},
				{Key: "valor", Value: dec128(t, "8.00")},
			},
		))

		items, err := repo.List(ctx)
		require.NoError(mt, err)
		require.Len(mt, items, 2)
		assert.Equal(mt, model.CategoryDrink, items[1].Category)
		assert.True(mt, decimal.RequireFromString("25.5").Equal(items[0].UnitPrice))
	})

	mt.Run("find missing", func(mt *mtest.T) {
		repo := NewMenuRepository(mt.DB)
		ns := mt.Coll.Database().Name() + ".Cardapio"
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns, mtest.FirstBatch))

		_, err := repo.FindByID(ctx, 42)
		assert.ErrorIs(mt, err, apperrors.ErrNotFound)
	})
}

func TestDocumentID(t *testing.T) {
	id := uuid.New()
	got, err := documentID(id.String())
	require.NoError(t, err)
	assert.Equal(t, id, got)

	hex := "65f1c2a9e4b0a1b2c3d4e5f6"
	got, err = documentID(hex)
	require.NoError(t, err)
	again, _ := documentID(hex)
	assert.Equal(t, got, again)

	_, err = documentID("pedido-1")
	assert.Error(t, err)
}
