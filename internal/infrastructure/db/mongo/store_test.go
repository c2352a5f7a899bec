package mongo

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"

	"github.com/kitenge-atelier/storefront/internal/core/domain"
)

var created = time.Date(2026, 3, 1, 9, 30, 0, 0, time.UTC)

func productDoc(id, name, category string) bson.D {
	return bson.D{
		{Key: "_id", Value: id},
		{Key: "name", Value: name},
		{Key: "description", Value: "Hand-finished"},
		{Key: "category", Value: category},
		{Key: "type", Value: "ready"},
		{Key: "price_kes", Value: 6500},
		{Key: "images", Value: bson.A{}},
		{Key: "available_sizes", Value: nil},
		{Key: "fabric_options", Value: nil},
		{Key: "in_stock", Value: 0},
		{Key: "featured", Value: "false"},
		{Key: "created_at", Value: primitive.NewDateTimeFromTime(created)},
	}
}

func orderDoc(id, status string) bson.D {
	return bson.D{
		{Key: "_id", Value: id},
		{Key: "customer_name", Value: "Wanjiru"},
		{Key: "customer_email", Value: "wanjiru@example.com"},
		{Key: "garment_type", Value: "kaftan"},
		{Key: "fabric_preference", Value: "kitenge"},
		{Key: "measurements", Value: bson.D{{Key: "chest", Value: 96.0}, {Key: "waist", Value: 80.0}, {Key: "hip", Value: 100.0}}},
		{Key: "special_requirements", Value: nil},
		{Key: "status", Value: status},
		{Key: "estimated_price", Value: nil},
		{Key: "created_at", Value: primitive.NewDateTimeFromTime(created)},
	}
}

func newMockStore(mt *mtest.T) *Store {
	s := NewStore(mt.DB)
	s.newID = func() string { return "fixed-id" }
	s.now = func() time.Time { return created }
	return s
}

func ns(mt *mtest.T, collection string) string {
	return mt.DB.Name() + "." + collection
}

func TestStore_Products(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("list keeps server order and never returns nil", func(mt *mtest.T) {
		s := newMockStore(mt)
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns(mt, collectionProducts), mtest.FirstBatch,
			productDoc("p1", "Ankara Midi Dress", "womens-dresses"),
			productDoc("p2", "Kitenge Shirt", "mens-shirts"),
		))

		products, err := s.GetProducts(context.Background())
		require.NoError(mt, err)
		require.Len(mt, products, 2)
		assert.Equal(mt, "p1", products[0].ID)
		assert.Equal(mt, "Kitenge Shirt", products[1].Name)
		assert.NotNil(mt, products[0].Images)
		assert.True(mt, created.Equal(products[0].CreatedAt))
	})

	mt.Run("empty category is an empty list", func(mt *mtest.T) {
		s := newMockStore(mt)
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns(mt, collectionProducts), mtest.FirstBatch))

		products, err := s.GetProductsByCategory(context.Background(), "unknown")
		require.NoError(mt, err)
		assert.NotNil(mt, products)
		assert.Empty(mt, products)
	})

	mt.Run("get missing product", func(mt *mtest.T) {
		s := newMockStore(mt)
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns(mt, collectionProducts), mtest.FirstBatch))

		_, err := s.GetProduct(context.Background(), "missing")
		assert.True(mt, errors.Is(err, domain.ErrProductNotFound))
	})

	mt.Run("create applies defaults", func(mt *mtest.T) {
		s := newMockStore(mt)
		mt.AddMockResponses(mtest.CreateSuccessResponse())

		p, err := s.CreateProduct(context.Background(), domain.NewProduct{
			Name: "Ankara Dress", Category: "womens-tops", Type: domain.ProductReady, PriceKES: 6500,
		})
		require.NoError(mt, err)
		assert.Equal(mt, "fixed-id", p.ID)
		assert.Equal(mt, []string{}, p.Images)
		assert.Equal(mt, domain.FlagFalse, p.Featured)
		require.NotNil(mt, p.InStock)
		assert.Equal(mt, 0, *p.InStock)
	})

	mt.Run("update returns merged document", func(mt *mtest.T) {
		s := newMockStore(mt)
		doc := productDoc("p1", "Ankara Midi Dress", "womens-dresses")
		doc[9] = bson.E{Key: "in_stock", Value: 5}
		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "value", Value: doc}))

		stock := 5
		p, err := s.UpdateProduct(context.Background(), "p1", domain.ProductPatch{InStock: &stock})
		require.NoError(mt, err)
		require.NotNil(mt, p.InStock)
		assert.Equal(mt, 5, *p.InStock)
		assert.Equal(mt, "Ankara Midi Dress", p.Name)
	})

	mt.Run("update missing product", func(mt *mtest.T) {
		s := newMockStore(mt)
		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "value", Value: nil}))

		name := "X"
		_, err := s.UpdateProduct(context.Background(), "missing", domain.ProductPatch{Name: &name})
		assert.True(mt, errors.Is(err, domain.ErrProductNotFound))
	})

	mt.Run("delete reports presence", func(mt *mtest.T) {
		s := newMockStore(mt)
		mt.AddMockResponses(
			mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 1}),
			mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 0}),
		)

		removed, err := s.DeleteProduct(context.Background(), "p1")
		require.NoError(mt, err)
		assert.True(mt, removed)

		removed, err = s.DeleteProduct(context.Background(), "p1")
		require.NoError(mt, err)
		assert.False(mt, removed)
	})
}

func TestStore_Orders(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("create is pending and unpriced", func(mt *mtest.T) {
		s := newMockStore(mt)
		mt.AddMockResponses(mtest.CreateSuccessResponse())

		o, err := s.CreateCustomOrder(context.Background(), domain.NewCustomOrder{
			CustomerName: "Wanjiru", CustomerEmail: "wanjiru@example.com", GarmentType: "kaftan", FabricPreference: "kitenge",
			Measurements: domain.Measurements{Chest: 96, Waist: 80, Hip: 100},
		})
		require.NoError(mt, err)
		assert.Equal(mt, domain.OrderPending, o.Status)
		assert.Nil(mt, o.EstimatedPrice)
	})

	mt.Run("update status", func(mt *mtest.T) {
		s := newMockStore(mt)
		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "value", Value: orderDoc("o1", "completed")}))

		status := domain.OrderCompleted
		o, err := s.UpdateCustomOrder(context.Background(), "o1", domain.CustomOrderPatch{Status: &status})
		require.NoError(mt, err)
		assert.Equal(mt, domain.OrderCompleted, o.Status)
		assert.Equal(mt, 96.0, o.Measurements.Chest)
	})

	mt.Run("get missing order", func(mt *mtest.T) {
		s := newMockStore(mt)
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns(mt, collectionOrders), mtest.FirstBatch))

		_, err := s.GetCustomOrder(context.Background(), "missing")
		assert.True(mt, errors.Is(err, domain.ErrOrderNotFound))
	})
}

func TestStore_Users(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("create defaults to non-admin", func(mt *mtest.T) {
		s := newMockStore(mt)
		mt.AddMockResponses(mtest.CreateSuccessResponse())

		u, err := s.CreateUser(context.Background(), domain.NewUser{Username: "admin", Password: "hash"})
		require.NoError(mt, err)
		assert.Equal(mt, domain.DefaultIsAdmin, u.IsAdmin)
		assert.Len(mt, u.ID, 24)
	})

	mt.Run("lookup by username", func(mt *mtest.T) {
		s := newMockStore(mt)
		oid := primitive.NewObjectID()
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns(mt, collectionUsers), mtest.FirstBatch, bson.D{
			{Key: "_id", Value: oid},
			{Key: "username", Value: "admin"},
			{Key: "password", Value: "hash"},
			{Key: "is_admin", Value: "false"},
		}))

		u, err := s.GetUserByUsername(context.Background(), "admin")
		require.NoError(mt, err)
		assert.Equal(mt, oid.Hex(), u.ID)
		assert.Equal(mt, "hash", u.Password)
	})

	mt.Run("malformed id is not found", func(mt *mtest.T) {
		s := newMockStore(mt)

		_, err := s.GetUser(context.Background(), "not-an-object-id")
		assert.True(mt, errors.Is(err, domain.ErrUserNotFound))
	})
}

func TestStore_Analytics(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("status counts add up to total", func(mt *mtest.T) {
		s := newMockStore(mt)
		mt.AddMockResponses(
			mtest.CreateCursorResponse(0, ns(mt, collectionProducts), mtest.FirstBatch, bson.D{{Key: "n", Value: 6}}),
			mtest.CreateCursorResponse(0, ns(mt, collectionContacts), mtest.FirstBatch, bson.D{{Key: "n", Value: 2}}),
			mtest.CreateCursorResponse(0, ns(mt, collectionOrders), mtest.FirstBatch,
				bson.D{{Key: "_id", Value: "pending"}, {Key: "n", Value: 3}},
				bson.D{{Key: "_id", Value: "completed"}, {Key: "n", Value: 1}},
			),
		)

		a, err := s.GetAnalytics(context.Background())
		require.NoError(mt, err)
		assert.Equal(mt, domain.Analytics{
			TotalProducts:   6,
			TotalOrders:     4,
			PendingOrders:   3,
			CompletedOrders: 1,
			TotalContacts:   2,
		}, a)
	})

	mt.Run("unknown status still counts toward total", func(mt *mtest.T) {
		s := newMockStore(mt)
		mt.AddMockResponses(
			mtest.CreateCursorResponse(0, ns(mt, collectionProducts), mtest.FirstBatch, bson.D{{Key: "n", Value: 0}}),
			mtest.CreateCursorResponse(0, ns(mt, collectionContacts), mtest.FirstBatch, bson.D{{Key: "n", Value: 0}}),
			mtest.CreateCursorResponse(0, ns(mt, collectionOrders), mtest.FirstBatch,
				bson.D{{Key: "_id", Value: "in-progress"}, {Key: "n", Value: 2}},
				bson.D{{Key: "_id", Value: "cancelled"}, {Key: "n", Value: 5}},
			),
		)

		a, err := s.GetAnalytics(context.Background())
		require.NoError(mt, err)
		assert.Equal(mt, 7, a.TotalOrders)
		assert.Equal(mt, 2, a.InProgressOrders)
		assert.Zero(mt, a.PendingOrders+a.CompletedOrders)
	})
}

func TestConfig_ClientOptions(t *testing.T) {
	opts := Config{URI: "mongodb://localhost:27017", Database: "storefront"}.clientOptions()
	require.NotNil(t, opts.ServerSelectionTimeout)
	assert.Equal(t, defaultTimeout, *opts.ServerSelectionTimeout)
	assert.Equal(t, defaultTimeout, *opts.ConnectTimeout)

	opts = Config{URI: "mongodb://localhost:27017", Timeout: 2 * time.Second}.clientOptions()
	assert.Equal(t, 2*time.Second, *opts.ServerSelectionTimeout)
	assert.Equal(t, 2*time.Second, *opts.ConnectTimeout)
}
