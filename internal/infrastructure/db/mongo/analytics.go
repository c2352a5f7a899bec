package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/kitenge-atelier/storefront/internal/core/domain"
)

type statusCount struct {
	Status domain.OrderStatus `bson:"_id"`
	N      int                `bson:"n"`
}

// GetAnalytics counts every order document in TotalOrders. Documents with a
// status outside the known set are counted there but in no status bucket,
// matching the memory driver.
func (s *Store) GetAnalytics(ctx context.Context) (domain.Analytics, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var a domain.Analytics

	products, err := s.products.CountDocuments(ctx, bson.M{})
	if err != nil {
		return a, fmt.Errorf("count products: %w", err)
	}
	contacts, err := s.contacts.CountDocuments(ctx, bson.M{})
	if err != nil {
		return a, fmt.Errorf("count contacts: %w", err)
	}

	cur, err := s.orders.Aggregate(ctx, bson.A{
		bson.M{"$group": bson.M{"_id": "$status", "n": bson.M{"$sum": 1}}},
	})
	if err != nil {
		return a, fmt.Errorf("aggregate order statuses: %w", err)
	}
	var counts []statusCount
	if err := cur.All(ctx, &counts); err != nil {
		return a, fmt.Errorf("decode order statuses: %w", err)
	}

	a.TotalProducts = int(products)
	a.TotalContacts = int(contacts)
	for _, c := range counts {
		a.TotalOrders += c.N
		switch c.Status {
		case domain.OrderPending:
			a.PendingOrders += c.N
		case domain.OrderInProgress:
			a.InProgressOrders += c.N
		case domain.OrderCompleted:
			a.CompletedOrders += c.N
		}
	}
	return a, nil
}
