package helper

import (
	"context"
	"log"
	"sort"
	"strings"

	"quentinhas/constants"
	"quentinhas/model"
	"quentinhas/repository"
	"quentinhas/utils"
)

// FilterPending keeps orders awaiting approval that match every non-empty filter.
func FilterPending(orders []model.Order, f model.PendingFilter) []model.Order {
	result := []model.Order{}
	for _, o := range orders {
		if o.Status != constants.STATUS_PENDING {
			continue
		}
		if !utils.ContainsFold(o.ID, f.ID) || !utils.ContainsFold(o.CustomerName, f.Name) || !utils.ContainsFold(o.Phone, f.Phone) {
			continue
		}
		result = append(result, o)
	}
	return result
}

// FilterDeliveries keeps approved, undelivered orders for f.Date, sorted by f.SortBy.
func FilterDeliveries(orders []model.Order, f model.DeliveryFilter) []model.Order {
	result := []model.Order{}
	for _, o := range orders {
		if o.Status != constants.STATUS_APPROVED || o.Delivered == constants.DELIVERED_YES {
			continue
		}
		if !o.HasDate || o.EventDate() != f.Date {
			continue
		}
		if !utils.ContainsFold(o.ID, f.ID) || !utils.ContainsFold(o.CustomerName, f.Name) || !utils.ContainsFold(o.Items, f.Item) {
			continue
		}
		result = append(result, o)
	}
	keys := f.SortBy
	if len(keys) == 0 {
		keys = []string{"nome"}
	}
	SortDeliveries(result, keys)
	return result
}

// SortDeliveries orders by the given keys ("nome", "data") in sequence, ascending and stable.
func SortDeliveries(orders []model.Order, keys []string) {
	if len(keys) == 0 {
		return
	}
	sort.SliceStable(orders, func(i, j int) bool {
		for _, key := range keys {
			switch strings.ToLower(strings.TrimSpace(key)) {
			case "nome":
				if orders[i].CustomerName != orders[j].CustomerName {
					return orders[i].CustomerName < orders[j].CustomerName
				}
			case "data":
				if !orders[i].SubmittedAt.Equal(orders[j].SubmittedAt) {
					return orders[i].SubmittedAt.Before(orders[j].SubmittedAt)
				}
			}
		}
		return false
	})
}

// ApproveOrder sets the status to Aprovado. Approving twice is harmless.
func ApproveOrder(ctx context.Context, orders *repository.OrderRepository, id string) error {
	if err := orders.UpdateStatus(ctx, id, constants.STATUS_APPROVED); err != nil {
		return err
	}
	log.Printf("Order #%s approved", id)
	publish(ctx, "approved", id)
	return nil
}

// MarkDelivered flags the order as handed over. It never goes back.
func MarkDelivered(ctx context.Context, orders *repository.OrderRepository, id string) error {
	if err := orders.MarkDelivered(ctx, id); err != nil {
		return err
	}
	log.Printf("Order #%s delivered", id)
	publish(ctx, "delivered", id)
	return nil
}

// FindOrder returns the order with id from a snapshot.
func FindOrder(orders []model.Order, id string) (model.Order, bool) {
	for _, o := range orders {
		if o.ID == id {
			return o, true
		}
	}
	return model.Order{}, false
}
