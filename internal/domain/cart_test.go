package domain_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/inkatravel-api/internal/domain"
)

func TestCartItem_ComputeTotal(t *testing.T) {
	item := domain.CartItem{People: 4, PricePerPerson: 85.5}
	item.ComputeTotal()
	assert.Equal(t, 342.0, item.Total)
}

func TestCart_TotalAmount(t *testing.T) {
	cart := domain.Cart{
		Items: []domain.CartItem{
			{Total: 1300},
			{Total: 190.5},
		},
	}
	assert.Equal(t, 1490.5, cart.TotalAmount())

	empty := domain.Cart{}
	assert.Equal(t, 0.0, empty.TotalAmount())
}

func TestCart_FindItem(t *testing.T) {
	date := time.Date(2026, 10, 15, 0, 0, 0, 0, time.UTC)
	cart := domain.Cart{
		Items: []domain.CartItem{
			{ID: "item-1", ProductID: "p-1", ProductType: domain.ProductTypeTour, StartDate: date},
			{ID: "item-2", ProductID: "p-1", ProductType: domain.ProductTypeTransport, StartDate: date},
		},
	}

	assert.Equal(t, 0, cart.FindItem("p-1", domain.ProductTypeTour, date))
	assert.Equal(t, 1, cart.FindItem("p-1", domain.ProductTypeTransport, date))
	// Same product, different date is a separate line.
	assert.Equal(t, -1, cart.FindItem("p-1", domain.ProductTypeTour, date.AddDate(0, 0, 1)))
	assert.Equal(t, -1, cart.FindItem("p-2", domain.ProductTypeTour, date))
}

func TestCart_Summarize(t *testing.T) {
	now := time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC)
	cart := domain.Cart{
		UserID: "user-1",
		Items: []domain.CartItem{
			{
				ID:              "item-1",
				ProductTitle:    "Camino Inca Clásico",
				ProductImageURL: "https://cdn.example.com/inca.jpg",
				ProductSlug:     "camino-inca-clasico",
				People:          2,
				PricePerPerson:  650,
				Total:           1300,
			},
		},
	}

	summary := cart.Summarize(now)

	assert.Equal(t, "user-1", summary.UserID)
	assert.Equal(t, 1, summary.ItemCount)
	assert.Equal(t, 1300.0, summary.TotalAmount)
	assert.Equal(t, now, summary.RefreshedAt)
	assert.Equal(t, "Camino Inca Clásico", summary.Items[0].Name)
	assert.Equal(t, 2, summary.Items[0].Quantity)
}

func TestEmptyCartSummary(t *testing.T) {
	summary := domain.EmptyCartSummary("user-1")

	assert.Equal(t, "user-1", summary.UserID)
	assert.Equal(t, 0, summary.ItemCount)
	assert.NotNil(t, summary.Items)
	assert.Empty(t, summary.Items)
}
