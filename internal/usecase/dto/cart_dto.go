package dto

import (
	"time"

	"github.com/inkatravel-api/internal/domain"
)

// AddCartItemRequest - puts a product into the user's cart. The server
// looks the product up itself; price and title are never taken from the
// client.
type AddCartItemRequest struct {
	ProductID   string `json:"productId" validate:"required,uuid4"`
	ProductType string `json:"productType" validate:"required,product_type"`
	StartDate   string `json:"startDate" validate:"required,datetime=2006-01-02"`
	People      int    `json:"people" validate:"required,min=1,max=50"`
	Notes       string `json:"notes,omitempty" validate:"omitempty,max=500"`
}

// CheckoutRequest - confirms the cart as an order
type CheckoutRequest struct {
	CustomerName  string `json:"customerName" validate:"required,min=2,max=120"`
	CustomerEmail string `json:"customerEmail" validate:"required,email"`
	CustomerPhone string `json:"customerPhone,omitempty" validate:"omitempty,min=6,max=20"`
	Notes         string `json:"notes,omitempty" validate:"omitempty,max=1000"`
}

// CartItemResponse - one cart line with its denormalized product snapshot
type CartItemResponse struct {
	ID              string    `json:"_id"`
	ProductID       string    `json:"productId"`
	ProductType     string    `json:"productType"`
	ProductTitle    string    `json:"productTitle"`
	ProductImageURL string    `json:"productImageUrl,omitempty"`
	ProductSlug     string    `json:"productSlug,omitempty"`
	StartDate       string    `json:"startDate"`
	People          int       `json:"people"`
	PricePerPerson  float64   `json:"pricePerPerson"`
	Total           float64   `json:"total"`
	Notes           string    `json:"notes,omitempty"`
	AddedAt         time.Time `json:"addedAt"`
}

// CartResponse - the full cart
type CartResponse struct {
	ID          string             `json:"_id"`
	UserID      string             `json:"userId"`
	Items       []CartItemResponse `json:"items"`
	TotalAmount float64            `json:"totalAmount"`
	UpdatedAt   time.Time          `json:"updatedAt"`
}

// CheckoutResponse - order confirmation plus the prefilled WhatsApp link
type CheckoutResponse struct {
	OrderID      string  `json:"orderId"`
	Status       string  `json:"status"`
	TotalAmount  float64 `json:"totalAmount"`
	WhatsAppLink string  `json:"whatsappLink,omitempty"`
}

// NewCartResponse converts the domain cart. Item titles were resolved when
// the line was added, so no further localization happens here.
func NewCartResponse(c *domain.Cart) CartResponse {
	resp := CartResponse{
		ID:          c.ID,
		UserID:      c.UserID,
		Items:       make([]CartItemResponse, 0, len(c.Items)),
		TotalAmount: c.TotalAmount(),
		UpdatedAt:   c.UpdatedAt,
	}
	for _, item := range c.Items {
		resp.Items = append(resp.Items, CartItemResponse{
			ID:              item.ID,
			ProductID:       item.ProductID,
			ProductType:     item.ProductType,
			ProductTitle:    item.ProductTitle,
			ProductImageURL: item.ProductImageURL,
			ProductSlug:     item.ProductSlug,
			StartDate:       item.StartDate.Format("2006-01-02"),
			People:          item.People,
			PricePerPerson:  item.PricePerPerson,
			Total:           item.Total,
			Notes:           item.Notes,
			AddedAt:         item.AddedAt,
		})
	}
	return resp
}
