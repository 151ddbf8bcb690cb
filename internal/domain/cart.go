package domain

import "time"

// Product type constants discriminating cart line references.
const (
	ProductTypeTour      = "tour"
	ProductTypeTransport = "transport"
)

func IsValidProductType(t string) bool {
	return t == ProductTypeTour || t == ProductTypeTransport
}

// CartItem is one bookable line: a product reference, a date, a traveler
// count and the price captured at add time. Display fields are denormalized
// so the cart renders without re-fetching products.
type CartItem struct {
	ID             string    `json:"id"`
	ProductID      string    `json:"productId"`
	ProductType    string    `json:"productType"`
	StartDate      time.Time `json:"startDate"`
	People         int       `json:"people"`
	PricePerPerson float64   `json:"pricePerPerson"`
	Total          float64   `json:"total"`
	Notes          string    `json:"notes,omitempty"`

	ProductTitle    string `json:"productTitle"`
	ProductImageURL string `json:"productImageUrl,omitempty"`
	ProductSlug     string `json:"productSlug"`

	AddedAt time.Time `json:"addedAt"`
}

// ComputeTotal recalculates the line total from its inputs. The stored value
// is authoritative after creation; this only runs on writes.
func (i *CartItem) ComputeTotal() {
	i.Total = i.PricePerPerson * float64(i.People)
}

// Cart is the single server-side cart of one user.
type Cart struct {
	ID        string     `json:"_id" db:"id"`
	UserID    string     `json:"userId" db:"user_id"`
	Items     []CartItem `json:"items"`
	CreatedAt time.Time  `json:"createdAt" db:"created_at"`
	UpdatedAt time.Time  `json:"updatedAt" db:"updated_at"`
}

// TotalAmount sums the stored line totals without recomputing them.
func (c *Cart) TotalAmount() float64 {
	var sum float64
	for _, it := range c.Items {
		sum += it.Total
	}
	return sum
}

// FindItem returns the index of the line for the same product on the same
// date, or -1. Adding such a line merges instead of duplicating.
func (c *Cart) FindItem(productID, productType string, startDate time.Time) int {
	for i, it := range c.Items {
		if it.ProductID == productID && it.ProductType == productType && it.StartDate.Equal(startDate) {
			return i
		}
	}
	return -1
}

// CartSummaryItem is the flattened display shape served to cart badges and
// mini-cart views.
type CartSummaryItem struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
	ImageURL string  `json:"imageUrl,omitempty"`
	Slug     string  `json:"slug,omitempty"`
}

// CartSummary is a best-effort projection of the cart. Readers always get a
// consistent value; when nothing is known the zero summary stands in.
type CartSummary struct {
	UserID      string            `json:"userId"`
	Items       []CartSummaryItem `json:"items"`
	ItemCount   int               `json:"itemCount"`
	TotalAmount float64           `json:"totalAmount"`
	RefreshedAt time.Time         `json:"refreshedAt"`
}

// EmptyCartSummary is the settled state for unauthenticated or failed reads.
func EmptyCartSummary(userID string) *CartSummary {
	return &CartSummary{
		UserID:    userID,
		Items:     []CartSummaryItem{},
		ItemCount: 0,
	}
}

// Summarize flattens the cart into its display projection.
func (c *Cart) Summarize(now time.Time) *CartSummary {
	items := make([]CartSummaryItem, 0, len(c.Items))
	for _, it := range c.Items {
		items = append(items, CartSummaryItem{
			ID:       it.ID,
			Name:     it.ProductTitle,
			Price:    it.PricePerPerson,
			Quantity: it.People,
			ImageURL: it.ProductImageURL,
			Slug:     it.ProductSlug,
		})
	}
	return &CartSummary{
		UserID:      c.UserID,
		Items:       items,
		ItemCount:   len(items),
		TotalAmount: c.TotalAmount(),
		RefreshedAt: now,
	}
}
