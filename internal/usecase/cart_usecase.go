package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/inkatravel-api/internal/domain"
	"github.com/inkatravel-api/internal/domain/repository"
	"github.com/inkatravel-api/internal/pkg/errors"
	"github.com/inkatravel-api/internal/pkg/utils"
	"github.com/inkatravel-api/internal/usecase/dto"
)

type CartUseCase struct {
	cartRepo      repository.CartRepository
	tourRepo      repository.TourRepository
	transportRepo repository.TransportRepository
	cacheRepo     repository.CacheRepository
	streamRepo    repository.StreamRepository
	summaryTTL    time.Duration
	whatsAppPhone string
	logger        *zap.Logger
}

func NewCartUseCase(
	cartRepo repository.CartRepository,
	tourRepo repository.TourRepository,
	transportRepo repository.TransportRepository,
	cacheRepo repository.CacheRepository,
	streamRepo repository.StreamRepository,
	summaryTTL time.Duration,
	whatsAppPhone string,
	logger *zap.Logger,
) *CartUseCase {
	return &CartUseCase{
		cartRepo:      cartRepo,
		tourRepo:      tourRepo,
		transportRepo: transportRepo,
		cacheRepo:     cacheRepo,
		streamRepo:    streamRepo,
		summaryTTL:    summaryTTL,
		whatsAppPhone: whatsAppPhone,
		logger:        logger,
	}
}

// AddItem puts a product into the user's cart. Price, title and image are
// read from the stored product, never from the client. Adding the same
// product for the same date merges into one line.
func (uc *CartUseCase) AddItem(ctx context.Context, userID string, req dto.AddCartItemRequest) (*domain.Cart, error) {
	startDate, err := time.ParseInLocation("2006-01-02", req.StartDate, time.UTC)
	if err != nil {
		return nil, errors.ErrInvalidRequest.WithDetails(map[string]interface{}{
			"startDate": "expected YYYY-MM-DD",
		})
	}

	snapshot, err := uc.lookupProduct(ctx, req.ProductID, req.ProductType)
	if err != nil {
		return nil, err
	}

	cart, err := uc.cartRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	now := time.Now().UTC()
	if cart == nil {
		cart = &domain.Cart{
			ID:        uuid.New().String(),
			UserID:    userID,
			CreatedAt: now,
		}
	}

	if idx := cart.FindItem(req.ProductID, req.ProductType, startDate); idx >= 0 {
		item := &cart.Items[idx]
		item.People += req.People
		if req.Notes != "" {
			item.Notes = req.Notes
		}
		item.ComputeTotal()
	} else {
		item := domain.CartItem{
			ID:              uuid.New().String(),
			ProductID:       req.ProductID,
			ProductType:     req.ProductType,
			StartDate:       startDate,
			People:          req.People,
			PricePerPerson:  snapshot.price,
			Notes:           req.Notes,
			ProductTitle:    snapshot.title,
			ProductImageURL: snapshot.imageURL,
			ProductSlug:     snapshot.slug,
			AddedAt:         now,
		}
		item.ComputeTotal()
		cart.Items = append(cart.Items, item)
	}
	cart.UpdatedAt = now

	if err := uc.cartRepo.Save(ctx, cart); err != nil {
		uc.logger.Error("Failed to save cart", zap.String("user_id", userID), zap.Error(err))
		return nil, err
	}

	uc.publishCartEvent(ctx, userID, domain.CartActionAdd, "")
	uc.logger.Info("Cart item added",
		zap.String("user_id", userID),
		zap.String("product_id", req.ProductID),
		zap.String("product_type", req.ProductType))
	return cart, nil
}

// RemoveItem deletes one line from the cart.
func (uc *CartUseCase) RemoveItem(ctx context.Context, userID, itemID string) (*domain.Cart, error) {
	cart, err := uc.cartRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if cart == nil {
		return nil, errors.ErrCartNotFound
	}

	found := false
	items := cart.Items[:0]
	for _, it := range cart.Items {
		if it.ID == itemID {
			found = true
			continue
		}
		items = append(items, it)
	}
	if !found {
		return nil, errors.ErrCartItemNotFound
	}
	cart.Items = items
	cart.UpdatedAt = time.Now().UTC()

	if err := uc.cartRepo.Save(ctx, cart); err != nil {
		uc.logger.Error("Failed to save cart", zap.String("user_id", userID), zap.Error(err))
		return nil, err
	}

	uc.publishCartEvent(ctx, userID, domain.CartActionRemove, itemID)
	uc.logger.Info("Cart item removed",
		zap.String("user_id", userID),
		zap.String("item_id", itemID))
	return cart, nil
}

// Clear empties the cart entirely.
func (uc *CartUseCase) Clear(ctx context.Context, userID string) error {
	if err := uc.cartRepo.DeleteByUserID(ctx, userID); err != nil {
		uc.logger.Error("Failed to clear cart", zap.String("user_id", userID), zap.Error(err))
		return err
	}
	uc.publishCartEvent(ctx, userID, domain.CartActionClear, "")
	uc.logger.Info("Cart cleared", zap.String("user_id", userID))
	return nil
}

// GetCart returns the full cart. A user without one gets an empty cart, not
// an error.
func (uc *CartUseCase) GetCart(ctx context.Context, userID string) (*domain.Cart, error) {
	cart, err := uc.cartRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if cart == nil {
		cart = &domain.Cart{UserID: userID, Items: []domain.CartItem{}}
	}
	return cart, nil
}

// GetSummary serves the cached cart projection. It never fails: anonymous
// callers, cache misses with storage errors, all settle to the empty
// summary so headers and badges always render.
func (uc *CartUseCase) GetSummary(ctx context.Context, userID string) *domain.CartSummary {
	if userID == "" {
		return domain.EmptyCartSummary("")
	}

	if summary, err := uc.cacheRepo.GetCartSummary(ctx, userID); err == nil && summary != nil {
		return summary
	}

	cart, err := uc.cartRepo.GetByUserID(ctx, userID)
	if err != nil {
		uc.logger.Warn("Cart summary fallback to empty",
			zap.String("user_id", userID), zap.Error(err))
		return domain.EmptyCartSummary(userID)
	}
	if cart == nil {
		return domain.EmptyCartSummary(userID)
	}

	summary := cart.Summarize(time.Now().UTC())
	if err := uc.cacheRepo.SetCartSummary(ctx, summary, uc.summaryTTL); err != nil {
		uc.logger.Warn("Failed to cache cart summary",
			zap.String("user_id", userID), zap.Error(err))
	}
	return summary
}

// Checkout snapshots the cart into a pending order, clears the cart and
// returns a prefilled WhatsApp link for the sales channel.
func (uc *CartUseCase) Checkout(ctx context.Context, userID string, req dto.CheckoutRequest) (*dto.CheckoutResponse, error) {
	cart, err := uc.cartRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if cart == nil || len(cart.Items) == 0 {
		return nil, errors.ErrCartEmpty
	}

	order := &domain.Order{
		ID:          uuid.New().String(),
		UserID:      userID,
		Items:       cart.Items,
		TotalAmount: cart.TotalAmount(),
		Status:      domain.OrderStatusPending,
		Notes:       req.Notes,
		CreatedAt:   time.Now().UTC(),
	}

	if err := uc.cartRepo.CreateOrder(ctx, order); err != nil {
		uc.logger.Error("Failed to create order", zap.String("user_id", userID), zap.Error(err))
		return nil, err
	}
	if err := uc.cartRepo.DeleteByUserID(ctx, userID); err != nil {
		// The order exists; losing the cart cleanup is recoverable.
		uc.logger.Warn("Failed to clear cart after checkout",
			zap.String("user_id", userID), zap.Error(err))
	}

	uc.publishCartEvent(ctx, userID, domain.CartActionCheckout, "")
	uc.logger.Info("Checkout completed",
		zap.String("user_id", userID),
		zap.String("order_id", order.ID),
		zap.Float64("total", order.TotalAmount))

	return &dto.CheckoutResponse{
		OrderID:      order.ID,
		Status:       order.Status,
		TotalAmount:  order.TotalAmount,
		WhatsAppLink: uc.buildWhatsAppLink(order, req),
	}, nil
}

type productSnapshot struct {
	title    string
	imageURL string
	slug     string
	price    float64
}

// lookupProduct resolves the referenced tour or transport and rejects
// inactive products.
func (uc *CartUseCase) lookupProduct(ctx context.Context, productID, productType string) (*productSnapshot, error) {
	switch productType {
	case domain.ProductTypeTour:
		tour, err := uc.tourRepo.GetByID(ctx, productID)
		if err != nil {
			return nil, err
		}
		if !tour.IsActive {
			return nil, errors.ErrProductInactive
		}
		return &productSnapshot{
			title:    tour.Title.Resolve(domain.DefaultLanguage),
			imageURL: tour.ImageURL,
			slug:     tour.Slug,
			price:    tour.Price,
		}, nil
	case domain.ProductTypeTransport:
		transport, err := uc.transportRepo.GetByID(ctx, productID)
		if err != nil {
			return nil, err
		}
		if !transport.IsActive {
			return nil, errors.ErrProductInactive
		}
		return &productSnapshot{
			title:    transport.Title.Resolve(domain.DefaultLanguage),
			imageURL: transport.ImageURL,
			slug:     transport.Slug,
			price:    transport.Price,
		}, nil
	default:
		return nil, errors.ErrInvalidRequest.WithDetails(map[string]interface{}{
			"productType": "must be tour or transport",
		})
	}
}

// publishCartEvent emits the cart-updated event. Publishing is best effort:
// the summary cache self-heals on the next read, so a failed publish only
// logs.
func (uc *CartUseCase) publishCartEvent(ctx context.Context, userID, action, itemID string) {
	event := domain.CartUpdatedEvent{
		UserID: userID,
		Action: action,
		ItemID: itemID,
		At:     time.Now().UTC(),
	}
	if err := uc.streamRepo.PublishToStream(ctx, domain.StreamCartUpdated, event); err != nil {
		uc.logger.Warn("Failed to publish cart event",
			zap.String("user_id", userID),
			zap.String("action", action),
			zap.Error(err))
	}
}

func (uc *CartUseCase) buildWhatsAppLink(order *domain.Order, req dto.CheckoutRequest) string {
	if uc.whatsAppPhone == "" {
		return ""
	}
	var b strings.Builder
	fmt.Fprintf(&b, "Hola! Soy %s y quiero confirmar mi reserva %s:\n", req.CustomerName, order.ID)
	for _, it := range order.Items {
		fmt.Fprintf(&b, "- %s | %s | %d pax | $%.2f\n",
			it.ProductTitle, it.StartDate.Format("2006-01-02"), it.People, it.Total)
	}
	fmt.Fprintf(&b, "Total: $%.2f", order.TotalAmount)
	return utils.BuildWhatsAppLink(uc.whatsAppPhone, b.String())
}
