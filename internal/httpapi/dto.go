package httpapi

import (
	"time"

	cart "github.com/dwikikusuma/shoping-mobile/internal/cart/domain"
	catalog "github.com/dwikikusuma/shoping-mobile/internal/catalog/domain"
	checkoutapp "github.com/dwikikusuma/shoping-mobile/internal/checkout/app"
	checkout "github.com/dwikikusuma/shoping-mobile/internal/checkout/domain"
	order "github.com/dwikikusuma/shoping-mobile/internal/order/domain"
	"github.com/dwikikusuma/shoping-mobile/internal/pricing"
)

// Money values are rendered as "$12.34" strings.

type productDTO struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Price       string `json:"price"`
	Image       string `json:"image"`
	Description string `json:"description,omitempty"`
	Category    string `json:"category,omitempty"`
}

type lineDTO struct {
	ProductID string `json:"productId"`
	Name      string `json:"name"`
	Image     string `json:"image,omitempty"`
	Variant   string `json:"variant"`
	Price     string `json:"price"`
	Quantity  int    `json:"quantity"`
	LineTotal string `json:"lineTotal"`
	Selected  bool   `json:"selected"`
}

type itemDTO struct {
	ProductID string `json:"productId"`
	Name      string `json:"name"`
	Image     string `json:"image,omitempty"`
	Variant   string `json:"variant"`
	Price     string `json:"price"`
	Quantity  int    `json:"quantity"`
	LineTotal string `json:"lineTotal"`
}

type breakdownDTO struct {
	ItemCount      int    `json:"itemCount"`
	Subtotal       string `json:"subtotal"`
	MarketplaceFee string `json:"marketplaceFee"`
	CourierPrice   string `json:"courierPrice"`
	Total          string `json:"total"`
}

type cartDTO struct {
	Lines      []lineDTO    `json:"lines"`
	BadgeCount int          `json:"badgeCount"`
	Selected   []string     `json:"selected"`
	Preview    breakdownDTO `json:"preview"`
}

type checkoutParamsDTO struct {
	CartItems []itemDTO `json:"cartItems"`
	Total     string    `json:"total"`
}

type deliveryOptionDTO struct {
	Tier  string `json:"tier"`
	Price string `json:"price"`
	ETA   string `json:"eta"`
}

type checkoutDTO struct {
	ID              string              `json:"id"`
	State           string              `json:"state"`
	Params          checkoutParamsDTO   `json:"params"`
	DeliveryOptions []deliveryOptionDTO `json:"deliveryOptions"`
	SelectedTier    string              `json:"selectedTier,omitempty"`
	Quote           breakdownDTO        `json:"quote"`
}

type paymentParamsDTO struct {
	CartItems      []itemDTO `json:"cartItems"`
	Tier           string    `json:"tier"`
	TotalPrice     string    `json:"totalPrice"`
	CourierPrice   string    `json:"courierPrice"`
	MarketplaceFee string    `json:"marketplaceFee"`
}

type orderItemDTO struct {
	ProductID string `json:"productId"`
	Name      string `json:"name"`
	Variant   string `json:"variant"`
	UnitPrice string `json:"unitPrice"`
	Quantity  int    `json:"quantity"`
	LineTotal string `json:"lineTotal"`
}

type orderDTO struct {
	ID             string         `json:"id"`
	InvoiceNumber  string         `json:"invoiceNumber"`
	Status         string         `json:"status"`
	DeliveryTier   string         `json:"deliveryTier"`
	Subtotal       string         `json:"subtotal"`
	MarketplaceFee string         `json:"marketplaceFee"`
	CourierPrice   string         `json:"courierPrice"`
	Total          string         `json:"total"`
	Items          []orderItemDTO `json:"items"`
	CreatedAt      time.Time      `json:"createdAt"`
}

type searchDTO struct {
	Query   string       `json:"query"`
	Results []productDTO `json:"results"`
	Recent  []string     `json:"recent"`
}

func toProductDTO(p catalog.Product) productDTO {
	return productDTO{
		ID:          p.ID,
		Name:        p.Name,
		Price:       p.PriceLabel(),
		Image:       p.Image,
		Description: p.Description,
		Category:    p.Category,
	}
}

func toProductDTOs(ps []catalog.Product) []productDTO {
	out := make([]productDTO, 0, len(ps))
	for _, p := range ps {
		out = append(out, toProductDTO(p))
	}
	return out
}

func toLineDTO(l cart.Line, selected bool) lineDTO {
	return lineDTO{
		ProductID: l.ProductID,
		Name:      l.Name,
		Image:     l.Image,
		Variant:   l.Variant,
		Price:     pricing.Format(l.Price),
		Quantity:  l.Quantity,
		LineTotal: pricing.Format(l.LineTotal()),
		Selected:  selected,
	}
}

func toItemDTOs(items []checkout.Item) []itemDTO {
	out := make([]itemDTO, 0, len(items))
	for _, it := range items {
		out = append(out, itemDTO{
			ProductID: it.ProductID,
			Name:      it.Name,
			Image:     it.Image,
			Variant:   it.Variant,
			Price:     pricing.Format(it.Price),
			Quantity:  it.Quantity,
			LineTotal: pricing.Format(it.LineTotal()),
		})
	}
	return out
}

func toBreakdownDTO(b pricing.Breakdown) breakdownDTO {
	return breakdownDTO{
		ItemCount:      b.ItemCount,
		Subtotal:       pricing.Format(b.Subtotal),
		MarketplaceFee: pricing.Format(b.MarketplaceFee),
		CourierPrice:   pricing.Format(b.CourierPrice),
		Total:          pricing.Format(b.Total),
	}
}

func toCheckoutParamsDTO(p checkout.CheckoutParams) checkoutParamsDTO {
	return checkoutParamsDTO{CartItems: toItemDTOs(p.CartItems), Total: pricing.Format(p.Total)}
}

func toCheckoutDTO(cs *checkoutapp.Session, params checkout.CheckoutParams) checkoutDTO {
	opts := checkout.DeliveryOptions()
	optDTOs := make([]deliveryOptionDTO, 0, len(opts))
	for _, o := range opts {
		optDTOs = append(optDTOs, deliveryOptionDTO{Tier: string(o.Tier), Price: pricing.Format(o.Price), ETA: o.ETA})
	}

	return checkoutDTO{
		ID:              cs.ID(),
		State:           cs.State().String(),
		Params:          toCheckoutParamsDTO(params),
		DeliveryOptions: optDTOs,
		SelectedTier:    string(cs.Tier()),
		Quote:           toBreakdownDTO(cs.Quote()),
	}
}

func toPaymentParamsDTO(p checkout.PaymentParams) paymentParamsDTO {
	return paymentParamsDTO{
		CartItems:      toItemDTOs(p.CartItems),
		Tier:           string(p.Tier),
		TotalPrice:     pricing.Format(p.TotalPrice),
		CourierPrice:   pricing.Format(p.CourierPrice),
		MarketplaceFee: pricing.Format(p.MarketplaceFee),
	}
}

func toOrderDTO(o order.Order) orderDTO {
	items := make([]orderItemDTO, 0, len(o.Items))
	for _, it := range o.Items {
		items = append(items, orderItemDTO{
			ProductID: it.ProductID,
			Name:      it.Name,
			Variant:   it.Variant,
			UnitPrice: pricing.Format(it.UnitPrice),
			Quantity:  it.Quantity,
			LineTotal: pricing.Format(it.LineTotal),
		})
	}

	return orderDTO{
		ID:             o.ID,
		InvoiceNumber:  o.InvoiceNumber,
		Status:         o.Status,
		DeliveryTier:   o.DeliveryTier,
		Subtotal:       pricing.Format(o.Subtotal),
		MarketplaceFee: pricing.Format(o.MarketplaceFee),
		CourierPrice:   pricing.Format(o.CourierPrice),
		Total:          pricing.Format(o.Total),
		Items:          items,
		CreatedAt:      o.CreatedAt,
	}
}
