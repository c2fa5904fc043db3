// Package broker provides order types for cryptrade commands.
package broker

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/newthinker/cryptrade/internal/core"
	"github.com/shopspring/decimal"
)

// OrderSide represents the direction of an order.
type OrderSide string

const (
	// OrderSideBuy represents a buy order.
	OrderSideBuy OrderSide = "BUY"
	// OrderSideSell represents a sell order.
	OrderSideSell OrderSide = "SELL"
)

// OrderType represents the type of order execution.
type OrderType string

const (
	// OrderTypeMarket executes at current market price.
	OrderTypeMarket OrderType = "MARKET"
	// OrderTypeLimit executes at specified price or better.
	OrderTypeLimit OrderType = "LIMIT"
)

// OrderRequest is an order intent. Nothing in cryptrade sends it anywhere.
type OrderRequest struct {
	// Symbol is the asset to trade, exactly as the user wrote it (e.g., "BTC").
	Symbol string `json:"symbol"`
	// Quote is the asset the order is priced and settled in.
	Quote core.Asset `json:"quote"`
	// Side indicates buy or sell.
	Side OrderSide `json:"side"`
	// Type specifies the order execution type.
	Type OrderType `json:"type"`
	// Quantity is the exact amount of Symbol to trade.
	Quantity decimal.Decimal `json:"quantity"`
	// ClientOrderID identifies the intent on the client side.
	ClientOrderID string `json:"client_order_id"`
	// CreatedAt is when the intent was built.
	CreatedAt time.Time `json:"created_at"`
}

// NewMarketBuy builds a market buy of quantity units of symbol, settled in quote.
func NewMarketBuy(symbol string, quantity decimal.Decimal, quote core.Asset) (OrderRequest, error) {
	req := OrderRequest{
		Symbol:        symbol,
		Quote:         quote,
		Side:          OrderSideBuy,
		Type:          OrderTypeMarket,
		Quantity:      quantity,
		ClientOrderID: uuid.NewString(),
		CreatedAt:     time.Now().UTC(),
	}
	if err := req.Validate(); err != nil {
		return OrderRequest{}, err
	}
	return req, nil
}

// Validate checks if the order request has valid required fields.
func (r OrderRequest) Validate() error {
	if strings.TrimSpace(r.Symbol) == "" {
		return core.WrapError(core.ErrInvalidSymbol, fmt.Errorf("SYMBOL cannot be empty"))
	}
	return nil
}

// HasPositiveQuantity reports whether the order would move any amount.
func (r OrderRequest) HasPositiveQuantity() bool {
	return r.Quantity.IsPositive()
}
