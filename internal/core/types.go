package core

import "strings"

// Asset identifies a tradable asset or currency, e.g. "BTC" or "USD".
type Asset string

// Common quote assets
const (
	AssetUSD  Asset = "USD"
	AssetUSDT Asset = "USDT"
	AssetUSDC Asset = "USDC"
	AssetBTC  Asset = "BTC"
)

// NewAsset normalises free-form user input into an Asset.
func NewAsset(s string) Asset {
	return Asset(strings.ToUpper(strings.TrimSpace(s)))
}

// IsValid checks if the asset has a usable code
func (a Asset) IsValid() bool {
	return a != "" && !strings.ContainsAny(string(a), " \t\n/")
}

func (a Asset) String() string {
	return string(a)
}
