package deployment

import (
	"github.com/shopspring/decimal"

	"github.com/bambooloan/lending-indexer/internal/domain"
)

// Deployment is the immutable per-network configuration: the protocol
// contract set, metadata, and the asset table mapping each underlying
// asset to its derivative (receipt) token. Loaded once at process start.
type Deployment struct {
	Network domain.Network

	// ProtocolAddress is the lending market contract and the Protocol entity id
	ProtocolAddress    string
	PriceOracleAddress string
	LiquidationAddress string

	Name               string
	Slug               string
	SchemaVersion      string
	SubgraphVersion    string
	MethodologyVersion string

	// Assets maps underlying asset identifier to its listing parameters.
	// An event whose asset is not in this table is out of scope for the
	// deployment and is ignored without a warning.
	Assets map[string]AssetListing
}

// AssetListing describes one listable asset
type AssetListing struct {
	// DerivativeAddress is the receipt-token address and the Market entity id
	DerivativeAddress string
	Name              string
	Symbol            string
	// Decimals of the underlying token
	Decimals int32
	// DerivativeDecimals of the receipt token
	DerivativeDecimals int32
	// ReserveFactor is the protocol's share of accrued interest, in [0,1]
	ReserveFactor decimal.Decimal
}

// DerivativeID resolves an asset identifier to its derivative-token address.
// The second return is false for assets outside this deployment's scope.
func (d *Deployment) DerivativeID(asset string) (string, bool) {
	listing, ok := d.Assets[asset]
	if !ok {
		return "", false
	}
	return listing.DerivativeAddress, true
}

// Listing returns the listing parameters for an in-scope asset
func (d *Deployment) Listing(asset string) (AssetListing, bool) {
	listing, ok := d.Assets[asset]
	return listing, ok
}

// startingSecondsPerBlock is the bootstrap block-time estimate per network,
// used to seed the blocks-per-day figure before enough samples accumulate.
var startingSecondsPerBlock = map[domain.Network]decimal.Decimal{
	domain.NetworkMainnet: decimal.RequireFromString("5.9"),
	domain.NetworkTestnet: decimal.RequireFromString("5.7"),
}

// StartingBlocksPerDay returns the bootstrap blocks-per-day estimate for a
// network. Unknown networks yield zero, which downstream code treats as
// "no estimate available".
func StartingBlocksPerDay(network domain.Network) decimal.Decimal {
	spb, ok := startingSecondsPerBlock[network]
	if !ok || spb.IsZero() {
		return decimal.Zero
	}
	return decimal.NewFromInt(domain.SecondsPerDay).Div(spb)
}
