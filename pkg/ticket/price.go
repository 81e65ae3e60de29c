package ticket

import (
	"math/big"

	"github.com/shopspring/decimal"
)

// Ticket prices are quoted to passengers in whole display units (soles). The
// contract charges wei. The published rate is fixed per pricing revision:
// one display unit buys 10^14 wei, i.e. the display price divided by 10,000
// is the ether amount.
//
// PriceRevision must be bumped whenever the rate changes so that cached
// quotes can be invalidated.
const (
	PriceRevision = "v1"

	// weiPerDisplayUnit is the wei cost of one display unit under PriceRevision.
	weiPerDisplayUnit = 100_000_000_000_000
)

// DisplayPriceToWei converts a display-unit price to the wei value the mint
// call must carry.
func DisplayPriceToWei(displayUnits int64) *big.Int {
	return new(big.Int).Mul(big.NewInt(displayUnits), big.NewInt(weiPerDisplayUnit))
}

// DisplayPriceToEther renders a display-unit price as a decimal ether string,
// for quoting in responses and logs.
func DisplayPriceToEther(displayUnits int64) string {
	return decimal.NewFromBigInt(DisplayPriceToWei(displayUnits), -18).String()
}
