package classify

import (
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/shopspring/decimal"
)

// TransactionType is the semantic kind assigned to a USDC Transfer event.
type TransactionType string

const (
	CircleMint TransactionType = "CIRCLE_MINT"
	CircleBurn TransactionType = "CIRCLE_BURN"
	CCTPBurn   TransactionType = "CCTP_BURN"
	CCTPMint   TransactionType = "CCTP_MINT"
	Other      TransactionType = "OTHER"
)

// usdcDecimals is fixed by the USDC token contract on every supported chain.
const usdcDecimals = 6

var zeroAddress common.Address

// Classify assigns a transaction type from the transfer endpoints. The checks
// form a priority list: a mint check wins over a burn check when both sides
// are the zero address.
func Classify(from, to common.Address) TransactionType {
	if from == zeroAddress {
		return CircleMint
	}
	if to == zeroAddress {
		return CircleBurn
	}
	return Other
}

// NormalizeAmount converts a raw base-unit amount into USDC. The division by
// 10^6 is exact decimal arithmetic; values up to the full uint256 range keep
// all digits.
func NormalizeAmount(raw *big.Int) decimal.Decimal {
	if raw == nil {
		return decimal.Zero
	}
	return decimal.NewFromBigInt(raw, -usdcDecimals)
}
