package ethereum

import (
	"math/big"

	"github.com/ethereum/go-ethereum/common"
)

// TransferLog is one decoded ERC-20 Transfer event, enriched with the block
// timestamp. It only lives between a fetch and the classification step.
type TransferLog struct {
	TransactionHash common.Hash
	BlockNumber     uint64
	LogIndex        uint32
	From            common.Address
	To              common.Address
	RawAmount       *big.Int
	BlockTimestamp  uint64
	Topics          []common.Hash
	Data            []byte
}
