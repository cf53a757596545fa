package payload

import (
	"github.com/jellydator/validation"
)

// BackfillRequest triggers a synchronous historical ingestion run. A zero
// ToBlock means "current chain head".
type BackfillRequest struct {
	ChainID   int64   `json:"chainId"`
	FromBlock uint64  `json:"fromBlock"`
	ToBlock   *uint64 `json:"toBlock"`
}

func (b BackfillRequest) Validate() error {
	err := validation.ValidateStruct(&b,
		validation.Field(&b.ChainID, validation.Required),
	)
	if err != nil {
		return err
	}

	if b.ToBlock != nil && *b.ToBlock < b.FromBlock {
		return validation.NewError("validation_block_range", "toBlock must not be below fromBlock")
	}
	return nil
}

type ListenerRequest struct {
	ChainID int64 `json:"chainId"`
}

func (l ListenerRequest) Validate() error {
	return validation.ValidateStruct(&l,
		validation.Field(&l.ChainID, validation.Required),
	)
}

type RecomputeStatisticsRequest struct {
	Date string `json:"date"`
}

func (r RecomputeStatisticsRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Date, validation.Date("2006-01-02")),
	)
}
