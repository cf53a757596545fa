package payload

import (
	"fmt"
	"net/url"
	"strconv"
	"time"

	"github.com/jellydator/validation"

	"circletracker/internal/core"
)

var transactionTypes = []interface{}{
	"CIRCLE_MINT", "CIRCLE_BURN", "CCTP_BURN", "CCTP_MINT", "OTHER",
}

// TransactionsQuery carries the read-API filter parameters.
type TransactionsQuery struct {
	ChainID   int64
	Type      string
	StartTime time.Time
	EndTime   time.Time
	Limit     int
	Offset    int
}

func (t TransactionsQuery) Validate() error {
	return validation.ValidateStruct(&t,
		validation.Field(&t.Type, validation.In(transactionTypes...)),
		validation.Field(&t.Limit, validation.Min(0)),
		validation.Field(&t.Offset, validation.Min(0)),
	)
}

func (t TransactionsQuery) ToFilter() core.QueryFilter {
	return core.QueryFilter{
		ChainID:   t.ChainID,
		Type:      t.Type,
		StartTime: t.StartTime,
		EndTime:   t.EndTime,
		Limit:     t.Limit,
		Offset:    t.Offset,
	}
}

// ParseTransactionsQuery builds a query from URL parameters: chainId, type,
// start, end (RFC 3339), limit, offset.
func ParseTransactionsQuery(values url.Values) (TransactionsQuery, error) {
	query := TransactionsQuery{
		Type: values.Get("type"),
	}

	var err error
	if query.ChainID, err = parseIntParam(values, "chainId"); err != nil {
		return TransactionsQuery{}, err
	}

	limit, err := parseIntParam(values, "limit")
	if err != nil {
		return TransactionsQuery{}, err
	}
	query.Limit = int(limit)

	offset, err := parseIntParam(values, "offset")
	if err != nil {
		return TransactionsQuery{}, err
	}
	query.Offset = int(offset)

	if query.StartTime, err = parseTimeParam(values, "start"); err != nil {
		return TransactionsQuery{}, err
	}
	if query.EndTime, err = parseTimeParam(values, "end"); err != nil {
		return TransactionsQuery{}, err
	}

	return query, nil
}

func parseIntParam(values url.Values, name string) (int64, error) {
	raw := values.Get(name)
	if raw == "" {
		return 0, nil
	}

	value, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || value < 0 {
		return 0, fmt.Errorf("parameter %q must be a non-negative integer", name)
	}
	return value, nil
}

func parseTimeParam(values url.Values, name string) (time.Time, error) {
	raw := values.Get(name)
	if raw == "" {
		return time.Time{}, nil
	}

	value, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return time.Time{}, fmt.Errorf("parameter %q must be an RFC 3339 timestamp", name)
	}
	return value, nil
}
