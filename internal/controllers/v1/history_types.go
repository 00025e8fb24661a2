package v1

import (
	"github.com/stockledger/backend/internal/types"
)

// HistoryEditable are the filter fields of a history query as they arrive
// from the form. Both bounds are optional.
type HistoryEditable struct {
	StartDate string `form:"start_date" json:"startDate" example:"01-03-2024"` // First day of the range, DD-MM-YYYY
	EndDate   string `form:"end_date" json:"endDate" example:"31-03-2024"`     // Last day of the range, DD-MM-YYYY
}

// historyQuery is the validated form of HistoryEditable.
type historyQuery struct {
	From  types.Date
	Until types.Date
}

// parse validates the raw form fields. An absent bound leaves the range
// open on that side.
func (editable HistoryEditable) parse() (historyQuery, error) {
	var query historyQuery
	var err error

	if editable.StartDate != "" {
		query.From, err = types.ParseDate(editable.StartDate)
		if err != nil {
			return historyQuery{}, errInvalidDate
		}
	}

	if editable.EndDate != "" {
		query.Until, err = types.ParseDate(editable.EndDate)
		if err != nil {
			return historyQuery{}, errInvalidDate
		}
	}

	return query, nil
}

// HistoryResponse distinguishes the blank state (no query submitted yet)
// from a submitted query that matched nothing: Submitted is false for the
// former and true for the latter.
type HistoryResponse struct {
	Submitted bool          `json:"submitted" example:"true"`                                    // Whether a filter query was submitted
	Data      []Transaction `json:"data"`                                                        // The matching ledger entries, date descending
	Error     *string       `json:"error" example:"please enter valid date values (dd-mm-yyyy)"` // The error, if any occurred
}
