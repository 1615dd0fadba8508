package v1

import (
	"github.com/buckwheat-app/backend/internal/ledger"
	"github.com/buckwheat-app/backend/internal/types"
	"github.com/google/uuid"
)

type SpendEditable struct {
	// The amount as entered by the user, parsed with the configured locale's
	// decimal separator.
	Amount string `json:"amount" example:"17,30"`

	Comment string `json:"comment" example:"Lunch" default:""` // A note
}

// Spend is the API representation of a spend record.
type Spend struct {
	ID      uuid.UUID `json:"id" example:"d430d7c3-d14c-4712-9336-ee56965a6673"`
	Date    types.Day `json:"date" example:"2022-03-07"`
	Amount  string    `json:"amount" example:"17.30"`
	Comment string    `json:"comment" example:"Lunch"`
}

func newSpend(record ledger.SpendRecord) Spend {
	return Spend{
		ID:      record.ID,
		Date:    record.Date,
		Amount:  record.Amount.String(),
		Comment: record.Comment,
	}
}

type SpendResponse struct {
	Data  *Spend  `json:"data"`                                                         // The spend record
	Error *string `json:"error" example:"there is no spend record matching your query"` // The error, if any occurred
}

type SpendListResponse struct {
	Data       []Spend     `json:"data"`                                                          // List of spend records
	Error      *string     `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Pagination *Pagination `json:"pagination"`                                                    // Pagination information
}

type SpendCreateResponse struct {
	Data  *Spend  `json:"data"`                                                   // The created spend record
	Error *string `json:"error" example:"spend amounts must be larger than zero"` // The error, if any occurred
}

type SpendQueryFilter struct {
	From   *types.Day `form:"from"`   // Spends on this day or later
	Until  *types.Day `form:"until"`  // Spends on this day or earlier
	Search string     `form:"search"` // Glob pattern matched against the comment
	Order  string     `form:"order"`  // Sort order by entry: "asc" (default) or "desc"
	Offset uint       `form:"offset"` // The offset of the first spend returned. Defaults to 0.
	Limit  int        `form:"limit"`  // Maximum number of spends to return. Defaults to 50.
}
