package v1

import (
	"net/http"

	"github.com/buckwheat-app/backend/internal/httputil"
	"github.com/buckwheat-app/backend/internal/ledger"
	"github.com/buckwheat-app/backend/internal/money"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"golang.org/x/exp/slices"
)

const defaultSpendLimit = 50

var spendOrders = []string{"asc", "desc"}

func (co *Controller) RegisterSpendRoutes(r *gin.RouterGroup) {
	{
		r.OPTIONS("", co.OptionsSpends)
		r.GET("", co.GetSpends)
		r.POST("", co.CreateSpend)
	}
	{
		r.OPTIONS("/:id", co.OptionsSpendDetail)
		r.GET("/:id", co.GetSpend)
		r.DELETE("/:id", co.DeleteSpend)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Spends
// @Success		204
// @Router			/v1/spends [options]
func (co *Controller) OptionsSpends(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Spends
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Param			id	path		URIID	true	"ID formatted as string"
// @Router			/v1/spends/{id} [options]
func (co *Controller) OptionsSpendDetail(c *gin.Context) {
	var uri URIID
	if err := c.ShouldBindUri(&uri); err != nil {
		c.JSON(status(httputil.ErrInvalidUUID), httpError{
			Error: httputil.ErrInvalidUUID.Error(),
		})
		return
	}

	co.mu.Lock()
	defer co.mu.Unlock()

	if _, err := co.findSpend(uri.ID.UUID); err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	httputil.OptionsGetDelete(c)
}

// @Summary		Get spends
// @Description	Returns a list of spend records
// @Tags			Spends
// @Produce		json
// @Success		200	{object}	SpendListResponse
// @Failure		400	{object}	SpendListResponse
// @Router			/v1/spends [get]
// @Param			from	query	string	false	"Spends on this day or later"
// @Param			until	query	string	false	"Spends on this day or earlier"
// @Param			search	query	string	false	"Glob pattern matched against the comment"
// @Param			order	query	string	false	"Sort order by entry: asc or desc. Defaults to asc."
// @Param			offset	query	uint	false	"The offset of the first spend returned. Defaults to 0."
// @Param			limit	query	int		false	"Maximum number of spends to return. Defaults to 50."
func (co *Controller) GetSpends(c *gin.Context) {
	var filter SpendQueryFilter
	if err := c.Bind(&filter); err != nil {
		e := httputil.ErrInvalidQueryString.Error()
		c.JSON(http.StatusBadRequest, SpendListResponse{Error: &e})
		return
	}

	if filter.Order != "" && !slices.Contains(spendOrders, filter.Order) {
		e := errOrderInvalid.Error()
		c.JSON(status(errOrderInvalid), SpendListResponse{Error: &e})
		return
	}

	if filter.From != nil && filter.Until != nil && filter.From.After(*filter.Until) {
		e := errDatesSwapped.Error()
		c.JSON(status(errDatesSwapped), SpendListResponse{Error: &e})
		return
	}

	co.mu.Lock()
	defer co.mu.Unlock()

	records := co.Engine.Ledger().Records()
	if filter.Search != "" {
		records = co.Engine.Ledger().Search(filter.Search)
	}

	matching := make([]ledger.SpendRecord, 0, len(records))
	for _, record := range records {
		if filter.From != nil && record.Date.Before(*filter.From) {
			continue
		}

		if filter.Until != nil && record.Date.After(*filter.Until) {
			continue
		}

		matching = append(matching, record)
	}

	if filter.Order == "desc" {
		slices.Reverse(matching)
	}

	// Paginate
	limit := filter.Limit
	if limit == 0 {
		limit = defaultSpendLimit
	}

	offset := int(filter.Offset)
	if offset > len(matching) {
		offset = len(matching)
	}

	page := matching[offset:]
	if limit >= 0 && limit < len(page) {
		page = page[:limit]
	}

	data := make([]Spend, 0, len(page))
	for _, record := range page {
		data = append(data, newSpend(record))
	}

	c.JSON(http.StatusOK, SpendListResponse{
		Data: data,
		Pagination: &Pagination{
			Count:  len(data),
			Offset: filter.Offset,
			Limit:  limit,
			Total:  len(matching),
		},
	})
}

// @Summary		Register spend
// @Description	Registers a spend for today and reallocates the remaining budget
// @Tags			Spends
// @Produce		json
// @Success		201		{object}	SpendCreateResponse
// @Failure		400		{object}	SpendCreateResponse
// @Param			spend	body		SpendEditable	true	"Spend"
// @Router			/v1/spends [post]
func (co *Controller) CreateSpend(c *gin.Context) {
	var editable SpendEditable
	if err := httputil.BindData(c, &editable); err != nil {
		e := err.Error()
		c.JSON(status(err), SpendCreateResponse{Error: &e})
		return
	}

	if editable.Amount == "" {
		e := errAmountMissing.Error()
		c.JSON(status(errAmountMissing), SpendCreateResponse{Error: &e})
		return
	}

	amount, err := money.FromText(editable.Amount, co.Locale)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), SpendCreateResponse{Error: &e})
		return
	}

	co.mu.Lock()
	defer co.mu.Unlock()

	record, err := co.Engine.RegisterSpend(amount, co.Today(), editable.Comment)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), SpendCreateResponse{Error: &e})
		return
	}

	data := newSpend(record)
	c.JSON(http.StatusCreated, SpendCreateResponse{Data: &data})
}

// @Summary		Get spend
// @Description	Returns a specific spend record
// @Tags			Spends
// @Produce		json
// @Success		200	{object}	SpendResponse
// @Failure		400	{object}	SpendResponse
// @Failure		404	{object}	SpendResponse
// @Param			id	path		string	true	"ID formatted as string"
// @Router			/v1/spends/{id} [get]
func (co *Controller) GetSpend(c *gin.Context) {
	var uri URIID
	if err := c.ShouldBindUri(&uri); err != nil {
		e := httputil.ErrInvalidUUID.Error()
		c.JSON(status(httputil.ErrInvalidUUID), SpendResponse{Error: &e})
		return
	}

	co.mu.Lock()
	defer co.mu.Unlock()

	record, err := co.findSpend(uri.ID.UUID)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), SpendResponse{Error: &e})
		return
	}

	data := newSpend(record)
	c.JSON(http.StatusOK, SpendResponse{Data: &data})
}

// @Summary		Delete spend
// @Description	Deletes a spend record and reallocates the freed amount
// @Tags			Spends
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Param			id	path		string	true	"ID formatted as string"
// @Router			/v1/spends/{id} [delete]
func (co *Controller) DeleteSpend(c *gin.Context) {
	var uri URIID
	if err := c.ShouldBindUri(&uri); err != nil {
		c.JSON(status(httputil.ErrInvalidUUID), httpError{
			Error: httputil.ErrInvalidUUID.Error(),
		})
		return
	}

	co.mu.Lock()
	defer co.mu.Unlock()

	if err := co.Engine.RemoveSpend(uri.ID.UUID, co.Today()); err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	c.Status(http.StatusNoContent)
}

func (co *Controller) findSpend(id uuid.UUID) (ledger.SpendRecord, error) {
	for _, record := range co.Engine.Ledger().Records() {
		if record.ID == id {
			return record, nil
		}
	}

	return ledger.SpendRecord{}, ledger.ErrNotFound
}
