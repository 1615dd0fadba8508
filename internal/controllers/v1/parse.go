package v1

import (
	"net/http"

	"github.com/buckwheat-app/backend/internal/amount"
	"github.com/buckwheat-app/backend/internal/httputil"
	"github.com/buckwheat-app/backend/internal/money"
	"github.com/gin-gonic/gin"
)

func (co *Controller) RegisterParseRoutes(r *gin.RouterGroup) {
	{
		r.OPTIONS("", co.OptionsParse)
		r.POST("", co.CreateParse)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Parse
// @Success		204
// @Router			/v1/parse [options]
func (co *Controller) OptionsParse(c *gin.Context) {
	httputil.OptionsPost(c)
}

// @Summary		Parse amount
// @Description	Parses free-form user input into a canonical amount, for live input fields
// @Tags			Parse
// @Produce		json
// @Success		200		{object}	ParseResponse
// @Failure		400		{object}	ParseResponse
// @Param			input	body		ParseEditable	true	"Input"
// @Router			/v1/parse [post]
func (co *Controller) CreateParse(c *gin.Context) {
	var editable ParseEditable
	if err := httputil.BindData(c, &editable); err != nil {
		e := err.Error()
		c.JSON(status(err), ParseResponse{Error: &e})
		return
	}

	if editable.Input == "" {
		e := errInputMissing.Error()
		c.JSON(status(errInputMissing), ParseResponse{Error: &e})
		return
	}

	value, err := money.FromText(editable.Input, co.Locale)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), ParseResponse{Error: &e})
		return
	}

	parsed := amount.Parse(editable.Input, co.Locale)
	data := Parse{
		Sign:     parsed.Sign,
		Integer:  parsed.Integer,
		Fraction: parsed.Fraction,
		Joined:   parsed.Join(true),
		Value:    value.String(),
		Display:  value.Display(),
	}
	c.JSON(http.StatusOK, ParseResponse{Data: &data})
}
