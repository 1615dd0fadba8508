package v1

type ParseEditable struct {
	Input string `json:"input" example:"17,30"` // Free-form user input
}

// Parse is the decomposed form of a parsed amount.
type Parse struct {
	Sign     string `json:"sign" example:"-"`
	Integer  string `json:"integer" example:"17"`
	Fraction string `json:"fraction" example:"30"`
	Joined   string `json:"joined" example:"17.30"` // Canonical form with a dot separator
	Value    string `json:"value" example:"17.30"`  // The amount at scale 2
	Display  string `json:"display" example:"17.3"`
}

type ParseResponse struct {
	Data  *Parse  `json:"data"`                                       // The parsed amount
	Error *string `json:"error" example:"text is not a valid amount"` // The error, if any occurred
}
