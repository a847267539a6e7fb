package models

// PredictionRequest carries the symbol to predict a price for.
// Symbol is a pointer so that an empty symbol is distinguishable from a missing one.
type PredictionRequest struct {
	Symbol *string `form:"symbol" json:"symbol" binding:"required"`
}

// PredictionResponse represents a predicted price for a symbol
type PredictionResponse struct {
	Symbol string `json:"symbol" example:"BTC"`
	Price  int    `json:"price" example:"43512"`
}
