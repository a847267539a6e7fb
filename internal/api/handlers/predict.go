package handlers

import (
	"errors"
	"io"
	"log/slog"
	"net/http"

	"nnpredictor/internal/models"
	"nnpredictor/internal/predictor"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

const (
	errMissingSymbol = "symbol is required"
	errInvalidBody   = "invalid request body"
)

// PredictHandler handles price prediction requests
type PredictHandler struct {
	predictor predictor.Predictor
	logger    *slog.Logger
}

// NewPredictHandler creates a new PredictHandler
func NewPredictHandler(p predictor.Predictor, logger *slog.Logger) *PredictHandler {
	return &PredictHandler{
		predictor: p,
		logger:    logger,
	}
}

// Predict godoc
// @Summary Predict a price
// @Description Returns a simulated price prediction for the given symbol. The price is a random integer in [20000, 60000].
// @Tags prediction
// @Accept json
// @Produce json
// @Param symbol query string true "Asset ticker (e.g. 'BTC')"
// @Success 200 {object} models.PredictionResponse
// @Failure 400 {object} models.ErrorResponse "Missing symbol or invalid request body"
// @Router /predict [post]
func (h *PredictHandler) Predict(c *gin.Context) {
	var req models.PredictionRequest

	if symbols := c.QueryArray("symbol"); len(symbols) > 0 {
		// A repeated parameter resolves to its last value
		last := symbols[len(symbols)-1]
		req.Symbol = &last
	} else if c.ContentType() == binding.MIMEJSON {
		if err := c.ShouldBindJSON(&req); err != nil {
			var verrs validator.ValidationErrors
			if errors.As(err, &verrs) || errors.Is(err, io.EOF) {
				c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: errMissingSymbol})
				return
			}
			c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: errInvalidBody})
			return
		}
	}

	if err := binding.Validator.ValidateStruct(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: errMissingSymbol})
		return
	}

	symbol := *req.Symbol
	price := h.predictor.Predict(symbol)

	h.logger.Debug("Prediction served",
		slog.String("symbol", symbol),
		slog.Int("price", price),
	)

	c.JSON(http.StatusOK, models.PredictionResponse{
		Symbol: symbol,
		Price:  price,
	})
}
