package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/flyhigh-app/flyhigh/internal/models"
	"github.com/flyhigh-app/flyhigh/internal/predict"
)

type PredictHandler struct {
	client *predict.Client
}

func NewPredictHandler(client *predict.Client) *PredictHandler {
	return &PredictHandler{client: client}
}

func (h *PredictHandler) Predict(c echo.Context) error {
	var req predict.Request
	if err := c.Bind(&req); err != nil {
		return bindError(c, err)
	}

	result, err := h.client.Predict(c.Request().Context(), req)
	if err != nil {
		return c.JSON(http.StatusBadGateway, models.ErrorResponse{
			Error:   "prediction_unavailable",
			Message: "Failed to reach the prediction service: " + err.Error(),
			Code:    http.StatusBadGateway,
		})
	}

	return c.JSON(http.StatusOK, result)
}
