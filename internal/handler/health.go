package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	log "github.com/sirupsen/logrus"

	"github.com/grandeurhq/form-service/internal/database"
)

// HealthHandler reports whether the service can reach its database.
type HealthHandler struct {
	Store *database.Store
}

func NewHealthHandler(store *database.Store) *HealthHandler {
	return &HealthHandler{Store: store}
}

type healthResp struct {
	Status string `json:"status"`
}

// Check performs a round trip to the database.  Load balancers and
// monitoring systems use it to verify the service can actually accept
// submissions, not merely that the process is up.
func (h *HealthHandler) Check(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	if err := h.Store.Ping(ctx); err != nil {
		log.WithField("err", err).Error("health check failed")
		return c.JSON(http.StatusServiceUnavailable, errorResp{Detail: msgUnavailable})
	}
	return c.JSON(http.StatusOK, healthResp{Status: "healthy"})
}
