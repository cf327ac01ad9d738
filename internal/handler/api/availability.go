package api

import (
	"net/http"

	reqdto "slotbook/internal/handler/dto/request"
	resdto "slotbook/internal/handler/dto/response"
	"slotbook/internal/handler/httperr"
	"slotbook/internal/pkg/errs"
	"slotbook/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type AvailabilityHandler struct {
	availabilityQueries queries.AvailabilityQueries
}

func NewAvailabilityHandler(availabilityQueries queries.AvailabilityQueries) *AvailabilityHandler {
	return &AvailabilityHandler{
		availabilityQueries: availabilityQueries,
	}
}

func (h *AvailabilityHandler) SearchAvailability(c *gin.Context) {
	var req reqdto.SearchAvailabilityRequest
	if bindErr := c.ShouldBindQuery(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid query parameters", nil)
		return
	}

	views, err := h.availabilityQueries.Search(c.Request.Context(), req.ToInput())
	if err != nil {
		switch {
		case errs.Is(err, errs.ErrInvalidSearch):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid search parameters", nil)
		case errs.Is(err, errs.ErrBusyQueryFailed):
			httperr.AbortWithError(c, http.StatusBadGateway, err, "Calendar availability lookup failed", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromSlotViews(views))
}
