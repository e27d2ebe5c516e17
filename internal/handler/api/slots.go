package api

import (
	"errors"
	"net/http"
	"strconv"

	"numberpool/internal/domain/slot"
	reqdto "numberpool/internal/handler/dto/request"
	resdto "numberpool/internal/handler/dto/response"
	"numberpool/internal/handler/middleware"
	"numberpool/internal/pkg/errs"
	"numberpool/internal/usecase/commands"
	"numberpool/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type SlotsHandler struct {
	commands commands.PoolCommands
	queries  queries.PoolQueries
}

func NewSlotsHandler(cmds commands.PoolCommands, qs queries.PoolQueries) *SlotsHandler {
	return &SlotsHandler{
		commands: cmds,
		queries:  qs,
	}
}

// Claim reserves the numbered slot for the authenticated requester.
func (h *SlotsHandler) Claim(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	number, err := parseSlotNumber(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid slot number format",
		})
		return
	}

	result, err := h.commands.Claim(c.Request.Context(), number, actor)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrInvalidSlotNumber):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Slot number out of range",
			})
		case errors.Is(err, errs.ErrSlotUnavailable):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Slot is not available",
			})
		case errors.Is(err, errs.ErrAlreadyHolding):
			c.JSON(http.StatusConflict, gin.H{
				"error": "You already hold a reserved slot",
			})
		case errors.Is(err, errs.ErrDomainValidation):
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error": "Domain validation failed",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.FromSlotResult(result))
}

// SubmitProof attaches payment evidence to the caller's reserved slot. The
// reservation is located by holder, so no slot number appears in the route.
func (h *SlotsHandler) SubmitProof(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	var req reqdto.SubmitProofRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	result, err := h.commands.SubmitProof(c.Request.Context(), actor, req.GetProofRef())
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrProofRefRequired):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Proof reference required",
			})
		case errors.Is(err, errs.ErrNoReservationFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "No reserved slot for this requester",
			})
		case errors.Is(err, errs.ErrDomainValidation):
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error": "Domain validation failed",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromSlotResult(result))
}

// GetSlot returns the current view of one slot.
func (h *SlotsHandler) GetSlot(c *gin.Context) {
	number, err := parseSlotNumber(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid slot number format",
		})
		return
	}

	view, err := h.queries.GetSlot(c.Request.Context(), number)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrInvalidSlotNumber):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Slot number out of range",
			})
		case errors.Is(err, errs.ErrSlotNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Slot not found",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromSlotView(view))
}

// ListSlots returns the whole board, optionally filtered by ?status=.
func (h *SlotsHandler) ListSlots(c *gin.Context) {
	var statusFilter *slot.Status
	if raw := c.Query("status"); raw != "" {
		status, err := slot.NewStatus(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Unknown status filter",
			})
			return
		}
		statusFilter = &status
	}

	views, err := h.queries.ListSlots(c.Request.Context(), statusFilter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	response := make([]*resdto.SlotViewResponse, len(views))
	for i, v := range views {
		response[i] = resdto.FromSlotView(v)
	}

	c.JSON(http.StatusOK, response)
}

func parseSlotNumber(c *gin.Context) (int, error) {
	return strconv.Atoi(c.Param("number"))
}
