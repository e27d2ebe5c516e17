package api

import (
	"errors"
	"net/http"

	resdto "numberpool/internal/handler/dto/response"
	"numberpool/internal/handler/middleware"
	"numberpool/internal/pkg/errs"
	"numberpool/internal/usecase/commands"
	"numberpool/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type ReviewHandler struct {
	commands commands.PoolCommands
	queries  queries.PoolQueries
}

func NewReviewHandler(cmds commands.PoolCommands, qs queries.PoolQueries) *ReviewHandler {
	return &ReviewHandler{
		commands: cmds,
		queries:  qs,
	}
}

// Approve finalizes a slot whose submitted proof the reviewer accepted.
func (h *ReviewHandler) Approve(c *gin.Context) {
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

	result, err := h.commands.Approve(c.Request.Context(), number, actor)
	if err != nil {
		h.writeReviewError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromSlotResult(result))
}

// Reject force-releases a slot. Succeeds even when there is nothing to
// release.
func (h *ReviewHandler) Reject(c *gin.Context) {
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

	result, err := h.commands.Reject(c.Request.Context(), number, actor)
	if err != nil {
		h.writeReviewError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromSlotResult(result))
}

// Board lists pending submissions oldest first, for the reviewer's queue.
func (h *ReviewHandler) Board(c *gin.Context) {
	views, err := h.queries.ListPendingSubmissions(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	response := make([]*resdto.SubmissionResponse, len(views))
	for i, v := range views {
		response[i] = resdto.FromSubmissionView(v)
	}

	c.JSON(http.StatusOK, response)
}

func (h *ReviewHandler) writeReviewError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, errs.ErrUnauthorizedReviewer):
		c.JSON(http.StatusForbidden, gin.H{
			"error": "Not the configured reviewer",
		})
	case errors.Is(err, errs.ErrInvalidSlotNumber):
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Slot number out of range",
		})
	case errors.Is(err, errs.ErrNoPendingSubmission):
		c.JSON(http.StatusNotFound, gin.H{
			"error": "No pending submission for this slot",
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
}
