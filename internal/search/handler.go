package search

import (
	"context"
	"net/http"
	"strings"
	"unicode/utf8"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// Interpreter is what the handler needs from the service.
type Interpreter interface {
	Interpret(ctx context.Context, input string, opts Options) (*Interpretation, error)
}

type Handler struct {
	interpreter Interpreter
}

func NewHandler(interpreter Interpreter) *Handler {
	return &Handler{interpreter: interpreter}
}

type interpretRequest struct {
	Input   string  `json:"input"`
	Options Options `json:"options"`
}

// --------------------------------------------------
// POST /api/search/interpret
// --------------------------------------------------
func (h *Handler) Interpret(c *gin.Context) {
	var req interpretRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	// The input is captured here, before anything can fail; the fallback
	// path below must reuse this value since the request body is gone.
	input := req.Input

	if utf8.RuneCountInString(strings.TrimSpace(input)) < 3 {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Input deve ter pelo menos 3 caracteres",
		})
		return
	}

	interpretation, err := h.interpreter.Interpret(c.Request.Context(), input, req.Options)
	if err != nil {
		logrus.WithError(err).WithField("provider", req.Options.Provider).
			Error("search interpretation failed")

		c.JSON(http.StatusInternalServerError, gin.H{
			"error":    err.Error(),
			"fallback": CreateFallbackInterpretation(input),
		})
		return
	}

	c.JSON(http.StatusOK, interpretation)
}
