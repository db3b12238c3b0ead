package result

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/medilab/lab-api/internal/handler"
	"github.com/medilab/lab-api/internal/model"
	"github.com/medilab/lab-api/internal/service/result"
)

type Handler struct {
	svc *result.Service
}

func NewHandler(svc *result.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	results := r.Group("/results")
	{
		results.GET("", h.List)
		results.POST("", h.Create)
	}
}

func (h *Handler) List(c *gin.Context) {
	docs, err := h.svc.List(c.Request.Context(), c.Query("user_email"))
	if err != nil {
		handler.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, docs)
}

func (h *Handler) Create(c *gin.Context) {
	var req model.CreateResultRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse(err.Error()))
		return
	}

	doc, err := h.svc.Create(c.Request.Context(), &req)
	if err != nil {
		handler.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, doc)
}
