package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/campuslab/printbooth/internal/pkg/response"
	"github.com/campuslab/printbooth/internal/service"
)

type ManagerHandler struct {
	booth *service.BoothService
}

func NewManagerHandler(booth *service.BoothService) *ManagerHandler {
	return &ManagerHandler{booth: booth}
}

func (h *ManagerHandler) Profile(c *gin.Context) {
	m, err := h.booth.Profile(c.Request.Context(), getUserID(c))
	if err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, "Success", gin.H{"manager": m})
}

type reloadPaperRequest struct {
	PaperAvailable *int `json:"paperAvailable"`
}

func (h *ManagerHandler) ReloadPaper(c *gin.Context) {
	var req reloadPaperRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.PaperAvailable == nil {
		response.Error(c, http.StatusBadRequest, "invalid request", nil)
		return
	}
	m, err := h.booth.ReloadPaper(c.Request.Context(), getUserID(c), *req.PaperAvailable)
	if err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, "Paper level updated", gin.H{"manager": m})
}

type setActiveRequest struct {
	IsActive *bool `json:"isActive"`
}

func (h *ManagerHandler) SetActive(c *gin.Context) {
	var req setActiveRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.IsActive == nil {
		response.Error(c, http.StatusBadRequest, "invalid request", nil)
		return
	}
	m, err := h.booth.SetActive(c.Request.Context(), getUserID(c), *req.IsActive)
	if err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, "Booth status updated", gin.H{"manager": m})
}
