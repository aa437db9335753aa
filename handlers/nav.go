package handlers

import (
	"net/http"

	navRepo "medibook/database/repository/nav"
	"medibook/utils"

	"github.com/gin-gonic/gin"
)

// NavHandler serves the client navigation menu.
type NavHandler struct {
	Repo navRepo.NavRepository
}

// NewNavHandler creates a new NavHandler.
func NewNavHandler(repo navRepo.NavRepository) *NavHandler {
	return &NavHandler{Repo: repo}
}

// GetNavItems returns the nav menu in display order.
func (h *NavHandler) GetNavItems(c *gin.Context) {
	items, err := h.Repo.GetAll()
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to fetch nav items", err.Error())
		return
	}
	c.JSON(http.StatusOK, items)
}
