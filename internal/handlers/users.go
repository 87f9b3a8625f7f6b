package handlers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

func (h *Handler) ListUsers(ctx *gin.Context) {
	page, ok := pageFromQuery(ctx)
	if !ok {
		badPagination(ctx)
		return
	}

	users, total, err := h.Users.List(page)
	if err != nil {
		log.Printf("Failed to list users: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve users"})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"data": users, "totalData": total})
}
