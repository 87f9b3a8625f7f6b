package handlers

import (
	"net/http"
	"strconv"

	"github.com/gestor-dev/gestor/internal/auth"
	"github.com/gestor-dev/gestor/internal/services"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// Handler bundles the services behind the HTTP surface. Everything is
// injected at construction; there are no package-level store handles.
type Handler struct {
	Auth     *services.AuthService
	Projects *services.ProjectService
	Users    *services.UserService

	uploadDir string
}

func New(gdb *gorm.DB, tokens *auth.Manager, uploadDir string) *Handler {
	return &Handler{
		Auth:      services.NewAuthService(gdb, tokens),
		Projects:  services.NewProjectService(gdb),
		Users:     services.NewUserService(gdb),
		uploadDir: uploadDir,
	}
}

// pageFromQuery reads the page/pageSize query parameters. Both absent means
// the caller wants the unpaginated listing; anything malformed is a client
// error (page >= 0, pageSize > 0).
func pageFromQuery(ctx *gin.Context) (*services.Page, bool) {
	pageStr := ctx.Query("page")
	sizeStr := ctx.Query("pageSize")

	if pageStr == "" && sizeStr == "" {
		return nil, true
	}

	number, err := strconv.Atoi(pageStr)
	if err != nil {
		return nil, false
	}

	size, err := strconv.Atoi(sizeStr)
	if err != nil {
		return nil, false
	}

	page := &services.Page{Number: number, Size: size}
	if !page.Valid() {
		return nil, false
	}

	return page, true
}

func badPagination(ctx *gin.Context) {
	ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid pagination parameters"})
}

func uintParam(ctx *gin.Context, name string) (uint, bool) {
	value, err := strconv.ParseUint(ctx.Param(name), 10, 32)
	if err != nil {
		return 0, false
	}
	return uint(value), true
}
