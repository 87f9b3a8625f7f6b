package handlers

import (
	"log"
	"net/http"
	"os"
	"path/filepath"
	"strconv"

	"github.com/gestor-dev/gestor/internal/models"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type CreateProjectRequest struct {
	Name        string       `json:"name" binding:"required"`
	Description string       `json:"description"`
	InitialDate models.Date  `json:"initial_date" binding:"required"`
	FinalDate   *models.Date `json:"final_date"`
	Status      string       `json:"status" binding:"required,oneof='Em andamento' 'Concluído' 'Pendente'"`
	UserID      uint         `json:"userId" binding:"required"`
}

type UpdateProjectRequest struct {
	Name        string       `json:"name" binding:"required"`
	Description string       `json:"description"`
	InitialDate models.Date  `json:"initial_date" binding:"required"`
	FinalDate   *models.Date `json:"final_date"`
	Status      string       `json:"status" binding:"required,oneof='Em andamento' 'Concluído' 'Pendente'"`
}

type LinkUserRequest struct {
	UserID uint `json:"userId" binding:"required"`
}

func (h *Handler) CreateProject(ctx *gin.Context) {
	var body CreateProjectRequest

	if err := ctx.BindJSON(&body); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	project := models.Project{
		Name:        body.Name,
		Description: body.Description,
		InitialDate: body.InitialDate,
		FinalDate:   body.FinalDate,
		Status:      body.Status,
	}

	if err := h.Projects.Create(&project, body.UserID); err != nil {
		log.Printf("Failed to create project: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create project"})
		return
	}

	ctx.JSON(http.StatusCreated, project)
}

func (h *Handler) ListProjects(ctx *gin.Context) {
	page, ok := pageFromQuery(ctx)
	if !ok {
		badPagination(ctx)
		return
	}

	projects, total, err := h.Projects.List(page)
	if err != nil {
		log.Printf("Failed to list projects: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve projects"})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"data": projects, "totalData": total})
}

func (h *Handler) UpdateProject(ctx *gin.Context) {
	projectID, ok := uintParam(ctx, "projectId")
	if !ok {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid project ID"})
		return
	}

	var body UpdateProjectRequest

	if err := ctx.BindJSON(&body); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	project := models.Project{
		ID:          projectID,
		Name:        body.Name,
		Description: body.Description,
		InitialDate: body.InitialDate,
		FinalDate:   body.FinalDate,
		Status:      body.Status,
	}

	// A miss is not an error: the update contract is a silent no-op when
	// no row matches.
	if err := h.Projects.Update(projectID, project); err != nil {
		log.Printf("Failed to update project %d: %v", projectID, err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update project"})
		return
	}

	ctx.JSON(http.StatusOK, project)
}

func (h *Handler) DeleteProject(ctx *gin.Context) {
	projectID, ok := uintParam(ctx, "projectId")
	if !ok {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid project ID"})
		return
	}

	if err := h.Projects.Delete(projectID); err != nil {
		log.Printf("Failed to delete project %d: %v", projectID, err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete project"})
		return
	}

	ctx.Status(http.StatusNoContent)
}

func (h *Handler) LinkUser(ctx *gin.Context) {
	projectID, ok := uintParam(ctx, "projectId")
	if !ok {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid project ID"})
		return
	}

	var body LinkUserRequest

	if err := ctx.BindJSON(&body); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "userId is required"})
		return
	}

	linked, message, err := h.Projects.LinkUser(projectID, body.UserID)
	if err != nil {
		log.Printf("Failed to link user %d to project %d: %v", body.UserID, projectID, err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to link user to project"})
		return
	}

	if !linked {
		// 208: the pair already exists, which is a non-error signal.
		ctx.JSON(http.StatusAlreadyReported, gin.H{"error": message})
		return
	}

	ctx.JSON(http.StatusCreated, gin.H{
		"message":   message,
		"projectId": projectID,
		"userId":    body.UserID,
	})
}

func (h *Handler) UnlinkUser(ctx *gin.Context) {
	projectID, ok := uintParam(ctx, "projectId")
	if !ok {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid project ID"})
		return
	}

	userID, ok := uintParam(ctx, "userId")
	if !ok {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user ID"})
		return
	}

	if err := h.Projects.UnlinkUser(projectID, userID); err != nil {
		log.Printf("Failed to unlink user %d from project %d: %v", userID, projectID, err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to remove the user from the project"})
		return
	}

	ctx.Status(http.StatusNoContent)
}

func (h *Handler) ListProjectUsers(ctx *gin.Context) {
	projectID, ok := uintParam(ctx, "projectId")
	if !ok {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid project ID"})
		return
	}

	page, ok := pageFromQuery(ctx)
	if !ok {
		badPagination(ctx)
		return
	}

	users, total, err := h.Projects.UsersForProject(projectID, page)
	if err != nil {
		log.Printf("Failed to list users for project %d: %v", projectID, err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve users for the project"})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"data": users, "totalData": total})
}

func (h *Handler) ListUserProjects(ctx *gin.Context) {
	userID, ok := uintParam(ctx, "userId")
	if !ok {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user ID"})
		return
	}

	page, ok := pageFromQuery(ctx)
	if !ok {
		badPagination(ctx)
		return
	}

	projects, total, err := h.Projects.ProjectsForUser(userID, page)
	if err != nil {
		log.Printf("Failed to list projects for user %d: %v", userID, err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve projects for the user"})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"data": projects, "totalData": total})
}

// UploadProjects imports a ;-delimited CSV of projects. The file is staged
// on disk before parsing and removed afterward, like the upload flow the
// frontend expects.
func (h *Handler) UploadProjects(ctx *gin.Context) {
	file, err := ctx.FormFile("file")
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "CSV file is required"})
		return
	}

	userID, err := strconv.ParseUint(ctx.PostForm("userId"), 10, 32)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "userId is required"})
		return
	}

	if err := os.MkdirAll(h.uploadDir, 0o755); err != nil {
		log.Printf("Failed to create upload dir: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Error processing projects"})
		return
	}

	staged := filepath.Join(h.uploadDir, uuid.NewString()+filepath.Ext(file.Filename))

	if err := ctx.SaveUploadedFile(file, staged); err != nil {
		log.Printf("Failed to stage uploaded file: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Error reading CSV file"})
		return
	}
	defer os.Remove(staged)

	f, err := os.Open(staged)
	if err != nil {
		log.Printf("Failed to open staged file: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Error reading CSV file"})
		return
	}
	defer f.Close()

	if err := h.Projects.ImportCSV(f, uint(userID)); err != nil {
		// Rows committed before the failure stay committed.
		log.Printf("Error while processing projects: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Error processing projects"})
		return
	}

	ctx.JSON(http.StatusCreated, gin.H{"message": "Projects uploaded and processed successfully"})
}

// Dashboard returns project counts grouped by status.
func (h *Handler) Dashboard(ctx *gin.Context) {
	counts, total, err := h.Projects.StatusSummary()
	if err != nil {
		log.Printf("Failed to build dashboard summary: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve dashboard"})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"total": total, "byStatus": counts})
}
