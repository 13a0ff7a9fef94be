// controllers/project.go
package controllers

import (
	"errors"
	"net/http"
	"os"

	"github.com/Spacespixel/ppsasset-new/models"
	"github.com/Spacespixel/ppsasset-new/services"

	"github.com/gin-gonic/gin"
)

// ===== PROJECT CONTROLLERS =====

// GetProjects - ดึงโครงการทั้งหมด (หรือกรองตาม type / available)
func GetProjects(c *gin.Context) {
	svc := services.NewProjectService(nil)

	var (
		projects []models.ProjectView
		err      error
	)
	switch {
	case c.Query("available") == "true":
		projects, err = svc.GetAvailable()
	case c.Query("type") != "":
		projectType, ok := models.ParseProjectType(c.Query("type"))
		if !ok {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown project type"})
			return
		}
		projects, err = svc.GetByType(projectType)
	default:
		projects, err = svc.GetAll()
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch projects"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    projects,
		"count":   len(projects),
	})
}

// GetProject - ดึงโครงการโดย slug พร้อม theme ของหน้า
func GetProject(c *gin.Context) {
	slug := c.Param("slug")

	project, err := services.NewProjectService(nil).GetBySlug(slug)
	if err != nil {
		if errors.Is(err, services.ErrProjectNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Project not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch project"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    project,
		"theme":   services.NewThemeService().GetProjectTheme(slug),
	})
}

// GetProjectByLegacyURL - แปลง URL เดิม (type/name/location) เป็นโครงการ
func GetProjectByLegacyURL(c *gin.Context) {
	legacy := models.LegacyURL{
		Type:     c.Param("type"),
		Name:     c.Param("name"),
		Location: c.Param("location"),
	}

	slug, err := services.NewMappingService(nil).SlugForLegacyURL(legacy)
	if err != nil {
		if errors.Is(err, services.ErrMappingNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Project not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to resolve project"})
		return
	}

	c.Redirect(http.StatusMovedPermanently, "/api/v1/projects/"+slug)
}

// UpdateProjectStatus - เปลี่ยนสถานะการขายของโครงการ (ต้องใช้ admin token)
func UpdateProjectStatus(c *gin.Context) {
	expected := os.Getenv("ADMIN_TOKEN")
	if expected == "" || c.Query("token") != expected {
		c.JSON(http.StatusForbidden, gin.H{"error": "Admin access required"})
		return
	}

	slug := c.Param("slug")

	var req struct {
		Status    string `json:"status" binding:"required"`
		ChangedBy string `json:"changed_by" binding:"required"`
		Reason    string `json:"reason"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	status, ok := models.ParseProjectStatus(req.Status)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown project status"})
		return
	}

	err := services.NewProjectService(nil).UpdateStatus(slug, status, req.ChangedBy, req.Reason)
	if err != nil {
		if errors.Is(err, services.ErrProjectNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Project not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update status"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Status updated",
	})
}

// GetProjectStatusHistory - ดึงประวัติการเปลี่ยนสถานะ (ต้องใช้ admin token)
func GetProjectStatusHistory(c *gin.Context) {
	expected := os.Getenv("ADMIN_TOKEN")
	if expected == "" || c.Query("token") != expected {
		c.JSON(http.StatusForbidden, gin.H{"error": "Admin access required"})
		return
	}

	history, err := services.NewProjectService(nil).StatusHistory(c.Param("slug"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch status history"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    history,
		"count":   len(history),
	})
}
