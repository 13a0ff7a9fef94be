// controllers/registration.go
package controllers

import (
	"net/http"

	"github.com/Spacespixel/ppsasset-new/models"
	"github.com/Spacespixel/ppsasset-new/services"
	"github.com/Spacespixel/ppsasset-new/utils"

	"github.com/gin-gonic/gin"
)

// ===== REGISTRATION CONTROLLERS =====

// RegisterInterest - รับลงทะเบียนความสนใจโครงการ
func RegisterInterest(c *gin.Context) {
	var req models.RegistrationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	req.FirstName = utils.SanitizeInput(req.FirstName)
	req.LastName = utils.SanitizeInput(req.LastName)
	req.Remark = utils.SanitizeInput(req.Remark)
	req.TelNo = utils.SanitizeInput(req.TelNo)

	if !utils.ValidatePhone(req.TelNo) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "หมายเลขโทรศัพท์ไม่ถูกต้อง"})
		return
	}
	if !utils.ValidateEmail(req.Email) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "อีเมลไม่ถูกต้อง"})
		return
	}

	svc := services.NewRegistrationService(nil)

	// คำเตือนซ้ำเป็นข้อมูลประกอบเท่านั้น ไม่บล็อกการลงทะเบียน
	warnings := svc.CheckDuplicates(req)

	reference, err := svc.Save(req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "ไม่สามารถบันทึกข้อมูลได้ กรุณาลองใหม่อีกครั้ง",
		})
		return
	}

	go services.NotifyNewLead(reference, req)

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data": models.RegistrationResponse{
			Reference:         reference,
			ProjectName:       req.ProjectName,
			DuplicateWarnings: warnings,
		},
	})
}
