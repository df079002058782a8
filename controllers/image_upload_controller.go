package controllers

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/MILANBHADARKA/TiffinCart-sub000/services"
	"github.com/MILANBHADARKA/TiffinCart-sub000/utils"

	"github.com/gin-gonic/gin"
)

type UploadImageInput struct {
	Image string `json:"image" binding:"required"` // data URL
}

// UploadImage screens the image with Rekognition, then stores it in S3
// and hands back the public URL for the kitchen/menu record.
func UploadImage(c *gin.Context) {
	var input UploadImageInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
		return
	}

	flagged, err := services.ScreenImage(input.Image)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "image screening failed"})
		return
	}
	if len(flagged) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   "image rejected: " + strings.Join(flagged, ", "),
		})
		return
	}

	url, err := utils.UploadBase64ImageToS3(input.Image, fmt.Sprintf("seller-%d", c.GetUint("userID")))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": gin.H{"url": url}})
}
