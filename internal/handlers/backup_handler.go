package handler

import (
	"net/http"

	"billmint-backend/internal/models"
	"billmint-backend/internal/services/backup"

	"github.com/gin-gonic/gin"
)

type BackupHandler struct {
	service *backup.Service
}

func NewBackupHandler(service *backup.Service) *BackupHandler {
	return &BackupHandler{service: service}
}

// Download serves the full database as a snapshot document.
func (h *BackupHandler) Download(c *gin.Context) {
	snapshot, err := h.service.Export()
	if err != nil {
		respondError(c, err)
		return
	}
	respondData(c, http.StatusOK, snapshot)
}

// Restore replaces the database contents with an uploaded snapshot.
func (h *BackupHandler) Restore(c *gin.Context) {
	var snapshot models.Snapshot
	if err := c.ShouldBindJSON(&snapshot); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "invalid payload"})
		return
	}

	stats, err := h.service.Import(&snapshot)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "backup restored successfully",
		"stats":   stats,
	})
}
