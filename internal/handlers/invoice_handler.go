package handler

import (
	"net/http"
	"strconv"

	"billmint-backend/internal/repository"

	"github.com/gin-gonic/gin"
)

type InvoiceHandler struct {
	repo *repository.InvoiceRepository
}

func NewInvoiceHandler(repo *repository.InvoiceRepository) *InvoiceHandler {
	return &InvoiceHandler{repo: repo}
}

func (h *InvoiceHandler) List(c *gin.Context) {
	limit, _ := strconv.Atoi(c.Query("limit"))
	offset, _ := strconv.Atoi(c.Query("offset"))

	invoices, err := h.repo.List(repository.InvoiceListOptions{
		Search: c.Query("search"),
		Limit:  limit,
		Offset: offset,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	respondData(c, http.StatusOK, invoices)
}

func (h *InvoiceHandler) Get(c *gin.Context) {
	invoice, err := h.repo.GetByID(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	respondData(c, http.StatusOK, invoice)
}

func (h *InvoiceHandler) Create(c *gin.Context) {
	var in repository.InvoiceInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "invalid payload"})
		return
	}

	invoice, err := h.repo.Create(in)
	if err != nil {
		respondError(c, err)
		return
	}
	respondData(c, http.StatusCreated, invoice)
}

func (h *InvoiceHandler) Update(c *gin.Context) {
	var in repository.InvoiceInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "invalid payload"})
		return
	}

	invoice, err := h.repo.Update(c.Param("id"), in)
	if err != nil {
		respondError(c, err)
		return
	}
	respondData(c, http.StatusOK, invoice)
}

func (h *InvoiceHandler) Delete(c *gin.Context) {
	if err := h.repo.Delete(c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "invoice deleted"})
}
