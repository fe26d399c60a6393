package handler

import (
	"net/http"

	"billmint-backend/internal/repository"

	"github.com/gin-gonic/gin"
)

type CustomerHandler struct {
	repo *repository.CustomerRepository
}

func NewCustomerHandler(repo *repository.CustomerRepository) *CustomerHandler {
	return &CustomerHandler{repo: repo}
}

func (h *CustomerHandler) List(c *gin.Context) {
	customers, err := h.repo.List()
	if err != nil {
		respondError(c, err)
		return
	}
	respondData(c, http.StatusOK, customers)
}

func (h *CustomerHandler) Get(c *gin.Context) {
	customer, err := h.repo.GetByID(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	respondData(c, http.StatusOK, customer)
}

func (h *CustomerHandler) Create(c *gin.Context) {
	var in repository.CustomerInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "invalid payload"})
		return
	}

	customer, err := h.repo.Create(in)
	if err != nil {
		respondError(c, err)
		return
	}
	respondData(c, http.StatusCreated, customer)
}

func (h *CustomerHandler) Update(c *gin.Context) {
	var in repository.CustomerInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "invalid payload"})
		return
	}

	customer, err := h.repo.Update(c.Param("id"), in)
	if err != nil {
		respondError(c, err)
		return
	}
	respondData(c, http.StatusOK, customer)
}

func (h *CustomerHandler) Delete(c *gin.Context) {
	if err := h.repo.Delete(c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "customer deleted"})
}
