package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/franchise-api/backend/internal/model"
	"github.com/franchise-api/backend/internal/service"
)

type FranchiseHandler struct {
	svc *service.FranchiseService
}

func NewFranchiseHandler(svc *service.FranchiseService) *FranchiseHandler {
	return &FranchiseHandler{svc: svc}
}

// Create godoc
// @Summary Create a franchise
// @Tags franchises
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body model.CreateFranchiseRequest true "New franchise"
// @Success 201 {object} model.FranchiseResponse
// @Failure 400 {object} model.APIError
// @Failure 401 {object} model.APIError
// @Failure 409 {object} model.APIError
// @Failure 500 {object} model.APIError
// @Router /api/v1/franchises [post]
func (h *FranchiseHandler) Create(c *gin.Context) {
	var req model.CreateFranchiseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBindError(c, err)
		return
	}

	resp, err := h.svc.CreateFranchise(c.Request.Context(), req)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// List godoc
// @Summary List franchises
// @Tags franchises
// @Produce json
// @Security BearerAuth
// @Success 200 {array} model.FranchiseResponse
// @Failure 401 {object} model.APIError
// @Failure 500 {object} model.APIError
// @Router /api/v1/franchises [get]
func (h *FranchiseHandler) List(c *gin.Context) {
	resp, err := h.svc.GetAllFranchises(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Get godoc
// @Summary Get a franchise
// @Tags franchises
// @Produce json
// @Security BearerAuth
// @Param franchiseId path string true "Franchise ID"
// @Success 200 {object} model.FranchiseResponse
// @Failure 401 {object} model.APIError
// @Failure 404 {object} model.APIError
// @Failure 500 {object} model.APIError
// @Router /api/v1/franchises/{franchiseId} [get]
func (h *FranchiseHandler) Get(c *gin.Context) {
	resp, err := h.svc.GetFranchise(c.Request.Context(), c.Param("franchiseId"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// UpdateName godoc
// @Summary Rename a franchise
// @Tags franchises
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param franchiseId path string true "Franchise ID"
// @Param request body model.UpdateFranchiseNameRequest true "New name"
// @Success 200 {object} model.FranchiseResponse
// @Failure 400 {object} model.APIError
// @Failure 401 {object} model.APIError
// @Failure 404 {object} model.APIError
// @Failure 409 {object} model.APIError
// @Failure 500 {object} model.APIError
// @Router /api/v1/franchises/{franchiseId}/name [patch]
func (h *FranchiseHandler) UpdateName(c *gin.Context) {
	var req model.UpdateFranchiseNameRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBindError(c, err)
		return
	}

	resp, err := h.svc.UpdateFranchiseName(c.Request.Context(), c.Param("franchiseId"), req)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// UpdateStatus godoc
// @Summary Activate or deactivate a franchise
// @Tags franchises
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param franchiseId path string true "Franchise ID"
// @Param request body model.UpdateFranchiseStatusRequest true "Target status"
// @Success 200 {object} model.FranchiseResponse
// @Failure 400 {object} model.APIError
// @Failure 401 {object} model.APIError
// @Failure 404 {object} model.APIError
// @Failure 500 {object} model.APIError
// @Router /api/v1/franchises/{franchiseId}/status [patch]
func (h *FranchiseHandler) UpdateStatus(c *gin.Context) {
	var req model.UpdateFranchiseStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBindError(c, err)
		return
	}

	resp, err := h.svc.UpdateFranchiseStatus(c.Request.Context(), c.Param("franchiseId"), *req.Active)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Delete godoc
// @Summary Delete a franchise
// @Tags franchises
// @Produce json
// @Security BearerAuth
// @Param franchiseId path string true "Franchise ID"
// @Success 204 "No Content"
// @Failure 401 {object} model.APIError
// @Failure 404 {object} model.APIError
// @Failure 500 {object} model.APIError
// @Router /api/v1/franchises/{franchiseId} [delete]
func (h *FranchiseHandler) Delete(c *gin.Context) {
	if err := h.svc.DeleteFranchise(c.Request.Context(), c.Param("franchiseId")); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// AddBranch godoc
// @Summary Add a branch to a franchise
// @Tags branches
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param franchiseId path string true "Franchise ID"
// @Param request body model.CreateBranchRequest true "New branch"
// @Success 201 {object} model.BranchResponse
// @Failure 400 {object} model.APIError
// @Failure 401 {object} model.APIError
// @Failure 404 {object} model.APIError
// @Failure 409 {object} model.APIError
// @Failure 500 {object} model.APIError
// @Router /api/v1/franchises/{franchiseId}/branches [post]
func (h *FranchiseHandler) AddBranch(c *gin.Context) {
	var req model.CreateBranchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBindError(c, err)
		return
	}

	resp, err := h.svc.AddBranch(c.Request.Context(), c.Param("franchiseId"), req)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// UpdateBranchName godoc
// @Summary Rename a branch
// @Tags branches
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param franchiseId path string true "Franchise ID"
// @Param branchId path string true "Branch ID"
// @Param request body model.UpdateBranchNameRequest true "New name"
// @Success 200 {object} model.BranchResponse
// @Failure 400 {object} model.APIError
// @Failure 401 {object} model.APIError
// @Failure 404 {object} model.APIError
// @Failure 409 {object} model.APIError
// @Failure 500 {object} model.APIError
// @Router /api/v1/franchises/{franchiseId}/branches/{branchId}/name [patch]
func (h *FranchiseHandler) UpdateBranchName(c *gin.Context) {
	var req model.UpdateBranchNameRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBindError(c, err)
		return
	}

	resp, err := h.svc.UpdateBranchName(c.Request.Context(), c.Param("franchiseId"), c.Param("branchId"), req)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// UpdateBranchStatus godoc
// @Summary Activate or deactivate a branch
// @Tags branches
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param franchiseId path string true "Franchise ID"
// @Param branchId path string true "Branch ID"
// @Param request body model.UpdateBranchStatusRequest true "Target status"
// @Success 200 {object} model.BranchResponse
// @Failure 400 {object} model.APIError
// @Failure 401 {object} model.APIError
// @Failure 404 {object} model.APIError
// @Failure 500 {object} model.APIError
// @Router /api/v1/franchises/{franchiseId}/branches/{branchId}/status [patch]
func (h *FranchiseHandler) UpdateBranchStatus(c *gin.Context) {
	var req model.UpdateBranchStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBindError(c, err)
		return
	}

	resp, err := h.svc.UpdateBranchStatus(c.Request.Context(), c.Param("franchiseId"), c.Param("branchId"), *req.Active)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// DeleteBranch godoc
// @Summary Delete a branch
// @Tags branches
// @Produce json
// @Security BearerAuth
// @Param franchiseId path string true "Franchise ID"
// @Param branchId path string true "Branch ID"
// @Success 204 "No Content"
// @Failure 401 {object} model.APIError
// @Failure 404 {object} model.APIError
// @Failure 500 {object} model.APIError
// @Router /api/v1/franchises/{franchiseId}/branches/{branchId} [delete]
func (h *FranchiseHandler) DeleteBranch(c *gin.Context) {
	if err := h.svc.DeleteBranch(c.Request.Context(), c.Param("franchiseId"), c.Param("branchId")); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// AddProduct godoc
// @Summary Add a product to a branch
// @Tags products
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param franchiseId path string true "Franchise ID"
// @Param branchId path string true "Branch ID"
// @Param request body model.CreateProductRequest true "New product"
// @Success 201 {object} model.ProductResponse
// @Failure 400 {object} model.APIError
// @Failure 401 {object} model.APIError
// @Failure 404 {object} model.APIError
// @Failure 409 {object} model.APIError
// @Failure 500 {object} model.APIError
// @Router /api/v1/franchises/{franchiseId}/branches/{branchId}/products [post]
func (h *FranchiseHandler) AddProduct(c *gin.Context) {
	var req model.CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBindError(c, err)
		return
	}

	resp, err := h.svc.AddProduct(c.Request.Context(), c.Param("franchiseId"), c.Param("branchId"), req)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// UpdateProductName godoc
// @Summary Rename a product
// @Tags products
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param franchiseId path string true "Franchise ID"
// @Param branchId path string true "Branch ID"
// @Param productId path string true "Product ID"
// @Param request body model.UpdateProductNameRequest true "New name"
// @Success 200 {object} model.ProductResponse
// @Failure 400 {object} model.APIError
// @Failure 401 {object} model.APIError
// @Failure 404 {object} model.APIError
// @Failure 409 {object} model.APIError
// @Failure 500 {object} model.APIError
// @Router /api/v1/franchises/{franchiseId}/branches/{branchId}/products/{productId}/name [patch]
func (h *FranchiseHandler) UpdateProductName(c *gin.Context) {
	var req model.UpdateProductNameRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBindError(c, err)
		return
	}

	resp, err := h.svc.UpdateProductName(c.Request.Context(), c.Param("franchiseId"), c.Param("branchId"), c.Param("productId"), req)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// UpdateProductStock godoc
// @Summary Update a product's stock
// @Tags products
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param franchiseId path string true "Franchise ID"
// @Param branchId path string true "Branch ID"
// @Param productId path string true "Product ID"
// @Param request body model.UpdateProductStockRequest true "New stock level"
// @Success 200 {object} model.ProductResponse
// @Failure 400 {object} model.APIError
// @Failure 401 {object} model.APIError
// @Failure 404 {object} model.APIError
// @Failure 500 {object} model.APIError
// @Router /api/v1/franchises/{franchiseId}/branches/{branchId}/products/{productId}/stock [patch]
func (h *FranchiseHandler) UpdateProductStock(c *gin.Context) {
	var req model.UpdateProductStockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBindError(c, err)
		return
	}

	resp, err := h.svc.UpdateProductStock(c.Request.Context(), c.Param("franchiseId"), c.Param("branchId"), c.Param("productId"), req.Stock)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// DeleteProduct godoc
// @Summary Delete a product
// @Tags products
// @Produce json
// @Security BearerAuth
// @Param franchiseId path string true "Franchise ID"
// @Param branchId path string true "Branch ID"
// @Param productId path string true "Product ID"
// @Success 204 "No Content"
// @Failure 401 {object} model.APIError
// @Failure 404 {object} model.APIError
// @Failure 500 {object} model.APIError
// @Router /api/v1/franchises/{franchiseId}/branches/{branchId}/products/{productId} [delete]
func (h *FranchiseHandler) DeleteProduct(c *gin.Context) {
	if err := h.svc.DeleteProduct(c.Request.Context(), c.Param("franchiseId"), c.Param("branchId"), c.Param("productId")); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// TopProducts godoc
// @Summary Top product per branch
// @Description Reports the highest-stock product of every active branch.
// @Tags franchises
// @Produce json
// @Security BearerAuth
// @Param franchiseId path string true "Franchise ID"
// @Success 200 {array} model.TopProductPerBranchResponse
// @Failure 401 {object} model.APIError
// @Failure 404 {object} model.APIError
// @Failure 500 {object} model.APIError
// @Router /api/v1/franchises/{franchiseId}/top-products [get]
func (h *FranchiseHandler) TopProducts(c *gin.Context) {
	resp, err := h.svc.GetTopProductPerBranch(c.Request.Context(), c.Param("franchiseId"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
