package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sequencehub/sequencehub/internal/application/product/dto"
	"github.com/sequencehub/sequencehub/internal/application/product/usecases"
	reviewdto "github.com/sequencehub/sequencehub/internal/application/review/dto"
	reviewusecases "github.com/sequencehub/sequencehub/internal/application/review/usecases"
	"github.com/sequencehub/sequencehub/internal/shared/id"
	"github.com/sequencehub/sequencehub/internal/shared/logger"
	"github.com/sequencehub/sequencehub/internal/shared/utils"
)

// ProductHandler serves the public catalog and the seller listing endpoints.
type ProductHandler struct {
	createProductUseCase      *usecases.CreateProductUseCase
	updateProductUseCase      *usecases.UpdateProductUseCase
	submitProductUseCase      *usecases.SubmitProductUseCase
	archiveProductUseCase     *usecases.ArchiveProductUseCase
	listProductsUseCase       *usecases.ListProductsUseCase
	listSellerProductsUseCase *usecases.ListSellerProductsUseCase
	getProductUseCase         *usecases.GetProductUseCase
	createVersionUseCase      *usecases.CreateVersionUseCase
	listProductReviewsUseCase *reviewusecases.ListProductReviewsUseCase
	logger                    logger.Interface
}

func NewProductHandler(
	createProductUC *usecases.CreateProductUseCase,
	updateProductUC *usecases.UpdateProductUseCase,
	submitProductUC *usecases.SubmitProductUseCase,
	archiveProductUC *usecases.ArchiveProductUseCase,
	listProductsUC *usecases.ListProductsUseCase,
	listSellerProductsUC *usecases.ListSellerProductsUseCase,
	getProductUC *usecases.GetProductUseCase,
	createVersionUC *usecases.CreateVersionUseCase,
	listProductReviewsUC *reviewusecases.ListProductReviewsUseCase,
	logger logger.Interface,
) *ProductHandler {
	return &ProductHandler{
		createProductUseCase:      createProductUC,
		updateProductUseCase:      updateProductUC,
		submitProductUseCase:      submitProductUC,
		archiveProductUseCase:     archiveProductUC,
		listProductsUseCase:       listProductsUC,
		listSellerProductsUseCase: listSellerProductsUC,
		getProductUseCase:         getProductUC,
		createVersionUseCase:      createVersionUC,
		listProductReviewsUseCase: listProductReviewsUC,
		logger:                    logger,
	}
}

func (h *ProductHandler) ListProducts(c *gin.Context) {
	var req dto.ListProductsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	products, total, err := h.listProductsUseCase.Execute(c.Request.Context(), req)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	pagination := utils.ValidatePagination(req.Page, req.PageSize)
	utils.ListSuccessResponse(c, products, total, pagination.Page, pagination.PageSize)
}

// GetProduct resolves by slug or public ID. Anonymous viewers only see
// approved listings.
func (h *ProductHandler) GetProduct(c *gin.Context) {
	slugOrSID := c.Param("id")
	if slugOrSID == "" {
		utils.ErrorResponse(c, http.StatusBadRequest, "product ID is required")
		return
	}

	detail, err := h.getProductUseCase.Execute(c.Request.Context(), currentUserID(c), currentRole(c), slugOrSID)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", detail)
}

func (h *ProductHandler) ListProductReviews(c *gin.Context) {
	sid, err := utils.ParseSIDParam(c, "id", id.PrefixProduct, "product")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req reviewdto.ListReviewsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	reviews, total, err := h.listProductReviewsUseCase.Execute(c.Request.Context(), sid, req)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	pagination := utils.ValidatePagination(req.Page, req.PageSize)
	utils.ListSuccessResponse(c, reviews, total, pagination.Page, pagination.PageSize)
}

func (h *ProductHandler) CreateProduct(c *gin.Context) {
	sellerID, err := utils.CurrentUserID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req dto.CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	product, err := h.createProductUseCase.Execute(c.Request.Context(), sellerID, req)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, product, "product created")
}

func (h *ProductHandler) UpdateProduct(c *gin.Context) {
	actorID, err := utils.CurrentUserID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	sid, err := utils.ParseSIDParam(c, "id", id.PrefixProduct, "product")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req dto.UpdateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	product, err := h.updateProductUseCase.Execute(c.Request.Context(), actorID, currentRole(c), sid, req)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "product updated", product)
}

func (h *ProductHandler) SubmitProduct(c *gin.Context) {
	actorID, err := utils.CurrentUserID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	sid, err := utils.ParseSIDParam(c, "id", id.PrefixProduct, "product")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	product, err := h.submitProductUseCase.Execute(c.Request.Context(), actorID, currentRole(c), sid)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "product submitted for review", product)
}

func (h *ProductHandler) ArchiveProduct(c *gin.Context) {
	actorID, err := utils.CurrentUserID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	sid, err := utils.ParseSIDParam(c, "id", id.PrefixProduct, "product")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := h.archiveProductUseCase.Execute(c.Request.Context(), actorID, currentRole(c), sid); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.NoContentResponse(c)
}

func (h *ProductHandler) ListMyProducts(c *gin.Context) {
	sellerID, err := utils.CurrentUserID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req dto.ListSellerProductsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	products, total, err := h.listSellerProductsUseCase.Execute(c.Request.Context(), sellerID, req)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	pagination := utils.ValidatePagination(req.Page, req.PageSize)
	utils.ListSuccessResponse(c, products, total, pagination.Page, pagination.PageSize)
}

func (h *ProductHandler) CreateVersion(c *gin.Context) {
	actorID, err := utils.CurrentUserID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	sid, err := utils.ParseSIDParam(c, "id", id.PrefixProduct, "product")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req dto.CreateVersionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	version, err := h.createVersionUseCase.Execute(c.Request.Context(), actorID, currentRole(c), sid, req)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, version, "version created")
}
