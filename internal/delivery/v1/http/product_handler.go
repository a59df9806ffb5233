package http

import (
	"net/http"
	"strconv"

	"github.com/Ranjan7481/Ecommerce/internal/domain"
	"github.com/Ranjan7481/Ecommerce/internal/usecase"
	"github.com/Ranjan7481/Ecommerce/pkg/e"
	"github.com/Ranjan7481/Ecommerce/pkg/logger"
	"github.com/go-chi/chi/v5"
)

type ProductHandler struct {
	productUsecase usecase.ProductUC
	logger         logger.Logger
}

func NewProductHandler(productUsecase usecase.ProductUC, logger logger.Logger) *ProductHandler {
	return &ProductHandler{productUsecase: productUsecase, logger: logger}
}

// addProduct
//
//	@Summary		Добавление товара в каталог
//	@Description	Доступно только администраторам
//	@Tags			products
//	@Accept			json
//	@Produce		json
//	@Param			body	body		ProductRequest	true	"Карточка товара"
//	@Success		201		{object}	ProductResponse
//	@Failure		400		{object}	ErrorResponse	"Ошибка валидации или дубликат имени"
//	@Router			/product/add [post]
func (h *ProductHandler) addProduct(w http.ResponseWriter, r *http.Request) {
	var req ProductRequest
	if err := decodeJSONBody(r, &req); err != nil {
		h.logger.Warnf("add product: bad payload: %s", err.Error())
		WriteError(w, err)
		return
	}

	priceCents, err := parsePriceToCents(req.Price.String())
	if err != nil {
		WriteError(w, err)
		return
	}

	product, err := h.productUsecase.AddProduct(r.Context(), &usecase.AddProductReq{
		Name:            req.Name,
		Description:     req.Description,
		Price:           priceCents,
		Stock:           req.Stock,
		Category:        req.Category,
		Photo:           req.Photo,
		IsBestDeal:      req.IsBestDeal,
		IsWeeklyPopular: req.IsWeeklyPopular,
		IsMostSelling:   req.IsMostSelling,
		IsTrending:      req.IsTrending,
	})
	if err != nil {
		h.logger.Warnf("add product failed: %s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusCreated, toProductResponse(product))
}

// updateProduct
//
//	@Summary	Частичное обновление товара
//	@Tags		products
//	@Accept		json
//	@Produce	json
//	@Param		id		path		int						true	"ID товара"
//	@Param		body	body		UpdateProductRequest	true	"Изменяемые поля"
//	@Success	200		{object}	ProductResponse
//	@Failure	400		{object}	ErrorResponse
//	@Failure	404		{object}	ErrorResponse
//	@Router		/product/update/{id} [put]
func (h *ProductHandler) updateProduct(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		WriteError(w, err)
		return
	}

	var req UpdateProductRequest
	if err := decodeJSONBody(r, &req); err != nil {
		h.logger.Warnf("update product: bad payload: %s", err.Error())
		WriteError(w, err)
		return
	}

	ucReq := &usecase.UpdateProductReq{
		ID:              id,
		Name:            req.Name,
		Description:     req.Description,
		Stock:           req.Stock,
		Category:        req.Category,
		Photo:           req.Photo,
		IsBestDeal:      req.IsBestDeal,
		IsWeeklyPopular: req.IsWeeklyPopular,
		IsMostSelling:   req.IsMostSelling,
		IsTrending:      req.IsTrending,
	}

	if req.Price != nil {
		priceCents, err := parsePriceToCents(req.Price.String())
		if err != nil {
			WriteError(w, err)
			return
		}
		ucReq.Price = &priceCents
	}

	product, err := h.productUsecase.UpdateProduct(r.Context(), ucReq)
	if err != nil {
		h.logger.Warnf("update product %d failed: %s", id, err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, toProductResponse(product))
}

// deleteProduct
//
//	@Summary	Удаление товара
//	@Tags		products
//	@Produce	json
//	@Param		id	path		int	true	"ID товара"
//	@Success	200	{object}	map[string]interface{}
//	@Failure	400	{object}	ErrorResponse
//	@Failure	404	{object}	ErrorResponse
//	@Router		/product/delete/{id} [delete]
func (h *ProductHandler) deleteProduct(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		WriteError(w, err)
		return
	}

	if err := h.productUsecase.DeleteProduct(r.Context(), id); err != nil {
		h.logger.Warnf("delete product %d failed: %s", id, err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, map[string]interface{}{"deleted": true})
}

// getProduct
//
//	@Summary	Карточка товара
//	@Tags		products
//	@Produce	json
//	@Param		id	path		int	true	"ID товара"
//	@Success	200	{object}	ProductResponse
//	@Failure	404	{object}	ErrorResponse
//	@Router		/product/{id} [get]
func (h *ProductHandler) getProduct(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		WriteError(w, err)
		return
	}

	product, err := h.productUsecase.GetProduct(r.Context(), id)
	if err != nil {
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, toProductResponse(product))
}

// allProducts
//
//	@Summary	Весь каталог
//	@Tags		products
//	@Produce	json
//	@Success	200	{array}		ProductResponse
//	@Failure	404	{object}	ErrorResponse	"Каталог пуст"
//	@Router		/allproducts [get]
func (h *ProductHandler) allProducts(w http.ResponseWriter, r *http.Request) {
	products, err := h.productUsecase.ListAll(r.Context())
	if err != nil {
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, toArrProductResponse(products))
}

// search
//
//	@Summary	Поиск товаров по подстроке имени
//	@Tags		products
//	@Produce	json
//	@Param		query	query		string	true	"Подстрока имени"
//	@Success	200		{array}		ProductResponse
//	@Failure	400		{object}	ErrorResponse	"Пустой запрос"
//	@Failure	404		{object}	ErrorResponse	"Ничего не найдено"
//	@Router		/search [get]
func (h *ProductHandler) search(w http.ResponseWriter, r *http.Request) {
	products, err := h.productUsecase.Search(r.Context(), r.URL.Query().Get("query"))
	if err != nil {
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, toArrProductResponse(products))
}

// searchCategory
//
//	@Summary	Товары категории
//	@Tags		products
//	@Produce	json
//	@Param		category	query		string	true	"Категория"
//	@Success	200			{array}		ProductResponse
//	@Failure	400			{object}	ErrorResponse
//	@Failure	404			{object}	ErrorResponse
//	@Router		/search/category [get]
func (h *ProductHandler) searchCategory(w http.ResponseWriter, r *http.Request) {
	products, err := h.productUsecase.SearchCategory(r.Context(), r.URL.Query().Get("category"))
	if err != nil {
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, toArrProductResponse(products))
}

// promoSection возвращает хендлер одной промо-подборки (не более 10 товаров).
func (h *ProductHandler) promoSection(flag usecase.PromoFlag) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		products, err := h.productUsecase.PromoSection(r.Context(), flag)
		if err != nil {
			WriteError(w, err)
			return
		}

		WriteSuccess(w, http.StatusOK, toArrProductResponse(products))
	}
}

// categories
//
//	@Summary	Превью каталога по категориям
//	@Tags		products
//	@Produce	json
//	@Success	200	{array}	CategoryPreviewResponse
//	@Router		/categories [get]
func (h *ProductHandler) categories(w http.ResponseWriter, r *http.Request) {
	preview, err := h.productUsecase.CategoriesPreview(r.Context())
	if err != nil {
		WriteError(w, err)
		return
	}

	result := make([]CategoryPreviewResponse, 0, len(preview))
	for _, category := range domain.Categories() {
		products, ok := preview[category]
		if !ok {
			continue
		}
		result = append(result, CategoryPreviewResponse{
			Category: string(category),
			Products: toArrProductResponse(products),
		})
	}

	WriteSuccess(w, http.StatusOK, result)
}

func pathID(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		return 0, e.Wrap("id must be an integer", e.ErrValidation)
	}

	return id, nil
}
