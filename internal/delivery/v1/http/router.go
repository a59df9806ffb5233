package http

import (
	"time"

	_ "github.com/Ranjan7481/Ecommerce/docs" // Импорт сгенерированных файлов
	"github.com/Ranjan7481/Ecommerce/internal/usecase"
	"github.com/Ranjan7481/Ecommerce/pkg/logger"
	"github.com/go-chi/chi/v5"
	httpSwagger "github.com/swaggo/http-swagger/v2"
)

type Router struct {
	router *chi.Mux
	logger logger.Logger
}

func NewRouter(router *chi.Mux, logger logger.Logger) *Router {
	return &Router{router: router, logger: logger}
}

func (r *Router) Init(userUC usecase.UserUC, prUC usecase.ProductUC, orUC usecase.OrderUC, sessionTTL time.Duration) {
	r.router.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("http://localhost:7777/swagger/doc.json"), // ссылка на JSON
	))

	authHandler := NewAuthHandler(userUC, sessionTTL, r.logger)
	profileHandler := NewProfileHandler(userUC, r.logger)
	prHandler := NewProductHandler(prUC, r.logger)
	orHandler := NewOrderHandler(orUC, r.logger)

	authMW := Auth(userUC)

	// Открытые маршруты
	r.router.Post("/signup", authHandler.signup)
	r.router.Post("/login", authHandler.login)
	r.router.Post("/logout", authHandler.logout)

	r.router.Get("/allproducts", prHandler.allProducts)
	r.router.Get("/product/{id}", prHandler.getProduct)
	r.router.Get("/search", prHandler.search)
	r.router.Get("/search/category", prHandler.searchCategory)
	r.router.Get("/categories", prHandler.categories)
	r.router.Get("/best-deals", prHandler.promoSection(usecase.PromoBestDeal))
	r.router.Get("/weekly-popular", prHandler.promoSection(usecase.PromoWeeklyPopular))
	r.router.Get("/most-selling", prHandler.promoSection(usecase.PromoMostSelling))
	r.router.Get("/trending", prHandler.promoSection(usecase.PromoTrending))

	// Маршруты под сессией
	r.router.Group(func(private chi.Router) {
		private.Use(authMW)

		private.Get("/profile", profileHandler.getProfile)
		private.Patch("/profile/update", profileHandler.updateProfile)

		private.Post("/createOrders", orHandler.createOrder)
		private.Get("/orders", orHandler.listOrders)
		private.Get("/orders/{id}", orHandler.getOrder)
		private.Delete("/orders/{id}", orHandler.cancelOrder)

		// Управление каталогом — только администраторам
		private.Group(func(admin chi.Router) {
			admin.Use(RequireAdmin)

			admin.Post("/product/add", prHandler.addProduct)
			admin.Put("/product/update/{id}", prHandler.updateProduct)
			admin.Delete("/product/delete/{id}", prHandler.deleteProduct)
		})
	})
}
