package handler

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/srgjo27/campus_event/internal/core/domain"
)

type RouterConfig struct {
	GinMode   string
	UploadDir string
	UploadURL string
}

func NewRouter(cfg RouterConfig, h *Handler, tokens TokenParser, log zerolog.Logger) *gin.Engine {
	gin.SetMode(cfg.GinMode)

	r := gin.New()
	r.Use(Recovery(log), RequestLogger(log))
	r.Use(cors.New(cors.Config{
		AllowAllOrigins: true,
		AllowMethods:    []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowHeaders:    []string{"Origin", "Content-Type", "Authorization", headerRequestID},
		ExposeHeaders:   []string{headerRequestID},
		MaxAge:          12 * time.Hour,
	}))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.Static(cfg.UploadURL, cfg.UploadDir)

	authn := Authenticate(tokens, log)
	admin := RequireAdmin(log)

	api := r.Group("/api")

	auth := api.Group("/auth")
	auth.POST("/register", h.Register)
	auth.POST("/login", h.Login)
	auth.POST("/forgot-password", h.ForgotPassword)
	auth.POST("/reset-password", h.ResetPassword)

	events := api.Group("/events")
	events.GET("", h.ListEvents)
	events.GET("/:id", h.GetEvent)
	events.POST("/:id/register", authn, h.RegisterForEvent)
	events.POST("", authn, admin, h.CreateEvent)
	events.PUT("/:id", authn, admin, h.UpdateEvent)
	events.DELETE("/:id", authn, admin, h.DeleteEvent)

	users := api.Group("/users", authn)
	users.GET("/profile", h.Profile)
	users.PUT("/profile", h.UpdateProfile)
	users.PUT("/change-password", h.ChangePassword)
	users.GET("/events", h.MyEvents)

	payments := api.Group("/payments", authn)
	payments.POST("/registrations/:registrationId/proof", h.SubmitPaymentProof)
	payments.GET("/my-payments", h.MyPayments)
	payments.GET("/pending", admin, h.PendingPayments)
	payments.POST("/registrations/:registrationId/confirm", admin, h.ConfirmPayment)

	adm := api.Group("/admin", authn, admin)
	adm.GET("/users", h.ListUsers)
	adm.GET("/users/:id", h.GetUser)
	adm.PUT("/users/:id", h.UpdateUser)
	adm.DELETE("/users/:id", h.DeleteUser)
	adm.PUT("/users/:id/role", h.ChangeRole)
	adm.GET("/reports/sales", h.SalesReport)
	adm.GET("/reports/events", h.EventReport)

	blogs := api.Group("/blogs")
	blogs.GET("", h.ListBlogs)
	blogs.GET("/:id", h.GetBlog)
	blogs.GET("/category/:categoryId", h.ListBlogsByCategory)
	blogs.POST("", authn, admin, h.CreateBlog)
	blogs.PUT("/:id", authn, admin, h.UpdateBlog)
	blogs.DELETE("/:id", authn, admin, h.DeleteBlog)

	mountCategories(api.Group("/blog-categories"), h.Categories(domain.CategoryBlog), authn, admin)
	mountCategories(api.Group("/event-categories"), h.Categories(domain.CategoryEvent), authn, admin)

	return r
}

func mountCategories(g *gin.RouterGroup, h *CategoryHandler, authn, admin gin.HandlerFunc) {
	g.GET("", h.List)
	g.GET("/:id", h.Get)
	g.POST("", authn, admin, h.Create)
	g.PUT("/:id", authn, admin, h.Update)
	g.DELETE("/:id", authn, admin, h.Delete)
}
