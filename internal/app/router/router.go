package router

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	authhandler "car_rental_backend/internal/feature/auth/transport/handler"
	"car_rental_backend/internal/feature/auth/usecase"
	bookinghandler "car_rental_backend/internal/feature/bookings/transport/handler"
	carhandler "car_rental_backend/internal/feature/cars/transport/handler"
	platformhandler "car_rental_backend/internal/platform/http/handler"
	"car_rental_backend/internal/platform/http/middleware"
	"car_rental_backend/internal/platform/session"
	"car_rental_backend/internal/shared/ratelimiter"
)

// NewRouter assembles the gin engine with all routes and middleware.
// sessions backs the cookie-session middleware on protected routes; limiter
// guards the credential endpoints; allowedOrigins configures CORS for the
// static browser frontend (credentials are required for the session cookie).
func NewRouter(authHandler *authhandler.AuthHandler, cars *carhandler.CarHandler,
	bookings *bookinghandler.BookingHandler, sessions usecase.SessionRepository,
	limiter *ratelimiter.RateLimiter, allowedOrigins []string) *gin.Engine {
	r := gin.Default()

	r.Use(middleware.RequestID())

	if len(allowedOrigins) > 0 {
		r.Use(cors.New(cors.Config{
			AllowOrigins:     allowedOrigins,
			AllowMethods:     []string{"GET", "POST", "DELETE", "OPTIONS"},
			AllowHeaders:     []string{"Content-Type"},
			AllowCredentials: true,
			MaxAge:           12 * time.Hour,
		}))
	}

	// 許可されていないHTTPメソッドには404ではなく405を返す
	r.HandleMethodNotAllowed = true
	r.NoMethod(func(c *gin.Context) {
		c.JSON(http.StatusMethodNotAllowed, gin.H{"error": "Method not allowed"})
	})

	// 認証不要
	// 導通確認用
	r.GET("/healthz", platformhandler.Health)

	// 認証エンドポイント（register/loginは総当たり対策のレートリミット付き）
	auth := r.Group("/auth")
	{
		auth.POST("/register", limiter.Middleware(), authHandler.Register)
		auth.POST("/login", limiter.Middleware(), authHandler.Login)
		auth.GET("/check_session", authHandler.CheckSession)
		// ログアウトはGET/POST両対応（フロントエンドの遷移とfetchの両方から呼ばれる）
		auth.GET("/logout", authHandler.Logout)
		auth.POST("/logout", authHandler.Logout)
	}

	// 車両一覧は公開（未ログインでも閲覧可能）
	r.GET("/api/get_cars", cars.List)

	// 認証必須のルート
	sessionRequired := session.SessionRequired(sessions)

	api := r.Group("/api")
	api.Use(sessionRequired)
	{
		api.POST("/add_car", cars.Add)
		api.POST("/update_car", cars.Update)
		api.DELETE("/delete_car", cars.Delete)
	}

	b := r.Group("/bookings")
	b.Use(sessionRequired)
	{
		b.POST("/create_booking", bookings.Create)
		b.GET("/get_bookings", bookings.List)
		b.DELETE("/delete_booking", bookings.Delete)
	}

	return r
}
