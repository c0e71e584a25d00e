package main

import (
	"log"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	redisv9 "github.com/redis/go-redis/v9"

	"car_rental_backend/internal/app/di"
	"car_rental_backend/internal/app/router"
	authadapters "car_rental_backend/internal/feature/auth/adapters"
	authhandler "car_rental_backend/internal/feature/auth/transport/handler"
	authusecase "car_rental_backend/internal/feature/auth/usecase"
	bookingadapters "car_rental_backend/internal/feature/bookings/adapters"
	bookinghandler "car_rental_backend/internal/feature/bookings/transport/handler"
	bookingusecase "car_rental_backend/internal/feature/bookings/usecase"
	caradapters "car_rental_backend/internal/feature/cars/adapters"
	carhandler "car_rental_backend/internal/feature/cars/transport/handler"
	carusecase "car_rental_backend/internal/feature/cars/usecase"
	"car_rental_backend/internal/platform/cache"
	infradb "car_rental_backend/internal/platform/db"
	infraredis "car_rental_backend/internal/platform/redis"
	"car_rental_backend/internal/shared/ratelimiter"
)

func main() {
	// .envはローカル開発用。存在しなくてもエラーにしない
	_ = godotenv.Load()

	// db
	db := infradb.OpenDB()

	// デモ用車両データの投入（空テーブルのみ）
	if os.Getenv("SEED_CARS") == "true" {
		if err := infradb.SeedCars(db); err != nil {
			log.Fatalf("failed to seed cars: %v", err)
		}
	}

	// Redis
	var rdb *redisv9.Client
	if tmp, err := infraredis.NewRedisClient(); err != nil {
		log.Println("[WARN] Redis unavailable. Sessions fall back to MySQL, car listing uncached.")
		rdb = nil
	} else {
		rdb = tmp
		defer func() {
			if err := rdb.Close(); err != nil {
				log.Println("[ERROR] Failed to close Redis client:", err)
			}
		}()
	}

	// Repository
	userRepo := authadapters.NewUserMySQL(db)
	sessionRepo := di.NewSessionRepository(rdb, db)
	carRepo := caradapters.NewCarMySQL(db)
	bookingRepo := bookingadapters.NewBookingMySQL(db)

	// 公開の車両一覧はRedisキャッシュでラップ
	cachedCarRepo := cache.NewCachingCarRepository(rdb, 5*time.Minute, carRepo, "cars")

	// Usecase
	authUC := authusecase.NewAuthUsecase(userRepo, sessionRepo)
	carUC := carusecase.NewCarUsecase(cachedCarRepo)
	bookingUC := bookingusecase.NewBookingUsecase(bookingRepo)

	// Handler
	authH := authhandler.NewAuthHandler(authUC)
	carH := carhandler.NewCarHandler(carUC)
	bookingH := bookinghandler.NewBookingHandler(bookingUC)

	// 認証エンドポイント用レートリミッター（IPごとに1分10回）
	limiter := ratelimiter.NewRateLimiter(10, time.Minute)

	// CORS許可オリジン（静的フロントエンドの配信元）
	var origins []string
	if v := os.Getenv("FRONTEND_ORIGINS"); v != "" {
		origins = strings.Split(v, ",")
	}

	// ルータ生成
	router := router.NewRouter(authH, carH, bookingH, sessionRepo, limiter, origins)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	if err := router.Run(":" + port); err != nil {
		log.Fatal(err)
	}
}
