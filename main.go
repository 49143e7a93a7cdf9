package main

import (
	"context"
	"log"
	"strconv"
	"time"
	_ "time/tzdata"

	"quentinhas/config"
	"quentinhas/database"
	"quentinhas/helper"
	"quentinhas/router"
	"quentinhas/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/redis/go-redis/v9"
)

const sessionTTL = 2 * time.Hour

func main() {
	app := fiber.New()

	catalog, err := helper.LoadCatalog()
	if err != nil {
		log.Fatalf("Invalid catalog: %v", err)
	}
	helper.SetCatalog(catalog)

	database.ConnectDB(helper.Location())
	if config.Config("SEED_DEADLINES") == "true" {
		if err := database.SeedDeadlines(context.Background(), database.Deadlines, catalog.Dates); err != nil {
			log.Printf("Seeding deadlines failed: %v", err)
		}
	}

	if addr := config.Config("REDIS_ADDR"); addr != "" {
		rdb := redis.NewClient(&redis.Options{Addr: addr, Password: config.Config("REDIS_PASSWORD")})
		if err := rdb.Ping(context.Background()).Err(); err != nil {
			log.Fatalf("Redis at %s unreachable: %v", addr, err)
		}
		helper.Sessions = helper.NewRedisSessionStore(rdb, sessionTTL)
		helper.Events = helper.NewRedisBroker(rdb)
		log.Printf("Sessions and events on redis %s", addr)
	} else {
		store := helper.NewMemorySessionStore(sessionTTL)
		helper.Sessions = store
		helper.StartSessionSweeper(store)
		defer helper.StopSessionSweeper()
	}

	if token := config.Config("TELEGRAM_TOKEN"); token != "" {
		chatID, err := strconv.ParseInt(config.Config("TELEGRAM_CHAT_ID"), 10, 64)
		if err != nil {
			log.Printf("Invalid TELEGRAM_CHAT_ID, staff alerts disabled: %v", err)
		} else if notifier, err := utils.NewTelegramNotifier(token, chatID); err != nil {
			log.Printf("Staff alerts disabled: %v", err)
		} else {
			helper.Alerts = notifier
		}
	}

	if config.Config("JWT_SECRET") == "" {
		log.Fatal("JWT_SECRET must be set, admin tokens cannot be signed without it")
	}
	helper.Admin = helper.NewStaticAuthenticator()

	if err := helper.StartClosingScheduler(database.Orders); err != nil {
		log.Printf("Closing report scheduler not started: %v", err)
	}
	defer helper.StopClosingScheduler()

	app.Use(cors.New(cors.Config{
		AllowOrigins:     config.ConfigOr("CORS_ORIGINS", "http://localhost:5173"),
		AllowMethods:     "GET,POST,PUT,DELETE,PATCH,OPTIONS",
		AllowHeaders:     "Origin, Content-Type, Authorization, Accept",
		AllowCredentials: true,
		ExposeHeaders:    "Set-Cookie",
		MaxAge:           600,
	}))

	router.SetupRoutes(app)
	log.Fatal(app.Listen(":" + config.ConfigOr("PORT", "8002")))
}
