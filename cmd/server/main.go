package main

import (
	"flag"
	"log/slog"
	"os"

	"shift-roster/internal/config"
	"shift-roster/internal/handler"
	applog "shift-roster/internal/logger"
	"shift-roster/internal/middleware"
	"shift-roster/internal/service"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func main() {
	configFile := flag.String("config", "", "config file path (e.g. etc/config-dev.yaml)")
	flag.Parse()

	cfg := config.Load(*configFile)
	applog.Init(cfg.Log)
	db, err := cfg.OpenGormDB()
	if err != nil {
		slog.Error("db connect failed", "err", err)
		os.Exit(1)
	}

	authSvc := service.NewAuthService(db)
	memberSvc := service.NewMemberService(db)
	scheduleSvc := service.NewScheduleService(db)
	eventSvc := service.NewEventService(db)
	quotaSvc := service.NewQuotaService(db)

	secret := []byte(cfg.Auth.JWTSecret)
	authH := handler.NewAuthHandler(authSvc, secret)
	memberH := handler.NewMemberHandler(memberSvc)
	scheduleH := handler.NewScheduleHandler(scheduleSvc, memberSvc, eventSvc)
	eventH := handler.NewEventHandler(eventSvc, memberSvc)
	quotaH := handler.NewQuotaHandler(quotaSvc)

	r := gin.Default()
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
	}))

	r.POST("/api/login", authH.Login)
	api := r.Group("/api", middleware.JWTAuth(secret))

	api.GET("/members", memberH.List)
	api.POST("/members", memberH.Create)
	api.PUT("/members/order", memberH.SaveOrder)
	api.PUT("/members/:id", memberH.Update)
	api.DELETE("/members/:id", memberH.Delete)
	api.PUT("/members/:id/status", memberH.SetStatus)

	api.GET("/schedule/:year/:month", scheduleH.Grid)
	api.GET("/schedule/:year/:month/base", scheduleH.BaseGrid)
	api.PUT("/schedule/:year/:month/batch", scheduleH.SaveBatch)
	api.POST("/schedule/:year/:month/selectable", scheduleH.Selectable)
	api.GET("/schedule/:year/:month/highlight", scheduleH.Highlight)
	api.GET("/schedule/:year/:month/export", scheduleH.Export)

	api.GET("/events", eventH.List)
	api.POST("/events", eventH.Create)
	api.PUT("/events/:id", eventH.Update)
	api.DELETE("/events/:id", eventH.Delete)

	api.GET("/quotas/:year", quotaH.List)
	api.PUT("/quotas/batch", quotaH.SaveBatch)
	api.GET("/quotas/:year/usage/:memberId", quotaH.Usage)

	slog.Info("server starting", "addr", cfg.Addr())
	if err := r.Run(cfg.Addr()); err != nil {
		slog.Error("server failed", "err", err)
	}
}
