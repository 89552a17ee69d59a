package handler

import (
	"patient-management-service/internal/config"
	"patient-management-service/internal/middleware"
	"patient-management-service/internal/web"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// NewRouter wires middleware, views and routes.
func NewRouter(cfg *config.Config, logger zerolog.Logger, patients *PatientHandler, health *HealthHandler) *gin.Engine {
	r := gin.New()

	store := cookie.NewStore([]byte(cfg.Session.Secret))
	store.Options(sessions.Options{Path: "/", HttpOnly: true, MaxAge: 3600})

	r.Use(
		middleware.RequestID(),
		middleware.Logger(logger),
		middleware.Recovery(logger),
		middleware.CORS(cfg),
		sessions.Sessions(cfg.Session.Name, store),
	)

	r.SetHTMLTemplate(web.Templates())

	r.GET("/health", health.Check)
	r.GET("/", patients.ListPatients)
	r.POST("/send_to_fms/:patient_id", patients.SendToFMS)

	return r
}
