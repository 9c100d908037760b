// README: API gateway; registers HTTP routes and delegates to the toll service.
package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"tollcalc/internal/http/handlers"
	"tollcalc/internal/http/middleware"
	"tollcalc/internal/modules/toll"
)

type ServerDeps struct {
	Toll   *toll.Service
	Logger *zap.Logger
}

type Server struct {
	toll *toll.Service
	log  *zap.Logger
}

func NewServer(deps ServerDeps) *Server {
	log := deps.Logger
	if log == nil {
		log = zap.NewNop()
	}
	return &Server{
		toll: deps.Toll,
		log:  log,
	}
}

func (s *Server) Routes() http.Handler {
	r := gin.New()
	r.Use(middleware.RequestID(), middleware.Logging(s.log), middleware.Recovery(s.log))

	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "OK")
	})

	tollHandler := handlers.NewTollHandler(s.toll)
	api := r.Group("/api/tolls")
	{
		api.POST("/base", tollHandler.BaseToll)
		api.GET("/premium", tollHandler.Premium)
		api.POST("/quote", tollHandler.Quote)
	}
	return r
}
