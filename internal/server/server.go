package server

import (
	"net/http"

	"app/internal/config"
	appmw "app/internal/middleware"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"
)

// Serverはechoとルーティング済みハンドラ一式を束ねる
type Server struct {
	echo *echo.Echo
	cfg  config.Config
}

func New(cfg config.Config, log *zap.Logger, handlers Handlers) *Server {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(echomw.Recover())
	e.Use(echomw.RequestIDWithConfig(echomw.RequestIDConfig{
		Generator: uuid.NewString,
	}))
	e.Use(appmw.RequestLogger(log))

	//フロントからのアクセスを許可
	origins := []string{"http://localhost:3000"}
	if cfg.FEURL != "" {
		origins = []string{cfg.FEURL}
	}
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins: origins,
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete},
		AllowHeaders: []string{echo.HeaderContentType, echo.HeaderAuthorization},
	}))

	registerRoutes(e, cfg, handlers)

	return &Server{echo: e, cfg: cfg}
}

func (s *Server) Start() error {
	addr := s.cfg.Port
	if addr != "" && addr[0] != ':' {
		addr = ":" + addr
	}
	return s.echo.Start(addr)
}
