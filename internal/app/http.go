package app

import (
	"github.com/gin-gonic/gin"

	"github.com/nebari-dev/nebari-software-pack-template/internal/config"
	"github.com/nebari-dev/nebari-software-pack-template/internal/handler"
	"github.com/nebari-dev/nebari-software-pack-template/internal/logger"
	"github.com/nebari-dev/nebari-software-pack-template/internal/middleware"
)

func setupHTTP(cfg config.Config) (*gin.Engine, error) {

	gin.SetMode(cfg.GinMode)

	templates, err := handler.Templates()
	if err != nil {
		return nil, err
	}

	// ----------------------------
	// Router
	// ----------------------------

	router := gin.New()
	router.Use(
		gin.Recovery(),
		middleware.RequestID(),
		middleware.Logging(logger.L()),
		middleware.GinIdentity(),
	)
	router.SetHTMLTemplate(templates)

	// ----------------------------
	// Routes
	// ----------------------------

	handler.NewHandler().RegisterRoutes(router)

	return router, nil
}
