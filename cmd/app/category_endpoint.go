package main

import (
	"github.com/marian079/crusty-kiosk/internal/model"
	"github.com/marian079/crusty-kiosk/internal/services"

	"github.com/labstack/echo/v4"
	log "github.com/sirupsen/logrus"
)

func registerCategoryRoutes(g *echo.Group, cs *services.CatalogService) {

	// PUBLIC — list categories
	g.GET("/categories", func(c echo.Context) error {
		list, err := cs.ListCategories(c.Request().Context())
		if err != nil {
			log.WithError(err).Error("listing categories failed")
			return c.JSON(500, map[string]string{"message": "Error fetching categories"})
		}
		if list == nil {
			list = []model.Category{}
		}
		return c.JSON(200, list)
	})
}
