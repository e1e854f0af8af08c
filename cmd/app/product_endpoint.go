package main

import (
	"errors"

	"github.com/marian079/crusty-kiosk/internal/model"
	"github.com/marian079/crusty-kiosk/internal/repository"
	"github.com/marian079/crusty-kiosk/internal/services"

	"github.com/labstack/echo/v4"
	log "github.com/sirupsen/logrus"
)

func registerProductRoutes(g *echo.Group, cs *services.CatalogService) {

	// PUBLIC — list products, optionally filtered by category
	g.GET("/products", func(c echo.Context) error {
		categoryID := c.QueryParam("categoryId")
		list, err := cs.ListProducts(c.Request().Context(), categoryID)
		if err != nil {
			log.WithError(err).Error("listing products failed")
			return c.JSON(500, map[string]string{"message": "Error fetching products"})
		}
		if list == nil {
			list = []model.Product{}
		}
		return c.JSON(200, list)
	})

	// PUBLIC — get product
	g.GET("/products/:id", func(c echo.Context) error {
		product, err := cs.GetProduct(c.Request().Context(), c.Param("id"))
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return c.JSON(404, map[string]string{"message": "Product not found"})
			}
			log.WithError(err).Error("fetching product failed")
			return c.JSON(500, map[string]string{"message": "Error fetching product"})
		}
		return c.JSON(200, product)
	})
}
