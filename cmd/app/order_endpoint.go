package main

import (
	"errors"
	"net/http"

	"github.com/marian079/crusty-kiosk/internal/model"
	"github.com/marian079/crusty-kiosk/internal/repository"
	"github.com/marian079/crusty-kiosk/internal/services"

	"github.com/labstack/echo/v4"
	log "github.com/sirupsen/logrus"
)

func registerOrderRoutes(g *echo.Group, os *services.OrderService) {

	// place an order
	g.POST("/orders", func(c echo.Context) error {
		req := new(model.CreateOrderRequest)
		if err := c.Bind(req); err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"message": "Invalid order payload"})
		}

		order, err := os.Place(c.Request().Context(), req)
		if err != nil {
			var verr *model.ValidationError
			if errors.As(err, &verr) {
				return c.JSON(http.StatusBadRequest, map[string]interface{}{
					"message": "Invalid order data",
					"errors":  verr.Errors,
				})
			}
			log.WithError(err).Error("creating order failed")
			return c.JSON(http.StatusInternalServerError, map[string]string{"message": "Error creating order"})
		}

		return c.JSON(http.StatusCreated, map[string]interface{}{
			"message": "Order created",
			"order":   order,
		})
	})

	// list orders, newest first
	g.GET("/orders", func(c echo.Context) error {
		list, err := os.List(c.Request().Context())
		if err != nil {
			log.WithError(err).Error("listing orders failed")
			return c.JSON(http.StatusInternalServerError, map[string]string{"message": "Error fetching orders"})
		}
		if list == nil {
			list = []model.Order{}
		}
		return c.JSON(http.StatusOK, list)
	})

	// get one order with its items
	g.GET("/orders/:id", func(c echo.Context) error {
		result, err := os.Get(c.Request().Context(), c.Param("id"))
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return c.JSON(http.StatusNotFound, map[string]string{"message": "Order not found"})
			}
			log.WithError(err).Error("fetching order failed")
			return c.JSON(http.StatusInternalServerError, map[string]string{"message": "Error fetching order"})
		}
		return c.JSON(http.StatusOK, result)
	})
}
