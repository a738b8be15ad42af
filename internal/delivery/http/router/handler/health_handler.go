package handler

import (
	"net/http"
	"sort"

	"github.com/labstack/echo/v4"
)

// HealthCheck reports process liveness.
func HealthCheck(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// Sitemap lists every registered route, mirroring the index page of the
// original service.
func Sitemap(c echo.Context) error {
	routes := c.Echo().Routes()

	endpoints := make([]string, 0, len(routes))
	for _, route := range routes {
		endpoints = append(endpoints, route.Method+" "+route.Path)
	}
	sort.Strings(endpoints)

	return c.JSON(http.StatusOK, map[string][]string{"endpoints": endpoints})
}
