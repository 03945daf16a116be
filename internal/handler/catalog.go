package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/sheshnag/movie-booking/internal/catalog"
	"github.com/sheshnag/movie-booking/internal/pricing"
)

// CatalogHandler serves the movie catalog endpoints.  The catalog
// client already contains the fallback behaviour, so these handlers
// never produce provider errors.
type CatalogHandler struct {
	Catalog *catalog.Client
}

// NewCatalogHandler constructs a CatalogHandler.  The catalog client
// must be non-nil.
func NewCatalogHandler(c *catalog.Client) *CatalogHandler {
	if c == nil {
		panic("nil catalog client passed to NewCatalogHandler")
	}
	return &CatalogHandler{Catalog: c}
}

// GetMovies handles GET /v1/movies.  It returns the full catalog list.
func (h *CatalogHandler) GetMovies(c echo.Context) error {
	movies := h.Catalog.Movies(c.Request().Context())
	return c.JSON(http.StatusOK, echo.Map{"movies": movies})
}

// GetUpcomingMovies handles GET /v1/movies/upcoming.  It returns movies
// with a release date in the future.
func (h *CatalogHandler) GetUpcomingMovies(c echo.Context) error {
	movies := h.Catalog.Upcoming(c.Request().Context(), timeNow())
	return c.JSON(http.StatusOK, echo.Map{"movies": movies})
}

// GetMovie handles GET /v1/movies/:id.  Unknown ids return 404.
func (h *CatalogHandler) GetMovie(c echo.Context) error {
	id := c.Param("id")
	movie, ok := h.Catalog.MovieByID(c.Request().Context(), id)
	if !ok {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "movie not found"})
	}
	return c.JSON(http.StatusOK, movie)
}

// SearchMovies handles GET /v1/search/movies?q=.  An empty query
// returns the full list, matching the storefront behaviour.
func (h *CatalogHandler) SearchMovies(c echo.Context) error {
	q := c.QueryParam("q")
	if q == "" {
		return h.GetMovies(c)
	}
	movies := h.Catalog.Search(c.Request().Context(), q)
	return c.JSON(http.StatusOK, echo.Map{"movies": movies})
}

// GetTiers handles GET /v1/tiers.  It returns the static ticket tier
// reference data so clients can render prices without hardcoding them.
func (h *CatalogHandler) GetTiers(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{"tiers": pricing.Tiers})
}
