package handler

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/velmari/museum-tickets/internal/model"
	"github.com/velmari/museum-tickets/internal/repository"
)

// PublicHandler serves the visitor-facing pages: card listings, the
// museum detail page, the booking page and order retrieval.
type PublicHandler struct {
	Content    *repository.ContentRepo
	Sessions   *repository.SessionRepo
	Categories *repository.CategoryRepo
	Orders     *repository.OrderRepo
}

// NewPublicHandler constructs a PublicHandler. All dependencies must be
// non-nil.
func NewPublicHandler(content *repository.ContentRepo, sessions *repository.SessionRepo, categories *repository.CategoryRepo, orders *repository.OrderRepo) *PublicHandler {
	if content == nil || sessions == nil || categories == nil || orders == nil {
		panic("nil repository passed to NewPublicHandler")
	}
	return &PublicHandler{Content: content, Sessions: sessions, Categories: categories, Orders: orders}
}

// Home handles GET /. It renders the three card lists of the homepage.
func (h *PublicHandler) Home(c echo.Context) error {
	ctx := c.Request().Context()
	museums, err := h.Content.ListByCategory(ctx, model.CategoryMuseums)
	if err != nil {
		c.Logger().Errorf("home: list museums: %v", err)
		return echo.NewHTTPError(http.StatusInternalServerError)
	}
	exhibitions, err := h.Content.ListByCategory(ctx, model.CategoryVirtualExhibitions)
	if err != nil {
		c.Logger().Errorf("home: list exhibitions: %v", err)
		return echo.NewHTTPError(http.StatusInternalServerError)
	}
	posters, err := h.Content.ListByCategory(ctx, model.CategoryPoster)
	if err != nil {
		c.Logger().Errorf("home: list posters: %v", err)
		return echo.NewHTTPError(http.StatusInternalServerError)
	}
	return c.Render(http.StatusOK, "homepage.html", echo.Map{
		"Museums":            museums,
		"VirtualExhibitions": exhibitions,
		"Posters":            posters,
	})
}

// AboutUs handles GET /about-us and GET /about-us/:id. Without an id the
// first museum card is shown; with an unknown id the page is a 404.
func (h *PublicHandler) AboutUs(c echo.Context) error {
	ctx := c.Request().Context()
	var (
		card *model.ContentCard
		err  error
	)
	if raw := c.Param("id"); raw != "" {
		id, perr := strconv.ParseUint(raw, 10, 64)
		if perr != nil || id == 0 {
			return echo.NewHTTPError(http.StatusNotFound)
		}
		card, err = h.Content.GetByID(ctx, id)
	} else {
		card, err = h.Content.FirstByCategory(ctx, model.CategoryMuseums)
	}
	if err != nil {
		if errors.Is(err, repository.ErrContentNotFound) {
			return echo.NewHTTPError(http.StatusNotFound)
		}
		c.Logger().Errorf("about-us: %v", err)
		return echo.NewHTTPError(http.StatusInternalServerError)
	}
	return c.Render(http.StatusOK, "about_us.html", echo.Map{"Card": card})
}

// OrderPage handles GET /order and GET /order/:id. It renders the booking
// calendar for the next week together with all ticket categories. The
// optional id selects a content card for display alongside the form.
func (h *PublicHandler) OrderPage(c echo.Context) error {
	ctx := c.Request().Context()
	today := time.Now().UTC()
	start := today.Format("2006-01-02")
	end := today.AddDate(0, 0, 7).Format("2006-01-02")

	sessions, err := h.Sessions.ListActive(ctx, start, end)
	if err != nil {
		c.Logger().Errorf("order page: list sessions: %v", err)
		return echo.NewHTTPError(http.StatusInternalServerError)
	}
	categories, err := h.Categories.ListAll(ctx)
	if err != nil {
		c.Logger().Errorf("order page: list categories: %v", err)
		return echo.NewHTTPError(http.StatusInternalServerError)
	}

	var card *model.ContentCard
	if raw := c.Param("id"); raw != "" {
		if id, perr := strconv.ParseUint(raw, 10, 64); perr == nil && id > 0 {
			// Display association only; a missing card does not block booking.
			card, _ = h.Content.GetByID(ctx, id)
		}
	}

	return c.Render(http.StatusOK, "order.html", echo.Map{
		"Sessions":   sessions,
		"Categories": categories,
		"Card":       card,
	})
}

// VirtualExhibition handles GET /virtual-exhibition.
func (h *PublicHandler) VirtualExhibition(c echo.Context) error {
	cards, err := h.Content.ListByCategory(c.Request().Context(), model.CategoryVirtualExhibitions)
	if err != nil {
		c.Logger().Errorf("virtual-exhibition: %v", err)
		return echo.NewHTTPError(http.StatusInternalServerError)
	}
	return c.Render(http.StatusOK, "virtual_exhibition.html", echo.Map{"Cards": cards})
}

// Poster handles GET /poster.
func (h *PublicHandler) Poster(c echo.Context) error {
	cards, err := h.Content.ListByCategory(c.Request().Context(), model.CategoryPoster)
	if err != nil {
		c.Logger().Errorf("poster: %v", err)
		return echo.NewHTTPError(http.StatusInternalServerError)
	}
	return c.Render(http.StatusOK, "poster.html", echo.Map{"Cards": cards})
}

// QR handles GET /qr/:token, the retrieval URL printed on the order
// confirmation. Unknown tokens are a 404.
func (h *PublicHandler) QR(c echo.Context) error {
	token := c.Param("token")
	if token == "" {
		return echo.NewHTTPError(http.StatusNotFound)
	}
	order, err := h.Orders.GetByToken(c.Request().Context(), token)
	if err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			return echo.NewHTTPError(http.StatusNotFound)
		}
		c.Logger().Errorf("qr: %v", err)
		return echo.NewHTTPError(http.StatusInternalServerError)
	}
	return c.Render(http.StatusOK, "qr.html", echo.Map{"Order": order})
}
