package handler

import (
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/velmari/museum-tickets/internal/model"
	"github.com/velmari/museum-tickets/internal/repository"
)

// AdminContentHandler implements content card CRUD for the console.
// Image uploads land in UploadDir; when a form submits no file for an
// image field, the previously stored path is retained.
type AdminContentHandler struct {
	Content   *repository.ContentRepo
	UploadDir string
}

// NewAdminContentHandler constructs an AdminContentHandler.
func NewAdminContentHandler(content *repository.ContentRepo, uploadDir string) *AdminContentHandler {
	if content == nil {
		panic("nil repository passed to NewAdminContentHandler")
	}
	return &AdminContentHandler{Content: content, UploadDir: uploadDir}
}

// Dashboard handles GET /admin.
func (h *AdminContentHandler) Dashboard(c echo.Context) error {
	email, _ := c.Get("admin_email").(string)
	return c.Render(http.StatusOK, "admin_dashboard.html", echo.Map{"AdminEmail": email})
}

// ListContent handles GET /admin/content/:category.
func (h *AdminContentHandler) ListContent(c echo.Context) error {
	category := c.Param("category")
	if !model.ValidCategory(category) {
		return echo.NewHTTPError(http.StatusNotFound)
	}
	cards, err := h.Content.ListByCategory(c.Request().Context(), category)
	if err != nil {
		c.Logger().Errorf("admin list content: %v", err)
		return echo.NewHTTPError(http.StatusInternalServerError)
	}
	return c.Render(http.StatusOK, "admin_content.html", echo.Map{
		"Category": category,
		"Cards":    cards,
	})
}

// EditForm handles GET /admin/edit/:category/:id. Id 0 renders an empty
// form for a new card.
func (h *AdminContentHandler) EditForm(c echo.Context) error {
	category := c.Param("category")
	if !model.ValidCategory(category) {
		return echo.NewHTTPError(http.StatusNotFound)
	}
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound)
	}
	card := &model.ContentCard{Category: category}
	if id > 0 {
		card, err = h.Content.GetByID(c.Request().Context(), id)
		if err != nil {
			if errors.Is(err, repository.ErrContentNotFound) {
				return echo.NewHTTPError(http.StatusNotFound)
			}
			c.Logger().Errorf("admin edit form: %v", err)
			return echo.NewHTTPError(http.StatusInternalServerError)
		}
	}
	return c.Render(http.StatusOK, "admin_edit.html", echo.Map{
		"Category": category,
		"Card":     card,
	})
}

// Save handles POST /admin/edit/:category/:id. Id 0 creates a card;
// otherwise the existing card is updated in place. Each image field is
// replaced only when the form carries a new file.
func (h *AdminContentHandler) Save(c echo.Context) error {
	category := c.Param("category")
	if !model.ValidCategory(category) {
		return echo.NewHTTPError(http.StatusNotFound)
	}
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound)
	}
	ctx := c.Request().Context()

	card := &model.ContentCard{Category: category}
	if id > 0 {
		card, err = h.Content.GetByID(ctx, id)
		if err != nil {
			if errors.Is(err, repository.ErrContentNotFound) {
				return echo.NewHTTPError(http.StatusNotFound)
			}
			c.Logger().Errorf("admin save: load card: %v", err)
			return echo.NewHTTPError(http.StatusInternalServerError)
		}
		card.Category = category
	}

	card.CardTitle = c.FormValue("title_card")
	card.ShortDescription = c.FormValue("short_description_card")
	card.MainText = c.FormValue("main_text")
	card.BlockText1 = c.FormValue("block_text_1")
	card.BlockText2 = c.FormValue("block_text_2")
	card.BlockText3 = c.FormValue("block_text_3")

	// Optional image replacements; absent file fields keep the stored path.
	images := []struct {
		field string
		dest  *string
	}{
		{"img_card", &card.CardImage},
		{"main_image", &card.MainImage},
		{"block_image_1", &card.BlockImage1},
		{"block_image_2", &card.BlockImage2},
		{"block_image_3", &card.BlockImage3},
	}
	for _, img := range images {
		file, ferr := c.FormFile(img.field)
		if ferr != nil {
			continue // no upload for this field
		}
		path, serr := h.storeUpload(file)
		if serr != nil {
			c.Logger().Errorf("admin save: store %s: %v", img.field, serr)
			return echo.NewHTTPError(http.StatusInternalServerError)
		}
		*img.dest = path
	}

	if id == 0 {
		err = h.Content.Create(ctx, card)
	} else {
		err = h.Content.Update(ctx, card)
	}
	if err != nil {
		if errors.Is(err, repository.ErrContentNotFound) {
			return echo.NewHTTPError(http.StatusNotFound)
		}
		c.Logger().Errorf("admin save: persist card: %v", err)
		return echo.NewHTTPError(http.StatusInternalServerError)
	}
	return c.Redirect(http.StatusFound, "/admin/content/"+category)
}

// Delete handles GET /admin/delete/:id.
func (h *AdminContentHandler) Delete(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		return echo.NewHTTPError(http.StatusNotFound)
	}
	if err := h.Content.Delete(c.Request().Context(), id); err != nil {
		if errors.Is(err, repository.ErrContentNotFound) {
			return echo.NewHTTPError(http.StatusNotFound)
		}
		c.Logger().Errorf("admin delete: %v", err)
		return echo.NewHTTPError(http.StatusInternalServerError)
	}
	return c.Redirect(http.StatusFound, "/admin")
}

// storeUpload writes an uploaded image under UploadDir with a
// collision-resistant name and returns the public path.
func (h *AdminContentHandler) storeUpload(file *multipart.FileHeader) (string, error) {
	src, err := file.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	if err := os.MkdirAll(h.UploadDir, 0o755); err != nil {
		return "", err
	}
	name := fmt.Sprintf("%d%s", time.Now().UnixNano(), filepath.Ext(file.Filename))
	dstPath := filepath.Join(h.UploadDir, name)
	dst, err := os.Create(dstPath)
	if err != nil {
		return "", err
	}
	defer dst.Close()
	if _, err := io.Copy(dst, src); err != nil {
		return "", err
	}
	return "/" + filepath.ToSlash(dstPath), nil
}
