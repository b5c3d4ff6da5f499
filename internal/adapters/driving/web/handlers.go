package web

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/woodenlobby/storefront/internal/core/domain"
	"github.com/woodenlobby/storefront/internal/logger"
)

// page builds the data shared by every template.
func (s *Server) page(title string, extra gin.H) gin.H {
	data := gin.H{
		"Site":  s.settings.Site,
		"Title": title,
	}
	for k, v := range extra {
		data[k] = v
	}
	return data
}

func (s *Server) renderNotFound(c *gin.Context) {
	c.HTML(http.StatusNotFound, "notfound.html", s.page("Not Found | "+brandName, nil))
}

// renderCatalogError maps a catalog failure to a 503 page.
func (s *Server) renderCatalogError(c *gin.Context, err error) {
	logger.Error("Catalog unavailable for %s: %v", c.Request.URL.Path, err)
	c.HTML(http.StatusServiceUnavailable, "unavailable.html", s.page("Temporarily unavailable | "+brandName, nil))
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (s *Server) handleCatalogAPI(c *gin.Context) {
	products, err := s.catalog.Products(c.Request.Context())
	if err != nil {
		logger.Error("Catalog API: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Unable to load CSV"})
		return
	}
	c.JSON(http.StatusOK, products)
}

func (s *Server) handleContentReset(c *gin.Context) {
	s.ResetContent()
	c.JSON(http.StatusOK, gin.H{"status": "reset"})
}

func (s *Server) handleHome(c *gin.Context) {
	ctx := c.Request.Context()

	overview, err := s.catalog.Overview(ctx, s.settings.Featured.Limit)
	if err != nil {
		s.renderCatalogError(c, err)
		return
	}

	tiles := make([]categoryTile, 0, len(overview.Categories))
	for _, name := range overview.Categories {
		tiles = append(tiles, newCategoryTile(name, overview.Index[name]))
	}

	c.HTML(http.StatusOK, "home.html", s.page(brandName+" | Home", gin.H{
		"Featured":   overview.Featured,
		"Categories": tiles,
	}))
}

// categoryTile is a home page collection link.
type categoryTile struct {
	Name  string
	Count int
	Image string
}

func newCategoryTile(name string, products []domain.Product) categoryTile {
	tile := categoryTile{Name: name, Count: len(products)}
	for i := range products {
		if img := products[i].PrimaryImage(); img != "" {
			tile.Image = img
			break
		}
	}
	return tile
}

func (s *Server) handleCategory(c *gin.Context) {
	ctx := c.Request.Context()
	category := c.Param("category")

	products, err := s.catalog.ProductsByCategory(ctx, category)
	if err != nil {
		s.renderCatalogError(c, err)
		return
	}
	if len(products) == 0 {
		s.renderNotFound(c)
		return
	}

	text := strings.TrimSpace(c.Query("q"))
	sort := domain.ParseSortOrder(c.Query("sort"))
	if text != "" || sort != domain.SortDefault {
		products, err = s.catalog.Search(ctx, domain.SearchQuery{
			Category: category,
			Text:     text,
			Sort:     sort,
		})
		if err != nil {
			s.renderCatalogError(c, err)
			return
		}
	}

	c.HTML(http.StatusOK, "category.html", s.page(category+" Furniture | "+brandName, gin.H{
		"Category": category,
		"Products": products,
		"Query":    text,
		"Sort":     string(sort),
	}))
}

func (s *Server) handleProduct(c *gin.Context) {
	ctx := c.Request.Context()

	product, err := s.catalog.ProductBySlug(ctx, c.Param("slug"))
	if errors.Is(err, domain.ErrNotFound) {
		s.renderNotFound(c)
		return
	}
	if err != nil {
		s.renderCatalogError(c, err)
		return
	}

	content := s.content.Get(ctx)

	c.HTML(http.StatusOK, "product.html", s.page(product.ProductName+" | "+brandName, gin.H{
		"Product":  *product,
		"Sections": content.Sections(),
	}))
}

func (s *Server) handleAbout(c *gin.Context) {
	c.HTML(http.StatusOK, "about.html", s.page("About | "+brandName, nil))
}

func (s *Server) handleContact(c *gin.Context) {
	content := s.content.Get(c.Request.Context())
	c.HTML(http.StatusOK, "contact.html", s.page("Contact | "+brandName, gin.H{
		"MerchantDetails": content.MerchantDetails,
	}))
}
