package transport

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func (h *Handler) Index(c *gin.Context) {
	c.HTML(http.StatusOK, "index.html", gin.H{
		"categories": h.Catalog.Categories(),
	})
}

func (h *Handler) Menu(c *gin.Context) {
	c.HTML(http.StatusOK, "menu.html", gin.H{
		"categories": h.Catalog.Categories(),
	})
}

func (h *Handler) Items(c *gin.Context) {
	category := c.Param("category")
	c.HTML(http.StatusOK, "items.html", gin.H{
		"category_name": category,
		"items":         h.Catalog.ItemsByCategory(category),
		"categories":    h.Catalog.Categories(),
	})
}
