package v1

import (
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"go-portfolio-backend/config"
	"go-portfolio-backend/internal/delivery/http/response"

	"github.com/gin-gonic/gin"
)

// registerStatic wires the static frontend: pages, asset directories, the
// resume download, and the 404 fallback. API paths get a JSON 404 instead of
// the HTML page.
func registerStatic(r *gin.Engine, cfg *config.Config) {
	pageDir := filepath.Join(cfg.FrontendDir, "pages")

	r.GET("/", servePage(filepath.Join(pageDir, "home.html")))
	for _, page := range []string{"about", "projects", "contact"} {
		r.GET("/"+page, servePage(filepath.Join(pageDir, page+".html")))
	}

	r.Static("/css", filepath.Join(cfg.FrontendDir, "css"))
	r.Static("/js", filepath.Join(cfg.FrontendDir, "js"))
	r.Static("/images", filepath.Join(cfg.FrontendDir, "images"))
	r.StaticFile("/resume.pdf", cfg.ResumePath)

	notFoundPage := filepath.Join(pageDir, "404.html")
	r.NoRoute(func(c *gin.Context) {
		if strings.HasPrefix(c.Request.URL.Path, "/api") {
			response.Error(c, http.StatusNotFound, "Not found")
			return
		}
		data, err := os.ReadFile(notFoundPage)
		if err != nil {
			c.String(http.StatusNotFound, "404 page not found")
			return
		}
		c.Data(http.StatusNotFound, "text/html; charset=utf-8", data)
	})
}

func servePage(path string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.File(path)
	}
}
