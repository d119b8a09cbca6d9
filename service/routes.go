package service

import (
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(s *Service, publicDir string) *gin.Engine {
	routes := gin.New()
	routes.RedirectTrailingSlash = false
	routes.Use(gin.Recovery(), RequestLogger(s.Logger), CORS())
	routes.NoRoute(NotFound)

	routes.GET("/health", s.Health)

	if publicDir != "" {
		routes.Static("/public", publicDir)
		index := filepath.Join(publicDir, "index.html")
		if _, err := os.Stat(index); err == nil {
			routes.StaticFile("/", index)
		}
	}

	api := routes.Group("/api")
	api.GET("/activity/:username", s.Activity)

	cachedRoutes := api.Group("/")
	{
		cachedRoutes.Use(s.CacheUserRequest)

		cachedRoutes.GET("/books", s.ListBooks)
		cachedRoutes.POST("/books", s.CreateBook)
		cachedRoutes.DELETE("/books", s.DeleteAllBooks)
		cachedRoutes.GET("/books/:id", s.GetBookById)
		cachedRoutes.POST("/books/:id", s.AddComment)
		cachedRoutes.DELETE("/books/:id", s.DeleteBookById)
		cachedRoutes.GET("/store", s.Store)
	}

	return routes
}

// NewHandler serves the routes with trailing slashes ignored, so "/api/books/" is
// answered as "/api/books" instead of being redirected.
func NewHandler(s *Service, publicDir string) http.Handler {
	return TrimTrailingSlash(SetupRoutes(s, publicDir))
}

func TrimTrailingSlash(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if len(r.URL.Path) <= 1 || !strings.HasSuffix(r.URL.Path, "/") {
			next.ServeHTTP(w, r)
			return
		}

		trimmed := new(http.Request)
		*trimmed = *r
		u := *r.URL
		u.Path = strings.TrimRight(r.URL.Path, "/")
		if u.Path == "" {
			u.Path = "/"
		}
		u.RawPath = ""
		trimmed.URL = &u
		next.ServeHTTP(w, trimmed)
	})
}
