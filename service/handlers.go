package service

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"

	"library/cache"
	"library/db"
	"library/models"
)

const (
	COMPLETE_DELETE_MESSAGE = "complete delete successful"
	DELETE_MESSAGE          = "delete successful"
)

// Service holds the dependencies of the HTTP handlers.
//
// By default validation and not-found errors are answered with 200 and a JSON string
// message, which is what existing clients expect. StatusErrors keeps the same body but
// uses 400 and 404 instead.
type Service struct {
	Library      db.LibraryManager
	Cacher       cache.RequestCacher
	StatusErrors bool
	Logger       *slog.Logger
}

func NewService(library db.LibraryManager, cacher cache.RequestCacher, statusErrors bool, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{Library: library, Cacher: cacher, StatusErrors: statusErrors, Logger: logger}
}

func (s *Service) ListBooks(c *gin.Context) {
	books, err := s.Library.ListBooks(c.Request.Context())
	if err != nil {
		s.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, books)
}

func (s *Service) CreateBook(c *gin.Context) {
	var request models.CreateBookRequest
	if err := bindBody(c, &request); err != nil {
		s.Logger.Debug("unreadable create book body", "error", err)
	}

	book, err := s.Library.CreateBook(c.Request.Context(), request.Title)
	if err != nil {
		s.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, book.Created())
}

func (s *Service) DeleteAllBooks(c *gin.Context) {
	if err := s.Library.DeleteAllBooks(c.Request.Context()); err != nil {
		s.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, COMPLETE_DELETE_MESSAGE)
}

func (s *Service) GetBookById(c *gin.Context) {
	book, err := s.Library.GetBookById(c.Request.Context(), c.Param("id"))
	if err != nil {
		s.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, book)
}

func (s *Service) AddComment(c *gin.Context) {
	var request models.AddCommentRequest
	if err := bindBody(c, &request); err != nil {
		s.Logger.Debug("unreadable add comment body", "error", err)
	}

	book, err := s.Library.AddComment(c.Request.Context(), c.Param("id"), request.Comment)
	if err != nil {
		s.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, book)
}

func (s *Service) DeleteBookById(c *gin.Context) {
	if err := s.Library.DeleteBookById(c.Request.Context(), c.Param("id")); err != nil {
		s.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, DELETE_MESSAGE)
}

func (s *Service) Store(c *gin.Context) {
	stats, err := s.Library.Stats(c.Request.Context())
	if err != nil {
		s.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, stats)
}

func (s *Service) Activity(c *gin.Context) {
	username := c.Param("username")

	userRequests, err := s.Cacher.Read(username)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		return
	}

	userRequestsRaw := make([]models.UserRequest, 0, len(userRequests))
	for _, request := range userRequests {
		var userRequest models.UserRequest
		if err := json.Unmarshal([]byte(request), &userRequest); err != nil {
			s.Logger.Warn("skipping unreadable activity entry", "username", username, "error", err)
			continue
		}
		userRequestsRaw = append(userRequestsRaw, userRequest)
	}

	c.JSON(http.StatusOK, userRequestsRaw)
}

func (s *Service) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func NotFound(c *gin.Context) {
	c.String(http.StatusNotFound, "Not Found")
}

// bindBody reads request fields from the JSON or form body only, never from the query string.
func bindBody(c *gin.Context, obj any) error {
	if c.ContentType() == binding.MIMEJSON {
		return c.ShouldBindWith(obj, binding.JSON)
	}
	return c.ShouldBindWith(obj, binding.FormPost)
}

func (s *Service) respondError(c *gin.Context, err error) {
	switch {
	case models.IsValidationError(err):
		c.JSON(s.errorStatus(http.StatusBadRequest), err.Error())
	case models.IsNotFoundError(err):
		c.JSON(s.errorStatus(http.StatusNotFound), err.Error())
	default:
		s.Logger.Error("library operation failed", "method", c.Request.Method, "path", c.Request.URL.Path, "error", err)
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
	}
}

func (s *Service) errorStatus(status int) int {
	if s.StatusErrors {
		return status
	}
	return http.StatusOK
}
