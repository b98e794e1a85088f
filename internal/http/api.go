package http

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"internconnect/internal/ai"
	"internconnect/internal/domain"
	"internconnect/internal/service"
	"internconnect/internal/session"
	"internconnect/internal/storage"
)

// Envelope is the uniform result wrapper returned by every API call.
// Message is always present; Data only on success where a payload exists.
type Envelope struct {
	Success bool   `json:"success"`
	Data    any    `json:"data,omitempty"`
	Message string `json:"message"`
}

func ok(data any, message string) Envelope {
	return Envelope{Success: true, Data: data, Message: message}
}

func fail(message string) Envelope {
	return Envelope{Success: false, Message: message}
}

// Handler wires HTTP routes to domain services.
type Handler struct {
	auth     service.AuthService
	listings service.ListingService
	sessions *session.Manager
	ai       *ai.Generator
	logos    storage.LogoStore
	logger   logrus.FieldLogger
}

func NewHandler(auth service.AuthService, listings service.ListingService, sessions *session.Manager, generator *ai.Generator, logos storage.LogoStore, logger logrus.FieldLogger) *Handler {
	return &Handler{
		auth:     auth,
		listings: listings,
		sessions: sessions,
		ai:       generator,
		logos:    logos,
		logger:   logger,
	}
}

func (h *Handler) RegisterRoutes(router *gin.Engine) {
	router.Use(corsMiddleware())

	api := router.Group("/api")
	{
		api.POST("/auth/register", h.register)
		api.POST("/auth/login", h.login)
		api.POST("/auth/logout", h.logout)
		api.GET("/auth/session", h.currentSession)

		api.GET("/internships", h.listInternships)
		api.GET("/internships/:id", h.getInternship)
		api.POST("/internships", h.createInternship)
		api.PATCH("/internships/:id", h.updateInternship)
		api.DELETE("/internships/:id", h.deleteInternship)

		api.POST("/ai/describe", h.describe)
		api.POST("/uploads/logo", h.uploadLogo)

		api.GET("/health", func(ctx *gin.Context) {
			ctx.JSON(http.StatusOK, gin.H{"ok": "ok"})
		})
	}
}

func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, PATCH, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Origin, Content-Type, Accept, Authorization")
		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}

// bearerToken extracts the session token from the Authorization header.
// Whether it is valid is not this layer's concern: the services gate on
// presence alone.
func bearerToken(c *gin.Context) string {
	header := strings.TrimSpace(c.GetHeader("Authorization"))
	if header == "" {
		return ""
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) == 2 && strings.EqualFold(parts[0], "bearer") {
		return strings.TrimSpace(parts[1])
	}
	return header
}

type registerRequest struct {
	Name     string      `json:"name" binding:"required"`
	Email    string      `json:"email" binding:"required"`
	Password string      `json:"password" binding:"required"`
	Role     domain.Role `json:"role" binding:"required"`
}

func (h *Handler) register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, fail("Invalid request: "+err.Error()))
		return
	}
	if !req.Role.Valid() {
		c.JSON(http.StatusBadRequest, fail("Unknown role."))
		return
	}

	err := h.auth.Register(c.Request.Context(), req.Name, req.Email, req.Password, req.Role)
	if err != nil {
		if errors.Is(err, service.ErrDuplicateEmail) {
			c.JSON(http.StatusConflict, fail("Email already registered."))
			return
		}
		h.logger.Errorf("register: %v", err)
		c.JSON(http.StatusInternalServerError, fail("Failed to register."))
		return
	}

	c.JSON(http.StatusCreated, ok(nil, "Registration successful!"))
}

type loginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func (h *Handler) login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, fail("Invalid request: "+err.Error()))
		return
	}

	user, err := h.auth.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, fail("Invalid email or password."))
			return
		}
		h.logger.Errorf("login: %v", err)
		c.JSON(http.StatusInternalServerError, fail("Failed to login."))
		return
	}

	if err := h.sessions.Login(c.Request.Context(), *user); err != nil {
		h.logger.Errorf("persist session: %v", err)
		c.JSON(http.StatusInternalServerError, fail("Failed to login."))
		return
	}

	c.JSON(http.StatusOK, ok(user, "Logged in successfully."))
}

func (h *Handler) logout(c *gin.Context) {
	if err := h.sessions.Logout(c.Request.Context()); err != nil {
		h.logger.Errorf("logout: %v", err)
		c.JSON(http.StatusInternalServerError, fail("Failed to logout."))
		return
	}
	c.JSON(http.StatusOK, ok(nil, "Logged out."))
}

type sessionResponse struct {
	User            *domain.SessionUser `json:"user"`
	IsAuthenticated bool                `json:"isAuthenticated"`
	IsRecruiter     bool                `json:"isRecruiter"`
	IsApplicant     bool                `json:"isApplicant"`
}

func (h *Handler) currentSession(c *gin.Context) {
	resp := sessionResponse{
		User:            h.sessions.Current(),
		IsAuthenticated: h.sessions.IsAuthenticated(),
		IsRecruiter:     h.sessions.IsRecruiter(),
		IsApplicant:     h.sessions.IsApplicant(),
	}
	c.JSON(http.StatusOK, ok(resp, "Session fetched."))
}

func (h *Handler) listInternships(c *gin.Context) {
	listings, err := h.listings.List(c.Request.Context())
	if err != nil {
		h.logger.Errorf("list internships: %v", err)
		c.JSON(http.StatusInternalServerError, fail("Failed to fetch jobs."))
		return
	}
	c.JSON(http.StatusOK, ok(listings, "Jobs fetched."))
}

func (h *Handler) getInternship(c *gin.Context) {
	listing, err := h.listings.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			c.JSON(http.StatusNotFound, fail("Job not found."))
			return
		}
		h.logger.Errorf("get internship: %v", err)
		c.JSON(http.StatusInternalServerError, fail("Failed to fetch job."))
		return
	}
	c.JSON(http.StatusOK, ok(listing, "Job found."))
}

type createInternshipRequest struct {
	Title       string          `json:"title" binding:"required"`
	CompanyName string          `json:"companyName" binding:"required"`
	CompanyLogo string          `json:"companyLogo"`
	Location    string          `json:"location"`
	Stipend     string          `json:"stipend"`
	Duration    string          `json:"duration"`
	Description string          `json:"description"`
	Industry    string          `json:"industry"`
	Type        domain.WorkType `json:"type"`
	Skills      []string        `json:"skills"`
	CreatedBy   string          `json:"createdBy"`
}

func (h *Handler) createInternship(c *gin.Context) {
	var req createInternshipRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, fail("Invalid request: "+err.Error()))
		return
	}

	draft := domain.Listing{
		Title:       req.Title,
		CompanyName: req.CompanyName,
		CompanyLogo: req.CompanyLogo,
		Location:    req.Location,
		Stipend:     req.Stipend,
		Duration:    req.Duration,
		Description: req.Description,
		Industry:    req.Industry,
		Type:        req.Type,
		Skills:      req.Skills,
		CreatedBy:   req.CreatedBy,
	}

	listing, err := h.listings.Create(c.Request.Context(), draft, bearerToken(c))
	if err != nil {
		if errors.Is(err, service.ErrUnauthorized) {
			c.JSON(http.StatusUnauthorized, fail("Unauthorized access."))
			return
		}
		h.logger.Errorf("create internship: %v", err)
		c.JSON(http.StatusInternalServerError, fail("Failed to publish internship."))
		return
	}

	c.JSON(http.StatusCreated, ok(listing, "Internship published."))
}

func (h *Handler) updateInternship(c *gin.Context) {
	var patch domain.ListingPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, fail("Invalid request: "+err.Error()))
		return
	}

	listing, err := h.listings.Update(c.Request.Context(), c.Param("id"), patch, bearerToken(c))
	if err != nil {
		switch {
		case errors.Is(err, service.ErrUnauthorized):
			c.JSON(http.StatusUnauthorized, fail("Unauthorized access."))
		case errors.Is(err, service.ErrNotFound):
			c.JSON(http.StatusNotFound, fail("Job not found."))
		default:
			h.logger.Errorf("update internship: %v", err)
			c.JSON(http.StatusInternalServerError, fail("Failed to update job."))
		}
		return
	}

	c.JSON(http.StatusOK, ok(listing, "Job updated."))
}

func (h *Handler) deleteInternship(c *gin.Context) {
	err := h.listings.Delete(c.Request.Context(), c.Param("id"), bearerToken(c))
	if err != nil {
		if errors.Is(err, service.ErrUnauthorized) {
			c.JSON(http.StatusUnauthorized, fail("Unauthorized access."))
			return
		}
		h.logger.Errorf("delete internship: %v", err)
		c.JSON(http.StatusInternalServerError, fail("Failed to delete job."))
		return
	}
	c.JSON(http.StatusOK, ok(nil, "Job deleted."))
}

type describeRequest struct {
	Title    string   `json:"title" binding:"required"`
	Industry string   `json:"industry"`
	Skills   []string `json:"skills"`
}

func (h *Handler) describe(c *gin.Context) {
	var req describeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, fail("Invalid request: "+err.Error()))
		return
	}

	// mirror the add-skill flow: entries are deduplicated as the list is built
	var skills []string
	for _, s := range req.Skills {
		skills = domain.AppendSkill(skills, s)
	}

	text := h.ai.Generate(c.Request.Context(), req.Title, req.Industry, skills)
	c.JSON(http.StatusOK, ok(gin.H{"description": text}, "Description generated."))
}

func (h *Handler) uploadLogo(c *gin.Context) {
	if h.logos == nil {
		c.JSON(http.StatusServiceUnavailable, fail("Logo uploads are not configured."))
		return
	}
	if bearerToken(c) == "" {
		c.JSON(http.StatusUnauthorized, fail("Unauthorized access."))
		return
	}

	file, header, err := c.Request.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, fail("Invalid request: logo file is required."))
		return
	}
	defer file.Close()

	logoURL, err := h.logos.UploadLogo(
		c.Request.Context(),
		c.PostForm("companyName"),
		header.Header.Get("Content-Type"),
		file,
	)
	if err != nil {
		h.logger.Errorf("upload logo: %v", err)
		c.JSON(http.StatusInternalServerError, fail("Failed to upload logo."))
		return
	}

	c.JSON(http.StatusCreated, ok(gin.H{"url": logoURL}, "Logo uploaded."))
}
