package server

import (
	"crypto/subtle"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Itsme-Debapriya/portfolio/internal/views"
)

const adminCookie = "admin_token"

func (s *Server) adminRoutes(r *gin.Engine) {
	r.GET("/admin/login", func(c *gin.Context) {
		html(c, http.StatusOK, views.AdminLogin("/static", ""))
	})
	r.POST("/admin/login", s.adminLogin)
	r.GET("/admin/logout", s.adminLogout)

	admin := r.Group("/admin")
	admin.Use(s.adminAuth())
	admin.GET("", func(c *gin.Context) { c.Redirect(http.StatusFound, "/admin/dashboard") })
	admin.GET("/dashboard", s.adminDashboard)
	admin.GET("/api/stats", s.adminStatsJSON)
	admin.GET("/export/stats", s.adminExportStats)
	admin.POST("/privacy/cleanup", s.adminCleanup)
}

func (s *Server) adminAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(adminCookie)
		if err != nil || !equal(token, s.adminToken) {
			c.Redirect(http.StatusFound, "/admin/login")
			c.Abort()
			return
		}
		c.Next()
	}
}

func (s *Server) adminLogin(c *gin.Context) {
	username := c.PostForm("username")
	password := c.PostForm("password")
	who := s.analytics.HashIP(c.ClientIP())

	if !equal(username, s.cfg.Admin.Username) || !equal(password, s.cfg.Admin.Password) {
		s.log.Warn("failed admin login", zap.String("from", who))
		html(c, http.StatusUnauthorized, views.AdminLogin("/static", "Invalid credentials"))
		return
	}

	secure := c.Request.TLS != nil
	c.SetSameSite(http.SameSiteStrictMode)
	c.SetCookie(adminCookie, s.adminToken, 3600*24, "/admin", "", secure, true)
	s.log.Info("admin login", zap.String("from", who))
	c.Redirect(http.StatusFound, "/admin/dashboard")
}

func (s *Server) adminLogout(c *gin.Context) {
	c.SetCookie(adminCookie, "", -1, "/admin", "", false, true)
	c.Redirect(http.StatusFound, "/admin/login")
}

func (s *Server) adminDashboard(c *gin.Context) {
	stats, err := s.analytics.Stats(c.Request.Context())
	if err != nil {
		s.log.Error("loading admin stats", zap.Error(err))
		_ = c.Error(err)
		c.String(http.StatusInternalServerError, "Failed to load statistics")
		return
	}
	html(c, http.StatusOK, views.AdminDashboard("/static", stats))
}

func (s *Server) adminStatsJSON(c *gin.Context) {
	stats, err := s.analytics.Stats(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, stats)
}

func (s *Server) adminExportStats(c *gin.Context) {
	stats, err := s.analytics.Stats(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Header("Content-Disposition", "attachment; filename=portfolio-stats.json")
	s.log.Info("admin stats exported", zap.String("from", s.analytics.HashIP(c.ClientIP())))
	c.JSON(http.StatusOK, stats)
}

func (s *Server) adminCleanup(c *gin.Context) {
	removed, err := s.analytics.Cleanup(c.Request.Context(), s.cfg.Analytics.Retention)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"removed": removed})
}

func equal(a, b string) bool {
	return subtle.ConstantTimeCompare([]byte(a), []byte(b)) == 1
}
