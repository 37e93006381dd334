package http

import (
	"github.com/castlemill/tms-proxy/internal/middleware"
	"github.com/castlemill/tms-proxy/internal/service"
	"github.com/castlemill/tms-proxy/internal/upstream"
	"github.com/gin-gonic/gin"
)

// ProxyRoutes bundles the per-resource handlers and registers them on the
// authenticated API group.
type ProxyRoutes struct {
	projects     *ProjectsHandler
	keys         *KeysHandler
	translations *TranslationsHandler
	files        *FilesHandler
	tasks        *TasksHandler
	contributors *ContributorsHandler
}

// NewProxyRoutes creates the handlers for all proxied resources.
func NewProxyRoutes(
	api *upstream.Client,
	projects service.ProjectService,
	translations service.TranslationService,
	audit *middleware.AuditRecorder,
) *ProxyRoutes {
	return &ProxyRoutes{
		projects:     NewProjectsHandler(api, projects),
		keys:         NewKeysHandler(api, audit),
		translations: NewTranslationsHandler(api, translations, audit),
		files:        NewFilesHandler(api, audit),
		tasks:        NewTasksHandler(api, audit),
		contributors: NewContributorsHandler(api, audit),
	}
}

// Register registers all proxied resource routes on the given group.
func (r *ProxyRoutes) Register(rg *gin.RouterGroup) {
	rg.GET("/projects", r.projects.List)

	project := rg.Group("/projects/:projectId")

	project.GET("", r.projects.Detail)
	project.GET("/languages", r.projects.Languages)

	project.GET("/keys", r.keys.List)
	project.POST("/keys", r.keys.Create)

	project.GET("/translations", r.translations.List)
	project.GET("/translations/aggregate", r.translations.Aggregate)
	project.GET("/translations/:translationId", r.translations.Get)
	project.PUT("/translations/:translationId", r.translations.Update)

	project.POST("/files/upload", r.files.Upload)
	project.POST("/files/download", r.files.Download)

	project.GET("/tasks", r.tasks.List)
	project.GET("/tasks/:taskId", r.tasks.Get)
	project.POST("/tasks", r.tasks.Create)

	project.GET("/contributors", r.contributors.List)
	project.GET("/contributors/:contributorId", r.contributors.Get)
	project.POST("/contributors", r.contributors.Create)
}
