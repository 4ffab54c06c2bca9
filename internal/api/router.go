package api

import (
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func splitOrigins(allowOrigins string) []string {
	var origins []string
	for _, origin := range strings.Split(allowOrigins, ",") {
		if origin = strings.TrimSpace(origin); origin != "" {
			origins = append(origins, origin)
		}
	}
	if len(origins) == 0 {
		origins = []string{"*"}
	}
	return origins
}

// NewRouter wires the full REST surface. PUT and PATCH share the same
// partial-update handler on item routes.
func NewRouter(h *Handler, allowOrigins string) *gin.Engine {
	origins := splitOrigins(allowOrigins)
	wildcard := false
	for _, origin := range origins {
		if origin == "*" {
			wildcard = true
		}
	}

	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery())
	// cors.New rejects credentials combined with a wildcard origin.
	r.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowCredentials: !wildcard,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Authorization", "Content-Type"},
	}))

	r.GET("/", h.Health)
	r.POST("/auth/token", h.Token)
	r.POST("/users", h.Signup)

	authed := r.Group("/", h.RequireUser)
	{
		authed.GET("/users", h.GetUser)
		authed.PUT("/users", h.UpdateUser)
		authed.DELETE("/users", h.DeleteUser)

		authed.POST("/projects", h.CreateProject)
		authed.GET("/projects", h.ListProjects)
		authed.GET("/projects/:id", h.GetProject)
		authed.PUT("/projects/:id", h.UpdateProject)
		authed.PATCH("/projects/:id", h.UpdateProject)
		authed.DELETE("/projects/:id", h.DeleteProject)

		authed.POST("/skills", h.CreateSkill)
		authed.GET("/skills", h.ListSkills)
		authed.GET("/skills/:id", h.GetSkill)
		authed.PUT("/skills/:id", h.UpdateSkill)
		authed.PATCH("/skills/:id", h.UpdateSkill)
		authed.DELETE("/skills/:id", h.DeleteSkill)
	}

	return r
}
