package handlers

import (
	"github.com/gin-gonic/gin"

	"crm_pipeline/internal/domain/entities"
)

// actorFrom reads the acting user from the trusted gateway headers. Both
// headers are optional; stage history entries tolerate a blank actor.
func actorFrom(c *gin.Context) entities.Actor {
	return entities.Actor{
		ID:   c.GetHeader("X-User-Id"),
		Name: c.GetHeader("X-User-Name"),
	}
}
