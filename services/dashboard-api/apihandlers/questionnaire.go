package apihandlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// getQuestionnaireCatalog serves the question catalog so clients render the
// questionnaire from the same definition the server scores against.
func (h *HttpEndpoints) getQuestionnaireCatalog(c *gin.Context) {
	c.JSON(http.StatusOK, h.catalog)
}
