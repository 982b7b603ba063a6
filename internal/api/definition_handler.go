package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go-lexicon/internal/definition"
)

const jsonContentType = "application/json; charset=utf-8"

// routePolicy extracts the word and the language policy from a matched route.
type routePolicy func(c *gin.Context) (word string, policy definition.LanguagePolicy)

func autoRoute(c *gin.Context) (string, definition.LanguagePolicy) {
	return c.Param("head"), definition.Auto()
}

func pathLanguageRoute(c *gin.Context) (string, definition.LanguagePolicy) {
	return c.Param("word"), definition.Fixed(c.Param("head"))
}

func fixedRoute(code string) routePolicy {
	policy := definition.Fixed(code)
	return func(c *gin.Context) (string, definition.LanguagePolicy) {
		return c.Param("word"), policy
	}
}

// GET /api/definition/...
// On success the generated text is written as-is; on failure 500 {"error": msg}.
func DefinitionHandler(d Definer, route routePolicy) gin.HandlerFunc {
	return func(c *gin.Context) {
		word, policy := route(c)
		text, err := d.Define(c.Request.Context(), word, policy)
		if err != nil {
			c.JSON(http.StatusInternalServerError, definition.ErrorResult{Error: err.Error()})
			return
		}
		c.Data(http.StatusOK, jsonContentType, []byte(text))
	}
}
