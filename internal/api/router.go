package api

import (
	"context"
	"log"
	"strings"

	"github.com/gin-gonic/gin"
	"go-lexicon/internal/auth"
	"go-lexicon/internal/config"
	"go-lexicon/internal/definition"
	"go-lexicon/internal/lookup"
)

// Definer produces the raw definition text for a word.
type Definer interface {
	Define(ctx context.Context, word string, policy definition.LanguagePolicy) (string, error)
}

type HistoryReader interface {
	Recent(ctx context.Context, limit int) ([]lookup.Lookup, error)
}

type StatsReader interface {
	Summary(ctx context.Context, top int) (lookup.Summary, error)
}

// Deps are built once in main and shared by every request.
// History and Stats are optional; their routes are only registered when set.
type Deps struct {
	Definitions Definer
	History     HistoryReader
	Stats       StatsReader
}

func SetupRouter(cfg *config.Config, deps Deps) *gin.Engine {
	r := gin.Default()
	r.Use(RequestID())
	subpath := strings.TrimSuffix(cfg.Server.Subpath, "/") // e.g. "/lexicon", always starts with '/'

	group := r.Group(subpath)
	{
		group.GET("/health", healthHandler)
		group.GET("/config", configHandler(cfg))

		apiGroup := group.Group("/api")
		if cfg.Server.JWTSecret != "" {
			apiGroup.Use(auth.AuthMiddleware(cfg.Server.JWTSecret))
		}

		// gin needs the same wildcard name at the same depth, so the first
		// segment is ":head" (the word, or the language when a word follows).
		defs := apiGroup.Group("/definition")
		defs.GET("/:head", DefinitionHandler(deps.Definitions, autoRoute))
		langs, err := config.NormalizeLanguages(cfg.Definition.Languages)
		if err != nil {
			log.Printf("[API] WARNING: skipping language routes: %v", err)
		}
		if len(cfg.Definition.Languages) == 0 {
			defs.GET("/:head/:word", DefinitionHandler(deps.Definitions, pathLanguageRoute))
		} else {
			for _, code := range langs {
				defs.GET("/"+code+"/:word", DefinitionHandler(deps.Definitions, fixedRoute(code)))
			}
		}

		if deps.History != nil {
			apiGroup.GET("/lookups", RecentLookupsHandler(deps.History))
		}
		if deps.Stats != nil {
			apiGroup.GET("/stats", StatsHandler(deps.Stats))
		}
	}
	return r
}
