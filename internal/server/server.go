// Package server serves the built site and falls back to the entry document
// for every path that is not a file, so the client handles routing.
package server

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"path"
	"path/filepath"

	"github.com/gin-gonic/gin"

	"github.com/van-is-code/portfolio/internal/config"
)

var (
	ErrAssetsMissing = errors.New("assets directory missing")
	ErrEntryMissing  = errors.New("entry document missing")
)

// Server is the static asset server.
type Server struct {
	cfg    *config.Config
	engine *gin.Engine
}

// New checks that the assets directory and entry document exist and builds
// the router.
func New(cfg *config.Config) (*Server, error) {
	st, err := os.Stat(cfg.Dir)
	if err != nil || !st.IsDir() {
		return nil, fmt.Errorf("%w: %s", ErrAssetsMissing, cfg.Dir)
	}
	entry := filepath.Join(cfg.Dir, cfg.Entry)
	if st, err := os.Stat(entry); err != nil || st.IsDir() {
		return nil, fmt.Errorf("%w: %s", ErrEntryMissing, entry)
	}

	return &Server{cfg: cfg, engine: NewRouter(cfg.Dir, cfg.Entry)}, nil
}

// Handler exposes the router, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.engine
}

// Run listens on the configured port.
func (s *Server) Run() error {
	log.Printf("Server listening on port %d (assets: %s)", s.cfg.Port, s.cfg.Dir)
	return s.engine.Run(s.cfg.Addr())
}

// NewRouter serves files under root for GET and HEAD. Paths that match no
// file get the entry document with status 200.
func NewRouter(root, entry string) *gin.Engine {
	r := gin.Default()

	h := assetsWithFallback(gin.Dir(root, false), "/"+entry)
	r.GET("/*filepath", h)
	r.HEAD("/*filepath", h)
	return r
}

func assetsWithFallback(assets http.FileSystem, entry string) gin.HandlerFunc {
	return func(c *gin.Context) {
		name := path.Clean("/" + c.Param("filepath"))

		if serveFile(c, assets, name) {
			return
		}
		if serveFile(c, assets, path.Join(name, "index.html")) {
			return
		}
		if !serveFile(c, assets, entry) {
			log.Printf("Error serving entry document %s for %s", entry, name)
			c.AbortWithStatus(http.StatusInternalServerError)
		}
	}
}

// serveFile writes name if it is a regular file and reports whether it did.
func serveFile(c *gin.Context, assets http.FileSystem, name string) bool {
	f, err := assets.Open(name)
	if err != nil {
		return false
	}
	defer f.Close()

	st, err := f.Stat()
	if err != nil || st.IsDir() {
		return false
	}
	http.ServeContent(c.Writer, c.Request, st.Name(), st.ModTime(), f)
	return true
}
