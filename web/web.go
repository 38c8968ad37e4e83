// This file is part of Clipdeck.
//
// Clipdeck is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Clipdeck is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Clipdeck.  If not, see <https://www.gnu.org/licenses/>.

// Package web serves the stored session logs over HTTP. It is an alternative
// to the send command of file management mode for hosts that prefer to pull
// files rather than capture a framed byte stream.
//
// Endpoints:
//
//	GET    /api/files       file names with their 1-based indices
//	GET    /api/files/:num  the raw contents of one file
//	DELETE /api/files/:num  remove one file
//
// Indices follow the same rule as the control channel: 1-based against the
// listing, resolved fresh on every request.
package web

import (
	"io"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/davidmay/clipdeck/curated"
	"github.com/davidmay/clipdeck/logger"
	"github.com/davidmay/clipdeck/storage"
)

// Server exposes a storage.Store over HTTP.
type Server struct {
	store storage.Store
	rtr   *gin.Engine
}

// NewServer is the preferred method of initialisation for the Server type.
func NewServer(store storage.Store) *Server {
	gin.SetMode(gin.ReleaseMode)

	srv := &Server{
		store: store,
		rtr:   gin.New(),
	}

	// recovery only. request logging goes through the central logger
	srv.rtr.Use(gin.Recovery())

	srv.rtr.GET("/api/files", srv.listFiles)
	srv.rtr.GET("/api/files/:num", srv.getFile)
	srv.rtr.DELETE("/api/files/:num", srv.deleteFile)

	return srv
}

// Run the server on the given address. Blocks until the server fails.
func (srv *Server) Run(addr string) error {
	logger.Logf("web", "serving on %s", addr)
	if err := srv.rtr.Run(addr); err != nil {
		return curated.Errorf("web: %v", err)
	}
	return nil
}

// Handler returns the underlying http.Handler. Useful for serving through a
// listener the caller owns, and for tests.
func (srv *Server) Handler() http.Handler {
	return srv.rtr
}

// resolve a 1-based index parameter against a fresh listing.
func (srv *Server) resolve(c *gin.Context) (string, bool) {
	names, err := srv.store.List()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return "", false
	}

	n, err := strconv.Atoi(c.Param("num"))
	if err != nil || n < 1 || n > len(names) {
		c.JSON(http.StatusNotFound, gin.H{"error": "invalid file number"})
		return "", false
	}

	return names[n-1], true
}

func (srv *Server) listFiles(c *gin.Context) {
	names, err := srv.store.List()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	files := make([]gin.H, 0, len(names))
	for i, n := range names {
		files = append(files, gin.H{"num": i + 1, "name": n})
	}

	c.JSON(http.StatusOK, gin.H{"files": files})
}

func (srv *Server) getFile(c *gin.Context) {
	name, ok := srv.resolve(c)
	if !ok {
		return
	}

	f, err := srv.store.OpenRead(name)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	defer f.Close()

	c.Header("Content-Type", "text/plain")
	c.Status(http.StatusOK)
	if _, err := io.Copy(c.Writer, f); err != nil {
		logger.Logf("web", "sending %s: %v", name, err)
	}
}

func (srv *Server) deleteFile(c *gin.Context) {
	name, ok := srv.resolve(c)
	if !ok {
		return
	}

	if err := srv.store.Remove(name); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	logger.Logf("web", "deleted %s", name)
	c.JSON(http.StatusOK, gin.H{"deleted": name})
}
