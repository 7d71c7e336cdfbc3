package handlers

import (
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"

	"tukrent/internal/cache"
	intconfig "tukrent/internal/config"
	intdb "tukrent/internal/db"
	"tukrent/internal/notify"
)

var (
	routerMu sync.RWMutex
	router   *gin.Engine

	appEnv         intconfig.Env
	sharedCache    *cache.Cache
	sharedNotifier notify.Notifier
)

// SetRouter stores the active gin engine for later inspection (e.g., /api/routes).
func SetRouter(r *gin.Engine) {
	routerMu.Lock()
	defer routerMu.Unlock()
	router = r
}

// SetEnv wires the resolved environment into the handler package.
func SetEnv(e intconfig.Env) {
	appEnv = e
}

// SetCache wires the shared Redis-backed cache; nil disables caching.
func SetCache(c *cache.Cache) {
	sharedCache = c
}

// SetNotifier wires the outbound notification client; nil disables sends.
func SetNotifier(n notify.Notifier) {
	sharedNotifier = n
}

func Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "tukrent backend running"})
}

func DBCheck(c *gin.Context) {
	if intconfig.DB == nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "database is not connected"})
		return
	}
	if !intdb.HasTable(intconfig.DB, "bookings") {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "schema not migrated: bookings table missing"})
		return
	}
	var count int
	err := intconfig.DB.QueryRow("SELECT COUNT(*) FROM bookings").Scan(&count)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "database query failed: " + err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "database connection OK", "bookings_in_db": count})
}

func Routes(c *gin.Context) {
	routerMu.RLock()
	r := router
	routerMu.RUnlock()
	if r == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "router not ready"})
		return
	}

	routes := r.Routes()
	out := make([]gin.H, 0, len(routes))
	for _, rt := range routes {
		out = append(out, gin.H{
			"method":  rt.Method,
			"path":    rt.Path,
			"handler": rt.Handler,
		})
	}
	c.JSON(http.StatusOK, gin.H{"routes": out})
}
