package admin

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"runtime"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/shirou/gopsutil/v3/process"

	"github.com/G2-Games/minecraft-alpha-server/internal/server/metrics"
	"github.com/G2-Games/minecraft-alpha-server/internal/server/player"
	"github.com/G2-Games/minecraft-alpha-server/internal/server/world"
)

// Server is the read-only operator HTTP API.
type Server struct {
	router  *gin.Engine
	players *player.Registry
	world   *world.World
	metrics *metrics.Metrics
	log     *slog.Logger
	started time.Time
}

// PlayerView is the JSON form of a registry entry.
type PlayerView struct {
	EntityID int32   `json:"entity_id"`
	Username string  `json:"username"`
	Holding  string  `json:"holding"`
	X        float64 `json:"x"`
	Y        float64 `json:"y"`
	Stance   float64 `json:"stance"`
	Z        float64 `json:"z"`
	Yaw      float32 `json:"yaw"`
	Pitch    float32 `json:"pitch"`
}

// StatusView is the body of GET /status.
type StatusView struct {
	Uptime        string `json:"uptime"`
	Goroutines    int    `json:"goroutines"`
	Players       int    `json:"players"`
	CachedColumns int    `json:"cached_columns"`
	PlayRadius    int    `json:"play_radius"`
	RSS           string `json:"rss,omitempty"`
	RSSBytes      uint64 `json:"rss_bytes,omitempty"`
}

func New(players *player.Registry, w *world.World, m *metrics.Metrics, log *slog.Logger) *Server {
	gin.SetMode(gin.ReleaseMode)

	s := &Server{
		router:  gin.New(),
		players: players,
		world:   w,
		metrics: m,
		log:     log.With("component", "admin"),
		started: time.Now(),
	}
	s.router.Use(gin.Recovery(), s.requestLogger())
	s.setupRoutes()
	return s
}

func (s *Server) setupRoutes() {
	s.router.GET("/healthz", s.handleHealth)
	s.router.GET("/status", s.handleStatus)
	s.router.GET("/players", s.handlePlayers)
	s.router.GET("/players/:name", s.handlePlayer)
	if s.metrics != nil {
		s.router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(s.metrics.Registry, promhttp.HandlerOpts{})))
	}
}

// Handler exposes the router for embedding and tests.
func (s *Server) Handler() http.Handler { return s.router }

// Serve listens on addr until ctx is done.
func (s *Server) Serve(ctx context.Context, addr string) error {
	srv := &http.Server{Addr: addr, Handler: s.router, ReadHeaderTimeout: 10 * time.Second}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		srv.Shutdown(shutdownCtx)
	}()

	s.log.Info("admin api listening", "addr", addr)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (s *Server) requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.FullPath()
		if path == "" {
			path = c.Request.URL.Path
		}

		c.Next()

		s.log.Debug("http request",
			"request_id", uuid.NewString(),
			"method", c.Request.Method,
			"path", path,
			"status", c.Writer.Status(),
			"latency", time.Since(start),
		)
	}
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (s *Server) handleStatus(c *gin.Context) {
	view := StatusView{
		Uptime:        time.Since(s.started).Round(time.Second).String(),
		Goroutines:    runtime.NumGoroutine(),
		Players:       s.players.Len(),
		CachedColumns: s.world.Cached(),
		PlayRadius:    s.world.Radius(),
	}

	// Process stats are best effort; some platforms refuse them.
	if proc, err := process.NewProcess(int32(os.Getpid())); err == nil {
		if mem, err := proc.MemoryInfo(); err == nil {
			view.RSSBytes = mem.RSS
			view.RSS = humanize.Bytes(mem.RSS)
		}
	}

	c.JSON(http.StatusOK, view)
}

func (s *Server) handlePlayers(c *gin.Context) {
	snapshot := s.players.Snapshot()
	views := make([]PlayerView, 0, len(snapshot))
	for _, p := range snapshot {
		views = append(views, newPlayerView(p))
	}
	c.JSON(http.StatusOK, gin.H{"count": len(views), "players": views})
}

func (s *Server) handlePlayer(c *gin.Context) {
	p, ok := s.players.Get(c.Param("name"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "player not found"})
		return
	}
	c.JSON(http.StatusOK, newPlayerView(p))
}

func newPlayerView(p player.State) PlayerView {
	pos, look := p.PositionLook.Position, p.PositionLook.Look
	return PlayerView{
		EntityID: p.EntityID,
		Username: p.Username,
		Holding:  p.Holding.String(),
		X:        pos.X,
		Y:        pos.Y,
		Stance:   pos.Stance,
		Z:        pos.Z,
		Yaw:      look.Yaw,
		Pitch:    look.Pitch,
	}
}
