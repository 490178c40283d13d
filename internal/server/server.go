package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"

	"github.com/remeh/sizedwaitgroup"
	"golang.org/x/sync/errgroup"

	"github.com/G2-Games/minecraft-alpha-server/internal/gamedata"
	"github.com/G2-Games/minecraft-alpha-server/internal/server/admin"
	"github.com/G2-Games/minecraft-alpha-server/internal/server/config"
	"github.com/G2-Games/minecraft-alpha-server/internal/server/conn"
	"github.com/G2-Games/minecraft-alpha-server/internal/server/metrics"
	"github.com/G2-Games/minecraft-alpha-server/internal/server/packet"
	"github.com/G2-Games/minecraft-alpha-server/internal/server/player"
	"github.com/G2-Games/minecraft-alpha-server/internal/server/transport"
	"github.com/G2-Games/minecraft-alpha-server/internal/server/world"
	"github.com/G2-Games/minecraft-alpha-server/internal/server/world/gen"
)

// Transport names used in logs and metrics.
const (
	TransportTCP       = "tcp"
	TransportKCP       = "kcp"
	TransportWebSocket = "websocket"
)

// Server accepts client streams on every configured transport and runs a
// session for each.
type Server struct {
	cfg    *config.Config
	log    *slog.Logger
	shared *conn.Shared
}

// New builds the world and shared state described by cfg.
func New(cfg *config.Config, log *slog.Logger) (*Server, error) {
	catalog := gamedata.Default()
	if cfg.CatalogDir != "" {
		var err error
		if catalog, err = gamedata.LoadCatalog(cfg.CatalogDir); err != nil {
			return nil, err
		}
		blocks, items := catalog.Len()
		log.Info("catalog loaded", "dir", cfg.CatalogDir, "blocks", blocks, "items", items)
	}

	generator, err := gen.New(cfg.GeneratorType)
	if err != nil {
		return nil, err
	}

	return &Server{
		cfg: cfg,
		log: log,
		shared: &conn.Shared{
			Config:    cfg,
			World:     world.NewWorld(generator, cfg.PlayAreaRadius),
			Players:   player.NewRegistry(),
			EntityIDs: &player.EntityIDs{},
			Decoder:   packet.NewDecoder(catalog),
			Metrics:   metrics.New(),
		},
	}, nil
}

// Players returns the shared player registry.
func (s *Server) Players() *player.Registry { return s.shared.Players }

// Start opens every configured listener and blocks until the context is
// cancelled or one of them fails. Open sessions are drained before it
// returns.
func (s *Server) Start(ctx context.Context) error {
	var wsAddr *net.TCPAddr
	if s.cfg.WebSocketAddr != "" {
		var err error
		if wsAddr, err = net.ResolveTCPAddr("tcp", s.cfg.WebSocketAddr); err != nil {
			return fmt.Errorf("websocket address %s: %w", s.cfg.WebSocketAddr, err)
		}
	}

	addr := fmt.Sprintf(":%d", s.cfg.Port)
	lc := net.ListenConfig{}
	tcp, err := lc.Listen(ctx, "tcp", addr)
	if err != nil {
		return fmt.Errorf("listen on %s: %w", addr, err)
	}

	s.log.Info("server started",
		"port", s.cfg.Port,
		"generator", s.cfg.GeneratorType,
		"radius", s.cfg.PlayAreaRadius,
		"seed", s.cfg.Seed,
	)

	var kl *transport.KCPListener
	if s.cfg.KCPAddr != "" {
		if kl, err = transport.ListenKCP(s.cfg.KCPAddr); err != nil {
			tcp.Close()
			return err
		}
		s.log.Info("kcp listening", "addr", kl.Addr())
	}

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error { return s.Serve(ctx, tcp, TransportTCP) })
	if kl != nil {
		g.Go(func() error { return s.Serve(ctx, kl, TransportKCP) })
	}

	if s.cfg.WebSocketAddr != "" {
		wl := transport.NewWebSocketListener(wsAddr)
		g.Go(func() error { return transport.ServeWebSocket(ctx, s.cfg.WebSocketAddr, wl) })
		g.Go(func() error { return s.Serve(ctx, wl, TransportWebSocket) })
		s.log.Info("websocket listening", "addr", s.cfg.WebSocketAddr, "path", transport.WebSocketPath)
	}

	if s.cfg.AdminAddr != "" {
		api := admin.New(s.shared.Players, s.shared.World, s.shared.Metrics, s.log)
		g.Go(func() error { return api.Serve(ctx, s.cfg.AdminAddr) })
	}

	err = g.Wait()
	s.log.Info("server stopped")
	return err
}

// Serve accepts from l until ctx is done, running one session per stream.
// At most MaxSessions run at once; further streams wait in the backlog.
// If the listener fails, open sessions are closed before Serve returns.
func (s *Server) Serve(ctx context.Context, l net.Listener, transportName string) error {
	ctx, cancel := context.WithCancel(ctx)
	stop := context.AfterFunc(ctx, func() { l.Close() })
	defer stop()
	defer l.Close()

	swg := sizedwaitgroup.New(s.cfg.MaxSessions)
	defer swg.Wait()
	defer cancel()

	for {
		if err := swg.AddWithContext(ctx); err != nil {
			return nil
		}

		c, err := l.Accept()
		if err != nil {
			swg.Done()
			if ctx.Err() != nil {
				return nil
			}
			if errors.Is(err, net.ErrClosed) {
				return fmt.Errorf("%s listener closed: %w", transportName, err)
			}
			s.log.Error("accept connection", "transport", transportName, "error", err)
			continue
		}

		go func() {
			defer swg.Done()
			conn.NewConnection(ctx, c, s.shared, s.log, transportName).Handle()
		}()
	}
}
