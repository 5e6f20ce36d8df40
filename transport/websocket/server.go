package websocket

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"slices"
	"sync"

	"github.com/gorilla/websocket"

	"github.com/rocketscienceinc/tictactoe-history/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-history/internal/config"
	"github.com/rocketscienceinc/tictactoe-history/internal/tictactoe"
)

type gameUseCase interface {
	StartSession(ctx context.Context, sessionID string) (string, tictactoe.Session, error)
	GetSession(ctx context.Context, sessionID string) (tictactoe.Session, error)
	EndSession(ctx context.Context, sessionID string) error

	MakeTurn(ctx context.Context, sessionID string, cell int) (tictactoe.Session, error)
	JumpTo(ctx context.Context, sessionID string, step int) (tictactoe.Session, error)
	ToggleSort(ctx context.Context, sessionID string) (tictactoe.Session, error)
}

type handlerFunc func(ctx context.Context, client *client, msg *Message) error

// client - one browser tab. Each tab plays its own session.
type client struct {
	conn      *websocket.Conn
	sessionID string
}

type Server struct {
	logger    *slog.Logger
	game      gameUseCase
	upgrader  websocket.Upgrader
	readLimit int64

	handlers map[string]handlerFunc

	clientsMu sync.Mutex
	clients   map[*client]struct{}
}

func New(logger *slog.Logger, game gameUseCase, conf config.WebSocket) *Server {
	server := &Server{
		logger: logger.With("component", "websocket"),
		game:   game,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
		},
		readLimit: conf.ReadLimit,
		handlers:  make(map[string]handlerFunc),
		clients:   make(map[*client]struct{}),
	}

	// with no origins configured gorilla only accepts same-host requests
	if len(conf.AllowedOrigins) > 0 {
		origins := conf.AllowedOrigins
		server.upgrader.CheckOrigin = func(r *http.Request) bool {
			return slices.Contains(origins, r.Header.Get("Origin"))
		}
	}

	server.handlers[actionNewGame] = server.handleNewGame
	server.handlers[actionTurn] = server.handleTurn
	server.handlers[actionJump] = server.handleJump
	server.handlers[actionSort] = server.handleSort
	server.handlers[actionState] = server.handleState

	return server
}

// ServeHTTP - upgrades the connection to WebSocket and plays one session on it.
func (that *Server) ServeHTTP(writer http.ResponseWriter, req *http.Request) {
	log := that.logger.With("method", "ServeHTTP")

	conn, err := that.upgrader.Upgrade(writer, req, nil)
	if err != nil {
		log.Error("failed to upgrade connection", "error", err)
		return
	}

	if that.readLimit > 0 {
		conn.SetReadLimit(that.readLimit)
	}

	ctx := context.WithoutCancel(req.Context())
	c := &client{conn: conn}

	that.track(c)
	defer func() {
		that.untrack(c)
		that.closeClient(ctx, c)
	}()

	if err = that.handleConnect(ctx, c); err != nil {
		log.Error("failed to start session", "error", err)
		return
	}

	log.Info("WebSocket connection established", "session_id", c.sessionID)

	that.handleMessages(ctx, c)
}

// Shutdown - closes every open connection. Their sessions are dropped as the
// read loops exit.
func (that *Server) Shutdown() {
	that.clientsMu.Lock()
	defer that.clientsMu.Unlock()

	for c := range that.clients {
		_ = c.conn.Close()
	}
}

// ActiveClients - number of open connections.
func (that *Server) ActiveClients() int {
	that.clientsMu.Lock()
	defer that.clientsMu.Unlock()

	return len(that.clients)
}

// handleMessages - processes messages from the client until it disconnects.
func (that *Server) handleMessages(ctx context.Context, c *client) {
	log := that.logger.With("method", "handleMessages", "session_id", c.sessionID)

	for {
		_, body, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Error("error reading message", "error", err)
			}
			return
		}

		var message Message
		if err = json.Unmarshal(body, &message); err != nil {
			log.Error("failed to unmarshal message", "error", err)
			that.sendError(c, actionError, "malformed message")
			continue
		}

		handler, ok := that.handlers[message.Action]
		if !ok {
			log.Warn("unknown action", "action", message.Action)
			that.sendError(c, message.Action, apperror.ErrUnknownAction.Error())
			continue
		}

		if err = handler(ctx, c, &message); err != nil {
			log.Error("error processing message", "action", message.Action, "error", err)
		}
	}
}

func (that *Server) closeClient(ctx context.Context, c *client) {
	log := that.logger.With("method", "closeClient", "session_id", c.sessionID)

	if c.sessionID != "" {
		if err := that.game.EndSession(ctx, c.sessionID); err != nil {
			log.Error("failed to end session", "error", err)
		}
	}

	if err := c.conn.Close(); err != nil && !errors.Is(err, websocket.ErrCloseSent) {
		log.Debug("failed to close connection", "error", err)
	}

	log.Info("WebSocket connection closed")
}

func (that *Server) track(c *client) {
	that.clientsMu.Lock()
	defer that.clientsMu.Unlock()

	that.clients[c] = struct{}{}
}

func (that *Server) untrack(c *client) {
	that.clientsMu.Lock()
	defer that.clientsMu.Unlock()

	delete(that.clients, c)
}
