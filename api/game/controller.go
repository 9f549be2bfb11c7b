// Package gameapi handles game session requests over REST and websockets.
package gameapi

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/beka-birhanu/vinom-maze/api/identity"
	"github.com/beka-birhanu/vinom-maze/game"
	"github.com/beka-birhanu/vinom-maze/logger"
	"github.com/beka-birhanu/vinom-maze/service"
	"github.com/beka-birhanu/vinom-maze/service/i"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

const (
	sessionIDClaim  = "sessionID"
	defaultTokenTTL = 24 * time.Hour
)

var (
	ErrMissingDependency = errors.New("game controller dependency is missing")
	errNoSessionClaim    = errors.New("token carries no session")
)

// Config holds the dependencies of a GameController.
type Config struct {
	Sessions  i.GameSessionManager
	Tokenizer i.Tokenizer
	Encoder   game.Encoder
	TokenTTL  time.Duration
	Logger    logger.Logger
}

// GameController exposes game sessions over HTTP.
type GameController struct {
	sessions  i.GameSessionManager
	tokenizer i.Tokenizer
	encoder   game.Encoder
	tokenTTL  time.Duration
	logger    logger.Logger
	upgrader  websocket.Upgrader
}

// NewGameController initializes a GameController.
func NewGameController(c Config) (*GameController, error) {
	if c.Sessions == nil || c.Tokenizer == nil || c.Encoder == nil {
		return nil, ErrMissingDependency
	}
	if c.TokenTTL <= 0 {
		c.TokenTTL = defaultTokenTTL
	}
	if c.Logger == nil {
		c.Logger = logger.Nop{}
	}

	return &GameController{
		sessions:  c.Sessions,
		tokenizer: c.Tokenizer,
		encoder:   c.Encoder,
		tokenTTL:  c.TokenTTL,
		logger:    c.Logger,
		upgrader:  websocket.Upgrader{CheckOrigin: func(r *http.Request) bool { return true }},
	}, nil
}

// RegisterPublic registers public routes.
func (gc *GameController) RegisterPublic(route *gin.RouterGroup) {
	route.POST("/games", gc.newGame)
}

// RegisterProtected registers routes that need a session token.
func (gc *GameController) RegisterProtected(route *gin.RouterGroup) {
	games := route.Group("/games")
	{
		games.GET("/state", gc.state)
		games.POST("/moves", gc.move)
		games.POST("/restart", gc.restart)
		games.DELETE("", gc.end)
		games.GET("/ws", gc.stream)
	}
}

// newGame starts a session and hands out its token.
func (gc *GameController) newGame(ctx *gin.Context) {
	id, snapshot, err := gc.sessions.NewSession()
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "error while starting game"})
		return
	}

	token, err := gc.tokenizer.Generate(map[string]interface{}{sessionIDClaim: id.String()}, gc.tokenTTL)
	if err != nil {
		gc.logger.Error(fmt.Sprintf("signing token for session %s: %s", id, err))
		_ = gc.sessions.End(id)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "error while starting game"})
		return
	}

	ctx.JSON(http.StatusCreated, &NewGameResponse{
		ID:       id.String(),
		Token:    token,
		Snapshot: snapshot,
	})
}

// state returns the current snapshot.
func (gc *GameController) state(ctx *gin.Context) {
	id, ok := gc.sessionID(ctx)
	if !ok {
		return
	}

	snapshot, err := gc.sessions.Snapshot(id)
	if err != nil {
		gc.writeError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, snapshot)
}

// move applies one directional intent. Unknown directions are ignored, not rejected.
func (gc *GameController) move(ctx *gin.Context) {
	id, ok := gc.sessionID(ctx)
	if !ok {
		return
	}

	var request MoveRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	d, _ := game.ParseDirection(request.Direction)
	result, err := gc.sessions.Move(id, d)
	if err != nil {
		gc.writeError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, result)
}

// restart begins a new run in the same session.
func (gc *GameController) restart(ctx *gin.Context) {
	id, ok := gc.sessionID(ctx)
	if !ok {
		return
	}

	snapshot, err := gc.sessions.Restart(id)
	if err != nil {
		gc.writeError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, snapshot)
}

// end drops the session.
func (gc *GameController) end(ctx *gin.Context) {
	id, ok := gc.sessionID(ctx)
	if !ok {
		return
	}

	if err := gc.sessions.End(id); err != nil {
		gc.writeError(ctx, err)
		return
	}
	ctx.Status(http.StatusNoContent)
}

// stream upgrades to a websocket. The first frame is the snapshot; after that every
// {"direction": ...} frame is answered by exactly one move result, in order.
func (gc *GameController) stream(ctx *gin.Context) {
	id, ok := gc.sessionID(ctx)
	if !ok {
		return
	}

	snapshot, err := gc.sessions.Snapshot(id)
	if err != nil {
		gc.writeError(ctx, err)
		return
	}

	conn, err := gc.upgrader.Upgrade(ctx.Writer, ctx.Request, nil)
	if err != nil {
		gc.logger.Warning(fmt.Sprintf("websocket upgrade for session %s: %s", id, err))
		return
	}
	defer conn.Close()

	payload, err := gc.encoder.MarshalSnapshot(snapshot)
	if err != nil || conn.WriteMessage(websocket.TextMessage, payload) != nil {
		return
	}

	for {
		_, msg, err := conn.ReadMessage()
		if err != nil {
			return
		}

		request, err := gc.encoder.UnmarshalMoveRequest(msg)
		if err != nil {
			gc.logger.Warning(fmt.Sprintf("bad move frame from session %s: %s", id, err))
			continue
		}

		d, _ := game.ParseDirection(request.Direction)
		result, err := gc.sessions.Move(id, d)
		if err != nil {
			_ = conn.WriteControl(websocket.CloseMessage,
				websocket.FormatCloseMessage(websocket.CloseInternalServerErr, err.Error()),
				time.Now().Add(time.Second))
			return
		}

		payload, err := gc.encoder.MarshalMoveResult(result)
		if err != nil {
			gc.logger.Error(fmt.Sprintf("encoding move result for session %s: %s", id, err))
			return
		}
		if err := conn.WriteMessage(websocket.TextMessage, payload); err != nil {
			return
		}
	}
}

// sessionID reads the session from the token claims, aborting the request when absent.
func (gc *GameController) sessionID(ctx *gin.Context) (uuid.UUID, bool) {
	id, err := sessionFromClaims(ctx)
	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return uuid.Nil, false
	}
	return id, true
}

func sessionFromClaims(ctx *gin.Context) (uuid.UUID, error) {
	raw, ok := ctx.Get(identity.ContextSessionClaims)
	if !ok {
		return uuid.Nil, errNoSessionClaim
	}
	claims, ok := raw.(map[string]interface{})
	if !ok {
		return uuid.Nil, errNoSessionClaim
	}
	value, ok := claims[sessionIDClaim].(string)
	if !ok {
		return uuid.Nil, errNoSessionClaim
	}
	return uuid.Parse(value)
}

func (gc *GameController) writeError(ctx *gin.Context, err error) {
	if errors.Is(err, service.ErrSessionNotFound) {
		ctx.JSON(http.StatusNotFound, gin.H{"error": "No Session"})
		return
	}
	ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
}
