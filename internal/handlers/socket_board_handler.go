package handlers

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"retroBoard/configs"
	"retroBoard/internal/enums"
	"retroBoard/internal/errs"
	"retroBoard/internal/models"
	"retroBoard/internal/services"
	"retroBoard/internal/validators"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

// SocketBoardHandler is the per-connection protocol gateway: it upgrades
// the HTTP request, registers the connection, decodes client events and
// applies them to the board store and presence registry before fanning the
// result out to the board's room.
type SocketBoardHandler struct {
	ctx             context.Context
	configs         *configs.Config
	upgrader        websocket.Upgrader
	hub             *models.SocketBoardHub
	boardService    *services.BoardService
	presenceService *services.PresenceService
}

func NewSocketBoardHandler(
	ctx context.Context,
	cfg *configs.Config,
	boardService *services.BoardService,
	presenceService *services.PresenceService,
) *SocketBoardHandler {
	return &SocketBoardHandler{
		ctx:             ctx,
		configs:         cfg,
		boardService:    boardService,
		presenceService: presenceService,
		hub:             models.NewSocketBoardHub(cfg.Socket.WriteWait),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  cfg.Socket.ReadBufferSize,
			WriteBufferSize: cfg.Socket.WriteBufferSize,
			CheckOrigin: func(r *http.Request) bool {
				return true
			},
		},
	}
}

func (sbh *SocketBoardHandler) HandleSocketBoardRoute(ctx *gin.Context) {
	ws, err := sbh.upgrader.Upgrade(ctx.Writer, ctx.Request, nil)
	if err != nil {
		log.Printf("Failed to upgrade connection: %v", err)
		return
	}
	defer func(ws *websocket.Conn) {
		if err := ws.Close(); err != nil {
			log.Printf("Error closing connection: %v", err)
		}
	}(ws)

	client := &models.SocketClient{
		SocketId: uuid.NewString(),
		Conn:     ws,
	}
	log.Printf("User connected: %v", client.SocketId)

	defer sbh.handleDisconnectedClient(client)

	done := make(chan struct{})
	defer close(done)
	go sbh.keepClientAlive(client, done)

	sbh.handleIncomingEvents(client)
}

// keepClientAlive pings the peer on the configured interval so dead
// connections are reaped by the read deadline.
func (sbh *SocketBoardHandler) keepClientAlive(client *models.SocketClient, done <-chan struct{}) {
	ticker := time.NewTicker(sbh.configs.Socket.PingInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			if err := client.Ping(sbh.configs.Socket.WriteWait); err != nil {
				return
			}
		case <-done:
			return
		}
	}
}

func (sbh *SocketBoardHandler) handleIncomingEvents(client *models.SocketClient) {
	ws := client.Conn
	ws.SetReadLimit(sbh.configs.Socket.MaxMessageSize)
	_ = ws.SetReadDeadline(time.Now().Add(sbh.configs.Socket.PongWait))
	ws.SetPongHandler(func(string) error {
		return ws.SetReadDeadline(time.Now().Add(sbh.configs.Socket.PongWait))
	})

	for {
		var event models.BoardSocketEvent
		if err := ws.ReadJSON(&event); err != nil {
			if !websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				log.Printf("Error reading json from client %v: %v", client.SocketId, err)
			}
			break
		}
		sbh.dispatchEvent(client, &event)
	}
}

func (sbh *SocketBoardHandler) dispatchEvent(client *models.SocketClient, event *models.BoardSocketEvent) {
	switch event.Event {
	case enums.SOCKET_EVENT_JOIN_BOARD:
		sbh.handleJoinBoard(client, event.Payload)
	case enums.SOCKET_EVENT_OBJECT_ADD:
		sbh.handleObjectAdd(client, event.Payload)
	case enums.SOCKET_EVENT_OBJECT_UPDATE:
		sbh.handleObjectUpdate(client, event.Payload)
	case enums.SOCKET_EVENT_OBJECT_DELETE:
		sbh.handleObjectDelete(client, event.Payload)
	case enums.SOCKET_EVENT_OBJECT_SEND_TO_BACK:
		sbh.handleObjectSendToBack(client, event.Payload)
	case enums.SOCKET_EVENT_CLEAR_BOARD:
		sbh.handleClearBoard(client)
	case enums.SOCKET_EVENT_CURSOR_MOVE:
		sbh.handleCursorMove(client, event.Payload)
	case enums.SOCKET_EVENT_USER_UPDATE:
		sbh.handleUserUpdate(client, event.Payload)
	case enums.SOCKET_EVENT_TEXT_EDITING_START:
		sbh.handleTextEditing(client, event.Payload, enums.SOCKET_EVENT_TEXT_EDITING_STARTED)
	case enums.SOCKET_EVENT_TEXT_EDITING_END:
		sbh.handleTextEditing(client, event.Payload, enums.SOCKET_EVENT_TEXT_EDITING_ENDED)
	default:
		log.Printf("Unknown event from client %v: %v", client.SocketId, event.Event)
	}
}

func (sbh *SocketBoardHandler) handleJoinBoard(client *models.SocketClient, payload json.RawMessage) {
	// A second join on an already-joined connection is ignored.
	if _, ok := sbh.presenceService.Get(client.SocketId); ok {
		return
	}

	var join models.JoinBoardPayload
	if err := json.Unmarshal(payload, &join); err != nil {
		sbh.sendError(client, errs.ErrInvalidEventPayload)
		return
	}
	if validationErrs := validators.ValidateJoinBoard(&join); len(validationErrs) > 0 {
		sbh.sendError(client, validationErrs[0])
		return
	}

	user := sbh.presenceService.Join(client.SocketId, join.User, join.BoardId)
	sbh.hub.AddClient(join.BoardId, client)

	board := sbh.boardService.GetOrCreate(join.BoardId)
	sbh.emitToClient(client, enums.SOCKET_EVENT_BOARD_STATE, board)
	sbh.emitToClient(client, enums.SOCKET_EVENT_ACTIVE_USERS, models.ActiveUsersPayload{
		Users: sbh.buildRoster(join.BoardId),
	})

	sbh.hub.EmitToRoomExceptSender(join.BoardId, client.SocketId, enums.SOCKET_EVENT_USER_JOINED, models.UserEventPayload{
		User:      user,
		Timestamp: time.Now(),
	})
	log.Printf("User %v joined board %v", user.Name, join.BoardId)
}

func (sbh *SocketBoardHandler) handleObjectAdd(client *models.SocketClient, payload json.RawMessage) {
	user, ok := sbh.presenceService.Get(client.SocketId)
	if !ok {
		return
	}

	var add models.ObjectAddPayload
	if err := json.Unmarshal(payload, &add); err != nil {
		sbh.sendError(client, errs.ErrInvalidEventPayload)
		return
	}
	if !validators.ValidateObjectType(add.Object.Type) {
		sbh.sendError(client, errs.ErrInvalidObjectType)
		return
	}

	object := sbh.boardService.AddObject(user.BoardId, add.Object, &user)
	sbh.hub.EmitToRoom(user.BoardId, enums.SOCKET_EVENT_OBJECT_ADDED, models.ObjectAddedPayload{
		Object: object,
		User:   user,
	})
}

func (sbh *SocketBoardHandler) handleObjectUpdate(client *models.SocketClient, payload json.RawMessage) {
	user, ok := sbh.presenceService.Get(client.SocketId)
	if !ok {
		return
	}

	var update models.ObjectUpdatePayload
	if err := json.Unmarshal(payload, &update); err != nil {
		sbh.sendError(client, errs.ErrInvalidEventPayload)
		return
	}

	// Unknown object ids are a silent no-op, the object may have been
	// deleted by a racing client.
	if _, err := sbh.boardService.UpdateObject(user.BoardId, update.ObjectId, update.Updates, &user); err != nil {
		return
	}

	sbh.hub.EmitToRoomExceptSender(user.BoardId, client.SocketId, enums.SOCKET_EVENT_OBJECT_UPDATED, models.ObjectUpdatedPayload{
		ObjectId: update.ObjectId,
		Updates:  update.Updates,
		User:     user,
	})
}

func (sbh *SocketBoardHandler) handleObjectDelete(client *models.SocketClient, payload json.RawMessage) {
	user, ok := sbh.presenceService.Get(client.SocketId)
	if !ok {
		return
	}

	var del models.ObjectIdPayload
	if err := json.Unmarshal(payload, &del); err != nil {
		sbh.sendError(client, errs.ErrInvalidEventPayload)
		return
	}

	if _, err := sbh.boardService.DeleteObject(user.BoardId, del.ObjectId); err != nil {
		return
	}

	sbh.hub.EmitToRoom(user.BoardId, enums.SOCKET_EVENT_OBJECT_DELETED, models.ObjectEventPayload{
		ObjectId: del.ObjectId,
		User:     user,
	})
}

func (sbh *SocketBoardHandler) handleObjectSendToBack(client *models.SocketClient, payload json.RawMessage) {
	user, ok := sbh.presenceService.Get(client.SocketId)
	if !ok {
		return
	}

	var sendToBack models.ObjectIdPayload
	if err := json.Unmarshal(payload, &sendToBack); err != nil {
		sbh.sendError(client, errs.ErrInvalidEventPayload)
		return
	}

	if !sbh.boardService.SendToBack(user.BoardId, sendToBack.ObjectId) {
		return
	}

	// The sender already reordered locally, only the rest of the room
	// needs the event.
	sbh.hub.EmitToRoomExceptSender(user.BoardId, client.SocketId, enums.SOCKET_EVENT_OBJECT_SENT_TO_BACK, models.ObjectEventPayload{
		ObjectId: sendToBack.ObjectId,
		User:     user,
	})
}

func (sbh *SocketBoardHandler) handleClearBoard(client *models.SocketClient) {
	user, ok := sbh.presenceService.Get(client.SocketId)
	if !ok {
		return
	}

	sbh.boardService.ClearObjects(user.BoardId)
	sbh.hub.EmitToRoom(user.BoardId, enums.SOCKET_EVENT_BOARD_CLEARED, models.BoardClearedPayload{
		User: user,
	})
}

func (sbh *SocketBoardHandler) handleCursorMove(client *models.SocketClient, payload json.RawMessage) {
	user, ok := sbh.presenceService.Get(client.SocketId)
	if !ok {
		return
	}

	var cursor models.CursorMovePayload
	if err := json.Unmarshal(payload, &cursor); err != nil {
		sbh.sendError(client, errs.ErrInvalidEventPayload)
		return
	}

	// Cursor positions are not persisted, only relayed.
	sbh.hub.EmitToRoomExceptSender(user.BoardId, client.SocketId, enums.SOCKET_EVENT_CURSOR_MOVED, models.CursorMovedPayload{
		UserId:   user.Id,
		UserName: user.Name,
		Position: cursor.Position,
		Color:    user.Color,
	})
}

func (sbh *SocketBoardHandler) handleUserUpdate(client *models.SocketClient, payload json.RawMessage) {
	var update models.UserUpdatePayload
	if err := json.Unmarshal(payload, &update); err != nil {
		sbh.sendError(client, errs.ErrInvalidEventPayload)
		return
	}

	user, ok := sbh.presenceService.Update(client.SocketId, update.User)
	if !ok {
		return
	}

	sbh.hub.EmitToRoomExceptSender(user.BoardId, client.SocketId, enums.SOCKET_EVENT_USER_UPDATED, models.UserEventPayload{
		User:      user,
		Timestamp: time.Now(),
	})
	log.Printf("User %v updated their profile in board %v", user.Name, user.BoardId)
}

func (sbh *SocketBoardHandler) handleTextEditing(client *models.SocketClient, payload json.RawMessage, outEvent string) {
	user, ok := sbh.presenceService.Get(client.SocketId)
	if !ok {
		return
	}

	var editing models.ObjectIdPayload
	if err := json.Unmarshal(payload, &editing); err != nil {
		sbh.sendError(client, errs.ErrInvalidEventPayload)
		return
	}

	sbh.hub.EmitToRoomExceptSender(user.BoardId, client.SocketId, outEvent, models.ObjectEventPayload{
		ObjectId: editing.ObjectId,
		User:     user,
	})
}

func (sbh *SocketBoardHandler) handleDisconnectedClient(client *models.SocketClient) {
	user, ok := sbh.presenceService.Leave(client.SocketId)
	if !ok {
		log.Printf("User disconnected: %v", client.SocketId)
		return
	}

	sbh.hub.RemoveClient(user.BoardId, client.SocketId)
	sbh.hub.EmitToRoomExceptSender(user.BoardId, client.SocketId, enums.SOCKET_EVENT_USER_LEFT, models.UserEventPayload{
		User:      user,
		Timestamp: time.Now(),
	})
	log.Printf("User %v left board %v", user.Name, user.BoardId)
}

// NotifyBoardDeleted tells the board's room the board is gone, then force
// leaves everyone so no dangling room membership remains.
func (sbh *SocketBoardHandler) NotifyBoardDeleted(boardId string) {
	sbh.hub.EmitToRoom(boardId, enums.SOCKET_EVENT_BOARD_DELETED, models.BoardDeletedPayload{
		BoardId: boardId,
	})
	for _, client := range sbh.hub.EvictRoom(boardId) {
		sbh.presenceService.Leave(client.SocketId)
	}
}

// CloseAllConnections is called on server shutdown.
func (sbh *SocketBoardHandler) CloseAllConnections() {
	sbh.hub.CloseAll()
}

func (sbh *SocketBoardHandler) buildRoster(boardId string) []models.ActiveUser {
	users := sbh.presenceService.ListByBoard(boardId)
	roster := make([]models.ActiveUser, 0, len(users))
	for _, user := range users {
		roster = append(roster, models.ActiveUser{
			UserId:   user.Id,
			UserName: user.Name,
			Color:    user.Color,
			// Default position for users who haven't moved their cursor yet
			Position: models.Position{X: 0, Y: 0},
		})
	}
	return roster
}

func (sbh *SocketBoardHandler) emitToClient(client *models.SocketClient, event string, payload interface{}) {
	if err := client.WriteEvent(event, payload, sbh.configs.Socket.WriteWait); err != nil {
		log.Printf("Error writing %v event to client %v: %v", event, client.SocketId, err)
	}
}

func (sbh *SocketBoardHandler) sendError(client *models.SocketClient, err error) {
	log.Printf("Error handling event from client %v: %v", client.SocketId, err)
	sbh.emitToClient(client, enums.SOCKET_EVENT_ERROR, models.ErrorPayload{Message: err.Error()})
}
