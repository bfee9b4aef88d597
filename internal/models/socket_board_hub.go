package models

import (
	"log"
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

// SocketClient is one live websocket connection. SocketId is assigned by
// the server on connect and keys the presence record. All frame writes go
// through the write mutex, the hub and the ping loop share the connection.
type SocketClient struct {
	SocketId string
	Conn     *websocket.Conn

	writeMu sync.Mutex
}

func (sc *SocketClient) WriteEvent(event string, payload interface{}, writeWait time.Duration) error {
	sc.writeMu.Lock()
	defer sc.writeMu.Unlock()
	_ = sc.Conn.SetWriteDeadline(time.Now().Add(writeWait))
	return sc.Conn.WriteJSON(BoardSocketMessage{
		Event:   event,
		Payload: payload,
	})
}

func (sc *SocketClient) Ping(writeWait time.Duration) error {
	sc.writeMu.Lock()
	defer sc.writeMu.Unlock()
	return sc.Conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(writeWait))
}

// SocketBoardHub is the broadcast router: it maps each board id to the
// clients currently joined to that board's room.
type SocketBoardHub struct {
	mu        sync.Mutex
	boards    map[string][]*SocketClient
	writeWait time.Duration
}

func NewSocketBoardHub(writeWait time.Duration) *SocketBoardHub {
	return &SocketBoardHub{
		boards:    make(map[string][]*SocketClient),
		writeWait: writeWait,
	}
}

func (hub *SocketBoardHub) AddClient(boardId string, client *SocketClient) {
	hub.mu.Lock()
	defer hub.mu.Unlock()
	for _, member := range hub.boards[boardId] {
		if member.SocketId == client.SocketId {
			return
		}
	}
	hub.boards[boardId] = append(hub.boards[boardId], client)
}

func (hub *SocketBoardHub) RemoveClient(boardId string, socketId string) {
	hub.mu.Lock()
	defer hub.mu.Unlock()
	hub.removeClientLocked(boardId, socketId)
}

func (hub *SocketBoardHub) removeClientLocked(boardId string, socketId string) {
	clients := hub.boards[boardId]
	for i, client := range clients {
		if client.SocketId == socketId {
			hub.boards[boardId] = append(clients[:i], clients[i+1:]...)
			break
		}
	}
	if len(hub.boards[boardId]) == 0 {
		delete(hub.boards, boardId)
	}
}

// EmitToRoom delivers an event to every connection joined to the board,
// including the caller's own connection if it is a member. Delivery is
// best-effort: a failed write closes and drops that client only.
func (hub *SocketBoardHub) EmitToRoom(boardId string, event string, payload interface{}) {
	hub.emit(boardId, "", event, payload)
}

// EmitToRoomExceptSender is EmitToRoom minus the sender's connection.
func (hub *SocketBoardHub) EmitToRoomExceptSender(boardId string, senderSocketId string, event string, payload interface{}) {
	hub.emit(boardId, senderSocketId, event, payload)
}

func (hub *SocketBoardHub) emit(boardId string, excludedSocketId string, event string, payload interface{}) {
	hub.mu.Lock()
	clients := make([]*SocketClient, 0, len(hub.boards[boardId]))
	for _, client := range hub.boards[boardId] {
		if client.SocketId != excludedSocketId {
			clients = append(clients, client)
		}
	}
	hub.mu.Unlock()

	// Writes happen outside the hub lock so one slow peer cannot stall
	// delivery to the rest of the room.
	for _, client := range clients {
		if err := client.WriteEvent(event, payload, hub.writeWait); err != nil {
			log.Printf("Error writing %v event to client %v: %v", event, client.SocketId, err)
			_ = client.Conn.Close()
			hub.RemoveClient(boardId, client.SocketId)
		}
	}
}

// EvictRoom drops every client from the board's room without closing their
// connections. Used when a board is deleted out from under its users.
func (hub *SocketBoardHub) EvictRoom(boardId string) []*SocketClient {
	hub.mu.Lock()
	defer hub.mu.Unlock()
	evicted := hub.boards[boardId]
	delete(hub.boards, boardId)
	return evicted
}

// CloseAll closes every connection in every room. Used on server shutdown.
func (hub *SocketBoardHub) CloseAll() {
	hub.mu.Lock()
	defer hub.mu.Unlock()
	for boardId, clients := range hub.boards {
		for _, client := range clients {
			if err := client.Conn.Close(); err != nil {
				log.Printf("Error closing connection %v: %v", client.SocketId, err)
			}
		}
		delete(hub.boards, boardId)
	}
}
