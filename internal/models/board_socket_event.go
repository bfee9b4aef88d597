package models

import (
	"encoding/json"
	"time"
)

// BoardSocketEvent is the inbound protocol envelope. The payload is decoded
// once per event into its typed struct by the socket handler.
type BoardSocketEvent struct {
	Event   string          `json:"event"`
	Payload json.RawMessage `json:"payload"`
}

// BoardSocketMessage is the outbound envelope.
type BoardSocketMessage struct {
	Event   string      `json:"event"`
	Payload interface{} `json:"payload"`
}

// Client -> server payloads.

type JoinBoardPayload struct {
	BoardId string   `json:"boardId"`
	User    UserData `json:"user"`
}

type ObjectAddPayload struct {
	Object CanvasObject `json:"object"`
}

type ObjectUpdatePayload struct {
	ObjectId string       `json:"objectId"`
	Updates  ObjectUpdate `json:"updates"`
}

type ObjectIdPayload struct {
	ObjectId string `json:"objectId"`
}

type CursorMovePayload struct {
	Position Position `json:"position"`
}

type UserUpdatePayload struct {
	User UserUpdate `json:"user"`
}

// Server -> client payloads. board-state carries the Board itself.

type ActiveUsersPayload struct {
	Users []ActiveUser `json:"users"`
}

type UserEventPayload struct {
	User      User      `json:"user"`
	Timestamp time.Time `json:"timestamp"`
}

type ObjectAddedPayload struct {
	Object CanvasObject `json:"object"`
	User   User         `json:"user"`
}

type ObjectUpdatedPayload struct {
	ObjectId string       `json:"objectId"`
	Updates  ObjectUpdate `json:"updates"`
	User     User         `json:"user"`
}

type ObjectEventPayload struct {
	ObjectId string `json:"objectId"`
	User     User   `json:"user"`
}

type BoardClearedPayload struct {
	User User `json:"user"`
}

type CursorMovedPayload struct {
	UserId   string   `json:"userId"`
	UserName string   `json:"userName"`
	Position Position `json:"position"`
	Color    string   `json:"color"`
}

type BoardDeletedPayload struct {
	BoardId string `json:"boardId"`
}

type ErrorPayload struct {
	Message string `json:"message"`
}
