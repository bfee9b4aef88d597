package models

import "time"

// User is one live connection's presence record. Two tabs of the same
// person produce two records sharing the same client-supplied Id.
type User struct {
	Id       string    `json:"id"`
	Name     string    `json:"name"`
	Color    string    `json:"color"`
	Avatar   *string   `json:"avatar,omitempty"`
	SocketId string    `json:"socketId"`
	BoardId  string    `json:"boardId"`
	JoinedAt time.Time `json:"joinedAt"`
}

// UserData is the client-supplied profile sent on join.
type UserData struct {
	Id     string  `json:"id"`
	Name   string  `json:"name"`
	Color  string  `json:"color"`
	Avatar *string `json:"avatar,omitempty"`
}

// UserUpdate is a partial profile update. Id, SocketId and BoardId are
// immutable once joined and have no counterpart here.
type UserUpdate struct {
	Name   *string `json:"name,omitempty"`
	Color  *string `json:"color,omitempty"`
	Avatar *string `json:"avatar,omitempty"`
}

type Position struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// ActiveUser is the roster entry sent to a newly joined client. Cursor
// positions default to the origin until the user moves.
type ActiveUser struct {
	UserId   string   `json:"userId"`
	UserName string   `json:"userName"`
	Color    string   `json:"color"`
	Position Position `json:"position"`
}
