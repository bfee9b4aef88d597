package services

import (
	"retroBoard/internal/models"
	"sync"
	"time"
)

// PresenceService tracks which users are live on which board, keyed by the
// server-assigned socket id. It deliberately does not deduplicate by the
// client-supplied user id: two tabs are two presence records.
type PresenceService struct {
	mu    sync.Mutex
	users map[string]*models.User
	// Socket ids in join order, so board rosters list users in the order
	// they joined.
	ordered []string
}

func NewPresenceService() *PresenceService {
	return &PresenceService{
		users: make(map[string]*models.User),
	}
}

// Join creates (or overwrites) the presence record for the connection.
func (ps *PresenceService) Join(socketId string, userData models.UserData, boardId string) models.User {
	ps.mu.Lock()
	defer ps.mu.Unlock()

	user := &models.User{
		Id:       userData.Id,
		Name:     userData.Name,
		Color:    userData.Color,
		Avatar:   userData.Avatar,
		SocketId: socketId,
		BoardId:  boardId,
		JoinedAt: time.Now(),
	}
	if _, ok := ps.users[socketId]; !ok {
		ps.ordered = append(ps.ordered, socketId)
	}
	ps.users[socketId] = user
	return *user
}

func (ps *PresenceService) Get(socketId string) (models.User, bool) {
	ps.mu.Lock()
	defer ps.mu.Unlock()
	user, ok := ps.users[socketId]
	if !ok {
		return models.User{}, false
	}
	return *user, true
}

// Update merges name/color/avatar into the record. Id, SocketId and BoardId
// stay as joined.
func (ps *PresenceService) Update(socketId string, update models.UserUpdate) (models.User, bool) {
	ps.mu.Lock()
	defer ps.mu.Unlock()

	user, ok := ps.users[socketId]
	if !ok {
		return models.User{}, false
	}
	if update.Name != nil {
		user.Name = *update.Name
	}
	if update.Color != nil {
		user.Color = *update.Color
	}
	if update.Avatar != nil {
		user.Avatar = update.Avatar
	}
	return *user, true
}

// Leave removes and returns the record. Leaving a never-joined socket id is
// a no-op.
func (ps *PresenceService) Leave(socketId string) (models.User, bool) {
	ps.mu.Lock()
	defer ps.mu.Unlock()

	user, ok := ps.users[socketId]
	if !ok {
		return models.User{}, false
	}
	delete(ps.users, socketId)
	for i, id := range ps.ordered {
		if id == socketId {
			ps.ordered = append(ps.ordered[:i], ps.ordered[i+1:]...)
			break
		}
	}
	return *user, true
}

// ListByBoard returns all live connections joined to the board, in join
// order.
func (ps *PresenceService) ListByBoard(boardId string) []models.User {
	ps.mu.Lock()
	defer ps.mu.Unlock()

	users := make([]models.User, 0)
	for _, socketId := range ps.ordered {
		if user, ok := ps.users[socketId]; ok && user.BoardId == boardId {
			users = append(users, *user)
		}
	}
	return users
}
