package services

import (
	"retroBoard/internal/errs"
	"retroBoard/internal/models"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
)

const (
	templateSectionWidth       = 250.0
	templateSectionHeight      = 150.0
	templateSectionStroke      = "#333"
	templateSectionStrokeWidth = 2.0
	templateSectionFontSize    = 16.0

	defaultBackground = "#ffffff"

	systemUserId = "system"
)

// boardEntry pairs a board with its own mutex so that mutations on one
// board never block mutations on another.
type boardEntry struct {
	mu    sync.Mutex
	board *models.Board
}

// BoardService owns every board and its object list. All mutating methods
// hold the board's lock for their full duration, so concurrent edits to the
// same board serialize and never observe a partial update.
type BoardService struct {
	mu     sync.RWMutex
	boards map[string]*boardEntry
	// Board ids in creation order, for stable summary ordering on ties.
	ordered []string
}

func NewBoardService() *BoardService {
	return &BoardService{
		boards: make(map[string]*boardEntry),
	}
}

// CreateBoard builds a new board with a fresh id. If a template is given,
// the board is seeded with one rectangle per template section.
func (bs *BoardService) CreateBoard(name *string, template *models.BoardTemplate) models.Board {
	board := newBoard(uuid.NewString(), name)
	if template != nil && len(template.Sections) > 0 {
		board.Objects = buildTemplateObjects(template.Sections)
	}

	bs.mu.Lock()
	entry := &boardEntry{board: board}
	bs.boards[board.Id] = entry
	bs.ordered = append(bs.ordered, board.Id)
	bs.mu.Unlock()

	return snapshotBoard(board)
}

// GetOrCreate returns the board, lazily creating an empty one bound to the
// given id so deep links to not-yet-created boards work. The second call
// with the same id is a plain read.
func (bs *BoardService) GetOrCreate(boardId string) models.Board {
	entry := bs.getOrCreateEntry(boardId)
	entry.mu.Lock()
	defer entry.mu.Unlock()
	return snapshotBoard(entry.board)
}

// AddObject assigns a fresh object id, stamps creation metadata, applies
// the profile-color defaulting rule and appends the object front-most.
func (bs *BoardService) AddObject(boardId string, object models.CanvasObject, user *models.User) models.CanvasObject {
	entry := bs.getOrCreateEntry(boardId)
	entry.mu.Lock()
	defer entry.mu.Unlock()

	now := time.Now()
	object.Id = uuid.NewString()
	object.CreatedBy = user.Id
	object.CreatedAt = now
	object.LastModifiedBy = nil
	object.LastModified = nil

	switch object.Type {
	case models.OBJECT_TYPE_LINE, models.OBJECT_TYPE_IMAGE, models.OBJECT_TYPE_VIDEO:
		// Colors pass through unchanged for lines and media.
	default:
		if object.Fill == nil {
			fill := user.Color
			object.Fill = &fill
		}
		if object.Stroke == nil {
			stroke := user.Color
			object.Stroke = &stroke
		}
	}

	entry.board.Objects = append(entry.board.Objects, object)
	entry.board.LastModified = now
	return object
}

// UpdateObject shallow-merges the set fields of updates into the object and
// stamps modification metadata. The z-order is unchanged.
func (bs *BoardService) UpdateObject(boardId string, objectId string, updates models.ObjectUpdate, user *models.User) (models.CanvasObject, error) {
	entry, ok := bs.getEntry(boardId)
	if !ok {
		return models.CanvasObject{}, errs.ErrBoardNotFound
	}
	entry.mu.Lock()
	defer entry.mu.Unlock()

	index := indexOfObject(entry.board.Objects, objectId)
	if index == -1 {
		return models.CanvasObject{}, errs.ErrObjectNotFound
	}

	object := &entry.board.Objects[index]
	updates.ApplyTo(object)

	now := time.Now()
	modifiedBy := user.Id
	object.LastModifiedBy = &modifiedBy
	object.LastModified = &now
	entry.board.LastModified = now
	return *object, nil
}

// DeleteObject removes the object by id. Remaining z-order is unaffected.
func (bs *BoardService) DeleteObject(boardId string, objectId string) (models.CanvasObject, error) {
	entry, ok := bs.getEntry(boardId)
	if !ok {
		return models.CanvasObject{}, errs.ErrBoardNotFound
	}
	entry.mu.Lock()
	defer entry.mu.Unlock()

	index := indexOfObject(entry.board.Objects, objectId)
	if index == -1 {
		return models.CanvasObject{}, errs.ErrObjectNotFound
	}

	deleted := entry.board.Objects[index]
	entry.board.Objects = append(entry.board.Objects[:index], entry.board.Objects[index+1:]...)
	entry.board.LastModified = time.Now()
	return deleted, nil
}

// SendToBack moves the object to z-order index 0, preserving the relative
// order of all other objects.
func (bs *BoardService) SendToBack(boardId string, objectId string) bool {
	entry, ok := bs.getEntry(boardId)
	if !ok {
		return false
	}
	entry.mu.Lock()
	defer entry.mu.Unlock()

	objects := entry.board.Objects
	index := indexOfObject(objects, objectId)
	if index == -1 {
		return false
	}
	if index > 0 {
		reordered := make([]models.CanvasObject, 0, len(objects))
		reordered = append(reordered, objects[index])
		reordered = append(reordered, objects[:index]...)
		reordered = append(reordered, objects[index+1:]...)
		entry.board.Objects = reordered
	}
	entry.board.LastModified = time.Now()
	return true
}

// ClearObjects empties the board's object list. The board itself persists.
func (bs *BoardService) ClearObjects(boardId string) {
	entry, ok := bs.getEntry(boardId)
	if !ok {
		return
	}
	entry.mu.Lock()
	defer entry.mu.Unlock()
	entry.board.Objects = []models.CanvasObject{}
	entry.board.LastModified = time.Now()
}

// DeleteBoard removes the board entirely and returns its final state.
func (bs *BoardService) DeleteBoard(boardId string) (models.Board, error) {
	bs.mu.Lock()
	entry, ok := bs.boards[boardId]
	if ok {
		delete(bs.boards, boardId)
		for i, id := range bs.ordered {
			if id == boardId {
				bs.ordered = append(bs.ordered[:i], bs.ordered[i+1:]...)
				break
			}
		}
	}
	bs.mu.Unlock()

	if !ok {
		return models.Board{}, errs.ErrBoardNotFound
	}
	entry.mu.Lock()
	defer entry.mu.Unlock()
	return snapshotBoard(entry.board), nil
}

// ListSummaries returns all boards, most recently modified first. Ties keep
// creation order.
func (bs *BoardService) ListSummaries() []models.BoardSummary {
	bs.mu.RLock()
	entries := make([]*boardEntry, 0, len(bs.ordered))
	for _, boardId := range bs.ordered {
		entries = append(entries, bs.boards[boardId])
	}
	bs.mu.RUnlock()

	summaries := make([]models.BoardSummary, 0, len(entries))
	for _, entry := range entries {
		entry.mu.Lock()
		summaries = append(summaries, models.BoardSummary{
			Id:           entry.board.Id,
			Name:         entry.board.Name,
			LastModified: entry.board.LastModified,
			ObjectCount:  len(entry.board.Objects),
			CreatedAt:    entry.board.CreatedAt,
		})
		entry.mu.Unlock()
	}

	sort.SliceStable(summaries, func(i, j int) bool {
		return summaries[i].LastModified.After(summaries[j].LastModified)
	})
	return summaries
}

func (bs *BoardService) getEntry(boardId string) (*boardEntry, bool) {
	bs.mu.RLock()
	defer bs.mu.RUnlock()
	entry, ok := bs.boards[boardId]
	return entry, ok
}

func (bs *BoardService) getOrCreateEntry(boardId string) *boardEntry {
	bs.mu.RLock()
	entry, ok := bs.boards[boardId]
	bs.mu.RUnlock()
	if ok {
		return entry
	}

	bs.mu.Lock()
	defer bs.mu.Unlock()
	if entry, ok := bs.boards[boardId]; ok {
		return entry
	}
	entry = &boardEntry{board: newBoard(boardId, nil)}
	bs.boards[boardId] = entry
	bs.ordered = append(bs.ordered, boardId)
	return entry
}

func newBoard(boardId string, name *string) *models.Board {
	boardName := "Board " + shortId(boardId)
	if name != nil && *name != "" {
		boardName = *name
	}
	now := time.Now()
	return &models.Board{
		Id:           boardId,
		Name:         boardName,
		Objects:      []models.CanvasObject{},
		Background:   defaultBackground,
		CreatedAt:    now,
		LastModified: now,
	}
}

func buildTemplateObjects(sections []models.TemplateSection) []models.CanvasObject {
	now := time.Now()
	objects := make([]models.CanvasObject, 0, len(sections))
	for _, section := range sections {
		width := templateSectionWidth
		height := templateSectionHeight
		fill := section.Color
		stroke := templateSectionStroke
		strokeWidth := templateSectionStrokeWidth
		text := section.Title
		fontSize := templateSectionFontSize
		objects = append(objects, models.CanvasObject{
			Id:          uuid.NewString(),
			Type:        models.OBJECT_TYPE_RECTANGLE,
			X:           section.X,
			Y:           section.Y,
			Width:       &width,
			Height:      &height,
			Fill:        &fill,
			Stroke:      &stroke,
			StrokeWidth: &strokeWidth,
			Text:        &text,
			FontSize:    &fontSize,
			CreatedBy:   systemUserId,
			CreatedAt:   now,
		})
	}
	return objects
}

// snapshotBoard copies the board and its object list so callers can marshal
// the result without holding the board lock.
func snapshotBoard(board *models.Board) models.Board {
	snapshot := *board
	snapshot.Objects = make([]models.CanvasObject, len(board.Objects))
	copy(snapshot.Objects, board.Objects)
	return snapshot
}

func indexOfObject(objects []models.CanvasObject, objectId string) int {
	for i, object := range objects {
		if object.Id == objectId {
			return i
		}
	}
	return -1
}

func shortId(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
