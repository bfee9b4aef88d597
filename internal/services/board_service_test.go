package services

import (
	"fmt"
	"retroBoard/internal/errs"
	"retroBoard/internal/models"
	"sync"
	"testing"
	"time"
)

func testUser(id string, color string) *models.User {
	return &models.User{
		Id:       id,
		Name:     "User " + id,
		Color:    color,
		SocketId: "socket-" + id,
		BoardId:  "b1",
		JoinedAt: time.Now(),
	}
}

func TestAddObjectAssignsUniqueIds(t *testing.T) {
	bs := NewBoardService()
	user := testUser("u1", "#ABC")

	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		object := bs.AddObject("b1", models.CanvasObject{Type: models.OBJECT_TYPE_RECTANGLE}, user)
		if object.Id == "" {
			t.Fatalf("expected object id to be assigned")
		}
		if seen[object.Id] {
			t.Fatalf("duplicate object id %s", object.Id)
		}
		seen[object.Id] = true
	}

	board := bs.GetOrCreate("b1")
	if len(board.Objects) != 100 {
		t.Fatalf("expected 100 objects, got %d", len(board.Objects))
	}
}

func TestAddObjectColorDefaulting(t *testing.T) {
	bs := NewBoardService()
	user := testUser("u1", "#ABC")

	shape := bs.AddObject("b1", models.CanvasObject{Type: models.OBJECT_TYPE_RECTANGLE}, user)
	if shape.Fill == nil || *shape.Fill != "#ABC" {
		t.Fatalf("expected rectangle fill to default to user color, got %v", shape.Fill)
	}
	if shape.Stroke == nil || *shape.Stroke != "#ABC" {
		t.Fatalf("expected rectangle stroke to default to user color, got %v", shape.Stroke)
	}

	image := bs.AddObject("b1", models.CanvasObject{Type: models.OBJECT_TYPE_IMAGE}, user)
	if image.Fill != nil {
		t.Fatalf("expected image fill to stay unset, got %v", *image.Fill)
	}

	explicit := "#123456"
	circle := bs.AddObject("b1", models.CanvasObject{Type: models.OBJECT_TYPE_CIRCLE, Fill: &explicit}, user)
	if circle.Fill == nil || *circle.Fill != explicit {
		t.Fatalf("expected explicit fill to be preserved, got %v", circle.Fill)
	}

	line := bs.AddObject("b1", models.CanvasObject{Type: models.OBJECT_TYPE_LINE, Points: []float64{0, 0, 10, 10}}, user)
	if line.Fill != nil {
		t.Fatalf("expected line fill to stay unset, got %v", *line.Fill)
	}
}

func TestAddObjectStampsCreationMetadata(t *testing.T) {
	bs := NewBoardService()
	user := testUser("u1", "#ABC")

	object := bs.AddObject("b1", models.CanvasObject{Type: models.OBJECT_TYPE_RECTANGLE}, user)
	if object.CreatedBy != "u1" {
		t.Fatalf("expected createdBy u1, got %s", object.CreatedBy)
	}
	if object.CreatedAt.IsZero() {
		t.Fatalf("expected createdAt to be stamped")
	}
	if object.LastModifiedBy != nil || object.LastModified != nil {
		t.Fatalf("expected modification metadata to be empty on creation")
	}
}

func TestUpdateObjectShallowMerge(t *testing.T) {
	bs := NewBoardService()
	user := testUser("u1", "#ABC")

	width := 30.0
	object := bs.AddObject("b1", models.CanvasObject{
		Type:  models.OBJECT_TYPE_RECTANGLE,
		X:     1,
		Y:     2,
		Width: &width,
	}, user)

	x := 5.0
	first, err := bs.UpdateObject("b1", object.Id, models.ObjectUpdate{X: &x}, user)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := bs.UpdateObject("b1", object.Id, models.ObjectUpdate{X: &x}, user)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if first.X != 5 || second.X != 5 {
		t.Fatalf("expected x=5 after both updates, got %v then %v", first.X, second.X)
	}
	if second.Y != 2 {
		t.Fatalf("expected omitted y to be retained, got %v", second.Y)
	}
	if second.Width == nil || *second.Width != 30 {
		t.Fatalf("expected omitted width to be retained, got %v", second.Width)
	}
	if second.Fill == nil || *second.Fill != "#ABC" {
		t.Fatalf("expected omitted fill to be retained, got %v", second.Fill)
	}
	if second.LastModifiedBy == nil || *second.LastModifiedBy != "u1" {
		t.Fatalf("expected lastModifiedBy to be stamped")
	}
}

func TestUpdateObjectNotFound(t *testing.T) {
	bs := NewBoardService()
	user := testUser("u1", "#ABC")
	bs.GetOrCreate("b1")

	if _, err := bs.UpdateObject("b1", "missing", models.ObjectUpdate{}, user); err != errs.ErrObjectNotFound {
		t.Fatalf("expected ErrObjectNotFound, got %v", err)
	}
	if _, err := bs.UpdateObject("missing", "missing", models.ObjectUpdate{}, user); err != errs.ErrBoardNotFound {
		t.Fatalf("expected ErrBoardNotFound, got %v", err)
	}
}

func TestDeleteObjectKeepsOrder(t *testing.T) {
	bs := NewBoardService()
	user := testUser("u1", "#ABC")

	var ids []string
	for i := 0; i < 4; i++ {
		object := bs.AddObject("b1", models.CanvasObject{Type: models.OBJECT_TYPE_RECTANGLE}, user)
		ids = append(ids, object.Id)
	}

	deleted, err := bs.DeleteObject("b1", ids[1])
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if deleted.Id != ids[1] {
		t.Fatalf("expected deleted object %s, got %s", ids[1], deleted.Id)
	}

	board := bs.GetOrCreate("b1")
	want := []string{ids[0], ids[2], ids[3]}
	if len(board.Objects) != len(want) {
		t.Fatalf("expected %d objects, got %d", len(want), len(board.Objects))
	}
	for i, id := range want {
		if board.Objects[i].Id != id {
			t.Fatalf("expected object %s at index %d, got %s", id, i, board.Objects[i].Id)
		}
	}

	if _, err := bs.DeleteObject("b1", "missing"); err != errs.ErrObjectNotFound {
		t.Fatalf("expected ErrObjectNotFound, got %v", err)
	}
}

func TestSendToBackPreservesRelativeOrder(t *testing.T) {
	bs := NewBoardService()
	user := testUser("u1", "#ABC")

	var ids []string
	for i := 0; i < 4; i++ {
		object := bs.AddObject("b1", models.CanvasObject{Type: models.OBJECT_TYPE_RECTANGLE}, user)
		ids = append(ids, object.Id)
	}

	if !bs.SendToBack("b1", ids[2]) {
		t.Fatalf("expected SendToBack to succeed")
	}

	board := bs.GetOrCreate("b1")
	want := []string{ids[2], ids[0], ids[1], ids[3]}
	for i, id := range want {
		if board.Objects[i].Id != id {
			t.Fatalf("expected object %s at index %d, got %s", id, i, board.Objects[i].Id)
		}
	}

	if bs.SendToBack("b1", "missing") {
		t.Fatalf("expected SendToBack on unknown object to fail")
	}
	if bs.SendToBack("missing", ids[0]) {
		t.Fatalf("expected SendToBack on unknown board to fail")
	}
}

func TestClearObjectsKeepsBoard(t *testing.T) {
	bs := NewBoardService()
	user := testUser("u1", "#ABC")

	bs.AddObject("b1", models.CanvasObject{Type: models.OBJECT_TYPE_RECTANGLE}, user)
	bs.ClearObjects("b1")

	board := bs.GetOrCreate("b1")
	if len(board.Objects) != 0 {
		t.Fatalf("expected no objects after clear, got %d", len(board.Objects))
	}
	if len(bs.ListSummaries()) != 1 {
		t.Fatalf("expected board to survive clear")
	}
}

func TestGetOrCreateIsLazyAndIdempotent(t *testing.T) {
	bs := NewBoardService()

	first := bs.GetOrCreate("unknown-id")
	second := bs.GetOrCreate("unknown-id")

	if first.Id != "unknown-id" || second.Id != "unknown-id" {
		t.Fatalf("expected boards bound to the requested id")
	}
	if first.Name != "Board unknown-" {
		t.Fatalf("unexpected default name %q", first.Name)
	}
	if len(bs.ListSummaries()) != 1 {
		t.Fatalf("expected a single board after two GetOrCreate calls")
	}
}

func TestCreateBoardFromTemplate(t *testing.T) {
	bs := NewBoardService()

	name := "Retro"
	board := bs.CreateBoard(&name, &models.BoardTemplate{
		Sections: []models.TemplateSection{
			{Title: "What went well?", Color: "#4ECDC4", X: 100, Y: 100},
			{Title: "What to improve?", Color: "#FF6B6B", X: 400, Y: 100},
		},
	})

	if board.Name != "Retro" {
		t.Fatalf("expected board name Retro, got %s", board.Name)
	}
	if len(board.Objects) != 2 {
		t.Fatalf("expected 2 template objects, got %d", len(board.Objects))
	}
	for i, object := range board.Objects {
		if object.Type != models.OBJECT_TYPE_RECTANGLE {
			t.Fatalf("expected template object %d to be a rectangle", i)
		}
		if *object.Width != 250 || *object.Height != 150 {
			t.Fatalf("expected 250x150 section, got %vx%v", *object.Width, *object.Height)
		}
		if object.CreatedBy != "system" {
			t.Fatalf("expected template objects to be created by system")
		}
	}
	if *board.Objects[0].Fill != "#4ECDC4" || *board.Objects[0].Text != "What went well?" {
		t.Fatalf("expected section color and title on the seeded rectangle")
	}
}

func TestDeleteBoard(t *testing.T) {
	bs := NewBoardService()
	user := testUser("u1", "#ABC")
	bs.AddObject("b1", models.CanvasObject{Type: models.OBJECT_TYPE_RECTANGLE}, user)

	board, err := bs.DeleteBoard("b1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if board.Id != "b1" || len(board.Objects) != 1 {
		t.Fatalf("expected final board state to be returned")
	}
	if len(bs.ListSummaries()) != 0 {
		t.Fatalf("expected no boards after delete")
	}

	if _, err := bs.DeleteBoard("b1"); err != errs.ErrBoardNotFound {
		t.Fatalf("expected ErrBoardNotFound, got %v", err)
	}
}

func TestListSummariesOrdersByLastModified(t *testing.T) {
	bs := NewBoardService()
	user := testUser("u1", "#ABC")

	bs.GetOrCreate("first")
	time.Sleep(5 * time.Millisecond)
	bs.GetOrCreate("second")
	time.Sleep(5 * time.Millisecond)
	bs.AddObject("first", models.CanvasObject{Type: models.OBJECT_TYPE_RECTANGLE}, user)

	summaries := bs.ListSummaries()
	if len(summaries) != 2 {
		t.Fatalf("expected 2 summaries, got %d", len(summaries))
	}
	if summaries[0].Id != "first" || summaries[1].Id != "second" {
		t.Fatalf("expected most recently modified board first, got %v", summaries)
	}
	if summaries[0].ObjectCount != 1 {
		t.Fatalf("expected object count 1, got %d", summaries[0].ObjectCount)
	}
}

func TestConcurrentAddsOnSeparateBoardsDoNotInterfere(t *testing.T) {
	bs := NewBoardService()

	const adds = 50
	const boards = 4
	var wg sync.WaitGroup
	for b := 0; b < boards; b++ {
		boardId := fmt.Sprintf("board-%d", b)
		for i := 0; i < adds; i++ {
			wg.Add(1)
			go func(boardId string, i int) {
				defer wg.Done()
				user := testUser(fmt.Sprintf("u%d", i), "#ABC")
				bs.AddObject(boardId, models.CanvasObject{Type: models.OBJECT_TYPE_CIRCLE}, user)
			}(boardId, i)
		}
	}
	wg.Wait()

	for b := 0; b < boards; b++ {
		board := bs.GetOrCreate(fmt.Sprintf("board-%d", b))
		if len(board.Objects) != adds {
			t.Fatalf("board %d lost updates: expected %d objects, got %d", b, adds, len(board.Objects))
		}
	}
}
