package todo

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/cmlabs-hris/teamdesk-backend-go/internal/domain/todo"
	"github.com/cmlabs-hris/teamdesk-backend-go/internal/domain/user"
	"github.com/cmlabs-hris/teamdesk-backend-go/internal/pkg/timezone"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memoryTodoRepository struct {
	items    map[string]todo.Item
	order    []string
	getCalls int
	seq      int
}

func newMemoryTodoRepository(items ...todo.Item) *memoryTodoRepository {
	repo := &memoryTodoRepository{items: map[string]todo.Item{}}
	for _, item := range items {
		repo.items[item.ID] = item
		repo.order = append(repo.order, item.ID)
	}
	return repo
}

func (m *memoryTodoRepository) List(ctx context.Context, filter todo.Filter) ([]todo.Item, error) {
	out := make([]todo.Item, 0, len(m.order))
	for _, id := range m.order {
		if item, ok := m.items[id]; ok {
			out = append(out, item)
		}
	}
	return out, nil
}

func (m *memoryTodoRepository) GetByID(ctx context.Context, id string) (todo.Item, error) {
	m.getCalls++
	item, ok := m.items[id]
	if !ok {
		return todo.Item{}, todo.ErrTodoNotFound
	}
	return item, nil
}

func (m *memoryTodoRepository) Create(ctx context.Context, item todo.Item) (todo.Item, error) {
	m.seq++
	item.ID = fmt.Sprintf("todo-%d", m.seq)
	m.items[item.ID] = item
	m.order = append(m.order, item.ID)
	return item, nil
}

func (m *memoryTodoRepository) Update(ctx context.Context, id string, patch todo.ItemPatch) (todo.Item, error) {
	item, ok := m.items[id]
	if !ok {
		return todo.Item{}, todo.ErrTodoNotFound
	}
	if patch.Title != nil {
		item.Title = *patch.Title
	}
	if patch.Notes != nil {
		item.Notes = patch.Notes
	}
	if patch.Status != nil {
		item.Status = *patch.Status
	}
	if patch.ClearDueDate {
		item.DueDate = nil
	} else if patch.DueDate != nil {
		item.DueDate = patch.DueDate
	}
	if patch.LockedAt != nil {
		item.LockedAt = patch.LockedAt
	}
	m.items[id] = item
	return item, nil
}

func (m *memoryTodoRepository) Delete(ctx context.Context, id string) error {
	if _, ok := m.items[id]; !ok {
		return todo.ErrTodoNotFound
	}
	delete(m.items, id)
	return nil
}

type memoryProjectRepository map[string]todo.Project

func (m memoryProjectRepository) GetByCode(ctx context.Context, code string) (todo.Project, error) {
	p, ok := m[code]
	if !ok || !p.IsActive {
		return todo.Project{}, todo.ErrProjectNotFound
	}
	return p, nil
}

// 2025-09-26 12:00 KST
var noon = time.Date(2025, 9, 26, 3, 0, 0, 0, time.UTC)

// 2025-09-27 09:00 KST
var nextLock = time.Date(2025, 9, 27, 0, 0, 0, 0, time.UTC)

var (
	admin  = user.Actor{ID: "admin-1", Name: "Minseo", Role: user.RoleAdmin}
	member = user.Actor{ID: "u1", Name: "Jiwoo", Role: user.RoleMember}
	guest  = user.Actor{ID: "g1", Name: "Visitor", Role: user.RoleGuest}
)

var projects = memoryProjectRepository{
	"AB12": {ID: "p1", Code: "AB12", Name: "Plant A", IsActive: true},
	"OLD1": {ID: "p9", Code: "OLD1", Name: "Retired", IsActive: false},
}

func civil(y int, m time.Month, d int) *time.Time {
	t := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	return &t
}

func newTestService(t *testing.T, repo *memoryTodoRepository) todo.TodoService {
	t.Helper()
	loc, err := timezone.Load("Asia/Seoul")
	require.NoError(t, err)
	return NewTodoService(repo, projects, timezone.Fixed(noon), loc, todo.DefaultLockHour)
}

func ptr(s string) *string { return &s }

func TestTodoService_Update_LockedForMemberOnly(t *testing.T) {
	past := noon.Add(-time.Hour)
	repo := newMemoryTodoRepository(todo.Item{ID: "t1", AssigneeID: "u1", Title: "Order valves", Status: todo.StatusDesign, LockedAt: &past})
	svc := newTestService(t, repo)

	_, err := svc.Update(context.Background(), member, "t1", todo.UpdateTodoRequest{Notes: ptr("vendor called")})
	assert.ErrorIs(t, err, todo.ErrTodoLocked)
	assert.Nil(t, repo.items["t1"].Notes)

	resp, err := svc.Update(context.Background(), admin, "t1", todo.UpdateTodoRequest{Notes: ptr("vendor called")})
	require.NoError(t, err)
	require.NotNil(t, resp.Notes)
	assert.Equal(t, "vendor called", *resp.Notes)
	require.NotNil(t, resp.LockedAt)
	assert.Equal(t, nextLock, *resp.LockedAt)
	assert.True(t, resp.EditLock.CanEdit)
}

func TestTodoService_Update_RefreshesLockDeadline(t *testing.T) {
	future := noon.Add(time.Hour)
	repo := newMemoryTodoRepository(todo.Item{ID: "t1", AssigneeID: "u1", Title: "Order valves", Status: todo.StatusDesign, LockedAt: &future})
	svc := newTestService(t, repo)

	resp, err := svc.Update(context.Background(), member, "t1", todo.UpdateTodoRequest{Title: ptr("  Order check valves ")})

	require.NoError(t, err)
	assert.Equal(t, "Order check valves", resp.Title)
	assert.Equal(t, nextLock, *repo.items["t1"].LockedAt)
	assert.False(t, resp.EditLock.IsLocked)
}

func TestTodoService_Update_NoDeadlineIsEditable(t *testing.T) {
	repo := newMemoryTodoRepository(todo.Item{ID: "t1", AssigneeID: "u1", Title: "Legacy", Status: todo.StatusHold})
	svc := newTestService(t, repo)

	_, err := svc.Update(context.Background(), member, "t1", todo.UpdateTodoRequest{DueDate: ptr("")})

	assert.NoError(t, err)
}

func TestTodoService_Update_RejectsBeforeStore(t *testing.T) {
	repo := newMemoryTodoRepository(todo.Item{ID: "t1", AssigneeID: "u1", Title: "Order valves"})
	svc := newTestService(t, repo)
	ctx := context.Background()

	_, err := svc.Update(ctx, member, "t1", todo.UpdateTodoRequest{})
	assert.ErrorIs(t, err, todo.ErrEmptyUpdate)

	_, err = svc.Update(ctx, member, "t1", todo.UpdateTodoRequest{Status: ptr("done")})
	assert.Error(t, err)

	_, err = svc.Update(ctx, guest, "t1", todo.UpdateTodoRequest{Notes: ptr("x")})
	assert.ErrorIs(t, err, user.ErrRoleNotAllowed)

	assert.Equal(t, 0, repo.getCalls)
}

func TestTodoService_Update_Ownership(t *testing.T) {
	repo := newMemoryTodoRepository(todo.Item{ID: "t2", AssigneeID: "u2", Title: "Draw layout"})
	svc := newTestService(t, repo)

	_, err := svc.Update(context.Background(), member, "t2", todo.UpdateTodoRequest{Notes: ptr("x")})
	assert.ErrorIs(t, err, todo.ErrNotAssignee)

	_, err = svc.Update(context.Background(), member, "missing", todo.UpdateTodoRequest{Notes: ptr("x")})
	assert.ErrorIs(t, err, todo.ErrTodoNotFound)
}

func TestTodoService_UpdateStatus(t *testing.T) {
	past := noon.Add(-time.Minute)
	repo := newMemoryTodoRepository(
		todo.Item{ID: "t1", AssigneeID: "u1", Title: "Order valves", Status: todo.StatusDesign},
		todo.Item{ID: "t2", AssigneeID: "u1", Title: "Receive parts", Status: todo.StatusPOPlaced, LockedAt: &past},
	)
	svc := newTestService(t, repo)

	resp, err := svc.UpdateStatus(context.Background(), member, "t1", todo.UpdateStatusRequest{Status: "po_placed"})
	require.NoError(t, err)
	assert.Equal(t, todo.StatusPOPlaced, resp.Status)
	assert.Equal(t, "PO placed", resp.StatusLabel)

	_, err = svc.UpdateStatus(context.Background(), member, "t2", todo.UpdateStatusRequest{Status: "incoming"})
	assert.ErrorIs(t, err, todo.ErrTodoLocked)
}

func TestTodoService_Create(t *testing.T) {
	repo := newMemoryTodoRepository()
	svc := newTestService(t, repo)

	resp, err := svc.Create(context.Background(), member, todo.CreateTodoRequest{
		ProjectCode: "AB12",
		Title:       " Order valves ",
		DueDate:     ptr("2025-09-30"),
	})

	require.NoError(t, err)
	assert.Equal(t, "Order valves", resp.Title)
	assert.Equal(t, "u1", resp.AssigneeID)
	assert.Equal(t, "p1", resp.ProjectID)
	assert.Equal(t, todo.StatusPrework, resp.Status)
	require.NotNil(t, resp.DueDate)
	assert.Equal(t, "2025-09-30", *resp.DueDate)
	require.NotNil(t, resp.LockedAt)
	assert.Equal(t, nextLock, *resp.LockedAt)
}

func TestTodoService_Create_Assignment(t *testing.T) {
	svc := newTestService(t, newMemoryTodoRepository())
	req := todo.CreateTodoRequest{ProjectCode: "AB12", Title: "Draw layout", AssigneeID: ptr("u2")}

	_, err := svc.Create(context.Background(), member, req)
	assert.ErrorIs(t, err, todo.ErrAssignNotAllowed)

	resp, err := svc.Create(context.Background(), admin, req)
	require.NoError(t, err)
	assert.Equal(t, "u2", resp.AssigneeID)

	req.AssigneeID = ptr("u1")
	resp, err = svc.Create(context.Background(), member, req)
	require.NoError(t, err)
	assert.Equal(t, "u1", resp.AssigneeID)
}

func TestTodoService_Create_Rejections(t *testing.T) {
	svc := newTestService(t, newMemoryTodoRepository())
	ctx := context.Background()

	_, err := svc.Create(ctx, member, todo.CreateTodoRequest{ProjectCode: "OLD1", Title: "x"})
	assert.ErrorIs(t, err, todo.ErrProjectNotFound)

	_, err = svc.Create(ctx, member, todo.CreateTodoRequest{ProjectCode: "NOPE", Title: "x"})
	assert.ErrorIs(t, err, todo.ErrProjectNotFound)

	_, err = svc.Create(ctx, guest, todo.CreateTodoRequest{ProjectCode: "AB12", Title: "x"})
	assert.ErrorIs(t, err, user.ErrRoleNotAllowed)
}

func TestTodoService_List_MemberSeesOwnByPriority(t *testing.T) {
	repo := newMemoryTodoRepository(
		todo.Item{ID: "a", AssigneeID: "u1", Title: "Hold item", Status: todo.StatusHold},
		todo.Item{ID: "b", AssigneeID: "u2", Title: "Someone else", Status: todo.StatusPOPlaced, DueDate: civil(2025, 9, 20)},
		todo.Item{ID: "c", AssigneeID: "u1", Title: "Overdue order", Status: todo.StatusPOPlaced, DueDate: civil(2025, 9, 25)},
		todo.Item{ID: "d", AssigneeID: "u1", Title: "Layout", Status: todo.StatusDesign, DueDate: civil(2025, 9, 26)},
	)
	svc := newTestService(t, repo)

	resp, err := svc.List(context.Background(), member, todo.Filter{AssigneeIDs: []string{"u2"}})
	require.NoError(t, err)

	var ids []string
	for _, item := range resp.Todos {
		ids = append(ids, item.ID)
	}
	assert.Equal(t, []string{"c", "d", "a"}, ids)
	assert.Equal(t, 3, resp.Total)

	resp, err = svc.List(context.Background(), admin, todo.Filter{})
	require.NoError(t, err)
	assert.Equal(t, 4, resp.Total)
}

func TestTodoService_Board(t *testing.T) {
	repo := newMemoryTodoRepository(
		todo.Item{ID: "a", AssigneeID: "u1", Title: "Layout", Status: todo.StatusDesign, DueDate: civil(2025, 9, 26)},
		todo.Item{ID: "b", AssigneeID: "u1", Title: "Order", Status: todo.StatusPOPlaced, DueDate: civil(2025, 9, 25)},
	)
	svc := newTestService(t, repo)

	board, err := svc.Board(context.Background(), member, todo.Filter{})

	require.NoError(t, err)
	assert.Equal(t, "2025-09-26", board.Date)
	assert.Len(t, board.Columns, len(todo.StatusOrder))
	assert.Equal(t, 1, board.Stats.DueToday)
	assert.Equal(t, 1, board.Stats.Overdue)

	_, err = svc.Board(context.Background(), guest, todo.Filter{})
	assert.ErrorIs(t, err, user.ErrRoleNotAllowed)
}

func TestTodoService_Delete(t *testing.T) {
	repo := newMemoryTodoRepository(todo.Item{ID: "t1", AssigneeID: "u1", Title: "Order valves"})
	svc := newTestService(t, repo)

	err := svc.Delete(context.Background(), member, "t1")
	assert.ErrorIs(t, err, todo.ErrDeleteNotAllowed)

	require.NoError(t, svc.Delete(context.Background(), admin, "t1"))
	assert.Empty(t, repo.items)

	err = svc.Delete(context.Background(), admin, "t1")
	assert.ErrorIs(t, err, todo.ErrTodoNotFound)
}

func TestTodoService_Get(t *testing.T) {
	repo := newMemoryTodoRepository(
		todo.Item{ID: "t1", AssigneeID: "u1", Title: "Mine"},
		todo.Item{ID: "t2", AssigneeID: "u2", Title: "Theirs"},
	)
	svc := newTestService(t, repo)

	resp, err := svc.Get(context.Background(), member, "t1")
	require.NoError(t, err)
	assert.Equal(t, "Mine", resp.Title)

	_, err = svc.Get(context.Background(), member, "t2")
	assert.ErrorIs(t, err, todo.ErrNotAssignee)

	_, err = svc.Get(context.Background(), admin, "t2")
	assert.NoError(t, err)
}
