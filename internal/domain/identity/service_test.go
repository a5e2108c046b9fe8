package identity

import (
	"context"
	"testing"
	"time"
)

type mockRepo struct {
	users  map[int64]*User
	nextID int64
}

func newMockRepo() *mockRepo {
	return &mockRepo{users: make(map[int64]*User), nextID: 1}
}

func (m *mockRepo) Create(_ context.Context, u *User) error {
	u.ID = m.nextID
	m.nextID++
	u.CreatedAt = time.Now()
	cp := *u
	m.users[u.ID] = &cp
	return nil
}

func (m *mockRepo) ListByRole(_ context.Context, role string, limit, offset int) ([]*User, int, error) {
	var all []*User
	for id := int64(1); id < m.nextID; id++ {
		if u, ok := m.users[id]; ok && u.Role == role {
			all = append(all, u)
		}
	}
	total := len(all)
	if offset >= total {
		return nil, total, nil
	}
	end := offset + limit
	if end > total {
		end = total
	}
	return all[offset:end], total, nil
}

func TestRegister_NormalizesEmail(t *testing.T) {
	svc := NewService(newMockRepo())
	u := &User{Name: "Dr. Rao", Email: "Rao@Example.COM", Role: RoleDoctor}
	if err := svc.Register(context.Background(), u); err != nil {
		t.Fatalf("register: %v", err)
	}
	if u.Email != "rao@example.com" {
		t.Errorf("expected lowercased email, got %s", u.Email)
	}
	if u.ID == 0 {
		t.Error("expected id to be assigned")
	}
}

func TestRegister_Validation(t *testing.T) {
	svc := NewService(newMockRepo())
	tests := []struct {
		name string
		u    User
	}{
		{"missing name", User{Email: "a@b.c", Role: RolePatient}},
		{"missing email", User{Name: "A", Role: RolePatient}},
		{"unknown role", User{Name: "A", Email: "a@b.c", Role: "admin"}},
	}
	for _, tt := range tests {
		if err := svc.Register(context.Background(), &tt.u); err == nil {
			t.Errorf("%s: expected error", tt.name)
		}
	}
}

func TestListDoctors_FiltersRole(t *testing.T) {
	repo := newMockRepo()
	svc := NewService(repo)
	ctx := context.Background()

	svc.Register(ctx, &User{Name: "P1", Email: "p1@x.y", Role: RolePatient})
	svc.Register(ctx, &User{Name: "D1", Email: "d1@x.y", Role: RoleDoctor})
	svc.Register(ctx, &User{Name: "D2", Email: "d2@x.y", Role: RoleDoctor})

	items, total, err := svc.ListDoctors(ctx, 10, 0)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if total != 2 || len(items) != 2 {
		t.Fatalf("expected 2 doctors, got total %d len %d", total, len(items))
	}
	if items[0].Name != "D1" || items[1].Name != "D2" {
		t.Errorf("expected registration order, got %s %s", items[0].Name, items[1].Name)
	}
}
