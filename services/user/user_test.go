package user

import (
	"errors"
	"testing"

	"medibook/models"
	"medibook/utils"
)

type fakeUserRepo struct {
	users map[string]*models.User
}

func newFakeUserRepo(seed ...models.User) *fakeUserRepo {
	r := &fakeUserRepo{users: make(map[string]*models.User)}
	for _, u := range seed {
		stored := u
		r.users[u.Email] = &stored
	}
	return r
}

func (r *fakeUserRepo) Upsert(u *models.User) error {
	if existing, ok := r.users[u.Email]; ok {
		existing.Name = u.Name
		return nil
	}
	stored := *u
	stored.Role = models.RoleUser
	r.users[u.Email] = &stored
	return nil
}

func (r *fakeUserRepo) GetByEmail(email string) (*models.User, error) {
	if u, ok := r.users[email]; ok {
		copied := *u
		return &copied, nil
	}
	return nil, nil
}

func (r *fakeUserRepo) GetAll() ([]models.User, error) {
	var out []models.User
	for _, u := range r.users {
		out = append(out, *u)
	}
	return out, nil
}

func (r *fakeUserRepo) SetRole(email, role string) (bool, error) {
	u, ok := r.users[email]
	if !ok {
		return false, nil
	}
	u.Role = role
	return true, nil
}

func TestUpsertUserCreatesAccountAndIssuesToken(t *testing.T) {
	svc := &DefaultUserService{Repo: newFakeUserRepo()}

	stored, token, err := svc.UpsertUser(models.User{Email: "a@x.com", Name: "Alice"})
	if err != nil {
		t.Fatalf("UpsertUser error: %v", err)
	}
	if stored.Role != models.RoleUser {
		t.Errorf("role = %q, want default %q", stored.Role, models.RoleUser)
	}

	claimed, err := utils.ExtractEmailFromToken(token)
	if err != nil {
		t.Fatalf("issued token does not validate: %v", err)
	}
	if claimed != "a@x.com" {
		t.Errorf("token email = %q, want a@x.com", claimed)
	}
}

func TestUpsertUserRequiresEmail(t *testing.T) {
	svc := &DefaultUserService{Repo: newFakeUserRepo()}

	if _, _, err := svc.UpsertUser(models.User{Name: "No Email"}); err == nil {
		t.Fatal("expected an error for missing email")
	}
}

func TestPromoteToAdminByNonAdminIsForbidden(t *testing.T) {
	repo := newFakeUserRepo(
		models.User{Email: "plain@x.com", Role: models.RoleUser},
		models.User{Email: "target@x.com", Role: models.RoleUser},
	)
	svc := &DefaultUserService{Repo: repo}

	err := svc.PromoteToAdmin("plain@x.com", "target@x.com")
	if !errors.Is(err, ErrForbidden) {
		t.Fatalf("err = %v, want ErrForbidden", err)
	}

	target, _ := repo.GetByEmail("target@x.com")
	if target.Role != models.RoleUser {
		t.Errorf("target role changed to %q; must stay %q", target.Role, models.RoleUser)
	}
}

func TestPromoteToAdminByAdmin(t *testing.T) {
	repo := newFakeUserRepo(
		models.User{Email: "boss@x.com", Role: models.RoleAdmin},
		models.User{Email: "target@x.com", Role: models.RoleUser},
	)
	svc := &DefaultUserService{Repo: repo}

	if err := svc.PromoteToAdmin("boss@x.com", "target@x.com"); err != nil {
		t.Fatalf("PromoteToAdmin error: %v", err)
	}

	target, _ := repo.GetByEmail("target@x.com")
	if target.Role != models.RoleAdmin {
		t.Errorf("target role = %q, want %q", target.Role, models.RoleAdmin)
	}

	isAdmin, err := svc.IsAdmin("target@x.com")
	if err != nil || !isAdmin {
		t.Errorf("IsAdmin = %v, %v; want true", isAdmin, err)
	}
}

func TestPromoteToAdminUnknownTarget(t *testing.T) {
	repo := newFakeUserRepo(models.User{Email: "boss@x.com", Role: models.RoleAdmin})
	svc := &DefaultUserService{Repo: repo}

	if err := svc.PromoteToAdmin("boss@x.com", "ghost@x.com"); !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("err = %v, want ErrUserNotFound", err)
	}
}

func TestIsAdminForUnknownEmail(t *testing.T) {
	svc := &DefaultUserService{Repo: newFakeUserRepo()}

	isAdmin, err := svc.IsAdmin("ghost@x.com")
	if err != nil {
		t.Fatalf("IsAdmin error: %v", err)
	}
	if isAdmin {
		t.Error("unknown accounts must not be admins")
	}
}
