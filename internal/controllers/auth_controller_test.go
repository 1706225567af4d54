package controllers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"civicfix/internal/models"
	"civicfix/internal/repository"
)

// mockUserStore is an in-memory UserStore with the repository's conflict and
// not-found semantics.
type mockUserStore struct {
	byEmail map[string]*models.User
	byID    map[uint]*models.User
	nextID  uint
}

func newMockUserStore() *mockUserStore {
	return &mockUserStore{
		byEmail: make(map[string]*models.User),
		byID:    make(map[uint]*models.User),
		nextID:  1,
	}
}

func (m *mockUserStore) CreateUser(email, passwordHash, displayName string) (*models.User, error) {
	if _, ok := m.byEmail[email]; ok {
		return nil, fmt.Errorf("%w: email already registered", repository.ErrConflict)
	}
	now := time.Now()
	user := &models.User{
		ID:           m.nextID,
		CreatedAt:    now,
		UpdatedAt:    now,
		Email:        email,
		PasswordHash: passwordHash,
		DisplayName:  displayName,
	}
	m.byEmail[email] = user
	m.byID[user.ID] = user
	m.nextID++
	return user, nil
}

func (m *mockUserStore) FindUserByEmail(email string) (*models.User, error) {
	if user, ok := m.byEmail[email]; ok {
		return user, nil
	}
	return nil, nil
}

func (m *mockUserStore) FindUserByID(id uint) (*models.User, error) {
	if user, ok := m.byID[id]; ok {
		return user, nil
	}
	return nil, nil
}

func setupAuthRouter(users UserStore) *gin.Engine {
	gin.SetMode(gin.TestMode)
	ctrl := NewAuthController(users)
	r := gin.New()
	r.POST("/api/auth/signup", ctrl.Signup)
	r.POST("/api/auth/signin", ctrl.Signin)
	return r
}

func TestSignupCreatesUser(t *testing.T) {
	r := setupAuthRouter(newMockUserStore())

	w := doJSON(r, http.MethodPost, "/api/auth/signup",
		`{"email":"jane@example.com","password":"longenough","displayName":"Jane"}`, "")

	require.Equal(t, http.StatusCreated, w.Code)

	var resp struct {
		Token string `json:"token"`
		User  struct {
			ID          uint   `json:"id"`
			Email       string `json:"email"`
			DisplayName string `json:"displayName"`
		} `json:"user"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.Token)
	assert.NotZero(t, resp.User.ID)
	assert.Equal(t, "jane@example.com", resp.User.Email)
	assert.Equal(t, "Jane", resp.User.DisplayName)
	assert.NotContains(t, w.Body.String(), "passwordHash")
	assert.NotContains(t, w.Body.String(), "longenough")
}

func TestSignupRejectsShortPassword(t *testing.T) {
	r := setupAuthRouter(newMockUserStore())

	w := doJSON(r, http.MethodPost, "/api/auth/signup",
		`{"email":"jane@example.com","password":"short","displayName":"Jane"}`, "")

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSignupRejectsMissingDisplayName(t *testing.T) {
	r := setupAuthRouter(newMockUserStore())

	w := doJSON(r, http.MethodPost, "/api/auth/signup",
		`{"email":"jane@example.com","password":"longenough"}`, "")

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSignupDuplicateEmailConflicts(t *testing.T) {
	r := setupAuthRouter(newMockUserStore())
	body := `{"email":"jane@example.com","password":"longenough","displayName":"Jane"}`

	first := doJSON(r, http.MethodPost, "/api/auth/signup", body, "")
	require.Equal(t, http.StatusCreated, first.Code)

	second := doJSON(r, http.MethodPost, "/api/auth/signup", body, "")
	assert.Equal(t, http.StatusConflict, second.Code)
}

func TestSigninSuccess(t *testing.T) {
	users := newMockUserStore()
	hash, err := bcrypt.GenerateFromPassword([]byte("changeme1"), bcrypt.MinCost)
	require.NoError(t, err)
	_, err = users.CreateUser("test@test.com", string(hash), "Test User")
	require.NoError(t, err)
	r := setupAuthRouter(users)

	w := doJSON(r, http.MethodPost, "/api/auth/signin",
		`{"email":"test@test.com","password":"changeme1"}`, "")

	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.Token)
}

func TestSigninWrongPassword(t *testing.T) {
	users := newMockUserStore()
	hash, err := bcrypt.GenerateFromPassword([]byte("changeme1"), bcrypt.MinCost)
	require.NoError(t, err)
	_, err = users.CreateUser("test@test.com", string(hash), "Test User")
	require.NoError(t, err)
	r := setupAuthRouter(users)

	w := doJSON(r, http.MethodPost, "/api/auth/signin",
		`{"email":"test@test.com","password":"wrongpass"}`, "")

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestSigninUnknownEmail(t *testing.T) {
	r := setupAuthRouter(newMockUserStore())

	w := doJSON(r, http.MethodPost, "/api/auth/signin",
		`{"email":"nobody@example.com","password":"whatever1"}`, "")

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
