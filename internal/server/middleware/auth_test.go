package middleware

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeValidator struct {
	userID uuid.UUID
	err    error
	token  string
}

type fakeClaims struct {
	userID uuid.UUID
}

func (c *fakeClaims) GetUserID() uuid.UUID { return c.userID }

func (v *fakeValidator) ValidateToken(tokenString string) (UserIDGetter, error) {
	v.token = tokenString
	if v.err != nil {
		return nil, v.err
	}
	return &fakeClaims{userID: v.userID}, nil
}

func runMiddleware(t *testing.T, validator TokenValidator, authHeader string) (*httptest.ResponseRecorder, uuid.UUID, error) {
	t.Helper()

	var gotID uuid.UUID
	var gotErr error
	handler := AuthMiddleware(validator)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotID, gotErr = GetUserID(r)
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec, gotID, gotErr
}

func TestAuthMiddleware_ValidToken(t *testing.T) {
	userID := uuid.New()
	validator := &fakeValidator{userID: userID}

	rec, gotID, gotErr := runMiddleware(t, validator, "Bearer valid-token")

	require.Equal(t, http.StatusOK, rec.Code)
	require.NoError(t, gotErr)
	assert.Equal(t, userID, gotID)
	assert.Equal(t, "valid-token", validator.token)
}

func TestAuthMiddleware_CaseInsensitiveBearer(t *testing.T) {
	validator := &fakeValidator{userID: uuid.New()}

	rec, _, _ := runMiddleware(t, validator, "bearer valid-token")

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAuthMiddleware_MissingHeader(t *testing.T) {
	rec, _, _ := runMiddleware(t, &fakeValidator{}, "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthMiddleware_MalformedHeader(t *testing.T) {
	rec, _, _ := runMiddleware(t, &fakeValidator{}, "NotBearer token extra")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthMiddleware_InvalidToken(t *testing.T) {
	validator := &fakeValidator{err: fmt.Errorf("token expired")}

	rec, _, _ := runMiddleware(t, validator, "Bearer bad-token")

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestGetUserID_MissingFromContext(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)

	_, err := GetUserID(req)
	assert.Error(t, err)
}

func TestWithUserID(t *testing.T) {
	userID := uuid.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req = req.WithContext(WithUserID(req.Context(), userID))

	gotID, err := GetUserID(req)
	require.NoError(t, err)
	assert.Equal(t, userID, gotID)
}
