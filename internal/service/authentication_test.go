package service

import (
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/Abbas-Hussain-byte/primetrade-assignment/internal/model"
	"github.com/Abbas-Hussain-byte/primetrade-assignment/internal/store"
	"github.com/Abbas-Hussain-byte/primetrade-assignment/internal/worker"
)

func restoreGlobals() {
	bcryptGenerateFromPassword = bcrypt.GenerateFromPassword
	bcryptCompareHashAndPassword = bcrypt.CompareHashAndPassword
	jsonMarshal = json.Marshal
	jsonUnmarshal = json.Unmarshal
	timeNow = time.Now
	parseWithClaims = jwt.ParseWithClaims
	getUserByID = store.GetUserByID
}

func TestHashPassword(t *testing.T) {
	t.Cleanup(restoreGlobals)
	wp := worker.NewPool(2)
	defer wp.Stop()

	pwd := "secret"
	hash, err := HashPassword(wp, pwd)
	require.NoError(t, err)
	require.NotEqual(t, pwd, hash)
	require.NoError(t, ComparePassword(wp, hash, pwd))
	require.Error(t, ComparePassword(nil, hash, "other"))

	bcryptGenerateFromPassword = func(_ []byte, _ int) ([]byte, error) {
		return nil, errors.New("gen")
	}
	_, err = HashPassword(nil, pwd)
	require.Error(t, err)
}

func TestAuthenticateUser(t *testing.T) {
	t.Cleanup(restoreGlobals)
	hash, err := HashPassword(nil, "pw")
	require.NoError(t, err)

	u := model.User{PasswordHash: hash}
	require.NoError(t, AuthenticateUser(nil, u, "pw"))
	require.ErrorIs(t, AuthenticateUser(nil, u, "bad"), ErrInvalidCredentials)
	require.ErrorIs(t, AuthenticateUser(nil, model.User{}, ""), ErrInvalidCredentials)
}

func TestIssueAccessToken(t *testing.T) {
	t.Cleanup(restoreGlobals)
	t.Setenv("JWT_SECRET", "")
	_, err := IssueAccessToken(uuid.New(), time.Minute)
	require.Error(t, err)

	t.Setenv("JWT_SECRET", "s")
	now := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	timeNow = func() time.Time { return now }
	id := uuid.New()
	tok, err := IssueAccessToken(id, AccessTokenTTL)
	require.NoError(t, err)

	claims := &CustomClaims{}
	_, err = jwt.ParseWithClaims(tok, claims, func(*jwt.Token) (any, error) { return []byte("s"), nil },
		jwt.WithTimeFunc(func() time.Time { return now }))
	require.NoError(t, err)
	require.Equal(t, id, claims.UserID)
	require.Equal(t, id.String(), claims.Subject)
	require.Equal(t, now.Add(30*24*time.Hour).Unix(), claims.ExpiresAt.Unix())
}

func TestTokenPayloadCarriesOnlyUserID(t *testing.T) {
	t.Cleanup(restoreGlobals)
	t.Setenv("JWT_SECRET", "s")
	tok, err := IssueAccessToken(uuid.New(), time.Minute)
	require.NoError(t, err)

	mc := jwt.MapClaims{}
	_, err = jwt.ParseWithClaims(tok, mc, func(*jwt.Token) (any, error) { return []byte("s"), nil })
	require.NoError(t, err)
	for k := range mc {
		require.Contains(t, []string{"id", "sub", "iat", "exp"}, k)
	}
}

func TestVerifyAccessToken(t *testing.T) {
	t.Cleanup(restoreGlobals)
	t.Setenv("JWT_SECRET", "")
	_, err := VerifyAccessToken("abc")
	require.Error(t, err)

	t.Setenv("JWT_SECRET", "s")
	_, err = VerifyAccessToken("invalid")
	require.Error(t, err)

	tokNone, _ := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{"id": uuid.NewString()}).SignedString(jwt.UnsafeAllowNoneSignatureType)
	_, err = VerifyAccessToken(tokNone)
	require.Error(t, err)

	// 其他密鑰簽發
	other, _ := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"id": uuid.NewString()}).SignedString([]byte("other"))
	_, err = VerifyAccessToken(other)
	require.Error(t, err)

	// 過期
	expired, err := IssueAccessToken(uuid.New(), -time.Minute)
	require.NoError(t, err)
	_, err = VerifyAccessToken(expired)
	require.Error(t, err)

	// 缺少 id
	noID, _ := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"sub": "x"}).SignedString([]byte("s"))
	_, err = VerifyAccessToken(noID)
	require.Error(t, err)

	parseWithClaims = func(s string, c jwt.Claims, k jwt.Keyfunc, opts ...jwt.ParserOption) (*jwt.Token, error) {
		return &jwt.Token{Claims: jwt.MapClaims{}, Valid: false}, nil
	}
	_, err = VerifyAccessToken("whatever")
	require.Error(t, err)

	parseWithClaims = jwt.ParseWithClaims
	id := uuid.New()
	tok, _ := IssueAccessToken(id, time.Minute)
	claims, err := VerifyAccessToken(tok)
	require.NoError(t, err)
	require.Equal(t, id, claims.UserID)
}
