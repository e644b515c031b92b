package token

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/pranav244872/skillswap/util"
	"github.com/stretchr/testify/require"
)

func TestJWTMaker(t *testing.T) {
	maker, err := NewJWTMaker(util.RandomString(32))
	require.NoError(t, err)

	userID := util.RandomInt(1, 1000)
	duration := time.Minute

	token, err := maker.CreateToken(userID, duration)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := maker.VerifyToken(token)
	require.NoError(t, err)

	gotID, err := UserIDFromClaims(claims)
	require.NoError(t, err)
	require.Equal(t, userID, gotID)
	require.NotEmpty(t, claims["jti"])

	exp, err := claims.GetExpirationTime()
	require.NoError(t, err)
	require.WithinDuration(t, time.Now().Add(duration), exp.Time, 2*time.Second)
}

func TestJWTMakerDistinctTokenIDs(t *testing.T) {
	maker, err := NewJWTMaker(util.RandomString(32))
	require.NoError(t, err)

	t1, err := maker.CreateToken(1, time.Minute)
	require.NoError(t, err)
	t2, err := maker.CreateToken(1, time.Minute)
	require.NoError(t, err)
	require.NotEqual(t, t1, t2)
}

func TestExpiredJWTToken(t *testing.T) {
	maker, err := NewJWTMaker(util.RandomString(32))
	require.NoError(t, err)

	token, err := maker.CreateToken(util.RandomInt(1, 1000), -time.Minute)
	require.NoError(t, err)

	claims, err := maker.VerifyToken(token)
	require.Error(t, err)
	require.ErrorIs(t, err, jwt.ErrTokenExpired)
	require.Nil(t, claims)
}

func TestInvalidJWTTokenAlgNone(t *testing.T) {
	payload := jwt.MapClaims{
		"user_id": 1,
		"exp":     time.Now().Add(time.Minute).Unix(),
	}
	jwtToken := jwt.NewWithClaims(jwt.SigningMethodNone, payload)
	token, err := jwtToken.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	maker, err := NewJWTMaker(util.RandomString(32))
	require.NoError(t, err)

	claims, err := maker.VerifyToken(token)
	require.Error(t, err)
	require.Nil(t, claims)
}

func TestWrongSecretKey(t *testing.T) {
	maker1, err := NewJWTMaker(util.RandomString(32))
	require.NoError(t, err)
	maker2, err := NewJWTMaker(util.RandomString(32))
	require.NoError(t, err)

	token, err := maker1.CreateToken(7, time.Minute)
	require.NoError(t, err)

	_, err = maker2.VerifyToken(token)
	require.ErrorIs(t, err, jwt.ErrTokenSignatureInvalid)
}

func TestNewJWTMakerShortKey(t *testing.T) {
	_, err := NewJWTMaker(util.RandomString(31))
	require.Error(t, err)
}

func TestUserIDFromClaims(t *testing.T) {
	_, err := UserIDFromClaims(jwt.MapClaims{})
	require.ErrorIs(t, err, ErrInvalidToken)

	_, err = UserIDFromClaims(jwt.MapClaims{"user_id": "12"})
	require.ErrorIs(t, err, ErrInvalidToken)

	id, err := UserIDFromClaims(jwt.MapClaims{"user_id": float64(12)})
	require.NoError(t, err)
	require.Equal(t, int64(12), id)
}
