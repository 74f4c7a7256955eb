package service

import (
	"context"
	"testing"
	"time"

	"imobia/internal/dto"
	"imobia/internal/entity"
	"imobia/internal/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuthFixture(t *testing.T) (*AuthService, *fakeUserRepo, *fakeSessionRepo, *fakeAccountRepo, *fakeAuditRepo) {
	t.Helper()
	users := newFakeUserRepo()
	sessions := newFakeSessionRepo()
	accounts := newFakeAccountRepo()
	audits := &fakeAuditRepo{}
	svc := NewAuthService(users, sessions, accounts, audits, fakeHasher{},
		fixedClock{now: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)},
		AuthConfig{SessionTTL: 7 * 24 * time.Hour})
	return svc, users, sessions, accounts, audits
}

func signUpUser(t *testing.T, svc *AuthService, email string, password string) *entity.User {
	t.Helper()
	user, err := svc.SignUp(context.Background(), dto.SignUpRequest{
		Name:     "Ana Souza",
		Email:    email,
		Password: password,
	})
	require.NoError(t, err)
	return user
}

func TestSignUpCreatesUserAndCredentialAccount(t *testing.T) {
	svc, users, _, accounts, _ := newAuthFixture(t)

	user := signUpUser(t, svc, "ana@example.com", "s3cret-pass")

	assert.NotEmpty(t, user.ID)
	assert.Equal(t, "ana@example.com", user.Email)
	assert.Equal(t, entity.UserStatusActive, user.Status)

	stored, err := users.FindByEmail(context.Background(), "ana@example.com")
	require.NoError(t, err)
	require.NotNil(t, stored)

	account, err := accounts.FindCredentialByUserID(context.Background(), user.ID)
	require.NoError(t, err)
	require.NotNil(t, account)
	assert.Equal(t, entity.ProviderCredential, account.ProviderID)
	require.NotNil(t, account.Password)
	assert.Equal(t, "hashed:s3cret-pass", *account.Password)
}

func TestSignUpNormalizesEmailAndRejectsDuplicates(t *testing.T) {
	svc, _, _, _, _ := newAuthFixture(t)

	user := signUpUser(t, svc, "  Ana@Example.COM ", "s3cret-pass")
	assert.Equal(t, "ana@example.com", user.Email)

	_, err := svc.SignUp(context.Background(), dto.SignUpRequest{
		Name:     "Ana Souza",
		Email:    "ana@example.com",
		Password: "another-pass",
	})
	assert.ErrorIs(t, err, ErrEmailAlreadyRegistered)
}

func TestSignInIssuesSessionWithHashedTokenAtRest(t *testing.T) {
	svc, _, sessions, _, audits := newAuthFixture(t)
	user := signUpUser(t, svc, "ana@example.com", "s3cret-pass")

	result, err := svc.SignIn(context.Background(), dto.SignInRequest{
		Email:    "ana@example.com",
		Password: "s3cret-pass",
	}, nil, nil)
	require.NoError(t, err)
	require.NotNil(t, result)

	assert.Equal(t, user.ID, result.User.ID)
	assert.NotEmpty(t, result.Token)
	assert.NotEqual(t, result.Token, result.Session.TokenHash)
	assert.Equal(t, utils.HashToken(result.Token), result.Session.TokenHash)
	assert.Equal(t, 1, sessions.countForUser(user.ID))

	expected := time.Date(2025, 6, 8, 12, 0, 0, 0, time.UTC)
	assert.Equal(t, expected, result.Session.ExpiresAt)
	assert.Equal(t, entity.SignInSuccess, audits.lastAction())
}

func TestSignInWrongPassword(t *testing.T) {
	svc, _, sessions, _, audits := newAuthFixture(t)
	user := signUpUser(t, svc, "ana@example.com", "s3cret-pass")

	result, err := svc.SignIn(context.Background(), dto.SignInRequest{
		Email:    "ana@example.com",
		Password: "wrong-pass",
	}, nil, nil)
	assert.ErrorIs(t, err, ErrInvalidCredentials)
	assert.Nil(t, result)
	assert.Equal(t, 0, sessions.countForUser(user.ID))
	assert.Equal(t, entity.SignInFailed, audits.lastAction())
}

func TestSignInUnknownEmailSameError(t *testing.T) {
	svc, _, _, _, _ := newAuthFixture(t)

	_, err := svc.SignIn(context.Background(), dto.SignInRequest{
		Email:    "nobody@example.com",
		Password: "whatever",
	}, nil, nil)
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestSignInInactiveAccountBlockedBeforeCredentials(t *testing.T) {
	svc, users, _, _, audits := newAuthFixture(t)
	user := signUpUser(t, svc, "ana@example.com", "s3cret-pass")

	user.Status = entity.UserStatusInactive
	require.NoError(t, users.Update(context.Background(), user))

	// Even the correct password is rejected once the account is inactive.
	result, err := svc.SignIn(context.Background(), dto.SignInRequest{
		Email:    "ana@example.com",
		Password: "s3cret-pass",
	}, nil, nil)
	assert.ErrorIs(t, err, ErrAccountInactive)
	assert.Nil(t, result)
	assert.Equal(t, entity.SignInBlocked, audits.lastAction())
}

func TestSignInStatusCheckFailureDoesNotBlockLogin(t *testing.T) {
	svc, users, _, _, _ := newAuthFixture(t)
	signUpUser(t, svc, "ana@example.com", "s3cret-pass")

	users.statusErr = context.DeadlineExceeded

	result, err := svc.SignIn(context.Background(), dto.SignInRequest{
		Email:    "ana@example.com",
		Password: "s3cret-pass",
	}, nil, nil)
	require.NoError(t, err)
	assert.NotNil(t, result)
}

func TestGetSessionRoundTrip(t *testing.T) {
	svc, _, _, _, _ := newAuthFixture(t)
	user := signUpUser(t, svc, "ana@example.com", "s3cret-pass")

	result, err := svc.SignIn(context.Background(), dto.SignInRequest{
		Email:    "ana@example.com",
		Password: "s3cret-pass",
	}, nil, nil)
	require.NoError(t, err)

	session, sessionUser, err := svc.GetSession(context.Background(), result.Token)
	require.NoError(t, err)
	require.NotNil(t, session)
	require.NotNil(t, sessionUser)
	assert.Equal(t, result.Session.ID, session.ID)
	assert.Equal(t, user.ID, sessionUser.ID)
}

func TestGetSessionUnknownToken(t *testing.T) {
	svc, _, _, _, _ := newAuthFixture(t)

	session, user, err := svc.GetSession(context.Background(), "not-a-real-token")
	require.NoError(t, err)
	assert.Nil(t, session)
	assert.Nil(t, user)

	session, user, err = svc.GetSession(context.Background(), "")
	require.NoError(t, err)
	assert.Nil(t, session)
	assert.Nil(t, user)
}

func TestSignOutRemovesSession(t *testing.T) {
	svc, _, sessions, _, audits := newAuthFixture(t)
	user := signUpUser(t, svc, "ana@example.com", "s3cret-pass")

	result, err := svc.SignIn(context.Background(), dto.SignInRequest{
		Email:    "ana@example.com",
		Password: "s3cret-pass",
	}, nil, nil)
	require.NoError(t, err)

	require.NoError(t, svc.SignOut(context.Background(), result.Session.ID, &user.ID, nil))
	assert.Equal(t, 0, sessions.countForUser(user.ID))
	assert.Equal(t, entity.SignOut, audits.lastAction())

	session, sessionUser, err := svc.GetSession(context.Background(), result.Token)
	require.NoError(t, err)
	assert.Nil(t, session)
	assert.Nil(t, sessionUser)
}
