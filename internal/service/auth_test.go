package service

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/shenikar/incident_reporting_system/internal/config"
	"github.com/shenikar/incident_reporting_system/internal/mailer"
	mailer_mocks "github.com/shenikar/incident_reporting_system/internal/mailer/mocks"
	"github.com/shenikar/incident_reporting_system/internal/models"
	"github.com/shenikar/incident_reporting_system/internal/service/mocks"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
)

// newTestAuthService — вспомогательная функция для создания инстанса сервиса с моками.
func newTestAuthService(t *testing.T) (*authService, *mocks.MockAccountRepository, *mailer_mocks.MockPublisher) {
	ctrl := gomock.NewController(t)
	accountsMock := mocks.NewMockAccountRepository(ctrl)
	mailMock := mailer_mocks.NewMockPublisher(ctrl)

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах

	cfg := &config.Config{
		JWTSecret:     "test-secret",
		JWTTTL:        time.Hour,
		ResetTokenTTL: 30 * time.Minute,
		ResetURLBase:  "http://localhost:5173/reset-password",
	}

	service := NewAuthService(accountsMock, logger, cfg, mailMock)
	return service.(*authService), accountsMock, mailMock
}

func hashPassword(t *testing.T, password string) string {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return string(hash)
}

func TestRegister_Success(t *testing.T) {
	// Подготовка
	service, accountsMock, _ := newTestAuthService(t)
	ctx := context.Background()

	// Ожидания
	accountsMock.EXPECT().ExistsByName(ctx, "citizen1").Return(false, nil).Times(1)
	accountsMock.EXPECT().ExistsByEmail(ctx, "citizen1@example.com").Return(false, nil).Times(1)
	accountsMock.EXPECT().
		Create(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, account *models.Account) error {
			account.ID = 1
			return nil
		}).
		Times(1)
	accountsMock.EXPECT().AddRole(ctx, int64(1), "Citizen", gomock.Any()).Return(nil).Times(1)

	// Действие
	account, err := service.Register(ctx, "citizen1", "Citizen1@Example.com", "secret123")

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, int64(1), account.ID)
	assert.Equal(t, "citizen1@example.com", account.Email)
	assert.True(t, account.IsActive)
	// Пароль хранится только как bcrypt-хэш
	assert.NotEqual(t, "secret123", account.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte("secret123")))
}

func TestRegister_DuplicateName(t *testing.T) {
	service, accountsMock, _ := newTestAuthService(t)
	ctx := context.Background()

	accountsMock.EXPECT().ExistsByName(ctx, "citizen1").Return(true, nil).Times(1)
	accountsMock.EXPECT().Create(gomock.Any(), gomock.Any()).Times(0)

	_, err := service.Register(ctx, "citizen1", "other@example.com", "secret123")
	assert.ErrorIs(t, err, ErrDuplicateAccount)
}

func TestRegister_ShortPassword(t *testing.T) {
	service, accountsMock, _ := newTestAuthService(t)
	ctx := context.Background()

	accountsMock.EXPECT().ExistsByName(gomock.Any(), gomock.Any()).Times(0)

	_, err := service.Register(ctx, "citizen1", "c@example.com", "123")
	assert.ErrorIs(t, err, ErrValidation)
}

func TestLogin_Success_AdminRole(t *testing.T) {
	// Подготовка
	service, accountsMock, _ := newTestAuthService(t)
	ctx := context.Background()
	account := &models.Account{
		ID:           1,
		Name:         "operator",
		Email:        "op@example.com",
		PasswordHash: hashPassword(t, "secret123"),
		IsActive:     true,
	}

	// Ожидания
	accountsMock.EXPECT().GetByName(ctx, "operator").Return(account, nil).Times(1)
	accountsMock.EXPECT().HasAdminLink(ctx, int64(1)).Return(true, nil).Times(1)

	// Действие
	session, err := service.Login(ctx, "operator", "secret123")

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, models.RoleAdmin, session.Role)
	assert.Equal(t, int64(1), session.AccountID)

	// Токен разбирается обратно и несет клеймы identity и роли
	claims, err := service.ParseToken(session.Token)
	require.NoError(t, err)
	assert.Equal(t, int64(1), claims.AccountID)
	assert.Equal(t, "operator", claims.Username)
	assert.Equal(t, models.RoleAdmin, claims.Role)
}

func TestLogin_Success_UserRole(t *testing.T) {
	// Аккаунт без записи администратора получает роль user
	service, accountsMock, _ := newTestAuthService(t)
	ctx := context.Background()
	account := &models.Account{
		ID:           2,
		Name:         "citizen",
		PasswordHash: hashPassword(t, "secret123"),
		IsActive:     true,
	}

	accountsMock.EXPECT().GetByName(ctx, "citizen").Return(account, nil).Times(1)
	accountsMock.EXPECT().HasAdminLink(ctx, int64(2)).Return(false, nil).Times(1)

	session, err := service.Login(ctx, "citizen", "secret123")
	require.NoError(t, err)
	assert.Equal(t, models.RoleUser, session.Role)
}

func TestLogin_WrongPassword(t *testing.T) {
	service, accountsMock, _ := newTestAuthService(t)
	ctx := context.Background()
	account := &models.Account{
		ID:           1,
		Name:         "citizen",
		PasswordHash: hashPassword(t, "secret123"),
		IsActive:     true,
	}

	accountsMock.EXPECT().GetByName(ctx, "citizen").Return(account, nil).Times(1)

	_, err := service.Login(ctx, "citizen", "wrong-password")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLogin_UnknownAccount(t *testing.T) {
	service, accountsMock, _ := newTestAuthService(t)
	ctx := context.Background()

	accountsMock.EXPECT().
		GetByName(ctx, "ghost").
		Return(nil, ErrAccountNotFound).
		Times(1)

	_, err := service.Login(ctx, "ghost", "secret123")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLogin_DeactivatedAccount(t *testing.T) {
	service, accountsMock, _ := newTestAuthService(t)
	ctx := context.Background()
	account := &models.Account{
		ID:           1,
		Name:         "citizen",
		PasswordHash: hashPassword(t, "secret123"),
		IsActive:     false,
	}

	accountsMock.EXPECT().GetByName(ctx, "citizen").Return(account, nil).Times(1)

	_, err := service.Login(ctx, "citizen", "secret123")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestParseToken_Invalid(t *testing.T) {
	service, _, _ := newTestAuthService(t)

	_, err := service.ParseToken("not-a-token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestParseToken_WrongSecret(t *testing.T) {
	service, _, _ := newTestAuthService(t)

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"account_id": 1,
		"exp":        time.Now().Add(time.Hour).Unix(),
	}).SignedString([]byte("another-secret"))
	require.NoError(t, err)

	_, err = service.ParseToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestRequestPasswordReset_EnqueuesMail(t *testing.T) {
	// Подготовка
	service, accountsMock, mailMock := newTestAuthService(t)
	ctx := context.Background()
	account := &models.Account{ID: 1, Email: "citizen@example.com"}

	// Ожидания
	accountsMock.EXPECT().GetByEmail(ctx, "citizen@example.com").Return(account, nil).Times(1)
	mailMock.EXPECT().
		Publish(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, event mailer.MailEvent) error {
			assert.Equal(t, "citizen@example.com", event.To)
			assert.Contains(t, event.Body, "http://localhost:5173/reset-password/")
			return nil
		}).
		Times(1)

	// Действие
	err := service.RequestPasswordReset(ctx, "Citizen@Example.com")

	// Проверки
	require.NoError(t, err)
}

func TestRequestPasswordReset_UnknownEmail(t *testing.T) {
	service, accountsMock, mailMock := newTestAuthService(t)
	ctx := context.Background()

	accountsMock.EXPECT().
		GetByEmail(ctx, "ghost@example.com").
		Return(nil, ErrAccountNotFound).
		Times(1)
	mailMock.EXPECT().Publish(gomock.Any(), gomock.Any()).Times(0)

	err := service.RequestPasswordReset(ctx, "ghost@example.com")
	assert.ErrorIs(t, err, ErrAccountNotFound)
}

func TestResetPassword_Success(t *testing.T) {
	// Подготовка
	service, accountsMock, _ := newTestAuthService(t)
	ctx := context.Background()

	now := time.Now()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"account_id": 1,
		"purpose":    resetPurpose,
		"iat":        now.Unix(),
		"exp":        now.Add(30 * time.Minute).Unix(),
	}).SignedString([]byte("test-secret"))
	require.NoError(t, err)

	// Ожидания
	accountsMock.EXPECT().GetByID(ctx, int64(1)).Return(&models.Account{ID: 1}, nil).Times(1)
	accountsMock.EXPECT().
		UpdatePassword(ctx, int64(1), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ int64, hash string) error {
			assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(hash), []byte("new-secret")))
			return nil
		}).
		Times(1)

	// Действие
	err = service.ResetPassword(ctx, token, "new-secret")

	// Проверки
	require.NoError(t, err)
}

func TestResetPassword_SessionTokenRejected(t *testing.T) {
	// Сессионный токен без клейма purpose не годится для сброса пароля
	service, accountsMock, _ := newTestAuthService(t)
	ctx := context.Background()

	token, err := service.issueToken(&models.Account{ID: 1, Name: "citizen"}, models.RoleUser)
	require.NoError(t, err)

	accountsMock.EXPECT().UpdatePassword(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	err = service.ResetPassword(ctx, token, "new-secret")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestResetPassword_ExpiredToken(t *testing.T) {
	service, _, _ := newTestAuthService(t)
	ctx := context.Background()

	now := time.Now()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"account_id": 1,
		"purpose":    resetPurpose,
		"iat":        now.Add(-2 * time.Hour).Unix(),
		"exp":        now.Add(-time.Hour).Unix(),
	}).SignedString([]byte("test-secret"))
	require.NoError(t, err)

	err = service.ResetPassword(ctx, token, "new-secret")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestResolveRole(t *testing.T) {
	service, accountsMock, _ := newTestAuthService(t)
	ctx := context.Background()

	accountsMock.EXPECT().HasAdminLink(ctx, int64(1)).Return(true, nil).Times(1)
	accountsMock.EXPECT().HasAdminLink(ctx, int64(2)).Return(false, nil).Times(1)

	role, err := service.ResolveRole(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, models.RoleAdmin, role)

	role, err = service.ResolveRole(ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, models.RoleUser, role)
}
