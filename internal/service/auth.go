package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/shenikar/incident_reporting_system/internal/config"
	"github.com/shenikar/incident_reporting_system/internal/mailer"
	"github.com/shenikar/incident_reporting_system/internal/models"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
)

const (
	minPasswordLength = 6
	defaultRoleName   = "Citizen"

	resetPurpose = "password_reset"
)

// AccountRepository определяет контракт для работы с учетными записями и ролями
type AccountRepository interface {
	Create(ctx context.Context, account *models.Account) error
	GetByID(ctx context.Context, id int64) (*models.Account, error)
	GetByName(ctx context.Context, name string) (*models.Account, error)
	GetByEmail(ctx context.Context, email string) (*models.Account, error)
	ExistsByName(ctx context.Context, name string) (bool, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	AddRole(ctx context.Context, accountID int64, roleName, description string) error
	HasAdminLink(ctx context.Context, accountID int64) (bool, error)
	UpdatePassword(ctx context.Context, accountID int64, passwordHash string) error
}

// AuthService определяет контракт аутентификации и выдачи сессий
type AuthService interface {
	Register(ctx context.Context, name, email, password string) (*models.Account, error)
	Login(ctx context.Context, name, password string) (*models.Session, error)
	ParseToken(token string) (*models.Claims, error)
	ResolveRole(ctx context.Context, accountID int64) (string, error)
	RequestPasswordReset(ctx context.Context, email string) error
	ResetPassword(ctx context.Context, token, newPassword string) error
}

type authService struct {
	accounts AccountRepository
	logger   *logrus.Logger
	cfg      *config.Config
	mail     mailer.Publisher
}

func NewAuthService(accounts AccountRepository, logger *logrus.Logger, cfg *config.Config, mail mailer.Publisher) AuthService {
	return &authService{
		accounts: accounts,
		logger:   logger,
		cfg:      cfg,
		mail:     mail,
	}
}

// Register создает учетную запись с ролью по умолчанию.
// Имя и email уникальны без учета регистра.
func (s *authService) Register(ctx context.Context, name, email, password string) (*models.Account, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "auth",
		"method":  "Register",
		"name":    name,
	})

	name = strings.TrimSpace(name)
	email = strings.ToLower(strings.TrimSpace(email))
	if name == "" || email == "" || password == "" {
		return nil, fmt.Errorf("%w: name, email and password are required", ErrValidation)
	}
	if len(password) < minPasswordLength {
		return nil, fmt.Errorf("%w: password must be at least %d characters", ErrValidation, minPasswordLength)
	}

	if exists, err := s.accounts.ExistsByName(ctx, name); err != nil {
		log.WithError(err).Error("Failed to check account name")
		return nil, fmt.Errorf("service: could not register account: %w", err)
	} else if exists {
		return nil, fmt.Errorf("%w: name is taken", ErrDuplicateAccount)
	}
	if exists, err := s.accounts.ExistsByEmail(ctx, email); err != nil {
		log.WithError(err).Error("Failed to check account email")
		return nil, fmt.Errorf("service: could not register account: %w", err)
	} else if exists {
		return nil, fmt.Errorf("%w: email is taken", ErrDuplicateAccount)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.WithError(err).Error("Failed to hash password")
		return nil, fmt.Errorf("service: could not register account: %w", err)
	}

	account := &models.Account{
		Name:         name,
		Email:        email,
		PasswordHash: string(hash),
		IsActive:     true,
	}
	if err := s.accounts.Create(ctx, account); err != nil {
		log.WithError(err).Error("Failed to create account")
		return nil, fmt.Errorf("service: could not register account: %w", err)
	}

	if err := s.accounts.AddRole(ctx, account.ID, defaultRoleName, "Default role"); err != nil {
		log.WithError(err).Error("Failed to attach default role")
		return nil, fmt.Errorf("service: could not register account: %w", err)
	}

	log.WithField("account_id", account.ID).Info("Account registered")
	return account, nil
}

// Login проверяет учетные данные и выдает сессионный токен с клеймами
// identity и роли. Роль вычисляется одним согласованным чтением.
func (s *authService) Login(ctx context.Context, name, password string) (*models.Session, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "auth",
		"method":  "Login",
		"name":    name,
	})

	account, err := s.accounts.GetByName(ctx, name)
	if err != nil {
		log.WithError(err).Warn("Login attempt for unknown account")
		return nil, ErrInvalidCredentials
	}
	if !account.IsActive {
		log.Warn("Login attempt for deactivated account")
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(password)); err != nil {
		log.Warn("Login attempt with wrong password")
		return nil, ErrInvalidCredentials
	}

	role, err := s.ResolveRole(ctx, account.ID)
	if err != nil {
		log.WithError(err).Error("Failed to resolve account role")
		return nil, fmt.Errorf("service: could not resolve role: %w", err)
	}

	token, err := s.issueToken(account, role)
	if err != nil {
		log.WithError(err).Error("Failed to issue session token")
		return nil, fmt.Errorf("service: could not issue token: %w", err)
	}

	log.WithField("role", role).Info("Login successful")
	return &models.Session{
		Token:     token,
		AccountID: account.ID,
		Username:  account.Name,
		Email:     account.Email,
		Role:      role,
	}, nil
}

// ResolveRole возвращает admin тогда и только тогда, когда у аккаунта есть
// хотя бы одна роль, на которую ссылается запись администратора
func (s *authService) ResolveRole(ctx context.Context, accountID int64) (string, error) {
	isAdmin, err := s.accounts.HasAdminLink(ctx, accountID)
	if err != nil {
		return "", err
	}
	if isAdmin {
		return models.RoleAdmin, nil
	}
	return models.RoleUser, nil
}

func (s *authService) issueToken(account *models.Account, role string) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"account_id": account.ID,
		"username":   account.Name,
		"email":      account.Email,
		"role":       role,
		"iat":        now.Unix(),
		"exp":        now.Add(s.cfg.JWTTTL).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.cfg.JWTSecret))
}

// ParseToken разбирает и проверяет сессионный токен
func (s *authService) ParseToken(tokenStr string) (*models.Claims, error) {
	claims, err := s.parseClaims(tokenStr)
	if err != nil {
		return nil, err
	}

	accountID, ok := claims["account_id"].(float64)
	if !ok {
		return nil, ErrInvalidToken
	}
	username, _ := claims["username"].(string)
	email, _ := claims["email"].(string)
	role, _ := claims["role"].(string)

	return &models.Claims{
		AccountID: int64(accountID),
		Username:  username,
		Email:     email,
		Role:      role,
	}, nil
}

func (s *authService) parseClaims(tokenStr string) (jwt.MapClaims, error) {
	token, err := jwt.Parse(tokenStr, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(s.cfg.JWTSecret), nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, ErrInvalidToken
	}
	return claims, nil
}

// RequestPasswordReset выдает короткоживущий reset-токен и отправляет
// письмо со ссылкой. Доставка fire-and-forget через очередь.
func (s *authService) RequestPasswordReset(ctx context.Context, email string) error {
	log := s.logger.WithFields(logrus.Fields{
		"service": "auth",
		"method":  "RequestPasswordReset",
	})

	account, err := s.accounts.GetByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		log.Warn("Password reset requested for unknown email")
		return ErrAccountNotFound
	}

	now := time.Now()
	claims := jwt.MapClaims{
		"account_id": account.ID,
		"purpose":    resetPurpose,
		"iat":        now.Unix(),
		"exp":        now.Add(s.cfg.ResetTokenTTL).Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(s.cfg.JWTSecret))
	if err != nil {
		log.WithError(err).Error("Failed to issue reset token")
		return fmt.Errorf("service: could not issue reset token: %w", err)
	}

	if s.mail != nil {
		event := mailer.MailEvent{
			To:      account.Email,
			Subject: "Password reset",
			Body:    fmt.Sprintf("Follow the link to reset your password:\n%s/%s", s.cfg.ResetURLBase, token),
		}
		if err := s.mail.Publish(ctx, event); err != nil {
			log.WithError(err).Warn("Failed to enqueue reset mail")
		}
	}

	log.WithField("account_id", account.ID).Info("Password reset mail enqueued")
	return nil
}

// ResetPassword проверяет reset-токен и перезаписывает пароль
func (s *authService) ResetPassword(ctx context.Context, token, newPassword string) error {
	log := s.logger.WithFields(logrus.Fields{
		"service": "auth",
		"method":  "ResetPassword",
	})

	claims, err := s.parseClaims(token)
	if err != nil {
		return ErrInvalidToken
	}
	if purpose, _ := claims["purpose"].(string); purpose != resetPurpose {
		return ErrInvalidToken
	}
	accountID, ok := claims["account_id"].(float64)
	if !ok {
		return ErrInvalidToken
	}

	if len(newPassword) < minPasswordLength {
		return fmt.Errorf("%w: password must be at least %d characters", ErrValidation, minPasswordLength)
	}

	if _, err := s.accounts.GetByID(ctx, int64(accountID)); err != nil {
		log.WithError(err).Warn("Password reset for unknown account")
		return ErrAccountNotFound
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		log.WithError(err).Error("Failed to hash new password")
		return fmt.Errorf("service: could not reset password: %w", err)
	}

	if err := s.accounts.UpdatePassword(ctx, int64(accountID), string(hash)); err != nil {
		log.WithError(err).Error("Failed to update password")
		return fmt.Errorf("service: could not reset password: %w", err)
	}

	log.WithField("account_id", int64(accountID)).Info("Password reset completed")
	return nil
}
