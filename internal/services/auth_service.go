package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/brtkwt/BestStoreAPI/domain"
)

// DefaultRole is assigned to every self-registered account
const DefaultRole = "client"

// AuthServiceImpl implements domain.AuthService
type AuthServiceImpl struct {
	userRepo        domain.UserRepository
	resetRepo       domain.PasswordResetRepository
	passwordSvc     domain.PasswordService
	tokenSvc        domain.TokenService
	notificationSvc domain.NotificationService
}

// NewAuthService creates a new auth service
func NewAuthService(
	userRepo domain.UserRepository,
	resetRepo domain.PasswordResetRepository,
	passwordSvc domain.PasswordService,
	tokenSvc domain.TokenService,
	notificationSvc domain.NotificationService,
) domain.AuthService {
	return &AuthServiceImpl{
		userRepo:        userRepo,
		resetRepo:       resetRepo,
		passwordSvc:     passwordSvc,
		tokenSvc:        tokenSvc,
		notificationSvc: notificationSvc,
	}
}

// Register implements domain.AuthService. The pre-check below is advisory
// only; two concurrent registrations can both pass it. The unique index on
// users.email is the actual arbiter, and the repository reports its
// violation as domain.ErrEmailTaken too.
func (s *AuthServiceImpl) Register(ctx context.Context, in domain.RegisterInput) (*domain.AuthResult, error) {
	existing, err := s.userRepo.FindByEmail(ctx, in.Email)
	if err == nil && existing != nil {
		return nil, domain.ErrEmailTaken
	}

	hashedPassword, err := s.passwordSvc.Hash(in.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &domain.User{
		FirstName:    in.FirstName,
		LastName:     in.LastName,
		Email:        in.Email,
		Phone:        in.Phone,
		Address:      in.Address,
		PasswordHash: hashedPassword,
		Role:         DefaultRole,
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		if err == domain.ErrEmailTaken {
			return nil, domain.ErrEmailTaken
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	token, err := s.tokenSvc.Generate(user.ID, user.Role)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	return &domain.AuthResult{User: user, Token: token}, nil
}

// Login implements domain.AuthService. An unknown email and a wrong password
// both come back as ErrInvalidCredentials so the response never reveals
// whether the account exists.
func (s *AuthServiceImpl) Login(ctx context.Context, email, password string) (*domain.AuthResult, error) {
	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return nil, domain.ErrInvalidCredentials
	}

	if !s.passwordSvc.Verify(user.PasswordHash, password) {
		return nil, domain.ErrInvalidCredentials
	}

	token, err := s.tokenSvc.Generate(user.ID, user.Role)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	return &domain.AuthResult{User: user, Token: token}, nil
}

// ForgotPassword implements domain.AuthService. Any prior request for the
// email is superseded before the new token is stored. The email send is
// blocking; if it fails the call fails even though the new request is
// already persisted, and no rollback is attempted.
func (s *AuthServiceImpl) ForgotPassword(ctx context.Context, email string) error {
	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return domain.ErrUserNotFound
	}

	if err := s.resetRepo.DeleteByEmail(ctx, email); err != nil {
		return fmt.Errorf("failed to remove previous reset request: %w", err)
	}

	token := uuid.NewString() + "-" + uuid.NewString()

	reset := &domain.PasswordReset{
		Email:     email,
		Token:     token,
		CreatedAt: time.Now(),
	}
	if err := s.resetRepo.Create(ctx, reset); err != nil {
		return fmt.Errorf("failed to store reset request: %w", err)
	}

	body := "Dear " + user.FullName() + "\n" +
		"We received your password reset request.\n" +
		"Please copy the following token and paste it in the Password Reset Form:\n" +
		token + "\n\n" +
		"Best Regards\n"

	if err := s.notificationSvc.SendEmail(email, user.FullName(), "Password Reset", body); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrNotificationFailed, err)
	}

	return nil
}

// ResetPassword implements domain.AuthService. An unknown token and a token
// whose account has disappeared are indistinguishable to the caller. The
// token is deleted after use so it can never authorize a second change.
func (s *AuthServiceImpl) ResetPassword(ctx context.Context, token, password string) error {
	reset, err := s.resetRepo.FindByToken(ctx, token)
	if err != nil {
		return domain.ErrResetTokenInvalid
	}

	user, err := s.userRepo.FindByEmail(ctx, reset.Email)
	if err != nil {
		return domain.ErrResetTokenInvalid
	}

	hashedPassword, err := s.passwordSvc.Hash(password)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	user.PasswordHash = hashedPassword
	user.UpdatedAt = time.Now()
	if err := s.userRepo.Update(ctx, user); err != nil {
		return fmt.Errorf("failed to update password: %w", err)
	}

	if err := s.resetRepo.Delete(ctx, token); err != nil {
		return fmt.Errorf("failed to consume reset token: %w", err)
	}

	return nil
}

// Profile implements domain.AuthService
func (s *AuthServiceImpl) Profile(ctx context.Context, userID uint) (*domain.User, error) {
	return s.userRepo.FindByID(ctx, userID)
}

// UpdateProfile implements domain.AuthService. Fields are replaced wholesale;
// a phone left empty stays empty.
func (s *AuthServiceImpl) UpdateProfile(ctx context.Context, userID uint, in domain.ProfileUpdateInput) (*domain.User, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	user.FirstName = in.FirstName
	user.LastName = in.LastName
	user.Email = in.Email
	user.Phone = in.Phone
	user.Address = in.Address
	user.UpdatedAt = time.Now()

	if err := s.userRepo.Update(ctx, user); err != nil {
		if err == domain.ErrEmailTaken {
			return nil, domain.ErrEmailTaken
		}
		return nil, fmt.Errorf("failed to update profile: %w", err)
	}

	return user, nil
}

// UpdatePassword implements domain.AuthService. The current password is not
// verified first; possession of a valid session token is the only gate.
func (s *AuthServiceImpl) UpdatePassword(ctx context.Context, userID uint, password string) error {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return err
	}

	hashedPassword, err := s.passwordSvc.Hash(password)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	user.PasswordHash = hashedPassword
	user.UpdatedAt = time.Now()
	if err := s.userRepo.Update(ctx, user); err != nil {
		return fmt.Errorf("failed to update password: %w", err)
	}

	return nil
}
