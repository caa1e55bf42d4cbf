package services

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/brtkwt/BestStoreAPI/domain"
	"github.com/brtkwt/BestStoreAPI/internal/mocks"
)

func validUser() *domain.User {
	return &domain.User{
		ID:           1,
		FirstName:    "Ada",
		LastName:     "Lovelace",
		Email:        "ada@example.com",
		Phone:        "+1234567890",
		Address:      "12 Analytical St",
		PasswordHash: "hashed_oldpassword",
		Role:         "client",
	}
}

func newAuthService(
	userRepo *mocks.MockUserRepository,
	resetRepo *mocks.MockPasswordResetRepository,
	passwordSvc *mocks.MockPasswordService,
	tokenSvc *mocks.MockTokenService,
	notificationSvc *mocks.MockNotificationService,
) domain.AuthService {
	return NewAuthService(userRepo, resetRepo, passwordSvc, tokenSvc, notificationSvc)
}

func TestAuthServiceImpl_Register(t *testing.T) {
	input := domain.RegisterInput{
		FirstName: "Ada",
		LastName:  "Lovelace",
		Email:     "ada@example.com",
		Phone:     "+1234567890",
		Address:   "12 Analytical St",
		Password:  "securepassword123",
	}

	tests := []struct {
		name           string
		setupMocks     func(*mocks.MockUserRepository, *mocks.MockPasswordService, *mocks.MockTokenService)
		expectedError  error
		validateResult func(t *testing.T, result *domain.AuthResult)
	}{
		{
			name: "successful registration",
			setupMocks: func(userRepo *mocks.MockUserRepository, passwordSvc *mocks.MockPasswordService, tokenSvc *mocks.MockTokenService) {
				userRepo.FindByEmailFunc = func(ctx context.Context, email string) (*domain.User, error) {
					return nil, domain.ErrUserNotFound
				}
				userRepo.CreateFunc = func(ctx context.Context, user *domain.User) error {
					user.ID = 7
					return nil
				}
				tokenSvc.GenerateFunc = func(userID uint, role string) (string, error) {
					if userID != 7 {
						t.Errorf("expected token for user 7, got %d", userID)
					}
					return "signed_token", nil
				}
			},
			expectedError: nil,
			validateResult: func(t *testing.T, result *domain.AuthResult) {
				if result == nil {
					t.Fatal("result is nil")
				}
				if result.Token != "signed_token" {
					t.Errorf("expected token signed_token, got %s", result.Token)
				}
				if result.User.Role != DefaultRole {
					t.Errorf("expected role %s, got %s", DefaultRole, result.User.Role)
				}
				if result.User.PasswordHash != "hashed_securepassword123" {
					t.Errorf("unexpected password hash %s", result.User.PasswordHash)
				}
			},
		},
		{
			name: "email already registered",
			setupMocks: func(userRepo *mocks.MockUserRepository, passwordSvc *mocks.MockPasswordService, tokenSvc *mocks.MockTokenService) {
				userRepo.FindByEmailFunc = func(ctx context.Context, email string) (*domain.User, error) {
					return validUser(), nil
				}
			},
			expectedError: domain.ErrEmailTaken,
		},
		{
			name: "duplicate surfaces on insert despite passing pre-check",
			setupMocks: func(userRepo *mocks.MockUserRepository, passwordSvc *mocks.MockPasswordService, tokenSvc *mocks.MockTokenService) {
				userRepo.FindByEmailFunc = func(ctx context.Context, email string) (*domain.User, error) {
					return nil, domain.ErrUserNotFound
				}
				userRepo.CreateFunc = func(ctx context.Context, user *domain.User) error {
					return domain.ErrEmailTaken
				}
			},
			expectedError: domain.ErrEmailTaken,
		},
		{
			name: "password hashing fails",
			setupMocks: func(userRepo *mocks.MockUserRepository, passwordSvc *mocks.MockPasswordService, tokenSvc *mocks.MockTokenService) {
				userRepo.FindByEmailFunc = func(ctx context.Context, email string) (*domain.User, error) {
					return nil, domain.ErrUserNotFound
				}
				passwordSvc.HashFunc = func(password string) (string, error) {
					return "", errors.New("hashing failed")
				}
			},
			expectedError: errors.New("failed to hash password: hashing failed"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			userRepo := mocks.NewMockUserRepository()
			resetRepo := mocks.NewMockPasswordResetRepository()
			passwordSvc := mocks.NewMockPasswordService()
			tokenSvc := mocks.NewMockTokenService()
			notificationSvc := mocks.NewMockNotificationService()
			tt.setupMocks(userRepo, passwordSvc, tokenSvc)

			svc := newAuthService(userRepo, resetRepo, passwordSvc, tokenSvc, notificationSvc)
			result, err := svc.Register(context.Background(), input)

			if tt.expectedError != nil {
				if err == nil {
					t.Fatalf("expected error %v, got nil", tt.expectedError)
				}
				if !errors.Is(err, tt.expectedError) && err.Error() != tt.expectedError.Error() {
					t.Errorf("expected error %v, got %v", tt.expectedError, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if tt.validateResult != nil {
				tt.validateResult(t, result)
			}
		})
	}
}

func TestAuthServiceImpl_Login(t *testing.T) {
	tests := []struct {
		name          string
		email         string
		password      string
		setupMocks    func(*mocks.MockUserRepository, *mocks.MockPasswordService)
		expectedError error
	}{
		{
			name:     "successful login",
			email:    "ada@example.com",
			password: "oldpassword",
			setupMocks: func(userRepo *mocks.MockUserRepository, passwordSvc *mocks.MockPasswordService) {
				userRepo.FindByEmailFunc = func(ctx context.Context, email string) (*domain.User, error) {
					return validUser(), nil
				}
			},
			expectedError: nil,
		},
		{
			name:          "unknown email is rejected with the generic error",
			email:         "nobody@example.com",
			password:      "whatever",
			setupMocks:    func(userRepo *mocks.MockUserRepository, passwordSvc *mocks.MockPasswordService) {},
			expectedError: domain.ErrInvalidCredentials,
		},
		{
			name:     "wrong password is rejected with the generic error",
			email:    "ada@example.com",
			password: "wrongpassword",
			setupMocks: func(userRepo *mocks.MockUserRepository, passwordSvc *mocks.MockPasswordService) {
				userRepo.FindByEmailFunc = func(ctx context.Context, email string) (*domain.User, error) {
					return validUser(), nil
				}
			},
			expectedError: domain.ErrInvalidCredentials,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			userRepo := mocks.NewMockUserRepository()
			passwordSvc := mocks.NewMockPasswordService()
			tokenSvc := mocks.NewMockTokenService()
			tt.setupMocks(userRepo, passwordSvc)

			svc := newAuthService(userRepo, mocks.NewMockPasswordResetRepository(), passwordSvc, tokenSvc, mocks.NewMockNotificationService())
			result, err := svc.Login(context.Background(), tt.email, tt.password)

			if tt.expectedError != nil {
				if !errors.Is(err, tt.expectedError) {
					t.Fatalf("expected error %v, got %v", tt.expectedError, err)
				}
				if result != nil {
					t.Error("expected nil result on failed login")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if result.Token == "" {
				t.Error("expected a token on successful login")
			}
		})
	}
}

func TestAuthServiceImpl_ForgotPassword(t *testing.T) {
	t.Run("stores a fresh request and emails the token", func(t *testing.T) {
		userRepo := mocks.NewMockUserRepository()
		userRepo.FindByEmailFunc = func(ctx context.Context, email string) (*domain.User, error) {
			return validUser(), nil
		}

		resetRepo := mocks.NewMockPasswordResetRepository()
		var deletedEmail string
		var stored *domain.PasswordReset
		resetRepo.DeleteByEmailFunc = func(ctx context.Context, email string) error {
			deletedEmail = email
			return nil
		}
		resetRepo.CreateFunc = func(ctx context.Context, reset *domain.PasswordReset) error {
			stored = reset
			return nil
		}

		notificationSvc := mocks.NewMockNotificationService()

		svc := newAuthService(userRepo, resetRepo, mocks.NewMockPasswordService(), mocks.NewMockTokenService(), notificationSvc)
		if err := svc.ForgotPassword(context.Background(), "ada@example.com"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if deletedEmail != "ada@example.com" {
			t.Errorf("expected prior request for ada@example.com to be removed, got %q", deletedEmail)
		}
		if stored == nil {
			t.Fatal("expected a reset request to be stored")
		}
		// Token is two UUIDs joined by a dash, so 73 characters
		if len(stored.Token) != 73 {
			t.Errorf("unexpected token length %d", len(stored.Token))
		}
		if len(notificationSvc.Sent) != 1 {
			t.Fatalf("expected one email, got %d", len(notificationSvc.Sent))
		}
		if !strings.Contains(notificationSvc.Sent[0].Body, stored.Token) {
			t.Error("expected the email body to contain the token")
		}
		if notificationSvc.Sent[0].To != "ada@example.com" {
			t.Errorf("expected email to ada@example.com, got %s", notificationSvc.Sent[0].To)
		}
	})

	t.Run("unknown email is reported as not found", func(t *testing.T) {
		svc := newAuthService(
			mocks.NewMockUserRepository(),
			mocks.NewMockPasswordResetRepository(),
			mocks.NewMockPasswordService(),
			mocks.NewMockTokenService(),
			mocks.NewMockNotificationService(),
		)
		err := svc.ForgotPassword(context.Background(), "nobody@example.com")
		if !errors.Is(err, domain.ErrUserNotFound) {
			t.Fatalf("expected ErrUserNotFound, got %v", err)
		}
	})

	t.Run("send failure fails the call but the request stays persisted", func(t *testing.T) {
		userRepo := mocks.NewMockUserRepository()
		userRepo.FindByEmailFunc = func(ctx context.Context, email string) (*domain.User, error) {
			return validUser(), nil
		}

		resetRepo := mocks.NewMockPasswordResetRepository()
		created := false
		deleted := false
		resetRepo.CreateFunc = func(ctx context.Context, reset *domain.PasswordReset) error {
			created = true
			return nil
		}
		resetRepo.DeleteFunc = func(ctx context.Context, token string) error {
			deleted = true
			return nil
		}

		notificationSvc := mocks.NewMockNotificationService()
		notificationSvc.SendEmailFunc = func(to, name, subject, body string) error {
			return errors.New("smtp unreachable")
		}

		svc := newAuthService(userRepo, resetRepo, mocks.NewMockPasswordService(), mocks.NewMockTokenService(), notificationSvc)
		err := svc.ForgotPassword(context.Background(), "ada@example.com")
		if !errors.Is(err, domain.ErrNotificationFailed) {
			t.Fatalf("expected ErrNotificationFailed, got %v", err)
		}
		if !created {
			t.Error("expected the reset request to be stored before the send")
		}
		if deleted {
			t.Error("expected no rollback of the stored request")
		}
	})
}

func TestAuthServiceImpl_ResetPassword(t *testing.T) {
	const token = "valid-token"

	t.Run("successful reset consumes the token", func(t *testing.T) {
		userRepo := mocks.NewMockUserRepository()
		userRepo.FindByEmailFunc = func(ctx context.Context, email string) (*domain.User, error) {
			return validUser(), nil
		}
		var updated *domain.User
		userRepo.UpdateFunc = func(ctx context.Context, user *domain.User) error {
			updated = user
			return nil
		}

		resetRepo := mocks.NewMockPasswordResetRepository()
		resetRepo.FindByTokenFunc = func(ctx context.Context, got string) (*domain.PasswordReset, error) {
			if got != token {
				return nil, domain.ErrResetTokenInvalid
			}
			return &domain.PasswordReset{Email: "ada@example.com", Token: token}, nil
		}
		var consumed string
		resetRepo.DeleteFunc = func(ctx context.Context, got string) error {
			consumed = got
			return nil
		}

		svc := newAuthService(userRepo, resetRepo, mocks.NewMockPasswordService(), mocks.NewMockTokenService(), mocks.NewMockNotificationService())
		if err := svc.ResetPassword(context.Background(), token, "newpassword456"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if updated == nil {
			t.Fatal("expected the user to be updated")
		}
		if updated.PasswordHash != "hashed_newpassword456" {
			t.Errorf("unexpected password hash %s", updated.PasswordHash)
		}
		if consumed != token {
			t.Errorf("expected token %q to be consumed, got %q", token, consumed)
		}
	})

	t.Run("unknown token is invalid", func(t *testing.T) {
		svc := newAuthService(
			mocks.NewMockUserRepository(),
			mocks.NewMockPasswordResetRepository(),
			mocks.NewMockPasswordService(),
			mocks.NewMockTokenService(),
			mocks.NewMockNotificationService(),
		)
		err := svc.ResetPassword(context.Background(), "bogus", "newpassword456")
		if !errors.Is(err, domain.ErrResetTokenInvalid) {
			t.Fatalf("expected ErrResetTokenInvalid, got %v", err)
		}
	})

	t.Run("token whose account vanished is indistinguishable from unknown", func(t *testing.T) {
		resetRepo := mocks.NewMockPasswordResetRepository()
		resetRepo.FindByTokenFunc = func(ctx context.Context, got string) (*domain.PasswordReset, error) {
			return &domain.PasswordReset{Email: "gone@example.com", Token: got}, nil
		}

		svc := newAuthService(
			mocks.NewMockUserRepository(),
			resetRepo,
			mocks.NewMockPasswordService(),
			mocks.NewMockTokenService(),
			mocks.NewMockNotificationService(),
		)
		err := svc.ResetPassword(context.Background(), token, "newpassword456")
		if !errors.Is(err, domain.ErrResetTokenInvalid) {
			t.Fatalf("expected ErrResetTokenInvalid, got %v", err)
		}
	})
}

func TestAuthServiceImpl_UpdateProfile(t *testing.T) {
	t.Run("fields are replaced wholesale", func(t *testing.T) {
		userRepo := mocks.NewMockUserRepository()
		userRepo.FindByIDFunc = func(ctx context.Context, id uint) (*domain.User, error) {
			return validUser(), nil
		}

		svc := newAuthService(userRepo, mocks.NewMockPasswordResetRepository(), mocks.NewMockPasswordService(), mocks.NewMockTokenService(), mocks.NewMockNotificationService())
		user, err := svc.UpdateProfile(context.Background(), 1, domain.ProfileUpdateInput{
			FirstName: "Grace",
			LastName:  "Hopper",
			Email:     "grace@example.com",
			Address:   "1 Navy Way",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if user.FirstName != "Grace" || user.Email != "grace@example.com" {
			t.Errorf("profile not replaced: %+v", user)
		}
		if user.Phone != "" {
			t.Errorf("expected empty phone to stay empty, got %q", user.Phone)
		}
	})

	t.Run("email collision surfaces as taken", func(t *testing.T) {
		userRepo := mocks.NewMockUserRepository()
		userRepo.FindByIDFunc = func(ctx context.Context, id uint) (*domain.User, error) {
			return validUser(), nil
		}
		userRepo.UpdateFunc = func(ctx context.Context, user *domain.User) error {
			return domain.ErrEmailTaken
		}

		svc := newAuthService(userRepo, mocks.NewMockPasswordResetRepository(), mocks.NewMockPasswordService(), mocks.NewMockTokenService(), mocks.NewMockNotificationService())
		_, err := svc.UpdateProfile(context.Background(), 1, domain.ProfileUpdateInput{Email: "taken@example.com"})
		if !errors.Is(err, domain.ErrEmailTaken) {
			t.Fatalf("expected ErrEmailTaken, got %v", err)
		}
	})
}

func TestAuthServiceImpl_UpdatePassword(t *testing.T) {
	userRepo := mocks.NewMockUserRepository()
	userRepo.FindByIDFunc = func(ctx context.Context, id uint) (*domain.User, error) {
		return validUser(), nil
	}
	var updated *domain.User
	userRepo.UpdateFunc = func(ctx context.Context, user *domain.User) error {
		updated = user
		return nil
	}

	svc := newAuthService(userRepo, mocks.NewMockPasswordResetRepository(), mocks.NewMockPasswordService(), mocks.NewMockTokenService(), mocks.NewMockNotificationService())
	if err := svc.UpdatePassword(context.Background(), 1, "brandNewPass1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updated == nil || updated.PasswordHash != "hashed_brandNewPass1" {
		t.Fatalf("expected password hash to be replaced, got %+v", updated)
	}
}
