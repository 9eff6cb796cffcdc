// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"

	deliverycontext "gallery/internal/delivery/context"
	"gallery/internal/domain/entity"
	domainerrors "gallery/internal/domain/errors"
	"gallery/internal/domain/repository"
	"gallery/internal/domain/service"
	"gallery/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// accountService implements the AccountUsecase interface.
type accountService struct {
	txManager    repository.TransactionManager
	userRepo     repository.UserRepository
	hasher       service.PasswordHasher
	tokenService service.TokenService
	logger       *slog.Logger
}

// AccountServiceParams holds dependencies for accountService, injected by Fx.
type AccountServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	UserRepo     repository.UserRepository
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	Logger       *slog.Logger
}

// NewAccountService is the constructor for accountService. It receives all dependencies as interfaces.
func NewAccountService(params AccountServiceParams) usecase.AccountUsecase {
	return &accountService{
		txManager:    params.TxManager,
		userRepo:     params.UserRepo,
		hasher:       params.Hasher,
		tokenService: params.TokenService,
		logger:       params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *accountService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Register creates a new account and issues its first identity token.
func (srv *accountService) Register(ctx context.Context, input *usecase.RegisterInput) (*usecase.RegisterOutput, error) {
	srv.log(ctx).Info("Starting registration", slog.String("email", input.Email))

	var newUser *entity.User
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()

		// Fast path: reject an email that is already taken before hashing.
		// The unique constraint on users.email closes the remaining race
		// between concurrent registrations.
		_, err := userRepo.FindByEmail(ctx, input.Email)
		if err == nil {
			return domainerrors.ErrDuplicateEmail.WrapMessage("email already registered")
		}
		if !errors.Is(err, repository.ErrUserNotFound) {
			return errors.Wrap(err, "failed to check email availability")
		}

		// bcrypt generates a fresh salt on every call.
		hashedPassword, err := srv.hasher.Hash(input.Password)
		if err != nil {
			return domainerrors.ErrUserCreationFailed.WrapMessage("failed to hash password")
		}

		newUser = &entity.User{
			Name:         input.Name,
			Email:        input.Email,
			PasswordHash: hashedPassword,
		}

		if err := userRepo.Create(ctx, newUser); err != nil {
			if errors.Is(err, repository.ErrDuplicateEmail) {
				return domainerrors.ErrDuplicateEmail.WrapMessage("email already registered")
			}

			return domainerrors.ErrUserCreationFailed.WrapMessage("failed to create user")
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Registration failed", slog.String("email", input.Email), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute registration transaction")
	}

	// Token issuance is pure computation; keep it outside the transaction.
	token, err := srv.tokenService.Generate(newUser.ID)
	if err != nil {
		srv.log(ctx).Error("Failed to issue token after registration", slog.Any("userID", newUser.ID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to issue token")
	}

	srv.log(ctx).Debug("Registration completed", slog.Any("userID", newUser.ID))

	return &usecase.RegisterOutput{ID: newUser.ID, Token: token}, nil
}

// Login verifies credentials and issues a fresh identity token.
// Stored state is never mutated here.
func (srv *accountService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
	srv.log(ctx).Debug("Starting login", slog.String("email", input.Email))

	user, err := srv.userRepo.FindByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			srv.log(ctx).Warn("Login for unknown email", slog.String("email", input.Email))

			return nil, domainerrors.ErrUserNotFound.WrapMessage("login failed")
		}

		return nil, errors.Wrap(err, "failed to find user by email")
	}

	// Salted-hash comparison; bcrypt is CPU-bound, so no transaction is held.
	if !srv.hasher.Check(input.Password, user.PasswordHash) {
		srv.log(ctx).Warn("Login failed", slog.String("email", input.Email), slog.Any("error", domainerrors.ErrInvalidCredentials))

		return nil, domainerrors.ErrInvalidCredentials.WrapMessage("login failed")
	}

	token, err := srv.tokenService.Generate(user.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to issue token")
	}

	srv.log(ctx).Debug("User logged in", slog.Any("userID", user.ID))

	return &usecase.LoginOutput{
		ID:           user.ID,
		ProfileImage: user.ProfileImage,
		Token:        token,
	}, nil
}

// GetProfile returns the record of the authenticated caller. Token
// verification happened in the delivery layer; only the resolved id
// arrives here.
func (srv *accountService) GetProfile(ctx context.Context, userID uuid.UUID) (*entity.User, error) {
	user, err := srv.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound.WrapMessage("authenticated user no longer exists")
		}

		return nil, errors.Wrap(err, "failed to find user by id")
	}

	return user, nil
}

// UpdateProfile applies a partial update to the caller's record.
// Only non-empty input fields overwrite stored attributes; an empty string
// is skipped, not applied. A supplied password is re-hashed with a fresh salt.
func (srv *accountService) UpdateProfile(ctx context.Context, userID uuid.UUID, input *usecase.UpdateProfileInput) (*entity.User, error) {
	srv.log(ctx).Info("Updating profile", slog.Any("userID", userID))

	var updated *entity.User
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()

		user, err := userRepo.FindByID(ctx, userID)
		if err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				// Fail fast instead of saving into a missing record.
				return domainerrors.ErrUserNotFound.WrapMessage("profile update target not found")
			}

			return errors.Wrap(err, "failed to find user by id")
		}

		if input.Name != "" {
			user.Name = input.Name
		}
		if input.Password != "" {
			hashedPassword, err := srv.hasher.Hash(input.Password)
			if err != nil {
				return domainerrors.ErrUserUpdateFailed.WrapMessage("failed to hash password")
			}
			user.PasswordHash = hashedPassword
		}
		if input.ProfileImage != "" {
			user.ProfileImage = input.ProfileImage
		}
		if input.Bio != "" {
			user.Bio = input.Bio
		}

		if err := userRepo.Update(ctx, user); err != nil {
			return domainerrors.ErrUserUpdateFailed.WrapMessage("failed to save user")
		}

		updated = user

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Profile update failed", slog.Any("userID", userID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute profile update transaction")
	}

	srv.log(ctx).Debug("Profile updated", slog.Any("userID", userID))

	return updated, nil
}

// GetUserByID is the public profile lookup. Any store fault other than a
// missing record surfaces as a generic lookup failure.
func (srv *accountService) GetUserByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	user, err := srv.userRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound.WrapMessage("lookup by id")
		}

		srv.log(ctx).Error("Lookup by id failed", slog.Any("userID", id), slog.Any("error", err))

		return nil, domainerrors.ErrLookupFailed.WrapMessage("lookup by id")
	}

	return user, nil
}
