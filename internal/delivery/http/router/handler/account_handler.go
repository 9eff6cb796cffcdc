// Package handler contains the HTTP handlers for the application.
package handler

import (
	"log/slog"
	"net/http"
	"time"

	"gallery/internal/delivery/http/middleware"
	"gallery/internal/delivery/http/response"
	"gallery/internal/domain/entity"
	domainerrors "gallery/internal/domain/errors"
	"gallery/internal/domain/service"
	"gallery/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// AccountHandler holds dependencies for account-related handlers.
type AccountHandler struct {
	uc            usecase.AccountUsecase
	logger        *slog.Logger
	avatarStorage service.AvatarStorage // nil when avatar uploads are not configured
}

// NewAccountHandler is the constructor for AccountHandler, injected by Fx.
func NewAccountHandler(uc usecase.AccountUsecase, logger *slog.Logger, avatarStorage service.AvatarStorage) *AccountHandler {
	return &AccountHandler{
		uc:            uc,
		logger:        logger,
		avatarStorage: avatarStorage,
	}
}

// --- Request DTOs ---

type registerRequest struct {
	Name     string `json:"name" form:"name" validate:"required"`
	Email    string `json:"email" form:"email" validate:"required,email"`
	Password string `json:"password" form:"password" validate:"required,min=1"`
}

type loginRequest struct {
	Email    string `json:"email" form:"email" validate:"required,email"`
	Password string `json:"password" form:"password" validate:"required"`
}

// --- Response DTOs ---

type authCreatedResponse struct {
	ID    uuid.UUID `json:"id"`
	Token string    `json:"token"`
}

type loginResponse struct {
	ID           uuid.UUID `json:"id"`
	ProfileImage string    `json:"profileImage"`
	Token        string    `json:"token"`
}

// userView is the public projection of a user record. The password hash
// never appears here.
type userView struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	ProfileImage string    `json:"profileImage"`
	Bio          string    `json:"bio"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

func toUserView(user *entity.User) *userView {
	return &userView{
		ID:           user.ID,
		Name:         user.Name,
		Email:        user.Email,
		ProfileImage: user.ProfileImage,
		Bio:          user.Bio,
		CreatedAt:    user.CreatedAt,
		UpdatedAt:    user.UpdatedAt,
	}
}

// Register handles the account registration request.
func (h *AccountHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return domainerrors.ErrValidationFailed.WrapMessage("invalid registration input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	output, err := h.uc.Register(c.Request().Context(), &usecase.RegisterInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.JSON(c, http.StatusCreated, authCreatedResponse{
		ID:    output.ID,
		Token: output.Token,
	})
}

// Login handles the login request. A successful login mints a fresh token.
func (h *AccountHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return domainerrors.ErrValidationFailed.WrapMessage("invalid login input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	output, err := h.uc.Login(c.Request().Context(), &usecase.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.JSON(c, http.StatusCreated, loginResponse{
		ID:           output.ID,
		ProfileImage: output.ProfileImage,
		Token:        output.Token,
	})
}

// GetProfile returns the authenticated caller's own record.
func (h *AccountHandler) GetProfile(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	user, err := h.uc.GetProfile(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.JSON(c, http.StatusOK, toUserView(user))
}

// UpdateProfile applies a partial update to the caller's record. The body
// is a multipart form; absent or empty fields keep their stored values.
func (h *AccountHandler) UpdateProfile(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	input := &usecase.UpdateProfileInput{
		Name:     c.FormValue("name"),
		Password: c.FormValue("password"),
		Bio:      c.FormValue("bio"),
	}

	objectName, err := h.storeAvatarIfPresent(c)
	if err != nil {
		return err
	}
	input.ProfileImage = objectName

	user, err := h.uc.UpdateProfile(c.Request().Context(), userID, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.JSON(c, http.StatusOK, toUserView(user))
}

// GetUserByID is the public user lookup.
func (h *AccountHandler) GetUserByID(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return domainerrors.ErrValidationFailed.WrapMessage("invalid user id")
	}

	user, err := h.uc.GetUserByID(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.JSON(c, http.StatusOK, toUserView(user))
}

// HealthCheck is a simple handler to check if the service is up.
func HealthCheck(c echo.Context) error {
	return response.JSON(c, http.StatusOK, map[string]string{"status": "ok"})
}

func currentUserID(c echo.Context) (uuid.UUID, error) {
	userID, ok := c.Get(middleware.ContextKeyUserID).(uuid.UUID)
	if !ok {
		return uuid.Nil, domainerrors.ErrUnauthorized.WrapMessage("user id missing from request context")
	}

	return userID, nil
}

// storeAvatarIfPresent uploads the optional profileImage form file and
// returns the stored object name, or "" when no file was sent.
func (h *AccountHandler) storeAvatarIfPresent(c echo.Context) (string, error) {
	fileHeader, err := c.FormFile("profileImage")
	if err != nil {
		// Echo returns an error both for "no such field" and for a
		// non-multipart body. Either way there is no file to store.
		return "", nil
	}

	if h.avatarStorage == nil {
		return "", domainerrors.ErrValidationFailed.WrapMessage("profile image uploads are not enabled")
	}

	src, err := fileHeader.Open()
	if err != nil {
		return "", domainerrors.ErrUserUpdateFailed.WrapMessage("failed to read profile image")
	}
	defer src.Close()

	objectName, err := h.avatarStorage.Store(c.Request().Context(), fileHeader.Filename, src, fileHeader.Size)
	if err != nil {
		return "", domainerrors.ErrUserUpdateFailed.WrapMessage("failed to store profile image")
	}

	return objectName, nil
}
