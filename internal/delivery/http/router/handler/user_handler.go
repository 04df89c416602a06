package handler

import (
	"net/http"
	"time"

	"linkup/internal/delivery/http/middleware"
	"linkup/internal/delivery/http/response"
	"linkup/internal/domain/entity"
	domainerrors "linkup/internal/domain/errors"
	"linkup/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// UserHandler holds dependencies for profile-related handlers.
type UserHandler struct {
	accountUC usecase.AccountUsecase
	profileUC usecase.ProfileUsecase
}

// NewUserHandler is the constructor for UserHandler, injected by Fx.
func NewUserHandler(accountUC usecase.AccountUsecase, profileUC usecase.ProfileUsecase) *UserHandler {
	return &UserHandler{
		accountUC: accountUC,
		profileUC: profileUC,
	}
}

// userSummary is the minimal public shape of a user. The password hash never
// appears in any response shape.
type userSummary struct {
	ID        string `json:"id"`
	Username  string `json:"username"`
	Email     string `json:"email"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

// profileResponse is the full self-view of an account.
type profileResponse struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	MobileNumber string    `json:"mobileNumber"`
	FirstName    string    `json:"firstName"`
	LastName     string    `json:"lastName"`
	Age          int       `json:"age"`
	Bio          string    `json:"bio"`
	ProfilePic   string    `json:"profilePic"`
	Interests    []string  `json:"interests"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// searchResult is the public view returned by user search. Contact fields
// stay private.
type searchResult struct {
	ID         string   `json:"id"`
	Username   string   `json:"username"`
	FirstName  string   `json:"firstName"`
	LastName   string   `json:"lastName"`
	Bio        string   `json:"bio"`
	ProfilePic string   `json:"profilePic"`
	Interests  []string `json:"interests"`
}

type updateProfileRequest struct {
	FirstName    *string  `json:"firstName" validate:"omitempty,max=100"`
	LastName     *string  `json:"lastName" validate:"omitempty,max=100"`
	Age          *int     `json:"age" validate:"omitempty,gte=13,lte=120"`
	Bio          *string  `json:"bio" validate:"omitempty,max=1000"`
	ProfilePic   *string  `json:"profilePic" validate:"omitempty,max=512"`
	MobileNumber *string  `json:"mobileNumber" validate:"omitempty,min=7,max=32"`
	Interests    []string `json:"interests" validate:"omitempty,dive,max=50"`
}

type deleteAccountResponse struct {
	TokenInvalidated bool `json:"tokenInvalidated"`
}

func toUserSummary(user *entity.User) *userSummary {
	if user == nil {
		return nil
	}

	return &userSummary{
		ID:        user.ID.String(),
		Username:  user.Username,
		Email:     user.Email,
		FirstName: user.FirstName,
		LastName:  user.LastName,
	}
}

func toProfileResponse(user *entity.User) *profileResponse {
	return &profileResponse{
		ID:           user.ID.String(),
		Username:     user.Username,
		Email:        user.Email,
		MobileNumber: user.MobileNumber,
		FirstName:    user.FirstName,
		LastName:     user.LastName,
		Age:          user.Age,
		Bio:          user.Bio,
		ProfilePic:   user.ProfilePic,
		Interests:    user.Interests,
		CreatedAt:    user.CreatedAt,
		UpdatedAt:    user.UpdatedAt,
	}
}

// GetProfile handles the request to get the current user's profile.
func (h *UserHandler) GetProfile(c echo.Context) error {
	identity, ok := middleware.IdentityFrom(c)
	if !ok {
		return errors.WithStack(domainerrors.ErrUnauthorized)
	}

	user, err := h.profileUC.GetProfile(c.Request().Context(), identity.UserID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toProfileResponse(user), "Profile retrieved successfully")
}

// UpdateProfile handles a partial update of the current user's profile.
func (h *UserHandler) UpdateProfile(c echo.Context) error {
	identity, ok := middleware.IdentityFrom(c)
	if !ok {
		return errors.WithStack(domainerrors.ErrUnauthorized)
	}

	var req updateProfileRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid profile update input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	user, err := h.profileUC.UpdateProfile(c.Request().Context(), identity.UserID, &usecase.UpdateProfileInput{
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Age:          req.Age,
		Bio:          req.Bio,
		ProfilePic:   req.ProfilePic,
		MobileNumber: req.MobileNumber,
		Interests:    req.Interests,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toProfileResponse(user), "Profile updated successfully")
}

// SearchProfiles handles the user search request.
func (h *UserHandler) SearchProfiles(c echo.Context) error {
	query := c.QueryParam("query")

	users, err := h.profileUC.SearchUsers(c.Request().Context(), query)
	if err != nil {
		return errors.WithStack(err)
	}

	results := make([]*searchResult, 0, len(users))
	for _, user := range users {
		results = append(results, &searchResult{
			ID:         user.ID.String(),
			Username:   user.Username,
			FirstName:  user.FirstName,
			LastName:   user.LastName,
			Bio:        user.Bio,
			ProfilePic: user.ProfilePic,
			Interests:  user.Interests,
		})
	}

	return response.Success(c, http.StatusOK, results, "Search completed")
}

// DeleteAccount handles deletion of the current user's account.
func (h *UserHandler) DeleteAccount(c echo.Context) error {
	identity, ok := middleware.IdentityFrom(c)
	if !ok {
		return errors.WithStack(domainerrors.ErrUnauthorized)
	}

	output, err := h.accountUC.DeleteAccount(c.Request().Context(), identity.UserID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, &deleteAccountResponse{
		TokenInvalidated: output.TokenInvalidated,
	}, "Account deleted")
}
