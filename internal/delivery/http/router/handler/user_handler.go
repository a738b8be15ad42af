package handler

import (
	"log/slog"
	"net/http"

	"holodex/internal/delivery/http/response"
	domainerrors "holodex/internal/domain/errors"
	"holodex/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// UserHandlerParams holds dependencies for UserHandler, injected by Fx.
type UserHandlerParams struct {
	fx.In

	CatalogUC  usecase.CatalogUsecase
	FavoriteUC usecase.FavoriteUsecase
	Logger     *slog.Logger
}

// UserHandler serves the user listing and the per-user favorites listing.
type UserHandler struct {
	catalogUC  usecase.CatalogUsecase
	favoriteUC usecase.FavoriteUsecase
	logger     *slog.Logger
}

// NewUserHandler is the constructor for UserHandler.
func NewUserHandler(params UserHandlerParams) *UserHandler {
	return &UserHandler{
		catalogUC:  params.CatalogUC,
		favoriteUC: params.FavoriteUC,
		logger:     params.Logger,
	}
}

// FavoriteRequest carries the acting user for favorites endpoints. The id
// arrives in the JSON body, including on GET and DELETE requests.
type FavoriteRequest struct {
	UserID *uint `json:"user_id" validate:"required"`
}

// ListUsers handles GET /users.
func (h *UserHandler) ListUsers(c echo.Context) error {
	users, err := h.catalogUC.ListUsers(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.JSON(c, http.StatusOK, users)
}

// ListFavorites handles GET /users/favorites.
func (h *UserHandler) ListFavorites(c echo.Context) error {
	userID, err := bindUserID(c)
	if err != nil {
		return err
	}

	favorites, err := h.favoriteUC.ListFavorites(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.JSON(c, http.StatusOK, favorites)
}

// bindUserID extracts user_id from the JSON body. A missing body, malformed
// JSON or an absent field all yield the same 400 outcome.
func bindUserID(c echo.Context) (uint, error) {
	var req FavoriteRequest
	if err := c.Bind(&req); err != nil {
		return 0, domainerrors.ErrUserIDRequired
	}

	if err := c.Validate(&req); err != nil {
		return 0, domainerrors.ErrUserIDRequired
	}

	return *req.UserID, nil
}
