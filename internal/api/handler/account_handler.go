package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/socialhub/socialhub-api/internal/core/domain"
	"github.com/socialhub/socialhub-api/internal/core/ports"
)

type AccountHandler struct {
	accountService ports.AccountService
}

func NewAccountHandler(accountService ports.AccountService) *AccountHandler {
	return &AccountHandler{accountService: accountService}
}

type linkAccountRequest struct {
	Platform string `json:"platform" validate:"required"`
	Username string `json:"username" validate:"required"`
}

type linkAccountResponse struct {
	ID string `json:"id"`
}

type listAccountsResponse struct {
	Accounts []domain.SocialAccount `json:"accounts"`
}

// Link connects a social account to the caller. OAuth is simulated; only the
// platform and username are stored.
//
// @Summary      Link a social account
// @Tags         accounts
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      linkAccountRequest  true  "Account details"
// @Success      201   {object}  linkAccountResponse
// @Failure      401   {object}  errorResponse
// @Router       /accounts [post]
func (h *AccountHandler) Link(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	var req linkAccountRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	account, err := h.accountService.Link(c.Request().Context(), user, ports.LinkAccountInput{
		Platform: req.Platform,
		Username: req.Username,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, linkAccountResponse{ID: account.ID})
}

// List returns the caller's linked social accounts.
//
// @Summary      List linked social accounts
// @Tags         accounts
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  listAccountsResponse
// @Failure      401  {object}  errorResponse
// @Router       /accounts [get]
func (h *AccountHandler) List(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	accounts, err := h.accountService.List(c.Request().Context(), user)
	if err != nil {
		return err
	}
	if accounts == nil {
		accounts = []domain.SocialAccount{}
	}

	return c.JSON(http.StatusOK, listAccountsResponse{Accounts: accounts})
}
