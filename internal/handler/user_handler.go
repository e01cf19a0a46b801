package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"theboar/internal/auth"
	apperrors "theboar/internal/errors"
	"theboar/internal/model"
	"theboar/internal/service"
	"theboar/internal/validation"
)

// UserHandler serves the profile and admin user endpoints.
type UserHandler struct {
	svc service.UserService
	log zerolog.Logger
}

// NewUserHandler creates a handler layer.
func NewUserHandler(svc service.UserService, log zerolog.Logger) *UserHandler {
	return &UserHandler{svc: svc, log: log}
}

// ProfileUpdateRequest carries the editable profile fields. An empty or
// missing senha keeps the current password.
type ProfileUpdateRequest struct {
	Name     string  `json:"nome" form:"nome"`
	Surname  string  `json:"sobrenome" form:"sobrenome"`
	CPF      string  `json:"cpf" form:"cpf"`
	Password *string `json:"senha" form:"senha"`
}

func (r ProfileUpdateRequest) toUpdate() model.UserUpdate {
	upd := model.UserUpdate{Name: r.Name, Surname: r.Surname, CPF: r.CPF}
	if r.Password != nil && *r.Password != "" {
		upd.Password = r.Password
	}
	return upd
}

// AdminUserUpdateRequest is a profile update addressed by email.
type AdminUserUpdateRequest struct {
	Email string `json:"email" form:"email" validate:"required"`
	ProfileUpdateRequest
}

// Profile godoc
// @Summary Current user's profile
// @Tags profile
// @Produce json
// @Success 200 {object} model.User
// @Failure 401 {object} auth.UnauthorizedResponse
// @Failure 404 {object} ResultResponse
// @Router /perfil [get]
func (h *UserHandler) Profile(c echo.Context) error {
	claims := auth.ClaimsFromContext(c)
	user, err := h.svc.FindByEmail(c.Request().Context(), claims.Email)
	if err != nil {
		if httpErr := apperrors.MapErrorToHTTP(err); httpErr.Code == apperrors.CodeNotFound {
			return c.JSON(httpErr.StatusCode, ResultResponse{Message: httpErr.Message})
		}
		requestLog(c, h.log).Error().Err(err).Msg("load profile")
		return c.JSON(http.StatusInternalServerError, ResultResponse{Message: "Erro ao carregar informações do perfil."})
	}
	return c.JSON(http.StatusOK, user)
}

// UpdateProfile godoc
// @Summary Update the current user's profile
// @Tags profile
// @Accept json
// @Produce json
// @Param request body ProfileUpdateRequest true "Profile fields"
// @Success 200 {object} ResultResponse
// @Failure 400 {object} ResultResponse
// @Failure 401 {object} auth.UnauthorizedResponse
// @Router /perfil/atualizar [post]
func (h *UserHandler) UpdateProfile(c echo.Context) error {
	var req ProfileUpdateRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ResultResponse{Message: "Requisição inválida."})
	}

	email := auth.ClaimsFromContext(c).Email
	if err := h.svc.UpdateByEmail(c.Request().Context(), email, req.toUpdate()); err != nil {
		return h.updateFailed(c, err, "Erro ao atualizar dados do perfil.")
	}
	return c.JSON(http.StatusOK, ResultResponse{Success: true, Message: "Perfil atualizado com sucesso!"})
}

// ListUsers godoc
// @Summary List users
// @Tags admin
// @Produce json
// @Success 200 {array} model.User
// @Failure 401 {object} auth.UnauthorizedResponse
// @Router /perfil-admin/usuarios [get]
func (h *UserHandler) ListUsers(c echo.Context) error {
	users, err := h.svc.ListAll(c.Request().Context())
	if err != nil {
		requestLog(c, h.log).Error().Err(err).Msg("list users")
		return c.JSON(http.StatusInternalServerError, ResultResponse{Message: "Erro ao carregar lista de usuários."})
	}
	return c.JSON(http.StatusOK, users)
}

// UpdateUser godoc
// @Summary Update any user
// @Tags admin
// @Accept json
// @Produce json
// @Param request body AdminUserUpdateRequest true "User fields"
// @Success 200 {object} ResultResponse
// @Failure 400 {object} ResultResponse
// @Failure 401 {object} auth.UnauthorizedResponse
// @Router /perfil-admin/atualizar-usuario [post]
func (h *UserHandler) UpdateUser(c echo.Context) error {
	var req AdminUserUpdateRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ResultResponse{Message: "Requisição inválida."})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ResultResponse{
			Message: "Erro ao atualizar dados do usuário.",
			Errors:  map[string]string{validation.FieldEmail: validation.MsgInvalidEmail},
		})
	}

	if err := h.svc.UpdateByEmail(c.Request().Context(), req.Email, req.toUpdate()); err != nil {
		return h.updateFailed(c, err, "Erro ao atualizar dados do usuário.")
	}
	return c.JSON(http.StatusOK, ResultResponse{Success: true, Message: "Usuário atualizado com sucesso!"})
}

func (h *UserHandler) updateFailed(c echo.Context, err error, msg string) error {
	httpErr := apperrors.MapErrorToHTTP(err)
	resp := ResultResponse{Message: msg}
	var vErr *apperrors.ValidationError
	switch httpErr.Code {
	case apperrors.CodeValidation:
		errors.As(err, &vErr)
		resp.Errors = vErr.Fields
	case apperrors.CodeDuplicateCPF:
		resp.Errors = map[string]string{validation.FieldCPF: httpErr.Message}
	case apperrors.CodeNotFound:
		resp.Message = httpErr.Message
	default:
		requestLog(c, h.log).Error().Err(err).Msg("update user")
	}
	return c.JSON(httpErr.StatusCode, resp)
}
