package handler

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	apperrors "theboar/internal/errors"
	"theboar/internal/model"
)

func newUserHandler() (*MockUserService, *UserHandler) {
	svc := new(MockUserService)
	return svc, NewUserHandler(svc, zerolog.Nop())
}

func decodeResult(t *testing.T, body []byte) ResultResponse {
	t.Helper()
	var resp ResultResponse
	require.NoError(t, json.Unmarshal(body, &resp))
	return resp
}

func TestUserHandler_ProfileHidesPassword(t *testing.T) {
	svc, h := newUserHandler()
	svc.On("FindByEmail", mock.Anything, "ana@x.com").Return(&model.User{
		Name: "Ana", Surname: "Souza", Email: "ana@x.com", CPF: "52998224725", Password: "secret1",
	}, nil)

	rec := serve(t, http.MethodGet, "/perfil", "", h.Profile, &session{email: "ana@x.com"}, false)
	require.Equal(t, http.StatusOK, rec.Code)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "Ana", body["nome"])
	assert.Equal(t, "52998224725", body["cpf"])
	assert.NotContains(t, rec.Body.String(), "secret1")
}

func TestUserHandler_UpdateProfile(t *testing.T) {
	t.Run("blank password keeps the stored one", func(t *testing.T) {
		svc, h := newUserHandler()
		svc.On("UpdateByEmail", mock.Anything, "ana@x.com", model.UserUpdate{
			Name: "Ana", Surname: "Lima", CPF: "52998224725",
		}).Return(nil)

		rec := serve(t, http.MethodPost, "/perfil/atualizar",
			`{"nome":"Ana","sobrenome":"Lima","cpf":"52998224725","senha":""}`,
			h.UpdateProfile, &session{email: "ana@x.com"}, false)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, ResultResponse{Success: true, Message: "Perfil atualizado com sucesso!"}, decodeResult(t, rec.Body.Bytes()))
		svc.AssertExpectations(t)
	})

	t.Run("new password is forwarded", func(t *testing.T) {
		svc, h := newUserHandler()
		svc.On("UpdateByEmail", mock.Anything, "ana@x.com", mock.MatchedBy(func(u model.UserUpdate) bool {
			return u.Password != nil && *u.Password == "newsecret"
		})).Return(nil)

		rec := serve(t, http.MethodPost, "/perfil/atualizar",
			`{"nome":"Ana","sobrenome":"Lima","cpf":"52998224725","senha":"newsecret"}`,
			h.UpdateProfile, &session{email: "ana@x.com"}, false)
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("validation errors are returned per field", func(t *testing.T) {
		svc, h := newUserHandler()
		svc.On("UpdateByEmail", mock.Anything, "ana@x.com", mock.Anything).
			Return(apperrors.NewValidationError(map[string]string{"cpf": "CPF inválido: deve conter 11 dígitos."}))

		rec := serve(t, http.MethodPost, "/perfil/atualizar", `{"nome":"Ana","sobrenome":"Lima","cpf":"1"}`,
			h.UpdateProfile, &session{email: "ana@x.com"}, false)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		resp := decodeResult(t, rec.Body.Bytes())
		assert.False(t, resp.Success)
		assert.Equal(t, "CPF inválido: deve conter 11 dígitos.", resp.Errors["cpf"])
	})
}

func TestUserHandler_AdminRoutes(t *testing.T) {
	t.Run("customer session is refused", func(t *testing.T) {
		svc, h := newUserHandler()

		rec := serve(t, http.MethodGet, "/perfil-admin/usuarios", "", h.ListUsers, &session{email: "ana@x.com"}, true)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		svc.AssertNotCalled(t, "ListAll", mock.Anything)
	})

	t.Run("list users", func(t *testing.T) {
		svc, h := newUserHandler()
		svc.On("ListAll", mock.Anything).Return([]model.User{{Email: "ana@x.com"}, {Email: "bia@x.com"}}, nil)

		rec := serve(t, http.MethodGet, "/perfil-admin/usuarios", "", h.ListUsers, &session{email: "admin@admin.com", admin: true}, true)
		require.Equal(t, http.StatusOK, rec.Code)
		var users []model.User
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &users))
		assert.Len(t, users, 2)
	})

	t.Run("update unknown user", func(t *testing.T) {
		svc, h := newUserHandler()
		svc.On("UpdateByEmail", mock.Anything, "ghost@x.com", mock.Anything).Return(apperrors.ErrNotFound)

		rec := serve(t, http.MethodPost, "/perfil-admin/atualizar-usuario",
			`{"email":"ghost@x.com","nome":"Ana","sobrenome":"Lima","cpf":"52998224725"}`,
			h.UpdateUser, &session{email: "admin@admin.com", admin: true}, true)
		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, "Usuário não encontrado.", decodeResult(t, rec.Body.Bytes()).Message)
	})

	t.Run("update requires an email", func(t *testing.T) {
		svc, h := newUserHandler()

		rec := serve(t, http.MethodPost, "/perfil-admin/atualizar-usuario", `{"nome":"Ana"}`,
			h.UpdateUser, &session{email: "admin@admin.com", admin: true}, true)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		svc.AssertNotCalled(t, "UpdateByEmail", mock.Anything, mock.Anything, mock.Anything)
	})
}
