package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"sistema-ti/internal/dto"
	"sistema-ti/pkg/config"
	apperrors "sistema-ti/pkg/errors"
	"sistema-ti/pkg/service"
)

func novoAuthServiceParaTeste(t *testing.T) *AuthService {
	t.Helper()
	usuarios, err := MontarUsuariosPadrao([]config.UsuarioPadrao{
		{ID: 1, Username: "admin", Senha: "admin123"},
	})
	require.NoError(t, err)

	jwtSvc := service.NewJWTService("segredo-de-teste", time.Hour, time.Hour, zap.NewNop())
	return NewAuthService(usuarios, jwtSvc, zap.NewNop())
}

func TestLoginComCredenciaisValidas(t *testing.T) {
	svc := novoAuthServiceParaTeste(t)

	res, err := svc.Login(context.Background(), dto.LoginDTO{Username: "admin", Password: "admin123"})
	require.NoError(t, err)
	assert.NotEmpty(t, res.AccessToken)
	assert.NotEmpty(t, res.RefreshToken)
	assert.Equal(t, 1, res.User.ID)
	assert.Equal(t, "admin", res.User.Username)
}

func TestLoginRejeitaSenhaIncorreta(t *testing.T) {
	svc := novoAuthServiceParaTeste(t)

	_, err := svc.Login(context.Background(), dto.LoginDTO{Username: "admin", Password: "outra"})
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
}

func TestLoginRejeitaUsuarioDesconhecido(t *testing.T) {
	svc := novoAuthServiceParaTeste(t)

	_, err := svc.Login(context.Background(), dto.LoginDTO{Username: "ninguem", Password: "admin123"})
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
}

func TestMontarUsuariosPadraoNaoRetemSenhaEmTextoPuro(t *testing.T) {
	usuarios, err := MontarUsuariosPadrao([]config.UsuarioPadrao{
		{ID: 2, Username: "ti.admin", Senha: "ti2024"},
	})
	require.NoError(t, err)
	require.Len(t, usuarios, 1)
	assert.NotEqual(t, "ti2024", usuarios[0].SenhaHash)
	assert.NotEmpty(t, usuarios[0].SenhaHash)
}
