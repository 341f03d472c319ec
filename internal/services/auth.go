package services

import (
	"context"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"sistema-ti/internal/dto"
	"sistema-ti/internal/entities"
	"sistema-ti/pkg/config"
	apperrors "sistema-ti/pkg/errors"
	"sistema-ti/pkg/service"
)

type AuthServiceInterface interface {
	Login(ctx context.Context, payload dto.LoginDTO) (*dto.LoginResponseDTO, error)
}

// AuthService autentica contra os usuários fixos da configuração. Não existe
// cadastro: a lista é montada uma vez na inicialização.
type AuthService struct {
	usuarios   []entities.User
	jwtService service.JWTService
	logger     *zap.Logger
}

func NewAuthService(usuarios []entities.User, jwtService service.JWTService, logger *zap.Logger) *AuthService {
	return &AuthService{
		usuarios:   usuarios,
		jwtService: jwtService,
		logger:     logger,
	}
}

func (s *AuthService) Login(ctx context.Context, payload dto.LoginDTO) (*dto.LoginResponseDTO, error) {
	var usuario *entities.User
	for i := range s.usuarios {
		if s.usuarios[i].Username == payload.Username {
			usuario = &s.usuarios[i]
			break
		}
	}
	if usuario == nil {
		return nil, apperrors.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(usuario.SenhaHash), []byte(payload.Password)); err != nil {
		s.logger.Warn("tentativa de login com senha incorreta", zap.String("username", payload.Username))
		return nil, apperrors.ErrInvalidCredentials
	}

	accessToken, refreshToken, err := s.jwtService.GenerateTokens(usuario.ID)
	if err != nil {
		return nil, err
	}

	return &dto.LoginResponseDTO{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		User: dto.UserDTO{
			ID:       usuario.ID,
			Username: usuario.Username,
			Role:     usuario.Role,
		},
	}, nil
}

// MontarUsuariosPadrao transforma as senhas da configuração em hashes bcrypt.
// As senhas em texto puro não ficam retidas depois daqui.
func MontarUsuariosPadrao(usuarios []config.UsuarioPadrao) ([]entities.User, error) {
	out := make([]entities.User, 0, len(usuarios))
	for _, u := range usuarios {
		hash, err := bcrypt.GenerateFromPassword([]byte(u.Senha), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		out = append(out, entities.User{
			ID:        u.ID,
			Username:  u.Username,
			SenhaHash: string(hash),
			Role:      "admin",
		})
	}
	return out, nil
}
