package routes

import (
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"sistema-ti/internal/repositories"
	"sistema-ti/internal/services"
	"sistema-ti/pkg/config"
	"sistema-ti/pkg/middleware"
	"sistema-ti/pkg/service"
)

// InitRouter monta toda a árvore de rotas. Só o login fica fora do grupo
// autenticado.
func InitRouter(e *echo.Echo, kv repositories.KVStoreInterface, jwtSvc service.JWTService, logger *zap.Logger, cfg *config.Config) error {
	logger.Info("InitRouter: montando as rotas da API")

	api := e.Group("/api")
	authMW := middleware.NewAuthMiddleware(jwtSvc, logger)

	equipamentoRepo := repositories.NewEquipamentoRepository(kv, logger)
	chamadoRepo := repositories.NewChamadoRepository(kv, logger)
	avaliacaoRepo := repositories.NewAvaliacaoRepository(kv, logger)

	usuarios, err := services.MontarUsuariosPadrao(cfg.Usuarios)
	if err != nil {
		logger.Error("InitRouter: falha ao preparar os usuários padrão", zap.Error(err))
		return err
	}

	equipamentoService := services.NewEquipamentoService(equipamentoRepo, logger)
	chamadoService := services.NewChamadoService(chamadoRepo, logger)
	avaliacaoService := services.NewAvaliacaoService(avaliacaoRepo, logger)
	relatorioService := services.NewRelatorioService(equipamentoRepo, chamadoRepo, avaliacaoRepo, logger)
	dashboardService := services.NewDashboardService(equipamentoRepo, chamadoRepo, cfg.Referencias.Escolas, logger)
	authService := services.NewAuthService(usuarios, jwtSvc, logger)

	runAuthRouter(api, authService, logger)

	secureGroup := api.Group("", authMW.Auth)
	runEquipamentoRouter(secureGroup, equipamentoService, logger)
	runChamadoRouter(secureGroup, chamadoService, logger)
	runAvaliacaoRouter(secureGroup, avaliacaoService, logger)
	runRelatorioRouter(secureGroup, relatorioService, logger)
	runDashboardRouter(secureGroup, dashboardService, logger)
	runReferenciaRouter(secureGroup, cfg.Referencias, logger)

	logger.Info("InitRouter: rotas montadas")
	return nil
}
