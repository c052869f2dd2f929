package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/coderonin/barstock-api/internal/application/auth"
	"github.com/coderonin/barstock-api/internal/application/estoque"
	"github.com/coderonin/barstock-api/internal/application/plano"
	"github.com/coderonin/barstock-api/internal/application/usecase"
	"github.com/coderonin/barstock-api/internal/infrastructure/postgres"
	httpRouter "github.com/coderonin/barstock-api/internal/interfaces/http"
	"github.com/coderonin/barstock-api/pkg/config"
	"github.com/coderonin/barstock-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("carregar configuração: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicação")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexão com PostgreSQL")
	}
	defer pool.Close()

	estabelecimentoRepo := postgres.NewEstabelecimentoRepository(pool)
	usuarioRepo := postgres.NewUsuarioRepository(pool)
	produtoRepo := postgres.NewProdutoRepository(pool)
	fornecedorRepo := postgres.NewFornecedorRepository(pool)
	movimentacaoRepo := postgres.NewMovimentacaoRepository(pool)
	dashboardRepo := postgres.NewDashboardRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	planoUC := plano.NewUseCase(estabelecimentoRepo, produtoRepo, usuarioRepo, movimentacaoRepo)
	movimentacaoUC := estoque.NewMovimentacaoUseCase(txRunner, movimentacaoRepo, planoUC)
	produtoUC := usecase.NewProdutoUseCase(produtoRepo, planoUC)
	fornecedorUC := usecase.NewFornecedorUseCase(fornecedorRepo)
	dashboardUC := usecase.NewDashboardUseCase(dashboardRepo)
	adminUC := usecase.NewAdminUseCase(estabelecimentoRepo, usuarioRepo)
	estabelecimentoUC := usecase.NewEstabelecimentoUseCase(estabelecimentoRepo)
	authUC := auth.NewUseCase(txRunner, usuarioRepo, estabelecimentoRepo, planoUC, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI em local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "BarStock API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:            authUC,
		ProdutoUC:         produtoUC,
		FornecedorUC:      fornecedorUC,
		MovimentacaoUC:    movimentacaoUC,
		PlanoUC:           planoUC,
		DashboardUC:       dashboardUC,
		AdminUC:           adminUC,
		EstabelecimentoUC: estabelecimentoUC,
		JWTSecret:         cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("sinal de desligamento recebido, encerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("encerramento do servidor")
	}

	log.Info().Msg("aplicação encerrada")
}
