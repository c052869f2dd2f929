package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/coderonin/barstock-api/internal/application/auth"
	"github.com/coderonin/barstock-api/internal/application/estoque"
	"github.com/coderonin/barstock-api/internal/application/plano"
	"github.com/coderonin/barstock-api/internal/application/usecase"
	"github.com/coderonin/barstock-api/internal/domain/entity"
)

// RouterDeps dependências para o router.
type RouterDeps struct {
	AuthUC            *auth.UseCase
	ProdutoUC         *usecase.ProdutoUseCase
	FornecedorUC      *usecase.FornecedorUseCase
	MovimentacaoUC    *estoque.MovimentacaoUseCase
	PlanoUC           *plano.UseCase
	DashboardUC       *usecase.DashboardUseCase
	AdminUC           *usecase.AdminUseCase
	EstabelecimentoUC *usecase.EstabelecimentoUseCase
	JWTSecret         string
}

// Router registra as rotas da API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Rotas protegidas (requerem Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Usuários adicionais (protegido, gate de plano)
	protected.Post("/auth/usuarios", authHandler.CriarUsuario)

	// Produtos
	produtos := protected.Group("/produtos")
	produtoHandler := NewProdutoHandler(deps.ProdutoUC)
	produtos.Post("/", produtoHandler.Create)
	produtos.Get("/", produtoHandler.List)
	produtos.Put("/:id", produtoHandler.Update)
	produtos.Delete("/:id", produtoHandler.Delete)

	// Movimentações (razão de estoque)
	movimentacoes := protected.Group("/movimentacoes")
	movimentacaoHandler := NewMovimentacaoHandler(deps.MovimentacaoUC)
	movimentacoes.Post("/", movimentacaoHandler.Create)
	movimentacoes.Get("/", movimentacaoHandler.List)

	// Fornecedores
	fornecedores := protected.Group("/fornecedores")
	fornecedorHandler := NewFornecedorHandler(deps.FornecedorUC)
	fornecedores.Post("/", fornecedorHandler.Create)
	fornecedores.Get("/", fornecedorHandler.List)
	fornecedores.Put("/:id", fornecedorHandler.Update)
	fornecedores.Delete("/:id", fornecedorHandler.Delete)

	// Plano (motor de cotas, read-only)
	planoGroup := protected.Group("/plano")
	planoHandler := NewPlanoHandler(deps.PlanoUC)
	planoGroup.Get("/limites", planoHandler.Limites)
	planoGroup.Get("/uso", planoHandler.Uso)
	planoGroup.Get("/status", planoHandler.Status)

	// Dashboards
	dashboardHandler := NewDashboardHandler(deps.DashboardUC, deps.AdminUC)
	protected.Get("/dashboard", dashboardHandler.Get)
	protected.Get("/admin/dashboard", RequireRole(entity.RoleAdmin), dashboardHandler.Admin)

	// Estabelecimento do token
	estabelecimentoHandler := NewEstabelecimentoHandler(deps.EstabelecimentoUC)
	protected.Get("/estabelecimento/me", estabelecimentoHandler.Me)
}
