// Package auth contém os casos de uso de autenticação: registro do
// estabelecimento com seu ADMIN inicial, login e criação de usuários
// adicionais (com gate de plano).
package auth

import (
	"context"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/coderonin/barstock-api/internal/application/dto"
	"github.com/coderonin/barstock-api/internal/domain"
	"github.com/coderonin/barstock-api/internal/domain/entity"
	"github.com/coderonin/barstock-api/internal/domain/repository"
	"github.com/coderonin/barstock-api/pkg/jwt"
)

// JWTConfig configuração para geração de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// CadastroTxRunner executa o registro (estabelecimento + usuário ADMIN) em uma
// única transação.
type CadastroTxRunner interface {
	RunCadastro(ctx context.Context, fn func(
		estabelecimentoRepo repository.EstabelecimentoRepository,
		usuarioRepo repository.UsuarioRepository,
	) error) error
}

// LimiteChecker contrato mínimo do motor de cotas (gate de usuários).
type LimiteChecker interface {
	CheckLimite(ctx context.Context, estabelecimentoID, recurso string) error
}

// UseCase casos de uso de autenticação.
type UseCase struct {
	txRunner            CadastroTxRunner
	usuarioRepo         repository.UsuarioRepository
	estabelecimentoRepo repository.EstabelecimentoRepository
	limites             LimiteChecker
	jwtCfg              JWTConfig
}

// NewUseCase constrói o caso de uso de auth.
func NewUseCase(
	txRunner CadastroTxRunner,
	usuarioRepo repository.UsuarioRepository,
	estabelecimentoRepo repository.EstabelecimentoRepository,
	limites LimiteChecker,
	jwtCfg JWTConfig,
) *UseCase {
	return &UseCase{
		txRunner:            txRunner,
		usuarioRepo:         usuarioRepo,
		estabelecimentoRepo: estabelecimentoRepo,
		limites:             limites,
		jwtCfg:              jwtCfg,
	}
}

// Register cria o estabelecimento (plano FREE, limites padrão) e seu usuário
// ADMIN na mesma transação, e já devolve um token de sessão.
func (uc *UseCase) Register(ctx context.Context, in dto.RegisterRequest) (*dto.RegisterResponse, error) {
	if in.NomeEstabelecimento == "" || in.Email == "" || in.Senha == "" {
		return nil, domain.ErrEntradaInvalida
	}
	existing, err := uc.usuarioRepo.GetByEmail(ctx, in.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrEmailJaCadastrado
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Senha), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	nome := in.Nome
	if nome == "" {
		nome = in.Email
	}
	est := &entity.Estabelecimento{
		ID:             uuid.New().String(),
		Nome:           in.NomeEstabelecimento,
		Ativo:          true,
		Plano:          entity.PlanoFree,
		LimiteProdutos: entity.LimiteProdutosFree,
		LimiteUsuarios: entity.LimiteUsuariosFree,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	usuario := &entity.Usuario{
		ID:                uuid.New().String(),
		EstabelecimentoID: est.ID,
		Nome:              nome,
		Email:             in.Email,
		SenhaHash:         string(hash),
		Role:              entity.RoleAdmin,
		CreatedAt:         now,
		UpdatedAt:         now,
	}

	err = uc.txRunner.RunCadastro(ctx, func(
		estabelecimentoRepo repository.EstabelecimentoRepository,
		usuarioRepo repository.UsuarioRepository,
	) error {
		if err := estabelecimentoRepo.Create(ctx, est); err != nil {
			return err
		}
		return usuarioRepo.Create(ctx, usuario)
	})
	if err != nil {
		return nil, err
	}

	token, err := jwt.Generate(uc.jwtCfg.Secret, usuario.ID, est.ID, usuario.Role, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.RegisterResponse{Token: token}, nil
}

// Login verifica email/senha, gera o JWT e retorna token + usuário.
func (uc *UseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.LoginResponse, error) {
	usuario, err := uc.usuarioRepo.GetByEmail(ctx, in.Email)
	if err != nil {
		return nil, err
	}
	if usuario == nil {
		return nil, domain.ErrUsuarioNotFound
	}
	if err := bcrypt.CompareHashAndPassword([]byte(usuario.SenhaHash), []byte(in.Senha)); err != nil {
		return nil, domain.ErrSenhaInvalida
	}
	est, err := uc.estabelecimentoRepo.GetByID(ctx, usuario.EstabelecimentoID)
	if err != nil {
		return nil, err
	}
	if est == nil {
		return nil, domain.ErrEstabelecimentoNotFound
	}

	token, err := jwt.Generate(uc.jwtCfg.Secret, usuario.ID, usuario.EstabelecimentoID, usuario.Role, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		Token: token,
		User: dto.UsuarioLogin{
			ID:                  usuario.ID,
			Nome:                usuario.Nome,
			Email:               usuario.Email,
			Role:                usuario.Role,
			EstabelecimentoID:   usuario.EstabelecimentoID,
			EstabelecimentoNome: est.Nome,
		},
	}, nil
}

// CriarUsuario cria um usuário adicional no estabelecimento. Valida o limite
// de usuários do plano antes de criar; role padrão é FUNCIONARIO.
func (uc *UseCase) CriarUsuario(ctx context.Context, estabelecimentoID string, in dto.CreateUsuarioRequest) (*dto.UsuarioResponse, error) {
	if in.Email == "" || in.Senha == "" {
		return nil, domain.ErrEntradaInvalida
	}
	if err := uc.limites.CheckLimite(ctx, estabelecimentoID, domain.RecursoUsuario); err != nil {
		return nil, err
	}
	existing, err := uc.usuarioRepo.GetByEmail(ctx, in.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrEmailJaCadastrado
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Senha), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	role := in.Role
	if role == "" {
		role = entity.RoleFuncionario
	}
	now := time.Now()
	usuario := &entity.Usuario{
		ID:                uuid.New().String(),
		EstabelecimentoID: estabelecimentoID,
		Nome:              in.Nome,
		Email:             in.Email,
		SenhaHash:         string(hash),
		Role:              role,
		CreatedAt:         now,
		UpdatedAt:         now,
	}
	if err := uc.usuarioRepo.Create(ctx, usuario); err != nil {
		return nil, err
	}
	return &dto.UsuarioResponse{
		ID:    usuario.ID,
		Nome:  usuario.Nome,
		Email: usuario.Email,
		Role:  usuario.Role,
	}, nil
}
