package auth_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/coderonin/barstock-api/internal/application/auth"
	"github.com/coderonin/barstock-api/internal/application/dto"
	"github.com/coderonin/barstock-api/internal/domain"
	"github.com/coderonin/barstock-api/internal/domain/entity"
	"github.com/coderonin/barstock-api/internal/domain/repository"
	pkgjwt "github.com/coderonin/barstock-api/pkg/jwt"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes em memória
// ──────────────────────────────────────────────────────────────────────────────

type memUsuarioRepo struct {
	porEmail map[string]*entity.Usuario
}

func newMemUsuarioRepo() *memUsuarioRepo {
	return &memUsuarioRepo{porEmail: make(map[string]*entity.Usuario)}
}

func (r *memUsuarioRepo) Create(ctx context.Context, u *entity.Usuario) error {
	if _, ok := r.porEmail[u.Email]; ok {
		return domain.ErrEmailJaCadastrado
	}
	cp := *u
	r.porEmail[u.Email] = &cp
	return nil
}

func (r *memUsuarioRepo) GetByID(ctx context.Context, id string) (*entity.Usuario, error) {
	for _, u := range r.porEmail {
		if u.ID == id {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *memUsuarioRepo) GetByEmail(ctx context.Context, email string) (*entity.Usuario, error) {
	u, ok := r.porEmail[email]
	if !ok {
		return nil, nil
	}
	cp := *u
	return &cp, nil
}

func (r *memUsuarioRepo) CountByEstabelecimento(ctx context.Context, estabelecimentoID string) (int, error) {
	n := 0
	for _, u := range r.porEmail {
		if u.EstabelecimentoID == estabelecimentoID {
			n++
		}
	}
	return n, nil
}

func (r *memUsuarioRepo) Count(ctx context.Context) (int, error) { return len(r.porEmail), nil }

type memEstabelecimentoRepo struct {
	porID map[string]*entity.Estabelecimento
}

func newMemEstabelecimentoRepo() *memEstabelecimentoRepo {
	return &memEstabelecimentoRepo{porID: make(map[string]*entity.Estabelecimento)}
}

func (r *memEstabelecimentoRepo) Create(ctx context.Context, est *entity.Estabelecimento) error {
	cp := *est
	r.porID[est.ID] = &cp
	return nil
}

func (r *memEstabelecimentoRepo) GetByID(ctx context.Context, id string) (*entity.Estabelecimento, error) {
	est, ok := r.porID[id]
	if !ok {
		return nil, nil
	}
	cp := *est
	return &cp, nil
}

func (r *memEstabelecimentoRepo) Count(ctx context.Context) (int, error) { return len(r.porID), nil }
func (r *memEstabelecimentoRepo) CountByPlano(ctx context.Context, plano string) (int, error) {
	n := 0
	for _, est := range r.porID {
		if est.Plano == plano {
			n++
		}
	}
	return n, nil
}

// fakeCadastroRunner passa os repositórios reais; um erro no callback desfaz o
// estabelecimento criado (rollback simulado).
type fakeCadastroRunner struct {
	estabelecimentoRepo *memEstabelecimentoRepo
	usuarioRepo         *memUsuarioRepo
}

func (r *fakeCadastroRunner) RunCadastro(ctx context.Context, fn func(
	estabelecimentoRepo repository.EstabelecimentoRepository,
	usuarioRepo repository.UsuarioRepository,
) error) error {
	snapshot := make(map[string]*entity.Estabelecimento, len(r.estabelecimentoRepo.porID))
	for id, est := range r.estabelecimentoRepo.porID {
		cp := *est
		snapshot[id] = &cp
	}
	if err := fn(r.estabelecimentoRepo, r.usuarioRepo); err != nil {
		r.estabelecimentoRepo.porID = snapshot
		return err
	}
	return nil
}

type allowAllLimites struct{}

func (allowAllLimites) CheckLimite(ctx context.Context, estabelecimentoID, recurso string) error {
	return nil
}

type negaLimites struct{}

func (negaLimites) CheckLimite(ctx context.Context, estabelecimentoID, recurso string) error {
	return &domain.LimiteExcedidoError{Recurso: domain.RecursoUsuario, Limite: 1}
}

const testSecret = "segredo-de-teste"

func buildAuth(limites auth.LimiteChecker) (*auth.UseCase, *memUsuarioRepo, *memEstabelecimentoRepo) {
	usuarioRepo := newMemUsuarioRepo()
	estabelecimentoRepo := newMemEstabelecimentoRepo()
	runner := &fakeCadastroRunner{estabelecimentoRepo: estabelecimentoRepo, usuarioRepo: usuarioRepo}
	uc := auth.NewUseCase(runner, usuarioRepo, estabelecimentoRepo, limites, auth.JWTConfig{
		Secret:     testSecret,
		ExpMinutes: 60,
		Issuer:     "barstock-api-test",
	})
	return uc, usuarioRepo, estabelecimentoRepo
}

// ──────────────────────────────────────────────────────────────────────────────
// Register
// ──────────────────────────────────────────────────────────────────────────────

func TestRegister_CriaEstabelecimentoFreeComAdmin(t *testing.T) {
	uc, usuarioRepo, estabelecimentoRepo := buildAuth(allowAllLimites{})

	out, err := uc.Register(context.Background(), dto.RegisterRequest{
		NomeEstabelecimento: "Boteco da Esquina",
		Nome:                "Maria",
		Email:               "maria@boteco.com",
		Senha:               "senha-forte",
	})
	require.NoError(t, err)
	require.NotEmpty(t, out.Token)

	usuario, err := usuarioRepo.GetByEmail(context.Background(), "maria@boteco.com")
	require.NoError(t, err)
	require.NotNil(t, usuario)
	assert.Equal(t, entity.RoleAdmin, usuario.Role)
	assert.NotEqual(t, "senha-forte", usuario.SenhaHash, "a senha nunca é guardada em claro")

	est, err := estabelecimentoRepo.GetByID(context.Background(), usuario.EstabelecimentoID)
	require.NoError(t, err)
	require.NotNil(t, est)
	assert.Equal(t, entity.PlanoFree, est.Plano)
	assert.Equal(t, entity.LimiteProdutosFree, est.LimiteProdutos)
	assert.Equal(t, entity.LimiteUsuariosFree, est.LimiteUsuarios)

	// O token carrega a identidade completa.
	userID, estabelecimentoID, role, err := pkgjwt.Parse(testSecret, out.Token)
	require.NoError(t, err)
	assert.Equal(t, usuario.ID, userID)
	assert.Equal(t, est.ID, estabelecimentoID)
	assert.Equal(t, entity.RoleAdmin, role)
}

func TestRegister_EmailDuplicado(t *testing.T) {
	uc, _, _ := buildAuth(allowAllLimites{})

	in := dto.RegisterRequest{
		NomeEstabelecimento: "Bar A",
		Email:               "dono@bar.com",
		Senha:               "12345678",
	}
	_, err := uc.Register(context.Background(), in)
	require.NoError(t, err)

	in.NomeEstabelecimento = "Bar B"
	_, err = uc.Register(context.Background(), in)
	assert.ErrorIs(t, err, domain.ErrEmailJaCadastrado)
}

func TestRegister_EntradaInvalida(t *testing.T) {
	uc, _, _ := buildAuth(allowAllLimites{})
	_, err := uc.Register(context.Background(), dto.RegisterRequest{Email: "x@y.com"})
	assert.ErrorIs(t, err, domain.ErrEntradaInvalida)
}

// ──────────────────────────────────────────────────────────────────────────────
// Login
// ──────────────────────────────────────────────────────────────────────────────

func TestLogin_CredenciaisValidas(t *testing.T) {
	uc, _, _ := buildAuth(allowAllLimites{})
	_, err := uc.Register(context.Background(), dto.RegisterRequest{
		NomeEstabelecimento: "Boteco",
		Nome:                "João",
		Email:               "joao@boteco.com",
		Senha:               "minha-senha",
	})
	require.NoError(t, err)

	out, err := uc.Login(context.Background(), dto.LoginRequest{Email: "joao@boteco.com", Senha: "minha-senha"})
	require.NoError(t, err)
	assert.NotEmpty(t, out.Token)
	assert.Equal(t, "joao@boteco.com", out.User.Email)
	assert.Equal(t, "Boteco", out.User.EstabelecimentoNome)
	assert.Equal(t, entity.RoleAdmin, out.User.Role)
}

func TestLogin_SenhaErrada(t *testing.T) {
	uc, _, _ := buildAuth(allowAllLimites{})
	_, err := uc.Register(context.Background(), dto.RegisterRequest{
		NomeEstabelecimento: "Boteco",
		Email:               "joao@boteco.com",
		Senha:               "minha-senha",
	})
	require.NoError(t, err)

	_, err = uc.Login(context.Background(), dto.LoginRequest{Email: "joao@boteco.com", Senha: "outra-senha"})
	assert.ErrorIs(t, err, domain.ErrSenhaInvalida)
}

func TestLogin_UsuarioInexistente(t *testing.T) {
	uc, _, _ := buildAuth(allowAllLimites{})
	_, err := uc.Login(context.Background(), dto.LoginRequest{Email: "ninguem@nada.com", Senha: "x"})
	assert.ErrorIs(t, err, domain.ErrUsuarioNotFound)
}

// ──────────────────────────────────────────────────────────────────────────────
// CriarUsuario
// ──────────────────────────────────────────────────────────────────────────────

func TestCriarUsuario_RoleDefaultFuncionario(t *testing.T) {
	uc, usuarioRepo, _ := buildAuth(allowAllLimites{})

	out, err := uc.CriarUsuario(context.Background(), "est-1", dto.CreateUsuarioRequest{
		Nome:  "Pedro",
		Email: "pedro@boteco.com",
		Senha: "12345678",
	})
	require.NoError(t, err)
	assert.Equal(t, entity.RoleFuncionario, out.Role)

	usuario, err := usuarioRepo.GetByEmail(context.Background(), "pedro@boteco.com")
	require.NoError(t, err)
	require.NotNil(t, usuario)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(usuario.SenhaHash), []byte("12345678")))
}

func TestCriarUsuario_LimiteDoPlanoBloqueia(t *testing.T) {
	uc, usuarioRepo, _ := buildAuth(negaLimites{})

	_, err := uc.CriarUsuario(context.Background(), "est-1", dto.CreateUsuarioRequest{
		Email: "extra@boteco.com",
		Senha: "12345678",
	})
	assert.True(t, domain.IsLimiteExcedido(err))
	assert.Empty(t, usuarioRepo.porEmail)
}
