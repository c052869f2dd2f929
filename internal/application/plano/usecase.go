// Package plano contém o motor de cotas: valida os limites do plano de
// assinatura (FREE/PRO) antes de cada criação de recurso e expõe as visões
// read-only de limites, uso e status.
package plano

import (
	"context"
	"math"
	"time"

	"github.com/coderonin/barstock-api/internal/application/dto"
	"github.com/coderonin/barstock-api/internal/domain"
	"github.com/coderonin/barstock-api/internal/domain/entity"
	"github.com/coderonin/barstock-api/internal/domain/repository"
)

// LimiteMovimentacaoMensalFree teto fixo de movimentações por mês no plano FREE.
// Não é configurável por estabelecimento.
const LimiteMovimentacaoMensalFree = 1000

// LimiteIlimitado sentinela para "sem teto" (plano PRO). Nunca entra em divisão
// de percentual.
const LimiteIlimitado = -1

// UseCase motor de cotas do plano. Só faz leituras: é um gate consultivo,
// chamado antes de cada operação de criação guardada. Perto do limite, duas
// criações concorrentes podem passar pelo check ao mesmo tempo — tolerância
// aceita, não serializamos aqui.
type UseCase struct {
	estabelecimentoRepo repository.EstabelecimentoRepository
	produtoRepo         repository.ProdutoRepository
	usuarioRepo         repository.UsuarioRepository
	movimentacaoRepo    repository.MovimentacaoRepository
}

// NewUseCase constrói o motor de cotas.
func NewUseCase(
	estabelecimentoRepo repository.EstabelecimentoRepository,
	produtoRepo repository.ProdutoRepository,
	usuarioRepo repository.UsuarioRepository,
	movimentacaoRepo repository.MovimentacaoRepository,
) *UseCase {
	return &UseCase{
		estabelecimentoRepo: estabelecimentoRepo,
		produtoRepo:         produtoRepo,
		usuarioRepo:         usuarioRepo,
		movimentacaoRepo:    movimentacaoRepo,
	}
}

// CheckLimite verifica se o estabelecimento pode criar mais uma unidade do
// recurso. PRO nunca falha; FREE compara a contagem atual com o limite.
// Retorna *domain.LimiteExcedidoError quando o teto foi atingido.
func (uc *UseCase) CheckLimite(ctx context.Context, estabelecimentoID, recurso string) error {
	est, err := uc.estabelecimentoRepo.GetByID(ctx, estabelecimentoID)
	if err != nil {
		return err
	}
	if est == nil {
		return domain.ErrEstabelecimentoNotFound
	}
	if est.Plano == entity.PlanoPro {
		return nil
	}

	switch recurso {
	case domain.RecursoProduto:
		count, err := uc.produtoRepo.CountByEstabelecimento(ctx, estabelecimentoID)
		if err != nil {
			return err
		}
		if count >= est.LimiteProdutos {
			return &domain.LimiteExcedidoError{Recurso: domain.RecursoProduto, Limite: est.LimiteProdutos}
		}
	case domain.RecursoUsuario:
		count, err := uc.usuarioRepo.CountByEstabelecimento(ctx, estabelecimentoID)
		if err != nil {
			return err
		}
		if count >= est.LimiteUsuarios {
			return &domain.LimiteExcedidoError{Recurso: domain.RecursoUsuario, Limite: est.LimiteUsuarios}
		}
	case domain.RecursoMovimentacao:
		de, ate := janelaMesAtual(time.Now())
		count, err := uc.movimentacaoRepo.CountByPeriodo(ctx, estabelecimentoID, de, ate)
		if err != nil {
			return err
		}
		if count >= LimiteMovimentacaoMensalFree {
			return &domain.LimiteExcedidoError{Recurso: domain.RecursoMovimentacao, Limite: LimiteMovimentacaoMensalFree}
		}
	}
	return nil
}

// GetLimites retorna o plano e os limites efetivos. PRO reporta todos os
// limites como LimiteIlimitado (-1).
func (uc *UseCase) GetLimites(ctx context.Context, estabelecimentoID string) (*dto.LimitesResponse, error) {
	est, err := uc.estabelecimentoRepo.GetByID(ctx, estabelecimentoID)
	if err != nil {
		return nil, err
	}
	if est == nil {
		return nil, domain.ErrEstabelecimentoNotFound
	}
	if est.Plano == entity.PlanoPro {
		return &dto.LimitesResponse{
			Plano:                    est.Plano,
			LimiteProdutos:           LimiteIlimitado,
			LimiteUsuarios:           LimiteIlimitado,
			LimiteMovimentacaoMensal: LimiteIlimitado,
		}, nil
	}
	return &dto.LimitesResponse{
		Plano:                    est.Plano,
		LimiteProdutos:           est.LimiteProdutos,
		LimiteUsuarios:           est.LimiteUsuarios,
		LimiteMovimentacaoMensal: LimiteMovimentacaoMensalFree,
	}, nil
}

// GetUso retorna as contagens atuais: produtos, usuários e movimentações do
// mês corrente. Três leituras independentes em paralelo — leve desatualização
// é aceitável para exibição de uso.
func (uc *UseCase) GetUso(ctx context.Context, estabelecimentoID string) (*dto.UsoResponse, error) {
	type countResult struct {
		n   int
		err error
	}
	produtosCh := make(chan countResult, 1)
	usuariosCh := make(chan countResult, 1)
	movMesCh := make(chan countResult, 1)

	go func() {
		n, err := uc.produtoRepo.CountByEstabelecimento(ctx, estabelecimentoID)
		produtosCh <- countResult{n, err}
	}()
	go func() {
		n, err := uc.usuarioRepo.CountByEstabelecimento(ctx, estabelecimentoID)
		usuariosCh <- countResult{n, err}
	}()
	go func() {
		de, ate := janelaMesAtual(time.Now())
		n, err := uc.movimentacaoRepo.CountByPeriodo(ctx, estabelecimentoID, de, ate)
		movMesCh <- countResult{n, err}
	}()

	produtos := <-produtosCh
	usuarios := <-usuariosCh
	movMes := <-movMesCh

	if produtos.err != nil {
		return nil, produtos.err
	}
	if usuarios.err != nil {
		return nil, usuarios.err
	}
	if movMes.err != nil {
		return nil, movMes.err
	}
	return &dto.UsoResponse{
		Produtos:        produtos.n,
		Usuarios:        usuarios.n,
		MovimentacaoMes: movMes.n,
	}, nil
}

// GetStatus combina limites e uso em percentuais por recurso, com alerta a
// partir de 80% e recomendação de upgrade quando qualquer recurso passa do
// alerta.
func (uc *UseCase) GetStatus(ctx context.Context, estabelecimentoID string) (*dto.PlanoStatusResponse, error) {
	limites, err := uc.GetLimites(ctx, estabelecimentoID)
	if err != nil {
		return nil, err
	}
	uso, err := uc.GetUso(ctx, estabelecimentoID)
	if err != nil {
		return nil, err
	}

	produtos := recursoStatus(uso.Produtos, limites.LimiteProdutos)
	usuarios := recursoStatus(uso.Usuarios, limites.LimiteUsuarios)
	movimentacao := recursoStatus(uso.MovimentacaoMes, limites.LimiteMovimentacaoMensal)

	var atingidos []string
	if produtos.Atingido {
		atingidos = append(atingidos, "produtos")
	}
	if usuarios.Atingido {
		atingidos = append(atingidos, "usuarios")
	}
	if movimentacao.Atingido {
		atingidos = append(atingidos, "movimentacao")
	}

	var recomendacao *string
	if produtos.Atencao || usuarios.Atencao || movimentacao.Atencao {
		msg := "Você está próximo de atingir os limites do plano FREE. Considere fazer upgrade para PRO."
		recomendacao = &msg
	}

	return &dto.PlanoStatusResponse{
		Plano:                limites.Plano,
		RecursosProdutos:     produtos,
		RecursosUsuarios:     usuarios,
		RecursosMovimentacao: movimentacao,
		LimitesAtingidos:     atingidos,
		Recomendacao:         recomendacao,
	}, nil
}

// recursoStatus calcula o percentual usado de um recurso. Limite ilimitado
// (ou zero) conta como 0% — nunca dividimos pela sentinela.
func recursoStatus(usado, limite int) dto.RecursoStatus {
	percentual := 0
	if limite > 0 {
		percentual = int(math.Round(float64(usado) / float64(limite) * 100))
	}
	return dto.RecursoStatus{
		Usado:      usado,
		Limite:     limite,
		Percentual: percentual,
		Atencao:    percentual >= 80,
		Atingido:   percentual >= 100,
	}
}

// janelaMesAtual delimita o mês corrente: dia 1 às 00:00:00 até o último dia
// às 23:59:59.999, no fuso do servidor.
func janelaMesAtual(now time.Time) (time.Time, time.Time) {
	de := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	ate := de.AddDate(0, 1, 0).Add(-time.Millisecond)
	return de, ate
}
