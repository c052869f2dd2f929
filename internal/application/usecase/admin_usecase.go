package usecase

import (
	"context"

	"github.com/coderonin/barstock-api/internal/application/dto"
	"github.com/coderonin/barstock-api/internal/domain/entity"
	"github.com/coderonin/barstock-api/internal/domain/repository"
)

// AdminUseCase estatísticas globais do sistema (rotas restritas a ADMIN).
type AdminUseCase struct {
	estabelecimentoRepo repository.EstabelecimentoRepository
	usuarioRepo         repository.UsuarioRepository
}

// NewAdminUseCase constrói o caso de uso.
func NewAdminUseCase(estabelecimentoRepo repository.EstabelecimentoRepository, usuarioRepo repository.UsuarioRepository) *AdminUseCase {
	return &AdminUseCase{estabelecimentoRepo: estabelecimentoRepo, usuarioRepo: usuarioRepo}
}

// GetDashboard conta estabelecimentos por plano e usuários do sistema.
func (uc *AdminUseCase) GetDashboard(ctx context.Context) (*dto.AdminDashboardResponse, error) {
	total, err := uc.estabelecimentoRepo.Count(ctx)
	if err != nil {
		return nil, err
	}
	free, err := uc.estabelecimentoRepo.CountByPlano(ctx, entity.PlanoFree)
	if err != nil {
		return nil, err
	}
	pro, err := uc.estabelecimentoRepo.CountByPlano(ctx, entity.PlanoPro)
	if err != nil {
		return nil, err
	}
	usuarios, err := uc.usuarioRepo.Count(ctx)
	if err != nil {
		return nil, err
	}
	return &dto.AdminDashboardResponse{
		TotalEstabelecimentos: total,
		FreeEstabelecimentos:  free,
		ProEstabelecimentos:   pro,
		TotalUsuarios:         usuarios,
	}, nil
}
