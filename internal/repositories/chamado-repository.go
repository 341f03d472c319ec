package repositories

import (
	"context"
	"encoding/json"
	"strings"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"sistema-ti/internal/dto"
	"sistema-ti/internal/entities"
	"sistema-ti/pkg/constants"
	apperrors "sistema-ti/pkg/errors"
)

type ChamadoRepositoryInterface interface {
	ListChamados(ctx context.Context) ([]entities.Chamado, error)
	AppendChamado(ctx context.Context, payload dto.CreateChamadoDTO) ([]entities.Chamado, error)
}

// ChamadoRepository mantém o registro de atendimentos. Mesma disciplina do
// repositório de equipamentos: array JSON inteiro em uma chave fixa.
type ChamadoRepository struct {
	kv     KVStoreInterface
	logger *zap.Logger

	mu     sync.Mutex
	cache  []entities.Chamado
	loaded bool
}

func NewChamadoRepository(kv KVStoreInterface, logger *zap.Logger) ChamadoRepositoryInterface {
	return &ChamadoRepository{kv: kv, logger: logger}
}

func (r *ChamadoRepository) ListChamados(ctx context.Context) ([]entities.Chamado, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if err := r.loadLocked(ctx); err != nil {
		return nil, err
	}
	return snapshotChamados(r.cache), nil
}

func (r *ChamadoRepository) AppendChamado(ctx context.Context, payload dto.CreateChamadoDTO) ([]entities.Chamado, error) {
	if err := validateChamado(payload); err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if err := r.loadLocked(ctx); err != nil {
		return nil, err
	}

	// Chamados são registrados depois do atendimento, por isso já nascem
	// concluídos.
	novo := entities.Chamado{
		ID:                     uuid.NewString(),
		Escola:                 payload.Escola,
		DataAtendimento:        payload.DataAtendimento,
		ProblemaRelatado:       payload.ProblemaRelatado,
		SolucaoAplicada:        payload.SolucaoAplicada,
		TecnicoResponsavel:     payload.TecnicoResponsavel,
		EquipamentoRelacionado: payload.EquipamentoRelacionado,
		Prioridade:             payload.Prioridade,
		Status:                 constants.StatusConcluido,
	}

	r.cache = append(r.cache, novo)
	if err := r.persistLocked(ctx); err != nil {
		return nil, err
	}

	r.logger.Info("chamado registrado",
		zap.String("id", novo.ID),
		zap.String("escola", novo.Escola),
		zap.String("tecnico", novo.TecnicoResponsavel),
	)
	return snapshotChamados(r.cache), nil
}

func (r *ChamadoRepository) loadLocked(ctx context.Context) error {
	if r.loaded {
		return nil
	}

	raw, found, err := r.kv.Get(ctx, constants.StorageKeyChamados)
	if err != nil {
		return apperrors.NewPersistenceError("leitura de chamados", err)
	}

	if !found {
		r.cache = seedChamados()
		r.loaded = true
		return r.persistLocked(ctx)
	}

	var itens []entities.Chamado
	if err := json.Unmarshal([]byte(raw), &itens); err != nil {
		return apperrors.NewPersistenceError("decodificação de chamados", err)
	}
	r.cache = itens
	r.loaded = true
	return nil
}

func (r *ChamadoRepository) persistLocked(ctx context.Context) error {
	raw, err := json.Marshal(r.cache)
	if err != nil {
		return apperrors.NewPersistenceError("codificação de chamados", err)
	}
	if err := r.kv.Set(ctx, constants.StorageKeyChamados, string(raw)); err != nil {
		return apperrors.NewPersistenceError("gravação de chamados", err)
	}
	return nil
}

func validateChamado(payload dto.CreateChamadoDTO) error {
	campos := []struct {
		nome  string
		valor string
	}{
		{"escola", payload.Escola},
		{"dataAtendimento", payload.DataAtendimento},
		{"problemaRelatado", payload.ProblemaRelatado},
		{"solucaoAplicada", payload.SolucaoAplicada},
		{"tecnicoResponsavel", payload.TecnicoResponsavel},
		{"prioridade", payload.Prioridade},
	}
	for _, campo := range campos {
		if strings.TrimSpace(campo.valor) == "" {
			return apperrors.NewValidationError(campo.nome)
		}
	}
	return nil
}

func snapshotChamados(itens []entities.Chamado) []entities.Chamado {
	out := make([]entities.Chamado, len(itens))
	copy(out, itens)
	return out
}
