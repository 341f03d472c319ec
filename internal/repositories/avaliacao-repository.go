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

type AvaliacaoRepositoryInterface interface {
	ListAvaliacoes(ctx context.Context) ([]entities.Avaliacao, error)
	AppendAvaliacao(ctx context.Context, payload dto.CreateAvaliacaoDTO) ([]entities.Avaliacao, error)
}

// AvaliacaoRepository mantém as avaliações de infraestrutura. A nota não é
// validada aqui: valores fora de 1..5 são aceitos e aparecem como "N/A".
type AvaliacaoRepository struct {
	kv     KVStoreInterface
	logger *zap.Logger

	mu     sync.Mutex
	cache  []entities.Avaliacao
	loaded bool
}

func NewAvaliacaoRepository(kv KVStoreInterface, logger *zap.Logger) AvaliacaoRepositoryInterface {
	return &AvaliacaoRepository{kv: kv, logger: logger}
}

func (r *AvaliacaoRepository) ListAvaliacoes(ctx context.Context) ([]entities.Avaliacao, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if err := r.loadLocked(ctx); err != nil {
		return nil, err
	}
	return snapshotAvaliacoes(r.cache), nil
}

func (r *AvaliacaoRepository) AppendAvaliacao(ctx context.Context, payload dto.CreateAvaliacaoDTO) ([]entities.Avaliacao, error) {
	if err := validateAvaliacao(payload); err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if err := r.loadLocked(ctx); err != nil {
		return nil, err
	}

	nova := entities.Avaliacao{
		ID:                      uuid.NewString(),
		NomeEscola:              payload.NomeEscola,
		DataVisita:              payload.DataVisita,
		CondicoesInfraestrutura: payload.CondicoesInfraestrutura,
		Observacoes:             payload.Observacoes,
		RecomendacoesMelhorias:  payload.RecomendacoesMelhorias,
		TecnicoResponsavel:      payload.TecnicoResponsavel,
	}

	r.cache = append(r.cache, nova)
	if err := r.persistLocked(ctx); err != nil {
		return nil, err
	}

	r.logger.Info("avaliação registrada",
		zap.String("id", nova.ID),
		zap.String("escola", nova.NomeEscola),
		zap.Int("nota", nova.CondicoesInfraestrutura),
	)
	return snapshotAvaliacoes(r.cache), nil
}

func (r *AvaliacaoRepository) loadLocked(ctx context.Context) error {
	if r.loaded {
		return nil
	}

	raw, found, err := r.kv.Get(ctx, constants.StorageKeyAvaliacoes)
	if err != nil {
		return apperrors.NewPersistenceError("leitura de avaliações", err)
	}

	if !found {
		r.cache = seedAvaliacoes()
		r.loaded = true
		return r.persistLocked(ctx)
	}

	var itens []entities.Avaliacao
	if err := json.Unmarshal([]byte(raw), &itens); err != nil {
		return apperrors.NewPersistenceError("decodificação de avaliações", err)
	}
	r.cache = itens
	r.loaded = true
	return nil
}

func (r *AvaliacaoRepository) persistLocked(ctx context.Context) error {
	raw, err := json.Marshal(r.cache)
	if err != nil {
		return apperrors.NewPersistenceError("codificação de avaliações", err)
	}
	if err := r.kv.Set(ctx, constants.StorageKeyAvaliacoes, string(raw)); err != nil {
		return apperrors.NewPersistenceError("gravação de avaliações", err)
	}
	return nil
}

func validateAvaliacao(payload dto.CreateAvaliacaoDTO) error {
	campos := []struct {
		nome  string
		valor string
	}{
		{"nomeEscola", payload.NomeEscola},
		{"dataVisita", payload.DataVisita},
		{"observacoes", payload.Observacoes},
		{"recomendacoesMelhorias", payload.RecomendacoesMelhorias},
		{"tecnicoResponsavel", payload.TecnicoResponsavel},
	}
	for _, campo := range campos {
		if strings.TrimSpace(campo.valor) == "" {
			return apperrors.NewValidationError(campo.nome)
		}
	}
	return nil
}

func snapshotAvaliacoes(itens []entities.Avaliacao) []entities.Avaliacao {
	out := make([]entities.Avaliacao, len(itens))
	copy(out, itens)
	return out
}
