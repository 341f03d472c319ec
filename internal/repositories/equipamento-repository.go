package repositories

import (
	"context"
	"encoding/json"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"sistema-ti/internal/dto"
	"sistema-ti/internal/entities"
	"sistema-ti/pkg/constants"
	apperrors "sistema-ti/pkg/errors"
)

type EquipamentoRepositoryInterface interface {
	ListEquipamentos(ctx context.Context) ([]entities.Equipamento, error)
	AppendEquipamento(ctx context.Context, payload dto.CreateEquipamentoDTO) ([]entities.Equipamento, error)
}

// EquipamentoRepository mantém a coleção de equipamentos sobre o substrato
// chave-valor: a coleção inteira é gravada como um array JSON em uma única
// chave a cada mutação. Cada operação é uma unidade atômica (mutex).
type EquipamentoRepository struct {
	kv     KVStoreInterface
	logger *zap.Logger

	mu     sync.Mutex
	cache  []entities.Equipamento
	loaded bool
}

func NewEquipamentoRepository(kv KVStoreInterface, logger *zap.Logger) EquipamentoRepositoryInterface {
	return &EquipamentoRepository{kv: kv, logger: logger}
}

func (r *EquipamentoRepository) ListEquipamentos(ctx context.Context) ([]entities.Equipamento, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if err := r.loadLocked(ctx); err != nil {
		return nil, err
	}
	return snapshotEquipamentos(r.cache), nil
}

func (r *EquipamentoRepository) AppendEquipamento(ctx context.Context, payload dto.CreateEquipamentoDTO) ([]entities.Equipamento, error) {
	if err := validateEquipamento(payload); err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if err := r.loadLocked(ctx); err != nil {
		return nil, err
	}

	especificacoes := payload.Especificacoes
	if especificacoes == nil {
		especificacoes = map[string]string{}
	}

	novo := entities.Equipamento{
		ID:             uuid.NewString(),
		Nome:           payload.Nome,
		Tipo:           payload.Tipo,
		Modelo:         payload.Modelo,
		Patrimonio:     payload.Patrimonio,
		Local:          payload.Local,
		Situacao:       payload.Situacao,
		Especificacoes: especificacoes,
		DataInclusao:   time.Now().Format("2006-01-02"),
	}

	// A coleção em memória avança antes da escrita e não é revertida se a
	// persistência falhar; o erro apenas sobe para quem chamou.
	r.cache = append(r.cache, novo)
	if err := r.persistLocked(ctx); err != nil {
		return nil, err
	}

	r.logger.Info("equipamento cadastrado",
		zap.String("id", novo.ID),
		zap.String("nome", novo.Nome),
		zap.String("local", novo.Local),
	)
	return snapshotEquipamentos(r.cache), nil
}

func (r *EquipamentoRepository) loadLocked(ctx context.Context) error {
	if r.loaded {
		return nil
	}

	raw, found, err := r.kv.Get(ctx, constants.StorageKeyEquipamentos)
	if err != nil {
		return apperrors.NewPersistenceError("leitura de equipamentos", err)
	}

	if !found {
		r.cache = seedEquipamentos()
		r.loaded = true
		return r.persistLocked(ctx)
	}

	var itens []entities.Equipamento
	if err := json.Unmarshal([]byte(raw), &itens); err != nil {
		return apperrors.NewPersistenceError("decodificação de equipamentos", err)
	}
	r.cache = itens
	r.loaded = true
	return nil
}

func (r *EquipamentoRepository) persistLocked(ctx context.Context) error {
	raw, err := json.Marshal(r.cache)
	if err != nil {
		return apperrors.NewPersistenceError("codificação de equipamentos", err)
	}
	if err := r.kv.Set(ctx, constants.StorageKeyEquipamentos, string(raw)); err != nil {
		return apperrors.NewPersistenceError("gravação de equipamentos", err)
	}
	return nil
}

func validateEquipamento(payload dto.CreateEquipamentoDTO) error {
	campos := []struct {
		nome  string
		valor string
	}{
		{"nome", payload.Nome},
		{"tipo", payload.Tipo},
		{"modelo", payload.Modelo},
		{"patrimonio", payload.Patrimonio},
		{"local", payload.Local},
		{"situacao", payload.Situacao},
	}
	for _, campo := range campos {
		if strings.TrimSpace(campo.valor) == "" {
			return apperrors.NewValidationError(campo.nome)
		}
	}
	return nil
}

func snapshotEquipamentos(itens []entities.Equipamento) []entities.Equipamento {
	out := make([]entities.Equipamento, len(itens))
	copy(out, itens)
	return out
}
