package repository

import "github.com/jhoicas/Comanda-api/internal/domain/entity"

// AllocationRuleRepository define el puerto de persistencia de las reglas
// de reparto de ingreso.
type AllocationRuleRepository interface {
	Create(rule *entity.AllocationRule) error
	GetByID(id string) (*entity.AllocationRule, error)
	Update(rule *entity.AllocationRule) error
	List() ([]*entity.AllocationRule, error)
}
