package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Comanda-api/internal/domain"
	"github.com/jhoicas/Comanda-api/internal/domain/entity"
	"github.com/jhoicas/Comanda-api/internal/domain/repository"
)

var _ repository.AllocationRuleRepository = (*AllocationRuleRepo)(nil)

const ruleColumns = `id, name, rule_type, percentage, target, active, created_at, updated_at`

// AllocationRuleRepo implementación del puerto AllocationRuleRepository
// sobre PostgreSQL.
type AllocationRuleRepo struct {
	q Querier
}

// NewAllocationRuleRepository construye el adaptador.
func NewAllocationRuleRepository(q Querier) *AllocationRuleRepo {
	return &AllocationRuleRepo{q: q}
}

// Create inserta la regla.
func (r *AllocationRuleRepo) Create(rule *entity.AllocationRule) error {
	query := `
		INSERT INTO allocation_rules (id, name, rule_type, percentage, target, active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(context.Background(), query,
		rule.ID, rule.Name, rule.RuleType, rule.Percentage, rule.Target,
		rule.Active, rule.CreatedAt, rule.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert allocation rule: %w", err)
	}
	return nil
}

// GetByID obtiene la regla, (nil, nil) si no existe.
func (r *AllocationRuleRepo) GetByID(id string) (*entity.AllocationRule, error) {
	var rule entity.AllocationRule
	err := r.q.QueryRow(context.Background(), `SELECT `+ruleColumns+` FROM allocation_rules WHERE id = $1`, id).Scan(
		&rule.ID, &rule.Name, &rule.RuleType, &rule.Percentage, &rule.Target,
		&rule.Active, &rule.CreatedAt, &rule.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get allocation rule: %w", err)
	}
	return &rule, nil
}

// Update reescribe la regla completa.
func (r *AllocationRuleRepo) Update(rule *entity.AllocationRule) error {
	query := `
		UPDATE allocation_rules SET name = $2, rule_type = $3, percentage = $4, target = $5, active = $6, updated_at = $7
		WHERE id = $1`
	cmd, err := r.q.Exec(context.Background(), query,
		rule.ID, rule.Name, rule.RuleType, rule.Percentage, rule.Target, rule.Active, rule.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update allocation rule: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// List lista todas las reglas.
func (r *AllocationRuleRepo) List() ([]*entity.AllocationRule, error) {
	rows, err := r.q.Query(context.Background(), `SELECT `+ruleColumns+` FROM allocation_rules ORDER BY created_at`)
	if err != nil {
		return nil, fmt.Errorf("list allocation rules: %w", err)
	}
	defer rows.Close()
	var list []*entity.AllocationRule
	for rows.Next() {
		var rule entity.AllocationRule
		if err := rows.Scan(&rule.ID, &rule.Name, &rule.RuleType, &rule.Percentage, &rule.Target,
			&rule.Active, &rule.CreatedAt, &rule.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan allocation rule: %w", err)
		}
		list = append(list, &rule)
	}
	return list, rows.Err()
}
