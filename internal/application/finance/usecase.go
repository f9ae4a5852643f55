package finance

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Comanda-api/internal/application/dto"
	"github.com/jhoicas/Comanda-api/internal/domain"
	"github.com/jhoicas/Comanda-api/internal/domain/entity"
	domfinance "github.com/jhoicas/Comanda-api/internal/domain/finance"
	"github.com/jhoicas/Comanda-api/internal/domain/repository"
)

// UseCase calcula la reserva diaria sugerida, lleva el registro de gastos y
// las reglas de reparto de ingreso.
type UseCase struct {
	financeRepo repository.FinanceRepository
	expenseRepo repository.ExpenseRepository
	ruleRepo    repository.AllocationRuleRepository
	newID       func() string
	now         func() time.Time
}

// NewUseCase construye el caso de uso.
func NewUseCase(financeRepo repository.FinanceRepository, expenseRepo repository.ExpenseRepository, ruleRepo repository.AllocationRuleRepository, newID func() string, now func() time.Time) *UseCase {
	if now == nil {
		now = time.Now
	}
	return &UseCase{financeRepo: financeRepo, expenseRepo: expenseRepo, ruleRepo: ruleRepo, newID: newID, now: now}
}

// ReserveToday suma el ingreso de hoy, resuelve la reserva por tramos y
// reemplaza el snapshot del día (una fila por fecha, recalculable).
func (uc *UseCase) ReserveToday() (*dto.ReserveTodayResponse, error) {
	today := uc.now()
	income, err := uc.financeRepo.IncomeForDate(today)
	if err != nil {
		return nil, err
	}
	reserve := domfinance.DailyReserveFor(income)
	snapshot := &entity.DailyReserve{
		ID:      uc.newID(),
		Date:    today,
		Income:  income,
		Reserve: reserve,
	}
	if err := uc.financeRepo.ReplaceDailyReserve(snapshot); err != nil {
		return nil, err
	}
	monthCollected, err := uc.financeRepo.MonthReserveTotal(today)
	if err != nil {
		return nil, err
	}
	return &dto.ReserveTodayResponse{
		Date:           today.Format("2006-01-02"),
		Income:         income,
		Reserve:        reserve,
		MonthCollected: monthCollected,
	}, nil
}

// CreateExpense registra un gasto operativo.
func (uc *UseCase) CreateExpense(in dto.CreateExpenseRequest) (*dto.ExpenseResponse, error) {
	if in.Category == "" || in.Description == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.Amount.LessThanOrEqual(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}
	incurredOn := uc.now()
	if in.IncurredOn != nil {
		incurredOn = *in.IncurredOn
	}
	expense := &entity.ExpenseEntry{
		ID:            uc.newID(),
		Category:      in.Category,
		Description:   in.Description,
		Amount:        in.Amount,
		PaymentMethod: in.PaymentMethod,
		IncurredOn:    incurredOn,
	}
	if err := uc.expenseRepo.Create(expense); err != nil {
		return nil, err
	}
	return toExpenseResponse(expense), nil
}

// ListExpenses lista gastos, el más reciente primero.
func (uc *UseCase) ListExpenses(page dto.PageRequest) ([]dto.ExpenseResponse, error) {
	page.DefaultPage()
	expenses, err := uc.expenseRepo.List(page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ExpenseResponse, 0, len(expenses))
	for _, e := range expenses {
		out = append(out, *toExpenseResponse(e))
	}
	return out, nil
}

// hundredPercent límite superior del porcentaje de una regla.
var hundredPercent = decimal.NewFromInt(100)

// CreateRule crea una regla de reparto; nace activa salvo indicación.
func (uc *UseCase) CreateRule(in dto.CreateAllocationRuleRequest) (*dto.AllocationRuleResponse, error) {
	if in.Name == "" || in.RuleType == "" || in.Target == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.Percentage.LessThan(decimal.Zero) || in.Percentage.GreaterThan(hundredPercent) {
		return nil, domain.ErrInvalidInput
	}
	active := true
	if in.Active != nil {
		active = *in.Active
	}
	now := uc.now()
	rule := &entity.AllocationRule{
		ID:         uc.newID(),
		Name:       in.Name,
		RuleType:   in.RuleType,
		Percentage: in.Percentage,
		Target:     in.Target,
		Active:     active,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := uc.ruleRepo.Create(rule); err != nil {
		return nil, err
	}
	return toRuleResponse(rule), nil
}

// UpdateRule aplica una actualización parcial a la regla.
func (uc *UseCase) UpdateRule(id string, in dto.UpdateAllocationRuleRequest) (*dto.AllocationRuleResponse, error) {
	rule, err := uc.ruleRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if rule == nil {
		return nil, domain.ErrNotFound
	}
	if in.Name != nil {
		if *in.Name == "" {
			return nil, domain.ErrInvalidInput
		}
		rule.Name = *in.Name
	}
	if in.RuleType != nil {
		rule.RuleType = *in.RuleType
	}
	if in.Percentage != nil {
		if in.Percentage.LessThan(decimal.Zero) || in.Percentage.GreaterThan(hundredPercent) {
			return nil, domain.ErrInvalidInput
		}
		rule.Percentage = *in.Percentage
	}
	if in.Target != nil {
		rule.Target = *in.Target
	}
	if in.Active != nil {
		rule.Active = *in.Active
	}
	rule.UpdatedAt = uc.now()
	if err := uc.ruleRepo.Update(rule); err != nil {
		return nil, err
	}
	return toRuleResponse(rule), nil
}

// ListRules lista todas las reglas, activas e inactivas.
func (uc *UseCase) ListRules() ([]dto.AllocationRuleResponse, error) {
	rules, err := uc.ruleRepo.List()
	if err != nil {
		return nil, err
	}
	out := make([]dto.AllocationRuleResponse, 0, len(rules))
	for _, r := range rules {
		out = append(out, *toRuleResponse(r))
	}
	return out, nil
}

func toRuleResponse(r *entity.AllocationRule) *dto.AllocationRuleResponse {
	return &dto.AllocationRuleResponse{
		ID:         r.ID,
		Name:       r.Name,
		RuleType:   r.RuleType,
		Percentage: r.Percentage,
		Target:     r.Target,
		Active:     r.Active,
	}
}

func toExpenseResponse(e *entity.ExpenseEntry) *dto.ExpenseResponse {
	return &dto.ExpenseResponse{
		ID:            e.ID,
		Category:      e.Category,
		Description:   e.Description,
		Amount:        e.Amount,
		PaymentMethod: e.PaymentMethod,
		IncurredOn:    e.IncurredOn,
	}
}
