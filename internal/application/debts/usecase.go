package debts

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Comanda-api/internal/application/dto"
	"github.com/jhoicas/Comanda-api/internal/domain"
	"github.com/jhoicas/Comanda-api/internal/domain/entity"
	"github.com/jhoicas/Comanda-api/internal/domain/repository"
)

// UseCase administra las deudas recurrentes y sus abonos. Un abono no
// descuenta el saldo de la deuda: es un registro aparte, el saldo se lee
// del historial.
type UseCase struct {
	repo  repository.DebtRepository
	newID func() string
	now   func() time.Time
}

// NewUseCase construye el caso de uso.
func NewUseCase(repo repository.DebtRepository, newID func() string, now func() time.Time) *UseCase {
	if now == nil {
		now = time.Now
	}
	return &UseCase{repo: repo, newID: newID, now: now}
}

// Create registra una deuda recurrente.
func (uc *UseCase) Create(in dto.CreateDebtRequest) (*dto.DebtResponse, error) {
	if in.Name == "" || in.Type == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.Amount.LessThanOrEqual(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}
	if in.DueDay < 1 || in.DueDay > 31 {
		return nil, domain.ErrInvalidInput
	}
	if in.MinimumPay.LessThan(decimal.Zero) || in.TotalDebt.LessThan(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}
	debt := &entity.Debt{
		ID:         uc.newID(),
		Name:       in.Name,
		Amount:     in.Amount,
		DueDay:     in.DueDay,
		Type:       in.Type,
		MinimumPay: in.MinimumPay,
		TotalDebt:  in.TotalDebt,
		Notes:      in.Notes,
		CreatedAt:  uc.now(),
	}
	if err := uc.repo.Create(debt); err != nil {
		return nil, err
	}
	return toDebtResponse(debt), nil
}

// List lista las deudas ordenadas por día de vencimiento.
func (uc *UseCase) List() ([]dto.DebtResponse, error) {
	all, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	out := make([]dto.DebtResponse, 0, len(all))
	for _, d := range all {
		out = append(out, *toDebtResponse(d))
	}
	return out, nil
}

// Pay registra un abono contra una deuda existente.
func (uc *UseCase) Pay(in dto.PayDebtRequest) (*dto.DebtPaymentResponse, error) {
	if in.DebtID == "" || in.Amount.LessThanOrEqual(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}
	debt, err := uc.repo.GetByID(in.DebtID)
	if err != nil {
		return nil, err
	}
	if debt == nil {
		return nil, domain.ErrNotFound
	}
	paidAt := uc.now()
	if in.PaidAt != nil {
		paidAt = *in.PaidAt
	}
	payment := &entity.DebtPayment{
		ID:     uc.newID(),
		DebtID: debt.ID,
		Amount: in.Amount,
		PaidAt: paidAt,
	}
	if err := uc.repo.CreatePayment(payment); err != nil {
		return nil, err
	}
	payment.DebtName = debt.Name
	return toPaymentResponse(payment), nil
}

// ListPayments lista los abonos, el más reciente primero.
func (uc *UseCase) ListPayments(page dto.PageRequest) ([]dto.DebtPaymentResponse, error) {
	page.DefaultPage()
	payments, err := uc.repo.ListPayments(page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	out := make([]dto.DebtPaymentResponse, 0, len(payments))
	for _, p := range payments {
		out = append(out, *toPaymentResponse(p))
	}
	return out, nil
}

func toDebtResponse(d *entity.Debt) *dto.DebtResponse {
	return &dto.DebtResponse{
		ID:         d.ID,
		Name:       d.Name,
		Amount:     d.Amount,
		DueDay:     d.DueDay,
		Type:       d.Type,
		MinimumPay: d.MinimumPay,
		TotalDebt:  d.TotalDebt,
		Notes:      d.Notes,
	}
}

func toPaymentResponse(p *entity.DebtPayment) *dto.DebtPaymentResponse {
	return &dto.DebtPaymentResponse{
		ID:       p.ID,
		DebtID:   p.DebtID,
		DebtName: p.DebtName,
		Amount:   p.Amount,
		PaidAt:   p.PaidAt,
	}
}
