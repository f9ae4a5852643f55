package debts

import (
	"sort"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Comanda-api/internal/application/dto"
	"github.com/jhoicas/Comanda-api/internal/domain"
	"github.com/jhoicas/Comanda-api/internal/domain/entity"
)

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

type fakeDebtRepo struct {
	debts    map[string]*entity.Debt
	payments []*entity.DebtPayment
}

func newFakeDebtRepo() *fakeDebtRepo {
	return &fakeDebtRepo{debts: make(map[string]*entity.Debt)}
}

func (r *fakeDebtRepo) Create(d *entity.Debt) error {
	copia := *d
	r.debts[d.ID] = &copia
	return nil
}

func (r *fakeDebtRepo) GetByID(id string) (*entity.Debt, error) {
	d, ok := r.debts[id]
	if !ok {
		return nil, nil
	}
	copia := *d
	return &copia, nil
}

func (r *fakeDebtRepo) List() ([]*entity.Debt, error) {
	out := make([]*entity.Debt, 0, len(r.debts))
	for _, d := range r.debts {
		copia := *d
		out = append(out, &copia)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].DueDay < out[j].DueDay })
	return out, nil
}

func (r *fakeDebtRepo) CreatePayment(p *entity.DebtPayment) error {
	copia := *p
	r.payments = append(r.payments, &copia)
	return nil
}

func (r *fakeDebtRepo) ListPayments(limit, offset int) ([]*entity.DebtPayment, error) {
	out := make([]*entity.DebtPayment, 0, len(r.payments))
	for _, p := range r.payments {
		copia := *p
		if d, ok := r.debts[p.DebtID]; ok {
			copia.DebtName = d.Name
		}
		out = append(out, &copia)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].PaidAt.After(out[j].PaidAt) })
	return out, nil
}

func fixedNow() time.Time {
	return time.Date(2025, 6, 15, 18, 0, 0, 0, time.UTC)
}

func TestCreateDebt(t *testing.T) {
	repo := newFakeDebtRepo()
	uc := NewUseCase(repo, uuid.NewString, fixedNow)

	out, err := uc.Create(dto.CreateDebtRequest{
		Name:       "Tarjeta de crédito",
		Amount:     dec("350"),
		DueDay:     10,
		Type:       "credit_card",
		MinimumPay: dec("120"),
		TotalDebt:  dec("4800"),
	})

	require.NoError(t, err)
	assert.NotEmpty(t, out.ID)
	assert.Equal(t, 10, out.DueDay)
	require.Len(t, repo.debts, 1)
}

func TestCreateDebtValidacion(t *testing.T) {
	uc := NewUseCase(newFakeDebtRepo(), uuid.NewString, fixedNow)

	_, err := uc.Create(dto.CreateDebtRequest{Name: "Sin tipo", Amount: dec("100"), DueDay: 5})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "el tipo es obligatorio")

	_, err = uc.Create(dto.CreateDebtRequest{Name: "Monto cero", Amount: decimal.Zero, DueDay: 5, Type: "loan"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.Create(dto.CreateDebtRequest{Name: "Día inválido", Amount: dec("100"), DueDay: 0, Type: "loan"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.Create(dto.CreateDebtRequest{Name: "Día inválido", Amount: dec("100"), DueDay: 32, Type: "loan"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "el día de vencimiento va de 1 a 31")
}

func TestListDebtsOrdenadasPorVencimiento(t *testing.T) {
	uc := NewUseCase(newFakeDebtRepo(), uuid.NewString, fixedNow)

	_, err := uc.Create(dto.CreateDebtRequest{Name: "Fin de mes", Amount: dec("200"), DueDay: 28, Type: "loan"})
	require.NoError(t, err)
	_, err = uc.Create(dto.CreateDebtRequest{Name: "Inicio de mes", Amount: dec("90"), DueDay: 3, Type: "service"})
	require.NoError(t, err)

	out, err := uc.List()

	require.NoError(t, err)
	require.Len(t, out, 2)
	assert.Equal(t, "Inicio de mes", out[0].Name, "la deuda que vence antes va primero")
	assert.Equal(t, "Fin de mes", out[1].Name)
}

func TestPayDebt(t *testing.T) {
	repo := newFakeDebtRepo()
	uc := NewUseCase(repo, uuid.NewString, fixedNow)

	debt, err := uc.Create(dto.CreateDebtRequest{Name: "Préstamo", Amount: dec("500"), DueDay: 15, Type: "loan"})
	require.NoError(t, err)

	out, err := uc.Pay(dto.PayDebtRequest{DebtID: debt.ID, Amount: dec("150")})

	require.NoError(t, err)
	assert.Equal(t, debt.ID, out.DebtID)
	assert.Equal(t, "Préstamo", out.DebtName, "el abono sale con el nombre de la deuda resuelto")
	assert.Equal(t, fixedNow(), out.PaidAt, "sin fecha explícita se usa ahora")
	require.Len(t, repo.payments, 1)
}

func TestPayDebtNoEncontrada(t *testing.T) {
	uc := NewUseCase(newFakeDebtRepo(), uuid.NewString, fixedNow)

	_, err := uc.Pay(dto.PayDebtRequest{DebtID: "no-existe", Amount: dec("50")})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestPayDebtValidacion(t *testing.T) {
	uc := NewUseCase(newFakeDebtRepo(), uuid.NewString, fixedNow)

	_, err := uc.Pay(dto.PayDebtRequest{Amount: dec("50")})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "la deuda es obligatoria")

	_, err = uc.Pay(dto.PayDebtRequest{DebtID: "x", Amount: decimal.Zero})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "el abono debe ser positivo")
}

func TestListPaymentsMasRecientePrimero(t *testing.T) {
	repo := newFakeDebtRepo()
	uc := NewUseCase(repo, uuid.NewString, fixedNow)

	debt, err := uc.Create(dto.CreateDebtRequest{Name: "Préstamo", Amount: dec("500"), DueDay: 15, Type: "loan"})
	require.NoError(t, err)

	antes := fixedNow().AddDate(0, -1, 0)
	_, err = uc.Pay(dto.PayDebtRequest{DebtID: debt.ID, Amount: dec("100"), PaidAt: &antes})
	require.NoError(t, err)
	_, err = uc.Pay(dto.PayDebtRequest{DebtID: debt.ID, Amount: dec("200")})
	require.NoError(t, err)

	out, err := uc.ListPayments(dto.PageRequest{})

	require.NoError(t, err)
	require.Len(t, out, 2)
	assert.True(t, dec("200").Equal(out[0].Amount), "el abono más reciente va primero")
	assert.True(t, dec("100").Equal(out[1].Amount))
}
