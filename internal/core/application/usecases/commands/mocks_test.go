package commands_test

import (
	"context"
	"testing"
	"time"

	"ordering/internal/core/application/usecases/commands"
	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/menu"
	"ordering/internal/core/domain/model/order"
	"ordering/internal/core/ports"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockMenuRepository struct{ mock.Mock }

func (m *MockMenuRepository) Add(ctx context.Context, mn *menu.Menu) error {
	args := m.Called(ctx, mn)
	return args.Error(0)
}

func (m *MockMenuRepository) Get(ctx context.Context, id kernel.UUID) (*menu.Menu, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*menu.Menu), args.Error(1)
}

func (m *MockMenuRepository) All(ctx context.Context) ([]*menu.Menu, error) {
	args := m.Called(ctx)
	return args.Get(0).([]*menu.Menu), args.Error(1)
}

type MockMenuUoW struct{ mock.Mock }

func (m *MockMenuUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockMenuUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockMenuUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockMenuUoW) MenuRepository() ports.MenuRepository {
	args := m.Called()
	return args.Get(0).(ports.MenuRepository)
}

type MockMenuUoWFactory struct{ mock.Mock }

func (m *MockMenuUoWFactory) Create() commands.MenuUoW {
	args := m.Called()
	return args.Get(0).(commands.MenuUoW)
}

type MockOrderContext struct{ mock.Mock }

func (m *MockOrderContext) SessionID() string {
	return m.Called().String(0)
}

func (m *MockOrderContext) Lines(ctx context.Context) ([]order.Line, error) {
	args := m.Called(ctx)
	return args.Get(0).([]order.Line), args.Error(1)
}

func (m *MockOrderContext) Line(ctx context.Context, id kernel.UUID) (order.Line, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(order.Line), args.Error(1)
}

func (m *MockOrderContext) ChangeOrder(ctx context.Context, line order.Line) (order.Line, error) {
	args := m.Called(ctx, line)
	return args.Get(0).(order.Line), args.Error(1)
}

// Modify runs fn against the lines configured with On("Modify") and returns
// its result, mimicking an order context that stores whatever fn produced.
func (m *MockOrderContext) Modify(ctx context.Context, fn ports.LineModifier) (order.Line, bool, error) {
	args := m.Called(ctx)
	lines := args.Get(0).([]order.Line)
	return fn(lines)
}

func (m *MockOrderContext) CancelOrder(ctx context.Context, id kernel.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockOrderContext) Subscribe(_ ports.Listener) func() {
	return func() {}
}

type MockOrderContextProvider struct{ mock.Mock }

func (m *MockOrderContextProvider) Open(ctx context.Context, sessionID string) (ports.OrderContext, error) {
	args := m.Called(ctx, sessionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(ports.OrderContext), args.Error(1)
}

type MockSessionSweeper struct{ mock.Mock }

func (m *MockSessionSweeper) EvictIdle(ctx context.Context, idleFor time.Duration) ([]string, error) {
	args := m.Called(ctx, idleFor)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func newBurger(t *testing.T) *menu.Menu {
	t.Helper()
	combo := kernel.Price(12900)
	m, err := menu.NewMenu(kernel.NewUUID(), "치즈 버거", "Cheese Burger", menu.Burger, "cheese.png", 9900, &combo)
	require.NoError(t, err)
	return m
}

func newDrink(t *testing.T) *menu.Menu {
	t.Helper()
	m, err := menu.NewMenu(kernel.NewUUID(), "콜라", "Coke", menu.Drink, "coke.png", 1800, nil)
	require.NoError(t, err)
	return m
}

func storedLine(t *testing.T, m *menu.Menu, quantity int, combo bool) order.Line {
	t.Helper()
	l, err := order.RestoreLine(kernel.NewUUID(), m, quantity, combo)
	require.NoError(t, err)
	return l
}

const sessionID = "session-1"
