package usecase_test

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/Ranjan7481/Ecommerce/internal/domain"
	"github.com/Ranjan7481/Ecommerce/internal/usecase"
	"github.com/Ranjan7481/Ecommerce/pkg/e"
	"github.com/Ranjan7481/Ecommerce/pkg/tr"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

type noopLogger struct{}

func (noopLogger) Debugf(format string, args ...any)            {}
func (noopLogger) Infof(format string, args ...any)             {}
func (noopLogger) Warnf(format string, args ...any)             {}
func (noopLogger) Errorf(err error, format string, args ...any) {}

// fakeTx — pgx.Tx для тестов. Накапливает компенсации, которые
// откатывают изменения in-memory репозиториев при Rollback.
type fakeTx struct {
	mu         sync.Mutex
	committed  bool
	rolledBack bool
	onRollback []func()
}

func (t *fakeTx) addUndo(f func()) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.onRollback = append(t.onRollback, f)
}

func (t *fakeTx) Begin(ctx context.Context) (pgx.Tx, error) { return t, nil }

func (t *fakeTx) Commit(ctx context.Context) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.committed = true
	return nil
}

func (t *fakeTx) Rollback(ctx context.Context) error {
	t.mu.Lock()
	undo := t.onRollback
	t.onRollback = nil
	t.rolledBack = true
	t.mu.Unlock()

	for i := len(undo) - 1; i >= 0; i-- {
		undo[i]()
	}
	return nil
}

func (t *fakeTx) CopyFrom(ctx context.Context, tableName pgx.Identifier, columnNames []string, rowSrc pgx.CopyFromSource) (int64, error) {
	return 0, nil
}
func (t *fakeTx) SendBatch(ctx context.Context, b *pgx.Batch) pgx.BatchResults { return nil }

func (t *fakeTx) LargeObjects() pgx.LargeObjects { return pgx.LargeObjects{} }
func (t *fakeTx) Prepare(ctx context.Context, name, sql string) (*pgconn.StatementDescription, error) {
	return nil, nil
}
func (t *fakeTx) Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	return pgconn.CommandTag{}, nil
}
func (t *fakeTx) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	return nil, nil
}
func (t *fakeTx) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row { return nil }

func (t *fakeTx) Conn() *pgx.Conn { return nil }

type fakePool struct{}

func (fakePool) BeginTx(ctx context.Context, txOptions pgx.TxOptions) (pgx.Tx, error) {
	return &fakeTx{}, nil
}

// undoFromCtx вешает компенсацию на транзакцию текущего контекста, если она есть.
func undoFromCtx(ctx context.Context, undo func()) {
	tx, err := tr.TxFromCtx(ctx)
	if err != nil {
		return
	}
	if ft, ok := tx.(*fakeTx); ok {
		ft.addUndo(undo)
	}
}

type fakeProductRepo struct {
	mu       sync.Mutex
	nextID   int64
	products map[int64]*domain.Product
}

func newFakeProductRepo() *fakeProductRepo {
	return &fakeProductRepo{products: map[int64]*domain.Product{}}
}

func (r *fakeProductRepo) add(p domain.Product) *domain.Product {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.nextID++
	p.ID = r.nextID
	r.products[p.ID] = &p
	return &p
}

func (r *fakeProductRepo) stockOf(id int64) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.products[id].Stock
}

func (r *fakeProductRepo) Create(ctx context.Context, product *domain.Product) (*domain.Product, error) {
	r.mu.Lock()
	for _, p := range r.products {
		if strings.EqualFold(p.Name, product.Name) {
			r.mu.Unlock()
			return nil, e.ErrProductExists
		}
	}
	r.mu.Unlock()
	return r.add(*product), nil
}

func (r *fakeProductRepo) Update(ctx context.Context, product *domain.Product) (*domain.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.products[product.ID]; !ok {
		return nil, e.ErrProductNotFound
	}
	cp := *product
	r.products[product.ID] = &cp
	return &cp, nil
}

func (r *fakeProductRepo) Delete(ctx context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.products[id]; !ok {
		return e.ErrProductNotFound
	}
	delete(r.products, id)
	return nil
}

func (r *fakeProductRepo) GetByID(ctx context.Context, id int64) (*domain.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.products[id]
	if !ok {
		return nil, e.ErrProductNotFound
	}
	cp := *p
	return &cp, nil
}

func (r *fakeProductRepo) GetByName(ctx context.Context, name string) (*domain.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, p := range r.products {
		if strings.EqualFold(p.Name, name) {
			cp := *p
			return &cp, nil
		}
	}
	return nil, e.ErrProductNotFound
}

func (r *fakeProductRepo) List(ctx context.Context, filter usecase.ProductFilter) ([]domain.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var result []domain.Product
	for _, p := range r.products {
		if filter.Category != nil && p.Category != *filter.Category {
			continue
		}
		if filter.NameQuery != nil && !strings.Contains(strings.ToLower(p.Name), strings.ToLower(*filter.NameQuery)) {
			continue
		}
		if filter.Flag != nil && !matchesFlag(p, *filter.Flag) {
			continue
		}
		result = append(result, *p)
	}

	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	if filter.Limit > 0 && len(result) > filter.Limit {
		result = result[:filter.Limit]
	}
	return result, nil
}

func matchesFlag(p *domain.Product, flag usecase.PromoFlag) bool {
	switch flag {
	case usecase.PromoBestDeal:
		return p.IsBestDeal
	case usecase.PromoWeeklyPopular:
		return p.IsWeeklyPopular
	case usecase.PromoMostSelling:
		return p.IsMostSelling
	case usecase.PromoTrending:
		return p.IsTrending
	}
	return false
}

func (r *fakeProductRepo) ReserveStock(ctx context.Context, productID int64, quantity int) (*usecase.ReserveStockRes, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	p, ok := r.products[productID]
	if !ok {
		return nil, e.ErrProductNotFound
	}
	if p.Stock < quantity {
		return nil, e.Wrap(p.Name, e.ErrInsufficientStock)
	}

	p.Stock -= quantity
	undoFromCtx(ctx, func() {
		r.mu.Lock()
		defer r.mu.Unlock()
		p.Stock += quantity
	})

	return usecase.NewReserveStockRes(p.Name, p.Price), nil
}

func (r *fakeProductRepo) RestoreStock(ctx context.Context, productID int64, quantity int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	p, ok := r.products[productID]
	if !ok {
		return e.ErrProductNotFound
	}
	p.Stock += quantity
	return nil
}

type fakeOrderRepo struct {
	mu     sync.Mutex
	nextID int64
	orders map[int64]*domain.Order
}

func newFakeOrderRepo() *fakeOrderRepo {
	return &fakeOrderRepo{orders: map[int64]*domain.Order{}}
}

func (r *fakeOrderRepo) Create(ctx context.Context, order *domain.Order) (*domain.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.nextID++
	cp := *order
	cp.ID = r.nextID
	for i := range cp.Items {
		cp.Items[i].OrderID = cp.ID
	}
	r.orders[cp.ID] = &cp

	id := cp.ID
	undoFromCtx(ctx, func() {
		r.mu.Lock()
		defer r.mu.Unlock()
		delete(r.orders, id)
	})

	res := cp
	return &res, nil
}

func (r *fakeOrderRepo) ListByUser(ctx context.Context, userID int64) ([]domain.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var result []domain.Order
	for _, o := range r.orders {
		if o.UserID == userID {
			result = append(result, *o)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID > result[j].ID })
	return result, nil
}

func (r *fakeOrderRepo) GetByIDForUser(ctx context.Context, id, userID int64) (*domain.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	o, ok := r.orders[id]
	if !ok || o.UserID != userID {
		return nil, e.ErrOrderNotFound
	}
	cp := *o
	return &cp, nil
}

func (r *fakeOrderRepo) GetForCancel(ctx context.Context, id, userID int64) (*domain.Order, error) {
	return r.GetByIDForUser(ctx, id, userID)
}

func (r *fakeOrderRepo) Delete(ctx context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.orders[id]; !ok {
		return e.ErrOrderNotFound
	}
	delete(r.orders, id)
	return nil
}

func (r *fakeOrderRepo) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.orders)
}

type fakeOutboxRepo struct {
	mu     sync.Mutex
	nextID int64
	events []*usecase.OutboxEvent
}

func (r *fakeOutboxRepo) Create(ctx context.Context, event *usecase.OutboxEvent) (*usecase.OutboxEvent, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.nextID++
	cp := *event
	cp.ID = r.nextID
	r.events = append(r.events, &cp)

	id := cp.ID
	undoFromCtx(ctx, func() {
		r.mu.Lock()
		defer r.mu.Unlock()
		for i, ev := range r.events {
			if ev.ID == id {
				r.events = append(r.events[:i], r.events[i+1:]...)
				break
			}
		}
	})

	res := cp
	return &res, nil
}

func (r *fakeOutboxRepo) GetAndMarkAsProcessing(ctx context.Context, limit int) ([]*usecase.OutboxEvent, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var claimed []*usecase.OutboxEvent
	for _, ev := range r.events {
		if ev.Status != usecase.Pending {
			continue
		}
		ev.Status = usecase.Processing
		cp := *ev
		claimed = append(claimed, &cp)
		if len(claimed) == limit {
			break
		}
	}
	return claimed, nil
}

func (r *fakeOutboxRepo) MarkAsProcessed(ctx context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, ev := range r.events {
		if ev.ID == id && ev.Status == usecase.Processing {
			ev.Status = usecase.Processed
		}
	}
	return nil
}

func (r *fakeOutboxRepo) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.events)
}

func (r *fakeOutboxRepo) countOfType(eventType usecase.OutboxEventType) int {
	r.mu.Lock()
	defer r.mu.Unlock()

	n := 0
	for _, ev := range r.events {
		if ev.EventType == eventType {
			n++
		}
	}
	return n
}

type fakeCacheRepo struct {
	mu       sync.Mutex
	products map[int64]domain.Product
	deleted  []int64
}

func newFakeCacheRepo() *fakeCacheRepo {
	return &fakeCacheRepo{products: map[int64]domain.Product{}}
}

func (r *fakeCacheRepo) GetProducts(ctx context.Context, ids []int64) (map[int64]domain.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	result := make(map[int64]domain.Product)
	for _, id := range ids {
		if p, ok := r.products[id]; ok {
			result[id] = p
		}
	}
	return result, nil
}

func (r *fakeCacheRepo) SetProducts(ctx context.Context, products []domain.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, p := range products {
		r.products[p.ID] = p
	}
	return nil
}

func (r *fakeCacheRepo) DeleteProducts(ctx context.Context, ids []int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, id := range ids {
		delete(r.products, id)
		r.deleted = append(r.deleted, id)
	}
	return nil
}

type fakeUserRepo struct {
	mu     sync.Mutex
	nextID int64
	users  map[int64]*domain.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[int64]*domain.User{}}
}

func (r *fakeUserRepo) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, u := range r.users {
		if u.Email == user.Email {
			return nil, e.ErrEmailExists
		}
	}

	r.nextID++
	cp := *user
	cp.ID = r.nextID
	r.users[cp.ID] = &cp

	res := cp
	return &res, nil
}

func (r *fakeUserRepo) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	u, ok := r.users[id]
	if !ok {
		return nil, e.ErrUserNotFound
	}
	cp := *u
	return &cp, nil
}

func (r *fakeUserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, u := range r.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, e.ErrUserNotFound
}

func (r *fakeUserRepo) Update(ctx context.Context, user *domain.User) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.users[user.ID]; !ok {
		return nil, e.ErrUserNotFound
	}
	cp := *user
	r.users[user.ID] = &cp

	res := cp
	return &res, nil
}
