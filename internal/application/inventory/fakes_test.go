package inventory_test

import (
	"context"
	"sort"
	"sync"

	"github.com/jhoicas/Almacen-api/internal/application/marketplace"
	"github.com/jhoicas/Almacen-api/internal/domain/entity"
	"github.com/jhoicas/Almacen-api/internal/domain/repository"
	"github.com/jhoicas/Almacen-api/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria para los casos de uso de inventario
// ──────────────────────────────────────────────────────────────────────────────

func testLogger() *logger.Logger {
	return logger.New(logger.Config{Env: "development", Level: "error"})
}

// fakeProductRepo implementación en memoria de repository.ProductRepository.
type fakeProductRepo struct {
	mu       sync.Mutex
	products map[string]*entity.Product
	errAll   error // si se setea, todos los métodos fallan con este error
}

func newFakeProductRepo(products ...*entity.Product) *fakeProductRepo {
	r := &fakeProductRepo{products: make(map[string]*entity.Product)}
	for _, p := range products {
		cp := *p
		r.products[p.ID] = &cp
	}
	return r
}

func (r *fakeProductRepo) get(id string) *entity.Product {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.products[id]
	if !ok {
		return nil
	}
	cp := *p
	return &cp
}

func (r *fakeProductRepo) Create(p *entity.Product) error {
	if r.errAll != nil {
		return r.errAll
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *p
	r.products[p.ID] = &cp
	return nil
}

func (r *fakeProductRepo) CreateBatch(products []*entity.Product) error {
	if r.errAll != nil {
		return r.errAll
	}
	for _, p := range products {
		if err := r.Create(p); err != nil {
			return err
		}
	}
	return nil
}

func (r *fakeProductRepo) GetByID(id string) (*entity.Product, error) {
	if r.errAll != nil {
		return nil, r.errAll
	}
	return r.get(id), nil
}

func (r *fakeProductRepo) GetByBarcode(barcode string) (*entity.Product, error) {
	if r.errAll != nil {
		return nil, r.errAll
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, p := range r.products {
		if p.Barcode == barcode {
			cp := *p
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeProductRepo) GetForUpdate(id string) (*entity.Product, error) {
	if r.errAll != nil {
		return nil, r.errAll
	}
	return r.get(id), nil
}

func (r *fakeProductRepo) List(limit, offset int) ([]*entity.Product, error) {
	if r.errAll != nil {
		return nil, r.errAll
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	var list []*entity.Product
	for _, p := range r.products {
		cp := *p
		list = append(list, &cp)
	}
	return list, nil
}

func (r *fakeProductRepo) ListByShelf(shelfID string) ([]*entity.Product, error) {
	if r.errAll != nil {
		return nil, r.errAll
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	var list []*entity.Product
	for _, p := range r.products {
		if p.ShelfID != nil && *p.ShelfID == shelfID {
			cp := *p
			list = append(list, &cp)
		}
	}
	return list, nil
}

func (r *fakeProductRepo) ListDamaged() ([]*entity.Product, error) {
	if r.errAll != nil {
		return nil, r.errAll
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	var list []*entity.Product
	for _, p := range r.products {
		if p.DamagedQuantity > 0 {
			cp := *p
			list = append(list, &cp)
		}
	}
	return list, nil
}

func (r *fakeProductRepo) ListCritical() ([]*entity.Product, error) {
	if r.errAll != nil {
		return nil, r.errAll
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	var list []*entity.Product
	for _, p := range r.products {
		if p.Quantity <= p.MinStock {
			cp := *p
			list = append(list, &cp)
		}
	}
	sort.Slice(list, func(i, j int) bool { return list[i].Quantity < list[j].Quantity })
	return list, nil
}

func (r *fakeProductRepo) ListBarcodeThresholds() ([]repository.BarcodeThreshold, error) {
	if r.errAll != nil {
		return nil, r.errAll
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	var list []repository.BarcodeThreshold
	for _, p := range r.products {
		list = append(list, repository.BarcodeThreshold{
			ProductID: p.ID, Barcode: p.Barcode, MinStock: p.MinStock,
		})
	}
	return list, nil
}

func (r *fakeProductRepo) UpdateCounters(id string, quantity, damagedQuantity int) error {
	if r.errAll != nil {
		return r.errAll
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if p, ok := r.products[id]; ok {
		p.Quantity = quantity
		p.DamagedQuantity = damagedQuantity
	}
	return nil
}

func (r *fakeProductRepo) UpdateShelf(id string, shelfID *string) error {
	if r.errAll != nil {
		return r.errAll
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if p, ok := r.products[id]; ok {
		p.ShelfID = shelfID
	}
	return nil
}

func (r *fakeProductRepo) UpdateMinStock(id string, minStock int) error {
	if r.errAll != nil {
		return r.errAll
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if p, ok := r.products[id]; ok {
		p.MinStock = minStock
	}
	return nil
}

func (r *fakeProductRepo) UnassignShelf(shelfID string) (int, error) {
	if r.errAll != nil {
		return 0, r.errAll
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	count := 0
	for _, p := range r.products {
		if p.ShelfID != nil && *p.ShelfID == shelfID {
			p.ShelfID = nil
			count++
		}
	}
	return count, nil
}

// fakeLogRepo diario en memoria.
type fakeLogRepo struct {
	mu   sync.Mutex
	logs []*entity.InventoryLog
}

func (r *fakeLogRepo) Create(log *entity.InventoryLog) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *log
	r.logs = append(r.logs, &cp)
	return nil
}

func (r *fakeLogRepo) ListRecent(limit int) ([]*entity.LogWithProduct, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var list []*entity.LogWithProduct
	for i := len(r.logs) - 1; i >= 0 && len(list) < limit; i-- {
		list = append(list, &entity.LogWithProduct{InventoryLog: *r.logs[i]})
	}
	return list, nil
}

func (r *fakeLogRepo) ListByProduct(productID string, limit, offset int) ([]*entity.InventoryLog, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var list []*entity.InventoryLog
	for _, l := range r.logs {
		if l.ProductID == productID {
			cp := *l
			list = append(list, &cp)
		}
	}
	return list, nil
}

func (r *fakeLogRepo) all() []*entity.InventoryLog {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]*entity.InventoryLog(nil), r.logs...)
}

// fakeShelfRepo estanterías en memoria.
type fakeShelfRepo struct {
	mu        sync.Mutex
	shelves   map[string]*entity.Shelf
	deleteErr error
}

func newFakeShelfRepo(shelves ...*entity.Shelf) *fakeShelfRepo {
	r := &fakeShelfRepo{shelves: make(map[string]*entity.Shelf)}
	for _, s := range shelves {
		cp := *s
		r.shelves[s.ID] = &cp
	}
	return r
}

func (r *fakeShelfRepo) Create(shelf *entity.Shelf) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *shelf
	r.shelves[shelf.ID] = &cp
	return nil
}

func (r *fakeShelfRepo) GetByID(id string) (*entity.Shelf, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.shelves[id]
	if !ok {
		return nil, nil
	}
	cp := *s
	return &cp, nil
}

func (r *fakeShelfRepo) List() ([]*entity.Shelf, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var list []*entity.Shelf
	for _, s := range r.shelves {
		cp := *s
		list = append(list, &cp)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].Code < list[j].Code })
	return list, nil
}

func (r *fakeShelfRepo) Delete(id string) error {
	if r.deleteErr != nil {
		return r.deleteErr
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.shelves, id)
	return nil
}

// fakeTxRunner ejecuta el callback directamente sobre los fakes, sin
// transacción real.
type fakeTxRunner struct {
	productRepo *fakeProductRepo
	logRepo     *fakeLogRepo
}

func (r *fakeTxRunner) Run(ctx context.Context, fn func(
	productRepo repository.ProductRepository,
	logRepo repository.InventoryLogRepository,
) error) error {
	return fn(r.productRepo, r.logRepo)
}

// fakeAPI implementación configurable del puerto marketplace.API.
type fakeAPI struct {
	pages    []marketplace.ListingPage
	pageErrs map[int]error

	ordersFn func(q marketplace.OrderQuery) (*marketplace.OrderPage, error)
	claimsFn func(page, size int, startDate, endDate int64) (*marketplace.ClaimPage, error)
}

func (a *fakeAPI) FetchProducts(ctx context.Context, page, size int) (*marketplace.ListingPage, error) {
	if err, ok := a.pageErrs[page]; ok {
		return nil, err
	}
	if page >= len(a.pages) {
		return &marketplace.ListingPage{TotalPages: len(a.pages), Page: page, Size: size}, nil
	}
	res := a.pages[page]
	res.TotalPages = len(a.pages)
	res.Page = page
	res.Size = size
	return &res, nil
}

func (a *fakeAPI) FetchOrders(ctx context.Context, q marketplace.OrderQuery) (*marketplace.OrderPage, error) {
	if a.ordersFn != nil {
		return a.ordersFn(q)
	}
	return &marketplace.OrderPage{}, nil
}

func (a *fakeAPI) FetchOrderByNumber(ctx context.Context, orderNumber string) (*marketplace.Order, error) {
	return nil, nil
}

func (a *fakeAPI) FetchClaims(ctx context.Context, page, size int, startDate, endDate int64) (*marketplace.ClaimPage, error) {
	if a.claimsFn != nil {
		return a.claimsFn(page, size, startDate, endDate)
	}
	return &marketplace.ClaimPage{}, nil
}
