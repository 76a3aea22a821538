package inventory_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Almacen-api/internal/application/inventory"
	"github.com/jhoicas/Almacen-api/internal/domain"
	"github.com/jhoicas/Almacen-api/internal/domain/entity"
)

func newMutationFixture(products ...*entity.Product) (*inventory.MutationUseCase, *fakeProductRepo, *fakeLogRepo, *fakeShelfRepo) {
	productRepo := newFakeProductRepo(products...)
	logRepo := &fakeLogRepo{}
	shelfRepo := newFakeShelfRepo(
		&entity.Shelf{ID: "shelf-a", Code: "A-01", Capacity: 100, CreatedAt: time.Now()},
		&entity.Shelf{ID: "shelf-b", Code: "B-01", Capacity: 100, CreatedAt: time.Now()},
	)
	uc := inventory.NewMutationUseCase(&fakeTxRunner{productRepo: productRepo, logRepo: logRepo}, shelfRepo)
	return uc, productRepo, logRepo, shelfRepo
}

func testProduct(id string, qty, damaged int) *entity.Product {
	shelf := "shelf-a"
	return &entity.Product{
		ID: id, Barcode: "869" + id, Name: "producto " + id,
		Quantity: qty, DamagedQuantity: damaged, MinStock: 5,
		ShelfID: &shelf, CreatedAt: time.Now(), UpdatedAt: time.Now(),
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// StockIn / StockOut
// ──────────────────────────────────────────────────────────────────────────────

func TestStockIn_SumaYAsientaUnLog(t *testing.T) {
	uc, productRepo, logRepo, _ := newMutationFixture(testProduct("p1", 5, 0))

	res, err := uc.StockIn(context.Background(), "p1", 3)
	require.NoError(t, err)
	assert.Equal(t, 8, res.NewQuantity)
	assert.Equal(t, 0, res.NewDamagedQuantity)

	p, _ := productRepo.GetByID("p1")
	assert.Equal(t, 8, p.Quantity)

	logs := logRepo.all()
	require.Len(t, logs, 1, "cada mutación debe producir exactamente un asiento")
	assert.Equal(t, entity.TxStockIn, logs[0].TransactionType)
	assert.Equal(t, 3, logs[0].QuantityChange)
}

func TestStockIn_CantidadNoPositiva_Rechaza(t *testing.T) {
	uc, _, logRepo, _ := newMutationFixture(testProduct("p1", 5, 0))

	for _, amount := range []int{0, -2} {
		_, err := uc.StockIn(context.Background(), "p1", amount)
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	}
	assert.Empty(t, logRepo.all(), "una mutación rechazada no debe asentar nada")
}

func TestStockIn_ProductoInexistente(t *testing.T) {
	uc, _, _, _ := newMutationFixture()
	_, err := uc.StockIn(context.Background(), "no-existe", 1)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestStockOut_RestaNormal(t *testing.T) {
	uc, _, logRepo, _ := newMutationFixture(testProduct("p1", 5, 0))

	res, err := uc.StockOut(context.Background(), "p1", 3)
	require.NoError(t, err)
	assert.Equal(t, 2, res.NewQuantity)

	logs := logRepo.all()
	require.Len(t, logs, 1)
	assert.Equal(t, entity.TxStockOut, logs[0].TransactionType)
	assert.Equal(t, -3, logs[0].QuantityChange, "el asiento registra el delta con signo")
}

func TestStockOut_RecortaEnCeroYAsientaElDeltaCompleto(t *testing.T) {
	uc, productRepo, logRepo, _ := newMutationFixture(testProduct("p1", 5, 0))

	res, err := uc.StockOut(context.Background(), "p1", 9)
	require.NoError(t, err, "el motor recorta, no rechaza")
	assert.Equal(t, 0, res.NewQuantity, "el stock nunca queda negativo")

	p, _ := productRepo.GetByID("p1")
	assert.Equal(t, 0, p.Quantity)

	logs := logRepo.all()
	require.Len(t, logs, 1)
	assert.Equal(t, -9, logs[0].QuantityChange, "se asienta lo pedido, no lo recortado")
}

// ──────────────────────────────────────────────────────────────────────────────
// MoveShelf
// ──────────────────────────────────────────────────────────────────────────────

func TestMoveShelf_AsientaSnapshotsDeEstanteria(t *testing.T) {
	uc, productRepo, logRepo, _ := newMutationFixture(testProduct("p1", 5, 0))

	err := uc.MoveShelf(context.Background(), "p1", "shelf-b")
	require.NoError(t, err)

	p, _ := productRepo.GetByID("p1")
	require.NotNil(t, p.ShelfID)
	assert.Equal(t, "shelf-b", *p.ShelfID)

	logs := logRepo.all()
	require.Len(t, logs, 1)
	assert.Equal(t, entity.TxMove, logs[0].TransactionType)
	assert.Equal(t, 0, logs[0].QuantityChange, "MOVE no toca contadores")
	require.NotNil(t, logs[0].OldShelfID)
	require.NotNil(t, logs[0].NewShelfID)
	assert.Equal(t, "shelf-a", *logs[0].OldShelfID)
	assert.Equal(t, "shelf-b", *logs[0].NewShelfID)
}

func TestMoveShelf_MismaEstanteriaEsLegal(t *testing.T) {
	uc, _, logRepo, _ := newMutationFixture(testProduct("p1", 5, 0))

	err := uc.MoveShelf(context.Background(), "p1", "shelf-a")
	require.NoError(t, err)
	assert.Len(t, logRepo.all(), 1, "mover a la misma estantería también se asienta")
}

func TestMoveShelf_EstanteriaInexistente(t *testing.T) {
	uc, _, logRepo, _ := newMutationFixture(testProduct("p1", 5, 0))

	err := uc.MoveShelf(context.Background(), "p1", "no-existe")
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Empty(t, logRepo.all())
}

// ──────────────────────────────────────────────────────────────────────────────
// DamagedIn / DamagedOut
// ──────────────────────────────────────────────────────────────────────────────

func TestDamagedIn_DesdeStockSano(t *testing.T) {
	uc, _, logRepo, _ := newMutationFixture(testProduct("p1", 5, 1))

	res, err := uc.DamagedIn(context.Background(), "p1", 3, true)
	require.NoError(t, err)
	assert.Equal(t, 2, res.NewQuantity)
	assert.Equal(t, 4, res.NewDamagedQuantity)

	logs := logRepo.all()
	require.Len(t, logs, 1)
	assert.Equal(t, entity.TxDamagedIn, logs[0].TransactionType)
	assert.Equal(t, 3, logs[0].QuantityChange)
	require.NotNil(t, logs[0].Note, "el traslado desde stock sano deja nota")
}

func TestDamagedIn_DesdeStockSano_RecortaEnCero(t *testing.T) {
	uc, _, _, _ := newMutationFixture(testProduct("p1", 2, 0))

	res, err := uc.DamagedIn(context.Background(), "p1", 5, true)
	require.NoError(t, err)
	assert.Equal(t, 0, res.NewQuantity, "el stock sano se recorta en cero")
	assert.Equal(t, 5, res.NewDamagedQuantity, "lo dañado recibe el amount completo")
}

func TestDamagedIn_LlegadaYaDanada_NoTocaStockSano(t *testing.T) {
	uc, _, logRepo, _ := newMutationFixture(testProduct("p1", 5, 0))

	res, err := uc.DamagedIn(context.Background(), "p1", 2, false)
	require.NoError(t, err)
	assert.Equal(t, 5, res.NewQuantity)
	assert.Equal(t, 2, res.NewDamagedQuantity)

	logs := logRepo.all()
	require.Len(t, logs, 1)
	assert.Nil(t, logs[0].Note, "sin traslado no hay nota")
}

func TestDamagedOut_RecortaEnCeroSinTocarStockSano(t *testing.T) {
	uc, productRepo, logRepo, _ := newMutationFixture(testProduct("p1", 7, 2))

	res, err := uc.DamagedOut(context.Background(), "p1", 5)
	require.NoError(t, err)
	assert.Equal(t, 7, res.NewQuantity, "lo dañado que sale no vuelve al stock sano")
	assert.Equal(t, 0, res.NewDamagedQuantity)

	p, _ := productRepo.GetByID("p1")
	assert.Equal(t, 7, p.Quantity)
	assert.Equal(t, 0, p.DamagedQuantity)

	logs := logRepo.all()
	require.Len(t, logs, 1)
	assert.Equal(t, entity.TxDamagedOut, logs[0].TransactionType)
	assert.Equal(t, 5, logs[0].QuantityChange, "DAMAGED_OUT asienta la magnitud en positivo")
}
