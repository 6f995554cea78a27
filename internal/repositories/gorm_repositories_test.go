package repositories_test

import (
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"lapak/internal/apperrors"
	"lapak/internal/models"
	"lapak/internal/repositories"

	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

var dbSeq int64

// setupDB opens a fresh in-memory SQLite database with foreign keys enforced,
// matching what Postgres does in production. Each test gets its own named
// shared-cache database so GORM's connection pool sees one store.
func setupDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:repotest%d?mode=memory&cache=shared&_foreign_keys=on", atomic.AddInt64(&dbSeq, 1))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		t.Fatalf("failed to open in-memory database: %v", err)
	}
	if err := db.AutoMigrate(&models.User{}, &models.Shop{}, &models.Product{}); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}
	return db
}

// mustCreateShop inserts a shop with an explicit creation time so ordering
// assertions are deterministic.
func mustCreateShop(t *testing.T, repo repositories.ShopRepository, ownerID, name string, createdAt time.Time) *models.Shop {
	t.Helper()
	shop := &models.Shop{Name: name, OwnerID: ownerID, CreatedAt: createdAt, UpdatedAt: createdAt}
	if err := repo.Create(shop); err != nil {
		t.Fatalf("failed to create shop %s: %v", name, err)
	}
	return shop
}

func mustCreateProduct(t *testing.T, repo repositories.ProductRepository, shopID, name string, createdAt time.Time) *models.Product {
	t.Helper()
	product := &models.Product{
		Name:      name,
		Price:     1.0,
		Category:  "Misc",
		Stock:     1,
		ShopID:    shopID,
		CreatedAt: createdAt,
		UpdatedAt: createdAt,
	}
	if err := repo.Create(product); err != nil {
		t.Fatalf("failed to create product %s: %v", name, err)
	}
	return product
}

func TestGORMShopRepository_OwnerScoping(t *testing.T) {
	db := setupDB(t)
	repo := repositories.NewGORMShopRepository(db)

	base := time.Now().Add(-time.Hour)
	older := mustCreateShop(t, repo, "owner-a", "Older Shop", base)
	newer := mustCreateShop(t, repo, "owner-a", "Newer Shop", base.Add(time.Minute))
	foreign := mustCreateShop(t, repo, "owner-b", "Foreign Shop", base)

	// List is owner-scoped and newest first.
	shops, err := repo.GetAllByOwner("owner-a")
	assert.NoError(t, err)
	assert.Len(t, shops, 2)
	assert.Equal(t, newer.ID, shops[0].ID)
	assert.Equal(t, older.ID, shops[1].ID)

	// Lookup succeeds only for the owner; someone else's shop is not found.
	got, err := repo.GetByIDForOwner("owner-a", older.ID)
	assert.NoError(t, err)
	assert.Equal(t, "Older Shop", got.Name)

	var notFound *apperrors.NotFoundError
	_, err = repo.GetByIDForOwner("owner-a", foreign.ID)
	assert.ErrorAs(t, err, &notFound)
	_, err = repo.GetByIDForOwner("owner-a", "no-such-id")
	assert.ErrorAs(t, err, &notFound)
}

func TestGORMShopRepository_DeleteWithProducts(t *testing.T) {
	db := setupDB(t)
	shopRepo := repositories.NewGORMShopRepository(db)
	productRepo := repositories.NewGORMProductRepository(db)

	now := time.Now()
	doomed := mustCreateShop(t, shopRepo, "owner-a", "Doomed Shop", now)
	survivor := mustCreateShop(t, shopRepo, "owner-a", "Surviving Shop", now)
	mustCreateProduct(t, productRepo, doomed.ID, "Pen", now)
	mustCreateProduct(t, productRepo, doomed.ID, "Pencil", now)
	kept := mustCreateProduct(t, productRepo, survivor.ID, "Notebook", now)

	// Deleting by the wrong owner touches nothing.
	var notFound *apperrors.NotFoundError
	_, err := shopRepo.DeleteWithProducts("intruder", doomed.ID)
	assert.ErrorAs(t, err, &notFound)
	remaining, err := productRepo.GetByShop(doomed.ID)
	assert.NoError(t, err)
	assert.Len(t, remaining, 2)

	// The real owner removes the shop and both products.
	removed, err := shopRepo.DeleteWithProducts("owner-a", doomed.ID)
	assert.NoError(t, err)
	assert.Equal(t, int64(2), removed)

	_, err = shopRepo.GetByIDForOwner("owner-a", doomed.ID)
	assert.ErrorAs(t, err, &notFound)
	remaining, err = productRepo.GetByShop(doomed.ID)
	assert.NoError(t, err)
	assert.Empty(t, remaining)

	// The other shop and its product are untouched.
	_, err = shopRepo.GetByIDForOwner("owner-a", survivor.ID)
	assert.NoError(t, err)
	_, err = productRepo.GetByID(kept.ID)
	assert.NoError(t, err)

	// A second delete reports not found.
	_, err = shopRepo.DeleteWithProducts("owner-a", doomed.ID)
	assert.ErrorAs(t, err, &notFound)
}

func TestGORMShopRepository_CascadeWithForeignKeysEnforced(t *testing.T) {
	db := setupDB(t)
	shopRepo := repositories.NewGORMShopRepository(db)
	productRepo := repositories.NewGORMProductRepository(db)

	// Prove the migrated shop reference is actually enforced in this store:
	// a product pointing at a missing shop must be rejected.
	err := productRepo.Create(&models.Product{
		Name: "Orphan", Price: 1.0, Category: "Misc", Stock: 1, ShopID: "no-such-shop",
	})
	assert.Error(t, err)

	// With the constraint active, the cascade must still go through: the
	// products have to be gone before the shop row is removed.
	now := time.Now()
	shop := mustCreateShop(t, shopRepo, "owner-a", "Constrained Shop", now)
	mustCreateProduct(t, productRepo, shop.ID, "Pen", now)
	mustCreateProduct(t, productRepo, shop.ID, "Pencil", now)

	removed, err := shopRepo.DeleteWithProducts("owner-a", shop.ID)
	assert.NoError(t, err)
	assert.Equal(t, int64(2), removed)

	var notFound *apperrors.NotFoundError
	_, err = shopRepo.GetByIDForOwner("owner-a", shop.ID)
	assert.ErrorAs(t, err, &notFound)
	remaining, err := productRepo.GetByShop(shop.ID)
	assert.NoError(t, err)
	assert.Empty(t, remaining)
}

func TestGORMShopRepository_GetAllWithProducts(t *testing.T) {
	db := setupDB(t)
	shopRepo := repositories.NewGORMShopRepository(db)
	productRepo := repositories.NewGORMProductRepository(db)

	base := time.Now().Add(-time.Hour)
	stocked := mustCreateShop(t, shopRepo, "owner-a", "Stocked Shop", base)
	empty := mustCreateShop(t, shopRepo, "owner-a", "Empty Shop", base.Add(time.Minute))
	foreign := mustCreateShop(t, shopRepo, "owner-b", "Foreign Shop", base)
	mustCreateProduct(t, productRepo, stocked.ID, "Pen", base)
	mustCreateProduct(t, productRepo, stocked.ID, "Pencil", base.Add(time.Minute))
	mustCreateProduct(t, productRepo, foreign.ID, "Foreign Pen", base)

	views, err := shopRepo.GetAllWithProducts("owner-a")
	assert.NoError(t, err)
	assert.Len(t, views, 2)

	// Newest shop first, empty product list rather than nil.
	assert.Equal(t, empty.ID, views[0].ID)
	assert.NotNil(t, views[0].Products)
	assert.Empty(t, views[0].Products)

	assert.Equal(t, stocked.ID, views[1].ID)
	assert.Len(t, views[1].Products, 2)
	assert.Equal(t, "Pencil", views[1].Products[0].Name)
	assert.Equal(t, "Pen", views[1].Products[1].Name)
}

func TestGORMProductRepository_GetAllByOwner(t *testing.T) {
	db := setupDB(t)
	shopRepo := repositories.NewGORMShopRepository(db)
	productRepo := repositories.NewGORMProductRepository(db)

	base := time.Now().Add(-time.Hour)
	shopA1 := mustCreateShop(t, shopRepo, "owner-a", "Shop A1", base)
	shopA2 := mustCreateShop(t, shopRepo, "owner-a", "Shop A2", base)
	shopB := mustCreateShop(t, shopRepo, "owner-b", "Shop B", base)
	older := mustCreateProduct(t, productRepo, shopA1.ID, "Pen", base)
	newer := mustCreateProduct(t, productRepo, shopA2.ID, "Notebook", base.Add(time.Minute))
	mustCreateProduct(t, productRepo, shopB.ID, "Foreign Pen", base)

	products, err := productRepo.GetAllByOwner("owner-a")
	assert.NoError(t, err)
	assert.Len(t, products, 2)
	assert.Equal(t, newer.ID, products[0].ID)
	assert.Equal(t, older.ID, products[1].ID)

	// The shop reference comes back resolved.
	assert.NotNil(t, products[0].Shop)
	assert.Equal(t, "Shop A2", products[0].Shop.Name)

	products, err = productRepo.GetAllByOwner("owner-c")
	assert.NoError(t, err)
	assert.Empty(t, products)
}

func TestGORMProductRepository_ImageRoundTrip(t *testing.T) {
	db := setupDB(t)
	shopRepo := repositories.NewGORMShopRepository(db)
	productRepo := repositories.NewGORMProductRepository(db)

	shop := mustCreateShop(t, shopRepo, "owner-a", "Shop", time.Now())
	product := &models.Product{
		Name:     "Pen",
		Price:    1.5,
		Category: "Office",
		Stock:    10,
		Image:    "not-a-url",
		ShopID:   shop.ID,
	}
	assert.NoError(t, productRepo.Create(product))

	got, err := productRepo.GetByID(product.ID)
	assert.NoError(t, err)
	assert.Equal(t, "not-a-url", got.Image)
}

func TestGORMProductRepository_Delete(t *testing.T) {
	db := setupDB(t)
	shopRepo := repositories.NewGORMShopRepository(db)
	productRepo := repositories.NewGORMProductRepository(db)

	shop := mustCreateShop(t, shopRepo, "owner-a", "Shop", time.Now())
	product := mustCreateProduct(t, productRepo, shop.ID, "Pen", time.Now())

	assert.NoError(t, productRepo.Delete(product.ID))

	var notFound *apperrors.NotFoundError
	_, err := productRepo.GetByID(product.ID)
	assert.ErrorAs(t, err, &notFound)
	err = productRepo.Delete(product.ID)
	assert.ErrorAs(t, err, &notFound)
}

func TestGORMUserRepository_EmailLookup(t *testing.T) {
	db := setupDB(t)
	repo := repositories.NewGORMUserRepository(db)

	user := &models.User{Name: "Alice", Email: "alice@example.com", Password: "hashed"}
	assert.NoError(t, repo.Create(user))
	assert.NotEmpty(t, user.ID)

	got, err := repo.GetByEmail("alice@example.com")
	assert.NoError(t, err)
	assert.Equal(t, user.ID, got.ID)

	var notFound *apperrors.NotFoundError
	_, err = repo.GetByEmail("nobody@example.com")
	assert.ErrorAs(t, err, &notFound)

	got, err = repo.GetByID(user.ID)
	assert.NoError(t, err)
	assert.Equal(t, "Alice", got.Name)

	// A second insert with the same email hits the unique index and comes
	// back as a conflict, covering registers that race past the service's
	// duplicate check.
	err = repo.Create(&models.User{Name: "Alice Again", Email: "alice@example.com", Password: "hashed"})
	var conflict *apperrors.ConflictError
	assert.ErrorAs(t, err, &conflict)
}
