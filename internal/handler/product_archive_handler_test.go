package handler

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/HmzT270/Inventory-Stock-Project/internal/model"
	"github.com/HmzT270/Inventory-Stock-Project/pkg/database"
)

func TestDeleteProductArchivesSnapshot(t *testing.T) {
	setupDB(t)
	category := createCategory(t, "Electronics")
	brand := createBrand(t, "Acme")
	product := createProduct(t, "Router", 7, category.ID, &brand.ID)

	db := database.GetDB()
	db.Create(&model.StockMovement{ProductID: product.ID, MovementType: model.MovementIn, Quantity: 7, MovementDate: time.Now()})
	db.Create(&model.ProductFavorite{ProductID: product.ID, UserID: "user-1"})

	c, rec := newContext(t, http.MethodDelete, "/api/products/x", `{"deletedBy":"admin"}`)
	setParams(c, "id", fmt.Sprintf("%d", product.ID))
	if err := DeleteProduct(c); err != nil {
		t.Fatalf("DeleteProduct returned error: %v", err)
	}
	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d: %s", rec.Code, rec.Body.String())
	}

	var archived model.DeletedProduct
	if err := db.Where("original_product_id = ?", product.ID).First(&archived).Error; err != nil {
		t.Fatalf("expected archive record: %v", err)
	}
	if archived.Name != "Router" || archived.Quantity != 7 {
		t.Fatalf("archive snapshot mismatch: %+v", archived)
	}
	if archived.CategoryName != "Electronics" || archived.BrandName != "Acme" {
		t.Fatalf("expected denormalized names, got %q/%q", archived.CategoryName, archived.BrandName)
	}
	if archived.DeletedBy != "admin" {
		t.Fatalf("expected deletedBy admin, got %q", archived.DeletedBy)
	}

	var productCount, movementCount, favoriteCount int64
	db.Model(&model.Product{}).Count(&productCount)
	db.Model(&model.StockMovement{}).Count(&movementCount)
	db.Model(&model.ProductFavorite{}).Count(&favoriteCount)
	if productCount != 0 || movementCount != 0 || favoriteCount != 0 {
		t.Fatalf("expected product, movements and favorites removed, got %d/%d/%d",
			productCount, movementCount, favoriteCount)
	}
}

func TestDeleteProductNotFound(t *testing.T) {
	setupDB(t)

	c, rec := newContext(t, http.MethodDelete, "/api/products/x", "")
	setParams(c, "id", "9999")
	if err := DeleteProduct(c); err != nil {
		t.Fatalf("DeleteProduct returned error: %v", err)
	}
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}

func TestRestoreProductRoundTrip(t *testing.T) {
	setupDB(t)
	category := createCategory(t, "Electronics")
	brand := createBrand(t, "Acme")
	product := createProduct(t, "Router", 7, category.ID, &brand.ID)
	originalID := product.ID

	c, rec := newContext(t, http.MethodDelete, "/api/products/x", "")
	setParams(c, "id", fmt.Sprintf("%d", product.ID))
	if err := DeleteProduct(c); err != nil {
		t.Fatalf("DeleteProduct returned error: %v", err)
	}
	if rec.Code != http.StatusNoContent {
		t.Fatalf("delete failed: %d", rec.Code)
	}

	c, rec = newContext(t, http.MethodPost, "/api/products/restore/x", "")
	setParams(c, "originalId", fmt.Sprintf("%d", originalID))
	if err := RestoreProduct(c); err != nil {
		t.Fatalf("RestoreProduct returned error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	db := database.GetDB()
	var restored model.Product
	if err := db.Where("name = ?", "Router").First(&restored).Error; err != nil {
		t.Fatalf("expected restored product: %v", err)
	}
	if restored.Quantity != 7 || restored.CategoryID != category.ID {
		t.Fatalf("restored fields mismatch: %+v", restored)
	}
	if restored.BrandID == nil || *restored.BrandID != brand.ID {
		t.Fatalf("expected brand re-resolved to %d", brand.ID)
	}

	// Archive record is consumed by the restore
	var archiveCount int64
	db.Model(&model.DeletedProduct{}).Count(&archiveCount)
	if archiveCount != 0 {
		t.Fatalf("expected archive record removed, got %d", archiveCount)
	}
}

func TestRestoreFailsWhenCategoryRenamed(t *testing.T) {
	setupDB(t)
	category := createCategory(t, "Electronics")
	product := createProduct(t, "Router", 7, category.ID, nil)
	originalID := product.ID

	c, rec := newContext(t, http.MethodDelete, "/api/products/x", "")
	setParams(c, "id", fmt.Sprintf("%d", product.ID))
	if err := DeleteProduct(c); err != nil {
		t.Fatalf("DeleteProduct returned error: %v", err)
	}
	if rec.Code != http.StatusNoContent {
		t.Fatalf("delete failed: %d", rec.Code)
	}

	// Renaming the category breaks the name-based match
	database.GetDB().Model(&model.Category{}).
		Where("id = ?", category.ID).
		Update("name", "Gadgets")

	c, rec = newContext(t, http.MethodPost, "/api/products/restore/x", "")
	setParams(c, "originalId", fmt.Sprintf("%d", originalID))
	if err := RestoreProduct(c); err != nil {
		t.Fatalf("RestoreProduct returned error: %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 after category rename, got %d", rec.Code)
	}

	// The archive record survives a failed restore
	var archiveCount int64
	database.GetDB().Model(&model.DeletedProduct{}).Count(&archiveCount)
	if archiveCount != 1 {
		t.Fatalf("expected archive record kept, got %d", archiveCount)
	}
}

func TestRestoreUnknownArchive(t *testing.T) {
	setupDB(t)

	c, rec := newContext(t, http.MethodPost, "/api/products/restore/x", "")
	setParams(c, "originalId", "9999")
	if err := RestoreProduct(c); err != nil {
		t.Fatalf("RestoreProduct returned error: %v", err)
	}
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}

func TestListRecentDeletedCapAndOrder(t *testing.T) {
	setupDB(t)
	db := database.GetDB()

	base := time.Now().Add(-time.Hour)
	for i := 0; i < 12; i++ {
		db.Create(&model.DeletedProduct{
			Name:              fmt.Sprintf("Item %02d", i),
			DeletedAt:         base.Add(time.Duration(i) * time.Minute),
			OriginalProductID: uint(i + 1),
			CategoryName:      "General",
		})
	}

	c, rec := newContext(t, http.MethodGet, "/api/products/recentDeleted", "")
	if err := ListRecentDeleted(c); err != nil {
		t.Fatalf("ListRecentDeleted returned error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var deleted []model.DeletedProduct
	decodeBody(t, rec, &deleted)
	if len(deleted) != 10 {
		t.Fatalf("expected 10 entries, got %d", len(deleted))
	}
	if deleted[0].Name != "Item 11" {
		t.Fatalf("expected most recent first, got %q", deleted[0].Name)
	}
	if deleted[9].Name != "Item 02" {
		t.Fatalf("expected oldest surviving entry last, got %q", deleted[9].Name)
	}
}

func TestListRecentDeletedEmpty(t *testing.T) {
	setupDB(t)

	c, rec := newContext(t, http.MethodGet, "/api/products/recentDeleted", "")
	if err := ListRecentDeleted(c); err != nil {
		t.Fatalf("ListRecentDeleted returned error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if body := rec.Body.String(); body == "null\n" {
		t.Fatalf("expected empty array, got null")
	}
}
