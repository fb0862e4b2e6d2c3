package handler

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/HmzT270/Inventory-Stock-Project/internal/model"
	"github.com/HmzT270/Inventory-Stock-Project/pkg/database"
)

func TestCreateAndListBrands(t *testing.T) {
	setupDB(t)

	c, rec := newContext(t, http.MethodPost, "/api/brands", `{"name":"Acme"}`)
	if err := CreateBrand(c); err != nil {
		t.Fatalf("CreateBrand returned error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}

	c, rec = newContext(t, http.MethodPost, "/api/brands", `{"name":""}`)
	if err := CreateBrand(c); err != nil {
		t.Fatalf("CreateBrand returned error: %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for blank name, got %d", rec.Code)
	}

	c, rec = newContext(t, http.MethodGet, "/api/brands", "")
	if err := ListBrands(c); err != nil {
		t.Fatalf("ListBrands returned error: %v", err)
	}
	var brands []model.Brand
	decodeBody(t, rec, &brands)
	if len(brands) != 1 || brands[0].Name != "Acme" {
		t.Fatalf("unexpected brands: %+v", brands)
	}
}

func TestGetBrand(t *testing.T) {
	setupDB(t)
	brand := createBrand(t, "Acme")

	c, rec := newContext(t, http.MethodGet, "/api/brands/x", "")
	setParams(c, "id", fmt.Sprintf("%d", brand.ID))
	if err := GetBrand(c); err != nil {
		t.Fatalf("GetBrand returned error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	c, rec = newContext(t, http.MethodGet, "/api/brands/x", "")
	setParams(c, "id", "9999")
	if err := GetBrand(c); err != nil {
		t.Fatalf("GetBrand returned error: %v", err)
	}
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}

func TestUpdateBrandRequiresMatchingID(t *testing.T) {
	setupDB(t)
	brand := createBrand(t, "Acme")

	body := fmt.Sprintf(`{"brandId":%d,"name":"Globex"}`, brand.ID+1)
	c, rec := newContext(t, http.MethodPut, "/api/brands/x", body)
	setParams(c, "id", fmt.Sprintf("%d", brand.ID))
	if err := UpdateBrand(c); err != nil {
		t.Fatalf("UpdateBrand returned error: %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for id mismatch, got %d", rec.Code)
	}

	body = fmt.Sprintf(`{"brandId":%d,"name":"Globex"}`, brand.ID)
	c, rec = newContext(t, http.MethodPut, "/api/brands/x", body)
	setParams(c, "id", fmt.Sprintf("%d", brand.ID))
	if err := UpdateBrand(c); err != nil {
		t.Fatalf("UpdateBrand returned error: %v", err)
	}
	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", rec.Code)
	}
}

func TestRenameAndDeleteBrand(t *testing.T) {
	setupDB(t)
	brand := createBrand(t, "Acme")

	c, rec := newContext(t, http.MethodPut, "/api/brands/rename/x", `{"newName":"Globex"}`)
	setParams(c, "id", fmt.Sprintf("%d", brand.ID))
	if err := RenameBrand(c); err != nil {
		t.Fatalf("RenameBrand returned error: %v", err)
	}
	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", rec.Code)
	}

	var renamed model.Brand
	database.GetDB().First(&renamed, brand.ID)
	if renamed.Name != "Globex" {
		t.Fatalf("expected renamed brand, got %q", renamed.Name)
	}

	c, rec = newContext(t, http.MethodDelete, "/api/brands/x", "")
	setParams(c, "id", fmt.Sprintf("%d", brand.ID))
	if err := DeleteBrand(c); err != nil {
		t.Fatalf("DeleteBrand returned error: %v", err)
	}
	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", rec.Code)
	}

	var count int64
	database.GetDB().Model(&model.Brand{}).Count(&count)
	if count != 0 {
		t.Fatalf("expected brand deleted, got %d", count)
	}
}
