package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/prasannakumar-sl/crackers-shop/internal/transport"
)

func TestSectionService_SetProducts(t *testing.T) {
	r := initTestDB(t)
	sections := &SectionService{Repo: r}
	catalog := &CatalogService{Repo: r}
	ctx := context.Background()

	flower, err := catalog.CreateProduct(ctx, transport.CreateProductRequest{Name: "Flower Pots", Price: "120", ImageURL: "/img/fp.png"})
	require.NoError(t, err)
	rocket, err := catalog.CreateProduct(ctx, transport.CreateProductRequest{Name: "Sky Rocket", Price: "200"})
	require.NoError(t, err)

	section, err := sections.CreateSection(ctx, transport.CreateSectionRequest{Title: "Diwali Specials", Position: 1})
	require.NoError(t, err)

	require.NoError(t, sections.SetProducts(ctx, section.ID, transport.SectionProductsRequest{
		ProductIDs: []uint{rocket.ID, flower.ID},
	}))

	err = sections.SetProducts(ctx, section.ID, transport.SectionProductsRequest{ProductIDs: []uint{999}})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrValidation)

	got, err := sections.GetSection(ctx, section.ID)
	require.NoError(t, err)
	require.Len(t, got.Products, 2)

	// Curated order is preserved and each row carries the full product
	// record, so the storefront can render without extra lookups.
	assert.Equal(t, rocket.ID, got.Products[0].ProductID)
	assert.Equal(t, "Sky Rocket", got.Products[0].Product.Name)
	assert.Equal(t, "200.00", got.Products[0].Product.Price.StringFixed(2))
	assert.Equal(t, flower.ID, got.Products[1].ProductID)
	assert.Equal(t, "Flower Pots", got.Products[1].Product.Name)
	assert.Equal(t, "/img/fp.png", got.Products[1].Product.ImageURL)

	all, err := sections.GetSections(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	require.Len(t, all[0].Products, 2)
	assert.Equal(t, "Sky Rocket", all[0].Products[0].Product.Name)
}

func TestSectionService_DeleteSection(t *testing.T) {
	r := initTestDB(t)
	sections := &SectionService{Repo: r}
	catalog := &CatalogService{Repo: r}
	ctx := context.Background()

	prod, err := catalog.CreateProduct(ctx, transport.CreateProductRequest{Name: "Chakkar", Price: "30"})
	require.NoError(t, err)

	section, err := sections.CreateSection(ctx, transport.CreateSectionRequest{Title: "Ground"})
	require.NoError(t, err)
	require.NoError(t, sections.SetProducts(ctx, section.ID, transport.SectionProductsRequest{ProductIDs: []uint{prod.ID}}))

	require.NoError(t, sections.DeleteSection(ctx, section.ID))

	all, err := sections.GetSections(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)

	// the catalog row itself survives
	_, err = catalog.GetProduct(ctx, prod.ID)
	require.NoError(t, err)
}
