package services

import (
	"bytes"
	"context"
	"errors"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/woodenlobby/storefront/internal/core/domain"
	"github.com/woodenlobby/storefront/internal/logger"
)

// --- Mock implementations ---

// mockSource implements driven.Source for testing.
type mockSource struct {
	data  []byte
	err   error
	calls int
}

func (m *mockSource) Name() string {
	return "mock"
}

func (m *mockSource) Fetch(_ context.Context) ([]byte, error) {
	m.calls++
	if m.err != nil {
		return nil, m.err
	}
	return m.data, nil
}

// mockCatalogDecoder implements driven.CatalogDecoder for testing.
type mockCatalogDecoder struct {
	rows []domain.RawProductRow
	err  error
}

func (m *mockCatalogDecoder) DecodeCatalog(_ []byte) ([]domain.RawProductRow, error) {
	return m.rows, m.err
}

func row(name, category, badge, price, status string) domain.RawProductRow {
	return domain.RawProductRow{
		ProductName:  name,
		Category:     category,
		Badge:        badge,
		PriceDisplay: price,
		Status:       status,
	}
}

func newCatalog(rows ...domain.RawProductRow) (*CatalogService, *mockSource) {
	source := &mockSource{data: []byte("csv")}
	return NewCatalogService(source, &mockCatalogDecoder{rows: rows}), source
}

func names(products []domain.Product) []string {
	out := make([]string, 0, len(products))
	for _, p := range products {
		out = append(out, p.ProductName)
	}
	return out
}

func TestCatalogService_Products(t *testing.T) {
	svc, source := newCatalog(
		row("Bed", "Beds", "", "₹10", "Active"),
		row("Old Bed", "Beds", "", "₹5", "Hidden"),
		row("Sofa", "Sofas", "", "₹20", "Active"),
	)
	ctx := context.Background()

	products, err := svc.Products(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"Bed", "Sofa"}, names(products))

	_, err = svc.Products(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, source.calls, "every query re-acquires the source")
}

func TestCatalogService_SourceUnavailable(t *testing.T) {
	tests := []struct {
		name string
		err  error
	}{
		{"plain error", errors.New("dial tcp: refused")},
		{"already classified", domain.ErrSourceUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewCatalogService(&mockSource{err: tt.err}, &mockCatalogDecoder{})
			ctx := context.Background()

			_, err := svc.Products(ctx)
			assert.ErrorIs(t, err, domain.ErrSourceUnavailable)

			_, err = svc.ProductBySlug(ctx, "x")
			assert.ErrorIs(t, err, domain.ErrSourceUnavailable)

			_, err = svc.Featured(ctx, 8)
			assert.ErrorIs(t, err, domain.ErrSourceUnavailable)
		})
	}
}

func TestCatalogService_DecodeError(t *testing.T) {
	svc := NewCatalogService(&mockSource{data: []byte("")}, &mockCatalogDecoder{err: domain.ErrInvalidInput})

	_, err := svc.Products(context.Background())

	assert.ErrorIs(t, err, domain.ErrSourceUnavailable)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestCatalogService_ProductBySlug(t *testing.T) {
	first := row("Teak Bed", "Beds", "", "", "Active")
	first.ShortDesc = "first"
	second := row("Teak Bed", "Beds", "", "", "Active")
	second.ShortDesc = "second"
	hidden := row("Hidden Bed", "Beds", "", "", "Hidden")

	svc, _ := newCatalog(hidden, first, second)
	ctx := context.Background()

	p, err := svc.ProductBySlug(ctx, "teak-bed")
	require.NoError(t, err)
	assert.Equal(t, "first", p.ShortDesc, "first match wins")

	_, err = svc.ProductBySlug(ctx, "hidden-bed")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = svc.ProductBySlug(ctx, "nope")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCatalogService_ProductsByCategory(t *testing.T) {
	svc, _ := newCatalog(
		row("A", "Beds", "", "", "Active"),
		row("B", "Sofas", "", "", "Active"),
		row("C", "Beds", "", "", "Active"),
		row("D", "beds", "", "", "Active"),
	)
	ctx := context.Background()

	beds, err := svc.ProductsByCategory(ctx, "Beds")
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "C"}, names(beds))

	none, err := svc.ProductsByCategory(ctx, "Tables")
	require.NoError(t, err)
	assert.NotNil(t, none)
	assert.Empty(t, none)
}

func TestCatalogService_Categories(t *testing.T) {
	svc, _ := newCatalog(
		row("A", "Sofas", "", "", "Active"),
		row("B", "Beds", "", "", "Active"),
		row("C", "Sofas", "", "", "Active"),
		row("D", "", "", "", "Active"),
		row("E", "Tables", "", "", "Hidden"),
	)

	categories, err := svc.Categories(context.Background())

	require.NoError(t, err)
	assert.Equal(t, []string{"Sofas", "Beds"}, categories)
}

func TestCatalogService_CategoryIndex(t *testing.T) {
	svc, _ := newCatalog(
		row("A", "Sofas", "", "", "Active"),
		row("B", "Beds", "", "", "Active"),
		row("C", "Sofas", "", "", "Active"),
		row("D", "Beds", "", "", "Hidden"),
		row("E", "", "", "", "Active"),
	)

	index, err := svc.CategoryIndex(context.Background())

	require.NoError(t, err)
	require.Len(t, index, 2)
	assert.NotContains(t, index, "")
	assert.Equal(t, []string{"A", "C"}, names(index["Sofas"]))
	assert.Equal(t, []string{"B"}, names(index["Beds"]))
}

func TestCatalogService_Overview(t *testing.T) {
	svc, source := newCatalog(
		row("A", "Sofas", "", "", "Active"),
		row("B", "Beds", "Sale", "", "Active"),
		row("C", "Sofas", "", "", "Active"),
		row("D", "", "", "", "Active"),
		row("E", "Beds", "New", "", "Hidden"),
	)

	overview, err := svc.Overview(context.Background(), 2)

	require.NoError(t, err)
	assert.Equal(t, 1, source.calls)
	assert.Equal(t, []string{"A", "B", "C", "D"}, names(overview.Products))
	assert.Equal(t, []string{"Sofas", "Beds"}, overview.Categories)
	require.Len(t, overview.Index, 2)
	assert.Equal(t, []string{"A", "C"}, names(overview.Index["Sofas"]))
	assert.Equal(t, []string{"B"}, names(overview.Index["Beds"]))
	assert.Equal(t, []string{"B", "A"}, names(overview.Featured))
}

func TestCatalogService_Overview_SourceError(t *testing.T) {
	source := &mockSource{err: errors.New("offline")}
	svc := NewCatalogService(source, &mockCatalogDecoder{})

	overview, err := svc.Overview(context.Background(), 4)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrSourceUnavailable)
	assert.Nil(t, overview)
}

func TestCatalogService_Featured(t *testing.T) {
	ctx := context.Background()

	t.Run("badge matches fill the limit in order", func(t *testing.T) {
		svc, _ := newCatalog(
			row("P1", "c", "New", "", "Active"),
			row("P2", "c", "", "", "Active"),
			row("P3", "c", "Sale", "", "Active"),
			row("P4", "c", "Bestseller", "", "Active"),
			row("P5", "c", "", "", "Active"),
		)

		featured, err := svc.Featured(ctx, 3)
		require.NoError(t, err)
		assert.Equal(t, []string{"P1", "P3", "P4"}, names(featured))
	})

	t.Run("one badge match padded from the rest", func(t *testing.T) {
		svc, _ := newCatalog(
			row("P1", "c", "", "", "Active"),
			row("P2", "c", "Sale", "", "Active"),
			row("P3", "c", "", "", "Active"),
			row("P4", "c", "", "", "Active"),
		)

		featured, err := svc.Featured(ctx, 3)
		require.NoError(t, err)
		assert.Equal(t, []string{"P2", "P1", "P3"}, names(featured))
	})

	t.Run("truncates badge matches", func(t *testing.T) {
		svc, _ := newCatalog(
			row("P1", "c", "New", "", "Active"),
			row("P2", "c", "New", "", "Active"),
			row("P3", "c", "New", "", "Active"),
		)

		featured, err := svc.Featured(ctx, 2)
		require.NoError(t, err)
		assert.Equal(t, []string{"P1", "P2"}, names(featured))
	})

	t.Run("other badges do not qualify", func(t *testing.T) {
		svc, _ := newCatalog(
			row("P1", "c", "Limited", "", "Active"),
			row("P2", "c", "new", "", "Active"),
			row("P3", "c", "Sale", "", "Active"),
		)

		featured, err := svc.Featured(ctx, 1)
		require.NoError(t, err)
		assert.Equal(t, []string{"P3"}, names(featured))
	})

	t.Run("catalog smaller than limit", func(t *testing.T) {
		svc, _ := newCatalog(
			row("P1", "c", "", "", "Active"),
			row("P2", "c", "", "", "Hidden"),
		)

		featured, err := svc.Featured(ctx, 8)
		require.NoError(t, err)
		assert.Equal(t, []string{"P1"}, names(featured))
	})

	t.Run("unique by slug", func(t *testing.T) {
		dup := row("Twin", "c", "New", "", "Active")
		svc, _ := newCatalog(dup, dup, row("Other", "c", "", "", "Active"))

		featured, err := svc.Featured(ctx, 3)
		require.NoError(t, err)
		assert.Equal(t, []string{"Twin", "Other"}, names(featured))
	})

	t.Run("non-positive limit", func(t *testing.T) {
		svc, _ := newCatalog(row("P1", "c", "New", "", "Active"))

		featured, err := svc.Featured(ctx, 0)
		require.NoError(t, err)
		assert.Empty(t, featured)
	})
}

func TestCatalogService_Search(t *testing.T) {
	svc, _ := newCatalog(
		row("Teak Bed", "Beds", "", "₹30,000", "Active"),
		row("Oak Bed", "Beds", "", "Contact for price", "Active"),
		row("Bunk Bed", "Beds", "", "₹12,000", "Active"),
		row("Teak Sofa", "Sofas", "", "₹45,000", "Active"),
	)
	ctx := context.Background()

	tests := []struct {
		name  string
		query domain.SearchQuery
		want  []string
	}{
		{"all", domain.SearchQuery{}, []string{"Teak Bed", "Oak Bed", "Bunk Bed", "Teak Sofa"}},
		{"text case-insensitive", domain.SearchQuery{Text: "TEAK"}, []string{"Teak Bed", "Teak Sofa"}},
		{"category", domain.SearchQuery{Category: "Beds"}, []string{"Teak Bed", "Oak Bed", "Bunk Bed"}},
		{"category and text", domain.SearchQuery{Category: "Beds", Text: "teak"}, []string{"Teak Bed"}},
		{
			"price ascending, no price last",
			domain.SearchQuery{Category: "Beds", Sort: domain.SortPriceAsc},
			[]string{"Bunk Bed", "Teak Bed", "Oak Bed"},
		},
		{
			"price descending, no price last",
			domain.SearchQuery{Sort: domain.SortPriceDesc},
			[]string{"Teak Sofa", "Teak Bed", "Bunk Bed", "Oak Bed"},
		},
		{"no match", domain.SearchQuery{Text: "marble"}, []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := svc.Search(ctx, tt.query)
			require.NoError(t, err)
			assert.Equal(t, tt.want, names(got))
		})
	}
}

func TestCatalogService_WarnsOnSlugCollision(t *testing.T) {
	var buf bytes.Buffer
	logger.SetOutput(&buf)
	defer logger.SetOutput(os.Stderr)

	svc, _ := newCatalog(
		row("Teak Bed", "Beds", "", "", "Active"),
		row("Teak  Bed!", "Beds", "", "", "Active"),
	)

	products, err := svc.Products(context.Background())

	require.NoError(t, err)
	assert.Len(t, products, 2)
	assert.Contains(t, buf.String(), `Slug "teak-bed" is shared by 2 active products`)
}

func TestCatalogService_WarnsOnEmptySlug(t *testing.T) {
	var buf bytes.Buffer
	logger.SetOutput(&buf)
	defer logger.SetOutput(os.Stderr)

	svc, _ := newCatalog(
		row("!!!", "Beds", "", "", "Active"),
		row("???", "Beds", "", "", "Active"),
		row("Teak Bed", "Beds", "", "", "Active"),
	)

	products, err := svc.Products(context.Background())

	require.NoError(t, err)
	assert.Len(t, products, 3)
	assert.Contains(t, buf.String(), `Product "!!!" has an empty slug`)
	assert.Contains(t, buf.String(), `Product "???" has an empty slug`)
	assert.NotContains(t, buf.String(), `Slug "" is shared`)
}
