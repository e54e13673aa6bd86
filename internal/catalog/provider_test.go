package catalog_test

import (
	"context"
	"sync"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"MobileStore/internal/catalog"
)

func TestSeed_UniqueIDsAndRatings(t *testing.T) {
	products := catalog.Seed()
	require.Len(t, products, 6)

	seen := map[int]bool{}
	for _, p := range products {
		assert.False(t, seen[p.ID], "duplicate id %d", p.ID)
		seen[p.ID] = true

		assert.Positive(t, p.ID)
		assert.NotEmpty(t, p.Name)
		assert.NotEmpty(t, p.Category)
		assert.GreaterOrEqual(t, p.Price, int64(0))
		assert.GreaterOrEqual(t, p.Rating, 4.3)
		assert.LessOrEqual(t, p.Rating, 4.7)
	}
}

func TestSeed_ReturnsCopy(t *testing.T) {
	a := catalog.Seed()
	a[0].Name = "changed"

	b := catalog.Seed()
	assert.Equal(t, "Samsung Galaxy S24 Ultra", b[0].Name)
}

func TestProvider_Strict_ListByCategory(t *testing.T) {
	ctx := context.Background()
	p := catalog.NewProvider()

	tests := []struct {
		name     string
		category string
		wantIDs  []int
	}{
		{name: "mobiles", category: "mobiles", wantIDs: []int{1, 2, 3, 4, 5, 6}},
		{name: "unknown category", category: "laptops", wantIDs: []int{}},
		{name: "case sensitive", category: "Mobiles", wantIDs: []int{}},
		{name: "empty", category: "", wantIDs: []int{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := p.ListByCategory(ctx, tt.category)
			require.NoError(t, err)
			require.NotNil(t, got)
			assert.Equal(t, tt.wantIDs, ids(got))
		})
	}
}

func TestProvider_Strict_ListFirstAndLast(t *testing.T) {
	got, err := catalog.NewProvider().ListByCategory(context.Background(), "mobiles")
	require.NoError(t, err)
	require.Len(t, got, 6)

	assert.Equal(t, "Samsung Galaxy S24 Ultra", got[0].Name)
	assert.Equal(t, int64(124999), got[0].Price)
	assert.Equal(t, 6, got[5].ID)
	assert.Equal(t, "Vivo X100 Pro", got[5].Name)
}

func TestProvider_Strict_FiltersMixedCatalog(t *testing.T) {
	p := catalog.NewProvider(catalog.WithProducts([]catalog.Product{
		{ID: 10, Name: "A", Category: "mobiles"},
		{ID: 11, Name: "B", Category: "laptops"},
		{ID: 12, Name: "C", Category: "mobiles"},
	}))

	got, err := p.ListByCategory(context.Background(), "mobiles")
	require.NoError(t, err)
	assert.Equal(t, []int{10, 12}, ids(got))

	cats, err := p.Categories(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"mobiles", "laptops"}, cats)
}

func TestProvider_StableOrder(t *testing.T) {
	ctx := context.Background()
	p := catalog.NewProvider()

	first, err := p.ListByCategory(ctx, "mobiles")
	require.NoError(t, err)

	for i := 0; i < 5; i++ {
		again, err := p.ListByCategory(ctx, "mobiles")
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}
}

func TestProvider_ListDoesNotExposeBackingSet(t *testing.T) {
	ctx := context.Background()
	p := catalog.NewProvider(catalog.WithContract(catalog.ContractLegacy))

	got, err := p.ListByCategory(ctx, "mobiles")
	require.NoError(t, err)
	got[0].Name = "mutated"

	again, err := p.GetByID(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "Samsung Galaxy S24 Ultra", again.Name)
}

func TestProvider_Strict_GetByID(t *testing.T) {
	ctx := context.Background()
	p := catalog.NewProvider()

	for _, want := range catalog.Seed() {
		got, err := p.GetByID(ctx, want.ID)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}

	got, err := p.GetByID(ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, "iPhone 15 Pro Max", got.Name)
	assert.Equal(t, int64(159900), got.Price)

	for _, id := range []int{999, 0, -1} {
		_, err := p.GetByID(ctx, id)
		assert.ErrorIs(t, err, catalog.ErrNotFound, "id %d", id)
	}
}

func TestProvider_Legacy(t *testing.T) {
	ctx := context.Background()
	p := catalog.NewProvider(catalog.WithContract(catalog.ContractLegacy))

	for _, c := range []string{"mobiles", "laptops", ""} {
		got, err := p.ListByCategory(ctx, c)
		require.NoError(t, err)
		assert.Equal(t, catalog.Seed(), got, "category %q", c)
	}

	got, err := p.GetByID(ctx, 999)
	require.NoError(t, err)
	assert.Equal(t, 1, got.ID)

	got, err = p.GetByID(ctx, 4)
	require.NoError(t, err)
	assert.Equal(t, "Google Pixel 8 Pro", got.Name)
}

func TestProvider_LegacyEmptyCatalogStillNotFound(t *testing.T) {
	p := catalog.NewProvider(
		catalog.WithContract(catalog.ContractLegacy),
		catalog.WithProducts([]catalog.Product{}),
	)

	_, err := p.GetByID(context.Background(), 1)
	assert.ErrorIs(t, err, catalog.ErrNotFound)
}

func TestProvider_CountsMisses(t *testing.T) {
	ctx := context.Background()

	for _, c := range []catalog.Contract{catalog.ContractStrict, catalog.ContractLegacy} {
		t.Run(string(c), func(t *testing.T) {
			reg := prometheus.NewRegistry()
			p := catalog.NewProvider(catalog.WithContract(c), catalog.WithMetrics(reg))

			_, _ = p.GetByID(ctx, 1)
			_, _ = p.GetByID(ctx, 42)
			_, _ = p.GetByID(ctx, 43)

			n, err := testutil.GatherAndCount(reg, "catalog_lookup_misses_total")
			require.NoError(t, err)
			assert.Equal(t, 1, n)

			mfs, err := reg.Gather()
			require.NoError(t, err)
			require.Len(t, mfs, 1)
			m := mfs[0].GetMetric()[0]
			assert.Equal(t, 2.0, m.GetCounter().GetValue())
			assert.Equal(t, string(c), m.GetLabel()[0].GetValue())
		})
	}
}

func TestProvider_ConcurrentReads(t *testing.T) {
	ctx := context.Background()
	p := catalog.NewProvider(catalog.WithMetrics(prometheus.NewRegistry()))
	want := catalog.Seed()

	var wg sync.WaitGroup
	for g := 0; g < 16; g++ {
		g := g
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 200; i++ {
				got, err := p.ListByCategory(ctx, "mobiles")
				assert.NoError(t, err)
				assert.Equal(t, want, got)

				id := (g+i)%8 + 1
				pr, err := p.GetByID(ctx, id)
				if id <= len(want) {
					assert.NoError(t, err)
					assert.Equal(t, want[id-1], pr)
				} else {
					assert.ErrorIs(t, err, catalog.ErrNotFound)
				}
			}
		}()
	}
	wg.Wait()
}

func TestProvider_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	p := catalog.NewProvider()

	_, err := p.ListByCategory(ctx, "mobiles")
	assert.ErrorIs(t, err, context.Canceled)
	_, err = p.GetByID(ctx, 1)
	assert.ErrorIs(t, err, context.Canceled)
	assert.ErrorIs(t, p.Ping(ctx), context.Canceled)
}

func TestParseContract(t *testing.T) {
	c, err := catalog.ParseContract("")
	require.NoError(t, err)
	assert.Equal(t, catalog.ContractStrict, c)

	c, err = catalog.ParseContract("legacy")
	require.NoError(t, err)
	assert.Equal(t, catalog.ContractLegacy, c)

	_, err = catalog.ParseContract("LEGACY")
	assert.Error(t, err)
}

func ids(ps []catalog.Product) []int {
	out := make([]int, 0, len(ps))
	for _, p := range ps {
		out = append(out, p.ID)
	}
	return out
}
