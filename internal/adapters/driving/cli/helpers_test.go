package cli

import (
	"bytes"
	"context"
	"errors"

	"github.com/woodenlobby/storefront/internal/adapters/driven/storage/memory"
	"github.com/woodenlobby/storefront/internal/core/domain"
	"github.com/woodenlobby/storefront/internal/core/services"
	"github.com/woodenlobby/storefront/internal/normalisers/csvtable"
)

const testCatalogCSV = `category,product_name,price_display,badge,product_slug,status,overview_content
Beds,Teak King Bed,"₹45,000",New,,Active,Hand finished
Beds,Sheesham Bed,,,,Active,
Dining,Oak Table,"₹25,000",Sale,oak-table,Active,
Dining,Hidden Chair,"₹5,000",,,Hidden,
`

const testContentCSV = `care_instructions,faqs
"Wipe with a dry cloth","Q: Delivery? A: Free"
`

// stubSource implements driven.Source for testing.
type stubSource struct {
	data  string
	err   error
	calls int
}

func (s *stubSource) Name() string {
	return "stub"
}

func (s *stubSource) Fetch(_ context.Context) ([]byte, error) {
	s.calls++
	if s.err != nil {
		return nil, s.err
	}
	return []byte(s.data), nil
}

// setupTestServices wires real services over in-memory sources.
// The returned function restores the package state.
func setupTestServices() func() {
	return setupTestServicesWith(&stubSource{data: testCatalogCSV}, &stubSource{data: testContentCSV})
}

func setupTestServicesWith(catalogSrc, contentSrc *stubSource) func() {
	settings := domain.DefaultSiteSettings()
	decoder := csvtable.New()

	configStore = memory.NewConfigStore()
	siteSettings = &settings
	catalogService = services.NewCatalogService(catalogSrc, decoder)
	contentService = services.NewContentService(contentSrc, decoder, memory.NewContentCache())

	return func() {
		configStore = nil
		siteSettings = nil
		catalogService = nil
		contentService = nil
		resetFlags()
	}
}

func resetFlags() {
	catalogCategory = ""
	catalogJSON = false
	featuredLimit = 8
	contentJSON = false
	serveAddr = ""
	serveDev = false
}

// execute runs the root command with args and returns its output.
func execute(args ...string) (string, error) {
	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs(args)
	defer rootCmd.SetArgs(nil)

	err := rootCmd.Execute()
	return buf.String(), err
}

var errBoom = errors.New("boom")
