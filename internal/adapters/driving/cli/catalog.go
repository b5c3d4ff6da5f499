package cli

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/woodenlobby/storefront/internal/core/domain"
)

var (
	catalogCategory string
	catalogJSON     bool
	featuredLimit   int
)

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Inspect the product catalog",
	Long: `Inspect the active product catalog as the website sees it.

Every command reads the configured source afresh, so the output reflects
the spreadsheet at the time of the call.`,
}

var catalogListCmd = &cobra.Command{
	Use:   "list",
	Short: "List active products",
	Args:  cobra.NoArgs,
	RunE:  runCatalogList,
}

var catalogShowCmd = &cobra.Command{
	Use:   "show [slug]",
	Short: "Show one product",
	Args:  cobra.ExactArgs(1),
	RunE:  runCatalogShow,
}

var catalogCategoriesCmd = &cobra.Command{
	Use:   "categories",
	Short: "List categories in first-seen order",
	Args:  cobra.NoArgs,
	RunE:  runCatalogCategories,
}

var catalogFeaturedCmd = &cobra.Command{
	Use:   "featured",
	Short: "List the home page featured products",
	Args:  cobra.NoArgs,
	RunE:  runCatalogFeatured,
}

func init() {
	catalogListCmd.Flags().StringVar(&catalogCategory, "category", "", "only list products in this category")
	catalogListCmd.Flags().BoolVar(&catalogJSON, "json", false, "output as JSON")
	catalogShowCmd.Flags().BoolVar(&catalogJSON, "json", false, "output as JSON")
	catalogFeaturedCmd.Flags().IntVarP(&featuredLimit, "limit", "n", 8, "maximum number of products")
	catalogFeaturedCmd.Flags().BoolVar(&catalogJSON, "json", false, "output as JSON")

	catalogCmd.AddCommand(catalogListCmd, catalogShowCmd, catalogCategoriesCmd, catalogFeaturedCmd)
	rootCmd.AddCommand(catalogCmd)
}

func runCatalogList(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	if err := requireServices(ctx); err != nil {
		return err
	}

	var (
		products []domain.Product
		err      error
	)
	if catalogCategory != "" {
		products, err = catalogService.ProductsByCategory(ctx, catalogCategory)
	} else {
		products, err = catalogService.Products(ctx)
	}
	if err != nil {
		return fmt.Errorf("failed to load catalog: %w", err)
	}

	if catalogJSON {
		return outputJSON(cmd, products)
	}
	outputProductTable(cmd, products)
	return nil
}

func runCatalogShow(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	if err := requireServices(ctx); err != nil {
		return err
	}

	product, err := catalogService.ProductBySlug(ctx, args[0])
	if errors.Is(err, domain.ErrNotFound) {
		return fmt.Errorf("no active product with slug %q", args[0])
	}
	if err != nil {
		return fmt.Errorf("failed to load catalog: %w", err)
	}

	if catalogJSON {
		return outputJSON(cmd, product)
	}

	cmd.Printf("Name:      %s\n", product.ProductName)
	cmd.Printf("Slug:      %s\n", product.ProductSlug)
	cmd.Printf("Category:  %s\n", product.Category)
	cmd.Printf("Price:     %s\n", formatPrice(*product))
	if product.MRP != "" {
		cmd.Printf("MRP:       %s\n", product.MRP)
	}
	if product.Badge != "" {
		cmd.Printf("Badge:     %s\n", product.Badge)
	}
	if product.ShortDesc != "" {
		cmd.Printf("Summary:   %s\n", product.ShortDesc)
	}
	for i, img := range product.Images {
		cmd.Printf("Image %d:   %s\n", i+1, img)
	}
	if product.OverviewContent != "" {
		cmd.Println()
		cmd.Println("Overview:")
		cmd.Println(product.OverviewContent)
	}
	if product.SpecificationsContent != "" {
		cmd.Println()
		cmd.Println("Specifications:")
		cmd.Println(product.SpecificationsContent)
	}
	return nil
}

func runCatalogCategories(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	if err := requireServices(ctx); err != nil {
		return err
	}

	overview, err := catalogService.Overview(ctx, 0)
	if err != nil {
		return fmt.Errorf("failed to load catalog: %w", err)
	}

	if len(overview.Categories) == 0 {
		cmd.Println("No categories found.")
		return nil
	}
	for _, c := range overview.Categories {
		cmd.Printf("%-24s %d\n", c, len(overview.Index[c]))
	}
	return nil
}

func runCatalogFeatured(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	if err := requireServices(ctx); err != nil {
		return err
	}

	products, err := catalogService.Featured(ctx, featuredLimit)
	if err != nil {
		return fmt.Errorf("failed to load catalog: %w", err)
	}

	if catalogJSON {
		return outputJSON(cmd, products)
	}
	outputProductTable(cmd, products)
	return nil
}

func outputJSON(cmd *cobra.Command, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal output: %w", err)
	}
	cmd.Println(string(data))
	return nil
}

func outputProductTable(cmd *cobra.Command, products []domain.Product) {
	if len(products) == 0 {
		cmd.Println("No products found.")
		return
	}

	for i := range products {
		p := products[i]
		badge := ""
		if p.Badge != "" {
			badge = " [" + p.Badge + "]"
		}
		// Format: slug  name [badge]  price  (category)
		cmd.Printf("%-32s %s%s  %s  (%s)\n", p.ProductSlug, p.ProductName, badge, formatPrice(p), p.Category)
	}
	cmd.Printf("\n%d product(s)\n", len(products))
}

func formatPrice(p domain.Product) string {
	if p.PriceDisplay == "" {
		return "on request"
	}
	return p.PriceDisplay
}
