package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/IzGus/wc-product-manager/internal/catalog"
	"github.com/IzGus/wc-product-manager/internal/config"
	"github.com/IzGus/wc-product-manager/internal/logger"
	"github.com/IzGus/wc-product-manager/internal/product"
	"github.com/IzGus/wc-product-manager/internal/profile"
	"github.com/IzGus/wc-product-manager/internal/woocommerce"
)

const usage = `usage: wcpm <command> [flags]

commands:
  convert   -in file.csv -out file.(csv|xlsx) [-format simple|woocommerce|xlsx]
  validate  -in file.csv
  pull      -out file.csv [-format simple|woocommerce] [-profile name]
  push      -in file.csv [-profile name]
  profile   add|list|rm
`

func main() {
	cfg := config.LoadConfig()
	logger.Init(cfg.AppEnv)
	defer logger.Sync()

	if len(os.Args) < 2 {
		fmt.Fprint(os.Stderr, usage)
		os.Exit(1)
	}

	ctx := logger.NewSession(context.Background())

	var err error
	switch os.Args[1] {
	case "convert":
		err = runConvert(ctx, os.Args[2:])
	case "validate":
		err = runValidate(ctx, os.Args[2:])
	case "pull":
		err = runPull(ctx, cfg, os.Args[2:])
	case "push":
		err = runPush(ctx, cfg, os.Args[2:])
	case "profile":
		err = runProfile(ctx, cfg, os.Args[2:])
	default:
		fmt.Fprint(os.Stderr, usage)
		os.Exit(1)
	}

	if err != nil {
		logger.FromCtx(ctx).Error("command failed", zap.String("command", os.Args[1]), zap.Error(err))
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func runConvert(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("convert", flag.ExitOnError)
	in := fs.String("in", "", "input csv file")
	out := fs.String("out", "", "output file")
	format := fs.String("format", "simple", "output format: simple, woocommerce or xlsx")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *in == "" || *out == "" {
		return fmt.Errorf("convert: -in and -out are required")
	}

	result, err := catalog.Import(ctx, *in)
	if err != nil {
		return err
	}
	reportStats(ctx, &result.Stats)

	switch *format {
	case "xlsx":
		err = catalog.ExportXLSX(ctx, result.Products, *out)
	default:
		err = catalog.Export(ctx, result.Products, *out, catalog.Format(*format))
	}
	if err != nil {
		return err
	}

	fmt.Printf("converted %d products (%s -> %s)\n", len(result.Products), result.Format, *format)
	return nil
}

func runValidate(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("validate", flag.ExitOnError)
	in := fs.String("in", "", "input csv file")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *in == "" {
		return fmt.Errorf("validate: -in is required")
	}

	report, err := catalog.Validate(ctx, *in)
	if err != nil {
		return err
	}

	fmt.Printf("rows: %d, columns: %d\n", report.TotalRows, len(report.Columns))
	for _, e := range report.Errors {
		fmt.Println("error:", e)
	}
	for _, w := range report.Warnings {
		fmt.Println("warning:", w)
	}
	if !report.Valid {
		return fmt.Errorf("file is not valid")
	}
	fmt.Println("file is valid")
	return nil
}

func runPull(ctx context.Context, cfg *config.Config, args []string) error {
	fs := flag.NewFlagSet("pull", flag.ExitOnError)
	out := fs.String("out", "", "output csv file")
	format := fs.String("format", "woocommerce", "output format: simple or woocommerce")
	profileName := fs.String("profile", "", "saved connection profile")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *out == "" {
		return fmt.Errorf("pull: -out is required")
	}

	client, err := connect(ctx, cfg, *profileName)
	if err != nil {
		return err
	}

	products, err := client.ListProducts(ctx)
	if err != nil {
		return err
	}
	if err := catalog.Export(ctx, products, *out, catalog.Format(*format)); err != nil {
		return err
	}

	fmt.Printf("pulled %d products into %s\n", len(products), *out)
	return nil
}

func runPush(ctx context.Context, cfg *config.Config, args []string) error {
	fs := flag.NewFlagSet("push", flag.ExitOnError)
	in := fs.String("in", "", "input csv file")
	profileName := fs.String("profile", "", "saved connection profile")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *in == "" {
		return fmt.Errorf("push: -in is required")
	}

	client, err := connect(ctx, cfg, *profileName)
	if err != nil {
		return err
	}

	result, err := catalog.Import(ctx, *in)
	if err != nil {
		return err
	}
	reportStats(ctx, &result.Stats)

	created, failed := 0, 0
	log := logger.FromCtx(ctx)
	for _, p := range result.Products {
		if err := pushProduct(ctx, client, p); err != nil {
			failed++
			log.Warn("push failed", zap.String("sku", p.SKU), zap.String("name", p.Name), zap.Error(err))
			continue
		}
		created++
	}

	fmt.Printf("pushed %d products, %d failed\n", created, failed)
	if failed > 0 {
		return fmt.Errorf("%d of %d products failed", failed, len(result.Products))
	}
	return nil
}

// pushProduct creates the product and, for variable products, registers
// its variations under the server-assigned ID.
func pushProduct(ctx context.Context, client *woocommerce.Client, p *product.Product) error {
	created, err := client.CreateProduct(ctx, p)
	if err != nil {
		return err
	}
	if p.Type != product.TypeVariable || created.ID == nil {
		return nil
	}
	for _, v := range p.Variations {
		if err := client.CreateVariation(ctx, *created.ID, v); err != nil {
			return fmt.Errorf("variation for %q: %w", p.Name, err)
		}
	}
	return nil
}

func runProfile(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("profile: expected add, list or rm")
	}

	repo, err := profile.Open(cfg.ProfileDBPath)
	if err != nil {
		return err
	}

	switch args[0] {
	case "add":
		fs := flag.NewFlagSet("profile add", flag.ExitOnError)
		name := fs.String("name", "", "profile name")
		url := fs.String("url", "", "store url")
		key := fs.String("key", "", "consumer key")
		secret := fs.String("secret", "", "consumer secret")
		if err := fs.Parse(args[1:]); err != nil {
			return err
		}
		if *name == "" || *url == "" || *key == "" || *secret == "" {
			return fmt.Errorf("profile add: -name, -url, -key and -secret are required")
		}
		if _, err := repo.Save(ctx, *name, *url, *key, *secret); err != nil {
			return err
		}
		fmt.Printf("profile %q saved\n", *name)
		return nil

	case "list":
		profiles, err := repo.List(ctx)
		if err != nil {
			return err
		}
		for _, p := range profiles {
			fmt.Printf("%s\t%s\n", p.Name, p.SiteURL)
		}
		return nil

	case "rm":
		fs := flag.NewFlagSet("profile rm", flag.ExitOnError)
		name := fs.String("name", "", "profile name")
		if err := fs.Parse(args[1:]); err != nil {
			return err
		}
		if *name == "" {
			return fmt.Errorf("profile rm: -name is required")
		}
		if err := repo.Delete(ctx, *name); err != nil {
			return err
		}
		fmt.Printf("profile %q removed\n", *name)
		return nil

	default:
		return fmt.Errorf("profile: unknown subcommand %q", args[0])
	}
}

// connect builds a REST client from a saved profile, or from the
// environment config when no profile name is given.
func connect(ctx context.Context, cfg *config.Config, profileName string) (*woocommerce.Client, error) {
	if profileName == "" {
		return woocommerce.NewClient(cfg)
	}

	repo, err := profile.Open(cfg.ProfileDBPath)
	if err != nil {
		return nil, err
	}
	p, err := repo.Get(ctx, profileName)
	if err != nil {
		return nil, err
	}
	secret, err := repo.Secret(p)
	if err != nil {
		return nil, err
	}

	connCfg := *cfg
	connCfg.SiteURL = p.SiteURL
	connCfg.ConsumerKey = p.ConsumerKey
	connCfg.ConsumerSecret = secret
	return woocommerce.NewClient(&connCfg)
}

func reportStats(ctx context.Context, stats *catalog.ImportStats) {
	log := logger.FromCtx(ctx)
	if stats.SkippedRows > 0 {
		log.Warn("rows skipped during import", zap.Int("count", stats.SkippedRows))
	}
	if stats.OrphanVariations > 0 {
		log.Warn("orphan variations dropped", zap.Int("count", stats.OrphanVariations))
	}
	if stats.FieldErrors != nil {
		log.Warn("field-level errors during import", zap.Error(stats.FieldErrors))
	}
}
