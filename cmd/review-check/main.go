// review-check is a headless dry run: it loads a site's clients, marks the
// ids given on the command line as OK and prints the resulting review report
// without submitting anything.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"

	"monreview/internal/config"
	"monreview/internal/monitor"
	"monreview/internal/output"
	"monreview/internal/review"
	"monreview/ui/console"
)

func main() {
	siteFlag := flag.String("site", "", "site to check (veeam, site24, sophos)")
	flag.Parse()

	cfg := config.Load()

	siteName := *siteFlag
	if siteName == "" {
		siteName = cfg.DefaultSite
	}
	site := monitor.Site(siteName)
	if !site.Valid() {
		log.Fatalf("unknown site %q, use --site veeam|site24|sophos", siteName)
	}

	provider := monitor.NewHTTPProvider(cfg.APIBaseURL, cfg.APITimeout())
	items, err := provider.LoadItems(context.Background(), site)
	if err != nil {
		log.Fatalf("load clients: %v", err)
	}

	sel := review.NewSelectionSet()
	for _, arg := range flag.Args() {
		id, err := strconv.ParseInt(arg, 10, 64)
		if err != nil {
			log.Fatalf("invalid client id %q", arg)
		}
		sel.Toggle(id)
	}

	forms := review.NewFormStore()
	report := output.BuildReport(site, items, sel, forms)
	console.Print(os.Stdout, report)

	c := review.Classify(items, sel)
	if msg := review.Validate(c.ProblemItems, forms); msg != "" {
		fmt.Println(msg)
	}
}
