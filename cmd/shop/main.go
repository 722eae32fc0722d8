// Command shop is a terminal storefront: it renders the catalog and cart to
// stdout and forwards typed intents to the dispatcher, standing in for a
// browser view against the same API.
package main

import (
	"bufio"
	"context"
	"fmt"
	"net/http"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/aashutoshk/shopfront/internal/config"
	"github.com/aashutoshk/shopfront/internal/modules/cart"
	"github.com/aashutoshk/shopfront/internal/modules/catalog"
	"github.com/aashutoshk/shopfront/internal/modules/order"
	"github.com/aashutoshk/shopfront/internal/modules/shopfront"
)

func main() {
	logger, _ := zap.NewDevelopment()
	defer logger.Sync()

	if err := godotenv.Load(); err != nil {
		logger.Debug("no .env file, using environment as-is")
	}
	cfg := config.Load()

	httpClient := &http.Client{Timeout: cfg.HTTPTimeout}
	catalogStore := catalog.NewStore(catalog.NewHTTPFetcher(cfg.APIBaseURL, httpClient, logger))
	cartStore := cart.NewStore()
	submitter := order.NewSubmitter(order.NewHTTPPlacer(cfg.APIBaseURL, httpClient, logger), catalogStore, logger)

	state := shopfront.NewState(catalogStore, cartStore)
	d := shopfront.NewDispatcher(state, submitter, shopfront.ViewFunc(render), logger)

	ctx := context.Background()
	d.Dispatch(ctx, shopfront.Refresh{})

	fmt.Println(`commands: ls | cat <category> | add <id> | rm <id> | buy <customer-id> | quit`)
	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			return
		}
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}
		switch fields[0] {
		case "quit", "q":
			return
		case "ls":
			d.Dispatch(ctx, shopfront.Refresh{})
		case "cat":
			if len(fields) > 1 {
				d.Dispatch(ctx, shopfront.SelectCategory{Category: strings.Join(fields[1:], " ")})
			}
		case "add":
			if id, err := parseID(fields); err == nil {
				d.Dispatch(ctx, shopfront.AddToCart{ProductID: id})
			}
		case "rm":
			if id, err := parseID(fields); err == nil {
				d.Dispatch(ctx, shopfront.RemoveFromCart{ProductID: id})
			}
		case "buy":
			if len(fields) > 1 {
				d.Dispatch(ctx, shopfront.Checkout{CustomerIDText: fields[1]})
			}
		default:
			fmt.Println("unknown command")
		}
	}
}

func parseID(fields []string) (int, error) {
	if len(fields) < 2 {
		return 0, fmt.Errorf("missing id")
	}
	return strconv.Atoi(fields[1])
}

func render(st *shopfront.State) {
	fmt.Printf("\n-- categories: %s (showing %q)\n",
		strings.Join(st.Catalog.AvailableCategories(), " "), st.Catalog.SelectedCategory())
	for _, p := range st.Catalog.FilteredProducts() {
		fmt.Printf("  [%d] %-24s %-12s stock %-4d $%s\n",
			p.ID, p.Name, p.Category, p.StockQty, p.Price.StringFixed(2))
	}

	if st.Cart.IsEmpty() {
		fmt.Println("-- cart is empty")
	} else {
		fmt.Println("-- cart:")
		for _, l := range st.Cart.Lines() {
			fmt.Printf("  %d x %s @ $%s\n", l.Quantity, l.Name, l.UnitPrice.StringFixed(2))
		}
		fmt.Printf("  total: $%s\n", st.Cart.Total().StringFixed(2))
	}

	if st.Message != "" {
		tag := "ok"
		if st.IsError {
			tag = "error"
		}
		fmt.Printf("-- [%s] %s\n", tag, st.Message)
	}
}
