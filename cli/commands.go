// Package cli provides the Cobra-based CLI for shopcart.
package cli

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"shopcart/domain"
	"shopcart/session"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	rootCmd = &cobra.Command{
		Use:   "shopcart",
		Short: "A retail cart pricing calculator",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// IMPORTANT: allow tests to inject session
			if sess != nil {
				return nil
			}

			if cfg := viper.GetString("config"); cfg != "" {
				viper.SetConfigFile(cfg)
				if err := viper.ReadInConfig(); err != nil {
					return err
				}
			}

			lvlStr := strings.ToLower(viper.GetString("log-level"))
			lvl := slog.LevelInfo
			switch lvlStr {
			case "debug":
				lvl = slog.LevelDebug
			case "warn", "warning":
				lvl = slog.LevelWarn
			case "error":
				lvl = slog.LevelError
			}
			slog.SetDefault(slog.New(
				slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl}),
			))

			var err error
			sess, err = session.NewSession(viper.GetString("seed-file"))
			return err
		},
	}

	sess domain.Session
)

func printJSON(v interface{}) {
	b, _ := json.MarshalIndent(v, "", "  ")
	fmt.Println(string(b))
}

func init() {
	// shell
	shellCmd := &cobra.Command{
		Use:   "shell",
		Short: "Interactive shell mode",
		RunE: func(cmd *cobra.Command, args []string) error {
			r := bufio.NewReader(os.Stdin)
			for {
				fmt.Print("shopcart> ")
				line, err := r.ReadString('\n')
				if err != nil {
					return nil
				}
				line = strings.TrimSpace(line)
				if line == "" {
					continue
				}
				if line == "exit" || line == "quit" {
					return nil
				}
				rootCmd.SetArgs(strings.Fields(line))
				if err := rootCmd.Execute(); err != nil {
					fmt.Fprintln(os.Stderr, err)
				}
				rootCmd.SetArgs(nil)
			}
		},
	}
	rootCmd.AddCommand(shellCmd)

	rootCmd.PersistentFlags().String("seed-file", "", "JSON seed file (empty for built-in seed)")
	rootCmd.PersistentFlags().String("config", "", "config file")
	rootCmd.PersistentFlags().String("log-level", "info", "log level")

	viper.BindPFlag("seed-file", rootCmd.PersistentFlags().Lookup("seed-file"))
	viper.BindPFlag("config", rootCmd.PersistentFlags().Lookup("config"))
	viper.BindPFlag("log-level", rootCmd.PersistentFlags().Lookup("log-level"))
	viper.SetEnvPrefix("SHOPCART")
	viper.AutomaticEnv()

	rootCmd.AddCommand(newProductCmd())
	rootCmd.AddCommand(newDiscountCmd())
	rootCmd.AddCommand(newCouponCmd())
	rootCmd.AddCommand(newCartCmd())
	rootCmd.AddCommand(newTotalsCmd())
}

func newProductCmd() *cobra.Command {
	productCmd := &cobra.Command{
		Use:   "product",
		Short: "Manage the product catalog",
	}

	// add
	var name string
	var price int64
	var stock int
	addCmd := &cobra.Command{
		Use:   "add",
		Short: "Add a product",
		RunE: func(cmd *cobra.Command, args []string) error {
			draft := domain.ProductDraft{Name: name, Price: price, Stock: stock}
			start := time.Now()
			p, err := sess.AddProduct(context.Background(), draft)
			if err != nil {
				slog.Error("product add failed", "name", name, "error", err)
				return err
			}
			slog.Info("product added", "product_id", p.ID, "duration_ms", time.Since(start).Milliseconds())
			printJSON(p)
			return nil
		},
	}
	addCmd.Flags().StringVar(&name, "name", "", "name")
	addCmd.Flags().Int64Var(&price, "price", 0, "unit price")
	addCmd.Flags().IntVar(&stock, "stock", 0, "stock")
	productCmd.AddCommand(addCmd)

	// get
	getCmd := &cobra.Command{
		Use:   "get <id>",
		Short: "Get product by id",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := sess.Product(context.Background(), args[0])
			if err != nil {
				if domain.IsProductNotFoundError(err) {
					fmt.Fprintln(os.Stderr, err)
					return nil
				}
				return err
			}
			printJSON(p)
			return nil
		},
	}
	productCmd.AddCommand(getCmd)

	// update
	var uName string
	var uPrice int64
	var uStock int
	updateCmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Update a product",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id := args[0]

			p, err := sess.Product(context.Background(), id)
			if err != nil {
				return err
			}

			if cmd.Flags().Changed("name") {
				p.Name = uName
			}
			if cmd.Flags().Changed("price") {
				p.Price = uPrice
			}
			if cmd.Flags().Changed("stock") {
				p.Stock = uStock
			}

			start := time.Now()
			if err := sess.UpdateProduct(context.Background(), p); err != nil {
				slog.Error("product update failed", "product_id", id, "error", err)
				return err
			}

			slog.Info(
				"product updated",
				"product_id", id,
				"duration_ms", time.Since(start).Milliseconds(),
			)

			printJSON(p)
			return nil
		},
	}
	updateCmd.Flags().StringVar(&uName, "name", "", "name")
	updateCmd.Flags().Int64Var(&uPrice, "price", 0, "unit price")
	updateCmd.Flags().IntVar(&uStock, "stock", 0, "stock")
	productCmd.AddCommand(updateCmd)

	// list
	var lOutput string
	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List products",
		RunE: func(cmd *cobra.Command, args []string) error {
			out, err := sess.Products(context.Background())
			if err != nil {
				return err
			}
			if lOutput == "json" {
				printJSON(out)
				return nil
			}
			for _, p := range out {
				fmt.Printf("%s | %s | %d | %d | up to %.0f%% off\n",
					p.ID, p.Name, p.Price, p.Stock, domain.MaxDiscountRate(p.Discounts)*100)
			}
			return nil
		},
	}
	listCmd.Flags().StringVar(&lOutput, "output", "", "output format")
	productCmd.AddCommand(listCmd)

	return productCmd
}

func newDiscountCmd() *cobra.Command {
	discountCmd := &cobra.Command{
		Use:   "discount",
		Short: "Manage a product's discount tiers",
	}

	// add
	var quantity int
	var rate float64
	addCmd := &cobra.Command{
		Use:   "add <product-id>",
		Short: "Add a discount tier to a product",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tier := domain.DiscountTier{Quantity: quantity, Rate: rate}
			p, err := sess.AddTier(context.Background(), args[0], tier)
			if err != nil {
				slog.Error("discount add failed", "product_id", args[0], "error", err)
				return err
			}
			slog.Info("discount tier added", "product_id", p.ID, "quantity", quantity, "rate", rate)
			printJSON(p)
			return nil
		},
	}
	addCmd.Flags().IntVar(&quantity, "quantity", 0, "minimum qualifying quantity")
	addCmd.Flags().Float64Var(&rate, "rate", 0, "discount rate in [0,1]")
	discountCmd.AddCommand(addCmd)

	// remove
	var index int
	removeCmd := &cobra.Command{
		Use:   "remove <product-id>",
		Short: "Remove the discount tier at an index",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := sess.RemoveTierAt(context.Background(), args[0], index)
			if err != nil {
				slog.Error("discount remove failed", "product_id", args[0], "error", err)
				return err
			}
			slog.Info("discount tier removed", "product_id", p.ID, "index", index)
			printJSON(p)
			return nil
		},
	}
	removeCmd.Flags().IntVar(&index, "index", 0, "tier position")
	discountCmd.AddCommand(removeCmd)

	return discountCmd
}

func newCouponCmd() *cobra.Command {
	couponCmd := &cobra.Command{
		Use:   "coupon",
		Short: "Manage and select coupons",
	}

	// add
	var name, code, kind string
	var value float64
	addCmd := &cobra.Command{
		Use:   "add",
		Short: "Add a coupon",
		RunE: func(cmd *cobra.Command, args []string) error {
			c := domain.Coupon{
				Name:          name,
				Code:          code,
				DiscountType:  domain.DiscountType(kind),
				DiscountValue: value,
			}
			if err := sess.AddCoupon(context.Background(), c); err != nil {
				slog.Error("coupon add failed", "code", code, "error", err)
				return err
			}
			slog.Info("coupon added", "code", code)
			printJSON(c)
			return nil
		},
	}
	addCmd.Flags().StringVar(&name, "name", "", "name")
	addCmd.Flags().StringVar(&code, "code", "", "code")
	addCmd.Flags().StringVar(&kind, "type", "percentage", "discount type: amount|percentage")
	addCmd.Flags().Float64Var(&value, "value", 0, "discount value")
	couponCmd.AddCommand(addCmd)

	// list
	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List coupons",
		RunE: func(cmd *cobra.Command, args []string) error {
			out, err := sess.Coupons(context.Background())
			if err != nil {
				return err
			}
			printJSON(out)
			return nil
		},
	}
	couponCmd.AddCommand(listCmd)

	// apply
	applyCmd := &cobra.Command{
		Use:   "apply <code>",
		Short: "Select the coupon for this session",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := sess.SelectCoupon(context.Background(), args[0])
			if err != nil {
				if domain.IsCouponNotFoundError(err) {
					fmt.Fprintln(os.Stderr, err)
					return nil
				}
				return err
			}
			slog.Info("coupon selected", "code", c.Code)
			printJSON(c)
			return nil
		},
	}
	couponCmd.AddCommand(applyCmd)

	// clear
	clearCmd := &cobra.Command{
		Use:   "clear",
		Short: "Clear the selected coupon",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := sess.ClearCoupon(context.Background()); err != nil {
				return err
			}
			fmt.Println("cleared")
			return nil
		},
	}
	couponCmd.AddCommand(clearCmd)

	return couponCmd
}

func newCartCmd() *cobra.Command {
	cartCmd := &cobra.Command{
		Use:   "cart",
		Short: "Manage the session cart",
	}

	// add
	addCmd := &cobra.Command{
		Use:   "add <product-id>",
		Short: "Add one unit of a product to the cart",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			err := sess.AddToCart(context.Background(), args[0])
			if err != nil {
				if domain.IsProductNotFoundError(err) || domain.IsOutOfStockError(err) {
					fmt.Fprintln(os.Stderr, err)
					return nil
				}
				return err
			}
			slog.Info("cart item added", "product_id", args[0])
			fmt.Println("added")
			return nil
		},
	}
	cartCmd.AddCommand(addCmd)

	// remove
	removeCmd := &cobra.Command{
		Use:   "remove <product-id>",
		Short: "Remove a product from the cart",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := sess.RemoveFromCart(context.Background(), args[0]); err != nil {
				return err
			}
			fmt.Println("removed")
			return nil
		},
	}
	cartCmd.AddCommand(removeCmd)

	// set
	var quantity int
	setCmd := &cobra.Command{
		Use:   "set <product-id>",
		Short: "Set the quantity of a cart item",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := sess.SetQuantity(context.Background(), args[0], quantity); err != nil {
				return err
			}
			fmt.Println("ok")
			return nil
		},
	}
	setCmd.Flags().IntVar(&quantity, "quantity", 0, "new quantity (clamped to stock, 0 removes)")
	cartCmd.AddCommand(setCmd)

	// list
	var lOutput string
	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List cart items",
		RunE: func(cmd *cobra.Command, args []string) error {
			items, err := sess.CartItems(context.Background())
			if err != nil {
				return err
			}
			if lOutput == "json" {
				printJSON(items)
				return nil
			}
			for _, item := range items {
				remaining, err := sess.Remaining(context.Background(), item.Product.ID)
				if err != nil {
					return err
				}
				if remaining < 0 {
					remaining = 0
				}
				rate := domain.MaxApplicableRate(item.Product.Discounts, item.Quantity)
				fmt.Printf("%s | %s | qty %d | %d left | %.0f%% off\n",
					item.Product.ID, item.Product.Name, item.Quantity, remaining, rate*100)
			}
			return nil
		},
	}
	listCmd.Flags().StringVar(&lOutput, "output", "", "output format")
	cartCmd.AddCommand(listCmd)

	return cartCmd
}

func newTotalsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "totals",
		Short: "Price the cart with the selected coupon",
		RunE: func(cmd *cobra.Command, args []string) error {
			totals, err := sess.Totals(context.Background())
			if err != nil {
				return err
			}
			printJSON(totals)
			return nil
		},
	}
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
