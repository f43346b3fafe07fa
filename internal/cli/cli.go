// Package cli wires the HomeCraft services into a cobra command tree.
// Commands stay thin: they parse flags, call a service and print.
package cli

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/homecraft/homecraft-cli/internal/api"
	"github.com/homecraft/homecraft-cli/internal/model"
	"github.com/homecraft/homecraft-cli/internal/report"
	"github.com/homecraft/homecraft-cli/internal/service"
)

// App bundles the services the commands operate on.
type App struct {
	Auth *service.Auth
	Cart *service.Cart
	Chat *service.Chat
	API  *api.Client
}

// NewRootCommand builds the homecraft command tree.
func NewRootCommand(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:           "homecraft",
		Short:         "HomeCraft smart-home store client",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// Rehydrate the session before every command, the way the
			// web client does on page load.
			app.Auth.InitializeFromStorage(cmd.Context())
		},
	}

	root.AddCommand(
		newRegisterCommand(app),
		newLoginCommand(app),
		newLogoutCommand(app),
		newWhoamiCommand(app),
		newCartCommand(app),
		newCatalogCommand(app),
		newReportCommand(app),
		newChatCommand(app),
	)

	return root
}

func newRegisterCommand(app *App) *cobra.Command {
	reg := model.Registration{}

	cmd := &cobra.Command{
		Use:   "register",
		Short: "Create a new account",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Auth.Register(cmd.Context(), reg); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Account created. Check your inbox to confirm your email, then log in.")
			return nil
		},
	}

	cmd.Flags().StringVar(&reg.FirstName, "first-name", "", "first name")
	cmd.Flags().StringVar(&reg.LastName, "last-name", "", "last name")
	cmd.Flags().StringVar(&reg.Email, "email", "", "email address")
	cmd.Flags().StringVar(&reg.Password, "password", "", "password")
	cmd.MarkFlagRequired("email")
	cmd.MarkFlagRequired("password")

	return cmd
}

func newLoginCommand(app *App) *cobra.Command {
	creds := model.Credentials{}

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Sign in and store the session",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Auth.Login(cmd.Context(), creds); err != nil {
				return fmt.Errorf("%s", app.Auth.Session().LastError)
			}
			user := app.Auth.Session().User
			fmt.Fprintf(cmd.OutOrStdout(), "Welcome back, %s!\n", user.Name)
			return nil
		},
	}

	cmd.Flags().StringVar(&creds.Email, "email", "", "email address")
	cmd.Flags().StringVar(&creds.Password, "password", "", "password")
	cmd.MarkFlagRequired("email")
	cmd.MarkFlagRequired("password")

	return cmd
}

func newLogoutCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Sign out and clear stored credentials",
		Run: func(cmd *cobra.Command, args []string) {
			app.Auth.Logout(cmd.Context())
			fmt.Fprintln(cmd.OutOrStdout(), "Signed out.")
		},
	}
}

func newWhoamiCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the current session",
		RunE: func(cmd *cobra.Command, args []string) error {
			session := app.Auth.Session()
			if !session.IsAuthenticated {
				fmt.Fprintln(cmd.OutOrStdout(), "Not signed in.")
				return nil
			}
			user := session.User
			fmt.Fprintf(cmd.OutOrStdout(), "%s <%s>\n", user.Name, user.Email)
			if user.IsAdmin {
				fmt.Fprintln(cmd.OutOrStdout(), "role: admin")
			}
			if user.IsTechnician {
				fmt.Fprintln(cmd.OutOrStdout(), "role: technician")
			}
			fmt.Fprintf(cmd.OutOrStdout(), "token expires: %s\n",
				time.UnixMilli(session.TokenExpiresAt).Format(time.RFC1123))
			return nil
		},
	}
}

func newCartCommand(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cart",
		Short: "Inspect and modify the shopping cart",
	}

	list := &cobra.Command{
		Use:   "list",
		Short: "Show the server-side cart",
		Run: func(cmd *cobra.Command, args []string) {
			items := app.Cart.Fetch(cmd.Context())
			if len(items) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "Cart is empty.")
				return
			}
			for _, item := range items {
				fmt.Fprintf(cmd.OutOrStdout(), "product %d x%d\n", item.ProductID, item.Quantity)
			}
		},
	}

	var quantity int
	add := &cobra.Command{
		Use:   "add <product-id>",
		Short: "Add a product to the cart",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			productID, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid product id %q", args[0])
			}
			performed, err := app.Cart.Add(cmd.Context(), productID, quantity)
			if err != nil {
				return err
			}
			if !performed {
				fmt.Fprintln(cmd.OutOrStdout(), "Sign in to modify your cart.")
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Added.")
			return nil
		},
	}
	add.Flags().IntVar(&quantity, "quantity", 1, "units to add")

	remove := &cobra.Command{
		Use:   "remove <product-id>",
		Short: "Remove one unit of a product from the cart",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			productID, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid product id %q", args[0])
			}
			performed, err := app.Cart.Remove(cmd.Context(), productID)
			if err != nil {
				return err
			}
			if !performed {
				fmt.Fprintln(cmd.OutOrStdout(), "Sign in to modify your cart.")
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Removed.")
			return nil
		},
	}

	var newQuantity int
	update := &cobra.Command{
		Use:   "update <product-id>",
		Short: "Set a product's quantity in the cart",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			productID, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid product id %q", args[0])
			}
			performed, err := app.Cart.Update(cmd.Context(), productID, newQuantity)
			if err != nil {
				return err
			}
			if !performed {
				fmt.Fprintln(cmd.OutOrStdout(), "Sign in to modify your cart.")
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Updated.")
			return nil
		},
	}
	update.Flags().IntVar(&newQuantity, "quantity", 1, "new quantity")
	update.MarkFlagRequired("quantity")

	cmd.AddCommand(list, add, remove, update)
	return cmd
}

func newCatalogCommand(app *App) *cobra.Command {
	var latest bool

	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "Browse the product catalog",
		RunE: func(cmd *cobra.Command, args []string) error {
			var (
				products []model.Product
				err      error
			)
			if latest {
				products, err = app.API.GetLatestThreeProducts(cmd.Context())
			} else {
				products, err = app.API.GetProducts(cmd.Context())
			}
			if err != nil {
				return err
			}
			for _, product := range products {
				fmt.Fprintf(cmd.OutOrStdout(), "%4d  %-40s %10s\n", product.ID, product.Name, formatPrice(product.Price))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&latest, "latest", false, "show only the three newest products")
	return cmd
}

func newReportCommand(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "report",
		Short: "Generate PDF reports",
	}

	var ordersOut string
	orders := &cobra.Command{
		Use:   "orders",
		Short: "Generate the orders report from your order history",
		RunE: func(cmd *cobra.Command, args []string) error {
			profile, err := app.API.GetProfile(cmd.Context())
			if err != nil {
				return err
			}
			out := ordersOut
			if out == "" {
				out = "orders_report_" + time.Now().Format("2006-01-02") + ".pdf"
			}
			f, err := os.Create(out)
			if err != nil {
				return err
			}
			defer f.Close()
			if err := report.Orders(f, profile.Orders, app.Auth.Session().User); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", out)
			return nil
		},
	}
	orders.Flags().StringVar(&ordersOut, "out", "", "output file (default orders_report_<date>.pdf)")

	var dashboardOut string
	dashboard := &cobra.Command{
		Use:   "dashboard",
		Short: "Generate the admin dashboard report",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			data, err := app.API.GetDashboardData(ctx)
			if err != nil {
				return err
			}
			activities, err := app.API.GetRecentActivities(ctx)
			if err != nil {
				return err
			}
			topProducts, err := app.API.GetTopProducts(ctx)
			if err != nil {
				return err
			}
			rating, err := app.API.GetOverallRating(ctx)
			if err != nil {
				return err
			}
			inventory, err := app.API.GetInventoryStatus(ctx)
			if err != nil {
				return err
			}

			f, err := os.Create(dashboardOut)
			if err != nil {
				return err
			}
			defer f.Close()
			if err := report.Dashboard(f, data, activities, topProducts, rating, inventory); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", dashboardOut)
			return nil
		},
	}
	dashboard.Flags().StringVar(&dashboardOut, "out", "admin-dashboard-report.pdf", "output file")

	cmd.AddCommand(orders, dashboard)
	return cmd
}

func newChatCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "chat <prompt>",
		Short: "Ask the smart-home assistant",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			prompt := args[0]
			for _, arg := range args[1:] {
				prompt += " " + arg
			}
			reply, err := app.Chat.Send(cmd.Context(), prompt)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), reply)
			return nil
		},
	}
}

func formatPrice(price float64) string {
	return fmt.Sprintf("$%.2f", price)
}
