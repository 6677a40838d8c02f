package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/fatih/color"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/commodities-api/internal/application/dto"
	"github.com/jhoicas/commodities-api/internal/client"
	"github.com/jhoicas/commodities-api/internal/domain"
	"github.com/jhoicas/commodities-api/internal/domain/access"
	"github.com/jhoicas/commodities-api/internal/domain/entity"
)

// ── Sesión ────────────────────────────────────────────────────────────────────

func (a *app) cmdLogin(ctx context.Context, args []string) error {
	if len(args) < 2 {
		return fmt.Errorf("usage: commodities login <email> <password>")
	}
	out, err := a.api.Login(ctx, args[0], args[1])
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			return fmt.Errorf("invalid email or password")
		}
		return err
	}

	role, _ := entity.ParseRole(out.User.Role)
	user := entity.User{ID: out.User.ID, Email: out.User.Email, Role: role, Name: out.User.Name}
	if err := a.store.Save(ctx, out.Token, user); err != nil {
		return fmt.Errorf("saving session: %w", err)
	}

	green := color.New(color.FgGreen)
	green.Printf("Logged in as %s ", user.Name)
	fmt.Printf("(%s)\n", user.Role)
	return nil
}

func (a *app) cmdLogout(ctx context.Context) error {
	if s, ok := a.store.Load(ctx); ok {
		// Una sesión ya expirada en el servidor no impide limpiar la local.
		if err := a.api.Logout(ctx, s.Token); err != nil && !client.IsAuthError(err) {
			color.Yellow("Warning: server logout failed: %v\n", err)
		}
	}
	if err := a.store.Clear(ctx); err != nil {
		return err
	}
	fmt.Println("Logged out")
	return nil
}

func (a *app) cmdWhoAmI(ctx context.Context) error {
	token, _, err := a.currentSession(ctx)
	if err != nil {
		return err
	}
	me, err := a.api.Me(ctx, token)
	if err != nil {
		return a.authFailure(ctx, err)
	}

	cyan := color.New(color.FgCyan)
	green := color.New(color.FgGreen)

	fmt.Println()
	cyan.Println("  Identity")
	cyan.Println("  --------")
	fmt.Printf("  ID:           %s\n", me.User.ID)
	fmt.Printf("  Name:         %s\n", me.User.Name)
	fmt.Printf("  Email:        %s\n", me.User.Email)
	green.Printf("  Role:         %s\n", me.User.Role)
	if len(me.Permissions) > 0 {
		fmt.Printf("  Permissions:  %s\n", strings.Join(me.Permissions, ", "))
	} else {
		fmt.Printf("  Permissions:  (none)\n")
	}
	fmt.Println()
	return nil
}

// authFailure limpia la sesión local si el servidor ya no la reconoce.
func (a *app) authFailure(ctx context.Context, err error) error {
	if client.IsAuthError(err) && a.envTok == "" {
		_ = a.store.Clear(ctx)
		return fmt.Errorf("session expired, please log in again")
	}
	return err
}

// requireAction aplica la política de acceso antes de llamar a la API.
func requireAction(user *entity.User, action access.Action) error {
	if !access.Can(user.Role, action) {
		return fmt.Errorf("access denied: role %q cannot %s", user.Role, strings.ReplaceAll(string(action), "_", " "))
	}
	return nil
}

// ── Products ──────────────────────────────────────────────────────────────────

func (a *app) cmdProducts(ctx context.Context, args []string) error {
	subcmd := "list"
	if len(args) > 0 {
		subcmd = args[0]
		args = args[1:]
	}

	token, user, err := a.currentSession(ctx)
	if err != nil {
		return err
	}

	switch subcmd {
	case "list", "ls":
		if err := requireAction(user, access.ViewProducts); err != nil {
			return err
		}
		return a.listProducts(ctx, token)
	case "add", "create":
		if err := requireAction(user, access.AddOrEditProducts); err != nil {
			return err
		}
		return a.addProduct(ctx, token, args)
	case "update", "edit":
		if err := requireAction(user, access.AddOrEditProducts); err != nil {
			return err
		}
		if len(args) < 1 {
			return fmt.Errorf("usage: commodities products update <id> [flags]")
		}
		return a.updateProduct(ctx, token, args[0], args[1:])
	case "delete", "rm":
		if err := requireAction(user, access.AddOrEditProducts); err != nil {
			return err
		}
		if len(args) < 1 {
			return fmt.Errorf("usage: commodities products delete <id>")
		}
		if err := a.api.DeleteProduct(ctx, token, args[0]); err != nil {
			return a.authFailure(ctx, err)
		}
		color.Green("Deleted product %s\n", args[0])
		return nil
	case "export":
		if err := requireAction(user, access.ViewProducts); err != nil {
			return err
		}
		return a.download(ctx, token, "/api/products/export", outFlag(args, "products.xlsx"))
	default:
		return fmt.Errorf("unknown products subcommand: %s", subcmd)
	}
}

func (a *app) listProducts(ctx context.Context, token string) error {
	products, err := a.api.ListProducts(ctx, token)
	if err != nil {
		return a.authFailure(ctx, err)
	}
	if len(products) == 0 {
		fmt.Println("No products")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "  ID\tNAME\tCATEGORY\tQUANTITY\tPRICE\tVALUE")
	fmt.Fprintln(w, "  --\t----\t--------\t--------\t-----\t-----")
	for _, p := range products {
		fmt.Fprintf(w, "  %s\t%s\t%s\t%s %s\t%s\t%s\n",
			truncate(p.ID, 12),
			truncate(p.Name, 24),
			truncate(p.Category, 16),
			a.fmt.Quantity(p.Quantity), p.Unit,
			a.fmt.Money(p.Price),
			a.fmt.Money(p.Price.Mul(p.Quantity)),
		)
	}
	w.Flush()
	fmt.Printf("\n  %s products\n", a.fmt.Count(len(products)))
	return nil
}

func (a *app) addProduct(ctx context.Context, token string, args []string) error {
	f, err := parseProductFlags(args)
	if err != nil {
		return err
	}
	in := dto.CreateProductRequest{Unit: string(entity.DefaultUnit)}
	if f.name != nil {
		in.Name = *f.name
	}
	if f.category != nil {
		in.Category = *f.category
	}
	if f.description != nil {
		in.Description = *f.description
	}
	if f.unit != nil {
		in.Unit = *f.unit
	}
	if f.quantity != nil {
		in.Quantity = *f.quantity
	}
	if f.price != nil {
		in.Price = *f.price
	}

	out, err := a.api.CreateProduct(ctx, token, in)
	if err != nil {
		return a.authFailure(ctx, err)
	}
	color.Green("Created product %s (%s)\n", out.ID, out.Name)
	return nil
}

func (a *app) updateProduct(ctx context.Context, token, id string, args []string) error {
	f, err := parseProductFlags(args)
	if err != nil {
		return err
	}
	in := dto.UpdateProductRequest{
		Name:        f.name,
		Quantity:    f.quantity,
		Unit:        f.unit,
		Price:       f.price,
		Description: f.description,
		Category:    f.category,
	}
	out, err := a.api.UpdateProduct(ctx, token, id, in)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return fmt.Errorf("product %s not found", id)
		}
		return a.authFailure(ctx, err)
	}
	color.Green("Updated product %s (%s)\n", out.ID, out.Name)
	return nil
}

// productFlags campos presentes en la línea de comandos (nil = no indicado).
type productFlags struct {
	name, unit, category, description *string
	quantity, price                   *decimal.Decimal
}

func parseProductFlags(args []string) (productFlags, error) {
	var f productFlags
	for i := 0; i < len(args); i++ {
		flag := args[i]
		if i+1 >= len(args) {
			return f, fmt.Errorf("flag %s requires a value", flag)
		}
		value := args[i+1]
		i++
		switch flag {
		case "--name", "-n":
			f.name = &value
		case "--unit", "-u":
			f.unit = &value
		case "--category", "-c":
			f.category = &value
		case "--description", "-d":
			f.description = &value
		case "--quantity", "-q":
			d, err := decimal.NewFromString(value)
			if err != nil {
				return f, fmt.Errorf("invalid quantity %q", value)
			}
			f.quantity = &d
		case "--price", "-p":
			d, err := decimal.NewFromString(value)
			if err != nil {
				return f, fmt.Errorf("invalid price %q", value)
			}
			f.price = &d
		default:
			return f, fmt.Errorf("unknown flag: %s", flag)
		}
	}
	return f, nil
}

// ── Dashboard ─────────────────────────────────────────────────────────────────

func (a *app) cmdDashboard(ctx context.Context, args []string) error {
	token, user, err := a.currentSession(ctx)
	if err != nil {
		return err
	}
	if err := requireAction(user, access.ViewDashboard); err != nil {
		return err
	}
	if len(args) > 0 && args[0] == "report" {
		return a.download(ctx, token, "/api/dashboard/report", outFlag(args[1:], "inventory-report.pdf"))
	}

	s, err := a.api.DashboardSummary(ctx, token)
	if err != nil {
		return a.authFailure(ctx, err)
	}

	cyan := color.New(color.FgCyan)
	yellow := color.New(color.FgYellow)

	fmt.Println()
	cyan.Println("  Inventory Summary")
	cyan.Println("  -----------------")
	fmt.Printf("  Total products:    %s\n", a.fmt.Count(s.TotalProducts))
	fmt.Printf("  Total value:       $%s\n", a.fmt.Money(s.TotalValue))
	if s.LowStockItems > 0 {
		yellow.Printf("  Low stock (< %s):  %s\n", a.fmt.Quantity(s.LowStockThreshold), a.fmt.Count(s.LowStockItems))
	} else {
		fmt.Printf("  Low stock (< %s):  0\n", a.fmt.Quantity(s.LowStockThreshold))
	}
	fmt.Printf("  Categories:        %s\n", a.fmt.Count(s.TotalCategories))
	fmt.Println()

	if len(s.TopProducts) == 0 {
		return nil
	}
	cyan.Println("  Top Products by Value")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "  #\tNAME\tCATEGORY\tQUANTITY\tPRICE\tTOTAL VALUE")
	for i, p := range s.TopProducts {
		fmt.Fprintf(w, "  %d\t%s\t%s\t%s %s\t%s\t%s\n",
			i+1, truncate(p.Name, 24), truncate(p.Category, 16),
			a.fmt.Quantity(p.Quantity), p.Unit, a.fmt.Money(p.Price), a.fmt.Money(p.TotalValue))
	}
	w.Flush()
	fmt.Println()
	return nil
}

func (a *app) download(ctx context.Context, token, path, out string) error {
	data, err := a.api.Download(ctx, token, path)
	if err != nil {
		return a.authFailure(ctx, err)
	}
	if err := os.WriteFile(out, data, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", out, err)
	}
	color.Green("Saved %s (%d bytes)\n", out, len(data))
	return nil
}

// outFlag devuelve el valor de --out/-o o def.
func outFlag(args []string, def string) string {
	for i := 0; i+1 < len(args); i++ {
		if args[i] == "--out" || args[i] == "-o" {
			return args[i+1]
		}
	}
	return def
}

func truncate(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max-3]) + "..."
}
