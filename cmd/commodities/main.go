// Command commodities es el cliente de línea de comandos de la API de commodities.
// Mantiene la sesión (token + usuario) en un archivo SQLite local.
package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"

	"github.com/jhoicas/commodities-api/internal/application/session"
	"github.com/jhoicas/commodities-api/internal/client"
	"github.com/jhoicas/commodities-api/internal/domain/entity"
	"github.com/jhoicas/commodities-api/internal/infrastructure/sqlite"
	"github.com/jhoicas/commodities-api/pkg/format"
)

const banner = `
                                    _ _ _   _
  ___ ___  _ __ ___  _ __ ___   ___| (_) |_(_) ___  ___
 / __/ _ \| '_ ' _ \| '_ ' _ \ / _ \ | | __| |/ _ \/ __|
| (_| (_) | | | | | | | | | | |  __/ | | |_| |  __/\__ \
 \___\___/|_| |_| |_|_| |_| |_|\___|_|_|\__|_|\___||___/
`

// app dependencias compartidas por los comandos.
type app struct {
	api     *client.Client
	store   *session.Store
	fmt     *format.Formatter
	envTok  string // COMMODITIES_TOKEN: tiene prioridad sobre la sesión guardada
	closeFn func()
}

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	a, err := newApp()
	if err != nil {
		color.Red("Error: %v\n", err)
		os.Exit(1)
	}
	defer a.closeFn()

	cmd := os.Args[1]
	args := os.Args[2:]
	ctx := context.Background()

	switch cmd {
	case "login":
		err = a.cmdLogin(ctx, args)
	case "logout":
		err = a.cmdLogout(ctx)
	case "whoami", "me":
		err = a.cmdWhoAmI(ctx)
	case "products":
		err = a.cmdProducts(ctx, args)
	case "dashboard":
		err = a.cmdDashboard(ctx, args)
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", cmd)
		printUsage()
		os.Exit(1)
	}

	if err != nil {
		color.Red("Error: %v\n", err)
		a.closeFn()
		os.Exit(1)
	}
}

func newApp() (*app, error) {
	kv, err := openSessionStorage()
	if err != nil {
		return nil, err
	}
	a := &app{
		api:     client.New(os.Getenv("COMMODITIES_API_URL")),
		fmt:     format.New(envOr("COMMODITIES_LOCALE", "en")),
		envTok:  strings.TrimSpace(os.Getenv("COMMODITIES_TOKEN")),
		closeFn: func() {},
	}
	if kv != nil {
		a.store = session.NewStore(kv)
		a.closeFn = func() { _ = kv.Close() }
	} else {
		a.store = session.NewStore(nil)
	}
	return a, nil
}

// openSessionStorage abre el archivo de sesión. En contextos no interactivos (stdout no es
// una terminal) sin COMMODITIES_SESSION_DB explícito devuelve nil: la sesión no se persiste.
func openSessionStorage() (*sqlite.KeyValueStorage, error) {
	path := os.Getenv("COMMODITIES_SESSION_DB")
	if path == "" {
		if !interactive() {
			return nil, nil
		}
		path = defaultSessionPath()
		if path == "" {
			return nil, nil
		}
	}
	return sqlite.Open(path)
}

func interactive() bool {
	fd := os.Stdout.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// defaultSessionPath $XDG_CONFIG_HOME/commodities/session.db (o ~/.config/...).
func defaultSessionPath() string {
	configDir := os.Getenv("XDG_CONFIG_HOME")
	if configDir == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		configDir = filepath.Join(homeDir, ".config")
	}
	return filepath.Join(configDir, "commodities", "session.db")
}

// currentSession devuelve el token y el usuario activos. Con COMMODITIES_TOKEN el usuario
// se consulta a la API.
func (a *app) currentSession(ctx context.Context) (string, *entity.User, error) {
	if a.envTok != "" {
		me, err := a.api.Me(ctx, a.envTok)
		if err != nil {
			return "", nil, fmt.Errorf("COMMODITIES_TOKEN: %w", err)
		}
		role, _ := entity.ParseRole(me.User.Role)
		return a.envTok, &entity.User{ID: me.User.ID, Email: me.User.Email, Role: role, Name: me.User.Name}, nil
	}
	s, ok := a.store.Load(ctx)
	if !ok {
		return "", nil, fmt.Errorf("not logged in (run: commodities login <email> <password>)")
	}
	return s.Token, &s.User, nil
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func printUsage() {
	cyan := color.New(color.FgCyan)
	yellow := color.New(color.FgYellow)

	cyan.Print(banner)
	fmt.Println()
	fmt.Println("Usage: commodities <command> [args]")
	fmt.Println()
	yellow.Println("Commands:")
	fmt.Println("  login <email> <password>        Start a session")
	fmt.Println("  logout                          End the session")
	fmt.Println("  whoami                          Show the session user and permissions")
	fmt.Println("  products [list]                 List products")
	fmt.Println("  products add [flags]            Create a product")
	fmt.Println("  products update <id> [flags]    Update a product (only the given fields)")
	fmt.Println("  products delete <id>            Delete a product")
	fmt.Println("  products export --out <file>    Download the XLSX export")
	fmt.Println("  dashboard                       Inventory summary (manager only)")
	fmt.Println("  dashboard report --out <file>   Download the PDF report (manager only)")
	fmt.Println()
	yellow.Println("Product flags:")
	fmt.Println("  --name, -n         Name")
	fmt.Println("  --quantity, -q     Quantity (>= 0)")
	fmt.Println("  --unit, -u         kg | g | ton | liter | piece (default kg)")
	fmt.Println("  --price, -p        Price (>= 0)")
	fmt.Println("  --category, -c     Category")
	fmt.Println("  --description, -d  Description")
	fmt.Println()
	yellow.Println("Environment:")
	fmt.Println("  COMMODITIES_API_URL      API base URL (default: http://localhost:8080)")
	fmt.Println("  COMMODITIES_TOKEN        Session token (overrides the saved session)")
	fmt.Println("  COMMODITIES_SESSION_DB   Session file (default: ~/.config/commodities/session.db)")
	fmt.Println()
	yellow.Println("Examples:")
	fmt.Println("  commodities login admin@commodities.com password123")
	fmt.Println("  commodities products add -n Barley -q 800 -p 12.5 -c Grains")
	fmt.Println("  commodities products update 3 --price 6700")
	fmt.Println()
}
