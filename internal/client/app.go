package client

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"slices"
	"strconv"
	"strings"

	"github.com/MKhiriev/go-storefront-demo/internal/adapter"
	"github.com/MKhiriev/go-storefront-demo/internal/logger"
	"github.com/MKhiriev/go-storefront-demo/models"
)

// command runs one client action against the adapter and returns the value
// to print.
type command struct {
	usage string
	args  int
	run   func(ctx context.Context, a adapter.ServerAdapter, args []string) (any, error)
}

var commands = map[string]command{
	"login": {
		usage: "login <username> <password>",
		args:  2,
		run: func(ctx context.Context, a adapter.ServerAdapter, args []string) (any, error) {
			return a.Login(ctx, models.LoginRequest{Username: args[0], Password: args[1]})
		},
	},
	"refresh": {
		usage: "refresh <token>",
		args:  1,
		run: func(ctx context.Context, a adapter.ServerAdapter, args []string) (any, error) {
			a.SetToken(args[0])
			return a.RefreshToken(ctx)
		},
	},
	"products": {
		usage: "products",
		run: func(ctx context.Context, a adapter.ServerAdapter, _ []string) (any, error) {
			return a.ListProducts(ctx)
		},
	},
	"product": {
		usage: "product <id>",
		args:  1,
		run: withID(func(ctx context.Context, a adapter.ServerAdapter, id int) (any, error) {
			return a.GetProduct(ctx, id)
		}),
	},
	"customers": {
		usage: "customers",
		run: func(ctx context.Context, a adapter.ServerAdapter, _ []string) (any, error) {
			return a.ListCustomers(ctx)
		},
	},
	"customer": {
		usage: "customer <id>",
		args:  1,
		run: withID(func(ctx context.Context, a adapter.ServerAdapter, id int) (any, error) {
			return a.GetCustomer(ctx, id)
		}),
	},
	"create-customer": {
		usage: "create-customer <json>",
		args:  1,
		run: withBody(func(ctx context.Context, a adapter.ServerAdapter, c models.Customer) (any, error) {
			return a.CreateCustomer(ctx, c)
		}),
	},
	"suppliers": {
		usage: "suppliers",
		run: func(ctx context.Context, a adapter.ServerAdapter, _ []string) (any, error) {
			return a.ListSuppliers(ctx)
		},
	},
	"supplier": {
		usage: "supplier <id>",
		args:  1,
		run: withID(func(ctx context.Context, a adapter.ServerAdapter, id int) (any, error) {
			return a.GetSupplier(ctx, id)
		}),
	},
	"create-supplier": {
		usage: "create-supplier <json>",
		args:  1,
		run: withBody(func(ctx context.Context, a adapter.ServerAdapter, s models.Supplier) (any, error) {
			return a.CreateSupplier(ctx, s)
		}),
	},
	"version": {
		usage: "version",
		run: func(ctx context.Context, a adapter.ServerAdapter, _ []string) (any, error) {
			return a.Version(ctx)
		},
	},
}

func withID(run func(ctx context.Context, a adapter.ServerAdapter, id int) (any, error)) func(context.Context, adapter.ServerAdapter, []string) (any, error) {
	return func(ctx context.Context, a adapter.ServerAdapter, args []string) (any, error) {
		id, err := strconv.Atoi(args[0])
		if err != nil {
			return nil, fmt.Errorf("%w: id %q", ErrInvalidArgument, args[0])
		}
		return run(ctx, a, id)
	}
}

func withBody[T any](run func(ctx context.Context, a adapter.ServerAdapter, body T) (any, error)) func(context.Context, adapter.ServerAdapter, []string) (any, error) {
	return func(ctx context.Context, a adapter.ServerAdapter, args []string) (any, error) {
		var body T
		if err := json.Unmarshal([]byte(args[0]), &body); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidArgument, err)
		}
		return run(ctx, a, body)
	}
}

// Usage lists every command, one per line.
func Usage() string {
	names := make([]string, 0, len(commands))
	for name := range commands {
		names = append(names, name)
	}
	slices.Sort(names)

	var b strings.Builder
	for _, name := range names {
		b.WriteString("  " + commands[name].usage + "\n")
	}
	return b.String()
}

var _ Client = (*App)(nil)

type App struct {
	adapter adapter.ServerAdapter
	out     io.Writer
	logger  *logger.Logger
}

func NewApp(serverAdapter adapter.ServerAdapter, out io.Writer, logger *logger.Logger) *App {
	return &App{adapter: serverAdapter, out: out, logger: logger}
}

func (a *App) Run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return ErrNoCommand
	}

	name, operands := args[0], args[1:]
	cmd, ok := commands[name]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownCommand, name)
	}
	if len(operands) < cmd.args {
		return fmt.Errorf("%w: usage: %s", ErrMissingArgument, cmd.usage)
	}

	a.logger.Debug().Str("command", name).Int("operands", len(operands)).Msg("running command")

	result, err := cmd.run(ctx, a.adapter, operands)
	if err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}

	return a.print(result)
}

func (a *App) print(v any) error {
	if s, ok := v.(string); ok {
		_, err := fmt.Fprintln(a.out, s)
		return err
	}

	enc := json.NewEncoder(a.out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
