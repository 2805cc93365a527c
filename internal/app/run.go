package app

import (
	"context"
	"fmt"
	"strings"

	"github.com/hashicorp/hcl/v2"
	"github.com/vk/optsift/internal/ctxlog"
)

// Run resolves the given argument tokens against the named command's
// schema, prints the structured outcome, and reports accumulated parse
// errors through the standard diagnostic writer. All errors are reported
// together; parsing never stops at the first one.
func (a *App) Run(ctx context.Context, commandName string, args []string) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.", "command", commandName, "arg_count", len(args))

	cmd, ok := a.registry.Lookup(commandName)
	if !ok {
		known := strings.Join(a.registry.Names(), ", ")
		return fmt.Errorf("unknown command %q (known commands: %s)", commandName, known)
	}

	outcome := a.parser.Parse(ctx, cmd.Options, args)

	for _, res := range outcome.Results {
		fmt.Fprintf(a.outW, "%s = %s\n", res.Option.DisplayName(), renderValue(res))
	}
	if len(outcome.Positional) > 0 {
		fmt.Fprintf(a.outW, "positional: %s\n", strings.Join(outcome.Positional, " "))
	}

	if len(outcome.Errors) > 0 {
		wr := hcl.NewDiagnosticTextWriter(a.outW, nil, 78, isTerminal(a.outW))
		if err := wr.WriteDiagnostics(outcome.Diagnostics()); err != nil {
			return err
		}
		return fmt.Errorf("command %q: arguments had %d error(s)", commandName, len(outcome.Errors))
	}

	a.logger.Debug("App.Run method finished.")
	return nil
}
