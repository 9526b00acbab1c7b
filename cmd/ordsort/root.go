package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/amp-labs/ord-collections/errors"
	"github.com/amp-labs/ord-collections/logger"
	"github.com/spf13/cobra"
)

const appName = "ordsort"

// rootCommand keeps what the main ordsort command needs between cobra hooks.
type rootCommand struct {
	conf Config
	cmd  *cobra.Command

	// log, when set, is used as is instead of configuring global logging.
	log *slog.Logger
}

func newRootCommand(lookupEnv func(string) (string, bool), log *slog.Logger) (*rootCommand, error) {
	conf, err := loadConfig(lookupEnv)
	if err != nil {
		return nil, err
	}

	c := &rootCommand{conf: conf, log: log}

	c.cmd = &cobra.Command{
		Use:   appName + " [flags]",
		Short: "Sort unique strings or key/value entries read from YAML",
		Long: `ordsort reads a YAML document and prints its contents in ascending order.

Sequence mode reads a list of strings:

  elements: [b, a, c]

Map mode (--map) reads a list of key/value entries:

  entries:
    - {key: C, value: "0"}
    - {key: A, value: "0"}

Any duplicate element or key is an error.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          c.run,
	}

	c.cmd.Flags().AddFlagSet(flagSet(&c.conf))

	return c, nil
}

func (c *rootCommand) setupLogging(ctx context.Context, stderr io.Writer) (context.Context, error) {
	level, err := c.conf.level()
	if err != nil {
		return ctx, err
	}

	log := c.log
	if log == nil {
		log = logger.ConfigureLoggingWithOptions(logger.Options{
			Subsystem:   appName,
			JSON:        c.conf.LogJSON,
			MinLevel:    level,
			LegacyLevel: level,
			Output:      stderr,
		})
	}

	return logger.WithSubsystem(logger.WithLogger(ctx, log), appName), nil
}

// run reports failures only through its returned error; main prints it.
// Logging them as well would show every failure twice on stderr.
func (c *rootCommand) run(cmd *cobra.Command, _ []string) error {
	ctx, err := c.setupLogging(cmd.Context(), cmd.ErrOrStderr())
	if err != nil {
		return err
	}

	ctx = logger.With(ctx, "map", c.conf.Map, "natural", c.conf.Natural)

	in := cmd.InOrStdin()
	source := "stdin"

	if c.conf.Input != "" {
		f, err := os.Open(c.conf.Input)
		if err != nil {
			return fmt.Errorf("opening input: %w", err)
		}
		defer f.Close() //nolint:errcheck

		in = f
		source = c.conf.Input
	}

	ctx = logger.With(ctx, "source", source)

	doc, err := decodeDocument(in)
	if err != nil {
		logger.Get(ctx).Debug("reading input failed", "error", err)

		return err
	}

	logger.Get(ctx).Debug("input decoded",
		"elements", len(doc.Elements),
		"entries", len(doc.Entries))

	out, err := render(c.conf, doc)
	if err != nil {
		if desc, ok := errors.DuplicateDescription(err); ok {
			err = logger.AnnotateError(err, "duplicate", desc)
		}

		logger.Get(ctx).Debug("building collection failed", "error", err)

		return fmt.Errorf("%s: %w", source, err)
	}

	if out != "" {
		if _, err := fmt.Fprintln(cmd.OutOrStdout(), out); err != nil {
			return err
		}
	}

	logger.Get(ctx).Info("done")

	return nil
}
