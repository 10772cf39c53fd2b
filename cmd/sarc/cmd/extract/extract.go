// Package extract implements archive unpacking.
package extract

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-faster/errors"
	"github.com/spf13/cobra"
	"go.uber.org/multierr"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/go-faster/sarc"
)

type conf struct {
	lg  *zap.Logger
	out string
}

func NewCommand(lg *zap.Logger) *cobra.Command {
	c := &conf{lg: lg}
	cmd := &cobra.Command{
		Use:   "extract <archive>",
		Short: "Unpack all entries into a directory",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.run(args[0])
		},
	}
	cmd.Flags().StringVarP(&c.out, "out", "o", ".", "output directory")
	return cmd
}

func (c *conf) run(name string) error {
	a, err := sarc.ReadFile(name)
	if err != nil {
		return err
	}

	var g errgroup.Group
	for _, e := range a.Files {
		e := e
		g.Go(func() error {
			return c.write(e)
		})
	}
	return g.Wait()
}

func (c *conf) write(e sarc.Entry) (rerr error) {
	name := e.Name
	if name == "" {
		// Hash-only entries get a synthetic name.
		name = fmt.Sprintf("%08x.bin", e.Hash)
	}
	if strings.Contains(name, "..") {
		return errors.Errorf("refusing entry name %q", name)
	}
	p := filepath.Join(c.out, filepath.FromSlash(name))
	if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		return errors.Wrap(err, "mkdir")
	}
	f, err := os.Create(p)
	if err != nil {
		return errors.Wrap(err, "create")
	}
	defer multierr.AppendInvoke(&rerr, multierr.Close(f))

	if _, err := f.Write(e.Data); err != nil {
		return errors.Wrapf(err, "write %q", p)
	}
	c.lg.Info("extracted",
		zap.String("file", p),
		zap.Int("size", len(e.Data)),
	)
	return nil
}
