// Package cmd implements the sarc command tree.
package cmd

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/go-faster/sarc/cmd/sarc/cmd/create"
	"github.com/go-faster/sarc/cmd/sarc/cmd/extract"
	"github.com/go-faster/sarc/cmd/sarc/cmd/ls"
	"github.com/go-faster/sarc/internal/version"
)

// NewCommand returns the root command for sarc.
func NewCommand(lg *zap.Logger) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "sarc",
		Short:         "Read and write SARC archives, plain or Yaz0/zstd compressed",
		Version:       version.Get().Raw,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.AddCommand(ls.NewCommand(lg))
	cmd.AddCommand(extract.NewCommand(lg))
	cmd.AddCommand(create.NewCommand(lg))

	return cmd
}
