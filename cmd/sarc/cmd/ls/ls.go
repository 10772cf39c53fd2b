// Package ls implements archive listing.
package ls

import (
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/go-faster/city"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/go-faster/sarc"
)

type conf struct {
	lg       *zap.Logger
	checksum bool
}

func NewCommand(lg *zap.Logger) *cobra.Command {
	c := &conf{lg: lg}
	cmd := &cobra.Command{
		Use:   "ls <archive>",
		Short: "List entries of an archive",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.run(args[0])
		},
	}
	cmd.Flags().BoolVarP(&c.checksum, "checksum", "c", false, "print CityHash64 of entry data")
	return cmd
}

func (c *conf) run(name string) error {
	a, err := sarc.ReadFile(name)
	if err != nil {
		return err
	}
	c.lg.Debug("parsed archive",
		zap.Stringer("byte_order", a.ByteOrder),
		zap.Uint32("hash_multiplier", a.HashMultiplier),
		zap.Int("files", len(a.Files)),
	)
	for _, e := range a.Files {
		entryName := e.Name
		if entryName == "" {
			entryName = fmt.Sprintf("<%08x>", e.Hash)
		}
		if c.checksum {
			fmt.Printf("%08x  %016x  %10s  %s\n",
				e.Hash, city.CH64(e.Data), humanize.Bytes(uint64(len(e.Data))), entryName)
		} else {
			fmt.Printf("%08x  %10s  %s\n",
				e.Hash, humanize.Bytes(uint64(len(e.Data))), entryName)
		}
	}
	return nil
}
