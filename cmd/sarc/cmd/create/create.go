// Package create implements archive creation.
package create

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/go-faster/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/go-faster/sarc"
)

type conf struct {
	lg          *zap.Logger
	alignConfig string
	alignment   uint32
	yaz0        bool
	zstd        bool
	little      bool
}

func NewCommand(lg *zap.Logger) *cobra.Command {
	c := &conf{lg: lg}
	cmd := &cobra.Command{
		Use:   "create <out> <file>...",
		Short: "Build an archive from files",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.run(args[0], args[1:])
		},
	}
	cmd.Flags().StringVar(&c.alignConfig, "align-config", "", "YAML file mapping extensions to data alignments")
	cmd.Flags().Uint32Var(&c.alignment, "alignment", 0, "Yaz0 header alignment hint")
	cmd.Flags().BoolVar(&c.yaz0, "yaz0", false, "compress output with Yaz0")
	cmd.Flags().BoolVar(&c.zstd, "zstd", false, "compress output with zstd")
	cmd.Flags().BoolVar(&c.little, "little-endian", false, "write a little-endian archive")
	return cmd
}

func (c *conf) run(out string, paths []string) error {
	if c.yaz0 && c.zstd {
		return errors.New("pick one of --yaz0 and --zstd")
	}

	files, err := collectInputs(paths)
	if err != nil {
		return err
	}

	order := sarc.ByteOrderBig
	if c.little {
		order = sarc.ByteOrderLittle
	}
	opt := sarc.WriteOptions{Alignment: c.alignment}
	switch {
	case c.yaz0:
		opt.Compression = sarc.CompressionYaz0
	case c.zstd:
		opt.Compression = sarc.CompressionZstd
	}
	if c.alignConfig != "" {
		table, err := loadAlignTable(c.alignConfig)
		if err != nil {
			return errors.Wrap(err, "alignment table")
		}
		opt.Align = table
	}

	a := sarc.New(order, files)
	if err := sarc.WriteFile(out, a, opt); err != nil {
		return err
	}
	c.lg.Info("wrote archive",
		zap.String("file", out),
		zap.Int("files", len(a.Files)),
		zap.Stringer("compression", opt.Compression),
	)
	return nil
}

// collectInputs reads the input files, keyed by base name. Two paths
// with the same base name would silently shadow each other in the
// archive, so that is an error.
func collectInputs(paths []string) (map[string][]byte, error) {
	files := make(map[string][]byte, len(paths))
	for _, p := range paths {
		name := filepath.Base(p)
		if _, ok := files[name]; ok {
			return nil, errors.Errorf("duplicate entry name %q", name)
		}
		data, err := os.ReadFile(p)
		if err != nil {
			return nil, errors.Wrap(err, "read input")
		}
		files[name] = data
	}
	return files, nil
}

// loadAlignTable reads an extension alignment mapping:
//
//	alignments:
//	  .bflim: 128
//	  .sharcfb: 2048
func loadAlignTable(path string) (sarc.AlignTable, error) {
	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return nil, errors.Wrap(err, "read config")
	}
	raw := map[string]uint32{}
	if err := v.UnmarshalKey("alignments", &raw); err != nil {
		return nil, errors.Wrap(err, "alignments")
	}
	table := sarc.AlignTable{}
	for ext, align := range raw {
		if !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}
		table[strings.ToLower(ext)] = align
	}
	return table, nil
}
