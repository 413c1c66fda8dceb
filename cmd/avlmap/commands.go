package main

import (
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"
	"jsouthworth.net/go/avl"
	"jsouthworth.net/go/avl/treemap"
)

type options struct {
	pairs string
	keys  string
}

func newRootCmd(out io.Writer) *cobra.Command {
	var opts options

	var cmdLookup = &cobra.Command{
		Use:   "lookup KEY...",
		Short: "Look up keys in the map built from the pairs file",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.OutOrStdout(), opts, args, false)
		},
	}

	var cmdDump = &cobra.Command{
		Use:   "dump",
		Short: "Print the size, height and shape of the map built from the pairs file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.OutOrStdout(), opts, nil, true)
		},
	}

	var rootCmd = &cobra.Command{
		Use:           "avlmap",
		Short:         "Build a persistent AVL map from key/value pairs and query it",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.PersistentFlags().StringVar(&opts.pairs, "pairs", "", "YAML pairs file (default: built in sample)")
	rootCmd.PersistentFlags().StringVar(&opts.keys, "keys", "int", "key order: int, string or bytes")
	rootCmd.SetOut(out)
	rootCmd.AddCommand(cmdLookup, cmdDump)
	return rootCmd
}

func run(w io.Writer, opts options, keys []string, dump bool) error {
	f, err := loadFixture(opts.pairs)
	if err != nil {
		return err
	}
	switch opts.keys {
	case "int":
		return execute(w, treemap.Ordered[int, string](), strconv.Atoi, f, keys, dump)
	case "string":
		return execute(w, treemap.Ordered[string, string](), parseString, f, keys, dump)
	case "bytes":
		return execute(w, treemap.Bytes[string](), parseBytes, f, keys, dump)
	default:
		return fmt.Errorf("unknown key order %q", opts.keys)
	}
}

func parseString(s string) (string, error) {
	return s, nil
}

func parseBytes(s string) ([]byte, error) {
	return []byte(s), nil
}

func execute[K any](
	w io.Writer,
	empty *avl.Map[K, string],
	parse func(string) (K, error),
	f *fixture,
	keys []string,
	dump bool,
) error {
	m, err := build(empty, parse, f)
	if err != nil {
		return err
	}
	if dump {
		fmt.Fprintf(w, "length: %d\nheight: %d\n%s", m.Length(), m.Height(), m)
		return nil
	}
	return lookup(w, m, parse, keys)
}

// build folds the fixture pairs into m in file order.
func build[K any](
	m *avl.Map[K, string],
	parse func(string) (K, error),
	f *fixture,
) (*avl.Map[K, string], error) {
	pairs := make([]avl.Pair[K, string], 0, len(f.Pairs))
	for i, p := range f.Pairs {
		k, err := parse(p.Key)
		if err != nil {
			return nil, fmt.Errorf("pair %d: %w", i, err)
		}
		pairs = append(pairs, avl.Pair[K, string]{Key: k, Value: p.Value})
	}
	return m.InsertPairs(pairs...), nil
}

func lookup[K any](
	w io.Writer,
	m *avl.Map[K, string],
	parse func(string) (K, error),
	keys []string,
) error {
	for _, raw := range keys {
		k, err := parse(raw)
		if err != nil {
			return fmt.Errorf("key %q: %w", raw, err)
		}
		v, err := m.Find(k)
		switch {
		case errors.Is(err, avl.ErrNotFound):
			fmt.Fprintf(w, "%s\tnot found\n", raw)
		case err != nil:
			return err
		default:
			fmt.Fprintf(w, "%s\t%s\n", raw, v)
		}
	}
	return nil
}
