// Command compass is a small host application for browsing hierarchical
// data stores through the node model. It mounts a store picked by locator
// (local filesystem or tar archive) and exposes tree, info, and cat
// subcommands over it.
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"github.com/oyarzun/hdf-compass/archive"
	"github.com/oyarzun/hdf-compass/filesystem"
	"github.com/oyarzun/hdf-compass/model"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "compass: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		verbose bool
		url     string
	)

	cmd := &cobra.Command{
		Use:           "compass",
		Short:         "Browse hierarchical data stores as a uniform node tree",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := slog.LevelInfo
			if verbose {
				level = slog.LevelDebug
			}
			slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
				Level: level,
			})))
		},
	}

	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	cmd.PersistentFlags().StringVarP(&url, "url", "u", filesystem.LocatorURL,
		"store locator (file://localhost or targz://<path>)")

	cmd.AddCommand(newTreeCmd(&url), newInfoCmd(&url), newCatCmd(&url))
	return cmd
}

// openStore picks a store plugin for the locator through a store registry,
// the same path a full host application would take.
func openStore(url string) (*model.StoreRegistry, model.Store, error) {
	reg := model.NewStoreRegistry()
	reg.Register(filesystem.StoreType())
	reg.Register(archive.StoreType())

	m, err := reg.Open(url)
	if err != nil {
		return nil, nil, err
	}
	return reg, m.Store, nil
}

func newTreeCmd(url *string) *cobra.Command {
	var depth int

	cmd := &cobra.Command{
		Use:   "tree [key]",
		Short: "Print the node tree rooted at a key",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			key := "/"
			if len(args) == 1 {
				key = args[0]
			}

			reg, store, err := openStore(*url)
			if err != nil {
				return err
			}
			defer func() { _ = reg.CloseAll() }()

			n, err := store.Resolve(key)
			if err != nil {
				return err
			}
			return printTree(cmd.OutOrStdout(), n, "", depth)
		},
	}

	cmd.Flags().IntVarP(&depth, "depth", "d", 2, "maximum traversal depth")
	return cmd
}

func printTree(w io.Writer, n model.Node, indent string, depth int) error {
	if _, err := fmt.Fprintf(w, "%s%s\n", indent, n.Description()); err != nil {
		return err
	}

	c, ok := n.(model.Container)
	if !ok || depth <= 0 {
		return nil
	}

	for child, err := range c.Children() {
		if err != nil {
			// One unresolvable child should not abort the rest of the tree.
			slog.Debug("skipping unresolvable child", "parent", n.Key(), "error", err)
			continue
		}
		if err := printTree(w, child, indent+"  ", depth-1); err != nil {
			return err
		}
	}
	return nil
}

func newInfoCmd(url *string) *cobra.Command {
	return &cobra.Command{
		Use:   "info <key>",
		Short: "Show details for the node at a key",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			reg, store, err := openStore(*url)
			if err != nil {
				return err
			}
			defer func() { _ = reg.CloseAll() }()

			n, err := store.Resolve(args[0])
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Key:         %s\n", n.Key())
			fmt.Fprintf(out, "Name:        %s\n", n.DisplayName())
			fmt.Fprintf(out, "Description: %s\n", n.Description())
			fmt.Fprintf(out, "Store:       %s (%s)\n", n.Store().DisplayName(), n.Store().URL())

			switch v := n.(type) {
			case model.Container:
				fmt.Fprintf(out, "Kind:        container, %d members\n", v.Len())
			case model.ArrayLeaf:
				fmt.Fprintf(out, "Kind:        array leaf, shape %v, dtype %s\n", v.Shape(), v.Dtype())
			}
			return nil
		},
	}
}

// catChunkSize is the slice width used when streaming a leaf to stdout.
const catChunkSize = 1 << 20

func newCatCmd(url *string) *cobra.Command {
	var noProgress bool

	cmd := &cobra.Command{
		Use:   "cat <key>",
		Short: "Write an array leaf's bytes to stdout",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			reg, store, err := openStore(*url)
			if err != nil {
				return err
			}
			defer func() { _ = reg.CloseAll() }()

			n, err := store.Resolve(args[0])
			if err != nil {
				return err
			}
			leaf, ok := n.(model.ArrayLeaf)
			if !ok {
				return fmt.Errorf("%s is not an array leaf", n.Key())
			}

			size := leaf.Shape()[0]
			bar := newBar(int64(size), leaf.DisplayName(), noProgress)

			out := cmd.OutOrStdout()
			for off := 0; off < size; off += catChunkSize {
				end := min(off+catChunkSize, size)
				data, err := leaf.Slice(off, end)
				if err != nil {
					return err
				}
				if _, err := out.Write(data); err != nil {
					return err
				}
				_ = bar.Add(len(data))
			}
			return bar.Finish()
		},
	}

	cmd.Flags().BoolVar(&noProgress, "no-progress", false, "disable the progress bar")
	return cmd
}

// newBar builds a byte progress bar on stderr so piped stdout stays clean.
func newBar(size int64, name string, silent bool) *progressbar.ProgressBar {
	if silent {
		return progressbar.DefaultBytesSilent(size, name)
	}
	return progressbar.NewOptions64(size,
		progressbar.OptionSetDescription(name),
		progressbar.OptionSetWriter(os.Stderr),
		progressbar.OptionShowBytes(true),
		progressbar.OptionClearOnFinish(),
	)
}
