package main

import (
	"strings"
	"testing"

	"github.com/go-git/go-billy/v5/memfs"
	"github.com/go-git/go-billy/v5/util"
	"github.com/stretchr/testify/require"

	"github.com/oyarzun/hdf-compass/filesystem"
)

func TestPrintTree(t *testing.T) {
	mem := memfs.New()
	require.NoError(t, util.WriteFile(mem, "/docs/readme.txt", []byte("hello"), 0o644))

	s, err := filesystem.New(filesystem.LocatorURL, filesystem.WithBackend(mem))
	require.NoError(t, err)

	root, err := s.Root()
	require.NoError(t, err)

	var sb strings.Builder
	require.NoError(t, printTree(&sb, root, "", 3))

	out := sb.String()
	require.Contains(t, out, `Folder "/" (1 members)`)
	require.Contains(t, out, `Folder "docs" (1 members)`)
	require.Contains(t, out, `File "readme.txt", size 5 bytes`)
}

func TestPrintTree_DepthBound(t *testing.T) {
	mem := memfs.New()
	require.NoError(t, util.WriteFile(mem, "/docs/readme.txt", []byte("hello"), 0o644))

	s, err := filesystem.New(filesystem.LocatorURL, filesystem.WithBackend(mem))
	require.NoError(t, err)

	root, err := s.Root()
	require.NoError(t, err)

	var sb strings.Builder
	require.NoError(t, printTree(&sb, root, "", 1))

	out := sb.String()
	require.Contains(t, out, `Folder "docs"`)
	require.NotContains(t, out, "readme.txt")
}

func TestRootCmd_Subcommands(t *testing.T) {
	cmd := newRootCmd()

	var names []string
	for _, c := range cmd.Commands() {
		names = append(names, c.Name())
	}
	require.Contains(t, names, "tree")
	require.Contains(t, names, "info")
	require.Contains(t, names, "cat")
}
