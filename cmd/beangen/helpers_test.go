package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

//
// -----------------------------------------------------------------------------
// Shared fixtures
// -----------------------------------------------------------------------------

// modelsSource is a package exercising every tag rule.
const modelsSource = `package models

import "github.com/sghaida/beaninit/bean"

type Params struct{}

type Root struct {
	bean.Init[Params]
	bean.Label

	Source     *Leaf   ` + "`bean:\"source\"`" + `
	Backup     *Leaf   ` + "`bean:\"backup,skip\"`" + `
	Leaves     []*Leaf ` + "`bean:\",optional\"`" + `
	HTTPClient bean.Bean
	Any, Other bean.Bean ` + "`json:\"x\"`" + `
	Size       int ` + "`bean:\"-\"`" + `
	hidden     *Leaf
	Fixed      [2]*Leaf ` + "`bean:\"fixed,skip,optional\"`" + `
}

type Leaf struct {
	bean.Label
	Note string ` + "`bean:\"-\"`" + `
}

type Alias = Leaf

type Number int

type Box[T any] struct{ Value T }
`

//
// -----------------------------------------------------------------------------
// Small helpers
// -----------------------------------------------------------------------------

// writeTempFile writes a file under dir/name and returns its full path.
func writeTempFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	p := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(p, []byte(content), 0o644))
	return p
}

// readFileString reads a file and returns its contents as string (fatal on error).
func readFileString(t *testing.T, p string) string {
	t.Helper()
	b, err := os.ReadFile(p)
	require.NoError(t, err)
	return string(b)
}

//
// -----------------------------------------------------------------------------
// writeFileAtomic() seam helpers
// -----------------------------------------------------------------------------

// fakeTempFile is a controllable file-like object for writeFileAtomic tests.
// It lets tests force errors on Write and Close without touching real files.
type fakeTempFile struct {
	fileName string
	writeErr error
	closeErr error
}

func (f *fakeTempFile) Name() string { return f.fileName }

func (f *fakeTempFile) Write(p []byte) (int, error) {
	if f.writeErr != nil {
		return 0, f.writeErr
	}
	return len(p), nil
}

func (f *fakeTempFile) Close() error { return f.closeErr }

// restoreWriteSeams puts the real file seams back when t ends.
func restoreWriteSeams(t *testing.T) {
	t.Helper()
	origCreate, origRemove, origChmod, origRename := createTempFile, removeFile, chmodFile, renameFile
	t.Cleanup(func() {
		createTempFile = origCreate
		removeFile = origRemove
		chmodFile = origChmod
		renameFile = origRename
	})
}
