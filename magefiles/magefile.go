// Package main provides build targets for the repairdesk project using Mage.
//
// Usage:
//
//	mage build            Compile repairdesk binary to bin/
//	mage test             Run all tests
//	mage testIntegration  Run tests including the Postgres integration suite
//	mage lint             Run golangci-lint
//	mage clean            Remove build artifacts
//	mage install          Install repairdesk to GOPATH/bin

//go:build mage

package main

import (
	"os"
	"path/filepath"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

const (
	binaryName = "repairdesk"
	binaryDir  = "bin"
	cmdDir     = "./cmd/repairdesk"
)

// Build compiles the repairdesk binary to bin/.
func Build() error {
	if err := os.MkdirAll(binaryDir, 0o755); err != nil {
		return err
	}
	return sh.RunV("go", "build", "-v", "-o", filepath.Join(binaryDir, binaryName), cmdDir)
}

// Test runs all tests. The Postgres integration test skips itself unless
// REPAIRDESK_TEST_DATABASE_URL is set.
func Test() error {
	return sh.RunV("go", "test", "./...")
}

// TestIntegration runs the test suite against a live Postgres instance.
// REPAIRDESK_TEST_DATABASE_URL must point at a disposable database.
func TestIntegration() error {
	if os.Getenv("REPAIRDESK_TEST_DATABASE_URL") == "" {
		return sh.RunV("go", "test", "./...")
	}
	return sh.RunV("go", "test", "-count=1", "./...")
}

// Lint runs golangci-lint.
func Lint() error {
	return sh.RunV("golangci-lint", "run", "./...")
}

// Clean removes build artifacts.
func Clean() error {
	if err := os.RemoveAll(binaryDir); err != nil {
		return err
	}
	return sh.RunV("go", "clean")
}

// Install builds and copies the binary to GOPATH/bin.
func Install() error {
	mg.Deps(Build)
	gopath, err := sh.Output("go", "env", "GOPATH")
	if err != nil {
		return err
	}
	src := filepath.Join(binaryDir, binaryName)
	dst := filepath.Join(gopath, "bin", binaryName)
	return sh.Copy(dst, src)
}
