//go:build mage

package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

const binaryName = "numlearn"

// Build compiles the numlearn binary into ./bin
func Build() error {
	fmt.Println("Building", binaryName)
	return sh.RunV("go", "build", "-o", filepath.Join("bin", binaryName), "./cmd/numlearn")
}

// Test runs all tests
func Test() error {
	return sh.RunV("go", "test", "./...")
}

// Lint runs go vet
func Lint() error {
	return sh.RunV("go", "vet", "./...")
}

// Install builds and installs the binary into GOPATH/bin
func Install() error {
	mg.Deps(Test)
	return sh.RunV("go", "install", "./cmd/numlearn")
}

// Clean removes build artifacts
func Clean() error {
	return os.RemoveAll("bin")
}
