// Package toolchain shells out to the Mojo compiler to validate rewritten
// files. It never executes the scanned code.
package toolchain

import (
	"fmt"
	"os/exec"
)

// MojoValidator implements domain.BuildValidator by running `mojo build` on
// a single file.
type MojoValidator struct {
	binary string
}

func New() *MojoValidator {
	return &MojoValidator{binary: "mojo"}
}

// NewWithBinary is used by tests to substitute the compiler command.
func NewWithBinary(binary string) *MojoValidator {
	return &MojoValidator{binary: binary}
}

// Validate compiles the file and returns the compiler output on failure.
func (v *MojoValidator) Validate(path string) error {
	cmd := exec.Command(v.binary, "build", path)
	out, err := cmd.CombinedOutput()
	if err != nil {
		return fmt.Errorf("mojo build %s: %w\n%s", path, err, out)
	}
	return nil
}
