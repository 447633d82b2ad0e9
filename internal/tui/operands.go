package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/huh"
)

// ParseOperand parses an unsigned 64-bit decimal operand.
func ParseOperand(s string) (uint64, error) {
	v, err := strconv.ParseUint(strings.TrimSpace(s), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("operand %q: want an unsigned 64-bit integer", s)
	}
	return v, nil
}

func validateOperand(s string) error {
	_, err := ParseOperand(s)
	return err
}

// PromptOperands asks for both operands of sum, prefilled with the
// current values.
func PromptOperands(left, right *uint64) error {
	l := strconv.FormatUint(*left, 10)
	r := strconv.FormatUint(*right, 10)

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Left").
				Description("First operand (0 to 18446744073709551615)").
				Placeholder("42").
				Validate(validateOperand).
				Value(&l),

			huh.NewInput().
				Title("Right").
				Description("Second operand, the sum wraps on overflow").
				Placeholder("58").
				Validate(validateOperand).
				Value(&r),
		),
	)

	if err := form.Run(); err != nil {
		return fmt.Errorf("form: %w", err)
	}

	var err error
	if *left, err = ParseOperand(l); err != nil {
		return err
	}
	*right, err = ParseOperand(r)
	return err
}
