package cli

import (
	"strings"
	"testing"
)

func TestAddCmd_Args(t *testing.T) {
	if err := addCmd.Args(addCmd, nil); err != nil {
		t.Errorf("Args(nil) error = %v", err)
	}
	if err := addCmd.Args(addCmd, []string{"1", "2"}); err != nil {
		t.Errorf("Args([1 2]) error = %v", err)
	}
	if err := addCmd.Args(addCmd, []string{"1"}); err == nil {
		t.Error("Args([1]) should return error")
	}
}

func TestAddCmd_InteractiveFlag(t *testing.T) {
	flag := addCmd.Flags().Lookup("interactive")
	if flag == nil {
		t.Fatal("missing --interactive flag")
	}
	if flag.Shorthand != "i" {
		t.Errorf("interactive shorthand = %q, want 'i'", flag.Shorthand)
	}
}

func TestRunAdd(t *testing.T) {
	tests := []struct {
		name    string
		config  string
		args    []string
		want    string
		wantErr bool
	}{
		{"operands", "", []string{"2", "2"}, "4", false},
		{"wraps", "", []string{"18446744073709551615", "1"}, "0", false},
		{"from config", "[demo]\nleft = 7\nright = 8\n", nil, "15", false},
		{"defaults", "", nil, "100", false},
		{"bad operand", "", []string{"two", "2"}, "", true},
		{"negative", "", []string{"-1", "2"}, "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := execute(t, tt.config, append([]string{"add", "--interactive=false"}, tt.args...)...)
			if (err != nil) != tt.wantErr {
				t.Fatalf("add error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}
			if got := strings.TrimSpace(out); got != tt.want {
				t.Errorf("add output = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestOperands(t *testing.T) {
	cfg.Demo.Left, cfg.Demo.Right = 1, 2

	l, r, err := operands(nil)
	if err != nil || l != 1 || r != 2 {
		t.Errorf("operands(nil) = %d, %d, %v; want 1, 2, nil", l, r, err)
	}

	l, r, err = operands([]string{"10", "20"})
	if err != nil || l != 10 || r != 20 {
		t.Errorf("operands([10 20]) = %d, %d, %v; want 10, 20, nil", l, r, err)
	}

	if _, _, err := operands([]string{"10", "x"}); err == nil {
		t.Error("operands([10 x]) should return error")
	}
}
