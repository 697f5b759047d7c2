package opt

import (
	"errors"
	"reflect"
	"testing"
)

// testCatalog compiles a catalog for the uuencode-like option set used
// throughout these tests.
func testCatalog(t *testing.T) *Catalog {
	t.Helper()

	c, err := Compile([]Definition{
		{Flag: 'h', Name: "help", Help: "show help"},
		{Flag: 'm', Name: "base64", Help: "use base64"},
		{Flag: 'f', Name: "file", TakesValue: true, Help: "input file"},
		{
			Flag:       'o',
			Name:       "output",
			TakesValue: true,
			Default:    "default.txt",
			HasDefault: true,
			Help:       "output file",
		},
	})
	if err != nil {
		t.Fatalf("compile error: %v", err)
	}

	return c
}

func TestParse_Success(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		wantOpts map[string]string // name -> value ("" means bare)
		bare     []string          // names set without a value
		wantArgs []string
	}{
		{
			name:     "executable path only",
			args:     []string{"exe"},
			wantOpts: map[string]string{},
			wantArgs: []string{},
		},
		{
			name:     "single long flag",
			args:     []string{"exe", "--help"},
			bare:     []string{"help"},
			wantArgs: []string{},
		},
		{
			name:     "combined short flags",
			args:     []string{"exe", "-hm"},
			bare:     []string{"help", "base64"},
			wantArgs: []string{},
		},
		{
			name:     "long option with inline value",
			args:     []string{"exe", "--file=test.txt"},
			wantOpts: map[string]string{"file": "test.txt"},
			wantArgs: []string{},
		},
		{
			name:     "short flag with next-token value",
			args:     []string{"exe", "-f", "test.txt"},
			wantOpts: map[string]string{"file": "test.txt"},
			wantArgs: []string{},
		},
		{
			name:     "long option with next-token value",
			args:     []string{"exe", "--file", "test.txt"},
			wantOpts: map[string]string{"file": "test.txt"},
			wantArgs: []string{},
		},
		{
			name:     "default applied at end of input",
			args:     []string{"exe", "-o"},
			wantOpts: map[string]string{"output": "default.txt"},
			wantArgs: []string{},
		},
		{
			name:     "default applied before another flag",
			args:     []string{"exe", "-o", "--help"},
			wantOpts: map[string]string{"output": "default.txt"},
			bare:     []string{"help"},
			wantArgs: []string{},
		},
		{
			name:     "group ending in value flag",
			args:     []string{"exe", "-hf", "test.txt"},
			wantOpts: map[string]string{"file": "test.txt"},
			bare:     []string{"help"},
			wantArgs: []string{},
		},
		{
			name:     "terminator hides option-like tokens",
			args:     []string{"exe", "--help", "--", "--not-an-option", "file.txt"},
			bare:     []string{"help"},
			wantArgs: []string{"--not-an-option", "file.txt"},
		},
		{
			name:     "first positional stops scanning",
			args:     []string{"exe", "file.txt", "--help"},
			wantOpts: map[string]string{},
			wantArgs: []string{"file.txt", "--help"},
		},
		{
			name:     "bare dash is positional",
			args:     []string{"exe", "-", "out.txt"},
			wantOpts: map[string]string{},
			wantArgs: []string{"-", "out.txt"},
		},
		{
			name:     "bare long flag leaves next token for rescan",
			args:     []string{"exe", "--help", "file.txt"},
			bare:     []string{"help"},
			wantArgs: []string{"file.txt"},
		},
		{
			name:     "inline value may contain equals",
			args:     []string{"exe", "--file=a=b"},
			wantOpts: map[string]string{"file": "a=b"},
			wantArgs: []string{},
		},
		{
			name:     "inline value may start with dash",
			args:     []string{"exe", "--file=-1"},
			wantOpts: map[string]string{"file": "-1"},
			wantArgs: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd, err := testCatalog(t).Parse(tt.args)
			if err != nil {
				t.Fatalf("parse error: %v", err)
			}

			if cmd.Path != tt.args[0] {
				t.Errorf("executable path = %q, want %q", cmd.Path, tt.args[0])
			}

			for name, want := range tt.wantOpts {
				got, ok := cmd.Value(name)
				if !ok {
					t.Errorf("option %q has no value", name)

					continue
				}

				if got != want {
					t.Errorf("option %q = %q, want %q", name, got, want)
				}
			}

			for _, name := range tt.bare {
				if !cmd.IsSet(name) {
					t.Errorf("option %q not set", name)
				}

				if cmd.HasValue(name) {
					t.Errorf("bare option %q has a value", name)
				}
			}

			count := 0
			for range cmd.Names() {
				count++
			}

			if want := len(tt.wantOpts) + len(tt.bare); count != want {
				t.Errorf("recorded %d options, want %d", count, want)
			}

			if !reflect.DeepEqual(cmd.Args, tt.wantArgs) {
				t.Errorf("arguments = %v, want %v", cmd.Args, tt.wantArgs)
			}
		})
	}
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want Category
	}{
		{
			name: "empty argument vector",
			args: []string{},
			want: UnknownOption,
		},
		{
			name: "unknown long option",
			args: []string{"exe", "--bogus"},
			want: UnknownOption,
		},
		{
			name: "unknown short flag",
			args: []string{"exe", "-x"},
			want: UnknownOption,
		},
		{
			name: "unknown flag inside group",
			args: []string{"exe", "-hx"},
			want: UnknownOption,
		},
		{
			name: "missing value at end of input",
			args: []string{"exe", "-f"},
			want: MissingValue,
		},
		{
			name: "missing value before flag-like token",
			args: []string{"exe", "-f", "--help"},
			want: MissingValue,
		},
		{
			name: "missing value before bare dash",
			args: []string{"exe", "-f", "-"},
			want: MissingValue,
		},
		{
			name: "value flag not last in group",
			args: []string{"exe", "-fh", "test.txt"},
			want: InvalidFlagCombination,
		},
		{
			name: "duplicate long option",
			args: []string{"exe", "--help", "--help"},
			want: DuplicateOption,
		},
		{
			name: "duplicate across short and long form",
			args: []string{"exe", "-h", "--help"},
			want: DuplicateOption,
		},
		{
			name: "duplicate within one group",
			args: []string{"exe", "-hh"},
			want: DuplicateOption,
		},
		{
			name: "value supplied to bare flag",
			args: []string{"exe", "--help=yes"},
			want: ValidationError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := testCatalog(t).Parse(tt.args)
			if err == nil {
				t.Fatal("expected parse error")
			}

			var perr *Error
			if !errors.As(err, &perr) {
				t.Fatalf("error type %T, want *opt.Error", err)
			}

			if perr.Category != tt.want {
				t.Errorf("category = %v, want %v", perr.Category, tt.want)
			}
		})
	}
}

func TestParse_ValidatorRejection(t *testing.T) {
	c, err := Compile([]Definition{
		{
			Flag:       'n',
			Name:       "count",
			TakesValue: true,
			Validator: func(v string) error {
				if v == "0" {
					return errors.New("count must be positive")
				}

				return nil
			},
		},
	})
	if err != nil {
		t.Fatalf("compile error: %v", err)
	}

	_, err = c.Parse([]string{"exe", "--count=0"})

	var perr *Error
	if !errors.As(err, &perr) {
		t.Fatalf("error type %T, want *opt.Error", err)
	}

	if perr.Category != ValidationError {
		t.Errorf("category = %v, want ValidationError", perr.Category)
	}

	// The validator's message is carried verbatim.
	if perr.Cause == nil || perr.Cause.Error() != "count must be positive" {
		t.Errorf("cause = %v, want validator message", perr.Cause)
	}

	// An accepted value parses normally.
	cmd, err := c.Parse([]string{"exe", "--count=3"})
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}

	if v, _ := cmd.Value("count"); v != "3" {
		t.Errorf("count = %q, want %q", v, "3")
	}
}

func TestParse_ValidatorSeesDefault(t *testing.T) {
	seen := []string{}

	c, err := Compile([]Definition{
		{
			Flag:       'o',
			Name:       "output",
			TakesValue: true,
			Default:    "default.txt",
			HasDefault: true,
			Validator: func(v string) error {
				seen = append(seen, v)

				return nil
			},
		},
	})
	if err != nil {
		t.Fatalf("compile error: %v", err)
	}

	if _, err := c.Parse([]string{"exe", "-o"}); err != nil {
		t.Fatalf("parse error: %v", err)
	}

	if len(seen) != 1 || seen[0] != "default.txt" {
		t.Errorf("validator saw %v, want exactly the default", seen)
	}
}

func TestParse_EquivalentValueForms(t *testing.T) {
	c := testCatalog(t)

	long, err := c.Parse([]string{"exe", "--file=test.txt"})
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}

	short, err := c.Parse([]string{"exe", "-f", "test.txt"})
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}

	lv, _ := long.Value("file")
	sv, _ := short.Value("file")

	if lv != sv {
		t.Errorf("inline form %q != next-token form %q", lv, sv)
	}
}

func TestParse_Idempotent(t *testing.T) {
	c := testCatalog(t)
	args := []string{"exe", "-hm", "--file=a.txt", "--", "-x", "b.txt"}

	first, err := c.Parse(args)
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}

	second, err := c.Parse(args)
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}

	if !reflect.DeepEqual(first, second) {
		t.Error("re-parsing identical input produced a different result")
	}
}

func TestParse_FirstViolationWins(t *testing.T) {
	// Both an unknown option and a duplicate are present; the leftmost
	// violation decides the category.
	_, err := testCatalog(t).Parse([]string{"exe", "--bogus", "--help", "--help"})

	var perr *Error
	if !errors.As(err, &perr) {
		t.Fatalf("error type %T, want *opt.Error", err)
	}

	if perr.Category != UnknownOption {
		t.Errorf("category = %v, want UnknownOption", perr.Category)
	}
}

func TestCommand_ReadContract(t *testing.T) {
	cmd, err := testCatalog(t).Parse([]string{"exe", "--help", "--file=a"})
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}

	if !cmd.IsSet("help") || !cmd.IsSet("file") {
		t.Error("IsSet missed a specified option")
	}

	if cmd.IsSet("base64") {
		t.Error("IsSet reported an unspecified option")
	}

	if cmd.HasValue("help") {
		t.Error("HasValue true for bare flag")
	}

	if !cmd.HasValue("file") {
		t.Error("HasValue false for resolved value")
	}

	if got := cmd.ValueOr("output", "fallback"); got != "fallback" {
		t.Errorf("ValueOr = %q, want fallback for unset option", got)
	}

	if got := cmd.ValueOr("file", "fallback"); got != "a" {
		t.Errorf("ValueOr = %q, want explicit value", got)
	}
}
