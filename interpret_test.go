package pseudocod

import (
	"bytes"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func interpretFixture(t *testing.T, name, stdin string) string {
	t.Helper()
	src, err := os.ReadFile("testdata/" + name)
	assert.NoError(t, err)
	var out bytes.Buffer
	err = Interpret(strings.NewReader(stdin), &out, string(src))
	assert.NoError(t, err)
	return out.String()
}

// TestInterpret_Fixtures exercises one fixture file per scenario in
// the language's testable-properties suite, checking the exact stdout
// each one produces for given stdin.
func TestInterpret_Fixtures(t *testing.T) {
	cases := []struct {
		name  string
		stdin string
		want  string
	}{
		{"reads.pseudo", "3\n4\n5\n6\n7\n", "7\n18\n"},
		{"writes.pseudo", "", "suma este 3\nprodusul este 12\n"},
		{"if1.pseudo", "5\n", "pozitiv\n"},
		{"if1.pseudo", "-5\n", ""},
		{"if2.pseudo", "5\n", "pozitiv\n"},
		{"if2.pseudo", "-5\n", "negativ sau zero\n"},
		{"if3.pseudo", "20\n", "mare\n"},
		{"if3.pseudo", "5\n", "mic\n"},
		{"if3.pseudo", "-1\n", "negativ sau zero\n"},
		{"while.pseudo", "", "0\n1\n2\n3\n4\n"},
		{"do_while.pseudo", "", "0\n1\n2\n3\n4\n"},
		{"repeat.pseudo", "", "0\n1\n2\n3\n4\n"},
		{"for.pseudo", "", "1\n2\n3\n4\n5\n"},
		{"fibonacci.pseudo", "7\n", "0\n1\n1\n2\n3\n5\n8\n"},
	}

	for _, c := range cases {
		got := interpretFixture(t, c.name, c.stdin)
		assert.Equal(t, c.want, got, "fixture %s with stdin %q", c.name, c.stdin)
	}
}

func TestInterpret_ParseErrorIsReturned(t *testing.T) {
	var out bytes.Buffer
	err := Interpret(strings.NewReader(""), &out, "daca atunci")
	assert.Error(t, err)
}

func TestInterpret_RuntimeErrorIsReturned(t *testing.T) {
	var out bytes.Buffer
	err := Interpret(strings.NewReader(""), &out, "scrie 1 / 0")
	assert.Error(t, err)
}
