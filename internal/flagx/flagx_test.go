package flagx

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFilterArgs_SeparateFlagAndValue(t *testing.T) {
	args := []string{"-d", "test.db", "-x", "noise", "-k", "secret"}
	got := FilterArgs(args, []string{"-d", "-k"})
	assert.Equal(t, []string{"-d", "test.db", "-k", "secret"}, got)
}

func TestFilterArgs_EqualsForm(t *testing.T) {
	args := []string{"--config=conf.json", "--other=skip"}
	got := FilterArgs(args, []string{"--config"})
	assert.Equal(t, []string{"--config=conf.json"}, got)
}

func TestFilterArgs_FlagWithoutValue(t *testing.T) {
	// The next token is another flag, so it is not consumed as a value.
	args := []string{"-d", "-k", "secret"}
	got := FilterArgs(args, []string{"-d"})
	assert.Equal(t, []string{"-d"}, got)
}

func TestFilterArgs_NothingAllowed(t *testing.T) {
	got := FilterArgs([]string{"-a", "1", "-b", "2"}, nil)
	assert.Empty(t, got)
}

func TestJsonConfigFlags_ShortForm(t *testing.T) {
	restore := os.Args
	defer func() { os.Args = restore }()

	os.Args = []string{"cinetrack", "-c", "conf.json"}
	assert.Equal(t, "conf.json", JsonConfigFlags())
}

func TestJsonConfigFlags_LongForm(t *testing.T) {
	restore := os.Args
	defer func() { os.Args = restore }()

	os.Args = []string{"cinetrack", "--config=other.json"}
	assert.Equal(t, "other.json", JsonConfigFlags())
}

func TestJsonConfigFlags_Absent(t *testing.T) {
	restore := os.Args
	defer func() { os.Args = restore }()

	os.Args = []string{"cinetrack", "-d", "test.db"}
	assert.Equal(t, "", JsonConfigFlags())
}
