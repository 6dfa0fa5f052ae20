package cli

import (
	"bufio"
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rdr(s string) *bufio.Reader {
	return bufio.NewReader(strings.NewReader(s))
}

func TestGetSimpleText(t *testing.T) {
	var out bytes.Buffer
	got, err := GetSimpleText(rdr("  hello world \n"), "Name?", &out)
	require.NoError(t, err)
	assert.Equal(t, "hello world", got)
	assert.Equal(t, "Name?\n> ", out.String())
}

func TestGetSimpleText_EOF(t *testing.T) {
	var out bytes.Buffer
	got, err := GetSimpleText(rdr("lastline"), "Name?", &out)
	require.NoError(t, err)
	assert.Equal(t, "lastline", got)

	_, err = GetSimpleText(rdr(""), "Name?", &out)
	assert.Error(t, err)
}

func TestGetRawText_KeepsSpacing(t *testing.T) {
	var out bytes.Buffer
	got, err := GetRawText(rdr("  Hello \r\n"), "Email", &out)
	require.NoError(t, err)
	assert.Equal(t, "  Hello ", got)
	assert.Equal(t, "Email\n> ", out.String())

	got, err = GetRawText(rdr(" tail"), "Email", &out)
	require.NoError(t, err)
	assert.Equal(t, " tail", got)

	_, err = GetRawText(rdr(""), "Email", &out)
	assert.Error(t, err)
}

func TestGetPassword(t *testing.T) {
	old := readPassword
	t.Cleanup(func() { readPassword = old })

	readPassword = func(int) ([]byte, error) { return []byte("s3cret"), nil }
	var out bytes.Buffer
	pw, err := GetPassword(&out)
	require.NoError(t, err)
	assert.Equal(t, []byte("s3cret"), pw)

	readPassword = func(int) ([]byte, error) { return nil, errors.New("boom") }
	_, err = GetPassword(&out)
	assert.Error(t, err)
}

func TestGetYesNo(t *testing.T) {
	var out bytes.Buffer
	for in, want := range map[string]bool{"y\n": true, "YES\n": true, "n\n": false, "\n": false, "maybe\n": false} {
		got, err := GetYesNo(rdr(in), "Sure?", &out)
		require.NoError(t, err)
		assert.Equal(t, want, got, in)
	}
}

func TestGetChoice(t *testing.T) {
	opts := []string{"Student", "Faculty", "Other"}
	var out bytes.Buffer

	tests := map[string]int{
		"2\n":       1,
		"faculty\n": 1,
		"Other\n":   2,
		"0\n":       -1,
		"9\n":       -1,
		"\n":        -1,
		"alien\n":   -1,
	}
	for in, want := range tests {
		got, err := GetChoice(rdr(in), "Role?", opts, &out)
		require.NoError(t, err)
		assert.Equal(t, want, got, in)
	}
	assert.Contains(t, out.String(), "  1) Student")
}

func TestSplitList(t *testing.T) {
	assert.Equal(t, []string{"1", "research", "3"}, splitList(" 1, research  3,"))
	assert.Empty(t, splitList(" , "))
}
