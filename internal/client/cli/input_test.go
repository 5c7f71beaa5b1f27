package cli

import (
	"bufio"
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func rdr(s string) *bufio.Reader {
	return bufio.NewReader(strings.NewReader(s))
}

func TestGetSimpleText(t *testing.T) {
	var out bytes.Buffer
	got, err := GetSimpleText(rdr("hello world\n"), "Name?", &out)
	if err != nil || got != "hello world" {
		t.Fatalf("got %q, err=%v", got, err)
	}
}

func TestGetSimpleTextEOF(t *testing.T) {
	var out bytes.Buffer
	got, err := GetSimpleText(rdr("lastline"), "Name?", &out)
	if err != nil || got != "lastline" {
		t.Fatalf("got %q, err=%v", got, err)
	}
}

func TestGetPassword_Error(t *testing.T) {
	old := readPassword
	defer func() { readPassword = old }()
	readPassword = func(int) ([]byte, error) {
		return nil, errors.New("boom")
	}
	var out bytes.Buffer
	_, err := GetPassword(&out)
	if err == nil {
		t.Fatal("expected error")
	}
}

func TestGetChoice(t *testing.T) {
	opts := []string{"low", "medium", "high"}

	t.Run("valid choice", func(t *testing.T) {
		var out bytes.Buffer
		got, err := GetChoice(rdr("high\n"), "Severity", opts, "medium", &out)
		require.NoError(t, err)
		require.Equal(t, "high", got)
	})

	t.Run("blank selects default", func(t *testing.T) {
		var out bytes.Buffer
		got, err := GetChoice(rdr("\n"), "Severity", opts, "medium", &out)
		require.NoError(t, err)
		require.Equal(t, "medium", got)
	})

	t.Run("invalid input is re-prompted", func(t *testing.T) {
		var out bytes.Buffer
		got, err := GetChoice(rdr("extreme\nlow\n"), "Severity", opts, "medium", &out)
		require.NoError(t, err)
		require.Equal(t, "low", got)
		require.Contains(t, out.String(), "Please choose one of")
	})
}
