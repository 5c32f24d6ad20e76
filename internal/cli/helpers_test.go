package cli

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/require"

	"github.com/aaronsmc/office-wishlist-agent/internal/schedule"
	"github.com/aaronsmc/office-wishlist-agent/internal/session"
	"github.com/aaronsmc/office-wishlist-agent/internal/store"
)

func newTestService(t *testing.T) *session.Service {
	t.Helper()
	return session.New(store.NewMemoryStore(), session.Options{})
}

// bindOutput points cmd at a fresh buffer and the given stdin.
func bindOutput(cmd *cobra.Command, stdin string) *bytes.Buffer {
	out := new(bytes.Buffer)
	cmd.SetOut(out)
	cmd.SetErr(out)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetContext(context.Background())
	return out
}

func calendarOf(t *testing.T, svc *session.Service, ref string) schedule.Calendar {
	t.Helper()
	_, cal, err := svc.Calendar(context.Background(), ref)
	require.NoError(t, err)
	return cal
}

func alwaysNo() ConfirmFunc {
	return func(string) (bool, error) { return false, nil }
}
