package cli

import (
	"bytes"
	"io"
	"testing"
)

func mustExecute(t *testing.T, args []string) string {
	cli := New("test-version")

	var out bytes.Buffer
	cli.rootCmd.SetOut(&out)
	cli.rootCmd.SetErr(io.Discard)

	cli.rootCmd.SetArgs(args)

	if err := cli.rootCmd.Execute(); err != nil {
		t.Fatalf("failed to execute %v: %v", args, err)
	}

	return out.String()
}

func mustFail(t *testing.T, args []string) error {
	cli := New("test-version")

	cli.rootCmd.SetOut(io.Discard)
	cli.rootCmd.SetErr(io.Discard)

	cli.rootCmd.SetArgs(args)

	err := cli.rootCmd.Execute()
	if err == nil {
		t.Fatalf("expected %v to fail", args)
	}

	return err
}
