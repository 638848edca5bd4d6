package cli

import (
	"testing"
)

func TestRootCmd_Subcommands(t *testing.T) {
	want := []string{"classify", "copy", "delete", "list", "read", "write"}
	for _, name := range want {
		found := false
		for _, sub := range rootCmd.Commands() {
			if sub.Name() == name {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("root command is missing subcommand %q", name)
		}
	}
}

func TestClassifyCmd_ArgsValidation(t *testing.T) {
	if err := classifyCmd.Args(classifyCmd, []string{}); err == nil {
		t.Error("expected error for missing args")
	}
	if err := classifyCmd.Args(classifyCmd, []string{"a", "b"}); err == nil {
		t.Error("expected error for too many args")
	}
	if err := classifyCmd.Args(classifyCmd, []string{"a"}); err != nil {
		t.Errorf("expected nil for one arg, got: %v", err)
	}
}

func TestCopyCmd_ArgsValidation(t *testing.T) {
	if err := copyCmd.Args(copyCmd, []string{"src"}); err == nil {
		t.Error("expected error for missing destination")
	}
	if err := copyCmd.Args(copyCmd, []string{"src", "dst"}); err != nil {
		t.Errorf("expected nil for two args, got: %v", err)
	}
}

func TestDeleteCmd_ArgsValidation(t *testing.T) {
	if err := deleteCmd.Args(deleteCmd, []string{}); err == nil {
		t.Error("expected error for missing args")
	}
	if err := deleteCmd.Args(deleteCmd, []string{"a", "b", "c"}); err != nil {
		t.Errorf("expected nil for multiple paths, got: %v", err)
	}
}

func TestWriteCmd_ArgsValidation(t *testing.T) {
	if err := writeCmd.Args(writeCmd, []string{}); err == nil {
		t.Error("expected error for missing args")
	}
	if err := writeCmd.Args(writeCmd, []string{"file"}); err != nil {
		t.Errorf("expected nil for one arg (content from stdin), got: %v", err)
	}
	if err := writeCmd.Args(writeCmd, []string{"file", "content"}); err != nil {
		t.Errorf("expected nil for two args, got: %v", err)
	}
}
