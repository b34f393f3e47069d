package loader

import (
	"strings"
	"testing"
)

func TestSplitStatements(t *testing.T) {
	content := "-- bankgen run abc\n" +
		"-- generated at 2024-03-15 12:00:00\n\n" +
		"INSERT INTO `bank_information` (`bank_ID`) VALUES\n(1),\n(2);\n\n" +
		"INSERT INTO `account` (`account_number`) VALUES\n(1);\n"

	statements := splitStatements(content)
	if len(statements) != 2 {
		t.Fatalf("Expected 2 statements, got %d: %v", len(statements), statements)
	}
	if !strings.HasPrefix(statements[0], "INSERT INTO `bank_information`") {
		t.Errorf("First statement unexpected: %q", statements[0])
	}
	if !strings.HasPrefix(statements[1], "INSERT INTO `account`") {
		t.Errorf("Second statement unexpected: %q", statements[1])
	}
	for i, s := range statements {
		if strings.Contains(s, "--") {
			t.Errorf("Statement %d still contains a comment line: %q", i+1, s)
		}
	}
}

func TestSplitStatementsKeepsQuotedSemicolons(t *testing.T) {
	content := "INSERT INTO `client_access` (`password_salt`) VALUES\n(\"ab;cd;ef\");\n"

	statements := splitStatements(content)
	if len(statements) != 1 {
		t.Fatalf("Expected 1 statement, got %d: %v", len(statements), statements)
	}
	if !strings.Contains(statements[0], `"ab;cd;ef"`) {
		t.Errorf("Quoted semicolons were mangled: %q", statements[0])
	}
}

func TestSplitStatementsHandlesCRLF(t *testing.T) {
	content := "INSERT INTO `t` (`a`) VALUES\r\n(1);\r\nINSERT INTO `t` (`a`) VALUES\r\n(2);\r\n"

	statements := splitStatements(content)
	if len(statements) != 2 {
		t.Fatalf("Expected 2 statements, got %d: %v", len(statements), statements)
	}
}

func TestSplitStatementsEmptyInput(t *testing.T) {
	if got := splitStatements(""); len(got) != 0 {
		t.Errorf("Expected no statements for empty input, got %v", got)
	}
	if got := splitStatements("-- only a comment\n"); len(got) != 0 {
		t.Errorf("Expected no statements for comment-only input, got %v", got)
	}
}

func TestStripLineComments(t *testing.T) {
	in := "-- header\nINSERT INTO `t` (`a`) VALUES\n  -- indented comment\n(1)"
	got := stripLineComments(in)
	if strings.Contains(got, "comment") || strings.Contains(got, "header") {
		t.Errorf("Comments not stripped: %q", got)
	}
	if !strings.Contains(got, "INSERT INTO `t`") || !strings.Contains(got, "(1)") {
		t.Errorf("SQL lines were dropped: %q", got)
	}
}
