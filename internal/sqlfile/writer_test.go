package sqlfile

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/lastings-labs/bankgen/internal/fixture"
)

func TestFormatValue(t *testing.T) {
	second := "Flat 2"
	cases := []struct {
		in   any
		want string
	}{
		{nil, "NULL"},
		{"hello", `"hello"`},
		{`say "hi"`, `"say \"hi\""`},
		{42, "42"},
		{3.5, "3.5"},
		{12.99, "12.99"},
		{true, "true"},
		{false, "false"},
		{(*string)(nil), "NULL"},
		{&second, `"Flat 2"`},
		{Raw("DATE_ADD(NOW(), INTERVAL 1 HOUR)"), "DATE_ADD(NOW(), INTERVAL 1 HOUR)"},
	}

	for _, c := range cases {
		if got := formatValue(c.in); got != c.want {
			t.Errorf("formatValue(%#v) = %q, expected %q", c.in, got, c.want)
		}
	}
}

func TestRenderSkipsEmptyTables(t *testing.T) {
	tables := []Table{
		{Name: "empty_table", Columns: []string{"a"}},
		{Name: "full_table", Columns: []string{"a"}, Rows: [][]any{{1}}},
	}

	out := string(Render(tables, "run-1", time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC)))
	if strings.Contains(out, "empty_table") {
		t.Errorf("Render emitted an INSERT for a table with no rows:\n%s", out)
	}
	if !strings.Contains(out, "INSERT INTO `full_table` (`a`) VALUES\n(1);\n") {
		t.Errorf("Render missing expected INSERT block:\n%s", out)
	}
}

func TestRenderHeaderAndRowLayout(t *testing.T) {
	tables := []Table{
		{
			Name:    "bank_information",
			Columns: []string{"bank_ID", "sort_code", "SWIFT"},
			Rows: [][]any{
				{1, "123456", "LSTNGS00"},
				{2, "654321", "LSTNGS01"},
			},
		},
	}

	out := string(Render(tables, "abc-123", time.Date(2024, 3, 15, 9, 30, 0, 0, time.UTC)))
	if !strings.HasPrefix(out, "-- bankgen run abc-123\n-- generated at 2024-03-15 09:30:00\n") {
		t.Errorf("Unexpected header:\n%s", out)
	}
	want := "INSERT INTO `bank_information` (`bank_ID`, `sort_code`, `SWIFT`) VALUES\n" +
		"(1, \"123456\", \"LSTNGS00\"),\n" +
		"(2, \"654321\", \"LSTNGS01\");\n"
	if !strings.Contains(out, want) {
		t.Errorf("Expected INSERT block:\n%s\ngot:\n%s", want, out)
	}
}

func TestStatementsEndAtLineBoundary(t *testing.T) {
	tables := []Table{
		{Name: "t", Columns: []string{"v"}, Rows: [][]any{{"a;b"}, {"c"}}},
	}

	out := string(Render(tables, "r", time.Now()))
	for _, line := range strings.Split(out, "\n") {
		if strings.Contains(line, ";") && !strings.HasSuffix(line, ";") && !strings.Contains(line, `"`) {
			t.Errorf("Bare semicolon mid-line outside a quoted value: %q", line)
		}
	}
	if !strings.Contains(out, `("a;b"),`) {
		t.Errorf("Quoted value with semicolon not rendered verbatim:\n%s", out)
	}
}

func TestTableNamesOrder(t *testing.T) {
	names := TableNames()
	if len(names) != 23 {
		t.Fatalf("Expected 23 tables, got %d", len(names))
	}
	if names[0] != "bank_information" {
		t.Errorf("Expected bank_information first, got %s", names[0])
	}
	if names[len(names)-1] != "account_loan" {
		t.Errorf("Expected account_loan last, got %s", names[len(names)-1])
	}

	index := make(map[string]int, len(names))
	for i, n := range names {
		index[n] = i
	}
	pairs := [][2]string{
		{"bank_information", "account"},
		{"client_details", "client_access"},
		{"client_details", "client_account"},
		{"account", "account_IBAN"},
		{"account", "account_balance"},
		{"card_details", "account_card"},
		{"card_details", "card_daily_limit"},
		{"bargain", "local_bargain"},
		{"bargain", "outgoing_bargain"},
		{"bargain", "incoming_bargain"},
		{"loan", "loan_payment"},
		{"loan", "account_loan"},
	}
	for _, pair := range pairs {
		if index[pair[0]] >= index[pair[1]] {
			t.Errorf("Table %s must be emitted before %s", pair[0], pair[1])
		}
	}
}

func TestTablesSchemaColumns(t *testing.T) {
	address2 := "Flat 9"
	ds := &fixture.Dataset{
		Clients: []fixture.Client{
			{Reference: "123456789abc", FullName: "Ann Price", BirthDate: "1980/1/2", Address: "High Street 4", Address2: &address2, RegionID: 1, Phone: "07700900123"},
			{Reference: "987654321xyz", FullName: "Bo Reed", BirthDate: "1975/11/30", Address: "Low Street 9", RegionID: 2, Phone: "0770090"},
		},
		Sessions: []fixture.ClientSession{
			{Reference: "123456789abc", IP: "10.0.0.1", SecretKeySalt: "s", SecretKeyHash: "h", TokenSalt: "ts", TokenHash: "th"},
		},
	}

	out := string(Render(Tables(ds), "r", time.Now()))
	if !strings.Contains(out, "(`reference_number`, `full_name`, `birth_date`, `adress`, `adress_2`, `regional_information_ID`, `telephone_number`)") {
		t.Errorf("client_details column list does not match schema:\n%s", out)
	}
	if !strings.Contains(out, `"Flat 9"`) {
		t.Errorf("Populated adress_2 not rendered:\n%s", out)
	}
	if !strings.Contains(out, `"Low Street 9", NULL,`) {
		t.Errorf("Empty adress_2 should render as NULL:\n%s", out)
	}
	if !strings.Contains(out, "DATE_ADD(NOW(), INTERVAL 1 HOUR))") {
		t.Errorf("Session expiry should be a raw SQL expression:\n%s", out)
	}
}

func TestWriteFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.sql")
	tables := []Table{{Name: "t", Columns: []string{"a"}, Rows: [][]any{{1}}}}

	if err := WriteFile(path, tables, "r", time.Now()); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read written file: %v", err)
	}
	if !strings.Contains(string(data), "INSERT INTO `t`") {
		t.Errorf("Written file missing INSERT statement:\n%s", data)
	}
}
