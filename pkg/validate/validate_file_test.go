package validate

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestValidateFile_JSON_Auto_OK(t *testing.T) {
	ctx := context.Background()
	validator := NewPurchaseValidator()

	dir := t.TempDir()
	path := filepath.Join(dir, "one.json")
	if err := os.WriteFile(path, []byte(purchaseJSON(1, "ADULT", 3)), 0o600); err != nil {
		t.Fatalf("write file: %v", err)
	}

	var out bytes.Buffer
	summary, err := ValidateFile(ctx, validator, path, FormatAuto, &out)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if summary != "1 valid / 0 invalid" {
		t.Fatalf("unexpected summary: %s", summary)
	}
	if !strings.Contains(out.String(), `"total_amount":75`) {
		t.Fatalf("unexpected output: %s", out.String())
	}
}

func TestValidateFile_JSONL_Auto_Mixed(t *testing.T) {
	ctx := context.Background()
	validator := NewPurchaseValidator()

	dir := t.TempDir()
	path := filepath.Join(dir, "list.jsonl")
	content := purchaseJSON(1, "ADULT", 1) + "\n" +
		purchaseJSON(2, "INFANT", 1) + "\n" + // младенец без взрослого
		purchaseJSON(3, "ADULT", 25) + "\n"
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write file: %v", err)
	}

	var out bytes.Buffer
	summary, err := ValidateFile(ctx, validator, path, FormatAuto, &out)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if summary != "2 valid / 1 invalid" {
		t.Fatalf("unexpected summary: %s", summary)
	}
	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 output lines, got %d", len(lines))
	}
}

func TestValidateFile_JSON_Invalid(t *testing.T) {
	ctx := context.Background()
	validator := NewPurchaseValidator()

	dir := t.TempDir()
	path := filepath.Join(dir, "bad.json")
	if err := os.WriteFile(path, []byte(purchaseJSON(1, "ADULT", 26)), 0o600); err != nil {
		t.Fatalf("write file: %v", err)
	}

	var out bytes.Buffer
	summary, err := ValidateFile(ctx, validator, path, FormatJSON, &out)
	if err == nil {
		t.Fatalf("expected error for invalid purchase")
	}
	if summary != "0 valid / 1 invalid" {
		t.Fatalf("unexpected summary: %s", summary)
	}
	if out.String() != "" {
		t.Fatalf("output must be empty for invalid single JSON")
	}
}

func TestValidateFile_ExplicitFormat_IgnoresExt(t *testing.T) {
	ctx := context.Background()
	validator := NewPurchaseValidator()

	dir := t.TempDir()
	path := filepath.Join(dir, "data.txt")
	if err := os.WriteFile(path, []byte(purchaseJSON(1, "ADULT", 1)+"\n"), 0o600); err != nil {
		t.Fatalf("write file: %v", err)
	}

	var out bytes.Buffer
	summary, err := ValidateFile(ctx, validator, path, FormatJSONL, &out)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if summary != "1 valid / 0 invalid" {
		t.Fatalf("unexpected summary: %s", summary)
	}
}

func TestValidateFile_OpenError(t *testing.T) {
	var out bytes.Buffer
	_, err := ValidateFile(context.Background(), NewPurchaseValidator(), "no-such-file.json", FormatAuto, &out)
	if err == nil {
		t.Fatalf("expected open error")
	}
}

func TestValidateReader_UnsupportedFormat(t *testing.T) {
	var out bytes.Buffer
	_, err := ValidateReader(context.Background(), NewPurchaseValidator(), strings.NewReader("{}"), InputFormat("yaml"), &out)
	if err == nil || !strings.Contains(err.Error(), "unsupported format") {
		t.Fatalf("expected unsupported format error, got: %v", err)
	}
}

func TestResolveFormat(t *testing.T) {
	if got := ResolveFormat("a.JSONL", FormatAuto); got != FormatJSONL {
		t.Fatalf("want jsonl, got %s", got)
	}
	if got := ResolveFormat("a.txt", FormatAuto); got != FormatJSON {
		t.Fatalf("want json, got %s", got)
	}
	if got := ResolveFormat("a.json", FormatJSONL); got != FormatJSONL {
		t.Fatalf("explicit format must win, got %s", got)
	}
}
