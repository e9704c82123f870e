package validate

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/Gunvolt24/cinema_tickets/internal/ports"
)

// InputFormat допустимые значения.
type InputFormat string

const (
	FormatAuto  InputFormat = "auto"
	FormatJSON  InputFormat = "json"
	FormatJSONL InputFormat = "jsonl"
)

// ResolveFormat — для auto выбирает формат по расширению файла (по умолчанию JSON).
func ResolveFormat(filePath string, format InputFormat) InputFormat {
	if format != FormatAuto {
		return format
	}
	if strings.EqualFold(filepath.Ext(filePath), ".jsonl") {
		return FormatJSONL
	}
	return FormatJSON
}

// ValidateFile — валидирует файл с заявками (JSON или JSONL) и пишет рассчитанные заказы в writer.
func ValidateFile(ctx context.Context, validator ports.PurchaseValidator, filePath string, format InputFormat, ow io.Writer) (string, error) {
	format = ResolveFormat(filePath, format)

	file, err := os.Open(filePath)
	if err != nil {
		return "", fmt.Errorf("open file: %w", err)
	}
	defer file.Close()

	return ValidateReader(ctx, validator, file, format, ow)
}

// ValidateReader — то же, что ValidateFile, но для произвольного источника (stdin).
func ValidateReader(ctx context.Context, validator ports.PurchaseValidator, ir io.Reader, format InputFormat, ow io.Writer) (string, error) {
	switch format {
	case FormatJSON:
		raw, err := io.ReadAll(ir)
		if err != nil {
			return "", fmt.Errorf("read input: %w", err)
		}
		order, err := ValidatePurchaseFromJSON(ctx, validator, raw)
		if err != nil {
			return "0 valid / 1 invalid", err
		}
		canonical, _ := json.Marshal(order)
		if _, err := ow.Write(append(canonical, '\n')); err != nil {
			return "", fmt.Errorf("write json: %w", err)
		}
		return "1 valid / 0 invalid", nil

	case FormatJSONL:
		result, err := ValidateJSONLStream(ctx, validator, ir, ow)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("%d valid / %d invalid", result.ValidLinesCount, result.InvalidLinesCount), nil

	default:
		return "", fmt.Errorf("unsupported format: %s", format)
	}
}
