package validate

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/Gunvolt24/cinema_tickets/internal/domain"
	"github.com/Gunvolt24/cinema_tickets/internal/ports"
)

// JSONLResult — статистика валидации потока JSONL.
type JSONLResult struct {
	ValidLinesCount   int
	InvalidLinesCount int
	// Rejections — сколько строк отклонено по каждой причине.
	Rejections map[domain.Reason]int
}

// ValidateJSONLStream — читает JSONL из reader’а, валидирует каждую заявку,
// для валидных пишет в writer рассчитанный PurchaseOrder одной строкой.
// Пустые строки пропускаются.
func ValidateJSONLStream(ctx context.Context, validator ports.PurchaseValidator, ir io.Reader, ow io.Writer) (JSONLResult, error) {
	res := JSONLResult{Rejections: make(map[domain.Reason]int)}

	scanner := bufio.NewScanner(ir)
	buf := make([]byte, 0, 64*1024)
	scanner.Buffer(buf, 1024*1024)

	for scanner.Scan() {
		lineBytes := scanner.Bytes()
		if len(strings.TrimSpace(string(lineBytes))) == 0 {
			continue
		}

		order, err := ValidatePurchaseFromJSON(ctx, validator, lineBytes)
		if err != nil {
			res.InvalidLinesCount++
			if reason, ok := domain.ReasonOf(err); ok {
				res.Rejections[reason]++
			}
			// невалидная строка не прерывает поток
			continue
		}

		marshal, _ := json.Marshal(order)
		if _, err := ow.Write(marshal); err != nil {
			return res, fmt.Errorf("write valid line: %w", err)
		}
		if _, err := ow.Write([]byte("\n")); err != nil {
			return res, fmt.Errorf("write newline: %w", err)
		}
		res.ValidLinesCount++
	}
	if err := scanner.Err(); err != nil {
		return res, fmt.Errorf("scan: %w", err)
	}
	return res, nil
}
