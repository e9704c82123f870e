package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/Gunvolt24/cinema_tickets/pkg/validate"
)

// CLI: пакетная проверка заявок на покупку без оплаты и резерва.
// Для валидных заявок печатает рассчитанный заказ (JSON-строка), итог — в stderr.
func main() {
	os.Exit(run(context.Background(), os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("validate-purchases", flag.ContinueOnError)
	fs.SetOutput(stderr)
	inputPath := fs.String("in", "", "path to input (.json or .jsonl). If empty, reads JSONL from stdin.")
	formatStr := fs.String("format", "auto", "input format: auto|json|jsonl")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	validator := validate.NewPurchaseValidator()
	format := validate.InputFormat(*formatStr)

	var (
		summary string
		err     error
	)
	if *inputPath == "" {
		if format == validate.FormatAuto {
			format = validate.FormatJSONL
		}
		summary, err = validate.ValidateReader(ctx, validator, stdin, format, stdout)
	} else {
		summary, err = validate.ValidateFile(ctx, validator, *inputPath, format, stdout)
	}

	if err != nil {
		// при ошибке чтения или формата итога нет
		if summary != "" {
			fmt.Fprintf(stderr, "validation: %v (%s)\n", err, summary)
		} else {
			fmt.Fprintf(stderr, "validation: %v\n", err)
		}
		return 1
	}
	fmt.Fprintf(stderr, "validation ok (%s)\n", summary)
	return 0
}
