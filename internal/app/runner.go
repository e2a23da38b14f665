// Package app provides the read-validate-output loop for the order
// validation CLI.
package app

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/google/uuid"

	"order-validator/internal/domain"
	"order-validator/internal/engine"
	"order-validator/internal/report"
)

// Runner handles the main read-validate-output loop. Each input line is one
// JSON order payload; each output line is one JSON response.
type Runner struct {
	machine *engine.Machine
	reader  *bufio.Scanner
	writer  io.Writer
	pretty  bool
}

// NewRunner creates a new application runner.
func NewRunner(machine *engine.Machine, input io.Reader, output io.Writer, pretty bool) *Runner {
	return &Runner{
		machine: machine,
		reader:  bufio.NewScanner(input),
		writer:  output,
		pretty:  pretty,
	}
}

// Run validates payloads one line at a time until EXIT is received or EOF
// is reached. Lines that are not valid JSON produce an ERROR line and the
// loop continues; every decodable payload produces a response, approved or
// rejected.
func (r *Runner) Run() error {
	for r.reader.Scan() {
		line := strings.TrimSpace(r.reader.Text())

		if line == "" {
			continue
		}
		if line == "EXIT" {
			return nil
		}

		payload, err := decodeLine(line)
		if err != nil {
			fmt.Fprintf(r.writer, "ERROR %s\n", err)
			continue
		}

		if err := r.write(r.machine.Validate(payload)); err != nil {
			return err
		}
	}

	if err := r.reader.Err(); err != nil {
		return fmt.Errorf("error reading input: %w", err)
	}
	return nil
}

// RunBatch reads every payload line up front and validates them
// concurrently, printing responses in input order.
func (r *Runner) RunBatch(ctx context.Context, limit int) error {
	var payloads []map[string]any
	for r.reader.Scan() {
		line := strings.TrimSpace(r.reader.Text())

		if line == "" {
			continue
		}
		if line == "EXIT" {
			break
		}

		payload, err := decodeLine(line)
		if err != nil {
			fmt.Fprintf(r.writer, "ERROR %s\n", err)
			continue
		}
		payloads = append(payloads, payload)
	}
	if err := r.reader.Err(); err != nil {
		return fmt.Errorf("error reading input: %w", err)
	}

	results, err := r.machine.ValidateBatch(ctx, payloads, limit)
	if err != nil {
		return err
	}
	for _, res := range results {
		if err := r.write(res); err != nil {
			return err
		}
	}
	return nil
}

// decodeLine parses a JSON payload line and assigns an order ID when the
// payload does not carry one, so every response stays addressable.
func decodeLine(line string) (map[string]any, error) {
	var payload map[string]any
	if err := json.Unmarshal([]byte(line), &payload); err != nil {
		return nil, fmt.Errorf("invalid JSON payload: %w", err)
	}
	if id, _ := payload["order_id"].(string); id == "" {
		payload["order_id"] = uuid.NewString()
	}
	return payload, nil
}

// write encodes one result as a response line.
func (r *Runner) write(res domain.ValidationResult) error {
	resp := report.FromResult(res)

	var (
		data []byte
		err  error
	)
	if r.pretty {
		data, err = json.MarshalIndent(resp, "", "  ")
	} else {
		data, err = json.Marshal(resp)
	}
	if err != nil {
		return fmt.Errorf("encode response: %w", err)
	}

	_, err = fmt.Fprintln(r.writer, string(data))
	return err
}
