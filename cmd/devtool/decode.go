package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/osse101/HabitInventory_Go/internal/payload"
)

// DecodeCommand decodes a raw inventory payload and prints the typed result
type DecodeCommand struct {
	out io.Writer
}

type decodeOutput struct {
	Items        any                   `json:"items"`
	Degradations []payload.Degradation `json:"degradations"`
}

func (c *DecodeCommand) Name() string {
	return "decode"
}

func (c *DecodeCommand) Description() string {
	return "Decode an inventory payload file (or - for stdin) and report degraded fields"
}

func (c *DecodeCommand) Run(args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("payload file required (use - for stdin)")
	}

	var (
		data []byte
		err  error
	)
	if args[0] == "-" {
		data, err = io.ReadAll(os.Stdin)
	} else {
		data, err = os.ReadFile(args[0])
	}
	if err != nil {
		return err
	}

	items, report, err := payload.NewDecoder().Decode(data)
	if err != nil {
		return err
	}

	enc := json.NewEncoder(c.out)
	enc.SetIndent("", "  ")
	return enc.Encode(decodeOutput{Items: items, Degradations: report.Degradations})
}
