// Command calccli evaluates a single calculator request from a JSON document
// on disk or stdin. The evaluators are the same pure functions the HTTP
// handlers call, so results match the portal exactly.
//
// Usage:
//
//	calccli -f request.json
//	echo '{"kind":"voltdrop","input":{...}}' | calccli
//	calccli -list
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"

	"Conduit/internal/calc/registry"
)

type request struct {
	Kind  registry.Kind   `json:"kind"`
	Input json.RawMessage `json:"input"`
}

func main() {
	file := flag.String("f", "", "request file (defaults to stdin)")
	list := flag.Bool("list", false, "list calculator kinds and exit")
	flag.Parse()

	if *list {
		for _, k := range registry.Kinds() {
			fmt.Println(k)
		}
		return
	}

	var data []byte
	var err error
	if *file != "" {
		data, err = os.ReadFile(*file)
	} else {
		data, err = io.ReadAll(os.Stdin)
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, "read request:", err)
		os.Exit(1)
	}

	var req request
	if err := json.Unmarshal(data, &req); err != nil {
		fmt.Fprintln(os.Stderr, "decode request:", err)
		os.Exit(1)
	}

	res, err := registry.Evaluate(req.Kind, req.Input)
	if err != nil {
		fmt.Fprintln(os.Stderr, "calculation error:", err)
		os.Exit(1)
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(res); err != nil {
		fmt.Fprintln(os.Stderr, "encode result:", err)
		os.Exit(1)
	}
}
