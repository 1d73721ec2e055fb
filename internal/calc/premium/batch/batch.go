package batch

import (
	"encoding/json"
	"fmt"

	"Conduit/internal/calc/registry"
)

type Item struct {
	Kind  registry.Kind   `json:"kind"`
	Input json.RawMessage `json:"input"`
}

type Input struct {
	Items []Item `json:"items"`
}

type ItemResult struct {
	Kind   registry.Kind `json:"kind"`
	Result any           `json:"result"`
}

type Result struct {
	Results []ItemResult `json:"results"`
}

// Calculate evaluates every item through the registry. The first failing
// item aborts the batch.
func Calculate(in Input) (Result, error) {
	if len(in.Items) == 0 {
		return Result{}, fmt.Errorf("no items")
	}
	out := Result{Results: make([]ItemResult, 0, len(in.Items))}
	for i, item := range in.Items {
		res, err := registry.Evaluate(item.Kind, item.Input)
		if err != nil {
			return Result{}, fmt.Errorf("item %d (%s): %w", i, item.Kind, err)
		}
		out.Results = append(out.Results, ItemResult{Kind: item.Kind, Result: res})
	}
	return out, nil
}
