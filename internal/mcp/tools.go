package mcp

import (
	"context"
	"fmt"
	"sort"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/promptdir/pd/internal/hydrate"
	"github.com/promptdir/pd/internal/store"
)

// --- List tool ---

// ListInput is the input for the list tool (no parameters needed).
type ListInput struct{}

// ListOutput is the output for the list tool.
type ListOutput struct {
	User  string   `json:"user"  jsonschema:"acting identity (your branch name)"`
	Items []string `json:"items" jsonschema:"item names, own items first then owner/name entries"`
}

func handleList(st *store.Store) mcp.ToolHandlerFor[ListInput, ListOutput] {
	return func(_ context.Context, _ *mcp.CallToolRequest, _ ListInput) (*mcp.CallToolResult, ListOutput, error) {
		items, err := st.List()
		if err != nil {
			return nil, ListOutput{}, fmt.Errorf("listing items: %w", err)
		}
		return nil, ListOutput{User: st.User(), Items: items}, nil
	}
}

// --- Read tool ---

// ReadInput is the input for the read tool.
type ReadInput struct {
	Address string `json:"address" jsonschema:"item address as [owner/]name"`
}

// ReadOutput is the output for the read tool.
type ReadOutput struct {
	Address string `json:"address" jsonschema:"fully qualified owner/name address"`
	Content string `json:"content" jsonschema:"raw item content"`
}

func handleRead(st *store.Store) mcp.ToolHandlerFor[ReadInput, ReadOutput] {
	return func(_ context.Context, _ *mcp.CallToolRequest, input ReadInput) (*mcp.CallToolResult, ReadOutput, error) {
		content, err := st.Read(input.Address)
		if err != nil {
			return nil, ReadOutput{}, err
		}
		a, err := store.ParseAddress(input.Address, st.User())
		if err != nil {
			return nil, ReadOutput{}, err
		}
		return nil, ReadOutput{Address: a.String(), Content: content}, nil
	}
}

// --- Search tool ---

// SearchInput is the input for the search tool.
type SearchInput struct {
	Query string `json:"query" jsonschema:"literal case-sensitive substring to search for"`
}

// SearchOutput is the output for the search tool.
type SearchOutput struct {
	Count   int           `json:"count"             jsonschema:"number of matching lines"`
	Matches []store.Match `json:"matches,omitempty" jsonschema:"matching lines with address and line number"`
}

func handleSearch(st *store.Store) mcp.ToolHandlerFor[SearchInput, SearchOutput] {
	return func(_ context.Context, _ *mcp.CallToolRequest, input SearchInput) (*mcp.CallToolResult, SearchOutput, error) {
		matches := st.Search(input.Query)
		return nil, SearchOutput{Count: len(matches), Matches: matches}, nil
	}
}

// --- Hydrate tool ---

// HydrateInput is the input for the hydrate tool.
type HydrateInput struct {
	Address string            `json:"address"          jsonschema:"template address as [owner/]name"`
	Args    map[string]string `json:"args,omitempty"   jsonschema:"placeholder name to value mapping"`
	Suffix  string            `json:"suffix,omitempty" jsonschema:"optional text appended after the hydrated body"`
}

// HydrateOutput is the output for the hydrate tool.
type HydrateOutput struct {
	Prompt string `json:"prompt" jsonschema:"the fully hydrated prompt text"`
}

func handleHydrate(st *store.Store) mcp.ToolHandlerFor[HydrateInput, HydrateOutput] {
	return func(_ context.Context, _ *mcp.CallToolRequest, input HydrateInput) (*mcp.CallToolResult, HydrateOutput, error) {
		// JSON objects carry no ordering, so extras append in key order.
		keys := make([]string, 0, len(input.Args))
		for k := range input.Args {
			keys = append(keys, k)
		}
		sort.Strings(keys)

		args := make(hydrate.Args, 0, len(keys))
		for _, k := range keys {
			args = append(args, hydrate.Arg{Key: k, Value: input.Args[k]})
		}

		prompt, err := st.Hydrate(input.Address, args, input.Suffix)
		if err != nil {
			return nil, HydrateOutput{}, err
		}
		return nil, HydrateOutput{Prompt: prompt}, nil
	}
}

// --- Write tool ---

// WriteInput is the input for the write tool.
type WriteInput struct {
	Address string `json:"address" jsonschema:"item address as [owner/]name; owner must be you"`
	Content string `json:"content" jsonschema:"item content to write"`
}

// WriteOutput is the output for the write tool.
type WriteOutput struct {
	Address string `json:"address" jsonschema:"fully qualified address that was written"`
}

func handleWrite(st *store.Store) mcp.ToolHandlerFor[WriteInput, WriteOutput] {
	return func(_ context.Context, _ *mcp.CallToolRequest, input WriteInput) (*mcp.CallToolResult, WriteOutput, error) {
		if err := st.Write(input.Address, input.Content); err != nil {
			return nil, WriteOutput{}, err
		}
		a, err := store.ParseAddress(input.Address, st.User())
		if err != nil {
			return nil, WriteOutput{}, err
		}
		return nil, WriteOutput{Address: a.String()}, nil
	}
}

// --- Fork tool ---

// ForkInput is the input for the fork tool.
type ForkInput struct {
	Address string `json:"address" jsonschema:"source item address as owner/name"`
}

// ForkOutput is the output for the fork tool.
type ForkOutput struct {
	Source string `json:"source" jsonschema:"source address"`
	Target string `json:"target" jsonschema:"new address in your branch"`
}

func handleFork(st *store.Store) mcp.ToolHandlerFor[ForkInput, ForkOutput] {
	return func(_ context.Context, _ *mcp.CallToolRequest, input ForkInput) (*mcp.CallToolResult, ForkOutput, error) {
		target, err := st.Fork(input.Address, "")
		if err != nil {
			return nil, ForkOutput{}, err
		}
		return nil, ForkOutput{Source: input.Address, Target: target.String()}, nil
	}
}
