// Package stock provides the types and functions to run the stock book of a
// small electronics shop. It is designed to be local-first and auditable: the
// state is two plain JSONL collections that can be read, diffed and versioned.
//
// The core functionalities include:
//   - Catalog Management: the set of distinct stocked items. An item is
//     identified by its company, category, model name (case-insensitive) and
//     specifications. Describing an arrival that matches an existing item
//     merges into it instead of creating a duplicate.
//   - Ledger: an append-only record of every stock movement (IN when stock is
//     received, OUT when it is sold). A stock change never happens without its
//     ledger entry, and removing an item never rewrites its history.
//   - Aggregations: stateless functions that derive totals, low stock alerts
//     and per-category rollups from a catalog snapshot.
//   - Specification Schema: a declarative table describing, per category,
//     which attribute distinguishes variants and its suggested values.
//   - Persistence and Advisory ports: the Inventory saves through a key-value
//     Store and asks an optional Advisor for insights, always falling back to
//     a fixed message when the advisor cannot answer.
//
// This package serves as the foundational logic for the `stk` command-line
// tool.
package stock
