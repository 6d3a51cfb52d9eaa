// Package traduki provides types, interfaces, and helpers for working with
// the Traduki localization platform API.
//
// # Overview
//
// The traduki package defines the domain types (e.g., Project, File,
// SourceString, Translation, Bundle) and the interfaces for resource-oriented
// clients (e.g., ProjectsClient, StringsClient). A concrete implementation of
// these clients is provided by the tdclient package, which wires
// configuration, transport, authentication, retries, and caching. Most
// consumers should import tdclient to construct a client and then interact
// with the resource client interfaces exposed here.
//
// Getting a client
//
//	import (
//	  "context"
//	  "log"
//
//	  "github.com/traduki-io/traduki/pkg/tdclient"
//	  "github.com/traduki-io/traduki/pkg/traduki"
//	)
//
//	func example() {
//	  ctx := context.Background()
//	  cli, err := tdclient.New(&traduki.Config{Token: "td-token"})
//	  if err != nil { log.Fatal(err) }
//
//	  // List the first page of projects
//	  projects, err := cli.Projects().List(ctx, traduki.NewListOptions())
//	  if err != nil { log.Fatal(err) }
//	  _ = projects
//	}
//
// # Queries and pagination
//
// Use ListOptions to express common list options (offset, limit, orderBy,
// filters). The package also provides helpers for iterating or collecting
// paginated results:
//
//	it := traduki.NewPaginationIterator(ctx, cli.Projects().List, traduki.NewListOptions())
//	for it.HasNext() {
//	  project, err := it.Next()
//	  if err != nil { break }
//	  _ = project
//	}
//
// FetchAllPages collects every item with an optional page budget, and
// StreamPages delivers pages over a channel for concurrent consumers.
//
// # Deployments
//
// The platform runs in two variants: the public multi-tenant deployment and
// per-organization enterprise deployments. Setting Config.Organization
// selects enterprise and unlocks Groups() and Teams(); Billing() exists only
// on public. Calls to a resource the active deployment lacks fail immediately
// with a PermissionDenied APIError and never touch the network.
//
// # Errors
//
// API failures surface as *APIError with a Kind derived from the HTTP status
// code. Use the errors.Is/As helpers (IsNotFound, IsThrottled, ...) or
// ShouldRetry to branch on failure class.
//
// # Timestamps
//
// All timestamps cross the wire as strings in the fixed layout
// YYYY-MM-DDTHH:MM:SS±HH:MM. The Timestamp type handles both directions, and
// Decode promotes timestamp-shaped strings found in dynamic payloads.
package traduki
