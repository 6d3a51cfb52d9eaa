// Package tdclient provides the primary entry point for constructing a
// Traduki API client that implements the traduki.Client interface.
//
// It layers configuration, HTTP transport, bearer authentication, retry, and
// response caching on top of the resource interfaces and types defined in the
// traduki package. Most applications should import tdclient to build a
// client, then use the returned traduki.Client to access resource-specific
// clients, for example Projects(), Strings(), Translations(), etc.
//
// Quick start
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
//
//	  // Public deployment with a personal access token.
//	  cli, err := tdclient.New(&traduki.Config{Token: "td-token"})
//	  if err != nil { log.Fatal(err) }
//
//	  // Enterprise deployment: Organization picks the tenant host and
//	  // unlocks Groups() and Teams().
//	  cli, err = tdclient.New(&traduki.Config{
//	    Token:        "td-token",
//	    Organization: "acme",
//	  })
//	  if err != nil { log.Fatal(err) }
//
//	  project, err := cli.Projects().Get(ctx, 12)
//	  if err != nil { log.Fatal(err) }
//	  _ = project
//	}
//
// Construction performs no network I/O unless a NATS cache backend is
// configured, so a client can be built at program start and shared freely
// between goroutines.
package tdclient
