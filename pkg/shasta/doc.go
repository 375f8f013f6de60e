// Package shasta provides types, interfaces, and helpers for working with
// the Shasta cloud MSP API.
//
// # Overview
//
// The shasta package defines the domain types (Organization, Venue,
// Infrastructure, InfraType) and the interfaces for resource-oriented
// clients (OrganizationsClient, VenuesClient, InfrastructureClient). A
// concrete implementation is provided by the shastaclient package, which
// wires configuration, transport, and the rate-limit retry loop. Most
// consumers should import shastaclient to construct a client and then
// interact with the resource client interfaces exposed here.
//
// Getting a client
//
//	import (
//	  "context"
//	  "log"
//
//	  "github.com/shasta-io/shasta/pkg/shasta"
//	  "github.com/shasta-io/shasta/pkg/shastaclient"
//	)
//
//	func example() {
//	  ctx := context.Background()
//	  cli, err := shastaclient.New(&shasta.Config{
//	    APIEndpoint: "https://api.shastacloud.com",
//	    OrgID:       317,
//	    AccessToken: "token",
//	  })
//	  if err != nil { log.Fatal(err) }
//
//	  orgs, err := cli.Organizations().List(ctx, shasta.NewListParams())
//	  if err != nil { log.Fatal(err) }
//	  _ = orgs
//	}
//
// # Queries
//
// Use ListParams to express the common list options (offset, limit, order,
// orderBy) and the optional search filter. A search left empty is omitted
// from the request rather than sent blank.
//
// # Errors
//
// Failed responses are represented by APIError (status plus raw body) and
// RetryExhaustedError (every attempt rate limited). Helpers IsNotFound,
// IsRateLimited, and IsRetryExhausted make it easy to branch on the common
// cases. Network-level failures propagate as wrapped transport errors and
// are never retried.
package shasta
