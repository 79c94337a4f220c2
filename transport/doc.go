// Package transport is a reference, non-normative wrapper protocol around
// the core: it distributes the Prio3 verification parameter's k_query_init
// seed between aggregators over an authenticated channel, and authenticates
// prep-shares and prep-messages exchanged between them. The core itself
// never imports this package; spec.md explicitly treats transport, channel
// authentication, and k_query_init distribution as the wrapper's job.
package transport
