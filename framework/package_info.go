// Package framework contains the low-level implementation of test harness infrastructure
// that can be reused for different kinds of API smoke tests.
//
// The general model is:
//
// 1. The test harness talks to the API under test only over HTTP, through an APIClient.
// Every request has a fixed timeout, and transport problems are returned as ordinary errors
// rather than aborting the run.
//
// 2. There is a general notion of a test context which is similar to Go's *testing.T,
// allowing pieces of test logic to be associated with a test identifier and to accumulate
// success/failure results.
//
// The domain-specific code that knows what is being tested is responsible for building the
// requests, deciding what a correct response looks like, and providing a domain-specific
// test API on top of the test context.
package framework
