// Package apitests contains the smoke test scenarios for the Tribal Xperience booking and
// contact API.
//
// Each scenario makes one request and records exactly one result. Scenarios never stop the
// run: a transport error, an unexpected status, or a response with missing fields is recorded
// as a failure of that scenario and the next one starts.
package apitests
