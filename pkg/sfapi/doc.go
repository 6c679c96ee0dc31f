// Package sfapi defines the public surface of the SuperFaktura API client:
// configuration, credential resolution, the entity payload schema engine, the
// list query encoder, and the result envelope shared by every operation.
//
// Remote failures are never surfaced as Go errors. Every network-calling
// operation returns an Envelope, which is either the decoded remote response
// or the uniform {"error": ..., "status": "failed"} shape. Go errors are
// reserved for local configuration defects (missing credentials, unknown
// country code) detected before any network access.
package sfapi
