// Package batchscan implements the batch scanning pipeline: validating
// scanned LPO numbers, accumulating them in capacity-bounded sessions, and
// exporting finished runs as CSV to object storage.
//
// # Pipeline
//
// Every submission, whether typed at the gate, produced by the auto-scan
// timer, or extracted from a decoded QR payload, flows through the same path:
// the validator checks the format rule and batch-local duplicates, the
// session records the outcome, and the history log gets one entry per scan.
//
// # Sessions
//
// A session accepts codes up to its capacity; reaching the ceiling stops the
// run rather than warning. Stopping is idempotent and cancels the auto-scan
// loop, so no submission can land after the result is computed.
//
// # Validation
//
// A code must match LPO-NNNN-NNNNNN (4-digit year, 6-digit sequence) after
// trimming and upper-casing. Rejections carry one of three reasons: empty
// code, format error, duplicate scan. Duplicate detection is scoped to the
// current session only.
package batchscan
