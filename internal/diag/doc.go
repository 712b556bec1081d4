// Package diag defines the core diagnostic model shared by the import
// resolver, name resolver, and semantic analyser.
//
// # Purpose
//
//   - Provide deterministic, serialisable data structures that capture
//     findings produced by those passes.
//   - Offer light-weight utilities (Reporter, Bag) that let producers emit
//     diagnostics without coupling to concrete storage or formatting layers.
//
// # Scope
//
// Package diag does not perform any formatting or IO. Rendering
// responsibilities live in internal/diagfmt.
//
// # Data model
//
// Diagnostic is the central record. It contains:
//
//   - Severity – six-level enum (Info, Note, Warning, Error, Fatal, ICE)
//     defined in severity.go.
//   - Code – compact numeric identifier (see codes.go) with stable string
//     form.
//   - Message – human oriented text; keep it short and actionable.
//   - Primary span – the canonical source.Span pointing to the issue.
//   - Notes – optional secondary spans/messages for additional context.
//
// Notes should be used sparingly: each note must add new context (e.g.
// "first declared here") rather than repeating the diagnostic message.
//
// # Emitting diagnostics
//
// Phases use a diag.Reporter to decouple emission from storage. A phase
// constructs a ReportBuilder via NewReportBuilder (or the helper functions
// ReportError/ReportFatal/ReportWarning/ReportInfo), chains WithNote, and
// calls Emit.
//
// When no additional metadata is needed, phases may call Reporter.Report(...)
// directly. diag.BagReporter aggregates diagnostics into a Bag, which
// supports sorting, deduplication, filtering, and transformation.
// DedupReporter wraps another Reporter and suppresses repeated
// code/severity/span/message combinations, which matters for the semantic
// analyser where the same unresolved-name error can otherwise be reported
// once per use site within a single expression tree.
//
// # Consumers
//
//   - internal/diagfmt: renders Diagnostics into the pretty, column-accurate
//     terminal format.
//   - internal/compiler: owns the Bag for a compilation and decides whether
//     accumulated diagnostics should halt the pipeline.
//
// Keep the data model deterministic: any new fields should honour the
// package's layering constraints and avoid side effects, so diagnostics can
// be safely compared against golden files in tests.
package diag
