// The metrics subpackage measures text for layout purposes.
//
// Layout code never talks to fonts directly: it asks a [Provider]
// for vertical metrics and bounding boxes, so tests can substitute
// a deterministic provider (see the metricstest subpackage) and
// avoid real font files.
//
// [Face] is the sfnt-backed provider. Faces are created on demand
// through a [Cache], which creates each (name, size, kind) face once
// and keeps it for the lifetime of the process.
package metrics
