// Package services defines shared utilities consumed by the conversion
// scheduler and the external encoder wrapper.
//
// Key responsibilities:
//   - Context helpers that stamp run IDs, task names, and worker slots for
//     logging.
//   - Structured error markers plus the Wrap helper that classify failures
//     into conversion failures (the encoder rejected the job) and unexpected
//     failures (everything else).
//
// Use these helpers when wiring new conversion logic so error handling and
// observability stay uniform across the batch.
package services
