// Package services defines the shared error taxonomy for the analysis
// pipeline.
//
// Key responsibilities:
//   - Sentinel markers that distinguish fatal run failures (unreadable spec,
//     unopenable source) from external tool faults.
//   - The Wrap helper that stamps stage and operation context onto errors so
//     logs and run records stay uniform across pipeline stages.
//   - Classify, which maps errors to the categories persisted in run history.
package services
