// Package widget converts the results of application callbacks into the
// canonical payload trees hosted dashboard widget APIs expect.
//
// Each supported widget variant has a Normalizer that validates its input
// contract and produces a tree of ordered mappings (Payload), sequences and
// scalars. Normalizers are pure: they hold no state, never retain inputs or
// outputs, and are safe for concurrent use. Rendering the tree to the wire
// formats is the render package's job.
package widget
