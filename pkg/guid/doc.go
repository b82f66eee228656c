// Package guid generates 128-bit identifiers rendered as canonical uppercase
// dashed hex strings ("XXXXXXXX-XXXX-XXXX-XXXX-XXXXXXXXXXXX").
//
// Identifiers come from one of two modes:
//
//   - Random: with an empty seed, each call draws fresh system entropy, so
//     repeated calls produce distinct identifiers.
//   - Seeded: with non-empty seed bytes, output is fully deterministic. The
//     same seed bytes and the same seed offset reproduce the same identifier
//     bit-for-bit across runs, platforms, and rebuilds.
//
// Seeded generation expands the input through a rotate-and-fold accumulator
// into four chained 32-bit seeds, feeds those into four independent MT19937
// streams, and draws the 16 output bytes cyclically across the streams.
// Spreading the output over four separately-seeded streams avoids the
// low-order-bit correlation a single classic PRNG can show across
// consecutive draws.
//
// The generator is not cryptographic. Its goals are visual uniqueness and
// seed reproducibility, nothing more; do not use it for security tokens.
package guid
