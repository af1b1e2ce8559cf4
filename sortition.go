/*
Package sortition provides cryptographically secure sampling of uniform
random values: bytes, 32- and 64-bit integers, floating-point and
fixed-precision decimal fractions, together with bounded-range sampling over
arbitrary [min, max] windows, random selection with replacement and unbiased
shuffling. All randomness is drawn through an injectable entropy source
backed by the platform CSPRNG, with a deterministic keyed source available
for reproducible tests.
*/
package sortition
