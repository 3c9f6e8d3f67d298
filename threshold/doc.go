// Package threshold provides generic Shamir-share reconstruction, in both
// the scalar and the group-element exponent, along with a consistency
// check that compares the secrets reconstructed from two overlapping
// threshold-sized subsets of the first threshold+1 shares.
package threshold
