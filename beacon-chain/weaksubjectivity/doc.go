/*
Package weaksubjectivity implements the weak subjectivity safety checks for
the beacon node.

A node that starts from a non-genesis state anchors its trust to an
operator-supplied checkpoint, an (epoch, block root) pair. This package
verifies that the locally observed chain is consistent with that checkpoint
once finalization reaches it, that the latest finalized checkpoint is still
within the weak subjectivity period implied by the active validator set size,
and that candidate blocks descend from the checkpoint before finalization
catches up. Detected violations are fanned out to an ordered list of
policies; depending on the operating mode these either log or halt the
chain.

Reference:
https://github.com/ethereum/eth2.0-specs/blob/master/specs/phase0/weak-subjectivity.md
*/
package weaksubjectivity
